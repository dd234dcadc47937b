package stopdetect

import (
	"github.com/uyouii/trajectory-algorithms/common"
	"github.com/uyouii/trajectory-algorithms/community"
	"github.com/uyouii/trajectory-algorithms/metric"
)

const (
	DefaultR1             = 10
	DefaultR2             = 10
	DefaultMinStayingTime = 300
	DefaultMaxTimeBetween = 86400
	DefaultMinSize        = 2
)

// Config carries all detection thresholds. Zero values are replaced by the
// defaults above, so Config{} selects the standard great-circle setup.
type Config struct {
	// R1 is the segmentation radius: the max distance between a sample and
	// the running group median to keep the group open.
	R1 float64
	// R2 is the graph edge radius: the max distance between two event
	// medoids to link them.
	R2 float64
	// MinStayingTime is the shortest time span that can constitute a stop.
	// Only used when the input carries a timestamp column.
	MinStayingTime float64
	// MaxTimeBetween is the longest gap between consecutive samples inside
	// one stop or one interval.
	MaxTimeBetween float64
	// MinSize is the minimum member count for a group to become an event.
	MinSize int

	// Metric selects the built-in distance function. Ignored when
	// DistanceFunc is set.
	Metric metric.Kind
	// DistanceFunc optionally supplies a custom distance function.
	DistanceFunc metric.DistanceFunc
	// Oracle optionally supplies the community detection backend. Defaults
	// to Louvain modularization.
	Oracle community.Oracle

	// LabelSingleton gives events without graph edges their own fresh
	// community id instead of the outlier label.
	LabelSingleton bool
	// ReturnMedoidLabels makes BestPartition return per-event labels instead
	// of per-sample labels. Takes precedence over ReturnIntervals.
	ReturnMedoidLabels bool
	// ReturnIntervals makes BestPartition aggregate the per-sample labels
	// into visit intervals.
	ReturnIntervals bool
}

func (c *Config) withDefaults() (Config, error) {
	cfg := *c
	if cfg.R1 == 0 {
		cfg.R1 = DefaultR1
	}
	if cfg.R2 == 0 {
		cfg.R2 = DefaultR2
	}
	if cfg.MinStayingTime == 0 {
		cfg.MinStayingTime = DefaultMinStayingTime
	}
	if cfg.MaxTimeBetween == 0 {
		cfg.MaxTimeBetween = DefaultMaxTimeBetween
	}
	if cfg.MinSize == 0 {
		cfg.MinSize = DefaultMinSize
	}

	if cfg.R1 < 0 || cfg.R2 < 0 || cfg.MinStayingTime < 0 || cfg.MaxTimeBetween < 0 || cfg.MinSize < 1 {
		return cfg, common.ErrorInvalidValue
	}
	return cfg, nil
}

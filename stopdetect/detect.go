package stopdetect

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"

	"github.com/uyouii/trajectory-algorithms/common"
	"github.com/uyouii/trajectory-algorithms/community"
	"github.com/uyouii/trajectory-algorithms/metric"
	"github.com/uyouii/trajectory-algorithms/model"
	"github.com/uyouii/trajectory-algorithms/utils"
)

// Detector infers stop locations from an ordered trajectory. It holds only
// resolved configuration, so one Detector can serve independent trajectories
// from concurrent callers.
//
// The pipeline: segment the trajectory into candidate stationary groups,
// reduce qualifying groups to median events, link events within r2 into a
// proximity graph, partition the graph with the community oracle, then
// project community ids back onto every input sample.
type Detector struct {
	cfg    Config
	dist   metric.DistanceFunc
	oracle community.Oracle
}

func NewDetector(cfg Config) (*Detector, error) {
	resolved, err := cfg.withDefaults()
	if err != nil {
		return nil, err
	}

	dist := resolved.DistanceFunc
	if dist == nil {
		dist, err = resolved.Metric.Distance()
		if err != nil {
			return nil, err
		}
	}

	oracle := resolved.Oracle
	if oracle == nil {
		oracle = community.NewLouvainOracle()
	}

	return &Detector{
		cfg:    resolved,
		dist:   dist,
		oracle: oracle,
	}, nil
}

// Labels runs the full pipeline and returns one label per input sample:
// a community id, or Outlier for samples outside every recognized stop.
func (d *Detector) Labels(ctx context.Context, coords [][]float64) ([]int, error) {
	det, err := d.detect(ctx, coords)
	if err != nil {
		return nil, err
	}
	return expandLabels(det.eventLabels, det.eventMap), nil
}

// EventLabels runs the pipeline in medoid mode: it returns one label per
// retained stationary event instead of expanding to sample resolution.
func (d *Detector) EventLabels(ctx context.Context, coords [][]float64) ([]int, error) {
	det, err := d.detect(ctx, coords)
	if err != nil {
		return nil, err
	}
	return det.eventLabels, nil
}

// Events returns the retained stationary events with their medoid
// coordinates, for inspection alongside EventLabels.
func (d *Detector) Events(ctx context.Context, coords [][]float64) ([]model.StationaryEvent, error) {
	det, err := d.detect(ctx, coords)
	if err != nil {
		return nil, err
	}
	return det.events, nil
}

// Intervals runs the full pipeline and compresses the per-sample labels into
// visit intervals. When the input has no timestamp column, ordinal times
// 0..N-1 are used.
func (d *Detector) Intervals(ctx context.Context, coords [][]float64) ([]model.Interval, error) {
	det, err := d.detect(ctx, coords)
	if err != nil {
		return nil, err
	}
	labels := expandLabels(det.eventLabels, det.eventMap)
	it := NewIntervalIter(labels, sampleTimes(det.traj), d.cfg.MaxTimeBetween)
	return it.Collect(), nil
}

// BestPartition is the single-call entry point. Mode selection follows the
// config flags: ReturnMedoidLabels fills Result.EventLabels, ReturnIntervals
// fills Result.Intervals, otherwise Result.Labels is filled. Medoid mode
// takes precedence when both flags are set. Result.Events is always set.
func BestPartition(ctx context.Context, coords [][]float64, cfg Config) (*model.Result, error) {
	d, err := NewDetector(cfg)
	if err != nil {
		return nil, err
	}

	det, err := d.detect(ctx, coords)
	if err != nil {
		return nil, err
	}

	res := &model.Result{Events: det.events}
	switch {
	case cfg.ReturnMedoidLabels:
		res.EventLabels = det.eventLabels
	case cfg.ReturnIntervals:
		labels := expandLabels(det.eventLabels, det.eventMap)
		it := NewIntervalIter(labels, sampleTimes(det.traj), d.cfg.MaxTimeBetween)
		res.Intervals = it.Collect()
	default:
		res.Labels = expandLabels(det.eventLabels, det.eventMap)
	}
	return res, nil
}

type detection struct {
	traj        *model.Trajectory
	events      []model.StationaryEvent
	eventMap    model.EventMap
	eventLabels []int
}

func (d *Detector) detect(ctx context.Context, coords [][]float64) (*detection, error) {
	logger := utils.GetLogger(ctx)

	traj, err := d.normalize(coords)
	if err != nil {
		logger.Error("trajectory validation failed", zap.Error(err))
		return nil, err
	}

	seg := &segmenter{
		dist:           d.dist,
		r1:             d.cfg.R1,
		minStayingTime: d.cfg.MinStayingTime,
		maxTimeBetween: d.cfg.MaxTimeBetween,
	}
	groups := seg.run(traj)

	events, eventMap := aggregateEvents(traj, groups, d.cfg.MinSize)

	graph, err := buildProximityGraph(events, d.dist, d.cfg.R2)
	if err != nil {
		logger.Error("proximity graph construction failed",
			zap.Int("events", len(events)), zap.Error(err))
		return nil, err
	}

	partition, err := d.oracle.Communities(graph.Nodes, graph.Edges)
	if err != nil {
		logger.Error("community detection failed", zap.Error(err))
		return nil, err
	}

	eventLabels := projectEventLabels(partition, len(events), d.cfg.LabelSingleton)

	logger.Debug("stop detection finished",
		zap.Int("samples", traj.Len()),
		zap.Int("groups", len(groups)),
		zap.Int("events", len(events)),
		zap.Int("edges", len(graph.Edges)),
		zap.Int("communities", len(partition)))

	return &detection{
		traj:        traj,
		events:      events,
		eventMap:    eventMap,
		eventLabels: eventLabels,
	}, nil
}

// normalize validates the raw coordinate rows and converts them into a
// trajectory. Rows must uniformly have 2 or 3 columns; a third column carries
// non-decreasing timestamps; the great-circle metric additionally requires
// latitudes strictly inside (-90, 90) and longitudes strictly inside
// (-180, 180).
func (d *Detector) normalize(coords [][]float64) (*model.Trajectory, error) {
	if len(coords) == 0 {
		return nil, fmt.Errorf("%w: empty input", common.ErrorInvalidShape)
	}

	cols := len(coords[0])
	if cols != 2 && cols != 3 {
		return nil, fmt.Errorf("%w: got %d", common.ErrorInvalidShape, cols)
	}

	hasTime := cols == 3
	traj := &model.Trajectory{
		Samples: make([]model.Sample, 0, len(coords)),
		HasTime: hasTime,
	}

	xs := make([]float64, 0, len(coords))
	ys := make([]float64, 0, len(coords))
	for i, row := range coords {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns", common.ErrorInvalidShape, i, len(row))
		}
		smp := model.Sample{Point: model.Point{X: row[0], Y: row[1]}}
		if hasTime {
			smp.Time = row[2]
			if i > 0 && smp.Time < traj.Samples[i-1].Time {
				return nil, fmt.Errorf("%w: row %d", common.ErrorUnorderedTimestamps, i)
			}
		}
		traj.Samples = append(traj.Samples, smp)
		xs = append(xs, row[0])
		ys = append(ys, row[1])
	}

	if d.cfg.DistanceFunc == nil && d.cfg.Metric == metric.GreatCircle {
		if floats.Min(xs) <= -90 || floats.Max(xs) >= 90 {
			return nil, fmt.Errorf("%w: latitude must be between -90 and 90", common.ErrorOutOfRangeCoordinate)
		}
		if floats.Min(ys) <= -180 || floats.Max(ys) >= 180 {
			return nil, fmt.Errorf("%w: longitude must be between -180 and 180", common.ErrorOutOfRangeCoordinate)
		}
	}

	return traj, nil
}

package model

import "fmt"

const (
	// NoEvent marks a sample that belongs to no retained stationary event.
	NoEvent = -1
	// Outlier is the reserved label for samples outside every recognized stop.
	Outlier = -1
)

// Point is a position in the input coordinate system. For the great-circle
// metric X is latitude and Y is longitude; for the planar metric the axes are
// arbitrary.
type Point struct {
	X float64
	Y float64
}

type Sample struct {
	Point
	Time float64
}

// Trajectory is a normalized input sequence. When HasTime is false the Time
// field of every sample is zero and time-based thresholds are ignored.
type Trajectory struct {
	Samples []Sample
	HasTime bool
}

func (t *Trajectory) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Samples)
}

// StationaryGroup is a maximal run of consecutive sample indices judged
// mutually stationary by the segmentation scan.
type StationaryGroup struct {
	Members []int
	Start   float64
	End     float64
	// Stationary is false when the group's time span fell below the
	// minimum staying time. It is always true for untimed input.
	Stationary bool
}

func (g *StationaryGroup) Size() int {
	return len(g.Members)
}

func (g *StationaryGroup) Span() float64 {
	return g.End - g.Start
}

// StationaryEvent is the reduced representative of a retained group. Its
// position in the event slice is the graph node id.
type StationaryEvent struct {
	Medoid  Point
	Members []int
}

// EventMap maps every original sample index to an event index or NoEvent.
type EventMap []int

// ProximityGraph links stationary events whose medoids lie within the edge
// radius. Nodes holds only ids that carry at least one edge; every edge (i, j)
// satisfies i < j.
type ProximityGraph struct {
	Nodes []int
	Edges [][2]int
}

// Partition maps a connected event index to its community id.
type Partition map[int]int

// Interval is a maximal contiguous span of samples sharing one label, bounded
// also by the maximum allowed time gap.
type Interval struct {
	Label int
	Start float64
	End   float64
}

// Result bundles the outputs of one detection run. Only the fields relevant
// to the requested mode are populated.
type Result struct {
	// Labels has one entry per input sample: a community id or Outlier.
	Labels []int
	// EventLabels has one entry per retained stationary event.
	EventLabels []int
	// Events exposes the event medoids for inspection.
	Events []StationaryEvent
	// Intervals is the label vector compressed into visit intervals.
	Intervals []Interval
}

func (r *Result) DebugString() string {
	res := fmt.Sprintf("labelCount: %+v, eventCount: %+v, intervalCount: %+v",
		len(r.Labels), len(r.Events), len(r.Intervals))
	return res
}

package stopdetect

import (
	"github.com/uyouii/trajectory-algorithms/metric"
	"github.com/uyouii/trajectory-algorithms/model"
	"github.com/uyouii/trajectory-algorithms/utils"
)

// segmenter groups consecutive samples into candidate stationary events. The
// scan is inherently sequential: each group is anchored by the coordinate-wise
// median of the points added to it so far, and the anchor moves as the group
// grows.
type segmenter struct {
	dist           metric.DistanceFunc
	r1             float64
	minStayingTime float64
	maxTimeBetween float64
}

// run partitions the trajectory into groups covering every index exactly
// once. A sample joins the open group when it lies within r1 of the anchor
// median and, for timed input, the gap to the previous sample does not exceed
// maxTimeBetween; otherwise the group is closed and a new one is opened.
func (s *segmenter) run(traj *model.Trajectory) []model.StationaryGroup {
	groups := []model.StationaryGroup{}
	if traj.Len() == 0 {
		return groups
	}

	var members []int
	var xs, ys []float64

	open := func(i int) {
		smp := traj.Samples[i]
		members = []int{i}
		xs = []float64{smp.X}
		ys = []float64{smp.Y}
	}
	closeGroup := func() {
		groups = append(groups, s.buildGroup(traj, members))
	}

	open(0)
	for i := 1; i < traj.Len(); i++ {
		smp := traj.Samples[i]
		anchor := model.Point{X: utils.Median(xs), Y: utils.Median(ys)}

		joins := s.dist(smp.Point, anchor) < s.r1
		if joins && traj.HasTime {
			prev := traj.Samples[i-1]
			joins = smp.Time-prev.Time <= s.maxTimeBetween
		}

		if joins {
			members = append(members, i)
			xs = append(xs, smp.X)
			ys = append(ys, smp.Y)
			continue
		}
		closeGroup()
		open(i)
	}
	closeGroup()

	return groups
}

func (s *segmenter) buildGroup(traj *model.Trajectory, members []int) model.StationaryGroup {
	g := model.StationaryGroup{
		Members:    members,
		Stationary: true,
	}
	if traj.HasTime {
		g.Start = traj.Samples[members[0]].Time
		g.End = traj.Samples[members[len(members)-1]].Time
		g.Stationary = g.Span() >= s.minStayingTime
	}
	return g
}

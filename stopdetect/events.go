package stopdetect

import (
	"github.com/uyouii/trajectory-algorithms/model"
	"github.com/uyouii/trajectory-algorithms/utils"
)

// aggregateEvents reduces each stationary group of at least minSize members to
// a single event whose medoid is the per-dimension median of the members'
// coordinates. Event indices are dense from 0 in discovery order. The
// returned EventMap is total: samples in discarded groups map to NoEvent.
func aggregateEvents(traj *model.Trajectory, groups []model.StationaryGroup, minSize int) ([]model.StationaryEvent, model.EventMap) {
	events := []model.StationaryEvent{}
	eventMap := make(model.EventMap, traj.Len())
	for i := range eventMap {
		eventMap[i] = model.NoEvent
	}

	for _, g := range groups {
		if !g.Stationary || g.Size() < minSize {
			continue
		}

		xs := make([]float64, 0, g.Size())
		ys := make([]float64, 0, g.Size())
		for _, idx := range g.Members {
			xs = append(xs, traj.Samples[idx].X)
			ys = append(ys, traj.Samples[idx].Y)
		}

		eventIdx := len(events)
		events = append(events, model.StationaryEvent{
			Medoid:  model.Point{X: utils.Median(xs), Y: utils.Median(ys)},
			Members: g.Members,
		})
		for _, idx := range g.Members {
			eventMap[idx] = eventIdx
		}
	}

	return events, eventMap
}

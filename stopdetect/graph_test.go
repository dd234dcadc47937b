package stopdetect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uyouii/trajectory-algorithms/common"
	"github.com/uyouii/trajectory-algorithms/metric"
	"github.com/uyouii/trajectory-algorithms/model"
)

func eventsAt(points ...model.Point) []model.StationaryEvent {
	res := make([]model.StationaryEvent, 0, len(points))
	for _, p := range points {
		res = append(res, model.StationaryEvent{Medoid: p})
	}
	return res
}

func TestBuildProximityGraph(t *testing.T) {
	t.Run("links events within r2", func(t *testing.T) {
		events := eventsAt(
			model.Point{X: 0, Y: 0},
			model.Point{X: 10, Y: 0},
			model.Point{X: 1000, Y: 0},
		)

		g, err := buildProximityGraph(events, metric.Euclidean, 50)
		require.NoError(t, err)
		assert.Equal(t, [][2]int{{0, 1}}, g.Edges)
		assert.Equal(t, []int{0, 1}, g.Nodes, "isolated events are not graph nodes")
	})

	t.Run("edge requires strictly less than r2", func(t *testing.T) {
		events := eventsAt(
			model.Point{X: 0, Y: 0},
			model.Point{X: 50, Y: 0},
			model.Point{X: 49, Y: 0},
		)

		g, err := buildProximityGraph(events, metric.Euclidean, 50)
		require.NoError(t, err)
		assert.Equal(t, [][2]int{{0, 2}, {1, 2}}, g.Edges)
	})

	t.Run("no duplicate edges or self loops", func(t *testing.T) {
		events := eventsAt(
			model.Point{X: 0, Y: 0},
			model.Point{X: 1, Y: 0},
			model.Point{X: 0, Y: 1},
		)

		g, err := buildProximityGraph(events, metric.Euclidean, 50)
		require.NoError(t, err)
		seen := map[[2]int]bool{}
		for _, e := range g.Edges {
			assert.Less(t, e[0], e[1])
			assert.False(t, seen[e])
			seen[e] = true
		}
		assert.Len(t, g.Edges, 3)
	})

	t.Run("zero edges is fatal", func(t *testing.T) {
		events := eventsAt(
			model.Point{X: 0, Y: 0},
			model.Point{X: 1000, Y: 0},
		)

		_, err := buildProximityGraph(events, metric.Euclidean, 50)
		assert.ErrorIs(t, err, common.ErrorInsufficientGraph)
	})

	t.Run("single event has no pairs", func(t *testing.T) {
		_, err := buildProximityGraph(eventsAt(model.Point{X: 0, Y: 0}), metric.Euclidean, 50)
		assert.ErrorIs(t, err, common.ErrorInsufficientGraph)
	})
}

package stopdetect

import (
	"sort"

	"github.com/uyouii/trajectory-algorithms/common"
	"github.com/uyouii/trajectory-algorithms/metric"
	"github.com/uyouii/trajectory-algorithms/model"
)

// buildProximityGraph links events whose medoids lie within r2 of each other.
// Only the upper triangle of the pairwise distance matrix is evaluated.
// A graph with no edges at all is a configuration failure: the trajectory is
// too short or r2 too tight to form any cluster.
func buildProximityGraph(events []model.StationaryEvent, dist metric.DistanceFunc, r2 float64) (*model.ProximityGraph, error) {
	edges := [][2]int{}
	nodeSet := map[int]struct{}{}

	for i := 0; i < len(events); i++ {
		for j := i + 1; j < len(events); j++ {
			if dist(events[i].Medoid, events[j].Medoid) < r2 {
				edges = append(edges, [2]int{i, j})
				nodeSet[i] = struct{}{}
				nodeSet[j] = struct{}{}
			}
		}
	}

	if len(edges) == 0 {
		return nil, common.ErrorInsufficientGraph
	}

	nodes := make([]int, 0, len(nodeSet))
	for n := range nodeSet {
		nodes = append(nodes, n)
	}
	sort.Ints(nodes)

	return &model.ProximityGraph{Nodes: nodes, Edges: edges}, nil
}

package community

import (
	"sort"

	"golang.org/x/exp/rand"
	gonumcommunity "gonum.org/v1/gonum/graph/community"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/uyouii/trajectory-algorithms/common"
)

// LouvainOracle clusters the graph by modularity maximization. Community ids
// are renumbered 0..K-1 by descending community size, ties broken by smallest
// member id, so a fixed graph always yields the same mapping.
type LouvainOracle struct {
	resolution float64
	seed       uint64
}

func NewLouvainOracle() *LouvainOracle {
	return &LouvainOracle{
		resolution: 1,
		seed:       1,
	}
}

func (o *LouvainOracle) Communities(nodes []int, edges [][2]int) (map[int]int, error) {
	if len(edges) == 0 {
		return nil, common.ErrorInsufficientGraph
	}

	g := simple.NewUndirectedGraph()
	for _, n := range nodes {
		if g.Node(int64(n)) == nil {
			g.AddNode(simple.Node(n))
		}
	}
	for _, e := range edges {
		if e[0] == e[1] {
			continue
		}
		g.SetEdge(simple.Edge{F: simple.Node(e[0]), T: simple.Node(e[1])})
	}

	reduced := gonumcommunity.Modularize(g, o.resolution, rand.NewSource(o.seed))
	communities := reduced.Communities()

	members := make([][]int, 0, len(communities))
	for _, c := range communities {
		ids := make([]int, 0, len(c))
		for _, n := range c {
			ids = append(ids, int(n.ID()))
		}
		sort.Ints(ids)
		members = append(members, ids)
	}
	sort.Slice(members, func(i, j int) bool {
		if len(members[i]) != len(members[j]) {
			return len(members[i]) > len(members[j])
		}
		return members[i][0] < members[j][0]
	})

	res := make(map[int]int, len(nodes))
	for id, ids := range members {
		for _, n := range ids {
			res[n] = id
		}
	}
	return res, nil
}

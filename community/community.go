package community

// Oracle partitions a proximity graph into communities. Implementations must
// be deterministic for a fixed graph: the pipeline relies on repeated runs
// over identical input producing identical labels.
//
// Nodes are the graph node ids carrying at least one edge; edges are
// unordered id pairs. The returned map assigns every listed node a
// non-negative community id. Ids need not be contiguous or related to node
// ids; densely mutually connected nodes should tend to share one id.
type Oracle interface {
	Communities(nodes []int, edges [][2]int) (map[int]int, error)
}

package digraph

// ReverseView is a zero-cost, read-only alias of a Graph with in/out
// swapped: OutNeighbors on the view returns the underlying graph's
// InNeighbors, and vice versa. No adjacency is copied.
type ReverseView struct {
	g *Graph
}

// Reversed returns a ReverseView over g. Mutating g after taking a view is
// visible through the view (it is a live alias, not a snapshot); callers
// should only take a view once the graph is done being built.
func (g *Graph) Reversed() *ReverseView { return &ReverseView{g: g} }

// NumVertices returns the number of vertices in the underlying Graph.
func (r *ReverseView) NumVertices() int { return r.g.NumVertices() }

// OutNeighbors returns the underlying graph's in-neighbors of v.
func (r *ReverseView) OutNeighbors(v int) []int { return r.g.InNeighbors(v) }

// InNeighbors returns the underlying graph's out-neighbors of v.
func (r *ReverseView) InNeighbors(v int) []int { return r.g.OutNeighbors(v) }

// OutDegree returns the underlying graph's in-degree of v.
func (r *ReverseView) OutDegree(v int) int { return r.g.InDegree(v) }

// InDegree returns the underlying graph's out-degree of v.
func (r *ReverseView) InDegree(v int) int { return r.g.OutDegree(v) }

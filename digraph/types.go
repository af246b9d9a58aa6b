package digraph

// Digraph is the read interface shared by Graph and its reverse view, so
// traversal and condensation code never needs to know which orientation it
// is looking at.
type Digraph interface {
	// NumVertices returns the number of vertices currently in the store.
	NumVertices() int
	// OutNeighbors returns v's out-neighbors in insertion order. The
	// returned slice must not be mutated by the caller.
	OutNeighbors(v int) []int
	// InNeighbors returns v's in-neighbors in insertion order. The
	// returned slice must not be mutated by the caller.
	InNeighbors(v int) []int
	// OutDegree returns len(OutNeighbors(v)) in O(1).
	OutDegree(v int) int
	// InDegree returns len(InNeighbors(v)) in O(1).
	InDegree(v int) int
}

// Graph is a directed (or undirected, when constructed with NewUndirected())
// graph over dense integer vertex ids 0..NumVertices()-1. Arc insertion is
// idempotent: adding an already-present arc is a no-op. Self-loops are
// permitted (the witness digraph D never produces any, but Condensation's
// generality does not assume that).
type Graph struct {
	directed bool

	// out[v] / in[v] hold v's neighbor ids in insertion order.
	out [][]int
	in  [][]int

	// outSeen[v][u] / inSeen[v][u] back the idempotency check for AddArc in
	// O(1); kept separate from out/in so the adjacency slices stay
	// iteration-order-stable and allocation-light.
	outSeen []map[int]struct{}
	inSeen  []map[int]struct{}
}

// New returns an empty directed Graph.
func New() *Graph {
	return &Graph{directed: true}
}

// NewUndirected returns an empty undirected Graph: AddArc(u, v) also
// installs the mirror arc (v, u).
func NewUndirected() *Graph {
	return &Graph{directed: false}
}

// Directed reports whether arcs were declared one-way at construction time.
func (g *Graph) Directed() bool { return g.directed }

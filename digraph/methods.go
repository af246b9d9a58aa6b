package digraph

// AddVertex appends a new vertex and returns its dense id
// (NumVertices() before the call).
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex() int {
	id := len(g.out)
	g.out = append(g.out, nil)
	g.outSeen = append(g.outSeen, nil)
	g.in = append(g.in, nil)
	g.inSeen = append(g.inSeen, nil)

	return id
}

// EnsureVertex grows the store with fresh vertices until id is valid,
// returning id unchanged. Useful when the caller has a pre-assigned dense
// id space (e.g. a bijective label table built ahead of time) rather than
// relying on AddVertex's return value.
//
// Complexity: O(id - NumVertices()) amortized.
func (g *Graph) EnsureVertex(id int) {
	for len(g.out) <= id {
		g.AddVertex()
	}
}

// NumVertices returns the number of vertices currently in the store.
func (g *Graph) NumVertices() int { return len(g.out) }

// AddArc inserts the arc (u, v). Idempotent: a repeated call is a no-op.
// For an undirected Graph, also installs the mirror arc (v, u), which is
// likewise idempotent and reports no self-loop duplication when u == v.
//
// Complexity: O(1) amortized.
func (g *Graph) AddArc(u, v int) {
	g.addDirectedArc(u, v)
	if !g.directed && u != v {
		g.addDirectedArc(v, u)
	}
}

func (g *Graph) addDirectedArc(u, v int) {
	if g.outSeen[u] == nil {
		g.outSeen[u] = make(map[int]struct{})
	}
	if _, dup := g.outSeen[u][v]; dup {
		return
	}
	g.outSeen[u][v] = struct{}{}
	g.out[u] = append(g.out[u], v)

	if g.inSeen[v] == nil {
		g.inSeen[v] = make(map[int]struct{})
	}
	g.inSeen[v][u] = struct{}{}
	g.in[v] = append(g.in[v], u)
}

// OutNeighbors returns v's out-neighbors in insertion order.
func (g *Graph) OutNeighbors(v int) []int { return g.out[v] }

// InNeighbors returns v's in-neighbors in insertion order.
func (g *Graph) InNeighbors(v int) []int { return g.in[v] }

// OutDegree returns len(OutNeighbors(v)) in O(1).
func (g *Graph) OutDegree(v int) int { return len(g.out[v]) }

// InDegree returns len(InNeighbors(v)) in O(1).
func (g *Graph) InDegree(v int) int { return len(g.in[v]) }

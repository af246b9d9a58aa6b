package condense

import "github.com/katalvlaran/rmaug/digraph"

// Classification holds the source/sink/isolated partition of a DAG's
// vertices (or a condensation's super-nodes): sources have in-degree 0 and
// out-degree > 0, sinks have out-degree 0 and in-degree > 0, isolated
// vertices have both degrees 0. The three sets are pairwise disjoint.
type Classification struct {
	Sources  []int
	Sinks    []int
	Isolated []int
}

// Classify partitions every vertex of h into Classification.Sources,
// .Sinks, and .Isolated.
//
// Complexity: O(|V|).
func Classify(h digraph.Digraph) Classification {
	var c Classification
	for v := 0; v < h.NumVertices(); v++ {
		in, out := h.InDegree(v), h.OutDegree(v)
		switch {
		case in == 0 && out == 0:
			c.Isolated = append(c.Isolated, v)
		case in == 0:
			c.Sources = append(c.Sources, v)
		case out == 0:
			c.Sinks = append(c.Sinks, v)
		}
	}

	return c
}

// Trivial returns the super-node ids of c whose SCC has exactly one
// member — the singleton components that identify critical witness
// vertices.
func Trivial(c *Condensation) []int {
	var x []int
	for s := 0; s < c.NumComponents(); s++ {
		if c.Trivial(s) {
			x = append(x, s)
		}
	}

	return x
}

package augment

import (
	"fmt"

	"github.com/katalvlaran/rmaug/core"
	"github.com/katalvlaran/rmaug/digraph"
)

// labelTable is the bijective mapping between A's string vertex ids and the
// dense integer ids of the witness digraph D.
type labelTable struct {
	label []string
	idx   map[string]int
}

func newLabelTable(a []string) labelTable {
	idx := make(map[string]int, len(a))
	for i, lbl := range a {
		idx[lbl] = i
	}

	return labelTable{label: a, idx: idx}
}

// buildWitness constructs the witness digraph D(G,M): its vertex set is A;
// for every a in A with mate w = M[a], an arc (a, a') is added for every
// neighbor a' of w in G with a' != a.
func buildWitness(g *core.Graph, a []string, m map[string]string, lt labelTable) (*digraph.Graph, error) {
	d := digraph.New()
	for range a {
		d.AddVertex()
	}

	for _, lbl := range a {
		w, ok := m[lbl]
		if !ok {
			return nil, fmt.Errorf("augment: matching has no mate for vertex %q", lbl)
		}

		neighbors, err := g.Neighbors(w)
		if err != nil {
			return nil, fmt.Errorf("augment: %w", err)
		}

		i := lt.idx[lbl]
		for _, e := range neighbors {
			other := e.To
			if other == w {
				other = e.From
			}
			if other == lbl {
				continue
			}
			j, ok := lt.idx[other]
			if !ok {
				continue
			}
			d.AddArc(i, j)
		}
	}

	return d, nil
}

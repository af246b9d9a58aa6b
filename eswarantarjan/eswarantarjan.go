package eswarantarjan

import (
	"fmt"

	"github.com/katalvlaran/rmaug/condense"
	"github.com/katalvlaran/rmaug/digraph"
	"github.com/katalvlaran/rmaug/rmerr"
	"github.com/katalvlaran/rmaug/traverse"
)

// Options configures Augment's verbosity; there is no other tunable.
type Options struct {
	Verbose bool
}

// DefaultOptions returns the zero-value Options (verbose logging off).
func DefaultOptions() Options { return Options{} }

// Augment returns a minimum-cardinality arc set A over V(h) such that
// (V(h), E(h) ∪ A) is strongly connected. If isCondensation is false, h is
// condensed first and the returned arcs are over the super-node ids of
// condense.Build(h).DAG(); the condensation itself is not returned. If
// isCondensation is true, h must already be
// acyclic; ErrHasCycle otherwise.
func Augment(h *digraph.Graph, isCondensation bool, opts Options) ([][2]int, error) {
	if !h.Directed() {
		return nil, fmt.Errorf("eswarantarjan: %w: undirected input", rmerr.ErrNotImplementedForInput)
	}

	var hprime *digraph.Graph
	if isCondensation {
		if !condense.IsAcyclic(h) {
			return nil, fmt.Errorf("eswarantarjan: %w", rmerr.ErrHasCycle)
		}
		hprime = h
	} else {
		hprime = condense.Build(h).DAG()
	}

	n := hprime.NumVertices()
	if n <= 1 {
		return nil, nil
	}

	cls := condense.Classify(hprime)
	sources, sinks, isolated := cls.Sources, cls.Sinks, cls.Isolated
	s, t, q := len(sources), len(sinks), len(isolated)

	var working digraph.Digraph = hprime
	reversed := false
	if s > t {
		reversed = true
		working = hprime.Reversed()
		sources, sinks = sinks, sources
		s, t = t, s
	}

	vList, wList := matchSourcesToSinks(working, sources, sinks, opts)
	p := len(vList)

	vList = append(vList, unpaired(sources, vList)...)
	wList = append(wList, unpaired(sinks, wList)...)
	xList := isolated

	arcs := synthesizeArcs(vList, wList, xList, p, s, t, q)

	if reversed {
		for i, a := range arcs {
			arcs[i] = [2]int{a[1], a[0]}
		}
	}
	if opts.Verbose {
		fmt.Printf("eswarantarjan: synthesized %d arcs (s=%d t=%d q=%d reversed=%v)\n", len(arcs), s, t, q, reversed)
	}

	return arcs, nil
}

// matchSourcesToSinks runs the unmarked-source search: for every source not
// already absorbed by a previous search, DFS forward (skipping marked
// vertices, marking each visited one) until a sink is hit or the source's
// reachable frontier is exhausted.
func matchSourcesToSinks(h digraph.Digraph, sources, sinks []int, opts Options) (vList, wList []int) {
	isSink := make(map[int]struct{}, len(sinks))
	for _, w := range sinks {
		isSink[w] = struct{}{}
	}

	marked := make(map[int]struct{}, h.NumVertices())
	for _, v := range sources {
		if _, ok := marked[v]; ok {
			continue
		}
		marked[v] = struct{}{}

		found := -1
		traverse.Walk(h, v,
			func(cur int) traverse.VertexSignal {
				if _, ok := isSink[cur]; ok {
					found = cur
					return traverse.Stop
				}

				return traverse.Continue
			},
			func(neighbor, _ int) traverse.NeighborSignal {
				if _, ok := marked[neighbor]; ok {
					return traverse.Skip
				}
				marked[neighbor] = struct{}{}

				return traverse.Push
			},
		)

		if found != -1 {
			vList = append(vList, v)
			wList = append(wList, found)
			if opts.Verbose {
				fmt.Printf("eswarantarjan: matched source %d to sink %d\n", v, found)
			}
		}
	}

	return vList, wList
}

// unpaired returns the elements of all not present in paired, preserving
// all's order.
func unpaired(all, paired []int) []int {
	seen := make(map[int]struct{}, len(paired))
	for _, v := range paired {
		seen[v] = struct{}{}
	}

	var rest []int
	for _, v := range all {
		if _, ok := seen[v]; !ok {
			rest = append(rest, v)
		}
	}

	return rest
}

// synthesizeArcs implements the literal case analysis: the main diagonal
// arcs followed by exactly one closing arc selected among five mutually
// exclusive cases.
func synthesizeArcs(vList, wList, xList []int, p, s, t, q int) [][2]int {
	var arcs [][2]int

	for i := 0; i < p-1; i++ {
		arcs = append(arcs, [2]int{wList[i], vList[i+1]})
	}
	for i := p; i < s; i++ {
		arcs = append(arcs, [2]int{wList[i], vList[i]})
	}
	for i := s; i < t-1; i++ {
		arcs = append(arcs, [2]int{wList[i], wList[i+1]})
	}
	for i := 0; i < q-1; i++ {
		arcs = append(arcs, [2]int{xList[i], xList[i+1]})
	}

	switch {
	case p == 0:
		arcs = append(arcs, [2]int{xList[q-1], xList[0]})
	case s == t && q == 0:
		arcs = append(arcs, [2]int{wList[p-1], vList[0]})
	case s == t && q > 0:
		arcs = append(arcs, [2]int{wList[p-1], xList[0]})
		arcs = append(arcs, [2]int{xList[q-1], vList[0]})
	case t > s && q == 0:
		arcs = append(arcs, [2]int{wList[p-1], wList[s]})
		arcs = append(arcs, [2]int{wList[t-1], vList[0]})
	default: // t > s, q > 0
		arcs = append(arcs, [2]int{wList[p-1], wList[s]})
		arcs = append(arcs, [2]int{wList[t-1], xList[0]})
		arcs = append(arcs, [2]int{xList[q-1], vList[0]})
	}

	return arcs
}

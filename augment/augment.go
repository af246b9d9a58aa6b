package augment

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/rmaug/condense"
	"github.com/katalvlaran/rmaug/core"
	"github.com/katalvlaran/rmaug/eswarantarjan"
	"github.com/katalvlaran/rmaug/matching"
	"github.com/katalvlaran/rmaug/rmerr"
	"github.com/katalvlaran/rmaug/sourcecover"
	"github.com/katalvlaran/rmaug/traverse"
)

// Augment computes a set L of non-matching G-edges such that adding L to G
// makes every edge of G ∪ L removable without destroying the existence of
// a perfect matching.
//
// If m is nil, the matching oracle (matching.PerfectMatching, built on
// flow.Dinic) supplies one. A caller-supplied m is trusted as-is unless
// opts.Validate is set.
func Augment(g *core.Graph, a []string, m map[string]string, opts Options) (map[[2]string]struct{}, error) {
	if len(a) <= 1 {
		return nil, fmt.Errorf("augment: %w", rmerr.ErrNotAugmentable)
	}
	if g.Directed() || g.Multigraph() {
		return nil, fmt.Errorf("augment: %w: directed/multi graph not supported", rmerr.ErrNotImplementedForInput)
	}

	resolvedM := m
	if resolvedM == nil {
		var err error
		resolvedM, err = matching.PerfectMatching(g, a, opts.FlowOptions)
		if err != nil {
			return nil, fmt.Errorf("augment: %w", err)
		}
	}
	if opts.Validate {
		if err := validatePerfectMatching(a, resolvedM); err != nil {
			return nil, err
		}
	}

	lt := newLabelTable(a)
	d, err := buildWitness(g, a, resolvedM, lt)
	if err != nil {
		return nil, err
	}

	cond := condense.Build(d)
	x := condense.Trivial(cond)
	if opts.Verbose {
		fmt.Printf("augment: condensation has %d super-nodes, %d trivial\n", cond.NumComponents(), len(x))
	}
	if len(x) == 0 {
		return map[[2]string]struct{}{}, nil
	}

	cls := condense.Classify(cond.DAG())

	c0, err := sourcecover.Cover(cond.DAG(), x, cls, opts.sourceCoverOptions())
	if err != nil {
		return nil, fmt.Errorf("augment: %w", err)
	}
	reverseCls := condense.Classification{Sources: cls.Sinks, Isolated: cls.Isolated}
	c1, err := sourcecover.Cover(cond.DAG().Reversed(), x, reverseCls, opts.sourceCoverOptions())
	if err != nil {
		return nil, fmt.Errorf("augment: %w", err)
	}

	cx := make(map[int]struct{})
	for _, start := range union(c0, x) {
		traverse.ReachableInto(cond.DAG(), start, cx)
	}
	xc := make(map[int]struct{})
	for _, start := range union(c1, x) {
		traverse.ReachableInto(cond.DAG().Reversed(), start, xc)
	}

	dHatVertices := intersect(cx, xc)
	if len(dHatVertices) == 1 {
		only := dHatVertices[0]
		for v := 0; v < cond.DAG().NumVertices(); v++ {
			if v != only {
				dHatVertices = append(dHatVertices, v)
				break
			}
		}
	}

	dHat, oldToNew := cond.DAG().InducedSubgraph(dHatVertices)
	newToOld := make(map[int]int, len(oldToNew))
	for old, n := range oldToNew {
		newToOld[n] = old
	}

	lStar, err := eswarantarjan.Augment(dHat, true, opts.eswaranTarjanOptions())
	if err != nil {
		return nil, fmt.Errorf("augment: %w", err)
	}

	result := make(map[[2]string]struct{}, len(lStar))
	for _, arc := range lStar {
		uOld, vOld := newToOld[arc[0]], newToOld[arc[1]]
		uLabel := lt.label[cond.Members(uOld)[0]]
		vLabel := lt.label[cond.Members(vOld)[0]]
		bPartner := resolvedM[uLabel]
		result[canonicalPair(vLabel, bPartner)] = struct{}{}
		if opts.Verbose {
			fmt.Printf("augment: projected super-arc (%d,%d) to edge (%s,%s)\n", uOld, vOld, vLabel, bPartner)
		}
	}

	return result, nil
}

func validatePerfectMatching(a []string, m map[string]string) error {
	for _, v := range a {
		w, ok := m[v]
		if !ok {
			return fmt.Errorf("augment: %w: %q unmatched", rmerr.ErrNoPerfectMatching, v)
		}
		if back, ok := m[w]; !ok || back != v {
			return fmt.Errorf("augment: %w: %q<->%q not an involution", rmerr.ErrNoPerfectMatching, v, w)
		}
	}

	return nil
}

func canonicalPair(u, v string) [2]string {
	if u <= v {
		return [2]string{u, v}
	}

	return [2]string{v, u}
}

func union(xs, ys []int) []int {
	seen := make(map[int]struct{}, len(xs)+len(ys))
	out := make([]int, 0, len(xs)+len(ys))
	for _, v := range append(append([]int{}, xs...), ys...) {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}

	return out
}

func intersect(a, b map[int]struct{}) []int {
	var out []int
	for v := range a {
		if _, ok := b[v]; ok {
			out = append(out, v)
		}
	}
	sort.Ints(out)

	return out
}

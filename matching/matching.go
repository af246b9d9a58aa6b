package matching

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/rmaug/core"
	"github.com/katalvlaran/rmaug/flow"
	"github.com/katalvlaran/rmaug/rmerr"
)

const (
	superSource = "__matching_source__"
	superSink   = "__matching_sink__"
)

// PerfectMatching finds a perfect matching of the bipartite graph g, whose
// A side is given explicitly (the B side is every other vertex of g). It
// builds a unit-capacity flow network — super-source to every A-vertex,
// every G-edge from A to B, every B-vertex to a super-sink — and solves it
// with flow.Dinic, chosen over Ford-Fulkerson/Edmonds-Karp because
// unit-capacity bipartite networks are Dinic's best case, O(E·√V).
//
// Returns ErrNoPerfectMatching if fewer than len(a) units of flow saturate.
func PerfectMatching(g *core.Graph, a []string, opts flow.FlowOptions) (map[string]string, error) {
	aSet := make(map[string]struct{}, len(a))
	for _, v := range a {
		aSet[v] = struct{}{}
	}

	net := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	for _, v := range g.Vertices() {
		if err := net.AddVertex(v); err != nil {
			return nil, fmt.Errorf("matching: %w", err)
		}
	}
	if err := net.AddVertex(superSource); err != nil {
		return nil, fmt.Errorf("matching: %w", err)
	}
	if err := net.AddVertex(superSink); err != nil {
		return nil, fmt.Errorf("matching: %w", err)
	}

	bSet := make(map[string]struct{})
	for _, v := range g.Vertices() {
		if _, isA := aSet[v]; !isA {
			bSet[v] = struct{}{}
		}
	}

	for _, u := range a {
		if _, err := net.AddEdge(superSource, u, 1); err != nil {
			return nil, fmt.Errorf("matching: %w", err)
		}
	}
	for b := range bSet {
		if _, err := net.AddEdge(b, superSink, 1); err != nil {
			return nil, fmt.Errorf("matching: %w", err)
		}
	}
	for _, e := range g.Edges() {
		u, v := e.From, e.To
		if _, isA := aSet[u]; isA {
			if _, err := net.AddEdge(u, v, 1); err != nil && !errors.Is(err, core.ErrMultiEdgeNotAllowed) {
				return nil, fmt.Errorf("matching: %w", err)
			}
		} else if _, isA := aSet[v]; isA {
			if _, err := net.AddEdge(v, u, 1); err != nil && !errors.Is(err, core.ErrMultiEdgeNotAllowed) {
				return nil, fmt.Errorf("matching: %w", err)
			}
		}
	}

	maxFlow, residual, err := flow.Dinic(net, superSource, superSink, opts)
	if err != nil {
		return nil, fmt.Errorf("matching: %w", err)
	}
	if int(math.Round(maxFlow)) < len(a) {
		return nil, fmt.Errorf("matching: %w", rmerr.ErrNoPerfectMatching)
	}

	m := make(map[string]string, 2*len(a))
	for _, u := range a {
		for b := range bSet {
			if residual.HasEdge(b, u) && !residual.HasEdge(u, b) {
				m[u] = b
				m[b] = u

				break
			}
		}
	}

	return m, nil
}

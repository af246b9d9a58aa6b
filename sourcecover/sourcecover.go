package sourcecover

import (
	"fmt"

	"github.com/katalvlaran/rmaug/condense"
	"github.com/katalvlaran/rmaug/digraph"
	"github.com/katalvlaran/rmaug/rmerr"
	"github.com/katalvlaran/rmaug/traverse"
)

// Options configures Cover's verbosity; there is no other tunable, mirroring
// flow.FlowOptions' minimal, purely-internal option surface.
type Options struct {
	Verbose bool
}

// DefaultOptions returns the zero-value Options (verbose logging off).
func DefaultOptions() Options { return Options{} }

// Cover returns a subset of cls.Sources ∪ cls.Isolated such that every
// vertex in critical that is reachable in d from some source is reachable
// from the returned cover. It runs domination pruning first, computes each
// candidate source's coverage via forward traversal, then greedily picks
// sources off a max-heap keyed by remaining coverage until every critical
// vertex is covered.
//
// Complexity: O((|V|+|E|) · |sources|) for the traversal phase, plus
// O(|E| log |V|) for heap maintenance.
func Cover(d digraph.Digraph, critical []int, cls condense.Classification, opts Options) ([]int, error) {
	weakSinks := make(map[int]struct{}, len(critical))
	for _, v := range critical {
		weakSinks[v] = struct{}{}
	}

	deleted := dominationPrune(d, critical)
	for v := range deleted {
		delete(weakSinks, v)
	}

	sources := make([]int, 0, len(cls.Sources)+len(cls.Isolated))
	sources = append(sources, cls.Sources...)
	sources = append(sources, cls.Isolated...)

	children := make(map[int]map[int]struct{}, len(sources))
	fathers := make(map[int]map[int]struct{}, len(weakSinks))
	for _, s := range sources {
		ch := coverageOf(d, s, weakSinks, deleted)
		children[s] = ch
		for sink := range ch {
			if fathers[sink] == nil {
				fathers[sink] = make(map[int]struct{})
			}
			fathers[sink][s] = struct{}{}
		}
	}

	for sink := range weakSinks {
		if len(fathers[sink]) == 0 {
			return nil, fmt.Errorf("sourcecover: %w: vertex %d", rmerr.ErrUnreachableCritical, sink)
		}
	}

	return greedySelect(sources, children, fathers, len(weakSinks), opts)
}

// dominationPrune returns the set of vertices reachable (as proper
// descendants, never including the starting vertex itself) from any
// critical vertex — candidates to exclude from coverage credit because
// another critical vertex already dominates them.
func dominationPrune(d digraph.Digraph, critical []int) map[int]struct{} {
	deleted := make(map[int]struct{})
	for _, v := range critical {
		visited := map[int]struct{}{v: {}}
		traverse.Walk(d, v,
			func(int) traverse.VertexSignal { return traverse.Continue },
			func(neighbor, _ int) traverse.NeighborSignal {
				if _, seen := visited[neighbor]; seen {
					return traverse.Skip
				}
				visited[neighbor] = struct{}{}
				deleted[neighbor] = struct{}{}

				return traverse.Push
			},
		)
	}

	return deleted
}

// coverageOf runs a forward traversal from s, collecting every weak sink
// reached. Traversal does not descend past a deleted vertex, since its
// descendants are already credited to whichever critical vertex dominates
// it.
func coverageOf(d digraph.Digraph, s int, weakSinks, deleted map[int]struct{}) map[int]struct{} {
	children := make(map[int]struct{})
	if _, ok := weakSinks[s]; ok {
		children[s] = struct{}{}
	}

	visited := map[int]struct{}{s: {}}
	traverse.Walk(d, s,
		func(int) traverse.VertexSignal { return traverse.Continue },
		func(neighbor, _ int) traverse.NeighborSignal {
			if _, seen := visited[neighbor]; seen {
				return traverse.Skip
			}
			visited[neighbor] = struct{}{}

			if _, isWeak := weakSinks[neighbor]; isWeak {
				children[neighbor] = struct{}{}
			}
			if _, isDeleted := deleted[neighbor]; isDeleted {
				return traverse.Skip
			}

			return traverse.Push
		},
	)

	return children
}

// greedySelect runs the max-heap-keyed greedy set-cover loop: repeatedly
// pick the source covering the most still-uncovered critical vertices,
// then discount its newly covered sinks from every other source's count.
func greedySelect(
	sources []int,
	children map[int]map[int]struct{},
	fathers map[int]map[int]struct{},
	totalWeakSinks int,
	opts Options,
) ([]int, error) {
	heap := newIndexedMaxHeap()
	for _, s := range sources {
		heap.Push(s, len(children[s]))
	}

	var cover []int
	covered := 0
	for covered < totalWeakSinks {
		if heap.Len() == 0 {
			return nil, rmerr.ErrUnreachableCritical
		}
		s, k := heap.PopMax()
		if k == 0 {
			return nil, rmerr.ErrUnreachableCritical
		}
		cover = append(cover, s)
		if opts.Verbose {
			fmt.Printf("sourcecover: picked source %d covering %d sinks\n", s, k)
		}

		for sink := range children[s] {
			covered++
			for other := range fathers[sink] {
				if other == s {
					continue
				}
				delete(children[other], sink)
				if heap.Contains(other) {
					heap.DecreaseKey(other, len(children[other]))
				}
			}
		}
	}

	return cover, nil
}

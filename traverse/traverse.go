package traverse

import "github.com/katalvlaran/rmaug/digraph"

// VertexSignal is returned by an OnVertex callback.
type VertexSignal int

const (
	// Continue lets the walk proceed to this vertex's neighbors.
	Continue VertexSignal = iota
	// Stop aborts the whole walk immediately; Walk returns this vertex.
	Stop
)

// NeighborSignal is returned by an OnNeighbor callback.
type NeighborSignal int

const (
	// Skip leaves the neighbor off the stack.
	Skip NeighborSignal = iota
	// Push schedules the neighbor to be visited.
	Push
)

// OnVertex is called once per popped vertex, before its neighbors are
// examined.
type OnVertex func(v int) VertexSignal

// OnNeighbor is called once per candidate outgoing neighbor of the vertex
// currently being processed.
type OnNeighbor func(neighbor, from int) NeighborSignal

// Walk performs an explicit-stack walk of h starting at start. It pops a
// vertex, calls onVertex; if onVertex returns Stop, Walk returns that
// vertex and true immediately. Otherwise it calls onNeighbor for every
// out-neighbor (in adjacency insertion order) and pushes those for which
// onNeighbor returns Push.
//
// Walk does not track visited vertices itself — callers own that state
// via onVertex/onNeighbor closures, since the right visited-set lifetime
// (per-call, per-source, or shared across a whole reachability pass)
// differs by use site.
//
// Complexity: O(pushes), bounded by O(V+E) when the caller's callbacks
// enforce a visited set.
func Walk(h digraph.Digraph, start int, onVertex OnVertex, onNeighbor OnNeighbor) (stoppedAt int, stopped bool) {
	stack := []int{start}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if onVertex(v) == Stop {
			return v, true
		}

		for _, u := range h.OutNeighbors(v) {
			if onNeighbor(u, v) == Push {
				stack = append(stack, u)
			}
		}
	}

	return 0, false
}

// Reachable returns the set of vertices reachable from start (inclusive),
// using a fresh visited set. It is the common case of Walk: always
// Continue, push unvisited neighbors.
func Reachable(h digraph.Digraph, start int) map[int]struct{} {
	return ReachableInto(h, start, make(map[int]struct{}))
}

// ReachableInto runs a forward reachability walk from start, adding newly
// discovered vertices to the shared visited set and returning it. Passing
// the same visited map across multiple calls lets the caller compute
// reachability from a whole starting set without revisiting shared
// descendants (used by the driver's CX/XC passes).
func ReachableInto(h digraph.Digraph, start int, visited map[int]struct{}) map[int]struct{} {
	if _, ok := visited[start]; ok {
		return visited
	}
	visited[start] = struct{}{}

	Walk(h, start,
		func(int) VertexSignal { return Continue },
		func(neighbor, _ int) NeighborSignal {
			if _, seen := visited[neighbor]; seen {
				return Skip
			}
			visited[neighbor] = struct{}{}

			return Push
		},
	)

	return visited
}

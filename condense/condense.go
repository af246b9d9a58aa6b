package condense

import "github.com/katalvlaran/rmaug/digraph"

// Condensation is the DAG of strongly connected components of some
// directed graph H: compOf maps each vertex of H to its super-node id,
// members maps each super-node id back to its member vertex ids of H, and
// dag is the super-node adjacency (deduplicated, self-loop free).
type Condensation struct {
	compOf  []int
	members [][]int
	dag     *digraph.Graph
}

// ComponentOf returns the super-node id that vertex v of the original
// graph collapsed into.
func (c *Condensation) ComponentOf(v int) int { return c.compOf[v] }

// Members returns the original-graph vertex ids belonging to super-node s,
// in discovery order. Never empty.
func (c *Condensation) Members(s int) []int { return c.members[s] }

// NumComponents returns the number of super-nodes.
func (c *Condensation) NumComponents() int { return len(c.members) }

// Trivial reports whether super-node s's SCC has exactly one member — the
// "critical edge" witness condition.
func (c *Condensation) Trivial(s int) bool { return len(c.members[s]) == 1 }

// DAG returns the condensation's super-node graph.
func (c *Condensation) DAG() *digraph.Graph { return c.dag }

// Build computes the condensation of h via Kosaraju's algorithm.
//
// Complexity: O(|V| + |E|).
func Build(h digraph.Digraph) *Condensation {
	order := postorder(h)

	n := h.NumVertices()
	compOf := make([]int, n)
	for i := range compOf {
		compOf[i] = -1
	}
	var members [][]int

	for i := len(order) - 1; i >= 0; i-- {
		root := order[i]
		if compOf[root] != -1 {
			continue
		}
		sid := len(members)
		compOf[root] = sid
		group := []int{root}

		stack := []int{root}
		for len(stack) > 0 {
			v := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, u := range h.InNeighbors(v) {
				if compOf[u] != -1 {
					continue
				}
				compOf[u] = sid
				group = append(group, u)
				stack = append(stack, u)
			}
		}
		members = append(members, group)
	}

	dag := digraph.New()
	for range members {
		dag.AddVertex()
	}
	for v := 0; v < n; v++ {
		su := compOf[v]
		for _, u := range h.OutNeighbors(v) {
			sv := compOf[u]
			if su != sv {
				dag.AddArc(su, sv)
			}
		}
	}

	return &Condensation{compOf: compOf, members: members, dag: dag}
}

// postorder returns the vertices of h in DFS finish order, computed with an
// explicit stack of (vertex, next-neighbor-index) frames — never
// recursion.
func postorder(h digraph.Digraph) []int {
	n := h.NumVertices()
	visited := make([]bool, n)
	order := make([]int, 0, n)

	type frame struct {
		v, i int
	}

	for start := 0; start < n; start++ {
		if visited[start] {
			continue
		}
		visited[start] = true
		stack := []frame{{start, 0}}

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			nbrs := h.OutNeighbors(top.v)
			if top.i < len(nbrs) {
				u := nbrs[top.i]
				top.i++
				if !visited[u] {
					visited[u] = true
					stack = append(stack, frame{u, 0})
				}
				continue
			}
			order = append(order, top.v)
			stack = stack[:len(stack)-1]
		}
	}

	return order
}

// IsAcyclic reports whether h has no directed cycle, computed independently
// of Build (used by eswarantarjan to validate an is-condensation input
// without assuming the caller actually built it via Build). Runs an
// iterative white/gray/black DFS to detect a back edge.
func IsAcyclic(h digraph.Digraph) bool {
	const (
		white = 0
		gray  = 1
		black = 2
	)
	n := h.NumVertices()
	color := make([]int, n)

	type frame struct {
		v, i int
	}

	for start := 0; start < n; start++ {
		if color[start] != white {
			continue
		}
		color[start] = gray
		stack := []frame{{start, 0}}

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			nbrs := h.OutNeighbors(top.v)
			if top.i < len(nbrs) {
				u := nbrs[top.i]
				top.i++
				switch color[u] {
				case white:
					color[u] = gray
					stack = append(stack, frame{u, 0})
				case gray:
					return false
				}
				continue
			}
			color[top.v] = black
			stack = stack[:len(stack)-1]
		}
	}

	return true
}

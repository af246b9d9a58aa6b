package digraph

// InducedSubgraph builds the subgraph induced by the vertex ids in keep,
// preserving direction and insertion order. Vertex ids are renumbered
// densely starting at 0 in the order keep was given; the returned map
// translates old ids to new ones, for callers that need to project results
// back (e.g. the driver mapping D̂ arcs back onto the condensation).
//
// Complexity: O(|keep| + sum of degrees of kept vertices).
func (g *Graph) InducedSubgraph(keep []int) (*Graph, map[int]int) {
	oldToNew := make(map[int]int, len(keep))
	sub := &Graph{directed: g.directed}
	for _, old := range keep {
		oldToNew[old] = sub.AddVertex()
	}

	for _, old := range keep {
		newU := oldToNew[old]
		for _, v := range g.OutNeighbors(old) {
			newV, ok := oldToNew[v]
			if !ok {
				continue
			}
			sub.addDirectedArc(newU, newV)
		}
	}

	return sub, oldToNew
}

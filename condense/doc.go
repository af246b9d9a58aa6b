// Package condense computes the condensation of a directed graph: the DAG
// of its strongly connected components, each super-node carrying the set
// of original-graph vertex ids that collapsed into it.
//
// Implementation is Kosaraju's algorithm (two passes over the graph and its
// transpose), chosen over Tarjan's single-pass low-link formulation because
// Kosaraju's two DFS passes are each trivially expressed as the same
// iterative, explicit-stack postorder walk — no low-link bookkeeping to get
// subtly wrong, and no recursion, matching the explicit-stack discipline
// that also governs traverse.Walk. The transpose pass is free: it reuses
// InNeighbors off the same Digraph interface rather than materializing a
// second graph.
//
// The condensation is represented as parallel arrays keyed by
// vertex/super-node id (compOf, members, a plain digraph.Graph for the
// super-node adjacency) rather than as attributes attached to shared
// mutable graph objects.
package condense

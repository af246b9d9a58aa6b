// Package digraph provides a dense-integer-id directed (or undirected)
// graph store, purpose-built for the matching-augmentation pipeline: O(1)
// degree queries, insertion-ordered neighbor iteration, a zero-cost reverse
// view, and induced-subgraph construction.
//
// Unlike github.com/katalvlaran/rmaug/core, which keys vertices by opaque
// strings and is the public surface for bipartite input graphs, digraph.Graph
// keys vertices by dense nonnegative ids assigned on AddVertex — the
// vertex-identity model the augmentation pipeline needs for its internal,
// throwaway structures: witness digraphs, condensations, and the induced
// subgraphs built from them.
//
// # Reverse views
//
// Reversed() returns a Digraph that aliases the same backing arrays with
// in/out swapped; it allocates nothing and never copies adjacency. Both
// Graph and its reverse view satisfy the Digraph interface, so algorithms
// (condense, traverse, sourcecover, eswarantarjan) are written once against
// the interface and run unmodified on either orientation.
package digraph

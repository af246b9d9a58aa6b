// Package sourcecover implements the greedy O(log n) source-cover
// approximation: given a DAG and a designated set of critical vertices, it
// selects a small subset of sources (and isolated vertices) from which
// every reachable critical vertex remains reachable.
//
// Grounded on the original SourceCover.py, with two deliberate corrections
// noted as open questions in the design: domination pruning always runs
// (the pruning-less revision only passes its own tests by accident, on
// inputs with no domination relation among sources), and the greedy loop
// uses a true indexed decrease-key/delete max-heap (heap.go) instead of a
// pairing heap abused via "insert with a sentinel key, then pop".
package sourcecover

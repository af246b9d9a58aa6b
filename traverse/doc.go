// Package traverse implements a single generic, explicit-stack graph walk
// shared by condense, sourcecover, eswarantarjan, and the augment driver.
//
// Grounded on the original implementation's fast_traversal helper (an
// explicit-stack walk taking an on_vertex and an on_neighbor callback), but
// replaces its boolean returns with named two-valued signals and drops the
// source's single hard-coded visited map in favor of one the caller owns —
// the same traversal is reused for plain reachability (DFS), source-cover's
// per-source coverage pass, and CX/XC reachability, each of which needs a
// different visited-set lifetime.
//
// The walk never recurses, so it is safe on graphs with hundreds of
// thousands of vertices where a recursive DFS would blow the call stack —
// see github.com/katalvlaran/rmaug/dfs for the (recursive) style this
// intentionally does not follow.
package traverse

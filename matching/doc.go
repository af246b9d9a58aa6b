// Package matching provides a bipartite perfect-matching oracle: it builds
// a unit-capacity flow network with a synthetic super-source/super-sink
// around the caller's bipartite graph, solves it with flow.Dinic, and
// decodes the matching from the resulting residual graph.
package matching

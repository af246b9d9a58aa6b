// Package rmaug augments a bipartite graph's existing edge set with the
// minimum number of extra edges needed to guarantee a perfect matching
// survives the removal of any single edge.
//
// 🚀 What is rmaug?
//
//	A modern, thread-safe, zero-dependency library built around the
//	Bindewald–Hommelsheim–Mühlenthaler–Schaudt reduction, which recasts
//	matching-robustness augmentation as minimum strong-connectivity
//	augmentation on a derived witness digraph:
//
//	  • Core primitives: build graphs & a unit-capacity matching oracle
//	  • Witness construction: digraph, condensation, source-cover
//	  • Strong-connectivity augmentation: Eswaran–Tarjan completion
//	  • Arc projection: map augmenting arcs back onto graph edges
//
// ✨ Why choose rmaug?
//
//   - Focused        — one problem, solved end to end, nothing bolted on
//   - Rock-solid     — built-in R/W locks in core.Graph ensure thread-safety
//   - Transparent    — every intermediate structure (digraph, condensation,
//     source-cover, completion arcs) is its own inspectable package
//   - Pure Go        — no cgo, no hidden dependencies
//
// Under the hood, the augmentation pipeline is organized as:
//
//	core/          — Graph, Vertex, Edge primitives & thread-safe mutation
//	flow/          — Dinic's max-flow, reused as the matching oracle's engine
//	matching/      — unit-capacity flow network + perfect-matching decode
//	digraph/       — dense-integer-id directed graph with reverse views
//	traverse/      — stack-based, hookable graph traversal
//	condense/      — strongly-connected-component condensation
//	sourcecover/   — minimum source cover with domination pruning
//	eswarantarjan/ — minimum strong-connectivity augmentation
//	augment/       — the top-level driver tying the above together
//	builder/       — deterministic graph/fixture construction helpers
//
// Quick example: four already-matched pairs, no other links, so losing any
// one pairing strands two people with nobody else to pair with. Augment
// reports the minimum extra edges that prevent that:
//
//	g := core.NewGraph()
//	g.AddEdge("0", "1", 0)
//	g.AddEdge("2", "3", 0)
//	g.AddEdge("4", "5", 0)
//	g.AddEdge("6", "7", 0)
//	extra, err := augment.Augment(g, []string{"0", "2", "4", "6"}, nil, augment.DefaultOptions())
//
// See the augment package for the full reduction and its invariants.
//
//	go get github.com/katalvlaran/rmaug
package rmaug

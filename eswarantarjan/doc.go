// Package eswarantarjan implements the Eswaran-Tarjan minimum-cardinality
// strong-connectivity augmentation for a directed acyclic graph, with
// Raghavan's correction to the original closing-arc case analysis.
//
// Grounded on the case-by-case arc synthesis formula of the cited paper;
// the unmarked-source matching phase is a forward DFS built on
// traverse.Walk rather than a recursive descent, matching this module's
// stack-based traversal convention throughout.
package eswarantarjan

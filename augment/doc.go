// Package augment is the top-level driver of the matching-augmentation
// system: it builds the witness digraph D(G,M), condenses it, runs the
// greedy source-cover twice (forward and reverse) to find the induced
// subgraph D̂, calls eswarantarjan.Augment on D̂, and projects the result
// back to edges of G.
package augment

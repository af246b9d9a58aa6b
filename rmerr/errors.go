// Package rmerr defines the shared sentinel errors raised by the matching
// augmentation packages (digraph, condense, sourcecover, eswarantarjan,
// matching, augment). Every package wraps these with %w and call-site
// context; callers check with errors.Is.
package rmerr

import "errors"

var (
	// ErrNotImplementedForInput is returned when augment.Augment receives a
	// directed or multigraph G, or eswarantarjan.Augment receives an
	// undirected or multigraph H.
	ErrNotImplementedForInput = errors.New("rmerr: operation not implemented for this input shape")

	// ErrNotAugmentable is returned by augment.Augment when |A| <= 1.
	ErrNotAugmentable = errors.New("rmerr: bipartition side too small to augment")

	// ErrHasCycle is returned by eswarantarjan.Augment when isCondensation
	// is true and the supplied digraph is not acyclic.
	ErrHasCycle = errors.New("rmerr: expected an acyclic condensation")

	// ErrNoPerfectMatching is returned when a matching oracle fails to
	// produce a perfect matching, or when Options.Validate rejects a
	// caller-supplied matching.
	ErrNoPerfectMatching = errors.New("rmerr: no perfect matching")

	// ErrUnreachableCritical signals a broken internal invariant in
	// sourcecover: a critical vertex has no source reaching it. The driver
	// never triggers this in practice; it exists as a defensive backstop.
	ErrUnreachableCritical = errors.New("rmerr: critical vertex unreachable from any source")
)

// SPDX-License-Identifier: MIT
// Package: lvlath/builder
//
// impl_random_matching_bipartite.go — RandomPerfectMatchingBipartite(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Adds left partition IDs "{leftPrefix}{i}" and right "{rightPrefix}{i}",
//     i = 0..n-1, exactly like CompleteBipartite.
//   • Always emits the identity matching edge L_i–R_i for every i, so the
//     resulting graph is guaranteed to admit the perfect matching
//     {(L_0,R_0), ..., (L_{n-1},R_{n-1})} regardless of the random draws below.
//   • For every off-diagonal pair (i,j), i != j, adds the cross edge L_i–R_j
//     independently with probability extraEdgeProb.
//   • Weight policy and directed-mirroring: identical to CompleteBipartite.
//   • Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   • Time: O(n) vertices + O(n^2) edge trials.
//   • Space: O(n) extra for ID slices.
//
// Determinism:
//   • IDs deterministic via (prefix, index), as in CompleteBipartite.
//   • Edge draws are deterministic for a fixed cfg.rng: i asc over L, inner j
//     asc over R, one rng draw per off-diagonal pair in that order.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/rmaug/core"
)

const methodRandomPerfectMatchingBipartite = "RandomPerfectMatchingBipartite"

// RandomPerfectMatchingBipartite returns a Constructor for a random simple
// bipartite graph on 2n vertices that always contains the identity perfect
// matching L_i–R_i, plus extra cross edges drawn independently with
// probability extraEdgeProb. A nil rnd falls back to cfg.rng, and finally to
// a fixed local source if both are nil, to keep the constructor pure with
// respect to its own inputs.
func RandomPerfectMatchingBipartite(n int, extraEdgeProb float64, rnd *rand.Rand) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPartitionSize {
			return fmt.Errorf("%s: n=%d (must be ≥ %d): %w",
				methodRandomPerfectMatchingBipartite, n, minPartitionSize, ErrTooFewVertices)
		}
		if extraEdgeProb < MinProbability || extraEdgeProb > MaxProbability {
			return fmt.Errorf("%s: extraEdgeProb=%g (must be in [%g,%g]): %w",
				methodRandomPerfectMatchingBipartite, extraEdgeProb, MinProbability, MaxProbability, ErrInvalidProbability)
		}

		draw := rnd
		if draw == nil {
			draw = cfg.rng
		}
		if draw == nil {
			draw = rand.New(rand.NewSource(1))
		}

		lp, rp := cfg.leftPrefix, cfg.rightPrefix

		leftIDs := make([]string, n)
		for i := 0; i < n; i++ {
			id := fmt.Sprintf("%s%d", lp, i)
			leftIDs[i] = id
			if err := g.AddVertex(id); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodRandomPerfectMatchingBipartite, id, err)
			}
		}

		rightIDs := make([]string, n)
		for j := 0; j < n; j++ {
			id := fmt.Sprintf("%s%d", rp, j)
			rightIDs[j] = id
			if err := g.AddVertex(id); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodRandomPerfectMatchingBipartite, id, err)
			}
		}

		useWeight := g.Weighted()
		directed := g.Directed()

		addCross := func(u, v string) error {
			var w int64
			if useWeight {
				w = int64(cfg.weightFn(cfg.rng))
			}
			if _, err := g.AddEdge(u, v, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s, w=%d): %w", methodRandomPerfectMatchingBipartite, u, v, w, err)
			}
			if directed {
				if _, err := g.AddEdge(v, u, w); err != nil {
					return fmt.Errorf("%s: AddEdge(%s→%s, w=%d): %w", methodRandomPerfectMatchingBipartite, v, u, w, err)
				}
			}

			return nil
		}

		for i := 0; i < n; i++ {
			if err := addCross(leftIDs[i], rightIDs[i]); err != nil {
				return err
			}
		}

		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if draw.Float64() >= extraEdgeProb {
					continue
				}
				if err := addCross(leftIDs[i], rightIDs[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

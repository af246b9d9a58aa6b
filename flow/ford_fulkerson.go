package flow

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rmaug/core"
)

// FordFulkerson computes the maximum flow from `source` to `sink` in a
// capacity network by repeatedly finding any augmenting path (via DFS) in
// the residual graph and pushing its bottleneck capacity.
//
// Steps:
//  1. Normalize options and capture context (O(1)).
//  2. Validate that `source` and `sink` exist in `g` (O(1)).
//  3. Build initial capacity map via buildCapMap (O(V + E·log d_max)).
//  4. Repeat until no augmenting path remains:
//     a. Check for cancellation.
//     b. DFS for any source→sink path with positive residual capacity.
//     c. Push the bottleneck capacity along that path, updating capMap.
//  5. Construct the final residual graph via buildCoreResidualFromCapMap.
//
// Complexity: O(E · F) where F is the number of augmentations.
// Memory:     O(V + E) for the residual capacity map.
func FordFulkerson(
	g *core.Graph,
	source, sink string,
	opts FlowOptions,
) (maxFlow int64, residual *core.Graph, err error) {
	opts.normalize()
	ctx := opts.Ctx

	if !g.HasVertex(source) {
		return 0, nil, ErrSourceNotFound
	}
	if !g.HasVertex(sink) {
		return 0, nil, ErrSinkNotFound
	}

	capMap, err := buildCapMap(g, opts)
	if err != nil {
		return 0, nil, err
	}

	var total float64
	for {
		if err = ctx.Err(); err != nil {
			return int64(total), nil, err
		}

		visited := make(map[string]bool, len(capMap))
		path, bottle := dfsAugmentingPath(capMap, source, sink, visited, math.Inf(1), opts.Epsilon)
		if len(path) == 0 || bottle <= opts.Epsilon {
			break
		}
		if opts.Verbose {
			fmt.Printf("FordFulkerson: pushed %g along %v, total %g\n", bottle, path, total+bottle)
		}

		for i := 0; i < len(path)-1; i++ {
			u, v := path[i], path[i+1]
			capMap[u][v] -= bottle
			capMap[v][u] += bottle
		}
		total += bottle
	}

	residual, err = buildCoreResidualFromCapMap(capMap, g, opts)
	if err != nil {
		return 0, nil, err
	}

	return int64(total), residual, nil
}

// dfsAugmentingPath searches depth-first for any source→sink path in capMap
// with positive residual capacity, returning the vertex sequence and its
// bottleneck capacity. Returns a nil path if none exists.
func dfsAugmentingPath(
	capMap map[string]map[string]float64,
	u, sink string,
	visited map[string]bool,
	available, eps float64,
) ([]string, float64) {
	if u == sink {
		return []string{sink}, available
	}
	visited[u] = true
	for v, capUV := range capMap[u] {
		if visited[v] || capUV <= eps {
			continue
		}
		b := available
		if capUV < b {
			b = capUV
		}
		path, flow := dfsAugmentingPath(capMap, v, sink, visited, b, eps)
		if len(path) > 0 {
			return append([]string{u}, path...), flow
		}
	}

	return nil, 0
}

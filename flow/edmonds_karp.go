package flow

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rmaug/core"
)

// EdmondsKarp computes the maximum flow from source→sink using the
// Edmonds–Karp refinement of Ford–Fulkerson: every augmenting path is the
// shortest one (fewest edges) in the residual graph, found via BFS.
//
// Steps:
//  1. Normalize options and capture context (O(1)).
//  2. Validate that `source` and `sink` exist in `g` (O(1)).
//  3. Build initial capacity map via buildCapMap (O(V + E·log d_max)).
//  4. Repeat until no augmenting path remains:
//     a. Check for cancellation.
//     b. BFS for the shortest source→sink path with positive residual capacity.
//     c. Push the bottleneck capacity along that path, updating capMap.
//  5. Construct the final residual graph via buildCoreResidualFromCapMap.
//
// Complexity: O(V · E²) worst case. Memory: O(V + E).
func EdmondsKarp(
	g *core.Graph,
	source, sink string,
	opts FlowOptions,
) (maxFlow float64, residual *core.Graph, err error) {
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

	for {
		if err = ctx.Err(); err != nil {
			return maxFlow, nil, err
		}

		path, bottle := bfsAugmentingPath(capMap, source, sink, opts.Epsilon)
		if len(path) == 0 || bottle <= opts.Epsilon {
			break
		}
		if opts.Verbose {
			fmt.Printf("EdmondsKarp: pushed %g along %v, total %g\n", bottle, path, maxFlow+bottle)
		}

		for i := 0; i < len(path)-1; i++ {
			u, v := path[i], path[i+1]
			capMap[u][v] -= bottle
			capMap[v][u] += bottle
		}
		maxFlow += bottle
	}

	residual, err = buildCoreResidualFromCapMap(capMap, g, opts)
	if err != nil {
		return 0, nil, err
	}

	return maxFlow, residual, nil
}

// bfsAugmentingPath finds the shortest source→sink path in capMap with
// positive residual capacity, returning the vertex sequence and its
// bottleneck capacity. Returns a nil path if sink is unreachable.
func bfsAugmentingPath(
	capMap map[string]map[string]float64,
	source, sink string,
	eps float64,
) ([]string, float64) {
	parent := make(map[string]string, len(capMap))
	bottleneck := map[string]float64{source: math.Inf(1)}
	visited := map[string]bool{source: true}

	queue := []string{source}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		if u == sink {
			break
		}
		for v, capUV := range capMap[u] {
			if visited[v] || capUV <= eps {
				continue
			}
			visited[v] = true
			parent[v] = u
			b := bottleneck[u]
			if capUV < b {
				b = capUV
			}
			bottleneck[v] = b
			queue = append(queue, v)
		}
	}

	if !visited[sink] {
		return nil, 0
	}

	path := []string{sink}
	for cur := sink; cur != source; {
		p := parent[cur]
		path = append([]string{p}, path...)
		cur = p
	}

	return path, bottleneck[sink]
}

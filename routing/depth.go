package routing

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/hroute/multigraph"
)

// MaxDepthViaEdgeName returns the eccentricity of start within the subgraph
// of edges named edgeName: the largest hop distance from start to any vertex
// reachable using only such edges. Edges that lead straight back to start are
// ignored. Returns 0 when nothing is reachable.
//
// Vertices are expanded in increasing hop order from a min-heap and settled
// once, so label subgraphs containing cycles terminate.
//
// Complexity: O((V + E) log V).
func MaxDepthViaEdgeName(g *multigraph.Graph, start, edgeName string) (int, error) {
	if g == nil {
		return 0, ErrNilGraph
	}
	src, ok := g.Index(start)
	if !ok {
		return 0, fmt.Errorf("routing: start: %w", vertexNotFound(start))
	}

	n := g.VertexCount()
	depth := make([]int, n)
	for i := range depth {
		depth[i] = -1
	}
	settled := make([]bool, n)

	pq := make(distPQ, 0, n)
	var seq uint64
	depth[src] = 0
	heap.Push(&pq, distItem{vertex: src, dist: 0, seq: seq})

	maxDepth := 0
	for pq.Len() > 0 {
		item := heap.Pop(&pq).(distItem)
		u := item.vertex
		if settled[u] {
			continue
		}
		settled[u] = true
		if depth[u] > maxDepth {
			maxDepth = depth[u]
		}

		for _, e := range g.OutEdges(u) {
			if e.Detached() || e.To == src || e.Name != edgeName {
				continue
			}
			d := depth[u] + 1
			if depth[e.To] != -1 && depth[e.To] <= d {
				continue
			}
			depth[e.To] = d
			seq++
			heap.Push(&pq, distItem{vertex: e.To, dist: float64(d), seq: seq})
		}
	}

	return maxDepth, nil
}

// BiDirectionalEdgeCount counts mutual edge pairs: for every edge A→B named X
// with a matching edge B→A named X, the pair is counted once.
//
// Complexity: O(Σ deg(v)·deg(to)).
func BiDirectionalEdgeCount(g *multigraph.Graph) int {
	if g == nil {
		return 0
	}
	count := 0
	for i := 0; i < g.VertexCount(); i++ {
		for _, e := range g.OutEdges(i) {
			if e.Detached() {
				continue
			}
			for _, back := range g.OutEdges(e.To) {
				if back.To == i && back.Name == e.Name {
					count++
				}
			}
		}
	}

	// Each pair was seen once from each side.
	return count / 2
}

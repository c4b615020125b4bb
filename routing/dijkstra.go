// Package routing implements heuristic shortest-path search over a
// multigraph.Graph.
//
// The cost of an edge is the linear blend of its two weights,
// Weight0*(1-α) + Weight1*α, for a caller-supplied heuristic weight α in
// [0, 1]. Search is Dijkstra with a min-heap and lazy decrease-key.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E) worst case for heap entries under lazy decrease-key.
//
// Notes on implementation choices:
//
//   - We scan the edges once up front and fail fast on negative blended costs.
//   - Equal-distance heap entries pop in push order.
//   - Predecessors store the source vertex and the local index of the edge
//     actually relaxed, so parallel edges are reported exactly.
package routing

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/hroute/multigraph"
)

// ShortestPath finds the cheapest path from → to under heuristic weight alpha.
//
// Returns:
//   - path: [v0, e0, v1, ..., vk] when found; nil otherwise.
//   - found: false when to is unreachable or when from == to (a path must
//     contain at least one edge).
//   - err: ErrNilGraph, ErrBadAlpha, ErrNegativeWeight, or a wrapped
//     multigraph.ErrVertexNotFound.
func ShortestPath(g *multigraph.Graph, from, to string, alpha float64) (Path, bool, error) {
	return search(g, from, to, alpha, nil)
}

// FilteredShortestPath is ShortestPath that never traverses an edge whose
// name is listed in excluded. An empty exclusion list behaves exactly like
// ShortestPath.
func FilteredShortestPath(g *multigraph.Graph, from, to string, alpha float64, excluded []string) (Path, bool, error) {
	skip := make(map[string]struct{}, len(excluded))
	for _, name := range excluded {
		skip[name] = struct{}{}
	}

	return search(g, from, to, alpha, skip)
}

func search(g *multigraph.Graph, from, to string, alpha float64, skip map[string]struct{}) (Path, bool, error) {
	// 1) Validate inputs.
	if g == nil {
		return nil, false, ErrNilGraph
	}
	if math.IsNaN(alpha) || alpha < 0 || alpha > 1 {
		return nil, false, fmt.Errorf("%w: %v", ErrBadAlpha, alpha)
	}
	src, ok := g.Index(from)
	if !ok {
		return nil, false, fmt.Errorf("routing: source: %w", vertexNotFound(from))
	}
	dst, ok := g.Index(to)
	if !ok {
		return nil, false, fmt.Errorf("routing: destination: %w", vertexNotFound(to))
	}

	// 2) Pre-scan for negative blended weights among edges we may traverse.
	for v := 0; v < g.VertexCount(); v++ {
		for _, e := range g.OutEdges(v) {
			if _, skipped := skip[e.Name]; skipped || e.Detached() {
				continue
			}
			if w := e.Cost(alpha); w < 0 {
				return nil, false, fmt.Errorf("%w: edge %q %s→%s cost=%v",
					ErrNegativeWeight, e.Name, g.Name(v), g.Name(e.To), w)
			}
		}
	}

	if src == dst {
		return nil, false, nil
	}

	// 3) Run.
	r := newRunner(g, alpha, skip)
	r.run(src)

	if math.IsInf(r.dist[dst], 1) {
		return nil, false, nil
	}

	return r.pathTo(src, dst), true, nil
}

// runner holds the mutable state for one search.
type runner struct {
	g       *multigraph.Graph
	alpha   float64
	skip    map[string]struct{}
	dist    []float64
	prev    []int // predecessor vertex, -1 if none
	via     []int // local edge index on prev[v] used to reach v
	visited []bool
	pq      distPQ
	seq     uint64
}

func newRunner(g *multigraph.Graph, alpha float64, skip map[string]struct{}) *runner {
	n := g.VertexCount()
	r := &runner{
		g:       g,
		alpha:   alpha,
		skip:    skip,
		dist:    make([]float64, n),
		prev:    make([]int, n),
		via:     make([]int, n),
		visited: make([]bool, n),
		pq:      make(distPQ, 0, n),
	}
	for i := range r.dist {
		r.dist[i] = math.Inf(1)
		r.prev[i] = -1
		r.via[i] = -1
	}

	return r
}

func (r *runner) push(v int, d float64) {
	heap.Push(&r.pq, distItem{vertex: v, dist: d, seq: r.seq})
	r.seq++
}

// run settles every vertex reachable from src.
func (r *runner) run(src int) {
	r.dist[src] = 0
	r.push(src, 0)

	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(distItem)
		u := item.vertex
		// Skip stale entries.
		if r.visited[u] {
			continue
		}
		r.visited[u] = true
		r.relax(u)
	}
}

// relax tries to improve every neighbor of u through its outgoing edges.
func (r *runner) relax(u int) {
	for j, e := range r.g.OutEdges(u) {
		if e.Detached() {
			continue
		}
		if _, skipped := r.skip[e.Name]; skipped {
			continue
		}
		nd := r.dist[u] + e.Cost(r.alpha)
		// Strict improvement only; on ties the earlier predecessor wins.
		if nd >= r.dist[e.To] {
			continue
		}
		r.dist[e.To] = nd
		r.prev[e.To] = u
		r.via[e.To] = j
		r.push(e.To, nd)
	}
}

// pathTo walks predecessor links from dst back to src and reverses them.
func (r *runner) pathTo(src, dst int) Path {
	var rev []int
	for cur := dst; cur != src; cur = r.prev[cur] {
		rev = append(rev, cur, r.via[cur])
	}
	rev = append(rev, src)

	p := make(Path, len(rev))
	for i, v := range rev {
		p[len(rev)-1-i] = v
	}

	return p
}

func vertexNotFound(name string) error {
	return fmt.Errorf("%w: %q", multigraph.ErrVertexNotFound, name)
}

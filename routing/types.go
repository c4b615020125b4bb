// Package routing defines the path encoding, sentinel errors and priority
// queues used by the heuristic routing algorithms over a multigraph.Graph.
package routing

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hroute/multigraph"
)

// Sentinel errors returned by the routing algorithms.
var (
	// ErrNilGraph indicates that a nil *multigraph.Graph was passed.
	ErrNilGraph = errors.New("routing: graph is nil")

	// ErrBadAlpha indicates a heuristic weight outside [0, 1] (or NaN).
	ErrBadAlpha = errors.New("routing: heuristic weight must be within [0, 1]")

	// ErrNegativeWeight indicates an edge whose blended cost is negative for
	// the requested heuristic weight.
	ErrNegativeWeight = errors.New("routing: negative effective edge weight")
)

// Path is an ordered sequence alternating vertex index and the local index of
// the outgoing edge taken from that vertex:
//
//	[v0, e0, v1, e1, v2, ..., vk]
//
// A non-empty Path always has odd length ≥ 3.
type Path []int

// Vertices returns the vertex indices along p.
func (p Path) Vertices() []int {
	out := make([]int, 0, (len(p)+1)/2)
	for i := 0; i < len(p); i += 2 {
		out = append(out, p[i])
	}

	return out
}

// EdgeIndices returns the local edge indices along p.
func (p Path) EdgeIndices() []int {
	out := make([]int, 0, len(p)/2)
	for i := 1; i < len(p); i += 2 {
		out = append(out, p[i])
	}

	return out
}

// Hops returns the number of edges on p.
func (p Path) Hops() int { return len(p) / 2 }

// Names resolves p against g into vertex names.
// It fails with ErrBadPath if an index does not exist in g.
func (p Path) Names(g *multigraph.Graph) ([]string, error) {
	if err := p.Validate(g); err != nil {
		return nil, err
	}
	names := make([]string, 0, (len(p)+1)/2)
	for _, v := range p.Vertices() {
		names = append(names, g.Name(v))
	}

	return names, nil
}

// Cost sums the blended weights of every edge on p.
func (p Path) Cost(g *multigraph.Graph, alpha float64) (float64, error) {
	if err := p.Validate(g); err != nil {
		return 0, err
	}
	var total float64
	for i := 1; i < len(p); i += 2 {
		total += g.OutEdges(p[i-1])[p[i]].Cost(alpha)
	}

	return total, nil
}

// ErrBadPath indicates a path encoding that does not match the graph.
var ErrBadPath = errors.New("routing: path does not match graph")

// Validate checks that every vertex and edge index of p exists in g and that
// each edge leads to the next vertex in p.
func (p Path) Validate(g *multigraph.Graph) error {
	if g == nil {
		return ErrNilGraph
	}
	if len(p)%2 == 0 {
		return fmt.Errorf("%w: even length %d", ErrBadPath, len(p))
	}
	for i := 0; i < len(p); i += 2 {
		if p[i] < 0 || p[i] >= g.VertexCount() {
			return fmt.Errorf("%w: vertex index %d", ErrBadPath, p[i])
		}
		if i == len(p)-1 {
			break
		}
		edges := g.OutEdges(p[i])
		if p[i+1] < 0 || p[i+1] >= len(edges) {
			return fmt.Errorf("%w: edge index %d on vertex %d", ErrBadPath, p[i+1], p[i])
		}
		if edges[p[i+1]].To != p[i+2] {
			return fmt.Errorf("%w: edge %d of vertex %d does not reach %d", ErrBadPath, p[i+1], p[i], p[i+2])
		}
	}

	return nil
}

// distItem is a heap entry: a vertex and its tentative distance.
// seq records push order so equal distances pop first-in first-out.
type distItem struct {
	vertex int
	dist   float64
	seq    uint64
}

// distPQ is a min-heap of distItem ordered by dist, then seq.
type distPQ []distItem

func (pq distPQ) Len() int { return len(pq) }
func (pq distPQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].seq < pq[j].seq
}
func (pq distPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *distPQ) Push(x interface{}) { *pq = append(*pq, x.(distItem)) }
func (pq *distPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

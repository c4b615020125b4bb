// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex, Edge and Graph declarations, sentinel errors, NewGraph.
// Policy:
//   - Vertex order is insertion order; indices are positions in that order.
//   - Edge order per vertex is insertion order; callers address edges by local index.
//   - No internal locking. Callers serialize mutations against reads.

package multigraph

import (
	"errors"
	"log/slog"
)

// NoVertex is the destination index of an edge whose target vertex was removed
// while a different parallel edge to the same target was cascaded away.
// Such edges are kept in their source's edge list but are never traversed.
const NoVertex = -1

// Sentinel errors for store operations.
var (
	// ErrEmptyName indicates an empty vertex or edge name.
	ErrEmptyName = errors.New("multigraph: name is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("multigraph: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge name.
	ErrEdgeNotFound = errors.New("multigraph: edge not found")

	// ErrDuplicateVertex indicates a vertex with the same name already exists.
	ErrDuplicateVertex = errors.New("multigraph: duplicate vertex")

	// ErrDuplicateEdge indicates the source vertex already has an edge with the
	// same name to the same destination.
	ErrDuplicateEdge = errors.New("multigraph: duplicate edge")
)

// Edge is a directed, named connection carrying two independent weights.
//
// Weight0 and Weight1 are the two extremes of a cost axis; algorithms blend
// them with Lerp. To is the destination vertex index (or NoVertex).
type Edge struct {
	Name    string
	Weight0 float64
	Weight1 float64
	To      int
}

// Cost returns the effective weight of e for the heuristic weight alpha.
func (e Edge) Cost(alpha float64) float64 { return Lerp(e.Weight0, e.Weight1, alpha) }

// Detached reports whether the edge points at a removed vertex.
func (e Edge) Detached() bool { return e.To == NoVertex }

// Vertex is a uniquely named node with an ordered list of outgoing edges.
type Vertex struct {
	Name  string
	Edges []Edge
}

// Graph is an in-memory, directed, named multigraph.
//
// Multiple edges between the same ordered pair are allowed as long as their
// names differ. Vertices are kept in a slice so their positions can be used as
// compact indices in path encodings; index maps name → position.
type Graph struct {
	vertices []*Vertex
	index    map[string]int

	logger *slog.Logger
}

// GraphOption configures a Graph at construction time.
type GraphOption func(g *Graph)

// WithLogger routes debug-level structural change logs to l.
func WithLogger(l *slog.Logger) GraphOption {
	return func(g *Graph) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithCapacity preallocates room for n vertices.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.vertices = make([]*Vertex, 0, n)
			g.index = make(map[string]int, n)
		}
	}
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices: make([]*Vertex, 0),
		index:    make(map[string]int),
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Lerp blends w0 and w1 linearly: alpha=0 yields w0, alpha=1 yields w1.
func Lerp(w0, w1, alpha float64) float64 {
	return w0*(1-alpha) + w1*alpha
}

// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns names in insertion order (the index order).
//
// Index stability:
//   - RemoveVertex shifts every later vertex down by one and rewrites edge
//     destinations accordingly. Indices held outside the graph go stale.
package multigraph

import "fmt"

// InsertVertex appends a new vertex with an empty edge list.
//
// Errors:
//   - ErrEmptyName: if name == "".
//   - ErrDuplicateVertex: if a vertex with the same name exists (case-sensitive).
//
// Complexity: O(1) amortized.
func (g *Graph) InsertVertex(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	if _, exists := g.index[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateVertex, name)
	}

	g.index[name] = len(g.vertices)
	g.vertices = append(g.vertices, &Vertex{Name: name})
	g.logger.Debug("vertex inserted", "vertex", name, "index", g.index[name])

	return nil
}

// RemoveVertex deletes the named vertex and cascades to incoming edges.
//
// Implementation:
//   - Stage 1: Resolve the vertex index (ErrVertexNotFound).
//   - Stage 2: For every vertex, remove the first outgoing edge (in edge order)
//     that targets the removed vertex. At most one edge per source vertex goes.
//   - Stage 3: Remove the vertex from the ordered list and the name index.
//   - Stage 4: Re-index every edge destination: targets above the removed
//     index shift down by one; leftover parallel edges into the removed vertex
//     become NoVertex.
//
// Returns the number of edges removed by the cascade.
//
// Complexity: O(V + E).
func (g *Graph) RemoveVertex(name string) (int, error) {
	idx, ok := g.index[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrVertexNotFound, name)
	}

	removed := 0
	for _, v := range g.vertices {
		for j := range v.Edges {
			if v.Edges[j].To == idx {
				v.Edges = append(v.Edges[:j], v.Edges[j+1:]...)
				removed++
				break
			}
		}
	}

	g.vertices = append(g.vertices[:idx], g.vertices[idx+1:]...)
	delete(g.index, name)

	detached := 0
	for i, v := range g.vertices {
		if i >= idx {
			g.index[v.Name] = i
		}
		for j := range v.Edges {
			switch to := v.Edges[j].To; {
			case to == idx:
				v.Edges[j].To = NoVertex
				detached++
			case to > idx:
				v.Edges[j].To = to - 1
			}
		}
	}

	g.logger.Debug("vertex removed",
		"vertex", name,
		"index", idx,
		"cascaded_edges", removed,
		"detached_edges", detached,
	)

	return removed, nil
}

// HasVertex reports whether a vertex with the given name exists.
func (g *Graph) HasVertex(name string) bool {
	_, ok := g.index[name]
	return ok
}

// Index returns the current index of the named vertex.
func (g *Graph) Index(name string) (int, bool) {
	i, ok := g.index[name]
	return i, ok
}

// Name returns the name of the vertex at index i, or "" if i is out of range.
func (g *Graph) Name(i int) string {
	if i < 0 || i >= len(g.vertices) {
		return ""
	}

	return g.vertices[i].Name
}

// Vertex returns a copy of the vertex at index i.
func (g *Graph) Vertex(i int) (Vertex, bool) {
	if i < 0 || i >= len(g.vertices) {
		return Vertex{}, false
	}
	v := g.vertices[i]

	return Vertex{Name: v.Name, Edges: append([]Edge(nil), v.Edges...)}, true
}

// Vertices returns all vertex names in index order.
func (g *Graph) Vertices() []string {
	names := make([]string, len(g.vertices))
	for i, v := range g.vertices {
		names[i] = v.Name
	}

	return names
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int { return len(g.vertices) }

// OutEdges returns the outgoing edges of vertex i without copying.
// Callers must treat the slice as read-only; it is invalidated by any mutation.
func (g *Graph) OutEdges(i int) []Edge {
	if i < 0 || i >= len(g.vertices) {
		return nil
	}

	return g.vertices[i].Edges
}

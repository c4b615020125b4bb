// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/Edges/EdgeCount.
// Determinism:
//   - Edges(name) returns edges in insertion order (local index order).

package multigraph

import "fmt"

// AddEdge appends a directed edge edgeName from→to carrying weights (w0, w1).
//
// Steps:
//  1. Validate the edge name.
//  2. Resolve both endpoints (ErrVertexNotFound for whichever is missing, from first).
//  3. Reject a second edge with the same name to the same destination (ErrDuplicateEdge).
//  4. Append to the source's edge list.
//
// Complexity: O(deg(from)).
func (g *Graph) AddEdge(edgeName, from, to string, w0, w1 float64) error {
	if edgeName == "" {
		return ErrEmptyName
	}
	fi, ok := g.index[from]
	if !ok {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, from)
	}
	ti, ok := g.index[to]
	if !ok {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, to)
	}

	src := g.vertices[fi]
	for _, e := range src.Edges {
		if e.Name == edgeName && e.To == ti {
			return fmt.Errorf("%w: %q %s→%s", ErrDuplicateEdge, edgeName, from, to)
		}
	}

	src.Edges = append(src.Edges, Edge{Name: edgeName, Weight0: w0, Weight1: w1, To: ti})
	g.logger.Debug("edge added", "edge", edgeName, "from", from, "to", to, "w0", w0, "w1", w1)

	return nil
}

// RemoveEdge deletes the first edge named edgeName on from.
//
// Both endpoints must exist, but the destination of the removed edge is not
// required to be "to": the match is by name on the source vertex only.
//
// Errors:
//   - ErrVertexNotFound: if from or to is absent.
//   - ErrEdgeNotFound: if from has no edge named edgeName.
func (g *Graph) RemoveEdge(edgeName, from, to string) error {
	fi, ok := g.index[from]
	if !ok {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, from)
	}
	if _, ok = g.index[to]; !ok {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, to)
	}

	src := g.vertices[fi]
	for j, e := range src.Edges {
		if e.Name == edgeName {
			src.Edges = append(src.Edges[:j], src.Edges[j+1:]...)
			g.logger.Debug("edge removed", "edge", edgeName, "from", from)
			return nil
		}
	}

	return fmt.Errorf("%w: %q on %q", ErrEdgeNotFound, edgeName, from)
}

// Edges returns a copy of the outgoing edges of the named vertex.
func (g *Graph) Edges(name string) ([]Edge, error) {
	i, ok := g.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, name)
	}

	return append([]Edge(nil), g.vertices[i].Edges...), nil
}

// EdgeCount returns the total number of directed edges, detached ones included.
func (g *Graph) EdgeCount() int {
	n := 0
	for _, v := range g.vertices {
		n += len(v.Edges)
	}

	return n
}

// EdgeNames returns the distinct edge names in first-seen order.
func (g *Graph) EdgeNames() []string {
	seen := make(map[string]struct{})
	var names []string
	for _, v := range g.vertices {
		for _, e := range v.Edges {
			if _, ok := seen[e.Name]; ok {
				continue
			}
			seen[e.Name] = struct{}{}
			names = append(names, e.Name)
		}
	}

	return names
}

// Clone returns a deep copy of the graph sharing only the logger.
func (g *Graph) Clone() *Graph {
	c := &Graph{
		vertices: make([]*Vertex, len(g.vertices)),
		index:    make(map[string]int, len(g.index)),
		logger:   g.logger,
	}
	for i, v := range g.vertices {
		c.vertices[i] = &Vertex{Name: v.Name, Edges: append([]Edge(nil), v.Edges...)}
		c.index[v.Name] = i
	}

	return c
}

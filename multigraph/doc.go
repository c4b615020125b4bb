// Package multigraph provides a directed, named, weighted multigraph store.
//
// Each vertex has a unique, case-sensitive name and an ordered list of
// outgoing edges. Each edge carries a name, a destination and two
// independent weights (Weight0, Weight1) forming the two extremes of a cost
// axis; routing code blends them with Lerp.
//
// Several edges may connect the same ordered pair of vertices as long as their
// names differ: (edge name, destination) is unique per source vertex. A
// logical two-way connection is two directed edges.
//
// Indices:
//
//	Vertices are stored in insertion order and addressed by position.
//	Edges are addressed by their local position within the source vertex.
//	Path encodings ([v0, e0, v1, e1, ..., vk]) use these indices, so they are
//	only meaningful for the graph state they were computed against.
//
// Core methods:
//
//	InsertVertex(name) error                          // O(1)
//	RemoveVertex(name) (cascaded int, err error)      // O(V+E)
//	AddEdge(edge, from, to, w0, w1) error             // O(deg(from))
//	RemoveEdge(edge, from, to) error                  // O(deg(from))
//
// Cascading removal:
//
//	RemoveVertex deletes, for every other vertex, only the first outgoing edge
//	(in edge order) that targets the removed vertex. Any further parallel edge
//	into the removed vertex is kept but detached (Edge.To == NoVertex) and is
//	ignored by traversals.
//
// Errors:
//
//	ErrEmptyName        - empty vertex or edge name.
//	ErrVertexNotFound   - referenced vertex is absent.
//	ErrEdgeNotFound     - referenced edge name is absent on the source vertex.
//	ErrDuplicateVertex  - vertex name already present.
//	ErrDuplicateEdge    - (edge name, destination) already present on the source.
//
// Concurrency:
//
//	A Graph does no locking. Callers must serialize mutating calls against
//	each other and against readers.
package multigraph

// SPDX-License-Identifier: MIT
// Package multigraph_test verifies Graph lifecycle and query contracts.

package multigraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/hroute/multigraph"
)

// buildChain constructs A -X-> B -Y-> C with unit weights.
func buildChain(t *testing.T) *multigraph.Graph {
	t.Helper()
	g := multigraph.NewGraph()
	for _, v := range []string{"A", "B", "C"} {
		require.NoError(t, g.InsertVertex(v))
	}
	require.NoError(t, g.AddEdge("X", "A", "B", 1, 1))
	require.NoError(t, g.AddEdge("Y", "B", "C", 1, 1))

	return g
}

type GraphSuite struct {
	suite.Suite
}

func (s *GraphSuite) TestInsertVertexDuplicate() {
	g := multigraph.NewGraph()
	s.Require().NoError(g.InsertVertex("A"))

	err := g.InsertVertex("A")
	s.Require().ErrorIs(err, multigraph.ErrDuplicateVertex)
	s.Require().Equal(1, g.VertexCount(), "duplicate insert must not change vertex count")

	// Names are case-sensitive.
	s.Require().NoError(g.InsertVertex("a"))
	s.Require().Equal([]string{"A", "a"}, g.Vertices())
}

func (s *GraphSuite) TestInsertVertexEmptyName() {
	g := multigraph.NewGraph()
	s.Require().ErrorIs(g.InsertVertex(""), multigraph.ErrEmptyName)
}

func (s *GraphSuite) TestAddEdgeErrors() {
	g := buildChain(s.T())

	s.Require().ErrorIs(g.AddEdge("Z", "Q", "A", 1, 1), multigraph.ErrVertexNotFound)
	s.Require().ErrorIs(g.AddEdge("Z", "A", "Q", 1, 1), multigraph.ErrVertexNotFound)
	s.Require().ErrorIs(g.AddEdge("X", "A", "B", 2, 2), multigraph.ErrDuplicateEdge)
	s.Require().ErrorIs(g.AddEdge("", "A", "B", 2, 2), multigraph.ErrEmptyName)

	// Same name to a different destination is a different edge.
	s.Require().NoError(g.AddEdge("X", "A", "C", 2, 2))
	// Different name to the same destination is a parallel edge.
	s.Require().NoError(g.AddEdge("W", "A", "B", 3, 4))

	edges, err := g.Edges("A")
	s.Require().NoError(err)
	s.Require().Len(edges, 3)
	s.Require().Equal(multigraph.Edge{Name: "W", Weight0: 3, Weight1: 4, To: 1}, edges[2])
}

func (s *GraphSuite) TestRemoveEdge() {
	g := buildChain(s.T())
	s.Require().NoError(g.AddEdge("X", "A", "C", 5, 5))

	s.Require().ErrorIs(g.RemoveEdge("X", "Q", "B"), multigraph.ErrVertexNotFound)
	s.Require().ErrorIs(g.RemoveEdge("X", "A", "Q"), multigraph.ErrVertexNotFound)
	s.Require().ErrorIs(g.RemoveEdge("Nope", "A", "B"), multigraph.ErrEdgeNotFound)

	// The destination only has to exist; the first edge named X goes (A→B).
	s.Require().NoError(g.RemoveEdge("X", "A", "C"))
	edges, err := g.Edges("A")
	s.Require().NoError(err)
	s.Require().Len(edges, 1)
	s.Require().Equal(2, edges[0].To)
}

func (s *GraphSuite) TestRemoveVertexCascade() {
	g := buildChain(s.T())
	s.Require().NoError(g.InsertVertex("D"))
	s.Require().NoError(g.AddEdge("Z", "D", "B", 1, 1))
	s.Require().NoError(g.AddEdge("Q", "D", "C", 1, 1))
	before := g.EdgeCount()

	_, err := g.RemoveVertex("missing")
	s.Require().ErrorIs(err, multigraph.ErrVertexNotFound)

	cascaded, err := g.RemoveVertex("B")
	s.Require().NoError(err)
	s.Require().Equal(2, cascaded, "A→B and D→B are cascaded")
	s.Require().Equal(before-cascaded-1, g.EdgeCount(), "B's own edge leaves with it")
	s.Require().False(g.HasVertex("B"))
	s.Require().Equal([]string{"A", "C", "D"}, g.Vertices())

	// Later vertices shift down and edge destinations follow.
	idx, ok := g.Index("C")
	s.Require().True(ok)
	s.Require().Equal(1, idx)
	edges, err := g.Edges("D")
	s.Require().NoError(err)
	s.Require().Equal([]multigraph.Edge{{Name: "Q", Weight0: 1, Weight1: 1, To: 1}}, edges)
}

func (s *GraphSuite) TestRemoveVertexFirstMatchOnly() {
	g := multigraph.NewGraph()
	for _, v := range []string{"A", "B"} {
		s.Require().NoError(g.InsertVertex(v))
	}
	s.Require().NoError(g.AddEdge("P", "A", "B", 1, 1))
	s.Require().NoError(g.AddEdge("Q", "A", "B", 2, 2))

	cascaded, err := g.RemoveVertex("B")
	s.Require().NoError(err)
	s.Require().Equal(1, cascaded)

	edges, err := g.Edges("A")
	s.Require().NoError(err)
	s.Require().Len(edges, 1)
	s.Require().Equal("Q", edges[0].Name)
	s.Require().True(edges[0].Detached())
}

func (s *GraphSuite) TestCloneIsDeep() {
	g := buildChain(s.T())
	c := g.Clone()
	s.Require().NoError(c.AddEdge("Z", "C", "A", 1, 1))
	s.Require().Equal(2, g.EdgeCount())
	s.Require().Equal(3, c.EdgeCount())
	s.Require().Equal([]string{"X", "Y", "Z"}, c.EdgeNames())
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}

func TestLerp(t *testing.T) {
	require.InDelta(t, 1.0, multigraph.Lerp(1, 9, 0), 1e-12)
	require.InDelta(t, 9.0, multigraph.Lerp(1, 9, 1), 1e-12)
	require.InDelta(t, 5.0, multigraph.Lerp(1, 9, 0.5), 1e-12)
	require.InDelta(t, 3.0, multigraph.Edge{Weight0: 1, Weight1: 9}.Cost(0.25), 1e-12)
}

func TestVertexAccessors(t *testing.T) {
	g := buildChain(t)

	v, ok := g.Vertex(0)
	require.True(t, ok)
	require.Equal(t, "A", v.Name)
	v.Edges[0].Name = "mutated"
	edges, err := g.Edges("A")
	require.NoError(t, err)
	require.Equal(t, "X", edges[0].Name, "Vertex must return a copy")

	_, ok = g.Vertex(7)
	require.False(t, ok)
	require.Equal(t, "", g.Name(-1))
	require.Equal(t, "C", g.Name(2))
	require.Nil(t, g.OutEdges(3))

	_, err = g.Edges("nope")
	require.ErrorIs(t, err, multigraph.ErrVertexNotFound)
}

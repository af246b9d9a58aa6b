package digraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/rmaug/digraph"
)

type DigraphSuite struct {
	suite.Suite
}

func (s *DigraphSuite) TestAddArcIdempotent() {
	g := digraph.New()
	a := g.AddVertex()
	b := g.AddVertex()

	g.AddArc(a, b)
	g.AddArc(a, b)
	g.AddArc(a, b)

	require.Equal(s.T(), 1, g.OutDegree(a))
	require.Equal(s.T(), 1, g.InDegree(b))
	require.Equal(s.T(), []int{b}, g.OutNeighbors(a))
}

func (s *DigraphSuite) TestUndirectedMirrorsArcs() {
	g := digraph.NewUndirected()
	a := g.AddVertex()
	b := g.AddVertex()

	g.AddArc(a, b)

	require.Equal(s.T(), 1, g.OutDegree(a))
	require.Equal(s.T(), 1, g.OutDegree(b))
	require.Contains(s.T(), g.OutNeighbors(b), a)
}

func (s *DigraphSuite) TestUndirectedSelfLoopNotDuplicated() {
	g := digraph.NewUndirected()
	a := g.AddVertex()

	g.AddArc(a, a)

	require.Equal(s.T(), 1, g.OutDegree(a))
}

func (s *DigraphSuite) TestReversedViewSwapsDirection() {
	g := digraph.New()
	a := g.AddVertex()
	b := g.AddVertex()
	g.AddArc(a, b)

	rev := g.Reversed()
	require.Equal(s.T(), []int{a}, rev.OutNeighbors(b))
	require.Equal(s.T(), 0, rev.OutDegree(a))
	require.Equal(s.T(), 1, rev.InDegree(a))
}

func (s *DigraphSuite) TestInducedSubgraphRenumbersDensely() {
	g := digraph.New()
	v := make([]int, 5)
	for i := range v {
		v[i] = g.AddVertex()
	}
	// 0->1->2->3->4
	for i := 0; i < 4; i++ {
		g.AddArc(v[i], v[i+1])
	}

	sub, mapping := g.InducedSubgraph([]int{v[1], v[2], v[3]})
	require.Equal(s.T(), 3, sub.NumVertices())
	require.Equal(s.T(), 0, mapping[v[1]])
	require.Equal(s.T(), 1, mapping[v[2]])
	require.Equal(s.T(), 2, mapping[v[3]])
	require.Equal(s.T(), []int{mapping[v[2]]}, sub.OutNeighbors(mapping[v[1]]))
	// v[0] and v[4] were dropped, so v[1] has no in-neighbor and v[3] no out-neighbor.
	require.Equal(s.T(), 0, sub.InDegree(mapping[v[1]]))
	require.Equal(s.T(), 0, sub.OutDegree(mapping[v[3]]))
}

func (s *DigraphSuite) TestEnsureVertexGrowsStore() {
	g := digraph.New()
	g.EnsureVertex(3)
	require.Equal(s.T(), 4, g.NumVertices())
}

func TestDigraphSuite(t *testing.T) {
	suite.Run(t, new(DigraphSuite))
}

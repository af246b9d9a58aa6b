package condense_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/rmaug/condense"
	"github.com/katalvlaran/rmaug/digraph"
)

type CondenseSuite struct {
	suite.Suite
}

// TestTwoCyclesBridged builds {0<->1} and {2<->3} with a bridge 1->2,
// expecting exactly two nontrivial super-nodes and one DAG arc between them.
func (s *CondenseSuite) TestTwoCyclesBridged() {
	g := digraph.New()
	v := make([]int, 4)
	for i := range v {
		v[i] = g.AddVertex()
	}
	g.AddArc(v[0], v[1])
	g.AddArc(v[1], v[0])
	g.AddArc(v[2], v[3])
	g.AddArc(v[3], v[2])
	g.AddArc(v[1], v[2])

	c := condense.Build(g)
	require.Equal(s.T(), 2, c.NumComponents())
	require.False(s.T(), c.Trivial(c.ComponentOf(v[0])))
	require.False(s.T(), c.Trivial(c.ComponentOf(v[2])))
	require.Equal(s.T(), c.ComponentOf(v[0]), c.ComponentOf(v[1]))
	require.Equal(s.T(), c.ComponentOf(v[2]), c.ComponentOf(v[3]))
	require.NotEqual(s.T(), c.ComponentOf(v[0]), c.ComponentOf(v[2]))
}

func (s *CondenseSuite) TestChainIsAllTrivialSuperNodes() {
	g := digraph.New()
	v := make([]int, 5)
	for i := range v {
		v[i] = g.AddVertex()
	}
	for i := 0; i < 4; i++ {
		g.AddArc(v[i], v[i+1])
	}

	c := condense.Build(g)
	require.Equal(s.T(), 5, c.NumComponents())
	for s2 := 0; s2 < c.NumComponents(); s2++ {
		require.True(s.T(), c.Trivial(s2))
	}

	cls := condense.Classify(c.DAG())
	require.Len(s.T(), cls.Sources, 1)
	require.Len(s.T(), cls.Sinks, 1)
	require.Empty(s.T(), cls.Isolated)
}

func (s *CondenseSuite) TestIsAcyclicDetectsCycle() {
	g := digraph.New()
	a, b, c := g.AddVertex(), g.AddVertex(), g.AddVertex()
	g.AddArc(a, b)
	g.AddArc(b, c)
	g.AddArc(c, a)

	require.False(s.T(), condense.IsAcyclic(g))
}

func (s *CondenseSuite) TestIsAcyclicAcceptsDAG() {
	g := digraph.New()
	a, b, c := g.AddVertex(), g.AddVertex(), g.AddVertex()
	g.AddArc(a, b)
	g.AddArc(b, c)

	require.True(s.T(), condense.IsAcyclic(g))
}

func (s *CondenseSuite) TestTrivialSetX() {
	g := digraph.New()
	v := make([]int, 3)
	for i := range v {
		v[i] = g.AddVertex()
	}
	g.AddArc(v[0], v[1])
	g.AddArc(v[1], v[0])
	g.AddArc(v[1], v[2])

	c := condense.Build(g)
	x := condense.Trivial(c)
	require.Len(s.T(), x, 1)
	require.Equal(s.T(), c.ComponentOf(v[2]), x[0])
}

func TestCondenseSuite(t *testing.T) {
	suite.Run(t, new(CondenseSuite))
}

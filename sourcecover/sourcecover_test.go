package sourcecover_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/rmaug/condense"
	"github.com/katalvlaran/rmaug/digraph"
	"github.com/katalvlaran/rmaug/rmerr"
	"github.com/katalvlaran/rmaug/sourcecover"
)

type SourceCoverSuite struct {
	suite.Suite
}

// TestHighestCoverageSourcePreferred gives one source reach over every
// critical vertex while three decoys each reach only one, so the greedy
// max-heap loop must pop the high-coverage source first and finish in a
// single pick.
func (s *SourceCoverSuite) TestHighestCoverageSourcePreferred() {
	g := digraph.New()
	c1, c2, c3 := g.AddVertex(), g.AddVertex(), g.AddVertex()
	dominator := g.AddVertex()
	g.AddArc(dominator, c1)
	g.AddArc(dominator, c2)
	g.AddArc(dominator, c3)

	for _, c := range []int{c1, c2, c3} {
		decoy := g.AddVertex()
		g.AddArc(decoy, c)
	}

	cls := condense.Classify(g)
	cover, err := sourcecover.Cover(g, []int{c1, c2, c3}, cls, sourcecover.DefaultOptions())
	require.NoError(s.T(), err)
	require.Equal(s.T(), []int{dominator}, cover)
}

// TestGreedyLoopRequiresSecondPick checks the decrease-key path: two
// sources partially overlap, so covering the first leaves one critical
// vertex outstanding and the heap must surface the remaining source next.
func (s *SourceCoverSuite) TestGreedyLoopRequiresSecondPick() {
	g := digraph.New()
	c1, c2, c3 := g.AddVertex(), g.AddVertex(), g.AddVertex()
	left, right := g.AddVertex(), g.AddVertex()
	g.AddArc(left, c1)
	g.AddArc(left, c2)
	g.AddArc(right, c2)
	g.AddArc(right, c3)

	cls := condense.Classify(g)
	cover, err := sourcecover.Cover(g, []int{c1, c2, c3}, cls, sourcecover.DefaultOptions())
	require.NoError(s.T(), err)
	require.Len(s.T(), cover, 2)
	require.ElementsMatch(s.T(), []int{left, right}, cover)
}

// TestDominatedCriticalNeedsNoIndependentFather builds c1 -> c2 where c2 is
// reachable only as a descendant of c1: domination pruning must drop c2 out
// of the set requiring its own father, so a single source reaching only c1
// still suffices.
func (s *SourceCoverSuite) TestDominatedCriticalNeedsNoIndependentFather() {
	g := digraph.New()
	c1, c2 := g.AddVertex(), g.AddVertex()
	source := g.AddVertex()
	g.AddArc(c1, c2)
	g.AddArc(source, c1)

	cls := condense.Classify(g)
	cover, err := sourcecover.Cover(g, []int{c1, c2}, cls, sourcecover.DefaultOptions())
	require.NoError(s.T(), err)
	require.Equal(s.T(), []int{source}, cover)
}

func (s *SourceCoverSuite) TestTwoIndependentCriticalVerticesNeedTwoSources() {
	g := digraph.New()
	s1, c1 := g.AddVertex(), g.AddVertex()
	s2, c2 := g.AddVertex(), g.AddVertex()
	g.AddArc(s1, c1)
	g.AddArc(s2, c2)

	cls := condense.Classify(g)
	cover, err := sourcecover.Cover(g, []int{c1, c2}, cls, sourcecover.DefaultOptions())
	require.NoError(s.T(), err)
	require.Len(s.T(), cover, 2)
}

func (s *SourceCoverSuite) TestIsolatedCriticalVertexCoversItself() {
	g := digraph.New()
	iso := g.AddVertex()
	other := g.AddVertex()
	g.AddVertex() // unrelated source with no bearing on iso's coverage
	_ = other

	cls := condense.Classify(g)
	cover, err := sourcecover.Cover(g, []int{iso}, cls, sourcecover.DefaultOptions())
	require.NoError(s.T(), err)
	require.Equal(s.T(), []int{iso}, cover)
}

// TestManyCompetingSourcesStillPickOne builds 2k decoy sources that each
// reach the single critical vertex plus a junk vertex of their own; since
// coverage only counts critical vertices, no decoy's irrelevant junk reach
// should tempt the greedy loop into picking more than the one source the
// problem actually requires.
func (s *SourceCoverSuite) TestManyCompetingSourcesStillPickOne() {
	const k = 25
	g := digraph.New()
	c := g.AddVertex()
	for i := 0; i < 2*k; i++ {
		src := g.AddVertex()
		junk := g.AddVertex()
		g.AddArc(src, c)
		g.AddArc(src, junk)
	}

	cls := condense.Classify(g)
	cover, err := sourcecover.Cover(g, []int{c}, cls, sourcecover.DefaultOptions())
	require.NoError(s.T(), err)
	require.Len(s.T(), cover, 1)
}

func (s *SourceCoverSuite) TestUnreachableCriticalIsReported() {
	g := digraph.New()
	source := g.AddVertex()
	unreachableCritical := g.AddVertex()
	sink := g.AddVertex()
	g.AddArc(source, sink)

	cls := condense.Classify(g)
	_, err := sourcecover.Cover(g, []int{unreachableCritical}, cls, sourcecover.DefaultOptions())
	require.ErrorIs(s.T(), err, rmerr.ErrUnreachableCritical)
}

func TestSourceCoverSuite(t *testing.T) {
	suite.Run(t, new(SourceCoverSuite))
}

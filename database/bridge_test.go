package database

import (
	"testing"

	"github.com/mikenye/geomdb/fact"
	"github.com/mikenye/geomdb/predicate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredicateToFact_InternsLines(t *testing.T) {
	d := New()

	f := lift(t, d, "para(A,B,C,D)")
	assert.True(t, f.Eq(fact.Para("line1", "line2")),
		"lifting should mint keys for unseen point pairs")
	require.Len(t, d.Lines(), 2, "the lift interns both lines")

	again := lift(t, d, "para(A,B,C,D)")
	assert.True(t, f.Eq(again), "re-lifting finds the interned keys")
	assert.Len(t, d.Lines(), 2)
}

func TestPredicateToFact_ReusesExtendedLine(t *testing.T) {
	d := New()
	addPredicates(t, d, "coll(A,B,E)")

	f := lift(t, d, "perp(A,E,C,D)")
	assert.True(t, f.Eq(fact.Perp("line1", "line2")),
		"any two points of an existing line resolve to its key")
}

func TestPredicateToFact_Midp(t *testing.T) {
	d := New()
	f := lift(t, d, "midp(M,B,A)")
	assert.True(t, f.Eq(fact.Midp("M", "A", "B")))
}

func TestFactToPredicates_Expansion(t *testing.T) {
	d := New()
	addPredicates(t, d, "para(A,B,C,D)", "coll(A,B,E)")

	f := lift(t, d, "para(A,B,C,D)")
	predicates := d.FactToPredicates(f)

	// Line {A,B,E} yields three point pairs, line {C,D} one.
	require.Len(t, predicates, 3)
	expected := []predicate.Predicate{
		predicate.MustNew(fact.KindPara, "A", "B", "C", "D"),
		predicate.MustNew(fact.KindPara, "A", "E", "C", "D"),
		predicate.MustNew(fact.KindPara, "B", "E", "C", "D"),
	}
	for i, p := range expected {
		assert.True(t, p.Eq(predicates[i]), "expected %s at %d, got %s", p, i, predicates[i])
	}
}

func TestFactToPredicates_Cong(t *testing.T) {
	d := New()
	f := fact.Cong(fact.NewSegment("A", "B"), fact.NewSegment("C", "D"))
	predicates := d.FactToPredicates(f)

	require.Len(t, predicates, 4)
	for _, p := range predicates {
		lifted, err := d.PredicateToFact(p)
		require.NoError(t, err)
		assert.True(t, f.Eq(lifted), "%s should lift back to the same fact", p)
	}
}

func TestFactToPredicates_Midp(t *testing.T) {
	d := New()
	f := fact.Midp("M", "A", "B")
	predicates := d.FactToPredicates(f)

	require.Len(t, predicates, 2)
	assert.True(t, predicates[0].Eq(predicate.MustNew(fact.KindMidp, "M", "A", "B")))
	assert.True(t, predicates[1].Eq(predicate.MustNew(fact.KindMidp, "M", "B", "A")))
}

func TestFactToPredicates_EqAngleRoundTrip(t *testing.T) {
	d := New()
	addPredicates(t, d, "eqangle(A,B,C,D,E,F,G,H)")

	f := lift(t, d, "eqangle(A,B,C,D,E,F,G,H)")
	predicates := d.FactToPredicates(f)

	// Four symmetry representatives over four two-point lines.
	require.Len(t, predicates, 4)
	for _, p := range predicates {
		lifted, err := d.PredicateToFact(p)
		require.NoError(t, err)
		assert.True(t, d.ContainsFact(lifted),
			"%s should lift to a fact the database contains", p)
	}
}

func TestFactToPredicates_Identity(t *testing.T) {
	d := New()

	tests := map[string]fact.Fact{
		"coll":   fact.Coll("A", "B", "C"),
		"cyclic": fact.Cyclic("A", "B", "C", "D"),
		"circle": fact.OnCircle("O", "A", "B", "C"),
		"simtri": fact.SimTri(fact.NewTriangle("A", "B", "C"), fact.NewTriangle("P", "Q", "R")),
	}
	for name, f := range tests {
		t.Run(name, func(t *testing.T) {
			predicates := d.FactToPredicates(f)
			require.Len(t, predicates, 1)
			lifted, err := d.PredicateToFact(predicates[0])
			require.NoError(t, err)
			assert.True(t, f.Eq(lifted))
		})
	}
}

func TestFactToPredicates_DeadKeyExpandsToNothing(t *testing.T) {
	d := New()
	assert.Empty(t, d.FactToPredicates(fact.Para("line1", "line2")),
		"keys without live classes expand to nothing")
}

package database

import (
	"testing"

	"github.com/mikenye/geomdb/fact"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatabase_EqAngleSymmetries(t *testing.T) {
	d := New()
	addPredicates(t, d, "eqangle(A,B,C,D,E,F,G,H)")
	require.Len(t, d.EqAngleClasses(), 1)

	// The four symmetry representatives of the stored fact.
	contained := []string{
		"eqangle(A,B,C,D,E,F,G,H)",
		"eqangle(C,D,A,B,G,H,E,F)",
		"eqangle(A,B,E,F,C,D,G,H)",
		"eqangle(E,F,A,B,G,H,C,D)",
	}
	for _, text := range contained {
		assert.True(t, containsPred(t, d, text), "%s should be contained by symmetry", text)
	}

	notContained := []string{
		"eqangle(C,D,A,B,E,F,G,H)",
		"eqangle(A,B,C,D,G,H,E,F)",
	}
	for _, text := range notContained {
		assert.False(t, containsPred(t, d, text), "%s is not in the symmetry orbit", text)
	}
}

func TestDatabase_EqAngleClassesGrow(t *testing.T) {
	d := New()
	addPredicates(t, d,
		"eqangle(A,B,C,D,E,F,G,H)",
		"eqangle(E,F,G,H,P,Q,U,V)",
	)
	require.Len(t, d.EqAngleClasses(), 1,
		"a shared angle pulls the new pair into the existing class")
	assert.True(t, containsPred(t, d, "eqangle(A,B,C,D,P,Q,U,V)"),
		"equality is transitive through the class")

	addPredicates(t, d, "eqangle(I,J,K,L,M,N,R,S)")
	assert.Len(t, d.EqAngleClasses(), 2, "unrelated angles start a fresh class")
}

func TestDatabase_EqRatioSymmetries(t *testing.T) {
	d := New()
	addPredicates(t, d, "eqratio(A,B,C,D,E,F,G,H)")

	assert.True(t, containsPred(t, d, "eqratio(C,D,A,B,G,H,E,F)"),
		"inverting both ratios preserves the fact")
	assert.True(t, containsPred(t, d, "eqratio(A,B,E,F,C,D,G,H)"),
		"the diagonal swap preserves the fact")
	assert.False(t, containsPred(t, d, "eqratio(C,D,A,B,E,F,G,H)"),
		"inverting only one ratio does not")
}

func TestAngleSymmetries(t *testing.T) {
	reps := angleSymmetries("l1", "l2", "l3", "l4")
	expected := [4][2]fact.Angle{
		{fact.NewAngle("l1", "l2"), fact.NewAngle("l3", "l4")},
		{fact.NewAngle("l2", "l1"), fact.NewAngle("l4", "l3")},
		{fact.NewAngle("l1", "l3"), fact.NewAngle("l2", "l4")},
		{fact.NewAngle("l3", "l1"), fact.NewAngle("l4", "l2")},
	}
	assert.Equal(t, expected, reps)
}

func TestDatabase_AngleIndexFollowsRewrites(t *testing.T) {
	d := New()
	addPredicates(t, d,
		"coll(A,B,X)",
		"coll(C,D,X)",
		"eqangle(A,B,P,Q,C,D,U,V)",
		"coll(A,B,C,D)",
	)
	checkIntegrity(t, d)

	// Both angle operands now start from the merged line.
	assert.True(t, containsPred(t, d, "eqangle(A,B,P,Q,C,D,U,V)"))
	assert.True(t, containsPred(t, d, "eqangle(C,D,P,Q,A,B,U,V)"),
		"after the merge the two first operands name one line")
}

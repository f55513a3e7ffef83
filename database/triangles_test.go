package database

import (
	"testing"

	"github.com/mikenye/geomdb/fact"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tri(a, b, c fact.Point) fact.Triangle {
	return fact.NewTriangle(a, b, c)
}

func TestDatabase_SimTriAlignsIncomingPair(t *testing.T) {
	d := New()
	require.NoError(t, d.AddFact(fact.SimTri(tri("A", "B", "C"), tri("P", "Q", "R"))))

	// The same similarity, both triangles relabelled the same way.
	require.NoError(t, d.AddFact(fact.SimTri(tri("Q", "P", "R"), tri("B", "A", "C"))))

	classes := d.SimilarTriangleClasses()
	require.Len(t, classes, 1)
	assert.Equal(t, []fact.Triangle{tri("A", "B", "C"), tri("P", "Q", "R")}, classes[0],
		"the relabelled pair aligns onto the stored correspondence")

	// Any common relabelling of a stored pair is contained...
	assert.True(t, d.ContainsFact(fact.SimTri(tri("Q", "P", "R"), tri("B", "A", "C"))))
	assert.True(t, d.ContainsFact(fact.SimTri(tri("B", "C", "A"), tri("Q", "R", "P"))))
	assert.True(t, d.ContainsFact(fact.SimTri(tri("P", "Q", "R"), tri("A", "B", "C"))))

	// ...but a mismatched correspondence is not.
	assert.False(t, d.ContainsFact(fact.SimTri(tri("B", "A", "C"), tri("P", "Q", "R"))))
	assert.False(t, d.ContainsFact(fact.SimTri(tri("A", "B", "C"), tri("Q", "P", "R"))))
}

func TestDatabase_SimTriExtendsClass(t *testing.T) {
	d := New()
	require.NoError(t, d.AddFact(fact.SimTri(tri("A", "B", "C"), tri("P", "Q", "R"))))
	require.NoError(t, d.AddFact(fact.SimTri(tri("Q", "P", "R"), tri("E", "D", "F"))))

	classes := d.SimilarTriangleClasses()
	require.Len(t, classes, 1, "the shared triangle joins the classes")
	assert.Equal(t, []fact.Triangle{tri("A", "B", "C"), tri("D", "E", "F"), tri("P", "Q", "R")},
		classes[0], "the incoming pair is permuted into the class frame")

	assert.True(t, d.ContainsFact(fact.SimTri(tri("A", "B", "C"), tri("D", "E", "F"))),
		"similarity is transitive through the class")
}

func TestDatabase_SimTriMergesClasses(t *testing.T) {
	d := New()
	require.NoError(t, d.AddFact(fact.SimTri(tri("A", "B", "C"), tri("P", "Q", "R"))))
	require.NoError(t, d.AddFact(fact.SimTri(tri("D", "E", "F"), tri("X", "Y", "Z"))))
	require.Len(t, d.SimilarTriangleClasses(), 2)

	// Links the two classes through relabelled members of each.
	require.NoError(t, d.AddFact(fact.SimTri(tri("B", "C", "A"), tri("E", "F", "D"))))

	classes := d.SimilarTriangleClasses()
	require.Len(t, classes, 1)
	assert.Equal(t, []fact.Triangle{
		tri("A", "B", "C"), tri("D", "E", "F"), tri("P", "Q", "R"), tri("X", "Y", "Z"),
	}, classes[0], "merged members keep one common correspondence order")

	assert.True(t, d.ContainsFact(fact.SimTri(tri("P", "Q", "R"), tri("X", "Y", "Z"))))
	assert.False(t, d.ContainsFact(fact.SimTri(tri("P", "Q", "R"), tri("Y", "X", "Z"))))
}

func TestDatabase_ConTriIndependentOfSimTri(t *testing.T) {
	d := New()
	require.NoError(t, d.AddFact(fact.SimTri(tri("A", "B", "C"), tri("P", "Q", "R"))))
	require.NoError(t, d.AddFact(fact.ConTri(tri("A", "B", "C"), tri("X", "Y", "Z"))))

	assert.Len(t, d.SimilarTriangleClasses(), 1)
	assert.Len(t, d.CongruentTriangleClasses(), 1)
	assert.False(t, d.ContainsFact(fact.ConTri(tri("A", "B", "C"), tri("P", "Q", "R"))),
		"similarity does not imply congruence")
}

func TestAddTrianglePair_NoSharedVertexSet(t *testing.T) {
	classes := addTrianglePair(nil, tri("A", "B", "C"), tri("P", "Q", "R"))
	classes = addTrianglePair(classes, tri("D", "E", "F"), tri("X", "Y", "Z"))
	require.Len(t, classes, 2)
	assert.True(t, containsTrianglePair(classes, tri("A", "B", "C"), tri("P", "Q", "R")))
	assert.False(t, containsTrianglePair(classes, tri("A", "B", "C"), tri("X", "Y", "Z")),
		"members of different classes are unrelated")
}

package database

import (
	"testing"

	"github.com/mikenye/geomdb/fact"
	"github.com/mikenye/geomdb/predicate"
	"github.com/stretchr/testify/require"
)

// addPredicates parses and inserts each textual predicate, failing the test
// on any error.
func addPredicates(t *testing.T, d *Database, texts ...string) {
	t.Helper()
	for _, text := range texts {
		p, err := predicate.Parse(text)
		require.NoError(t, err, "parsing %q", text)
		require.NoError(t, d.AddPredicate(p), "inserting %q", text)
	}
}

// lift parses a textual predicate and lifts it to a fact against d.
func lift(t *testing.T, d *Database, text string) fact.Fact {
	t.Helper()
	p, err := predicate.Parse(text)
	require.NoError(t, err, "parsing %q", text)
	f, err := d.PredicateToFact(p)
	require.NoError(t, err, "lifting %q", text)
	return f
}

// containsPred reports whether the lifted form of a textual predicate is
// contained. Lifting interns line and congruence keys, matching the
// behaviour the external rule engine sees.
func containsPred(t *testing.T, d *Database, text string) bool {
	t.Helper()
	return d.ContainsFact(lift(t, d, text))
}

// pointSets returns the line classes as sorted point slices, ignoring key
// names, for order-independence comparisons.
func pointSets(d *Database) map[string]bool {
	sets := make(map[string]bool)
	for _, lk := range d.Lines() {
		key := ""
		for _, p := range d.LinePoints(lk) {
			key += string(p) + ","
		}
		sets[key] = true
	}
	return sets
}

// checkIntegrity asserts the cross-store invariants: line classes pairwise
// share at most one point, circles pairwise share at most two, and every
// key referenced by a relation fact is live.
func checkIntegrity(t *testing.T, d *Database) {
	t.Helper()

	lines := d.Lines()
	for i, lk1 := range lines {
		for _, lk2 := range lines[i+1:] {
			shared := 0
			points := d.LinePoints(lk2)
			for _, p := range d.LinePoints(lk1) {
				for _, q := range points {
					if p == q {
						shared++
					}
				}
			}
			require.LessOrEqual(t, shared, 1,
				"line classes %s and %s share %d points", lk1, lk2, shared)
		}
	}

	circles := d.Circles()
	for i, c1 := range circles {
		for _, c2 := range circles[i+1:] {
			shared := 0
			for _, p := range c1.Points() {
				if c2.Contains(p) {
					shared++
				}
			}
			require.LessOrEqual(t, shared, 2,
				"circles %s and %s share %d points", c1, c2, shared)
		}
	}

	live := make(map[fact.LineKey]bool)
	for _, lk := range lines {
		live[lk] = true
	}
	for _, class := range d.ParallelClasses() {
		for _, lk := range class {
			require.True(t, live[lk], "para class references dead key %s", lk)
		}
	}
	for _, pair := range d.PerpendicularFacts() {
		require.True(t, live[pair[0]], "perp fact references dead key %s", pair[0])
		require.True(t, live[pair[1]], "perp fact references dead key %s", pair[1])
	}
	for _, class := range d.EqAngleClasses() {
		for _, a := range class {
			require.True(t, live[a.LK1()], "angle references dead key %s", a.LK1())
			require.True(t, live[a.LK2()], "angle references dead key %s", a.LK2())
		}
	}

	liveCongs := make(map[fact.CongKey]bool)
	for _, ck := range d.Congs() {
		liveCongs[ck] = true
	}
	for _, class := range d.EqRatioClasses() {
		for _, r := range class {
			require.True(t, liveCongs[r.C1()], "ratio references dead key %s", r.C1())
			require.True(t, liveCongs[r.C2()], "ratio references dead key %s", r.C2())
		}
	}
}

// This file contains the default deduction rule set. Each rule enumerates
// the stored facts through the database's read accessors and proposes
// point-level conclusions; the saturation loop filters the proposals
// through the containment check, so rules are free to propose facts already
// known.

package prover

import (
	"github.com/mikenye/geomdb/database"
	"github.com/mikenye/geomdb/fact"
	"github.com/mikenye/geomdb/predicate"
)

// Rule is one deduction step: a named function from the database state to
// point-level conclusions.
type Rule struct {
	Name  string
	Apply func(db *database.Database) []predicate.Predicate
}

// DefaultRules returns the built-in rule catalogue, in application order.
func DefaultRules() []Rule {
	return []Rule{
		{Name: "midpoint-collinear", Apply: midpointCollinear},
		{Name: "midpoint-congruent", Apply: midpointCongruent},
		{Name: "midline-parallel", Apply: midlineParallel},
		{Name: "perpendicular-transfer", Apply: perpendicularTransfer},
		{Name: "equidistant-circle", Apply: equidistantCircle},
		{Name: "inscribed-angle", Apply: inscribedAngle},
		{Name: "similar-consequences", Apply: similarConsequences},
		{Name: "congruent-consequences", Apply: congruentConsequences},
	}
}

// midpointCollinear derives coll(M,A,B) from midp(M,A,B).
func midpointCollinear(db *database.Database) []predicate.Predicate {
	var out []predicate.Predicate
	for _, m := range db.MidpointFacts() {
		out = append(out, predicate.MustNew(fact.KindColl, m[0], m[1], m[2]))
	}
	return out
}

// midpointCongruent derives cong(MA, MB) from midp(M,A,B).
func midpointCongruent(db *database.Database) []predicate.Predicate {
	var out []predicate.Predicate
	for _, m := range db.MidpointFacts() {
		out = append(out, predicate.MustNew(fact.KindCong, m[0], m[1], m[0], m[2]))
	}
	return out
}

// midlineParallel derives para(MN, BC) from midp(M,A,B) and midp(N,A,C):
// the segment joining two side midpoints of a triangle is parallel to the
// third side.
func midlineParallel(db *database.Database) []predicate.Predicate {
	var out []predicate.Predicate
	midpoints := db.MidpointFacts()
	for i, m1 := range midpoints {
		for _, m2 := range midpoints[i+1:] {
			shared, b, c, ok := sharedEndpoint(m1, m2)
			if !ok {
				continue
			}
			m, n := m1[0], m2[0]
			if !distinct(m, n, b, c) || m == shared || n == shared {
				continue
			}
			out = append(out, predicate.MustNew(fact.KindPara, m, n, b, c))
		}
	}
	return out
}

// sharedEndpoint finds the vertex two midpoint facts have in common and
// returns it with the two remaining endpoints.
func sharedEndpoint(m1, m2 [3]fact.Point) (shared, other1, other2 fact.Point, ok bool) {
	for _, i := range []int{1, 2} {
		for _, j := range []int{1, 2} {
			if m1[i] == m2[j] {
				return m1[i], m1[3-i], m2[3-j], true
			}
		}
	}
	return "", "", "", false
}

// perpendicularTransfer derives para(l1, l3) from perp(l1, l2) and
// perp(l2, l3): two lines perpendicular to the same line are parallel.
func perpendicularTransfer(db *database.Database) []predicate.Predicate {
	var out []predicate.Predicate
	perps := db.PerpendicularFacts()
	for i, p1 := range perps {
		for _, p2 := range perps[i+1:] {
			l1, l3, ok := oppositeKeys(p1, p2)
			if !ok || l1 == l3 {
				continue
			}
			a := db.LinePoints(l1)
			b := db.LinePoints(l3)
			if len(a) < 2 || len(b) < 2 {
				continue
			}
			out = append(out, predicate.MustNew(fact.KindPara, a[0], a[1], b[0], b[1]))
		}
	}
	return out
}

// oppositeKeys returns the non-shared keys of two perpendicular pairs that
// share exactly one line.
func oppositeKeys(p1, p2 [2]fact.LineKey) (fact.LineKey, fact.LineKey, bool) {
	for _, i := range []int{0, 1} {
		for _, j := range []int{0, 1} {
			if p1[i] == p2[j] {
				return p1[1-i], p2[1-j], true
			}
		}
	}
	return "", "", false
}

// equidistantCircle derives circle(O, A, B, C, ...) from a congruence class
// holding three or more segments that radiate from one common point O.
func equidistantCircle(db *database.Database) []predicate.Predicate {
	var out []predicate.Predicate
	for _, ck := range db.Congs() {
		tips := make(map[fact.Point][]fact.Point)
		for _, s := range db.CongSegments(ck) {
			tips[s.P1()] = append(tips[s.P1()], s.P2())
			tips[s.P2()] = append(tips[s.P2()], s.P1())
		}
		for centre, around := range tips {
			if len(around) < 3 {
				continue
			}
			args := append([]fact.Point{centre}, fact.SortPoints(around)...)
			out = append(out, predicate.MustNew(fact.KindCircle, args...))
		}
	}
	return out
}

// inscribedAngle derives eqangle(CA,CB,DA,DB) for concyclic A, B, C, D:
// angles subtending the same chord from the same circle are equal.
func inscribedAngle(db *database.Database) []predicate.Predicate {
	var out []predicate.Predicate
	for _, c := range db.Circles() {
		points := c.Points()
		if len(points) < 4 {
			continue
		}
		forEachQuad(points, func(a, b, cc, dd fact.Point) {
			out = append(out, predicate.MustNew(fact.KindEqAngle,
				cc, a, cc, b, dd, a, dd, b))
		})
	}
	return out
}

// forEachQuad visits every sorted four-point subset.
func forEachQuad(points []fact.Point, visit func(a, b, c, d fact.Point)) {
	n := len(points)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for k := j + 1; k < n; k++ {
				for l := k + 1; l < n; l++ {
					visit(points[i], points[j], points[k], points[l])
				}
			}
		}
	}
}

// similarConsequences derives the angle equalities and the side-ratio
// equality of every aligned pair in a similarity class.
func similarConsequences(db *database.Database) []predicate.Predicate {
	var out []predicate.Predicate
	for _, class := range db.SimilarTriangleClasses() {
		forEachAlignedPair(class, func(t1, t2 fact.Triangle) {
			a, p := t1.Vertices(), t2.Vertices()
			out = append(out,
				predicate.MustNew(fact.KindEqAngle,
					a[0], a[1], a[0], a[2], p[0], p[1], p[0], p[2]),
				predicate.MustNew(fact.KindEqAngle,
					a[1], a[0], a[1], a[2], p[1], p[0], p[1], p[2]),
				predicate.MustNew(fact.KindEqRatio,
					a[0], a[1], a[0], a[2], p[0], p[1], p[0], p[2]),
			)
		})
	}
	return out
}

// congruentConsequences derives the side congruences of every aligned pair
// in a triangle congruence class, plus the similarity it implies.
func congruentConsequences(db *database.Database) []predicate.Predicate {
	var out []predicate.Predicate
	for _, class := range db.CongruentTriangleClasses() {
		forEachAlignedPair(class, func(t1, t2 fact.Triangle) {
			a, p := t1.Vertices(), t2.Vertices()
			out = append(out,
				predicate.MustNew(fact.KindCong, a[0], a[1], p[0], p[1]),
				predicate.MustNew(fact.KindCong, a[1], a[2], p[1], p[2]),
				predicate.MustNew(fact.KindCong, a[0], a[2], p[0], p[2]),
				predicate.MustNew(fact.KindSimTri,
					a[0], a[1], a[2], p[0], p[1], p[2]),
			)
		})
	}
	return out
}

// forEachAlignedPair visits each unordered pair of triangles in a class.
// Pairs sharing a vertex are skipped: their consequences degenerate into
// angles and ratios over coinciding point pairs.
func forEachAlignedPair(class []fact.Triangle, visit func(t1, t2 fact.Triangle)) {
	for i, t1 := range class {
		for _, t2 := range class[i+1:] {
			if trianglesSharePoints(t1, t2) {
				continue
			}
			visit(t1, t2)
		}
	}
}

func trianglesSharePoints(t1, t2 fact.Triangle) bool {
	v2 := t2.Vertices()
	for _, p := range t1.Vertices() {
		for _, q := range v2 {
			if p == q {
				return true
			}
		}
	}
	return false
}

// distinct reports whether all given points differ pairwise.
func distinct(points ...fact.Point) bool {
	seen := make(map[fact.Point]bool, len(points))
	for _, p := range points {
		if seen[p] {
			return false
		}
		seen[p] = true
	}
	return true
}

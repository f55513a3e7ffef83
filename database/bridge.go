// This file contains the bridge between point-level predicates and
// key-level facts. Lifting a predicate interns every point pair that names
// a line or congruence class, so the lift can itself grow the key stores;
// expanding a fact enumerates every point-level form its symmetry group
// allows.

package database

import (
	"fmt"

	"github.com/mikenye/geomdb/fact"
	"github.com/mikenye/geomdb/predicate"
)

// PredicateToFact normalises a point-level predicate into a canonical
// key-level fact. For the line-level kinds (para, perp, eqangle) and the
// ratio kind (eqratio) this interns each point pair through the line or
// congruence store, allocating fresh keys for pairs never seen before, so
// the call may mutate the database even though the fact is not yet stored.
func (d *Database) PredicateToFact(p predicate.Predicate) (fact.Fact, error) {
	pts := p.Points()
	switch p.Kind() {
	case fact.KindColl:
		return fact.Coll(pts...), nil
	case fact.KindMidp:
		return fact.Midp(pts[0], pts[1], pts[2]), nil
	case fact.KindPara:
		return fact.Para(d.matchLine(pts[0], pts[1]), d.matchLine(pts[2], pts[3])), nil
	case fact.KindPerp:
		return fact.Perp(d.matchLine(pts[0], pts[1]), d.matchLine(pts[2], pts[3])), nil
	case fact.KindCong:
		return fact.Cong(fact.NewSegment(pts[0], pts[1]), fact.NewSegment(pts[2], pts[3])), nil
	case fact.KindEqAngle:
		return fact.EqAngle(
			d.matchLine(pts[0], pts[1]),
			d.matchLine(pts[2], pts[3]),
			d.matchLine(pts[4], pts[5]),
			d.matchLine(pts[6], pts[7]),
		), nil
	case fact.KindEqRatio:
		return fact.EqRatio(
			d.matchCong(pts[0], pts[1]),
			d.matchCong(pts[2], pts[3]),
			d.matchCong(pts[4], pts[5]),
			d.matchCong(pts[6], pts[7]),
		), nil
	case fact.KindCyclic:
		return fact.Cyclic(pts...), nil
	case fact.KindCircle:
		return fact.OnCircle(pts[0], pts[1:]...), nil
	case fact.KindSimTri:
		return fact.SimTri(
			fact.NewTriangle(pts[0], pts[1], pts[2]),
			fact.NewTriangle(pts[3], pts[4], pts[5]),
		), nil
	case fact.KindConTri:
		return fact.ConTri(
			fact.NewTriangle(pts[0], pts[1], pts[2]),
			fact.NewTriangle(pts[3], pts[4], pts[5]),
		), nil
	}
	return fact.Fact{}, fmt.Errorf("%w: no fact form for %s", ErrMalformedFact, p)
}

// FactToPredicates expands a fact into point-level predicates that lift
// back to an equivalent fact: the symmetry-expansion operator consumed by
// the deduction engine's pattern matching. Line and congruence keys are
// expanded through their classes, so the result grows with the classes; a
// fact mentioning a key with no live class expands to nothing for that key.
// Each point pair drawn from a line class appears once, in sorted order, and
// each segment once, as P1 then P2; cong and midp facts expand to every
// endpoint order. Coll, cyclic, circle, simtri and contri facts expand only
// to their own argument order, not to its permutations.
func (d *Database) FactToPredicates(f fact.Fact) []predicate.Predicate {
	switch f.Kind() {
	case fact.KindColl, fact.KindCyclic, fact.KindCircle, fact.KindSimTri, fact.KindConTri:
		if p, ok := d.identityPredicate(f); ok {
			return []predicate.Predicate{p}
		}
		return nil
	case fact.KindMidp:
		pts := f.Points()
		if len(pts) != 3 {
			return nil
		}
		return []predicate.Predicate{
			predicate.MustNew(fact.KindMidp, pts[0], pts[1], pts[2]),
			predicate.MustNew(fact.KindMidp, pts[0], pts[2], pts[1]),
		}
	case fact.KindPara, fact.KindPerp:
		return d.expandLinePair(f.Kind(), f.Lines())
	case fact.KindCong:
		return expandCong(f.Segments())
	case fact.KindEqAngle:
		return d.expandEqAngle(f.Lines())
	case fact.KindEqRatio:
		return d.expandEqRatio(f.Congs())
	}
	return nil
}

// identityPredicate renders the fact kinds whose point-level form is the
// fact itself.
func (d *Database) identityPredicate(f fact.Fact) (predicate.Predicate, bool) {
	var pts []fact.Point
	switch f.Kind() {
	case fact.KindColl, fact.KindCyclic, fact.KindCircle:
		pts = f.Points()
	case fact.KindSimTri, fact.KindConTri:
		tris := f.Triangles()
		if len(tris) != 2 {
			return predicate.Predicate{}, false
		}
		for _, t := range tris {
			v := t.Vertices()
			pts = append(pts, v[0], v[1], v[2])
		}
	}
	p, err := predicate.New(f.Kind(), pts...)
	if err != nil {
		return predicate.Predicate{}, false
	}
	return p, true
}

// pointPairs returns the choose-2 pairs of a line class's points, each in
// sorted order.
func (d *Database) pointPairs(lk fact.LineKey) [][2]fact.Point {
	line, ok := d.lines[lk]
	if !ok {
		return nil
	}
	points := line.Sorted()
	pairs := make([][2]fact.Point, 0, len(points)*(len(points)-1)/2)
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			pairs = append(pairs, [2]fact.Point{points[i], points[j]})
		}
	}
	return pairs
}

// segmentPairs returns a congruence class's segments as endpoint pairs.
func (d *Database) segmentPairs(ck fact.CongKey) [][2]fact.Point {
	class, ok := d.congs[ck]
	if !ok {
		return nil
	}
	segments := class.Sorted()
	pairs := make([][2]fact.Point, 0, len(segments))
	for _, s := range segments {
		pairs = append(pairs, [2]fact.Point{s.P1(), s.P2()})
	}
	return pairs
}

func (d *Database) expandLinePair(kind fact.Kind, lines []fact.LineKey) []predicate.Predicate {
	if len(lines) != 2 {
		return nil
	}
	var predicates []predicate.Predicate
	for _, ab := range d.pointPairs(lines[0]) {
		for _, cd := range d.pointPairs(lines[1]) {
			predicates = append(predicates,
				predicate.MustNew(kind, ab[0], ab[1], cd[0], cd[1]))
		}
	}
	return predicates
}

func expandCong(segments []fact.Segment) []predicate.Predicate {
	if len(segments) != 2 {
		return nil
	}
	a, b := segments[0].P1(), segments[0].P2()
	c, e := segments[1].P1(), segments[1].P2()
	return []predicate.Predicate{
		predicate.MustNew(fact.KindCong, a, b, c, e),
		predicate.MustNew(fact.KindCong, a, b, e, c),
		predicate.MustNew(fact.KindCong, b, a, c, e),
		predicate.MustNew(fact.KindCong, b, a, e, c),
	}
}

// expandEqAngle emits, for each of the four symmetry representatives, the
// Cartesian product of point pairs drawn from the four line classes.
func (d *Database) expandEqAngle(lines []fact.LineKey) []predicate.Predicate {
	if len(lines) != 4 {
		return nil
	}
	var predicates []predicate.Predicate
	for _, pair := range angleSymmetries(lines[0], lines[1], lines[2], lines[3]) {
		quads := [4][][2]fact.Point{
			d.pointPairs(pair[0].LK1()),
			d.pointPairs(pair[0].LK2()),
			d.pointPairs(pair[1].LK1()),
			d.pointPairs(pair[1].LK2()),
		}
		predicates = append(predicates, combineQuads(fact.KindEqAngle, quads)...)
	}
	return predicates
}

// expandEqRatio mirrors expandEqAngle over congruence classes, one endpoint
// pair per stored segment.
func (d *Database) expandEqRatio(congs []fact.CongKey) []predicate.Predicate {
	if len(congs) != 4 {
		return nil
	}
	var predicates []predicate.Predicate
	for _, pair := range ratioSymmetries(congs[0], congs[1], congs[2], congs[3]) {
		quads := [4][][2]fact.Point{
			d.segmentPairs(pair[0].C1()),
			d.segmentPairs(pair[0].C2()),
			d.segmentPairs(pair[1].C1()),
			d.segmentPairs(pair[1].C2()),
		}
		predicates = append(predicates, combineQuads(fact.KindEqRatio, quads)...)
	}
	return predicates
}

// combineQuads expands the Cartesian product of four pair lists into
// eight-point predicates.
func combineQuads(kind fact.Kind, quads [4][][2]fact.Point) []predicate.Predicate {
	var predicates []predicate.Predicate
	for _, ab := range quads[0] {
		for _, cd := range quads[1] {
			for _, pq := range quads[2] {
				for _, uv := range quads[3] {
					predicates = append(predicates, predicate.MustNew(kind,
						ab[0], ab[1], cd[0], cd[1], pq[0], pq[1], uv[0], uv[1]))
				}
			}
		}
	}
	return predicates
}

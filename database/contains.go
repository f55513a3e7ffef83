// This file contains the symmetry-aware containment predicate, the check
// that drives the saturation loop's "nothing new" test.

package database

import "github.com/mikenye/geomdb/fact"

// ContainsFact reports whether a semantically equivalent fact, under the
// symmetry group of its kind, is already stored. A payload too short to
// check (for example a para fact without two line keys, or a coll fact with
// no points) is never contained. Coll and cyclic facts are checked at any
// point count, so a two-point coll fact is contained when one line holds
// both points, even though [Database.AddFact] rejects it as malformed.
func (d *Database) ContainsFact(f fact.Fact) bool {
	switch f.Kind() {
	case fact.KindColl:
		return d.containsColl(f.Points())
	case fact.KindMidp:
		p := f.Points()
		if len(p) != 3 {
			return false
		}
		return d.containsMidp(p[0], p[1], p[2])
	case fact.KindPara:
		lk := f.Lines()
		if len(lk) != 2 {
			return false
		}
		return d.containsPara(lk[0], lk[1])
	case fact.KindPerp:
		lk := f.Lines()
		if len(lk) != 2 {
			return false
		}
		pair := [2]fact.LineKey{lk[0], lk[1]}
		for _, stored := range d.perpFacts {
			if samePerpPair(stored, pair) {
				return true
			}
		}
		return false
	case fact.KindCong:
		s := f.Segments()
		if len(s) != 2 {
			return false
		}
		for _, ck := range d.congOrder {
			class := d.congs[ck]
			if class.Contains(s[0]) && class.Contains(s[1]) {
				return true
			}
		}
		return false
	case fact.KindEqAngle:
		lk := f.Lines()
		if len(lk) != 4 {
			return false
		}
		return d.containsEqAngle(lk[0], lk[1], lk[2], lk[3])
	case fact.KindEqRatio:
		ck := f.Congs()
		if len(ck) != 4 {
			return false
		}
		return d.containsEqRatio(ck[0], ck[1], ck[2], ck[3])
	case fact.KindCyclic:
		for _, c := range d.circles {
			if c.points.ContainsAll(f.Points()) {
				return true
			}
		}
		return false
	case fact.KindCircle:
		p := f.Points()
		if len(p) < 2 {
			return false
		}
		for _, c := range d.circles {
			if c.centre == p[0] && c.points.ContainsAll(p[1:]) {
				return true
			}
		}
		return false
	case fact.KindSimTri:
		t := f.Triangles()
		if len(t) != 2 {
			return false
		}
		return containsTrianglePair(d.simtriFacts, t[0], t[1])
	case fact.KindConTri:
		t := f.Triangles()
		if len(t) != 2 {
			return false
		}
		return containsTrianglePair(d.contriFacts, t[0], t[1])
	}
	return false
}

// containsColl reports whether some line class holds every given point.
func (d *Database) containsColl(points []fact.Point) bool {
	if len(points) == 0 {
		return false
	}
	for _, lk := range d.lineOrder {
		if d.lines[lk].ContainsAll(points) {
			return true
		}
	}
	return false
}

func (d *Database) containsMidp(m, a, b fact.Point) bool {
	if b < a {
		a, b = b, a
	}
	entry := [3]fact.Point{m, a, b}
	for _, stored := range d.midpFacts {
		if stored == entry {
			return true
		}
	}
	return false
}

func (d *Database) containsPara(lk1, lk2 fact.LineKey) bool {
	for _, class := range d.paraFacts {
		if class.contains(lk1) && class.contains(lk2) {
			return true
		}
	}
	return false
}

// containsEqAngle checks the four symmetry representatives, using the angle
// index to jump straight to the classes holding the first angle of each
// pair.
func (d *Database) containsEqAngle(lk1, lk2, lk3, lk4 fact.LineKey) bool {
	for _, pair := range angleSymmetries(lk1, lk2, lk3, lk4) {
		for _, i := range d.angleClassesWith(pair[0]) {
			if d.eqangleFacts[i].contains(pair[1]) {
				return true
			}
		}
	}
	return false
}

func (d *Database) containsEqRatio(ck1, ck2, ck3, ck4 fact.CongKey) bool {
	for _, pair := range ratioSymmetries(ck1, ck2, ck3, ck4) {
		for _, i := range d.ratioClassesWith(pair[0]) {
			if d.eqratioFacts[i].contains(pair[1]) {
				return true
			}
		}
	}
	return false
}

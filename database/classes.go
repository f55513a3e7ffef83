// This file contains the equal-angle and equal-ratio class stores, together
// with the B-tree indexes that map a canonical angle or ratio to the classes
// holding it. The indexes make symmetry-aware containment a logarithmic seek
// instead of a scan over every class and representative.

package database

import (
	"github.com/google/btree"
	"github.com/mikenye/geomdb/fact"
)

// angleClass is one equivalence class of equal directed angles.
type angleClass map[fact.Angle]struct{}

func (c angleClass) add(a fact.Angle)           { c[a] = struct{}{} }
func (c angleClass) contains(a fact.Angle) bool { _, ok := c[a]; return ok }

// ratioClass is one equivalence class of equal segment-length ratios.
type ratioClass map[fact.Ratio]struct{}

func (c ratioClass) add(r fact.Ratio)           { c[r] = struct{}{} }
func (c ratioClass) contains(r fact.Ratio) bool { _, ok := c[r]; return ok }

// angleEntry is one index row: this angle occurs in this class.
type angleEntry struct {
	angle fact.Angle
	class int
}

func angleEntryLess(a, b angleEntry) bool {
	if a.angle.LK1() != b.angle.LK1() {
		return a.angle.LK1() < b.angle.LK1()
	}
	if a.angle.LK2() != b.angle.LK2() {
		return a.angle.LK2() < b.angle.LK2()
	}
	return a.class < b.class
}

// ratioEntry is one index row: this ratio occurs in this class.
type ratioEntry struct {
	ratio fact.Ratio
	class int
}

func ratioEntryLess(a, b ratioEntry) bool {
	if a.ratio.C1() != b.ratio.C1() {
		return a.ratio.C1() < b.ratio.C1()
	}
	if a.ratio.C2() != b.ratio.C2() {
		return a.ratio.C2() < b.ratio.C2()
	}
	return a.class < b.class
}

// angleSymmetries returns the four representative angle pairs of an eqangle
// fact: the identity, the simultaneous swap within each pair, and the two
// forms reached through the diagonal swap of the middle keys.
func angleSymmetries(lk1, lk2, lk3, lk4 fact.LineKey) [4][2]fact.Angle {
	return [4][2]fact.Angle{
		{fact.NewAngle(lk1, lk2), fact.NewAngle(lk3, lk4)},
		{fact.NewAngle(lk2, lk1), fact.NewAngle(lk4, lk3)},
		{fact.NewAngle(lk1, lk3), fact.NewAngle(lk2, lk4)},
		{fact.NewAngle(lk3, lk1), fact.NewAngle(lk4, lk2)},
	}
}

// ratioSymmetries returns the four representative ratio pairs of an eqratio
// fact, the same group as for angles.
func ratioSymmetries(ck1, ck2, ck3, ck4 fact.CongKey) [4][2]fact.Ratio {
	return [4][2]fact.Ratio{
		{fact.NewRatio(ck1, ck2), fact.NewRatio(ck3, ck4)},
		{fact.NewRatio(ck2, ck1), fact.NewRatio(ck4, ck3)},
		{fact.NewRatio(ck1, ck3), fact.NewRatio(ck2, ck4)},
		{fact.NewRatio(ck3, ck1), fact.NewRatio(ck4, ck2)},
	}
}

// eqangleHandler inserts an equal-angle fact. Classes are scanned in order;
// within a class the four symmetry representatives are tried in order, and
// the first representative with a member already present pulls both of its
// angles into that class. With no hit anywhere, the identity pair starts a
// new class.
func (d *Database) eqangleHandler(lk1, lk2, lk3, lk4 fact.LineKey) {
	reps := angleSymmetries(lk1, lk2, lk3, lk4)
	for i, class := range d.eqangleFacts {
		for _, pair := range reps {
			if class.contains(pair[0]) || class.contains(pair[1]) {
				d.addAngleToClass(i, pair[0])
				d.addAngleToClass(i, pair[1])
				return
			}
		}
	}
	class := make(angleClass, 2)
	d.eqangleFacts = append(d.eqangleFacts, class)
	i := len(d.eqangleFacts) - 1
	d.addAngleToClass(i, reps[0][0])
	d.addAngleToClass(i, reps[0][1])
}

// eqratioHandler inserts an equal-ratio fact, mirroring eqangleHandler.
func (d *Database) eqratioHandler(ck1, ck2, ck3, ck4 fact.CongKey) {
	reps := ratioSymmetries(ck1, ck2, ck3, ck4)
	for i, class := range d.eqratioFacts {
		for _, pair := range reps {
			if class.contains(pair[0]) || class.contains(pair[1]) {
				d.addRatioToClass(i, pair[0])
				d.addRatioToClass(i, pair[1])
				return
			}
		}
	}
	class := make(ratioClass, 2)
	d.eqratioFacts = append(d.eqratioFacts, class)
	i := len(d.eqratioFacts) - 1
	d.addRatioToClass(i, reps[0][0])
	d.addRatioToClass(i, reps[0][1])
}

func (d *Database) addAngleToClass(class int, a fact.Angle) {
	d.eqangleFacts[class].add(a)
	d.angleIndex.ReplaceOrInsert(angleEntry{angle: a, class: class})
}

func (d *Database) addRatioToClass(class int, r fact.Ratio) {
	d.eqratioFacts[class].add(r)
	d.ratioIndex.ReplaceOrInsert(ratioEntry{ratio: r, class: class})
}

// angleClassesWith returns the indexes of every class holding the given
// angle, in ascending order.
func (d *Database) angleClassesWith(a fact.Angle) []int {
	var classes []int
	d.angleIndex.AscendGreaterOrEqual(angleEntry{angle: a, class: -1}, func(e angleEntry) bool {
		if e.angle != a {
			return false
		}
		classes = append(classes, e.class)
		return true
	})
	return classes
}

// ratioClassesWith returns the indexes of every class holding the given
// ratio, in ascending order.
func (d *Database) ratioClassesWith(r fact.Ratio) []int {
	var classes []int
	d.ratioIndex.AscendGreaterOrEqual(ratioEntry{ratio: r, class: -1}, func(e ratioEntry) bool {
		if e.ratio != r {
			return false
		}
		classes = append(classes, e.class)
		return true
	})
	return classes
}

// rebuildAngleIndex reconstructs the angle index from the classes. Called
// after a line-class merge rewrites stored angles.
func (d *Database) rebuildAngleIndex() {
	d.angleIndex = btree.NewG(2, angleEntryLess)
	for i, class := range d.eqangleFacts {
		for a := range class {
			d.angleIndex.ReplaceOrInsert(angleEntry{angle: a, class: i})
		}
	}
}

// rebuildRatioIndex reconstructs the ratio index from the classes. Called
// after a congruence-class merge rewrites stored ratios.
func (d *Database) rebuildRatioIndex() {
	d.ratioIndex = btree.NewG(2, ratioEntryLess)
	for i, class := range d.eqratioFacts {
		for r := range class {
			d.ratioIndex.ReplaceOrInsert(ratioEntry{ratio: r, class: i})
		}
	}
}

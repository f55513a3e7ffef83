// This file contains the line equivalence store: the mapping from line keys
// to sets of collinear points, fresh key allocation, the coll handler, and
// the key rewriting that a class merge triggers in every dependent store.

package database

import (
	"fmt"

	"github.com/mikenye/geomdb/fact"
)

// newLineName mints the first unused line key. The pool is unbounded; the
// counter simply climbs past names still in use.
func (d *Database) newLineName() fact.LineKey {
	for n := 1; ; n++ {
		lk := fact.LineKey(fmt.Sprintf("line%d", n))
		if _, used := d.lines[lk]; !used {
			return lk
		}
	}
}

// addLine registers a fresh line class with the given points.
func (d *Database) addLine(lk fact.LineKey, points *pointSet) {
	d.lines[lk] = points
	d.lineOrder = append(d.lineOrder, lk)
}

// removeLine retires a merged-away key.
func (d *Database) removeLine(lk fact.LineKey) {
	delete(d.lines, lk)
	for i, k := range d.lineOrder {
		if k == lk {
			d.lineOrder = append(d.lineOrder[:i], d.lineOrder[i+1:]...)
			break
		}
	}
}

// matchLine returns the key of the unique line class containing both points,
// interning a fresh two-point class if none exists. Classes are scanned in
// creation order, first match wins.
func (d *Database) matchLine(a, b fact.Point) fact.LineKey {
	for _, lk := range d.lineOrder {
		line := d.lines[lk]
		if line.Contains(a) && line.Contains(b) {
			return lk
		}
	}
	lk := d.newLineName()
	logDebugf("interning %s = {%s, %s}", lk, a, b)
	d.addLine(lk, newPointSet(a, b))
	return lk
}

// collHandler inserts a collinearity fact. Any stored line sharing at least
// two of the fact's points must be the same line, so zero overlaps mint a
// fresh class, one overlap extends it, and two or more force a merge into
// the first, rewriting every dependent line key reference.
func (d *Database) collHandler(points []fact.Point) {
	var overlapping []fact.LineKey
	for _, lk := range d.lineOrder {
		if d.lines[lk].CountShared(points) >= 2 {
			overlapping = append(overlapping, lk)
		}
	}

	switch len(overlapping) {
	case 0:
		d.addLine(d.newLineName(), newPointSet(points...))
	case 1:
		d.lines[overlapping[0]].Add(points...)
	default:
		keep := overlapping[0]
		d.lines[keep].Add(points...)
		for _, drop := range overlapping[1:] {
			d.lines[keep].Union(d.lines[drop])
			d.removeLine(drop)
			d.rewriteLineKey(drop, keep)
			logDebugf("merged line %s into %s", drop, keep)
		}
	}
}

// rewriteLineKey replaces every reference to a retired line key with the key
// that survived the merge: in every stored angle, in the parallel classes,
// and in the perpendicular pairs. Para classes that come to share a key
// afterwards are fused; perp pairs that degenerate or duplicate are dropped.
func (d *Database) rewriteLineKey(drop, keep fact.LineKey) {
	for i, class := range d.eqangleFacts {
		rewritten := make(angleClass, len(class))
		for a := range class {
			rewritten.add(a.Rewrite(drop, keep))
		}
		d.eqangleFacts[i] = rewritten
	}
	d.rebuildAngleIndex()

	for i, class := range d.paraFacts {
		if class.contains(drop) {
			class.remove(drop)
			class.add(keep)
			d.paraFacts[i] = class
		}
	}
	d.fuseParaClasses()

	perps := d.perpFacts[:0]
	for _, pair := range d.perpFacts {
		if pair[0] == drop {
			pair[0] = keep
		}
		if pair[1] == drop {
			pair[1] = keep
		}
		if pair[0] == pair[1] {
			continue
		}
		duplicate := false
		for _, kept := range perps {
			if samePerpPair(kept, pair) {
				duplicate = true
				break
			}
		}
		if !duplicate {
			perps = append(perps, pair)
		}
	}
	d.perpFacts = perps
}

// fuseParaClasses merges parallel classes that share a line key, restoring
// the invariant that each key appears in at most one class. A fuse can make
// two previously disjoint classes overlap, so passes repeat until stable.
// Classes left with fewer than two keys carry no information and are
// dropped.
func (d *Database) fuseParaClasses() {
	for {
		fused := make([]lineKeySet, 0, len(d.paraFacts))
		changed := false
		for _, class := range d.paraFacts {
			target := -1
			for i, existing := range fused {
				if existing.sharesAny(class) {
					target = i
					break
				}
			}
			if target < 0 {
				fused = append(fused, class)
			} else {
				fused[target].union(class)
				changed = true
			}
		}
		d.paraFacts = fused
		if !changed {
			break
		}
	}
	out := d.paraFacts[:0]
	for _, class := range d.paraFacts {
		if len(class) >= 2 {
			out = append(out, class)
		}
	}
	d.paraFacts = out
}

func samePerpPair(a, b [2]fact.LineKey) bool {
	return (a[0] == b[0] && a[1] == b[1]) || (a[0] == b[1] && a[1] == b[0])
}

// This file contains the congruence equivalence store: the mapping from
// cong keys to sets of mutually congruent segments, mirroring the line
// store with an overlap threshold of a single shared segment.

package database

import (
	"fmt"

	"github.com/mikenye/geomdb/fact"
)

// newCongName mints the first unused congruence class key.
func (d *Database) newCongName() fact.CongKey {
	for n := 1; ; n++ {
		ck := fact.CongKey(fmt.Sprintf("cong%d", n))
		if _, used := d.congs[ck]; !used {
			return ck
		}
	}
}

// addCong registers a fresh congruence class with the given segments.
func (d *Database) addCong(ck fact.CongKey, segments *segmentSet) {
	d.congs[ck] = segments
	d.congOrder = append(d.congOrder, ck)
}

// removeCong retires a merged-away key.
func (d *Database) removeCong(ck fact.CongKey) {
	delete(d.congs, ck)
	for i, k := range d.congOrder {
		if k == ck {
			d.congOrder = append(d.congOrder[:i], d.congOrder[i+1:]...)
			break
		}
	}
}

// matchCong returns the key of the congruence class containing the segment
// between the two points, interning a fresh single-segment class if none
// exists. Classes are scanned in creation order, first match wins.
func (d *Database) matchCong(a, b fact.Point) fact.CongKey {
	seg := fact.NewSegment(a, b)
	for _, ck := range d.congOrder {
		if d.congs[ck].Contains(seg) {
			return ck
		}
	}
	ck := d.newCongName()
	logDebugf("interning %s = {%s}", ck, seg)
	d.addCong(ck, newSegmentSet(seg))
	return ck
}

// congHandler inserts a segment congruence fact. A single shared segment is
// enough to identify two classes, so zero overlaps mint a fresh class, one
// extends it, and two or more force a merge that rewrites every dependent
// ratio reference.
func (d *Database) congHandler(s1, s2 fact.Segment) {
	segments := []fact.Segment{s1, s2}
	var overlapping []fact.CongKey
	for _, ck := range d.congOrder {
		if d.congs[ck].CountShared(segments) >= 1 {
			overlapping = append(overlapping, ck)
		}
	}

	switch len(overlapping) {
	case 0:
		d.addCong(d.newCongName(), newSegmentSet(s1, s2))
	case 1:
		d.congs[overlapping[0]].Add(s1, s2)
	default:
		keep := overlapping[0]
		d.congs[keep].Add(s1, s2)
		for _, drop := range overlapping[1:] {
			d.congs[keep].Union(d.congs[drop])
			d.removeCong(drop)
			d.rewriteCongKey(drop, keep)
			logDebugf("merged cong %s into %s", drop, keep)
		}
	}
}

// rewriteCongKey replaces every reference to a retired cong key with the
// surviving key in the stored ratio classes.
func (d *Database) rewriteCongKey(drop, keep fact.CongKey) {
	for i, class := range d.eqratioFacts {
		rewritten := make(ratioClass, len(class))
		for r := range class {
			rewritten.add(r.Rewrite(drop, keep))
		}
		d.eqratioFacts[i] = rewritten
	}
	d.rebuildRatioIndex()
}

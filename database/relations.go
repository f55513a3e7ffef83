// This file contains the midpoint, parallel and perpendicular stores.
// Parallelism is transitive and kept as equivalence classes of line keys;
// perpendicularity is not (two perpendiculars to one line are parallel, not
// perpendicular) and stays a plain pair list.

package database

import "github.com/mikenye/geomdb/fact"

// lineKeySet is a small set of line keys, one parallel class.
type lineKeySet map[fact.LineKey]struct{}

func newLineKeySet(keys ...fact.LineKey) lineKeySet {
	s := make(lineKeySet, len(keys))
	for _, lk := range keys {
		s.add(lk)
	}
	return s
}

func (s lineKeySet) add(lk fact.LineKey)           { s[lk] = struct{}{} }
func (s lineKeySet) remove(lk fact.LineKey)        { delete(s, lk) }
func (s lineKeySet) contains(lk fact.LineKey) bool { _, ok := s[lk]; return ok }

func (s lineKeySet) sharesAny(o lineKeySet) bool {
	for lk := range o {
		if s.contains(lk) {
			return true
		}
	}
	return false
}

func (s lineKeySet) union(o lineKeySet) {
	for lk := range o {
		s.add(lk)
	}
}

// midpHandler stores a midpoint fact, endpoints normalised to sorted order,
// deduplicated by value.
func (d *Database) midpHandler(m, a, b fact.Point) {
	if b < a {
		a, b = b, a
	}
	entry := [3]fact.Point{m, a, b}
	for _, stored := range d.midpFacts {
		if stored == entry {
			return
		}
	}
	d.midpFacts = append(d.midpFacts, entry)
}

// paraHandler inserts a parallelism fact: the first class containing either
// key absorbs both, otherwise the pair starts a new class.
func (d *Database) paraHandler(lk1, lk2 fact.LineKey) {
	for _, class := range d.paraFacts {
		if class.contains(lk1) || class.contains(lk2) {
			class.add(lk1)
			class.add(lk2)
			return
		}
	}
	d.paraFacts = append(d.paraFacts, newLineKeySet(lk1, lk2))
}

// perpHandler stores a perpendicularity fact as an unordered pair, no
// transitive closure.
func (d *Database) perpHandler(lk1, lk2 fact.LineKey) {
	pair := [2]fact.LineKey{lk1, lk2}
	for _, stored := range d.perpFacts {
		if samePerpPair(stored, pair) {
			return
		}
	}
	d.perpFacts = append(d.perpFacts, pair)
}

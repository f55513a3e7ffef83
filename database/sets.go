// This file contains the typed wrappers around the gods tree sets that back
// the point-sets of line classes and circles and the segment-sets of
// congruence classes. Sorted iteration from the underlying tree gives the
// alphabetical snapshot rendering without a separate sort pass.

package database

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/mikenye/geomdb/fact"
)

// pointSet is an ordered set of point names.
type pointSet struct {
	set *treeset.Set
}

func newPointSet(points ...fact.Point) *pointSet {
	s := &pointSet{set: treeset.NewWithStringComparator()}
	s.Add(points...)
	return s
}

func (s *pointSet) Add(points ...fact.Point) {
	for _, p := range points {
		s.set.Add(string(p))
	}
}

func (s *pointSet) Contains(p fact.Point) bool {
	return s.set.Contains(string(p))
}

// ContainsAll reports whether every given point is a member.
func (s *pointSet) ContainsAll(points []fact.Point) bool {
	for _, p := range points {
		if !s.Contains(p) {
			return false
		}
	}
	return true
}

// CountShared returns how many of the given points are members.
func (s *pointSet) CountShared(points []fact.Point) int {
	n := 0
	for _, p := range points {
		if s.Contains(p) {
			n++
		}
	}
	return n
}

// Union adds every member of o to s.
func (s *pointSet) Union(o *pointSet) {
	it := o.set.Iterator()
	for it.Next() {
		s.set.Add(it.Value())
	}
}

func (s *pointSet) Size() int {
	return s.set.Size()
}

// Sorted returns the members in lexicographic order.
func (s *pointSet) Sorted() []fact.Point {
	points := make([]fact.Point, 0, s.set.Size())
	it := s.set.Iterator()
	for it.Next() {
		points = append(points, fact.Point(it.Value().(string)))
	}
	return points
}

// segmentComparator orders segments by their canonical endpoint pair.
func segmentComparator(a, b interface{}) int {
	sa := a.(fact.Segment)
	sb := b.(fact.Segment)
	if c := utils.StringComparator(string(sa.P1()), string(sb.P1())); c != 0 {
		return c
	}
	return utils.StringComparator(string(sa.P2()), string(sb.P2()))
}

// segmentSet is an ordered set of canonical segments.
type segmentSet struct {
	set *treeset.Set
}

func newSegmentSet(segments ...fact.Segment) *segmentSet {
	s := &segmentSet{set: treeset.NewWith(segmentComparator)}
	s.Add(segments...)
	return s
}

func (s *segmentSet) Add(segments ...fact.Segment) {
	for _, seg := range segments {
		s.set.Add(seg)
	}
}

func (s *segmentSet) Contains(seg fact.Segment) bool {
	return s.set.Contains(seg)
}

// CountShared returns how many of the given segments are members.
func (s *segmentSet) CountShared(segments []fact.Segment) int {
	n := 0
	for _, seg := range segments {
		if s.Contains(seg) {
			n++
		}
	}
	return n
}

// Union adds every member of o to s.
func (s *segmentSet) Union(o *segmentSet) {
	it := o.set.Iterator()
	for it.Next() {
		s.set.Add(it.Value())
	}
}

func (s *segmentSet) Size() int {
	return s.set.Size()
}

// Sorted returns the members in canonical order.
func (s *segmentSet) Sorted() []fact.Segment {
	segments := make([]fact.Segment, 0, s.set.Size())
	it := s.set.Iterator()
	for it.Next() {
		segments = append(segments, it.Value().(fact.Segment))
	}
	return segments
}

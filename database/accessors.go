// This file contains the read-only accessors the deduction engine and the
// tests enumerate over. Every accessor returns fresh copies; mutating a
// returned slice never touches database state.

package database

import (
	"sort"

	"github.com/mikenye/geomdb/fact"
)

// Lines returns the live line keys in creation order.
func (d *Database) Lines() []fact.LineKey {
	keys := make([]fact.LineKey, len(d.lineOrder))
	copy(keys, d.lineOrder)
	return keys
}

// LinePoints returns the sorted points of a line class, or nil for a
// retired or unknown key.
func (d *Database) LinePoints(lk fact.LineKey) []fact.Point {
	line, ok := d.lines[lk]
	if !ok {
		return nil
	}
	return line.Sorted()
}

// Congs returns the live congruence class keys in creation order.
func (d *Database) Congs() []fact.CongKey {
	keys := make([]fact.CongKey, len(d.congOrder))
	copy(keys, d.congOrder)
	return keys
}

// CongSegments returns the sorted segments of a congruence class, or nil
// for a retired or unknown key.
func (d *Database) CongSegments(ck fact.CongKey) []fact.Segment {
	class, ok := d.congs[ck]
	if !ok {
		return nil
	}
	return class.Sorted()
}

// Circles returns immutable snapshots of the stored circles, in store
// order.
func (d *Database) Circles() []fact.Circle {
	circles := make([]fact.Circle, len(d.circles))
	for i, c := range d.circles {
		circles[i] = fact.NewCircle(c.centre, c.points.Sorted()...)
	}
	return circles
}

// MidpointFacts returns the stored midpoint facts, each [M, A, B] with
// A < B.
func (d *Database) MidpointFacts() [][3]fact.Point {
	facts := make([][3]fact.Point, len(d.midpFacts))
	copy(facts, d.midpFacts)
	return facts
}

// ParallelClasses returns the parallel classes, each a sorted slice of line
// keys.
func (d *Database) ParallelClasses() [][]fact.LineKey {
	classes := make([][]fact.LineKey, len(d.paraFacts))
	for i, class := range d.paraFacts {
		classes[i] = sortedLineKeys(class)
	}
	return classes
}

// PerpendicularFacts returns the stored perpendicular line-key pairs.
func (d *Database) PerpendicularFacts() [][2]fact.LineKey {
	facts := make([][2]fact.LineKey, len(d.perpFacts))
	copy(facts, d.perpFacts)
	return facts
}

// EqAngleClasses returns the equal-angle classes, angles sorted within each
// class.
func (d *Database) EqAngleClasses() [][]fact.Angle {
	classes := make([][]fact.Angle, len(d.eqangleFacts))
	for i, class := range d.eqangleFacts {
		angles := make([]fact.Angle, 0, len(class))
		for a := range class {
			angles = append(angles, a)
		}
		sort.Slice(angles, func(x, y int) bool {
			if angles[x].LK1() != angles[y].LK1() {
				return angles[x].LK1() < angles[y].LK1()
			}
			return angles[x].LK2() < angles[y].LK2()
		})
		classes[i] = angles
	}
	return classes
}

// EqRatioClasses returns the equal-ratio classes, ratios sorted within each
// class.
func (d *Database) EqRatioClasses() [][]fact.Ratio {
	classes := make([][]fact.Ratio, len(d.eqratioFacts))
	for i, class := range d.eqratioFacts {
		ratios := make([]fact.Ratio, 0, len(class))
		for r := range class {
			ratios = append(ratios, r)
		}
		sort.Slice(ratios, func(x, y int) bool {
			if ratios[x].C1() != ratios[y].C1() {
				return ratios[x].C1() < ratios[y].C1()
			}
			return ratios[x].C2() < ratios[y].C2()
		})
		classes[i] = ratios
	}
	return classes
}

// SimilarTriangleClasses returns the similarity classes, triangles sorted
// within each class by their vertex string.
func (d *Database) SimilarTriangleClasses() [][]fact.Triangle {
	return triangleClassSlices(d.simtriFacts)
}

// CongruentTriangleClasses returns the congruence classes of triangles,
// sorted as for SimilarTriangleClasses.
func (d *Database) CongruentTriangleClasses() [][]fact.Triangle {
	return triangleClassSlices(d.contriFacts)
}

func triangleClassSlices(classes []triangleClass) [][]fact.Triangle {
	out := make([][]fact.Triangle, len(classes))
	for i, class := range classes {
		triangles := make([]fact.Triangle, 0, len(class))
		for t := range class {
			triangles = append(triangles, t)
		}
		sort.Slice(triangles, func(x, y int) bool {
			return triangles[x].String() < triangles[y].String()
		})
		out[i] = triangles
	}
	return out
}

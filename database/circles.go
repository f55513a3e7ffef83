// This file contains the circle store. Anonymous concyclicity facts merge
// by three shared points (three points determine a circle); named circle
// facts merge by centre plus one shared point.

package database

import (
	"fmt"

	"github.com/mikenye/geomdb/fact"
)

// circleRecord is a live circle: a centre name and the growing set of
// points known to lie on it. Cyclic facts get a synthetic centre name.
type circleRecord struct {
	centre fact.Point
	points *pointSet
}

// newCentreName mints the first centre name ("O1", "O2", ...) not already
// used by a stored circle.
func (d *Database) newCentreName() fact.Point {
	for n := 1; ; n++ {
		centre := fact.Point(fmt.Sprintf("O%d", n))
		used := false
		for _, c := range d.circles {
			if c.centre == centre {
				used = true
				break
			}
		}
		if !used {
			return centre
		}
	}
}

// cyclicHandler inserts a concyclicity fact. A stored circle sharing three
// or more of the fact's points must be the same circle: zero overlaps mint
// a circle under a fresh centre name, one overlap extends it, and two or
// more merge into the first, which keeps its centre name.
func (d *Database) cyclicHandler(points []fact.Point) {
	var overlapping []int
	for i, c := range d.circles {
		if c.points.CountShared(points) >= 3 {
			overlapping = append(overlapping, i)
		}
	}

	switch len(overlapping) {
	case 0:
		d.circles = append(d.circles, &circleRecord{
			centre: d.newCentreName(),
			points: newPointSet(points...),
		})
	case 1:
		d.circles[overlapping[0]].points.Add(points...)
	default:
		keep := d.circles[overlapping[0]]
		keep.points.Add(points...)
		for _, i := range overlapping[1:] {
			keep.points.Union(d.circles[i].points)
		}
		// Drop merged records from the back so indices stay valid.
		for j := len(overlapping) - 1; j >= 1; j-- {
			i := overlapping[j]
			d.circles = append(d.circles[:i], d.circles[i+1:]...)
		}
	}
}

// circleHandler inserts a named-circle fact. All stored circles are scanned
// once; the first with the same centre and at least one shared non-centre
// point is extended in place, otherwise a fresh record is appended.
func (d *Database) circleHandler(centre fact.Point, points []fact.Point) {
	for _, c := range d.circles {
		if c.centre != centre {
			continue
		}
		if c.points.CountShared(points) >= 1 {
			c.points.Add(points...)
			return
		}
	}
	d.circles = append(d.circles, &circleRecord{
		centre: centre,
		points: newPointSet(points...),
	})
}

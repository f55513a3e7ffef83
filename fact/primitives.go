// This file contains the primitive values that fact arguments are built
// from: points, segments, class keys, angles, ratios, triangles and circles.
// All of them except Circle, which holds a slice of points, are small
// comparable values; none of them carry pointers into the database.

package fact

import (
	"fmt"
	"sort"
	"strings"
)

// Point is an opaque point identifier, usually a short uppercase name such
// as "A" or "M1". Points are never merged and never renamed; the total order
// required by midpoint normalisation and snapshot rendering is the
// lexicographic order on the name.
type Point string

// SortPoints sorts a slice of points in place in lexicographic order and
// returns it.
func SortPoints(points []Point) []Point {
	sort.Slice(points, func(i, j int) bool { return points[i] < points[j] })
	return points
}

// LineKey names a line equivalence class, a set of mutually collinear
// points. Keys are minted by the database ("line1", "line2", ...) and are not
// stable across merges: when two classes merge, one key survives and every
// reference to the other is rewritten.
type LineKey string

// CongKey names a congruence equivalence class, a set of mutually congruent
// segments ("cong1", "cong2", ...). Like [LineKey], a CongKey is not stable
// across merges.
type CongKey string

// Segment is an unordered pair of distinct points. The constructor stores
// the endpoints in sorted order, so segments compare equal regardless of the
// order the endpoints were given in.
type Segment struct {
	p1 Point
	p2 Point
}

// NewSegment returns the segment with the given endpoints. Endpoint order is
// irrelevant: the canonical form sorts the two points.
func NewSegment(a, b Point) Segment {
	if b < a {
		a, b = b, a
	}
	return Segment{p1: a, p2: b}
}

// P1 returns the lexicographically smaller endpoint.
func (s Segment) P1() Point {
	return s.p1
}

// P2 returns the lexicographically larger endpoint.
func (s Segment) P2() Point {
	return s.p2
}

// Other returns the endpoint of s that is not p, and whether p is an
// endpoint of s at all.
func (s Segment) Other(p Point) (Point, bool) {
	switch p {
	case s.p1:
		return s.p2, true
	case s.p2:
		return s.p1, true
	}
	return "", false
}

// String renders the segment as the concatenation of its sorted endpoint
// names, for example "AB".
func (s Segment) String() string {
	return string(s.p1) + string(s.p2)
}

// Angle is the directed angle from one line to another, represented by the
// ordered pair of their class keys. Angle(a, b) and Angle(b, a) are distinct
// values; the eqangle symmetry group, not Angle equality, relates them.
type Angle struct {
	lk1 LineKey
	lk2 LineKey
}

// NewAngle returns the directed angle from the line named lk1 to the line
// named lk2.
func NewAngle(lk1, lk2 LineKey) Angle {
	return Angle{lk1: lk1, lk2: lk2}
}

// LK1 returns the key of the line the angle is measured from.
func (a Angle) LK1() LineKey {
	return a.lk1
}

// LK2 returns the key of the line the angle is measured to.
func (a Angle) LK2() LineKey {
	return a.lk2
}

// Rewrite returns the angle with every occurrence of the key drop replaced
// by keep. Used when a line-class merge retires a key.
func (a Angle) Rewrite(drop, keep LineKey) Angle {
	if a.lk1 == drop {
		a.lk1 = keep
	}
	if a.lk2 == drop {
		a.lk2 = keep
	}
	return a
}

func (a Angle) String() string {
	return fmt.Sprintf("Angle(%s,%s)", a.lk1, a.lk2)
}

// Ratio is the ratio of the lengths of two congruence classes, represented
// by the ordered pair of their keys.
type Ratio struct {
	c1 CongKey
	c2 CongKey
}

// NewRatio returns the ratio of congruence class c1 to congruence class c2.
func NewRatio(c1, c2 CongKey) Ratio {
	return Ratio{c1: c1, c2: c2}
}

// C1 returns the numerator congruence class key.
func (r Ratio) C1() CongKey {
	return r.c1
}

// C2 returns the denominator congruence class key.
func (r Ratio) C2() CongKey {
	return r.c2
}

// Rewrite returns the ratio with every occurrence of the key drop replaced
// by keep. Used when a congruence-class merge retires a key.
func (r Ratio) Rewrite(drop, keep CongKey) Ratio {
	if r.c1 == drop {
		r.c1 = keep
	}
	if r.c2 == drop {
		r.c2 = keep
	}
	return r
}

func (r Ratio) String() string {
	return fmt.Sprintf("Ratio(%s,%s)", r.c1, r.c2)
}

// Triangle is an ordered triple of points. Unlike [Segment], vertex order is
// semantically significant: in a simtri or contri fact, vertex i of one
// triangle corresponds to vertex i of the other, and the database keeps all
// triangles of one similarity class aligned to a common vertex order.
type Triangle struct {
	p1 Point
	p2 Point
	p3 Point
}

// NewTriangle returns the triangle with the given vertices, in the given
// order.
func NewTriangle(a, b, c Point) Triangle {
	return Triangle{p1: a, p2: b, p3: c}
}

// Vertices returns the three vertices in stored order.
func (t Triangle) Vertices() [3]Point {
	return [3]Point{t.p1, t.p2, t.p3}
}

// Permute returns the triangle reordered by the permutation sigma: vertex i
// of the result is vertex sigma[i] of t.
func (t Triangle) Permute(sigma Perm3) Triangle {
	v := t.Vertices()
	return Triangle{p1: v[sigma[0]], p2: v[sigma[1]], p3: v[sigma[2]]}
}

// SameVertices reports whether t and u have the same vertex set, in any
// order.
func (t Triangle) SameVertices(u Triangle) bool {
	_, ok := AlignPerm(t, u)
	return ok
}

// String renders the triangle as the concatenation of its vertex names in
// stored order, for example "ABC".
func (t Triangle) String() string {
	return string(t.p1) + string(t.p2) + string(t.p3)
}

// Perm3 is a permutation of three indices, an element of the symmetric group
// S3. Applying it with [Triangle.Permute] maps vertex i of the result to
// vertex Perm3[i] of the argument.
type Perm3 [3]int

// IdentityPerm is the identity element of S3.
var IdentityPerm = Perm3{0, 1, 2}

// S3 lists all six elements of the symmetric group on three indices.
var S3 = [6]Perm3{
	{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0},
}

// Inverse returns the permutation that undoes sigma.
func (sigma Perm3) Inverse() Perm3 {
	var inv Perm3
	for i, s := range sigma {
		inv[s] = i
	}
	return inv
}

// Compose returns the permutation equivalent to applying sigma first and tau
// second: t.Permute(sigma).Permute(tau) == t.Permute(sigma.Compose(tau)).
func (sigma Perm3) Compose(tau Perm3) Perm3 {
	return Perm3{sigma[tau[0]], sigma[tau[1]], sigma[tau[2]]}
}

// AlignPerm returns the permutation sigma with t.Permute(sigma) == u, if the
// two triangles have the same vertex set. The second return value reports
// whether such a permutation exists; it is unique when the vertices are
// distinct.
func AlignPerm(t, u Triangle) (Perm3, bool) {
	tv := t.Vertices()
	uv := u.Vertices()
	var sigma Perm3
	for i, v := range uv {
		found := false
		for j, w := range tv {
			if v == w {
				sigma[i] = j
				found = true
				break
			}
		}
		if !found {
			return IdentityPerm, false
		}
	}
	return sigma, true
}

// Circle is a named circle: a centre point and the set of points known to
// lie on the circle. The point set excludes the centre. Circle is an
// immutable snapshot value; the database owns the live, growing records.
type Circle struct {
	centre Point
	points []Point
}

// NewCircle returns a circle with the given centre and on-circle points. The
// point slice is copied and sorted.
func NewCircle(centre Point, points ...Point) Circle {
	cp := make([]Point, len(points))
	copy(cp, points)
	return Circle{centre: centre, points: SortPoints(cp)}
}

// Centre returns the centre point of the circle.
func (c Circle) Centre() Point {
	return c.centre
}

// Points returns the on-circle points in sorted order. The returned slice
// must not be modified.
func (c Circle) Points() []Point {
	return c.points
}

// Contains reports whether p is one of the circle's on-circle points.
func (c Circle) Contains(p Point) bool {
	i := sort.Search(len(c.points), func(i int) bool { return c.points[i] >= p })
	return i < len(c.points) && c.points[i] == p
}

// String renders the circle as Circle(centre, [points...]).
func (c Circle) String() string {
	names := make([]string, len(c.points))
	for i, p := range c.points {
		names[i] = string(p)
	}
	return fmt.Sprintf("Circle(%s, [%s])", c.centre, strings.Join(names, ","))
}

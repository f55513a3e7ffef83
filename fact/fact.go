// Package fact defines the primitive value model of the geomdb fact database:
// named points, order-normalised segments, line and congruence class keys,
// directed angles, segment-length ratios, ordered triangles, circles, and the
// Fact tagged union that the database stores.
//
// # Overview
//
// A [Fact] is the canonical, key-level representation of a geometric claim.
// Its arguments are either points (coll, midp, cyclic, circle), line class
// keys (para, perp, eqangle), congruence class keys (eqratio), segments
// (cong), or ordered triangles (simtri, contri). The point-level, user-facing
// form of a claim is a predicate; the bridge between the two lives in the
// database package, because lifting a predicate to a fact requires interning
// point pairs into line and congruence classes.
//
// All types in this package are immutable values. The argument types
// (Point, Segment, LineKey, CongKey, Angle, Ratio, Triangle, Perm3) are
// comparable with == and safe to use as map keys; [Fact] and [Circle] hold
// slices, so they are not comparable with == and facts are compared with
// [Fact.Eq]. Where a symmetry allows it, construction
// normalises argument order: a [Segment] sorts its endpoints, so
// NewSegment("B", "A") == NewSegment("A", "B"). A [Triangle] does not: vertex
// order encodes the correspondence between two similar or congruent
// triangles and is semantically significant.
package fact

import (
	"fmt"
	"strings"
)

// Kind identifies the relation a [Fact] or predicate asserts.
type Kind uint8

// Valid values for Kind.
const (
	// KindColl asserts that three or more points are collinear.
	KindColl = Kind(iota)

	// KindMidp asserts that a point is the midpoint of a segment.
	KindMidp

	// KindPara asserts that two lines are parallel.
	KindPara

	// KindPerp asserts that two lines are perpendicular.
	KindPerp

	// KindCong asserts that two segments have equal length.
	KindCong

	// KindEqAngle asserts that two directed angles are equal.
	KindEqAngle

	// KindEqRatio asserts that two segment-length ratios are equal.
	KindEqRatio

	// KindCyclic asserts that four or more points lie on one circle.
	KindCyclic

	// KindCircle asserts that points lie on a circle with a named centre.
	KindCircle

	// KindSimTri asserts that two triangles are similar, with vertex
	// order encoding the correspondence.
	KindSimTri

	// KindConTri asserts that two triangles are congruent, with vertex
	// order encoding the correspondence.
	KindConTri
)

var kindNames = map[Kind]string{
	KindColl:    "coll",
	KindMidp:    "midp",
	KindPara:    "para",
	KindPerp:    "perp",
	KindCong:    "cong",
	KindEqAngle: "eqangle",
	KindEqRatio: "eqratio",
	KindCyclic:  "cyclic",
	KindCircle:  "circle",
	KindSimTri:  "simtri",
	KindConTri:  "contri",
}

var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind, len(kindNames))
	for k, n := range kindNames {
		m[n] = k
	}
	return m
}()

// String returns the lowercase textual name of the kind, as used in the
// on-the-wire predicate form, for example "coll" or "eqangle".
func (k Kind) String() string {
	n, ok := kindNames[k]
	if !ok {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return n
}

// ParseKind resolves a textual kind name to its [Kind] value. The second
// return value reports whether the name is known.
func ParseKind(name string) (Kind, bool) {
	k, ok := kindsByName[name]
	return k, ok
}

// Fact is the canonical, key-level representation of a geometric claim, a
// tagged union over the kinds listed in [Kind]. Construct values with the
// kind-specific constructors ([Coll], [Midp], [Para], and so on); the zero
// value is a coll fact over no points and is not meaningful.
//
// A Fact holds class keys rather than points wherever the claim is about
// lines or congruence classes, so two facts compare equal exactly when they
// are the same canonical claim against one database state.
type Fact struct {
	kind      Kind
	points    []Point
	lines     []LineKey
	congs     []CongKey
	segments  []Segment
	triangles []Triangle
}

// Coll returns a collinearity fact over the given points.
func Coll(points ...Point) Fact {
	return Fact{kind: KindColl, points: points}
}

// Midp returns a midpoint fact asserting that m is the midpoint of segment
// ab. The two endpoints are stored in sorted order, so Midp(m, a, b) and
// Midp(m, b, a) are the same fact.
func Midp(m, a, b Point) Fact {
	if b < a {
		a, b = b, a
	}
	return Fact{kind: KindMidp, points: []Point{m, a, b}}
}

// Para returns a parallelism fact over two line class keys.
func Para(lk1, lk2 LineKey) Fact {
	return Fact{kind: KindPara, lines: []LineKey{lk1, lk2}}
}

// Perp returns a perpendicularity fact over two line class keys.
func Perp(lk1, lk2 LineKey) Fact {
	return Fact{kind: KindPerp, lines: []LineKey{lk1, lk2}}
}

// Cong returns a congruence fact over two segments.
func Cong(s1, s2 Segment) Fact {
	return Fact{kind: KindCong, segments: []Segment{s1, s2}}
}

// EqAngle returns an equal-angle fact asserting that the directed angle from
// lk1 to lk2 equals the directed angle from lk3 to lk4.
func EqAngle(lk1, lk2, lk3, lk4 LineKey) Fact {
	return Fact{kind: KindEqAngle, lines: []LineKey{lk1, lk2, lk3, lk4}}
}

// EqRatio returns an equal-ratio fact asserting that the length ratio of
// congruence classes ck1:ck2 equals ck3:ck4.
func EqRatio(ck1, ck2, ck3, ck4 CongKey) Fact {
	return Fact{kind: KindEqRatio, congs: []CongKey{ck1, ck2, ck3, ck4}}
}

// Cyclic returns a concyclicity fact over the given points.
func Cyclic(points ...Point) Fact {
	return Fact{kind: KindCyclic, points: points}
}

// OnCircle returns a named-circle fact asserting that the given points lie on
// a circle centred at centre.
func OnCircle(centre Point, points ...Point) Fact {
	return Fact{kind: KindCircle, points: append([]Point{centre}, points...)}
}

// SimTri returns a similar-triangle fact. Vertex order is significant: vertex
// i of t1 corresponds to vertex i of t2.
func SimTri(t1, t2 Triangle) Fact {
	return Fact{kind: KindSimTri, triangles: []Triangle{t1, t2}}
}

// ConTri returns a congruent-triangle fact. Vertex order is significant, as
// for [SimTri].
func ConTri(t1, t2 Triangle) Fact {
	return Fact{kind: KindConTri, triangles: []Triangle{t1, t2}}
}

// Kind returns the relation this fact asserts.
func (f Fact) Kind() Kind {
	return f.kind
}

// Points returns the point arguments of a coll, midp, cyclic or circle fact.
// For a circle fact the first point is the centre. The returned slice must
// not be modified.
func (f Fact) Points() []Point {
	return f.points
}

// Lines returns the line class keys of a para, perp or eqangle fact. The
// returned slice must not be modified.
func (f Fact) Lines() []LineKey {
	return f.lines
}

// Congs returns the congruence class keys of an eqratio fact. The returned
// slice must not be modified.
func (f Fact) Congs() []CongKey {
	return f.congs
}

// Segments returns the two segments of a cong fact. The returned slice must
// not be modified.
func (f Fact) Segments() []Segment {
	return f.segments
}

// Triangles returns the two ordered triangles of a simtri or contri fact.
// The returned slice must not be modified.
func (f Fact) Triangles() []Triangle {
	return f.triangles
}

// Eq reports whether two facts are the same canonical claim: the same kind
// with identical arguments in order. Symmetry-equivalent but syntactically
// different facts (for example the two operand orders of an eqangle) compare
// unequal here; the database's containment check is the symmetry-aware test.
func (f Fact) Eq(g Fact) bool {
	if f.kind != g.kind {
		return false
	}
	if len(f.points) != len(g.points) || len(f.lines) != len(g.lines) ||
		len(f.congs) != len(g.congs) || len(f.segments) != len(g.segments) ||
		len(f.triangles) != len(g.triangles) {
		return false
	}
	for i, p := range f.points {
		if g.points[i] != p {
			return false
		}
	}
	for i, lk := range f.lines {
		if g.lines[i] != lk {
			return false
		}
	}
	for i, ck := range f.congs {
		if g.congs[i] != ck {
			return false
		}
	}
	for i, s := range f.segments {
		if g.segments[i] != s {
			return false
		}
	}
	for i, tr := range f.triangles {
		if g.triangles[i] != tr {
			return false
		}
	}
	return true
}

// String renders the fact as kind(arg, ...) with key strings for class-level
// arguments. The rendering is stable and intended for debugging output.
func (f Fact) String() string {
	args := make([]string, 0, len(f.points)+len(f.lines)+len(f.congs)+len(f.segments)+len(f.triangles))
	for _, p := range f.points {
		args = append(args, string(p))
	}
	for _, lk := range f.lines {
		args = append(args, string(lk))
	}
	for _, ck := range f.congs {
		args = append(args, string(ck))
	}
	for _, s := range f.segments {
		args = append(args, s.String())
	}
	for _, tr := range f.triangles {
		args = append(args, tr.String())
	}
	return fmt.Sprintf("%s(%s)", f.kind, strings.Join(args, ","))
}

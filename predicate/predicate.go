// Package predicate defines the point-level, user-facing form of a geometric
// claim and the textual parser for it.
//
// # Overview
//
// A [Predicate] pairs a relation kind with a list of point names, for example
// para(A,B,C,D) or eqangle(A,B,C,D,P,Q,U,V). Many syntactically distinct
// predicates denote the same canonical fact; the database package performs
// the lifting in both directions.
//
// The textual form accepted by [Parse] is kind(arg, ...), one predicate per
// line in files, with blank lines and '#' comments ignored. Each kind has a
// fixed arity (or a minimum arity for the variadic kinds coll, cyclic and
// circle), checked at parse and construction time.
package predicate

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mikenye/geomdb/fact"
)

// Sentinel errors returned when a predicate is malformed.
var (
	// ErrSyntax indicates text that is not of the form kind(arg, ...).
	ErrSyntax = errors.New("predicate: malformed predicate text")
	// ErrUnknownKind indicates a kind name outside the supported taxonomy.
	ErrUnknownKind = errors.New("predicate: unknown predicate kind")
	// ErrArity indicates an argument count that is invalid for the kind.
	ErrArity = errors.New("predicate: wrong number of arguments")
)

// arity bounds per kind; max of 0 means unbounded above min.
var arities = map[fact.Kind]struct{ min, max int }{
	fact.KindColl:    {3, 0},
	fact.KindMidp:    {3, 3},
	fact.KindPara:    {4, 4},
	fact.KindPerp:    {4, 4},
	fact.KindCong:    {4, 4},
	fact.KindEqAngle: {8, 8},
	fact.KindEqRatio: {8, 8},
	fact.KindCyclic:  {4, 0},
	fact.KindCircle:  {4, 0},
	fact.KindSimTri:  {6, 6},
	fact.KindConTri:  {6, 6},
}

// Predicate is a point-level geometric claim: a relation kind applied to a
// list of point names. For a circle predicate the first point is the centre.
type Predicate struct {
	kind   fact.Kind
	points []fact.Point
}

// New constructs a predicate after validating the argument count for the
// kind. The point slice is copied.
func New(kind fact.Kind, points ...fact.Point) (Predicate, error) {
	bounds, ok := arities[kind]
	if !ok {
		return Predicate{}, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
	if len(points) < bounds.min || (bounds.max > 0 && len(points) > bounds.max) {
		return Predicate{}, fmt.Errorf("%w: %s takes %s, got %d",
			ErrArity, kind, arityDescription(bounds.min, bounds.max), len(points))
	}
	cp := make([]fact.Point, len(points))
	copy(cp, points)
	return Predicate{kind: kind, points: cp}, nil
}

// MustNew is like [New] but panics on a malformed predicate. It is intended
// for tests and for literals whose validity is known at compile time.
func MustNew(kind fact.Kind, points ...fact.Point) Predicate {
	p, err := New(kind, points...)
	if err != nil {
		panic(err)
	}
	return p
}

func arityDescription(min, max int) string {
	if max == 0 {
		return fmt.Sprintf("at least %d arguments", min)
	}
	return fmt.Sprintf("exactly %d arguments", min)
}

// Kind returns the relation kind of the predicate.
func (p Predicate) Kind() fact.Kind {
	return p.kind
}

// Points returns the predicate's point arguments in declaration order. The
// returned slice must not be modified.
func (p Predicate) Points() []fact.Point {
	return p.points
}

// Eq reports whether two predicates are syntactically identical: the same
// kind and the same points in the same order.
func (p Predicate) Eq(q Predicate) bool {
	if p.kind != q.kind || len(p.points) != len(q.points) {
		return false
	}
	for i, pt := range p.points {
		if q.points[i] != pt {
			return false
		}
	}
	return true
}

// String renders the predicate in its on-the-wire form, kind(A,B,...).
// The rendering round-trips through [Parse].
func (p Predicate) String() string {
	names := make([]string, len(p.points))
	for i, pt := range p.points {
		names[i] = string(pt)
	}
	return fmt.Sprintf("%s(%s)", p.kind, strings.Join(names, ","))
}

// Parse parses a single textual predicate of the form kind(arg, ...).
// Whitespace around the kind and around each argument is ignored.
func Parse(text string) (Predicate, error) {
	s := strings.TrimSpace(text)
	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		return Predicate{}, fmt.Errorf("%w: %q", ErrSyntax, text)
	}
	name := strings.TrimSpace(s[:open])
	kind, ok := fact.ParseKind(name)
	if !ok {
		return Predicate{}, fmt.Errorf("%w: %q", ErrUnknownKind, name)
	}
	body := s[open+1 : len(s)-1]
	parts := strings.Split(body, ",")
	points := make([]fact.Point, 0, len(parts))
	for _, part := range parts {
		arg := strings.TrimSpace(part)
		if arg == "" {
			return Predicate{}, fmt.Errorf("%w: empty argument in %q", ErrSyntax, text)
		}
		points = append(points, fact.Point(arg))
	}
	return New(kind, points...)
}

// ParseAll parses newline-separated predicates from r. Blank lines and lines
// starting with '#' are skipped. On error, the returned error names the
// offending line number.
func ParseAll(r io.Reader) ([]Predicate, error) {
	var predicates []Predicate
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		p, err := Parse(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		predicates = append(predicates, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return predicates, nil
}

// ParseFile reads a hypotheses file with [ParseAll].
func ParseFile(path string) ([]Predicate, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	predicates, err := ParseAll(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return predicates, nil
}

// Package database implements the fact database of a synthetic-geometry
// deductive prover: the canonical, deduplicated store of geometric facts
// that a saturation loop reads from and writes into until fixed point.
//
// # Overview
//
// The [Database] maintains two live equivalence relations, lines of
// collinear points and classes of mutually congruent segments, together
// with named circles and the relation-class stores for midpoint, parallel,
// perpendicular, equal-angle, equal-ratio, similar-triangle and
// congruent-triangle facts. Inserting a fact normalises it, checks
// symmetry-aware containment, and if the fact is novel dispatches to the
// handler for its kind, which may create, extend or merge equivalence
// classes and rewrite the class keys held by dependent facts.
//
// # The predicate/fact bridge
//
// Claims enter either as point-level predicates ([Database.AddPredicate],
// used for the initial hypotheses) or as canonical key-level facts
// ([Database.AddFact], used by the deduction engine). Lifting a predicate
// to a fact interns every point pair that names a line or a congruence
// class, so the lift itself can grow the database. The reverse direction,
// [Database.FactToPredicates], enumerates the point-level forms of a fact
// under its symmetry group, drawing point pairs from line classes in sorted
// order; the deduction engine uses it for pattern matching.
//
// # Concurrency
//
// A Database is not safe for concurrent use. The saturation driver invokes
// it sequentially; all operations run to completion. Insertion order decides
// which key survives a merge but not the final set of equivalence classes.
package database

import (
	"errors"
	"fmt"

	"github.com/google/btree"
	"github.com/mikenye/geomdb/fact"
	"github.com/mikenye/geomdb/predicate"
)

// ErrMalformedFact indicates a fact whose payload does not match its kind,
// for example a para fact without exactly two line keys.
var ErrMalformedFact = errors.New("database: malformed fact")

// Database is the canonical fact store. The zero value is not usable;
// construct with [New].
type Database struct {
	lines     map[fact.LineKey]*pointSet
	lineOrder []fact.LineKey

	congs     map[fact.CongKey]*segmentSet
	congOrder []fact.CongKey

	circles []*circleRecord

	midpFacts [][3]fact.Point
	paraFacts []lineKeySet
	perpFacts [][2]fact.LineKey

	eqangleFacts []angleClass
	eqratioFacts []ratioClass

	simtriFacts []triangleClass
	contriFacts []triangleClass

	angleIndex *btree.BTreeG[angleEntry]
	ratioIndex *btree.BTreeG[ratioEntry]
}

// New returns an empty database.
func New() *Database {
	return &Database{
		lines:      make(map[fact.LineKey]*pointSet),
		congs:      make(map[fact.CongKey]*segmentSet),
		angleIndex: btree.NewG(2, angleEntryLess),
		ratioIndex: btree.NewG(2, ratioEntryLess),
	}
}

// AddPredicate normalises a point-level predicate into a canonical fact and
// inserts it. It is intended for loading the initial hypotheses; derived
// facts should come in through [Database.AddFact]. A predicate already
// represented in the database is a silent no-op.
func (d *Database) AddPredicate(p predicate.Predicate) error {
	f, err := d.PredicateToFact(p)
	if err != nil {
		return err
	}
	return d.AddFact(f)
}

// AddFact inserts a canonical fact. If a symmetry-equivalent fact is already
// contained, the call is a silent no-op. Otherwise the handler for the
// fact's kind runs, which may create, extend or merge equivalence classes
// and rewrite dependent key references.
//
// The only error condition is a malformed payload; "already present" is not
// an error.
func (d *Database) AddFact(f fact.Fact) error {
	if err := validateFact(f); err != nil {
		return err
	}
	if d.ContainsFact(f) {
		return nil
	}

	switch f.Kind() {
	case fact.KindColl:
		d.collHandler(f.Points())
	case fact.KindMidp:
		p := f.Points()
		d.midpHandler(p[0], p[1], p[2])
	case fact.KindPara:
		lk := f.Lines()
		d.paraHandler(lk[0], lk[1])
	case fact.KindPerp:
		lk := f.Lines()
		d.perpHandler(lk[0], lk[1])
	case fact.KindCong:
		s := f.Segments()
		d.congHandler(s[0], s[1])
	case fact.KindEqAngle:
		lk := f.Lines()
		d.eqangleHandler(lk[0], lk[1], lk[2], lk[3])
	case fact.KindEqRatio:
		ck := f.Congs()
		d.eqratioHandler(ck[0], ck[1], ck[2], ck[3])
	case fact.KindCyclic:
		d.cyclicHandler(f.Points())
	case fact.KindCircle:
		p := f.Points()
		d.circleHandler(p[0], p[1:])
	case fact.KindSimTri:
		t := f.Triangles()
		d.simtriFacts = addTrianglePair(d.simtriFacts, t[0], t[1])
	case fact.KindConTri:
		t := f.Triangles()
		d.contriFacts = addTrianglePair(d.contriFacts, t[0], t[1])
	}
	return nil
}

// validateFact checks that a fact's payload matches the shape its kind
// requires.
func validateFact(f fact.Fact) error {
	ok := false
	switch f.Kind() {
	case fact.KindColl:
		ok = len(f.Points()) >= 3
	case fact.KindMidp:
		ok = len(f.Points()) == 3
	case fact.KindPara, fact.KindPerp:
		ok = len(f.Lines()) == 2
	case fact.KindCong:
		ok = len(f.Segments()) == 2
	case fact.KindEqAngle:
		ok = len(f.Lines()) == 4
	case fact.KindEqRatio:
		ok = len(f.Congs()) == 4
	case fact.KindCyclic:
		ok = len(f.Points()) >= 4
	case fact.KindCircle:
		ok = len(f.Points()) >= 2
	case fact.KindSimTri, fact.KindConTri:
		ok = len(f.Triangles()) == 2
	default:
		return fmt.Errorf("%w: unknown kind %s", ErrMalformedFact, f.Kind())
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrMalformedFact, f)
	}
	return nil
}

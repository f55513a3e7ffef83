// Package prover implements the saturation loop over the geomdb fact
// database: load the hypotheses, repeatedly apply the deduction rules, and
// stop when a full pass derives nothing the database does not already
// contain.
//
// The prover reads and writes the database only through its public
// interface: rules enumerate stored facts through the read accessors,
// propose point-level conclusions, and every candidate is lifted to a
// canonical fact and checked with ContainsFact before insertion. Because
// insertion merges equivalence classes, one derived fact can make many
// pending candidates redundant; the containment check absorbs them
// silently.
package prover

import (
	"errors"
	"fmt"

	"github.com/mikenye/geomdb/database"
	"github.com/mikenye/geomdb/predicate"
)

// ErrNoFixedPoint indicates saturation did not converge within the
// configured round limit.
var ErrNoFixedPoint = errors.New("prover: no fixed point within round limit")

// DefaultMaxRounds bounds the saturation loop when no option overrides it.
// Every rule in the default set is monotone over a finite universe of
// points, so saturation terminates; the bound guards against a rule bug,
// not against the geometry.
const DefaultMaxRounds = 100

// Option configures a [Prover].
type Option func(*Prover)

// WithMaxRounds overrides the saturation round limit.
func WithMaxRounds(n int) Option {
	return func(p *Prover) {
		p.maxRounds = n
	}
}

// WithRules replaces the default deduction rule set. Intended for tests and
// for callers embedding the prover with a custom rule catalogue.
func WithRules(rules []Rule) Option {
	return func(p *Prover) {
		p.rules = rules
	}
}

// Prover owns one database and saturates it from a set of hypotheses.
type Prover struct {
	db         *database.Database
	hypotheses []predicate.Predicate
	rules      []Rule
	maxRounds  int
	rounds     int
}

// New returns a prover over a fresh database seeded with the given
// hypotheses. The hypotheses are not loaded until [Prover.FixedPoint] runs.
func New(hypotheses []predicate.Predicate, opts ...Option) *Prover {
	p := &Prover{
		db:         database.New(),
		hypotheses: hypotheses,
		rules:      DefaultRules(),
		maxRounds:  DefaultMaxRounds,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// FixedPoint loads the hypotheses and applies the rule set round by round
// until a full round derives nothing new, then returns the saturated
// database. It returns [ErrNoFixedPoint] if the round limit is hit first,
// with the database in its state at that point.
func (p *Prover) FixedPoint() (*database.Database, error) {
	for _, h := range p.hypotheses {
		if err := p.db.AddPredicate(h); err != nil {
			return nil, fmt.Errorf("loading hypothesis %s: %w", h, err)
		}
	}

	for p.rounds = 1; ; p.rounds++ {
		if p.rounds > p.maxRounds {
			p.rounds = p.maxRounds
			return p.db, ErrNoFixedPoint
		}
		changed := false
		for _, r := range p.rules {
			for _, candidate := range r.Apply(p.db) {
				f, err := p.db.PredicateToFact(candidate)
				if err != nil {
					return nil, fmt.Errorf("rule %s proposed %s: %w", r.Name, candidate, err)
				}
				if p.db.ContainsFact(f) {
					continue
				}
				if err := p.db.AddFact(f); err != nil {
					return nil, fmt.Errorf("rule %s proposed %s: %w", r.Name, candidate, err)
				}
				changed = true
			}
		}
		if !changed {
			return p.db, nil
		}
	}
}

// Rounds returns how many rule passes the last FixedPoint call ran,
// including the final pass that derived nothing.
func (p *Prover) Rounds() int {
	return p.rounds
}

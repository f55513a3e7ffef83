package database_test

import (
	"fmt"

	"github.com/mikenye/geomdb/database"
	"github.com/mikenye/geomdb/fact"
	"github.com/mikenye/geomdb/predicate"
)

func ExampleDatabase_ContainsFact() {
	d := database.New()

	// Two collinearity facts sharing two points describe one line.
	for _, text := range []string{"coll(A,B,C)", "coll(B,C,D)"} {
		p, _ := predicate.Parse(text)
		if err := d.AddPredicate(p); err != nil {
			fmt.Println(err)
			return
		}
	}

	fmt.Println(d.ContainsFact(fact.Coll("A", "D")))
	fmt.Println(d.ContainsFact(fact.Coll("A", "E")))

	// Output:
	// true
	// false
}

func ExampleDatabase_FactToPredicates() {
	d := database.New()

	p, _ := predicate.Parse("cong(A,B,C,D)")
	f, err := d.PredicateToFact(p)
	if err != nil {
		fmt.Println(err)
		return
	}

	// A segment congruence expands to every endpoint ordering.
	for _, expansion := range d.FactToPredicates(f) {
		fmt.Println(expansion)
	}

	// Output:
	// cong(A,B,C,D)
	// cong(A,B,D,C)
	// cong(B,A,C,D)
	// cong(B,A,D,C)
}

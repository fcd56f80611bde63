package rank_test

import (
	"fmt"

	"github.com/keydrift/keydrift/rank"
)

// ExampleLedger shows sorted insertion with the newest-tie-first rule.
func ExampleLedger() {
	l := rank.NewLedger()
	l.Insert("qwerty", 1.2)
	l.Insert("colemak", 3.5)
	l.Insert("custom", 3.5) // ties ahead of older equals

	l.Walk(func(e rank.Entry) bool {
		fmt.Printf("%s %.1f\n", e.Name, e.Score)

		return true
	})

	// Output:
	// custom 3.5
	// colemak 3.5
	// qwerty 1.2
}

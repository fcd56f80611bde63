package layout_test

import (
	"fmt"

	"github.com/keydrift/keydrift/keyspace"
	"github.com/keydrift/keydrift/layout"
	"github.com/keydrift/keydrift/stats"
)

// ExampleDiff compares two layouts position by position and reports raw
// score deltas.
func ExampleDiff() {
	g, _ := keyspace.NewGeometry(1, 2)
	shape := stats.Shape{MonoN: 1}

	a, _ := layout.New("ab", g, shape)
	a.Grid[0], a.Grid[1] = 0, 1
	a.Mono[0] = 60
	a.Score = 2.0

	b, _ := layout.New("ba", g, shape)
	b.Grid[0], b.Grid[1] = 1, 0
	b.Mono[0] = 40
	b.Score = 0.5

	d, _ := layout.Diff(a, b)
	fmt.Println("name:", d.Name)
	fmt.Println("grid:", d.Grid)
	fmt.Printf("mono delta: %.0f\n", d.Mono[0])
	fmt.Printf("score delta: %.1f\n", d.Score)

	// Output:
	// name: ab-ba
	// grid: [-1 -1]
	// mono delta: 20
	// score delta: 1.5
}

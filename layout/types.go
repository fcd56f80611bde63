// Package layout - the Layout type and sentinel errors.
package layout

import (
	"errors"

	"github.com/keydrift/keydrift/keyspace"
	"github.com/keydrift/keydrift/stats"
)

// Sentinel errors for layout operations.
var (
	// ErrNilLayout indicates a nil layout operand.
	ErrNilLayout = errors.New("layout: nil layout")
	// ErrBadShape indicates a negative score-array length at allocation.
	ErrBadShape = errors.New("layout: negative score-array length")
	// ErrShapeMismatch indicates operands sized for different shapes or
	// grid geometries.
	ErrShapeMismatch = errors.New("layout: shape or geometry mismatch")
)

// MaxNameLen bounds layout names so two names always concatenate safely
// into a diff name.
const MaxNameLen = 48

// Mismatch is the grid sentinel a Diff writes where the two inputs
// disagree on a key assignment.
const Mismatch = -1

// Layout assigns key codes to the positions of a fixed grid and carries
// one score slot per materialized statistic.
//
// Grid is flattened by key ordinal (see keyspace.Geometry.Ord). Skip is
// indexed [distance-1][statistic], matching stats.Weights.Skip.
type Layout struct {
	// Name identifies the layout; at most MaxNameLen characters.
	Name string

	// Geom is the grid shape the layout was allocated for.
	Geom keyspace.Geometry

	// Grid holds one key code per ordinal; Mismatch marks a diff conflict.
	Grid []int

	// Score is the aggregate weighted score, written by Total.
	Score float64

	// Per-category statistic scores, written by an evaluator.
	Mono []float64
	Bi   []float64
	Tri  []float64
	Quad []float64
	Skip [keyspace.SkipCount][]float64
	Meta []float64
}

// New allocates a fully zero-filled Layout for the given grid geometry and
// score-array shape. Allocation failure is not recoverable here: Go's
// runtime aborts on exhausted memory, which is the intended fatal contract.
func New(name string, geom keyspace.Geometry, shape stats.Shape) (*Layout, error) {
	if geom.Rows <= 0 || geom.Cols <= 0 {
		return nil, keyspace.ErrBadGeometry
	}
	if shape.MonoN < 0 || shape.BiN < 0 || shape.TriN < 0 ||
		shape.QuadN < 0 || shape.SkipN < 0 || shape.MetaN < 0 {
		return nil, ErrBadShape
	}

	l := &Layout{
		Name: Truncate(name),
		Geom: geom,
		Grid: make([]int, geom.Dim1()),
		Mono: make([]float64, shape.MonoN),
		Bi:   make([]float64, shape.BiN),
		Tri:  make([]float64, shape.TriN),
		Quad: make([]float64, shape.QuadN),
		Meta: make([]float64, shape.MetaN),
	}
	var d int
	for d = 0; d < keyspace.SkipCount; d++ {
		l.Skip[d] = make([]float64, shape.SkipN)
	}

	return l, nil
}

// Shape reports the score-array lengths the layout was allocated with.
func (l *Layout) Shape() stats.Shape {
	return stats.Shape{
		MonoN: len(l.Mono),
		BiN:   len(l.Bi),
		TriN:  len(l.Tri),
		QuadN: len(l.Quad),
		SkipN: len(l.Skip[0]),
		MetaN: len(l.Meta),
	}
}

// KeyAt returns the key code at ordinal ord.
func (l *Layout) KeyAt(ord int) (int, error) {
	if ord < 0 || ord >= len(l.Grid) {
		return 0, keyspace.ErrOrdRange
	}

	return l.Grid[ord], nil
}

// SwapKeys exchanges the key codes at ordinals i and j.
func (l *Layout) SwapKeys(i, j int) error {
	if i < 0 || i >= len(l.Grid) || j < 0 || j >= len(l.Grid) {
		return keyspace.ErrOrdRange
	}
	l.Grid[i], l.Grid[j] = l.Grid[j], l.Grid[i]

	return nil
}

// Truncate clips a name to MaxNameLen characters.
func Truncate(name string) string {
	if len(name) > MaxNameLen {
		return name[:MaxNameLen]
	}

	return name
}

// sameShape reports whether two layouts share geometry and score-array
// lengths, the precondition for CopyInto, Total's weight check and Diff.
func sameShape(a, b *Layout) bool {
	if a.Geom != b.Geom || len(a.Grid) != len(b.Grid) {
		return false
	}
	if len(a.Mono) != len(b.Mono) || len(a.Bi) != len(b.Bi) ||
		len(a.Tri) != len(b.Tri) || len(a.Quad) != len(b.Quad) ||
		len(a.Meta) != len(b.Meta) {
		return false
	}
	for d := 0; d < keyspace.SkipCount; d++ {
		if len(a.Skip[d]) != len(b.Skip[d]) {
			return false
		}
	}

	return true
}

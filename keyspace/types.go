// Package keyspace - grid geometry and sentinel errors shared by the codec.
package keyspace

import "errors"

// Sentinel errors for keyspace operations.
var (
	// ErrBadGeometry indicates a non-positive row or column count.
	ErrBadGeometry = errors.New("keyspace: rows and cols must be positive")
	// ErrOrdRange indicates a key ordinal outside [0, Dim1).
	ErrOrdRange = errors.New("keyspace: key ordinal out of range")
	// ErrIndexRange indicates a flat index outside its table's range.
	ErrIndexRange = errors.New("keyspace: flat index out of range")
	// ErrSkipRange indicates a skip distance outside [MinSkip, MaxSkip].
	ErrSkipRange = errors.New("keyspace: skip distance out of range")
)

// Skip distances tracked by skip-gram tables: adjacent-but-one (1) up to
// eight characters apart (9), inclusive.
const (
	// MinSkip is the smallest tracked skip distance.
	MinSkip = 1
	// MaxSkip is the largest tracked skip distance.
	MaxSkip = 9
	// SkipCount is the number of tracked skip distances.
	SkipCount = MaxSkip - MinSkip + 1
)

// Geometry describes a fixed Rows×Cols keyboard grid. It is immutable once
// built; all codec operations are methods on it.
type Geometry struct {
	// Rows is the number of key rows.
	Rows int
	// Cols is the number of key columns.
	Cols int
}

// NewGeometry validates the grid shape and returns a Geometry.
// Returns ErrBadGeometry when rows <= 0 or cols <= 0.
func NewGeometry(rows, cols int) (Geometry, error) {
	if rows <= 0 || cols <= 0 {
		return Geometry{}, ErrBadGeometry
	}

	return Geometry{Rows: rows, Cols: cols}, nil
}

// Dim1 is the number of key ordinals (single positions) on the grid.
func (g Geometry) Dim1() int { return g.Rows * g.Cols }

// Dim2 is the number of ordered 2-key sequences.
func (g Geometry) Dim2() int { d := g.Dim1(); return d * d }

// Dim3 is the number of ordered 3-key sequences.
func (g Geometry) Dim3() int { d := g.Dim1(); return d * d * d }

// Dim4 is the number of ordered 4-key sequences.
func (g Geometry) Dim4() int { d := g.Dim1(); return d * d * d * d }

// SkipDim is the size of the flattened skip table: one Dim2 block per
// tracked distance.
func (g Geometry) SkipDim() int { return SkipCount * g.Dim2() }

// Ord folds a (row, col) position into its key ordinal row*Cols+col.
// Returns ErrOrdRange when the position lies outside the grid.
func (g Geometry) Ord(row, col int) (int, error) {
	if row < 0 || row >= g.Rows || col < 0 || col >= g.Cols {
		return 0, ErrOrdRange
	}

	return row*g.Cols + col, nil
}

// Pos is the inverse of Ord: it splits a key ordinal back into (row, col).
// Returns ErrOrdRange when ord is outside [0, Dim1).
func (g Geometry) Pos(ord int) (row, col int, err error) {
	if ord < 0 || ord >= g.Dim1() {
		return 0, 0, ErrOrdRange
	}

	return ord / g.Cols, ord % g.Cols, nil
}

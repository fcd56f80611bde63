// Package layout - copy and shuffle operations.
package layout

import (
	"math/rand"

	"github.com/keydrift/keydrift/keyspace"
)

// defaultShuffleSeed is the fixed seed used when Shuffle receives a nil
// RNG. Arbitrary but stable, so nil-RNG callers stay reproducible.
const defaultShuffleSeed int64 = 1

// CopyInto deep-copies name, grid, total score and every score array from
// l into dst. dst must be pre-allocated with matching geometry and shape;
// no allocation happens here. Returns ErrShapeMismatch otherwise.
func (l *Layout) CopyInto(dst *Layout) error {
	if l == nil || dst == nil {
		return ErrNilLayout
	}
	if !sameShape(l, dst) {
		return ErrShapeMismatch
	}

	dst.Name = l.Name
	dst.Score = l.Score
	copy(dst.Grid, l.Grid)
	copy(dst.Mono, l.Mono)
	copy(dst.Bi, l.Bi)
	copy(dst.Tri, l.Tri)
	copy(dst.Quad, l.Quad)
	copy(dst.Meta, l.Meta)
	var d int
	for d = 0; d < keyspace.SkipCount; d++ {
		copy(dst.Skip[d], l.Skip[d])
	}

	return nil
}

// Clone allocates a new Layout of l's shape and deep-copies l into it.
func (l *Layout) Clone() (*Layout, error) {
	if l == nil {
		return nil, ErrNilLayout
	}

	out, err := New(l.Name, l.Geom, l.Shape())
	if err != nil {
		return nil, err
	}
	if err = l.CopyInto(out); err != nil {
		return nil, err
	}

	return out, nil
}

// Shuffle permutes the key assignments in place with a Fisher–Yates pass
// over the Dim1 grid slots: exactly Dim1−1 swap steps, uniform over all
// permutations for a uniform RNG. A nil rng falls back to a deterministic
// default stream. Score arrays are left untouched; the caller re-evaluates.
func (l *Layout) Shuffle(rng *rand.Rand) {
	n := len(l.Grid)
	if n <= 1 {
		return
	}

	r := rng
	if r == nil {
		r = rand.New(rand.NewSource(defaultShuffleSeed))
	}

	var i, j int
	for i = n - 1; i > 0; i-- {
		j = r.Intn(i + 1)
		l.Grid[i], l.Grid[j] = l.Grid[j], l.Grid[i]
	}
}

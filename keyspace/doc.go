// Package keyspace maps tuples of physical key positions to flat array
// indices and back, for a fixed Rows×Cols keyboard grid.
//
// What:
//
//   - Geometry describes the grid shape and derives the tuple counts
//     Dim1..Dim4 (number of distinct 1..4-key sequences).
//   - Flatten1..Flatten4 pack a tuple of key ordinals into a single index
//     using positional mixed-radix encoding, most significant key first.
//   - Unflatten1..Unflatten4 invert the packing exactly.
//   - FlattenSkip / UnflattenSkip address skip-gram tables keyed by a skip
//     distance in [1,9] plus an ordered key pair.
//
// Why:
//
//   - Frequency and score tables for n-gram statistics are stored as flat
//     slices; a collision-free, invertible codec keeps lookups O(1) and
//     storage contiguous.
//
// Guarantees:
//
//   - Round-trip: UnflattenN(FlattenN(t)) == t for every valid tuple.
//   - Injectivity: for a fixed order, no two distinct tuples share an index.
//
// Errors:
//
//   - ErrBadGeometry: non-positive row or column count.
//   - ErrOrdRange: a key ordinal is outside [0, Dim1).
//   - ErrIndexRange: a flat index is outside its table's range.
//   - ErrSkipRange: a skip distance is outside [MinSkip, MaxSkip].
//
// Complexity: every codec operation is O(1) with zero allocations.
package keyspace

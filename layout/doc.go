// Package layout defines the central Layout value object: a grid of key
// assignments plus per-category statistic score arrays, with lifecycle,
// aggregation and diff operations.
//
// What:
//
//   - Layout: a named Rows×Cols grid of key codes and six score containers
//     (mono, bi, tri, quad, skip per distance 1-9, meta), sized from a
//     stats.Shape so score arrays always match their weight tables.
//   - New / Clone / CopyInto: allocation and deep copy; CopyInto never
//     allocates.
//   - Shuffle: in-place Fisher–Yates permutation of the key assignments,
//     exactly Dim1−1 swaps, driven by a caller-supplied *rand.Rand.
//   - Total: the weighted sum of every score array against stats.Weights;
//     a pure reduction that also records the result in Layout.Score.
//   - Diff: element-wise score deltas (first minus second) across every
//     category, a merged grid with Mismatch where the inputs disagree, and
//     a truncate-then-concatenate name.
//
// Invariants:
//
//   - Every score array's length equals the corresponding weight table's
//     length; a Layout is fully allocated or not usable at all.
//   - A Layout exclusively owns its score buffers; CopyInto copies element
//     by element and never aliases.
//
// Errors:
//
//   - ErrNilLayout: a nil layout was passed to an operation.
//   - ErrBadShape: negative score-array length at allocation.
//   - ErrShapeMismatch: operands sized for different shapes or geometries.
//   - keyspace.ErrOrdRange: a key ordinal outside the grid.
//
// Scoring and Diff are O(S) in the total statistic count; Shuffle is
// O(Dim1); CopyInto is O(Dim1 + S).
package layout

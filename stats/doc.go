// Package stats declares weighted n-gram statistics and materializes them
// into the contiguous per-category tables the scorer and evaluator consume.
//
// What:
//
//   - Def: one named statistic — the flat key-sequence indices that qualify
//     for it plus its configured weight (skip statistics carry one weight
//     per skip distance 1-9; meta statistics carry linear terms over other
//     categories' scores).
//   - Builder: registration pipeline. Defs are added per category, then
//     Trim compacts each def's index list, Clean drops empty or unweighted
//     defs, and Materialize freezes the survivors into a Set plus the
//     matching Weights tables.
//   - Weights: per-category weight slices; their lengths define the score
//     array lengths of every Layout (see Weights.Shape).
//
// Why:
//
//   - Statistics come from declarative configuration; freezing them into
//     contiguous arrays gives the hot scoring loops dense, index-stable
//     tables and lets layouts size their score buffers once.
//
// Errors:
//
//   - ErrBadCategory: category outside the defined enum.
//   - ErrBadDef: def with an empty name.
//   - ErrBadMetaTerm: meta term referencing an unknown category or index.
//
// Complexity: Trim/Clean/Materialize are linear in the number of defs and
// their index lists; everything afterwards is O(1) lookups.
package stats

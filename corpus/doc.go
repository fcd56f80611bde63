// Package corpus holds raw n-gram counts for a character alphabet and
// converts them into normalized percentage frequencies.
//
// What:
//
//   - Counts: flattened int64 tables for monograms, bigrams, trigrams,
//     quadgrams and skip-grams (distances 1-9), indexed by character symbol.
//   - Frequencies: float64 tables of identical cardinality holding
//     percentages in [0, 100].
//   - Normalize / NormalizeInto: divide every count by its category's grand
//     total (skip-grams: one total per distance) and scale by 100.
//
// Why:
//
//   - Layout scoring works on relative frequency, not absolute counts, so
//     corpora of different sizes produce comparable scores.
//
// Guarantees:
//
//   - Summation order is fixed (linear table scans), so normalization is
//     deterministic and idempotent on unchanged inputs.
//   - A category (or a single skip distance) whose total is zero is left
//     untouched: an empty category is a valid input state, not an error.
//
// Errors:
//
//   - ErrBadAlphabet: non-positive alphabet size.
//   - ErrSymbolRange: a symbol index outside [0, Len).
//   - ErrShapeMismatch: NormalizeInto target built for another alphabet.
//
// Complexity: Normalize is O(L⁴) for alphabet size L (dominated by the
// quadgram table), one pass per table; accessors are O(1).
package corpus

// Package eval recomputes a layout's per-statistic score arrays from
// normalized corpus frequencies and materialized statistic definitions.
//
// What:
//
//   - Evaluator binds a grid geometry, a frequency set, a stats.Set and
//     its Weights at construction, validating every def's n-gram indices
//     once so the scoring loops run unchecked.
//   - Evaluate fills a layout's mono/bi/tri/quad/skip score arrays by
//     summing, for every qualifying key-position tuple of each statistic,
//     the corpus frequency of the characters the layout assigns there;
//     meta scores are then derived as linear combinations of the other
//     categories; finally the aggregate weighted total is computed and
//     recorded (see layout.Total).
//
// Degenerate inputs:
//
//   - A grid cell holding a code outside the alphabet (for example a
//     placeholder in a partially assigned layout) contributes zero to
//     every statistic it appears in. This is a valid input state, not an
//     error.
//
// Concurrency:
//
//   - An Evaluator is immutable after construction and safe for
//     concurrent use across workers, as long as each worker evaluates its
//     own layout.
//
// Complexity: O(total n-gram references across all defs) per Evaluate.
package eval

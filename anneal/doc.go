// Package anneal searches the layout permutation space with simulated
// annealing: per-round candidate swaps, parallel evaluation, and a
// temperature-scaled accept/reject policy.
//
// What:
//
//   - Engine owns one candidate layout per worker. A round proposes one
//     random key swap per candidate, re-evaluates all candidates in
//     parallel, decides acceptance per candidate, and reverts rejected
//     swaps exactly.
//   - Step(temp) runs one annealing round: an improving or equal score is
//     always kept; a decrease Δ<0 is kept with probability exp(Δ/temp),
//     one uniform draw per candidate.
//   - ImproveStep runs the greedy hill-climb variant: only strictly
//     improving swaps are ever kept, independent of temperature.
//   - Accepted results stream into an optional rank.Ledger and into the
//     engine's best-layout tracking.
//
// Concurrency:
//
//   - Each worker owns its candidate exclusively for the whole round, so
//     candidate mutation needs no locking. Frequencies and weights behind
//     the Evaluator are shared read-only. Rounds are barrier-synchronized:
//     every evaluation completes before any decision, every decision
//     before any revert.
//   - Engine methods themselves are not safe for concurrent callers; one
//     goroutine drives the rounds. The caller owns the stopping condition
//     (iteration budget, temperature floor) and checks it between rounds.
//
// Determinism:
//
//   - Every worker draws from its own RNG stream derived from Options.Seed
//     with a SplitMix64-style mix, so results are reproducible regardless
//     of goroutine scheduling.
//
// Errors:
//
//   - ErrBadWorkers: non-positive worker count.
//   - ErrNilEvaluator: engine built without an evaluator.
//   - ErrTooFewKeys: the grid has fewer than two slots to swap.
//
// A rejected swap is a normal outcome, not an error; evaluation errors
// abort the round and surface to the caller.
package anneal

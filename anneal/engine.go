// Package anneal - the round-stepping search engine.
//
// Round structure (barrier between every phase):
//
//	Propose  — one random swap of two distinct key slots per candidate.
//	Evaluate — all candidates re-scored in parallel, one goroutine each.
//	Decide   — per candidate: keep improvements, keep decreases with
//	           probability exp(Δ/temp), otherwise mark for reversal.
//	Revert   — marked candidates re-apply the inverse swap, restoring the
//	           pre-swap grid exactly.
//
// Phase draws (proposal slots, acceptance uniforms) come from per-worker
// streams on the driving goroutine, so a trajectory depends only on the
// seed, never on scheduling.
package anneal

import (
	"math"
	"math/rand"
	"sync"

	"github.com/keydrift/keydrift/layout"
)

// Engine drives the annealing search over a population of candidate
// layouts, one per worker.
type Engine struct {
	opts Options
	eval Evaluator

	cands      []*layout.Layout
	prevScores []float64
	swaps      [][2]int
	revert     []bool
	rngs       []*rand.Rand

	scores   []float64
	evalErrs []error

	best      *layout.Layout
	bestScore float64
}

// NewEngine clones seed into opts.Workers independent candidates,
// evaluates them once to establish the baseline scores, and returns a
// ready engine. The seed layout itself is never mutated.
func NewEngine(seed *layout.Layout, ev Evaluator, opts Options) (*Engine, error) {
	if seed == nil {
		return nil, layout.ErrNilLayout
	}
	if ev == nil {
		return nil, ErrNilEvaluator
	}
	if opts.Workers <= 0 {
		return nil, ErrBadWorkers
	}
	if len(seed.Grid) < 2 {
		return nil, ErrTooFewKeys
	}

	e := &Engine{
		opts:       opts,
		eval:       ev,
		cands:      make([]*layout.Layout, opts.Workers),
		prevScores: make([]float64, opts.Workers),
		swaps:      make([][2]int, opts.Workers),
		revert:     make([]bool, opts.Workers),
		rngs:       workerRNGs(opts.Seed, opts.Workers),
		scores:     make([]float64, opts.Workers),
		evalErrs:   make([]error, opts.Workers),
	}

	var (
		i   int
		err error
	)
	for i = 0; i < opts.Workers; i++ {
		if e.cands[i], err = seed.Clone(); err != nil {
			return nil, err
		}
	}

	e.evaluateAll()
	for i = 0; i < opts.Workers; i++ {
		if e.evalErrs[i] != nil {
			return nil, e.evalErrs[i]
		}
		e.prevScores[i] = e.scores[i]
	}

	if e.best, err = e.cands[0].Clone(); err != nil {
		return nil, err
	}
	e.bestScore = e.prevScores[0]
	for i = 1; i < opts.Workers; i++ {
		if e.prevScores[i] > e.bestScore {
			e.bestScore = e.prevScores[i]
			if err = e.cands[i].CopyInto(e.best); err != nil {
				return nil, err
			}
		}
	}

	return e, nil
}

// Step runs one full annealing round at the given temperature and reports
// its statistics. temp <= 0 degenerates to pure hill-climbing on Δ >= 0.
func (e *Engine) Step(temp float64) (RoundStats, error) {
	return e.round(func(i int, delta float64) bool {
		return acceptSwap(delta, temp, e.rngs[i])
	})
}

// ImproveStep runs one greedy hill-climb round: only strictly improving
// swaps are kept, regardless of any temperature schedule.
func (e *Engine) ImproveStep() (RoundStats, error) {
	return e.round(func(_ int, delta float64) bool {
		return delta > 0
	})
}

// round executes Propose → Evaluate → Decide → Revert with the supplied
// per-candidate acceptance rule.
func (e *Engine) round(keep func(worker int, delta float64) bool) (RoundStats, error) {
	e.genSwaps()
	e.evaluateAll()

	var (
		stats RoundStats
		i     int
	)
	for i = range e.cands {
		if e.evalErrs[i] != nil {
			// Evaluation failed mid-round; restore every grid before
			// surfacing so the engine stays consistent.
			e.swapBackAll()

			return RoundStats{}, e.evalErrs[i]
		}
	}

	// Decide: mark rejected candidates for reversal.
	for i = range e.cands {
		delta := e.scores[i] - e.prevScores[i]
		if keep(i, delta) {
			e.revert[i] = false
			e.prevScores[i] = e.scores[i]
			stats.Accepted++
			e.record(i, &stats)
		} else {
			e.revert[i] = true
		}
	}

	// Revert: restore the pre-swap grid of every rejected candidate.
	for i = range e.cands {
		if !e.revert[i] {
			continue
		}
		e.cands[i].Grid[e.swaps[i][0]], e.cands[i].Grid[e.swaps[i][1]] =
			e.cands[i].Grid[e.swaps[i][1]], e.cands[i].Grid[e.swaps[i][0]]
		e.cands[i].Score = e.prevScores[i]
		stats.Reverted++
	}

	stats.Best = e.bestScore

	return stats, nil
}

// genSwaps proposes one swap of two distinct key slots per candidate.
// Proposals across candidates are statistically independent (one RNG
// stream each).
func (e *Engine) genSwaps() {
	var (
		i, a, b int
		n       = len(e.cands[0].Grid)
	)
	for i = range e.cands {
		a = e.rngs[i].Intn(n)
		b = e.rngs[i].Intn(n - 1)
		if b >= a {
			b++
		}
		e.swaps[i] = [2]int{a, b}
		e.cands[i].Grid[a], e.cands[i].Grid[b] = e.cands[i].Grid[b], e.cands[i].Grid[a]
	}
}

// evaluateAll re-scores every candidate in parallel and waits for the
// barrier: no result is consumed before all workers finish.
func (e *Engine) evaluateAll() {
	var wg sync.WaitGroup
	wg.Add(len(e.cands))
	for i := range e.cands {
		go func(i int) {
			defer wg.Done()
			e.scores[i], e.evalErrs[i] = e.eval.Evaluate(e.cands[i])
		}(i)
	}
	wg.Wait()
}

// swapBackAll undoes the current round's swap on every candidate,
// used only on the evaluation-failure path.
func (e *Engine) swapBackAll() {
	for i := range e.cands {
		e.cands[i].Grid[e.swaps[i][0]], e.cands[i].Grid[e.swaps[i][1]] =
			e.cands[i].Grid[e.swaps[i][1]], e.cands[i].Grid[e.swaps[i][0]]
		e.cands[i].Score = e.prevScores[i]
	}
}

// record tracks a newly accepted candidate in the best snapshot and the
// optional ledger. Runs on the driving goroutine only.
func (e *Engine) record(i int, stats *RoundStats) {
	if e.opts.Ledger != nil {
		e.opts.Ledger.Insert(e.cands[i].Name, e.scores[i])
	}
	if e.scores[i] > e.bestScore {
		e.bestScore = e.scores[i]
		stats.Improved = true
		// Best snapshot shares the engine's shape; CopyInto cannot fail.
		_ = e.cands[i].CopyInto(e.best)
	}
}

// Best returns a copy of the highest-scoring layout seen so far.
func (e *Engine) Best() (*layout.Layout, error) {
	return e.best.Clone()
}

// BestScore reports the highest aggregate score seen so far.
func (e *Engine) BestScore() float64 { return e.bestScore }

// Workers reports the number of independent candidates per round.
func (e *Engine) Workers() int { return len(e.cands) }

// acceptSwap is the canonical annealing acceptance rule: Δ >= 0 is always
// kept; Δ < 0 is kept with probability exp(Δ/temp); a non-positive
// temperature rejects every decrease.
func acceptSwap(delta, temp float64, rng *rand.Rand) bool {
	if delta >= 0 {
		return true
	}
	if temp <= 0 {
		return false
	}

	return rng.Float64() < math.Exp(delta/temp)
}

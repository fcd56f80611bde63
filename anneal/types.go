// Package anneal - engine options, results and sentinel errors.
package anneal

import (
	"errors"
	"runtime"

	"github.com/keydrift/keydrift/layout"
	"github.com/keydrift/keydrift/rank"
)

// Sentinel errors for engine construction and stepping.
var (
	// ErrBadWorkers indicates a non-positive worker count.
	ErrBadWorkers = errors.New("anneal: worker count must be positive")
	// ErrNilEvaluator indicates an engine built without an evaluator.
	ErrNilEvaluator = errors.New("anneal: evaluator must not be nil")
	// ErrTooFewKeys indicates a grid with fewer than two slots to swap.
	ErrTooFewKeys = errors.New("anneal: grid needs at least two key slots")
)

// Evaluator recomputes a candidate layout's score arrays and returns its
// aggregate total. Invoked synchronously from inside a round, one call per
// candidate per round, possibly from multiple goroutines at once for
// distinct layouts.
type Evaluator interface {
	Evaluate(l *layout.Layout) (float64, error)
}

// Options configures an Engine.
type Options struct {
	// Workers is the number of independent candidates, one per worker
	// goroutine. Must be positive.
	Workers int

	// Seed is the base RNG seed; 0 selects a fixed default so nil-config
	// runs stay reproducible. Each worker derives its own stream.
	Seed int64

	// Ledger, when non-nil, receives every accepted candidate's name and
	// score. Insertion happens on the round-driving goroutine only, which
	// satisfies the ledger's serialization requirement.
	Ledger *rank.Ledger
}

// DefaultOptions returns Options with one worker per CPU and the default
// deterministic seed.
func DefaultOptions() Options {
	return Options{Workers: runtime.NumCPU()}
}

// RoundStats summarizes one engine round.
type RoundStats struct {
	// Accepted counts candidates whose swap was kept this round.
	Accepted int
	// Reverted counts candidates whose swap was undone.
	Reverted int
	// Best is the best score seen by the engine so far, including this
	// round.
	Best float64
	// Improved reports whether this round raised the engine's best score.
	Improved bool
}

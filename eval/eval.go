// Package eval - frequency × statistic scoring of layouts.
package eval

import (
	"errors"

	"github.com/keydrift/keydrift/corpus"
	"github.com/keydrift/keydrift/keyspace"
	"github.com/keydrift/keydrift/layout"
	"github.com/keydrift/keydrift/stats"
)

// Sentinel errors for evaluator construction and use.
var (
	// ErrNilInput indicates a nil collaborator at construction.
	ErrNilInput = errors.New("eval: nil frequencies, set or weights")
	// ErrBadNgram indicates a def n-gram index outside its table's range.
	ErrBadNgram = errors.New("eval: statistic n-gram index out of range")
)

// Evaluator scores layouts against one corpus and one statistic
// configuration. Immutable after New; safe for concurrent use.
type Evaluator struct {
	geom keyspace.Geometry
	freq *corpus.Frequencies
	set  *stats.Set
	w    *stats.Weights
}

// New validates every def's n-gram indices against the geometry's table
// sizes and returns a ready Evaluator.
func New(geom keyspace.Geometry, freq *corpus.Frequencies, set *stats.Set, w *stats.Weights) (*Evaluator, error) {
	if freq == nil || set == nil || w == nil {
		return nil, ErrNilInput
	}
	if geom.Rows <= 0 || geom.Cols <= 0 {
		return nil, keyspace.ErrBadGeometry
	}

	if err := checkNgrams(set.Mono, geom.Dim1()); err != nil {
		return nil, err
	}
	if err := checkNgrams(set.Bi, geom.Dim2()); err != nil {
		return nil, err
	}
	if err := checkNgrams(set.Tri, geom.Dim3()); err != nil {
		return nil, err
	}
	if err := checkNgrams(set.Quad, geom.Dim4()); err != nil {
		return nil, err
	}
	if err := checkNgrams(set.Skip, geom.Dim2()); err != nil {
		return nil, err
	}

	return &Evaluator{geom: geom, freq: freq, set: set, w: w}, nil
}

// Weights exposes the weight tables the evaluator totals against, so
// callers can allocate layouts of the matching shape.
func (e *Evaluator) Weights() *stats.Weights { return e.w }

// checkNgrams rejects any def index outside [0, limit).
func checkNgrams(defs []stats.Def, limit int) error {
	for _, d := range defs {
		for _, idx := range d.Ngrams {
			if idx < 0 || idx >= limit {
				return ErrBadNgram
			}
		}
	}

	return nil
}

// Evaluate recomputes every score array of l and its aggregate total.
// l must match the evaluator's geometry and weight shape.
func (e *Evaluator) Evaluate(l *layout.Layout) (float64, error) {
	if l == nil {
		return 0, layout.ErrNilLayout
	}
	if l.Geom != e.geom || l.Shape() != e.w.Shape() {
		return 0, layout.ErrShapeMismatch
	}

	var (
		n    = e.geom.Dim1() // key-ordinal radix for tuple decoding
		al   = e.freq.Len
		grid = l.Grid
	)
	// sym maps a key ordinal to its character symbol, or -1 when the
	// assigned code falls outside the alphabet.
	sym := func(ord int) int {
		c := grid[ord]
		if c < 0 || c >= al {
			return -1
		}

		return c
	}

	for si, d := range e.set.Mono {
		var s float64
		for _, idx := range d.Ngrams {
			c0 := sym(idx)
			if c0 < 0 {
				continue
			}
			s += e.freq.Mono[c0]
		}
		l.Mono[si] = s
	}

	for si, d := range e.set.Bi {
		var s float64
		for _, idx := range d.Ngrams {
			c0 := sym(idx / n)
			c1 := sym(idx % n)
			if c0 < 0 || c1 < 0 {
				continue
			}
			s += e.freq.Bi[c0*al+c1]
		}
		l.Bi[si] = s
	}

	for si, d := range e.set.Tri {
		var s float64
		for _, idx := range d.Ngrams {
			rem := idx
			c2 := sym(rem % n)
			rem /= n
			c1 := sym(rem % n)
			c0 := sym(rem / n)
			if c0 < 0 || c1 < 0 || c2 < 0 {
				continue
			}
			s += e.freq.Tri[(c0*al+c1)*al+c2]
		}
		l.Tri[si] = s
	}

	for si, d := range e.set.Quad {
		var s float64
		for _, idx := range d.Ngrams {
			rem := idx
			c3 := sym(rem % n)
			rem /= n
			c2 := sym(rem % n)
			rem /= n
			c1 := sym(rem % n)
			c0 := sym(rem / n)
			if c0 < 0 || c1 < 0 || c2 < 0 || c3 < 0 {
				continue
			}
			s += e.freq.Quad[((c0*al+c1)*al+c2)*al+c3]
		}
		l.Quad[si] = s
	}

	// Skip statistics share one pair list across all nine distances.
	var (
		block = al * al
		dist  int
	)
	for si, d := range e.set.Skip {
		for dist = 0; dist < keyspace.SkipCount; dist++ {
			var s float64
			for _, idx := range d.Ngrams {
				c0 := sym(idx / n)
				c1 := sym(idx % n)
				if c0 < 0 || c1 < 0 {
					continue
				}
				s += e.freq.Skip[dist*block+c0*al+c1]
			}
			l.Skip[dist][si] = s
		}
	}

	for si, d := range e.set.Meta {
		var s float64
		for _, tm := range d.Terms {
			s += tm.Coef * termValue(l, tm)
		}
		l.Meta[si] = s
	}

	return l.Total(e.w)
}

// termValue reads the already-computed score a meta term references.
// Term validity was established by stats.Builder.Materialize.
func termValue(l *layout.Layout, tm stats.MetaTerm) float64 {
	switch tm.Cat {
	case stats.Mono:
		return l.Mono[tm.Index]
	case stats.Bi:
		return l.Bi[tm.Index]
	case stats.Tri:
		return l.Tri[tm.Index]
	case stats.Quad:
		return l.Quad[tm.Index]
	case stats.Skip:
		return l.Skip[tm.SkipDist-1][tm.Index]
	default:
		return 0
	}
}

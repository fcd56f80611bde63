// Package layout - weighted score aggregation.
//
// Total is the only place the aggregate score is computed; the evaluator
// fills the per-statistic arrays, Total reduces them. Summation order is
// fixed (mono, bi, tri, quad, skip by ascending distance, meta) so the
// result is deterministic for identical inputs.
package layout

import (
	"github.com/keydrift/keydrift/keyspace"
	"github.com/keydrift/keydrift/stats"
)

// Total computes the layout's aggregate score: the sum over every category
// of score[i]×weight[i], including each skip distance. The result is
// written to l.Score and returned. Weight tables are read-only here; no
// other field of l is touched.
//
// Returns ErrShapeMismatch when the score arrays were not sized from w.
func (l *Layout) Total(w *stats.Weights) (float64, error) {
	if l == nil || w == nil {
		return 0, ErrNilLayout
	}
	if l.Shape() != w.Shape() {
		return 0, ErrShapeMismatch
	}

	var (
		total float64
		i, d  int
	)
	for i = range l.Mono {
		total += l.Mono[i] * w.Mono[i]
	}
	for i = range l.Bi {
		total += l.Bi[i] * w.Bi[i]
	}
	for i = range l.Tri {
		total += l.Tri[i] * w.Tri[i]
	}
	for i = range l.Quad {
		total += l.Quad[i] * w.Quad[i]
	}
	for d = 0; d < keyspace.SkipCount; d++ {
		for i = range l.Skip[d] {
			total += l.Skip[d][i] * w.Skip[d][i]
		}
	}
	for i = range l.Meta {
		total += l.Meta[i] * w.Meta[i]
	}

	l.Score = total

	return total, nil
}

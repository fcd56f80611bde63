// Built-in statistic set used when no statistics configuration is given.
// Columns stand in for fingers and the grid's left half for the left hand,
// which matches the usual 3×10 matrix-keyboard reading.
package main

import (
	"errors"

	"github.com/keydrift/keydrift/keyspace"
	"github.com/keydrift/keydrift/stats"
)

// errGridTooSmall rejects grids the built-in set cannot describe.
var errGridTooSmall = errors.New("built-in statistics need at least 2 rows and 4 columns")

// defaultStats registers a compact, opinionated statistic set for geom and
// materializes it through the trim/clean pipeline.
func defaultStats(geom keyspace.Geometry) (*stats.Set, *stats.Weights, error) {
	// Two rows per finger column and two columns per hand keep every def
	// below non-empty, so cleaning cannot reorder the bigram indices the
	// flow meta statistic points at.
	if geom.Rows < 2 || geom.Cols < 4 {
		return nil, nil, errGridTooSmall
	}

	var (
		n       = geom.Dim1()
		cols    = geom.Cols
		homeRow = geom.Rows / 2

		row  = func(ord int) int { return ord / cols }
		col  = func(ord int) int { return ord % cols }
		hand = func(ord int) int {
			if col(ord) < cols/2 {
				return 0
			}

			return 1
		}
	)

	b := stats.NewBuilder()

	// Monograms.
	var home, pinky []int
	for o := 0; o < n; o++ {
		if row(o) == homeRow {
			home = append(home, o)
		}
		if col(o) == 0 || col(o) == cols-1 {
			pinky = append(pinky, o)
		}
	}
	if err := b.Add(stats.Mono, stats.Def{Name: "home row", Weight: 2.0, Ngrams: home}); err != nil {
		return nil, nil, err
	}
	if err := b.Add(stats.Mono, stats.Def{Name: "pinky load", Weight: -0.5, Ngrams: pinky}); err != nil {
		return nil, nil, err
	}

	// Bigrams. Def order matters: the flow meta statistic references the
	// same-finger and inward-roll indices below.
	var sameFinger, inRoll, alternate, rowJump []int
	for a := 0; a < n; a++ {
		for bb := 0; bb < n; bb++ {
			if a == bb {
				continue
			}
			idx := a*n + bb
			switch {
			case col(a) == col(bb):
				sameFinger = append(sameFinger, idx)
			case hand(a) != hand(bb):
				alternate = append(alternate, idx)
			case hand(a) == 0 && col(bb) == col(a)+1,
				hand(a) == 1 && col(bb) == col(a)-1:
				inRoll = append(inRoll, idx)
			}
			if row(a)-row(bb) >= 2 || row(bb)-row(a) >= 2 {
				rowJump = append(rowJump, idx)
			}
		}
	}
	bigrams := []stats.Def{
		{Name: "same finger", Weight: -3.0, Ngrams: sameFinger},
		{Name: "inward roll", Weight: 1.5, Ngrams: inRoll},
		{Name: "hand alternation", Weight: 0.5, Ngrams: alternate},
		{Name: "row jump", Weight: -1.0, Ngrams: rowJump},
	}
	for _, d := range bigrams {
		if err := b.Add(stats.Bi, d); err != nil {
			return nil, nil, err
		}
	}

	// Trigrams: three keys in a row on one hand tire that hand out.
	var oneHandRun []int
	for a := 0; a < n; a++ {
		for bb := 0; bb < n; bb++ {
			for c := 0; c < n; c++ {
				if a == bb || bb == c || a == c {
					continue
				}
				if hand(a) == hand(bb) && hand(bb) == hand(c) {
					oneHandRun = append(oneHandRun, (a*n+bb)*n+c)
				}
			}
		}
	}
	if err := b.Add(stats.Tri, stats.Def{Name: "one-hand run", Weight: -0.8, Ngrams: oneHandRun}); err != nil {
		return nil, nil, err
	}

	// Quadgrams: a four-key single-hand streak, the worst of the runs.
	var longRun []int
	for a := 0; a < n; a++ {
		for bb := 0; bb < n; bb++ {
			if hand(a) != hand(bb) {
				continue
			}
			for c := 0; c < n; c++ {
				if hand(c) != hand(a) {
					continue
				}
				for d := 0; d < n; d++ {
					if hand(d) == hand(a) {
						longRun = append(longRun, ((a*n+bb)*n+c)*n+d)
					}
				}
			}
		}
	}
	if err := b.Add(stats.Quad, stats.Def{Name: "one-hand streak", Weight: -0.6, Ngrams: longRun}); err != nil {
		return nil, nil, err
	}

	// Skip-grams: same finger twice with little in between; the penalty
	// fades with distance.
	skipDef := stats.Def{Name: "same finger skip", Ngrams: sameFinger}
	for d := keyspace.MinSkip; d <= keyspace.MaxSkip; d++ {
		skipDef.SkipWeight[d-keyspace.MinSkip] = -1.0 / float64(d)
	}
	if err := b.Add(stats.Skip, skipDef); err != nil {
		return nil, nil, err
	}

	// Meta: reward flow, defined as inward rolls minus same-finger pairs.
	if err := b.Add(stats.Meta, stats.Def{
		Name:   "flow",
		Weight: 0.5,
		Terms: []stats.MetaTerm{
			{Cat: stats.Bi, Index: 1, Coef: 1},  // inward roll
			{Cat: stats.Bi, Index: 0, Coef: -1}, // same finger
		},
	}); err != nil {
		return nil, nil, err
	}

	b.Trim()
	b.Clean()

	return b.Materialize()
}

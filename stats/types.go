// Package stats - categories, defs, weights and sentinel errors.
package stats

import (
	"errors"

	"github.com/keydrift/keydrift/keyspace"
)

// Sentinel errors for statistic registration and materialization.
var (
	// ErrBadCategory indicates a category outside the defined enum.
	ErrBadCategory = errors.New("stats: unknown statistic category")
	// ErrBadDef indicates a def with an empty name.
	ErrBadDef = errors.New("stats: statistic def must be named")
	// ErrBadMetaTerm indicates a meta term referencing an unknown category
	// or a statistic index outside the materialized tables.
	ErrBadMetaTerm = errors.New("stats: meta term out of range")
)

// Category identifies one of the six statistic families.
type Category int

const (
	// Mono statistics range over single key positions.
	Mono Category = iota
	// Bi statistics range over ordered key pairs.
	Bi
	// Tri statistics range over ordered key triples.
	Tri
	// Quad statistics range over ordered key quadruples.
	Quad
	// Skip statistics range over ordered key pairs at a skip distance.
	Skip
	// Meta statistics derive from other categories' scores.
	Meta

	categoryCount
)

// MetaTerm is one linear component of a meta statistic: Coef times the
// score of statistic Index in Cat. Cat must not be Meta.
type MetaTerm struct {
	Cat Category
	// SkipDist selects the distance row when Cat == Skip; ignored otherwise.
	SkipDist int
	Index    int
	Coef     float64
}

// Def is one named, weighted statistic.
//
// For Mono..Quad, Ngrams lists the flat key-tuple indices (per the keyspace
// codec of the matching order) that qualify, and Weight is the scalar
// weight. For Skip, Ngrams lists Dim2 pair indices and SkipWeight carries
// one weight per distance. For Meta, Terms defines the derivation and
// Weight the scalar weight; Ngrams is unused.
type Def struct {
	Name   string
	Weight float64

	Ngrams []int

	SkipWeight [keyspace.SkipCount]float64

	Terms []MetaTerm
}

// Weights holds the frozen per-category weight tables. Slice lengths are
// the number of materialized statistics per category and therefore the
// score array lengths of every Layout built against this configuration.
// Skip is indexed [distance-1][statistic].
type Weights struct {
	Mono []float64
	Bi   []float64
	Tri  []float64
	Quad []float64
	Skip [keyspace.SkipCount][]float64
	Meta []float64
}

// Shape is the set of score-array lengths derived from materialized
// weights. Layouts are allocated against a Shape.
type Shape struct {
	MonoN, BiN, TriN, QuadN, SkipN, MetaN int
}

// Shape reports the score-array lengths of w.
func (w *Weights) Shape() Shape {
	return Shape{
		MonoN: len(w.Mono),
		BiN:   len(w.Bi),
		TriN:  len(w.Tri),
		QuadN: len(w.Quad),
		SkipN: len(w.Skip[0]),
		MetaN: len(w.Meta),
	}
}

// Set holds the materialized defs per category, index-aligned with the
// corresponding Weights tables.
type Set struct {
	Mono []Def
	Bi   []Def
	Tri  []Def
	Quad []Def
	Skip []Def
	Meta []Def
}

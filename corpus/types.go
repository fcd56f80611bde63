// Package corpus - count/frequency containers and sentinel errors.
package corpus

import (
	"errors"

	"github.com/keydrift/keydrift/keyspace"
)

// Sentinel errors for corpus operations.
var (
	// ErrBadAlphabet indicates a non-positive alphabet size.
	ErrBadAlphabet = errors.New("corpus: alphabet size must be positive")
	// ErrSymbolRange indicates a symbol index outside [0, Len).
	ErrSymbolRange = errors.New("corpus: symbol index out of range")
	// ErrShapeMismatch indicates containers built for different alphabets.
	ErrShapeMismatch = errors.New("corpus: alphabet size mismatch")
)

// Counts stores raw n-gram occurrence counts for an alphabet of Len symbols.
// Tables are flattened with the same mixed-radix scheme keyspace uses for
// key positions, radix Len, most significant symbol first. Skip is laid out
// distance-major: distance d occupies the block [(d-1)*Len², d*Len²).
//
// Counts is populated by an ingester (see package ingest) and is a read-only
// input to normalization.
type Counts struct {
	// Len is the alphabet size the tables are sized for.
	Len int

	// Mono has Len entries.
	Mono []int64
	// Bi has Len² entries.
	Bi []int64
	// Tri has Len³ entries.
	Tri []int64
	// Quad has Len⁴ entries.
	Quad []int64
	// Skip has SkipCount×Len² entries, distance-major.
	Skip []int64
}

// NewCounts allocates zero-filled count tables for an alphabet of size n.
// Returns ErrBadAlphabet when n <= 0.
func NewCounts(n int) (*Counts, error) {
	if n <= 0 {
		return nil, ErrBadAlphabet
	}

	return &Counts{
		Len:  n,
		Mono: make([]int64, n),
		Bi:   make([]int64, n*n),
		Tri:  make([]int64, n*n*n),
		Quad: make([]int64, n*n*n*n),
		Skip: make([]int64, keyspace.SkipCount*n*n),
	}, nil
}

// Frequencies stores normalized percentage frequencies with the same
// cardinality and layout as Counts.
type Frequencies struct {
	// Len is the alphabet size the tables are sized for.
	Len int

	// Mono has Len entries.
	Mono []float64
	// Bi has Len² entries.
	Bi []float64
	// Tri has Len³ entries.
	Tri []float64
	// Quad has Len⁴ entries.
	Quad []float64
	// Skip has SkipCount×Len² entries, distance-major.
	Skip []float64
}

// NewFrequencies allocates zero-filled frequency tables for an alphabet of
// size n. Returns ErrBadAlphabet when n <= 0.
func NewFrequencies(n int) (*Frequencies, error) {
	if n <= 0 {
		return nil, ErrBadAlphabet
	}

	return &Frequencies{
		Len:  n,
		Mono: make([]float64, n),
		Bi:   make([]float64, n*n),
		Tri:  make([]float64, n*n*n),
		Quad: make([]float64, n*n*n*n),
		Skip: make([]float64, keyspace.SkipCount*n*n),
	}, nil
}

// symOK reports whether every given symbol index is inside [0, n).
func symOK(n int, syms ...int) bool {
	for _, s := range syms {
		if s < 0 || s >= n {
			return false
		}
	}

	return true
}

// BiIndex flattens a symbol pair into a Bi table index.
func (c *Counts) BiIndex(a, b int) (int, error) {
	if !symOK(c.Len, a, b) {
		return 0, ErrSymbolRange
	}

	return a*c.Len + b, nil
}

// TriIndex flattens a symbol triple into a Tri table index.
func (c *Counts) TriIndex(a, b, d int) (int, error) {
	if !symOK(c.Len, a, b, d) {
		return 0, ErrSymbolRange
	}

	return (a*c.Len+b)*c.Len + d, nil
}

// QuadIndex flattens a symbol quadruple into a Quad table index.
func (c *Counts) QuadIndex(a, b, d, e int) (int, error) {
	if !symOK(c.Len, a, b, d, e) {
		return 0, ErrSymbolRange
	}

	n := c.Len

	return ((a*n+b)*n+d)*n + e, nil
}

// SkipIndex flattens (distance, symbol pair) into a Skip table index.
func (c *Counts) SkipIndex(dist, a, b int) (int, error) {
	if dist < keyspace.MinSkip || dist > keyspace.MaxSkip {
		return 0, keyspace.ErrSkipRange
	}
	if !symOK(c.Len, a, b) {
		return 0, ErrSymbolRange
	}

	return (dist-keyspace.MinSkip)*c.Len*c.Len + a*c.Len + b, nil
}

// AddMono increments the monogram count for symbol a.
func (c *Counts) AddMono(a int) error {
	if !symOK(c.Len, a) {
		return ErrSymbolRange
	}
	c.Mono[a]++

	return nil
}

// AddBi increments the bigram count for the ordered pair (a, b).
func (c *Counts) AddBi(a, b int) error {
	i, err := c.BiIndex(a, b)
	if err != nil {
		return err
	}
	c.Bi[i]++

	return nil
}

// AddTri increments the trigram count for the ordered triple (a, b, d).
func (c *Counts) AddTri(a, b, d int) error {
	i, err := c.TriIndex(a, b, d)
	if err != nil {
		return err
	}
	c.Tri[i]++

	return nil
}

// AddQuad increments the quadgram count for the ordered quadruple (a, b, d, e).
func (c *Counts) AddQuad(a, b, d, e int) error {
	i, err := c.QuadIndex(a, b, d, e)
	if err != nil {
		return err
	}
	c.Quad[i]++

	return nil
}

// AddSkip increments the skip-gram count for (dist, a, b).
func (c *Counts) AddSkip(dist, a, b int) error {
	i, err := c.SkipIndex(dist, a, b)
	if err != nil {
		return err
	}
	c.Skip[i]++

	return nil
}

// MonoFreq returns the normalized monogram frequency of symbol a.
func (f *Frequencies) MonoFreq(a int) (float64, error) {
	if !symOK(f.Len, a) {
		return 0, ErrSymbolRange
	}

	return f.Mono[a], nil
}

// BiFreq returns the normalized bigram frequency of the ordered pair (a, b).
func (f *Frequencies) BiFreq(a, b int) (float64, error) {
	if !symOK(f.Len, a, b) {
		return 0, ErrSymbolRange
	}

	return f.Bi[a*f.Len+b], nil
}

// TriFreq returns the normalized trigram frequency of (a, b, d).
func (f *Frequencies) TriFreq(a, b, d int) (float64, error) {
	if !symOK(f.Len, a, b, d) {
		return 0, ErrSymbolRange
	}

	return f.Tri[(a*f.Len+b)*f.Len+d], nil
}

// QuadFreq returns the normalized quadgram frequency of (a, b, d, e).
func (f *Frequencies) QuadFreq(a, b, d, e int) (float64, error) {
	if !symOK(f.Len, a, b, d, e) {
		return 0, ErrSymbolRange
	}
	n := f.Len

	return f.Quad[((a*n+b)*n+d)*n+e], nil
}

// SkipFreq returns the normalized skip-gram frequency of (dist, a, b).
func (f *Frequencies) SkipFreq(dist, a, b int) (float64, error) {
	if dist < keyspace.MinSkip || dist > keyspace.MaxSkip {
		return 0, keyspace.ErrSkipRange
	}
	if !symOK(f.Len, a, b) {
		return 0, ErrSymbolRange
	}

	return f.Skip[(dist-keyspace.MinSkip)*f.Len*f.Len+a*f.Len+b], nil
}

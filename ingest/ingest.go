// Package ingest - alphabet mapping and the single-pass n-gram counter.
package ingest

import (
	"bufio"
	"errors"
	"io"

	"github.com/keydrift/keydrift/corpus"
	"github.com/keydrift/keydrift/keyspace"
)

// Sentinel errors for alphabet construction.
var (
	// ErrEmptyAlphabet indicates an alphabet built from an empty string.
	ErrEmptyAlphabet = errors.New("ingest: alphabet must not be empty")
	// ErrDuplicateRune indicates the same rune listed twice.
	ErrDuplicateRune = errors.New("ingest: duplicate rune in alphabet")
)

// Alphabet maps corpus runes onto dense symbol indices 0..Len-1.
// Immutable after New.
type Alphabet struct {
	runes []rune
	index map[rune]int
}

// NewAlphabet builds an alphabet from the given runes, in order.
func NewAlphabet(letters string) (*Alphabet, error) {
	rs := []rune(letters)
	if len(rs) == 0 {
		return nil, ErrEmptyAlphabet
	}

	idx := make(map[rune]int, len(rs))
	for i, r := range rs {
		if _, dup := idx[r]; dup {
			return nil, ErrDuplicateRune
		}
		idx[r] = i
	}

	return &Alphabet{runes: rs, index: idx}, nil
}

// Len reports the number of symbols.
func (a *Alphabet) Len() int { return len(a.runes) }

// Index returns the symbol index of r and whether r is in the alphabet.
func (a *Alphabet) Index(r rune) (int, bool) {
	i, ok := a.index[r]

	return i, ok
}

// Rune returns the rune of symbol index i; ok is false out of range.
func (a *Alphabet) Rune(i int) (rune, bool) {
	if i < 0 || i >= len(a.runes) {
		return 0, false
	}

	return a.runes[i], true
}

// String renders the alphabet back as the rune sequence it was built from.
func (a *Alphabet) String() string { return string(a.runes) }

// windowLen covers the longest lookback any table needs: a skip-gram at
// MaxSkip spans MaxSkip+2 symbols.
const windowLen = keyspace.MaxSkip + 2

// Count scans r once and returns the accumulated n-gram counts.
// Runes outside the alphabet reset the window, so no counted sequence
// crosses a non-alphabet character.
func Count(r io.Reader, ab *Alphabet) (*corpus.Counts, error) {
	c, err := corpus.NewCounts(ab.Len())
	if err != nil {
		return nil, err
	}

	var (
		br = bufio.NewReader(r)
		// win holds the most recent symbols, win[0] newest.
		win  [windowLen]int
		have int
	)
	for {
		ch, _, rerr := br.ReadRune()
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return nil, rerr
		}

		sym, ok := ab.Index(ch)
		if !ok {
			have = 0

			continue
		}

		// Shift the window and admit the new symbol at the front.
		copy(win[1:], win[:windowLen-1])
		win[0] = sym
		if have < windowLen {
			have++
		}

		c.Mono[sym]++
		if have >= 2 {
			c.Bi[win[1]*ab.Len()+sym]++
		}
		if have >= 3 {
			c.Tri[(win[2]*ab.Len()+win[1])*ab.Len()+sym]++
		}
		if have >= 4 {
			n := ab.Len()
			c.Quad[((win[3]*n+win[2])*n+win[1])*n+sym]++
		}
		// Skip distance d pairs win[d+1] with the newest symbol.
		for d := keyspace.MinSkip; d <= keyspace.MaxSkip; d++ {
			if have >= d+2 {
				c.Skip[(d-keyspace.MinSkip)*ab.Len()*ab.Len()+win[d+1]*ab.Len()+sym]++
			}
		}
	}

	return c, nil
}

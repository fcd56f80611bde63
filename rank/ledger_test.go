package rank_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keydrift/keydrift/rank"
)

// collect drains a ledger into a slice for assertions.
func collect(l *rank.Ledger) []rank.Entry {
	var out []rank.Entry
	l.Walk(func(e rank.Entry) bool {
		out = append(out, e)

		return true
	})

	return out
}

// TestLedger_SortedDescending inserts in random order and expects a
// descending walk.
func TestLedger_SortedDescending(t *testing.T) {
	l := rank.NewLedger()
	rng := rand.New(rand.NewSource(11))

	scores := make([]float64, 50)
	for i := range scores {
		scores[i] = rng.Float64() * 100
	}
	for _, s := range scores {
		l.Insert("layout", s)
	}

	got := collect(l)
	require.Len(t, got, len(scores))
	assert.True(t, sort.SliceIsSorted(got, func(i, j int) bool {
		return got[i].Score > got[j].Score
	}), "ledger must stay sorted descending")
}

// TestLedger_NewMaximumBecomesHead promotes a fresh maximum to the front.
func TestLedger_NewMaximumBecomesHead(t *testing.T) {
	l := rank.NewLedger()
	l.Insert("mid", 5)
	l.Insert("low", 1)
	l.Insert("high", 9)

	best, ok := l.Best()
	require.True(t, ok)
	assert.Equal(t, "high", best.Name)
	assert.Equal(t, 9.0, best.Score)
}

// TestLedger_TieBreak places a tying entry ahead of previously-equal ones.
func TestLedger_TieBreak(t *testing.T) {
	l := rank.NewLedger()
	l.Insert("first", 7)
	l.Insert("above", 8)
	l.Insert("second", 7)
	l.Insert("third", 7)
	l.Insert("below", 6)

	got := collect(l)
	names := make([]string, len(got))
	for i, e := range got {
		names[i] = e.Name
	}
	assert.Equal(t, []string{"above", "third", "second", "first", "below"}, names)
}

// TestLedger_TieAtHead also applies the tie rule at the head position.
func TestLedger_TieAtHead(t *testing.T) {
	l := rank.NewLedger()
	l.Insert("old", 3)
	l.Insert("new", 3)

	best, ok := l.Best()
	require.True(t, ok)
	assert.Equal(t, "new", best.Name)
}

// TestLedger_ClearAndEmpty covers Clear on both populated and empty state.
func TestLedger_ClearAndEmpty(t *testing.T) {
	l := rank.NewLedger()
	l.Clear() // no-op on empty

	_, ok := l.Best()
	assert.False(t, ok)
	assert.Zero(t, l.Len())

	l.Insert("x", 1)
	l.Insert("y", 2)
	require.Equal(t, 2, l.Len())

	l.Clear()
	assert.Zero(t, l.Len())
	assert.Empty(t, collect(l))
}

// TestLedger_TopAndWalkStop checks bounded reads and early walk exit.
func TestLedger_TopAndWalkStop(t *testing.T) {
	l := rank.NewLedger()
	for i := 0; i < 10; i++ {
		l.Insert("n", float64(i))
	}

	top := l.Top(3)
	require.Len(t, top, 3)
	assert.Equal(t, 9.0, top[0].Score)
	assert.Equal(t, 7.0, top[2].Score)

	assert.Nil(t, l.Top(0))

	var visited int
	l.Walk(func(rank.Entry) bool {
		visited++

		return visited < 4
	})
	assert.Equal(t, 4, visited)
}

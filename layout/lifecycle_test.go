package layout_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keydrift/keydrift/keyspace"
	"github.com/keydrift/keydrift/layout"
	"github.com/keydrift/keydrift/stats"
)

// testShape gives every category a small non-zero length so copy and diff
// paths all get exercised.
var testShape = stats.Shape{MonoN: 3, BiN: 2, TriN: 2, QuadN: 1, SkipN: 2, MetaN: 1}

// newTestLayout allocates a 3×10 layout and assigns key codes 0..29.
func newTestLayout(t *testing.T, name string) *layout.Layout {
	t.Helper()
	g, err := keyspace.NewGeometry(3, 10)
	require.NoError(t, err)
	l, err := layout.New(name, g, testShape)
	require.NoError(t, err)
	for i := range l.Grid {
		l.Grid[i] = i
	}

	return l
}

// fillScores writes distinct values into every score slot.
func fillScores(l *layout.Layout, base float64) {
	v := base
	next := func() float64 { v += 0.5; return v }
	for i := range l.Mono {
		l.Mono[i] = next()
	}
	for i := range l.Bi {
		l.Bi[i] = next()
	}
	for i := range l.Tri {
		l.Tri[i] = next()
	}
	for i := range l.Quad {
		l.Quad[i] = next()
	}
	for d := 0; d < keyspace.SkipCount; d++ {
		for i := range l.Skip[d] {
			l.Skip[d][i] = next()
		}
	}
	for i := range l.Meta {
		l.Meta[i] = next()
	}
}

// TestNew_ZeroFilledAndShaped checks allocation invariants.
func TestNew_ZeroFilledAndShaped(t *testing.T) {
	l := newTestLayout(t, "qwerty")

	assert.Equal(t, testShape, l.Shape())
	assert.Len(t, l.Grid, 30)
	for d := 0; d < keyspace.SkipCount; d++ {
		require.Len(t, l.Skip[d], testShape.SkipN)
		for _, v := range l.Skip[d] {
			assert.Zero(t, v)
		}
	}
	assert.Zero(t, l.Score)
}

// TestNew_Validation rejects bad geometry and negative shapes.
func TestNew_Validation(t *testing.T) {
	g, err := keyspace.NewGeometry(3, 10)
	require.NoError(t, err)

	_, err = layout.New("x", keyspace.Geometry{}, testShape)
	assert.ErrorIs(t, err, keyspace.ErrBadGeometry)

	bad := testShape
	bad.TriN = -1
	_, err = layout.New("x", g, bad)
	assert.ErrorIs(t, err, layout.ErrBadShape)
}

// TestNew_TruncatesName keeps names within MaxNameLen.
func TestNew_TruncatesName(t *testing.T) {
	long := strings.Repeat("k", layout.MaxNameLen+10)
	l := newTestLayout(t, long)
	assert.Len(t, l.Name, layout.MaxNameLen)
}

// TestCopyInto_DeepCopies verifies a full deep copy with no aliasing.
func TestCopyInto_DeepCopies(t *testing.T) {
	src := newTestLayout(t, "src")
	fillScores(src, 1)
	src.Score = 12.5

	dst := newTestLayout(t, "dst")
	require.NoError(t, src.CopyInto(dst))

	assert.Equal(t, src.Name, dst.Name)
	assert.Equal(t, src.Score, dst.Score)
	assert.Equal(t, src.Grid, dst.Grid)
	assert.Equal(t, src.Mono, dst.Mono)
	for d := 0; d < keyspace.SkipCount; d++ {
		assert.Equal(t, src.Skip[d], dst.Skip[d])
	}

	// Mutating the copy must not touch the source.
	dst.Mono[0] = -99
	dst.Grid[0] = -99
	assert.NotEqual(t, src.Mono[0], dst.Mono[0])
	assert.NotEqual(t, src.Grid[0], dst.Grid[0])
}

// TestCopyInto_ShapeMismatch rejects differently shaped destinations.
func TestCopyInto_ShapeMismatch(t *testing.T) {
	src := newTestLayout(t, "src")

	g, err := keyspace.NewGeometry(3, 10)
	require.NoError(t, err)
	other := testShape
	other.MonoN++
	dst, err := layout.New("dst", g, other)
	require.NoError(t, err)

	assert.ErrorIs(t, src.CopyInto(dst), layout.ErrShapeMismatch)
	assert.ErrorIs(t, src.CopyInto(nil), layout.ErrNilLayout)
}

// TestShuffle_Permutation checks that shuffling permutes the multiset of
// key codes and that repeated shuffles preserve cardinality.
func TestShuffle_Permutation(t *testing.T) {
	l := newTestLayout(t, "shuffled")
	rng := rand.New(rand.NewSource(42))

	count := func() map[int]int {
		m := make(map[int]int, len(l.Grid))
		for _, k := range l.Grid {
			m[k]++
		}
		return m
	}
	before := count()

	for pass := 0; pass < 5; pass++ {
		l.Shuffle(rng)
		assert.Equal(t, before, count(), "shuffle must preserve the key multiset")
	}
}

// TestShuffle_Deterministic verifies identical results for identical seeds,
// including the nil-RNG default stream.
func TestShuffle_Deterministic(t *testing.T) {
	a := newTestLayout(t, "a")
	b := newTestLayout(t, "b")

	a.Shuffle(rand.New(rand.NewSource(7)))
	b.Shuffle(rand.New(rand.NewSource(7)))
	assert.Equal(t, a.Grid, b.Grid)

	c := newTestLayout(t, "c")
	d := newTestLayout(t, "d")
	c.Shuffle(nil)
	d.Shuffle(nil)
	assert.Equal(t, c.Grid, d.Grid)
}

// TestShuffle_SingleSlotNoOp leaves a one-key grid untouched.
func TestShuffle_SingleSlotNoOp(t *testing.T) {
	g, err := keyspace.NewGeometry(1, 1)
	require.NoError(t, err)
	l, err := layout.New("tiny", g, stats.Shape{})
	require.NoError(t, err)
	l.Grid[0] = 9

	l.Shuffle(rand.New(rand.NewSource(1)))
	assert.Equal(t, []int{9}, l.Grid)
}

// TestSwapKeys exercises the swap primitive and its range checks.
func TestSwapKeys(t *testing.T) {
	l := newTestLayout(t, "swap")

	require.NoError(t, l.SwapKeys(0, 29))
	assert.Equal(t, 29, l.Grid[0])
	assert.Equal(t, 0, l.Grid[29])

	assert.ErrorIs(t, l.SwapKeys(-1, 0), keyspace.ErrOrdRange)
	assert.ErrorIs(t, l.SwapKeys(0, 30), keyspace.ErrOrdRange)
}

// TestClone matches CopyInto semantics with a fresh allocation.
func TestClone(t *testing.T) {
	src := newTestLayout(t, "orig")
	fillScores(src, 2)

	cp, err := src.Clone()
	require.NoError(t, err)
	assert.Equal(t, src.Grid, cp.Grid)
	assert.Equal(t, src.Bi, cp.Bi)

	cp.Bi[0] = -1
	assert.NotEqual(t, src.Bi[0], cp.Bi[0])
}

package corpus_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keydrift/keydrift/corpus"
	"github.com/keydrift/keydrift/keyspace"
)

const sumEps = 1e-9

// sum returns the total of a float64 table.
func sum(t []float64) float64 {
	var s float64
	for _, v := range t {
		s += v
	}

	return s
}

// TestNewCounts_BadAlphabet rejects non-positive alphabet sizes.
func TestNewCounts_BadAlphabet(t *testing.T) {
	_, err := corpus.NewCounts(0)
	assert.ErrorIs(t, err, corpus.ErrBadAlphabet)

	_, err = corpus.NewFrequencies(-3)
	assert.ErrorIs(t, err, corpus.ErrBadAlphabet)
}

// TestNormalize_CategorySumsTo100 checks that every non-empty category
// (and every skip distance) sums to 100 within floating epsilon.
func TestNormalize_CategorySumsTo100(t *testing.T) {
	c, err := corpus.NewCounts(4)
	require.NoError(t, err)

	// Uneven counts so the test is not trivially uniform.
	require.NoError(t, c.AddMono(0))
	require.NoError(t, c.AddMono(0))
	require.NoError(t, c.AddMono(3))
	require.NoError(t, c.AddBi(1, 2))
	require.NoError(t, c.AddBi(2, 1))
	require.NoError(t, c.AddTri(0, 1, 2))
	require.NoError(t, c.AddQuad(3, 2, 1, 0))
	for d := keyspace.MinSkip; d <= keyspace.MaxSkip; d++ {
		require.NoError(t, c.AddSkip(d, 0, 1))
		require.NoError(t, c.AddSkip(d, 1, 0))
	}

	f, err := corpus.Normalize(c)
	require.NoError(t, err)

	assert.InDelta(t, 100.0, sum(f.Mono), sumEps, "mono must sum to 100")
	assert.InDelta(t, 100.0, sum(f.Bi), sumEps, "bi must sum to 100")
	assert.InDelta(t, 100.0, sum(f.Tri), sumEps, "tri must sum to 100")
	assert.InDelta(t, 100.0, sum(f.Quad), sumEps, "quad must sum to 100")

	block := 4 * 4
	for d := 0; d < keyspace.SkipCount; d++ {
		assert.InDelta(t, 100.0, sum(f.Skip[d*block:(d+1)*block]), sumEps,
			"skip distance %d must sum to 100", d+1)
	}
}

// TestNormalize_ZeroTotalLeavesTableUntouched verifies the zero-guard: an
// all-zero category keeps the target's prior content.
func TestNormalize_ZeroTotalLeavesTableUntouched(t *testing.T) {
	c, err := corpus.NewCounts(3)
	require.NoError(t, err)
	require.NoError(t, c.AddMono(1)) // only mono is populated

	f, err := corpus.NewFrequencies(3)
	require.NoError(t, err)
	f.Bi[0] = 42 // sentinel content that must survive the zero-guard

	require.NoError(t, corpus.NormalizeInto(c, f))

	assert.Equal(t, 100.0, f.Mono[1])
	assert.Equal(t, 42.0, f.Bi[0], "zero-total bi table must be left as-is")
	for _, v := range f.Tri {
		assert.Zero(t, v)
	}
}

// TestNormalize_Idempotent runs normalization twice over unchanged counts
// and demands bit-identical output.
func TestNormalize_Idempotent(t *testing.T) {
	c, err := corpus.NewCounts(5)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			c.Bi[i*5+j] = int64(i*7 + j + 1)
		}
	}

	f1, err := corpus.Normalize(c)
	require.NoError(t, err)
	f2, err := corpus.Normalize(c)
	require.NoError(t, err)

	assert.Equal(t, f1.Bi, f2.Bi, "repeated normalization must be bit-identical")
}

// TestNormalizeInto_ShapeMismatch rejects targets built for another alphabet.
func TestNormalizeInto_ShapeMismatch(t *testing.T) {
	c, err := corpus.NewCounts(3)
	require.NoError(t, err)
	f, err := corpus.NewFrequencies(4)
	require.NoError(t, err)

	assert.ErrorIs(t, corpus.NormalizeInto(c, f), corpus.ErrShapeMismatch)
	assert.ErrorIs(t, corpus.NormalizeInto(nil, f), corpus.ErrShapeMismatch)
}

// TestCounts_RangeErrors spot-checks symbol range validation.
func TestCounts_RangeErrors(t *testing.T) {
	c, err := corpus.NewCounts(2)
	require.NoError(t, err)

	assert.ErrorIs(t, c.AddMono(2), corpus.ErrSymbolRange)
	assert.ErrorIs(t, c.AddBi(0, -1), corpus.ErrSymbolRange)
	assert.ErrorIs(t, c.AddSkip(0, 0, 0), keyspace.ErrSkipRange)
	assert.ErrorIs(t, c.AddSkip(10, 0, 0), keyspace.ErrSkipRange)

	f, err := corpus.NewFrequencies(2)
	require.NoError(t, err)
	_, err = f.QuadFreq(0, 0, 0, 2)
	assert.ErrorIs(t, err, corpus.ErrSymbolRange)
}

// TestNormalize_UniformMono mirrors the canonical 26-letter case: uniform
// counts of 1 normalize to 100/26 ≈ 3.846 percent each.
func TestNormalize_UniformMono(t *testing.T) {
	c, err := corpus.NewCounts(26)
	require.NoError(t, err)
	for a := 0; a < 26; a++ {
		require.NoError(t, c.AddMono(a))
	}

	f, err := corpus.Normalize(c)
	require.NoError(t, err)

	want := 100.0 / 26.0
	for a := 0; a < 26; a++ {
		v, ferr := f.MonoFreq(a)
		require.NoError(t, ferr)
		assert.InDelta(t, want, v, sumEps)
	}
	assert.InDelta(t, 3.846, want, 0.001)
}

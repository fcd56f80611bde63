// Package corpus - count normalization.
//
// Normalization turns raw occurrence counts into percentages of each
// category's grand total. The skip table is treated as nine independent
// categories, one per distance, so every distance sums to 100 on its own.
//
// Zero-guard: a category (or skip distance) whose total is zero is skipped
// entirely, leaving the target table's previous content in place. Fresh
// targets are zero-filled, so an empty corpus yields all-zero frequencies.
//
// Determinism: totals are accumulated by a single linear scan per table,
// so repeated runs over unchanged counts are bit-identical.
package corpus

// Normalize allocates fresh frequency tables and fills them from c.
func Normalize(c *Counts) (*Frequencies, error) {
	f, err := NewFrequencies(c.Len)
	if err != nil {
		return nil, err
	}
	if err = NormalizeInto(c, f); err != nil {
		return nil, err
	}

	return f, nil
}

// NormalizeInto writes normalized frequencies from c into f, which must
// have been built for the same alphabet. Returns ErrShapeMismatch otherwise.
func NormalizeInto(c *Counts, f *Frequencies) error {
	if c == nil || f == nil || c.Len != f.Len {
		return ErrShapeMismatch
	}

	normalizeTable(c.Mono, f.Mono)
	normalizeTable(c.Bi, f.Bi)
	normalizeTable(c.Tri, f.Tri)
	normalizeTable(c.Quad, f.Quad)

	// One independent block (and zero-guard) per skip distance.
	var (
		block = c.Len * c.Len
		d     int
	)
	for d = 0; d < len(c.Skip)/block; d++ {
		normalizeTable(c.Skip[d*block:(d+1)*block], f.Skip[d*block:(d+1)*block])
	}

	return nil
}

// normalizeTable writes 100*src[i]/total into dst, or leaves dst untouched
// when the total is zero. len(dst) == len(src) is a caller invariant.
func normalizeTable(src []int64, dst []float64) {
	var (
		total int64
		i     int
	)
	for i = 0; i < len(src); i++ {
		total += src[i]
	}
	if total == 0 {
		return
	}

	ft := float64(total)
	for i = 0; i < len(src); i++ {
		dst[i] = float64(src[i]) * 100.0 / ft
	}
}

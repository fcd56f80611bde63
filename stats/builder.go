// Package stats - the build→trim→clean→materialize pipeline.
//
// Statistics are registered one def at a time, in declaration order. Trim
// compacts every def's index list by dropping negative placeholders while
// preserving relative order. Clean removes defs that can never contribute:
// empty index lists, or weights that are all zero. Materialize validates
// what survives and freezes it into index-aligned Set and Weights tables.
//
// The pipeline is deliberately destructive-forward: once materialized, the
// builder can keep accepting defs but already-issued Sets never change.
package stats

// Builder accumulates statistic defs prior to materialization.
// The zero value is ready to use.
type Builder struct {
	defs [categoryCount][]Def
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder { return &Builder{} }

// Add registers a def under the given category, keeping declaration order.
// Returns ErrBadCategory or ErrBadDef on invalid input.
func (b *Builder) Add(cat Category, d Def) error {
	if cat < Mono || cat >= categoryCount {
		return ErrBadCategory
	}
	if d.Name == "" {
		return ErrBadDef
	}
	b.defs[cat] = append(b.defs[cat], d)

	return nil
}

// Trim compacts every registered def's Ngrams list in place: negative
// placeholder entries are removed and valid indices keep their relative
// order. Idempotent.
func (b *Builder) Trim() {
	var (
		cat  Category
		i, j int
	)
	for cat = Mono; cat < categoryCount; cat++ {
		for i = range b.defs[cat] {
			src := b.defs[cat][i].Ngrams
			j = 0
			for _, idx := range src {
				if idx >= 0 {
					src[j] = idx
					j++
				}
			}
			b.defs[cat][i].Ngrams = src[:j]
		}
	}
}

// Clean drops defs that cannot contribute to any score: defs with no
// qualifying n-grams (meta defs with no terms), and defs whose weight is
// zero (skip defs: zero at every distance). Idempotent.
func (b *Builder) Clean() {
	var cat Category
	for cat = Mono; cat < categoryCount; cat++ {
		kept := b.defs[cat][:0]
		for _, d := range b.defs[cat] {
			if defAlive(cat, d) {
				kept = append(kept, d)
			}
		}
		b.defs[cat] = kept
	}
}

// defAlive reports whether a def survives Clean for its category.
func defAlive(cat Category, d Def) bool {
	switch cat {
	case Meta:
		return len(d.Terms) > 0 && d.Weight != 0
	case Skip:
		if len(d.Ngrams) == 0 {
			return false
		}
		for _, w := range d.SkipWeight {
			if w != 0 {
				return true
			}
		}

		return false
	default:
		return len(d.Ngrams) > 0 && d.Weight != 0
	}
}

// Materialize freezes the current defs into an index-aligned Set and
// Weights pair. Meta terms are validated against the materialized table
// lengths; ErrBadMetaTerm is returned for dangling references.
//
// The returned Set and Weights own copies of the def slices; later Add
// calls on the builder do not affect them.
func (b *Builder) Materialize() (*Set, *Weights, error) {
	set := &Set{
		Mono: copyDefs(b.defs[Mono]),
		Bi:   copyDefs(b.defs[Bi]),
		Tri:  copyDefs(b.defs[Tri]),
		Quad: copyDefs(b.defs[Quad]),
		Skip: copyDefs(b.defs[Skip]),
		Meta: copyDefs(b.defs[Meta]),
	}

	w := &Weights{
		Mono: weightsOf(set.Mono),
		Bi:   weightsOf(set.Bi),
		Tri:  weightsOf(set.Tri),
		Quad: weightsOf(set.Quad),
		Meta: weightsOf(set.Meta),
	}
	var d int
	for d = 0; d < len(w.Skip); d++ {
		w.Skip[d] = make([]float64, len(set.Skip))
		for j, def := range set.Skip {
			w.Skip[d][j] = def.SkipWeight[d]
		}
	}

	if err := validateMetaTerms(set, w); err != nil {
		return nil, nil, err
	}

	return set, w, nil
}

// copyDefs deep-copies a def slice so materialized sets are immune to
// further builder mutation.
func copyDefs(src []Def) []Def {
	out := make([]Def, len(src))
	copy(out, src)
	for i := range out {
		if src[i].Ngrams != nil {
			out[i].Ngrams = append([]int(nil), src[i].Ngrams...)
		}
		if src[i].Terms != nil {
			out[i].Terms = append([]MetaTerm(nil), src[i].Terms...)
		}
	}

	return out
}

// weightsOf extracts the scalar weight column of a def slice.
func weightsOf(defs []Def) []float64 {
	out := make([]float64, len(defs))
	for i, d := range defs {
		out[i] = d.Weight
	}

	return out
}

// validateMetaTerms checks every meta term against the frozen table sizes.
func validateMetaTerms(set *Set, w *Weights) error {
	for _, d := range set.Meta {
		for _, tm := range d.Terms {
			var n int
			switch tm.Cat {
			case Mono:
				n = len(w.Mono)
			case Bi:
				n = len(w.Bi)
			case Tri:
				n = len(w.Tri)
			case Quad:
				n = len(w.Quad)
			case Skip:
				if tm.SkipDist < 1 || tm.SkipDist > len(w.Skip) {
					return ErrBadMetaTerm
				}
				n = len(w.Skip[tm.SkipDist-1])
			default:
				return ErrBadMetaTerm // Meta-on-Meta is not allowed
			}
			if tm.Index < 0 || tm.Index >= n {
				return ErrBadMetaTerm
			}
		}
	}

	return nil
}

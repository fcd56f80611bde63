// Package layout - statistical diff between two layouts.
//
// Diff reports raw score deltas: plain element-wise subtraction (first
// minus second) for every category including all skip distances, with no
// re-scaling or normalization of the differenced values. The merged grid
// keeps a key code where both inputs agree and writes Mismatch where they
// do not.
package layout

import "github.com/keydrift/keydrift/keyspace"

// diffNamePart is the per-input clip applied before concatenation, so a
// diff name never exceeds MaxNameLen (23 + 1 + 23 = 47).
const diffNamePart = (MaxNameLen - 2) / 2

// Diff allocates and returns the element-wise difference a−b.
//
// The result's grid holds the common key code per position, or Mismatch
// where the inputs disagree; its Score is the plain difference of the two
// totals; its name is both input names clipped to diffNamePart characters
// and joined with "-". Both inputs must share geometry and shape.
func Diff(a, b *Layout) (*Layout, error) {
	if a == nil || b == nil {
		return nil, ErrNilLayout
	}
	if !sameShape(a, b) {
		return nil, ErrShapeMismatch
	}

	out, err := New(joinNames(a.Name, b.Name), a.Geom, a.Shape())
	if err != nil {
		return nil, err
	}

	var i, d int
	for i = range a.Grid {
		if a.Grid[i] == b.Grid[i] {
			out.Grid[i] = a.Grid[i]
		} else {
			out.Grid[i] = Mismatch
		}
	}

	out.Score = a.Score - b.Score

	for i = range a.Mono {
		out.Mono[i] = a.Mono[i] - b.Mono[i]
	}
	for i = range a.Bi {
		out.Bi[i] = a.Bi[i] - b.Bi[i]
	}
	for i = range a.Tri {
		out.Tri[i] = a.Tri[i] - b.Tri[i]
	}
	for i = range a.Quad {
		out.Quad[i] = a.Quad[i] - b.Quad[i]
	}
	for d = 0; d < keyspace.SkipCount; d++ {
		for i = range a.Skip[d] {
			out.Skip[d][i] = a.Skip[d][i] - b.Skip[d][i]
		}
	}
	for i = range a.Meta {
		out.Meta[i] = a.Meta[i] - b.Meta[i]
	}

	return out, nil
}

// joinNames clips each input to diffNamePart characters and joins them
// with a dash. The combined result is at most MaxNameLen−1 characters.
func joinNames(a, b string) string {
	if len(a) > diffNamePart {
		a = a[:diffNamePart]
	}
	if len(b) > diffNamePart {
		b = b[:diffNamePart]
	}

	return a + "-" + b
}

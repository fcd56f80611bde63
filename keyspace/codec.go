// Package keyspace - mixed-radix packing of key-ordinal tuples.
//
// Encoding is positional with radix Dim1: a tuple (a, b, c, d) packs as
// ((a*Dim1+b)*Dim1+c)*Dim1+d, i.e. the first key is most significant.
// Decoding peels ordinals off the least significant end with div/mod.
//
// All functions validate their inputs and return strict sentinels from
// types.go; no panics, no allocations.
package keyspace

// Flatten1 maps a single key ordinal to its monogram table index.
// Identity apart from range checking.
func (g Geometry) Flatten1(a int) (int, error) {
	if !g.ordOK(a) {
		return 0, ErrOrdRange
	}

	return a, nil
}

// Unflatten1 inverts Flatten1.
func (g Geometry) Unflatten1(idx int) (int, error) {
	if idx < 0 || idx >= g.Dim1() {
		return 0, ErrIndexRange
	}

	return idx, nil
}

// Flatten2 packs an ordered pair of key ordinals into a bigram table index.
func (g Geometry) Flatten2(a, b int) (int, error) {
	if !g.ordOK(a) || !g.ordOK(b) {
		return 0, ErrOrdRange
	}

	return a*g.Dim1() + b, nil
}

// Unflatten2 inverts Flatten2, least significant key first.
func (g Geometry) Unflatten2(idx int) (a, b int, err error) {
	if idx < 0 || idx >= g.Dim2() {
		return 0, 0, ErrIndexRange
	}

	d := g.Dim1()
	b = idx % d
	a = idx / d

	return a, b, nil
}

// Flatten3 packs an ordered triple of key ordinals into a trigram table index.
func (g Geometry) Flatten3(a, b, c int) (int, error) {
	if !g.ordOK(a) || !g.ordOK(b) || !g.ordOK(c) {
		return 0, ErrOrdRange
	}

	return (a*g.Dim1()+b)*g.Dim1() + c, nil
}

// Unflatten3 inverts Flatten3.
func (g Geometry) Unflatten3(idx int) (a, b, c int, err error) {
	if idx < 0 || idx >= g.Dim3() {
		return 0, 0, 0, ErrIndexRange
	}

	d := g.Dim1()
	c = idx % d
	idx /= d
	b = idx % d
	a = idx / d

	return a, b, c, nil
}

// Flatten4 packs an ordered quadruple of key ordinals into a quadgram
// table index.
func (g Geometry) Flatten4(a, b, c, d int) (int, error) {
	if !g.ordOK(a) || !g.ordOK(b) || !g.ordOK(c) || !g.ordOK(d) {
		return 0, ErrOrdRange
	}

	n := g.Dim1()

	return ((a*n+b)*n+c)*n + d, nil
}

// Unflatten4 inverts Flatten4.
func (g Geometry) Unflatten4(idx int) (a, b, c, d int, err error) {
	if idx < 0 || idx >= g.Dim4() {
		return 0, 0, 0, 0, ErrIndexRange
	}

	n := g.Dim1()
	d = idx % n
	idx /= n
	c = idx % n
	idx /= n
	b = idx % n
	a = idx / n

	return a, b, c, d, nil
}

// FlattenSkip packs (skip distance, ordered key pair) into a skip table
// index. The table is laid out distance-major: distance dist occupies the
// block [(dist-MinSkip)*Dim2, (dist-MinSkip+1)*Dim2).
func (g Geometry) FlattenSkip(dist, a, b int) (int, error) {
	if dist < MinSkip || dist > MaxSkip {
		return 0, ErrSkipRange
	}
	if !g.ordOK(a) || !g.ordOK(b) {
		return 0, ErrOrdRange
	}

	return (dist-MinSkip)*g.Dim2() + a*g.Dim1() + b, nil
}

// UnflattenSkip inverts FlattenSkip.
func (g Geometry) UnflattenSkip(idx int) (dist, a, b int, err error) {
	if idx < 0 || idx >= g.SkipDim() {
		return 0, 0, 0, ErrIndexRange
	}

	d2 := g.Dim2()
	dist = idx/d2 + MinSkip
	idx %= d2
	a = idx / g.Dim1()
	b = idx % g.Dim1()

	return dist, a, b, nil
}

// ordOK reports whether a key ordinal is inside [0, Dim1).
func (g Geometry) ordOK(o int) bool { return o >= 0 && o < g.Dim1() }

// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the sliding-window exponentiator (HAC 14.85,
// spec.md §4.9) and the ModPow orchestrator that dispatches on the
// modulus's parity and, for even moduli, recombines via CRT
// (spec.md §4.10). The window-size table and the lookahead scan mirror
// the shape of expNNWindowed in the retrieval pack's bford nat.go.

package bigint

// windowRanges is searched for the smallest index i such that the
// exponent's bit length fits within windowRanges[i]; the window size is
// i+1, clamped to 6.
var windowRanges = [6]int{7, 25, 81, 241, 673, 1793}

func windowSize(bitlen int) int {
	for i, r := range windowRanges {
		if bitlen <= r {
			return i + 1
		}
	}
	return 6
}

// bitsMSBFirst renders x's magnitude as its bits, most significant first,
// with no leading zero bit (x must be non-zero).
func bitsMSBFirst(x []Word) []int {
	n := len(x)
	top := x[n-1]
	tl := bitLen(top)
	bits := make([]int, 0, tl+(n-1)*limbBits)
	for b := tl - 1; b >= 0; b-- {
		bits = append(bits, int((top>>uint(b))&1))
	}
	for i := n - 2; i >= 0; i-- {
		for b := limbBits - 1; b >= 0; b-- {
			bits = append(bits, int((x[i]>>uint(b))&1))
		}
	}
	return bits
}

func bitsToInt(bits []int) int {
	v := 0
	for _, b := range bits {
		v = v*2 + b
	}
	return v
}

// slidingWindow computes x^e mod n using the reducer named by mode,
// per spec.md §4.9.
func slidingWindow(x, e, n *BigInt, mode reducerMode) *BigInt {
	r := newReducer(mode, n)
	bits := bitsMSBFirst(e.limbs)
	bitlen := len(bits)
	w := windowSize(bitlen)

	numOdd := 1 << uint(w-1)
	oddPowers := make([]*BigInt, numOdd)
	oddPowers[0] = r.undo(x)
	if numOdd > 1 {
		p2 := r.reduce(oddPowers[0].Square())
		for i := 1; i < numOdd; i++ {
			oddPowers[i] = r.reduce(&BigInt{limbs: mulAbs(oddPowers[i-1].limbs, p2.limbs)})
		}
	}

	result := r.undo(FromInt64(1))

	for i := 0; i < bitlen; {
		if bits[i] == 0 {
			result = r.reduce(result.Square())
			i++
			continue
		}

		maxLen := w
		if bitlen-i < maxLen {
			maxLen = bitlen - i
		}
		L := 1
		for k := maxLen - 1; k >= 1; k-- {
			if bits[i+k] == 1 {
				L = k + 1
				break
			}
		}

		for t := 0; t < L; t++ {
			result = r.reduce(result.Square())
		}
		idx := (bitsToInt(bits[i:i+L]) - 1) / 2
		result = r.reduce(&BigInt{limbs: mulAbs(result.limbs, oddPowers[idx].limbs)})
		i += L
	}

	result = r.reduce(result)
	return normalize(result)
}

func isSmallUint(x *BigInt, v Word) bool {
	return !x.neg && len(x.limbs) == 1 && x.limbs[0] == v
}

func trailingZeroBits(w Word) int {
	for b := 0; b < limbBits; b++ {
		if w&(1<<uint(b)) != 0 {
			return b
		}
	}
	return limbBits
}

// splitPowerOfTwo factors n == 2^j * m with m odd, returning j and m.
// n must be non-zero.
func splitPowerOfTwo(n *BigInt) (int, *BigInt) {
	j := 0
	for _, w := range n.limbs {
		if w == 0 {
			j += limbBits
			continue
		}
		j += trailingZeroBits(w)
		break
	}
	return j, normalize(&BigInt{limbs: rshiftAbs(n.limbs, j)})
}

func powerOfTwoBigInt(j int) *BigInt {
	return normalize(&BigInt{limbs: lshiftAbs([]Word{1}, j)})
}

// ModPow returns x^e mod n (spec.md §4.10). Exponent and modulus are
// assumed non-negative, per spec.md's non-goals; callers that hold
// negative values must pre-reduce.
func (x *BigInt) ModPow(e, n *BigInt) (*BigInt, error) {
	if x == nil || e == nil || n == nil {
		return nil, opError("ModPow", ErrNotBigInt)
	}
	if e.isZero() {
		return FromInt64(1), nil
	}
	if isSmallUint(e, 1) {
		_, r, err := x.Divide(n)
		return r, err
	}
	if isSmallUint(e, 2) {
		_, r, err := x.Square().Divide(n)
		return r, err
	}

	if len(n.limbs) > 0 && n.limbs[0]&1 == 1 {
		return slidingWindow(x, e, n, ModeMontgomery), nil
	}

	j, m := splitPowerOfTwo(n)
	twoJ := powerOfTwoBigInt(j)
	if isSmallUint(m, 1) {
		return slidingWindow(x, e, twoJ, ModePowerOfTwo), nil
	}

	part1 := slidingWindow(x, e, m, ModeMontgomery)
	part2 := slidingWindow(x, e, twoJ, ModePowerOfTwo)

	y1, err := twoJ.ModInverse(m)
	if err != nil {
		return nil, opError("ModPow", err)
	}
	y2, err := m.ModInverse(twoJ)
	if err != nil {
		return nil, opError("ModPow", err)
	}

	t1, _ := part1.Multiply(twoJ)
	t1, _ = t1.Multiply(y1)
	t2, _ := part2.Multiply(m)
	t2, _ = t2.Multiply(y2)
	sum, _ := t1.Add(t2)

	_, result, _ := sum.Divide(n)
	return result, nil
}

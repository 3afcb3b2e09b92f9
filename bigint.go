// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the BigInt type and the small set of invariants
// (canonical form, sign of zero) that every other file in the package
// assumes on entry and restores on return.

package bigint

// A BigInt is a signed arbitrary-precision integer. The zero value is 0.
//
// limbs holds the magnitude in base 2^15, least-significant limb first,
// with no high zero limb; neg is the sign and is always false when
// limbs is empty. Values are treated as immutable by every exported
// method: each returns a freshly allocated BigInt.
type BigInt struct {
	limbs []Word
	neg   bool
}

// zeroBigInt is a read-only zero value; it is never mutated and never
// returned directly from an exported method (methods always allocate a
// fresh result via normalize/clone).
var zeroBigInt = &BigInt{}

// FromInt64 allocates and returns a new BigInt set to x.
//
// Supplemental to spec.md's minimal constructor surface, in the idiom of
// math/big.NewInt: RSA-adjacent callers routinely need to lift a machine
// word (a public exponent, a small modulus factor) into a BigInt.
func FromInt64(x int64) *BigInt {
	neg := false
	var ux uint64
	if x < 0 {
		neg = true
		ux = uint64(-x)
	} else {
		ux = uint64(x)
	}
	return normalize(&BigInt{limbs: limbsFromUint64(ux), neg: neg})
}

func limbsFromUint64(x uint64) []Word {
	var limbs []Word
	for x != 0 {
		limbs = append(limbs, Word(x&limbMask))
		x >>= limbBits
	}
	return limbs
}

// normalize trims high zero limbs from z in place and restores the
// "zero has no sign" invariant; it returns z for chaining.
func normalize(z *BigInt) *BigInt {
	n := len(z.limbs)
	for n > 0 && z.limbs[n-1] == 0 {
		n--
	}
	z.limbs = z.limbs[:n]
	if n == 0 {
		z.neg = false
	}
	return z
}

// clone returns a deep copy of x, used whenever a private helper needs a
// freshly owned slice to mutate (lshift, rshift, the division scratch
// buffers) without aliasing a value the caller still holds.
func (x *BigInt) clone() *BigInt {
	limbs := make([]Word, len(x.limbs))
	copy(limbs, x.limbs)
	return &BigInt{limbs: limbs, neg: x.neg}
}

// isZero reports whether x is the canonical zero value.
func (x *BigInt) isZero() bool {
	return len(x.limbs) == 0
}

// Sign returns -1, 0, or +1 according to whether x is negative, zero, or positive.
func (x *BigInt) Sign() int {
	switch {
	case x.isZero():
		return 0
	case x.neg:
		return -1
	default:
		return 1
	}
}

// cmpAbs compares |x| and |y|, returning -1, 0 or +1, by limb count and
// then most-significant limb down (spec.md §4.7).
func cmpAbs(x, y []Word) int {
	if len(x) != len(y) {
		if len(x) < len(y) {
			return -1
		}
		return 1
	}
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != y[i] {
			if x[i] < y[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

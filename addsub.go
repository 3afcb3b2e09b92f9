// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements Add and Subtract (spec.md §4.2, §4.3): same-sign
// addition is magnitude addition; mixed-sign addition and same-sign
// subtraction both reduce to a single magnitude-subtraction primitive.

package bigint

// addAbs returns |x|+|y| as a normalized limb vector.
func addAbs(x, y []Word) []Word {
	if len(x) < len(y) {
		x, y = y, x
	}
	// len(x) >= len(y)
	z := make([]Word, len(x)+1)
	c := addVV(z[:len(y)], x[:len(y)], y)
	if len(x) > len(y) {
		c = addVW(z[len(y):len(x)], x[len(y):], c)
	}
	z[len(x)] = c
	return trim(z)
}

// subAbs returns |x|-|y| as a normalized limb vector. The caller must
// ensure |x| >= |y|; the borrow out of the top limb is always zero in
// that case (spec.md §4.3).
func subAbs(x, y []Word) []Word {
	z := make([]Word, len(x))
	c := subVV(z[:len(y)], x[:len(y)], y)
	if len(x) > len(y) {
		c = subVW(z[len(y):], x[len(y):], c)
	}
	if c != 0 {
		panic("bigint: subAbs called with |x| < |y|")
	}
	return trim(z)
}

func trim(z []Word) []Word {
	n := len(z)
	for n > 0 && z[n-1] == 0 {
		n--
	}
	return z[:n]
}

// Add returns x+y.
func (x *BigInt) Add(y *BigInt) (*BigInt, error) {
	if x == nil || y == nil {
		return nil, opError("Add", ErrNotBigInt)
	}
	neg := x.neg
	var limbs []Word
	if x.neg == y.neg {
		// x + y == x + y; (-x) + (-y) == -(x + y)
		limbs = addAbs(x.limbs, y.limbs)
	} else {
		// x + (-y) == x - y == -(y - x); (-x) + y == y - x == -(x - y)
		switch cmpAbs(x.limbs, y.limbs) {
		case 0:
			return &BigInt{}, nil
		case 1:
			limbs = subAbs(x.limbs, y.limbs)
		default:
			neg = !neg
			limbs = subAbs(y.limbs, x.limbs)
		}
	}
	return normalize(&BigInt{limbs: limbs, neg: neg}), nil
}

// Subtract returns x-y.
func (x *BigInt) Subtract(y *BigInt) (*BigInt, error) {
	if x == nil || y == nil {
		return nil, opError("Subtract", ErrNotBigInt)
	}
	neg := x.neg
	var limbs []Word
	if x.neg != y.neg {
		// x - (-y) == x + y; (-x) - y == -(x + y)
		limbs = addAbs(x.limbs, y.limbs)
	} else {
		switch cmpAbs(x.limbs, y.limbs) {
		case 0:
			return &BigInt{}, nil
		case 1:
			limbs = subAbs(x.limbs, y.limbs)
		default:
			neg = !neg
			limbs = subAbs(y.limbs, x.limbs)
		}
	}
	return normalize(&BigInt{limbs: limbs, neg: neg}), nil
}

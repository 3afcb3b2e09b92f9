// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements modular inverse via the binary extended GCD
// (spec.md §4.11): no multi-precision division, only shifts,
// subtractions and parity tests.

package bigint

// isEvenAbs reports whether x's magnitude is even.
func isEvenAbs(x []Word) bool {
	return len(x) == 0 || x[0]&1 == 0
}

// ModInverse returns x^-1 mod n, the unique value y in [0, n) with
// x*y == 1 (mod n). It fails if x and n are both even, or if
// gcd(x, n) != 1.
//
// Per spec.md §9's resolved open question, x is reduced modulo n (and
// lifted back into [0, n) if negative) before the xGCD loop runs, since
// the reference algorithm only has tested behavior for 0 <= x < n.
func (x *BigInt) ModInverse(n *BigInt) (*BigInt, error) {
	if x == nil || n == nil {
		return nil, opError("ModInverse", ErrNotBigInt)
	}
	if isEvenAbs(x.limbs) && isEvenAbs(n.limbs) {
		return nil, opError("ModInverse", ErrNoInverse)
	}

	_, rem, _ := x.Divide(n)
	if rem.neg {
		rem, _ = rem.Add(n)
	}
	if rem.isZero() {
		// x is a multiple of n, so gcd(x, n) == gcd(0, n) == n: the xGCD
		// loop below never terminates on a zero v, since halving zero
		// stays zero. n == 1 is the degenerate case where every integer
		// is its own inverse (mod 1 everything is congruent); otherwise
		// there is no inverse unless n == 1.
		if isSmallUint(n, 1) {
			return FromInt64(0), nil
		}
		return nil, opError("ModInverse", ErrNoInverse)
	}

	u := n.clone()
	v := rem.clone()
	a := FromInt64(1)
	b := FromInt64(0)
	c := FromInt64(0)
	d := FromInt64(1)

	for !u.isZero() {
		for isEvenAbs(u.limbs) {
			u = normalize(&BigInt{limbs: rshiftAbs(u.limbs, 1)})
			if isEvenAbs(a.limbs) && isEvenAbs(b.limbs) {
				a = normalize(&BigInt{limbs: rshiftAbs(a.limbs, 1), neg: a.neg})
				b = normalize(&BigInt{limbs: rshiftAbs(b.limbs, 1), neg: b.neg})
			} else {
				a, _ = a.Add(rem)
				b, _ = b.Subtract(n)
				a = normalize(&BigInt{limbs: rshiftAbs(a.limbs, 1), neg: a.neg})
				b = normalize(&BigInt{limbs: rshiftAbs(b.limbs, 1), neg: b.neg})
			}
		}
		for isEvenAbs(v.limbs) {
			v = normalize(&BigInt{limbs: rshiftAbs(v.limbs, 1)})
			if isEvenAbs(c.limbs) && isEvenAbs(d.limbs) {
				c = normalize(&BigInt{limbs: rshiftAbs(c.limbs, 1), neg: c.neg})
				d = normalize(&BigInt{limbs: rshiftAbs(d.limbs, 1), neg: d.neg})
			} else {
				c, _ = c.Add(rem)
				d, _ = d.Subtract(n)
				c = normalize(&BigInt{limbs: rshiftAbs(c.limbs, 1), neg: c.neg})
				d = normalize(&BigInt{limbs: rshiftAbs(d.limbs, 1), neg: d.neg})
			}
		}

		cmp, _ := u.Compare(v)
		if cmp >= 0 {
			u, _ = u.Subtract(v)
			a, _ = a.Subtract(c)
			b, _ = b.Subtract(d)
		} else {
			v, _ = v.Subtract(u)
			c, _ = c.Subtract(a)
			d, _ = d.Subtract(b)
		}
	}

	one := FromInt64(1)
	if cmp, _ := v.Compare(one); cmp != 0 {
		return nil, opError("ModInverse", ErrNoInverse)
	}

	// d can lie outside (-n, n), so fold it into [0, n) with a full
	// common-residue reduction rather than a single addition of n.
	_, d, _ = d.Divide(n)
	return d, nil
}

// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements long division (quotient and common-residue
// remainder), adapting Knuth's Algorithm D / HAC 14.20 to base 2^15
// limbs (spec.md §4.5). The core multi-limb loop mirrors the shape of
// math/big's divLarge (preserved in the retrieval pack as
// _examples/other_examples/b1e7c18b_bford-go__src-math-big-nat.go.go):
// normalize so the divisor's top limb has its high bit set, then walk
// from the most significant limb down, estimating, correcting and
// subtracting one trial quotient digit per step.

package bigint

// divAbs returns the quotient and the (possibly empty) remainder of
// |x| / |y|. The remainder is the ordinary mathematical remainder of
// the two magnitudes (always < |y|); sign handling and the
// common-residue adjustment happen one level up, in Divide.
func divAbs(x, y []Word) (q, r []Word) {
	if len(y) == 0 {
		panic("bigint: division by zero")
	}
	switch cmpAbs(x, y) {
	case -1:
		return nil, append([]Word(nil), x...)
	case 0:
		return []Word{1}, nil
	}
	if len(y) == 1 {
		return divAbsWord(x, y[0])
	}
	return divAbsLarge(x, y)
}

func divAbsWord(x []Word, v Word) (q, r []Word) {
	n := len(x)
	q = make([]Word, n)
	var rem uint32
	for i := n - 1; i >= 0; i-- {
		cur := rem<<limbBits | uint32(x[i])
		q[i] = Word(cur / uint32(v))
		rem = cur % uint32(v)
	}
	q = trim(q)
	if rem != 0 {
		r = []Word{Word(rem)}
	}
	return q, r
}

// divAbsLarge implements Algorithm D for len(y) >= 2.
func divAbsLarge(x, y []Word) (q, r []Word) {
	n := len(y)
	m := len(x) - n

	// D1: normalize so the divisor's top limb has bit 14 set.
	s := uint(limbBits - bitLen(y[n-1]))

	v := make([]Word, n)
	shlVU(v, y, s)

	u := make([]Word, len(x)+1)
	u[len(x)] = shlVU(u[:len(x)], x, s)

	q = make([]Word, m+1)

	vTop, vTop2 := v[n-1], v[n-2]

	// D2-D7: one trial digit per limb position, top to bottom.
	for j := m; j >= 0; j-- {
		var qhat Word
		ujn := u[j+n]
		if ujn == vTop {
			qhat = limbMask
		} else {
			num := uint64(ujn)<<limbBits | uint64(u[j+n-1])
			qhat = Word(num / uint64(vTop))
			rhat := num - uint64(qhat)*uint64(vTop)

			for rhat < limbBase && uint64(qhat)*uint64(vTop2) > rhat<<limbBits+uint64(u[j+n-2]) {
				qhat--
				rhat += uint64(vTop)
			}
		}

		if borrow := mulSub(u[j:j+n+1], v, qhat); borrow != 0 {
			// qhat was one too large: add v back and drop the digit by one.
			c := addVV(u[j:j+n], u[j:j+n], v)
			u[j+n] += c
			qhat--
		}
		q[j] = qhat
	}

	q = trim(q)
	shrVU(u, u, s)
	r = trim(u[:n])
	return q, r
}

// mulSub subtracts qhat*v from u in place (len(u) == len(v)+1) and
// returns the borrow out of the top limb: a non-zero result means qhat
// was one too large and the caller must add v back.
func mulSub(u, v []Word, qhat Word) Word {
	n := len(v)
	var carry int64
	for i := 0; i < n; i++ {
		p := int64(qhat)*int64(v[i]) + carry
		lo := p & limbMask
		carry = p >> limbBits
		d := int64(u[i]) - lo
		if d < 0 {
			d += limbBase
			carry++
		}
		u[i] = Word(d)
	}
	d := int64(u[n]) - carry
	var borrow Word
	if d < 0 {
		d += limbBase
		borrow = 1
	}
	u[n] = Word(d)
	return borrow
}

// Divide returns (q, r) with the common residue convention: 0 <= r < |y|
// always, even when x is negative (spec.md §4.5). q is the truncated
// quotient, so x == q*y + r when x >= 0 or r == 0, and
// x == q*y + (r - |y|) when x < 0 and r > 0. Panics if y is zero, like the runtime divide-by-zero panic
// math/big triggers for the same precondition violation.
func (x *BigInt) Divide(y *BigInt) (q, r *BigInt, err error) {
	if x == nil || y == nil {
		return nil, nil, opError("Divide", ErrNotBigInt)
	}
	if y.isZero() {
		panic("bigint: division by zero")
	}

	qAbs, rAbs := divAbs(x.limbs, y.limbs)
	q = normalize(&BigInt{limbs: qAbs, neg: len(qAbs) > 0 && x.neg != y.neg})

	if x.neg && len(rAbs) > 0 {
		rAbs = subAbs(y.limbs, rAbs)
	}
	r = normalize(&BigInt{limbs: rAbs})
	return q, r, nil
}

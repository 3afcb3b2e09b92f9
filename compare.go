// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

// Compare returns -1, 0, or +1 as x is less than, equal to, or greater
// than y (spec.md §4.7): signs are compared first, then, for equal
// signs, magnitudes are compared by limb count and then most
// significant limb down, with the result's polarity flipped when both
// operands are negative.
func (x *BigInt) Compare(y *BigInt) (int, error) {
	if x == nil || y == nil {
		return 0, opError("Compare", ErrNotBigInt)
	}
	switch {
	case x.neg == y.neg:
		r := cmpAbs(x.limbs, y.limbs)
		if x.neg {
			r = -r
		}
		return r, nil
	case x.neg:
		return -1, nil
	default:
		return 1, nil
	}
}

// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

import "github.com/pkg/errors"

// ErrNotBigInt is returned when an operation that requires a *BigInt
// argument is given something else, or a nil *BigInt.
var ErrNotBigInt = errors.New("bigint: argument is not a *BigInt")

// ErrNoInverse is returned by ModInverse when the receiver has no
// multiplicative inverse modulo n, i.e. gcd(this, n) != 1.
var ErrNoInverse = errors.New("bigint: modular inverse does not exist")

// opError wraps a sentinel with the operation name that produced it.
func opError(op string, err error) error {
	return errors.Wrapf(err, "bigint: %s", op)
}

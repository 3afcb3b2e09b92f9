// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bigint implements arbitrary-precision signed integers suitable
// for use in cryptographic primitives such as RSA.
//
// The magnitude of a BigInt is stored as a little-endian vector of
// 15-bit limbs (a Word holds one limb); all arithmetic, division and
// modular-reduction primitives operate on that representation. The
// centerpiece is ModPow, a sliding-window exponentiator driven by one of
// four pluggable modular reducers (Montgomery, Barrett, a power-of-two
// mask, or classic long division), with a Chinese-Remainder-Theorem
// split so that even moduli are handled by combining an odd-modulus
// Montgomery computation with a power-of-two computation via
// ModInverse.
//
// This package is not constant-time. It is a functional reference, not
// a side-channel-hardened primitive; callers with that requirement must
// use a dedicated implementation.
package bigint

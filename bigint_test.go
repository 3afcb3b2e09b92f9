// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

import "testing"

func mustBig(t *testing.T, s string) *BigInt {
	t.Helper()
	return NewBigInt(s, 10)
}

func TestAddSub(t *testing.T) {
	cases := []struct{ x, y, sum, diff string }{
		{"10", "20", "30", "-10"},
		{"-10", "20", "10", "-30"},
		{"10", "-20", "-10", "30"},
		{"-10", "-20", "-30", "10"},
		{"0", "0", "0", "0"},
		{"5", "5", "10", "0"},
	}
	for _, c := range cases {
		x, y := mustBig(t, c.x), mustBig(t, c.y)
		sum, err := x.Add(y)
		if err != nil {
			t.Fatalf("Add(%s,%s): %v", c.x, c.y, err)
		}
		if got := sum.String(); got != c.sum {
			t.Errorf("%s + %s = %s, want %s", c.x, c.y, got, c.sum)
		}
		diff, err := x.Subtract(y)
		if err != nil {
			t.Fatalf("Subtract(%s,%s): %v", c.x, c.y, err)
		}
		if got := diff.String(); got != c.diff {
			t.Errorf("%s - %s = %s, want %s", c.x, c.y, got, c.diff)
		}
	}
}

func TestAddSubRoundTrip(t *testing.T) {
	xs := []string{"123456789012345678901234567890", "-99999999999999999999", "0", "7"}
	ys := []string{"1", "-42", "2000000000000000000000000000001", "0"}
	for _, xs := range xs {
		for _, ys := range ys {
			x, y := mustBig(t, xs), mustBig(t, ys)
			sum, _ := x.Add(y)
			back, _ := sum.Subtract(y)
			if got := back.String(); got != x.String() {
				t.Errorf("(%s + %s) - %s = %s, want %s", xs, ys, ys, got, xs)
			}
		}
	}
}

func TestMultiply(t *testing.T) {
	cases := []struct{ x, y, want string }{
		{"10", "20", "200"},
		{"-10", "20", "-200"},
		{"-10", "-20", "200"},
		{"0", "12345", "0"},
		{"123456789", "987654321", "121932631112635269"},
	}
	for _, c := range cases {
		x, y := mustBig(t, c.x), mustBig(t, c.y)
		got, err := x.Multiply(y)
		if err != nil {
			t.Fatalf("Multiply(%s,%s): %v", c.x, c.y, err)
		}
		if got.String() != c.want {
			t.Errorf("%s * %s = %s, want %s", c.x, c.y, got.String(), c.want)
		}
	}
}

func TestMultiplyCommutative(t *testing.T) {
	x := mustBig(t, "340282366920938463463374607431768211456")
	y := mustBig(t, "-999999999999999999999999999")
	a, _ := x.Multiply(y)
	b, _ := y.Multiply(x)
	if a.String() != b.String() {
		t.Errorf("x*y = %s, y*x = %s", a.String(), b.String())
	}
}

func TestSquareMatchesMultiply(t *testing.T) {
	x := mustBig(t, "123456789012345678901234567890")
	sq := x.Square()
	mul, _ := x.Multiply(x)
	if sq.String() != mul.String() {
		t.Errorf("Square() = %s, Multiply(self) = %s", sq.String(), mul.String())
	}
}

func TestCompare(t *testing.T) {
	cases := []struct {
		x, y string
		want int
	}{
		{"10", "20", -1},
		{"20", "10", 1},
		{"10", "10", 0},
		{"-10", "10", -1},
		{"-10", "-20", 1},
		{"0", "0", 0},
	}
	for _, c := range cases {
		x, y := mustBig(t, c.x), mustBig(t, c.y)
		got, err := x.Compare(y)
		if err != nil {
			t.Fatalf("Compare(%s,%s): %v", c.x, c.y, err)
		}
		if got != c.want {
			t.Errorf("Compare(%s,%s) = %d, want %d", c.x, c.y, got, c.want)
		}
	}
}

func TestNonBigIntArgumentFails(t *testing.T) {
	x := mustBig(t, "5")
	if _, err := x.Add(nil); err == nil {
		t.Error("Add(nil) should fail")
	}
	if _, err := x.Subtract(nil); err == nil {
		t.Error("Subtract(nil) should fail")
	}
	if _, err := x.Multiply(nil); err == nil {
		t.Error("Multiply(nil) should fail")
	}
	if _, err := x.Compare(nil); err == nil {
		t.Error("Compare(nil) should fail")
	}
	if _, _, err := x.Divide(nil); err == nil {
		t.Error("Divide(nil) should fail")
	}
}

func TestNormalizationInvariant(t *testing.T) {
	zero := NewBigInt("0", 10)
	if !zero.isZero() || zero.neg {
		t.Errorf("zero value not canonical: limbs=%v neg=%v", zero.limbs, zero.neg)
	}
	x, _ := mustBig(t, "5").Subtract(mustBig(t, "5"))
	if !x.isZero() || x.neg {
		t.Errorf("5-5 not canonical zero: limbs=%v neg=%v", x.limbs, x.neg)
	}
	y := mustBig(t, "65536")
	if len(y.limbs) > 0 && y.limbs[len(y.limbs)-1] == 0 {
		t.Errorf("trailing zero limb in %v", y.limbs)
	}
}

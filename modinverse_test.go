// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

import "testing"

func TestModInverseScenario(t *testing.T) {
	x := mustBig(t, "30")
	n := mustBig(t, "17")
	got, err := x.ModInverse(n)
	if err != nil {
		t.Fatal(err)
	}
	if got.String() != "4" {
		t.Errorf("30^-1 mod 17 = %s, want 4", got.String())
	}
}

func TestModInverseProperty(t *testing.T) {
	cases := []struct{ x, n string }{
		{"3", "11"},
		{"10", "17"},
		{"7", "3233"},
		{"65537", "3120"},
	}
	for _, c := range cases {
		x, n := mustBig(t, c.x), mustBig(t, c.n)
		inv, err := x.ModInverse(n)
		if err != nil {
			t.Fatalf("ModInverse(%s,%s): %v", c.x, c.n, err)
		}
		prod, _ := x.Multiply(inv)
		_, r, _ := prod.Divide(n)
		if r.String() != "1" {
			t.Errorf("%s * modInverse(%s,%s)=%s mod %s = %s, want 1", c.x, c.x, c.n, inv.String(), c.n, r.String())
		}
	}
}

func TestModInverseNoInverse(t *testing.T) {
	x := mustBig(t, "6")
	n := mustBig(t, "9")
	if _, err := x.ModInverse(n); err == nil {
		t.Error("ModInverse(6,9) should fail: gcd(6,9)=3")
	}
}

func TestModInverseBothEven(t *testing.T) {
	x := mustBig(t, "4")
	n := mustBig(t, "8")
	if _, err := x.ModInverse(n); err == nil {
		t.Error("ModInverse(4,8) should fail: both even")
	}
}

func TestModInverseMultipleOfModulus(t *testing.T) {
	x := mustBig(t, "34") // 34 mod 17 == 0
	n := mustBig(t, "17")
	if _, err := x.ModInverse(n); err == nil {
		t.Error("ModInverse(34,17) should fail: gcd(34,17)=17")
	}
}

func TestModInverseModulusOne(t *testing.T) {
	x := mustBig(t, "5")
	n := mustBig(t, "1")
	got, err := x.ModInverse(n)
	if err != nil {
		t.Fatal(err)
	}
	if got.String() != "0" {
		t.Errorf("ModInverse(5,1) = %s, want 0", got.String())
	}
}

func TestModInverseNormalizesLargeX(t *testing.T) {
	// x >= n is outside the reference algorithm's tested envelope;
	// spec.md §9 requires callers be able to pass any integer safely.
	x := mustBig(t, "47") // 47 mod 17 == 13
	n := mustBig(t, "17")
	got, err := x.ModInverse(n)
	if err != nil {
		t.Fatal(err)
	}
	prod, _ := x.Multiply(got)
	_, r, _ := prod.Divide(n)
	if r.String() != "1" {
		t.Errorf("47 * modInverse(47,17) mod 17 = %s, want 1", r.String())
	}
}

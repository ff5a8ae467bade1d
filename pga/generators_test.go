package pga

import (
	"testing"
)

func scalarEntity(s float32) Entity {
	return Entity{mask: maskP1, parts: [4][4]float32{{s, 0, 0, 0}}}
}

func TestGeneratorProducts(t *testing.T) {
	cases := []struct {
		name string
		got  Entity
		want Entity
	}{
		{"e1*e1", E1.Mul(E1), scalarEntity(1)},
		{"e1*e2", E1.Mul(E2), E12},
		{"e2*e3", E2.Mul(E3), E23},
		{"e3*e1", E3.Mul(E1), E31},
		{"e0*e1", E0.Mul(E1), E01},
		{"e0*e2", E0.Mul(E2), E02},
		{"e0*e3", E0.Mul(E3), E03},
		{"e2*e1", E2.Mul(E1), E12.Scale(-1)},
		{"e1*e2*e3", E1.Mul(E2).Mul(E3), E123},
		{"e0*e2*e1", E0.Mul(E2).Mul(E1), E021},
		{"e0*e1*e3", E0.Mul(E1).Mul(E3), E013},
		{"e0*e3*e2", E0.Mul(E3).Mul(E2), E032},
		{"e0*e1*e2*e3", E0.Mul(E1).Mul(E2).Mul(E3), I},
	}
	for _, c := range cases {
		// Compare densely: a product's mask is often wider than the
		// generator that names the same element.
		dg, dw := dense(c.got), dense(c.want)
		if dg != dw {
			t.Errorf("%s: got %v, want %v", c.name, dg, dw)
		}
	}
}

func TestDegenerateGenerator(t *testing.T) {
	if d := dense(E0.Mul(E0)); d != ([16]float32{}) {
		t.Errorf("e0^2 = %v, want 0", d)
	}
	if d := dense(I.Mul(I)); d != ([16]float32{}) {
		t.Errorf("I^2 = %v, want 0", d)
	}
	sq := E123.Mul(E123)
	if sq.Scalar() != -1 {
		t.Errorf("e123^2 scalar = %v, want -1", sq.Scalar())
	}
	for b, v := range dense(sq) {
		if b != 0 && v != 0 {
			t.Errorf("e123^2 blade %04b = %v, want 0", b, v)
		}
	}
}

func TestGeneratorExpressionBuildsPlane(t *testing.T) {
	// a*e1 + b*e2 + c*e3 + d*e0 assembled from generators equals the
	// plane constructor.
	e := E1.Scale(1).Add(E2.Scale(2)).Add(E3.Scale(3)).Add(E0.Scale(4))
	if e != NewPlane(1, 2, 3, 4).Entity {
		t.Errorf("generator expression differs from NewPlane: %v vs %v",
			dense(e), dense(NewPlane(1, 2, 3, 4).Entity))
	}
}

func TestGeneratorOddSlotsZero(t *testing.T) {
	for _, g := range []Entity{E12, E31, E23} {
		if g.Scalar() != 0 {
			t.Errorf("Euclidean line generator carries a scalar")
		}
	}
	for _, g := range []Entity{E01, E02, E03} {
		if g.E0123() != 0 {
			t.Errorf("ideal line generator carries a pseudoscalar")
		}
	}
}

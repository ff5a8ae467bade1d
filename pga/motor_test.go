package pga

import (
	"math"
	"math/rand"
	"testing"

	"github.com/chewxy/math32"
)

func pointNear(t *testing.T, got Point, x, y, z, tol float32) {
	t.Helper()
	if math32.Abs(got.X()-x) > tol || math32.Abs(got.Y()-y) > tol || math32.Abs(got.Z()-z) > tol {
		t.Errorf("point = (%v, %v, %v), want (%v, %v, %v)", got.X(), got.Y(), got.Z(), x, y, z)
	}
}

func TestIdentityMotorSandwich(t *testing.T) {
	m := NewMotor(1, 0, 0, 0, 0, 0, 0, 0)
	pts := []Point{
		NewPoint(0, 0, 0),
		NewPoint(1, 2, 3),
		NewPoint(-4, 0.5, 100),
	}
	for _, p := range pts {
		s := m.Entity.Mul(p.Entity).Mul(m.Entity.Reverse())
		// The sandwich reports an L0 lane; for the identity it is exactly zero.
		if s.Mask() != maskP0|maskP3 {
			t.Fatalf("sandwich mask = %04b, want %04b", s.Mask(), maskP0|maskP3)
		}
		if s.E0() != 0 || s.E1() != 0 || s.E2() != 0 || s.E3() != 0 {
			t.Errorf("identity sandwich has nonzero L0 residual")
		}
		got := PointFromEntity(s)
		if got.Entity != p.Entity {
			t.Errorf("identity sandwich moved (%v,%v,%v) to (%v,%v,%v)",
				p.X(), p.Y(), p.Z(), got.X(), got.Y(), got.Z())
		}
	}
}

func TestRotorQuarterTurnAboutZ(t *testing.T) {
	r := NewRotor(math.Pi/2, 0, 0, 1)
	pointNear(t, r.Apply(NewPoint(1, 0, 0)), 0, 1, 0, 1e-6)
	pointNear(t, r.Apply(NewPoint(0, 1, 0)), -1, 0, 0, 1e-6)
	pointNear(t, r.Apply(NewPoint(0, 0, 5)), 0, 0, 5, 1e-6)
}

func TestRotorAboutArbitraryAxis(t *testing.T) {
	// A third of a turn about (1,1,1) permutes the basis points cyclically:
	// x goes to y, y to z, z to x.
	r := NewRotor(2*math.Pi/3, 1, 1, 1)
	pointNear(t, r.Apply(NewPoint(1, 0, 0)), 0, 1, 0, 1e-5)
	pointNear(t, r.Apply(NewPoint(0, 1, 0)), 0, 0, 1, 1e-5)
	pointNear(t, r.Apply(NewPoint(0, 0, 1)), 1, 0, 0, 1e-5)
}

func TestTranslator(t *testing.T) {
	tr := NewTranslator(5, 1, 0, 0)
	pointNear(t, tr.Apply(NewPoint(1, 2, 3)), 6, 2, 3, 1e-6)

	// Directions are immune to translation.
	d := tr.ApplyDirection(NewDirection(1, 2, 3))
	if d.X() != 1 || d.Y() != 2 || d.Z() != 3 {
		t.Errorf("translator moved a direction: (%v, %v, %v)", d.X(), d.Y(), d.Z())
	}

	// Diagonal translation with a non-normalized direction argument.
	tr = NewTranslator(math32.Sqrt(3), 2, 2, 2)
	pointNear(t, tr.Apply(NewPoint(0, 0, 0)), 1, 1, 1, 1e-6)
}

func TestMotorComposition(t *testing.T) {
	r := NewRotor(math.Pi/2, 0, 0, 1)
	tr := NewTranslator(3, 1, 0, 0)

	// Motor composition is the geometric product; rt applies tr first.
	rt := MotorFromEntity(r.Entity.Mul(tr.Entity))
	p := NewPoint(1, 0, 0)
	want := r.Apply(tr.Apply(p))
	pointNear(t, rt.Apply(p), want.X(), want.Y(), want.Z(), 1e-5)
	pointNear(t, rt.Apply(p), -0, 4, 0, 1e-5)
}

func TestMotorReverseUndoes(t *testing.T) {
	m := MotorFromEntity(NewRotor(0.7, 1, 2, 3).Entity.Mul(NewTranslator(2, 0, 1, 1).Entity))
	p := NewPoint(0.5, -1, 2)
	back := MotorFromEntity(m.Entity.Reverse()).Apply(m.Apply(p))
	pointNear(t, back, 0.5, -1, 2, 1e-5)
}

func TestUnitMotorNormSquared(t *testing.T) {
	m := MotorFromEntity(NewRotor(1.1, 3, -2, 1).Entity.Mul(NewTranslator(4, 1, 1, 0).Entity))
	sq := m.Entity.Mul(m.Entity.Reverse())
	if math32.Abs(sq.Scalar()-1) > 1e-5 {
		t.Errorf("m * ~m scalar = %v, want 1", sq.Scalar())
	}
	for b, v := range dense(sq) {
		if b != 0 && math32.Abs(v) > 1e-5 {
			t.Errorf("m * ~m blade %04b = %v, want 0", b, v)
		}
	}
}

func TestMotorNormalize(t *testing.T) {
	m := MotorFromEntity(NewRotor(0.9, 1, 0, 2).Entity.Mul(NewTranslator(3, 0, 1, 0).Entity))
	m.Entity = m.Entity.Scale(2.5)
	m.Normalize()
	sq := m.Entity.Mul(m.Entity.Reverse())
	if math32.Abs(sq.Scalar()-1) > 1e-5 {
		t.Errorf("normalized motor m * ~m scalar = %v, want 1", sq.Scalar())
	}
}

func TestSandwichPreservesWeight(t *testing.T) {
	rng := rand.New(rand.NewSource(20))
	for trial := 0; trial < 10; trial++ {
		m := MotorFromEntity(
			NewRotor(rng.Float32()*6, rng.Float32()+0.1, rng.Float32(), rng.Float32()).Entity.
				Mul(NewTranslator(rng.Float32()*5, rng.Float32()+0.1, rng.Float32(), rng.Float32()).Entity))
		p := NewPoint(rng.Float32()*10-5, rng.Float32()*10-5, rng.Float32()*10-5)
		got := m.Apply(p)
		if math32.Abs(got.E123()-1) > 1e-5 {
			t.Errorf("sandwich weight = %v, want 1", got.E123())
		}
	}
}

func TestMotorMatrixMatchesApply(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	for trial := 0; trial < 10; trial++ {
		m := MotorFromEntity(
			NewRotor(rng.Float32()*6, rng.Float32()+0.1, rng.Float32(), rng.Float32()).Entity.
				Mul(NewTranslator(rng.Float32()*5, rng.Float32()+0.1, rng.Float32(), rng.Float32()).Entity))
		mat := m.Matrix()
		for i := 0; i < 5; i++ {
			x := rng.Float32()*4 - 2
			y := rng.Float32()*4 - 2
			z := rng.Float32()*4 - 2
			want := m.Apply(NewPoint(x, y, z))
			gx := mat[0][0]*x + mat[0][1]*y + mat[0][2]*z + mat[0][3]
			gy := mat[1][0]*x + mat[1][1]*y + mat[1][2]*z + mat[1][3]
			gz := mat[2][0]*x + mat[2][1]*y + mat[2][2]*z + mat[2][3]
			if math32.Abs(gx-want.X()) > 1e-4 || math32.Abs(gy-want.Y()) > 1e-4 || math32.Abs(gz-want.Z()) > 1e-4 {
				t.Fatalf("matrix path (%v,%v,%v) != sandwich (%v,%v,%v)",
					gx, gy, gz, want.X(), want.Y(), want.Z())
			}
		}
	}
}

func TestPointNormalize(t *testing.T) {
	p := NewPoint(1, 2, 3)
	p.Entity = p.Entity.Scale(2) // L3 = (2, 6, 4, 2)
	if got := p.Lane(3); got != [4]float32{2, 6, 4, 2} {
		t.Fatalf("scaled point lane = %v, want [2 6 4 2]", got)
	}
	p.Normalize()
	const tol = 4e-4
	if math32.Abs(p.X()-1) > tol || math32.Abs(p.Y()-2) > tol || math32.Abs(p.Z()-3) > tol {
		t.Errorf("normalized point = (%v, %v, %v), want (1, 2, 3)", p.X(), p.Y(), p.Z())
	}
	if math32.Abs(p.E123()-1) > tol {
		t.Errorf("normalized weight = %v, want 1", p.E123())
	}
}

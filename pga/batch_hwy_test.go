package pga

import (
	"math/rand"
	"testing"

	"github.com/chewxy/math32"
)

// Batch sizes straddle the vector width so both the full-vector body and
// the masked tail run.
var batchSizes = []int{1, 3, 7, 8, 33}

func randomCoords(rng *rand.Rand, n int) (x, y, z []float32) {
	x = make([]float32, n)
	y = make([]float32, n)
	z = make([]float32, n)
	for i := 0; i < n; i++ {
		x[i] = rng.Float32()*10 - 5
		y[i] = rng.Float32()*10 - 5
		z[i] = rng.Float32()*10 - 5
	}
	return x, y, z
}

func TestMotorTransformBatchMatchesSandwich(t *testing.T) {
	rng := rand.New(rand.NewSource(30))
	m := MotorFromEntity(
		NewRotor(1.2, 1, 2, -1).Entity.Mul(NewTranslator(3, 0, 1, 2).Entity))

	for _, n := range batchSizes {
		x, y, z := randomCoords(rng, n)
		dx := make([]float32, n)
		dy := make([]float32, n)
		dz := make([]float32, n)
		m.TransformBatch(x, y, z, dx, dy, dz)

		for i := 0; i < n; i++ {
			want := m.Apply(NewPoint(x[i], y[i], z[i]))
			if math32.Abs(dx[i]-want.X()) > 1e-4 ||
				math32.Abs(dy[i]-want.Y()) > 1e-4 ||
				math32.Abs(dz[i]-want.Z()) > 1e-4 {
				t.Fatalf("n=%d i=%d: batch (%v,%v,%v) != sandwich (%v,%v,%v)",
					n, i, dx[i], dy[i], dz[i], want.X(), want.Y(), want.Z())
			}
		}
	}
}

func TestPointNormalizeBatch(t *testing.T) {
	rng := rand.New(rand.NewSource(31))
	for _, n := range batchSizes {
		x, y, z := randomCoords(rng, n)
		w := make([]float32, n)
		for i := range w {
			w[i] = rng.Float32()*4 + 0.5
		}
		dx := make([]float32, n)
		dy := make([]float32, n)
		dz := make([]float32, n)
		BasePointNormalizeBatch(w, x, y, z, dx, dy, dz)

		for i := 0; i < n; i++ {
			if dx[i] != x[i]/w[i] || dy[i] != y[i]/w[i] || dz[i] != z[i]/w[i] {
				t.Fatalf("n=%d i=%d: normalize (%v,%v,%v), want (%v,%v,%v)",
					n, i, dx[i], dy[i], dz[i], x[i]/w[i], y[i]/w[i], z[i]/w[i])
			}
		}
	}
}

func TestPlaneDistanceBatch(t *testing.T) {
	rng := rand.New(rand.NewSource(32))
	p := NewPlane(0.5, -1, 2, 3)
	for _, n := range batchSizes {
		x, y, z := randomCoords(rng, n)
		w := make([]float32, n)
		for i := range w {
			w[i] = 1
		}
		dst := make([]float32, n)
		p.DistanceBatch(x, y, z, w, dst)

		for i := 0; i < n; i++ {
			want := 0.5*x[i] + -1*y[i] + 2*z[i] + 3
			if math32.Abs(dst[i]-want) > 1e-5 {
				t.Fatalf("n=%d i=%d: distance %v, want %v", n, i, dst[i], want)
			}
		}
	}
}

func BenchmarkMotorTransformBatch(b *testing.B) {
	rng := rand.New(rand.NewSource(33))
	m := NewRotor(0.8, 0, 1, 0)
	x, y, z := randomCoords(rng, 1024)
	dx := make([]float32, 1024)
	dy := make([]float32, 1024)
	dz := make([]float32, 1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.TransformBatch(x, y, z, dx, dy, dz)
	}
}

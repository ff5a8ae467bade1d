package pga

//go:generate hwygen -input $GOFILE -output . -targets avx2,fallback

import (
	"github.com/ajroetker/go-highway/hwy"
)

// Batch operations over Structure-of-Arrays point sets. Applying one
// motor or plane to a stream of points is the common shape in graphics
// and robotics workloads; streaming SoA coordinates through wide SIMD
// lanes is much faster than sandwiching points one at a time.

// BaseAffineTransformBatch applies a 3x4 affine matrix to a set of 3D
// points (SoA layout). Rows of the matrix are output coordinates, the
// last column is the translation:
//
//	dstX = m00*x + m01*y + m02*z + m03
//	dstY = m10*x + m11*y + m12*z + m13
//	dstZ = m20*x + m21*y + m22*z + m23
//
// This is the fast path for Motor.TransformBatch.
func BaseAffineTransformBatch[T hwy.Floats](
	m00, m01, m02, m03 T,
	m10, m11, m12, m13 T,
	m20, m21, m22, m23 T,
	srcX, srcY, srcZ []T,
	dstX, dstY, dstZ []T,
) {
	size := min(len(srcX), len(srcY), len(srcZ), len(dstX), len(dstY), len(dstZ))

	vM00 := hwy.Set(m00)
	vM01 := hwy.Set(m01)
	vM02 := hwy.Set(m02)
	vM03 := hwy.Set(m03)
	vM10 := hwy.Set(m10)
	vM11 := hwy.Set(m11)
	vM12 := hwy.Set(m12)
	vM13 := hwy.Set(m13)
	vM20 := hwy.Set(m20)
	vM21 := hwy.Set(m21)
	vM22 := hwy.Set(m22)
	vM23 := hwy.Set(m23)

	hwy.ProcessWithTail[T](size,
		func(offset int) {
			x := hwy.Load(srcX[offset:])
			y := hwy.Load(srcY[offset:])
			z := hwy.Load(srcZ[offset:])

			rx := hwy.FMA(vM00, x, vM03)
			rx = hwy.FMA(vM01, y, rx)
			rx = hwy.FMA(vM02, z, rx)

			ry := hwy.FMA(vM10, x, vM13)
			ry = hwy.FMA(vM11, y, ry)
			ry = hwy.FMA(vM12, z, ry)

			rz := hwy.FMA(vM20, x, vM23)
			rz = hwy.FMA(vM21, y, rz)
			rz = hwy.FMA(vM22, z, rz)

			hwy.Store(rx, dstX[offset:])
			hwy.Store(ry, dstY[offset:])
			hwy.Store(rz, dstZ[offset:])
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)

			x := hwy.MaskLoad(mask, srcX[offset:])
			y := hwy.MaskLoad(mask, srcY[offset:])
			z := hwy.MaskLoad(mask, srcZ[offset:])

			rx := hwy.FMA(vM00, x, vM03)
			rx = hwy.FMA(vM01, y, rx)
			rx = hwy.FMA(vM02, z, rx)

			ry := hwy.FMA(vM10, x, vM13)
			ry = hwy.FMA(vM11, y, ry)
			ry = hwy.FMA(vM12, z, ry)

			rz := hwy.FMA(vM20, x, vM23)
			rz = hwy.FMA(vM21, y, rz)
			rz = hwy.FMA(vM22, z, rz)

			hwy.MaskStore(mask, rx, dstX[offset:])
			hwy.MaskStore(mask, ry, dstY[offset:])
			hwy.MaskStore(mask, rz, dstZ[offset:])
		},
	)
}

// BasePointNormalizeBatch divides a set of projective points (SoA
// layout) by their homogeneous weights, writing weight-1 coordinates.
// Behavior for zero weights follows ordinary float division.
func BasePointNormalizeBatch[T hwy.Floats](
	w, x, y, z []T,
	dstX, dstY, dstZ []T,
) {
	size := min(len(w), len(x), len(y), len(z), len(dstX), len(dstY), len(dstZ))

	hwy.ProcessWithTail[T](size,
		func(offset int) {
			vW := hwy.Load(w[offset:])
			hwy.Store(hwy.Div(hwy.Load(x[offset:]), vW), dstX[offset:])
			hwy.Store(hwy.Div(hwy.Load(y[offset:]), vW), dstY[offset:])
			hwy.Store(hwy.Div(hwy.Load(z[offset:]), vW), dstZ[offset:])
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)
			vW := hwy.MaskLoad(mask, w[offset:])
			hwy.MaskStore(mask, hwy.Div(hwy.MaskLoad(mask, x[offset:]), vW), dstX[offset:])
			hwy.MaskStore(mask, hwy.Div(hwy.MaskLoad(mask, y[offset:]), vW), dstY[offset:])
			hwy.MaskStore(mask, hwy.Div(hwy.MaskLoad(mask, z[offset:]), vW), dstZ[offset:])
		},
	)
}

// BasePlaneDistanceBatch computes the signed incidence of a constant
// plane (a, b, c, d) against a set of projective points (SoA layout):
//
//	dst[i] = a*x[i] + b*y[i] + c*z[i] + d*w[i]
//
// For a normalized plane and weight-1 points this is the signed
// Euclidean distance from the plane.
func BasePlaneDistanceBatch[T hwy.Floats](
	a, b, c, d T,
	x, y, z, w []T,
	dst []T,
) {
	size := min(len(x), len(y), len(z), len(w), len(dst))

	vA := hwy.Set(a)
	vB := hwy.Set(b)
	vC := hwy.Set(c)
	vD := hwy.Set(d)

	hwy.ProcessWithTail[T](size,
		func(offset int) {
			sum := hwy.Mul(vA, hwy.Load(x[offset:]))
			sum = hwy.FMA(vB, hwy.Load(y[offset:]), sum)
			sum = hwy.FMA(vC, hwy.Load(z[offset:]), sum)
			sum = hwy.FMA(vD, hwy.Load(w[offset:]), sum)
			hwy.Store(sum, dst[offset:])
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)
			sum := hwy.Mul(vA, hwy.MaskLoad(mask, x[offset:]))
			sum = hwy.FMA(vB, hwy.MaskLoad(mask, y[offset:]), sum)
			sum = hwy.FMA(vC, hwy.MaskLoad(mask, z[offset:]), sum)
			sum = hwy.FMA(vD, hwy.MaskLoad(mask, w[offset:]), sum)
			hwy.MaskStore(mask, sum, dst[offset:])
		},
	)
}

// DistanceBatch streams SoA points through the incidence kernel for
// this plane.
func (p Plane) DistanceBatch(x, y, z, w []float32, dst []float32) {
	BasePlaneDistanceBatch(p.E1(), p.E2(), p.E3(), p.E0(), x, y, z, w, dst)
}

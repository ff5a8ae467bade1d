package pga

import (
	"github.com/ajroetker/go-highway/hwy"
)

// Lane-to-lane geometric product kernels.
//
// gpIJ multiplies a lane drawn from Li of the left operand against a lane
// drawn from Lj of the right operand and returns the lanes its products
// land in. Each kernel is a fixed straight-line sequence: lane shuffles
// and broadcasts, element-wise multiplies, sign application against a
// precomputed ±1/0 pattern, and fused accumulation. No control flow, no
// memory access beyond the arguments.
//
// Every kernel was obtained by expanding the sixteen blade products of
// its lane pair under the lane ordering
//
//	L0: (e3, e2, e1, e0)
//	L1: (1, e12, e31, e23)
//	L2: (e0123, e01, e02, e03)
//	L3: (e123, e021, e013, e032)
//
// and regrouping the terms per output slot. The L2×L2 pair is absent:
// the pseudoscalar and the ideal bivectors all carry a factor of e0, so
// their pairwise products vanish.

// Sign patterns, named by slot: P = +1, M = -1, Z = 0, slot 0 first.
var (
	sPMMM = vec4(1, -1, -1, -1)
	sMPPP = vec4(-1, 1, 1, 1)
	sPPPZ = vec4(1, 1, 1, 0)
	sMMMZ = vec4(-1, -1, -1, 0)
	sMMMP = vec4(-1, -1, -1, 1)
	sZPPP = vec4(0, 1, 1, 1)
	sZMMM = vec4(0, -1, -1, -1)
	sZZZP = vec4(0, 0, 0, 1)
	sZZZM = vec4(0, 0, 0, -1)
	sPZZZ = vec4(1, 0, 0, 0)
	sMZZZ = vec4(-1, 0, 0, 0)
	sZPPM = vec4(0, 1, 1, -1)
	sZMPP = vec4(0, -1, 1, 1)
	sZPMP = vec4(0, 1, -1, 1)
	sZMPM = vec4(0, -1, 1, -1)
	sPPMM = vec4(1, 1, -1, -1)
	sPMMP = vec4(1, -1, -1, 1)
	sPMPM = vec4(1, -1, 1, -1)
	sPPMP = vec4(1, 1, -1, 1)
)

func mulSh(a hwy.Vec[float32], a0, a1, a2, a3 int, b hwy.Vec[float32], b0, b1, b2, b3 int) hwy.Vec[float32] {
	return hwy.Mul(hwy.Shuffle0123(a, a0, a1, a2, a3), hwy.Shuffle0123(b, b0, b1, b2, b3))
}

// gp00: L0 x L0 -> L1, L2.
//
//	L1: (a0b0+a1b1+a2b2, a2b1-a1b2, a0b2-a2b0, a1b0-a0b1)
//	L2: (0, a3b2-a2b3, a3b1-a1b3, a3b0-a0b3)
func gp00(a, b hwy.Vec[float32]) (p1, p2 hwy.Vec[float32]) {
	p1 = mulSh(a, 0, 2, 0, 1, b, 0, 1, 2, 0)
	p1 = hwy.FMA(sPMMM, mulSh(a, 1, 1, 2, 0, b, 1, 2, 0, 1), p1)
	p1 = hwy.FMA(sPZZZ, hwy.Mul(hwy.Broadcast(a, 2), hwy.Broadcast(b, 2)), p1)

	p2 = hwy.Sub(
		hwy.Mul(hwy.Broadcast(a, 3), hwy.Shuffle0123(b, 0, 2, 1, 0)),
		hwy.Mul(hwy.Shuffle0123(a, 0, 2, 1, 0), hwy.Broadcast(b, 3)))
	p2 = hwy.Mul(p2, sZPPP)
	return p1, p2
}

// gp01: L0 x L1 -> L0, L3.
//
//	L0: (a0b0+a1b3-a2b2, a1b0+a2b1-a0b3, a2b0+a0b2-a1b1, a3b0)
//	L3: (a0b1+a1b2+a2b3, -a3b1, -a3b2, -a3b3)
func gp01(a, b hwy.Vec[float32]) (p0, p3 hwy.Vec[float32]) {
	p0 = hwy.Mul(a, hwy.Broadcast(b, 0))
	p0 = hwy.FMA(sPPPZ, mulSh(a, 1, 2, 0, 0, b, 3, 1, 2, 0), p0)
	p0 = hwy.FMA(sMMMZ, mulSh(a, 2, 0, 1, 0, b, 2, 3, 1, 0), p0)

	p3 = hwy.Mul(sPMMM, mulSh(a, 0, 3, 3, 3, b, 1, 1, 2, 3))
	p3 = hwy.FMA(sPZZZ, hwy.Mul(hwy.Broadcast(a, 1), hwy.Broadcast(b, 2)), p3)
	p3 = hwy.FMA(sPZZZ, hwy.Mul(hwy.Broadcast(a, 2), hwy.Broadcast(b, 3)), p3)
	return p0, p3
}

// gp02: L0 x L2 -> L0, L3. Only e0 survives in L0.
//
//	L0: (0, 0, 0, -a0b3-a1b2-a2b1)
//	L3: (0, a0b0-a1b1+a2b2, a0b1+a1b0-a2b3, -a0b2+a1b3+a2b0)
func gp02(a, b hwy.Vec[float32]) (p0, p3 hwy.Vec[float32]) {
	p0 = hwy.Mul(sZZZM, hwy.Mul(hwy.Broadcast(a, 0), b))
	p0 = hwy.FMA(sZZZM, hwy.Mul(hwy.Broadcast(a, 1), hwy.Broadcast(b, 2)), p0)
	p0 = hwy.FMA(sZZZM, hwy.Mul(hwy.Broadcast(a, 2), hwy.Broadcast(b, 1)), p0)

	p3 = hwy.Mul(sZPPM, hwy.Mul(hwy.Broadcast(a, 0), hwy.Shuffle0123(b, 0, 0, 1, 2)))
	p3 = hwy.FMA(sZMPP, hwy.Mul(hwy.Broadcast(a, 1), hwy.Shuffle0123(b, 0, 1, 0, 3)), p3)
	p3 = hwy.FMA(sZPMP, hwy.Mul(hwy.Broadcast(a, 2), hwy.Shuffle0123(b, 0, 2, 3, 0)), p3)
	return p0, p3
}

// gp03: L0 x L3 -> L1, L2.
//
//	L1: (0, a0b0, a1b0, a2b0)
//	L2: (a0b1+a1b2+a2b3+a3b0, a0b2-a1b1, a2b1-a0b3, a1b3-a2b2)
func gp03(a, b hwy.Vec[float32]) (p1, p2 hwy.Vec[float32]) {
	p1 = hwy.Mul(sZPPP, hwy.Mul(hwy.Shuffle0123(a, 0, 0, 1, 2), hwy.Broadcast(b, 0)))

	p2 = mulSh(a, 0, 0, 2, 1, b, 1, 2, 1, 3)
	p2 = hwy.FMA(sPMMM, mulSh(a, 1, 1, 0, 2, b, 2, 1, 3, 2), p2)
	p2 = hwy.FMA(sPZZZ, hwy.Mul(hwy.Broadcast(a, 2), hwy.Broadcast(b, 3)), p2)
	p2 = hwy.FMA(sPZZZ, hwy.Mul(hwy.Broadcast(a, 3), hwy.Broadcast(b, 0)), p2)
	return p1, p2
}

// gp10: L1 x L0 -> L0, L3.
//
//	L0: (a0b0+a2b2-a3b1, a0b1+a3b0-a1b2, a0b2+a1b1-a2b0, a0b3)
//	L3: (a1b0+a2b1+a3b2, -a1b3, -a2b3, -a3b3)
func gp10(a, b hwy.Vec[float32]) (p0, p3 hwy.Vec[float32]) {
	p0 = hwy.Mul(hwy.Broadcast(a, 0), b)
	p0 = hwy.FMA(sPPPZ, mulSh(a, 2, 3, 1, 0, b, 2, 0, 1, 0), p0)
	p0 = hwy.FMA(sMMMZ, mulSh(a, 3, 1, 2, 0, b, 1, 2, 0, 0), p0)

	p3 = hwy.Mul(sPMMM, mulSh(a, 1, 1, 2, 3, b, 0, 3, 3, 3))
	p3 = hwy.FMA(sPZZZ, hwy.Mul(hwy.Broadcast(a, 2), hwy.Broadcast(b, 1)), p3)
	p3 = hwy.FMA(sPZZZ, hwy.Mul(hwy.Broadcast(a, 3), hwy.Broadcast(b, 2)), p3)
	return p0, p3
}

// gp11: L1 x L1 -> L1. The even-subalgebra product on scalar plus
// Euclidean bivectors; the familiar quaternion composition.
//
//	L1: (a0b0-a1b1-a2b2-a3b3,
//	     a0b1+a1b0+a2b3-a3b2,
//	     a0b2+a2b0+a3b1-a1b3,
//	     a0b3+a3b0+a1b2-a2b1)
func gp11(a, b hwy.Vec[float32]) hwy.Vec[float32] {
	p1 := hwy.Mul(hwy.Broadcast(a, 0), b)
	p1 = hwy.FMA(sMPPP, mulSh(a, 1, 1, 2, 3, b, 1, 0, 0, 0), p1)
	p1 = hwy.FMA(sMPPP, mulSh(a, 2, 2, 3, 1, b, 2, 3, 1, 2), p1)
	p1 = hwy.Sub(p1, mulSh(a, 3, 3, 1, 2, b, 3, 2, 3, 1))
	return p1
}

// gp12: L1 x L2 -> L2.
//
//	L2: (a0b0+a1b3+a2b2+a3b1,
//	     a0b1+a1b2-a2b3-a3b0,
//	     a0b2-a1b1-a2b0+a3b3,
//	     a0b3-a1b0+a2b1-a3b2)
func gp12(a, b hwy.Vec[float32]) hwy.Vec[float32] {
	p2 := hwy.Mul(hwy.Broadcast(a, 0), b)
	p2 = hwy.FMA(sPPMM, hwy.Mul(hwy.Broadcast(a, 1), hwy.Shuffle0123(b, 3, 2, 1, 0)), p2)
	p2 = hwy.FMA(sPMMP, hwy.Mul(hwy.Broadcast(a, 2), hwy.Shuffle0123(b, 2, 3, 0, 1)), p2)
	p2 = hwy.FMA(sPMPM, hwy.Mul(hwy.Broadcast(a, 3), hwy.Shuffle0123(b, 1, 0, 3, 2)), p2)
	return p2
}

// gp21: L2 x L1 -> L2.
//
//	L2: (a0b0+a1b3+a2b2+a3b1,
//	     a1b0-a0b3-a2b1+a3b2,
//	     a2b0-a0b2+a1b1-a3b3,
//	     a3b0-a0b1-a1b2+a2b3)
func gp21(a, b hwy.Vec[float32]) hwy.Vec[float32] {
	p2 := hwy.Mul(a, hwy.Broadcast(b, 0))
	p2 = hwy.FMA(sPMMM, mulSh(a, 1, 0, 0, 0, b, 3, 3, 2, 1), p2)
	p2 = hwy.FMA(sPMPM, mulSh(a, 2, 2, 1, 1, b, 2, 1, 1, 2), p2)
	p2 = hwy.FMA(sPPMP, mulSh(a, 3, 3, 3, 2, b, 1, 2, 3, 3), p2)
	return p2
}

// gp13: L1 x L3 -> L0, L3.
//
//	L0: (-a1b0, -a2b0, -a3b0, a1b1+a2b2+a3b3)
//	L3: (a0b0, a0b1+a2b3-a3b2, a0b2+a3b1-a1b3, a0b3+a1b2-a2b1)
func gp13(a, b hwy.Vec[float32]) (p0, p3 hwy.Vec[float32]) {
	p0 = hwy.Mul(sMMMP, mulSh(a, 1, 2, 3, 1, b, 0, 0, 0, 1))
	p0 = hwy.FMA(sZZZP, hwy.Mul(hwy.Broadcast(a, 2), hwy.Broadcast(b, 2)), p0)
	p0 = hwy.FMA(sZZZP, hwy.Mul(hwy.Broadcast(a, 3), hwy.Broadcast(b, 3)), p0)

	p3 = hwy.Mul(hwy.Broadcast(a, 0), b)
	p3 = hwy.FMA(sZPPP, mulSh(a, 0, 2, 3, 1, b, 0, 3, 1, 2), p3)
	p3 = hwy.FMA(sZMMM, mulSh(a, 0, 3, 1, 2, b, 0, 2, 3, 1), p3)
	return p0, p3
}

// gp31: L3 x L1 -> L0, L3.
//
//	L0: (-a0b1, -a0b2, -a0b3, a1b1+a2b2+a3b3)
//	L3: (a0b0, a1b0+a2b3-a3b2, a2b0+a3b1-a1b3, a3b0+a1b2-a2b1)
func gp31(a, b hwy.Vec[float32]) (p0, p3 hwy.Vec[float32]) {
	p0 = hwy.Mul(sMMMP, mulSh(a, 0, 0, 0, 1, b, 1, 2, 3, 1))
	p0 = hwy.FMA(sZZZP, hwy.Mul(hwy.Broadcast(a, 2), hwy.Broadcast(b, 2)), p0)
	p0 = hwy.FMA(sZZZP, hwy.Mul(hwy.Broadcast(a, 3), hwy.Broadcast(b, 3)), p0)

	p3 = hwy.Mul(a, hwy.Broadcast(b, 0))
	p3 = hwy.FMA(sZPPP, mulSh(a, 0, 2, 3, 1, b, 0, 3, 1, 2), p3)
	p3 = hwy.FMA(sZMMM, mulSh(a, 0, 3, 1, 2, b, 0, 2, 3, 1), p3)
	return p0, p3
}

// gp20: L2 x L0 -> L0, L3. Only e0 survives in L0.
//
//	L0: (0, 0, 0, a1b2+a2b1+a3b0)
//	L3: (0, -a0b0-a1b1+a2b2, -a0b1+a1b0-a3b2, -a0b2-a2b0+a3b1)
func gp20(a, b hwy.Vec[float32]) (p0, p3 hwy.Vec[float32]) {
	p0 = hwy.Mul(sZZZP, hwy.Mul(hwy.Broadcast(a, 1), hwy.Broadcast(b, 2)))
	p0 = hwy.FMA(sZZZP, hwy.Mul(hwy.Broadcast(a, 2), hwy.Broadcast(b, 1)), p0)
	p0 = hwy.FMA(sZZZP, hwy.Mul(hwy.Broadcast(a, 3), hwy.Broadcast(b, 0)), p0)

	p3 = hwy.Mul(sZMMM, hwy.Mul(hwy.Broadcast(a, 0), hwy.Shuffle0123(b, 0, 0, 1, 2)))
	p3 = hwy.FMA(sZMPM, mulSh(a, 0, 1, 1, 2, b, 0, 1, 0, 0), p3)
	p3 = hwy.FMA(sZPMP, mulSh(a, 0, 2, 3, 3, b, 0, 2, 2, 1), p3)
	return p0, p3
}

// gp23: L2 x L3 -> L0, L3. Everything except the e123 column of b is
// annihilated by the second factor of e0.
//
//	L0: (0, 0, 0, -a0b0)
//	L3: (0, -a3b0, -a2b0, -a1b0)
func gp23(a, b hwy.Vec[float32]) (p0, p3 hwy.Vec[float32]) {
	p0 = hwy.Mul(sZZZM, hwy.Mul(hwy.Broadcast(a, 0), hwy.Broadcast(b, 0)))
	p3 = hwy.Mul(sZMMM, hwy.Mul(hwy.Shuffle0123(a, 0, 3, 2, 1), hwy.Broadcast(b, 0)))
	return p0, p3
}

// gp32: L3 x L2 -> L0, L3. The mirror of gp23.
//
//	L0: (0, 0, 0, a0b0)
//	L3: (0, a0b3, a0b2, a0b1)
func gp32(a, b hwy.Vec[float32]) (p0, p3 hwy.Vec[float32]) {
	p0 = hwy.Mul(sZZZP, hwy.Mul(hwy.Broadcast(a, 0), hwy.Broadcast(b, 0)))
	p3 = hwy.Mul(sZPPP, hwy.Mul(hwy.Broadcast(a, 0), hwy.Shuffle0123(b, 0, 3, 2, 1)))
	return p0, p3
}

// gp30: L3 x L0 -> L1, L2.
//
//	L1: (0, a0b0, a0b1, a0b2)
//	L2: (-a0b3-a1b0-a2b1-a3b2, a2b0-a1b1, a1b2-a3b0, a3b1-a2b2)
func gp30(a, b hwy.Vec[float32]) (p1, p2 hwy.Vec[float32]) {
	p1 = hwy.Mul(sZPPP, hwy.Mul(hwy.Broadcast(a, 0), hwy.Shuffle0123(b, 0, 0, 1, 2)))

	p2 = hwy.Mul(sMPPP, mulSh(a, 0, 2, 1, 3, b, 3, 0, 2, 1))
	p2 = hwy.Sub(p2, mulSh(a, 1, 1, 3, 2, b, 0, 1, 0, 2))
	p2 = hwy.FMA(sMZZZ, hwy.Mul(hwy.Broadcast(a, 2), hwy.Broadcast(b, 1)), p2)
	p2 = hwy.FMA(sMZZZ, hwy.Mul(hwy.Broadcast(a, 3), hwy.Broadcast(b, 2)), p2)
	return p1, p2
}

// gp33: L3 x L3 -> L1, L2.
//
//	L1: (-a0b0, 0, 0, 0)
//	L2: (0, a3b0-a0b3, a2b0-a0b2, a1b0-a0b1)
func gp33(a, b hwy.Vec[float32]) (p1, p2 hwy.Vec[float32]) {
	p1 = hwy.Mul(sMZZZ, hwy.Mul(hwy.Broadcast(a, 0), hwy.Broadcast(b, 0)))

	// Slot 0 of both terms is a0b0, so the difference zeroes it without
	// needing a mask.
	p2 = hwy.Sub(
		hwy.Mul(hwy.Shuffle0123(a, 0, 3, 2, 1), hwy.Broadcast(b, 0)),
		hwy.Mul(hwy.Broadcast(a, 0), hwy.Shuffle0123(b, 0, 3, 2, 1)))
	return p1, p2
}

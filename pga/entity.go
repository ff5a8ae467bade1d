package pga

import (
	"math/bits"

	"github.com/ajroetker/go-highway/hwy"
)

// Lane presence bits. Bit i set means lane Li is stored.
const (
	maskP0 uint8 = 1 << iota
	maskP1
	maskP2
	maskP3
)

// Entity is a partial multivector of P(R_{3,0,1}): a presence mask and the
// packed 4-float lanes whose bits are set, lowest bit first. The zero value
// is the empty entity (mask 0); every accessor on it returns 0.
//
// Entities are not normally built directly. Use the named constructors
// (NewPlane, NewPoint, NewMotor, ...), the generator values (E1, E12, I,
// ...), or the results of Add, Sub, Mul, and Reverse.
type Entity struct {
	mask  uint8
	parts [4][4]float32
}

// Mask reports which lanes are present.
func (e Entity) Mask() uint8 { return e.mask }

// offset returns the packed index of the lane selected by bit.
// The caller must ensure the bit is set in the mask.
func (e *Entity) offset(bit uint8) int {
	return bits.OnesCount8(e.mask & (bit - 1))
}

// Lane returns the stored lane for bit i (0..3) of the presence mask, or a
// zero lane if that bit is clear. Reading individual lanes is intended for
// testing and debugging, not for hot paths.
func (e Entity) Lane(i int) [4]float32 {
	bit := uint8(1) << i
	if e.mask&bit == 0 {
		return [4]float32{}
	}
	return e.parts[e.offset(bit)]
}

// lv loads the lane selected by bit into a 4-lane vector.
// The caller must ensure the bit is set in the mask.
func (e *Entity) lv(bit uint8) hwy.Vec[float32] {
	return hwy.Load(e.parts[e.offset(bit)][:])
}

func ldLane(p [4]float32) hwy.Vec[float32] { return hwy.Load(p[:]) }

func stLane(v hwy.Vec[float32]) (p [4]float32) {
	v.Store(p[:])
	return p
}

func vec4(x0, x1, x2, x3 float32) hwy.Vec[float32] {
	return hwy.Load([]float32{x0, x1, x2, x3})
}

// blade returns the stored value at the given slot of the lane selected by
// bit, or 0 when the lane is absent.
func (e *Entity) blade(bit uint8, slot int) float32 {
	if e.mask&bit == 0 {
		return 0
	}
	return e.parts[e.offset(bit)][slot]
}

// Per-blade accessors. Accessors named for the transpose of a stored blade
// (E21, E13, E32, E10, E20, E30) return the negation of the stored slot.
// All of them return 0 when the containing lane is absent.

func (e Entity) Scalar() float32 { return e.blade(maskP1, 0) }
func (e Entity) E0() float32     { return e.blade(maskP0, 3) }
func (e Entity) E1() float32     { return e.blade(maskP0, 2) }
func (e Entity) E2() float32     { return e.blade(maskP0, 1) }
func (e Entity) E3() float32     { return e.blade(maskP0, 0) }
func (e Entity) E12() float32    { return e.blade(maskP1, 1) }
func (e Entity) E21() float32    { return -e.blade(maskP1, 1) }
func (e Entity) E31() float32    { return e.blade(maskP1, 2) }
func (e Entity) E13() float32    { return -e.blade(maskP1, 2) }
func (e Entity) E23() float32    { return e.blade(maskP1, 3) }
func (e Entity) E32() float32    { return -e.blade(maskP1, 3) }
func (e Entity) E01() float32    { return e.blade(maskP2, 1) }
func (e Entity) E10() float32    { return -e.blade(maskP2, 1) }
func (e Entity) E02() float32    { return e.blade(maskP2, 2) }
func (e Entity) E20() float32    { return -e.blade(maskP2, 2) }
func (e Entity) E03() float32    { return e.blade(maskP2, 3) }
func (e Entity) E30() float32    { return -e.blade(maskP2, 3) }
func (e Entity) E123() float32   { return e.blade(maskP3, 0) }
func (e Entity) E021() float32   { return e.blade(maskP3, 1) }
func (e Entity) E013() float32   { return e.blade(maskP3, 2) }
func (e Entity) E032() float32   { return e.blade(maskP3, 3) }
func (e Entity) E0123() float32  { return e.blade(maskP2, 0) }

// Reverse flips the sign of every grade-2 and grade-3 blade and leaves
// grades 0, 1, and 4 unchanged. In lane terms: slots 1..3 of L1 and L2 are
// negated and all of L3 is negated. The mask is unchanged.
func (e Entity) Reverse() Entity {
	out := e
	if e.mask&maskP1 != 0 {
		i := e.offset(maskP1)
		out.parts[i] = stLane(hwy.Mul(ldLane(e.parts[i]), sPMMM))
	}
	if e.mask&maskP2 != 0 {
		i := e.offset(maskP2)
		out.parts[i] = stLane(hwy.Mul(ldLane(e.parts[i]), sPMMM))
	}
	if e.mask&maskP3 != 0 {
		i := e.offset(maskP3)
		out.parts[i] = stLane(hwy.Neg(ldLane(e.parts[i])))
	}
	return out
}

// Add returns the lane-wise sum. The result mask is the union of the two
// operand masks; lanes present on only one side are copied through.
func (e Entity) Add(o Entity) Entity { return e.addSub(o, false) }

// Sub returns the lane-wise difference. Lanes present only on the right
// are sign flipped.
func (e Entity) Sub(o Entity) Entity { return e.addSub(o, true) }

func (e Entity) addSub(o Entity, sub bool) Entity {
	out := Entity{mask: e.mask | o.mask}
	var oi, li, ri int
	for bit := uint8(1); bit != 1<<4; bit <<= 1 {
		switch {
		case e.mask&bit != 0 && o.mask&bit != 0:
			l, r := ldLane(e.parts[li]), ldLane(o.parts[ri])
			if sub {
				out.parts[oi] = stLane(hwy.Sub(l, r))
			} else {
				out.parts[oi] = stLane(hwy.Add(l, r))
			}
			li++
			ri++
			oi++
		case e.mask&bit != 0:
			out.parts[oi] = e.parts[li]
			li++
			oi++
		case o.mask&bit != 0:
			if sub {
				out.parts[oi] = stLane(hwy.Neg(ldLane(o.parts[ri])))
			} else {
				out.parts[oi] = o.parts[ri]
			}
			ri++
			oi++
		}
	}
	return out
}

// AddAssign adds o into e. When o's mask is a subset of e's the update
// happens lane-wise in place; otherwise e is replaced by the widened sum.
// Either way the result equals e.Add(o) and is also returned.
func (e *Entity) AddAssign(o Entity) Entity { return e.addSubAssign(o, false) }

// SubAssign subtracts o from e, in place when o's mask is a subset of e's.
func (e *Entity) SubAssign(o Entity) Entity { return e.addSubAssign(o, true) }

func (e *Entity) addSubAssign(o Entity, sub bool) Entity {
	if o.mask&^e.mask != 0 {
		*e = e.addSub(o, sub)
		return *e
	}
	ri := 0
	for bit := uint8(1); bit != 1<<4; bit <<= 1 {
		if o.mask&bit == 0 {
			continue
		}
		i := e.offset(bit)
		l, r := ldLane(e.parts[i]), ldLane(o.parts[ri])
		if sub {
			e.parts[i] = stLane(hwy.Sub(l, r))
		} else {
			e.parts[i] = stLane(hwy.Add(l, r))
		}
		ri++
	}
	return *e
}

// Scale returns the entity with every stored lane multiplied by s.
// This is the geometric product with the grade-0 element s.
func (e Entity) Scale(s float32) Entity {
	out := e
	f := vec4(s, s, s, s)
	for i := 0; i < bits.OnesCount8(e.mask); i++ {
		out.parts[i] = stLane(hwy.Mul(ldLane(e.parts[i]), f))
	}
	return out
}

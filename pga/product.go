package pga

import (
	"github.com/ajroetker/go-highway/hwy"
)

// Mul returns the geometric product e * o.
//
// The dispatcher is a branch tree over the two presence masks: only the
// lane pairs present on both sides run their kernel, so the work done is
// proportional to the product of the two lane counts, never the full
// 4x4 grid. Contributions are accumulated per output lane and packed
// into an entity whose mask follows from the input masks alone; a lane
// can be present yet hold only zeros (the identity motor applied to a
// point still reports an L0 lane, for example). Two operands whose lanes
// cannot meet produce the empty entity, on which every accessor is 0.
func (e Entity) Mul(o Entity) Entity {
	m1, m2 := e.mask, o.mask

	acc0 := vec4(0, 0, 0, 0)
	acc1 := vec4(0, 0, 0, 0)
	acc2 := vec4(0, 0, 0, 0)
	acc3 := vec4(0, 0, 0, 0)

	if m1&maskP0 != 0 {
		a := e.lv(maskP0)
		if m2&maskP0 != 0 {
			c1, c2 := gp00(a, o.lv(maskP0))
			acc1 = hwy.Add(acc1, c1)
			acc2 = hwy.Add(acc2, c2)
		}
		if m2&maskP1 != 0 {
			c0, c3 := gp01(a, o.lv(maskP1))
			acc0 = hwy.Add(acc0, c0)
			acc3 = hwy.Add(acc3, c3)
		}
		if m2&maskP2 != 0 {
			c0, c3 := gp02(a, o.lv(maskP2))
			acc0 = hwy.Add(acc0, c0)
			acc3 = hwy.Add(acc3, c3)
		}
		if m2&maskP3 != 0 {
			c1, c2 := gp03(a, o.lv(maskP3))
			acc1 = hwy.Add(acc1, c1)
			acc2 = hwy.Add(acc2, c2)
		}
	}

	if m1&maskP1 != 0 {
		a := e.lv(maskP1)
		if m2&maskP0 != 0 {
			c0, c3 := gp10(a, o.lv(maskP0))
			acc0 = hwy.Add(acc0, c0)
			acc3 = hwy.Add(acc3, c3)
		}
		if m2&maskP1 != 0 {
			acc1 = hwy.Add(acc1, gp11(a, o.lv(maskP1)))
		}
		if m2&maskP2 != 0 {
			acc2 = hwy.Add(acc2, gp12(a, o.lv(maskP2)))
		}
		if m2&maskP3 != 0 {
			c0, c3 := gp13(a, o.lv(maskP3))
			acc0 = hwy.Add(acc0, c0)
			acc3 = hwy.Add(acc3, c3)
		}
	}

	if m1&maskP2 != 0 {
		a := e.lv(maskP2)
		if m2&maskP0 != 0 {
			c0, c3 := gp20(a, o.lv(maskP0))
			acc0 = hwy.Add(acc0, c0)
			acc3 = hwy.Add(acc3, c3)
		}
		if m2&maskP1 != 0 {
			acc2 = hwy.Add(acc2, gp21(a, o.lv(maskP1)))
		}
		// L2 x L2 vanishes identically: no kernel, no branch.
		if m2&maskP3 != 0 {
			c0, c3 := gp23(a, o.lv(maskP3))
			acc0 = hwy.Add(acc0, c0)
			acc3 = hwy.Add(acc3, c3)
		}
	}

	if m1&maskP3 != 0 {
		a := e.lv(maskP3)
		if m2&maskP0 != 0 {
			c1, c2 := gp30(a, o.lv(maskP0))
			acc1 = hwy.Add(acc1, c1)
			acc2 = hwy.Add(acc2, c2)
		}
		if m2&maskP1 != 0 {
			c0, c3 := gp31(a, o.lv(maskP1))
			acc0 = hwy.Add(acc0, c0)
			acc3 = hwy.Add(acc3, c3)
		}
		if m2&maskP2 != 0 {
			c0, c3 := gp32(a, o.lv(maskP2))
			acc0 = hwy.Add(acc0, c0)
			acc3 = hwy.Add(acc3, c3)
		}
		if m2&maskP3 != 0 {
			c1, c2 := gp33(a, o.lv(maskP3))
			acc1 = hwy.Add(acc1, c1)
			acc2 = hwy.Add(acc2, c2)
		}
	}

	p0set, p1set, p2set, p3set := productLanes(m1, m2)

	var out Entity
	idx := 0
	if p0set {
		out.mask |= maskP0
		out.parts[idx] = stLane(acc0)
		idx++
	}
	if p1set {
		out.mask |= maskP1
		out.parts[idx] = stLane(acc1)
		idx++
	}
	if p2set {
		out.mask |= maskP2
		out.parts[idx] = stLane(acc2)
		idx++
	}
	if p3set {
		out.mask |= maskP3
		out.parts[idx] = stLane(acc3)
	}
	return out
}

// productLanes reports which output lanes a product of masks m1 and m2
// carries. A lane is present exactly when some present lane pair has a
// kernel feeding it.
func productLanes(m1, m2 uint8) (p0, p1, p2, p3 bool) {
	// L0 and L3 are fed by the odd-grade cross terms: L0/L3 against
	// L1/L2 on either side.
	p0 = (m1&0b1001 != 0 && m2&0b0110 != 0) || (m1&0b0110 != 0 && m2&0b1001 != 0)
	p3 = p0
	// L1 is fed by gp00, gp03/gp30, gp33, and gp11.
	p1 = (m1&0b1001 != 0 && m2&0b1001 != 0) || (m1&0b0010 != 0 && m2&0b0010 != 0)
	// L2 is fed by gp00, gp03/gp30, gp33, and gp12/gp21.
	p2 = (m1&0b1001 != 0 && m2&0b1001 != 0) ||
		(m1&0b0010 != 0 && m2&0b0100 != 0) ||
		(m1&0b0100 != 0 && m2&0b0010 != 0)
	return p0, p1, p2, p3
}

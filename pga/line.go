package pga

// Line is a Euclidean line: d*e12 + e*e31 + f*e23. Slot 0 of its lane is
// the scalar position and must stay exactly 0.
type Line struct {
	Entity
}

// NewLine returns the Euclidean line d*e12 + e*e31 + f*e23.
func NewLine(d, e, f float32) Line {
	var l Line
	l.mask = maskP1
	l.parts[0] = [4]float32{0, d, e, f}
	return l
}

// IdealLine is a line at infinity: a*e01 + b*e02 + c*e03. Slot 0 of its
// lane is the pseudoscalar position and must stay exactly 0.
type IdealLine struct {
	Entity
}

// NewIdealLine returns the ideal line a*e01 + b*e02 + c*e03.
func NewIdealLine(a, b, c float32) IdealLine {
	var l IdealLine
	l.mask = maskP2
	l.parts[0] = [4]float32{0, a, b, c}
	return l
}

// Bivector is a general bivector, the sum of a Euclidean and an ideal
// line: a*e01 + b*e02 + c*e03 + d*e12 + e*e31 + f*e23. Both stored lanes
// keep their slot 0 at exactly 0.
type Bivector struct {
	Entity
}

// NewBivector returns the bivector with ideal part (a, b, c) and
// Euclidean part (d, e, f).
func NewBivector(a, b, c, d, e, f float32) Bivector {
	var v Bivector
	v.mask = maskP1 | maskP2
	v.parts[0] = [4]float32{0, d, e, f}
	v.parts[1] = [4]float32{0, a, b, c}
	return v
}

// BivectorFromEntity reinterprets an even entity (mask L1|L2) as a
// Bivector, copying whichever of the two lanes are present.
func BivectorFromEntity(e Entity) Bivector {
	var v Bivector
	v.mask = maskP1 | maskP2
	if e.mask&maskP1 != 0 {
		v.parts[0] = e.parts[e.offset(maskP1)]
	}
	if e.mask&maskP2 != 0 {
		v.parts[1] = e.parts[e.offset(maskP2)]
	}
	return v
}

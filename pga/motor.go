package pga

import (
	"github.com/chewxy/math32"
)

// Motor is an element of the even subalgebra representing a rigid motion:
// a rotation, a translation, or any screw composition of the two. Motor
// composition is the geometric product; a motor acts on a point by the
// sandwich m * p * ~m.
type Motor struct {
	Entity
}

// NewMotor returns the motor with L1 = (a, b, c, d) and L2 = (e, f, g, h),
// i.e. a + b*e12 + c*e31 + d*e23 + e*e0123 + f*e01 + g*e02 + h*e03.
func NewMotor(a, b, c, d, e, f, g, h float32) Motor {
	var m Motor
	m.mask = maskP1 | maskP2
	m.parts[0] = [4]float32{a, b, c, d}
	m.parts[1] = [4]float32{e, f, g, h}
	return m
}

// MotorFromEntity reinterprets an even entity (mask L1|L2) as a Motor,
// copying whichever of the two lanes are present.
func MotorFromEntity(e Entity) Motor {
	var m Motor
	m.mask = maskP1 | maskP2
	if e.mask&maskP1 != 0 {
		m.parts[0] = e.parts[e.offset(maskP1)]
	}
	if e.mask&maskP2 != 0 {
		m.parts[1] = e.parts[e.offset(maskP2)]
	}
	return m
}

// NewRotor returns the unit motor rotating by angle radians about the
// axis (x, y, z) through the origin, following the right-hand rule. The
// axis need not be normalized but must be nonzero.
func NewRotor(angle, x, y, z float32) Motor {
	n := math32.Sqrt(x*x + y*y + z*z)
	s := -math32.Sin(angle/2) / n
	var m Motor
	m.mask = maskP1 | maskP2
	m.parts[0] = [4]float32{math32.Cos(angle / 2), s * z, s * y, s * x}
	return m
}

// NewTranslator returns the unit motor translating by distance d along
// the direction (x, y, z). The direction need not be normalized but must
// be nonzero.
func NewTranslator(d, x, y, z float32) Motor {
	n := math32.Sqrt(x*x + y*y + z*z)
	h := -d / (2 * n)
	var m Motor
	m.mask = maskP1 | maskP2
	m.parts[0] = [4]float32{1, 0, 0, 0}
	m.parts[1] = [4]float32{0, h * x, h * y, h * z}
	return m
}

// Normalize scales the motor so its rotor part has unit norm. For a
// motor satisfying the Study condition (anything composed from rotors
// and translators) this yields m * ~m = 1.
func (m *Motor) Normalize() {
	p1 := m.parts[0]
	inv := 1 / math32.Sqrt(p1[0]*p1[0]+p1[1]*p1[1]+p1[2]*p1[2]+p1[3]*p1[3])
	for i := range m.parts[0] {
		m.parts[0][i] *= inv
		m.parts[1][i] *= inv
	}
}

// Apply moves a point through the motor sandwich m * p * ~m. The L0
// residual of the sandwich is identically zero and is dropped.
func (m Motor) Apply(p Point) Point {
	return PointFromEntity(m.Entity.Mul(p.Entity).Mul(m.Entity.Reverse()))
}

// ApplyDirection moves a direction through the motor sandwich. Only the
// rotational part of the motor affects it.
func (m Motor) ApplyDirection(d Direction) Direction {
	s := m.Entity.Mul(d.Entity).Mul(m.Entity.Reverse())
	var out Direction
	out.mask = maskP3
	if s.mask&maskP3 != 0 {
		out.parts[0] = s.parts[s.offset(maskP3)]
	}
	out.parts[0][0] = 0
	return out
}

// Matrix returns the 3x4 affine transform equivalent to the sandwich of
// a unit motor: rows are output coordinates, columns 0..2 the images of
// the basis directions, column 3 the translation. The columns are
// obtained by sandwiching the basis directions and the origin through
// the motor itself, so Matrix agrees with Apply by construction.
func (m Motor) Matrix() [3][4]float32 {
	r := m.Entity.Reverse()
	cols := [4]Entity{
		m.Entity.Mul(NewDirection(1, 0, 0).Entity).Mul(r),
		m.Entity.Mul(NewDirection(0, 1, 0).Entity).Mul(r),
		m.Entity.Mul(NewDirection(0, 0, 1).Entity).Mul(r),
		m.Entity.Mul(NewPoint(0, 0, 0).Entity).Mul(r),
	}
	var out [3][4]float32
	for j := range cols {
		out[0][j] = cols[j].E032()
		out[1][j] = cols[j].E013()
		out[2][j] = cols[j].E021()
	}
	return out
}

// TransformBatch applies the unit motor to a structure-of-arrays point
// set with weight 1, writing transformed coordinates to dst slices. Src
// and dst may alias. The motor is lowered to its affine matrix once and
// the points stream through the SIMD batch kernel.
func (m Motor) TransformBatch(srcX, srcY, srcZ, dstX, dstY, dstZ []float32) {
	t := m.Matrix()
	BaseAffineTransformBatch(
		t[0][0], t[0][1], t[0][2], t[0][3],
		t[1][0], t[1][1], t[1][2], t[1][3],
		t[2][0], t[2][1], t[2][2], t[2][3],
		srcX, srcY, srcZ,
		dstX, dstY, dstZ,
	)
}

package pga

import (
	"github.com/ajroetker/go-highway/hwy"
)

// Point is a projective point: x*e032 + y*e013 + z*e021 + e123. The
// homogeneous weight lives in slot 0 of L3 and is 1 for points built
// with NewPoint.
type Point struct {
	Entity
}

// NewPoint returns the point (x, y, z) with homogeneous weight 1.
func NewPoint(x, y, z float32) Point {
	var p Point
	p.mask = maskP3
	p.parts[0] = [4]float32{1, z, y, x}
	return p
}

// PointFromEntity reinterprets a trivector entity as a Point, keeping its
// L3 lane and dropping anything else (a motor sandwich leaves an exact
// zero L0 residual, for example).
func PointFromEntity(e Entity) Point {
	var p Point
	p.mask = maskP3
	if e.mask&maskP3 != 0 {
		p.parts[0] = e.parts[e.offset(maskP3)]
	}
	return p
}

func (p Point) X() float32 { return p.parts[0][3] }
func (p Point) Y() float32 { return p.parts[0][2] }
func (p Point) Z() float32 { return p.parts[0][1] }

// Normalize divides the point by its homogeneous weight, bringing it to
// weight 1. The result is unspecified when the weight is 0.
func (p *Point) Normalize() {
	v := ldLane(p.parts[0])
	p.parts[0] = stLane(hwy.Div(v, hwy.Broadcast(v, 0)))
}

// Direction is an ideal point, a point at infinity: x*e032 + y*e013 +
// z*e021 with homogeneous weight exactly 0. Directions are unaffected by
// translation.
type Direction struct {
	Entity
}

// NewDirection returns the direction (x, y, z).
func NewDirection(x, y, z float32) Direction {
	var d Direction
	d.mask = maskP3
	d.parts[0] = [4]float32{0, z, y, x}
	return d
}

// DirectionFromEntity reinterprets a trivector entity as a Direction.
// Under the pgadebug build tag it panics when the entity's weight is not
// negligibly small; otherwise a non-ideal weight is carried through
// silently.
func DirectionFromEntity(e Entity) Direction {
	assertIdeal(e.E123())
	var d Direction
	d.mask = maskP3
	if e.mask&maskP3 != 0 {
		d.parts[0] = e.parts[e.offset(maskP3)]
	}
	return d
}

func (d Direction) X() float32 { return d.parts[0][3] }
func (d Direction) Y() float32 { return d.parts[0][2] }
func (d Direction) Z() float32 { return d.parts[0][1] }

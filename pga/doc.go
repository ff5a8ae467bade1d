// Package pga implements the projective geometric algebra P(R_{3,0,1})
// for 3D Euclidean geometry: planes, lines, points, directions, and the
// motors that move them.
//
// A general multivector of the algebra has 16 components. Most entities
// touch only a few of them, so the basis is partitioned into four lanes
// of four packed single-precision floats each:
//
//	L0: (e3, e2, e1, e0)
//	L1: (1, e12, e31, e23)
//	L2: (e0123, e01, e02, e03)
//	L3: (e123, e021, e013, e032)
//
// The grouping keeps blades of similar grade, and a similar relationship
// to the degenerate generator e0, together in one lane. Where a lane is
// non-uniform (the scalar among the Euclidean bivectors, the pseudoscalar
// among the ideal ones) the exception sits in the first slot, so a single
// shuffle or sign pattern over slots 1..3 applies to several lanes at
// once; e0 sits in the last slot of L0 for the same reason.
//
// An Entity stores a 4-bit presence mask and only the lanes whose bit is
// set. The named types (Plane, Line, IdealLine, Bivector, Motor, Point,
// Direction, Multivector) fix a mask and provide constructors; all
// arithmetic is shared through the embedded Entity. The geometric
// product dispatches on the two masks and runs only the lane-pair
// kernels that can contribute, so the cost of a product scales with the
// number of lanes actually present on each side.
//
// Lane arithmetic is expressed with the portable SIMD operations of
// github.com/ajroetker/go-highway/hwy; batch variants over
// structure-of-arrays point sets live in the *_hwy.go files.
package pga

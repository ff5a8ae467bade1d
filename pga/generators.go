package pga

// Basis blade generators: one prebuilt unit entity per blade, each with
// the minimal mask that can hold it. They compose through the ordinary
// operations, so arbitrary elements can be written as expressions:
//
//	E1.Mul(E2)                    // the z axis, e12
//	E0.Scale(d).Add(E1.Scale(a))  // part of a plane
//
// I is the pseudoscalar e0123; it squares to 0.
var (
	E0 = Entity{mask: maskP0, parts: [4][4]float32{{0, 0, 0, 1}}}
	E1 = Entity{mask: maskP0, parts: [4][4]float32{{0, 0, 1, 0}}}
	E2 = Entity{mask: maskP0, parts: [4][4]float32{{0, 1, 0, 0}}}
	E3 = Entity{mask: maskP0, parts: [4][4]float32{{1, 0, 0, 0}}}

	E12 = Entity{mask: maskP1, parts: [4][4]float32{{0, 1, 0, 0}}}
	E31 = Entity{mask: maskP1, parts: [4][4]float32{{0, 0, 1, 0}}}
	E23 = Entity{mask: maskP1, parts: [4][4]float32{{0, 0, 0, 1}}}

	E01 = Entity{mask: maskP2, parts: [4][4]float32{{0, 1, 0, 0}}}
	E02 = Entity{mask: maskP2, parts: [4][4]float32{{0, 0, 1, 0}}}
	E03 = Entity{mask: maskP2, parts: [4][4]float32{{0, 0, 0, 1}}}

	E123 = Entity{mask: maskP3, parts: [4][4]float32{{1, 0, 0, 0}}}
	E021 = Entity{mask: maskP3, parts: [4][4]float32{{0, 1, 0, 0}}}
	E013 = Entity{mask: maskP3, parts: [4][4]float32{{0, 0, 1, 0}}}
	E032 = Entity{mask: maskP3, parts: [4][4]float32{{0, 0, 0, 1}}}

	I = Entity{mask: maskP2, parts: [4][4]float32{{1, 0, 0, 0}}}
)

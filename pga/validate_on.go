//go:build pgadebug

package pga

import "github.com/chewxy/math32"

// assertIdeal panics when a trivector required to be ideal carries a
// non-negligible homogeneous weight. Compiled in only under the pgadebug
// build tag.
func assertIdeal(w float32) {
	if math32.Abs(w) >= 1e-7 {
		panic("pga: cannot build a direction from a non-ideal point")
	}
}

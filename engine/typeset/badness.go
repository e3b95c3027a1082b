package typeset

import (
	"math"
)

// Overflow of a filled line is resolved by the cheapest of three strategies.
// A small bias keeps widening preferred over tightening and tightening over
// hyphenation when scores tie, and a line that widening or tightening can fix
// tolerably never gets hyphenated at all.
const (
	tightenBias      = 0.01
	hyphenBias       = 0.02
	tolerableBadness = 12.5
)

var infiniteBadness = math.Inf(1)

// widenBadness scores stretching a short line by delta pixels over the given
// amount of stretchable glue. Cubic: small corrections are nearly free, large
// ones explode.
func widenBadness(delta, glue int) float64 {
	if delta <= 0 {
		return 0
	}
	d := float64(delta)
	return 100 * math.Pow(d/(float64(glue)+d), 3)
}

// tightenBadness scores shrinking an overfull line by delta pixels. Shrinking
// beyond the available glue is impossible.
func tightenBadness(delta, glue int) float64 {
	if delta <= 0 {
		return 0
	}
	if delta >= glue {
		return infiniteBadness
	}
	d := float64(delta)
	return 100 * math.Pow(d/(float64(glue)-d), 3)
}

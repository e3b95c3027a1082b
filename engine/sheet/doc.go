/*
Package sheet holds the sprite-sheet registry of a bitmap font.

A font is distributed over an ordered list of sprite sheets, each covering
one or more (possibly discontiguous) Unicode code ranges. Sheets come in two
flavours: variable-width sheets carry a per-glyph metadata tag column,
fixed-width sheets assign one constant advance width to every cell.

Besides the registry this package collects the script-specific constants of
the font: Hangul jamo classification sets and row-selection rules, the
kerning-rule bit permutation, control codepoints and spacing characters.

_________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>

*/
package sheet

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pxtype.sheet'.
func tracer() tracing.Trace {
	return tracing.Select("pxtype.sheet")
}

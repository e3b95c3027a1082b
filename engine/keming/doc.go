/*
Package keming derives a kerning-pair table from glyph shape masks.

Glyphs flagged as kernable carry a shape-classification bitmask in their
metadata. A small table of hand-authored rules, doubled by automatic left-right
mirroring, is matched against every ordered pair of kernable glyphs; the first
matching rule decides the contraction. Kerning in this engine only ever
tightens.

_________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>

*/
package keming

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pxtype.keming'.
func tracer() tracing.Trace {
	return tracing.Select("pxtype.keming")
}

/*
Package hangul composes precomposed Hangul syllable glyphs from jamo pieces.

The johab sprite sheet stores multiple row variants of every jamo; which
variant an initial, medial or final consonant uses depends on the shape class
of the syllable's vowel and on the presence of a final consonant. Composition
is a 1-bit mask union of the three selected cells.

_________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>

*/
package hangul

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pxtype.hangul'.
func tracer() tracing.Trace {
	return tracing.Select("pxtype.hangul")
}

/*
Package typeset breaks codepoint sequences into laid-out lines.

The typesetter tokenizes input into boxes (non-breakable runs of visible
glyphs) and glues (stretchable inter-word spacing), fills lines greedily up to
a paper width, and resolves overflow by scoring three candidate strategies
with a badness function: widen the short line, tighten the long one, or
hyphenate the overflowing box. Justified lines distribute the width delta
over inter-word gaps by priority, ragged and centred lines shift as a whole.

All typesetting state is method-local; a Typesetter over an immutable glyph
table may be used by concurrent callers.

_________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>

*/
package typeset

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pxtype.typeset'.
func tracer() tracing.Trace {
	return tracing.Select("pxtype.typeset")
}

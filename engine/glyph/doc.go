/*
Package glyph decodes per-glyph metadata from bitmap-font sprite sheets.

Variable-width sheets carry a tag column at the last pixel column of every
cell. Each metadata bit is stored as "alpha channel nonzero at a given row",
multi-byte fields are stored as full 32-bit RGBA words. The decoder turns the
tag column into a Metrics record per codepoint and clips the glyph bitmap to
its declared width.

The decoded tables are published as an immutable snapshot (Table) which is
safe for concurrent readers.

_________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>

*/
package glyph

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pxtype.glyph'.
func tracer() tracing.Trace {
	return tracing.Select("pxtype.glyph")
}

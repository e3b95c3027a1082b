package sheet

// KemingBitMask maps a kerning-rule template string index to the bit it
// addresses in a glyph's shape mask. Templates are written in a human-legible
// column order which does not match the underlying bit layout.
var KemingBitMask = [10]uint32{
	1 << 7, 1 << 6, 1 << 5, 1 << 4, 1 << 3, 1 << 2, 1 << 1, 1 << 0, 1 << 15, 1 << 14,
}

// LowercaseRs are the glyphs treated as a lowercase r for the flat r+dot
// kerning pair: r itself plus its accented and phonetic variants.
var LowercaseRs = []CodePoint{
	0x72, 0x155, 0x157, 0x159, 0x211, 0x213, 0x27C, 0x1E59, 0x1E58, 0x1E5F,
}

// Dots are the glyphs paired with a lowercase r at a flat offset.
var Dots = []CodePoint{0x2C, 0x2E}

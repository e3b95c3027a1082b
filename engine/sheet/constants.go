package sheet

// Font metrics, in pixels.
const (
	CellH            = 20
	UnihanHeight     = 16
	HangulBaseWidth  = 13
	UnihanWidth      = 16
	LatinWideWidth   = 9 // fallback advance for codepoints without metrics
	VarInitWidth     = 15
	WideVarInitWidth = 31
	HGapVar          = 1
	CustomSymSize    = 20

	LineHeight = 24
)

// Vertical shifts for diacritic stacking. A stack-up diacritic over a
// low-height glyph moves down by the larger amount, an overlay diacritic by
// the smaller one.
const (
	DiacriticsHeight      = 3
	StackUpLowercaseShift = 4
	OverlayLowercaseShift = 2
)

// Unicode spacing characters.
const (
	NBSP         CodePoint = 0xA0
	SHY          CodePoint = 0xAD
	NQSP         CodePoint = 0x2000
	MQSP         CodePoint = 0x2001
	ENSP         CodePoint = 0x2002
	EMSP         CodePoint = 0x2003
	ThreePerEmSP CodePoint = 0x2004
	QuarterEmSP  CodePoint = 0x2005
	SixPerEmSP   CodePoint = 0x2006
	FSP          CodePoint = 0x2007
	PSP          CodePoint = 0x2008
	THSP         CodePoint = 0x2009
	HSP          CodePoint = 0x200A
	ZWSP         CodePoint = 0x200B
	ZWNJ         CodePoint = 0x200C
	ZWJ          CodePoint = 0x200D
	IDSP         CodePoint = 0x3000
	OBJ          CodePoint = 0xFFFC
)

// Internal glue blocks. A movable-glue codepoint encodes a spacing magnitude
// of 1–16 pixels directly; larger magnitudes chain full-glue tokens.
const (
	FixedBlock    CodePoint = 0xFFFD0
	MovableBlockM CodePoint = 0xFFFE0 // negative glue, 1..16 px
	MovableBlockP CodePoint = 0xFFFF0 // positive glue, 1..16 px
)

// Charset-override control codepoints. They switch which sheet variant
// subsequent codepoints of the override domain resolve to.
const (
	CharsetOverrideDefault   CodePoint = 0xFFFC0
	CharsetOverrideBulgarian CodePoint = 0xFFFC1
	CharsetOverrideSerbian   CodePoint = 0xFFFC2
	CharsetOverrideCodestyle CodePoint = 0xFFFC3
)

// Colour codes live in a reserved block above the Unicode range. The low 16
// bits of a colour codepoint encode an RGBA4444 value; ColourClear resets any
// active colour.
const (
	ColourClear      CodePoint = 0x100000
	ColourBlockStart CodePoint = 0x100000
	ColourBlockEnd   CodePoint = 0x110000 // exclusive
)

// IsColourCode reports whether cp selects (or clears) a text colour.
func IsColourCode(cp CodePoint) bool {
	return ColourBlockStart <= cp && cp < ColourBlockEnd
}

// IsCharsetOverride reports whether cp switches the active charset variant.
func IsCharsetOverride(cp CodePoint) bool {
	return CharsetOverrideDefault <= cp && cp <= CharsetOverrideCodestyle
}

// Alternate-charset codepoint translation, indexed by override ordinal
// (default, Bulgarian, Serbian, codestyle). Codepoints inside the domain are
// shifted by the offset onto the variant's PUA sheet.
var altCharsetOffsets = []int32{
	0,
	0xF0000 - 0x400, // Bulgarian
	0xF0060 - 0x400, // Serbian
	0xF0520 - 0x20,  // Codestyle
}

var altCharsetDomains = []Range{
	{0, 0x110000},
	{0x400, 0x460},
	{0x400, 0x460},
	{0x20, 0x80},
}

// TranslateCharset maps cp through the charset override identified by its
// control codepoint. Codepoints outside the override's domain pass through.
func TranslateCharset(override CodePoint, cp CodePoint) CodePoint {
	if !IsCharsetOverride(override) {
		return cp
	}
	ord := int(override - CharsetOverrideDefault)
	if !altCharsetDomains[ord].Contains(cp) {
		return cp
	}
	return CodePoint(int32(cp) + altCharsetOffsets[ord])
}

// ReplacementGlyph is the private codepoint whose bitmap serves as the
// replacement character. Its advance width is remapped to 15.
const ReplacementGlyph CodePoint = 0x7F

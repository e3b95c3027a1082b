package sheet

import (
	"strings"
)

// CodePoint is a Unicode scalar value or an internal codepoint. The internal
// range extends above U+10FFFF for glue markers and colour codes, so plain
// rune is not sufficient.
type CodePoint uint32

// Range is a half-open codepoint interval [Lo, Hi).
type Range struct {
	Lo, Hi CodePoint
}

// Contains reports whether cp lies within the range.
func (r Range) Contains(cp CodePoint) bool {
	return r.Lo <= cp && cp < r.Hi
}

// Count returns the number of codepoints in the range.
func (r Range) Count() int {
	return int(r.Hi - r.Lo)
}

// Sheet describes one sprite sheet: its backing file, the code ranges it
// serves, and its cell geometry. Geometry is derived from the sheet kind,
// which in turn derives from the filename convention.
type Sheet struct {
	Index    int
	Filename string
	Ranges   []Range
}

// IsVariable reports whether the sheet carries per-glyph tag metadata.
func (s Sheet) IsVariable() bool {
	return strings.Contains(s.Filename, "_variable.")
}

// IsXYSwapped reports whether cell ordinals walk columns before rows.
func (s Sheet) IsXYSwapped() bool {
	return strings.Contains(strings.ToLower(s.Filename), "xyswap")
}

// IsExtraWide reports whether cells are twice the usual width.
func (s Sheet) IsExtraWide() bool {
	return strings.Contains(strings.ToLower(s.Filename), "extrawide")
}

// CellWidth returns the cell pitch in pixels, including the inter-cell gap
// for variable sheets. The tag column of a variable cell sits at the last
// pixel column of the pitch.
func (s Sheet) CellWidth() int {
	if s.IsExtraWide() {
		return WideVarInitWidth + HGapVar
	}
	switch s.Index {
	case SheetUnihan:
		return UnihanWidth
	case SheetHangul:
		return HangulBaseWidth
	case SheetCustomSym:
		return CustomSymSize
	case SheetRunic:
		return LatinWideWidth
	}
	return VarInitWidth + HGapVar
}

// CellHeight returns the cell height in pixels.
func (s Sheet) CellHeight() int {
	switch s.Index {
	case SheetUnihan:
		return UnihanHeight
	case SheetCustomSym:
		return CustomSymSize
	}
	return CellH
}

// Columns returns the number of cells per sheet row.
func (s Sheet) Columns() int {
	if s.Index == SheetUnihan {
		return 256
	}
	return 16
}

// FixedWidth returns the constant advance width for a non-variable sheet.
func (s Sheet) FixedWidth() int {
	switch s.Index {
	case SheetCustomSym:
		return CustomSymSize
	case SheetRunic:
		return LatinWideWidth
	case SheetUnihan:
		return UnihanWidth
	case SheetHangul:
		return HangulBaseWidth
	}
	return s.CellWidth()
}

// CodePoints calls f for every codepoint of the sheet, in registry order,
// together with its cell ordinal. Ordinals concatenate the sheet's ranges.
func (s Sheet) CodePoints(f func(ordinal int, cp CodePoint)) {
	ordinal := 0
	for _, r := range s.Ranges {
		for cp := r.Lo; cp < r.Hi; cp++ {
			f(ordinal, cp)
			ordinal++
		}
	}
}

// Contains reports whether the sheet serves cp.
func (s Sheet) Contains(cp CodePoint) bool {
	for _, r := range s.Ranges {
		if r.Contains(cp) {
			return true
		}
	}
	return false
}

// CellOrigin computes the top-left pixel of the cell with the given ordinal,
// honouring the XY-swap flag.
func (s Sheet) CellOrigin(ordinal int) (x, y int) {
	cols := s.Columns()
	if s.IsXYSwapped() {
		return (ordinal / cols) * s.CellWidth(), (ordinal % cols) * s.CellHeight()
	}
	return (ordinal % cols) * s.CellWidth(), (ordinal / cols) * s.CellHeight()
}

// --- Registry --------------------------------------------------------------

// Registry returns the ordered sheet table of the font. The slice is freshly
// allocated; callers may re-slice but should treat sheets as read-only.
func Registry() []Sheet {
	sheets := make([]Sheet, len(fileList))
	for i, filename := range fileList {
		sheets[i] = Sheet{
			Index:    i,
			Filename: filename,
			Ranges:   codeRanges[i],
		}
	}
	return sheets
}

// ByCodePoint finds the first sheet in registry order serving cp.
func ByCodePoint(cp CodePoint) (Sheet, bool) {
	for i, ranges := range codeRanges {
		for _, r := range ranges {
			if r.Contains(cp) {
				return Sheet{Index: i, Filename: fileList[i], Ranges: ranges}, true
			}
		}
	}
	tracer().Debugf("no sheet serves U+%05X", uint32(cp))
	return Sheet{}, false
}

// Sheet indices into the registry.
const (
	SheetASCIIVarW = iota
	SheetHangul
	SheetExtAVarW
	SheetExtBVarW
	SheetKana
	SheetCJKPunct
	SheetUnihan
	SheetCyrillicVarW
	SheetHalfwidthFullwidthVarW
	SheetUniPunctVarW
	SheetGreekVarW
	SheetThaiVarW
	SheetHayerenVarW
	SheetKartuliVarW
	SheetIPAVarW
	SheetRunic
	SheetLatinExtAddVarW
	SheetCustomSym
	SheetBulgarianVarW
	SheetSerbianVarW
	SheetTsalagiVarW
	SheetPhoneticExtVarW
	SheetDevanagariVarW
	SheetKartuliCapsVarW
	SheetDiacriticalMarksVarW
	SheetGreekPolyVarW
	SheetExtCVarW
	SheetExtDVarW
	SheetCurrenciesVarW
	SheetInternalVarW
	SheetLetterlikeMathsVarW
	SheetEnclosedAlphnumSuplVarW
	SheetTamilVarW
	SheetBengaliVarW
	SheetBrailleVarW
	SheetSundaneseVarW
	SheetDevanagari2InternalVarW
	SheetCodestyleASCIIVarW
	SheetAlphabeticPresentationForms
	SheetHentaiganaVarW
)

var fileList = []string{
	"ascii_variable.tga",
	"hangul_johab.tga",
	"latinExtA_variable.tga",
	"latinExtB_variable.tga",
	"kana_variable.tga",
	"cjkpunct_variable.tga",
	"wenquanyi.tga",
	"cyrilic_variable.tga",
	"halfwidth_fullwidth_variable.tga",
	"unipunct_variable.tga",
	"greek_variable.tga",
	"thai_variable.tga",
	"hayeren_variable.tga",
	"kartuli_variable.tga",
	"ipa_ext_variable.tga",
	"futhark.tga",
	"latinExt_additional_variable.tga",
	"puae000-e0ff.tga",
	"cyrilic_bulgarian_variable.tga",
	"cyrilic_serbian_variable.tga",
	"tsalagi_variable.tga",
	"phonetic_extensions_variable.tga",
	"devanagari_variable.tga",
	"kartuli_allcaps_variable.tga",
	"diacritical_marks_variable.tga",
	"greek_polytonic_xyswap_variable.tga",
	"latinExtC_variable.tga",
	"latinExtD_variable.tga",
	"currencies_variable.tga",
	"internal_variable.tga",
	"letterlike_symbols_variable.tga",
	"enclosed_alphanumeric_supplement_variable.tga",
	"tamil_extrawide_variable.tga",
	"bengali_variable.tga",
	"braille_variable.tga",
	"sundanese_variable.tga",
	"devanagari_internal_extrawide_variable.tga",
	"pua_codestyle_ascii_variable.tga",
	"alphabetic_presentation_forms_extrawide_variable.tga",
	"hentaigana_variable.tga",
}

var codeRanges = [][]Range{
	{{0x00, 0x100}},                                     // ASCII
	{{0x1100, 0x1200}, {0xA960, 0xA980}, {0xD7B0, 0xD800}}, // Hangul Jamo
	{{0x100, 0x180}},                                    // Latin Ext A
	{{0x180, 0x250}},                                    // Latin Ext B
	{{0x3040, 0x3100}, {0x31F0, 0x3200}},                // Kana
	{{0x3000, 0x3040}},                                  // CJK Punct
	{{0x3400, 0xA000}},                                  // Unihan
	{{0x400, 0x530}},                                    // Cyrillic
	{{0xFF00, 0x10000}},                                 // Halfwidth/Fullwidth
	{{0x2000, 0x20A0}},                                  // Uni Punct
	{{0x370, 0x3CF}},                                    // Greek
	{{0xE00, 0xE60}},                                    // Thai
	{{0x530, 0x590}},                                    // Armenian
	{{0x10D0, 0x1100}},                                  // Georgian
	{{0x250, 0x300}},                                    // IPA
	{{0x16A0, 0x1700}},                                  // Runic
	{{0x1E00, 0x1F00}},                                  // Latin Ext Additional
	{{0xE000, 0xE100}},                                  // Custom Sym (PUA)
	{{0xF0000, 0xF0060}},                                // Bulgarian
	{{0xF0060, 0xF00C0}},                                // Serbian
	{{0x13A0, 0x13F6}},                                  // Cherokee
	{{0x1D00, 0x1DC0}},                                  // Phonetic Ext
	{{0x900, 0x980}, {0xF0100, 0xF0500}},                // Devanagari
	{{0x1C90, 0x1CC0}},                                  // Georgian Caps
	{{0x300, 0x370}},                                    // Diacritical Marks
	{{0x1F00, 0x2000}},                                  // Greek Polytonic
	{{0x2C60, 0x2C80}},                                  // Latin Ext C
	{{0xA720, 0xA800}},                                  // Latin Ext D
	{{0x20A0, 0x20D0}},                                  // Currencies
	{{0xFFE00, 0xFFFA0}},                                // Internal
	{{0x2100, 0x2150}},                                  // Letterlike
	{{0x1F100, 0x1F200}},                                // Enclosed Alphanum Supl
	{{0x0B80, 0x0C00}, {0xF00C0, 0xF0100}},              // Tamil
	{{0x980, 0xA00}},                                    // Bengali
	{{0x2800, 0x2900}},                                  // Braille
	{{0x1B80, 0x1BC0}, {0x1CC0, 0x1CD0}, {0xF0500, 0xF0510}}, // Sundanese
	{{0xF0110, 0xF0130}},                                // Devanagari2 Internal
	{{0xF0520, 0xF0580}},                                // Codestyle ASCII
	{{0xFB00, 0xFB18}},                                  // Alphabetic Presentation
	{{0x1B000, 0x1B170}},                                // Hentaigana
}

// IndexX returns the cell column ordinal of cp within its sheet row.
func IndexX(sheetIndex int, cp CodePoint) int {
	if sheetIndex == SheetUnihan {
		return int(cp-0x3400) % 256
	}
	return int(cp) % 16
}

// IndexY returns the cell row ordinal of cp within the given sheet.
func IndexY(sheetIndex int, cp CodePoint) int {
	c := int(cp)
	switch sheetIndex {
	case SheetASCIIVarW:
		return c / 16
	case SheetUnihan:
		return (c - 0x3400) / 256
	case SheetExtAVarW:
		return (c - 0x100) / 16
	case SheetExtBVarW:
		return (c - 0x180) / 16
	case SheetKana:
		if 0x31F0 <= c && c <= 0x31FF {
			return 12
		}
		return (c - 0x3040) / 16
	case SheetCJKPunct:
		return (c - 0x3000) / 16
	case SheetCyrillicVarW:
		return (c - 0x400) / 16
	case SheetHalfwidthFullwidthVarW:
		return (c - 0xFF00) / 16
	case SheetUniPunctVarW:
		return (c - 0x2000) / 16
	case SheetGreekVarW:
		return (c - 0x370) / 16
	case SheetThaiVarW:
		return (c - 0xE00) / 16
	case SheetCustomSym:
		return (c - 0xE000) / 16
	case SheetHayerenVarW:
		return (c - 0x530) / 16
	case SheetKartuliVarW:
		return (c - 0x10D0) / 16
	case SheetIPAVarW:
		return (c - 0x250) / 16
	case SheetRunic:
		return (c - 0x16A0) / 16
	case SheetLatinExtAddVarW:
		return (c - 0x1E00) / 16
	case SheetBulgarianVarW:
		return (c - 0xF0000) / 16
	case SheetSerbianVarW:
		return (c - 0xF0060) / 16
	case SheetTsalagiVarW:
		return (c - 0x13A0) / 16
	case SheetPhoneticExtVarW:
		return (c - 0x1D00) / 16
	case SheetDevanagariVarW:
		if c >= 0xF0000 {
			return (c - 0xF0080) / 16
		}
		return (c - 0x900) / 16
	case SheetKartuliCapsVarW:
		return (c - 0x1C90) / 16
	case SheetDiacriticalMarksVarW:
		return (c - 0x300) / 16
	case SheetGreekPolyVarW:
		return (c - 0x1F00) / 16
	case SheetExtCVarW:
		return (c - 0x2C60) / 16
	case SheetExtDVarW:
		return (c - 0xA720) / 16
	case SheetCurrenciesVarW:
		return (c - 0x20A0) / 16
	case SheetInternalVarW:
		return (c - 0xFFE00) / 16
	case SheetLetterlikeMathsVarW:
		return (c - 0x2100) / 16
	case SheetEnclosedAlphnumSuplVarW:
		return (c - 0x1F100) / 16
	case SheetTamilVarW:
		if c >= 0xF0000 {
			return (c - 0xF0040) / 16
		}
		return (c - 0x0B80) / 16
	case SheetBengaliVarW:
		return (c - 0x980) / 16
	case SheetBrailleVarW:
		return (c - 0x2800) / 16
	case SheetSundaneseVarW:
		if c >= 0xF0500 {
			return (c - 0xF04B0) / 16
		}
		if c < 0x1BC0 {
			return (c - 0x1B80) / 16
		}
		return (c - 0x1C80) / 16
	case SheetDevanagari2InternalVarW:
		return (c - 0xF0110) / 16
	case SheetCodestyleASCIIVarW:
		return (c - 0xF0520) / 16
	case SheetAlphabeticPresentationForms:
		return (c - 0xFB00) / 16
	case SheetHentaiganaVarW:
		return (c - 0x1B000) / 16
	case SheetHangul:
		return 0
	}
	return c / 16
}

package glyph

import (
	"github.com/npillmayer/pxtype/core"
	"github.com/npillmayer/pxtype/core/pixel"
	"github.com/npillmayer/pxtype/engine/sheet"
)

// Tag column bit layout, top to bottom. Each entry is a row offset within
// the cell. Rows 0–3 hold the width bits (LSB first), rows 11–14 the
// diacritics anchors (rows 13/14 host anchor types 0–2).
const (
	tagLowHeightRow  = 5
	tagKernRow       = 6 // rows 7 and 8 are reserved
	tagDirectiveRow  = 9
	tagNudgeRow      = 10
	tagAnchorYRow    = 13
	tagAnchorXRow    = 14
	tagAlignRow      = 15 // 2 rows
	tagWriteOnTopRow = 17
	tagStackRow      = 18 // 2 rows
)

// stackDontSentinel in both stack rows overrides the 2-bit stacking value.
const stackDontSentinel = 0x00FF00FF

// extInfoMaxRows bounds the bit-packed auxiliary columns.
const extInfoMaxRows = 20

// DecodeSheet decodes one sprite sheet into glyphs. Variable-width sheets
// have their tag columns decoded bit-exactly; fixed-width sheets get the
// per-sheet constant width. The Hangul johab sheet uses its dedicated jamo
// layout.
func DecodeSheet(sf pixel.Surface, s sheet.Sheet) (map[sheet.CodePoint]*Glyph, error) {
	if sf == nil {
		return nil, core.Error(core.EINVALID, "no surface for sheet %d (%s)", s.Index, s.Filename)
	}
	if w, _ := sf.Size(); w < s.Columns()*s.CellWidth() {
		return nil, core.Error(core.EDECODE,
			"surface of width %d cannot hold sheet %d (%s), need %d",
			w, s.Index, s.Filename, s.Columns()*s.CellWidth())
	}
	if s.Index == sheet.SheetHangul {
		return decodeHangulJamoSheet(sf, s), nil
	}
	if s.IsVariable() {
		return decodeVariableSheet(sf, s), nil
	}
	return decodeFixedSheet(sf, s), nil
}

func decodeVariableSheet(sf pixel.Surface, s sheet.Sheet) map[sheet.CodePoint]*Glyph {
	cellW, cellH := s.CellWidth(), s.CellHeight()
	tagOffset := cellW - 1 // tag column is the last pixel column of the cell
	glyphs := make(map[sheet.CodePoint]*Glyph)

	s.CodePoints(func(ordinal int, cp sheet.CodePoint) {
		cellX, cellY := s.CellOrigin(ordinal)
		tagX := cellX + tagOffset
		m := defaultMetrics()

		// width, 4 bits LSB first
		for y := 0; y < 4; y++ {
			if pixel.Alpha(sf.Pixel(tagX, cellY+y)) != 0 {
				m.Width |= 1 << uint(y)
			}
		}
		m.LowHeight = pixel.Alpha(sf.Pixel(tagX, cellY+tagLowHeightRow)) != 0

		kernWord := pixel.Tagify(sf.Pixel(tagX, cellY+tagKernRow))
		m.HasKernData = kernWord&0xFF != 0
		if m.HasKernData {
			m.KernYType = kernWord&0x80000000 != 0
			m.KerningMask = (kernWord >> 8) & 0xFFFFFF
		}

		directive := pixel.Tagify(sf.Pixel(tagX, cellY+tagDirectiveRow))
		m.Opcode = uint8(directive >> 24)
		m.Arg1 = uint8(directive >> 16)
		m.Arg2 = uint8(directive >> 8)

		nudge := pixel.Tagify(sf.Pixel(tagX, cellY+tagNudgeRow))
		m.NudgeX = int8(nudge >> 24)
		m.NudgeY = int8(nudge >> 16)

		yWord := pixel.Tagify(sf.Pixel(tagX, cellY+tagAnchorYRow))
		xWord := pixel.Tagify(sf.Pixel(tagX, cellY+tagAnchorXRow))
		for i := range m.Anchors {
			shift := uint((3 - i) * 8)
			m.Anchors[i].YUsed = (yWord>>shift)&0x80 != 0
			m.Anchors[i].XUsed = (xWord>>shift)&0x80 != 0
			if m.Anchors[i].YUsed {
				m.Anchors[i].Y = int((yWord >> shift) & 0x7F)
			}
			if m.Anchors[i].XUsed {
				m.Anchors[i].X = int((xWord >> shift) & 0x7F)
			}
		}

		align := 0
		for y := 0; y < 2; y++ {
			if pixel.Alpha(sf.Pixel(tagX, cellY+tagAlignRow+y)) != 0 {
				align |= 1 << uint(y)
			}
		}
		m.AlignWhere = Align(align)

		// write-on-top is read untagified: a low byte of zero means "does
		// not stack", any other value carries the diacritic type.
		wotWord := sf.Pixel(tagX, cellY+tagWriteOnTopRow)
		if wotWord&0xFF != 0 {
			if wotWord>>8 == 0xFFFFFF {
				m.WriteOnTop = 0
			} else {
				m.WriteOnTop = int(wotWord >> 28 & 0xF)
			}
		}

		stack0 := pixel.Tagify(sf.Pixel(tagX, cellY+tagStackRow))
		stack1 := pixel.Tagify(sf.Pixel(tagX, cellY+tagStackRow+1))
		if stack0 == stackDontSentinel && stack1 == stackDontSentinel {
			m.StackWhere = StackDont
		} else {
			stack := 0
			if stack0&0xFF != 0 {
				stack |= 1
			}
			if stack1&0xFF != 0 {
				stack |= 2
			}
			m.StackWhere = Stack(stack)
		}

		if n := m.RequiredExtInfoCount(); n > 0 {
			m.ExtInfo = make([]int32, n)
			rows := cellH
			if rows > extInfoMaxRows {
				rows = extInfoMaxRows
			}
			for x := 0; x < n; x++ {
				var info int32
				for y := 0; y < rows; y++ {
					if pixel.Alpha(sf.Pixel(cellX+x, cellY+y)) != 0 {
						info |= 1 << uint(y)
					}
				}
				m.ExtInfo[x] = info
			}
		}

		glyphs[cp] = &Glyph{
			Code:    cp,
			Metrics: m,
			Bitmap:  extractBitmap(sf, cellX, cellY, m.Width, cellW-1, cellH),
		}
	})
	tracer().Infof("decoded %d variable-width glyphs from %s", len(glyphs), s.Filename)
	return glyphs
}

// extractBitmap clips the glyph to its declared width; the tag column and
// padding beyond the width are never part of the glyph.
func extractBitmap(sf pixel.Surface, cellX, cellY, width, maxW, cellH int) Bitmap {
	w := width
	if w > maxW {
		w = maxW
	}
	if w < 0 {
		w = 0
	}
	bm := NewBitmap(w, cellH)
	for y := 0; y < cellH; y++ {
		for x := 0; x < w; x++ {
			if pixel.Alpha(sf.Pixel(cellX+x, cellY+y)) != 0 {
				bm.Set(x, y)
			}
		}
	}
	return bm
}

func decodeFixedSheet(sf pixel.Surface, s sheet.Sheet) map[sheet.CodePoint]*Glyph {
	cellW, cellH := s.CellWidth(), s.CellHeight()
	width := s.FixedWidth()
	glyphs := make(map[sheet.CodePoint]*Glyph)
	s.CodePoints(func(ordinal int, cp sheet.CodePoint) {
		cellX, cellY := s.CellOrigin(ordinal)
		m := defaultMetrics()
		m.Width = width
		glyphs[cp] = &Glyph{
			Code:    cp,
			Metrics: m,
			Bitmap:  extractBitmap(sf, cellX, cellY, cellW, cellW, cellH),
		}
	})
	tracer().Infof("decoded %d fixed-width glyphs from %s", len(glyphs), s.Filename)
	return glyphs
}

// --- Hangul johab sheet ----------------------------------------------------

// ReadJamoCell reads the jamo cell at (column, row) of the Hangul sheet.
// Cells beyond the sheet bounds come back empty; unknown sheet positions are
// "glyph absent", never an error.
func ReadJamoCell(sf pixel.Surface, column, row int) Bitmap {
	return extractBitmap(sf, column*sheet.HangulBaseWidth, row*sheet.CellH,
		sheet.HangulBaseWidth, sheet.HangulBaseWidth, sheet.CellH)
}

// decodeHangulJamoSheet maps the johab sheet's dedicated layout: choseong on
// row 1, jungseong on row 15 (column 0 is the U+1160 filler), jongseong on
// row 17, with the extended jamo blocks at shifted columns. Variant rows for
// syllable composition are read separately by the composer.
func decodeHangulJamoSheet(sf pixel.Surface, s sheet.Sheet) map[sheet.CodePoint]*Glyph {
	glyphs := make(map[sheet.CodePoint]*Glyph)
	put := func(cp sheet.CodePoint, col, row int) {
		m := defaultMetrics()
		m.Width = sheet.HangulBaseWidth
		glyphs[cp] = &Glyph{Code: cp, Metrics: m, Bitmap: ReadJamoCell(sf, col, row)}
	}

	put(0x1160, 0, sheet.HangulRowJungseong) // jungseong filler
	for cp := sheet.CodePoint(0x1100); cp <= 0x115F; cp++ {
		put(cp, int(cp-0x1100), sheet.HangulRowChoseong)
	}
	for cp := sheet.CodePoint(0x1161); cp <= 0x11A7; cp++ {
		put(cp, int(cp-0x1160), sheet.HangulRowJungseong)
	}
	for cp := sheet.CodePoint(0x11A8); cp <= 0x11FF; cp++ {
		put(cp, int(cp-0x11A8)+1, sheet.HangulRowJongseong)
	}
	for cp := sheet.CodePoint(0xA960); cp <= 0xA97F; cp++ {
		put(cp, int(cp-0xA960)+96, sheet.HangulRowChoseong)
	}
	for cp := sheet.CodePoint(0xD7B0); cp <= 0xD7C6; cp++ {
		put(cp, int(cp-0xD7B0)+72, sheet.HangulRowJungseong)
	}
	for cp := sheet.CodePoint(0xD7CB); cp <= 0xD7FB; cp++ {
		put(cp, int(cp-0xD7CB)+89, sheet.HangulRowJongseong)
	}
	tracer().Infof("decoded %d jamo glyphs from %s", len(glyphs), s.Filename)
	return glyphs
}

package glyph

import (
	"testing"

	"github.com/npillmayer/pxtype/core"
	"github.com/npillmayer/pxtype/core/pixel"
	"github.com/npillmayer/pxtype/engine/sheet"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

// asciiSheet returns the ASCII registry entry and a surface sized for it.
func asciiSheet() (sheet.Sheet, *pixel.MemSurface) {
	s := sheet.Registry()[sheet.SheetASCIIVarW]
	sf := pixel.NewMemSurface(16*s.CellWidth(), 16*s.CellHeight())
	return s, sf
}

// tag sets a full tag word at the given row of cp's tag column.
func tag(sf *pixel.MemSurface, s sheet.Sheet, cp sheet.CodePoint, row int, word uint32) {
	cellX, cellY := s.CellOrigin(int(cp))
	sf.Set(cellX+s.CellWidth()-1, cellY+row, word)
}

func TestWidthRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pxtype.glyph")
	defer teardown()
	s, sf := asciiSheet()
	for w := 0; w < 16; w++ {
		cp := sheet.CodePoint(0x40 + w)
		for bit := 0; bit < 4; bit++ {
			if w&(1<<uint(bit)) != 0 {
				tag(sf, s, cp, bit, 0x000000FF)
			}
		}
	}
	glyphs, err := DecodeSheet(sf, s)
	if err != nil {
		t.Fatal(err)
	}
	for w := 0; w < 16; w++ {
		cp := sheet.CodePoint(0x40 + w)
		if glyphs[cp].Metrics.Width != w {
			t.Errorf("width of U+%04X should round-trip to %d, is %d",
				uint32(cp), w, glyphs[cp].Metrics.Width)
		}
	}
}

func TestWidthBitsExample(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pxtype.glyph")
	defer teardown()
	s, sf := asciiSheet()
	// rows 0 and 2 set = binary 101 = 5, low-height unset
	tag(sf, s, 'A', 0, 0x000000FF)
	tag(sf, s, 'A', 2, 0x000000FF)
	glyphs, err := DecodeSheet(sf, s)
	if err != nil {
		t.Fatal(err)
	}
	m := glyphs['A'].Metrics
	assert.Equal(t, 5, m.Width)
	assert.False(t, m.LowHeight)
}

func TestKernWordDecoding(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pxtype.glyph")
	defer teardown()
	s, sf := asciiSheet()
	tag(sf, s, 'a', tagKernRow, 0x123456<<8|0x01)
	tag(sf, s, 'b', tagKernRow, 0x80000000|0x123456<<8|0x01)
	// 'c' has no kern data at all
	glyphs, err := DecodeSheet(sf, s)
	if err != nil {
		t.Fatal(err)
	}
	a, b, c := glyphs['a'].Metrics, glyphs['b'].Metrics, glyphs['c'].Metrics
	assert.True(t, a.HasKernData)
	assert.False(t, a.KernYType)
	assert.Equal(t, uint32(0x123456), a.KerningMask)
	assert.True(t, b.KernYType)
	assert.Equal(t, uint32(0x923456), b.KerningMask) // top mask bit doubles as Y-flag
	assert.False(t, c.HasKernData)
	assert.Equal(t, uint32(255), c.KerningMask) // default mask without kern data
}

func TestDirectiveAndExtInfo(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pxtype.glyph")
	defer teardown()
	s, sf := asciiSheet()
	// replacewith directive with 3 operands; operand columns are bit-packed
	tag(sf, s, 'x', tagDirectiveRow, 0x830000FF)
	cellX, cellY := s.CellOrigin('x')
	sf.Set(cellX+0, cellY+0, 0x000000FF) // column 0: bit 0
	sf.Set(cellX+0, cellY+3, 0x000000FF) // column 0: bit 3
	sf.Set(cellX+1, cellY+19, 0x000000FF) // column 1: bit 19
	glyphs, err := DecodeSheet(sf, s)
	if err != nil {
		t.Fatal(err)
	}
	m := glyphs['x'].Metrics
	assert.True(t, m.IsReplaceWith())
	assert.False(t, m.IsIllegal())
	assert.Equal(t, 7, m.RequiredExtInfoCount())
	assert.Equal(t, int32(0b1001), m.ExtInfo[0])
	assert.Equal(t, int32(1<<19), m.ExtInfo[1])
	assert.Len(t, m.ReplaceWith(), 3)

	tag(sf, s, 'y', tagDirectiveRow, 0xFF0000FF)
	glyphs, _ = DecodeSheet(sf, s)
	assert.True(t, glyphs['y'].Metrics.IsIllegal())
}

func TestNudgeAndAlignment(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pxtype.glyph")
	defer teardown()
	s, sf := asciiSheet()
	tag(sf, s, 'n', tagNudgeRow, 0xFE0300FF) // X=-2, Y=3
	tag(sf, s, 'n', tagAlignRow+1, 0x000000FF)
	glyphs, err := DecodeSheet(sf, s)
	if err != nil {
		t.Fatal(err)
	}
	m := glyphs['n'].Metrics
	assert.Equal(t, int8(-2), m.NudgeX)
	assert.Equal(t, int8(3), m.NudgeY)
	assert.Equal(t, AlignCentre, m.AlignWhere)
}

func TestWriteOnTopAndStacking(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pxtype.glyph")
	defer teardown()
	s, sf := asciiSheet()
	tag(sf, s, 'o', tagWriteOnTopRow, 0xFFFFFF01) // white at 7-bit read = type 0
	tag(sf, s, 'p', tagWriteOnTopRow, 0x300000FF) // top nibble = type 3
	tag(sf, s, 'q', tagStackRow, stackDontSentinel)
	tag(sf, s, 'q', tagStackRow+1, stackDontSentinel)
	tag(sf, s, 'r', tagStackRow+1, 0x000000FF)
	glyphs, err := DecodeSheet(sf, s)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, 0, glyphs['o'].Metrics.WriteOnTop)
	assert.Equal(t, 3, glyphs['p'].Metrics.WriteOnTop)
	assert.Equal(t, WriteOnTopNone, glyphs['s'].Metrics.WriteOnTop)
	assert.Equal(t, StackDont, glyphs['q'].Metrics.StackWhere)
	assert.Equal(t, StackBeforeAndAfter, glyphs['r'].Metrics.StackWhere)
	assert.Equal(t, 2, glyphs['r'].Metrics.RequiredExtInfoCount())
}

func TestBitmapClipsTagColumn(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pxtype.glyph")
	defer teardown()
	s, sf := asciiSheet()
	tag(sf, s, 'g', 0, 0x000000FF) // width 1
	tag(sf, s, 'g', 1, 0x000000FF) // width 3
	cellX, cellY := s.CellOrigin('g')
	sf.Set(cellX+1, cellY+7, 0xFFFFFFFF)  // ink inside width
	sf.Set(cellX+10, cellY+7, 0xFFFFFFFF) // ink beyond width: clipped
	glyphs, err := DecodeSheet(sf, s)
	if err != nil {
		t.Fatal(err)
	}
	bm := glyphs['g'].Bitmap
	assert.Equal(t, 3, bm.Width)
	assert.True(t, bm.At(1, 7))
	assert.False(t, bm.At(10, 7))
}

func TestHangulJamoSheetLayout(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pxtype.glyph")
	defer teardown()
	s := sheet.Registry()[sheet.SheetHangul]
	sf := pixel.NewMemSurface(120*sheet.HangulBaseWidth, 25*sheet.CellH)
	// one ink pixel in the cell of U+1100 (column 0, choseong row)
	sf.Set(2, sheet.HangulRowChoseong*sheet.CellH+5, 0xFFFFFFFF)
	glyphs, err := DecodeSheet(sf, s)
	if err != nil {
		t.Fatal(err)
	}
	g := glyphs[0x1100]
	assert.Equal(t, sheet.HangulBaseWidth, g.Metrics.Width)
	assert.True(t, g.Bitmap.At(2, 5))
	// extended choseong lives at column 96+
	if _, ok := glyphs[0xA960]; !ok {
		t.Error("extended choseong U+A960 missing from jamo sheet decode")
	}
}

func TestDecodeRejectsUndersizedSurface(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pxtype.glyph")
	defer teardown()
	s := sheet.Registry()[sheet.SheetASCIIVarW]
	_, err := DecodeSheet(pixel.NewMemSurface(50, 50), s)
	if err == nil {
		t.Fatal("a surface narrower than the sheet must not decode")
	}
	assert.Equal(t, core.EDECODE, core.Code(err))
}

func TestTableFallbackAndStrictMode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pxtype.glyph")
	defer teardown()
	table := NewBuilder().Table(false)
	w, err := table.AdvanceWidth(0x41)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, sheet.LatinWideWidth, w)

	strict := NewBuilder().Table(true)
	_, err = strict.AdvanceWidth(0x41)
	if err == nil {
		t.Fatal("strict mode should report missing metrics as an error")
	}
	assert.Equal(t, core.EMISSING, core.Code(err))
}

func TestTableOverrides(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pxtype.glyph")
	defer teardown()
	table := NewBuilder().Table(false)
	m, ok := table.Metrics(0x3131) // compat jamo placeholder
	assert.True(t, ok)
	assert.Equal(t, sheet.HangulBaseWidth, m.Width)
	m, ok = table.Metrics(0xFFFC0) // internal control range
	assert.True(t, ok)
	assert.Equal(t, 0, m.Width)
	m, ok = table.Metrics(0xD812) // surrogate
	assert.True(t, ok)
	assert.Equal(t, 0, m.Width)
}

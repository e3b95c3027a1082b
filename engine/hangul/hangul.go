package hangul

import (
	"github.com/npillmayer/pxtype/core"
	"github.com/npillmayer/pxtype/core/pixel"
	"github.com/npillmayer/pxtype/engine/glyph"
	"github.com/npillmayer/pxtype/engine/sheet"
)

// Decompose splits a precomposed syllable codepoint into its jamo ordinals:
// initial consonant (0–18), medial vowel (0–20) and final consonant (0–27,
// 0 meaning no final).
func Decompose(cp sheet.CodePoint) (initial, medial, final int) {
	index := int(cp - sheet.HangulSyllableBase)
	initial = index / (sheet.JungCount * sheet.JongCount)
	medial = index / sheet.JongCount % sheet.JungCount
	final = index % sheet.JongCount
	return initial, medial, final
}

// Composer assembles syllable glyphs from the johab sheet. A composer reads
// the sheet surface only; it may be shared by concurrent readers.
type Composer struct {
	surface pixel.Surface
}

// NewComposer creates a composer over the johab sheet surface.
func NewComposer(surface pixel.Surface) (*Composer, error) {
	if surface == nil {
		return nil, core.Error(core.EINVALID, "no johab sheet surface")
	}
	return &Composer{surface: surface}, nil
}

// jamoIndices maps the syllable-arithmetic ordinals onto jamo sheet columns.
// The medial column is shifted by one: column 0 of the jungseong row hosts
// the U+1160 filler.
func jamoIndices(initial, medial, final int) (i, p, f int) {
	i, _ = sheet.ChoseongIndex(sheet.CodePoint(0x1100 + initial))
	if idx, ok := sheet.JungseongIndex(sheet.CodePoint(0x1161 + medial)); ok {
		p = idx
	}
	if final > 0 {
		if idx, ok := sheet.JongseongIndex(sheet.CodePoint(0x11A8 + final - 1)); ok {
			f = idx
		}
	}
	return i, p, f
}

// ComposeSyllable builds the glyph for a precomposed syllable codepoint
// (U+AC00–U+D7A3). The result's advance width is the base jamo width, plus
// one pixel for wide-stroke medials.
func (c *Composer) ComposeSyllable(cp sheet.CodePoint) (*glyph.Glyph, error) {
	if !sheet.IsHangulSyllable(cp) {
		return nil, core.Error(core.EINVALID, "not a Hangul syllable: U+%04X", uint32(cp))
	}
	initial, medial, final := Decompose(cp)
	i, p, f := jamoIndices(initial, medial, final)

	choRow, err := sheet.HangulInitialRow(i, p, f)
	if err != nil {
		return nil, err
	}
	composed := glyph.ReadJamoCell(c.surface, i, choRow).Clone()
	composed.Union(glyph.ReadJamoCell(c.surface, p, sheet.HangulMedialRow(i, p, f)))
	if final > 0 {
		composed.Union(glyph.ReadJamoCell(c.surface, f, sheet.HangulFinalRow(i, p, f)))
	}

	advance := sheet.HangulBaseWidth
	if sheet.HangulPeakHasExtraWidth(p) {
		advance++
	}
	m := glyph.Metrics{
		Width:       advance,
		WriteOnTop:  glyph.WriteOnTopNone,
		KerningMask: 255,
	}
	return &glyph.Glyph{Code: cp, Metrics: m, Bitmap: composed}, nil
}

// ComposeCompat builds the glyph for a compatibility jamo codepoint
// (U+3130–U+318F). Compatibility jamo are standalone sprites drawn from the
// sheet's first row, not composed.
func (c *Composer) ComposeCompat(cp sheet.CodePoint) (*glyph.Glyph, error) {
	if !sheet.IsHangulCompat(cp) {
		return nil, core.Error(core.EINVALID, "not a compatibility jamo: U+%04X", uint32(cp))
	}
	bm := glyph.ReadJamoCell(c.surface, int(cp-sheet.HangulCompatBase), sheet.HangulRowCompat)
	m := glyph.Metrics{
		Width:       sheet.HangulBaseWidth,
		WriteOnTop:  glyph.WriteOnTopNone,
		KerningMask: 255,
	}
	return &glyph.Glyph{Code: cp, Metrics: m, Bitmap: bm}, nil
}

// ComposeAll composes every compatibility jamo and all 11,172 modern
// syllables. The result feeds a glyph table builder.
func (c *Composer) ComposeAll() (map[sheet.CodePoint]*glyph.Glyph, error) {
	glyphs := make(map[sheet.CodePoint]*glyph.Glyph,
		int(sheet.HangulSyllableEnd-sheet.HangulSyllableBase)+
			int(sheet.HangulCompatEnd-sheet.HangulCompatBase))
	for cp := sheet.HangulCompatBase; cp < sheet.HangulCompatEnd; cp++ {
		g, err := c.ComposeCompat(cp)
		if err != nil {
			return nil, err
		}
		glyphs[cp] = g
	}
	for cp := sheet.HangulSyllableBase; cp < sheet.HangulSyllableEnd; cp++ {
		g, err := c.ComposeSyllable(cp)
		if err != nil {
			return nil, err
		}
		glyphs[cp] = g
	}
	tracer().Infof("composed %d Hangul glyphs", len(glyphs))
	return glyphs, nil
}

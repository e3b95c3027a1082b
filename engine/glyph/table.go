package glyph

import (
	"sort"

	"github.com/npillmayer/pxtype/core"
	"github.com/npillmayer/pxtype/core/pixel"
	"github.com/npillmayer/pxtype/engine/sheet"
)

// Builder accumulates decoded sheets into a metrics table. Builders are not
// safe for concurrent use; the resulting Table is.
type Builder struct {
	glyphs map[sheet.CodePoint]*Glyph
}

// NewBuilder creates an empty table builder.
func NewBuilder() *Builder {
	return &Builder{glyphs: make(map[sheet.CodePoint]*Glyph)}
}

// AddSheet decodes a sheet surface and merges its glyphs. Later additions
// win over earlier ones for overlapping codepoints.
func (b *Builder) AddSheet(sf pixel.Surface, s sheet.Sheet) error {
	glyphs, err := DecodeSheet(sf, s)
	if err != nil {
		return err
	}
	b.Add(glyphs)
	return nil
}

// Add merges pre-built glyphs, e.g. composed Hangul syllables.
func (b *Builder) Add(glyphs map[sheet.CodePoint]*Glyph) {
	for cp, g := range glyphs {
		b.glyphs[cp] = g
	}
}

// Table freezes the builder into an immutable snapshot, applying the
// fixed-width overrides for codepoint ranges without sprite presence.
// The builder must not be reused afterwards.
func (b *Builder) Table(strict bool) *Table {
	b.applyOverrides()
	t := &Table{glyphs: b.glyphs, strict: strict}
	b.glyphs = nil
	return t
}

// applyOverrides registers width-0 placeholders for the surrogate range and
// the internal control range, empty compat-jamo cells, the NUL character,
// and remaps the replacement glyph to width 15.
func (b *Builder) applyOverrides() {
	zeroWidth := func(cp sheet.CodePoint) {
		m := defaultMetrics()
		b.glyphs[cp] = &Glyph{Code: cp, Metrics: m, Bitmap: NewBitmap(1, 1)}
	}
	for cp := sheet.HangulCompatBase; cp < sheet.HangulCompatEnd; cp++ {
		if _, ok := b.glyphs[cp]; !ok {
			m := defaultMetrics()
			m.Width = sheet.HangulBaseWidth
			b.glyphs[cp] = &Glyph{Code: cp, Metrics: m,
				Bitmap: NewBitmap(sheet.HangulBaseWidth, sheet.CellH)}
		}
	}
	for cp := sheet.CodePoint(0xD800); cp < 0xE000; cp++ { // surrogates
		if _, ok := b.glyphs[cp]; !ok {
			zeroWidth(cp)
		}
	}
	for cp := sheet.CodePoint(0xFFFA0); cp < 0x100000; cp++ { // internal range
		zeroWidth(cp)
	}
	zeroWidth(0)
	if g, ok := b.glyphs[sheet.ReplacementGlyph]; ok {
		g.Metrics.Width = sheet.VarInitWidth
	}
}

// Table is an immutable codepoint-to-glyph snapshot. It must be published
// once, before any concurrent consumer starts; reloading a sheet means
// building a new Table.
type Table struct {
	glyphs map[sheet.CodePoint]*Glyph
	strict bool
}

// Strict reports whether missing metrics are a hard error.
func (t *Table) Strict() bool {
	return t.strict
}

// Glyph looks up the glyph for cp. Absence is a normal branch, not an error.
func (t *Table) Glyph(cp sheet.CodePoint) (*Glyph, bool) {
	g, ok := t.glyphs[cp]
	return g, ok
}

// Metrics looks up the metrics record for cp.
func (t *Table) Metrics(cp sheet.CodePoint) (Metrics, bool) {
	if g, ok := t.glyphs[cp]; ok {
		return g.Metrics, true
	}
	return Metrics{}, false
}

// AdvanceWidth returns the advance width of cp. Codepoints without decoded
// metrics fall back to the wide-Latin default width and are reported as a
// warning; in strict mode they are a hard error naming the codepoint.
func (t *Table) AdvanceWidth(cp sheet.CodePoint) (int, error) {
	if g, ok := t.glyphs[cp]; ok {
		return g.Metrics.Width, nil
	}
	if t.strict {
		return 0, core.Error(core.EMISSING, "no glyph metrics for U+%05X", uint32(cp))
	}
	tracer().Infof("no glyph metrics for U+%05X, using default width", uint32(cp))
	return sheet.LatinWideWidth, nil
}

// Kernable returns the glyphs carrying kern data, ordered by codepoint.
func (t *Table) Kernable() []*Glyph {
	kernable := make([]*Glyph, 0, 64)
	for _, g := range t.glyphs {
		if g.Metrics.HasKernData {
			kernable = append(kernable, g)
		}
	}
	sort.Slice(kernable, func(i, j int) bool {
		return kernable[i].Code < kernable[j].Code
	})
	return kernable
}

// Size returns the number of glyphs in the table.
func (t *Table) Size() int {
	return len(t.glyphs)
}

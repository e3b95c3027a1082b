package hangul

import (
	"testing"

	"github.com/npillmayer/pxtype/core/pixel"
	"github.com/npillmayer/pxtype/engine/sheet"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// johabSurface builds a surface with one ink pixel in every jamo cell, so
// every composition yields a non-empty mask.
func johabSurface() *pixel.MemSurface {
	cols, rows := 120, 25
	sf := pixel.NewMemSurface(cols*sheet.HangulBaseWidth, rows*sheet.CellH)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			sf.Set(col*sheet.HangulBaseWidth+row%sheet.HangulBaseWidth,
				row*sheet.CellH+col%sheet.CellH, 0xFFFFFFFF)
		}
	}
	return sf
}

func TestDecompose(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pxtype.hangul")
	defer teardown()
	i, p, f := Decompose(0xAC00) // 가
	if i != 0 || p != 0 || f != 0 {
		t.Errorf("U+AC00 should decompose to (0,0,0), is (%d,%d,%d)", i, p, f)
	}
	i, p, f = Decompose(0xD7A3) // 힣
	if i != 18 || p != 20 || f != 27 {
		t.Errorf("U+D7A3 should decompose to (18,20,27), is (%d,%d,%d)", i, p, f)
	}
	i, p, f = Decompose(0xD55C) // 한
	if i != 18 || p != 0 || f != 4 {
		t.Errorf("U+D55C should decompose to (18,0,4), is (%d,%d,%d)", i, p, f)
	}
}

func TestComposeSingleSyllable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pxtype.hangul")
	defer teardown()
	c, err := NewComposer(johabSurface())
	if err != nil {
		t.Fatal(err)
	}
	g, err := c.ComposeSyllable(0xAC00)
	if err != nil {
		t.Fatal(err)
	}
	if g.Bitmap.IsEmpty() {
		t.Error("composed syllable bitmap should not be empty")
	}
	if g.Metrics.Width != sheet.HangulBaseWidth {
		t.Errorf("advance of U+AC00 should be %d, is %d", sheet.HangulBaseWidth, g.Metrics.Width)
	}
	if _, err = c.ComposeSyllable(0x41); err == nil {
		t.Error("latin codepoint must not compose as a syllable")
	}
}

func TestComposeExtraWidthPeak(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pxtype.hangul")
	defer teardown()
	c, _ := NewComposer(johabSurface())
	// medial ordinal 5 (ㅔ) maps to jamo column 6, a wide-stroke peak
	g, err := c.ComposeSyllable(0xAC00 + 5*sheet.JongCount)
	if err != nil {
		t.Fatal(err)
	}
	if g.Metrics.Width != sheet.HangulBaseWidth+1 {
		t.Errorf("wide-peak syllable should advance %d, is %d",
			sheet.HangulBaseWidth+1, g.Metrics.Width)
	}
}

func TestComposeCoverage(t *testing.T) {
	if testing.Short() {
		t.Skip("full syllable sweep skipped in -short mode")
	}
	teardown := gotestingadapter.QuickConfig(t, "pxtype.hangul")
	defer teardown()
	c, _ := NewComposer(johabSurface())
	count := 0
	for cp := sheet.HangulSyllableBase; cp < sheet.HangulSyllableEnd; cp++ {
		g, err := c.ComposeSyllable(cp)
		if err != nil {
			t.Fatalf("composing U+%04X failed: %v", uint32(cp), err)
		}
		if g.Bitmap.IsEmpty() {
			t.Fatalf("U+%04X composed to an empty bitmap", uint32(cp))
		}
		if w := g.Metrics.Width; w != sheet.HangulBaseWidth && w != sheet.HangulBaseWidth+1 {
			t.Fatalf("U+%04X has advance %d, want %d or %d",
				uint32(cp), w, sheet.HangulBaseWidth, sheet.HangulBaseWidth+1)
		}
		count++
	}
	if count != 11172 {
		t.Errorf("sweep should cover 11172 syllables, covered %d", count)
	}
}

func TestComposeCompat(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pxtype.hangul")
	defer teardown()
	c, _ := NewComposer(johabSurface())
	for cp := sheet.HangulCompatBase; cp < sheet.HangulCompatEnd; cp++ {
		g, err := c.ComposeCompat(cp)
		if err != nil {
			t.Fatalf("compat jamo U+%04X failed: %v", uint32(cp), err)
		}
		if g.Metrics.Width != sheet.HangulBaseWidth {
			t.Errorf("compat jamo U+%04X should advance %d", uint32(cp), sheet.HangulBaseWidth)
		}
	}
}

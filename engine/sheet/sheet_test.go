package sheet

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestRegistryGeometry(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pxtype.sheet")
	defer teardown()
	for _, s := range Registry() {
		if s.CellWidth() <= 0 || s.CellHeight() <= 0 || s.Columns() <= 0 {
			t.Errorf("sheet %d (%s) has degenerate geometry", s.Index, s.Filename)
		}
	}
}

func TestVariableSheetFlags(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pxtype.sheet")
	defer teardown()
	reg := Registry()
	if !reg[SheetASCIIVarW].IsVariable() {
		t.Error("ASCII sheet should be variable-width")
	}
	if reg[SheetHangul].IsVariable() {
		t.Error("Hangul johab sheet should be fixed-width")
	}
	if !reg[SheetGreekPolyVarW].IsXYSwapped() {
		t.Error("polytonic Greek sheet should be XY-swapped")
	}
	if !reg[SheetTamilVarW].IsExtraWide() {
		t.Error("Tamil sheet should be extra-wide")
	}
	if w := reg[SheetTamilVarW].CellWidth(); w != 32 {
		t.Errorf("extra-wide cell pitch should be 32, is %d", w)
	}
}

func TestCellOrigin(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pxtype.sheet")
	defer teardown()
	ascii := Registry()[SheetASCIIVarW]
	x, y := ascii.CellOrigin(0x41) // 'A' = ordinal 65 = row 4, col 1
	if x != 1*16 || y != 4*20 {
		t.Errorf("cell origin of 'A' should be (16,80), is (%d,%d)", x, y)
	}
	poly := Registry()[SheetGreekPolyVarW]
	x, y = poly.CellOrigin(17) // swapped: column-major
	if x != 1*16 || y != 1*20 {
		t.Errorf("swapped cell origin of ordinal 17 should be (16,20), is (%d,%d)", x, y)
	}
}

func TestIndexFunctionsMatchCellOrigin(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pxtype.sheet")
	defer teardown()
	for _, s := range Registry() {
		if s.IsXYSwapped() || s.Index == SheetHangul {
			continue // cell ordinals of these sheets are not row-major
		}
		s.CodePoints(func(ordinal int, cp CodePoint) {
			x, y := s.CellOrigin(ordinal)
			ix := IndexX(s.Index, cp) * s.CellWidth()
			iy := IndexY(s.Index, cp) * s.CellHeight()
			if x != ix || y != iy {
				t.Fatalf("sheet %d (%s): index functions place U+%05X at (%d,%d), cell origin is (%d,%d)",
					s.Index, s.Filename, uint32(cp), ix, iy, x, y)
			}
		})
	}
}

func TestByCodePoint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pxtype.sheet")
	defer teardown()
	s, ok := ByCodePoint(0x44C) // Cyrillic soft sign
	if !ok || s.Index != SheetCyrillicVarW {
		t.Errorf("U+044C should resolve to the Cyrillic sheet, got %v/%v", s.Index, ok)
	}
	if _, ok = ByCodePoint(0xFFFB0); ok {
		t.Error("unassigned internal codepoint should not resolve to a sheet")
	}
}

func TestCharsetTranslation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pxtype.sheet")
	defer teardown()
	if got := TranslateCharset(CharsetOverrideBulgarian, 0x410); got != 0xF0010 {
		t.Errorf("Bulgarian translation of U+0410 should be U+F0010, is U+%05X", uint32(got))
	}
	// outside the override domain: pass through
	if got := TranslateCharset(CharsetOverrideBulgarian, 0x61); got != 0x61 {
		t.Errorf("latin 'a' must pass through a Cyrillic override, is U+%05X", uint32(got))
	}
	if got := TranslateCharset(CharsetOverrideCodestyle, 0x41); got != 0xF0541 {
		t.Errorf("codestyle translation of 'A' should be U+F0541, is U+%05X", uint32(got))
	}
}

func TestHangulRowSelection(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pxtype.sheet")
	defer teardown()
	// U+AC00: initial=0, medial=0, final=0
	row, err := HangulInitialRow(0, 0, 0)
	if err != nil || row != 1 {
		t.Errorf("initial row for (0,0,0) should be 1, is %d (err=%v)", row, err)
	}
	if r := HangulMedialRow(0, 0, 0); r != HangulRowJungseong {
		t.Errorf("medial row without final should be %d, is %d", HangulRowJungseong, r)
	}
	if r := HangulFinalRow(0, 0, 1); r != HangulRowJongseong {
		t.Errorf("final row for non-rightie medial should be %d, is %d", HangulRowJongseong, r)
	}
	if r := HangulFinalRow(0, 2, 1); r != HangulRowJongseong+1 {
		t.Errorf("final row for rightie medial should be %d, is %d", HangulRowJongseong+1, r)
	}
	// closed syllable bumps the initial's row by one
	row, err = HangulInitialRow(2, 0, 1)
	if err != nil || row != 2 {
		t.Errorf("initial row for (2,0,1) should be 2, is %d (err=%v)", row, err)
	}
	// giyeok-like initial under a UU-wide vowel is remapped
	row, err = HangulInitialRow(0, 14, 0)
	if err != nil || row != 19 {
		t.Errorf("giyeok remapping for (0,14,0) should give 19, is %d (err=%v)", row, err)
	}
}

func TestJamoIndices(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pxtype.sheet")
	defer teardown()
	if i, err := ChoseongIndex(0x1100); err != nil || i != 0 {
		t.Errorf("choseong index of U+1100 should be 0, is %d", i)
	}
	if i, err := ChoseongIndex(0xA960); err != nil || i != 96 {
		t.Errorf("extended choseong index of U+A960 should be 96, is %d", i)
	}
	if i, ok := JungseongIndex(0x1161); !ok || i != 1 {
		t.Errorf("jungseong index of U+1161 should be 1, is %d", i)
	}
	if i, ok := JongseongIndex(0x11A8); !ok || i != 1 {
		t.Errorf("jongseong index of U+11A8 should be 1, is %d", i)
	}
	if _, err := ChoseongIndex(0x41); err == nil {
		t.Error("latin letter must not have a choseong index")
	}
}

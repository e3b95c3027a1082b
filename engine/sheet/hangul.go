package sheet

import (
	"github.com/npillmayer/pxtype/core"
)

// Hangul syllable arithmetic.
const (
	HangulSyllableBase CodePoint = 0xAC00
	HangulSyllableEnd  CodePoint = 0xD7A4 // exclusive
	HangulCompatBase   CodePoint = 0x3130
	HangulCompatEnd    CodePoint = 0x3190 // exclusive

	JungCount = 21
	JongCount = 28
)

// Rows of the Hangul johab sheet hosting the default jamo variants.
const (
	HangulRowCompat    = 0
	HangulRowChoseong  = 1
	HangulRowJungseong = 15
	HangulRowJongseong = 17
)

type intset map[int]struct{}

func newIntset(members ...int) intset {
	s := make(intset, len(members))
	for _, m := range members {
		s[m] = struct{}{}
	}
	return s
}

func (s intset) has(i int) bool {
	_, ok := s[i]
	return ok
}

func span(lo, hi int) []int { // [lo,hi)
	r := make([]int, 0, hi-lo)
	for i := lo; i < hi; i++ {
		r = append(r, i)
	}
	return r
}

// Jungseong (medial vowel) classification sets, by jamo sheet index. They
// encode the visual grammar of the script: which row variant of the initial
// consonant pairs with which vowel shape.
var (
	jungseongI         = newIntset(21, 61)
	jungseongOU        = newIntset(9, 13, 14, 18, 34, 35, 39, 45, 51, 53, 54, 64, 73, 80, 83)
	jungseongOUComplex = ouComplexSet()
	jungseongRightie   = newIntset(2, 4, 6, 8, 11, 16, 32, 33, 37, 42, 44, 48, 50,
		71, 72, 75, 78, 79, 83, 86, 87, 88, 94)
	jungseongOEWI = newIntset(12, 15, 17, 40, 52, 55, 89, 90, 91)
	jungseongEU   = newIntset(19, 62, 66)
	jungseongYI   = newIntset(20, 60, 65)
	jungseongUU   = newIntset(14, 15, 16, 17, 18, 27, 30, 41, 42, 43, 44, 45, 46,
		47, 48, 49, 50, 51, 52, 53, 54, 55, 59, 67, 68, 73, 77, 78, 79, 80, 81,
		82, 83, 84, 91)
	choseongGiyeoks = newIntset(0, 1, 15, 23, 30, 34, 45, 51, 56, 65, 82, 90,
		100, 101, 110, 111, 115)
	peaksWithExtraWidth = newIntset(2, 4, 6, 8, 11, 16, 32, 33, 37, 42, 44, 48,
		50, 71, 75, 78, 79, 83, 86, 87, 88, 94)
)

func ouComplexSet() intset {
	members := []int{10, 11, 16, 36, 37, 38, 63, 93, 94}
	for _, sp := range [][2]int{
		{22, 34}, {41, 45}, {46, 51}, {56, 60}, {67, 73}, {74, 80}, {81, 84}, {85, 92},
	} {
		members = append(members, span(sp[0], sp[1])...)
	}
	return newIntset(members...)
}

// giyeokRemapping corrects the visual spacing of giyeok-like initials under
// UU-wide vowels: the regular row collides with the vowel stroke.
var giyeokRemapping = map[int]int{5: 19, 6: 20, 7: 21, 8: 22, 11: 23, 12: 24}

// IsHangulChoseong reports whether cp is an initial consonant jamo.
func IsHangulChoseong(cp CodePoint) bool {
	return (0x1100 <= cp && cp <= 0x115F) || (0xA960 <= cp && cp <= 0xA97F)
}

// IsHangulJungseong reports whether cp is a medial vowel jamo.
func IsHangulJungseong(cp CodePoint) bool {
	return (0x1160 <= cp && cp <= 0x11A7) || (0xD7B0 <= cp && cp <= 0xD7C6)
}

// IsHangulJongseong reports whether cp is a final consonant jamo.
func IsHangulJongseong(cp CodePoint) bool {
	return (0x11A8 <= cp && cp <= 0x11FF) || (0xD7CB <= cp && cp <= 0xD7FB)
}

// IsHangulCompat reports whether cp is a compatibility jamo.
func IsHangulCompat(cp CodePoint) bool {
	return HangulCompatBase <= cp && cp < HangulCompatEnd
}

// IsHangulSyllable reports whether cp is a precomposed syllable.
func IsHangulSyllable(cp CodePoint) bool {
	return HangulSyllableBase <= cp && cp < HangulSyllableEnd
}

// ChoseongIndex maps an initial consonant jamo to its sheet column index.
func ChoseongIndex(cp CodePoint) (int, error) {
	switch {
	case 0x1100 <= cp && cp <= 0x115F:
		return int(cp - 0x1100), nil
	case 0xA960 <= cp && cp <= 0xA97F:
		return int(cp-0xA960) + 96, nil
	}
	return 0, core.Error(core.EINVALID, "not a choseong: U+%04X", uint32(cp))
}

// JungseongIndex maps a medial vowel jamo to its sheet column index.
// The second return value is false for non-jungseong codepoints.
func JungseongIndex(cp CodePoint) (int, bool) {
	switch {
	case 0x1160 <= cp && cp <= 0x11A7:
		return int(cp - 0x1160), true
	case 0xD7B0 <= cp && cp <= 0xD7C6:
		return int(cp-0xD7B0) + 72, true
	}
	return 0, false
}

// JongseongIndex maps a final consonant jamo to its sheet column index.
// The second return value is false for non-jongseong codepoints.
func JongseongIndex(cp CodePoint) (int, bool) {
	switch {
	case 0x11A8 <= cp && cp <= 0x11FF:
		return int(cp-0x11A8) + 1, true
	case 0xD7CB <= cp && cp <= 0xD7FB:
		return int(cp-0xD7CB) + 88 + 1, true
	}
	return 0, false
}

// HangulInitialRow selects the sheet row for an initial consonant, given the
// jamo indices (i=initial, p=peak/medial, f=final; f==0 means no final).
// Open syllables and closed syllables use adjacent row pairs, hence the +1.
func HangulInitialRow(i, p, f int) (int, error) {
	var row int
	switch {
	case jungseongI.has(p):
		row = 3
	case jungseongOEWI.has(p):
		row = 11
	case jungseongOUComplex.has(p):
		row = 7
	case jungseongOU.has(p):
		row = 5
	case jungseongEU.has(p):
		row = 9
	case jungseongYI.has(p):
		row = 13
	default:
		row = 1
	}
	if f != 0 {
		row++
	}
	if jungseongUU.has(p) && choseongGiyeoks.has(i) {
		mapped, ok := giyeokRemapping[row]
		if !ok {
			return 0, core.Error(core.EINTERNAL,
				"giyeok remapping failed: i=%d p=%d f=%d row=%d", i, p, f, row)
		}
		return mapped, nil
	}
	return row, nil
}

// HangulMedialRow selects the sheet row for a medial vowel: the low row for
// open syllables, the high row when a final consonant is present.
func HangulMedialRow(i, p, f int) int {
	if f == 0 {
		return HangulRowJungseong
	}
	return HangulRowJungseong + 1
}

// HangulFinalRow selects the sheet row for a final consonant, depending on
// whether the medial extends to the right side of the cell.
func HangulFinalRow(i, p, f int) int {
	if jungseongRightie.has(p) {
		return HangulRowJongseong + 1
	}
	return HangulRowJongseong
}

// HangulPeakHasExtraWidth reports whether syllables with this medial get one
// extra pixel of advance width (wide vowel strokes).
func HangulPeakHasExtraWidth(p int) bool {
	return peaksWithExtraWidth.has(p)
}

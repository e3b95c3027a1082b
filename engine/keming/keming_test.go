package keming

import (
	"testing"

	"github.com/npillmayer/pxtype/engine/glyph"
	"github.com/npillmayer/pxtype/engine/sheet"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

// mirrorShape swaps the shape bits within each 2-column template group, i.e.
// it mirrors a shape the way Rule.Mirror mirrors a template.
func mirrorShape(s uint32) uint32 {
	var out uint32
	for i := 0; i < len(sheet.KemingBitMask); i += 2 {
		if s&sheet.KemingBitMask[i] != 0 {
			out |= sheet.KemingBitMask[i+1]
		}
		if s&sheet.KemingBitMask[i+1] != 0 {
			out |= sheet.KemingBitMask[i]
		}
	}
	return out
}

// shapes enumerates every shape value over the 10 template-addressable bits.
func shapes() []uint32 {
	all := make([]uint32, 0, 1<<len(sheet.KemingBitMask))
	for n := 0; n < 1<<len(sheet.KemingBitMask); n++ {
		var s uint32
		for i, bit := range sheet.KemingBitMask {
			if n&(1<<i) != 0 {
				s |= bit
			}
		}
		all = append(all, s)
	}
	return all
}

func TestMaskMatching(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pxtype.keming")
	defer teardown()
	m := CompileMask("_`_@___`__")
	// template column 3 maps to bit 4, columns 1 and 7 to bits 6 and 0
	assert.True(t, m.Matches(1<<4))
	assert.True(t, m.Matches(1<<4|1<<5), "bit 5 is a don't-care column")
	assert.False(t, m.Matches(0), "required bit missing")
	assert.False(t, m.Matches(1<<4|1<<6), "forbidden bit set")
}

func TestRulesetOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pxtype.keming")
	defer teardown()
	rules := Ruleset()
	assert.Equal(t, 12, len(rules), "6 base rules doubled by mirroring")
	assert.Equal(t, "_`_@___`__", rules[0].Left.String())
	// the first mirrored rule derives its left mask from the first base
	// rule's right mask, with each 2-column group reversed
	assert.Equal(t, "_`_`___@__", rules[6].Left.String())
	assert.Equal(t, "`_@___`___", rules[6].Right.String())
	assert.Equal(t, rules[2].BType, rules[8].YType)
}

func TestMirrorSymmetry(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pxtype.keming")
	defer teardown()
	all := shapes()
	for n, r := range baseRules {
		m := r.Mirror()
		assert.Equal(t, r.BType, m.BType)
		assert.Equal(t, r.YType, m.YType)
		for _, s := range all {
			if r.Left.Matches(s) != m.Right.Matches(mirrorShape(s)) {
				t.Fatalf("rule %d: left mask and mirrored right mask disagree on shape %#x", n, s)
			}
			if r.Right.Matches(s) != m.Left.Matches(mirrorShape(s)) {
				t.Fatalf("rule %d: right mask and mirrored left mask disagree on shape %#x", n, s)
			}
		}
	}
}

func kernGlyph(cp sheet.CodePoint, mask uint32, ytype bool) *glyph.Glyph {
	return &glyph.Glyph{
		Code: cp,
		Metrics: glyph.Metrics{
			Width:       5,
			WriteOnTop:  glyph.WriteOnTopNone,
			HasKernData: true,
			KernYType:   ytype,
			KerningMask: mask,
		},
	}
}

func TestGeneratePairs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pxtype.keming")
	defer teardown()
	b := glyph.NewBuilder()
	// shapes matching rule 0: left needs bit 4 set, bits 6 and 0 clear;
	// right needs bit 1 set, bits 7 and 5 clear
	b.Add(map[sheet.CodePoint]*glyph.Glyph{
		0x41: kernGlyph(0x41, 1<<4, false),
		0x56: kernGlyph(0x56, 1<<1, false),
		0x79: kernGlyph(0x79, 1<<1, true),
	})
	pairs := GeneratePairs(b.Table(false))

	assert.Equal(t, -2, pairs[Pair{Left: 0x41, Right: 0x56}])
	assert.Equal(t, -1, pairs[Pair{Left: 0x41, Right: 0x79}],
		"Y-type on either side selects the Y contraction")
	_, matched := pairs[Pair{Left: 0x56, Right: 0x41}]
	assert.False(t, matched, "rule 0 is not symmetric for these shapes")
}

func TestRDotPairs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pxtype.keming")
	defer teardown()
	b := glyph.NewBuilder()
	r := &glyph.Glyph{Code: 0x72, Metrics: glyph.Metrics{Width: 4, WriteOnTop: glyph.WriteOnTopNone}}
	dot := &glyph.Glyph{Code: 0x2E, Metrics: glyph.Metrics{Width: 1, WriteOnTop: glyph.WriteOnTopNone}}
	b.Add(map[sheet.CodePoint]*glyph.Glyph{0x72: r, 0x2E: dot})
	pairs := GeneratePairs(b.Table(false))

	assert.Equal(t, -1, pairs[Pair{Left: 0x72, Right: 0x2E}],
		"r before period kerns even without kern data")
	_, have := pairs[Pair{Left: 0x72, Right: 0x2C}]
	assert.False(t, have, "comma glyph is not in the table")
}

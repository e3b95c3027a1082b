package typeset

import (
	"hash/fnv"
	"math/rand"

	"github.com/emirpasic/gods/maps/treemap"

	"github.com/npillmayer/pxtype/core"
	"github.com/npillmayer/pxtype/engine/glyph"
	"github.com/npillmayer/pxtype/engine/sheet"
)

// Block is a positioned run of codepoints within a line. X and Y are pixel
// offsets from the line origin; Y is nonzero for stacked diacritics over
// low-height glyphs.
type Block struct {
	Text    []sheet.CodePoint
	Headers []sheet.CodePoint
	X, Y    int
}

// Line is an ordered list of blocks. Width is the rendered extent with
// hanging punctuation excluded.
type Line struct {
	Blocks []Block
	Width  int
}

// maxHyphenRetries bounds consecutive re-splits of one overflowing chain.
const maxHyphenRetries = 8

// trailing punctuation of these classes hangs past the margin by a fixed
// amount instead of counting towards the line width
const hangingPunctWidth = 2

func isHangable(cp sheet.CodePoint) bool {
	return cp == '.' || cp == ',' || cp == 0x3001 || cp == 0x3002
}

// fill is the greedy line builder: knots are consumed front to back, and when
// a box overflows the paper width the cheapest of widening, tightening and
// hyphenating decides where the line ends.
func (ts *Typesetter) fill(queue []Knot) ([]Line, error) {
	var lines []Line
	var cur []Knot
	curW := 0
	hyphenRetries := 0

	closeLine := func(knots []Knot, delta int, justify bool) {
		lines = append(lines, ts.finishLine(knots, delta, justify))
		cur, curW = nil, 0
	}

	for len(queue) > 0 {
		k := queue[0]
		queue = queue[1:]
		switch k.Type() {
		case KTBreak:
			closeLine(cur, 0, false)
			hyphenRetries = 0
			continue
		case KTGlue:
			if len(cur) == 0 {
				continue // lines do not start with glue
			}
			cur = append(cur, k)
			curW += k.W()
			continue
		}

		box := k.(*Box)
		if curW+box.Width <= ts.paperWidth {
			cur = append(cur, box)
			curW += box.Width
			hyphenRetries = 0
			continue
		}

		trimmed, trimmedW := trimTrailingGlue(cur, curW)
		glueW := stretchableGlue(trimmed)

		badW := infiniteBadness
		deltaW := ts.paperWidth - trimmedW
		if len(trimmed) > 0 {
			badW = widenBadness(deltaW, glueW)
		}

		deltaT := curW + box.Width - ts.paperWidth
		badT := tightenBadness(deltaT, stretchableGlue(cur)) + tightenBias

		badH := infiniteBadness
		var pre, post *Box
		if len(box.Text) >= ts.minHyphenLength() && !box.HyphenFinal &&
			hyphenRetries < maxHyphenRetries &&
			min2(badW, badT) >= tolerableBadness {
			if p, q, ok := ts.hyphenate(box, ts.paperWidth-curW); ok {
				pre, post = p, q
				deltaH := ts.paperWidth - (curW + pre.Width)
				if deltaH >= 0 {
					badH = widenBadness(deltaH, glueW)
				} else {
					badH = tightenBadness(-deltaH, stretchableGlue(cur))
				}
				badH += hyphenBias
			}
		}

		switch {
		case badW <= badT && badW <= badH:
			if badW == infiniteBadness {
				return nil, core.Error(core.EINVALID,
					"paragraph cannot be broken at %q", runString(box.Text))
			}
			closeLine(trimmed, deltaW, true)
			queue = pushFront(queue, box)
			hyphenRetries = 0

		case badT <= badH:
			line := append(cur, box)
			for len(queue) > 0 && queue[0].Type() == KTGlue {
				queue = queue[1:]
			}
			closeLine(line, -deltaT, true)
			hyphenRetries = 0

		default:
			line := append(cur, pre)
			deltaH := ts.paperWidth - (curW + pre.Width)
			closeLine(line, deltaH, true)
			queue = pushFront(queue, post)
			hyphenRetries++
		}
	}
	if len(cur) > 0 {
		closeLine(cur, 0, false)
	}
	return lines, nil
}

func min2(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func pushFront(queue []Knot, k Knot) []Knot {
	return append([]Knot{k}, queue...)
}

func trimTrailingGlue(knots []Knot, width int) ([]Knot, int) {
	n := len(knots)
	for n > 0 && knots[n-1].Type() == KTGlue {
		n--
		width -= knots[n].W()
	}
	return knots[:n], width
}

// stretchableGlue sums the widths of the line's adjustable glues.
func stretchableGlue(knots []Knot) int {
	sum := 0
	for _, k := range knots {
		if g, ok := k.(*Glue); ok && !g.Fixed {
			sum += g.Width
		}
	}
	return sum
}

func runString(text []sheet.CodePoint) string {
	runes := make([]rune, 0, len(text))
	for _, cp := range text {
		if cp <= 0x10FFFF {
			runes = append(runes, rune(cp))
		} else {
			runes = append(runes, rune(sheet.ReplacementGlyph))
		}
	}
	return string(runes)
}

// finishLine turns a knot list into a positioned Line. Justified lines
// distribute delta over their gaps; ragged-left and centred lines shift as a
// whole by the full or half shortfall.
func (ts *Typesetter) finishLine(knots []Knot, delta int, justify bool) Line {
	knots, width := trimTrailingGlue(knots, lineWidth(knots))
	hang := 0
	if cp, ok := lastVisible(knots); ok && isHangable(cp) {
		hang = hangingPunctWidth
	}

	var adjust map[int]int
	offset := 0
	switch ts.regs.A(P_ALIGNMENT) {
	case Justified:
		if justify {
			adjust = ts.distribute(knots, delta+hang)
		}
	case RaggedLeft:
		offset = ts.paperWidth - width + hang
	case Centred:
		offset = (ts.paperWidth - width + hang) / 2
	}
	if offset < 0 {
		offset = 0
	}

	var blocks []Block
	x := offset
	for i, k := range knots {
		switch k := k.(type) {
		case *Glue:
			x += k.Width + adjust[i]
		case *Box:
			blocks = append(blocks, ts.emitBox(k, x)...)
			x += k.Width
		}
	}
	return Line{Blocks: blocks, Width: x - offset - hang}
}

func lineWidth(knots []Knot) int {
	w := 0
	for _, k := range knots {
		w += k.W()
	}
	return w
}

func lastVisible(knots []Knot) (sheet.CodePoint, bool) {
	for i := len(knots) - 1; i >= 0; i-- {
		if b, ok := knots[i].(*Box); ok && len(b.Text) > 0 {
			return b.Text[len(b.Text)-1], true
		}
	}
	return 0, false
}

// Gap priorities. Gaps beside sentence-final punctuation absorb width changes
// first, then gaps beside quotes, then comma-class gaps, then everything
// else.
func gapClass(cp sheet.CodePoint) int {
	switch cp {
	case '.', ':', '!', '?', 0x2026:
		return 1
	case '"', '\'', 0x2018, 0x2019, 0x201C, 0x201D, 0xAB, 0xBB:
		return 2
	case ',', ';':
		return 3
	}
	return 255
}

func gapPriority(knots []Knot, i int) int {
	pr := 255
	if i > 0 {
		if b, ok := knots[i-1].(*Box); ok && len(b.Text) > 0 {
			if c := gapClass(b.Text[len(b.Text)-1]); c < pr {
				pr = c
			}
		}
	}
	if i < len(knots)-1 {
		if b, ok := knots[i+1].(*Box); ok && len(b.Text) > 0 {
			if c := gapClass(b.Text[0]); c < pr {
				pr = c
			}
		}
	}
	return pr
}

type gapState struct {
	idx   int
	width int
	adj   int
}

func (g *gapState) eligible(sign int) bool {
	if sign > 0 {
		return g.adj < 3*g.width+6
	}
	return -g.adj < g.width
}

// contentHash is a content hash over the line's boxes, mixed into the glue
// shuffle so identical neighbouring lines do not stretch identically.
func contentHash(knots []Knot) int64 {
	h := fnv.New32a()
	var buf [4]byte
	for _, k := range knots {
		b, ok := k.(*Box)
		if !ok {
			continue
		}
		for _, cp := range b.Text {
			buf[0] = byte(cp)
			buf[1] = byte(cp >> 8)
			buf[2] = byte(cp >> 16)
			buf[3] = byte(cp >> 24)
			h.Write(buf[:])
		}
	}
	return int64(h.Sum32())
}

// distribute spreads delta pixels over the line's gaps by repeated draws from
// the highest-priority eligible tier. Returns per-knot-index adjustments.
func (ts *Typesetter) distribute(knots []Knot, delta int) map[int]int {
	if delta == 0 {
		return nil
	}
	sign, remaining := 1, delta
	if delta < 0 {
		sign, remaining = -1, -delta
	}

	tiers := treemap.NewWithIntComparator()
	gapCount := 0
	for i, k := range knots {
		g, ok := k.(*Glue)
		if !ok || g.Fixed || i == 0 || i == len(knots)-1 {
			continue
		}
		pr := gapPriority(knots, i)
		gs := &gapState{idx: i, width: g.Width}
		if v, found := tiers.Get(pr); found {
			tiers.Put(pr, append(v.([]*gapState), gs))
		} else {
			tiers.Put(pr, []*gapState{gs})
		}
		gapCount++
	}
	if gapCount == 0 {
		return nil
	}

	rng := rand.New(rand.NewSource(ts.seed ^ contentHash(knots)))
	adjust := make(map[int]int, gapCount)
	for remaining > 0 {
		g := drawGap(tiers, rng, sign)
		if g == nil {
			break // every gap is saturated; leave the rest unallocated
		}
		g.adj += sign
		adjust[g.idx] += sign
		remaining--
	}
	return adjust
}

// drawGap picks a random eligible gap from the best-priority tier that still
// has one.
func drawGap(tiers *treemap.Map, rng *rand.Rand, sign int) *gapState {
	it := tiers.Iterator()
	for it.Next() {
		tier := it.Value().([]*gapState)
		eligible := tier[:0:0]
		for _, g := range tier {
			if g.eligible(sign) {
				eligible = append(eligible, g)
			}
		}
		if len(eligible) > 0 {
			return eligible[rng.Intn(len(eligible))]
		}
	}
	return nil
}

// diacritic type 1 is an overlay, every other type stacks above the glyph
const overlayDiacritic = 1

// emitBox positions the codepoints of a box. Diacritics become blocks of
// their own, overlaying the preceding glyph with a vertical shift when that
// glyph is low-height. Box headers attach to the first emitted block.
func (ts *Typesetter) emitBox(b *Box, x int) []Block {
	var blocks []Block
	var run []sheet.CodePoint
	runX := x
	penX := x
	prevX := x
	prevLow := false
	havePrev := false
	headersDone := false
	var prev sheet.CodePoint

	flushRun := func() {
		if len(run) == 0 {
			return
		}
		blk := Block{Text: run, X: runX}
		if !headersDone {
			blk.Headers = b.Headers
			headersDone = true
		}
		blocks = append(blocks, blk)
		run = nil
	}

	for _, cp := range b.Text {
		if cp == sheet.NBSP {
			flushRun()
			penX += 5
			havePrev = false
			continue
		}
		m, haveM := ts.table.Metrics(cp)
		if haveM && m.WriteOnTop != glyph.WriteOnTopNone {
			y := 0
			if prevLow {
				if m.WriteOnTop == overlayDiacritic {
					y = sheet.OverlayLowercaseShift
				} else {
					y = sheet.StackUpLowercaseShift
				}
			}
			blk := Block{Text: []sheet.CodePoint{cp}, X: prevX, Y: y}
			if !headersDone && len(run) == 0 {
				blk.Headers = b.Headers
				headersDone = true
			}
			blocks = append(blocks, blk)
			continue
		}
		adv, err := ts.table.AdvanceWidth(cp)
		if err != nil {
			adv = sheet.LatinWideWidth
		}
		if havePrev {
			penX += sheet.HGapVar
			if k, kerned := ts.kern[kernPair(prev, cp)]; kerned {
				penX += k
			}
		}
		if len(run) == 0 {
			runX = penX
		}
		run = append(run, cp)
		prevX = penX
		prevLow = haveM && m.LowHeight
		penX += adv
		prev = cp
		havePrev = true
	}
	flushRun()
	return blocks
}

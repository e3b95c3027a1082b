package typeset

import (
	"unicode"

	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/npillmayer/pxtype/core"
	"github.com/npillmayer/pxtype/engine/glyph"
	"github.com/npillmayer/pxtype/engine/keming"
	"github.com/npillmayer/pxtype/engine/sheet"
)

// KnotType discriminates the units of a tokenized paragraph.
type KnotType int8

const (
	KTBox KnotType = iota
	KTGlue
	KTBreak
)

// Knot is a unit of a tokenized paragraph: a box of visible glyphs, a glue,
// or a forced line break.
type Knot interface {
	Type() KnotType
	W() int
}

// Box is a non-breakable run of visible codepoints. Control headers carry the
// colour and charset state active at the start of the box; they re-attach to
// both fragments when the box is hyphenated.
type Box struct {
	Text        []sheet.CodePoint
	Headers     []sheet.CodePoint
	Width       int
	HyphenFinal bool // ends in a hyphen, soft or hard; never re-split there
}

func (b *Box) Type() KnotType { return KTBox }
func (b *Box) W() int         { return b.Width }

// Glue is stretchable inter-box spacing. Fixed glues keep their width during
// justification.
type Glue struct {
	Width    int
	Fixed    bool
	Priority uint8 // stretch priority of the gap, 1 is most eligible
}

func (g *Glue) Type() KnotType { return KTGlue }
func (g *Glue) W() int         { return g.Width }

// Break forces a line break.
type Break struct{}

func (br *Break) Type() KnotType { return KTBreak }
func (br *Break) W() int         { return 0 }

// glueWidth maps a whitespace codepoint to its glue width in pixels. The
// ordinary space is deliberately one pixel wider than the em-derived value.
func glueWidth(cp sheet.CodePoint) (int, bool) {
	switch cp {
	case ' ':
		return 5, true
	case sheet.NQSP, sheet.ENSP:
		return 7, true
	case sheet.MQSP, sheet.EMSP:
		return 13, true
	case sheet.ThreePerEmSP:
		return 5, true
	case sheet.QuarterEmSP:
		return 4, true
	case sheet.SixPerEmSP:
		return 3, true
	case sheet.FSP:
		return 9, true
	case sheet.PSP, sheet.THSP:
		return 2, true
	case sheet.HSP:
		return 1, true
	case sheet.ZWSP:
		return 0, true
	case sheet.IDSP:
		return 16, true
	}
	return 0, false
}

func isCJKIdeograph(cp sheet.CodePoint) bool {
	return (0x4E00 <= cp && cp <= 0x9FFF) ||
		(0x3400 <= cp && cp <= 0x4DBF) ||
		(0xF900 <= cp && cp <= 0xFAFF)
}

func isKana(cp sheet.CodePoint) bool {
	return 0x3041 <= cp && cp <= 0x30FF && cp != 0x3097 && cp != 0x3098
}

// small kana merge into the preceding kana box instead of starting one
func isSmallKana(cp sheet.CodePoint) bool {
	switch cp {
	case 0x3041, 0x3043, 0x3045, 0x3047, 0x3049, 0x3063, 0x3083, 0x3085,
		0x3087, 0x308E, 0x3095, 0x3096,
		0x30A1, 0x30A3, 0x30A5, 0x30A7, 0x30A9, 0x30C3, 0x30E3, 0x30E5,
		0x30E7, 0x30EE, 0x30F5, 0x30F6,
		0x30FC: // prolonged sound mark behaves like a small kana
		return true
	}
	return false
}

func isCJKOpenBracket(cp sheet.CodePoint) bool {
	switch cp {
	case 0x3008, 0x300A, 0x300C, 0x300E, 0x3010, 0x3014, 0x3016, 0x3018,
		0x301A, 0xFF08, 0xFF3B, 0xFF5B:
		return true
	}
	return false
}

func isCJKCloseBracket(cp sheet.CodePoint) bool {
	switch cp {
	case 0x3009, 0x300B, 0x300D, 0x300F, 0x3011, 0x3015, 0x3017, 0x3019,
		0x301B, 0xFF09, 0xFF3D, 0xFF5D:
		return true
	}
	return false
}

func isCJKPunct(cp sheet.CodePoint) bool {
	switch cp {
	case 0x3001, 0x3002, 0xFF0C, 0xFF0E, 0xFF1A, 0xFF1B, 0xFF01, 0xFF1F,
		0x30FB:
		return true
	}
	return false
}

func isThai(cp sheet.CodePoint) bool {
	return 0x0E01 <= cp && cp <= 0x0E5B
}

func isHangul(cp sheet.CodePoint) bool {
	return sheet.IsHangulSyllable(cp) || sheet.IsHangulCompat(cp) ||
		sheet.IsHangulChoseong(cp) || sheet.IsHangulJungseong(cp) ||
		sheet.IsHangulJongseong(cp)
}

func isDigit(cp sheet.CodePoint) bool {
	return '0' <= cp && cp <= '9'
}

func isHyphen(cp sheet.CodePoint) bool {
	return cp == '-' || cp == 0x2010 || cp == 0x2011
}

// symbol codepoints always start a box of their own
func isSymbol(cp sheet.CodePoint) bool {
	if cp > 0x10FFFF {
		return false
	}
	return unicode.IsSymbol(rune(cp))
}

func isLower(cp sheet.CodePoint) bool {
	if cp > 0x10FFFF {
		return false
	}
	return unicode.IsLower(rune(cp))
}

func isUpper(cp sheet.CodePoint) bool {
	if cp > 0x10FFFF {
		return false
	}
	return unicode.IsUpper(rune(cp))
}

// movableGlue decodes the internal glue-block codepoints into a glue width.
// Positive and negative magnitudes of 1 to 16 pixels are encoded directly,
// larger magnitudes arrive as chained full-glue tokens.
func movableGlue(cp sheet.CodePoint) (w int, fixed, ok bool) {
	switch {
	case sheet.MovableBlockP <= cp && cp < sheet.MovableBlockP+16:
		return int(cp-sheet.MovableBlockP) + 1, false, true
	case sheet.MovableBlockM <= cp && cp < sheet.MovableBlockM+16:
		return -(int(cp-sheet.MovableBlockM) + 1), false, true
	case sheet.FixedBlock <= cp && cp < sheet.FixedBlock+16:
		return int(cp-sheet.FixedBlock) + 1, true, true
	}
	return 0, false, false
}

// GlueCodePoints encodes a pixel amount as internal glue-block codepoints,
// the inverse of movableGlue. Magnitudes above 16 chain full-glue tokens.
func GlueCodePoints(px int) []sheet.CodePoint {
	if px == 0 {
		return []sheet.CodePoint{sheet.ZWSP}
	}
	block := sheet.MovableBlockP
	if px < 0 {
		block = sheet.MovableBlockM
		px = -px
	}
	var out []sheet.CodePoint
	for px > 16 {
		out = append(out, block+15)
		px -= 16
	}
	return append(out, block+sheet.CodePoint(px-1))
}

// tokenizer walks a codepoint sequence and cuts it into knots.
type tokenizer struct {
	ts       *Typesetter
	controls *arraystack.Stack // active colour/charset control codepoints
	charset  sheet.CodePoint   // active charset override
	knots    []Knot
	box      []sheet.CodePoint // visible content of the open box
	hyphenal bool
	err      error
}

func newTokenizer(ts *Typesetter) *tokenizer {
	return &tokenizer{
		ts:       ts,
		controls: arraystack.New(),
		charset:  sheet.CharsetOverrideDefault,
	}
}

// headers snapshots the active control codepoints, bottom of the nesting
// stack first.
func (tk *tokenizer) headers() []sheet.CodePoint {
	if tk.controls.Size() == 0 {
		return nil
	}
	values := tk.controls.Values() // top first
	hdrs := make([]sheet.CodePoint, 0, len(values))
	for i := len(values) - 1; i >= 0; i-- {
		hdrs = append(hdrs, values[i].(sheet.CodePoint))
	}
	return hdrs
}

// purgeColours removes stale colour headers from the nesting stack; charset
// overrides survive a colour reset.
func (tk *tokenizer) purgeColours() {
	values := tk.controls.Values()
	tk.controls.Clear()
	for i := len(values) - 1; i >= 0; i-- {
		cp := values[i].(sheet.CodePoint)
		if !sheet.IsColourCode(cp) {
			tk.controls.Push(cp)
		}
	}
}

func (tk *tokenizer) flushBox() {
	if len(tk.box) == 0 {
		return
	}
	b := &Box{
		Text:        tk.box,
		Headers:     tk.headers(),
		HyphenFinal: tk.hyphenal,
	}
	w, err := tk.ts.measure(b.Text)
	if err != nil && tk.err == nil {
		tk.err = err
	}
	b.Width = w
	tk.knots = append(tk.knots, b)
	tk.box = nil
	tk.hyphenal = false
}

func (tk *tokenizer) appendGlue(w int, fixed bool) {
	tk.flushBox()
	// consecutive glues merge, keeping the wider one breakable
	if n := len(tk.knots); n > 0 {
		if g, isGlue := tk.knots[n-1].(*Glue); isGlue && g.Fixed == fixed {
			g.Width += w
			return
		}
	}
	tk.knots = append(tk.knots, &Glue{Width: w, Fixed: fixed})
}

func (tk *tokenizer) lastBoxCP() (sheet.CodePoint, bool) {
	if len(tk.box) > 0 {
		return tk.box[len(tk.box)-1], true
	}
	return 0, false
}

// lastKnotBox returns the most recent closed box if no glue or break follows
// it yet.
func (tk *tokenizer) lastKnotBox() (*Box, bool) {
	if n := len(tk.knots); n > 0 {
		if b, ok := tk.knots[n-1].(*Box); ok {
			return b, true
		}
	}
	return nil, false
}

// tail is the last visible codepoint, whether its box is still open or
// already closed.
func (tk *tokenizer) tail() (sheet.CodePoint, bool) {
	if cp, open := tk.lastBoxCP(); open {
		return cp, true
	}
	if b, ok := tk.lastKnotBox(); ok && len(b.Text) > 0 {
		return b.Text[len(b.Text)-1], true
	}
	return 0, false
}

// Tokenize cuts a codepoint sequence into boxes, glues and breaks according
// to the script-aware word model. In strict mode a codepoint without metrics
// is an error.
func (ts *Typesetter) Tokenize(input []sheet.CodePoint) ([]Knot, error) {
	tk := newTokenizer(ts)
	for _, cp := range input {
		cp = sheet.TranslateCharset(tk.charset, cp)
		switch {
		case cp == '\n':
			tk.flushBox()
			tk.knots = append(tk.knots, &Break{})

		case cp == sheet.ColourClear:
			tk.flushBox()
			tk.purgeColours()
			tk.controls.Push(cp)

		case sheet.IsColourCode(cp):
			tk.flushBox()
			tk.controls.Push(cp)

		case sheet.IsCharsetOverride(cp):
			tk.flushBox()
			tk.charset = cp
			tk.controls.Push(cp)

		case cp == sheet.SHY:
			// soft hyphen: the box may break here, invisibly
			tk.hyphenal = true
			tk.flushBox()

		case cp == sheet.NBSP:
			// non-breaking: contributes spacing inside the box
			tk.box = append(tk.box, cp)

		case cp == sheet.ZWNJ || cp == sheet.ZWJ || cp == sheet.OBJ:
			// joiners and object replacements are invisible here

		default:
			if w, fixed, isGlue := movableGlue(cp); isGlue {
				tk.appendGlue(w, fixed)
				continue
			}
			if w, isSpace := glueWidth(cp); isSpace {
				tk.appendGlue(w, false)
				continue
			}
			tk.visible(cp)
		}
	}
	tk.flushBox()
	return tk.knots, tk.err
}

// visible handles a single visible codepoint, deciding whether it continues
// the open box or forces a new one.
func (tk *tokenizer) visible(cp sheet.CodePoint) {
	last, adjacent := tk.tail()
	switch {
	case isCJKIdeograph(cp):
		// ideographs are one-codepoint boxes separated by zero glue
		if adjacent {
			tk.appendGlue(0, false)
		}
		tk.box = append(tk.box, cp)
		tk.flushBox()
		return

	case isSmallKana(cp) && adjacent && (isKana(last) || isCJKIdeograph(last)):
		// a small kana merges into the preceding kana box, reopening it
		// when it is already closed
		if len(tk.box) == 0 {
			if b, ok := tk.lastKnotBox(); ok {
				tk.knots = tk.knots[:len(tk.knots)-1]
				tk.box = b.Text
			}
		}
		tk.box = append(tk.box, cp)
		tk.flushBox()
		return

	case isKana(cp):
		if adjacent {
			tk.appendGlue(0, false)
		}
		tk.box = append(tk.box, cp)
		tk.flushBox()
		return

	case isCJKOpenBracket(cp):
		if adjacent {
			tk.appendGlue(0, false)
		}
		tk.box = append(tk.box, cp)
		return

	case isCJKCloseBracket(cp) || isCJKPunct(cp):
		tk.box = append(tk.box, cp)
		tk.appendGlue(0, false)
		return

	case isHangul(cp):
		// Hangul continues a Hangul box, otherwise starts fresh
		if len(tk.box) > 0 && !isHangul(last) {
			tk.flushBox()
		}
		tk.box = append(tk.box, cp)
		return

	case isDigit(cp):
		// numeric runs break from CJK neighbours with a zero glue
		if adjacent && (isCJKIdeograph(last) || isKana(last)) {
			tk.appendGlue(0, false)
		}
		tk.box = append(tk.box, cp)
		return

	case isThai(cp):
		if len(tk.box) > 0 && !isThai(last) {
			tk.flushBox()
		}
		tk.box = append(tk.box, cp)
		return

	case isSymbol(cp):
		tk.flushBox()
		tk.box = append(tk.box, cp)
		tk.flushBox()
		return

	case isHyphen(cp):
		tk.box = append(tk.box, cp)
		tk.hyphenal = true
		tk.flushBox()
		return
	}

	// camelCase boundary breaks the box before the uppercase letter
	if len(tk.box) > 0 && isLower(last) && isUpper(cp) {
		tk.flushBox()
	} else if adjacent && (isCJKIdeograph(last) || isKana(last)) {
		tk.appendGlue(0, false)
	}
	tk.box = append(tk.box, cp)
}

// measure computes the rendered width of a codepoint run: advance widths,
// inter-glyph gaps and kerning. Diacritics and control codes do not advance
// the pen.
func (ts *Typesetter) measure(text []sheet.CodePoint) (int, error) {
	width := 0
	var prev sheet.CodePoint
	havePrev := false
	for _, cp := range text {
		if cp == sheet.NBSP {
			width += 5
			havePrev = false
			continue
		}
		m, ok := ts.table.Metrics(cp)
		if ok && m.WriteOnTop != glyph.WriteOnTopNone {
			continue // overlays the previous glyph
		}
		if !ok && ts.strict {
			return 0, core.Error(core.EMISSING, "no glyph metrics for U+%05X", uint32(cp))
		}
		adv, err := ts.table.AdvanceWidth(cp)
		if err != nil {
			return 0, err
		}
		if havePrev {
			width += sheet.HGapVar
			if k, kerned := ts.kern[keming.Pair{Left: prev, Right: cp}]; kerned {
				width += k
			}
		}
		width += adv
		prev = cp
		havePrev = true
	}
	return width, nil
}

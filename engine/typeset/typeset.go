package typeset

import (
	"time"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/npillmayer/pxtype/core"
	"github.com/npillmayer/pxtype/engine/glyph"
	"github.com/npillmayer/pxtype/engine/keming"
	"github.com/npillmayer/pxtype/engine/sheet"
)

// MinPaperWidth is the narrowest paper the engine will typeset. Narrower
// paper is a construction error, never a silent clamp.
const MinPaperWidth = 100

// Typesetter breaks paragraphs into lines over an immutable glyph table and
// kerning-pair map. All per-paragraph state is method-local, so one
// Typesetter may serve concurrent callers.
type Typesetter struct {
	table      *glyph.Table
	kern       map[keming.Pair]int
	regs       *TypesettingRegisters
	paperWidth int
	seed       int64
	strict     bool
}

// New creates a typesetter. If regs is nil, default registers apply.
func New(table *glyph.Table, kern map[keming.Pair]int, regs *TypesettingRegisters) (*Typesetter, error) {
	if table == nil {
		return nil, core.Error(core.EINVALID, "no glyph table")
	}
	if regs == nil {
		regs = NewTypesettingRegisters()
	}
	paper := regs.N(P_PAPERWIDTH)
	if paper < MinPaperWidth {
		return nil, core.Error(core.EINVALID,
			"paper width %d is below the minimum of %d", paper, MinPaperWidth)
	}
	seed := regs.Get(P_RANDOMSEED).(int64)
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Typesetter{
		table:      table,
		kern:       kern,
		regs:       regs,
		paperWidth: paper,
		seed:       seed,
		strict:     table.Strict() || regs.N(P_STRICTMODE) != 0,
	}, nil
}

// TypesetParagraph tokenizes and breaks one paragraph of codepoints into
// positioned lines.
func (ts *Typesetter) TypesetParagraph(input []sheet.CodePoint) ([]Line, error) {
	knots, err := ts.Tokenize(input)
	if err != nil {
		return nil, err
	}
	lines, err := ts.fill(knots)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("typeset %d codepoints into %d lines", len(input), len(lines))
	return lines, nil
}

// TypesetString typesets a Go string, normalizing it first.
func (ts *Typesetter) TypesetString(text string) ([]Line, error) {
	return ts.TypesetParagraph(NormalizeString(text))
}

// NormalizeString converts a string into a codepoint sequence: NFC
// composition first, with malformed input mapped to the replacement glyph
// instead of failing.
func NormalizeString(text string) []sheet.CodePoint {
	text = norm.NFC.String(text)
	out := make([]sheet.CodePoint, 0, len(text))
	for _, r := range text {
		if r == utf8.RuneError {
			out = append(out, sheet.ReplacementGlyph)
			continue
		}
		out = append(out, sheet.CodePoint(r))
	}
	return out
}

func kernPair(left, right sheet.CodePoint) keming.Pair {
	return keming.Pair{Left: left, Right: right}
}

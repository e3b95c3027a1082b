package typeset

import (
	"github.com/npillmayer/pxtype/engine/sheet"
)

// vowelRunes spans the scripts the vowel-boundary heuristic understands:
// Latin (with the common accented forms), Greek, Cyrillic, Armenian and
// Georgian.
const vowelRunes = "aeiouyAEIOUY" +
	"àáâãäåæèéêëìíîïòóôõöøùúûüýÿ" +
	"ÀÁÂÃÄÅÆÈÉÊËÌÍÎÏÒÓÔÕÖØÙÚÛÜÝ" +
	"αεηιουωάέήίόύώΑΕΗΙΟΥΩΆΈΉΊΌΎΏ" +
	"аеёиоуыэюяАЕЁИОУЫЭЮЯіїєІЇЄ" +
	"աեէըիոօւԱԵԷԸԻՈՕՒ" +
	"აეიოუ"

var vowels = func() map[sheet.CodePoint]struct{} {
	m := make(map[sheet.CodePoint]struct{})
	for _, r := range vowelRunes {
		m[sheet.CodePoint(r)] = struct{}{}
	}
	return m
}()

func isVowel(cp sheet.CodePoint) bool {
	_, ok := vowels[cp]
	return ok
}

// splitPoint is a candidate hyphenation cut: the box breaks before Text[at].
// Hangul splits stay invisible, Latin-style splits insert a hyphen glyph.
type splitPoint struct {
	at      int
	visible bool
}

// splitCandidates lists the legal cut points of a box: vowel boundaries for
// alphabetic scripts, syllable starts for Hangul. Both fragments must keep at
// least two codepoints.
func splitCandidates(text []sheet.CodePoint) []splitPoint {
	var cands []splitPoint
	for at := 2; at <= len(text)-2; at++ {
		prev, cur := text[at-1], text[at]
		if isHangul(prev) && isHangul(cur) {
			cands = append(cands, splitPoint{at: at})
			continue
		}
		if isVowel(prev) != isVowel(cur) {
			cands = append(cands, splitPoint{at: at, visible: true})
		}
	}
	return cands
}

// hyphenate cuts a box at the candidate whose rendered prefix, hyphen glyph
// included, comes closest to the target width. Control headers re-attach to
// both fragments. Returns false when the box has no legal cut.
func (ts *Typesetter) hyphenate(b *Box, target int) (pre, post *Box, ok bool) {
	cands := splitCandidates(b.Text)
	if len(cands) == 0 {
		return nil, nil, false
	}
	hyphen := sheet.CodePoint(ts.regs.N(P_HYPHENCHAR))
	best := -1
	bestDist := 0
	var bestText []sheet.CodePoint
	for n, c := range cands {
		prefix := b.Text[:c.at]
		if c.visible {
			prefix = append(append([]sheet.CodePoint{}, prefix...), hyphen)
		}
		w, err := ts.measure(prefix)
		if err != nil {
			continue
		}
		dist := w - target
		if dist < 0 {
			dist = -dist
		}
		if best < 0 || dist < bestDist {
			best, bestDist, bestText = n, dist, prefix
		}
	}
	if best < 0 {
		return nil, nil, false
	}
	cut := cands[best]
	pre = &Box{Text: bestText, Headers: b.Headers, HyphenFinal: true}
	pre.Width, _ = ts.measure(pre.Text)
	post = &Box{
		Text:        append([]sheet.CodePoint{}, b.Text[cut.at:]...),
		Headers:     b.Headers,
		HyphenFinal: b.HyphenFinal,
	}
	post.Width, _ = ts.measure(post.Text)
	tracer().Debugf("hyphenated box at %d, prefix width %d (target %d)",
		cut.at, pre.Width, target)
	return pre, post, true
}

// minHyphenLength is the smallest visible glyph count a box needs before the
// hyphenator will touch it. Wider paper affords longer fragments.
func (ts *Typesetter) minHyphenLength() int {
	if n := ts.regs.N(P_MINHYPHENLENGTH); n > 0 {
		return n
	}
	switch {
	case ts.paperWidth < 200:
		return 3
	case ts.paperWidth < 400:
		return 4
	}
	return 5
}

package keming

import (
	"github.com/npillmayer/pxtype/engine/glyph"
	"github.com/npillmayer/pxtype/engine/sheet"
)

// Mask matches one side of a kerning rule against a glyph's shape bits. It is
// compiled from a 10-character template: '@' requires the bit to be set, '`'
// requires it to be unset, any other character is a don't-care. Template
// positions are written in a legible column order and mapped onto the actual
// bit layout through sheet.KemingBitMask.
type Mask struct {
	template string
	careBits uint32
	ruleBits uint32
}

// CompileMask parses a rule template into its matcher bits.
func CompileMask(template string) Mask {
	m := Mask{template: template}
	for i, c := range template {
		switch c {
		case '@':
			m.careBits |= sheet.KemingBitMask[i]
			m.ruleBits |= sheet.KemingBitMask[i]
		case '`':
			m.careBits |= sheet.KemingBitMask[i]
		}
	}
	return m
}

// Matches tests a glyph shape value against the mask.
func (m Mask) Matches(shape uint32) bool {
	return shape&m.careBits == m.ruleBits
}

func (m Mask) String() string {
	return m.template
}

// Rule pairs a left and a right shape mask with the contraction to apply when
// both match. YType is used when either glyph of the pair is flagged Y-type,
// BType otherwise.
type Rule struct {
	Left  Mask
	Right Mask
	BType int
	YType int
}

func rule(left, right string, contractions ...int) Rule {
	r := Rule{Left: CompileMask(left), Right: CompileMask(right), BType: 2, YType: 1}
	if len(contractions) == 2 {
		r.BType = contractions[0]
		r.YType = contractions[1]
	}
	return r
}

// Mirror generates the left-right mirror of a rule: the sides swap, and within
// each 2-character group of the template the characters swap places. A rule
// for "letter before period" thus yields "period before letter" for free.
func (r Rule) Mirror() Rule {
	return Rule{
		Left:  CompileMask(mirrorTemplate(r.Right.template)),
		Right: CompileMask(mirrorTemplate(r.Left.template)),
		BType: r.BType,
		YType: r.YType,
	}
}

func mirrorTemplate(template string) string {
	mirrored := make([]byte, len(template))
	for i := 0; i < len(template); i += 2 {
		mirrored[i] = template[i+1]
		mirrored[i+1] = template[i]
	}
	return string(mirrored)
}

// baseRules is the hand-authored half of the rule table. Ruleset returns it
// doubled with the mirrored rules appended, preserving declaration order.
var baseRules = []Rule{
	rule("_`_@___`__", "`_`___@___"),
	rule("_@_`___`__", "`_________"),
	rule("_@_@___`__", "`___@_@___", 1, 1),
	rule("_@_@_`_`__", "`_____@___"),
	rule("___`_`____", "`___@_`___"),
	rule("___`_`____", "`_@___`___"),
}

// Ruleset returns the full ordered rule table, base rules first, their
// mirrors after.
func Ruleset() []Rule {
	rules := make([]Rule, 0, 2*len(baseRules))
	rules = append(rules, baseRules...)
	for _, r := range baseRules {
		rules = append(rules, r.Mirror())
	}
	return rules
}

// Pair is an ordered glyph pair.
type Pair struct {
	Left  sheet.CodePoint
	Right sheet.CodePoint
}

// GeneratePairs matches every ordered pair of kernable glyphs against the rule
// table and returns the resulting kerning offsets in pixels. Offsets are
// always negative. Rules are tried in order and the first match wins; a
// contraction of 0 emits no pair. Lowercase r variants followed by a comma or
// period additionally kern by a flat -1, independent of the mask rules.
func GeneratePairs(table *glyph.Table) map[Pair]int {
	pairs := make(map[Pair]int)
	for _, r := range sheet.LowercaseRs {
		for _, d := range sheet.Dots {
			_, haveR := table.Glyph(r)
			_, haveD := table.Glyph(d)
			if haveR && haveD {
				pairs[Pair{Left: r, Right: d}] = -1
			}
		}
	}
	rdots := len(pairs)

	rules := Ruleset()
	kernable := table.Kernable()
	for _, left := range kernable {
		for _, right := range kernable {
			for _, r := range rules {
				if !r.Left.Matches(left.Metrics.KerningMask) ||
					!r.Right.Matches(right.Metrics.KerningMask) {
					continue
				}
				contraction := r.BType
				if left.Metrics.KernYType || right.Metrics.KernYType {
					contraction = r.YType
				}
				if contraction > 0 {
					pairs[Pair{Left: left.Code, Right: right.Code}] = -contraction
				}
				break
			}
		}
	}
	tracer().Infof("generated %d kerning pairs (%d of them r-dot pairs)",
		len(pairs), rdots)
	return pairs
}

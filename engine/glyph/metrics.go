package glyph

import (
	"fmt"

	"github.com/npillmayer/pxtype/engine/sheet"
)

// Align selects how a glyph sits within its advance.
type Align uint8

// Alignment values, as stored in the 2-bit tag field.
const (
	AlignLeft Align = iota
	AlignRight
	AlignCentre
	AlignBefore
)

// Stack selects how a glyph stacks relative to its base glyph.
type Stack uint8

// Stacking values. StackDont is not encodable in the 2-bit tag field; it is
// signalled by a reserved sentinel word instead.
const (
	StackUp Stack = iota
	StackDown
	StackBeforeAndAfter
	StackUpAndDown
	StackDont
)

// Directive opcodes.
const (
	OpcodeNoOp           = 0x00
	OpcodeReplaceWithLo  = 0x80 // operand count = opcode - 0x80
	OpcodeReplaceWithHi  = 0x87
	OpcodeIllegal        = 0xFF
)

// WriteOnTopNone marks a glyph that advances the pen normally.
const WriteOnTopNone = -1

// Anchor is a diacritics anchor point within a glyph cell.
type Anchor struct {
	X, Y         int
	XUsed, YUsed bool
}

// Metrics is the per-codepoint metadata record decoded from a tag column.
// Metrics values are immutable once a Table is built.
type Metrics struct {
	Width       int
	LowHeight   bool
	NudgeX      int8
	NudgeY      int8
	Anchors     [3]Anchor // by diacritic type 0..2
	AlignWhere  Align
	WriteOnTop  int // diacritic type, or WriteOnTopNone
	StackWhere  Stack
	ExtInfo     []int32
	HasKernData bool
	KernYType   bool
	KerningMask uint32
	Opcode      uint8
	Arg1, Arg2  uint8
}

// defaultMetrics is the pre-decode state of a record; the kerning mask
// defaults to 255 for glyphs without kern data.
func defaultMetrics() Metrics {
	return Metrics{
		WriteOnTop:  WriteOnTopNone,
		KerningMask: 255,
	}
}

// IsIllegal reports whether the glyph carries the reserved illegal opcode.
// Its presence marks an invalid source combination and must never be ignored
// silently; callers decide whether it is fatal.
func (m Metrics) IsIllegal() bool {
	return m.Opcode == OpcodeIllegal
}

// IsReplaceWith reports whether the glyph requests substitution by up to 7
// sub-characters.
func (m Metrics) IsReplaceWith() bool {
	return OpcodeReplaceWithLo <= m.Opcode && m.Opcode <= OpcodeReplaceWithHi
}

// ReplaceWith returns the sub-character codepoints of a replacewith glyph.
func (m Metrics) ReplaceWith() []sheet.CodePoint {
	if !m.IsReplaceWith() {
		return nil
	}
	n := int(m.Opcode - OpcodeReplaceWithLo)
	if n > len(m.ExtInfo) {
		n = len(m.ExtInfo)
	}
	cps := make([]sheet.CodePoint, n)
	for i := 0; i < n; i++ {
		cps[i] = sheet.CodePoint(m.ExtInfo[i])
	}
	return cps
}

// RequiredExtInfoCount is the number of extra cell columns holding auxiliary
// payload. It is a pure function of the stacking field and the directive and
// is always 0, 2 or 7.
func (m Metrics) RequiredExtInfoCount() int {
	if m.StackWhere == StackBeforeAndAfter {
		return 2
	}
	if m.IsReplaceWith() {
		return 7
	}
	return 0
}

func (m Metrics) String() string {
	return fmt.Sprintf("(w=%d low=%v kern=%v mask=%06x op=%02x)",
		m.Width, m.LowHeight, m.HasKernData, m.KerningMask, m.Opcode)
}

// Glyph couples a codepoint with its metrics and 1-bit bitmap.
type Glyph struct {
	Code    sheet.CodePoint
	Metrics Metrics
	Bitmap  Bitmap
}

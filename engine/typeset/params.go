/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>

*/
package typeset

// Alignment selects how a line's leftover width is distributed.
type Alignment int

//go:generate stringer -type=Alignment
const (
	Justified Alignment = iota
	RaggedRight
	RaggedLeft
	Centred
)

type TypesettingParameter int

//go:generate stringer -type=TypesettingParameter
const (
	none TypesettingParameter = iota
	P_LANGUAGE
	P_ALIGNMENT
	P_PAPERWIDTH
	P_HYPHENCHAR
	P_MINHYPHENLENGTH
	P_STRICTMODE
	P_RANDOMSEED
	P_STOPPER
)

// ParameterGroup is one level of scoped parameter settings.
type ParameterGroup struct {
	params map[TypesettingParameter]interface{}
	level  int
	next   *ParameterGroup
}

// TypesettingRegisters holds the parameters steering a typesetting run.
// Settings may be grouped: Begingroup opens a scope, Endgroup discards every
// setting pushed inside it.
type TypesettingRegisters struct {
	base       [P_STOPPER]interface{}
	groups     *ParameterGroup
	grouplevel int
}

func NewTypesettingRegisters() *TypesettingRegisters {
	regs := &TypesettingRegisters{}
	initParameters(&regs.base)
	return regs
}

func initParameters(p *[P_STOPPER]interface{}) {
	p[P_LANGUAGE] = "en_EN"        // a string
	p[P_ALIGNMENT] = Justified     //
	p[P_PAPERWIDTH] = 480          // pixels
	p[P_HYPHENCHAR] = int('-')     // a rune
	p[P_MINHYPHENLENGTH] = 0       // 0 = derive from paper width
	p[P_STRICTMODE] = 0            // 1 = fail on missing metrics
	p[P_RANDOMSEED] = int64(0)     // 0 = non-deterministic glue shuffling
}

func (regs *TypesettingRegisters) Begingroup() {
	regs.grouplevel++
}

func (regs *TypesettingRegisters) Endgroup() {
	if regs.grouplevel > 0 {
		if regs.groups != nil && regs.groups.level == regs.grouplevel {
			regs.groups = regs.groups.next
		}
		regs.grouplevel--
	}
}

func (regs *TypesettingRegisters) Push(key TypesettingParameter, value interface{}) {
	if regs.grouplevel > 0 {
		var g *ParameterGroup
		if regs.groups == nil || regs.groups.level < regs.grouplevel {
			g = &ParameterGroup{}
			g.params = make(map[TypesettingParameter]interface{})
			g.level = regs.grouplevel
			g.next = regs.groups
			regs.groups = g
		} else {
			g = regs.groups
		}
		g.params[key] = value
	} else {
		regs.base[key] = value
	}
}

func (regs *TypesettingRegisters) Get(key TypesettingParameter) interface{} {
	if key <= 0 || key == P_STOPPER {
		panic("parameter key outside range of typesetting parameters")
	}
	var value interface{}
	if regs.grouplevel > 0 {
		for g := regs.groups; g != nil; g = g.next {
			value = g.params[key]
			if value != nil {
				break
			}
		}
	}
	if value == nil {
		value = regs.base[key]
	}
	return value
}

func (regs *TypesettingRegisters) S(key TypesettingParameter) string {
	return regs.Get(key).(string)
}

func (regs *TypesettingRegisters) N(key TypesettingParameter) int {
	return regs.Get(key).(int)
}

func (regs *TypesettingRegisters) A(key TypesettingParameter) Alignment {
	return regs.Get(key).(Alignment)
}

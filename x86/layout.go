// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

import (
	"fmt"
)

// Layout splits the encoding of an
// instruction into its parts.
type Layout struct {
	// Legacy holds the prefix bytes before
	// the effective REX prefix, in order.
	// A REX prefix that was followed by a
	// legacy prefix has no effect, but is
	// kept here in its place.
	Legacy []Prefix

	// REX is the effective REX prefix, or
	// zero.
	REX REX

	// Envelope holds the VEX, XOP, EVEX,
	// or MVEX prefix, including its
	// leading byte.
	Envelope []byte

	// Opcode holds the opcode, including
	// any escape bytes.
	Opcode []byte

	ModRM    ModRM
	HasModRM bool
	SIB      SIB
	HasSIB   bool

	Constants ConstantOffsets

	// Suffix holds any bytes after the
	// ModR/M byte and the constants, such
	// as a 3DNow! opcode or the is4 byte
	// naming a register.
	Suffix []byte
}

// Layout returns the layout of instr,
// which must be the instruction most
// recently decoded by d. Layout returns
// nil if instr is invalid.
func (d *Decoder) Layout(instr *Instruction) *Layout {
	if instr.IsInvalid() {
		return nil
	}

	start := d.Position() - instr.Length()
	code := d.data[start : start+instr.Length()]

	l := &Layout{
		Constants: d.ConstantOffsets(instr),
	}

	prefixEnd := int(d.state.prefixEnd)
	legacy := code[:prefixEnd]
	if d.state.rex != 0 {
		l.REX = REX(d.state.rex)
		legacy = legacy[:len(legacy)-1]
	}

	for _, b := range legacy {
		l.Legacy = append(l.Legacy, Prefix(b))
	}

	opcodeStart := int(d.state.opcodeStart)
	if opcodeStart > prefixEnd {
		l.Envelope = code[prefixEnd:opcodeStart]
	}

	opcodeEnd := len(code)
	if d.state.modrmEnd != 0 {
		end := int(d.state.modrmEnd)
		opcodeEnd = end - 1
		l.ModRM = ModRM(code[end-1])
		l.HasModRM = true
		if hasMemoryOperand(instr) && d.state.addressSize != size16 && l.ModRM.Mod() != 3 && l.ModRM.RM() == ModRMrmSIB && end < len(code) {
			l.SIB = SIB(code[end])
			l.HasSIB = true
			end++
		}

		c := l.Constants
		if c.HasDisplacement() {
			end = max(end, int(c.DisplacementOffset+c.DisplacementSize))
		}

		if c.HasImmediate() {
			end = max(end, int(c.ImmediateOffset+c.ImmediateSize))
		}

		if c.HasImmediate2() {
			end = max(end, int(c.ImmediateOffset2+c.ImmediateSize2))
		}

		if end < len(code) {
			l.Suffix = code[end:]
		}
	} else {
		switch {
		case l.Constants.HasDisplacement():
			opcodeEnd = int(l.Constants.DisplacementOffset)
		case l.Constants.HasImmediate():
			opcodeEnd = int(l.Constants.ImmediateOffset)
		}
	}

	l.Opcode = code[opcodeStart:opcodeEnd]

	return l
}

func hasMemoryOperand(instr *Instruction) bool {
	for n := 0; n < instr.OpCount(); n++ {
		if instr.OpKind(n) == OpKindMemory {
			return true
		}
	}

	return false
}

// Describe returns one line for each part
// of the layout, decoding the prefix and
// ModR/M fields.
func (l *Layout) Describe() []string {
	var out []string
	for _, p := range l.Legacy {
		if r := REX(p); r.On() {
			out = append(out, fmt.Sprintf("rex      %02x (ignored)", byte(p)))
			continue
		}

		out = append(out, fmt.Sprintf("prefix   %02x %s", byte(p), p))
	}

	if l.REX != 0 {
		out = append(out, fmt.Sprintf("rex      %02x %s", byte(l.REX), l.REX))
	}

	if len(l.Envelope) > 0 {
		out = append(out, l.describeEnvelope())
	}

	out = append(out, fmt.Sprintf("opcode   % x", l.Opcode))
	if l.HasModRM {
		out = append(out, fmt.Sprintf("modrm    %02x %s", byte(l.ModRM), l.ModRM))
	}

	if l.HasSIB {
		out = append(out, fmt.Sprintf("sib      %02x %s", byte(l.SIB), l.SIB))
	}

	c := l.Constants
	if c.HasDisplacement() {
		out = append(out, fmt.Sprintf("displ    offset %d, size %d", c.DisplacementOffset, c.DisplacementSize))
	}

	if c.HasImmediate() {
		out = append(out, fmt.Sprintf("imm      offset %d, size %d", c.ImmediateOffset, c.ImmediateSize))
	}

	if c.HasImmediate2() {
		out = append(out, fmt.Sprintf("imm2     offset %d, size %d", c.ImmediateOffset2, c.ImmediateSize2))
	}

	if len(l.Suffix) > 0 {
		name := "suffix"
		if len(l.Envelope) > 0 {
			name = "is4"
		}

		out = append(out, fmt.Sprintf("%-8s % x", name, l.Suffix))
	}

	return out
}

func (l *Layout) describeEnvelope() string {
	e := l.Envelope
	switch {
	case e[0] == 0xc5 && len(e) == 2:
		return fmt.Sprintf("vex2     % x %s", e, VEX2(e[1]))
	case (e[0] == 0xc4 || e[0] == 0x8f) && len(e) == 3:
		name := "vex3"
		if e[0] == 0x8f {
			name = "xop "
		}

		return fmt.Sprintf("%s     % x %s", name, e, VEX{e[1], e[2]})
	case e[0] == 0x62 && len(e) == 4:
		p := EVEX{e[1], e[2], e[3]}
		if p.On() {
			return fmt.Sprintf("evex     % x %s", e, p)
		}

		return fmt.Sprintf("mvex     % x {EH: %b, sss: %03b, aaa: %03b}", e, b2i(p.EH()), p.SSS(), p.AAA())
	}

	return fmt.Sprintf("envelope % x", e)
}

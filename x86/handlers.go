// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

// handler decodes the rest of an instruction
// once its opcode byte is known.
//
// If hasModRM is set, the ModR/M byte is read
// before decode is called. Handlers that
// select between other handlers call the
// selected handler's decode directly, as the
// ModR/M byte has already been read.
type handler struct {
	decode   func(d *Decoder, instr *Instruction)
	hasModRM bool
}

// handlerFlags describe how a handler treats
// the LOCK, XACQUIRE, and XRELEASE prefixes.
type handlerFlags uint8

const (
	hfXacquire handlerFlags = 1 << iota
	hfXrelease

	// hfXacquireReleaseNoLock allows the
	// hints without a LOCK prefix, as MOV
	// and XCHG do.
	hfXacquireReleaseNoLock

	// hfLock allows a LOCK prefix when the
	// destination is in memory.
	hfLock

	hfXacquireRelease = hfXacquire | hfXrelease
)

// legacyHandlerFlags record which handlers
// of a mandatory prefix table keep their
// prefix rather than clearing it.
type legacyHandlerFlags uint8

const (
	lhfReg legacyHandlerFlags = 1 << iota
	lhfMem
	lhf66Reg
	lhf66Mem
	lhfF3Reg
	lhfF3Mem
	lhfF2Reg
	lhfF2Mem
)

var invalid = &handler{
	hasModRM: true,
	decode: func(d *Decoder, instr *Instruction) {
		d.setInvalid()
	},
}

var invalidNoModRM = &handler{
	decode: func(d *Decoder, instr *Instruction) {
		d.setInvalid()
	},
}

// lockable finishes a memory destination
// that may take a LOCK, XACQUIRE, or XRELEASE
// prefix.
func (d *Decoder) lockable(instr *Instruction, flags handlerFlags) {
	d.allowLock(flags)
	if flags&hfXacquireRelease != 0 {
		d.setXacquireRelease(instr, flags)
	}
}

func newGroup(handlers [8]*handler) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			handlers[d.state.reg].decode(d, instr)
		},
	}
}

// newGroup8x8 selects by the reg field, using
// separate tables for register and memory
// forms.
func newGroup8x8(low, high [8]*handler) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			if d.state.mod == 3 {
				high[d.state.reg].decode(d, instr)
			} else {
				low[d.state.reg].decode(d, instr)
			}
		},
	}
}

// newGroup8x64 selects register forms by the
// whole of reg and rm, falling back to the
// low table where high has no entry.
func newGroup8x64(low [8]*handler, high [64]*handler) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			h := low[d.state.reg]
			if d.state.mod == 3 {
				if hi := high[d.state.modrm&0x3f]; hi != nil {
					h = hi
				}
			}

			h.decode(d, instr)
		},
	}
}

// newAnotherTable continues with the next
// opcode byte in table.
func newAnotherTable(table *[256]*handler) *handler {
	return &handler{
		decode: func(d *Decoder, instr *Instruction) {
			d.decodeTable(table, instr)
		},
	}
}

// newMandatoryPrefix selects by the last 66,
// F3, or F2 prefix, which then no longer acts
// as an ordinary prefix.
func newMandatoryPrefix(none, p66, pF3, pF2 *handler) *handler {
	handlers := [4]*handler{none, p66, pF3, pF2}
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			d.clearMandatoryPrefix(instr)
			handlers[d.state.mandatoryPrefix].decode(d, instr)
		},
	}
}

// newMandatoryPrefix3 is newMandatoryPrefix
// with separate register and memory forms,
// where flags names the forms that keep the
// prefix.
func newMandatoryPrefix3(reg, mem, reg66, mem66, regF3, memF3, regF2, memF2 *handler, flags legacyHandlerFlags) *handler {
	regs := [4]*handler{reg, reg66, regF3, regF2}
	mems := [4]*handler{mem, mem66, memF3, memF2}
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			p := d.state.mandatoryPrefix
			h := mems[p]
			keep := flags&(lhfMem<<(2*p)) != 0
			if d.state.mod == 3 {
				h = regs[p]
				keep = flags&(lhfReg<<(2*p)) != 0
			}
			if !keep {
				d.clearMandatoryPrefix(instr)
			}

			h.decode(d, instr)
		},
	}
}

func newMandatoryPrefixF3F2(normal, pF3, pF2 *handler) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			switch d.state.mandatoryPrefix {
			case prefixF3:
				d.clearMandatoryPrefixF3(instr)
				pF3.decode(d, instr)
			case prefixF2:
				d.clearMandatoryPrefixF2(instr)
				pF2.decode(d, instr)
			default:
				normal.decode(d, instr)
			}
		},
	}
}

// newMandatoryPrefixMaybeModRM is used where
// only some of the forms have a ModR/M byte.
func newMandatoryPrefixMaybeModRM(none, p66, pF3, pF2 *handler) *handler {
	handlers := [4]*handler{none, p66, pF3, pF2}
	return &handler{
		decode: func(d *Decoder, instr *Instruction) {
			d.clearMandatoryPrefix(instr)
			d.decodeHandler(handlers[d.state.mandatoryPrefix], instr)
		},
	}
}

// newMandatoryPrefix2 selects by the prefix
// encoded in a VEX, XOP, EVEX, or MVEX
// prefix.
func newMandatoryPrefix2(none, p66, pF3, pF2 *handler) *handler {
	handlers := [4]*handler{none, p66, pF3, pF2}
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			handlers[d.state.mandatoryPrefix].decode(d, instr)
		},
	}
}

func newMandatoryPrefix2NoModRM(none, p66, pF3, pF2 *handler) *handler {
	handlers := [4]*handler{none, p66, pF3, pF2}
	return &handler{
		decode: func(d *Decoder, instr *Instruction) {
			handlers[d.state.mandatoryPrefix].decode(d, instr)
		},
	}
}

func newVectorLengthVEX(l128, l256 *handler) *handler {
	handlers := [4]*handler{l128, l256, invalid, invalid}
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			handlers[d.state.vectorLength].decode(d, instr)
		},
	}
}

func newVectorLengthNoModRMVEX(l128, l256 *handler) *handler {
	handlers := [4]*handler{l128, l256, invalidNoModRM, invalidNoModRM}
	return &handler{
		decode: func(d *Decoder, instr *Instruction) {
			handlers[d.state.vectorLength].decode(d, instr)
		},
	}
}

// newVectorLengthEVEX selects by L'L. The
// fourth value is reserved.
func newVectorLengthEVEX(l128, l256, l512 *handler) *handler {
	handlers := [4]*handler{l128, l256, l512, invalid}
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			handlers[d.state.vectorLength].decode(d, instr)
		},
	}
}

// newVectorLengthEVEXer is used where EVEX.b
// on a register form selects embedded
// rounding, in which case L'L holds the
// rounding mode and the vector length is
// 512 bits.
func newVectorLengthEVEXer(l128, l256, l512 *handler) *handler {
	handlers := [4]*handler{l128, l256, l512, invalid}
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			vl := d.state.vectorLength
			if d.state.mod == 3 && d.state.flags&flagB != 0 {
				vl = vectorLength512
			}

			handlers[vl].decode(d, instr)
		},
	}
}

func newW(w0, w1 *handler) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			if d.state.flags&flagW != 0 {
				w1.decode(d, instr)
			} else {
				w0.decode(d, instr)
			}
		},
	}
}

func newRM(reg, mem *handler) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			if d.state.mod == 3 {
				reg.decode(d, instr)
			} else {
				mem.decode(d, instr)
			}
		},
	}
}

// newOptions uses alt instead of def when
// any of opts is set. Neither handler's
// ModR/M byte has been read.
func newOptions(def, alt *handler, opts DecoderOptions) *handler {
	return &handler{
		decode: func(d *Decoder, instr *Instruction) {
			if d.options&opts != 0 {
				d.decodeHandler(alt, instr)
			} else {
				d.decodeHandler(def, instr)
			}
		},
	}
}

// newOptionsModRM is newOptions for use where
// the ModR/M byte has already been read, such
// as inside a group.
func newOptionsModRM(def, alt *handler, opts DecoderOptions) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			if d.options&opts != 0 {
				alt.decode(d, instr)
			} else {
				def.decode(d, instr)
			}
		},
	}
}

// newBitnessModRM selects h64 in 64-bit mode
// and h16_32 otherwise, after the ModR/M byte
// has been read.
func newBitnessModRM(h16_32, h64 *handler) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			if d.is64 {
				h64.decode(d, instr)
			} else {
				h16_32.decode(d, instr)
			}
		},
	}
}

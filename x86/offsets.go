// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

// ConstantOffsets describes where the
// displacement and immediates of an
// instruction are stored in its encoding,
// so they can be checked for relocations
// or patched.
//
// Offsets are from the first byte of the
// instruction, including any prefixes.
type ConstantOffsets struct {
	DisplacementOffset uint8
	DisplacementSize   uint8
	ImmediateOffset    uint8
	ImmediateSize      uint8
	ImmediateOffset2   uint8
	ImmediateSize2     uint8
}

// HasDisplacement returns whether the
// instruction has a displacement.
func (c ConstantOffsets) HasDisplacement() bool { return c.DisplacementSize != 0 }

// HasImmediate returns whether the
// instruction has at least one immediate.
func (c ConstantOffsets) HasImmediate() bool { return c.ImmediateSize != 0 }

// HasImmediate2 returns whether the
// instruction has a second immediate, as
// ENTER and EXTRQ do.
func (c ConstantOffsets) HasImmediate2() bool { return c.ImmediateSize2 != 0 }

// ConstantOffsets returns the positions
// of the constants in instr, which must
// be the instruction most recently decoded
// by d.
func (d *Decoder) ConstantOffsets(instr *Instruction) ConstantOffsets {
	var c ConstantOffsets
	if size := instr.memDisplSize; size != 0 {
		c.DisplacementOffset = uint8(d.displIndex)
		c.DisplacementSize = size
		if size == 8 && d.state.flags&flagAddr64 == 0 {
			c.DisplacementSize = 4
		}
	}

	if d.state.flags&flagNoImm != 0 {
		return c
	}

	length := instr.length
	var extra uint8
	setImm := func(size uint8) {
		c.ImmediateOffset = length - extra - size
		c.ImmediateSize = size
	}

	// Immediates follow everything else, so
	// they are found from the end.
	for n := instr.OpCount() - 1; n >= 0; n-- {
		switch instr.opKinds[n] {
		case OpKindImmediate8, OpKindImmediate8to16, OpKindImmediate8to32, OpKindImmediate8to64:
			setImm(1)
			return c
		case OpKindImmediate16:
			setImm(2)
			return c
		case OpKindImmediate32, OpKindImmediate32to64:
			setImm(4)
			return c
		case OpKindImmediate64:
			setImm(8)
			return c
		case OpKindImmediate8_2nd:
			c.ImmediateOffset2 = length - 1
			c.ImmediateSize2 = 1
			extra = 1
		case OpKindNearBranch16, OpKindNearBranch32, OpKindNearBranch64:
			switch {
			case d.state.flags&flagBranchImm8 != 0:
				setImm(1)
			case d.state.flags&flagXbegin != 0:
				if d.state.operandSize != size16 {
					setImm(4)
				} else {
					setImm(2)
				}
			case instr.opKinds[n] == OpKindNearBranch16:
				setImm(2)
			default:
				setImm(4)
			}
		case OpKindFarBranch16:
			c.ImmediateOffset = length - 4
			c.ImmediateSize = 2
			c.ImmediateOffset2 = length - 2
			c.ImmediateSize2 = 2
		case OpKindFarBranch32:
			c.ImmediateOffset = length - 6
			c.ImmediateSize = 4
			c.ImmediateOffset2 = length - 2
			c.ImmediateSize2 = 2
		}
	}

	return c
}

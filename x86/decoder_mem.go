// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

// Memory operands are stored on the
// instruction with the displacement
// already extended to the address size:
// 16-bit addressing keeps a uint16, 32-bit
// addressing a uint32, and 64-bit
// addressing (including RIP-relative) the
// sign-extended 64-bit value.

// memRegs16 lists the base and index
// registers for each rm value in 16-bit
// addressing.
var memRegs16 = [8][2]Register{
	{BX, SI},
	{BX, DI},
	{BP, SI},
	{BP, DI},
	{SI, NoRegister},
	{DI, NoRegister},
	{BP, NoRegister},
	{BX, NoRegister},
}

// disp8N returns the compressed
// displacement scale for an EVEX memory
// operand with the given tuple type.
func (d *Decoder) disp8N(tuple TupleType) uint32 {
	return tuple.Disp8N(d.state.flags&flagB != 0, d.state.flags&flagW != 0)
}

// readOpMem decodes the memory operand
// described by the ModR/M byte into
// operand n.
func (d *Decoder) readOpMem(instr *Instruction, n int) {
	d.readOpMemN(instr, n, 1)
}

// readOpMemTuple decodes an EVEX memory
// operand, scaling an 8-bit displacement
// by the tuple type.
func (d *Decoder) readOpMemTuple(instr *Instruction, n int, tuple TupleType) {
	d.readOpMemN(instr, n, d.disp8N(tuple))
}

func (d *Decoder) readOpMemN(instr *Instruction, n int, disp8N uint32) {
	instr.setOpKind(n, OpKindMemory)
	switch d.state.addressSize {
	case size64:
		d.readOpMem32Or64(instr, RAX, RAX, disp8N, false)
	case size32:
		d.readOpMem32Or64(instr, EAX, EAX, disp8N, false)
	default:
		d.readOpMem16(instr, disp8N)
	}
}

// readOpMemMPX decodes the memory operand
// of an MPX instruction. MPX forces 64-bit
// addressing in 64-bit mode, requires
// 32-bit addressing otherwise, and cannot
// be RIP-relative.
func (d *Decoder) readOpMemMPX(instr *Instruction, n int) {
	instr.setOpKind(n, OpKindMemory)
	switch {
	case d.is64:
		d.state.addressSize = size64
		d.readOpMem32Or64(instr, RAX, RAX, 1, false)
		d.invalidIf(instr.memBase == RIP)
	case d.state.addressSize == size32:
		d.readOpMem32Or64(instr, EAX, EAX, 1, false)
	default:
		d.readOpMem16(instr, 1)
		d.invalidIf(true)
	}
}

// readOpMemVSIB decodes a memory operand
// whose SIB index is a vector register in
// the family starting at vsibBase. A VSIB
// operand must have a SIB byte.
func (d *Decoder) readOpMemVSIB(instr *Instruction, n int, vsibBase Register, tuple TupleType) {
	instr.setOpKind(n, OpKindMemory)
	disp8N := d.disp8N(tuple)
	var hasSIB bool
	switch d.state.addressSize {
	case size64:
		hasSIB = d.readOpMem32Or64(instr, RAX, vsibBase, disp8N, true)
	case size32:
		hasSIB = d.readOpMem32Or64(instr, EAX, vsibBase, disp8N, true)
	default:
		d.readOpMem16(instr, disp8N)
	}

	d.invalidIf(!hasSIB)
}

func (d *Decoder) readOpMem16(instr *Instruction, disp8N uint32) {
	regs := memRegs16[d.state.rm]
	base, index := regs[0], regs[1]
	switch d.state.mod {
	case 0:
		if d.state.rm == 6 {
			instr.memDisplSize = 2
			d.displIndex = d.state.instructionLength
			instr.memDispl = uint64(uint16(d.readUint16()))
			base = NoRegister
		}
	case 1:
		instr.memDisplSize = 1
		d.displIndex = d.state.instructionLength
		instr.memDispl = uint64(uint16(disp8N * uint32(int8(d.readByte()))))
	default:
		instr.memDisplSize = 2
		d.displIndex = d.state.instructionLength
		instr.memDispl = uint64(uint16(d.readUint16()))
	}

	instr.memBase = base
	instr.memIndex = index
}

// setDispl32 stores a 32-bit displacement
// extended to the address size.
func (d *Decoder) setDispl32(instr *Instruction, displ uint32, size uint8) {
	if d.state.addressSize == size64 {
		instr.memDispl = uint64(int64(int32(displ)))
		if size == 4 {
			size = 8
		}
	} else {
		instr.memDispl = uint64(displ)
	}

	instr.memDisplSize = size
}

// readOpMem32Or64 decodes a memory operand
// with 32-bit or 64-bit addressing, with
// base and index registers drawn from the
// families starting at baseReg and
// indexReg. It reports whether a SIB byte
// was read.
func (d *Decoder) readOpMem32Or64(instr *Instruction, baseReg, indexReg Register, disp8N uint32, isVSIB bool) bool {
	var sib, displ uint32
	var displSize uint8
	switch d.state.mod {
	case 0:
		switch d.state.rm {
		case 4:
			sib = d.readByte()
		case 5:
			d.displIndex = d.state.instructionLength
			d.setDispl32(instr, d.readUint32(), 4)
			if d.is64 {
				if d.state.addressSize == size64 {
					instr.memBase = RIP
				} else {
					instr.memBase = EIP
				}
			}

			return false
		default:
			instr.memBase = baseReg + Register(d.state.extraBaseRegisterBase+d.state.rm)
			return false
		}
	case 1:
		if d.state.rm == 4 {
			sib = d.readByte()
			displSize = 1
			d.displIndex = d.state.instructionLength
			displ = disp8N * uint32(int8(d.readByte()))
			break
		}

		d.displIndex = d.state.instructionLength
		d.setDispl32(instr, disp8N*uint32(int8(d.readByte())), 1)
		instr.memBase = baseReg + Register(d.state.extraBaseRegisterBase+d.state.rm)
		return false
	default:
		if d.state.rm == 4 {
			sib = d.readByte()
			displSize = 4
			d.displIndex = d.state.instructionLength
			displ = d.readUint32()
			break
		}

		d.displIndex = d.state.instructionLength
		d.setDispl32(instr, d.readUint32(), 4)
		instr.memBase = baseReg + Register(d.state.extraBaseRegisterBase+d.state.rm)
		return false
	}

	index := ((sib >> 3) & 7) + d.state.extraIndexRegisterBase
	base := sib & 7

	instr.memScale = uint8(sib >> 6)
	if isVSIB {
		instr.memIndex = indexReg + Register(index+d.state.extraIndexRegisterBaseVSIB)
	} else if index != 4 {
		instr.memIndex = indexReg + Register(index)
	}

	if base == 5 && d.state.mod == 0 {
		d.displIndex = d.state.instructionLength
		d.setDispl32(instr, d.readUint32(), 4)
	} else {
		instr.memBase = baseReg + Register(base+d.state.extraBaseRegisterBase)
		if displSize != 0 {
			d.setDispl32(instr, displ, displSize)
		}
	}

	return true
}

// mvexDisp8N returns the compressed
// displacement scale for an MVEX memory
// operand, which depends on the up
// conversion or broadcast selected by
// SSS. It reports false for a reserved
// SSS value.
func (d *Decoder) mvexDisp8N(elem64 bool) (uint32, bool) {
	if elem64 {
		switch d.state.sss {
		case 0:
			return 64, true
		case 1:
			return 8, true
		case 2:
			return 32, true
		}

		return 1, false
	}

	return [8]uint32{64, 4, 16, 32, 16, 16, 32, 32}[d.state.sss], true
}

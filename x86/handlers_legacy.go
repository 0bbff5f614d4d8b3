// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

// The legacy handlers decode instructions
// from the one, two, and three byte opcode
// maps. They are shared by all three modes
// and select their code and registers from
// the operand and address sizes in effect.
//
// Handlers that take three codes are given
// them in the order 16-bit, 32-bit, 64-bit,
// matching the values of opSize.

// gprBase returns the first general purpose
// register of the given size.
func gprBase(size opSize) Register {
	return AX + Register(16*uint32(size))
}

// gpr returns general purpose register n of
// the given size.
func gpr(size opSize, n uint32) Register {
	return gprBase(size) + Register(n)
}

// gprW returns the base of the 32-bit or
// 64-bit registers, as selected by W.
func (d *Decoder) gprW() Register {
	if d.state.flags&flagW != 0 {
		return RAX
	}

	return EAX
}

// gprMode returns the base of the 64-bit
// registers in 64-bit mode and the 32-bit
// registers otherwise.
func (d *Decoder) gprMode() Register {
	if d.is64 {
		return RAX
	}

	return EAX
}

// byteReg returns 8-bit register n. With a
// REX prefix, 4 to 7 are SPL to DIL rather
// than AH to BH.
func (d *Decoder) byteReg(n uint32) Register {
	if d.state.flags&flagHasRex != 0 && n >= 4 {
		n += 4
	}

	return AL + Register(n)
}

// regN returns the register number in the
// ModR/M reg field, with any extension.
func (d *Decoder) regN() uint32 {
	return d.state.reg + d.state.extraRegisterBase
}

// rmN returns the register number in the
// ModR/M rm field, with any extension.
func (d *Decoder) rmN() uint32 {
	return d.state.rm + d.state.extraBaseRegisterBase
}

// stackSize returns the size of a push or
// pop, which is 64 bits in 64-bit mode
// unless overridden to 16 bits.
func (d *Decoder) stackSize() opSize {
	switch {
	case d.state.operandSize == size16:
		return size16
	case d.is64:
		return size64
	}

	return size32
}

// branchSize returns the size of a near
// branch target. In 64-bit mode, Intel
// processors ignore an operand size
// override; AMD processors honour it.
func (d *Decoder) branchSize() opSize {
	if d.is64 {
		if d.options&OptionAMD == 0 || d.state.operandSize != size16 {
			return size64
		}

		return size16
	}

	return d.state.operandSize
}

// readOpE sets operand n to the register
// in the rm field, from the family starting
// at base, or to the memory operand.
func (d *Decoder) readOpE(instr *Instruction, n int, base Register) {
	if d.state.mod == 3 {
		instr.setOpRegister(n, base+Register(d.rmN()))
	} else {
		d.readOpMem(instr, n)
	}
}

// readOpEb is readOpE for 8-bit registers.
func (d *Decoder) readOpEb(instr *Instruction, n int) {
	if d.state.mod == 3 {
		instr.setOpRegister(n, d.byteReg(d.rmN()))
	} else {
		d.readOpMem(instr, n)
	}
}

// readOpM sets operand n to the memory
// operand, which must not be a register.
func (d *Decoder) readOpM(instr *Instruction, n int) {
	if d.state.mod == 3 {
		d.setInvalid()
		return
	}

	d.readOpMem(instr, n)
}

// readOpR sets operand n to the register in
// the rm field, which must not be memory.
func (d *Decoder) readOpR(instr *Instruction, n int, base Register) {
	if d.state.mod != 3 {
		d.setInvalid()
		return
	}

	instr.setOpRegister(n, base+Register(d.rmN()))
}

// nearBranch sets operand 0 to a branch
// target rel bytes from the end of the
// instruction.
func (d *Decoder) nearBranch(instr *Instruction, size opSize, rel uint64) {
	switch size {
	case size64:
		instr.setNearBranch(OpKindNearBranch64, d.ip64()+rel)
	case size32:
		instr.setNearBranch(OpKindNearBranch32, uint64(d.ip32()+uint32(rel)))
	default:
		instr.setNearBranch(OpKindNearBranch16, uint64(uint16(d.ip32()+uint32(rel))))
	}
}

// readImmZ reads an immediate of the given
// operand size into operand n. A 64-bit
// operand takes a sign-extended 32-bit
// immediate.
func (d *Decoder) readImmZ(instr *Instruction, n int, size opSize) {
	switch size {
	case size64:
		instr.setImmKind(n, OpKindImmediate32to64, uint64(d.readUint32()))
	case size32:
		instr.setImm32(n, d.readUint32())
	default:
		instr.setImm16(n, uint16(d.readUint16()))
	}
}

// readImm8S reads an 8-bit immediate that is
// sign-extended to the given operand size.
func (d *Decoder) readImm8S(instr *Instruction, n int, size opSize) {
	kind := [3]OpKind{OpKindImmediate8to16, OpKindImmediate8to32, OpKindImmediate8to64}[size]
	instr.setImmKind(n, kind, uint64(d.readByte()))
}

func (d *Decoder) readImm8(instr *Instruction, n int) {
	instr.setImm8(n, uint8(d.readByte()))
}

// stringOp returns the operand kind for a
// string instruction's implicit memory
// operand, given the 16-bit form.
func (d *Decoder) stringOp(kind16 OpKind) OpKind {
	return kind16 + OpKind(d.state.addressSize)
}

// readMoffs reads the absolute address of
// a MOV moffs instruction into operand n.
func (d *Decoder) readMoffs(instr *Instruction, n int) {
	d.displIndex = d.state.instructionLength
	switch d.state.addressSize {
	case size64:
		d.state.flags |= flagAddr64
		instr.memDisplSize = 8
		instr.memDispl = d.readUint64()
		instr.setOpKind(n, OpKindMemory64)
	case size32:
		instr.memDisplSize = 4
		instr.memDispl = uint64(d.readUint32())
		instr.setOpKind(n, OpKindMemory)
	default:
		instr.memDisplSize = 2
		instr.memDispl = uint64(d.readUint16())
		instr.setOpKind(n, OpKindMemory)
	}
}

// Instructions without operands.

func newSimple(code Code) *handler {
	return &handler{
		decode: func(d *Decoder, instr *Instruction) {
			instr.code = code
		},
	}
}

// newWbinvd decodes 0F 09, which is WBNOINVD
// with an F3 prefix.
func newWbinvd(wbinvd, wbnoinvd Code) *handler {
	return &handler{
		decode: func(d *Decoder, instr *Instruction) {
			if d.state.mandatoryPrefix == prefixF3 && d.options&OptionNoWbnoinvd == 0 {
				d.clearMandatoryPrefixF3(instr)
				instr.code = wbnoinvd
			} else {
				instr.code = wbinvd
			}
		},
	}
}

// newSimpleModRM is newSimple for an
// instruction that has a ModR/M byte.
func newSimpleModRM(code Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			instr.code = code
		},
	}
}

// newSimple2 selects by the operand size.
func newSimple2(c16, c32, c64 Code) *handler {
	codes := [3]Code{c16, c32, c64}
	return &handler{
		decode: func(d *Decoder, instr *Instruction) {
			instr.code = codes[d.state.operandSize]
		},
	}
}

func newSimple2Iw(c16, c32, c64 Code) *handler {
	codes := [3]Code{c16, c32, c64}
	return &handler{
		decode: func(d *Decoder, instr *Instruction) {
			instr.code = codes[d.state.operandSize]
			instr.setImm16(0, uint16(d.readUint16()))
		},
	}
}

// newPushSimple selects by the stack size,
// as used by PUSHF, POPF, and the like.
func newPushSimple(c16, c32, c64 Code) *handler {
	codes := [3]Code{c16, c32, c64}
	return &handler{
		decode: func(d *Decoder, instr *Instruction) {
			instr.code = codes[d.stackSize()]
		},
	}
}

// newSimple4 selects by REX.W.
func newSimple4(c32, c64 Code) *handler {
	return &handler{
		decode: func(d *Decoder, instr *Instruction) {
			if d.state.flags&flagW != 0 {
				instr.code = c64
			} else {
				instr.code = c32
			}
		},
	}
}

// newSimple5 selects by the address size,
// as MONITOR and VMRUN do.
func newSimple5(c16, c32, c64 Code) *handler {
	codes := [3]Code{c16, c32, c64}
	return &handler{
		decode: func(d *Decoder, instr *Instruction) {
			instr.code = codes[d.state.addressSize]
		},
	}
}

// Fixed register operands.

func newRegIb(reg Register, code Code) *handler {
	return &handler{
		decode: func(d *Decoder, instr *Instruction) {
			instr.code = code
			instr.setOpRegister(0, reg)
			d.readImm8(instr, 1)
		},
	}
}

func newIbReg(reg Register, code Code) *handler {
	return &handler{
		decode: func(d *Decoder, instr *Instruction) {
			instr.code = code
			d.readImm8(instr, 0)
			instr.setOpRegister(1, reg)
		},
	}
}

func newALDX(code Code) *handler {
	return &handler{
		decode: func(d *Decoder, instr *Instruction) {
			instr.code = code
			instr.setOpRegister(0, AL)
			instr.setOpRegister(1, DX)
		},
	}
}

func newDXAL(code Code) *handler {
	return &handler{
		decode: func(d *Decoder, instr *Instruction) {
			instr.code = code
			instr.setOpRegister(0, DX)
			instr.setOpRegister(1, AL)
		},
	}
}

// newRegIb2 decodes IN eAX, imm8.
func newRegIb2(c16, c32 Code) *handler {
	return &handler{
		decode: func(d *Decoder, instr *Instruction) {
			if d.state.operandSize != size16 {
				instr.code = c32
				instr.setOpRegister(0, EAX)
			} else {
				instr.code = c16
				instr.setOpRegister(0, AX)
			}
			d.readImm8(instr, 1)
		},
	}
}

// newIbReg2 decodes OUT imm8, eAX.
func newIbReg2(c16, c32 Code) *handler {
	return &handler{
		decode: func(d *Decoder, instr *Instruction) {
			d.readImm8(instr, 0)
			if d.state.operandSize != size16 {
				instr.code = c32
				instr.setOpRegister(1, EAX)
			} else {
				instr.code = c16
				instr.setOpRegister(1, AX)
			}
		},
	}
}

func newEAXDX(c16, c32 Code) *handler {
	return &handler{
		decode: func(d *Decoder, instr *Instruction) {
			if d.state.operandSize != size16 {
				instr.code = c32
				instr.setOpRegister(0, EAX)
			} else {
				instr.code = c16
				instr.setOpRegister(0, AX)
			}
			instr.setOpRegister(1, DX)
		},
	}
}

func newDXEAX(c16, c32 Code) *handler {
	return &handler{
		decode: func(d *Decoder, instr *Instruction) {
			instr.setOpRegister(0, DX)
			if d.state.operandSize != size16 {
				instr.code = c32
				instr.setOpRegister(1, EAX)
			} else {
				instr.code = c16
				instr.setOpRegister(1, AX)
			}
		},
	}
}

// Immediates.

func newIb(code Code) *handler {
	return &handler{
		decode: func(d *Decoder, instr *Instruction) {
			instr.code = code
			d.readImm8(instr, 0)
		},
	}
}

// newIb3 is newIb for an instruction with a
// ModR/M byte that is otherwise ignored.
func newIb3(code Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			instr.code = code
			d.readImm8(instr, 0)
		},
	}
}

// newIw decodes an instruction whose only
// operand is a 16-bit immediate, such as
// RETF imm16.
func newIw(c16, c32, c64 Code) *handler {
	codes := [3]Code{c16, c32, c64}
	return &handler{
		decode: func(d *Decoder, instr *Instruction) {
			instr.code = codes[d.state.operandSize]
			instr.setImm16(0, uint16(d.readUint16()))
		},
	}
}

// newIwIb decodes ENTER.
func newIwIb(c16, c32, c64 Code) *handler {
	codes := [3]Code{c16, c32, c64}
	return &handler{
		decode: func(d *Decoder, instr *Instruction) {
			instr.code = codes[d.stackSize()]
			instr.setImm16(0, uint16(d.readUint16()))
			instr.setImm8_2nd(1, uint8(d.readByte()))
		},
	}
}

func newPushIb2(c16, c32, c64 Code) *handler {
	codes := [3]Code{c16, c32, c64}
	return &handler{
		decode: func(d *Decoder, instr *Instruction) {
			size := d.stackSize()
			instr.code = codes[size]
			d.readImm8S(instr, 0, size)
		},
	}
}

func newPushIz(c16, c32, c64 Code) *handler {
	codes := [3]Code{c16, c32, c64}
	return &handler{
		decode: func(d *Decoder, instr *Instruction) {
			size := d.stackSize()
			instr.code = codes[size]
			d.readImmZ(instr, 0, size)
		},
	}
}

// newRegIz decodes an operation on the
// accumulator, or another fixed register,
// with an immediate of the operand size.
// r16 is the 16-bit form of the register.
func newRegIz(c16, c32, c64 Code, r16 Register) *handler {
	codes := [3]Code{c16, c32, c64}
	return &handler{
		decode: func(d *Decoder, instr *Instruction) {
			size := d.state.operandSize
			instr.code = codes[size]
			instr.setOpRegister(0, r16+Register(16*uint32(size)))
			d.readImmZ(instr, 1, size)
		},
	}
}

// Registers encoded in the opcode byte.
//
// These handlers are given their codes as
// six values: the 16-bit, 32-bit, and
// 64-bit forms, each without and with
// REX.B.

func regCode(codes *[6]Code, size opSize, extended bool) Code {
	i := 2 * int(size)
	if extended {
		i++
	}

	return codes[i]
}

// newSimpleReg selects a register of the
// operand size, as used by BSWAP.
func newSimpleReg(index uint32, codes [6]Code) *handler {
	return &handler{
		decode: func(d *Decoder, instr *Instruction) {
			size := d.state.operandSize
			instr.code = regCode(&codes, size, d.state.extraBaseRegisterBase != 0)
			instr.setOpRegister(0, gpr(size, index+d.state.extraBaseRegisterBase))
		},
	}
}

// newPushSimpleReg selects a register of
// the stack size, as used by PUSH and POP.
func newPushSimpleReg(index uint32, codes [6]Code) *handler {
	return &handler{
		decode: func(d *Decoder, instr *Instruction) {
			size := d.stackSize()
			instr.code = regCode(&codes, size, d.state.extraBaseRegisterBase != 0)
			instr.setOpRegister(0, gpr(size, index+d.state.extraBaseRegisterBase))
		},
	}
}

// newXchgRegAX decodes XCHG with the
// accumulator. Opcode 90 without REX.B is
// NOP, or PAUSE with an F3 prefix.
func newXchgRegAX(index uint32, codes [6]Code) *handler {
	return &handler{
		decode: func(d *Decoder, instr *Instruction) {
			if index == 0 && d.state.mandatoryPrefix == prefixF3 && d.options&OptionNoPause == 0 {
				d.clearMandatoryPrefixF3(instr)
				instr.code = Pause
				return
			}

			size := d.state.operandSize
			n := index + d.state.extraBaseRegisterBase
			instr.code = regCode(&codes, size, d.state.extraBaseRegisterBase != 0)
			if n != 0 {
				instr.setOpRegister(0, gpr(size, n))
				instr.setOpRegister(1, gprBase(size))
			}
		},
	}
}

// newRegIb3 decodes MOV r8, imm8.
func newRegIb3(index uint32, noRex, rex, rexB Code) *handler {
	return &handler{
		decode: func(d *Decoder, instr *Instruction) {
			switch {
			case d.state.flags&flagHasRex == 0:
				instr.code = noRex
				instr.setOpRegister(0, AL+Register(index))
			case d.state.extraBaseRegisterBase != 0:
				instr.code = rexB
				instr.setOpRegister(0, d.byteReg(index+d.state.extraBaseRegisterBase))
			default:
				instr.code = rex
				instr.setOpRegister(0, d.byteReg(index))
			}
			d.readImm8(instr, 1)
		},
	}
}

// newRegIz2 decodes MOV r, imm, which is
// the only instruction with a full 64-bit
// immediate.
func newRegIz2(index uint32, codes [6]Code) *handler {
	return &handler{
		decode: func(d *Decoder, instr *Instruction) {
			size := d.state.operandSize
			instr.code = regCode(&codes, size, d.state.extraBaseRegisterBase != 0)
			instr.setOpRegister(0, gpr(size, index+d.state.extraBaseRegisterBase))
			switch size {
			case size64:
				instr.setImmKind(1, OpKindImmediate64, d.readUint64())
			case size32:
				instr.setImm32(1, d.readUint32())
			default:
				instr.setImm16(1, uint16(d.readUint16()))
			}
		},
	}
}

func newPushOpSizeReg(c16, c32, c64 Code, reg Register) *handler {
	codes := [3]Code{c16, c32, c64}
	return &handler{
		decode: func(d *Decoder, instr *Instruction) {
			instr.code = codes[d.stackSize()]
			instr.setOpRegister(0, reg)
		},
	}
}

// Near and far branches.

func newJb(c16, c32, c64 Code) *handler {
	codes := [3]Code{c16, c32, c64}
	return &handler{
		decode: func(d *Decoder, instr *Instruction) {
			d.state.flags |= flagBranchImm8
			size := d.branchSize()
			instr.code = codes[size]
			d.nearBranch(instr, size, uint64(int64(int8(d.readByte()))))
		},
	}
}

func newJz(c16, c32, c64 Code) *handler {
	codes := [3]Code{c16, c32, c64}
	return &handler{
		decode: func(d *Decoder, instr *Instruction) {
			size := d.branchSize()
			instr.code = codes[size]
			if size == size16 {
				d.nearBranch(instr, size, uint64(int64(int16(d.readUint16()))))
			} else {
				d.nearBranch(instr, size, uint64(int64(int32(d.readUint32()))))
			}
		},
	}
}

// newJx decodes XBEGIN, whose target size
// follows the operand size but whose
// target is always a full address.
func newJx(c16, c32, c64 Code) *handler {
	codes := [3]Code{c16, c32, c64}
	return &handler{
		decode: func(d *Decoder, instr *Instruction) {
			d.state.flags |= flagXbegin
			size := d.state.operandSize
			instr.code = codes[size]

			var rel uint64
			if size == size16 {
				rel = uint64(int64(int16(d.readUint16())))
			} else {
				rel = uint64(int64(int32(d.readUint32())))
			}

			if d.is64 {
				d.nearBranch(instr, size64, rel)
			} else {
				d.nearBranch(instr, size32, rel)
			}
		},
	}
}

// newJb2 decodes LOOP, LOOPcc, and JrCXZ,
// whose code depends on both the branch
// size and the address size, which selects
// the count register. The codes are named
// by branch size and then address size.
func newJb2(c16_16, c16_32, c16_64, c32_16, c32_32, c64_32, c64_64 Code) *handler {
	codes := [3][3]Code{
		{c16_16, c16_32, c16_64},
		{c32_16, c32_32, INVALID},
		{INVALID, c64_32, c64_64},
	}
	return &handler{
		decode: func(d *Decoder, instr *Instruction) {
			d.state.flags |= flagBranchImm8
			size := d.branchSize()
			instr.code = codes[size][d.state.addressSize]
			d.nearBranch(instr, size, uint64(int64(int8(d.readByte()))))
		},
	}
}

// newJdisp decodes the IA-64 JMPE with an
// absolute target.
func newJdisp(c16, c32 Code) *handler {
	return &handler{
		decode: func(d *Decoder, instr *Instruction) {
			if d.state.operandSize != size16 {
				instr.code = c32
				instr.setNearBranch(OpKindNearBranch32, uint64(d.readUint32()))
			} else {
				instr.code = c16
				instr.setNearBranch(OpKindNearBranch16, uint64(d.readUint16()))
			}
		},
	}
}

// newBranchIw decodes RET imm16.
func newBranchIw(c16, c32, c64 Code) *handler {
	codes := [3]Code{c16, c32, c64}
	return &handler{
		decode: func(d *Decoder, instr *Instruction) {
			instr.code = codes[d.branchSize()]
			instr.setImm16(0, uint16(d.readUint16()))
		},
	}
}

// newBranchSimple decodes RET.
func newBranchSimple(c16, c32, c64 Code) *handler {
	codes := [3]Code{c16, c32, c64}
	return &handler{
		decode: func(d *Decoder, instr *Instruction) {
			instr.code = codes[d.branchSize()]
		},
	}
}

// newAp decodes a far CALL or JMP with an
// immediate selector and offset.
func newAp(c16, c32 Code) *handler {
	return &handler{
		decode: func(d *Decoder, instr *Instruction) {
			if d.state.operandSize != size16 {
				instr.code = c32
				instr.setOpKind(0, OpKindFarBranch32)
				instr.farBranch = d.readUint32()
			} else {
				instr.code = c16
				instr.setOpKind(0, OpKindFarBranch16)
				instr.farBranch = d.readUint16()
			}
			instr.farSelector = uint16(d.readUint16())
		},
	}
}

// newEvj decodes an indirect near CALL or
// JMP.
func newEvj(c16, c32, c64 Code) *handler {
	codes := [3]Code{c16, c32, c64}
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			size := d.branchSize()
			instr.code = codes[size]
			if d.state.mod == 3 {
				n := d.state.rm
				if d.is64 {
					n = d.rmN()
				}
				instr.setOpRegister(0, gpr(size, n))
			} else {
				d.readOpMem(instr, 0)
			}
		},
	}
}

// newEp decodes an indirect far CALL or
// JMP. Only Intel processors have the
// 64-bit form.
func newEp(c16, c32, c64 Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			switch {
			case d.state.operandSize == size64 && d.options&OptionAMD == 0:
				instr.code = c64
			case d.state.operandSize == size16:
				instr.code = c16
			default:
				instr.code = c32
			}
			d.readOpM(instr, 0)
		},
	}
}

// Byte operands.

func newEb(code Code, flags handlerFlags) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			instr.code = code
			d.readOpEb(instr, 0)
			if d.state.mod != 3 {
				d.lockable(instr, flags)
			}
		},
	}
}

func newEb1(code Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			instr.code = code
			d.readOpEb(instr, 0)
			instr.setImm8(1, 1)
			d.state.flags |= flagNoImm
		},
	}
}

func newEbCL(code Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			instr.code = code
			d.readOpEb(instr, 0)
			instr.setOpRegister(1, CL)
		},
	}
}

func newEbIb(code Code, flags handlerFlags) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			instr.code = code
			d.readOpEb(instr, 0)
			if d.state.mod != 3 {
				d.lockable(instr, flags)
			}
			d.readImm8(instr, 1)
		},
	}
}

func newEbGb(code Code, flags handlerFlags) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			instr.code = code
			d.readOpEb(instr, 0)
			if d.state.mod != 3 {
				d.lockable(instr, flags)
			}
			instr.setOpRegister(1, d.byteReg(d.regN()))
		},
	}
}

func newGbEb(code Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			instr.code = code
			instr.setOpRegister(0, d.byteReg(d.regN()))
			d.readOpEb(instr, 1)
		},
	}
}

// Operands of the operand size.

func newEv(c16, c32, c64 Code, flags handlerFlags) *handler {
	codes := [3]Code{c16, c32, c64}
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			size := d.state.operandSize
			instr.code = codes[size]
			d.readOpE(instr, 0, gprBase(size))
			if d.state.mod != 3 {
				d.lockable(instr, flags)
			}
		},
	}
}

// newEvw decodes a system register store
// such as SLDT, where a memory destination
// is always 16 bits wide.
func newEvw(c16, c32, c64 Code) *handler {
	codes := [3]Code{c16, c32, c64}
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			size := d.state.operandSize
			instr.code = codes[size]
			d.readOpE(instr, 0, gprBase(size))
		},
	}
}

// newEw is newEvw for instructions such as
// LLDT that read a 16-bit register whatever
// the operand size.
func newEw(c16, c32, c64 Code) *handler {
	codes := [3]Code{c16, c32, c64}
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			instr.code = codes[d.state.operandSize]
			d.readOpE(instr, 0, AX)
		},
	}
}

func newEv1(c16, c32, c64 Code) *handler {
	codes := [3]Code{c16, c32, c64}
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			size := d.state.operandSize
			instr.code = codes[size]
			d.readOpE(instr, 0, gprBase(size))
			instr.setImm8(1, 1)
			d.state.flags |= flagNoImm
		},
	}
}

func newEvCL(c16, c32, c64 Code) *handler {
	codes := [3]Code{c16, c32, c64}
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			size := d.state.operandSize
			instr.code = codes[size]
			d.readOpE(instr, 0, gprBase(size))
			instr.setOpRegister(1, CL)
		},
	}
}

// newEvIz decodes group 1 with a full
// immediate (81).
func newEvIz(c16, c32, c64 Code, flags handlerFlags) *handler {
	codes := [3]Code{c16, c32, c64}
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			size := d.state.operandSize
			instr.code = codes[size]
			d.readOpE(instr, 0, gprBase(size))
			if d.state.mod != 3 {
				d.lockable(instr, flags)
			}
			d.readImmZ(instr, 1, size)
		},
	}
}

// newEvIb decodes group 1 with a
// sign-extended 8-bit immediate (83).
func newEvIb(c16, c32, c64 Code, flags handlerFlags) *handler {
	codes := [3]Code{c16, c32, c64}
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			size := d.state.operandSize
			instr.code = codes[size]
			d.readOpE(instr, 0, gprBase(size))
			if d.state.mod != 3 {
				d.lockable(instr, flags)
			}
			d.readImm8S(instr, 1, size)
		},
	}
}

// newEvIb2 is newEvIb with an unextended
// immediate, as used by the shifts and
// BT.
func newEvIb2(c16, c32, c64 Code, flags handlerFlags) *handler {
	codes := [3]Code{c16, c32, c64}
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			size := d.state.operandSize
			instr.code = codes[size]
			d.readOpE(instr, 0, gprBase(size))
			if d.state.mod != 3 {
				d.lockable(instr, flags)
			}
			d.readImm8(instr, 1)
		},
	}
}

func newEvGv(c16, c32, c64 Code, flags handlerFlags) *handler {
	codes := [3]Code{c16, c32, c64}
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			size := d.state.operandSize
			instr.code = codes[size]
			d.readOpE(instr, 0, gprBase(size))
			if d.state.mod != 3 {
				d.lockable(instr, flags)
			}
			instr.setOpRegister(1, gpr(size, d.regN()))
		},
	}
}

func newEvGvIb(c16, c32, c64 Code) *handler {
	codes := [3]Code{c16, c32, c64}
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			size := d.state.operandSize
			instr.code = codes[size]
			d.readOpE(instr, 0, gprBase(size))
			instr.setOpRegister(1, gpr(size, d.regN()))
			d.readImm8(instr, 2)
		},
	}
}

func newEvGvCL(c16, c32, c64 Code) *handler {
	codes := [3]Code{c16, c32, c64}
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			size := d.state.operandSize
			instr.code = codes[size]
			d.readOpE(instr, 0, gprBase(size))
			instr.setOpRegister(1, gpr(size, d.regN()))
			instr.setOpRegister(2, CL)
		},
	}
}

// newEvGv3264 uses 64-bit registers in
// 64-bit mode and 32-bit registers
// otherwise, whatever the operand size.
func newEvGv3264(c32, c64 Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			base := d.gprMode()
			if d.is64 {
				instr.code = c64
			} else {
				instr.code = c32
			}
			d.readOpE(instr, 0, base)
			instr.setOpRegister(1, base+Register(d.regN()))
		},
	}
}

// newEvREXW selects a 32-bit or 64-bit
// operand by REX.W. Either form may be
// disallowed.
func newEvREXW(c32, c64 Code, allowReg, allowMem bool) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			if d.state.flags&flagW != 0 {
				instr.code = c64
			} else {
				instr.code = c32
			}
			d.readOpE(instr, 0, d.gprW())
			if d.state.mod == 3 {
				d.invalidIf(!allowReg)
			} else {
				d.invalidIf(!allowMem)
			}
		},
	}
}

// newEvGvREX decodes a memory-only store of
// a 32-bit or 64-bit register, as used by
// MOVNTI.
func newEvGvREX(c32, c64 Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			d.readOpM(instr, 0)
			if d.state.flags&flagW != 0 {
				instr.code = c64
			} else {
				instr.code = c32
			}
			instr.setOpRegister(1, d.gprW()+Register(d.regN()))
		},
	}
}

func newRv(c16, c32, c64 Code) *handler {
	codes := [3]Code{c16, c32, c64}
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			size := d.state.operandSize
			instr.code = codes[size]
			d.readOpR(instr, 0, gprBase(size))
		},
	}
}

func newRv3264(c32, c64 Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			if d.is64 {
				instr.code = c64
			} else {
				instr.code = c32
			}
			instr.setOpRegister(0, d.gprMode()+Register(d.rmN()))
		},
	}
}

func newPushEv(c16, c32, c64 Code) *handler {
	codes := [3]Code{c16, c32, c64}
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			size := d.stackSize()
			instr.code = codes[size]
			d.readOpE(instr, 0, gprBase(size))
		},
	}
}

// newMs decodes the descriptor table
// instructions, which are 64-bit in
// 64-bit mode.
func newMs(c16, c32, c64 Code) *handler {
	codes := [3]Code{c16, c32, c64}
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			if d.is64 {
				instr.code = c64
			} else {
				instr.code = codes[d.state.operandSize]
			}
			d.readOpM(instr, 0)
		},
	}
}

func newGvEv(c16, c32, c64 Code) *handler {
	codes := [3]Code{c16, c32, c64}
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			size := d.state.operandSize
			instr.code = codes[size]
			instr.setOpRegister(0, gpr(size, d.regN()))
			d.readOpE(instr, 1, gprBase(size))
		},
	}
}

// newGvEv2 has a source that is never
// wider than 32 bits, as used by MOVSXD.
func newGvEv2(c16, c32, c64 Code) *handler {
	codes := [3]Code{c16, c32, c64}
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			size := d.state.operandSize
			instr.code = codes[size]
			instr.setOpRegister(0, gpr(size, d.regN()))
			src := EAX
			if size == size16 {
				src = AX
			}
			d.readOpE(instr, 1, src)
		},
	}
}

// newGdqEv has a destination that is never
// narrower than 32 bits, as used by CRC32.
func newGdqEv(c16, c32, c64 Code) *handler {
	codes := [3]Code{c16, c32, c64}
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			size := d.state.operandSize
			instr.code = codes[size]
			dst := size
			if dst == size16 {
				dst = size32
			}
			instr.setOpRegister(0, gpr(dst, d.regN()))
			d.readOpE(instr, 1, gprBase(size))
		},
	}
}

func newGvEb(c16, c32, c64 Code) *handler {
	codes := [3]Code{c16, c32, c64}
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			size := d.state.operandSize
			instr.code = codes[size]
			instr.setOpRegister(0, gpr(size, d.regN()))
			d.readOpEb(instr, 1)
		},
	}
}

func newGvEw(c16, c32, c64 Code) *handler {
	codes := [3]Code{c16, c32, c64}
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			size := d.state.operandSize
			instr.code = codes[size]
			instr.setOpRegister(0, gpr(size, d.regN()))
			d.readOpE(instr, 1, AX)
		},
	}
}

func newGvEvIb(c16, c32, c64 Code) *handler {
	codes := [3]Code{c16, c32, c64}
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			size := d.state.operandSize
			instr.code = codes[size]
			instr.setOpRegister(0, gpr(size, d.regN()))
			d.readOpE(instr, 1, gprBase(size))
			d.readImm8S(instr, 2, size)
		},
	}
}

func newGvEvIz(c16, c32, c64 Code) *handler {
	codes := [3]Code{c16, c32, c64}
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			size := d.state.operandSize
			instr.code = codes[size]
			instr.setOpRegister(0, gpr(size, d.regN()))
			d.readOpE(instr, 1, gprBase(size))
			d.readImmZ(instr, 2, size)
		},
	}
}

func newGvEv3264(c32, c64 Code, allowReg, allowMem bool) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			base := d.gprMode()
			if d.is64 {
				instr.code = c64
			} else {
				instr.code = c32
			}
			instr.setOpRegister(0, base+Register(d.regN()))
			d.readOpE(instr, 1, base)
			if d.state.mod == 3 {
				d.invalidIf(!allowReg)
			} else {
				d.invalidIf(!allowMem)
			}
		},
	}
}

// newGvEvREX selects both operands by
// REX.W.
func newGvEvREX(c32, c64 Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			if d.state.flags&flagW != 0 {
				instr.code = c64
			} else {
				instr.code = c32
			}
			base := d.gprW()
			instr.setOpRegister(0, base+Register(d.regN()))
			d.readOpE(instr, 1, base)
		},
	}
}

func newGvEbREX(c32, c64 Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			if d.state.flags&flagW != 0 {
				instr.code = c64
			} else {
				instr.code = c32
			}
			instr.setOpRegister(0, d.gprW()+Register(d.regN()))
			d.readOpEb(instr, 1)
		},
	}
}

// newGvEvIbREX decodes a register-only
// extraction into a 32-bit or 64-bit
// register, such as PEXTRW.
func newGvEvIbREX(base Register, c32, c64 Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			if d.state.flags&flagW != 0 {
				instr.code = c64
			} else {
				instr.code = c32
			}
			instr.setOpRegister(0, d.gprW()+Register(d.regN()))
			d.readOpR(instr, 1, base)
			d.readImm8(instr, 2)
		},
	}
}

func newGvM(c16, c32, c64 Code) *handler {
	codes := [3]Code{c16, c32, c64}
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			size := d.state.operandSize
			instr.code = codes[size]
			instr.setOpRegister(0, gpr(size, d.regN()))
			d.readOpM(instr, 1)
		},
	}
}

// newGvMa decodes BOUND.
func newGvMa(c16, c32 Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			size := size32
			instr.code = c32
			if d.state.operandSize == size16 {
				size = size16
				instr.code = c16
			}
			instr.setOpRegister(0, gpr(size, d.regN()))
			d.readOpM(instr, 1)
		},
	}
}

// newGvMp decodes LDS, LES, LSS, LFS, and
// LGS.
func newGvMp(c16, c32, c64 Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			switch {
			case d.state.operandSize == size64 && d.options&OptionAMD == 0:
				instr.code = c64
				instr.setOpRegister(0, gpr(size64, d.regN()))
			case d.state.operandSize == size16:
				instr.code = c16
				instr.setOpRegister(0, gpr(size16, d.regN()))
			default:
				instr.code = c32
				instr.setOpRegister(0, gpr(size32, d.regN()))
			}
			d.readOpM(instr, 1)
		},
	}
}

func newMvGv(c16, c32, c64 Code) *handler {
	codes := [3]Code{c16, c32, c64}
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			d.readOpM(instr, 0)
			size := d.state.operandSize
			instr.code = codes[size]
			instr.setOpRegister(1, gpr(size, d.regN()))
		},
	}
}

// newRvMwGw decodes ARPL, where a register
// destination is of the operand size but a
// memory destination is a word.
func newRvMwGw(c16, c32 Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			base := EAX
			instr.code = c32
			if d.state.operandSize == size16 {
				base = AX
				instr.code = c16
			}
			d.readOpE(instr, 0, base)
			instr.setOpRegister(1, AX+Register(d.regN()))
		},
	}
}

// Segment registers.

func newEvSw(c16, c32, c64 Code) *handler {
	codes := [3]Code{c16, c32, c64}
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			size := d.state.operandSize
			instr.code = codes[size]
			d.readOpE(instr, 0, gprBase(size))
			instr.setOpRegister(1, d.readOpSw())
		},
	}
}

// newSwEv decodes MOV Sreg, r/m. CS cannot
// be the destination.
func newSwEv(c16, c32, c64 Code) *handler {
	codes := [3]Code{c16, c32, c64}
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			size := d.state.operandSize
			instr.code = codes[size]
			sreg := d.readOpSw()
			d.invalidIf(sreg == CS)
			instr.setOpRegister(0, sreg)
			d.readOpE(instr, 1, gprBase(size))
		},
	}
}

// Control, debug, and test registers.

// readOpControl returns the control, debug,
// or test register in the reg field. On AMD
// processors, LOCK MOV CR0 accesses CR8.
func (d *Decoder) readOpControl(instr *Instruction, base Register) Register {
	extra := d.state.extraRegisterBase
	if base == CR0 && extra == 0 && instr.flags&instrLock != 0 && d.options&OptionAMD != 0 {
		extra = 8
		instr.flags &^= instrLock
		d.state.flags &^= flagLock
	}

	n := d.state.reg + extra
	switch base {
	case CR0:
		d.invalidIf(n == 1 || (n != 8 && n >= 5))
	case DR0:
		d.invalidIf(n > 7)
	}

	return base + Register(n)
}

// newRC decodes MOV r, CRn and its debug
// and test register forms. The mod field
// is ignored.
func newRC(c32, c64 Code, base Register) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			if d.is64 {
				instr.code = c64
			} else {
				instr.code = c32
			}
			instr.setOpRegister(0, d.gprMode()+Register(d.rmN()))
			instr.setOpRegister(1, d.readOpControl(instr, base))
		},
	}
}

// newCR decodes MOV CRn, r and its debug
// and test register forms.
func newCR(c32, c64 Code, base Register) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			if d.is64 {
				instr.code = c64
			} else {
				instr.code = c32
			}
			instr.setOpRegister(0, d.readOpControl(instr, base))
			instr.setOpRegister(1, d.gprMode()+Register(d.rmN()))
		},
	}
}

// Absolute addresses.

func newRegOb(reg Register, code Code) *handler {
	return &handler{
		decode: func(d *Decoder, instr *Instruction) {
			instr.code = code
			instr.setOpRegister(0, reg)
			d.readMoffs(instr, 1)
		},
	}
}

func newObReg(reg Register, code Code) *handler {
	return &handler{
		decode: func(d *Decoder, instr *Instruction) {
			instr.code = code
			d.readMoffs(instr, 0)
			instr.setOpRegister(1, reg)
		},
	}
}

func newRegOv(c16, c32, c64 Code, r16 Register) *handler {
	codes := [3]Code{c16, c32, c64}
	return &handler{
		decode: func(d *Decoder, instr *Instruction) {
			size := d.state.operandSize
			instr.code = codes[size]
			instr.setOpRegister(0, r16+Register(16*uint32(size)))
			d.readMoffs(instr, 1)
		},
	}
}

func newOvReg(c16, c32, c64 Code, r16 Register) *handler {
	codes := [3]Code{c16, c32, c64}
	return &handler{
		decode: func(d *Decoder, instr *Instruction) {
			size := d.state.operandSize
			instr.code = codes[size]
			d.readMoffs(instr, 0)
			instr.setOpRegister(1, r16+Register(16*uint32(size)))
		},
	}
}

// newMemBx decodes XLAT, whose memory
// operand is [rBX+AL].
func newMemBx(code Code) *handler {
	return &handler{
		decode: func(d *Decoder, instr *Instruction) {
			instr.code = code
			instr.memBase = gpr(d.state.addressSize, 3)
			instr.memIndex = AL
			instr.setOpKind(0, OpKindMemory)
		},
	}
}

// String instructions.

func newYbReg(reg Register, code Code) *handler {
	return &handler{
		decode: func(d *Decoder, instr *Instruction) {
			instr.code = code
			instr.setOpKind(0, d.stringOp(OpKindMemoryESDI))
			instr.setOpRegister(1, reg)
		},
	}
}

func newYvReg(c16, c32, c64 Code, r16 Register) *handler {
	codes := [3]Code{c16, c32, c64}
	return &handler{
		decode: func(d *Decoder, instr *Instruction) {
			size := d.state.operandSize
			instr.code = codes[size]
			instr.setOpKind(0, d.stringOp(OpKindMemoryESDI))
			instr.setOpRegister(1, r16+Register(16*uint32(size)))
		},
	}
}

// newYvReg2 decodes INS, whose port is
// always DX.
func newYvReg2(c16, c32 Code) *handler {
	return &handler{
		decode: func(d *Decoder, instr *Instruction) {
			instr.code = c32
			if d.state.operandSize == size16 {
				instr.code = c16
			}
			instr.setOpKind(0, d.stringOp(OpKindMemoryESDI))
			instr.setOpRegister(1, DX)
		},
	}
}

func newRegXb(reg Register, code Code) *handler {
	return &handler{
		decode: func(d *Decoder, instr *Instruction) {
			instr.code = code
			instr.setOpRegister(0, reg)
			instr.setOpKind(1, d.stringOp(OpKindMemorySegSI))
		},
	}
}

func newRegXv(c16, c32, c64 Code, r16 Register) *handler {
	codes := [3]Code{c16, c32, c64}
	return &handler{
		decode: func(d *Decoder, instr *Instruction) {
			size := d.state.operandSize
			instr.code = codes[size]
			instr.setOpRegister(0, r16+Register(16*uint32(size)))
			instr.setOpKind(1, d.stringOp(OpKindMemorySegSI))
		},
	}
}

// newRegXv2 decodes OUTS, whose port is
// always DX.
func newRegXv2(c16, c32 Code) *handler {
	return &handler{
		decode: func(d *Decoder, instr *Instruction) {
			instr.code = c32
			if d.state.operandSize == size16 {
				instr.code = c16
			}
			instr.setOpRegister(0, DX)
			instr.setOpKind(1, d.stringOp(OpKindMemorySegSI))
		},
	}
}

func newRegYb(reg Register, code Code) *handler {
	return &handler{
		decode: func(d *Decoder, instr *Instruction) {
			instr.code = code
			instr.setOpRegister(0, reg)
			instr.setOpKind(1, d.stringOp(OpKindMemoryESDI))
		},
	}
}

func newRegYv(c16, c32, c64 Code, r16 Register) *handler {
	codes := [3]Code{c16, c32, c64}
	return &handler{
		decode: func(d *Decoder, instr *Instruction) {
			size := d.state.operandSize
			instr.code = codes[size]
			instr.setOpRegister(0, r16+Register(16*uint32(size)))
			instr.setOpKind(1, d.stringOp(OpKindMemoryESDI))
		},
	}
}

func newYbXb(code Code) *handler {
	return &handler{
		decode: func(d *Decoder, instr *Instruction) {
			instr.code = code
			instr.setOpKind(0, d.stringOp(OpKindMemoryESDI))
			instr.setOpKind(1, d.stringOp(OpKindMemorySegSI))
		},
	}
}

func newYvXv(c16, c32, c64 Code) *handler {
	codes := [3]Code{c16, c32, c64}
	return &handler{
		decode: func(d *Decoder, instr *Instruction) {
			instr.code = codes[d.state.operandSize]
			instr.setOpKind(0, d.stringOp(OpKindMemoryESDI))
			instr.setOpKind(1, d.stringOp(OpKindMemorySegSI))
		},
	}
}

func newXbYb(code Code) *handler {
	return &handler{
		decode: func(d *Decoder, instr *Instruction) {
			instr.code = code
			instr.setOpKind(0, d.stringOp(OpKindMemorySegSI))
			instr.setOpKind(1, d.stringOp(OpKindMemoryESDI))
		},
	}
}

func newXvYv(c16, c32, c64 Code) *handler {
	codes := [3]Code{c16, c32, c64}
	return &handler{
		decode: func(d *Decoder, instr *Instruction) {
			instr.code = codes[d.state.operandSize]
			instr.setOpKind(0, d.stringOp(OpKindMemorySegSI))
			instr.setOpKind(1, d.stringOp(OpKindMemoryESDI))
		},
	}
}

// Memory-only operands.

// newM selects by W, with the same code for
// both where W is ignored.
func newM(cW0, cW1 Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			if d.state.flags&flagW != 0 {
				instr.code = cW1
			} else {
				instr.code = cW0
			}
			d.readOpM(instr, 0)
		},
	}
}

// newMREXW selects by REX.W, with separate
// lock handling for each form, as used by
// CMPXCHG8B and CMPXCHG16B.
func newMREXW(c32, c64 Code, flags32, flags64 handlerFlags) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			flags := flags32
			instr.code = c32
			if d.state.flags&flagW != 0 {
				flags = flags64
				instr.code = c64
			}
			d.readOpM(instr, 0)
			if d.state.mod != 3 {
				d.lockable(instr, flags)
			}
		},
	}
}

// SSE and MMX operands. base is the first
// register of the vector register family.

func newVW(base Register, codeR, codeM Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			instr.setOpRegister(0, base+Register(d.regN()))
			if d.state.mod == 3 {
				instr.code = codeR
				instr.setOpRegister(1, base+Register(d.rmN()))
				return
			}

			instr.code = codeM
			d.readOpMem(instr, 1)
			if codeM == INVALID {
				d.setInvalid()
			}
		},
	}
}

func newWV(base Register, code Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			instr.code = code
			d.readOpE(instr, 0, base)
			instr.setOpRegister(1, base+Register(d.regN()))
		},
	}
}

// newRDIVXRX decodes MASKMOVDQU, which
// stores through rDI.
func newRDIVXRX(base Register, code Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			instr.code = code
			instr.setOpKind(0, d.stringOp(OpKindMemorySegDI))
			instr.setOpRegister(1, base+Register(d.regN()))
			d.readOpR(instr, 2, base)
		},
	}
}

// newRDIPN decodes MASKMOVQ.
func newRDIPN(code Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			instr.code = code
			instr.setOpKind(0, d.stringOp(OpKindMemorySegDI))
			instr.setOpRegister(1, MM0+Register(d.state.reg))
			if d.state.mod != 3 {
				d.setInvalid()
				return
			}
			instr.setOpRegister(2, MM0+Register(d.state.rm))
		},
	}
}

func newVM(base Register, code Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			instr.code = code
			instr.setOpRegister(0, base+Register(d.regN()))
			d.readOpM(instr, 1)
		},
	}
}

func newMV(base Register, code Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			instr.code = code
			d.readOpM(instr, 0)
			instr.setOpRegister(1, base+Register(d.regN()))
		},
	}
}

// readOpQ sets operand n to the MMX
// register in the rm field, or to memory.
// MMX registers have no extension.
func (d *Decoder) readOpQ(instr *Instruction, n int) {
	if d.state.mod == 3 {
		instr.setOpRegister(n, MM0+Register(d.state.rm))
	} else {
		d.readOpMem(instr, n)
	}
}

func newVQ(base Register, code Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			instr.code = code
			instr.setOpRegister(0, base+Register(d.regN()))
			d.readOpQ(instr, 1)
		},
	}
}

func newPQ(code Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			instr.code = code
			instr.setOpRegister(0, MM0+Register(d.state.reg))
			d.readOpQ(instr, 1)
		},
	}
}

func newQP(code Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			instr.code = code
			d.readOpQ(instr, 0)
			instr.setOpRegister(1, MM0+Register(d.state.reg))
		},
	}
}

func newMP(code Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			instr.code = code
			d.readOpM(instr, 0)
			instr.setOpRegister(1, MM0+Register(d.state.reg))
		},
	}
}

func newPQIb(code Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			instr.code = code
			instr.setOpRegister(0, MM0+Register(d.state.reg))
			d.readOpQ(instr, 1)
			d.readImm8(instr, 2)
		},
	}
}

func newPW(base Register, code Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			instr.code = code
			instr.setOpRegister(0, MM0+Register(d.state.reg))
			d.readOpE(instr, 1, base)
		},
	}
}

func newPR(base Register, code Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			instr.code = code
			instr.setOpRegister(0, MM0+Register(d.state.reg))
			d.readOpR(instr, 1, base)
		},
	}
}

// newNIb decodes the MMX shift-by-immediate
// group.
func newNIb(code Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			instr.code = code
			if d.state.mod == 3 {
				instr.setOpRegister(0, MM0+Register(d.state.rm))
			} else {
				d.setInvalid()
			}
			d.readImm8(instr, 1)
		},
	}
}

// selectW returns c64 if W is set and c32
// otherwise, with the matching GPR family.
func (d *Decoder) selectW(c32, c64 Code) (Code, Register) {
	if d.state.flags&flagW != 0 {
		return c64, RAX
	}

	return c32, EAX
}

func newPEv(c32, c64 Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			code, base := d.selectW(c32, c64)
			instr.code = code
			instr.setOpRegister(0, MM0+Register(d.state.reg))
			d.readOpE(instr, 1, base)
		},
	}
}

func newPEvIb(c32, c64 Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			code, base := d.selectW(c32, c64)
			instr.code = code
			instr.setOpRegister(0, MM0+Register(d.state.reg))
			d.readOpE(instr, 1, base)
			d.readImm8(instr, 2)
		},
	}
}

func newEvP(c32, c64 Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			code, base := d.selectW(c32, c64)
			instr.code = code
			d.readOpE(instr, 0, base)
			instr.setOpRegister(1, MM0+Register(d.state.reg))
		},
	}
}

func newGvW(base Register, cW0, cW1 Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			code, gprs := d.selectW(cW0, cW1)
			instr.code = code
			instr.setOpRegister(0, gprs+Register(d.regN()))
			d.readOpE(instr, 1, base)
		},
	}
}

// newVEv selects by the operand size rather
// than W, so that a 66 prefix used as a
// mandatory prefix does not change it.
func newVEv(base Register, cW0, cW1 Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			gprs := EAX
			instr.code = cW0
			if d.state.operandSize == size64 {
				gprs = RAX
				instr.code = cW1
			}
			instr.setOpRegister(0, base+Register(d.regN()))
			d.readOpE(instr, 1, gprs)
		},
	}
}

func newVWIb(base Register, cW0, cW1 Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			instr.code, _ = d.selectW(cW0, cW1)
			instr.setOpRegister(0, base+Register(d.regN()))
			d.readOpE(instr, 1, base)
			d.readImm8(instr, 2)
		},
	}
}

// newVRIbIb decodes INSERTQ with immediates.
func newVRIbIb(base Register, code Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			instr.code = code
			instr.setOpRegister(0, base+Register(d.regN()))
			if d.state.mod == 3 {
				instr.setOpRegister(1, base+Register(d.rmN()))
			} else {
				d.setInvalid()
			}
			d.readImm8(instr, 2)
			instr.setImm8_2nd(3, uint8(d.readByte()))
		},
	}
}

// newRIbIb decodes EXTRQ with immediates.
func newRIbIb(base Register, code Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			instr.code = code
			if d.state.mod == 3 {
				instr.setOpRegister(0, base+Register(d.rmN()))
			} else {
				d.setInvalid()
			}
			d.readImm8(instr, 1)
			instr.setImm8_2nd(2, uint8(d.readByte()))
		},
	}
}

func newRIb(base Register, code Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			instr.code = code
			if d.state.mod == 3 {
				instr.setOpRegister(0, base+Register(d.rmN()))
			} else {
				d.setInvalid()
			}
			d.readImm8(instr, 1)
		},
	}
}

func newEdVIb(base Register, c32, c64 Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			code, gprs := d.selectW(c32, c64)
			instr.code = code
			d.readOpE(instr, 0, gprs)
			instr.setOpRegister(1, base+Register(d.regN()))
			d.readImm8(instr, 2)
		},
	}
}

func newVXEv(c32, c64 Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			code, gprs := d.selectW(c32, c64)
			instr.code = code
			instr.setOpRegister(0, XMM0+Register(d.regN()))
			d.readOpE(instr, 1, gprs)
		},
	}
}

func newEvVX(c32, c64 Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			code, gprs := d.selectW(c32, c64)
			instr.code = code
			d.readOpE(instr, 0, gprs)
			instr.setOpRegister(1, XMM0+Register(d.regN()))
		},
	}
}

func newVXEIb(base Register, c32, c64 Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			code, gprs := d.selectW(c32, c64)
			instr.code = code
			instr.setOpRegister(0, base+Register(d.regN()))
			d.readOpE(instr, 1, gprs)
			d.readImm8(instr, 2)
		},
	}
}

func newGvRX(base Register, c32, c64 Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			code, gprs := d.selectW(c32, c64)
			instr.code = code
			instr.setOpRegister(0, gprs+Register(d.regN()))
			d.readOpR(instr, 1, base)
		},
	}
}

func newGvN(c32, c64 Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			code, gprs := d.selectW(c32, c64)
			instr.code = code
			instr.setOpRegister(0, gprs+Register(d.regN()))
			if d.state.mod == 3 {
				instr.setOpRegister(1, MM0+Register(d.state.rm))
			} else {
				d.setInvalid()
			}
		},
	}
}

func newGvNIbREX(c32, c64 Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			code, gprs := d.selectW(c32, c64)
			instr.code = code
			instr.setOpRegister(0, gprs+Register(d.regN()))
			if d.state.mod == 3 {
				instr.setOpRegister(1, MM0+Register(d.state.rm))
			} else {
				d.setInvalid()
			}
			d.readImm8(instr, 2)
		},
	}
}

func newVN(base Register, code Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			instr.code = code
			instr.setOpRegister(0, base+Register(d.regN()))
			if d.state.mod == 3 {
				instr.setOpRegister(1, MM0+Register(d.state.rm))
			} else {
				d.setInvalid()
			}
		},
	}
}

// newGvMVXIb decodes an extraction to a
// register or memory, such as PEXTRD and
// PEXTRQ.
func newGvMVXIb(base Register, c32, c64 Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			code, gprs := d.selectW(c32, c64)
			instr.code = code
			d.readOpE(instr, 0, gprs)
			instr.setOpRegister(1, base+Register(d.regN()))
			d.readImm8(instr, 2)
		},
	}
}

// MPX bound registers.

// bndInvalid reports whether a bound
// register number is out of range.
func (d *Decoder) bndInvalid(withRM bool) bool {
	if withRM {
		return d.state.reg|d.state.rm > 3 || d.state.extraRegisterBase|d.state.extraBaseRegisterBase != 0
	}

	return d.state.reg > 3 || d.state.extraRegisterBase != 0
}

// newBMIB decodes BNDLDX.
func newBMIB(code Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			instr.code = code
			d.invalidIf(d.bndInvalid(false))
			instr.setOpRegister(0, BND0+Register(d.state.reg))
			d.readOpMemMPX(instr, 1)
		},
	}
}

// newMIBB decodes BNDSTX.
func newMIBB(code Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			instr.code = code
			d.invalidIf(d.bndInvalid(false))
			d.readOpMemMPX(instr, 0)
			instr.setOpRegister(1, BND0+Register(d.state.reg))
		},
	}
}

// newBBM decodes BNDMOV bnd, bnd/m.
func newBBM(c32, c64 Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			d.invalidIf(d.bndInvalid(true))
			instr.code = c32
			if d.is64 {
				instr.code = c64
			}
			instr.setOpRegister(0, BND0+Register(d.state.reg))
			if d.state.mod == 3 {
				instr.setOpRegister(1, BND0+Register(d.state.rm))
			} else {
				d.readOpMemMPX(instr, 1)
			}
		},
	}
}

// newBMB decodes BNDMOV bnd/m, bnd.
func newBMB(c32, c64 Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			d.invalidIf(d.bndInvalid(true))
			instr.code = c32
			if d.is64 {
				instr.code = c64
			}
			if d.state.mod == 3 {
				instr.setOpRegister(0, BND0+Register(d.state.rm))
			} else {
				d.readOpMemMPX(instr, 0)
			}
			instr.setOpRegister(1, BND0+Register(d.state.reg))
		},
	}
}

// newBEv decodes BNDCL, BNDCU, BNDCN, and
// BNDMK.
func newBEv(c32, c64 Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			d.invalidIf(d.bndInvalid(false))
			instr.code = c32
			if d.is64 {
				instr.code = c64
			}
			instr.setOpRegister(0, BND0+Register(d.state.reg))
			if d.state.mod == 3 {
				instr.setOpRegister(1, d.gprMode()+Register(d.rmN()))
			} else {
				d.readOpMemMPX(instr, 1)
			}
		},
	}
}

// Envelope prefixes.
//
// C4, C5, and 62 are LES, LDS, and BOUND
// outside 64-bit mode unless the next byte
// has mod 3. mem decodes the older
// instruction.

func newVEX2(mem *handler) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			if d.is64 || d.state.mod == 3 {
				d.vex2(instr)
			} else {
				mem.decode(d, instr)
			}
		},
	}
}

func newVEX3(mem *handler) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			if d.is64 || d.state.mod == 3 {
				d.vex3(instr)
			} else {
				mem.decode(d, instr)
			}
		},
	}
}

func newEVEX(mem *handler) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			if d.is64 || d.state.mod == 3 {
				d.evexMvex(instr)
			} else {
				mem.decode(d, instr)
			}
		},
	}
}

// newXOP decodes 8F, which is POP r/m
// unless the map select is 8 or more.
func newXOP(reg0 *handler) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			if d.state.modrm&0x1f < 8 {
				reg0.decode(d, instr)
			} else {
				d.xop(instr)
			}
		},
	}
}

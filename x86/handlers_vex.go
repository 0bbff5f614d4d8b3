// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

// The VEX handlers also decode XOP
// instructions, which share the VEX
// layout. Unless a handler uses the vvvv
// field as an operand, vvvv must be 1111b
// (zero once inverted).
//
// Handlers that take a 32-bit and a 64-bit
// code select between them with VEX.W,
// which only has this effect in 64-bit mode.

// selectGPRW returns c64 and RAX when the
// W bit of a VEX, XOP, or EVEX prefix
// selects a 64-bit operand, and c32 and EAX
// otherwise.
func (d *Decoder) selectGPRW(c32, c64 Code) (Code, Register) {
	if d.is64W() {
		return c64, RAX
	}

	return c32, EAX
}

// vvvvReg returns the register named by the
// vvvv field, in the family starting at base.
func (d *Decoder) vvvvReg(base Register) Register {
	return base + Register(d.state.vvvv)
}

// is4Reg reads the immediate byte whose
// high nibble names a fourth register
// operand.
func (d *Decoder) is4Reg(base Register) Register {
	mask := uint32(7)
	if d.is64 {
		mask = 15
	}

	return base + Register((d.readByte()>>4)&mask)
}

// noVVVV marks the instruction invalid if
// the unused vvvv field is not 1111b.
func (d *Decoder) noVVVV() {
	d.invalidIf(d.state.vvvv != 0)
}

func newVEXSimple(code Code) *handler {
	return &handler{
		decode: func(d *Decoder, instr *Instruction) {
			d.noVVVV()
			instr.code = code
		},
	}
}

func newVEXVHEv(base Register, c32, c64 Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			code, gpr := d.selectGPRW(c32, c64)
			instr.code = code
			instr.setOpRegister(0, base+Register(d.regN()))
			instr.setOpRegister(1, d.vvvvReg(base))
			d.readOpE(instr, 2, gpr)
		},
	}
}

func newVEXVHEvIb(base Register, c32, c64 Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			code, gpr := d.selectGPRW(c32, c64)
			instr.code = code
			instr.setOpRegister(0, base+Register(d.regN()))
			instr.setOpRegister(1, d.vvvvReg(base))
			d.readOpE(instr, 2, gpr)
			d.readImm8(instr, 3)
		},
	}
}

// newVEXVW decodes reg, r/m where the two
// operands may be of different families.
func newVEXVW(base1, base2 Register, code Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			d.noVVVV()
			instr.code = code
			instr.setOpRegister(0, base1+Register(d.regN()))
			d.readOpE(instr, 1, base2)
		},
	}
}

func newVEXVXEv(c32, c64 Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			d.noVVVV()
			code, gpr := d.selectGPRW(c32, c64)
			instr.code = code
			instr.setOpRegister(0, XMM0+Register(d.regN()))
			d.readOpE(instr, 1, gpr)
		},
	}
}

func newVEXEvVX(c32, c64 Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			d.noVVVV()
			code, gpr := d.selectGPRW(c32, c64)
			instr.code = code
			d.readOpE(instr, 0, gpr)
			instr.setOpRegister(1, XMM0+Register(d.regN()))
		},
	}
}

func newVEXWV(base Register, code Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			d.noVVVV()
			instr.code = code
			d.readOpE(instr, 0, base)
			instr.setOpRegister(1, base+Register(d.regN()))
		},
	}
}

func newVEXVM(base Register, code Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			d.noVVVV()
			instr.code = code
			instr.setOpRegister(0, base+Register(d.regN()))
			d.readOpM(instr, 1)
		},
	}
}

func newVEXMV(base Register, code Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			d.noVVVV()
			instr.code = code
			d.readOpM(instr, 0)
			instr.setOpRegister(1, base+Register(d.regN()))
		},
	}
}

func newVEXM(code Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			d.noVVVV()
			instr.code = code
			d.readOpM(instr, 0)
		},
	}
}

func newVEXRdRq(c32, c64 Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			d.noVVVV()
			code, gpr := d.selectGPRW(c32, c64)
			instr.code = code
			d.readOpR(instr, 0, gpr)
		},
	}
}

// newVEXrDIVXRX decodes VMASKMOVDQU, whose
// destination is the implicit DS:rDI.
func newVEXrDIVXRX(base Register, code Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			d.noVVVV()
			instr.code = code
			instr.setOpKind(0, d.stringOp(OpKindMemorySegDI))
			instr.setOpRegister(1, base+Register(d.regN()))
			d.readOpR(instr, 2, base)
		},
	}
}

func newVEXVWIb(base Register, cW0, cW1 Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			d.noVVVV()
			instr.code = cW0
			if d.is64W() {
				instr.code = cW1
			}
			instr.setOpRegister(0, base+Register(d.regN()))
			d.readOpE(instr, 1, base)
			d.readImm8(instr, 2)
		},
	}
}

func newVEXWVIb(base1, base2 Register, code Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			d.noVVVV()
			instr.code = code
			d.readOpE(instr, 0, base1)
			instr.setOpRegister(1, base2+Register(d.regN()))
			d.readImm8(instr, 2)
		},
	}
}

func newVEXEdVIb(base Register, c32, c64 Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			d.noVVVV()
			code, gpr := d.selectGPRW(c32, c64)
			instr.code = code
			d.readOpE(instr, 0, gpr)
			instr.setOpRegister(1, base+Register(d.regN()))
			d.readImm8(instr, 2)
		},
	}
}

// newVEXVHW decodes reg, vvvv, r/m. The code
// may differ between the register and
// memory forms.
func newVEXVHW(base1, base2, base3 Register, codeR, codeM Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			instr.setOpRegister(0, base1+Register(d.regN()))
			instr.setOpRegister(1, d.vvvvReg(base2))
			if d.state.mod == 3 {
				instr.code = codeR
				instr.setOpRegister(2, base3+Register(d.rmN()))
			} else {
				instr.code = codeM
				d.readOpMem(instr, 2)
			}
		},
	}
}

func newVEXVWH(base Register, code Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			instr.code = code
			instr.setOpRegister(0, base+Register(d.regN()))
			d.readOpE(instr, 1, base)
			instr.setOpRegister(2, d.vvvvReg(base))
		},
	}
}

// newVEXWHV decodes the register form of
// VMOVSS and VMOVSD with the destination in
// the rm field.
func newVEXWHV(base Register, code Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			instr.code = code
			d.readOpE(instr, 0, base)
			instr.setOpRegister(1, d.vvvvReg(base))
			instr.setOpRegister(2, base+Register(d.regN()))
		},
	}
}

func newVEXVHM(base Register, code Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			instr.code = code
			instr.setOpRegister(0, base+Register(d.regN()))
			instr.setOpRegister(1, d.vvvvReg(base))
			d.readOpM(instr, 2)
		},
	}
}

func newVEXMHV(base Register, code Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			instr.code = code
			d.readOpM(instr, 0)
			instr.setOpRegister(1, d.vvvvReg(base))
			instr.setOpRegister(2, base+Register(d.regN()))
		},
	}
}

func newVEXVHWIb(base1, base2, base3 Register, code Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			instr.code = code
			instr.setOpRegister(0, base1+Register(d.regN()))
			instr.setOpRegister(1, d.vvvvReg(base2))
			d.readOpE(instr, 2, base3)
			d.readImm8(instr, 3)
		},
	}
}

// newVEXHRIb decodes the immediate shifts,
// whose destination is vvvv.
func newVEXHRIb(base Register, code Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			instr.code = code
			instr.setOpRegister(0, d.vvvvReg(base))
			d.readOpR(instr, 1, base)
			d.readImm8(instr, 2)
		},
	}
}

// newVEXVHWIs4 decodes reg, vvvv, r/m, is4,
// where the fourth register is named by the
// high nibble of an immediate byte.
func newVEXVHWIs4(base Register, code Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			instr.code = code
			instr.setOpRegister(0, base+Register(d.regN()))
			instr.setOpRegister(1, d.vvvvReg(base))
			d.readOpE(instr, 2, base)
			instr.setOpRegister(3, d.is4Reg(base))
		},
	}
}

// newVEXVHIs4W is newVEXVHWIs4 with the last
// two operands swapped, as selected by
// XOP.W.
func newVEXVHIs4W(base Register, code Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			instr.code = code
			instr.setOpRegister(0, base+Register(d.regN()))
			instr.setOpRegister(1, d.vvvvReg(base))
			d.readOpE(instr, 3, base)
			instr.setOpRegister(2, d.is4Reg(base))
		},
	}
}

// Opmask register handlers. There are only
// eight opmask registers, so the register
// extension bits must be clear.

func newVEXVKHKRK(code Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			d.invalidIf(d.state.vvvv > 7 || d.state.extraRegisterBase != 0)
			instr.code = code
			instr.setOpRegister(0, K0+Register(d.state.reg))
			instr.setOpRegister(1, K0+Register(d.state.vvvv&7))
			if d.state.mod != 3 {
				d.setInvalid()
				return
			}
			instr.setOpRegister(2, K0+Register(d.state.rm))
		},
	}
}

func newVEXVKRK(code Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			d.invalidIf(d.state.vvvv|d.state.extraRegisterBase != 0)
			instr.code = code
			instr.setOpRegister(0, K0+Register(d.state.reg))
			if d.state.mod != 3 {
				d.setInvalid()
				return
			}
			instr.setOpRegister(1, K0+Register(d.state.rm))
		},
	}
}

func newVEXVKRKIb(code Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			d.invalidIf(d.state.vvvv|d.state.extraRegisterBase != 0)
			instr.code = code
			instr.setOpRegister(0, K0+Register(d.state.reg))
			if d.state.mod != 3 {
				d.setInvalid()
			} else {
				instr.setOpRegister(1, K0+Register(d.state.rm))
			}
			d.readImm8(instr, 2)
		},
	}
}

func newVEXVKWK(code Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			d.invalidIf(d.state.vvvv|d.state.extraRegisterBase != 0)
			instr.code = code
			instr.setOpRegister(0, K0+Register(d.state.reg))
			if d.state.mod == 3 {
				instr.setOpRegister(1, K0+Register(d.state.rm))
			} else {
				d.readOpMem(instr, 1)
			}
		},
	}
}

func newVEXMVK(code Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			d.invalidIf(d.state.vvvv|d.state.extraRegisterBase != 0)
			instr.code = code
			d.readOpM(instr, 0)
			instr.setOpRegister(1, K0+Register(d.state.reg))
		},
	}
}

func newVEXVKR(code Code, gpr Register) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			d.invalidIf(d.state.vvvv|d.state.extraRegisterBase != 0)
			instr.code = code
			instr.setOpRegister(0, K0+Register(d.state.reg))
			d.readOpR(instr, 1, gpr)
		},
	}
}

func newVEXGVK(code Code, gpr Register) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			d.noVVVV()
			instr.code = code
			instr.setOpRegister(0, gpr+Register(d.regN()))
			if d.state.mod != 3 {
				d.setInvalid()
				return
			}
			instr.setOpRegister(1, K0+Register(d.state.rm))
		},
	}
}

func newVEXGvW(base Register, cW0, cW1 Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			d.noVVVV()
			code, gpr := d.selectGPRW(cW0, cW1)
			instr.code = code
			instr.setOpRegister(0, gpr+Register(d.regN()))
			d.readOpE(instr, 1, base)
		},
	}
}

func newVEXGvRX(base Register, c32, c64 Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			d.noVVVV()
			code, gpr := d.selectGPRW(c32, c64)
			instr.code = code
			instr.setOpRegister(0, gpr+Register(d.regN()))
			d.readOpR(instr, 1, base)
		},
	}
}

func newVEXGvGPRIb(base Register, c32, c64 Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			d.noVVVV()
			code, gpr := d.selectGPRW(c32, c64)
			instr.code = code
			instr.setOpRegister(0, gpr+Register(d.regN()))
			d.readOpR(instr, 1, base)
			d.readImm8(instr, 2)
		},
	}
}

// newVEXVXVSIBHX decodes the AVX2 gathers.
// The destination, index, and mask
// registers must all differ.
func newVEXVXVSIBHX(base1, vsibIndex, base3 Register, code Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			instr.code = code
			regNum := d.regN()
			instr.setOpRegister(0, base1+Register(regNum))
			instr.setOpRegister(2, d.vvvvReg(base3))
			if d.state.mod == 3 {
				d.setInvalid()
				return
			}

			d.readOpMemVSIB(instr, 1, vsibIndex, TupleNone)
			index := uint32(instr.memIndex-XMM0) % vectorRegisterCount
			d.invalidIf(regNum == index || d.state.vvvv == index || regNum == d.state.vvvv)
		},
	}
}

func newVEXGvGvEv(c32, c64 Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			code, gpr := d.selectGPRW(c32, c64)
			instr.code = code
			instr.setOpRegister(0, gpr+Register(d.regN()))
			instr.setOpRegister(1, d.vvvvReg(gpr))
			d.readOpE(instr, 2, gpr)
		},
	}
}

func newVEXGvEvGv(c32, c64 Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			code, gpr := d.selectGPRW(c32, c64)
			instr.code = code
			instr.setOpRegister(0, gpr+Register(d.regN()))
			d.readOpE(instr, 1, gpr)
			instr.setOpRegister(2, d.vvvvReg(gpr))
		},
	}
}

// newVEXHvEv decodes the BMI and TBM
// instructions whose destination is vvvv.
func newVEXHvEv(c32, c64 Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			code, gpr := d.selectGPRW(c32, c64)
			instr.code = code
			instr.setOpRegister(0, d.vvvvReg(gpr))
			d.readOpE(instr, 1, gpr)
		},
	}
}

// newVEXHvEdId decodes LWPINS and LWPVAL,
// whose source is always 32 bits.
func newVEXHvEdId(c32, c64 Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			code, gpr := d.selectGPRW(c32, c64)
			instr.code = code
			instr.setOpRegister(0, d.vvvvReg(gpr))
			d.readOpE(instr, 1, EAX)
			instr.setImm32(2, d.readUint32())
		},
	}
}

func newVEXGvMVXIb(base Register, c32, c64 Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			d.noVVVV()
			code, gpr := d.selectGPRW(c32, c64)
			instr.code = code
			d.readOpE(instr, 0, gpr)
			instr.setOpRegister(1, base+Register(d.regN()))
			d.readImm8(instr, 2)
		},
	}
}

func newVEXGvEvIb(c32, c64 Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			d.noVVVV()
			code, gpr := d.selectGPRW(c32, c64)
			instr.code = code
			instr.setOpRegister(0, gpr+Register(d.regN()))
			d.readOpE(instr, 1, gpr)
			d.readImm8(instr, 2)
		},
	}
}

func newVEXGvEvId(c32, c64 Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			d.noVVVV()
			code, gpr := d.selectGPRW(c32, c64)
			instr.code = code
			instr.setOpRegister(0, gpr+Register(d.regN()))
			d.readOpE(instr, 1, gpr)
			instr.setImm32(2, d.readUint32())
		},
	}
}

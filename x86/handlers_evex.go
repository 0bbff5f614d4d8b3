// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

// EVEX handlers extend the register fields
// with R' and the X bit, and scale 8-bit
// displacements by the tuple type. The
// opmask and zeroing bits have already been
// stored on the instruction; handlers for
// instructions that cannot be masked reject
// them.
//
// Handlers that take canBroadcast accept
// EVEX.b on a memory operand as an embedded
// broadcast. Handlers that take onlySAE
// accept EVEX.b on a register form as
// suppress all exceptions, rather than as
// static rounding with the rounding mode in
// L'L.

func (d *Decoder) evexRegN() uint32 {
	return d.state.reg + d.state.extraRegisterBase + d.state.extraRegisterBaseEVEX
}

func (d *Decoder) evexRmN() uint32 {
	return d.state.rm + d.state.extraBaseRegisterBase + d.state.extraBaseRegisterBaseEVEX
}

// evexOpW sets operand n to the vector
// register in the rm field or to the
// memory operand.
func (d *Decoder) evexOpW(instr *Instruction, n int, base Register, tuple TupleType) {
	if d.state.mod == 3 {
		instr.setOpRegister(n, base+Register(d.evexRmN()))
	} else {
		d.readOpMemTuple(instr, n, tuple)
	}
}

// evexOpE sets operand n to the general
// purpose register in the rm field or to
// the memory operand. EVEX.X does not
// extend general purpose registers.
func (d *Decoder) evexOpE(instr *Instruction, n int, gpr Register, tuple TupleType) {
	if d.state.mod == 3 {
		instr.setOpRegister(n, gpr+Register(d.rmN()))
	} else {
		d.readOpMemTuple(instr, n, tuple)
	}
}

// evexOpM is evexOpW for operands that must
// be in memory.
func (d *Decoder) evexOpM(instr *Instruction, n int, tuple TupleType) {
	if d.state.mod == 3 {
		d.setInvalid()
		return
	}

	d.readOpMemTuple(instr, n, tuple)
}

// evexOpWB is evexOpW for operands that
// may use embedded broadcast. A register
// form must not set EVEX.b.
func (d *Decoder) evexOpWB(instr *Instruction, n int, base Register, tuple TupleType, canBroadcast bool) {
	if d.state.mod == 3 {
		instr.setOpRegister(n, base+Register(d.evexRmN()))
		d.invalidIf(d.hasFlag(flagB))
		return
	}

	d.evexBroadcast(instr, canBroadcast)
	d.readOpMemTuple(instr, n, tuple)
}

// evexOpWer is evexOpWB for instructions
// with embedded rounding or SAE.
func (d *Decoder) evexOpWer(instr *Instruction, n int, base Register, tuple TupleType, onlySAE, canBroadcast bool) {
	if d.state.mod == 3 {
		instr.setOpRegister(n, base+Register(d.evexRmN()))
		d.evexRounding(instr, onlySAE)
		return
	}

	d.evexBroadcast(instr, canBroadcast)
	d.readOpMemTuple(instr, n, tuple)
}

func (d *Decoder) evexBroadcast(instr *Instruction, canBroadcast bool) {
	if !d.hasFlag(flagB) {
		return
	}

	if canBroadcast {
		instr.flags |= instrBroadcast
	} else {
		d.invalidIf(true)
	}
}

// evexRounding applies EVEX.b on a register
// form. The rounding mode is stored in L'L,
// so the vector length is then 512 bits.
func (d *Decoder) evexRounding(instr *Instruction, onlySAE bool) {
	if !d.hasFlag(flagB) {
		return
	}

	if onlySAE {
		instr.flags |= instrSAE
	} else {
		instr.rc = RoundToNearest + RoundingControl(d.state.vectorLength)
	}
}

// evexNoMask marks the instruction invalid
// if it uses an opmask or zeroing.
func (d *Decoder) evexNoMask() {
	d.invalidIf(d.hasFlag(flagZ) || d.state.aaa != 0)
}

// evexNoBZ marks the instruction invalid if
// EVEX.b or EVEX.z is set.
func (d *Decoder) evexNoBZ() {
	d.invalidIf(d.hasFlag(flagB | flagZ))
}

// evexKDest marks the instruction invalid
// if the destination, an opmask register,
// is named with register extension bits or
// zeroing.
func (d *Decoder) evexKDest() {
	d.invalidIf(d.hasFlag(flagZ) || d.state.extraRegisterBase|d.state.extraRegisterBaseEVEX != 0)
}

func newEVEXVHEver(base Register, cW0, cW1 Code, tuple TupleType, onlySAE, noERd bool) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			d.evexNoMask()
			code, gpr := d.selectGPRW(cW0, cW1)
			instr.code = code
			instr.setOpRegister(0, base+Register(d.evexRegN()))
			instr.setOpRegister(1, d.vvvvReg(base))
			if d.state.mod == 3 {
				instr.setOpRegister(2, gpr+Register(d.rmN()))

				// A 32-bit source is always
				// exact, so only the 64-bit form
				// can round.
				if !noERd || d.is64W() {
					d.evexRounding(instr, onlySAE)
				}
			} else {
				d.invalidIf(d.hasFlag(flagB))
				d.readOpMemTuple(instr, 2, tuple)
			}
		},
	}
}

func newEVEXVHEvIb(base Register, cW0, cW1 Code, tupleW0, tupleW1 TupleType) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			d.evexNoBZ()
			d.evexNoMask()
			code, gpr := d.selectGPRW(cW0, cW1)
			tuple := tupleW0
			if d.is64W() {
				tuple = tupleW1
			}
			instr.code = code
			instr.setOpRegister(0, base+Register(d.evexRegN()))
			instr.setOpRegister(1, d.vvvvReg(base))
			d.evexOpE(instr, 2, gpr, tuple)
			d.readImm8(instr, 3)
		},
	}
}

func newEVEXEdVIb(base Register, c32, c64 Code, tuple32, tuple64 TupleType) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			d.evexNoBZ()
			d.evexNoMask()
			d.noVVVV()
			code, gpr := d.selectGPRW(c32, c64)
			tuple := tuple32
			if d.is64W() {
				tuple = tuple64
			}
			instr.code = code
			d.evexOpE(instr, 0, gpr, tuple)
			instr.setOpRegister(1, base+Register(d.evexRegN()))
			d.readImm8(instr, 2)
		},
	}
}

func newEVEXGvMVXIb(base Register, c32, c64 Code, tuple32, tuple64 TupleType) *handler {
	return newEVEXEdVIb(base, c32, c64, tuple32, tuple64)
}

func newEVEXVkHWer(base Register, code Code, tuple TupleType, onlySAE, canBroadcast bool) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			instr.code = code
			instr.setOpRegister(0, base+Register(d.evexRegN()))
			instr.setOpRegister(1, d.vvvvReg(base))
			d.evexOpWer(instr, 2, base, tuple, onlySAE, canBroadcast)
		},
	}
}

func newEVEXVkWer(base1, base2 Register, code Code, tuple TupleType, onlySAE, canBroadcast bool) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			d.noVVVV()
			instr.code = code
			instr.setOpRegister(0, base1+Register(d.evexRegN()))
			d.evexOpWer(instr, 1, base2, tuple, onlySAE, canBroadcast)
		},
	}
}

func newEVEXVkWIber(base1, base2 Register, code Code, tuple TupleType, onlySAE, canBroadcast bool) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			d.noVVVV()
			instr.code = code
			instr.setOpRegister(0, base1+Register(d.evexRegN()))
			d.evexOpWer(instr, 1, base2, tuple, onlySAE, canBroadcast)
			d.readImm8(instr, 2)
		},
	}
}

func newEVEXVkW(base1, base2 Register, code Code, tuple TupleType, canBroadcast bool) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			d.noVVVV()
			instr.code = code
			instr.setOpRegister(0, base1+Register(d.evexRegN()))
			d.evexOpWB(instr, 1, base2, tuple, canBroadcast)
		},
	}
}

func newEVEXVkWIb(base1, base2 Register, code Code, tuple TupleType, canBroadcast bool) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			d.noVVVV()
			instr.code = code
			instr.setOpRegister(0, base1+Register(d.evexRegN()))
			d.evexOpWB(instr, 1, base2, tuple, canBroadcast)
			d.readImm8(instr, 2)
		},
	}
}

// newEVEXWkV decodes stores. Zeroing is not
// allowed on a memory destination.
func newEVEXWkV(base1, base2 Register, code Code, tuple TupleType) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			d.invalidIf(d.hasFlag(flagB) || d.state.vvvv != 0)
			instr.code = code
			if d.state.mod == 3 {
				instr.setOpRegister(0, base1+Register(d.evexRmN()))
			} else {
				d.invalidIf(d.hasFlag(flagZ))
				d.readOpMemTuple(instr, 0, tuple)
			}
			instr.setOpRegister(1, base2+Register(d.evexRegN()))
		},
	}
}

func newEVEXWkVIb(base1, base2 Register, code Code, tuple TupleType) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			d.invalidIf(d.hasFlag(flagB) || d.state.vvvv != 0)
			instr.code = code
			if d.state.mod == 3 {
				instr.setOpRegister(0, base1+Register(d.evexRmN()))
			} else {
				d.invalidIf(d.hasFlag(flagZ))
				d.readOpMemTuple(instr, 0, tuple)
			}
			instr.setOpRegister(1, base2+Register(d.evexRegN()))
			d.readImm8(instr, 2)
		},
	}
}

// newEVEXWkVIber decodes VCVTPS2PH, which
// takes SAE on its register form.
func newEVEXWkVIber(base1, base2 Register, code Code, tuple TupleType, onlySAE bool) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			d.noVVVV()
			instr.code = code
			if d.state.mod == 3 {
				instr.setOpRegister(0, base1+Register(d.evexRmN()))
				d.evexRounding(instr, onlySAE)
			} else {
				d.invalidIf(d.hasFlag(flagB | flagZ))
				d.readOpMemTuple(instr, 0, tuple)
			}
			instr.setOpRegister(1, base2+Register(d.evexRegN()))
			d.readImm8(instr, 2)
		},
	}
}

func newEVEXVkM(base Register, code Code, tuple TupleType) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			d.invalidIf(d.hasFlag(flagB) || d.state.vvvv != 0)
			instr.code = code
			instr.setOpRegister(0, base+Register(d.evexRegN()))
			d.evexOpM(instr, 1, tuple)
		},
	}
}

func newEVEXHkWIb(base1, base2 Register, code Code, tuple TupleType, canBroadcast bool) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			instr.code = code
			instr.setOpRegister(0, d.vvvvReg(base1))
			d.evexOpWB(instr, 1, base2, tuple, canBroadcast)
			d.readImm8(instr, 2)
		},
	}
}

func newEVEXVWer(base1, base2 Register, code Code, tuple TupleType, onlySAE bool) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			d.evexNoMask()
			d.noVVVV()
			instr.code = code
			instr.setOpRegister(0, base1+Register(d.evexRegN()))
			d.evexOpWer(instr, 1, base2, tuple, onlySAE, false)
		},
	}
}

func newEVEXVW(base1, base2 Register, code Code, tuple TupleType) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			d.evexNoBZ()
			d.evexNoMask()
			d.noVVVV()
			instr.code = code
			instr.setOpRegister(0, base1+Register(d.evexRegN()))
			d.evexOpW(instr, 1, base2, tuple)
		},
	}
}

func newEVEXWV(base Register, code Code, tuple TupleType) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			d.evexNoBZ()
			d.evexNoMask()
			d.noVVVV()
			instr.code = code
			d.evexOpW(instr, 0, base, tuple)
			instr.setOpRegister(1, base+Register(d.evexRegN()))
		},
	}
}

func newEVEXVM(base Register, code Code, tuple TupleType) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			d.evexNoBZ()
			d.evexNoMask()
			d.noVVVV()
			instr.code = code
			instr.setOpRegister(0, base+Register(d.evexRegN()))
			d.evexOpM(instr, 1, tuple)
		},
	}
}

func newEVEXMV(base Register, code Code, tuple TupleType) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			d.evexNoBZ()
			d.evexNoMask()
			d.noVVVV()
			instr.code = code
			d.evexOpM(instr, 0, tuple)
			instr.setOpRegister(1, base+Register(d.evexRegN()))
		},
	}
}

// newEVEXVK decodes VPMOVM2*, which copy an
// opmask register into a vector.
func newEVEXVK(base Register, code Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			d.evexNoBZ()
			d.evexNoMask()
			d.noVVVV()
			instr.code = code
			instr.setOpRegister(0, base+Register(d.evexRegN()))
			if d.state.mod != 3 {
				d.setInvalid()
				return
			}
			instr.setOpRegister(1, K0+Register(d.state.rm))
		},
	}
}

// newEVEXKR decodes VPMOV*2M, which copy a
// vector into an opmask register.
func newEVEXKR(base Register, code Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			d.evexNoBZ()
			d.evexNoMask()
			d.noVVVV()
			d.evexKDest()
			instr.code = code
			instr.setOpRegister(0, K0+Register(d.state.reg))
			if d.state.mod != 3 {
				d.setInvalid()
				return
			}
			instr.setOpRegister(1, base+Register(d.evexRmN()))
		},
	}
}

func newEVEXKkHW(base Register, code Code, tuple TupleType, canBroadcast bool) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			d.evexKDest()
			instr.code = code
			instr.setOpRegister(0, K0+Register(d.state.reg))
			instr.setOpRegister(1, d.vvvvReg(base))
			d.evexOpWB(instr, 2, base, tuple, canBroadcast)
		},
	}
}

func newEVEXKkHWIb(base Register, code Code, tuple TupleType, canBroadcast bool) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			d.evexKDest()
			instr.code = code
			instr.setOpRegister(0, K0+Register(d.state.reg))
			instr.setOpRegister(1, d.vvvvReg(base))
			d.evexOpWB(instr, 2, base, tuple, canBroadcast)
			d.readImm8(instr, 3)
		},
	}
}

// newEVEXKkHWIbSAE decodes the compares,
// which take SAE on their register forms.
func newEVEXKkHWIbSAE(base Register, code Code, tuple TupleType, canBroadcast bool) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			d.evexKDest()
			instr.code = code
			instr.setOpRegister(0, K0+Register(d.state.reg))
			instr.setOpRegister(1, d.vvvvReg(base))
			d.evexOpWer(instr, 2, base, tuple, true, canBroadcast)
			d.readImm8(instr, 3)
		},
	}
}

func newEVEXKkWIb(base Register, code Code, tuple TupleType, canBroadcast bool) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			d.evexKDest()
			d.noVVVV()
			instr.code = code
			instr.setOpRegister(0, K0+Register(d.state.reg))
			d.evexOpWB(instr, 1, base, tuple, canBroadcast)
			d.readImm8(instr, 2)
		},
	}
}

func newEVEXVkHW(base1, base2, base3 Register, code Code, tuple TupleType, canBroadcast bool) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			instr.code = code
			instr.setOpRegister(0, base1+Register(d.evexRegN()))
			instr.setOpRegister(1, d.vvvvReg(base2))
			d.evexOpWB(instr, 2, base3, tuple, canBroadcast)
		},
	}
}

func newEVEXVkHWIb(base1, base2, base3 Register, code Code, tuple TupleType, canBroadcast bool) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			instr.code = code
			instr.setOpRegister(0, base1+Register(d.evexRegN()))
			instr.setOpRegister(1, d.vvvvReg(base2))
			d.evexOpWB(instr, 2, base3, tuple, canBroadcast)
			d.readImm8(instr, 3)
		},
	}
}

func newEVEXVkHWIber(base Register, code Code, tuple TupleType, onlySAE, canBroadcast bool) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			instr.code = code
			instr.setOpRegister(0, base+Register(d.evexRegN()))
			instr.setOpRegister(1, d.vvvvReg(base))
			d.evexOpWer(instr, 2, base, tuple, onlySAE, canBroadcast)
			d.readImm8(instr, 3)
		},
	}
}

func newEVEXVkHM(base Register, code Code, tuple TupleType) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			instr.code = code
			instr.setOpRegister(0, base+Register(d.evexRegN()))
			instr.setOpRegister(1, d.vvvvReg(base))
			d.invalidIf(d.hasFlag(flagB))
			d.evexOpM(instr, 2, tuple)
		},
	}
}

// newEVEXWkHV decodes the register form of
// VMOVSS and VMOVSD with the destination in
// the rm field.
func newEVEXWkHV(base Register, code Code, tuple TupleType) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			d.invalidIf(d.hasFlag(flagB))
			instr.code = code
			instr.setOpRegister(0, base+Register(d.evexRmN()))
			instr.setOpRegister(1, d.vvvvReg(base))
			instr.setOpRegister(2, base+Register(d.evexRegN()))
		},
	}
}

func newEVEXVHWIb(base Register, code Code, tuple TupleType) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			d.evexNoBZ()
			d.evexNoMask()
			instr.code = code
			instr.setOpRegister(0, base+Register(d.evexRegN()))
			instr.setOpRegister(1, d.vvvvReg(base))
			d.evexOpW(instr, 2, base, tuple)
			d.readImm8(instr, 3)
		},
	}
}

func newEVEXVHW(base Register, codeR, codeM Code, tuple TupleType) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			d.evexNoBZ()
			d.evexNoMask()
			instr.setOpRegister(0, base+Register(d.evexRegN()))
			instr.setOpRegister(1, d.vvvvReg(base))
			if d.state.mod == 3 {
				instr.code = codeR
				instr.setOpRegister(2, base+Register(d.evexRmN()))
			} else {
				instr.code = codeM
				d.readOpMemTuple(instr, 2, tuple)
			}
		},
	}
}

func newEVEXVHM(base Register, code Code, tuple TupleType) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			d.evexNoBZ()
			d.evexNoMask()
			instr.code = code
			instr.setOpRegister(0, base+Register(d.evexRegN()))
			instr.setOpRegister(1, d.vvvvReg(base))
			d.evexOpM(instr, 2, tuple)
		},
	}
}

// newEVEXGvWer decodes the scalar
// conversions to general purpose registers.
func newEVEXGvWer(base Register, cW0, cW1 Code, tuple TupleType, onlySAE bool) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			d.evexNoMask()
			d.noVVVV()
			d.invalidIf(d.state.extraRegisterBaseEVEX != 0)
			code, gpr := d.selectGPRW(cW0, cW1)
			instr.code = code
			instr.setOpRegister(0, gpr+Register(d.regN()))
			d.evexOpWer(instr, 1, base, tuple, onlySAE, false)
		},
	}
}

func newEVEXVXEv(c32, c64 Code, tuple TupleType) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			d.evexNoBZ()
			d.evexNoMask()
			d.noVVVV()
			code, gpr := d.selectGPRW(c32, c64)
			instr.code = code
			instr.setOpRegister(0, XMM0+Register(d.evexRegN()))
			d.evexOpE(instr, 1, gpr, tuple)
		},
	}
}

func newEVEXEvVX(c32, c64 Code, tuple TupleType) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			d.evexNoBZ()
			d.evexNoMask()
			d.noVVVV()
			code, gpr := d.selectGPRW(c32, c64)
			instr.code = code
			d.evexOpE(instr, 0, gpr, tuple)
			instr.setOpRegister(1, XMM0+Register(d.evexRegN()))
		},
	}
}

func newEVEXEvVXIb(base Register, c32, c64 Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			d.evexNoBZ()
			d.evexNoMask()
			d.noVVVV()
			d.invalidIf(d.state.extraRegisterBaseEVEX != 0)
			code, gpr := d.selectGPRW(c32, c64)
			instr.code = code
			instr.setOpRegister(0, gpr+Register(d.regN()))
			if d.state.mod != 3 {
				d.setInvalid()
			} else {
				instr.setOpRegister(1, base+Register(d.evexRmN()))
			}
			d.readImm8(instr, 2)
		},
	}
}

// newEVEXVkEvREXW decodes the broadcasts
// from a general purpose register. Where
// there is no 64-bit form, c64 is INVALID.
func newEVEXVkEvREXW(base Register, c32, c64 Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			d.invalidIf(d.hasFlag(flagB) || d.state.vvvv != 0)
			code, gpr := d.selectGPRW(c32, c64)
			if code == INVALID {
				d.setInvalid()
			}
			instr.code = code
			instr.setOpRegister(0, base+Register(d.evexRegN()))
			if d.state.mod != 3 {
				d.setInvalid()
				return
			}
			instr.setOpRegister(1, gpr+Register(d.rmN()))
		},
	}
}

// vsibInvalid reports whether a gather or
// scatter is malformed. These must use an
// opmask, which they clear as elements
// complete, and cannot zero.
func (d *Decoder) vsibInvalid() bool {
	return d.hasFlag(flagB|flagZ) || d.state.vvvv&0x0f != 0 || d.state.aaa == 0
}

// newEVEXVkVSIB decodes the gathers. The
// destination must differ from the index.
func newEVEXVkVSIB(base, vsibIndex Register, code Code, tuple TupleType) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			d.invalidIf(d.vsibInvalid())
			instr.code = code
			regNum := d.evexRegN()
			instr.setOpRegister(0, base+Register(regNum))
			if d.state.mod == 3 {
				d.setInvalid()
				return
			}

			d.readOpMemVSIB(instr, 1, vsibIndex, tuple)
			d.invalidIf(regNum == uint32(instr.memIndex-XMM0)%vectorRegisterCount)
		},
	}
}

// newEVEXVSIBk1VX decodes the scatters.
func newEVEXVSIBk1VX(vsibIndex, base Register, code Code, tuple TupleType) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			d.invalidIf(d.vsibInvalid())
			instr.code = code
			if d.state.mod == 3 {
				d.setInvalid()
			} else {
				d.readOpMemVSIB(instr, 0, vsibIndex, tuple)
			}
			instr.setOpRegister(1, base+Register(d.evexRegN()))
		},
	}
}

// newEVEXVSIBk1 decodes the gather and
// scatter prefetches, which have only a
// memory operand.
func newEVEXVSIBk1(vsibIndex Register, code Code, tuple TupleType) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			d.invalidIf(d.vsibInvalid())
			instr.code = code
			if d.state.mod == 3 {
				d.setInvalid()
				return
			}
			d.readOpMemVSIB(instr, 0, vsibIndex, tuple)
		},
	}
}

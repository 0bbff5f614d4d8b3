// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

// x87 instructions. Opcodes D8 to DF use the
// reg field to select the memory forms and
// the whole ModR/M byte to select register
// forms.

// newMf decodes a memory operand whose size
// depends on the operand size, such as the
// 14 or 28 byte environment of FLDENV.
func newMf(c16, c32 Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			if d.state.operandSize == size16 {
				instr.code = c16
			} else {
				instr.code = c32
			}
			d.readOpM(instr, 0)
		},
	}
}

// newMfx decodes a memory operand of a fixed
// size.
func newMfx(code Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			instr.code = code
			d.readOpM(instr, 0)
		},
	}
}

func newSTSTi(code Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			instr.code = code
			instr.setOpRegister(0, ST0)
			instr.setOpRegister(1, ST0+Register(d.state.rm))
		},
	}
}

func newSTiST(code Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			instr.code = code
			instr.setOpRegister(0, ST0+Register(d.state.rm))
			instr.setOpRegister(1, ST0)
		},
	}
}

func newSTi(code Code) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			instr.code = code
			instr.setOpRegister(0, ST0+Register(d.state.rm))
		},
	}
}

// newFpuReg decodes a form with a fixed
// register operand, such as FNSTSW AX.
func newFpuReg(code Code, reg Register) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			instr.code = code
			instr.setOpRegister(0, reg)
		},
	}
}


// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

// MVEX instructions operate on 512-bit
// vectors only. The SSS field selects a
// register swizzle on a register operand
// or an up or down conversion on a memory
// operand. With the EH bit set, a register
// form of a floating point instruction
// takes a static rounding mode and SAE
// instead, and a memory form gives an
// eviction hint.

// mvexInfo describes what an MVEX
// instruction allows.
type mvexInfo struct {
	// elem64 is set for instructions on
	// 64-bit elements, which support only
	// full, 1to8, and 4to8 memory forms.
	elem64 bool

	// float is set for floating point
	// instructions, whose register forms
	// accept rounding and SAE.
	float bool

	// badConv is a mask of SSS values that
	// are reserved on a memory operand.
	badConv uint8
}

// The MVEX instruction classes.
var (
	mvexLoadFloat32 = mvexInfo{float: true, badConv: 1 << 5}
	mvexLoadInt32   = mvexInfo{}
	mvexStoreFloat  = mvexInfo{float: true, badConv: 1<<1 | 1<<2 | 1<<5}
	mvexStoreInt32  = mvexInfo{badConv: 1<<1 | 1<<2 | 1<<3}
	mvexFloat64     = mvexInfo{elem64: true, float: true, badConv: 0xf8}
	mvexInt64       = mvexInfo{elem64: true, badConv: 0xf8}
	mvexStore64     = mvexInfo{elem64: true, badConv: 0xfe}
)

// mvexOpW sets operand n to the ZMM register
// in the rm field or to the memory operand,
// applying SSS and EH as info allows.
func (d *Decoder) mvexOpW(instr *Instruction, n int, info mvexInfo) {
	sss := d.state.sss
	if d.state.mod == 3 {
		instr.setOpRegister(n, ZMM0+Register(d.evexRmN()))
		switch {
		case !d.hasFlag(flagMvexEH):
			instr.mvexConv = MvexRegSwizzleNone + MvexRegMemConv(sss)
		case info.float:
			if sss&4 != 0 {
				instr.flags |= instrSAE
			}
			instr.rc = RoundToNearest + RoundingControl(sss&3)
		default:
			d.invalidIf(sss != 0)
		}

		return
	}

	d.mvexOpM(instr, n, info)
}

// mvexOpM sets operand n to a memory
// operand, which must not be a register.
func (d *Decoder) mvexOpM(instr *Instruction, n int, info mvexInfo) {
	if d.state.mod == 3 {
		d.setInvalid()
		return
	}

	sss := d.state.sss
	if d.hasFlag(flagMvexEH) {
		instr.flags |= instrMvexEH
	}

	d.invalidIf(info.badConv&(1<<sss) != 0)
	instr.mvexConv = MvexMemConvNone + MvexRegMemConv(sss)
	disp8N, ok := d.mvexDisp8N(info.elem64)
	d.invalidIf(!ok)
	d.readOpMemN(instr, n, disp8N)
}

// newMVEXVW decodes loads and register
// moves.
func newMVEXVW(code Code, info mvexInfo) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			d.noVVVV()
			instr.code = code
			instr.setOpRegister(0, ZMM0+Register(d.evexRegN()))
			d.mvexOpW(instr, 1, info)
		},
	}
}

// newMVEXMV decodes stores, which have no
// register form.
func newMVEXMV(code Code, info mvexInfo) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			d.noVVVV()
			instr.code = code
			d.mvexOpM(instr, 0, info)
			instr.setOpRegister(1, ZMM0+Register(d.evexRegN()))
		},
	}
}

func newMVEXVHW(code Code, info mvexInfo) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			instr.code = code
			instr.setOpRegister(0, ZMM0+Register(d.evexRegN()))
			instr.setOpRegister(1, d.vvvvReg(ZMM0))
			d.mvexOpW(instr, 2, info)
		},
	}
}

// newMVEXKHW decodes the compares into an
// opmask register.
func newMVEXKHW(code Code, info mvexInfo) *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			d.invalidIf(d.state.extraRegisterBase|d.state.extraRegisterBaseEVEX != 0)
			instr.code = code
			instr.setOpRegister(0, K0+Register(d.state.reg))
			instr.setOpRegister(1, d.vvvvReg(ZMM0))
			d.mvexOpW(instr, 2, info)
		},
	}
}

// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

// 3DNow! instructions are encoded as
// 0F 0F /r ib, where the trailing byte
// selects the operation.
var d3nowCodes = [256]Code{
	0x0c: D3NOW_Pi2fw_mm_mmm64,
	0x0d: D3NOW_Pi2fd_mm_mmm64,
	0x1c: D3NOW_Pf2iw_mm_mmm64,
	0x1d: D3NOW_Pf2id_mm_mmm64,
	0x86: D3NOW_Pfrcpv_mm_mmm64,
	0x87: D3NOW_Pfrsqrtv_mm_mmm64,
	0x8a: D3NOW_Pfnacc_mm_mmm64,
	0x8e: D3NOW_Pfpnacc_mm_mmm64,
	0x90: D3NOW_Pfcmpge_mm_mmm64,
	0x94: D3NOW_Pfmin_mm_mmm64,
	0x96: D3NOW_Pfrcp_mm_mmm64,
	0x97: D3NOW_Pfrsqrt_mm_mmm64,
	0x9a: D3NOW_Pfsub_mm_mmm64,
	0x9e: D3NOW_Pfadd_mm_mmm64,
	0xa0: D3NOW_Pfcmpgt_mm_mmm64,
	0xa4: D3NOW_Pfmax_mm_mmm64,
	0xa6: D3NOW_Pfrcpit1_mm_mmm64,
	0xa7: D3NOW_Pfrsqit1_mm_mmm64,
	0xaa: D3NOW_Pfsubr_mm_mmm64,
	0xae: D3NOW_Pfacc_mm_mmm64,
	0xb0: D3NOW_Pfcmpeq_mm_mmm64,
	0xb4: D3NOW_Pfmul_mm_mmm64,
	0xb6: D3NOW_Pfrcpit2_mm_mmm64,
	0xb7: D3NOW_Pmulhrw_mm_mmm64,
	0xbb: D3NOW_Pswapd_mm_mmm64,
	0xbf: D3NOW_Pavgusb_mm_mmm64,
}

// newD3NOW decodes a 3DNow! instruction.
// The suffix is read after any displacement.
func newD3NOW() *handler {
	return &handler{
		hasModRM: true,
		decode: func(d *Decoder, instr *Instruction) {
			instr.setOpRegister(0, MM0+Register(d.state.reg))
			d.readOpQ(instr, 1)
			instr.code = d3nowCodes[d.readByte()]
			if instr.code == INVALID {
				d.setInvalid()
			}
		},
	}
}

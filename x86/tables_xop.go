// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

var xopMap8 = fillInvalid([256]*handler{
	0x85: newMandatoryPrefix2(
		newVectorLengthVEX(
			newW(newVEXVHWIs4(XMM0, XOP_Vpmacssww_VX_HX_WX_Is4X), invalid),
			invalid,
		),
		invalid,
		invalid,
		invalid,
	),
	0x86: newMandatoryPrefix2(
		newVectorLengthVEX(
			newW(newVEXVHWIs4(XMM0, XOP_Vpmacsswd_VX_HX_WX_Is4X), invalid),
			invalid,
		),
		invalid,
		invalid,
		invalid,
	),
	0x87: newMandatoryPrefix2(
		newVectorLengthVEX(
			newW(newVEXVHWIs4(XMM0, XOP_Vpmacssdql_VX_HX_WX_Is4X), invalid),
			invalid,
		),
		invalid,
		invalid,
		invalid,
	),
	0x8e: newMandatoryPrefix2(
		newVectorLengthVEX(
			newW(newVEXVHWIs4(XMM0, XOP_Vpmacssdd_VX_HX_WX_Is4X), invalid),
			invalid,
		),
		invalid,
		invalid,
		invalid,
	),
	0x8f: newMandatoryPrefix2(
		newVectorLengthVEX(
			newW(newVEXVHWIs4(XMM0, XOP_Vpmacssdqh_VX_HX_WX_Is4X), invalid),
			invalid,
		),
		invalid,
		invalid,
		invalid,
	),
	0x95: newMandatoryPrefix2(
		newVectorLengthVEX(
			newW(newVEXVHWIs4(XMM0, XOP_Vpmacsww_VX_HX_WX_Is4X), invalid),
			invalid,
		),
		invalid,
		invalid,
		invalid,
	),
	0x96: newMandatoryPrefix2(
		newVectorLengthVEX(
			newW(newVEXVHWIs4(XMM0, XOP_Vpmacswd_VX_HX_WX_Is4X), invalid),
			invalid,
		),
		invalid,
		invalid,
		invalid,
	),
	0x97: newMandatoryPrefix2(
		newVectorLengthVEX(
			newW(newVEXVHWIs4(XMM0, XOP_Vpmacsdql_VX_HX_WX_Is4X), invalid),
			invalid,
		),
		invalid,
		invalid,
		invalid,
	),
	0x9e: newMandatoryPrefix2(
		newVectorLengthVEX(
			newW(newVEXVHWIs4(XMM0, XOP_Vpmacsdd_VX_HX_WX_Is4X), invalid),
			invalid,
		),
		invalid,
		invalid,
		invalid,
	),
	0x9f: newMandatoryPrefix2(
		newVectorLengthVEX(
			newW(newVEXVHWIs4(XMM0, XOP_Vpmacsdqh_VX_HX_WX_Is4X), invalid),
			invalid,
		),
		invalid,
		invalid,
		invalid,
	),
	0xa2: newMandatoryPrefix2(
		newW(
			newVectorLengthVEX(
				newVEXVHWIs4(XMM0, XOP_Vpcmov_VX_HX_WX_Is4X),
				newVEXVHWIs4(YMM0, XOP_Vpcmov_VY_HY_WY_Is4Y),
			),
			newVectorLengthVEX(
				newVEXVHIs4W(XMM0, XOP_Vpcmov_VX_HX_Is4X_WX),
				newVEXVHIs4W(YMM0, XOP_Vpcmov_VY_HY_Is4Y_WY),
			),
		),
		invalid,
		invalid,
		invalid,
	),
	0xa3: newMandatoryPrefix2(
		newW(
			newVectorLengthVEX(newVEXVHWIs4(XMM0, XOP_Vpperm_VX_HX_WX_Is4X), invalid),
			newVectorLengthVEX(newVEXVHIs4W(XMM0, XOP_Vpperm_VX_HX_Is4X_WX), invalid),
		),
		invalid,
		invalid,
		invalid,
	),
	0xa6: newMandatoryPrefix2(
		newVectorLengthVEX(
			newW(newVEXVHWIs4(XMM0, XOP_Vpmadcsswd_VX_HX_WX_Is4X), invalid),
			invalid,
		),
		invalid,
		invalid,
		invalid,
	),
	0xb6: newMandatoryPrefix2(
		newVectorLengthVEX(
			newW(newVEXVHWIs4(XMM0, XOP_Vpmadcswd_VX_HX_WX_Is4X), invalid),
			invalid,
		),
		invalid,
		invalid,
		invalid,
	),
	0xc0: newMandatoryPrefix2(
		newVectorLengthVEX(
			newW(newVEXVWIb(XMM0, XOP_Vprotb_VX_WX_Ib, XOP_Vprotb_VX_WX_Ib), invalid),
			invalid,
		),
		invalid,
		invalid,
		invalid,
	),
	0xc1: newMandatoryPrefix2(
		newVectorLengthVEX(
			newW(newVEXVWIb(XMM0, XOP_Vprotw_VX_WX_Ib, XOP_Vprotw_VX_WX_Ib), invalid),
			invalid,
		),
		invalid,
		invalid,
		invalid,
	),
	0xc2: newMandatoryPrefix2(
		newVectorLengthVEX(
			newW(newVEXVWIb(XMM0, XOP_Vprotd_VX_WX_Ib, XOP_Vprotd_VX_WX_Ib), invalid),
			invalid,
		),
		invalid,
		invalid,
		invalid,
	),
	0xc3: newMandatoryPrefix2(
		newVectorLengthVEX(
			newW(newVEXVWIb(XMM0, XOP_Vprotq_VX_WX_Ib, XOP_Vprotq_VX_WX_Ib), invalid),
			invalid,
		),
		invalid,
		invalid,
		invalid,
	),
	0xcc: newMandatoryPrefix2(
		newVectorLengthVEX(
			newW(newVEXVHWIb(XMM0, XMM0, XMM0, XOP_Vpcomb_VX_HX_WX_Ib), invalid),
			invalid,
		),
		invalid,
		invalid,
		invalid,
	),
	0xcd: newMandatoryPrefix2(
		newVectorLengthVEX(
			newW(newVEXVHWIb(XMM0, XMM0, XMM0, XOP_Vpcomw_VX_HX_WX_Ib), invalid),
			invalid,
		),
		invalid,
		invalid,
		invalid,
	),
	0xce: newMandatoryPrefix2(
		newVectorLengthVEX(
			newW(newVEXVHWIb(XMM0, XMM0, XMM0, XOP_Vpcomd_VX_HX_WX_Ib), invalid),
			invalid,
		),
		invalid,
		invalid,
		invalid,
	),
	0xcf: newMandatoryPrefix2(
		newVectorLengthVEX(
			newW(newVEXVHWIb(XMM0, XMM0, XMM0, XOP_Vpcomq_VX_HX_WX_Ib), invalid),
			invalid,
		),
		invalid,
		invalid,
		invalid,
	),
	0xec: newMandatoryPrefix2(
		newVectorLengthVEX(
			newW(newVEXVHWIb(XMM0, XMM0, XMM0, XOP_Vpcomub_VX_HX_WX_Ib), invalid),
			invalid,
		),
		invalid,
		invalid,
		invalid,
	),
	0xed: newMandatoryPrefix2(
		newVectorLengthVEX(
			newW(newVEXVHWIb(XMM0, XMM0, XMM0, XOP_Vpcomuw_VX_HX_WX_Ib), invalid),
			invalid,
		),
		invalid,
		invalid,
		invalid,
	),
	0xee: newMandatoryPrefix2(
		newVectorLengthVEX(
			newW(newVEXVHWIb(XMM0, XMM0, XMM0, XOP_Vpcomud_VX_HX_WX_Ib), invalid),
			invalid,
		),
		invalid,
		invalid,
		invalid,
	),
	0xef: newMandatoryPrefix2(
		newVectorLengthVEX(
			newW(newVEXVHWIb(XMM0, XMM0, XMM0, XOP_Vpcomuq_VX_HX_WX_Ib), invalid),
			invalid,
		),
		invalid,
		invalid,
		invalid,
	),
})

var xop9Grp01 = [8]*handler{
	invalid,
	newMandatoryPrefix2(
		newVectorLengthVEX(newVEXHvEv(XOP_Blcfill_Hd_Ed, XOP_Blcfill_Hq_Eq), invalid),
		invalid,
		invalid,
		invalid,
	),
	newMandatoryPrefix2(
		newVectorLengthVEX(newVEXHvEv(XOP_Blsfill_Hd_Ed, XOP_Blsfill_Hq_Eq), invalid),
		invalid,
		invalid,
		invalid,
	),
	newMandatoryPrefix2(
		newVectorLengthVEX(newVEXHvEv(XOP_Blcs_Hd_Ed, XOP_Blcs_Hq_Eq), invalid),
		invalid,
		invalid,
		invalid,
	),
	newMandatoryPrefix2(
		newVectorLengthVEX(newVEXHvEv(XOP_Tzmsk_Hd_Ed, XOP_Tzmsk_Hq_Eq), invalid),
		invalid,
		invalid,
		invalid,
	),
	newMandatoryPrefix2(
		newVectorLengthVEX(newVEXHvEv(XOP_Blcic_Hd_Ed, XOP_Blcic_Hq_Eq), invalid),
		invalid,
		invalid,
		invalid,
	),
	newMandatoryPrefix2(
		newVectorLengthVEX(newVEXHvEv(XOP_Blsic_Hd_Ed, XOP_Blsic_Hq_Eq), invalid),
		invalid,
		invalid,
		invalid,
	),
	newMandatoryPrefix2(
		newVectorLengthVEX(newVEXHvEv(XOP_T1mskc_Hd_Ed, XOP_T1mskc_Hq_Eq), invalid),
		invalid,
		invalid,
		invalid,
	),
}

var xop9Grp02 = [8]*handler{
	invalid,
	newMandatoryPrefix2(
		newVectorLengthVEX(newVEXHvEv(XOP_Blcmsk_Hd_Ed, XOP_Blcmsk_Hq_Eq), invalid),
		invalid,
		invalid,
		invalid,
	),
	invalid,
	invalid,
	invalid,
	invalid,
	newMandatoryPrefix2(
		newVectorLengthVEX(newVEXHvEv(XOP_Blci_Hd_Ed, XOP_Blci_Hq_Eq), invalid),
		invalid,
		invalid,
		invalid,
	),
	invalid,
}

var xop9Grp12 = [8]*handler{
	newMandatoryPrefix2(
		newVectorLengthVEX(newVEXRdRq(XOP_Llwpcb_Rd, XOP_Llwpcb_Rq), invalid),
		invalid,
		invalid,
		invalid,
	),
	newMandatoryPrefix2(
		newVectorLengthVEX(newVEXRdRq(XOP_Slwpcb_Rd, XOP_Slwpcb_Rq), invalid),
		invalid,
		invalid,
		invalid,
	),
	invalid,
	invalid,
	invalid,
	invalid,
	invalid,
	invalid,
}

var xopMap9 = fillInvalid([256]*handler{
	0x01: newGroup(xop9Grp01),
	0x02: newGroup(xop9Grp02),
	0x12: newGroup(xop9Grp12),
	0x80: newMandatoryPrefix2(
		newVectorLengthVEX(
			newW(newVEXVW(XMM0, XMM0, XOP_Vfrczps_VX_WX), invalid),
			newW(newVEXVW(YMM0, YMM0, XOP_Vfrczps_VY_WY), invalid),
		),
		invalid,
		invalid,
		invalid,
	),
	0x81: newMandatoryPrefix2(
		newVectorLengthVEX(
			newW(newVEXVW(XMM0, XMM0, XOP_Vfrczpd_VX_WX), invalid),
			newW(newVEXVW(YMM0, YMM0, XOP_Vfrczpd_VY_WY), invalid),
		),
		invalid,
		invalid,
		invalid,
	),
	0x82: newMandatoryPrefix2(
		newVectorLengthVEX(newW(newVEXVW(XMM0, XMM0, XOP_Vfrczss_VX_WX), invalid), invalid),
		invalid,
		invalid,
		invalid,
	),
	0x83: newMandatoryPrefix2(
		newVectorLengthVEX(newW(newVEXVW(XMM0, XMM0, XOP_Vfrczsd_VX_WX), invalid), invalid),
		invalid,
		invalid,
		invalid,
	),
	0x90: newMandatoryPrefix2(
		newVectorLengthVEX(
			newW(
				newVEXVWH(XMM0, XOP_Vprotb_VX_WX_HX),
				newVEXVHW(
					XMM0,
					XMM0,
					XMM0,
					XOP_Vprotb_VX_HX_WX,
					XOP_Vprotb_VX_HX_WX,
				),
			),
			invalid,
		),
		invalid,
		invalid,
		invalid,
	),
	0x91: newMandatoryPrefix2(
		newVectorLengthVEX(
			newW(
				newVEXVWH(XMM0, XOP_Vprotw_VX_WX_HX),
				newVEXVHW(
					XMM0,
					XMM0,
					XMM0,
					XOP_Vprotw_VX_HX_WX,
					XOP_Vprotw_VX_HX_WX,
				),
			),
			invalid,
		),
		invalid,
		invalid,
		invalid,
	),
	0x92: newMandatoryPrefix2(
		newVectorLengthVEX(
			newW(
				newVEXVWH(XMM0, XOP_Vprotd_VX_WX_HX),
				newVEXVHW(
					XMM0,
					XMM0,
					XMM0,
					XOP_Vprotd_VX_HX_WX,
					XOP_Vprotd_VX_HX_WX,
				),
			),
			invalid,
		),
		invalid,
		invalid,
		invalid,
	),
	0x93: newMandatoryPrefix2(
		newVectorLengthVEX(
			newW(
				newVEXVWH(XMM0, XOP_Vprotq_VX_WX_HX),
				newVEXVHW(
					XMM0,
					XMM0,
					XMM0,
					XOP_Vprotq_VX_HX_WX,
					XOP_Vprotq_VX_HX_WX,
				),
			),
			invalid,
		),
		invalid,
		invalid,
		invalid,
	),
	0x94: newMandatoryPrefix2(
		newVectorLengthVEX(
			newW(
				newVEXVWH(XMM0, XOP_Vpshlb_VX_WX_HX),
				newVEXVHW(
					XMM0,
					XMM0,
					XMM0,
					XOP_Vpshlb_VX_HX_WX,
					XOP_Vpshlb_VX_HX_WX,
				),
			),
			invalid,
		),
		invalid,
		invalid,
		invalid,
	),
	0x95: newMandatoryPrefix2(
		newVectorLengthVEX(
			newW(
				newVEXVWH(XMM0, XOP_Vpshlw_VX_WX_HX),
				newVEXVHW(
					XMM0,
					XMM0,
					XMM0,
					XOP_Vpshlw_VX_HX_WX,
					XOP_Vpshlw_VX_HX_WX,
				),
			),
			invalid,
		),
		invalid,
		invalid,
		invalid,
	),
	0x96: newMandatoryPrefix2(
		newVectorLengthVEX(
			newW(
				newVEXVWH(XMM0, XOP_Vpshld_VX_WX_HX),
				newVEXVHW(
					XMM0,
					XMM0,
					XMM0,
					XOP_Vpshld_VX_HX_WX,
					XOP_Vpshld_VX_HX_WX,
				),
			),
			invalid,
		),
		invalid,
		invalid,
		invalid,
	),
	0x97: newMandatoryPrefix2(
		newVectorLengthVEX(
			newW(
				newVEXVWH(XMM0, XOP_Vpshlq_VX_WX_HX),
				newVEXVHW(
					XMM0,
					XMM0,
					XMM0,
					XOP_Vpshlq_VX_HX_WX,
					XOP_Vpshlq_VX_HX_WX,
				),
			),
			invalid,
		),
		invalid,
		invalid,
		invalid,
	),
	0x98: newMandatoryPrefix2(
		newVectorLengthVEX(
			newW(
				newVEXVWH(XMM0, XOP_Vpshab_VX_WX_HX),
				newVEXVHW(
					XMM0,
					XMM0,
					XMM0,
					XOP_Vpshab_VX_HX_WX,
					XOP_Vpshab_VX_HX_WX,
				),
			),
			invalid,
		),
		invalid,
		invalid,
		invalid,
	),
	0x99: newMandatoryPrefix2(
		newVectorLengthVEX(
			newW(
				newVEXVWH(XMM0, XOP_Vpshaw_VX_WX_HX),
				newVEXVHW(
					XMM0,
					XMM0,
					XMM0,
					XOP_Vpshaw_VX_HX_WX,
					XOP_Vpshaw_VX_HX_WX,
				),
			),
			invalid,
		),
		invalid,
		invalid,
		invalid,
	),
	0x9a: newMandatoryPrefix2(
		newVectorLengthVEX(
			newW(
				newVEXVWH(XMM0, XOP_Vpshad_VX_WX_HX),
				newVEXVHW(
					XMM0,
					XMM0,
					XMM0,
					XOP_Vpshad_VX_HX_WX,
					XOP_Vpshad_VX_HX_WX,
				),
			),
			invalid,
		),
		invalid,
		invalid,
		invalid,
	),
	0x9b: newMandatoryPrefix2(
		newVectorLengthVEX(
			newW(
				newVEXVWH(XMM0, XOP_Vpshaq_VX_WX_HX),
				newVEXVHW(
					XMM0,
					XMM0,
					XMM0,
					XOP_Vpshaq_VX_HX_WX,
					XOP_Vpshaq_VX_HX_WX,
				),
			),
			invalid,
		),
		invalid,
		invalid,
		invalid,
	),
	0xc1: newMandatoryPrefix2(
		newVectorLengthVEX(newW(newVEXVW(XMM0, XMM0, XOP_Vphaddbw_VX_WX), invalid), invalid),
		invalid,
		invalid,
		invalid,
	),
	0xc2: newMandatoryPrefix2(
		newVectorLengthVEX(newW(newVEXVW(XMM0, XMM0, XOP_Vphaddbd_VX_WX), invalid), invalid),
		invalid,
		invalid,
		invalid,
	),
	0xc3: newMandatoryPrefix2(
		newVectorLengthVEX(newW(newVEXVW(XMM0, XMM0, XOP_Vphaddbq_VX_WX), invalid), invalid),
		invalid,
		invalid,
		invalid,
	),
	0xc6: newMandatoryPrefix2(
		newVectorLengthVEX(newW(newVEXVW(XMM0, XMM0, XOP_Vphaddwd_VX_WX), invalid), invalid),
		invalid,
		invalid,
		invalid,
	),
	0xc7: newMandatoryPrefix2(
		newVectorLengthVEX(newW(newVEXVW(XMM0, XMM0, XOP_Vphaddwq_VX_WX), invalid), invalid),
		invalid,
		invalid,
		invalid,
	),
	0xcb: newMandatoryPrefix2(
		newVectorLengthVEX(newW(newVEXVW(XMM0, XMM0, XOP_Vphadddq_VX_WX), invalid), invalid),
		invalid,
		invalid,
		invalid,
	),
	0xd1: newMandatoryPrefix2(
		newVectorLengthVEX(
			newW(newVEXVW(XMM0, XMM0, XOP_Vphaddubw_VX_WX), invalid),
			invalid,
		),
		invalid,
		invalid,
		invalid,
	),
	0xd2: newMandatoryPrefix2(
		newVectorLengthVEX(
			newW(newVEXVW(XMM0, XMM0, XOP_Vphaddubd_VX_WX), invalid),
			invalid,
		),
		invalid,
		invalid,
		invalid,
	),
	0xd3: newMandatoryPrefix2(
		newVectorLengthVEX(
			newW(newVEXVW(XMM0, XMM0, XOP_Vphaddubq_VX_WX), invalid),
			invalid,
		),
		invalid,
		invalid,
		invalid,
	),
	0xd6: newMandatoryPrefix2(
		newVectorLengthVEX(
			newW(newVEXVW(XMM0, XMM0, XOP_Vphadduwd_VX_WX), invalid),
			invalid,
		),
		invalid,
		invalid,
		invalid,
	),
	0xd7: newMandatoryPrefix2(
		newVectorLengthVEX(
			newW(newVEXVW(XMM0, XMM0, XOP_Vphadduwq_VX_WX), invalid),
			invalid,
		),
		invalid,
		invalid,
		invalid,
	),
	0xdb: newMandatoryPrefix2(
		newVectorLengthVEX(
			newW(newVEXVW(XMM0, XMM0, XOP_Vphaddudq_VX_WX), invalid),
			invalid,
		),
		invalid,
		invalid,
		invalid,
	),
	0xe1: newMandatoryPrefix2(
		newVectorLengthVEX(newW(newVEXVW(XMM0, XMM0, XOP_Vphsubbw_VX_WX), invalid), invalid),
		invalid,
		invalid,
		invalid,
	),
	0xe2: newMandatoryPrefix2(
		newVectorLengthVEX(newW(newVEXVW(XMM0, XMM0, XOP_Vphsubwd_VX_WX), invalid), invalid),
		invalid,
		invalid,
		invalid,
	),
	0xe3: newMandatoryPrefix2(
		newVectorLengthVEX(newW(newVEXVW(XMM0, XMM0, XOP_Vphsubdq_VX_WX), invalid), invalid),
		invalid,
		invalid,
		invalid,
	),
})

var xop10Grp12 = [8]*handler{
	newMandatoryPrefix2(
		newVectorLengthVEX(newVEXHvEdId(XOP_Lwpins_Hd_Ed_Id, XOP_Lwpins_Hq_Ed_Id), invalid),
		invalid,
		invalid,
		invalid,
	),
	newMandatoryPrefix2(
		newVectorLengthVEX(newVEXHvEdId(XOP_Lwpval_Hd_Ed_Id, XOP_Lwpval_Hq_Ed_Id), invalid),
		invalid,
		invalid,
		invalid,
	),
	invalid,
	invalid,
	invalid,
	invalid,
	invalid,
	invalid,
}

var xopMap10 = fillInvalid([256]*handler{
	0x10: newMandatoryPrefix2(
		newVectorLengthVEX(newVEXGvEvId(XOP_Bextr_Gd_Ed_Id, XOP_Bextr_Gq_Eq_Id), invalid),
		invalid,
		invalid,
		invalid,
	),
	0x12: newGroup(xop10Grp12),
})

// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

// The VEX maps are shared by all three
// modes. Handlers that differ in 64-bit
// mode check the mode themselves.

var vexGrp0F71 = [8]*handler{
	invalid,
	invalid,
	newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXHRIb(XMM0, VEX_Vpsrlw_HX_RX_Ib),
			newVEXHRIb(YMM0, VEX_Vpsrlw_HY_RY_Ib),
		),
		invalid,
		invalid,
	),
	invalid,
	newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXHRIb(XMM0, VEX_Vpsraw_HX_RX_Ib),
			newVEXHRIb(YMM0, VEX_Vpsraw_HY_RY_Ib),
		),
		invalid,
		invalid,
	),
	invalid,
	newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXHRIb(XMM0, VEX_Vpsllw_HX_RX_Ib),
			newVEXHRIb(YMM0, VEX_Vpsllw_HY_RY_Ib),
		),
		invalid,
		invalid,
	),
	invalid,
}

var vexGrp0F72 = [8]*handler{
	invalid,
	invalid,
	newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXHRIb(XMM0, VEX_Vpsrld_HX_RX_Ib),
			newVEXHRIb(YMM0, VEX_Vpsrld_HY_RY_Ib),
		),
		invalid,
		invalid,
	),
	invalid,
	newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXHRIb(XMM0, VEX_Vpsrad_HX_RX_Ib),
			newVEXHRIb(YMM0, VEX_Vpsrad_HY_RY_Ib),
		),
		invalid,
		invalid,
	),
	invalid,
	newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXHRIb(XMM0, VEX_Vpslld_HX_RX_Ib),
			newVEXHRIb(YMM0, VEX_Vpslld_HY_RY_Ib),
		),
		invalid,
		invalid,
	),
	invalid,
}

var vexGrp0F73 = [8]*handler{
	invalid,
	invalid,
	newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXHRIb(XMM0, VEX_Vpsrlq_HX_RX_Ib),
			newVEXHRIb(YMM0, VEX_Vpsrlq_HY_RY_Ib),
		),
		invalid,
		invalid,
	),
	newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXHRIb(XMM0, VEX_Vpsrldq_HX_RX_Ib),
			newVEXHRIb(YMM0, VEX_Vpsrldq_HY_RY_Ib),
		),
		invalid,
		invalid,
	),
	invalid,
	invalid,
	newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXHRIb(XMM0, VEX_Vpsllq_HX_RX_Ib),
			newVEXHRIb(YMM0, VEX_Vpsllq_HY_RY_Ib),
		),
		invalid,
		invalid,
	),
	newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXHRIb(XMM0, VEX_Vpslldq_HX_RX_Ib),
			newVEXHRIb(YMM0, VEX_Vpslldq_HY_RY_Ib),
		),
		invalid,
		invalid,
	),
}

var vexGrp0FAE = [8]*handler{
	invalid,
	invalid,
	newMandatoryPrefix2(
		newVectorLengthVEX(newVEXM(VEX_Vldmxcsr_Md), invalid),
		invalid,
		invalid,
		invalid,
	),
	newMandatoryPrefix2(
		newVectorLengthVEX(newVEXM(VEX_Vstmxcsr_Md), invalid),
		invalid,
		invalid,
		invalid,
	),
	invalid,
	invalid,
	invalid,
	invalid,
}

var vexGrp0F38F3 = [8]*handler{
	invalid,
	newMandatoryPrefix2(
		newVectorLengthVEX(newVEXHvEv(VEX_Blsr_Hd_Ed, VEX_Blsr_Hq_Eq), invalid),
		invalid,
		invalid,
		invalid,
	),
	newMandatoryPrefix2(
		newVectorLengthVEX(newVEXHvEv(VEX_Blsmsk_Hd_Ed, VEX_Blsmsk_Hq_Eq), invalid),
		invalid,
		invalid,
		invalid,
	),
	newMandatoryPrefix2(
		newVectorLengthVEX(newVEXHvEv(VEX_Blsi_Hd_Ed, VEX_Blsi_Hq_Eq), invalid),
		invalid,
		invalid,
		invalid,
	),
	invalid,
	invalid,
	invalid,
	invalid,
}

// vexMap2 holds the VEX 0F38 map.
var vexMap2 = fillInvalid([256]*handler{
	0x00: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vpshufb_VX_HX_WX, VEX_Vpshufb_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, YMM0, VEX_Vpshufb_VY_HY_WY, VEX_Vpshufb_VY_HY_WY),
		),
		invalid,
		invalid,
	),
	0x01: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vphaddw_VX_HX_WX, VEX_Vphaddw_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, YMM0, VEX_Vphaddw_VY_HY_WY, VEX_Vphaddw_VY_HY_WY),
		),
		invalid,
		invalid,
	),
	0x02: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vphaddd_VX_HX_WX, VEX_Vphaddd_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, YMM0, VEX_Vphaddd_VY_HY_WY, VEX_Vphaddd_VY_HY_WY),
		),
		invalid,
		invalid,
	),
	0x03: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vphaddsw_VX_HX_WX, VEX_Vphaddsw_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, YMM0, VEX_Vphaddsw_VY_HY_WY, VEX_Vphaddsw_VY_HY_WY),
		),
		invalid,
		invalid,
	),
	0x04: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVHW(
				XMM0,
				XMM0,
				XMM0,
				VEX_Vpmaddubsw_VX_HX_WX,
				VEX_Vpmaddubsw_VX_HX_WX,
			),
			newVEXVHW(
				YMM0,
				YMM0,
				YMM0,
				VEX_Vpmaddubsw_VY_HY_WY,
				VEX_Vpmaddubsw_VY_HY_WY,
			),
		),
		invalid,
		invalid,
	),
	0x05: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vphsubw_VX_HX_WX, VEX_Vphsubw_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, YMM0, VEX_Vphsubw_VY_HY_WY, VEX_Vphsubw_VY_HY_WY),
		),
		invalid,
		invalid,
	),
	0x06: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vphsubd_VX_HX_WX, VEX_Vphsubd_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, YMM0, VEX_Vphsubd_VY_HY_WY, VEX_Vphsubd_VY_HY_WY),
		),
		invalid,
		invalid,
	),
	0x07: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vphsubsw_VX_HX_WX, VEX_Vphsubsw_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, YMM0, VEX_Vphsubsw_VY_HY_WY, VEX_Vphsubsw_VY_HY_WY),
		),
		invalid,
		invalid,
	),
	0x08: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vpsignb_VX_HX_WX, VEX_Vpsignb_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, YMM0, VEX_Vpsignb_VY_HY_WY, VEX_Vpsignb_VY_HY_WY),
		),
		invalid,
		invalid,
	),
	0x09: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vpsignw_VX_HX_WX, VEX_Vpsignw_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, YMM0, VEX_Vpsignw_VY_HY_WY, VEX_Vpsignw_VY_HY_WY),
		),
		invalid,
		invalid,
	),
	0x0a: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vpsignd_VX_HX_WX, VEX_Vpsignd_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, YMM0, VEX_Vpsignd_VY_HY_WY, VEX_Vpsignd_VY_HY_WY),
		),
		invalid,
		invalid,
	),
	0x0b: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vpmulhrsw_VX_HX_WX, VEX_Vpmulhrsw_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, YMM0, VEX_Vpmulhrsw_VY_HY_WY, VEX_Vpmulhrsw_VY_HY_WY),
		),
		invalid,
		invalid,
	),
	0x0c: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthVEX(
				newVEXVHW(
					XMM0,
					XMM0,
					XMM0,
					VEX_Vpermilps_VX_HX_WX,
					VEX_Vpermilps_VX_HX_WX,
				),
				newVEXVHW(
					YMM0,
					YMM0,
					YMM0,
					VEX_Vpermilps_VY_HY_WY,
					VEX_Vpermilps_VY_HY_WY,
				),
			),
			invalid,
		),
		invalid,
		invalid,
	),
	0x0d: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthVEX(
				newVEXVHW(
					XMM0,
					XMM0,
					XMM0,
					VEX_Vpermilpd_VX_HX_WX,
					VEX_Vpermilpd_VX_HX_WX,
				),
				newVEXVHW(
					YMM0,
					YMM0,
					YMM0,
					VEX_Vpermilpd_VY_HY_WY,
					VEX_Vpermilpd_VY_HY_WY,
				),
			),
			invalid,
		),
		invalid,
		invalid,
	),
	0x0e: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthVEX(
				newVEXVW(XMM0, XMM0, VEX_Vtestps_VX_WX),
				newVEXVW(YMM0, YMM0, VEX_Vtestps_VY_WY),
			),
			invalid,
		),
		invalid,
		invalid,
	),
	0x0f: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthVEX(
				newVEXVW(XMM0, XMM0, VEX_Vtestpd_VX_WX),
				newVEXVW(YMM0, YMM0, VEX_Vtestpd_VY_WY),
			),
			invalid,
		),
		invalid,
		invalid,
	),
	0x13: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthVEX(
				newVEXVW(XMM0, XMM0, VEX_Vcvtph2ps_VX_WX),
				newVEXVW(YMM0, XMM0, VEX_Vcvtph2ps_VY_WX),
			),
			invalid,
		),
		invalid,
		invalid,
	),
	0x16: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthVEX(
				invalid,
				newVEXVHW(
					YMM0,
					YMM0,
					YMM0,
					VEX_Vpermps_VY_HY_WY,
					VEX_Vpermps_VY_HY_WY,
				),
			),
			invalid,
		),
		invalid,
		invalid,
	),
	0x17: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVW(XMM0, XMM0, VEX_Vptest_VX_WX),
			newVEXVW(YMM0, YMM0, VEX_Vptest_VY_WY),
		),
		invalid,
		invalid,
	),
	0x18: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthVEX(
				newVEXVW(XMM0, XMM0, VEX_Vbroadcastss_VX_WX),
				newVEXVW(YMM0, XMM0, VEX_Vbroadcastss_VY_WX),
			),
			invalid,
		),
		invalid,
		invalid,
	),
	0x19: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthVEX(invalid, newVEXVW(YMM0, XMM0, VEX_Vbroadcastsd_VY_WX)),
			invalid,
		),
		invalid,
		invalid,
	),
	0x1a: newMandatoryPrefix2(
		invalid,
		newW(newVectorLengthVEX(invalid, newVEXVM(YMM0, VEX_Vbroadcastf128_VY_M)), invalid),
		invalid,
		invalid,
	),
	0x1c: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVW(XMM0, XMM0, VEX_Vpabsb_VX_WX),
			newVEXVW(YMM0, YMM0, VEX_Vpabsb_VY_WY),
		),
		invalid,
		invalid,
	),
	0x1d: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVW(XMM0, XMM0, VEX_Vpabsw_VX_WX),
			newVEXVW(YMM0, YMM0, VEX_Vpabsw_VY_WY),
		),
		invalid,
		invalid,
	),
	0x1e: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVW(XMM0, XMM0, VEX_Vpabsd_VX_WX),
			newVEXVW(YMM0, YMM0, VEX_Vpabsd_VY_WY),
		),
		invalid,
		invalid,
	),
	0x20: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVW(XMM0, XMM0, VEX_Vpmovsxbw_VX_WX),
			newVEXVW(YMM0, XMM0, VEX_Vpmovsxbw_VY_WX),
		),
		invalid,
		invalid,
	),
	0x21: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVW(XMM0, XMM0, VEX_Vpmovsxbd_VX_WX),
			newVEXVW(YMM0, XMM0, VEX_Vpmovsxbd_VY_WX),
		),
		invalid,
		invalid,
	),
	0x22: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVW(XMM0, XMM0, VEX_Vpmovsxbq_VX_WX),
			newVEXVW(YMM0, XMM0, VEX_Vpmovsxbq_VY_WX),
		),
		invalid,
		invalid,
	),
	0x23: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVW(XMM0, XMM0, VEX_Vpmovsxwd_VX_WX),
			newVEXVW(YMM0, XMM0, VEX_Vpmovsxwd_VY_WX),
		),
		invalid,
		invalid,
	),
	0x24: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVW(XMM0, XMM0, VEX_Vpmovsxwq_VX_WX),
			newVEXVW(YMM0, XMM0, VEX_Vpmovsxwq_VY_WX),
		),
		invalid,
		invalid,
	),
	0x25: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVW(XMM0, XMM0, VEX_Vpmovsxdq_VX_WX),
			newVEXVW(YMM0, XMM0, VEX_Vpmovsxdq_VY_WX),
		),
		invalid,
		invalid,
	),
	0x28: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vpmuldq_VX_HX_WX, VEX_Vpmuldq_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, YMM0, VEX_Vpmuldq_VY_HY_WY, VEX_Vpmuldq_VY_HY_WY),
		),
		invalid,
		invalid,
	),
	0x29: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vpcmpeqq_VX_HX_WX, VEX_Vpcmpeqq_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, YMM0, VEX_Vpcmpeqq_VY_HY_WY, VEX_Vpcmpeqq_VY_HY_WY),
		),
		invalid,
		invalid,
	),
	0x2a: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVM(XMM0, VEX_Vmovntdqa_VX_M),
			newVEXVM(YMM0, VEX_Vmovntdqa_VY_M),
		),
		invalid,
		invalid,
	),
	0x2b: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vpackusdw_VX_HX_WX, VEX_Vpackusdw_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, YMM0, VEX_Vpackusdw_VY_HY_WY, VEX_Vpackusdw_VY_HY_WY),
		),
		invalid,
		invalid,
	),
	0x2c: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthVEX(
				newVEXVHM(XMM0, VEX_Vmaskmovps_VX_HX_M),
				newVEXVHM(YMM0, VEX_Vmaskmovps_VY_HY_M),
			),
			invalid,
		),
		invalid,
		invalid,
	),
	0x2d: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthVEX(
				newVEXVHM(XMM0, VEX_Vmaskmovpd_VX_HX_M),
				newVEXVHM(YMM0, VEX_Vmaskmovpd_VY_HY_M),
			),
			invalid,
		),
		invalid,
		invalid,
	),
	0x2e: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthVEX(
				newVEXMHV(XMM0, VEX_Vmaskmovps_M_HX_VX),
				newVEXMHV(YMM0, VEX_Vmaskmovps_M_HY_VY),
			),
			invalid,
		),
		invalid,
		invalid,
	),
	0x2f: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthVEX(
				newVEXMHV(XMM0, VEX_Vmaskmovpd_M_HX_VX),
				newVEXMHV(YMM0, VEX_Vmaskmovpd_M_HY_VY),
			),
			invalid,
		),
		invalid,
		invalid,
	),
	0x30: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVW(XMM0, XMM0, VEX_Vpmovzxbw_VX_WX),
			newVEXVW(YMM0, XMM0, VEX_Vpmovzxbw_VY_WX),
		),
		invalid,
		invalid,
	),
	0x31: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVW(XMM0, XMM0, VEX_Vpmovzxbd_VX_WX),
			newVEXVW(YMM0, XMM0, VEX_Vpmovzxbd_VY_WX),
		),
		invalid,
		invalid,
	),
	0x32: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVW(XMM0, XMM0, VEX_Vpmovzxbq_VX_WX),
			newVEXVW(YMM0, XMM0, VEX_Vpmovzxbq_VY_WX),
		),
		invalid,
		invalid,
	),
	0x33: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVW(XMM0, XMM0, VEX_Vpmovzxwd_VX_WX),
			newVEXVW(YMM0, XMM0, VEX_Vpmovzxwd_VY_WX),
		),
		invalid,
		invalid,
	),
	0x34: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVW(XMM0, XMM0, VEX_Vpmovzxwq_VX_WX),
			newVEXVW(YMM0, XMM0, VEX_Vpmovzxwq_VY_WX),
		),
		invalid,
		invalid,
	),
	0x35: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVW(XMM0, XMM0, VEX_Vpmovzxdq_VX_WX),
			newVEXVW(YMM0, XMM0, VEX_Vpmovzxdq_VY_WX),
		),
		invalid,
		invalid,
	),
	0x36: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthVEX(
				invalid,
				newVEXVHW(
					YMM0,
					YMM0,
					YMM0,
					VEX_Vpermd_VY_HY_WY,
					VEX_Vpermd_VY_HY_WY,
				),
			),
			invalid,
		),
		invalid,
		invalid,
	),
	0x37: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vpcmpgtq_VX_HX_WX, VEX_Vpcmpgtq_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, YMM0, VEX_Vpcmpgtq_VY_HY_WY, VEX_Vpcmpgtq_VY_HY_WY),
		),
		invalid,
		invalid,
	),
	0x38: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vpminsb_VX_HX_WX, VEX_Vpminsb_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, YMM0, VEX_Vpminsb_VY_HY_WY, VEX_Vpminsb_VY_HY_WY),
		),
		invalid,
		invalid,
	),
	0x39: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vpminsd_VX_HX_WX, VEX_Vpminsd_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, YMM0, VEX_Vpminsd_VY_HY_WY, VEX_Vpminsd_VY_HY_WY),
		),
		invalid,
		invalid,
	),
	0x3a: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vpminuw_VX_HX_WX, VEX_Vpminuw_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, YMM0, VEX_Vpminuw_VY_HY_WY, VEX_Vpminuw_VY_HY_WY),
		),
		invalid,
		invalid,
	),
	0x3b: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vpminud_VX_HX_WX, VEX_Vpminud_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, YMM0, VEX_Vpminud_VY_HY_WY, VEX_Vpminud_VY_HY_WY),
		),
		invalid,
		invalid,
	),
	0x3c: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vpmaxsb_VX_HX_WX, VEX_Vpmaxsb_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, YMM0, VEX_Vpmaxsb_VY_HY_WY, VEX_Vpmaxsb_VY_HY_WY),
		),
		invalid,
		invalid,
	),
	0x3d: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vpmaxsd_VX_HX_WX, VEX_Vpmaxsd_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, YMM0, VEX_Vpmaxsd_VY_HY_WY, VEX_Vpmaxsd_VY_HY_WY),
		),
		invalid,
		invalid,
	),
	0x3e: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vpmaxuw_VX_HX_WX, VEX_Vpmaxuw_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, YMM0, VEX_Vpmaxuw_VY_HY_WY, VEX_Vpmaxuw_VY_HY_WY),
		),
		invalid,
		invalid,
	),
	0x3f: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vpmaxud_VX_HX_WX, VEX_Vpmaxud_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, YMM0, VEX_Vpmaxud_VY_HY_WY, VEX_Vpmaxud_VY_HY_WY),
		),
		invalid,
		invalid,
	),
	0x40: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vpmulld_VX_HX_WX, VEX_Vpmulld_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, YMM0, VEX_Vpmulld_VY_HY_WY, VEX_Vpmulld_VY_HY_WY),
		),
		invalid,
		invalid,
	),
	0x41: newMandatoryPrefix2(invalid, newVEXVW(XMM0, XMM0, VEX_Vphminposuw_VX_WX), invalid, invalid),
	0x45: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthVEX(
				newVEXVHW(
					XMM0,
					XMM0,
					XMM0,
					VEX_Vpsrlvd_VX_HX_WX,
					VEX_Vpsrlvd_VX_HX_WX,
				),
				newVEXVHW(
					YMM0,
					YMM0,
					YMM0,
					VEX_Vpsrlvd_VY_HY_WY,
					VEX_Vpsrlvd_VY_HY_WY,
				),
			),
			newVectorLengthVEX(
				newVEXVHW(
					XMM0,
					XMM0,
					XMM0,
					VEX_Vpsrlvq_VX_HX_WX,
					VEX_Vpsrlvq_VX_HX_WX,
				),
				newVEXVHW(
					YMM0,
					YMM0,
					YMM0,
					VEX_Vpsrlvq_VY_HY_WY,
					VEX_Vpsrlvq_VY_HY_WY,
				),
			),
		),
		invalid,
		invalid,
	),
	0x46: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthVEX(
				newVEXVHW(
					XMM0,
					XMM0,
					XMM0,
					VEX_Vpsravd_VX_HX_WX,
					VEX_Vpsravd_VX_HX_WX,
				),
				newVEXVHW(
					YMM0,
					YMM0,
					YMM0,
					VEX_Vpsravd_VY_HY_WY,
					VEX_Vpsravd_VY_HY_WY,
				),
			),
			invalid,
		),
		invalid,
		invalid,
	),
	0x47: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthVEX(
				newVEXVHW(
					XMM0,
					XMM0,
					XMM0,
					VEX_Vpsllvd_VX_HX_WX,
					VEX_Vpsllvd_VX_HX_WX,
				),
				newVEXVHW(
					YMM0,
					YMM0,
					YMM0,
					VEX_Vpsllvd_VY_HY_WY,
					VEX_Vpsllvd_VY_HY_WY,
				),
			),
			newVectorLengthVEX(
				newVEXVHW(
					XMM0,
					XMM0,
					XMM0,
					VEX_Vpsllvq_VX_HX_WX,
					VEX_Vpsllvq_VX_HX_WX,
				),
				newVEXVHW(
					YMM0,
					YMM0,
					YMM0,
					VEX_Vpsllvq_VY_HY_WY,
					VEX_Vpsllvq_VY_HY_WY,
				),
			),
		),
		invalid,
		invalid,
	),
	0x58: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthVEX(
				newVEXVW(XMM0, XMM0, VEX_Vpbroadcastd_VX_WX),
				newVEXVW(YMM0, XMM0, VEX_Vpbroadcastd_VY_WX),
			),
			invalid,
		),
		invalid,
		invalid,
	),
	0x59: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthVEX(
				newVEXVW(XMM0, XMM0, VEX_Vpbroadcastq_VX_WX),
				newVEXVW(YMM0, XMM0, VEX_Vpbroadcastq_VY_WX),
			),
			invalid,
		),
		invalid,
		invalid,
	),
	0x5a: newMandatoryPrefix2(
		invalid,
		newW(newVectorLengthVEX(invalid, newVEXVM(YMM0, VEX_Vbroadcasti128_VY_M)), invalid),
		invalid,
		invalid,
	),
	0x78: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthVEX(
				newVEXVW(XMM0, XMM0, VEX_Vpbroadcastb_VX_WX),
				newVEXVW(YMM0, XMM0, VEX_Vpbroadcastb_VY_WX),
			),
			invalid,
		),
		invalid,
		invalid,
	),
	0x79: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthVEX(
				newVEXVW(XMM0, XMM0, VEX_Vpbroadcastw_VX_WX),
				newVEXVW(YMM0, XMM0, VEX_Vpbroadcastw_VY_WX),
			),
			invalid,
		),
		invalid,
		invalid,
	),
	0x8c: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthVEX(
				newVEXVHM(XMM0, VEX_Vpmaskmovd_VX_HX_M),
				newVEXVHM(YMM0, VEX_Vpmaskmovd_VY_HY_M),
			),
			newVectorLengthVEX(
				newVEXVHM(XMM0, VEX_Vpmaskmovq_VX_HX_M),
				newVEXVHM(YMM0, VEX_Vpmaskmovq_VY_HY_M),
			),
		),
		invalid,
		invalid,
	),
	0x8e: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthVEX(
				newVEXMHV(XMM0, VEX_Vpmaskmovd_M_HX_VX),
				newVEXMHV(YMM0, VEX_Vpmaskmovd_M_HY_VY),
			),
			newVectorLengthVEX(
				newVEXMHV(XMM0, VEX_Vpmaskmovq_M_HX_VX),
				newVEXMHV(YMM0, VEX_Vpmaskmovq_M_HY_VY),
			),
		),
		invalid,
		invalid,
	),
	0x90: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthVEX(
				newVEXVXVSIBHX(XMM0, XMM0, XMM0, VEX_Vpgatherdd_VX_VM32X_HX),
				newVEXVXVSIBHX(YMM0, YMM0, YMM0, VEX_Vpgatherdd_VY_VM32Y_HY),
			),
			newVectorLengthVEX(
				newVEXVXVSIBHX(XMM0, XMM0, XMM0, VEX_Vpgatherdq_VX_VM32X_HX),
				newVEXVXVSIBHX(YMM0, XMM0, YMM0, VEX_Vpgatherdq_VY_VM32X_HY),
			),
		),
		invalid,
		invalid,
	),
	0x91: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthVEX(
				newVEXVXVSIBHX(XMM0, XMM0, XMM0, VEX_Vpgatherqd_VX_VM64X_HX),
				newVEXVXVSIBHX(XMM0, YMM0, XMM0, VEX_Vpgatherqd_VX_VM64Y_HX),
			),
			newVectorLengthVEX(
				newVEXVXVSIBHX(XMM0, XMM0, XMM0, VEX_Vpgatherqq_VX_VM64X_HX),
				newVEXVXVSIBHX(YMM0, YMM0, YMM0, VEX_Vpgatherqq_VY_VM64Y_HY),
			),
		),
		invalid,
		invalid,
	),
	0x92: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthVEX(
				newVEXVXVSIBHX(XMM0, XMM0, XMM0, VEX_Vgatherdps_VX_VM32X_HX),
				newVEXVXVSIBHX(YMM0, YMM0, YMM0, VEX_Vgatherdps_VY_VM32Y_HY),
			),
			newVectorLengthVEX(
				newVEXVXVSIBHX(XMM0, XMM0, XMM0, VEX_Vgatherdpd_VX_VM32X_HX),
				newVEXVXVSIBHX(YMM0, XMM0, YMM0, VEX_Vgatherdpd_VY_VM32X_HY),
			),
		),
		invalid,
		invalid,
	),
	0x93: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthVEX(
				newVEXVXVSIBHX(XMM0, XMM0, XMM0, VEX_Vgatherqps_VX_VM64X_HX),
				newVEXVXVSIBHX(XMM0, YMM0, XMM0, VEX_Vgatherqps_VX_VM64Y_HX),
			),
			newVectorLengthVEX(
				newVEXVXVSIBHX(XMM0, XMM0, XMM0, VEX_Vgatherqpd_VX_VM64X_HX),
				newVEXVXVSIBHX(YMM0, YMM0, YMM0, VEX_Vgatherqpd_VY_VM64Y_HY),
			),
		),
		invalid,
		invalid,
	),
	0x96: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthVEX(
				newVEXVHW(
					XMM0,
					XMM0,
					XMM0,
					VEX_Vfmaddsub132ps_VX_HX_WX,
					VEX_Vfmaddsub132ps_VX_HX_WX,
				),
				newVEXVHW(
					YMM0,
					YMM0,
					YMM0,
					VEX_Vfmaddsub132ps_VY_HY_WY,
					VEX_Vfmaddsub132ps_VY_HY_WY,
				),
			),
			newVectorLengthVEX(
				newVEXVHW(
					XMM0,
					XMM0,
					XMM0,
					VEX_Vfmaddsub132pd_VX_HX_WX,
					VEX_Vfmaddsub132pd_VX_HX_WX,
				),
				newVEXVHW(
					YMM0,
					YMM0,
					YMM0,
					VEX_Vfmaddsub132pd_VY_HY_WY,
					VEX_Vfmaddsub132pd_VY_HY_WY,
				),
			),
		),
		invalid,
		invalid,
	),
	0x97: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthVEX(
				newVEXVHW(
					XMM0,
					XMM0,
					XMM0,
					VEX_Vfmsubadd132ps_VX_HX_WX,
					VEX_Vfmsubadd132ps_VX_HX_WX,
				),
				newVEXVHW(
					YMM0,
					YMM0,
					YMM0,
					VEX_Vfmsubadd132ps_VY_HY_WY,
					VEX_Vfmsubadd132ps_VY_HY_WY,
				),
			),
			newVectorLengthVEX(
				newVEXVHW(
					XMM0,
					XMM0,
					XMM0,
					VEX_Vfmsubadd132pd_VX_HX_WX,
					VEX_Vfmsubadd132pd_VX_HX_WX,
				),
				newVEXVHW(
					YMM0,
					YMM0,
					YMM0,
					VEX_Vfmsubadd132pd_VY_HY_WY,
					VEX_Vfmsubadd132pd_VY_HY_WY,
				),
			),
		),
		invalid,
		invalid,
	),
	0x98: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthVEX(
				newVEXVHW(
					XMM0,
					XMM0,
					XMM0,
					VEX_Vfmadd132ps_VX_HX_WX,
					VEX_Vfmadd132ps_VX_HX_WX,
				),
				newVEXVHW(
					YMM0,
					YMM0,
					YMM0,
					VEX_Vfmadd132ps_VY_HY_WY,
					VEX_Vfmadd132ps_VY_HY_WY,
				),
			),
			newVectorLengthVEX(
				newVEXVHW(
					XMM0,
					XMM0,
					XMM0,
					VEX_Vfmadd132pd_VX_HX_WX,
					VEX_Vfmadd132pd_VX_HX_WX,
				),
				newVEXVHW(
					YMM0,
					YMM0,
					YMM0,
					VEX_Vfmadd132pd_VY_HY_WY,
					VEX_Vfmadd132pd_VY_HY_WY,
				),
			),
		),
		invalid,
		invalid,
	),
	0x99: newMandatoryPrefix2(
		invalid,
		newW(
			newVEXVHW(
				XMM0,
				XMM0,
				XMM0,
				VEX_Vfmadd132ss_VX_HX_WX,
				VEX_Vfmadd132ss_VX_HX_WX,
			),
			newVEXVHW(
				XMM0,
				XMM0,
				XMM0,
				VEX_Vfmadd132sd_VX_HX_WX,
				VEX_Vfmadd132sd_VX_HX_WX,
			),
		),
		invalid,
		invalid,
	),
	0x9a: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthVEX(
				newVEXVHW(
					XMM0,
					XMM0,
					XMM0,
					VEX_Vfmsub132ps_VX_HX_WX,
					VEX_Vfmsub132ps_VX_HX_WX,
				),
				newVEXVHW(
					YMM0,
					YMM0,
					YMM0,
					VEX_Vfmsub132ps_VY_HY_WY,
					VEX_Vfmsub132ps_VY_HY_WY,
				),
			),
			newVectorLengthVEX(
				newVEXVHW(
					XMM0,
					XMM0,
					XMM0,
					VEX_Vfmsub132pd_VX_HX_WX,
					VEX_Vfmsub132pd_VX_HX_WX,
				),
				newVEXVHW(
					YMM0,
					YMM0,
					YMM0,
					VEX_Vfmsub132pd_VY_HY_WY,
					VEX_Vfmsub132pd_VY_HY_WY,
				),
			),
		),
		invalid,
		invalid,
	),
	0x9b: newMandatoryPrefix2(
		invalid,
		newW(
			newVEXVHW(
				XMM0,
				XMM0,
				XMM0,
				VEX_Vfmsub132ss_VX_HX_WX,
				VEX_Vfmsub132ss_VX_HX_WX,
			),
			newVEXVHW(
				XMM0,
				XMM0,
				XMM0,
				VEX_Vfmsub132sd_VX_HX_WX,
				VEX_Vfmsub132sd_VX_HX_WX,
			),
		),
		invalid,
		invalid,
	),
	0x9c: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthVEX(
				newVEXVHW(
					XMM0,
					XMM0,
					XMM0,
					VEX_Vfnmadd132ps_VX_HX_WX,
					VEX_Vfnmadd132ps_VX_HX_WX,
				),
				newVEXVHW(
					YMM0,
					YMM0,
					YMM0,
					VEX_Vfnmadd132ps_VY_HY_WY,
					VEX_Vfnmadd132ps_VY_HY_WY,
				),
			),
			newVectorLengthVEX(
				newVEXVHW(
					XMM0,
					XMM0,
					XMM0,
					VEX_Vfnmadd132pd_VX_HX_WX,
					VEX_Vfnmadd132pd_VX_HX_WX,
				),
				newVEXVHW(
					YMM0,
					YMM0,
					YMM0,
					VEX_Vfnmadd132pd_VY_HY_WY,
					VEX_Vfnmadd132pd_VY_HY_WY,
				),
			),
		),
		invalid,
		invalid,
	),
	0x9d: newMandatoryPrefix2(
		invalid,
		newW(
			newVEXVHW(
				XMM0,
				XMM0,
				XMM0,
				VEX_Vfnmadd132ss_VX_HX_WX,
				VEX_Vfnmadd132ss_VX_HX_WX,
			),
			newVEXVHW(
				XMM0,
				XMM0,
				XMM0,
				VEX_Vfnmadd132sd_VX_HX_WX,
				VEX_Vfnmadd132sd_VX_HX_WX,
			),
		),
		invalid,
		invalid,
	),
	0x9e: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthVEX(
				newVEXVHW(
					XMM0,
					XMM0,
					XMM0,
					VEX_Vfnmsub132ps_VX_HX_WX,
					VEX_Vfnmsub132ps_VX_HX_WX,
				),
				newVEXVHW(
					YMM0,
					YMM0,
					YMM0,
					VEX_Vfnmsub132ps_VY_HY_WY,
					VEX_Vfnmsub132ps_VY_HY_WY,
				),
			),
			newVectorLengthVEX(
				newVEXVHW(
					XMM0,
					XMM0,
					XMM0,
					VEX_Vfnmsub132pd_VX_HX_WX,
					VEX_Vfnmsub132pd_VX_HX_WX,
				),
				newVEXVHW(
					YMM0,
					YMM0,
					YMM0,
					VEX_Vfnmsub132pd_VY_HY_WY,
					VEX_Vfnmsub132pd_VY_HY_WY,
				),
			),
		),
		invalid,
		invalid,
	),
	0x9f: newMandatoryPrefix2(
		invalid,
		newW(
			newVEXVHW(
				XMM0,
				XMM0,
				XMM0,
				VEX_Vfnmsub132ss_VX_HX_WX,
				VEX_Vfnmsub132ss_VX_HX_WX,
			),
			newVEXVHW(
				XMM0,
				XMM0,
				XMM0,
				VEX_Vfnmsub132sd_VX_HX_WX,
				VEX_Vfnmsub132sd_VX_HX_WX,
			),
		),
		invalid,
		invalid,
	),
	0xa6: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthVEX(
				newVEXVHW(
					XMM0,
					XMM0,
					XMM0,
					VEX_Vfmaddsub213ps_VX_HX_WX,
					VEX_Vfmaddsub213ps_VX_HX_WX,
				),
				newVEXVHW(
					YMM0,
					YMM0,
					YMM0,
					VEX_Vfmaddsub213ps_VY_HY_WY,
					VEX_Vfmaddsub213ps_VY_HY_WY,
				),
			),
			newVectorLengthVEX(
				newVEXVHW(
					XMM0,
					XMM0,
					XMM0,
					VEX_Vfmaddsub213pd_VX_HX_WX,
					VEX_Vfmaddsub213pd_VX_HX_WX,
				),
				newVEXVHW(
					YMM0,
					YMM0,
					YMM0,
					VEX_Vfmaddsub213pd_VY_HY_WY,
					VEX_Vfmaddsub213pd_VY_HY_WY,
				),
			),
		),
		invalid,
		invalid,
	),
	0xa7: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthVEX(
				newVEXVHW(
					XMM0,
					XMM0,
					XMM0,
					VEX_Vfmsubadd213ps_VX_HX_WX,
					VEX_Vfmsubadd213ps_VX_HX_WX,
				),
				newVEXVHW(
					YMM0,
					YMM0,
					YMM0,
					VEX_Vfmsubadd213ps_VY_HY_WY,
					VEX_Vfmsubadd213ps_VY_HY_WY,
				),
			),
			newVectorLengthVEX(
				newVEXVHW(
					XMM0,
					XMM0,
					XMM0,
					VEX_Vfmsubadd213pd_VX_HX_WX,
					VEX_Vfmsubadd213pd_VX_HX_WX,
				),
				newVEXVHW(
					YMM0,
					YMM0,
					YMM0,
					VEX_Vfmsubadd213pd_VY_HY_WY,
					VEX_Vfmsubadd213pd_VY_HY_WY,
				),
			),
		),
		invalid,
		invalid,
	),
	0xa8: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthVEX(
				newVEXVHW(
					XMM0,
					XMM0,
					XMM0,
					VEX_Vfmadd213ps_VX_HX_WX,
					VEX_Vfmadd213ps_VX_HX_WX,
				),
				newVEXVHW(
					YMM0,
					YMM0,
					YMM0,
					VEX_Vfmadd213ps_VY_HY_WY,
					VEX_Vfmadd213ps_VY_HY_WY,
				),
			),
			newVectorLengthVEX(
				newVEXVHW(
					XMM0,
					XMM0,
					XMM0,
					VEX_Vfmadd213pd_VX_HX_WX,
					VEX_Vfmadd213pd_VX_HX_WX,
				),
				newVEXVHW(
					YMM0,
					YMM0,
					YMM0,
					VEX_Vfmadd213pd_VY_HY_WY,
					VEX_Vfmadd213pd_VY_HY_WY,
				),
			),
		),
		invalid,
		invalid,
	),
	0xa9: newMandatoryPrefix2(
		invalid,
		newW(
			newVEXVHW(
				XMM0,
				XMM0,
				XMM0,
				VEX_Vfmadd213ss_VX_HX_WX,
				VEX_Vfmadd213ss_VX_HX_WX,
			),
			newVEXVHW(
				XMM0,
				XMM0,
				XMM0,
				VEX_Vfmadd213sd_VX_HX_WX,
				VEX_Vfmadd213sd_VX_HX_WX,
			),
		),
		invalid,
		invalid,
	),
	0xaa: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthVEX(
				newVEXVHW(
					XMM0,
					XMM0,
					XMM0,
					VEX_Vfmsub213ps_VX_HX_WX,
					VEX_Vfmsub213ps_VX_HX_WX,
				),
				newVEXVHW(
					YMM0,
					YMM0,
					YMM0,
					VEX_Vfmsub213ps_VY_HY_WY,
					VEX_Vfmsub213ps_VY_HY_WY,
				),
			),
			newVectorLengthVEX(
				newVEXVHW(
					XMM0,
					XMM0,
					XMM0,
					VEX_Vfmsub213pd_VX_HX_WX,
					VEX_Vfmsub213pd_VX_HX_WX,
				),
				newVEXVHW(
					YMM0,
					YMM0,
					YMM0,
					VEX_Vfmsub213pd_VY_HY_WY,
					VEX_Vfmsub213pd_VY_HY_WY,
				),
			),
		),
		invalid,
		invalid,
	),
	0xab: newMandatoryPrefix2(
		invalid,
		newW(
			newVEXVHW(
				XMM0,
				XMM0,
				XMM0,
				VEX_Vfmsub213ss_VX_HX_WX,
				VEX_Vfmsub213ss_VX_HX_WX,
			),
			newVEXVHW(
				XMM0,
				XMM0,
				XMM0,
				VEX_Vfmsub213sd_VX_HX_WX,
				VEX_Vfmsub213sd_VX_HX_WX,
			),
		),
		invalid,
		invalid,
	),
	0xac: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthVEX(
				newVEXVHW(
					XMM0,
					XMM0,
					XMM0,
					VEX_Vfnmadd213ps_VX_HX_WX,
					VEX_Vfnmadd213ps_VX_HX_WX,
				),
				newVEXVHW(
					YMM0,
					YMM0,
					YMM0,
					VEX_Vfnmadd213ps_VY_HY_WY,
					VEX_Vfnmadd213ps_VY_HY_WY,
				),
			),
			newVectorLengthVEX(
				newVEXVHW(
					XMM0,
					XMM0,
					XMM0,
					VEX_Vfnmadd213pd_VX_HX_WX,
					VEX_Vfnmadd213pd_VX_HX_WX,
				),
				newVEXVHW(
					YMM0,
					YMM0,
					YMM0,
					VEX_Vfnmadd213pd_VY_HY_WY,
					VEX_Vfnmadd213pd_VY_HY_WY,
				),
			),
		),
		invalid,
		invalid,
	),
	0xad: newMandatoryPrefix2(
		invalid,
		newW(
			newVEXVHW(
				XMM0,
				XMM0,
				XMM0,
				VEX_Vfnmadd213ss_VX_HX_WX,
				VEX_Vfnmadd213ss_VX_HX_WX,
			),
			newVEXVHW(
				XMM0,
				XMM0,
				XMM0,
				VEX_Vfnmadd213sd_VX_HX_WX,
				VEX_Vfnmadd213sd_VX_HX_WX,
			),
		),
		invalid,
		invalid,
	),
	0xae: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthVEX(
				newVEXVHW(
					XMM0,
					XMM0,
					XMM0,
					VEX_Vfnmsub213ps_VX_HX_WX,
					VEX_Vfnmsub213ps_VX_HX_WX,
				),
				newVEXVHW(
					YMM0,
					YMM0,
					YMM0,
					VEX_Vfnmsub213ps_VY_HY_WY,
					VEX_Vfnmsub213ps_VY_HY_WY,
				),
			),
			newVectorLengthVEX(
				newVEXVHW(
					XMM0,
					XMM0,
					XMM0,
					VEX_Vfnmsub213pd_VX_HX_WX,
					VEX_Vfnmsub213pd_VX_HX_WX,
				),
				newVEXVHW(
					YMM0,
					YMM0,
					YMM0,
					VEX_Vfnmsub213pd_VY_HY_WY,
					VEX_Vfnmsub213pd_VY_HY_WY,
				),
			),
		),
		invalid,
		invalid,
	),
	0xaf: newMandatoryPrefix2(
		invalid,
		newW(
			newVEXVHW(
				XMM0,
				XMM0,
				XMM0,
				VEX_Vfnmsub213ss_VX_HX_WX,
				VEX_Vfnmsub213ss_VX_HX_WX,
			),
			newVEXVHW(
				XMM0,
				XMM0,
				XMM0,
				VEX_Vfnmsub213sd_VX_HX_WX,
				VEX_Vfnmsub213sd_VX_HX_WX,
			),
		),
		invalid,
		invalid,
	),
	0xb6: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthVEX(
				newVEXVHW(
					XMM0,
					XMM0,
					XMM0,
					VEX_Vfmaddsub231ps_VX_HX_WX,
					VEX_Vfmaddsub231ps_VX_HX_WX,
				),
				newVEXVHW(
					YMM0,
					YMM0,
					YMM0,
					VEX_Vfmaddsub231ps_VY_HY_WY,
					VEX_Vfmaddsub231ps_VY_HY_WY,
				),
			),
			newVectorLengthVEX(
				newVEXVHW(
					XMM0,
					XMM0,
					XMM0,
					VEX_Vfmaddsub231pd_VX_HX_WX,
					VEX_Vfmaddsub231pd_VX_HX_WX,
				),
				newVEXVHW(
					YMM0,
					YMM0,
					YMM0,
					VEX_Vfmaddsub231pd_VY_HY_WY,
					VEX_Vfmaddsub231pd_VY_HY_WY,
				),
			),
		),
		invalid,
		invalid,
	),
	0xb7: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthVEX(
				newVEXVHW(
					XMM0,
					XMM0,
					XMM0,
					VEX_Vfmsubadd231ps_VX_HX_WX,
					VEX_Vfmsubadd231ps_VX_HX_WX,
				),
				newVEXVHW(
					YMM0,
					YMM0,
					YMM0,
					VEX_Vfmsubadd231ps_VY_HY_WY,
					VEX_Vfmsubadd231ps_VY_HY_WY,
				),
			),
			newVectorLengthVEX(
				newVEXVHW(
					XMM0,
					XMM0,
					XMM0,
					VEX_Vfmsubadd231pd_VX_HX_WX,
					VEX_Vfmsubadd231pd_VX_HX_WX,
				),
				newVEXVHW(
					YMM0,
					YMM0,
					YMM0,
					VEX_Vfmsubadd231pd_VY_HY_WY,
					VEX_Vfmsubadd231pd_VY_HY_WY,
				),
			),
		),
		invalid,
		invalid,
	),
	0xb8: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthVEX(
				newVEXVHW(
					XMM0,
					XMM0,
					XMM0,
					VEX_Vfmadd231ps_VX_HX_WX,
					VEX_Vfmadd231ps_VX_HX_WX,
				),
				newVEXVHW(
					YMM0,
					YMM0,
					YMM0,
					VEX_Vfmadd231ps_VY_HY_WY,
					VEX_Vfmadd231ps_VY_HY_WY,
				),
			),
			newVectorLengthVEX(
				newVEXVHW(
					XMM0,
					XMM0,
					XMM0,
					VEX_Vfmadd231pd_VX_HX_WX,
					VEX_Vfmadd231pd_VX_HX_WX,
				),
				newVEXVHW(
					YMM0,
					YMM0,
					YMM0,
					VEX_Vfmadd231pd_VY_HY_WY,
					VEX_Vfmadd231pd_VY_HY_WY,
				),
			),
		),
		invalid,
		invalid,
	),
	0xb9: newMandatoryPrefix2(
		invalid,
		newW(
			newVEXVHW(
				XMM0,
				XMM0,
				XMM0,
				VEX_Vfmadd231ss_VX_HX_WX,
				VEX_Vfmadd231ss_VX_HX_WX,
			),
			newVEXVHW(
				XMM0,
				XMM0,
				XMM0,
				VEX_Vfmadd231sd_VX_HX_WX,
				VEX_Vfmadd231sd_VX_HX_WX,
			),
		),
		invalid,
		invalid,
	),
	0xba: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthVEX(
				newVEXVHW(
					XMM0,
					XMM0,
					XMM0,
					VEX_Vfmsub231ps_VX_HX_WX,
					VEX_Vfmsub231ps_VX_HX_WX,
				),
				newVEXVHW(
					YMM0,
					YMM0,
					YMM0,
					VEX_Vfmsub231ps_VY_HY_WY,
					VEX_Vfmsub231ps_VY_HY_WY,
				),
			),
			newVectorLengthVEX(
				newVEXVHW(
					XMM0,
					XMM0,
					XMM0,
					VEX_Vfmsub231pd_VX_HX_WX,
					VEX_Vfmsub231pd_VX_HX_WX,
				),
				newVEXVHW(
					YMM0,
					YMM0,
					YMM0,
					VEX_Vfmsub231pd_VY_HY_WY,
					VEX_Vfmsub231pd_VY_HY_WY,
				),
			),
		),
		invalid,
		invalid,
	),
	0xbb: newMandatoryPrefix2(
		invalid,
		newW(
			newVEXVHW(
				XMM0,
				XMM0,
				XMM0,
				VEX_Vfmsub231ss_VX_HX_WX,
				VEX_Vfmsub231ss_VX_HX_WX,
			),
			newVEXVHW(
				XMM0,
				XMM0,
				XMM0,
				VEX_Vfmsub231sd_VX_HX_WX,
				VEX_Vfmsub231sd_VX_HX_WX,
			),
		),
		invalid,
		invalid,
	),
	0xbc: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthVEX(
				newVEXVHW(
					XMM0,
					XMM0,
					XMM0,
					VEX_Vfnmadd231ps_VX_HX_WX,
					VEX_Vfnmadd231ps_VX_HX_WX,
				),
				newVEXVHW(
					YMM0,
					YMM0,
					YMM0,
					VEX_Vfnmadd231ps_VY_HY_WY,
					VEX_Vfnmadd231ps_VY_HY_WY,
				),
			),
			newVectorLengthVEX(
				newVEXVHW(
					XMM0,
					XMM0,
					XMM0,
					VEX_Vfnmadd231pd_VX_HX_WX,
					VEX_Vfnmadd231pd_VX_HX_WX,
				),
				newVEXVHW(
					YMM0,
					YMM0,
					YMM0,
					VEX_Vfnmadd231pd_VY_HY_WY,
					VEX_Vfnmadd231pd_VY_HY_WY,
				),
			),
		),
		invalid,
		invalid,
	),
	0xbd: newMandatoryPrefix2(
		invalid,
		newW(
			newVEXVHW(
				XMM0,
				XMM0,
				XMM0,
				VEX_Vfnmadd231ss_VX_HX_WX,
				VEX_Vfnmadd231ss_VX_HX_WX,
			),
			newVEXVHW(
				XMM0,
				XMM0,
				XMM0,
				VEX_Vfnmadd231sd_VX_HX_WX,
				VEX_Vfnmadd231sd_VX_HX_WX,
			),
		),
		invalid,
		invalid,
	),
	0xbe: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthVEX(
				newVEXVHW(
					XMM0,
					XMM0,
					XMM0,
					VEX_Vfnmsub231ps_VX_HX_WX,
					VEX_Vfnmsub231ps_VX_HX_WX,
				),
				newVEXVHW(
					YMM0,
					YMM0,
					YMM0,
					VEX_Vfnmsub231ps_VY_HY_WY,
					VEX_Vfnmsub231ps_VY_HY_WY,
				),
			),
			newVectorLengthVEX(
				newVEXVHW(
					XMM0,
					XMM0,
					XMM0,
					VEX_Vfnmsub231pd_VX_HX_WX,
					VEX_Vfnmsub231pd_VX_HX_WX,
				),
				newVEXVHW(
					YMM0,
					YMM0,
					YMM0,
					VEX_Vfnmsub231pd_VY_HY_WY,
					VEX_Vfnmsub231pd_VY_HY_WY,
				),
			),
		),
		invalid,
		invalid,
	),
	0xbf: newMandatoryPrefix2(
		invalid,
		newW(
			newVEXVHW(
				XMM0,
				XMM0,
				XMM0,
				VEX_Vfnmsub231ss_VX_HX_WX,
				VEX_Vfnmsub231ss_VX_HX_WX,
			),
			newVEXVHW(
				XMM0,
				XMM0,
				XMM0,
				VEX_Vfnmsub231sd_VX_HX_WX,
				VEX_Vfnmsub231sd_VX_HX_WX,
			),
		),
		invalid,
		invalid,
	),
	0xdb: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(newVEXVW(XMM0, XMM0, VEX_Vaesimc_VX_WX), invalid),
		invalid,
		invalid,
	),
	0xdc: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vaesenc_VX_HX_WX, VEX_Vaesenc_VX_HX_WX),
			invalid,
		),
		invalid,
		invalid,
	),
	0xdd: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVHW(
				XMM0,
				XMM0,
				XMM0,
				VEX_Vaesenclast_VX_HX_WX,
				VEX_Vaesenclast_VX_HX_WX,
			),
			invalid,
		),
		invalid,
		invalid,
	),
	0xde: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vaesdec_VX_HX_WX, VEX_Vaesdec_VX_HX_WX),
			invalid,
		),
		invalid,
		invalid,
	),
	0xdf: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVHW(
				XMM0,
				XMM0,
				XMM0,
				VEX_Vaesdeclast_VX_HX_WX,
				VEX_Vaesdeclast_VX_HX_WX,
			),
			invalid,
		),
		invalid,
		invalid,
	),
	0xf2: newMandatoryPrefix2(
		newVectorLengthVEX(newVEXGvGvEv(VEX_Andn_Gd_Hd_Ed, VEX_Andn_Gq_Hq_Eq), invalid),
		invalid,
		invalid,
		invalid,
	),
	0xf3: newGroup(vexGrp0F38F3),
	0xf5: newMandatoryPrefix2(
		newVectorLengthVEX(newVEXGvEvGv(VEX_Bzhi_Gd_Ed_Hd, VEX_Bzhi_Gq_Eq_Hq), invalid),
		invalid,
		newVectorLengthVEX(newVEXGvGvEv(VEX_Pext_Gd_Hd_Ed, VEX_Pext_Gq_Hq_Eq), invalid),
		newVectorLengthVEX(newVEXGvGvEv(VEX_Pdep_Gd_Hd_Ed, VEX_Pdep_Gq_Hq_Eq), invalid),
	),
	0xf6: newMandatoryPrefix2(
		invalid,
		invalid,
		invalid,
		newVectorLengthVEX(newVEXGvGvEv(VEX_Mulx_Gd_Hd_Ed, VEX_Mulx_Gq_Hq_Eq), invalid),
	),
	0xf7: newMandatoryPrefix2(
		newVectorLengthVEX(newVEXGvEvGv(VEX_Bextr_Gd_Ed_Hd, VEX_Bextr_Gq_Eq_Hq), invalid),
		newVectorLengthVEX(newVEXGvEvGv(VEX_Shlx_Gd_Ed_Hd, VEX_Shlx_Gq_Eq_Hq), invalid),
		newVectorLengthVEX(newVEXGvEvGv(VEX_Sarx_Gd_Ed_Hd, VEX_Sarx_Gq_Eq_Hq), invalid),
		newVectorLengthVEX(newVEXGvEvGv(VEX_Shrx_Gd_Ed_Hd, VEX_Shrx_Gq_Eq_Hq), invalid),
	),
})

// vexMap3 holds the VEX 0F3A map.
var vexMap3 = fillInvalid([256]*handler{
	0x00: newMandatoryPrefix2(
		invalid,
		newW(
			invalid,
			newVectorLengthVEX(
				invalid,
				newVEXVWIb(YMM0, VEX_Vpermq_VY_WY_Ib, VEX_Vpermq_VY_WY_Ib),
			),
		),
		invalid,
		invalid,
	),
	0x01: newMandatoryPrefix2(
		invalid,
		newW(
			invalid,
			newVectorLengthVEX(
				invalid,
				newVEXVWIb(YMM0, VEX_Vpermpd_VY_WY_Ib, VEX_Vpermpd_VY_WY_Ib),
			),
		),
		invalid,
		invalid,
	),
	0x02: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthVEX(
				newVEXVHWIb(XMM0, XMM0, XMM0, VEX_Vpblendd_VX_HX_WX_Ib),
				newVEXVHWIb(YMM0, YMM0, YMM0, VEX_Vpblendd_VY_HY_WY_Ib),
			),
			invalid,
		),
		invalid,
		invalid,
	),
	0x04: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthVEX(
				newVEXVWIb(XMM0, VEX_Vpermilps_VX_WX_Ib, VEX_Vpermilps_VX_WX_Ib),
				newVEXVWIb(YMM0, VEX_Vpermilps_VY_WY_Ib, VEX_Vpermilps_VY_WY_Ib),
			),
			invalid,
		),
		invalid,
		invalid,
	),
	0x05: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthVEX(
				newVEXVWIb(XMM0, VEX_Vpermilpd_VX_WX_Ib, VEX_Vpermilpd_VX_WX_Ib),
				newVEXVWIb(YMM0, VEX_Vpermilpd_VY_WY_Ib, VEX_Vpermilpd_VY_WY_Ib),
			),
			invalid,
		),
		invalid,
		invalid,
	),
	0x06: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthVEX(
				invalid,
				newVEXVHWIb(YMM0, YMM0, YMM0, VEX_Vperm2f128_VY_HY_WY_Ib),
			),
			invalid,
		),
		invalid,
		invalid,
	),
	0x08: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVWIb(XMM0, VEX_Vroundps_VX_WX_Ib, VEX_Vroundps_VX_WX_Ib),
			newVEXVWIb(YMM0, VEX_Vroundps_VY_WY_Ib, VEX_Vroundps_VY_WY_Ib),
		),
		invalid,
		invalid,
	),
	0x09: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVWIb(XMM0, VEX_Vroundpd_VX_WX_Ib, VEX_Vroundpd_VX_WX_Ib),
			newVEXVWIb(YMM0, VEX_Vroundpd_VY_WY_Ib, VEX_Vroundpd_VY_WY_Ib),
		),
		invalid,
		invalid,
	),
	0x0a: newMandatoryPrefix2(
		invalid,
		newVEXVHWIb(XMM0, XMM0, XMM0, VEX_Vroundss_VX_HX_WX_Ib),
		invalid,
		invalid,
	),
	0x0b: newMandatoryPrefix2(
		invalid,
		newVEXVHWIb(XMM0, XMM0, XMM0, VEX_Vroundsd_VX_HX_WX_Ib),
		invalid,
		invalid,
	),
	0x0c: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVHWIb(XMM0, XMM0, XMM0, VEX_Vblendps_VX_HX_WX_Ib),
			newVEXVHWIb(YMM0, YMM0, YMM0, VEX_Vblendps_VY_HY_WY_Ib),
		),
		invalid,
		invalid,
	),
	0x0d: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVHWIb(XMM0, XMM0, XMM0, VEX_Vblendpd_VX_HX_WX_Ib),
			newVEXVHWIb(YMM0, YMM0, YMM0, VEX_Vblendpd_VY_HY_WY_Ib),
		),
		invalid,
		invalid,
	),
	0x0e: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVHWIb(XMM0, XMM0, XMM0, VEX_Vpblendw_VX_HX_WX_Ib),
			newVEXVHWIb(YMM0, YMM0, YMM0, VEX_Vpblendw_VY_HY_WY_Ib),
		),
		invalid,
		invalid,
	),
	0x0f: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVHWIb(XMM0, XMM0, XMM0, VEX_Vpalignr_VX_HX_WX_Ib),
			newVEXVHWIb(YMM0, YMM0, YMM0, VEX_Vpalignr_VY_HY_WY_Ib),
		),
		invalid,
		invalid,
	),
	0x14: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXGvMVXIb(XMM0, VEX_Vpextrb_RdMb_VX_Ib, VEX_Vpextrb_RqMb_VX_Ib),
			invalid,
		),
		invalid,
		invalid,
	),
	0x15: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXGvMVXIb(XMM0, VEX_Vpextrw_RdMw_VX_Ib, VEX_Vpextrw_RqMw_VX_Ib),
			invalid,
		),
		invalid,
		invalid,
	),
	0x16: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXGvMVXIb(XMM0, VEX_Vpextrd_Ed_VX_Ib, VEX_Vpextrq_Eq_VX_Ib),
			invalid,
		),
		invalid,
		invalid,
	),
	0x17: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXEdVIb(XMM0, VEX_Vextractps_Ed_VX_Ib, VEX_Vextractps_Eq_VX_Ib),
			invalid,
		),
		invalid,
		invalid,
	),
	0x18: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthVEX(
				invalid,
				newVEXVHWIb(YMM0, YMM0, XMM0, VEX_Vinsertf128_VY_HY_WX_Ib),
			),
			invalid,
		),
		invalid,
		invalid,
	),
	0x19: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthVEX(
				invalid,
				newVEXWVIb(XMM0, YMM0, VEX_Vextractf128_WX_VY_Ib),
			),
			invalid,
		),
		invalid,
		invalid,
	),
	0x1d: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthVEX(
				newVEXWVIb(XMM0, XMM0, VEX_Vcvtps2ph_WX_VX_Ib),
				newVEXWVIb(XMM0, YMM0, VEX_Vcvtps2ph_WX_VY_Ib),
			),
			invalid,
		),
		invalid,
		invalid,
	),
	0x20: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVHEvIb(XMM0, VEX_Vpinsrb_VX_HX_RdMb_Ib, VEX_Vpinsrb_VX_HX_RqMb_Ib),
			invalid,
		),
		invalid,
		invalid,
	),
	0x21: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVHWIb(XMM0, XMM0, XMM0, VEX_Vinsertps_VX_HX_WX_Ib),
			invalid,
		),
		invalid,
		invalid,
	),
	0x22: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVHEvIb(XMM0, VEX_Vpinsrd_VX_HX_Ed_Ib, VEX_Vpinsrq_VX_HX_Eq_Ib),
			invalid,
		),
		invalid,
		invalid,
	),
	0x30: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newW(
				newVEXVKRKIb(VEX_Kshiftrb_VK_RK_Ib),
				newVEXVKRKIb(VEX_Kshiftrw_VK_RK_Ib),
			),
			invalid,
		),
		invalid,
		invalid,
	),
	0x31: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newW(
				newVEXVKRKIb(VEX_Kshiftrd_VK_RK_Ib),
				newVEXVKRKIb(VEX_Kshiftrq_VK_RK_Ib),
			),
			invalid,
		),
		invalid,
		invalid,
	),
	0x32: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newW(
				newVEXVKRKIb(VEX_Kshiftlb_VK_RK_Ib),
				newVEXVKRKIb(VEX_Kshiftlw_VK_RK_Ib),
			),
			invalid,
		),
		invalid,
		invalid,
	),
	0x33: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newW(
				newVEXVKRKIb(VEX_Kshiftld_VK_RK_Ib),
				newVEXVKRKIb(VEX_Kshiftlq_VK_RK_Ib),
			),
			invalid,
		),
		invalid,
		invalid,
	),
	0x38: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthVEX(
				invalid,
				newVEXVHWIb(YMM0, YMM0, XMM0, VEX_Vinserti128_VY_HY_WX_Ib),
			),
			invalid,
		),
		invalid,
		invalid,
	),
	0x39: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthVEX(
				invalid,
				newVEXWVIb(XMM0, YMM0, VEX_Vextracti128_WX_VY_Ib),
			),
			invalid,
		),
		invalid,
		invalid,
	),
	0x40: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVHWIb(XMM0, XMM0, XMM0, VEX_Vdpps_VX_HX_WX_Ib),
			newVEXVHWIb(YMM0, YMM0, YMM0, VEX_Vdpps_VY_HY_WY_Ib),
		),
		invalid,
		invalid,
	),
	0x41: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(newVEXVHWIb(XMM0, XMM0, XMM0, VEX_Vdppd_VX_HX_WX_Ib), invalid),
		invalid,
		invalid,
	),
	0x42: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVHWIb(XMM0, XMM0, XMM0, VEX_Vmpsadbw_VX_HX_WX_Ib),
			newVEXVHWIb(YMM0, YMM0, YMM0, VEX_Vmpsadbw_VY_HY_WY_Ib),
		),
		invalid,
		invalid,
	),
	0x44: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVHWIb(XMM0, XMM0, XMM0, VEX_Vpclmulqdq_VX_HX_WX_Ib),
			invalid,
		),
		invalid,
		invalid,
	),
	0x46: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthVEX(
				invalid,
				newVEXVHWIb(YMM0, YMM0, YMM0, VEX_Vperm2i128_VY_HY_WY_Ib),
			),
			invalid,
		),
		invalid,
		invalid,
	),
	0x4a: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthVEX(
				newVEXVHWIs4(XMM0, VEX_Vblendvps_VX_HX_WX_Is4X),
				newVEXVHWIs4(YMM0, VEX_Vblendvps_VY_HY_WY_Is4Y),
			),
			invalid,
		),
		invalid,
		invalid,
	),
	0x4b: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthVEX(
				newVEXVHWIs4(XMM0, VEX_Vblendvpd_VX_HX_WX_Is4X),
				newVEXVHWIs4(YMM0, VEX_Vblendvpd_VY_HY_WY_Is4Y),
			),
			invalid,
		),
		invalid,
		invalid,
	),
	0x4c: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthVEX(
				newVEXVHWIs4(XMM0, VEX_Vpblendvb_VX_HX_WX_Is4X),
				newVEXVHWIs4(YMM0, VEX_Vpblendvb_VY_HY_WY_Is4Y),
			),
			invalid,
		),
		invalid,
		invalid,
	),
	0x60: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVWIb(XMM0, VEX_Vpcmpestrm_VX_WX_Ib, VEX_Vpcmpestrm_VX_WX_Ib),
			invalid,
		),
		invalid,
		invalid,
	),
	0x61: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVWIb(XMM0, VEX_Vpcmpestri_VX_WX_Ib, VEX_Vpcmpestri_VX_WX_Ib),
			invalid,
		),
		invalid,
		invalid,
	),
	0x62: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVWIb(XMM0, VEX_Vpcmpistrm_VX_WX_Ib, VEX_Vpcmpistrm_VX_WX_Ib),
			invalid,
		),
		invalid,
		invalid,
	),
	0x63: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVWIb(XMM0, VEX_Vpcmpistri_VX_WX_Ib, VEX_Vpcmpistri_VX_WX_Ib),
			invalid,
		),
		invalid,
		invalid,
	),
	0xdf: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVWIb(
				XMM0,
				VEX_Vaeskeygenassist_VX_WX_Ib,
				VEX_Vaeskeygenassist_VX_WX_Ib,
			),
			invalid,
		),
		invalid,
		invalid,
	),
	0xf0: newMandatoryPrefix2(
		invalid,
		invalid,
		invalid,
		newVectorLengthVEX(newVEXGvEvIb(VEX_Rorx_Gd_Ed_Ib, VEX_Rorx_Gq_Eq_Ib), invalid),
	),
})

// vexMap1 holds the VEX 0F map.
var vexMap1 = fillInvalid([256]*handler{
	0x10: newMandatoryPrefix2(
		newVectorLengthVEX(
			newVEXVW(XMM0, XMM0, VEX_Vmovups_VX_WX),
			newVEXVW(YMM0, YMM0, VEX_Vmovups_VY_WY),
		),
		newVectorLengthVEX(
			newVEXVW(XMM0, XMM0, VEX_Vmovupd_VX_WX),
			newVEXVW(YMM0, YMM0, VEX_Vmovupd_VY_WY),
		),
		newRM(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vmovss_VX_HX_RX, VEX_Vmovss_VX_HX_RX),
			newVEXVM(XMM0, VEX_Vmovss_VX_M),
		),
		newRM(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vmovsd_VX_HX_RX, VEX_Vmovsd_VX_HX_RX),
			newVEXVM(XMM0, VEX_Vmovsd_VX_M),
		),
	),
	0x11: newMandatoryPrefix2(
		newVectorLengthVEX(
			newVEXWV(XMM0, VEX_Vmovups_WX_VX),
			newVEXWV(YMM0, VEX_Vmovups_WY_VY),
		),
		newVectorLengthVEX(
			newVEXWV(XMM0, VEX_Vmovupd_WX_VX),
			newVEXWV(YMM0, VEX_Vmovupd_WY_VY),
		),
		newRM(newVEXWHV(XMM0, VEX_Vmovss_RX_HX_VX), newVEXMV(XMM0, VEX_Vmovss_M_VX)),
		newRM(newVEXWHV(XMM0, VEX_Vmovsd_RX_HX_VX), newVEXMV(XMM0, VEX_Vmovsd_M_VX)),
	),
	0x12: newMandatoryPrefix2(
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vmovhlps_VX_HX_RX, VEX_Vmovlps_VX_HX_M),
			invalid,
		),
		newVectorLengthVEX(newVEXVHM(XMM0, VEX_Vmovlpd_VX_HX_M), invalid),
		newVectorLengthVEX(
			newVEXVW(XMM0, XMM0, VEX_Vmovsldup_VX_WX),
			newVEXVW(YMM0, YMM0, VEX_Vmovsldup_VY_WY),
		),
		newVectorLengthVEX(
			newVEXVW(XMM0, XMM0, VEX_Vmovddup_VX_WX),
			newVEXVW(YMM0, YMM0, VEX_Vmovddup_VY_WY),
		),
	),
	0x13: newMandatoryPrefix2(
		newVectorLengthVEX(newVEXMV(XMM0, VEX_Vmovlps_M_VX), invalid),
		newVectorLengthVEX(newVEXMV(XMM0, VEX_Vmovlpd_M_VX), invalid),
		invalid,
		invalid,
	),
	0x14: newMandatoryPrefix2(
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vunpcklps_VX_HX_WX, VEX_Vunpcklps_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, YMM0, VEX_Vunpcklps_VY_HY_WY, VEX_Vunpcklps_VY_HY_WY),
		),
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vunpcklpd_VX_HX_WX, VEX_Vunpcklpd_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, YMM0, VEX_Vunpcklpd_VY_HY_WY, VEX_Vunpcklpd_VY_HY_WY),
		),
		invalid,
		invalid,
	),
	0x15: newMandatoryPrefix2(
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vunpckhps_VX_HX_WX, VEX_Vunpckhps_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, YMM0, VEX_Vunpckhps_VY_HY_WY, VEX_Vunpckhps_VY_HY_WY),
		),
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vunpckhpd_VX_HX_WX, VEX_Vunpckhpd_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, YMM0, VEX_Vunpckhpd_VY_HY_WY, VEX_Vunpckhpd_VY_HY_WY),
		),
		invalid,
		invalid,
	),
	0x16: newMandatoryPrefix2(
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vmovlhps_VX_HX_RX, VEX_Vmovhps_VX_HX_M),
			invalid,
		),
		newVectorLengthVEX(newVEXVHM(XMM0, VEX_Vmovhpd_VX_HX_M), invalid),
		newVectorLengthVEX(
			newVEXVW(XMM0, XMM0, VEX_Vmovshdup_VX_WX),
			newVEXVW(YMM0, YMM0, VEX_Vmovshdup_VY_WY),
		),
		invalid,
	),
	0x17: newMandatoryPrefix2(
		newVectorLengthVEX(newVEXMV(XMM0, VEX_Vmovhps_M_VX), invalid),
		newVectorLengthVEX(newVEXMV(XMM0, VEX_Vmovhpd_M_VX), invalid),
		invalid,
		invalid,
	),
	0x28: newMandatoryPrefix2(
		newVectorLengthVEX(
			newVEXVW(XMM0, XMM0, VEX_Vmovaps_VX_WX),
			newVEXVW(YMM0, YMM0, VEX_Vmovaps_VY_WY),
		),
		newVectorLengthVEX(
			newVEXVW(XMM0, XMM0, VEX_Vmovapd_VX_WX),
			newVEXVW(YMM0, YMM0, VEX_Vmovapd_VY_WY),
		),
		invalid,
		invalid,
	),
	0x29: newMandatoryPrefix2(
		newVectorLengthVEX(
			newVEXWV(XMM0, VEX_Vmovaps_WX_VX),
			newVEXWV(YMM0, VEX_Vmovaps_WY_VY),
		),
		newVectorLengthVEX(
			newVEXWV(XMM0, VEX_Vmovapd_WX_VX),
			newVEXWV(YMM0, VEX_Vmovapd_WY_VY),
		),
		invalid,
		invalid,
	),
	0x2a: newMandatoryPrefix2(
		invalid,
		invalid,
		newVEXVHEv(XMM0, VEX_Vcvtsi2ss_VX_HX_Ed, VEX_Vcvtsi2ss_VX_HX_Eq),
		newVEXVHEv(XMM0, VEX_Vcvtsi2sd_VX_HX_Ed, VEX_Vcvtsi2sd_VX_HX_Eq),
	),
	0x2b: newMandatoryPrefix2(
		newVectorLengthVEX(
			newVEXMV(XMM0, VEX_Vmovntps_M_VX),
			newVEXMV(YMM0, VEX_Vmovntps_M_VY),
		),
		newVectorLengthVEX(
			newVEXMV(XMM0, VEX_Vmovntpd_M_VX),
			newVEXMV(YMM0, VEX_Vmovntpd_M_VY),
		),
		invalid,
		invalid,
	),
	0x2c: newMandatoryPrefix2(
		invalid,
		invalid,
		newVEXGvW(XMM0, VEX_Vcvttss2si_Gd_WX, VEX_Vcvttss2si_Gq_WX),
		newVEXGvW(XMM0, VEX_Vcvttsd2si_Gd_WX, VEX_Vcvttsd2si_Gq_WX),
	),
	0x2d: newMandatoryPrefix2(
		invalid,
		invalid,
		newVEXGvW(XMM0, VEX_Vcvtss2si_Gd_WX, VEX_Vcvtss2si_Gq_WX),
		newVEXGvW(XMM0, VEX_Vcvtsd2si_Gd_WX, VEX_Vcvtsd2si_Gq_WX),
	),
	0x2e: newMandatoryPrefix2(
		newVEXVW(XMM0, XMM0, VEX_Vucomiss_VX_WX),
		newVEXVW(XMM0, XMM0, VEX_Vucomisd_VX_WX),
		invalid,
		invalid,
	),
	0x2f: newMandatoryPrefix2(
		newVEXVW(XMM0, XMM0, VEX_Vcomiss_VX_WX),
		newVEXVW(XMM0, XMM0, VEX_Vcomisd_VX_WX),
		invalid,
		invalid,
	),
	0x41: newMandatoryPrefix2(
		newVectorLengthVEX(
			invalid,
			newW(newVEXVKHKRK(VEX_Kandw_VK_HK_RK), newVEXVKHKRK(VEX_Kandq_VK_HK_RK)),
		),
		newVectorLengthVEX(
			invalid,
			newW(newVEXVKHKRK(VEX_Kandb_VK_HK_RK), newVEXVKHKRK(VEX_Kandd_VK_HK_RK)),
		),
		invalid,
		invalid,
	),
	0x42: newMandatoryPrefix2(
		newVectorLengthVEX(
			invalid,
			newW(newVEXVKHKRK(VEX_Kandnw_VK_HK_RK), newVEXVKHKRK(VEX_Kandnq_VK_HK_RK)),
		),
		newVectorLengthVEX(
			invalid,
			newW(newVEXVKHKRK(VEX_Kandnb_VK_HK_RK), newVEXVKHKRK(VEX_Kandnd_VK_HK_RK)),
		),
		invalid,
		invalid,
	),
	0x44: newMandatoryPrefix2(
		newVectorLengthVEX(
			newW(newVEXVKRK(VEX_Knotw_VK_RK), newVEXVKRK(VEX_Knotq_VK_RK)),
			invalid,
		),
		newVectorLengthVEX(
			newW(newVEXVKRK(VEX_Knotb_VK_RK), newVEXVKRK(VEX_Knotd_VK_RK)),
			invalid,
		),
		invalid,
		invalid,
	),
	0x45: newMandatoryPrefix2(
		newVectorLengthVEX(
			invalid,
			newW(newVEXVKHKRK(VEX_Korw_VK_HK_RK), newVEXVKHKRK(VEX_Korq_VK_HK_RK)),
		),
		newVectorLengthVEX(
			invalid,
			newW(newVEXVKHKRK(VEX_Korb_VK_HK_RK), newVEXVKHKRK(VEX_Kord_VK_HK_RK)),
		),
		invalid,
		invalid,
	),
	0x46: newMandatoryPrefix2(
		newVectorLengthVEX(
			invalid,
			newW(newVEXVKHKRK(VEX_Kxnorw_VK_HK_RK), newVEXVKHKRK(VEX_Kxnorq_VK_HK_RK)),
		),
		newVectorLengthVEX(
			invalid,
			newW(newVEXVKHKRK(VEX_Kxnorb_VK_HK_RK), newVEXVKHKRK(VEX_Kxnord_VK_HK_RK)),
		),
		invalid,
		invalid,
	),
	0x47: newMandatoryPrefix2(
		newVectorLengthVEX(
			invalid,
			newW(newVEXVKHKRK(VEX_Kxorw_VK_HK_RK), newVEXVKHKRK(VEX_Kxorq_VK_HK_RK)),
		),
		newVectorLengthVEX(
			invalid,
			newW(newVEXVKHKRK(VEX_Kxorb_VK_HK_RK), newVEXVKHKRK(VEX_Kxord_VK_HK_RK)),
		),
		invalid,
		invalid,
	),
	0x4a: newMandatoryPrefix2(
		newVectorLengthVEX(
			invalid,
			newW(newVEXVKHKRK(VEX_Kaddw_VK_HK_RK), newVEXVKHKRK(VEX_Kaddq_VK_HK_RK)),
		),
		newVectorLengthVEX(
			invalid,
			newW(newVEXVKHKRK(VEX_Kaddb_VK_HK_RK), newVEXVKHKRK(VEX_Kaddd_VK_HK_RK)),
		),
		invalid,
		invalid,
	),
	0x4b: newMandatoryPrefix2(
		newVectorLengthVEX(
			invalid,
			newW(
				newVEXVKHKRK(VEX_Kunpckwd_VK_HK_RK),
				newVEXVKHKRK(VEX_Kunpckdq_VK_HK_RK),
			),
		),
		newVectorLengthVEX(invalid, newW(newVEXVKHKRK(VEX_Kunpckbw_VK_HK_RK), invalid)),
		invalid,
		invalid,
	),
	0x50: newMandatoryPrefix2(
		newVectorLengthVEX(
			newVEXGvRX(XMM0, VEX_Vmovmskps_Gd_RX, VEX_Vmovmskps_Gq_RX),
			newVEXGvRX(YMM0, VEX_Vmovmskps_Gd_RY, VEX_Vmovmskps_Gq_RY),
		),
		newVectorLengthVEX(
			newVEXGvRX(XMM0, VEX_Vmovmskpd_Gd_RX, VEX_Vmovmskpd_Gq_RX),
			newVEXGvRX(YMM0, VEX_Vmovmskpd_Gd_RY, VEX_Vmovmskpd_Gq_RY),
		),
		invalid,
		invalid,
	),
	0x51: newMandatoryPrefix2(
		newVectorLengthVEX(
			newVEXVW(XMM0, XMM0, VEX_Vsqrtps_VX_WX),
			newVEXVW(YMM0, YMM0, VEX_Vsqrtps_VY_WY),
		),
		newVectorLengthVEX(
			newVEXVW(XMM0, XMM0, VEX_Vsqrtpd_VX_WX),
			newVEXVW(YMM0, YMM0, VEX_Vsqrtpd_VY_WY),
		),
		newVEXVHW(XMM0, XMM0, XMM0, VEX_Vsqrtss_VX_HX_WX, VEX_Vsqrtss_VX_HX_WX),
		newVEXVHW(XMM0, XMM0, XMM0, VEX_Vsqrtsd_VX_HX_WX, VEX_Vsqrtsd_VX_HX_WX),
	),
	0x52: newMandatoryPrefix2(
		newVectorLengthVEX(
			newVEXVW(XMM0, XMM0, VEX_Vrsqrtps_VX_WX),
			newVEXVW(YMM0, YMM0, VEX_Vrsqrtps_VY_WY),
		),
		invalid,
		newVEXVHW(XMM0, XMM0, XMM0, VEX_Vrsqrtss_VX_HX_WX, VEX_Vrsqrtss_VX_HX_WX),
		invalid,
	),
	0x53: newMandatoryPrefix2(
		newVectorLengthVEX(
			newVEXVW(XMM0, XMM0, VEX_Vrcpps_VX_WX),
			newVEXVW(YMM0, YMM0, VEX_Vrcpps_VY_WY),
		),
		invalid,
		newVEXVHW(XMM0, XMM0, XMM0, VEX_Vrcpss_VX_HX_WX, VEX_Vrcpss_VX_HX_WX),
		invalid,
	),
	0x54: newMandatoryPrefix2(
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vandps_VX_HX_WX, VEX_Vandps_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, YMM0, VEX_Vandps_VY_HY_WY, VEX_Vandps_VY_HY_WY),
		),
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vandpd_VX_HX_WX, VEX_Vandpd_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, YMM0, VEX_Vandpd_VY_HY_WY, VEX_Vandpd_VY_HY_WY),
		),
		invalid,
		invalid,
	),
	0x55: newMandatoryPrefix2(
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vandnps_VX_HX_WX, VEX_Vandnps_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, YMM0, VEX_Vandnps_VY_HY_WY, VEX_Vandnps_VY_HY_WY),
		),
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vandnpd_VX_HX_WX, VEX_Vandnpd_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, YMM0, VEX_Vandnpd_VY_HY_WY, VEX_Vandnpd_VY_HY_WY),
		),
		invalid,
		invalid,
	),
	0x56: newMandatoryPrefix2(
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vorps_VX_HX_WX, VEX_Vorps_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, YMM0, VEX_Vorps_VY_HY_WY, VEX_Vorps_VY_HY_WY),
		),
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vorpd_VX_HX_WX, VEX_Vorpd_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, YMM0, VEX_Vorpd_VY_HY_WY, VEX_Vorpd_VY_HY_WY),
		),
		invalid,
		invalid,
	),
	0x57: newMandatoryPrefix2(
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vxorps_VX_HX_WX, VEX_Vxorps_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, YMM0, VEX_Vxorps_VY_HY_WY, VEX_Vxorps_VY_HY_WY),
		),
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vxorpd_VX_HX_WX, VEX_Vxorpd_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, YMM0, VEX_Vxorpd_VY_HY_WY, VEX_Vxorpd_VY_HY_WY),
		),
		invalid,
		invalid,
	),
	0x58: newMandatoryPrefix2(
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vaddps_VX_HX_WX, VEX_Vaddps_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, YMM0, VEX_Vaddps_VY_HY_WY, VEX_Vaddps_VY_HY_WY),
		),
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vaddpd_VX_HX_WX, VEX_Vaddpd_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, YMM0, VEX_Vaddpd_VY_HY_WY, VEX_Vaddpd_VY_HY_WY),
		),
		newVEXVHW(XMM0, XMM0, XMM0, VEX_Vaddss_VX_HX_WX, VEX_Vaddss_VX_HX_WX),
		newVEXVHW(XMM0, XMM0, XMM0, VEX_Vaddsd_VX_HX_WX, VEX_Vaddsd_VX_HX_WX),
	),
	0x59: newMandatoryPrefix2(
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vmulps_VX_HX_WX, VEX_Vmulps_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, YMM0, VEX_Vmulps_VY_HY_WY, VEX_Vmulps_VY_HY_WY),
		),
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vmulpd_VX_HX_WX, VEX_Vmulpd_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, YMM0, VEX_Vmulpd_VY_HY_WY, VEX_Vmulpd_VY_HY_WY),
		),
		newVEXVHW(XMM0, XMM0, XMM0, VEX_Vmulss_VX_HX_WX, VEX_Vmulss_VX_HX_WX),
		newVEXVHW(XMM0, XMM0, XMM0, VEX_Vmulsd_VX_HX_WX, VEX_Vmulsd_VX_HX_WX),
	),
	0x5a: newMandatoryPrefix2(
		newVectorLengthVEX(
			newVEXVW(XMM0, XMM0, VEX_Vcvtps2pd_VX_WX),
			newVEXVW(YMM0, XMM0, VEX_Vcvtps2pd_VY_WX),
		),
		newVectorLengthVEX(
			newVEXVW(XMM0, XMM0, VEX_Vcvtpd2ps_VX_WX),
			newVEXVW(XMM0, YMM0, VEX_Vcvtpd2ps_VX_WY),
		),
		newVEXVHW(XMM0, XMM0, XMM0, VEX_Vcvtss2sd_VX_HX_WX, VEX_Vcvtss2sd_VX_HX_WX),
		newVEXVHW(XMM0, XMM0, XMM0, VEX_Vcvtsd2ss_VX_HX_WX, VEX_Vcvtsd2ss_VX_HX_WX),
	),
	0x5b: newMandatoryPrefix2(
		newVectorLengthVEX(
			newVEXVW(XMM0, XMM0, VEX_Vcvtdq2ps_VX_WX),
			newVEXVW(YMM0, YMM0, VEX_Vcvtdq2ps_VY_WY),
		),
		newVectorLengthVEX(
			newVEXVW(XMM0, XMM0, VEX_Vcvtps2dq_VX_WX),
			newVEXVW(YMM0, YMM0, VEX_Vcvtps2dq_VY_WY),
		),
		newVectorLengthVEX(
			newVEXVW(XMM0, XMM0, VEX_Vcvttps2dq_VX_WX),
			newVEXVW(YMM0, YMM0, VEX_Vcvttps2dq_VY_WY),
		),
		invalid,
	),
	0x5c: newMandatoryPrefix2(
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vsubps_VX_HX_WX, VEX_Vsubps_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, YMM0, VEX_Vsubps_VY_HY_WY, VEX_Vsubps_VY_HY_WY),
		),
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vsubpd_VX_HX_WX, VEX_Vsubpd_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, YMM0, VEX_Vsubpd_VY_HY_WY, VEX_Vsubpd_VY_HY_WY),
		),
		newVEXVHW(XMM0, XMM0, XMM0, VEX_Vsubss_VX_HX_WX, VEX_Vsubss_VX_HX_WX),
		newVEXVHW(XMM0, XMM0, XMM0, VEX_Vsubsd_VX_HX_WX, VEX_Vsubsd_VX_HX_WX),
	),
	0x5d: newMandatoryPrefix2(
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vminps_VX_HX_WX, VEX_Vminps_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, YMM0, VEX_Vminps_VY_HY_WY, VEX_Vminps_VY_HY_WY),
		),
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vminpd_VX_HX_WX, VEX_Vminpd_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, YMM0, VEX_Vminpd_VY_HY_WY, VEX_Vminpd_VY_HY_WY),
		),
		newVEXVHW(XMM0, XMM0, XMM0, VEX_Vminss_VX_HX_WX, VEX_Vminss_VX_HX_WX),
		newVEXVHW(XMM0, XMM0, XMM0, VEX_Vminsd_VX_HX_WX, VEX_Vminsd_VX_HX_WX),
	),
	0x5e: newMandatoryPrefix2(
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vdivps_VX_HX_WX, VEX_Vdivps_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, YMM0, VEX_Vdivps_VY_HY_WY, VEX_Vdivps_VY_HY_WY),
		),
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vdivpd_VX_HX_WX, VEX_Vdivpd_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, YMM0, VEX_Vdivpd_VY_HY_WY, VEX_Vdivpd_VY_HY_WY),
		),
		newVEXVHW(XMM0, XMM0, XMM0, VEX_Vdivss_VX_HX_WX, VEX_Vdivss_VX_HX_WX),
		newVEXVHW(XMM0, XMM0, XMM0, VEX_Vdivsd_VX_HX_WX, VEX_Vdivsd_VX_HX_WX),
	),
	0x5f: newMandatoryPrefix2(
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vmaxps_VX_HX_WX, VEX_Vmaxps_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, YMM0, VEX_Vmaxps_VY_HY_WY, VEX_Vmaxps_VY_HY_WY),
		),
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vmaxpd_VX_HX_WX, VEX_Vmaxpd_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, YMM0, VEX_Vmaxpd_VY_HY_WY, VEX_Vmaxpd_VY_HY_WY),
		),
		newVEXVHW(XMM0, XMM0, XMM0, VEX_Vmaxss_VX_HX_WX, VEX_Vmaxss_VX_HX_WX),
		newVEXVHW(XMM0, XMM0, XMM0, VEX_Vmaxsd_VX_HX_WX, VEX_Vmaxsd_VX_HX_WX),
	),
	0x60: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVHW(
				XMM0,
				XMM0,
				XMM0,
				VEX_Vpunpcklbw_VX_HX_WX,
				VEX_Vpunpcklbw_VX_HX_WX,
			),
			newVEXVHW(
				YMM0,
				YMM0,
				YMM0,
				VEX_Vpunpcklbw_VY_HY_WY,
				VEX_Vpunpcklbw_VY_HY_WY,
			),
		),
		invalid,
		invalid,
	),
	0x61: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVHW(
				XMM0,
				XMM0,
				XMM0,
				VEX_Vpunpcklwd_VX_HX_WX,
				VEX_Vpunpcklwd_VX_HX_WX,
			),
			newVEXVHW(
				YMM0,
				YMM0,
				YMM0,
				VEX_Vpunpcklwd_VY_HY_WY,
				VEX_Vpunpcklwd_VY_HY_WY,
			),
		),
		invalid,
		invalid,
	),
	0x62: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVHW(
				XMM0,
				XMM0,
				XMM0,
				VEX_Vpunpckldq_VX_HX_WX,
				VEX_Vpunpckldq_VX_HX_WX,
			),
			newVEXVHW(
				YMM0,
				YMM0,
				YMM0,
				VEX_Vpunpckldq_VY_HY_WY,
				VEX_Vpunpckldq_VY_HY_WY,
			),
		),
		invalid,
		invalid,
	),
	0x63: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vpacksswb_VX_HX_WX, VEX_Vpacksswb_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, YMM0, VEX_Vpacksswb_VY_HY_WY, VEX_Vpacksswb_VY_HY_WY),
		),
		invalid,
		invalid,
	),
	0x64: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vpcmpgtb_VX_HX_WX, VEX_Vpcmpgtb_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, YMM0, VEX_Vpcmpgtb_VY_HY_WY, VEX_Vpcmpgtb_VY_HY_WY),
		),
		invalid,
		invalid,
	),
	0x65: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vpcmpgtw_VX_HX_WX, VEX_Vpcmpgtw_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, YMM0, VEX_Vpcmpgtw_VY_HY_WY, VEX_Vpcmpgtw_VY_HY_WY),
		),
		invalid,
		invalid,
	),
	0x66: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vpcmpgtd_VX_HX_WX, VEX_Vpcmpgtd_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, YMM0, VEX_Vpcmpgtd_VY_HY_WY, VEX_Vpcmpgtd_VY_HY_WY),
		),
		invalid,
		invalid,
	),
	0x67: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vpackuswb_VX_HX_WX, VEX_Vpackuswb_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, YMM0, VEX_Vpackuswb_VY_HY_WY, VEX_Vpackuswb_VY_HY_WY),
		),
		invalid,
		invalid,
	),
	0x68: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVHW(
				XMM0,
				XMM0,
				XMM0,
				VEX_Vpunpckhbw_VX_HX_WX,
				VEX_Vpunpckhbw_VX_HX_WX,
			),
			newVEXVHW(
				YMM0,
				YMM0,
				YMM0,
				VEX_Vpunpckhbw_VY_HY_WY,
				VEX_Vpunpckhbw_VY_HY_WY,
			),
		),
		invalid,
		invalid,
	),
	0x69: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVHW(
				XMM0,
				XMM0,
				XMM0,
				VEX_Vpunpckhwd_VX_HX_WX,
				VEX_Vpunpckhwd_VX_HX_WX,
			),
			newVEXVHW(
				YMM0,
				YMM0,
				YMM0,
				VEX_Vpunpckhwd_VY_HY_WY,
				VEX_Vpunpckhwd_VY_HY_WY,
			),
		),
		invalid,
		invalid,
	),
	0x6a: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVHW(
				XMM0,
				XMM0,
				XMM0,
				VEX_Vpunpckhdq_VX_HX_WX,
				VEX_Vpunpckhdq_VX_HX_WX,
			),
			newVEXVHW(
				YMM0,
				YMM0,
				YMM0,
				VEX_Vpunpckhdq_VY_HY_WY,
				VEX_Vpunpckhdq_VY_HY_WY,
			),
		),
		invalid,
		invalid,
	),
	0x6b: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vpackssdw_VX_HX_WX, VEX_Vpackssdw_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, YMM0, VEX_Vpackssdw_VY_HY_WY, VEX_Vpackssdw_VY_HY_WY),
		),
		invalid,
		invalid,
	),
	0x6c: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVHW(
				XMM0,
				XMM0,
				XMM0,
				VEX_Vpunpcklqdq_VX_HX_WX,
				VEX_Vpunpcklqdq_VX_HX_WX,
			),
			newVEXVHW(
				YMM0,
				YMM0,
				YMM0,
				VEX_Vpunpcklqdq_VY_HY_WY,
				VEX_Vpunpcklqdq_VY_HY_WY,
			),
		),
		invalid,
		invalid,
	),
	0x6d: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVHW(
				XMM0,
				XMM0,
				XMM0,
				VEX_Vpunpckhqdq_VX_HX_WX,
				VEX_Vpunpckhqdq_VX_HX_WX,
			),
			newVEXVHW(
				YMM0,
				YMM0,
				YMM0,
				VEX_Vpunpckhqdq_VY_HY_WY,
				VEX_Vpunpckhqdq_VY_HY_WY,
			),
		),
		invalid,
		invalid,
	),
	0x6e: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(newVEXVXEv(VEX_Vmovd_VX_Ed, VEX_Vmovq_VX_Eq), invalid),
		invalid,
		invalid,
	),
	0x6f: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVW(XMM0, XMM0, VEX_Vmovdqa_VX_WX),
			newVEXVW(YMM0, YMM0, VEX_Vmovdqa_VY_WY),
		),
		newVectorLengthVEX(
			newVEXVW(XMM0, XMM0, VEX_Vmovdqu_VX_WX),
			newVEXVW(YMM0, YMM0, VEX_Vmovdqu_VY_WY),
		),
		invalid,
	),
	0x70: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVWIb(XMM0, VEX_Vpshufd_VX_WX_Ib, VEX_Vpshufd_VX_WX_Ib),
			newVEXVWIb(YMM0, VEX_Vpshufd_VY_WY_Ib, VEX_Vpshufd_VY_WY_Ib),
		),
		newVectorLengthVEX(
			newVEXVWIb(XMM0, VEX_Vpshufhw_VX_WX_Ib, VEX_Vpshufhw_VX_WX_Ib),
			newVEXVWIb(YMM0, VEX_Vpshufhw_VY_WY_Ib, VEX_Vpshufhw_VY_WY_Ib),
		),
		newVectorLengthVEX(
			newVEXVWIb(XMM0, VEX_Vpshuflw_VX_WX_Ib, VEX_Vpshuflw_VX_WX_Ib),
			newVEXVWIb(YMM0, VEX_Vpshuflw_VY_WY_Ib, VEX_Vpshuflw_VY_WY_Ib),
		),
	),
	0x71: newGroup(vexGrp0F71),
	0x72: newGroup(vexGrp0F72),
	0x73: newGroup(vexGrp0F73),
	0x74: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vpcmpeqb_VX_HX_WX, VEX_Vpcmpeqb_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, YMM0, VEX_Vpcmpeqb_VY_HY_WY, VEX_Vpcmpeqb_VY_HY_WY),
		),
		invalid,
		invalid,
	),
	0x75: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vpcmpeqw_VX_HX_WX, VEX_Vpcmpeqw_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, YMM0, VEX_Vpcmpeqw_VY_HY_WY, VEX_Vpcmpeqw_VY_HY_WY),
		),
		invalid,
		invalid,
	),
	0x76: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vpcmpeqd_VX_HX_WX, VEX_Vpcmpeqd_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, YMM0, VEX_Vpcmpeqd_VY_HY_WY, VEX_Vpcmpeqd_VY_HY_WY),
		),
		invalid,
		invalid,
	),
	0x77: newMandatoryPrefix2NoModRM(
		newVectorLengthNoModRMVEX(newVEXSimple(VEX_Vzeroupper), newVEXSimple(VEX_Vzeroall)),
		invalidNoModRM,
		invalidNoModRM,
		invalidNoModRM,
	),
	0x7c: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vhaddpd_VX_HX_WX, VEX_Vhaddpd_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, YMM0, VEX_Vhaddpd_VY_HY_WY, VEX_Vhaddpd_VY_HY_WY),
		),
		invalid,
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vhaddps_VX_HX_WX, VEX_Vhaddps_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, YMM0, VEX_Vhaddps_VY_HY_WY, VEX_Vhaddps_VY_HY_WY),
		),
	),
	0x7d: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vhsubpd_VX_HX_WX, VEX_Vhsubpd_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, YMM0, VEX_Vhsubpd_VY_HY_WY, VEX_Vhsubpd_VY_HY_WY),
		),
		invalid,
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vhsubps_VX_HX_WX, VEX_Vhsubps_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, YMM0, VEX_Vhsubps_VY_HY_WY, VEX_Vhsubps_VY_HY_WY),
		),
	),
	0x7e: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(newVEXEvVX(VEX_Vmovd_Ed_VX, VEX_Vmovq_Eq_VX), invalid),
		newVectorLengthVEX(newVEXVW(XMM0, XMM0, VEX_Vmovq_VX_WX), invalid),
		invalid,
	),
	0x7f: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXWV(XMM0, VEX_Vmovdqa_WX_VX),
			newVEXWV(YMM0, VEX_Vmovdqa_WY_VY),
		),
		newVectorLengthVEX(
			newVEXWV(XMM0, VEX_Vmovdqu_WX_VX),
			newVEXWV(YMM0, VEX_Vmovdqu_WY_VY),
		),
		invalid,
	),
	0x90: newMandatoryPrefix2(
		newVectorLengthVEX(
			newW(newVEXVKWK(VEX_Kmovw_VK_WK), newVEXVKWK(VEX_Kmovq_VK_WK)),
			invalid,
		),
		newVectorLengthVEX(
			newW(newVEXVKWK(VEX_Kmovb_VK_WK), newVEXVKWK(VEX_Kmovd_VK_WK)),
			invalid,
		),
		invalid,
		invalid,
	),
	0x91: newMandatoryPrefix2(
		newVectorLengthVEX(
			newW(newVEXMVK(VEX_Kmovw_MK_VK), newVEXMVK(VEX_Kmovq_MK_VK)),
			invalid,
		),
		newVectorLengthVEX(
			newW(newVEXMVK(VEX_Kmovb_MK_VK), newVEXMVK(VEX_Kmovd_MK_VK)),
			invalid,
		),
		invalid,
		invalid,
	),
	0x92: newMandatoryPrefix2(
		newVectorLengthVEX(newW(newVEXVKR(VEX_Kmovw_VK_Rd, EAX), invalid), invalid),
		newVectorLengthVEX(newW(newVEXVKR(VEX_Kmovb_VK_Rd, EAX), invalid), invalid),
		invalid,
		newVectorLengthVEX(
			newW(
				newVEXVKR(VEX_Kmovd_VK_Rd, EAX),
				newBitnessModRM(invalid, newVEXVKR(VEX_Kmovq_VK_Rq, RAX)),
			),
			invalid,
		),
	),
	0x93: newMandatoryPrefix2(
		newVectorLengthVEX(newW(newVEXGVK(VEX_Kmovw_Gd_RK, EAX), invalid), invalid),
		newVectorLengthVEX(newW(newVEXGVK(VEX_Kmovb_Gd_RK, EAX), invalid), invalid),
		invalid,
		newVectorLengthVEX(
			newW(
				newVEXGVK(VEX_Kmovd_Gd_RK, EAX),
				newBitnessModRM(invalid, newVEXGVK(VEX_Kmovq_Gq_RK, RAX)),
			),
			invalid,
		),
	),
	0x98: newMandatoryPrefix2(
		newVectorLengthVEX(
			newW(newVEXVKRK(VEX_Kortestw_VK_RK), newVEXVKRK(VEX_Kortestq_VK_RK)),
			invalid,
		),
		newVectorLengthVEX(
			newW(newVEXVKRK(VEX_Kortestb_VK_RK), newVEXVKRK(VEX_Kortestd_VK_RK)),
			invalid,
		),
		invalid,
		invalid,
	),
	0x99: newMandatoryPrefix2(
		newVectorLengthVEX(
			newW(newVEXVKRK(VEX_Ktestw_VK_RK), newVEXVKRK(VEX_Ktestq_VK_RK)),
			invalid,
		),
		newVectorLengthVEX(
			newW(newVEXVKRK(VEX_Ktestb_VK_RK), newVEXVKRK(VEX_Ktestd_VK_RK)),
			invalid,
		),
		invalid,
		invalid,
	),
	0xae: newGroup(vexGrp0FAE),
	0xc2: newMandatoryPrefix2(
		newVectorLengthVEX(
			newVEXVHWIb(XMM0, XMM0, XMM0, VEX_Vcmpps_VX_HX_WX_Ib),
			newVEXVHWIb(YMM0, YMM0, YMM0, VEX_Vcmpps_VY_HY_WY_Ib),
		),
		newVectorLengthVEX(
			newVEXVHWIb(XMM0, XMM0, XMM0, VEX_Vcmppd_VX_HX_WX_Ib),
			newVEXVHWIb(YMM0, YMM0, YMM0, VEX_Vcmppd_VY_HY_WY_Ib),
		),
		newVEXVHWIb(XMM0, XMM0, XMM0, VEX_Vcmpss_VX_HX_WX_Ib),
		newVEXVHWIb(XMM0, XMM0, XMM0, VEX_Vcmpsd_VX_HX_WX_Ib),
	),
	0xc4: newMandatoryPrefix2(
		invalid,
		newVEXVHEvIb(XMM0, VEX_Vpinsrw_VX_HX_RdMw_Ib, VEX_Vpinsrw_VX_HX_RqMw_Ib),
		invalid,
		invalid,
	),
	0xc5: newMandatoryPrefix2(
		invalid,
		newVEXGvGPRIb(XMM0, VEX_Vpextrw_Gd_RX_Ib, VEX_Vpextrw_Gq_RX_Ib),
		invalid,
		invalid,
	),
	0xc6: newMandatoryPrefix2(
		newVectorLengthVEX(
			newVEXVHWIb(XMM0, XMM0, XMM0, VEX_Vshufps_VX_HX_WX_Ib),
			newVEXVHWIb(YMM0, YMM0, YMM0, VEX_Vshufps_VY_HY_WY_Ib),
		),
		newVectorLengthVEX(
			newVEXVHWIb(XMM0, XMM0, XMM0, VEX_Vshufpd_VX_HX_WX_Ib),
			newVEXVHWIb(YMM0, YMM0, YMM0, VEX_Vshufpd_VY_HY_WY_Ib),
		),
		invalid,
		invalid,
	),
	0xd0: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vaddsubpd_VX_HX_WX, VEX_Vaddsubpd_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, YMM0, VEX_Vaddsubpd_VY_HY_WY, VEX_Vaddsubpd_VY_HY_WY),
		),
		invalid,
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vaddsubps_VX_HX_WX, VEX_Vaddsubps_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, YMM0, VEX_Vaddsubps_VY_HY_WY, VEX_Vaddsubps_VY_HY_WY),
		),
	),
	0xd1: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vpsrlw_VX_HX_WX, VEX_Vpsrlw_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, XMM0, VEX_Vpsrlw_VY_HY_WX, VEX_Vpsrlw_VY_HY_WX),
		),
		invalid,
		invalid,
	),
	0xd2: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vpsrld_VX_HX_WX, VEX_Vpsrld_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, XMM0, VEX_Vpsrld_VY_HY_WX, VEX_Vpsrld_VY_HY_WX),
		),
		invalid,
		invalid,
	),
	0xd3: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vpsrlq_VX_HX_WX, VEX_Vpsrlq_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, XMM0, VEX_Vpsrlq_VY_HY_WX, VEX_Vpsrlq_VY_HY_WX),
		),
		invalid,
		invalid,
	),
	0xd4: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vpaddq_VX_HX_WX, VEX_Vpaddq_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, YMM0, VEX_Vpaddq_VY_HY_WY, VEX_Vpaddq_VY_HY_WY),
		),
		invalid,
		invalid,
	),
	0xd5: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vpmullw_VX_HX_WX, VEX_Vpmullw_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, YMM0, VEX_Vpmullw_VY_HY_WY, VEX_Vpmullw_VY_HY_WY),
		),
		invalid,
		invalid,
	),
	0xd6: newMandatoryPrefix2(invalid, newVEXWV(XMM0, VEX_Vmovq_WX_VX), invalid, invalid),
	0xd7: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXGvRX(XMM0, VEX_Vpmovmskb_Gd_RX, VEX_Vpmovmskb_Gq_RX),
			newVEXGvRX(YMM0, VEX_Vpmovmskb_Gd_RY, VEX_Vpmovmskb_Gq_RY),
		),
		invalid,
		invalid,
	),
	0xd8: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vpsubusb_VX_HX_WX, VEX_Vpsubusb_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, YMM0, VEX_Vpsubusb_VY_HY_WY, VEX_Vpsubusb_VY_HY_WY),
		),
		invalid,
		invalid,
	),
	0xd9: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vpsubusw_VX_HX_WX, VEX_Vpsubusw_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, YMM0, VEX_Vpsubusw_VY_HY_WY, VEX_Vpsubusw_VY_HY_WY),
		),
		invalid,
		invalid,
	),
	0xda: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vpminub_VX_HX_WX, VEX_Vpminub_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, YMM0, VEX_Vpminub_VY_HY_WY, VEX_Vpminub_VY_HY_WY),
		),
		invalid,
		invalid,
	),
	0xdb: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vpand_VX_HX_WX, VEX_Vpand_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, YMM0, VEX_Vpand_VY_HY_WY, VEX_Vpand_VY_HY_WY),
		),
		invalid,
		invalid,
	),
	0xdc: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vpaddusb_VX_HX_WX, VEX_Vpaddusb_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, YMM0, VEX_Vpaddusb_VY_HY_WY, VEX_Vpaddusb_VY_HY_WY),
		),
		invalid,
		invalid,
	),
	0xdd: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vpaddusw_VX_HX_WX, VEX_Vpaddusw_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, YMM0, VEX_Vpaddusw_VY_HY_WY, VEX_Vpaddusw_VY_HY_WY),
		),
		invalid,
		invalid,
	),
	0xde: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vpmaxub_VX_HX_WX, VEX_Vpmaxub_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, YMM0, VEX_Vpmaxub_VY_HY_WY, VEX_Vpmaxub_VY_HY_WY),
		),
		invalid,
		invalid,
	),
	0xdf: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vpandn_VX_HX_WX, VEX_Vpandn_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, YMM0, VEX_Vpandn_VY_HY_WY, VEX_Vpandn_VY_HY_WY),
		),
		invalid,
		invalid,
	),
	0xe0: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vpavgb_VX_HX_WX, VEX_Vpavgb_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, YMM0, VEX_Vpavgb_VY_HY_WY, VEX_Vpavgb_VY_HY_WY),
		),
		invalid,
		invalid,
	),
	0xe1: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vpsraw_VX_HX_WX, VEX_Vpsraw_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, XMM0, VEX_Vpsraw_VY_HY_WX, VEX_Vpsraw_VY_HY_WX),
		),
		invalid,
		invalid,
	),
	0xe2: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vpsrad_VX_HX_WX, VEX_Vpsrad_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, XMM0, VEX_Vpsrad_VY_HY_WX, VEX_Vpsrad_VY_HY_WX),
		),
		invalid,
		invalid,
	),
	0xe3: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vpavgw_VX_HX_WX, VEX_Vpavgw_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, YMM0, VEX_Vpavgw_VY_HY_WY, VEX_Vpavgw_VY_HY_WY),
		),
		invalid,
		invalid,
	),
	0xe4: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vpmulhuw_VX_HX_WX, VEX_Vpmulhuw_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, YMM0, VEX_Vpmulhuw_VY_HY_WY, VEX_Vpmulhuw_VY_HY_WY),
		),
		invalid,
		invalid,
	),
	0xe5: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vpmulhw_VX_HX_WX, VEX_Vpmulhw_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, YMM0, VEX_Vpmulhw_VY_HY_WY, VEX_Vpmulhw_VY_HY_WY),
		),
		invalid,
		invalid,
	),
	0xe6: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVW(XMM0, XMM0, VEX_Vcvttpd2dq_VX_WX),
			newVEXVW(XMM0, YMM0, VEX_Vcvttpd2dq_VX_WY),
		),
		newVectorLengthVEX(
			newVEXVW(XMM0, XMM0, VEX_Vcvtdq2pd_VX_WX),
			newVEXVW(YMM0, XMM0, VEX_Vcvtdq2pd_VY_WX),
		),
		newVectorLengthVEX(
			newVEXVW(XMM0, XMM0, VEX_Vcvtpd2dq_VX_WX),
			newVEXVW(XMM0, YMM0, VEX_Vcvtpd2dq_VX_WY),
		),
	),
	0xe7: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXMV(XMM0, VEX_Vmovntdq_M_VX),
			newVEXMV(YMM0, VEX_Vmovntdq_M_VY),
		),
		invalid,
		invalid,
	),
	0xe8: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vpsubsb_VX_HX_WX, VEX_Vpsubsb_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, YMM0, VEX_Vpsubsb_VY_HY_WY, VEX_Vpsubsb_VY_HY_WY),
		),
		invalid,
		invalid,
	),
	0xe9: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vpsubsw_VX_HX_WX, VEX_Vpsubsw_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, YMM0, VEX_Vpsubsw_VY_HY_WY, VEX_Vpsubsw_VY_HY_WY),
		),
		invalid,
		invalid,
	),
	0xea: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vpminsw_VX_HX_WX, VEX_Vpminsw_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, YMM0, VEX_Vpminsw_VY_HY_WY, VEX_Vpminsw_VY_HY_WY),
		),
		invalid,
		invalid,
	),
	0xeb: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vpor_VX_HX_WX, VEX_Vpor_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, YMM0, VEX_Vpor_VY_HY_WY, VEX_Vpor_VY_HY_WY),
		),
		invalid,
		invalid,
	),
	0xec: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vpaddsb_VX_HX_WX, VEX_Vpaddsb_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, YMM0, VEX_Vpaddsb_VY_HY_WY, VEX_Vpaddsb_VY_HY_WY),
		),
		invalid,
		invalid,
	),
	0xed: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vpaddsw_VX_HX_WX, VEX_Vpaddsw_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, YMM0, VEX_Vpaddsw_VY_HY_WY, VEX_Vpaddsw_VY_HY_WY),
		),
		invalid,
		invalid,
	),
	0xee: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vpmaxsw_VX_HX_WX, VEX_Vpmaxsw_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, YMM0, VEX_Vpmaxsw_VY_HY_WY, VEX_Vpmaxsw_VY_HY_WY),
		),
		invalid,
		invalid,
	),
	0xef: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vpxor_VX_HX_WX, VEX_Vpxor_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, YMM0, VEX_Vpxor_VY_HY_WY, VEX_Vpxor_VY_HY_WY),
		),
		invalid,
		invalid,
	),
	0xf0: newMandatoryPrefix2(
		invalid,
		invalid,
		invalid,
		newVectorLengthVEX(newVEXVM(XMM0, VEX_Vlddqu_VX_M), newVEXVM(YMM0, VEX_Vlddqu_VY_M)),
	),
	0xf1: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vpsllw_VX_HX_WX, VEX_Vpsllw_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, XMM0, VEX_Vpsllw_VY_HY_WX, VEX_Vpsllw_VY_HY_WX),
		),
		invalid,
		invalid,
	),
	0xf2: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vpslld_VX_HX_WX, VEX_Vpslld_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, XMM0, VEX_Vpslld_VY_HY_WX, VEX_Vpslld_VY_HY_WX),
		),
		invalid,
		invalid,
	),
	0xf3: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vpsllq_VX_HX_WX, VEX_Vpsllq_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, XMM0, VEX_Vpsllq_VY_HY_WX, VEX_Vpsllq_VY_HY_WX),
		),
		invalid,
		invalid,
	),
	0xf4: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vpmuludq_VX_HX_WX, VEX_Vpmuludq_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, YMM0, VEX_Vpmuludq_VY_HY_WY, VEX_Vpmuludq_VY_HY_WY),
		),
		invalid,
		invalid,
	),
	0xf5: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vpmaddwd_VX_HX_WX, VEX_Vpmaddwd_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, YMM0, VEX_Vpmaddwd_VY_HY_WY, VEX_Vpmaddwd_VY_HY_WY),
		),
		invalid,
		invalid,
	),
	0xf6: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vpsadbw_VX_HX_WX, VEX_Vpsadbw_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, YMM0, VEX_Vpsadbw_VY_HY_WY, VEX_Vpsadbw_VY_HY_WY),
		),
		invalid,
		invalid,
	),
	0xf7: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(newVEXrDIVXRX(XMM0, VEX_Vmaskmovdqu_rDI_VX_RX), invalid),
		invalid,
		invalid,
	),
	0xf8: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vpsubb_VX_HX_WX, VEX_Vpsubb_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, YMM0, VEX_Vpsubb_VY_HY_WY, VEX_Vpsubb_VY_HY_WY),
		),
		invalid,
		invalid,
	),
	0xf9: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vpsubw_VX_HX_WX, VEX_Vpsubw_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, YMM0, VEX_Vpsubw_VY_HY_WY, VEX_Vpsubw_VY_HY_WY),
		),
		invalid,
		invalid,
	),
	0xfa: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vpsubd_VX_HX_WX, VEX_Vpsubd_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, YMM0, VEX_Vpsubd_VY_HY_WY, VEX_Vpsubd_VY_HY_WY),
		),
		invalid,
		invalid,
	),
	0xfb: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vpsubq_VX_HX_WX, VEX_Vpsubq_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, YMM0, VEX_Vpsubq_VY_HY_WY, VEX_Vpsubq_VY_HY_WY),
		),
		invalid,
		invalid,
	),
	0xfc: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vpaddb_VX_HX_WX, VEX_Vpaddb_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, YMM0, VEX_Vpaddb_VY_HY_WY, VEX_Vpaddb_VY_HY_WY),
		),
		invalid,
		invalid,
	),
	0xfd: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vpaddw_VX_HX_WX, VEX_Vpaddw_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, YMM0, VEX_Vpaddw_VY_HY_WY, VEX_Vpaddw_VY_HY_WY),
		),
		invalid,
		invalid,
	),
	0xfe: newMandatoryPrefix2(
		invalid,
		newVectorLengthVEX(
			newVEXVHW(XMM0, XMM0, XMM0, VEX_Vpaddd_VX_HX_WX, VEX_Vpaddd_VX_HX_WX),
			newVEXVHW(YMM0, YMM0, YMM0, VEX_Vpaddd_VY_HY_WY, VEX_Vpaddd_VY_HY_WY),
		),
		invalid,
		invalid,
	),
})

// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

var evexGrp0F71 = [8]*handler{
	invalid,
	invalid,
	newMandatoryPrefix2(
		invalid,
		newVectorLengthEVEX(
			newEVEXHkWIb(XMM0, XMM0, EVEX_Vpsrlw_HX_k1z_WX_Ib, TupleFullMem128, false),
			newEVEXHkWIb(YMM0, YMM0, EVEX_Vpsrlw_HY_k1z_WY_Ib, TupleFullMem256, false),
			newEVEXHkWIb(ZMM0, ZMM0, EVEX_Vpsrlw_HZ_k1z_WZ_Ib, TupleFullMem512, false),
		),
		invalid,
		invalid,
	),
	invalid,
	newMandatoryPrefix2(
		invalid,
		newVectorLengthEVEX(
			newEVEXHkWIb(XMM0, XMM0, EVEX_Vpsraw_HX_k1z_WX_Ib, TupleFullMem128, false),
			newEVEXHkWIb(YMM0, YMM0, EVEX_Vpsraw_HY_k1z_WY_Ib, TupleFullMem256, false),
			newEVEXHkWIb(ZMM0, ZMM0, EVEX_Vpsraw_HZ_k1z_WZ_Ib, TupleFullMem512, false),
		),
		invalid,
		invalid,
	),
	invalid,
	newMandatoryPrefix2(
		invalid,
		newVectorLengthEVEX(
			newEVEXHkWIb(XMM0, XMM0, EVEX_Vpsllw_HX_k1z_WX_Ib, TupleFullMem128, false),
			newEVEXHkWIb(YMM0, YMM0, EVEX_Vpsllw_HY_k1z_WY_Ib, TupleFullMem256, false),
			newEVEXHkWIb(ZMM0, ZMM0, EVEX_Vpsllw_HZ_k1z_WZ_Ib, TupleFullMem512, false),
		),
		invalid,
		invalid,
	),
	invalid,
}

var evexGrp0F72 = [8]*handler{
	newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				newEVEXHkWIb(
					XMM0,
					XMM0,
					EVEX_Vprord_HX_k1z_WX_Ib_b,
					TupleFull128,
					true,
				),
				newEVEXHkWIb(
					YMM0,
					YMM0,
					EVEX_Vprord_HY_k1z_WY_Ib_b,
					TupleFull256,
					true,
				),
				newEVEXHkWIb(
					ZMM0,
					ZMM0,
					EVEX_Vprord_HZ_k1z_WZ_Ib_b,
					TupleFull512,
					true,
				),
			),
			newVectorLengthEVEX(
				newEVEXHkWIb(
					XMM0,
					XMM0,
					EVEX_Vprorq_HX_k1z_WX_Ib_b,
					TupleFull128,
					true,
				),
				newEVEXHkWIb(
					YMM0,
					YMM0,
					EVEX_Vprorq_HY_k1z_WY_Ib_b,
					TupleFull256,
					true,
				),
				newEVEXHkWIb(
					ZMM0,
					ZMM0,
					EVEX_Vprorq_HZ_k1z_WZ_Ib_b,
					TupleFull512,
					true,
				),
			),
		),
		invalid,
		invalid,
	),
	newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				newEVEXHkWIb(
					XMM0,
					XMM0,
					EVEX_Vprold_HX_k1z_WX_Ib_b,
					TupleFull128,
					true,
				),
				newEVEXHkWIb(
					YMM0,
					YMM0,
					EVEX_Vprold_HY_k1z_WY_Ib_b,
					TupleFull256,
					true,
				),
				newEVEXHkWIb(
					ZMM0,
					ZMM0,
					EVEX_Vprold_HZ_k1z_WZ_Ib_b,
					TupleFull512,
					true,
				),
			),
			newVectorLengthEVEX(
				newEVEXHkWIb(
					XMM0,
					XMM0,
					EVEX_Vprolq_HX_k1z_WX_Ib_b,
					TupleFull128,
					true,
				),
				newEVEXHkWIb(
					YMM0,
					YMM0,
					EVEX_Vprolq_HY_k1z_WY_Ib_b,
					TupleFull256,
					true,
				),
				newEVEXHkWIb(
					ZMM0,
					ZMM0,
					EVEX_Vprolq_HZ_k1z_WZ_Ib_b,
					TupleFull512,
					true,
				),
			),
		),
		invalid,
		invalid,
	),
	newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				newEVEXHkWIb(
					XMM0,
					XMM0,
					EVEX_Vpsrld_HX_k1z_WX_Ib_b,
					TupleFull128,
					true,
				),
				newEVEXHkWIb(
					YMM0,
					YMM0,
					EVEX_Vpsrld_HY_k1z_WY_Ib_b,
					TupleFull256,
					true,
				),
				newEVEXHkWIb(
					ZMM0,
					ZMM0,
					EVEX_Vpsrld_HZ_k1z_WZ_Ib_b,
					TupleFull512,
					true,
				),
			),
			invalid,
		),
		invalid,
		invalid,
	),
	invalid,
	newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				newEVEXHkWIb(
					XMM0,
					XMM0,
					EVEX_Vpsrad_HX_k1z_WX_Ib_b,
					TupleFull128,
					true,
				),
				newEVEXHkWIb(
					YMM0,
					YMM0,
					EVEX_Vpsrad_HY_k1z_WY_Ib_b,
					TupleFull256,
					true,
				),
				newEVEXHkWIb(
					ZMM0,
					ZMM0,
					EVEX_Vpsrad_HZ_k1z_WZ_Ib_b,
					TupleFull512,
					true,
				),
			),
			newVectorLengthEVEX(
				newEVEXHkWIb(
					XMM0,
					XMM0,
					EVEX_Vpsraq_HX_k1z_WX_Ib_b,
					TupleFull128,
					true,
				),
				newEVEXHkWIb(
					YMM0,
					YMM0,
					EVEX_Vpsraq_HY_k1z_WY_Ib_b,
					TupleFull256,
					true,
				),
				newEVEXHkWIb(
					ZMM0,
					ZMM0,
					EVEX_Vpsraq_HZ_k1z_WZ_Ib_b,
					TupleFull512,
					true,
				),
			),
		),
		invalid,
		invalid,
	),
	invalid,
	newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				newEVEXHkWIb(
					XMM0,
					XMM0,
					EVEX_Vpslld_HX_k1z_WX_Ib_b,
					TupleFull128,
					true,
				),
				newEVEXHkWIb(
					YMM0,
					YMM0,
					EVEX_Vpslld_HY_k1z_WY_Ib_b,
					TupleFull256,
					true,
				),
				newEVEXHkWIb(
					ZMM0,
					ZMM0,
					EVEX_Vpslld_HZ_k1z_WZ_Ib_b,
					TupleFull512,
					true,
				),
			),
			invalid,
		),
		invalid,
		invalid,
	),
	invalid,
}

var evexGrp0F73 = [8]*handler{
	invalid,
	invalid,
	newMandatoryPrefix2(
		invalid,
		newW(
			invalid,
			newVectorLengthEVEX(
				newEVEXHkWIb(
					XMM0,
					XMM0,
					EVEX_Vpsrlq_HX_k1z_WX_Ib_b,
					TupleFull128,
					true,
				),
				newEVEXHkWIb(
					YMM0,
					YMM0,
					EVEX_Vpsrlq_HY_k1z_WY_Ib_b,
					TupleFull256,
					true,
				),
				newEVEXHkWIb(
					ZMM0,
					ZMM0,
					EVEX_Vpsrlq_HZ_k1z_WZ_Ib_b,
					TupleFull512,
					true,
				),
			),
		),
		invalid,
		invalid,
	),
	newMandatoryPrefix2(
		invalid,
		newVectorLengthEVEX(
			newEVEXHkWIb(XMM0, XMM0, EVEX_Vpsrldq_HX_WX_Ib, TupleFullMem128, false),
			newEVEXHkWIb(YMM0, YMM0, EVEX_Vpsrldq_HY_WY_Ib, TupleFullMem256, false),
			newEVEXHkWIb(ZMM0, ZMM0, EVEX_Vpsrldq_HZ_WZ_Ib, TupleFullMem512, false),
		),
		invalid,
		invalid,
	),
	invalid,
	invalid,
	newMandatoryPrefix2(
		invalid,
		newW(
			invalid,
			newVectorLengthEVEX(
				newEVEXHkWIb(
					XMM0,
					XMM0,
					EVEX_Vpsllq_HX_k1z_WX_Ib_b,
					TupleFull128,
					true,
				),
				newEVEXHkWIb(
					YMM0,
					YMM0,
					EVEX_Vpsllq_HY_k1z_WY_Ib_b,
					TupleFull256,
					true,
				),
				newEVEXHkWIb(
					ZMM0,
					ZMM0,
					EVEX_Vpsllq_HZ_k1z_WZ_Ib_b,
					TupleFull512,
					true,
				),
			),
		),
		invalid,
		invalid,
	),
	newMandatoryPrefix2(
		invalid,
		newVectorLengthEVEX(
			newEVEXHkWIb(XMM0, XMM0, EVEX_Vpslldq_HX_WX_Ib, TupleFullMem128, false),
			newEVEXHkWIb(YMM0, YMM0, EVEX_Vpslldq_HY_WY_Ib, TupleFullMem256, false),
			newEVEXHkWIb(ZMM0, ZMM0, EVEX_Vpslldq_HZ_WZ_Ib, TupleFullMem512, false),
		),
		invalid,
		invalid,
	),
}

var evexGrp0F38C6 = [8]*handler{
	invalid,
	newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				invalid,
				invalid,
				newEVEXVSIBk1(ZMM0, EVEX_Vgatherpf0dps_VM32Z_k1, Tuple1Scalar),
			),
			newVectorLengthEVEX(
				invalid,
				invalid,
				newEVEXVSIBk1(YMM0, EVEX_Vgatherpf0dpd_VM32Y_k1, Tuple1Scalar),
			),
		),
		invalid,
		invalid,
	),
	newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				invalid,
				invalid,
				newEVEXVSIBk1(ZMM0, EVEX_Vgatherpf1dps_VM32Z_k1, Tuple1Scalar),
			),
			newVectorLengthEVEX(
				invalid,
				invalid,
				newEVEXVSIBk1(YMM0, EVEX_Vgatherpf1dpd_VM32Y_k1, Tuple1Scalar),
			),
		),
		invalid,
		invalid,
	),
	invalid,
	invalid,
	newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				invalid,
				invalid,
				newEVEXVSIBk1(ZMM0, EVEX_Vscatterpf0dps_VM32Z_k1, Tuple1Scalar),
			),
			newVectorLengthEVEX(
				invalid,
				invalid,
				newEVEXVSIBk1(YMM0, EVEX_Vscatterpf0dpd_VM32Y_k1, Tuple1Scalar),
			),
		),
		invalid,
		invalid,
	),
	newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				invalid,
				invalid,
				newEVEXVSIBk1(ZMM0, EVEX_Vscatterpf1dps_VM32Z_k1, Tuple1Scalar),
			),
			newVectorLengthEVEX(
				invalid,
				invalid,
				newEVEXVSIBk1(YMM0, EVEX_Vscatterpf1dpd_VM32Y_k1, Tuple1Scalar),
			),
		),
		invalid,
		invalid,
	),
	invalid,
}

var evexGrp0F38C7 = [8]*handler{
	invalid,
	newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				invalid,
				invalid,
				newEVEXVSIBk1(ZMM0, EVEX_Vgatherpf0qps_VM64Z_k1, Tuple1Scalar),
			),
			newVectorLengthEVEX(
				invalid,
				invalid,
				newEVEXVSIBk1(ZMM0, EVEX_Vgatherpf0qpd_VM64Z_k1, Tuple1Scalar),
			),
		),
		invalid,
		invalid,
	),
	newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				invalid,
				invalid,
				newEVEXVSIBk1(ZMM0, EVEX_Vgatherpf1qps_VM64Z_k1, Tuple1Scalar),
			),
			newVectorLengthEVEX(
				invalid,
				invalid,
				newEVEXVSIBk1(ZMM0, EVEX_Vgatherpf1qpd_VM64Z_k1, Tuple1Scalar),
			),
		),
		invalid,
		invalid,
	),
	invalid,
	invalid,
	newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				invalid,
				invalid,
				newEVEXVSIBk1(ZMM0, EVEX_Vscatterpf0qps_VM64Z_k1, Tuple1Scalar),
			),
			newVectorLengthEVEX(
				invalid,
				invalid,
				newEVEXVSIBk1(ZMM0, EVEX_Vscatterpf0qpd_VM64Z_k1, Tuple1Scalar),
			),
		),
		invalid,
		invalid,
	),
	newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				invalid,
				invalid,
				newEVEXVSIBk1(ZMM0, EVEX_Vscatterpf1qps_VM64Z_k1, Tuple1Scalar),
			),
			newVectorLengthEVEX(
				invalid,
				invalid,
				newEVEXVSIBk1(ZMM0, EVEX_Vscatterpf1qpd_VM64Z_k1, Tuple1Scalar),
			),
		),
		invalid,
		invalid,
	),
	invalid,
}

// evexMap2 holds the EVEX 0F38 map.
var evexMap2 = fillInvalid([256]*handler{
	0x00: newMandatoryPrefix2(
		invalid,
		newVectorLengthEVEX(
			newEVEXVkHW(
				XMM0,
				XMM0,
				XMM0,
				EVEX_Vpshufb_VX_k1z_HX_WX,
				TupleFullMem128,
				false,
			),
			newEVEXVkHW(
				YMM0,
				YMM0,
				YMM0,
				EVEX_Vpshufb_VY_k1z_HY_WY,
				TupleFullMem256,
				false,
			),
			newEVEXVkHW(
				ZMM0,
				ZMM0,
				ZMM0,
				EVEX_Vpshufb_VZ_k1z_HZ_WZ,
				TupleFullMem512,
				false,
			),
		),
		invalid,
		invalid,
	),
	0x04: newMandatoryPrefix2(
		invalid,
		newVectorLengthEVEX(
			newEVEXVkHW(
				XMM0,
				XMM0,
				XMM0,
				EVEX_Vpmaddubsw_VX_k1z_HX_WX,
				TupleFullMem128,
				false,
			),
			newEVEXVkHW(
				YMM0,
				YMM0,
				YMM0,
				EVEX_Vpmaddubsw_VY_k1z_HY_WY,
				TupleFullMem256,
				false,
			),
			newEVEXVkHW(
				ZMM0,
				ZMM0,
				ZMM0,
				EVEX_Vpmaddubsw_VZ_k1z_HZ_WZ,
				TupleFullMem512,
				false,
			),
		),
		invalid,
		invalid,
	),
	0x0b: newMandatoryPrefix2(
		invalid,
		newVectorLengthEVEX(
			newEVEXVkHW(
				XMM0,
				XMM0,
				XMM0,
				EVEX_Vpmulhrsw_VX_k1z_HX_WX,
				TupleFullMem128,
				false,
			),
			newEVEXVkHW(
				YMM0,
				YMM0,
				YMM0,
				EVEX_Vpmulhrsw_VY_k1z_HY_WY,
				TupleFullMem256,
				false,
			),
			newEVEXVkHW(
				ZMM0,
				ZMM0,
				ZMM0,
				EVEX_Vpmulhrsw_VZ_k1z_HZ_WZ,
				TupleFullMem512,
				false,
			),
		),
		invalid,
		invalid,
	),
	0x0c: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				newEVEXVkHW(
					XMM0,
					XMM0,
					XMM0,
					EVEX_Vpermilps_VX_k1z_HX_WX_b,
					TupleFull128,
					true,
				),
				newEVEXVkHW(
					YMM0,
					YMM0,
					YMM0,
					EVEX_Vpermilps_VY_k1z_HY_WY_b,
					TupleFull256,
					true,
				),
				newEVEXVkHW(
					ZMM0,
					ZMM0,
					ZMM0,
					EVEX_Vpermilps_VZ_k1z_HZ_WZ_b,
					TupleFull512,
					true,
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
			invalid,
			newVectorLengthEVEX(
				newEVEXVkHW(
					XMM0,
					XMM0,
					XMM0,
					EVEX_Vpermilpd_VX_k1z_HX_WX_b,
					TupleFull128,
					true,
				),
				newEVEXVkHW(
					YMM0,
					YMM0,
					YMM0,
					EVEX_Vpermilpd_VY_k1z_HY_WY_b,
					TupleFull256,
					true,
				),
				newEVEXVkHW(
					ZMM0,
					ZMM0,
					ZMM0,
					EVEX_Vpermilpd_VZ_k1z_HZ_WZ_b,
					TupleFull512,
					true,
				),
			),
		),
		invalid,
		invalid,
	),
	0x10: newMandatoryPrefix2(
		invalid,
		newW(
			invalid,
			newVectorLengthEVEX(
				newEVEXVkHW(
					XMM0,
					XMM0,
					XMM0,
					EVEX_Vpsrlvw_VX_k1z_HX_WX,
					TupleFullMem128,
					false,
				),
				newEVEXVkHW(
					YMM0,
					YMM0,
					YMM0,
					EVEX_Vpsrlvw_VY_k1z_HY_WY,
					TupleFullMem256,
					false,
				),
				newEVEXVkHW(
					ZMM0,
					ZMM0,
					ZMM0,
					EVEX_Vpsrlvw_VZ_k1z_HZ_WZ,
					TupleFullMem512,
					false,
				),
			),
		),
		newW(
			newVectorLengthEVEX(
				newEVEXWkV(XMM0, XMM0, EVEX_Vpmovuswb_WX_k1z_VX, TupleHalfMem128),
				newEVEXWkV(XMM0, YMM0, EVEX_Vpmovuswb_WX_k1z_VY, TupleHalfMem256),
				newEVEXWkV(YMM0, ZMM0, EVEX_Vpmovuswb_WY_k1z_VZ, TupleHalfMem512),
			),
			invalid,
		),
		invalid,
	),
	0x11: newMandatoryPrefix2(
		invalid,
		newW(
			invalid,
			newVectorLengthEVEX(
				newEVEXVkHW(
					XMM0,
					XMM0,
					XMM0,
					EVEX_Vpsravw_VX_k1z_HX_WX,
					TupleFullMem128,
					false,
				),
				newEVEXVkHW(
					YMM0,
					YMM0,
					YMM0,
					EVEX_Vpsravw_VY_k1z_HY_WY,
					TupleFullMem256,
					false,
				),
				newEVEXVkHW(
					ZMM0,
					ZMM0,
					ZMM0,
					EVEX_Vpsravw_VZ_k1z_HZ_WZ,
					TupleFullMem512,
					false,
				),
			),
		),
		newW(
			newVectorLengthEVEX(
				newEVEXWkV(XMM0, XMM0, EVEX_Vpmovusdb_WX_k1z_VX, TupleQuarterMem128),
				newEVEXWkV(XMM0, YMM0, EVEX_Vpmovusdb_WX_k1z_VY, TupleQuarterMem256),
				newEVEXWkV(XMM0, ZMM0, EVEX_Vpmovusdb_WX_k1z_VZ, TupleQuarterMem512),
			),
			invalid,
		),
		invalid,
	),
	0x12: newMandatoryPrefix2(
		invalid,
		newW(
			invalid,
			newVectorLengthEVEX(
				newEVEXVkHW(
					XMM0,
					XMM0,
					XMM0,
					EVEX_Vpsllvw_VX_k1z_HX_WX,
					TupleFullMem128,
					false,
				),
				newEVEXVkHW(
					YMM0,
					YMM0,
					YMM0,
					EVEX_Vpsllvw_VY_k1z_HY_WY,
					TupleFullMem256,
					false,
				),
				newEVEXVkHW(
					ZMM0,
					ZMM0,
					ZMM0,
					EVEX_Vpsllvw_VZ_k1z_HZ_WZ,
					TupleFullMem512,
					false,
				),
			),
		),
		newW(
			newVectorLengthEVEX(
				newEVEXWkV(XMM0, XMM0, EVEX_Vpmovusqb_WX_k1z_VX, TupleEighthMem128),
				newEVEXWkV(XMM0, YMM0, EVEX_Vpmovusqb_WX_k1z_VY, TupleEighthMem256),
				newEVEXWkV(XMM0, ZMM0, EVEX_Vpmovusqb_WX_k1z_VZ, TupleEighthMem512),
			),
			invalid,
		),
		invalid,
	),
	0x13: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEXer(
				newEVEXVkWer(
					XMM0,
					XMM0,
					EVEX_Vcvtph2ps_VX_k1z_WX,
					TupleHalfMem128,
					true,
					false,
				),
				newEVEXVkWer(
					YMM0,
					XMM0,
					EVEX_Vcvtph2ps_VY_k1z_WX,
					TupleHalfMem256,
					true,
					false,
				),
				newEVEXVkWer(
					ZMM0,
					YMM0,
					EVEX_Vcvtph2ps_VZ_k1z_WY_sae,
					TupleHalfMem512,
					true,
					false,
				),
			),
			invalid,
		),
		newW(
			newVectorLengthEVEX(
				newEVEXWkV(XMM0, XMM0, EVEX_Vpmovusdw_WX_k1z_VX, TupleHalfMem128),
				newEVEXWkV(XMM0, YMM0, EVEX_Vpmovusdw_WX_k1z_VY, TupleHalfMem256),
				newEVEXWkV(YMM0, ZMM0, EVEX_Vpmovusdw_WY_k1z_VZ, TupleHalfMem512),
			),
			invalid,
		),
		invalid,
	),
	0x14: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				newEVEXVkHW(
					XMM0,
					XMM0,
					XMM0,
					EVEX_Vprorvd_VX_k1z_HX_WX_b,
					TupleFull128,
					true,
				),
				newEVEXVkHW(
					YMM0,
					YMM0,
					YMM0,
					EVEX_Vprorvd_VY_k1z_HY_WY_b,
					TupleFull256,
					true,
				),
				newEVEXVkHW(
					ZMM0,
					ZMM0,
					ZMM0,
					EVEX_Vprorvd_VZ_k1z_HZ_WZ_b,
					TupleFull512,
					true,
				),
			),
			newVectorLengthEVEX(
				newEVEXVkHW(
					XMM0,
					XMM0,
					XMM0,
					EVEX_Vprorvq_VX_k1z_HX_WX_b,
					TupleFull128,
					true,
				),
				newEVEXVkHW(
					YMM0,
					YMM0,
					YMM0,
					EVEX_Vprorvq_VY_k1z_HY_WY_b,
					TupleFull256,
					true,
				),
				newEVEXVkHW(
					ZMM0,
					ZMM0,
					ZMM0,
					EVEX_Vprorvq_VZ_k1z_HZ_WZ_b,
					TupleFull512,
					true,
				),
			),
		),
		newW(
			newVectorLengthEVEX(
				newEVEXWkV(XMM0, XMM0, EVEX_Vpmovusqw_WX_k1z_VX, TupleQuarterMem128),
				newEVEXWkV(XMM0, YMM0, EVEX_Vpmovusqw_WX_k1z_VY, TupleQuarterMem256),
				newEVEXWkV(XMM0, ZMM0, EVEX_Vpmovusqw_WX_k1z_VZ, TupleQuarterMem512),
			),
			invalid,
		),
		invalid,
	),
	0x15: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				newEVEXVkHW(
					XMM0,
					XMM0,
					XMM0,
					EVEX_Vprolvd_VX_k1z_HX_WX_b,
					TupleFull128,
					true,
				),
				newEVEXVkHW(
					YMM0,
					YMM0,
					YMM0,
					EVEX_Vprolvd_VY_k1z_HY_WY_b,
					TupleFull256,
					true,
				),
				newEVEXVkHW(
					ZMM0,
					ZMM0,
					ZMM0,
					EVEX_Vprolvd_VZ_k1z_HZ_WZ_b,
					TupleFull512,
					true,
				),
			),
			newVectorLengthEVEX(
				newEVEXVkHW(
					XMM0,
					XMM0,
					XMM0,
					EVEX_Vprolvq_VX_k1z_HX_WX_b,
					TupleFull128,
					true,
				),
				newEVEXVkHW(
					YMM0,
					YMM0,
					YMM0,
					EVEX_Vprolvq_VY_k1z_HY_WY_b,
					TupleFull256,
					true,
				),
				newEVEXVkHW(
					ZMM0,
					ZMM0,
					ZMM0,
					EVEX_Vprolvq_VZ_k1z_HZ_WZ_b,
					TupleFull512,
					true,
				),
			),
		),
		newW(
			newVectorLengthEVEX(
				newEVEXWkV(XMM0, XMM0, EVEX_Vpmovusqd_WX_k1z_VX, TupleHalfMem128),
				newEVEXWkV(XMM0, YMM0, EVEX_Vpmovusqd_WX_k1z_VY, TupleHalfMem256),
				newEVEXWkV(YMM0, ZMM0, EVEX_Vpmovusqd_WY_k1z_VZ, TupleHalfMem512),
			),
			invalid,
		),
		invalid,
	),
	0x16: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				invalid,
				newEVEXVkHW(
					YMM0,
					YMM0,
					YMM0,
					EVEX_Vpermps_VY_k1z_HY_WY_b,
					TupleFull256,
					true,
				),
				newEVEXVkHW(
					ZMM0,
					ZMM0,
					ZMM0,
					EVEX_Vpermps_VZ_k1z_HZ_WZ_b,
					TupleFull512,
					true,
				),
			),
			newVectorLengthEVEX(
				invalid,
				newEVEXVkHW(
					YMM0,
					YMM0,
					YMM0,
					EVEX_Vpermpd_VY_k1z_HY_WY_b,
					TupleFull256,
					true,
				),
				newEVEXVkHW(
					ZMM0,
					ZMM0,
					ZMM0,
					EVEX_Vpermpd_VZ_k1z_HZ_WZ_b,
					TupleFull512,
					true,
				),
			),
		),
		invalid,
		invalid,
	),
	0x18: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				newEVEXVkW(
					XMM0,
					XMM0,
					EVEX_Vbroadcastss_VX_k1z_WX,
					Tuple1Scalar,
					false,
				),
				newEVEXVkW(
					YMM0,
					XMM0,
					EVEX_Vbroadcastss_VY_k1z_WX,
					Tuple1Scalar,
					false,
				),
				newEVEXVkW(
					ZMM0,
					XMM0,
					EVEX_Vbroadcastss_VZ_k1z_WX,
					Tuple1Scalar,
					false,
				),
			),
			invalid,
		),
		invalid,
		invalid,
	),
	0x19: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				invalid,
				newEVEXVkW(
					YMM0,
					XMM0,
					EVEX_Vbroadcastf32x2_VY_k1z_WX,
					Tuple2,
					false,
				),
				newEVEXVkW(
					ZMM0,
					XMM0,
					EVEX_Vbroadcastf32x2_VZ_k1z_WX,
					Tuple2,
					false,
				),
			),
			newVectorLengthEVEX(
				invalid,
				newEVEXVkW(
					YMM0,
					XMM0,
					EVEX_Vbroadcastsd_VY_k1z_WX,
					Tuple1Scalar,
					false,
				),
				newEVEXVkW(
					ZMM0,
					XMM0,
					EVEX_Vbroadcastsd_VZ_k1z_WX,
					Tuple1Scalar,
					false,
				),
			),
		),
		invalid,
		invalid,
	),
	0x1a: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				invalid,
				newEVEXVkM(YMM0, EVEX_Vbroadcastf32x4_VY_k1z_M, Tuple4),
				newEVEXVkM(ZMM0, EVEX_Vbroadcastf32x4_VZ_k1z_M, Tuple4),
			),
			newVectorLengthEVEX(
				invalid,
				newEVEXVkM(YMM0, EVEX_Vbroadcastf64x2_VY_k1z_M, Tuple2),
				newEVEXVkM(ZMM0, EVEX_Vbroadcastf64x2_VZ_k1z_M, Tuple2),
			),
		),
		invalid,
		invalid,
	),
	0x1b: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				invalid,
				invalid,
				newEVEXVkM(ZMM0, EVEX_Vbroadcastf32x8_VZ_k1z_M, Tuple8),
			),
			newVectorLengthEVEX(
				invalid,
				invalid,
				newEVEXVkM(ZMM0, EVEX_Vbroadcastf64x4_VZ_k1z_M, Tuple4),
			),
		),
		invalid,
		invalid,
	),
	0x1c: newMandatoryPrefix2(
		invalid,
		newVectorLengthEVEX(
			newEVEXVkW(XMM0, XMM0, EVEX_Vpabsb_VX_k1z_WX, TupleFullMem128, false),
			newEVEXVkW(YMM0, YMM0, EVEX_Vpabsb_VY_k1z_WY, TupleFullMem256, false),
			newEVEXVkW(ZMM0, ZMM0, EVEX_Vpabsb_VZ_k1z_WZ, TupleFullMem512, false),
		),
		invalid,
		invalid,
	),
	0x1d: newMandatoryPrefix2(
		invalid,
		newVectorLengthEVEX(
			newEVEXVkW(XMM0, XMM0, EVEX_Vpabsw_VX_k1z_WX, TupleFullMem128, false),
			newEVEXVkW(YMM0, YMM0, EVEX_Vpabsw_VY_k1z_WY, TupleFullMem256, false),
			newEVEXVkW(ZMM0, ZMM0, EVEX_Vpabsw_VZ_k1z_WZ, TupleFullMem512, false),
		),
		invalid,
		invalid,
	),
	0x1e: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				newEVEXVkW(XMM0, XMM0, EVEX_Vpabsd_VX_k1z_WX_b, TupleFull128, true),
				newEVEXVkW(YMM0, YMM0, EVEX_Vpabsd_VY_k1z_WY_b, TupleFull256, true),
				newEVEXVkW(ZMM0, ZMM0, EVEX_Vpabsd_VZ_k1z_WZ_b, TupleFull512, true),
			),
			invalid,
		),
		invalid,
		invalid,
	),
	0x1f: newMandatoryPrefix2(
		invalid,
		newW(
			invalid,
			newVectorLengthEVEX(
				newEVEXVkW(XMM0, XMM0, EVEX_Vpabsq_VX_k1z_WX_b, TupleFull128, true),
				newEVEXVkW(YMM0, YMM0, EVEX_Vpabsq_VY_k1z_WY_b, TupleFull256, true),
				newEVEXVkW(ZMM0, ZMM0, EVEX_Vpabsq_VZ_k1z_WZ_b, TupleFull512, true),
			),
		),
		invalid,
		invalid,
	),
	0x20: newMandatoryPrefix2(
		invalid,
		newVectorLengthEVEX(
			newEVEXVkW(XMM0, XMM0, EVEX_Vpmovsxbw_VX_k1z_WX, TupleHalfMem128, false),
			newEVEXVkW(YMM0, XMM0, EVEX_Vpmovsxbw_VY_k1z_WX, TupleHalfMem256, false),
			newEVEXVkW(ZMM0, YMM0, EVEX_Vpmovsxbw_VZ_k1z_WY, TupleHalfMem512, false),
		),
		newW(
			newVectorLengthEVEX(
				newEVEXWkV(XMM0, XMM0, EVEX_Vpmovswb_WX_k1z_VX, TupleHalfMem128),
				newEVEXWkV(XMM0, YMM0, EVEX_Vpmovswb_WX_k1z_VY, TupleHalfMem256),
				newEVEXWkV(YMM0, ZMM0, EVEX_Vpmovswb_WY_k1z_VZ, TupleHalfMem512),
			),
			invalid,
		),
		invalid,
	),
	0x21: newMandatoryPrefix2(
		invalid,
		newVectorLengthEVEX(
			newEVEXVkW(XMM0, XMM0, EVEX_Vpmovsxbd_VX_k1z_WX, TupleQuarterMem128, false),
			newEVEXVkW(YMM0, XMM0, EVEX_Vpmovsxbd_VY_k1z_WX, TupleQuarterMem256, false),
			newEVEXVkW(ZMM0, XMM0, EVEX_Vpmovsxbd_VZ_k1z_WX, TupleQuarterMem512, false),
		),
		newW(
			newVectorLengthEVEX(
				newEVEXWkV(XMM0, XMM0, EVEX_Vpmovsdb_WX_k1z_VX, TupleQuarterMem128),
				newEVEXWkV(XMM0, YMM0, EVEX_Vpmovsdb_WX_k1z_VY, TupleQuarterMem256),
				newEVEXWkV(XMM0, ZMM0, EVEX_Vpmovsdb_WX_k1z_VZ, TupleQuarterMem512),
			),
			invalid,
		),
		invalid,
	),
	0x22: newMandatoryPrefix2(
		invalid,
		newVectorLengthEVEX(
			newEVEXVkW(XMM0, XMM0, EVEX_Vpmovsxbq_VX_k1z_WX, TupleEighthMem128, false),
			newEVEXVkW(YMM0, XMM0, EVEX_Vpmovsxbq_VY_k1z_WX, TupleEighthMem256, false),
			newEVEXVkW(ZMM0, XMM0, EVEX_Vpmovsxbq_VZ_k1z_WX, TupleEighthMem512, false),
		),
		newW(
			newVectorLengthEVEX(
				newEVEXWkV(XMM0, XMM0, EVEX_Vpmovsqb_WX_k1z_VX, TupleEighthMem128),
				newEVEXWkV(XMM0, YMM0, EVEX_Vpmovsqb_WX_k1z_VY, TupleEighthMem256),
				newEVEXWkV(XMM0, ZMM0, EVEX_Vpmovsqb_WX_k1z_VZ, TupleEighthMem512),
			),
			invalid,
		),
		invalid,
	),
	0x23: newMandatoryPrefix2(
		invalid,
		newVectorLengthEVEX(
			newEVEXVkW(XMM0, XMM0, EVEX_Vpmovsxwd_VX_k1z_WX, TupleHalfMem128, false),
			newEVEXVkW(YMM0, XMM0, EVEX_Vpmovsxwd_VY_k1z_WX, TupleHalfMem256, false),
			newEVEXVkW(ZMM0, YMM0, EVEX_Vpmovsxwd_VZ_k1z_WY, TupleHalfMem512, false),
		),
		newW(
			newVectorLengthEVEX(
				newEVEXWkV(XMM0, XMM0, EVEX_Vpmovsdw_WX_k1z_VX, TupleHalfMem128),
				newEVEXWkV(XMM0, YMM0, EVEX_Vpmovsdw_WX_k1z_VY, TupleHalfMem256),
				newEVEXWkV(YMM0, ZMM0, EVEX_Vpmovsdw_WY_k1z_VZ, TupleHalfMem512),
			),
			invalid,
		),
		invalid,
	),
	0x24: newMandatoryPrefix2(
		invalid,
		newVectorLengthEVEX(
			newEVEXVkW(XMM0, XMM0, EVEX_Vpmovsxwq_VX_k1z_WX, TupleQuarterMem128, false),
			newEVEXVkW(YMM0, XMM0, EVEX_Vpmovsxwq_VY_k1z_WX, TupleQuarterMem256, false),
			newEVEXVkW(ZMM0, XMM0, EVEX_Vpmovsxwq_VZ_k1z_WX, TupleQuarterMem512, false),
		),
		newW(
			newVectorLengthEVEX(
				newEVEXWkV(XMM0, XMM0, EVEX_Vpmovsqw_WX_k1z_VX, TupleQuarterMem128),
				newEVEXWkV(XMM0, YMM0, EVEX_Vpmovsqw_WX_k1z_VY, TupleQuarterMem256),
				newEVEXWkV(XMM0, ZMM0, EVEX_Vpmovsqw_WX_k1z_VZ, TupleQuarterMem512),
			),
			invalid,
		),
		invalid,
	),
	0x25: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				newEVEXVkW(
					XMM0,
					XMM0,
					EVEX_Vpmovsxdq_VX_k1z_WX,
					TupleHalfMem128,
					false,
				),
				newEVEXVkW(
					YMM0,
					XMM0,
					EVEX_Vpmovsxdq_VY_k1z_WX,
					TupleHalfMem256,
					false,
				),
				newEVEXVkW(
					ZMM0,
					YMM0,
					EVEX_Vpmovsxdq_VZ_k1z_WY,
					TupleHalfMem512,
					false,
				),
			),
			invalid,
		),
		newW(
			newVectorLengthEVEX(
				newEVEXWkV(XMM0, XMM0, EVEX_Vpmovsqd_WX_k1z_VX, TupleHalfMem128),
				newEVEXWkV(XMM0, YMM0, EVEX_Vpmovsqd_WX_k1z_VY, TupleHalfMem256),
				newEVEXWkV(YMM0, ZMM0, EVEX_Vpmovsqd_WY_k1z_VZ, TupleHalfMem512),
			),
			invalid,
		),
		invalid,
	),
	0x26: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				newEVEXKkHW(XMM0, EVEX_Vptestmb_VK_k1_HX_WX, TupleFullMem128, false),
				newEVEXKkHW(YMM0, EVEX_Vptestmb_VK_k1_HY_WY, TupleFullMem256, false),
				newEVEXKkHW(ZMM0, EVEX_Vptestmb_VK_k1_HZ_WZ, TupleFullMem512, false),
			),
			newVectorLengthEVEX(
				newEVEXKkHW(XMM0, EVEX_Vptestmw_VK_k1_HX_WX, TupleFullMem128, false),
				newEVEXKkHW(YMM0, EVEX_Vptestmw_VK_k1_HY_WY, TupleFullMem256, false),
				newEVEXKkHW(ZMM0, EVEX_Vptestmw_VK_k1_HZ_WZ, TupleFullMem512, false),
			),
		),
		newW(
			newVectorLengthEVEX(
				newEVEXKkHW(
					XMM0,
					EVEX_Vptestnmb_VK_k1_HX_WX,
					TupleFullMem128,
					false,
				),
				newEVEXKkHW(
					YMM0,
					EVEX_Vptestnmb_VK_k1_HY_WY,
					TupleFullMem256,
					false,
				),
				newEVEXKkHW(
					ZMM0,
					EVEX_Vptestnmb_VK_k1_HZ_WZ,
					TupleFullMem512,
					false,
				),
			),
			newVectorLengthEVEX(
				newEVEXKkHW(
					XMM0,
					EVEX_Vptestnmw_VK_k1_HX_WX,
					TupleFullMem128,
					false,
				),
				newEVEXKkHW(
					YMM0,
					EVEX_Vptestnmw_VK_k1_HY_WY,
					TupleFullMem256,
					false,
				),
				newEVEXKkHW(
					ZMM0,
					EVEX_Vptestnmw_VK_k1_HZ_WZ,
					TupleFullMem512,
					false,
				),
			),
		),
		invalid,
	),
	0x27: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				newEVEXKkHW(XMM0, EVEX_Vptestmd_VK_k1_HX_WX_b, TupleFull128, true),
				newEVEXKkHW(YMM0, EVEX_Vptestmd_VK_k1_HY_WY_b, TupleFull256, true),
				newEVEXKkHW(ZMM0, EVEX_Vptestmd_VK_k1_HZ_WZ_b, TupleFull512, true),
			),
			newVectorLengthEVEX(
				newEVEXKkHW(XMM0, EVEX_Vptestmq_VK_k1_HX_WX_b, TupleFull128, true),
				newEVEXKkHW(YMM0, EVEX_Vptestmq_VK_k1_HY_WY_b, TupleFull256, true),
				newEVEXKkHW(ZMM0, EVEX_Vptestmq_VK_k1_HZ_WZ_b, TupleFull512, true),
			),
		),
		newW(
			newVectorLengthEVEX(
				newEVEXKkHW(XMM0, EVEX_Vptestnmd_VK_k1_HX_WX_b, TupleFull128, true),
				newEVEXKkHW(YMM0, EVEX_Vptestnmd_VK_k1_HY_WY_b, TupleFull256, true),
				newEVEXKkHW(ZMM0, EVEX_Vptestnmd_VK_k1_HZ_WZ_b, TupleFull512, true),
			),
			newVectorLengthEVEX(
				newEVEXKkHW(XMM0, EVEX_Vptestnmq_VK_k1_HX_WX_b, TupleFull128, true),
				newEVEXKkHW(YMM0, EVEX_Vptestnmq_VK_k1_HY_WY_b, TupleFull256, true),
				newEVEXKkHW(ZMM0, EVEX_Vptestnmq_VK_k1_HZ_WZ_b, TupleFull512, true),
			),
		),
		invalid,
	),
	0x28: newMandatoryPrefix2(
		invalid,
		newW(
			invalid,
			newVectorLengthEVEX(
				newEVEXVkHW(
					XMM0,
					XMM0,
					XMM0,
					EVEX_Vpmuldq_VX_k1z_HX_WX_b,
					TupleFull128,
					true,
				),
				newEVEXVkHW(
					YMM0,
					YMM0,
					YMM0,
					EVEX_Vpmuldq_VY_k1z_HY_WY_b,
					TupleFull256,
					true,
				),
				newEVEXVkHW(
					ZMM0,
					ZMM0,
					ZMM0,
					EVEX_Vpmuldq_VZ_k1z_HZ_WZ_b,
					TupleFull512,
					true,
				),
			),
		),
		newW(
			newVectorLengthEVEX(
				newEVEXVK(XMM0, EVEX_Vpmovm2b_VX_RK),
				newEVEXVK(YMM0, EVEX_Vpmovm2b_VY_RK),
				newEVEXVK(ZMM0, EVEX_Vpmovm2b_VZ_RK),
			),
			newVectorLengthEVEX(
				newEVEXVK(XMM0, EVEX_Vpmovm2w_VX_RK),
				newEVEXVK(YMM0, EVEX_Vpmovm2w_VY_RK),
				newEVEXVK(ZMM0, EVEX_Vpmovm2w_VZ_RK),
			),
		),
		invalid,
	),
	0x29: newMandatoryPrefix2(
		invalid,
		newW(
			invalid,
			newVectorLengthEVEX(
				newEVEXKkHW(XMM0, EVEX_Vpcmpeqq_VK_k1_HX_WX_b, TupleFull128, true),
				newEVEXKkHW(YMM0, EVEX_Vpcmpeqq_VK_k1_HY_WY_b, TupleFull256, true),
				newEVEXKkHW(ZMM0, EVEX_Vpcmpeqq_VK_k1_HZ_WZ_b, TupleFull512, true),
			),
		),
		newW(
			newVectorLengthEVEX(
				newEVEXKR(XMM0, EVEX_Vpmovb2m_VK_RX),
				newEVEXKR(YMM0, EVEX_Vpmovb2m_VK_RY),
				newEVEXKR(ZMM0, EVEX_Vpmovb2m_VK_RZ),
			),
			newVectorLengthEVEX(
				newEVEXKR(XMM0, EVEX_Vpmovw2m_VK_RX),
				newEVEXKR(YMM0, EVEX_Vpmovw2m_VK_RY),
				newEVEXKR(ZMM0, EVEX_Vpmovw2m_VK_RZ),
			),
		),
		invalid,
	),
	0x2a: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				newEVEXVM(XMM0, EVEX_Vmovntdqa_VX_M, TupleFullMem128),
				newEVEXVM(YMM0, EVEX_Vmovntdqa_VY_M, TupleFullMem256),
				newEVEXVM(ZMM0, EVEX_Vmovntdqa_VZ_M, TupleFullMem512),
			),
			invalid,
		),
		newW(
			invalid,
			newVectorLengthEVEX(
				newEVEXVK(XMM0, EVEX_Vpbroadcastmb2q_VX_RK),
				newEVEXVK(YMM0, EVEX_Vpbroadcastmb2q_VY_RK),
				newEVEXVK(ZMM0, EVEX_Vpbroadcastmb2q_VZ_RK),
			),
		),
		invalid,
	),
	0x2b: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				newEVEXVkHW(
					XMM0,
					XMM0,
					XMM0,
					EVEX_Vpackusdw_VX_k1z_HX_WX_b,
					TupleFull128,
					true,
				),
				newEVEXVkHW(
					YMM0,
					YMM0,
					YMM0,
					EVEX_Vpackusdw_VY_k1z_HY_WY_b,
					TupleFull256,
					true,
				),
				newEVEXVkHW(
					ZMM0,
					ZMM0,
					ZMM0,
					EVEX_Vpackusdw_VZ_k1z_HZ_WZ_b,
					TupleFull512,
					true,
				),
			),
			invalid,
		),
		invalid,
		invalid,
	),
	0x2c: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEXer(
				newEVEXVkHWer(
					XMM0,
					EVEX_Vscalefps_VX_k1z_HX_WX_b,
					TupleFull128,
					false,
					true,
				),
				newEVEXVkHWer(
					YMM0,
					EVEX_Vscalefps_VY_k1z_HY_WY_b,
					TupleFull256,
					false,
					true,
				),
				newEVEXVkHWer(
					ZMM0,
					EVEX_Vscalefps_VZ_k1z_HZ_WZ_er_b,
					TupleFull512,
					false,
					true,
				),
			),
			newVectorLengthEVEXer(
				newEVEXVkHWer(
					XMM0,
					EVEX_Vscalefpd_VX_k1z_HX_WX_b,
					TupleFull128,
					false,
					true,
				),
				newEVEXVkHWer(
					YMM0,
					EVEX_Vscalefpd_VY_k1z_HY_WY_b,
					TupleFull256,
					false,
					true,
				),
				newEVEXVkHWer(
					ZMM0,
					EVEX_Vscalefpd_VZ_k1z_HZ_WZ_er_b,
					TupleFull512,
					false,
					true,
				),
			),
		),
		invalid,
		invalid,
	),
	0x2d: newMandatoryPrefix2(
		invalid,
		newW(
			newEVEXVkHWer(
				XMM0,
				EVEX_Vscalefss_VX_k1z_HX_WX_er,
				Tuple1Scalar,
				false,
				false,
			),
			newEVEXVkHWer(
				XMM0,
				EVEX_Vscalefsd_VX_k1z_HX_WX_er,
				Tuple1Scalar,
				false,
				false,
			),
		),
		invalid,
		invalid,
	),
	0x30: newMandatoryPrefix2(
		invalid,
		newVectorLengthEVEX(
			newEVEXVkW(XMM0, XMM0, EVEX_Vpmovzxbw_VX_k1z_WX, TupleHalfMem128, false),
			newEVEXVkW(YMM0, XMM0, EVEX_Vpmovzxbw_VY_k1z_WX, TupleHalfMem256, false),
			newEVEXVkW(ZMM0, YMM0, EVEX_Vpmovzxbw_VZ_k1z_WY, TupleHalfMem512, false),
		),
		newW(
			newVectorLengthEVEX(
				newEVEXWkV(XMM0, XMM0, EVEX_Vpmovwb_WX_k1z_VX, TupleHalfMem128),
				newEVEXWkV(XMM0, YMM0, EVEX_Vpmovwb_WX_k1z_VY, TupleHalfMem256),
				newEVEXWkV(YMM0, ZMM0, EVEX_Vpmovwb_WY_k1z_VZ, TupleHalfMem512),
			),
			invalid,
		),
		invalid,
	),
	0x31: newMandatoryPrefix2(
		invalid,
		newVectorLengthEVEX(
			newEVEXVkW(XMM0, XMM0, EVEX_Vpmovzxbd_VX_k1z_WX, TupleQuarterMem128, false),
			newEVEXVkW(YMM0, XMM0, EVEX_Vpmovzxbd_VY_k1z_WX, TupleQuarterMem256, false),
			newEVEXVkW(ZMM0, XMM0, EVEX_Vpmovzxbd_VZ_k1z_WX, TupleQuarterMem512, false),
		),
		newW(
			newVectorLengthEVEX(
				newEVEXWkV(XMM0, XMM0, EVEX_Vpmovdb_WX_k1z_VX, TupleQuarterMem128),
				newEVEXWkV(XMM0, YMM0, EVEX_Vpmovdb_WX_k1z_VY, TupleQuarterMem256),
				newEVEXWkV(XMM0, ZMM0, EVEX_Vpmovdb_WX_k1z_VZ, TupleQuarterMem512),
			),
			invalid,
		),
		invalid,
	),
	0x32: newMandatoryPrefix2(
		invalid,
		newVectorLengthEVEX(
			newEVEXVkW(XMM0, XMM0, EVEX_Vpmovzxbq_VX_k1z_WX, TupleEighthMem128, false),
			newEVEXVkW(YMM0, XMM0, EVEX_Vpmovzxbq_VY_k1z_WX, TupleEighthMem256, false),
			newEVEXVkW(ZMM0, XMM0, EVEX_Vpmovzxbq_VZ_k1z_WX, TupleEighthMem512, false),
		),
		newW(
			newVectorLengthEVEX(
				newEVEXWkV(XMM0, XMM0, EVEX_Vpmovqb_WX_k1z_VX, TupleEighthMem128),
				newEVEXWkV(XMM0, YMM0, EVEX_Vpmovqb_WX_k1z_VY, TupleEighthMem256),
				newEVEXWkV(XMM0, ZMM0, EVEX_Vpmovqb_WX_k1z_VZ, TupleEighthMem512),
			),
			invalid,
		),
		invalid,
	),
	0x33: newMandatoryPrefix2(
		invalid,
		newVectorLengthEVEX(
			newEVEXVkW(XMM0, XMM0, EVEX_Vpmovzxwd_VX_k1z_WX, TupleHalfMem128, false),
			newEVEXVkW(YMM0, XMM0, EVEX_Vpmovzxwd_VY_k1z_WX, TupleHalfMem256, false),
			newEVEXVkW(ZMM0, YMM0, EVEX_Vpmovzxwd_VZ_k1z_WY, TupleHalfMem512, false),
		),
		newW(
			newVectorLengthEVEX(
				newEVEXWkV(XMM0, XMM0, EVEX_Vpmovdw_WX_k1z_VX, TupleHalfMem128),
				newEVEXWkV(XMM0, YMM0, EVEX_Vpmovdw_WX_k1z_VY, TupleHalfMem256),
				newEVEXWkV(YMM0, ZMM0, EVEX_Vpmovdw_WY_k1z_VZ, TupleHalfMem512),
			),
			invalid,
		),
		invalid,
	),
	0x34: newMandatoryPrefix2(
		invalid,
		newVectorLengthEVEX(
			newEVEXVkW(XMM0, XMM0, EVEX_Vpmovzxwq_VX_k1z_WX, TupleQuarterMem128, false),
			newEVEXVkW(YMM0, XMM0, EVEX_Vpmovzxwq_VY_k1z_WX, TupleQuarterMem256, false),
			newEVEXVkW(ZMM0, XMM0, EVEX_Vpmovzxwq_VZ_k1z_WX, TupleQuarterMem512, false),
		),
		newW(
			newVectorLengthEVEX(
				newEVEXWkV(XMM0, XMM0, EVEX_Vpmovqw_WX_k1z_VX, TupleQuarterMem128),
				newEVEXWkV(XMM0, YMM0, EVEX_Vpmovqw_WX_k1z_VY, TupleQuarterMem256),
				newEVEXWkV(XMM0, ZMM0, EVEX_Vpmovqw_WX_k1z_VZ, TupleQuarterMem512),
			),
			invalid,
		),
		invalid,
	),
	0x35: newMandatoryPrefix2(
		invalid,
		newVectorLengthEVEX(
			newEVEXVkW(XMM0, XMM0, EVEX_Vpmovzxdq_VX_k1z_WX, TupleHalfMem128, false),
			newEVEXVkW(YMM0, XMM0, EVEX_Vpmovzxdq_VY_k1z_WX, TupleHalfMem256, false),
			newEVEXVkW(ZMM0, YMM0, EVEX_Vpmovzxdq_VZ_k1z_WY, TupleHalfMem512, false),
		),
		newW(
			newVectorLengthEVEX(
				newEVEXWkV(XMM0, XMM0, EVEX_Vpmovqd_WX_k1z_VX, TupleHalfMem128),
				newEVEXWkV(XMM0, YMM0, EVEX_Vpmovqd_WX_k1z_VY, TupleHalfMem256),
				newEVEXWkV(YMM0, ZMM0, EVEX_Vpmovqd_WY_k1z_VZ, TupleHalfMem512),
			),
			invalid,
		),
		invalid,
	),
	0x36: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				invalid,
				newEVEXVkHW(
					YMM0,
					YMM0,
					YMM0,
					EVEX_Vpermd_VY_k1z_HY_WY_b,
					TupleFull256,
					true,
				),
				newEVEXVkHW(
					ZMM0,
					ZMM0,
					ZMM0,
					EVEX_Vpermd_VZ_k1z_HZ_WZ_b,
					TupleFull512,
					true,
				),
			),
			newVectorLengthEVEX(
				invalid,
				newEVEXVkHW(
					YMM0,
					YMM0,
					YMM0,
					EVEX_Vpermq_VY_k1z_HY_WY_b,
					TupleFull256,
					true,
				),
				newEVEXVkHW(
					ZMM0,
					ZMM0,
					ZMM0,
					EVEX_Vpermq_VZ_k1z_HZ_WZ_b,
					TupleFull512,
					true,
				),
			),
		),
		invalid,
		invalid,
	),
	0x37: newMandatoryPrefix2(
		invalid,
		newW(
			invalid,
			newVectorLengthEVEX(
				newEVEXKkHW(XMM0, EVEX_Vpcmpgtq_VK_k1_HX_WX_b, TupleFull128, true),
				newEVEXKkHW(YMM0, EVEX_Vpcmpgtq_VK_k1_HY_WY_b, TupleFull256, true),
				newEVEXKkHW(ZMM0, EVEX_Vpcmpgtq_VK_k1_HZ_WZ_b, TupleFull512, true),
			),
		),
		invalid,
		invalid,
	),
	0x38: newMandatoryPrefix2(
		invalid,
		newVectorLengthEVEX(
			newEVEXVkHW(
				XMM0,
				XMM0,
				XMM0,
				EVEX_Vpminsb_VX_k1z_HX_WX,
				TupleFullMem128,
				false,
			),
			newEVEXVkHW(
				YMM0,
				YMM0,
				YMM0,
				EVEX_Vpminsb_VY_k1z_HY_WY,
				TupleFullMem256,
				false,
			),
			newEVEXVkHW(
				ZMM0,
				ZMM0,
				ZMM0,
				EVEX_Vpminsb_VZ_k1z_HZ_WZ,
				TupleFullMem512,
				false,
			),
		),
		newW(
			newVectorLengthEVEX(
				newEVEXVK(XMM0, EVEX_Vpmovm2d_VX_RK),
				newEVEXVK(YMM0, EVEX_Vpmovm2d_VY_RK),
				newEVEXVK(ZMM0, EVEX_Vpmovm2d_VZ_RK),
			),
			newVectorLengthEVEX(
				newEVEXVK(XMM0, EVEX_Vpmovm2q_VX_RK),
				newEVEXVK(YMM0, EVEX_Vpmovm2q_VY_RK),
				newEVEXVK(ZMM0, EVEX_Vpmovm2q_VZ_RK),
			),
		),
		invalid,
	),
	0x39: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				newEVEXVkHW(
					XMM0,
					XMM0,
					XMM0,
					EVEX_Vpminsd_VX_k1z_HX_WX_b,
					TupleFull128,
					true,
				),
				newEVEXVkHW(
					YMM0,
					YMM0,
					YMM0,
					EVEX_Vpminsd_VY_k1z_HY_WY_b,
					TupleFull256,
					true,
				),
				newEVEXVkHW(
					ZMM0,
					ZMM0,
					ZMM0,
					EVEX_Vpminsd_VZ_k1z_HZ_WZ_b,
					TupleFull512,
					true,
				),
			),
			newVectorLengthEVEX(
				newEVEXVkHW(
					XMM0,
					XMM0,
					XMM0,
					EVEX_Vpminsq_VX_k1z_HX_WX_b,
					TupleFull128,
					true,
				),
				newEVEXVkHW(
					YMM0,
					YMM0,
					YMM0,
					EVEX_Vpminsq_VY_k1z_HY_WY_b,
					TupleFull256,
					true,
				),
				newEVEXVkHW(
					ZMM0,
					ZMM0,
					ZMM0,
					EVEX_Vpminsq_VZ_k1z_HZ_WZ_b,
					TupleFull512,
					true,
				),
			),
		),
		newW(
			newVectorLengthEVEX(
				newEVEXKR(XMM0, EVEX_Vpmovd2m_VK_RX),
				newEVEXKR(YMM0, EVEX_Vpmovd2m_VK_RY),
				newEVEXKR(ZMM0, EVEX_Vpmovd2m_VK_RZ),
			),
			newVectorLengthEVEX(
				newEVEXKR(XMM0, EVEX_Vpmovq2m_VK_RX),
				newEVEXKR(YMM0, EVEX_Vpmovq2m_VK_RY),
				newEVEXKR(ZMM0, EVEX_Vpmovq2m_VK_RZ),
			),
		),
		invalid,
	),
	0x3a: newMandatoryPrefix2(
		invalid,
		newVectorLengthEVEX(
			newEVEXVkHW(
				XMM0,
				XMM0,
				XMM0,
				EVEX_Vpminuw_VX_k1z_HX_WX,
				TupleFullMem128,
				false,
			),
			newEVEXVkHW(
				YMM0,
				YMM0,
				YMM0,
				EVEX_Vpminuw_VY_k1z_HY_WY,
				TupleFullMem256,
				false,
			),
			newEVEXVkHW(
				ZMM0,
				ZMM0,
				ZMM0,
				EVEX_Vpminuw_VZ_k1z_HZ_WZ,
				TupleFullMem512,
				false,
			),
		),
		newW(
			newVectorLengthEVEX(
				newEVEXVK(XMM0, EVEX_Vpbroadcastmw2d_VX_RK),
				newEVEXVK(YMM0, EVEX_Vpbroadcastmw2d_VY_RK),
				newEVEXVK(ZMM0, EVEX_Vpbroadcastmw2d_VZ_RK),
			),
			invalid,
		),
		invalid,
	),
	0x3b: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				newEVEXVkHW(
					XMM0,
					XMM0,
					XMM0,
					EVEX_Vpminud_VX_k1z_HX_WX_b,
					TupleFull128,
					true,
				),
				newEVEXVkHW(
					YMM0,
					YMM0,
					YMM0,
					EVEX_Vpminud_VY_k1z_HY_WY_b,
					TupleFull256,
					true,
				),
				newEVEXVkHW(
					ZMM0,
					ZMM0,
					ZMM0,
					EVEX_Vpminud_VZ_k1z_HZ_WZ_b,
					TupleFull512,
					true,
				),
			),
			newVectorLengthEVEX(
				newEVEXVkHW(
					XMM0,
					XMM0,
					XMM0,
					EVEX_Vpminuq_VX_k1z_HX_WX_b,
					TupleFull128,
					true,
				),
				newEVEXVkHW(
					YMM0,
					YMM0,
					YMM0,
					EVEX_Vpminuq_VY_k1z_HY_WY_b,
					TupleFull256,
					true,
				),
				newEVEXVkHW(
					ZMM0,
					ZMM0,
					ZMM0,
					EVEX_Vpminuq_VZ_k1z_HZ_WZ_b,
					TupleFull512,
					true,
				),
			),
		),
		invalid,
		invalid,
	),
	0x3c: newMandatoryPrefix2(
		invalid,
		newVectorLengthEVEX(
			newEVEXVkHW(
				XMM0,
				XMM0,
				XMM0,
				EVEX_Vpmaxsb_VX_k1z_HX_WX,
				TupleFullMem128,
				false,
			),
			newEVEXVkHW(
				YMM0,
				YMM0,
				YMM0,
				EVEX_Vpmaxsb_VY_k1z_HY_WY,
				TupleFullMem256,
				false,
			),
			newEVEXVkHW(
				ZMM0,
				ZMM0,
				ZMM0,
				EVEX_Vpmaxsb_VZ_k1z_HZ_WZ,
				TupleFullMem512,
				false,
			),
		),
		invalid,
		invalid,
	),
	0x3d: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				newEVEXVkHW(
					XMM0,
					XMM0,
					XMM0,
					EVEX_Vpmaxsd_VX_k1z_HX_WX_b,
					TupleFull128,
					true,
				),
				newEVEXVkHW(
					YMM0,
					YMM0,
					YMM0,
					EVEX_Vpmaxsd_VY_k1z_HY_WY_b,
					TupleFull256,
					true,
				),
				newEVEXVkHW(
					ZMM0,
					ZMM0,
					ZMM0,
					EVEX_Vpmaxsd_VZ_k1z_HZ_WZ_b,
					TupleFull512,
					true,
				),
			),
			newVectorLengthEVEX(
				newEVEXVkHW(
					XMM0,
					XMM0,
					XMM0,
					EVEX_Vpmaxsq_VX_k1z_HX_WX_b,
					TupleFull128,
					true,
				),
				newEVEXVkHW(
					YMM0,
					YMM0,
					YMM0,
					EVEX_Vpmaxsq_VY_k1z_HY_WY_b,
					TupleFull256,
					true,
				),
				newEVEXVkHW(
					ZMM0,
					ZMM0,
					ZMM0,
					EVEX_Vpmaxsq_VZ_k1z_HZ_WZ_b,
					TupleFull512,
					true,
				),
			),
		),
		invalid,
		invalid,
	),
	0x3e: newMandatoryPrefix2(
		invalid,
		newVectorLengthEVEX(
			newEVEXVkHW(
				XMM0,
				XMM0,
				XMM0,
				EVEX_Vpmaxuw_VX_k1z_HX_WX,
				TupleFullMem128,
				false,
			),
			newEVEXVkHW(
				YMM0,
				YMM0,
				YMM0,
				EVEX_Vpmaxuw_VY_k1z_HY_WY,
				TupleFullMem256,
				false,
			),
			newEVEXVkHW(
				ZMM0,
				ZMM0,
				ZMM0,
				EVEX_Vpmaxuw_VZ_k1z_HZ_WZ,
				TupleFullMem512,
				false,
			),
		),
		invalid,
		invalid,
	),
	0x3f: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				newEVEXVkHW(
					XMM0,
					XMM0,
					XMM0,
					EVEX_Vpmaxud_VX_k1z_HX_WX_b,
					TupleFull128,
					true,
				),
				newEVEXVkHW(
					YMM0,
					YMM0,
					YMM0,
					EVEX_Vpmaxud_VY_k1z_HY_WY_b,
					TupleFull256,
					true,
				),
				newEVEXVkHW(
					ZMM0,
					ZMM0,
					ZMM0,
					EVEX_Vpmaxud_VZ_k1z_HZ_WZ_b,
					TupleFull512,
					true,
				),
			),
			newVectorLengthEVEX(
				newEVEXVkHW(
					XMM0,
					XMM0,
					XMM0,
					EVEX_Vpmaxuq_VX_k1z_HX_WX_b,
					TupleFull128,
					true,
				),
				newEVEXVkHW(
					YMM0,
					YMM0,
					YMM0,
					EVEX_Vpmaxuq_VY_k1z_HY_WY_b,
					TupleFull256,
					true,
				),
				newEVEXVkHW(
					ZMM0,
					ZMM0,
					ZMM0,
					EVEX_Vpmaxuq_VZ_k1z_HZ_WZ_b,
					TupleFull512,
					true,
				),
			),
		),
		invalid,
		invalid,
	),
	0x40: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				newEVEXVkHW(
					XMM0,
					XMM0,
					XMM0,
					EVEX_Vpmulld_VX_k1z_HX_WX_b,
					TupleFull128,
					true,
				),
				newEVEXVkHW(
					YMM0,
					YMM0,
					YMM0,
					EVEX_Vpmulld_VY_k1z_HY_WY_b,
					TupleFull256,
					true,
				),
				newEVEXVkHW(
					ZMM0,
					ZMM0,
					ZMM0,
					EVEX_Vpmulld_VZ_k1z_HZ_WZ_b,
					TupleFull512,
					true,
				),
			),
			newVectorLengthEVEX(
				newEVEXVkHW(
					XMM0,
					XMM0,
					XMM0,
					EVEX_Vpmullq_VX_k1z_HX_WX_b,
					TupleFull128,
					true,
				),
				newEVEXVkHW(
					YMM0,
					YMM0,
					YMM0,
					EVEX_Vpmullq_VY_k1z_HY_WY_b,
					TupleFull256,
					true,
				),
				newEVEXVkHW(
					ZMM0,
					ZMM0,
					ZMM0,
					EVEX_Vpmullq_VZ_k1z_HZ_WZ_b,
					TupleFull512,
					true,
				),
			),
		),
		invalid,
		invalid,
	),
	0x42: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEXer(
				newEVEXVkWer(
					XMM0,
					XMM0,
					EVEX_Vgetexpps_VX_k1z_WX_b,
					TupleFull128,
					true,
					true,
				),
				newEVEXVkWer(
					YMM0,
					YMM0,
					EVEX_Vgetexpps_VY_k1z_WY_b,
					TupleFull256,
					true,
					true,
				),
				newEVEXVkWer(
					ZMM0,
					ZMM0,
					EVEX_Vgetexpps_VZ_k1z_WZ_sae_b,
					TupleFull512,
					true,
					true,
				),
			),
			newVectorLengthEVEXer(
				newEVEXVkWer(
					XMM0,
					XMM0,
					EVEX_Vgetexppd_VX_k1z_WX_b,
					TupleFull128,
					true,
					true,
				),
				newEVEXVkWer(
					YMM0,
					YMM0,
					EVEX_Vgetexppd_VY_k1z_WY_b,
					TupleFull256,
					true,
					true,
				),
				newEVEXVkWer(
					ZMM0,
					ZMM0,
					EVEX_Vgetexppd_VZ_k1z_WZ_sae_b,
					TupleFull512,
					true,
					true,
				),
			),
		),
		invalid,
		invalid,
	),
	0x43: newMandatoryPrefix2(
		invalid,
		newW(
			newEVEXVkHWer(
				XMM0,
				EVEX_Vgetexpss_VX_k1z_HX_WX_sae,
				Tuple1Scalar,
				true,
				false,
			),
			newEVEXVkHWer(
				XMM0,
				EVEX_Vgetexpsd_VX_k1z_HX_WX_sae,
				Tuple1Scalar,
				true,
				false,
			),
		),
		invalid,
		invalid,
	),
	0x44: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				newEVEXVkW(
					XMM0,
					XMM0,
					EVEX_Vplzcntd_VX_k1z_WX_b,
					TupleFull128,
					true,
				),
				newEVEXVkW(
					YMM0,
					YMM0,
					EVEX_Vplzcntd_VY_k1z_WY_b,
					TupleFull256,
					true,
				),
				newEVEXVkW(
					ZMM0,
					ZMM0,
					EVEX_Vplzcntd_VZ_k1z_WZ_b,
					TupleFull512,
					true,
				),
			),
			newVectorLengthEVEX(
				newEVEXVkW(
					XMM0,
					XMM0,
					EVEX_Vplzcntq_VX_k1z_WX_b,
					TupleFull128,
					true,
				),
				newEVEXVkW(
					YMM0,
					YMM0,
					EVEX_Vplzcntq_VY_k1z_WY_b,
					TupleFull256,
					true,
				),
				newEVEXVkW(
					ZMM0,
					ZMM0,
					EVEX_Vplzcntq_VZ_k1z_WZ_b,
					TupleFull512,
					true,
				),
			),
		),
		invalid,
		invalid,
	),
	0x45: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				newEVEXVkHW(
					XMM0,
					XMM0,
					XMM0,
					EVEX_Vpsrlvd_VX_k1z_HX_WX_b,
					TupleFull128,
					true,
				),
				newEVEXVkHW(
					YMM0,
					YMM0,
					YMM0,
					EVEX_Vpsrlvd_VY_k1z_HY_WY_b,
					TupleFull256,
					true,
				),
				newEVEXVkHW(
					ZMM0,
					ZMM0,
					ZMM0,
					EVEX_Vpsrlvd_VZ_k1z_HZ_WZ_b,
					TupleFull512,
					true,
				),
			),
			newVectorLengthEVEX(
				newEVEXVkHW(
					XMM0,
					XMM0,
					XMM0,
					EVEX_Vpsrlvq_VX_k1z_HX_WX_b,
					TupleFull128,
					true,
				),
				newEVEXVkHW(
					YMM0,
					YMM0,
					YMM0,
					EVEX_Vpsrlvq_VY_k1z_HY_WY_b,
					TupleFull256,
					true,
				),
				newEVEXVkHW(
					ZMM0,
					ZMM0,
					ZMM0,
					EVEX_Vpsrlvq_VZ_k1z_HZ_WZ_b,
					TupleFull512,
					true,
				),
			),
		),
		invalid,
		invalid,
	),
	0x46: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				newEVEXVkHW(
					XMM0,
					XMM0,
					XMM0,
					EVEX_Vpsravd_VX_k1z_HX_WX_b,
					TupleFull128,
					true,
				),
				newEVEXVkHW(
					YMM0,
					YMM0,
					YMM0,
					EVEX_Vpsravd_VY_k1z_HY_WY_b,
					TupleFull256,
					true,
				),
				newEVEXVkHW(
					ZMM0,
					ZMM0,
					ZMM0,
					EVEX_Vpsravd_VZ_k1z_HZ_WZ_b,
					TupleFull512,
					true,
				),
			),
			newVectorLengthEVEX(
				newEVEXVkHW(
					XMM0,
					XMM0,
					XMM0,
					EVEX_Vpsravq_VX_k1z_HX_WX_b,
					TupleFull128,
					true,
				),
				newEVEXVkHW(
					YMM0,
					YMM0,
					YMM0,
					EVEX_Vpsravq_VY_k1z_HY_WY_b,
					TupleFull256,
					true,
				),
				newEVEXVkHW(
					ZMM0,
					ZMM0,
					ZMM0,
					EVEX_Vpsravq_VZ_k1z_HZ_WZ_b,
					TupleFull512,
					true,
				),
			),
		),
		invalid,
		invalid,
	),
	0x47: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				newEVEXVkHW(
					XMM0,
					XMM0,
					XMM0,
					EVEX_Vpsllvd_VX_k1z_HX_WX_b,
					TupleFull128,
					true,
				),
				newEVEXVkHW(
					YMM0,
					YMM0,
					YMM0,
					EVEX_Vpsllvd_VY_k1z_HY_WY_b,
					TupleFull256,
					true,
				),
				newEVEXVkHW(
					ZMM0,
					ZMM0,
					ZMM0,
					EVEX_Vpsllvd_VZ_k1z_HZ_WZ_b,
					TupleFull512,
					true,
				),
			),
			newVectorLengthEVEX(
				newEVEXVkHW(
					XMM0,
					XMM0,
					XMM0,
					EVEX_Vpsllvq_VX_k1z_HX_WX_b,
					TupleFull128,
					true,
				),
				newEVEXVkHW(
					YMM0,
					YMM0,
					YMM0,
					EVEX_Vpsllvq_VY_k1z_HY_WY_b,
					TupleFull256,
					true,
				),
				newEVEXVkHW(
					ZMM0,
					ZMM0,
					ZMM0,
					EVEX_Vpsllvq_VZ_k1z_HZ_WZ_b,
					TupleFull512,
					true,
				),
			),
		),
		invalid,
		invalid,
	),
	0x4c: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				newEVEXVkW(
					XMM0,
					XMM0,
					EVEX_Vrcp14ps_VX_k1z_WX_b,
					TupleFull128,
					true,
				),
				newEVEXVkW(
					YMM0,
					YMM0,
					EVEX_Vrcp14ps_VY_k1z_WY_b,
					TupleFull256,
					true,
				),
				newEVEXVkW(
					ZMM0,
					ZMM0,
					EVEX_Vrcp14ps_VZ_k1z_WZ_b,
					TupleFull512,
					true,
				),
			),
			newVectorLengthEVEX(
				newEVEXVkW(
					XMM0,
					XMM0,
					EVEX_Vrcp14pd_VX_k1z_WX_b,
					TupleFull128,
					true,
				),
				newEVEXVkW(
					YMM0,
					YMM0,
					EVEX_Vrcp14pd_VY_k1z_WY_b,
					TupleFull256,
					true,
				),
				newEVEXVkW(
					ZMM0,
					ZMM0,
					EVEX_Vrcp14pd_VZ_k1z_WZ_b,
					TupleFull512,
					true,
				),
			),
		),
		invalid,
		invalid,
	),
	0x4d: newMandatoryPrefix2(
		invalid,
		newW(
			newEVEXVkHW(
				XMM0,
				XMM0,
				XMM0,
				EVEX_Vrcp14ss_VX_k1z_HX_WX,
				Tuple1Scalar,
				false,
			),
			newEVEXVkHW(
				XMM0,
				XMM0,
				XMM0,
				EVEX_Vrcp14sd_VX_k1z_HX_WX,
				Tuple1Scalar,
				false,
			),
		),
		invalid,
		invalid,
	),
	0x4e: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				newEVEXVkW(
					XMM0,
					XMM0,
					EVEX_Vrsqrt14ps_VX_k1z_WX_b,
					TupleFull128,
					true,
				),
				newEVEXVkW(
					YMM0,
					YMM0,
					EVEX_Vrsqrt14ps_VY_k1z_WY_b,
					TupleFull256,
					true,
				),
				newEVEXVkW(
					ZMM0,
					ZMM0,
					EVEX_Vrsqrt14ps_VZ_k1z_WZ_b,
					TupleFull512,
					true,
				),
			),
			newVectorLengthEVEX(
				newEVEXVkW(
					XMM0,
					XMM0,
					EVEX_Vrsqrt14pd_VX_k1z_WX_b,
					TupleFull128,
					true,
				),
				newEVEXVkW(
					YMM0,
					YMM0,
					EVEX_Vrsqrt14pd_VY_k1z_WY_b,
					TupleFull256,
					true,
				),
				newEVEXVkW(
					ZMM0,
					ZMM0,
					EVEX_Vrsqrt14pd_VZ_k1z_WZ_b,
					TupleFull512,
					true,
				),
			),
		),
		invalid,
		invalid,
	),
	0x4f: newMandatoryPrefix2(
		invalid,
		newW(
			newEVEXVkHW(
				XMM0,
				XMM0,
				XMM0,
				EVEX_Vrsqrt14ss_VX_k1z_HX_WX,
				Tuple1Scalar,
				false,
			),
			newEVEXVkHW(
				XMM0,
				XMM0,
				XMM0,
				EVEX_Vrsqrt14sd_VX_k1z_HX_WX,
				Tuple1Scalar,
				false,
			),
		),
		invalid,
		invalid,
	),
	0x52: newMandatoryPrefix2(
		invalid,
		invalid,
		invalid,
		newW(newEVEXVkHM(ZMM0, EVEX_Vp4dpwssd_VZ_k1z_HZP3_M, TupleFullMemX4), invalid),
	),
	0x53: newMandatoryPrefix2(
		invalid,
		invalid,
		invalid,
		newW(newEVEXVkHM(ZMM0, EVEX_Vp4dpwssds_VZ_k1z_HZP3_M, TupleFullMemX4), invalid),
	),
	0x58: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				newEVEXVkW(
					XMM0,
					XMM0,
					EVEX_Vpbroadcastd_VX_k1z_WX,
					Tuple1Scalar,
					false,
				),
				newEVEXVkW(
					YMM0,
					XMM0,
					EVEX_Vpbroadcastd_VY_k1z_WX,
					Tuple1Scalar,
					false,
				),
				newEVEXVkW(
					ZMM0,
					XMM0,
					EVEX_Vpbroadcastd_VZ_k1z_WX,
					Tuple1Scalar,
					false,
				),
			),
			invalid,
		),
		invalid,
		invalid,
	),
	0x59: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				newEVEXVkW(
					XMM0,
					XMM0,
					EVEX_Vbroadcasti32x2_VX_k1z_WX,
					Tuple2,
					false,
				),
				newEVEXVkW(
					YMM0,
					XMM0,
					EVEX_Vbroadcasti32x2_VY_k1z_WX,
					Tuple2,
					false,
				),
				newEVEXVkW(
					ZMM0,
					XMM0,
					EVEX_Vbroadcasti32x2_VZ_k1z_WX,
					Tuple2,
					false,
				),
			),
			newVectorLengthEVEX(
				newEVEXVkW(
					XMM0,
					XMM0,
					EVEX_Vpbroadcastq_VX_k1z_WX,
					Tuple1Scalar,
					false,
				),
				newEVEXVkW(
					YMM0,
					XMM0,
					EVEX_Vpbroadcastq_VY_k1z_WX,
					Tuple1Scalar,
					false,
				),
				newEVEXVkW(
					ZMM0,
					XMM0,
					EVEX_Vpbroadcastq_VZ_k1z_WX,
					Tuple1Scalar,
					false,
				),
			),
		),
		invalid,
		invalid,
	),
	0x5a: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				invalid,
				newEVEXVkM(YMM0, EVEX_Vbroadcasti32x4_VY_k1z_M, Tuple4),
				newEVEXVkM(ZMM0, EVEX_Vbroadcasti32x4_VZ_k1z_M, Tuple4),
			),
			newVectorLengthEVEX(
				invalid,
				newEVEXVkM(YMM0, EVEX_Vbroadcasti64x2_VY_k1z_M, Tuple2),
				newEVEXVkM(ZMM0, EVEX_Vbroadcasti64x2_VZ_k1z_M, Tuple2),
			),
		),
		invalid,
		invalid,
	),
	0x5b: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				invalid,
				invalid,
				newEVEXVkM(ZMM0, EVEX_Vbroadcasti32x8_VZ_k1z_M, Tuple8),
			),
			newVectorLengthEVEX(
				invalid,
				invalid,
				newEVEXVkM(ZMM0, EVEX_Vbroadcasti64x4_VZ_k1z_M, Tuple4),
			),
		),
		invalid,
		invalid,
	),
	0x64: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				newEVEXVkHW(
					XMM0,
					XMM0,
					XMM0,
					EVEX_Vpblendmd_VX_k1z_HX_WX_b,
					TupleFull128,
					true,
				),
				newEVEXVkHW(
					YMM0,
					YMM0,
					YMM0,
					EVEX_Vpblendmd_VY_k1z_HY_WY_b,
					TupleFull256,
					true,
				),
				newEVEXVkHW(
					ZMM0,
					ZMM0,
					ZMM0,
					EVEX_Vpblendmd_VZ_k1z_HZ_WZ_b,
					TupleFull512,
					true,
				),
			),
			newVectorLengthEVEX(
				newEVEXVkHW(
					XMM0,
					XMM0,
					XMM0,
					EVEX_Vpblendmq_VX_k1z_HX_WX_b,
					TupleFull128,
					true,
				),
				newEVEXVkHW(
					YMM0,
					YMM0,
					YMM0,
					EVEX_Vpblendmq_VY_k1z_HY_WY_b,
					TupleFull256,
					true,
				),
				newEVEXVkHW(
					ZMM0,
					ZMM0,
					ZMM0,
					EVEX_Vpblendmq_VZ_k1z_HZ_WZ_b,
					TupleFull512,
					true,
				),
			),
		),
		invalid,
		invalid,
	),
	0x65: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				newEVEXVkHW(
					XMM0,
					XMM0,
					XMM0,
					EVEX_Vblendmps_VX_k1z_HX_WX_b,
					TupleFull128,
					true,
				),
				newEVEXVkHW(
					YMM0,
					YMM0,
					YMM0,
					EVEX_Vblendmps_VY_k1z_HY_WY_b,
					TupleFull256,
					true,
				),
				newEVEXVkHW(
					ZMM0,
					ZMM0,
					ZMM0,
					EVEX_Vblendmps_VZ_k1z_HZ_WZ_b,
					TupleFull512,
					true,
				),
			),
			newVectorLengthEVEX(
				newEVEXVkHW(
					XMM0,
					XMM0,
					XMM0,
					EVEX_Vblendmpd_VX_k1z_HX_WX_b,
					TupleFull128,
					true,
				),
				newEVEXVkHW(
					YMM0,
					YMM0,
					YMM0,
					EVEX_Vblendmpd_VY_k1z_HY_WY_b,
					TupleFull256,
					true,
				),
				newEVEXVkHW(
					ZMM0,
					ZMM0,
					ZMM0,
					EVEX_Vblendmpd_VZ_k1z_HZ_WZ_b,
					TupleFull512,
					true,
				),
			),
		),
		invalid,
		invalid,
	),
	0x66: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				newEVEXVkHW(
					XMM0,
					XMM0,
					XMM0,
					EVEX_Vpblendmb_VX_k1z_HX_WX,
					TupleFullMem128,
					false,
				),
				newEVEXVkHW(
					YMM0,
					YMM0,
					YMM0,
					EVEX_Vpblendmb_VY_k1z_HY_WY,
					TupleFullMem256,
					false,
				),
				newEVEXVkHW(
					ZMM0,
					ZMM0,
					ZMM0,
					EVEX_Vpblendmb_VZ_k1z_HZ_WZ,
					TupleFullMem512,
					false,
				),
			),
			newVectorLengthEVEX(
				newEVEXVkHW(
					XMM0,
					XMM0,
					XMM0,
					EVEX_Vpblendmw_VX_k1z_HX_WX,
					TupleFullMem128,
					false,
				),
				newEVEXVkHW(
					YMM0,
					YMM0,
					YMM0,
					EVEX_Vpblendmw_VY_k1z_HY_WY,
					TupleFullMem256,
					false,
				),
				newEVEXVkHW(
					ZMM0,
					ZMM0,
					ZMM0,
					EVEX_Vpblendmw_VZ_k1z_HZ_WZ,
					TupleFullMem512,
					false,
				),
			),
		),
		invalid,
		invalid,
	),
	0x75: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				newEVEXVkHW(
					XMM0,
					XMM0,
					XMM0,
					EVEX_Vpermi2b_VX_k1z_HX_WX,
					TupleFullMem128,
					false,
				),
				newEVEXVkHW(
					YMM0,
					YMM0,
					YMM0,
					EVEX_Vpermi2b_VY_k1z_HY_WY,
					TupleFullMem256,
					false,
				),
				newEVEXVkHW(
					ZMM0,
					ZMM0,
					ZMM0,
					EVEX_Vpermi2b_VZ_k1z_HZ_WZ,
					TupleFullMem512,
					false,
				),
			),
			newVectorLengthEVEX(
				newEVEXVkHW(
					XMM0,
					XMM0,
					XMM0,
					EVEX_Vpermi2w_VX_k1z_HX_WX,
					TupleFullMem128,
					false,
				),
				newEVEXVkHW(
					YMM0,
					YMM0,
					YMM0,
					EVEX_Vpermi2w_VY_k1z_HY_WY,
					TupleFullMem256,
					false,
				),
				newEVEXVkHW(
					ZMM0,
					ZMM0,
					ZMM0,
					EVEX_Vpermi2w_VZ_k1z_HZ_WZ,
					TupleFullMem512,
					false,
				),
			),
		),
		invalid,
		invalid,
	),
	0x76: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				newEVEXVkHW(
					XMM0,
					XMM0,
					XMM0,
					EVEX_Vpermi2d_VX_k1z_HX_WX_b,
					TupleFull128,
					true,
				),
				newEVEXVkHW(
					YMM0,
					YMM0,
					YMM0,
					EVEX_Vpermi2d_VY_k1z_HY_WY_b,
					TupleFull256,
					true,
				),
				newEVEXVkHW(
					ZMM0,
					ZMM0,
					ZMM0,
					EVEX_Vpermi2d_VZ_k1z_HZ_WZ_b,
					TupleFull512,
					true,
				),
			),
			newVectorLengthEVEX(
				newEVEXVkHW(
					XMM0,
					XMM0,
					XMM0,
					EVEX_Vpermi2q_VX_k1z_HX_WX_b,
					TupleFull128,
					true,
				),
				newEVEXVkHW(
					YMM0,
					YMM0,
					YMM0,
					EVEX_Vpermi2q_VY_k1z_HY_WY_b,
					TupleFull256,
					true,
				),
				newEVEXVkHW(
					ZMM0,
					ZMM0,
					ZMM0,
					EVEX_Vpermi2q_VZ_k1z_HZ_WZ_b,
					TupleFull512,
					true,
				),
			),
		),
		invalid,
		invalid,
	),
	0x77: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				newEVEXVkHW(
					XMM0,
					XMM0,
					XMM0,
					EVEX_Vpermi2ps_VX_k1z_HX_WX_b,
					TupleFull128,
					true,
				),
				newEVEXVkHW(
					YMM0,
					YMM0,
					YMM0,
					EVEX_Vpermi2ps_VY_k1z_HY_WY_b,
					TupleFull256,
					true,
				),
				newEVEXVkHW(
					ZMM0,
					ZMM0,
					ZMM0,
					EVEX_Vpermi2ps_VZ_k1z_HZ_WZ_b,
					TupleFull512,
					true,
				),
			),
			newVectorLengthEVEX(
				newEVEXVkHW(
					XMM0,
					XMM0,
					XMM0,
					EVEX_Vpermi2pd_VX_k1z_HX_WX_b,
					TupleFull128,
					true,
				),
				newEVEXVkHW(
					YMM0,
					YMM0,
					YMM0,
					EVEX_Vpermi2pd_VY_k1z_HY_WY_b,
					TupleFull256,
					true,
				),
				newEVEXVkHW(
					ZMM0,
					ZMM0,
					ZMM0,
					EVEX_Vpermi2pd_VZ_k1z_HZ_WZ_b,
					TupleFull512,
					true,
				),
			),
		),
		invalid,
		invalid,
	),
	0x78: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				newEVEXVkW(
					XMM0,
					XMM0,
					EVEX_Vpbroadcastb_VX_k1z_WX,
					Tuple1Scalar1,
					false,
				),
				newEVEXVkW(
					YMM0,
					XMM0,
					EVEX_Vpbroadcastb_VY_k1z_WX,
					Tuple1Scalar1,
					false,
				),
				newEVEXVkW(
					ZMM0,
					XMM0,
					EVEX_Vpbroadcastb_VZ_k1z_WX,
					Tuple1Scalar1,
					false,
				),
			),
			invalid,
		),
		invalid,
		invalid,
	),
	0x79: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				newEVEXVkW(
					XMM0,
					XMM0,
					EVEX_Vpbroadcastw_VX_k1z_WX,
					Tuple1Scalar2,
					false,
				),
				newEVEXVkW(
					YMM0,
					XMM0,
					EVEX_Vpbroadcastw_VY_k1z_WX,
					Tuple1Scalar2,
					false,
				),
				newEVEXVkW(
					ZMM0,
					XMM0,
					EVEX_Vpbroadcastw_VZ_k1z_WX,
					Tuple1Scalar2,
					false,
				),
			),
			invalid,
		),
		invalid,
		invalid,
	),
	0x7a: newMandatoryPrefix2(
		invalid,
		newVectorLengthEVEX(
			newEVEXVkEvREXW(XMM0, EVEX_Vpbroadcastb_VX_k1z_Rd, INVALID),
			newEVEXVkEvREXW(YMM0, EVEX_Vpbroadcastb_VY_k1z_Rd, INVALID),
			newEVEXVkEvREXW(ZMM0, EVEX_Vpbroadcastb_VZ_k1z_Rd, INVALID),
		),
		invalid,
		invalid,
	),
	0x7b: newMandatoryPrefix2(
		invalid,
		newVectorLengthEVEX(
			newEVEXVkEvREXW(XMM0, EVEX_Vpbroadcastw_VX_k1z_Rd, INVALID),
			newEVEXVkEvREXW(YMM0, EVEX_Vpbroadcastw_VY_k1z_Rd, INVALID),
			newEVEXVkEvREXW(ZMM0, EVEX_Vpbroadcastw_VZ_k1z_Rd, INVALID),
		),
		invalid,
		invalid,
	),
	0x7c: newMandatoryPrefix2(
		invalid,
		newVectorLengthEVEX(
			newEVEXVkEvREXW(
				XMM0,
				EVEX_Vpbroadcastd_VX_k1z_Rd,
				EVEX_Vpbroadcastq_VX_k1z_Rq,
			),
			newEVEXVkEvREXW(
				YMM0,
				EVEX_Vpbroadcastd_VY_k1z_Rd,
				EVEX_Vpbroadcastq_VY_k1z_Rq,
			),
			newEVEXVkEvREXW(
				ZMM0,
				EVEX_Vpbroadcastd_VZ_k1z_Rd,
				EVEX_Vpbroadcastq_VZ_k1z_Rq,
			),
		),
		invalid,
		invalid,
	),
	0x7d: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				newEVEXVkHW(
					XMM0,
					XMM0,
					XMM0,
					EVEX_Vpermt2b_VX_k1z_HX_WX,
					TupleFullMem128,
					false,
				),
				newEVEXVkHW(
					YMM0,
					YMM0,
					YMM0,
					EVEX_Vpermt2b_VY_k1z_HY_WY,
					TupleFullMem256,
					false,
				),
				newEVEXVkHW(
					ZMM0,
					ZMM0,
					ZMM0,
					EVEX_Vpermt2b_VZ_k1z_HZ_WZ,
					TupleFullMem512,
					false,
				),
			),
			newVectorLengthEVEX(
				newEVEXVkHW(
					XMM0,
					XMM0,
					XMM0,
					EVEX_Vpermt2w_VX_k1z_HX_WX,
					TupleFullMem128,
					false,
				),
				newEVEXVkHW(
					YMM0,
					YMM0,
					YMM0,
					EVEX_Vpermt2w_VY_k1z_HY_WY,
					TupleFullMem256,
					false,
				),
				newEVEXVkHW(
					ZMM0,
					ZMM0,
					ZMM0,
					EVEX_Vpermt2w_VZ_k1z_HZ_WZ,
					TupleFullMem512,
					false,
				),
			),
		),
		invalid,
		invalid,
	),
	0x7e: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				newEVEXVkHW(
					XMM0,
					XMM0,
					XMM0,
					EVEX_Vpermt2d_VX_k1z_HX_WX_b,
					TupleFull128,
					true,
				),
				newEVEXVkHW(
					YMM0,
					YMM0,
					YMM0,
					EVEX_Vpermt2d_VY_k1z_HY_WY_b,
					TupleFull256,
					true,
				),
				newEVEXVkHW(
					ZMM0,
					ZMM0,
					ZMM0,
					EVEX_Vpermt2d_VZ_k1z_HZ_WZ_b,
					TupleFull512,
					true,
				),
			),
			newVectorLengthEVEX(
				newEVEXVkHW(
					XMM0,
					XMM0,
					XMM0,
					EVEX_Vpermt2q_VX_k1z_HX_WX_b,
					TupleFull128,
					true,
				),
				newEVEXVkHW(
					YMM0,
					YMM0,
					YMM0,
					EVEX_Vpermt2q_VY_k1z_HY_WY_b,
					TupleFull256,
					true,
				),
				newEVEXVkHW(
					ZMM0,
					ZMM0,
					ZMM0,
					EVEX_Vpermt2q_VZ_k1z_HZ_WZ_b,
					TupleFull512,
					true,
				),
			),
		),
		invalid,
		invalid,
	),
	0x7f: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				newEVEXVkHW(
					XMM0,
					XMM0,
					XMM0,
					EVEX_Vpermt2ps_VX_k1z_HX_WX_b,
					TupleFull128,
					true,
				),
				newEVEXVkHW(
					YMM0,
					YMM0,
					YMM0,
					EVEX_Vpermt2ps_VY_k1z_HY_WY_b,
					TupleFull256,
					true,
				),
				newEVEXVkHW(
					ZMM0,
					ZMM0,
					ZMM0,
					EVEX_Vpermt2ps_VZ_k1z_HZ_WZ_b,
					TupleFull512,
					true,
				),
			),
			newVectorLengthEVEX(
				newEVEXVkHW(
					XMM0,
					XMM0,
					XMM0,
					EVEX_Vpermt2pd_VX_k1z_HX_WX_b,
					TupleFull128,
					true,
				),
				newEVEXVkHW(
					YMM0,
					YMM0,
					YMM0,
					EVEX_Vpermt2pd_VY_k1z_HY_WY_b,
					TupleFull256,
					true,
				),
				newEVEXVkHW(
					ZMM0,
					ZMM0,
					ZMM0,
					EVEX_Vpermt2pd_VZ_k1z_HZ_WZ_b,
					TupleFull512,
					true,
				),
			),
		),
		invalid,
		invalid,
	),
	0x83: newMandatoryPrefix2(
		invalid,
		newW(
			invalid,
			newVectorLengthEVEX(
				newEVEXVkHW(
					XMM0,
					XMM0,
					XMM0,
					EVEX_Vpmultishiftqb_VX_k1z_HX_WX_b,
					TupleFull128,
					true,
				),
				newEVEXVkHW(
					YMM0,
					YMM0,
					YMM0,
					EVEX_Vpmultishiftqb_VY_k1z_HY_WY_b,
					TupleFull256,
					true,
				),
				newEVEXVkHW(
					ZMM0,
					ZMM0,
					ZMM0,
					EVEX_Vpmultishiftqb_VZ_k1z_HZ_WZ_b,
					TupleFull512,
					true,
				),
			),
		),
		invalid,
		invalid,
	),
	0x88: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				newEVEXVkW(
					XMM0,
					XMM0,
					EVEX_Vexpandps_VX_k1z_WX,
					Tuple1Scalar,
					false,
				),
				newEVEXVkW(
					YMM0,
					YMM0,
					EVEX_Vexpandps_VY_k1z_WY,
					Tuple1Scalar,
					false,
				),
				newEVEXVkW(
					ZMM0,
					ZMM0,
					EVEX_Vexpandps_VZ_k1z_WZ,
					Tuple1Scalar,
					false,
				),
			),
			newVectorLengthEVEX(
				newEVEXVkW(
					XMM0,
					XMM0,
					EVEX_Vexpandpd_VX_k1z_WX,
					Tuple1Scalar,
					false,
				),
				newEVEXVkW(
					YMM0,
					YMM0,
					EVEX_Vexpandpd_VY_k1z_WY,
					Tuple1Scalar,
					false,
				),
				newEVEXVkW(
					ZMM0,
					ZMM0,
					EVEX_Vexpandpd_VZ_k1z_WZ,
					Tuple1Scalar,
					false,
				),
			),
		),
		invalid,
		invalid,
	),
	0x89: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				newEVEXVkW(
					XMM0,
					XMM0,
					EVEX_Vpexpandd_VX_k1z_WX,
					Tuple1Scalar,
					false,
				),
				newEVEXVkW(
					YMM0,
					YMM0,
					EVEX_Vpexpandd_VY_k1z_WY,
					Tuple1Scalar,
					false,
				),
				newEVEXVkW(
					ZMM0,
					ZMM0,
					EVEX_Vpexpandd_VZ_k1z_WZ,
					Tuple1Scalar,
					false,
				),
			),
			newVectorLengthEVEX(
				newEVEXVkW(
					XMM0,
					XMM0,
					EVEX_Vpexpandq_VX_k1z_WX,
					Tuple1Scalar,
					false,
				),
				newEVEXVkW(
					YMM0,
					YMM0,
					EVEX_Vpexpandq_VY_k1z_WY,
					Tuple1Scalar,
					false,
				),
				newEVEXVkW(
					ZMM0,
					ZMM0,
					EVEX_Vpexpandq_VZ_k1z_WZ,
					Tuple1Scalar,
					false,
				),
			),
		),
		invalid,
		invalid,
	),
	0x8a: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				newEVEXWkV(XMM0, XMM0, EVEX_Vcompressps_WX_k1z_VX, Tuple1Scalar),
				newEVEXWkV(YMM0, YMM0, EVEX_Vcompressps_WY_k1z_VY, Tuple1Scalar),
				newEVEXWkV(ZMM0, ZMM0, EVEX_Vcompressps_WZ_k1z_VZ, Tuple1Scalar),
			),
			newVectorLengthEVEX(
				newEVEXWkV(XMM0, XMM0, EVEX_Vcompresspd_WX_k1z_VX, Tuple1Scalar),
				newEVEXWkV(YMM0, YMM0, EVEX_Vcompresspd_WY_k1z_VY, Tuple1Scalar),
				newEVEXWkV(ZMM0, ZMM0, EVEX_Vcompresspd_WZ_k1z_VZ, Tuple1Scalar),
			),
		),
		invalid,
		invalid,
	),
	0x8b: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				newEVEXWkV(XMM0, XMM0, EVEX_Vpcompressd_WX_k1z_VX, Tuple1Scalar),
				newEVEXWkV(YMM0, YMM0, EVEX_Vpcompressd_WY_k1z_VY, Tuple1Scalar),
				newEVEXWkV(ZMM0, ZMM0, EVEX_Vpcompressd_WZ_k1z_VZ, Tuple1Scalar),
			),
			newVectorLengthEVEX(
				newEVEXWkV(XMM0, XMM0, EVEX_Vpcompressq_WX_k1z_VX, Tuple1Scalar),
				newEVEXWkV(YMM0, YMM0, EVEX_Vpcompressq_WY_k1z_VY, Tuple1Scalar),
				newEVEXWkV(ZMM0, ZMM0, EVEX_Vpcompressq_WZ_k1z_VZ, Tuple1Scalar),
			),
		),
		invalid,
		invalid,
	),
	0x8d: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				newEVEXVkHW(
					XMM0,
					XMM0,
					XMM0,
					EVEX_Vpermb_VX_k1z_HX_WX,
					TupleFullMem128,
					false,
				),
				newEVEXVkHW(
					YMM0,
					YMM0,
					YMM0,
					EVEX_Vpermb_VY_k1z_HY_WY,
					TupleFullMem256,
					false,
				),
				newEVEXVkHW(
					ZMM0,
					ZMM0,
					ZMM0,
					EVEX_Vpermb_VZ_k1z_HZ_WZ,
					TupleFullMem512,
					false,
				),
			),
			newVectorLengthEVEX(
				newEVEXVkHW(
					XMM0,
					XMM0,
					XMM0,
					EVEX_Vpermw_VX_k1z_HX_WX,
					TupleFullMem128,
					false,
				),
				newEVEXVkHW(
					YMM0,
					YMM0,
					YMM0,
					EVEX_Vpermw_VY_k1z_HY_WY,
					TupleFullMem256,
					false,
				),
				newEVEXVkHW(
					ZMM0,
					ZMM0,
					ZMM0,
					EVEX_Vpermw_VZ_k1z_HZ_WZ,
					TupleFullMem512,
					false,
				),
			),
		),
		invalid,
		invalid,
	),
	0x90: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				newEVEXVkVSIB(XMM0, XMM0, EVEX_Vpgatherdd_VX_k1_VM32X, Tuple1Scalar),
				newEVEXVkVSIB(YMM0, YMM0, EVEX_Vpgatherdd_VY_k1_VM32Y, Tuple1Scalar),
				newEVEXVkVSIB(ZMM0, ZMM0, EVEX_Vpgatherdd_VZ_k1_VM32Z, Tuple1Scalar),
			),
			newVectorLengthEVEX(
				newEVEXVkVSIB(XMM0, XMM0, EVEX_Vpgatherdq_VX_k1_VM32X, Tuple1Scalar),
				newEVEXVkVSIB(YMM0, XMM0, EVEX_Vpgatherdq_VY_k1_VM32X, Tuple1Scalar),
				newEVEXVkVSIB(ZMM0, YMM0, EVEX_Vpgatherdq_VZ_k1_VM32Y, Tuple1Scalar),
			),
		),
		invalid,
		invalid,
	),
	0x91: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				newEVEXVkVSIB(XMM0, XMM0, EVEX_Vpgatherqd_VX_k1_VM64X, Tuple1Scalar),
				newEVEXVkVSIB(XMM0, YMM0, EVEX_Vpgatherqd_VX_k1_VM64Y, Tuple1Scalar),
				newEVEXVkVSIB(YMM0, ZMM0, EVEX_Vpgatherqd_VY_k1_VM64Z, Tuple1Scalar),
			),
			newVectorLengthEVEX(
				newEVEXVkVSIB(XMM0, XMM0, EVEX_Vpgatherqq_VX_k1_VM64X, Tuple1Scalar),
				newEVEXVkVSIB(YMM0, YMM0, EVEX_Vpgatherqq_VY_k1_VM64Y, Tuple1Scalar),
				newEVEXVkVSIB(ZMM0, ZMM0, EVEX_Vpgatherqq_VZ_k1_VM64Z, Tuple1Scalar),
			),
		),
		invalid,
		invalid,
	),
	0x92: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				newEVEXVkVSIB(XMM0, XMM0, EVEX_Vgatherdps_VX_k1_VM32X, Tuple1Scalar),
				newEVEXVkVSIB(YMM0, YMM0, EVEX_Vgatherdps_VY_k1_VM32Y, Tuple1Scalar),
				newEVEXVkVSIB(ZMM0, ZMM0, EVEX_Vgatherdps_VZ_k1_VM32Z, Tuple1Scalar),
			),
			newVectorLengthEVEX(
				newEVEXVkVSIB(XMM0, XMM0, EVEX_Vgatherdpd_VX_k1_VM32X, Tuple1Scalar),
				newEVEXVkVSIB(YMM0, XMM0, EVEX_Vgatherdpd_VY_k1_VM32X, Tuple1Scalar),
				newEVEXVkVSIB(ZMM0, YMM0, EVEX_Vgatherdpd_VZ_k1_VM32Y, Tuple1Scalar),
			),
		),
		invalid,
		invalid,
	),
	0x93: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				newEVEXVkVSIB(XMM0, XMM0, EVEX_Vgatherqps_VX_k1_VM64X, Tuple1Scalar),
				newEVEXVkVSIB(XMM0, YMM0, EVEX_Vgatherqps_VX_k1_VM64Y, Tuple1Scalar),
				newEVEXVkVSIB(YMM0, ZMM0, EVEX_Vgatherqps_VY_k1_VM64Z, Tuple1Scalar),
			),
			newVectorLengthEVEX(
				newEVEXVkVSIB(XMM0, XMM0, EVEX_Vgatherqpd_VX_k1_VM64X, Tuple1Scalar),
				newEVEXVkVSIB(YMM0, YMM0, EVEX_Vgatherqpd_VY_k1_VM64Y, Tuple1Scalar),
				newEVEXVkVSIB(ZMM0, ZMM0, EVEX_Vgatherqpd_VZ_k1_VM64Z, Tuple1Scalar),
			),
		),
		invalid,
		invalid,
	),
	0x96: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEXer(
				newEVEXVkHWer(
					XMM0,
					EVEX_Vfmaddsub132ps_VX_k1z_HX_WX_b,
					TupleFull128,
					false,
					true,
				),
				newEVEXVkHWer(
					YMM0,
					EVEX_Vfmaddsub132ps_VY_k1z_HY_WY_b,
					TupleFull256,
					false,
					true,
				),
				newEVEXVkHWer(
					ZMM0,
					EVEX_Vfmaddsub132ps_VZ_k1z_HZ_WZ_er_b,
					TupleFull512,
					false,
					true,
				),
			),
			newVectorLengthEVEXer(
				newEVEXVkHWer(
					XMM0,
					EVEX_Vfmaddsub132pd_VX_k1z_HX_WX_b,
					TupleFull128,
					false,
					true,
				),
				newEVEXVkHWer(
					YMM0,
					EVEX_Vfmaddsub132pd_VY_k1z_HY_WY_b,
					TupleFull256,
					false,
					true,
				),
				newEVEXVkHWer(
					ZMM0,
					EVEX_Vfmaddsub132pd_VZ_k1z_HZ_WZ_er_b,
					TupleFull512,
					false,
					true,
				),
			),
		),
		invalid,
		invalid,
	),
	0x97: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEXer(
				newEVEXVkHWer(
					XMM0,
					EVEX_Vfmsubadd132ps_VX_k1z_HX_WX_b,
					TupleFull128,
					false,
					true,
				),
				newEVEXVkHWer(
					YMM0,
					EVEX_Vfmsubadd132ps_VY_k1z_HY_WY_b,
					TupleFull256,
					false,
					true,
				),
				newEVEXVkHWer(
					ZMM0,
					EVEX_Vfmsubadd132ps_VZ_k1z_HZ_WZ_er_b,
					TupleFull512,
					false,
					true,
				),
			),
			newVectorLengthEVEXer(
				newEVEXVkHWer(
					XMM0,
					EVEX_Vfmsubadd132pd_VX_k1z_HX_WX_b,
					TupleFull128,
					false,
					true,
				),
				newEVEXVkHWer(
					YMM0,
					EVEX_Vfmsubadd132pd_VY_k1z_HY_WY_b,
					TupleFull256,
					false,
					true,
				),
				newEVEXVkHWer(
					ZMM0,
					EVEX_Vfmsubadd132pd_VZ_k1z_HZ_WZ_er_b,
					TupleFull512,
					false,
					true,
				),
			),
		),
		invalid,
		invalid,
	),
	0x98: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEXer(
				newEVEXVkHWer(
					XMM0,
					EVEX_Vfmadd132ps_VX_k1z_HX_WX_b,
					TupleFull128,
					false,
					true,
				),
				newEVEXVkHWer(
					YMM0,
					EVEX_Vfmadd132ps_VY_k1z_HY_WY_b,
					TupleFull256,
					false,
					true,
				),
				newEVEXVkHWer(
					ZMM0,
					EVEX_Vfmadd132ps_VZ_k1z_HZ_WZ_er_b,
					TupleFull512,
					false,
					true,
				),
			),
			newVectorLengthEVEXer(
				newEVEXVkHWer(
					XMM0,
					EVEX_Vfmadd132pd_VX_k1z_HX_WX_b,
					TupleFull128,
					false,
					true,
				),
				newEVEXVkHWer(
					YMM0,
					EVEX_Vfmadd132pd_VY_k1z_HY_WY_b,
					TupleFull256,
					false,
					true,
				),
				newEVEXVkHWer(
					ZMM0,
					EVEX_Vfmadd132pd_VZ_k1z_HZ_WZ_er_b,
					TupleFull512,
					false,
					true,
				),
			),
		),
		invalid,
		invalid,
	),
	0x99: newMandatoryPrefix2(
		invalid,
		newW(
			newEVEXVkHWer(
				XMM0,
				EVEX_Vfmadd132ss_VX_k1z_HX_WX_er,
				Tuple1Scalar,
				false,
				false,
			),
			newEVEXVkHWer(
				XMM0,
				EVEX_Vfmadd132sd_VX_k1z_HX_WX_er,
				Tuple1Scalar,
				false,
				false,
			),
		),
		invalid,
		invalid,
	),
	0x9a: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEXer(
				newEVEXVkHWer(
					XMM0,
					EVEX_Vfmsub132ps_VX_k1z_HX_WX_b,
					TupleFull128,
					false,
					true,
				),
				newEVEXVkHWer(
					YMM0,
					EVEX_Vfmsub132ps_VY_k1z_HY_WY_b,
					TupleFull256,
					false,
					true,
				),
				newEVEXVkHWer(
					ZMM0,
					EVEX_Vfmsub132ps_VZ_k1z_HZ_WZ_er_b,
					TupleFull512,
					false,
					true,
				),
			),
			newVectorLengthEVEXer(
				newEVEXVkHWer(
					XMM0,
					EVEX_Vfmsub132pd_VX_k1z_HX_WX_b,
					TupleFull128,
					false,
					true,
				),
				newEVEXVkHWer(
					YMM0,
					EVEX_Vfmsub132pd_VY_k1z_HY_WY_b,
					TupleFull256,
					false,
					true,
				),
				newEVEXVkHWer(
					ZMM0,
					EVEX_Vfmsub132pd_VZ_k1z_HZ_WZ_er_b,
					TupleFull512,
					false,
					true,
				),
			),
		),
		invalid,
		newW(newEVEXVkHM(ZMM0, EVEX_V4fmaddps_VZ_k1z_HZP3_M, TupleFullMemX4), invalid),
	),
	0x9b: newMandatoryPrefix2(
		invalid,
		newW(
			newEVEXVkHWer(
				XMM0,
				EVEX_Vfmsub132ss_VX_k1z_HX_WX_er,
				Tuple1Scalar,
				false,
				false,
			),
			newEVEXVkHWer(
				XMM0,
				EVEX_Vfmsub132sd_VX_k1z_HX_WX_er,
				Tuple1Scalar,
				false,
				false,
			),
		),
		invalid,
		newW(newEVEXVkHM(XMM0, EVEX_V4fmaddss_VX_k1z_HXP3_M, TupleFullMemX4), invalid),
	),
	0x9c: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEXer(
				newEVEXVkHWer(
					XMM0,
					EVEX_Vfnmadd132ps_VX_k1z_HX_WX_b,
					TupleFull128,
					false,
					true,
				),
				newEVEXVkHWer(
					YMM0,
					EVEX_Vfnmadd132ps_VY_k1z_HY_WY_b,
					TupleFull256,
					false,
					true,
				),
				newEVEXVkHWer(
					ZMM0,
					EVEX_Vfnmadd132ps_VZ_k1z_HZ_WZ_er_b,
					TupleFull512,
					false,
					true,
				),
			),
			newVectorLengthEVEXer(
				newEVEXVkHWer(
					XMM0,
					EVEX_Vfnmadd132pd_VX_k1z_HX_WX_b,
					TupleFull128,
					false,
					true,
				),
				newEVEXVkHWer(
					YMM0,
					EVEX_Vfnmadd132pd_VY_k1z_HY_WY_b,
					TupleFull256,
					false,
					true,
				),
				newEVEXVkHWer(
					ZMM0,
					EVEX_Vfnmadd132pd_VZ_k1z_HZ_WZ_er_b,
					TupleFull512,
					false,
					true,
				),
			),
		),
		invalid,
		invalid,
	),
	0x9d: newMandatoryPrefix2(
		invalid,
		newW(
			newEVEXVkHWer(
				XMM0,
				EVEX_Vfnmadd132ss_VX_k1z_HX_WX_er,
				Tuple1Scalar,
				false,
				false,
			),
			newEVEXVkHWer(
				XMM0,
				EVEX_Vfnmadd132sd_VX_k1z_HX_WX_er,
				Tuple1Scalar,
				false,
				false,
			),
		),
		invalid,
		invalid,
	),
	0x9e: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEXer(
				newEVEXVkHWer(
					XMM0,
					EVEX_Vfnmsub132ps_VX_k1z_HX_WX_b,
					TupleFull128,
					false,
					true,
				),
				newEVEXVkHWer(
					YMM0,
					EVEX_Vfnmsub132ps_VY_k1z_HY_WY_b,
					TupleFull256,
					false,
					true,
				),
				newEVEXVkHWer(
					ZMM0,
					EVEX_Vfnmsub132ps_VZ_k1z_HZ_WZ_er_b,
					TupleFull512,
					false,
					true,
				),
			),
			newVectorLengthEVEXer(
				newEVEXVkHWer(
					XMM0,
					EVEX_Vfnmsub132pd_VX_k1z_HX_WX_b,
					TupleFull128,
					false,
					true,
				),
				newEVEXVkHWer(
					YMM0,
					EVEX_Vfnmsub132pd_VY_k1z_HY_WY_b,
					TupleFull256,
					false,
					true,
				),
				newEVEXVkHWer(
					ZMM0,
					EVEX_Vfnmsub132pd_VZ_k1z_HZ_WZ_er_b,
					TupleFull512,
					false,
					true,
				),
			),
		),
		invalid,
		invalid,
	),
	0x9f: newMandatoryPrefix2(
		invalid,
		newW(
			newEVEXVkHWer(
				XMM0,
				EVEX_Vfnmsub132ss_VX_k1z_HX_WX_er,
				Tuple1Scalar,
				false,
				false,
			),
			newEVEXVkHWer(
				XMM0,
				EVEX_Vfnmsub132sd_VX_k1z_HX_WX_er,
				Tuple1Scalar,
				false,
				false,
			),
		),
		invalid,
		invalid,
	),
	0xa0: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				newEVEXVSIBk1VX(
					XMM0,
					XMM0,
					EVEX_Vpscatterdd_VM32X_k1_VX,
					Tuple1Scalar,
				),
				newEVEXVSIBk1VX(
					YMM0,
					YMM0,
					EVEX_Vpscatterdd_VM32Y_k1_VY,
					Tuple1Scalar,
				),
				newEVEXVSIBk1VX(
					ZMM0,
					ZMM0,
					EVEX_Vpscatterdd_VM32Z_k1_VZ,
					Tuple1Scalar,
				),
			),
			newVectorLengthEVEX(
				newEVEXVSIBk1VX(
					XMM0,
					XMM0,
					EVEX_Vpscatterdq_VM32X_k1_VX,
					Tuple1Scalar,
				),
				newEVEXVSIBk1VX(
					XMM0,
					YMM0,
					EVEX_Vpscatterdq_VM32X_k1_VY,
					Tuple1Scalar,
				),
				newEVEXVSIBk1VX(
					YMM0,
					ZMM0,
					EVEX_Vpscatterdq_VM32Y_k1_VZ,
					Tuple1Scalar,
				),
			),
		),
		invalid,
		invalid,
	),
	0xa1: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				newEVEXVSIBk1VX(
					XMM0,
					XMM0,
					EVEX_Vpscatterqd_VM64X_k1_VX,
					Tuple1Scalar,
				),
				newEVEXVSIBk1VX(
					YMM0,
					XMM0,
					EVEX_Vpscatterqd_VM64Y_k1_VX,
					Tuple1Scalar,
				),
				newEVEXVSIBk1VX(
					ZMM0,
					YMM0,
					EVEX_Vpscatterqd_VM64Z_k1_VY,
					Tuple1Scalar,
				),
			),
			newVectorLengthEVEX(
				newEVEXVSIBk1VX(
					XMM0,
					XMM0,
					EVEX_Vpscatterqq_VM64X_k1_VX,
					Tuple1Scalar,
				),
				newEVEXVSIBk1VX(
					YMM0,
					YMM0,
					EVEX_Vpscatterqq_VM64Y_k1_VY,
					Tuple1Scalar,
				),
				newEVEXVSIBk1VX(
					ZMM0,
					ZMM0,
					EVEX_Vpscatterqq_VM64Z_k1_VZ,
					Tuple1Scalar,
				),
			),
		),
		invalid,
		invalid,
	),
	0xa2: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				newEVEXVSIBk1VX(
					XMM0,
					XMM0,
					EVEX_Vscatterdps_VM32X_k1_VX,
					Tuple1Scalar,
				),
				newEVEXVSIBk1VX(
					YMM0,
					YMM0,
					EVEX_Vscatterdps_VM32Y_k1_VY,
					Tuple1Scalar,
				),
				newEVEXVSIBk1VX(
					ZMM0,
					ZMM0,
					EVEX_Vscatterdps_VM32Z_k1_VZ,
					Tuple1Scalar,
				),
			),
			newVectorLengthEVEX(
				newEVEXVSIBk1VX(
					XMM0,
					XMM0,
					EVEX_Vscatterdpd_VM32X_k1_VX,
					Tuple1Scalar,
				),
				newEVEXVSIBk1VX(
					XMM0,
					YMM0,
					EVEX_Vscatterdpd_VM32X_k1_VY,
					Tuple1Scalar,
				),
				newEVEXVSIBk1VX(
					YMM0,
					ZMM0,
					EVEX_Vscatterdpd_VM32Y_k1_VZ,
					Tuple1Scalar,
				),
			),
		),
		invalid,
		invalid,
	),
	0xa3: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				newEVEXVSIBk1VX(
					XMM0,
					XMM0,
					EVEX_Vscatterqps_VM64X_k1_VX,
					Tuple1Scalar,
				),
				newEVEXVSIBk1VX(
					YMM0,
					XMM0,
					EVEX_Vscatterqps_VM64Y_k1_VX,
					Tuple1Scalar,
				),
				newEVEXVSIBk1VX(
					ZMM0,
					YMM0,
					EVEX_Vscatterqps_VM64Z_k1_VY,
					Tuple1Scalar,
				),
			),
			newVectorLengthEVEX(
				newEVEXVSIBk1VX(
					XMM0,
					XMM0,
					EVEX_Vscatterqpd_VM64X_k1_VX,
					Tuple1Scalar,
				),
				newEVEXVSIBk1VX(
					YMM0,
					YMM0,
					EVEX_Vscatterqpd_VM64Y_k1_VY,
					Tuple1Scalar,
				),
				newEVEXVSIBk1VX(
					ZMM0,
					ZMM0,
					EVEX_Vscatterqpd_VM64Z_k1_VZ,
					Tuple1Scalar,
				),
			),
		),
		invalid,
		invalid,
	),
	0xa6: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEXer(
				newEVEXVkHWer(
					XMM0,
					EVEX_Vfmaddsub213ps_VX_k1z_HX_WX_b,
					TupleFull128,
					false,
					true,
				),
				newEVEXVkHWer(
					YMM0,
					EVEX_Vfmaddsub213ps_VY_k1z_HY_WY_b,
					TupleFull256,
					false,
					true,
				),
				newEVEXVkHWer(
					ZMM0,
					EVEX_Vfmaddsub213ps_VZ_k1z_HZ_WZ_er_b,
					TupleFull512,
					false,
					true,
				),
			),
			newVectorLengthEVEXer(
				newEVEXVkHWer(
					XMM0,
					EVEX_Vfmaddsub213pd_VX_k1z_HX_WX_b,
					TupleFull128,
					false,
					true,
				),
				newEVEXVkHWer(
					YMM0,
					EVEX_Vfmaddsub213pd_VY_k1z_HY_WY_b,
					TupleFull256,
					false,
					true,
				),
				newEVEXVkHWer(
					ZMM0,
					EVEX_Vfmaddsub213pd_VZ_k1z_HZ_WZ_er_b,
					TupleFull512,
					false,
					true,
				),
			),
		),
		invalid,
		invalid,
	),
	0xa7: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEXer(
				newEVEXVkHWer(
					XMM0,
					EVEX_Vfmsubadd213ps_VX_k1z_HX_WX_b,
					TupleFull128,
					false,
					true,
				),
				newEVEXVkHWer(
					YMM0,
					EVEX_Vfmsubadd213ps_VY_k1z_HY_WY_b,
					TupleFull256,
					false,
					true,
				),
				newEVEXVkHWer(
					ZMM0,
					EVEX_Vfmsubadd213ps_VZ_k1z_HZ_WZ_er_b,
					TupleFull512,
					false,
					true,
				),
			),
			newVectorLengthEVEXer(
				newEVEXVkHWer(
					XMM0,
					EVEX_Vfmsubadd213pd_VX_k1z_HX_WX_b,
					TupleFull128,
					false,
					true,
				),
				newEVEXVkHWer(
					YMM0,
					EVEX_Vfmsubadd213pd_VY_k1z_HY_WY_b,
					TupleFull256,
					false,
					true,
				),
				newEVEXVkHWer(
					ZMM0,
					EVEX_Vfmsubadd213pd_VZ_k1z_HZ_WZ_er_b,
					TupleFull512,
					false,
					true,
				),
			),
		),
		invalid,
		invalid,
	),
	0xa8: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEXer(
				newEVEXVkHWer(
					XMM0,
					EVEX_Vfmadd213ps_VX_k1z_HX_WX_b,
					TupleFull128,
					false,
					true,
				),
				newEVEXVkHWer(
					YMM0,
					EVEX_Vfmadd213ps_VY_k1z_HY_WY_b,
					TupleFull256,
					false,
					true,
				),
				newEVEXVkHWer(
					ZMM0,
					EVEX_Vfmadd213ps_VZ_k1z_HZ_WZ_er_b,
					TupleFull512,
					false,
					true,
				),
			),
			newVectorLengthEVEXer(
				newEVEXVkHWer(
					XMM0,
					EVEX_Vfmadd213pd_VX_k1z_HX_WX_b,
					TupleFull128,
					false,
					true,
				),
				newEVEXVkHWer(
					YMM0,
					EVEX_Vfmadd213pd_VY_k1z_HY_WY_b,
					TupleFull256,
					false,
					true,
				),
				newEVEXVkHWer(
					ZMM0,
					EVEX_Vfmadd213pd_VZ_k1z_HZ_WZ_er_b,
					TupleFull512,
					false,
					true,
				),
			),
		),
		invalid,
		invalid,
	),
	0xa9: newMandatoryPrefix2(
		invalid,
		newW(
			newEVEXVkHWer(
				XMM0,
				EVEX_Vfmadd213ss_VX_k1z_HX_WX_er,
				Tuple1Scalar,
				false,
				false,
			),
			newEVEXVkHWer(
				XMM0,
				EVEX_Vfmadd213sd_VX_k1z_HX_WX_er,
				Tuple1Scalar,
				false,
				false,
			),
		),
		invalid,
		invalid,
	),
	0xaa: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEXer(
				newEVEXVkHWer(
					XMM0,
					EVEX_Vfmsub213ps_VX_k1z_HX_WX_b,
					TupleFull128,
					false,
					true,
				),
				newEVEXVkHWer(
					YMM0,
					EVEX_Vfmsub213ps_VY_k1z_HY_WY_b,
					TupleFull256,
					false,
					true,
				),
				newEVEXVkHWer(
					ZMM0,
					EVEX_Vfmsub213ps_VZ_k1z_HZ_WZ_er_b,
					TupleFull512,
					false,
					true,
				),
			),
			newVectorLengthEVEXer(
				newEVEXVkHWer(
					XMM0,
					EVEX_Vfmsub213pd_VX_k1z_HX_WX_b,
					TupleFull128,
					false,
					true,
				),
				newEVEXVkHWer(
					YMM0,
					EVEX_Vfmsub213pd_VY_k1z_HY_WY_b,
					TupleFull256,
					false,
					true,
				),
				newEVEXVkHWer(
					ZMM0,
					EVEX_Vfmsub213pd_VZ_k1z_HZ_WZ_er_b,
					TupleFull512,
					false,
					true,
				),
			),
		),
		invalid,
		newW(newEVEXVkHM(ZMM0, EVEX_V4fnmaddps_VZ_k1z_HZP3_M, TupleFullMemX4), invalid),
	),
	0xab: newMandatoryPrefix2(
		invalid,
		newW(
			newEVEXVkHWer(
				XMM0,
				EVEX_Vfmsub213ss_VX_k1z_HX_WX_er,
				Tuple1Scalar,
				false,
				false,
			),
			newEVEXVkHWer(
				XMM0,
				EVEX_Vfmsub213sd_VX_k1z_HX_WX_er,
				Tuple1Scalar,
				false,
				false,
			),
		),
		invalid,
		newW(newEVEXVkHM(XMM0, EVEX_V4fnmaddss_VX_k1z_HXP3_M, TupleFullMemX4), invalid),
	),
	0xac: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEXer(
				newEVEXVkHWer(
					XMM0,
					EVEX_Vfnmadd213ps_VX_k1z_HX_WX_b,
					TupleFull128,
					false,
					true,
				),
				newEVEXVkHWer(
					YMM0,
					EVEX_Vfnmadd213ps_VY_k1z_HY_WY_b,
					TupleFull256,
					false,
					true,
				),
				newEVEXVkHWer(
					ZMM0,
					EVEX_Vfnmadd213ps_VZ_k1z_HZ_WZ_er_b,
					TupleFull512,
					false,
					true,
				),
			),
			newVectorLengthEVEXer(
				newEVEXVkHWer(
					XMM0,
					EVEX_Vfnmadd213pd_VX_k1z_HX_WX_b,
					TupleFull128,
					false,
					true,
				),
				newEVEXVkHWer(
					YMM0,
					EVEX_Vfnmadd213pd_VY_k1z_HY_WY_b,
					TupleFull256,
					false,
					true,
				),
				newEVEXVkHWer(
					ZMM0,
					EVEX_Vfnmadd213pd_VZ_k1z_HZ_WZ_er_b,
					TupleFull512,
					false,
					true,
				),
			),
		),
		invalid,
		invalid,
	),
	0xad: newMandatoryPrefix2(
		invalid,
		newW(
			newEVEXVkHWer(
				XMM0,
				EVEX_Vfnmadd213ss_VX_k1z_HX_WX_er,
				Tuple1Scalar,
				false,
				false,
			),
			newEVEXVkHWer(
				XMM0,
				EVEX_Vfnmadd213sd_VX_k1z_HX_WX_er,
				Tuple1Scalar,
				false,
				false,
			),
		),
		invalid,
		invalid,
	),
	0xae: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEXer(
				newEVEXVkHWer(
					XMM0,
					EVEX_Vfnmsub213ps_VX_k1z_HX_WX_b,
					TupleFull128,
					false,
					true,
				),
				newEVEXVkHWer(
					YMM0,
					EVEX_Vfnmsub213ps_VY_k1z_HY_WY_b,
					TupleFull256,
					false,
					true,
				),
				newEVEXVkHWer(
					ZMM0,
					EVEX_Vfnmsub213ps_VZ_k1z_HZ_WZ_er_b,
					TupleFull512,
					false,
					true,
				),
			),
			newVectorLengthEVEXer(
				newEVEXVkHWer(
					XMM0,
					EVEX_Vfnmsub213pd_VX_k1z_HX_WX_b,
					TupleFull128,
					false,
					true,
				),
				newEVEXVkHWer(
					YMM0,
					EVEX_Vfnmsub213pd_VY_k1z_HY_WY_b,
					TupleFull256,
					false,
					true,
				),
				newEVEXVkHWer(
					ZMM0,
					EVEX_Vfnmsub213pd_VZ_k1z_HZ_WZ_er_b,
					TupleFull512,
					false,
					true,
				),
			),
		),
		invalid,
		invalid,
	),
	0xaf: newMandatoryPrefix2(
		invalid,
		newW(
			newEVEXVkHWer(
				XMM0,
				EVEX_Vfnmsub213ss_VX_k1z_HX_WX_er,
				Tuple1Scalar,
				false,
				false,
			),
			newEVEXVkHWer(
				XMM0,
				EVEX_Vfnmsub213sd_VX_k1z_HX_WX_er,
				Tuple1Scalar,
				false,
				false,
			),
		),
		invalid,
		invalid,
	),
	0xb4: newMandatoryPrefix2(
		invalid,
		newW(
			invalid,
			newVectorLengthEVEX(
				newEVEXVkHW(
					XMM0,
					XMM0,
					XMM0,
					EVEX_Vpmadd52luq_VX_k1z_HX_WX_b,
					TupleFull128,
					true,
				),
				newEVEXVkHW(
					YMM0,
					YMM0,
					YMM0,
					EVEX_Vpmadd52luq_VY_k1z_HY_WY_b,
					TupleFull256,
					true,
				),
				newEVEXVkHW(
					ZMM0,
					ZMM0,
					ZMM0,
					EVEX_Vpmadd52luq_VZ_k1z_HZ_WZ_b,
					TupleFull512,
					true,
				),
			),
		),
		invalid,
		invalid,
	),
	0xb5: newMandatoryPrefix2(
		invalid,
		newW(
			invalid,
			newVectorLengthEVEX(
				newEVEXVkHW(
					XMM0,
					XMM0,
					XMM0,
					EVEX_Vpmadd52huq_VX_k1z_HX_WX_b,
					TupleFull128,
					true,
				),
				newEVEXVkHW(
					YMM0,
					YMM0,
					YMM0,
					EVEX_Vpmadd52huq_VY_k1z_HY_WY_b,
					TupleFull256,
					true,
				),
				newEVEXVkHW(
					ZMM0,
					ZMM0,
					ZMM0,
					EVEX_Vpmadd52huq_VZ_k1z_HZ_WZ_b,
					TupleFull512,
					true,
				),
			),
		),
		invalid,
		invalid,
	),
	0xb6: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEXer(
				newEVEXVkHWer(
					XMM0,
					EVEX_Vfmaddsub231ps_VX_k1z_HX_WX_b,
					TupleFull128,
					false,
					true,
				),
				newEVEXVkHWer(
					YMM0,
					EVEX_Vfmaddsub231ps_VY_k1z_HY_WY_b,
					TupleFull256,
					false,
					true,
				),
				newEVEXVkHWer(
					ZMM0,
					EVEX_Vfmaddsub231ps_VZ_k1z_HZ_WZ_er_b,
					TupleFull512,
					false,
					true,
				),
			),
			newVectorLengthEVEXer(
				newEVEXVkHWer(
					XMM0,
					EVEX_Vfmaddsub231pd_VX_k1z_HX_WX_b,
					TupleFull128,
					false,
					true,
				),
				newEVEXVkHWer(
					YMM0,
					EVEX_Vfmaddsub231pd_VY_k1z_HY_WY_b,
					TupleFull256,
					false,
					true,
				),
				newEVEXVkHWer(
					ZMM0,
					EVEX_Vfmaddsub231pd_VZ_k1z_HZ_WZ_er_b,
					TupleFull512,
					false,
					true,
				),
			),
		),
		invalid,
		invalid,
	),
	0xb7: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEXer(
				newEVEXVkHWer(
					XMM0,
					EVEX_Vfmsubadd231ps_VX_k1z_HX_WX_b,
					TupleFull128,
					false,
					true,
				),
				newEVEXVkHWer(
					YMM0,
					EVEX_Vfmsubadd231ps_VY_k1z_HY_WY_b,
					TupleFull256,
					false,
					true,
				),
				newEVEXVkHWer(
					ZMM0,
					EVEX_Vfmsubadd231ps_VZ_k1z_HZ_WZ_er_b,
					TupleFull512,
					false,
					true,
				),
			),
			newVectorLengthEVEXer(
				newEVEXVkHWer(
					XMM0,
					EVEX_Vfmsubadd231pd_VX_k1z_HX_WX_b,
					TupleFull128,
					false,
					true,
				),
				newEVEXVkHWer(
					YMM0,
					EVEX_Vfmsubadd231pd_VY_k1z_HY_WY_b,
					TupleFull256,
					false,
					true,
				),
				newEVEXVkHWer(
					ZMM0,
					EVEX_Vfmsubadd231pd_VZ_k1z_HZ_WZ_er_b,
					TupleFull512,
					false,
					true,
				),
			),
		),
		invalid,
		invalid,
	),
	0xb8: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEXer(
				newEVEXVkHWer(
					XMM0,
					EVEX_Vfmadd231ps_VX_k1z_HX_WX_b,
					TupleFull128,
					false,
					true,
				),
				newEVEXVkHWer(
					YMM0,
					EVEX_Vfmadd231ps_VY_k1z_HY_WY_b,
					TupleFull256,
					false,
					true,
				),
				newEVEXVkHWer(
					ZMM0,
					EVEX_Vfmadd231ps_VZ_k1z_HZ_WZ_er_b,
					TupleFull512,
					false,
					true,
				),
			),
			newVectorLengthEVEXer(
				newEVEXVkHWer(
					XMM0,
					EVEX_Vfmadd231pd_VX_k1z_HX_WX_b,
					TupleFull128,
					false,
					true,
				),
				newEVEXVkHWer(
					YMM0,
					EVEX_Vfmadd231pd_VY_k1z_HY_WY_b,
					TupleFull256,
					false,
					true,
				),
				newEVEXVkHWer(
					ZMM0,
					EVEX_Vfmadd231pd_VZ_k1z_HZ_WZ_er_b,
					TupleFull512,
					false,
					true,
				),
			),
		),
		invalid,
		invalid,
	),
	0xb9: newMandatoryPrefix2(
		invalid,
		newW(
			newEVEXVkHWer(
				XMM0,
				EVEX_Vfmadd231ss_VX_k1z_HX_WX_er,
				Tuple1Scalar,
				false,
				false,
			),
			newEVEXVkHWer(
				XMM0,
				EVEX_Vfmadd231sd_VX_k1z_HX_WX_er,
				Tuple1Scalar,
				false,
				false,
			),
		),
		invalid,
		invalid,
	),
	0xba: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEXer(
				newEVEXVkHWer(
					XMM0,
					EVEX_Vfmsub231ps_VX_k1z_HX_WX_b,
					TupleFull128,
					false,
					true,
				),
				newEVEXVkHWer(
					YMM0,
					EVEX_Vfmsub231ps_VY_k1z_HY_WY_b,
					TupleFull256,
					false,
					true,
				),
				newEVEXVkHWer(
					ZMM0,
					EVEX_Vfmsub231ps_VZ_k1z_HZ_WZ_er_b,
					TupleFull512,
					false,
					true,
				),
			),
			newVectorLengthEVEXer(
				newEVEXVkHWer(
					XMM0,
					EVEX_Vfmsub231pd_VX_k1z_HX_WX_b,
					TupleFull128,
					false,
					true,
				),
				newEVEXVkHWer(
					YMM0,
					EVEX_Vfmsub231pd_VY_k1z_HY_WY_b,
					TupleFull256,
					false,
					true,
				),
				newEVEXVkHWer(
					ZMM0,
					EVEX_Vfmsub231pd_VZ_k1z_HZ_WZ_er_b,
					TupleFull512,
					false,
					true,
				),
			),
		),
		invalid,
		invalid,
	),
	0xbb: newMandatoryPrefix2(
		invalid,
		newW(
			newEVEXVkHWer(
				XMM0,
				EVEX_Vfmsub231ss_VX_k1z_HX_WX_er,
				Tuple1Scalar,
				false,
				false,
			),
			newEVEXVkHWer(
				XMM0,
				EVEX_Vfmsub231sd_VX_k1z_HX_WX_er,
				Tuple1Scalar,
				false,
				false,
			),
		),
		invalid,
		invalid,
	),
	0xbc: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEXer(
				newEVEXVkHWer(
					XMM0,
					EVEX_Vfnmadd231ps_VX_k1z_HX_WX_b,
					TupleFull128,
					false,
					true,
				),
				newEVEXVkHWer(
					YMM0,
					EVEX_Vfnmadd231ps_VY_k1z_HY_WY_b,
					TupleFull256,
					false,
					true,
				),
				newEVEXVkHWer(
					ZMM0,
					EVEX_Vfnmadd231ps_VZ_k1z_HZ_WZ_er_b,
					TupleFull512,
					false,
					true,
				),
			),
			newVectorLengthEVEXer(
				newEVEXVkHWer(
					XMM0,
					EVEX_Vfnmadd231pd_VX_k1z_HX_WX_b,
					TupleFull128,
					false,
					true,
				),
				newEVEXVkHWer(
					YMM0,
					EVEX_Vfnmadd231pd_VY_k1z_HY_WY_b,
					TupleFull256,
					false,
					true,
				),
				newEVEXVkHWer(
					ZMM0,
					EVEX_Vfnmadd231pd_VZ_k1z_HZ_WZ_er_b,
					TupleFull512,
					false,
					true,
				),
			),
		),
		invalid,
		invalid,
	),
	0xbd: newMandatoryPrefix2(
		invalid,
		newW(
			newEVEXVkHWer(
				XMM0,
				EVEX_Vfnmadd231ss_VX_k1z_HX_WX_er,
				Tuple1Scalar,
				false,
				false,
			),
			newEVEXVkHWer(
				XMM0,
				EVEX_Vfnmadd231sd_VX_k1z_HX_WX_er,
				Tuple1Scalar,
				false,
				false,
			),
		),
		invalid,
		invalid,
	),
	0xbe: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEXer(
				newEVEXVkHWer(
					XMM0,
					EVEX_Vfnmsub231ps_VX_k1z_HX_WX_b,
					TupleFull128,
					false,
					true,
				),
				newEVEXVkHWer(
					YMM0,
					EVEX_Vfnmsub231ps_VY_k1z_HY_WY_b,
					TupleFull256,
					false,
					true,
				),
				newEVEXVkHWer(
					ZMM0,
					EVEX_Vfnmsub231ps_VZ_k1z_HZ_WZ_er_b,
					TupleFull512,
					false,
					true,
				),
			),
			newVectorLengthEVEXer(
				newEVEXVkHWer(
					XMM0,
					EVEX_Vfnmsub231pd_VX_k1z_HX_WX_b,
					TupleFull128,
					false,
					true,
				),
				newEVEXVkHWer(
					YMM0,
					EVEX_Vfnmsub231pd_VY_k1z_HY_WY_b,
					TupleFull256,
					false,
					true,
				),
				newEVEXVkHWer(
					ZMM0,
					EVEX_Vfnmsub231pd_VZ_k1z_HZ_WZ_er_b,
					TupleFull512,
					false,
					true,
				),
			),
		),
		invalid,
		invalid,
	),
	0xbf: newMandatoryPrefix2(
		invalid,
		newW(
			newEVEXVkHWer(
				XMM0,
				EVEX_Vfnmsub231ss_VX_k1z_HX_WX_er,
				Tuple1Scalar,
				false,
				false,
			),
			newEVEXVkHWer(
				XMM0,
				EVEX_Vfnmsub231sd_VX_k1z_HX_WX_er,
				Tuple1Scalar,
				false,
				false,
			),
		),
		invalid,
		invalid,
	),
	0xc4: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				newEVEXVkW(
					XMM0,
					XMM0,
					EVEX_Vpconflictd_VX_k1z_WX_b,
					TupleFull128,
					true,
				),
				newEVEXVkW(
					YMM0,
					YMM0,
					EVEX_Vpconflictd_VY_k1z_WY_b,
					TupleFull256,
					true,
				),
				newEVEXVkW(
					ZMM0,
					ZMM0,
					EVEX_Vpconflictd_VZ_k1z_WZ_b,
					TupleFull512,
					true,
				),
			),
			newVectorLengthEVEX(
				newEVEXVkW(
					XMM0,
					XMM0,
					EVEX_Vpconflictq_VX_k1z_WX_b,
					TupleFull128,
					true,
				),
				newEVEXVkW(
					YMM0,
					YMM0,
					EVEX_Vpconflictq_VY_k1z_WY_b,
					TupleFull256,
					true,
				),
				newEVEXVkW(
					ZMM0,
					ZMM0,
					EVEX_Vpconflictq_VZ_k1z_WZ_b,
					TupleFull512,
					true,
				),
			),
		),
		invalid,
		invalid,
	),
	0xc6: newGroup(evexGrp0F38C6),
	0xc7: newGroup(evexGrp0F38C7),
	0xc8: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEXer(
				invalid,
				invalid,
				newEVEXVkWer(
					ZMM0,
					ZMM0,
					EVEX_Vexp2ps_VZ_k1z_WZ_sae_b,
					TupleFull512,
					true,
					true,
				),
			),
			newVectorLengthEVEXer(
				invalid,
				invalid,
				newEVEXVkWer(
					ZMM0,
					ZMM0,
					EVEX_Vexp2pd_VZ_k1z_WZ_sae_b,
					TupleFull512,
					true,
					true,
				),
			),
		),
		invalid,
		invalid,
	),
	0xca: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEXer(
				invalid,
				invalid,
				newEVEXVkWer(
					ZMM0,
					ZMM0,
					EVEX_Vrcp28ps_VZ_k1z_WZ_sae_b,
					TupleFull512,
					true,
					true,
				),
			),
			newVectorLengthEVEXer(
				invalid,
				invalid,
				newEVEXVkWer(
					ZMM0,
					ZMM0,
					EVEX_Vrcp28pd_VZ_k1z_WZ_sae_b,
					TupleFull512,
					true,
					true,
				),
			),
		),
		invalid,
		invalid,
	),
	0xcb: newMandatoryPrefix2(
		invalid,
		newW(
			newEVEXVkHWer(
				XMM0,
				EVEX_Vrcp28ss_VX_k1z_HX_WX_sae,
				Tuple1Scalar,
				true,
				false,
			),
			newEVEXVkHWer(
				XMM0,
				EVEX_Vrcp28sd_VX_k1z_HX_WX_sae,
				Tuple1Scalar,
				true,
				false,
			),
		),
		invalid,
		invalid,
	),
	0xcc: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEXer(
				invalid,
				invalid,
				newEVEXVkWer(
					ZMM0,
					ZMM0,
					EVEX_Vrsqrt28ps_VZ_k1z_WZ_sae_b,
					TupleFull512,
					true,
					true,
				),
			),
			newVectorLengthEVEXer(
				invalid,
				invalid,
				newEVEXVkWer(
					ZMM0,
					ZMM0,
					EVEX_Vrsqrt28pd_VZ_k1z_WZ_sae_b,
					TupleFull512,
					true,
					true,
				),
			),
		),
		invalid,
		invalid,
	),
	0xcd: newMandatoryPrefix2(
		invalid,
		newW(
			newEVEXVkHWer(
				XMM0,
				EVEX_Vrsqrt28ss_VX_k1z_HX_WX_sae,
				Tuple1Scalar,
				true,
				false,
			),
			newEVEXVkHWer(
				XMM0,
				EVEX_Vrsqrt28sd_VX_k1z_HX_WX_sae,
				Tuple1Scalar,
				true,
				false,
			),
		),
		invalid,
		invalid,
	),
})

// evexMap3 holds the EVEX 0F3A map.
var evexMap3 = fillInvalid([256]*handler{
	0x00: newMandatoryPrefix2(
		invalid,
		newW(
			invalid,
			newVectorLengthEVEX(
				invalid,
				newEVEXVkWIb(
					YMM0,
					YMM0,
					EVEX_Vpermq_VY_k1z_WY_Ib_b,
					TupleFull256,
					true,
				),
				newEVEXVkWIb(
					ZMM0,
					ZMM0,
					EVEX_Vpermq_VZ_k1z_WZ_Ib_b,
					TupleFull512,
					true,
				),
			),
		),
		invalid,
		invalid,
	),
	0x01: newMandatoryPrefix2(
		invalid,
		newW(
			invalid,
			newVectorLengthEVEX(
				invalid,
				newEVEXVkWIb(
					YMM0,
					YMM0,
					EVEX_Vpermpd_VY_k1z_WY_Ib_b,
					TupleFull256,
					true,
				),
				newEVEXVkWIb(
					ZMM0,
					ZMM0,
					EVEX_Vpermpd_VZ_k1z_WZ_Ib_b,
					TupleFull512,
					true,
				),
			),
		),
		invalid,
		invalid,
	),
	0x03: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				newEVEXVkHWIb(
					XMM0,
					XMM0,
					XMM0,
					EVEX_Valignd_VX_k1z_HX_WX_Ib_b,
					TupleFull128,
					true,
				),
				newEVEXVkHWIb(
					YMM0,
					YMM0,
					YMM0,
					EVEX_Valignd_VY_k1z_HY_WY_Ib_b,
					TupleFull256,
					true,
				),
				newEVEXVkHWIb(
					ZMM0,
					ZMM0,
					ZMM0,
					EVEX_Valignd_VZ_k1z_HZ_WZ_Ib_b,
					TupleFull512,
					true,
				),
			),
			newVectorLengthEVEX(
				newEVEXVkHWIb(
					XMM0,
					XMM0,
					XMM0,
					EVEX_Valignq_VX_k1z_HX_WX_Ib_b,
					TupleFull128,
					true,
				),
				newEVEXVkHWIb(
					YMM0,
					YMM0,
					YMM0,
					EVEX_Valignq_VY_k1z_HY_WY_Ib_b,
					TupleFull256,
					true,
				),
				newEVEXVkHWIb(
					ZMM0,
					ZMM0,
					ZMM0,
					EVEX_Valignq_VZ_k1z_HZ_WZ_Ib_b,
					TupleFull512,
					true,
				),
			),
		),
		invalid,
		invalid,
	),
	0x04: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				newEVEXVkWIb(
					XMM0,
					XMM0,
					EVEX_Vpermilps_VX_k1z_WX_Ib_b,
					TupleFull128,
					true,
				),
				newEVEXVkWIb(
					YMM0,
					YMM0,
					EVEX_Vpermilps_VY_k1z_WY_Ib_b,
					TupleFull256,
					true,
				),
				newEVEXVkWIb(
					ZMM0,
					ZMM0,
					EVEX_Vpermilps_VZ_k1z_WZ_Ib_b,
					TupleFull512,
					true,
				),
			),
			invalid,
		),
		invalid,
		invalid,
	),
	0x05: newMandatoryPrefix2(
		invalid,
		newW(
			invalid,
			newVectorLengthEVEX(
				newEVEXVkWIb(
					XMM0,
					XMM0,
					EVEX_Vpermilpd_VX_k1z_WX_Ib_b,
					TupleFull128,
					true,
				),
				newEVEXVkWIb(
					YMM0,
					YMM0,
					EVEX_Vpermilpd_VY_k1z_WY_Ib_b,
					TupleFull256,
					true,
				),
				newEVEXVkWIb(
					ZMM0,
					ZMM0,
					EVEX_Vpermilpd_VZ_k1z_WZ_Ib_b,
					TupleFull512,
					true,
				),
			),
		),
		invalid,
		invalid,
	),
	0x08: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEXer(
				newEVEXVkWIber(
					XMM0,
					XMM0,
					EVEX_Vrndscaleps_VX_k1z_WX_Ib_b,
					TupleFull128,
					true,
					true,
				),
				newEVEXVkWIber(
					YMM0,
					YMM0,
					EVEX_Vrndscaleps_VY_k1z_WY_Ib_b,
					TupleFull256,
					true,
					true,
				),
				newEVEXVkWIber(
					ZMM0,
					ZMM0,
					EVEX_Vrndscaleps_VZ_k1z_WZ_Ib_sae_b,
					TupleFull512,
					true,
					true,
				),
			),
			invalid,
		),
		invalid,
		invalid,
	),
	0x09: newMandatoryPrefix2(
		invalid,
		newW(
			invalid,
			newVectorLengthEVEXer(
				newEVEXVkWIber(
					XMM0,
					XMM0,
					EVEX_Vrndscalepd_VX_k1z_WX_Ib_b,
					TupleFull128,
					true,
					true,
				),
				newEVEXVkWIber(
					YMM0,
					YMM0,
					EVEX_Vrndscalepd_VY_k1z_WY_Ib_b,
					TupleFull256,
					true,
					true,
				),
				newEVEXVkWIber(
					ZMM0,
					ZMM0,
					EVEX_Vrndscalepd_VZ_k1z_WZ_Ib_sae_b,
					TupleFull512,
					true,
					true,
				),
			),
		),
		invalid,
		invalid,
	),
	0x0a: newMandatoryPrefix2(
		invalid,
		newW(
			newEVEXVkHWIber(
				XMM0,
				EVEX_Vrndscaless_VX_k1z_HX_WX_Ib_sae,
				Tuple1Scalar,
				true,
				false,
			),
			invalid,
		),
		invalid,
		invalid,
	),
	0x0b: newMandatoryPrefix2(
		invalid,
		newW(
			invalid,
			newEVEXVkHWIber(
				XMM0,
				EVEX_Vrndscalesd_VX_k1z_HX_WX_Ib_sae,
				Tuple1Scalar,
				true,
				false,
			),
		),
		invalid,
		invalid,
	),
	0x0f: newMandatoryPrefix2(
		invalid,
		newVectorLengthEVEX(
			newEVEXVkHWIb(
				XMM0,
				XMM0,
				XMM0,
				EVEX_Vpalignr_VX_k1z_HX_WX_Ib,
				TupleFullMem128,
				false,
			),
			newEVEXVkHWIb(
				YMM0,
				YMM0,
				YMM0,
				EVEX_Vpalignr_VY_k1z_HY_WY_Ib,
				TupleFullMem256,
				false,
			),
			newEVEXVkHWIb(
				ZMM0,
				ZMM0,
				ZMM0,
				EVEX_Vpalignr_VZ_k1z_HZ_WZ_Ib,
				TupleFullMem512,
				false,
			),
		),
		invalid,
		invalid,
	),
	0x14: newMandatoryPrefix2(
		invalid,
		newVectorLengthEVEX(
			newEVEXGvMVXIb(
				XMM0,
				EVEX_Vpextrb_RdMb_VX_Ib,
				EVEX_Vpextrb_RqMb_VX_Ib,
				Tuple1Scalar1,
				Tuple1Scalar1,
			),
			invalid,
			invalid,
		),
		invalid,
		invalid,
	),
	0x15: newMandatoryPrefix2(
		invalid,
		newVectorLengthEVEX(
			newEVEXGvMVXIb(
				XMM0,
				EVEX_Vpextrw_RdMw_VX_Ib,
				EVEX_Vpextrw_RqMw_VX_Ib,
				Tuple1Scalar2,
				Tuple1Scalar2,
			),
			invalid,
			invalid,
		),
		invalid,
		invalid,
	),
	0x16: newMandatoryPrefix2(
		invalid,
		newVectorLengthEVEX(
			newEVEXGvMVXIb(
				XMM0,
				EVEX_Vpextrd_Ed_VX_Ib,
				EVEX_Vpextrq_Eq_VX_Ib,
				Tuple1Scalar4,
				Tuple1Scalar8,
			),
			invalid,
			invalid,
		),
		invalid,
		invalid,
	),
	0x17: newMandatoryPrefix2(
		invalid,
		newVectorLengthEVEX(
			newEVEXEdVIb(
				XMM0,
				EVEX_Vextractps_Ed_VX_Ib,
				EVEX_Vextractps_Eq_VX_Ib,
				Tuple1Scalar4,
				Tuple1Scalar4,
			),
			invalid,
			invalid,
		),
		invalid,
		invalid,
	),
	0x18: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				invalid,
				newEVEXVkHWIb(
					YMM0,
					YMM0,
					XMM0,
					EVEX_Vinsertf32x4_VY_k1z_HY_WX_Ib,
					Tuple4,
					false,
				),
				newEVEXVkHWIb(
					ZMM0,
					ZMM0,
					XMM0,
					EVEX_Vinsertf32x4_VZ_k1z_HZ_WX_Ib,
					Tuple4,
					false,
				),
			),
			newVectorLengthEVEX(
				invalid,
				newEVEXVkHWIb(
					YMM0,
					YMM0,
					XMM0,
					EVEX_Vinsertf64x2_VY_k1z_HY_WX_Ib,
					Tuple2,
					false,
				),
				newEVEXVkHWIb(
					ZMM0,
					ZMM0,
					XMM0,
					EVEX_Vinsertf64x2_VZ_k1z_HZ_WX_Ib,
					Tuple2,
					false,
				),
			),
		),
		invalid,
		invalid,
	),
	0x19: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				invalid,
				newEVEXWkVIb(XMM0, YMM0, EVEX_Vextractf32x4_WX_k1z_VY_Ib, Tuple4),
				newEVEXWkVIb(XMM0, ZMM0, EVEX_Vextractf32x4_WX_k1z_VZ_Ib, Tuple4),
			),
			newVectorLengthEVEX(
				invalid,
				newEVEXWkVIb(XMM0, YMM0, EVEX_Vextractf64x2_WX_k1z_VY_Ib, Tuple2),
				newEVEXWkVIb(XMM0, ZMM0, EVEX_Vextractf64x2_WX_k1z_VZ_Ib, Tuple2),
			),
		),
		invalid,
		invalid,
	),
	0x1a: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				invalid,
				invalid,
				newEVEXVkHWIb(
					ZMM0,
					ZMM0,
					YMM0,
					EVEX_Vinsertf32x8_VZ_k1z_HZ_WY_Ib,
					Tuple8,
					false,
				),
			),
			newVectorLengthEVEX(
				invalid,
				invalid,
				newEVEXVkHWIb(
					ZMM0,
					ZMM0,
					YMM0,
					EVEX_Vinsertf64x4_VZ_k1z_HZ_WY_Ib,
					Tuple4,
					false,
				),
			),
		),
		invalid,
		invalid,
	),
	0x1b: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				invalid,
				invalid,
				newEVEXWkVIb(YMM0, ZMM0, EVEX_Vextractf32x8_WY_k1z_VZ_Ib, Tuple8),
			),
			newVectorLengthEVEX(
				invalid,
				invalid,
				newEVEXWkVIb(YMM0, ZMM0, EVEX_Vextractf64x4_WY_k1z_VZ_Ib, Tuple4),
			),
		),
		invalid,
		invalid,
	),
	0x1d: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEXer(
				newEVEXWkVIber(
					XMM0,
					XMM0,
					EVEX_Vcvtps2ph_WX_k1z_VX_Ib,
					TupleHalfMem128,
					true,
				),
				newEVEXWkVIber(
					XMM0,
					YMM0,
					EVEX_Vcvtps2ph_WX_k1z_VY_Ib,
					TupleHalfMem256,
					true,
				),
				newEVEXWkVIber(
					YMM0,
					ZMM0,
					EVEX_Vcvtps2ph_WY_k1z_VZ_Ib_sae,
					TupleHalfMem512,
					true,
				),
			),
			invalid,
		),
		invalid,
		invalid,
	),
	0x1e: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				newEVEXKkHWIb(
					XMM0,
					EVEX_Vpcmpud_VK_k1_HX_WX_Ib_b,
					TupleFull128,
					true,
				),
				newEVEXKkHWIb(
					YMM0,
					EVEX_Vpcmpud_VK_k1_HY_WY_Ib_b,
					TupleFull256,
					true,
				),
				newEVEXKkHWIb(
					ZMM0,
					EVEX_Vpcmpud_VK_k1_HZ_WZ_Ib_b,
					TupleFull512,
					true,
				),
			),
			newVectorLengthEVEX(
				newEVEXKkHWIb(
					XMM0,
					EVEX_Vpcmpuq_VK_k1_HX_WX_Ib_b,
					TupleFull128,
					true,
				),
				newEVEXKkHWIb(
					YMM0,
					EVEX_Vpcmpuq_VK_k1_HY_WY_Ib_b,
					TupleFull256,
					true,
				),
				newEVEXKkHWIb(
					ZMM0,
					EVEX_Vpcmpuq_VK_k1_HZ_WZ_Ib_b,
					TupleFull512,
					true,
				),
			),
		),
		invalid,
		invalid,
	),
	0x1f: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				newEVEXKkHWIb(
					XMM0,
					EVEX_Vpcmpd_VK_k1_HX_WX_Ib_b,
					TupleFull128,
					true,
				),
				newEVEXKkHWIb(
					YMM0,
					EVEX_Vpcmpd_VK_k1_HY_WY_Ib_b,
					TupleFull256,
					true,
				),
				newEVEXKkHWIb(
					ZMM0,
					EVEX_Vpcmpd_VK_k1_HZ_WZ_Ib_b,
					TupleFull512,
					true,
				),
			),
			newVectorLengthEVEX(
				newEVEXKkHWIb(
					XMM0,
					EVEX_Vpcmpq_VK_k1_HX_WX_Ib_b,
					TupleFull128,
					true,
				),
				newEVEXKkHWIb(
					YMM0,
					EVEX_Vpcmpq_VK_k1_HY_WY_Ib_b,
					TupleFull256,
					true,
				),
				newEVEXKkHWIb(
					ZMM0,
					EVEX_Vpcmpq_VK_k1_HZ_WZ_Ib_b,
					TupleFull512,
					true,
				),
			),
		),
		invalid,
		invalid,
	),
	0x20: newMandatoryPrefix2(
		invalid,
		newVectorLengthEVEX(
			newEVEXVHEvIb(
				XMM0,
				EVEX_Vpinsrb_VX_HX_RdMb_Ib,
				EVEX_Vpinsrb_VX_HX_RqMb_Ib,
				Tuple1Scalar1,
				Tuple1Scalar1,
			),
			invalid,
			invalid,
		),
		invalid,
		invalid,
	),
	0x21: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				newEVEXVHWIb(XMM0, EVEX_Vinsertps_VX_HX_WX_Ib, Tuple1Scalar),
				invalid,
				invalid,
			),
			invalid,
		),
		invalid,
		invalid,
	),
	0x22: newMandatoryPrefix2(
		invalid,
		newVectorLengthEVEX(
			newEVEXVHEvIb(
				XMM0,
				EVEX_Vpinsrd_VX_HX_Ed_Ib,
				EVEX_Vpinsrq_VX_HX_Eq_Ib,
				Tuple1Scalar4,
				Tuple1Scalar8,
			),
			invalid,
			invalid,
		),
		invalid,
		invalid,
	),
	0x23: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				invalid,
				newEVEXVkHWIb(
					YMM0,
					YMM0,
					YMM0,
					EVEX_Vshuff32x4_VY_k1z_HY_WY_Ib_b,
					TupleFull256,
					true,
				),
				newEVEXVkHWIb(
					ZMM0,
					ZMM0,
					ZMM0,
					EVEX_Vshuff32x4_VZ_k1z_HZ_WZ_Ib_b,
					TupleFull512,
					true,
				),
			),
			newVectorLengthEVEX(
				invalid,
				newEVEXVkHWIb(
					YMM0,
					YMM0,
					YMM0,
					EVEX_Vshuff64x2_VY_k1z_HY_WY_Ib_b,
					TupleFull256,
					true,
				),
				newEVEXVkHWIb(
					ZMM0,
					ZMM0,
					ZMM0,
					EVEX_Vshuff64x2_VZ_k1z_HZ_WZ_Ib_b,
					TupleFull512,
					true,
				),
			),
		),
		invalid,
		invalid,
	),
	0x25: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				newEVEXVkHWIb(
					XMM0,
					XMM0,
					XMM0,
					EVEX_Vpternlogd_VX_k1z_HX_WX_Ib_b,
					TupleFull128,
					true,
				),
				newEVEXVkHWIb(
					YMM0,
					YMM0,
					YMM0,
					EVEX_Vpternlogd_VY_k1z_HY_WY_Ib_b,
					TupleFull256,
					true,
				),
				newEVEXVkHWIb(
					ZMM0,
					ZMM0,
					ZMM0,
					EVEX_Vpternlogd_VZ_k1z_HZ_WZ_Ib_b,
					TupleFull512,
					true,
				),
			),
			newVectorLengthEVEX(
				newEVEXVkHWIb(
					XMM0,
					XMM0,
					XMM0,
					EVEX_Vpternlogq_VX_k1z_HX_WX_Ib_b,
					TupleFull128,
					true,
				),
				newEVEXVkHWIb(
					YMM0,
					YMM0,
					YMM0,
					EVEX_Vpternlogq_VY_k1z_HY_WY_Ib_b,
					TupleFull256,
					true,
				),
				newEVEXVkHWIb(
					ZMM0,
					ZMM0,
					ZMM0,
					EVEX_Vpternlogq_VZ_k1z_HZ_WZ_Ib_b,
					TupleFull512,
					true,
				),
			),
		),
		invalid,
		invalid,
	),
	0x26: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEXer(
				newEVEXVkWIber(
					XMM0,
					XMM0,
					EVEX_Vgetmantps_VX_k1z_WX_Ib_b,
					TupleFull128,
					true,
					true,
				),
				newEVEXVkWIber(
					YMM0,
					YMM0,
					EVEX_Vgetmantps_VY_k1z_WY_Ib_b,
					TupleFull256,
					true,
					true,
				),
				newEVEXVkWIber(
					ZMM0,
					ZMM0,
					EVEX_Vgetmantps_VZ_k1z_WZ_Ib_sae_b,
					TupleFull512,
					true,
					true,
				),
			),
			newVectorLengthEVEXer(
				newEVEXVkWIber(
					XMM0,
					XMM0,
					EVEX_Vgetmantpd_VX_k1z_WX_Ib_b,
					TupleFull128,
					true,
					true,
				),
				newEVEXVkWIber(
					YMM0,
					YMM0,
					EVEX_Vgetmantpd_VY_k1z_WY_Ib_b,
					TupleFull256,
					true,
					true,
				),
				newEVEXVkWIber(
					ZMM0,
					ZMM0,
					EVEX_Vgetmantpd_VZ_k1z_WZ_Ib_sae_b,
					TupleFull512,
					true,
					true,
				),
			),
		),
		invalid,
		invalid,
	),
	0x27: newMandatoryPrefix2(
		invalid,
		newW(
			newEVEXVkHWIber(
				XMM0,
				EVEX_Vgetmantss_VX_k1z_HX_WX_Ib_sae,
				Tuple1Scalar,
				true,
				false,
			),
			newEVEXVkHWIber(
				XMM0,
				EVEX_Vgetmantsd_VX_k1z_HX_WX_Ib_sae,
				Tuple1Scalar,
				true,
				false,
			),
		),
		invalid,
		invalid,
	),
	0x38: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				invalid,
				newEVEXVkHWIb(
					YMM0,
					YMM0,
					XMM0,
					EVEX_Vinserti32x4_VY_k1z_HY_WX_Ib,
					Tuple4,
					false,
				),
				newEVEXVkHWIb(
					ZMM0,
					ZMM0,
					XMM0,
					EVEX_Vinserti32x4_VZ_k1z_HZ_WX_Ib,
					Tuple4,
					false,
				),
			),
			newVectorLengthEVEX(
				invalid,
				newEVEXVkHWIb(
					YMM0,
					YMM0,
					XMM0,
					EVEX_Vinserti64x2_VY_k1z_HY_WX_Ib,
					Tuple2,
					false,
				),
				newEVEXVkHWIb(
					ZMM0,
					ZMM0,
					XMM0,
					EVEX_Vinserti64x2_VZ_k1z_HZ_WX_Ib,
					Tuple2,
					false,
				),
			),
		),
		invalid,
		invalid,
	),
	0x39: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				invalid,
				newEVEXWkVIb(XMM0, YMM0, EVEX_Vextracti32x4_WX_k1z_VY_Ib, Tuple4),
				newEVEXWkVIb(XMM0, ZMM0, EVEX_Vextracti32x4_WX_k1z_VZ_Ib, Tuple4),
			),
			newVectorLengthEVEX(
				invalid,
				newEVEXWkVIb(XMM0, YMM0, EVEX_Vextracti64x2_WX_k1z_VY_Ib, Tuple2),
				newEVEXWkVIb(XMM0, ZMM0, EVEX_Vextracti64x2_WX_k1z_VZ_Ib, Tuple2),
			),
		),
		invalid,
		invalid,
	),
	0x3a: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				invalid,
				invalid,
				newEVEXVkHWIb(
					ZMM0,
					ZMM0,
					YMM0,
					EVEX_Vinserti32x8_VZ_k1z_HZ_WY_Ib,
					Tuple8,
					false,
				),
			),
			newVectorLengthEVEX(
				invalid,
				invalid,
				newEVEXVkHWIb(
					ZMM0,
					ZMM0,
					YMM0,
					EVEX_Vinserti64x4_VZ_k1z_HZ_WY_Ib,
					Tuple4,
					false,
				),
			),
		),
		invalid,
		invalid,
	),
	0x3b: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				invalid,
				invalid,
				newEVEXWkVIb(YMM0, ZMM0, EVEX_Vextracti32x8_WY_k1z_VZ_Ib, Tuple8),
			),
			newVectorLengthEVEX(
				invalid,
				invalid,
				newEVEXWkVIb(YMM0, ZMM0, EVEX_Vextracti64x4_WY_k1z_VZ_Ib, Tuple4),
			),
		),
		invalid,
		invalid,
	),
	0x3e: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				newEVEXKkHWIb(
					XMM0,
					EVEX_Vpcmpub_VK_k1_HX_WX_Ib,
					TupleFullMem128,
					false,
				),
				newEVEXKkHWIb(
					YMM0,
					EVEX_Vpcmpub_VK_k1_HY_WY_Ib,
					TupleFullMem256,
					false,
				),
				newEVEXKkHWIb(
					ZMM0,
					EVEX_Vpcmpub_VK_k1_HZ_WZ_Ib,
					TupleFullMem512,
					false,
				),
			),
			newVectorLengthEVEX(
				newEVEXKkHWIb(
					XMM0,
					EVEX_Vpcmpuw_VK_k1_HX_WX_Ib,
					TupleFullMem128,
					false,
				),
				newEVEXKkHWIb(
					YMM0,
					EVEX_Vpcmpuw_VK_k1_HY_WY_Ib,
					TupleFullMem256,
					false,
				),
				newEVEXKkHWIb(
					ZMM0,
					EVEX_Vpcmpuw_VK_k1_HZ_WZ_Ib,
					TupleFullMem512,
					false,
				),
			),
		),
		invalid,
		invalid,
	),
	0x3f: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				newEVEXKkHWIb(
					XMM0,
					EVEX_Vpcmpb_VK_k1_HX_WX_Ib,
					TupleFullMem128,
					false,
				),
				newEVEXKkHWIb(
					YMM0,
					EVEX_Vpcmpb_VK_k1_HY_WY_Ib,
					TupleFullMem256,
					false,
				),
				newEVEXKkHWIb(
					ZMM0,
					EVEX_Vpcmpb_VK_k1_HZ_WZ_Ib,
					TupleFullMem512,
					false,
				),
			),
			newVectorLengthEVEX(
				newEVEXKkHWIb(
					XMM0,
					EVEX_Vpcmpw_VK_k1_HX_WX_Ib,
					TupleFullMem128,
					false,
				),
				newEVEXKkHWIb(
					YMM0,
					EVEX_Vpcmpw_VK_k1_HY_WY_Ib,
					TupleFullMem256,
					false,
				),
				newEVEXKkHWIb(
					ZMM0,
					EVEX_Vpcmpw_VK_k1_HZ_WZ_Ib,
					TupleFullMem512,
					false,
				),
			),
		),
		invalid,
		invalid,
	),
	0x42: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				newEVEXVkHWIb(
					XMM0,
					XMM0,
					XMM0,
					EVEX_Vdbpsadbw_VX_k1z_HX_WX_Ib,
					TupleFullMem128,
					false,
				),
				newEVEXVkHWIb(
					YMM0,
					YMM0,
					YMM0,
					EVEX_Vdbpsadbw_VY_k1z_HY_WY_Ib,
					TupleFullMem256,
					false,
				),
				newEVEXVkHWIb(
					ZMM0,
					ZMM0,
					ZMM0,
					EVEX_Vdbpsadbw_VZ_k1z_HZ_WZ_Ib,
					TupleFullMem512,
					false,
				),
			),
			invalid,
		),
		invalid,
		invalid,
	),
	0x43: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				invalid,
				newEVEXVkHWIb(
					YMM0,
					YMM0,
					YMM0,
					EVEX_Vshufi32x4_VY_k1z_HY_WY_Ib_b,
					TupleFull256,
					true,
				),
				newEVEXVkHWIb(
					ZMM0,
					ZMM0,
					ZMM0,
					EVEX_Vshufi32x4_VZ_k1z_HZ_WZ_Ib_b,
					TupleFull512,
					true,
				),
			),
			newVectorLengthEVEX(
				invalid,
				newEVEXVkHWIb(
					YMM0,
					YMM0,
					YMM0,
					EVEX_Vshufi64x2_VY_k1z_HY_WY_Ib_b,
					TupleFull256,
					true,
				),
				newEVEXVkHWIb(
					ZMM0,
					ZMM0,
					ZMM0,
					EVEX_Vshufi64x2_VZ_k1z_HZ_WZ_Ib_b,
					TupleFull512,
					true,
				),
			),
		),
		invalid,
		invalid,
	),
	0x50: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEXer(
				newEVEXVkHWIber(
					XMM0,
					EVEX_Vrangeps_VX_k1z_HX_WX_Ib_b,
					TupleFull128,
					true,
					true,
				),
				newEVEXVkHWIber(
					YMM0,
					EVEX_Vrangeps_VY_k1z_HY_WY_Ib_b,
					TupleFull256,
					true,
					true,
				),
				newEVEXVkHWIber(
					ZMM0,
					EVEX_Vrangeps_VZ_k1z_HZ_WZ_Ib_sae_b,
					TupleFull512,
					true,
					true,
				),
			),
			newVectorLengthEVEXer(
				newEVEXVkHWIber(
					XMM0,
					EVEX_Vrangepd_VX_k1z_HX_WX_Ib_b,
					TupleFull128,
					true,
					true,
				),
				newEVEXVkHWIber(
					YMM0,
					EVEX_Vrangepd_VY_k1z_HY_WY_Ib_b,
					TupleFull256,
					true,
					true,
				),
				newEVEXVkHWIber(
					ZMM0,
					EVEX_Vrangepd_VZ_k1z_HZ_WZ_Ib_sae_b,
					TupleFull512,
					true,
					true,
				),
			),
		),
		invalid,
		invalid,
	),
	0x51: newMandatoryPrefix2(
		invalid,
		newW(
			newEVEXVkHWIber(
				XMM0,
				EVEX_Vrangess_VX_k1z_HX_WX_Ib_sae,
				Tuple1Scalar,
				true,
				false,
			),
			newEVEXVkHWIber(
				XMM0,
				EVEX_Vrangesd_VX_k1z_HX_WX_Ib_sae,
				Tuple1Scalar,
				true,
				false,
			),
		),
		invalid,
		invalid,
	),
	0x54: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEXer(
				newEVEXVkHWIber(
					XMM0,
					EVEX_Vfixupimmps_VX_k1z_HX_WX_Ib_b,
					TupleFull128,
					true,
					true,
				),
				newEVEXVkHWIber(
					YMM0,
					EVEX_Vfixupimmps_VY_k1z_HY_WY_Ib_b,
					TupleFull256,
					true,
					true,
				),
				newEVEXVkHWIber(
					ZMM0,
					EVEX_Vfixupimmps_VZ_k1z_HZ_WZ_Ib_sae_b,
					TupleFull512,
					true,
					true,
				),
			),
			newVectorLengthEVEXer(
				newEVEXVkHWIber(
					XMM0,
					EVEX_Vfixupimmpd_VX_k1z_HX_WX_Ib_b,
					TupleFull128,
					true,
					true,
				),
				newEVEXVkHWIber(
					YMM0,
					EVEX_Vfixupimmpd_VY_k1z_HY_WY_Ib_b,
					TupleFull256,
					true,
					true,
				),
				newEVEXVkHWIber(
					ZMM0,
					EVEX_Vfixupimmpd_VZ_k1z_HZ_WZ_Ib_sae_b,
					TupleFull512,
					true,
					true,
				),
			),
		),
		invalid,
		invalid,
	),
	0x55: newMandatoryPrefix2(
		invalid,
		newW(
			newEVEXVkHWIber(
				XMM0,
				EVEX_Vfixupimmss_VX_k1z_HX_WX_Ib_sae,
				Tuple1Scalar,
				true,
				false,
			),
			newEVEXVkHWIber(
				XMM0,
				EVEX_Vfixupimmsd_VX_k1z_HX_WX_Ib_sae,
				Tuple1Scalar,
				true,
				false,
			),
		),
		invalid,
		invalid,
	),
	0x56: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEXer(
				newEVEXVkWIber(
					XMM0,
					XMM0,
					EVEX_Vreduceps_VX_k1z_WX_Ib_b,
					TupleFull128,
					true,
					true,
				),
				newEVEXVkWIber(
					YMM0,
					YMM0,
					EVEX_Vreduceps_VY_k1z_WY_Ib_b,
					TupleFull256,
					true,
					true,
				),
				newEVEXVkWIber(
					ZMM0,
					ZMM0,
					EVEX_Vreduceps_VZ_k1z_WZ_Ib_sae_b,
					TupleFull512,
					true,
					true,
				),
			),
			newVectorLengthEVEXer(
				newEVEXVkWIber(
					XMM0,
					XMM0,
					EVEX_Vreducepd_VX_k1z_WX_Ib_b,
					TupleFull128,
					true,
					true,
				),
				newEVEXVkWIber(
					YMM0,
					YMM0,
					EVEX_Vreducepd_VY_k1z_WY_Ib_b,
					TupleFull256,
					true,
					true,
				),
				newEVEXVkWIber(
					ZMM0,
					ZMM0,
					EVEX_Vreducepd_VZ_k1z_WZ_Ib_sae_b,
					TupleFull512,
					true,
					true,
				),
			),
		),
		invalid,
		invalid,
	),
	0x57: newMandatoryPrefix2(
		invalid,
		newW(
			newEVEXVkHWIber(
				XMM0,
				EVEX_Vreducess_VX_k1z_HX_WX_Ib_sae,
				Tuple1Scalar,
				true,
				false,
			),
			newEVEXVkHWIber(
				XMM0,
				EVEX_Vreducesd_VX_k1z_HX_WX_Ib_sae,
				Tuple1Scalar,
				true,
				false,
			),
		),
		invalid,
		invalid,
	),
	0x66: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				newEVEXKkWIb(
					XMM0,
					EVEX_Vfpclassps_VK_k1_WX_Ib_b,
					TupleFull128,
					true,
				),
				newEVEXKkWIb(
					YMM0,
					EVEX_Vfpclassps_VK_k1_WY_Ib_b,
					TupleFull256,
					true,
				),
				newEVEXKkWIb(
					ZMM0,
					EVEX_Vfpclassps_VK_k1_WZ_Ib_b,
					TupleFull512,
					true,
				),
			),
			newVectorLengthEVEX(
				newEVEXKkWIb(
					XMM0,
					EVEX_Vfpclasspd_VK_k1_WX_Ib_b,
					TupleFull128,
					true,
				),
				newEVEXKkWIb(
					YMM0,
					EVEX_Vfpclasspd_VK_k1_WY_Ib_b,
					TupleFull256,
					true,
				),
				newEVEXKkWIb(
					ZMM0,
					EVEX_Vfpclasspd_VK_k1_WZ_Ib_b,
					TupleFull512,
					true,
				),
			),
		),
		invalid,
		invalid,
	),
	0x67: newMandatoryPrefix2(
		invalid,
		newW(
			newEVEXKkWIb(XMM0, EVEX_Vfpclassss_VK_k1_WX_Ib, Tuple1Scalar, false),
			newEVEXKkWIb(XMM0, EVEX_Vfpclasssd_VK_k1_WX_Ib, Tuple1Scalar, false),
		),
		invalid,
		invalid,
	),
})

// evexMap1 holds the EVEX 0F map.
var evexMap1 = fillInvalid([256]*handler{
	0x10: newMandatoryPrefix2(
		newW(
			newVectorLengthEVEX(
				newEVEXVkW(
					XMM0,
					XMM0,
					EVEX_Vmovups_VX_k1z_WX,
					TupleFullMem128,
					false,
				),
				newEVEXVkW(
					YMM0,
					YMM0,
					EVEX_Vmovups_VY_k1z_WY,
					TupleFullMem256,
					false,
				),
				newEVEXVkW(
					ZMM0,
					ZMM0,
					EVEX_Vmovups_VZ_k1z_WZ,
					TupleFullMem512,
					false,
				),
			),
			invalid,
		),
		newW(
			invalid,
			newVectorLengthEVEX(
				newEVEXVkW(
					XMM0,
					XMM0,
					EVEX_Vmovupd_VX_k1z_WX,
					TupleFullMem128,
					false,
				),
				newEVEXVkW(
					YMM0,
					YMM0,
					EVEX_Vmovupd_VY_k1z_WY,
					TupleFullMem256,
					false,
				),
				newEVEXVkW(
					ZMM0,
					ZMM0,
					EVEX_Vmovupd_VZ_k1z_WZ,
					TupleFullMem512,
					false,
				),
			),
		),
		newW(
			newRM(
				newEVEXVkHW(
					XMM0,
					XMM0,
					XMM0,
					EVEX_Vmovss_VX_k1z_HX_RX,
					Tuple1Scalar,
					false,
				),
				newEVEXVkW(XMM0, XMM0, EVEX_Vmovss_VX_k1z_M, Tuple1Scalar, false),
			),
			invalid,
		),
		newW(
			invalid,
			newRM(
				newEVEXVkHW(
					XMM0,
					XMM0,
					XMM0,
					EVEX_Vmovsd_VX_k1z_HX_RX,
					Tuple1Scalar,
					false,
				),
				newEVEXVkW(XMM0, XMM0, EVEX_Vmovsd_VX_k1z_M, Tuple1Scalar, false),
			),
		),
	),
	0x11: newMandatoryPrefix2(
		newW(
			newVectorLengthEVEX(
				newEVEXWkV(XMM0, XMM0, EVEX_Vmovups_WX_k1z_VX, TupleFullMem128),
				newEVEXWkV(YMM0, YMM0, EVEX_Vmovups_WY_k1z_VY, TupleFullMem256),
				newEVEXWkV(ZMM0, ZMM0, EVEX_Vmovups_WZ_k1z_VZ, TupleFullMem512),
			),
			invalid,
		),
		newW(
			invalid,
			newVectorLengthEVEX(
				newEVEXWkV(XMM0, XMM0, EVEX_Vmovupd_WX_k1z_VX, TupleFullMem128),
				newEVEXWkV(YMM0, YMM0, EVEX_Vmovupd_WY_k1z_VY, TupleFullMem256),
				newEVEXWkV(ZMM0, ZMM0, EVEX_Vmovupd_WZ_k1z_VZ, TupleFullMem512),
			),
		),
		newW(
			newRM(
				newEVEXWkHV(XMM0, EVEX_Vmovss_RX_k1z_HX_VX, Tuple1Scalar),
				newEVEXWkV(XMM0, XMM0, EVEX_Vmovss_M_k1_VX, Tuple1Scalar),
			),
			invalid,
		),
		newW(
			invalid,
			newRM(
				newEVEXWkHV(XMM0, EVEX_Vmovsd_RX_k1z_HX_VX, Tuple1Scalar),
				newEVEXWkV(XMM0, XMM0, EVEX_Vmovsd_M_k1_VX, Tuple1Scalar),
			),
		),
	),
	0x12: newMandatoryPrefix2(
		newW(
			newVectorLengthEVEX(
				newEVEXVHW(
					XMM0,
					EVEX_Vmovhlps_VX_HX_RX,
					EVEX_Vmovlps_VX_HX_M,
					Tuple2,
				),
				invalid,
				invalid,
			),
			invalid,
		),
		newW(
			invalid,
			newVectorLengthEVEX(
				newEVEXVHM(XMM0, EVEX_Vmovlpd_VX_HX_M, Tuple1Scalar),
				invalid,
				invalid,
			),
		),
		newW(
			newVectorLengthEVEX(
				newEVEXVkW(
					XMM0,
					XMM0,
					EVEX_Vmovsldup_VX_k1z_WX,
					TupleFullMem128,
					false,
				),
				newEVEXVkW(
					YMM0,
					YMM0,
					EVEX_Vmovsldup_VY_k1z_WY,
					TupleFullMem256,
					false,
				),
				newEVEXVkW(
					ZMM0,
					ZMM0,
					EVEX_Vmovsldup_VZ_k1z_WZ,
					TupleFullMem512,
					false,
				),
			),
			invalid,
		),
		newW(
			invalid,
			newVectorLengthEVEX(
				newEVEXVkW(
					XMM0,
					XMM0,
					EVEX_Vmovddup_VX_k1z_WX,
					TupleMOVDDUP128,
					true,
				),
				newEVEXVkW(
					YMM0,
					YMM0,
					EVEX_Vmovddup_VY_k1z_WY,
					TupleMOVDDUP256,
					true,
				),
				newEVEXVkW(
					ZMM0,
					ZMM0,
					EVEX_Vmovddup_VZ_k1z_WZ,
					TupleMOVDDUP512,
					true,
				),
			),
		),
	),
	0x13: newMandatoryPrefix2(
		newW(
			newVectorLengthEVEX(
				newEVEXMV(XMM0, EVEX_Vmovlps_M_VX, Tuple2),
				invalid,
				invalid,
			),
			invalid,
		),
		newW(
			invalid,
			newVectorLengthEVEX(
				newEVEXMV(XMM0, EVEX_Vmovlpd_M_VX, Tuple1Scalar),
				invalid,
				invalid,
			),
		),
		invalid,
		invalid,
	),
	0x14: newMandatoryPrefix2(
		newW(
			newVectorLengthEVEX(
				newEVEXVkHW(
					XMM0,
					XMM0,
					XMM0,
					EVEX_Vunpcklps_VX_k1z_HX_WX_b,
					TupleFull128,
					true,
				),
				newEVEXVkHW(
					YMM0,
					YMM0,
					YMM0,
					EVEX_Vunpcklps_VY_k1z_HY_WY_b,
					TupleFull256,
					true,
				),
				newEVEXVkHW(
					ZMM0,
					ZMM0,
					ZMM0,
					EVEX_Vunpcklps_VZ_k1z_HZ_WZ_b,
					TupleFull512,
					true,
				),
			),
			invalid,
		),
		newW(
			invalid,
			newVectorLengthEVEX(
				newEVEXVkHW(
					XMM0,
					XMM0,
					XMM0,
					EVEX_Vunpcklpd_VX_k1z_HX_WX_b,
					TupleFull128,
					true,
				),
				newEVEXVkHW(
					YMM0,
					YMM0,
					YMM0,
					EVEX_Vunpcklpd_VY_k1z_HY_WY_b,
					TupleFull256,
					true,
				),
				newEVEXVkHW(
					ZMM0,
					ZMM0,
					ZMM0,
					EVEX_Vunpcklpd_VZ_k1z_HZ_WZ_b,
					TupleFull512,
					true,
				),
			),
		),
		invalid,
		invalid,
	),
	0x15: newMandatoryPrefix2(
		newW(
			newVectorLengthEVEX(
				newEVEXVkHW(
					XMM0,
					XMM0,
					XMM0,
					EVEX_Vunpckhps_VX_k1z_HX_WX_b,
					TupleFull128,
					true,
				),
				newEVEXVkHW(
					YMM0,
					YMM0,
					YMM0,
					EVEX_Vunpckhps_VY_k1z_HY_WY_b,
					TupleFull256,
					true,
				),
				newEVEXVkHW(
					ZMM0,
					ZMM0,
					ZMM0,
					EVEX_Vunpckhps_VZ_k1z_HZ_WZ_b,
					TupleFull512,
					true,
				),
			),
			invalid,
		),
		newW(
			invalid,
			newVectorLengthEVEX(
				newEVEXVkHW(
					XMM0,
					XMM0,
					XMM0,
					EVEX_Vunpckhpd_VX_k1z_HX_WX_b,
					TupleFull128,
					true,
				),
				newEVEXVkHW(
					YMM0,
					YMM0,
					YMM0,
					EVEX_Vunpckhpd_VY_k1z_HY_WY_b,
					TupleFull256,
					true,
				),
				newEVEXVkHW(
					ZMM0,
					ZMM0,
					ZMM0,
					EVEX_Vunpckhpd_VZ_k1z_HZ_WZ_b,
					TupleFull512,
					true,
				),
			),
		),
		invalid,
		invalid,
	),
	0x16: newMandatoryPrefix2(
		newW(
			newVectorLengthEVEX(
				newEVEXVHW(
					XMM0,
					EVEX_Vmovlhps_VX_HX_RX,
					EVEX_Vmovhps_VX_HX_M,
					Tuple2,
				),
				invalid,
				invalid,
			),
			invalid,
		),
		newW(
			invalid,
			newVectorLengthEVEX(
				newEVEXVHM(XMM0, EVEX_Vmovhpd_VX_HX_M, Tuple1Scalar),
				invalid,
				invalid,
			),
		),
		newW(
			newVectorLengthEVEX(
				newEVEXVkW(
					XMM0,
					XMM0,
					EVEX_Vmovshdup_VX_k1z_WX,
					TupleFullMem128,
					false,
				),
				newEVEXVkW(
					YMM0,
					YMM0,
					EVEX_Vmovshdup_VY_k1z_WY,
					TupleFullMem256,
					false,
				),
				newEVEXVkW(
					ZMM0,
					ZMM0,
					EVEX_Vmovshdup_VZ_k1z_WZ,
					TupleFullMem512,
					false,
				),
			),
			invalid,
		),
		invalid,
	),
	0x17: newMandatoryPrefix2(
		newW(
			newVectorLengthEVEX(
				newEVEXMV(XMM0, EVEX_Vmovhps_M_VX, Tuple2),
				invalid,
				invalid,
			),
			invalid,
		),
		newW(
			invalid,
			newVectorLengthEVEX(
				newEVEXMV(XMM0, EVEX_Vmovhpd_M_VX, Tuple1Scalar),
				invalid,
				invalid,
			),
		),
		invalid,
		invalid,
	),
	0x28: newMandatoryPrefix2(
		newW(
			newVectorLengthEVEX(
				newEVEXVkW(
					XMM0,
					XMM0,
					EVEX_Vmovaps_VX_k1z_WX,
					TupleFullMem128,
					false,
				),
				newEVEXVkW(
					YMM0,
					YMM0,
					EVEX_Vmovaps_VY_k1z_WY,
					TupleFullMem256,
					false,
				),
				newEVEXVkW(
					ZMM0,
					ZMM0,
					EVEX_Vmovaps_VZ_k1z_WZ,
					TupleFullMem512,
					false,
				),
			),
			invalid,
		),
		newW(
			invalid,
			newVectorLengthEVEX(
				newEVEXVkW(
					XMM0,
					XMM0,
					EVEX_Vmovapd_VX_k1z_WX,
					TupleFullMem128,
					false,
				),
				newEVEXVkW(
					YMM0,
					YMM0,
					EVEX_Vmovapd_VY_k1z_WY,
					TupleFullMem256,
					false,
				),
				newEVEXVkW(
					ZMM0,
					ZMM0,
					EVEX_Vmovapd_VZ_k1z_WZ,
					TupleFullMem512,
					false,
				),
			),
		),
		invalid,
		invalid,
	),
	0x29: newMandatoryPrefix2(
		newW(
			newVectorLengthEVEX(
				newEVEXWkV(XMM0, XMM0, EVEX_Vmovaps_WX_k1z_VX, TupleFullMem128),
				newEVEXWkV(YMM0, YMM0, EVEX_Vmovaps_WY_k1z_VY, TupleFullMem256),
				newEVEXWkV(ZMM0, ZMM0, EVEX_Vmovaps_WZ_k1z_VZ, TupleFullMem512),
			),
			invalid,
		),
		newW(
			invalid,
			newVectorLengthEVEX(
				newEVEXWkV(XMM0, XMM0, EVEX_Vmovapd_WX_k1z_VX, TupleFullMem128),
				newEVEXWkV(YMM0, YMM0, EVEX_Vmovapd_WY_k1z_VY, TupleFullMem256),
				newEVEXWkV(ZMM0, ZMM0, EVEX_Vmovapd_WZ_k1z_VZ, TupleFullMem512),
			),
		),
		invalid,
		invalid,
	),
	0x2a: newMandatoryPrefix2(
		invalid,
		invalid,
		newEVEXVHEver(
			XMM0,
			EVEX_Vcvtsi2ss_VX_HX_Ed_er,
			EVEX_Vcvtsi2ss_VX_HX_Eq_er,
			Tuple1Scalar,
			false,
			false,
		),
		newEVEXVHEver(
			XMM0,
			EVEX_Vcvtsi2sd_VX_HX_Ed,
			EVEX_Vcvtsi2sd_VX_HX_Eq_er,
			Tuple1Scalar,
			false,
			true,
		),
	),
	0x2b: newMandatoryPrefix2(
		newW(
			newVectorLengthEVEX(
				newEVEXMV(XMM0, EVEX_Vmovntps_M_VX, TupleFullMem128),
				newEVEXMV(YMM0, EVEX_Vmovntps_M_VY, TupleFullMem256),
				newEVEXMV(ZMM0, EVEX_Vmovntps_M_VZ, TupleFullMem512),
			),
			invalid,
		),
		newW(
			invalid,
			newVectorLengthEVEX(
				newEVEXMV(XMM0, EVEX_Vmovntpd_M_VX, TupleFullMem128),
				newEVEXMV(YMM0, EVEX_Vmovntpd_M_VY, TupleFullMem256),
				newEVEXMV(ZMM0, EVEX_Vmovntpd_M_VZ, TupleFullMem512),
			),
		),
		invalid,
		invalid,
	),
	0x2c: newMandatoryPrefix2(
		invalid,
		invalid,
		newEVEXGvWer(
			XMM0,
			EVEX_Vcvttss2si_Gd_WX_sae,
			EVEX_Vcvttss2si_Gq_WX_sae,
			Tuple1Scalar4,
			true,
		),
		newEVEXGvWer(
			XMM0,
			EVEX_Vcvttsd2si_Gd_WX_sae,
			EVEX_Vcvttsd2si_Gq_WX_sae,
			Tuple1Scalar8,
			true,
		),
	),
	0x2d: newMandatoryPrefix2(
		invalid,
		invalid,
		newEVEXGvWer(
			XMM0,
			EVEX_Vcvtss2si_Gd_WX_er,
			EVEX_Vcvtss2si_Gq_WX_er,
			Tuple1Scalar4,
			false,
		),
		newEVEXGvWer(
			XMM0,
			EVEX_Vcvtsd2si_Gd_WX_er,
			EVEX_Vcvtsd2si_Gq_WX_er,
			Tuple1Scalar8,
			false,
		),
	),
	0x2e: newMandatoryPrefix2(
		newW(newEVEXVWer(XMM0, XMM0, EVEX_Vucomiss_VX_WX_sae, Tuple1Scalar, true), invalid),
		newW(invalid, newEVEXVWer(XMM0, XMM0, EVEX_Vucomisd_VX_WX_sae, Tuple1Scalar, true)),
		invalid,
		invalid,
	),
	0x2f: newMandatoryPrefix2(
		newW(newEVEXVWer(XMM0, XMM0, EVEX_Vcomiss_VX_WX_sae, Tuple1Scalar, true), invalid),
		newW(invalid, newEVEXVWer(XMM0, XMM0, EVEX_Vcomisd_VX_WX_sae, Tuple1Scalar, true)),
		invalid,
		invalid,
	),
	0x51: newMandatoryPrefix2(
		newW(
			newVectorLengthEVEXer(
				newEVEXVkWer(
					XMM0,
					XMM0,
					EVEX_Vsqrtps_VX_k1z_WX_b,
					TupleFull128,
					false,
					true,
				),
				newEVEXVkWer(
					YMM0,
					YMM0,
					EVEX_Vsqrtps_VY_k1z_WY_b,
					TupleFull256,
					false,
					true,
				),
				newEVEXVkWer(
					ZMM0,
					ZMM0,
					EVEX_Vsqrtps_VZ_k1z_WZ_er_b,
					TupleFull512,
					false,
					true,
				),
			),
			invalid,
		),
		newW(
			invalid,
			newVectorLengthEVEXer(
				newEVEXVkWer(
					XMM0,
					XMM0,
					EVEX_Vsqrtpd_VX_k1z_WX_b,
					TupleFull128,
					false,
					true,
				),
				newEVEXVkWer(
					YMM0,
					YMM0,
					EVEX_Vsqrtpd_VY_k1z_WY_b,
					TupleFull256,
					false,
					true,
				),
				newEVEXVkWer(
					ZMM0,
					ZMM0,
					EVEX_Vsqrtpd_VZ_k1z_WZ_er_b,
					TupleFull512,
					false,
					true,
				),
			),
		),
		newW(
			newEVEXVkHWer(
				XMM0,
				EVEX_Vsqrtss_VX_k1z_HX_WX_er,
				Tuple1Scalar,
				false,
				false,
			),
			invalid,
		),
		newW(
			invalid,
			newEVEXVkHWer(
				XMM0,
				EVEX_Vsqrtsd_VX_k1z_HX_WX_er,
				Tuple1Scalar,
				false,
				false,
			),
		),
	),
	0x54: newMandatoryPrefix2(
		newW(
			newVectorLengthEVEX(
				newEVEXVkHW(
					XMM0,
					XMM0,
					XMM0,
					EVEX_Vandps_VX_k1z_HX_WX_b,
					TupleFull128,
					true,
				),
				newEVEXVkHW(
					YMM0,
					YMM0,
					YMM0,
					EVEX_Vandps_VY_k1z_HY_WY_b,
					TupleFull256,
					true,
				),
				newEVEXVkHW(
					ZMM0,
					ZMM0,
					ZMM0,
					EVEX_Vandps_VZ_k1z_HZ_WZ_b,
					TupleFull512,
					true,
				),
			),
			invalid,
		),
		newW(
			invalid,
			newVectorLengthEVEX(
				newEVEXVkHW(
					XMM0,
					XMM0,
					XMM0,
					EVEX_Vandpd_VX_k1z_HX_WX_b,
					TupleFull128,
					true,
				),
				newEVEXVkHW(
					YMM0,
					YMM0,
					YMM0,
					EVEX_Vandpd_VY_k1z_HY_WY_b,
					TupleFull256,
					true,
				),
				newEVEXVkHW(
					ZMM0,
					ZMM0,
					ZMM0,
					EVEX_Vandpd_VZ_k1z_HZ_WZ_b,
					TupleFull512,
					true,
				),
			),
		),
		invalid,
		invalid,
	),
	0x55: newMandatoryPrefix2(
		newW(
			newVectorLengthEVEX(
				newEVEXVkHW(
					XMM0,
					XMM0,
					XMM0,
					EVEX_Vandnps_VX_k1z_HX_WX_b,
					TupleFull128,
					true,
				),
				newEVEXVkHW(
					YMM0,
					YMM0,
					YMM0,
					EVEX_Vandnps_VY_k1z_HY_WY_b,
					TupleFull256,
					true,
				),
				newEVEXVkHW(
					ZMM0,
					ZMM0,
					ZMM0,
					EVEX_Vandnps_VZ_k1z_HZ_WZ_b,
					TupleFull512,
					true,
				),
			),
			invalid,
		),
		newW(
			invalid,
			newVectorLengthEVEX(
				newEVEXVkHW(
					XMM0,
					XMM0,
					XMM0,
					EVEX_Vandnpd_VX_k1z_HX_WX_b,
					TupleFull128,
					true,
				),
				newEVEXVkHW(
					YMM0,
					YMM0,
					YMM0,
					EVEX_Vandnpd_VY_k1z_HY_WY_b,
					TupleFull256,
					true,
				),
				newEVEXVkHW(
					ZMM0,
					ZMM0,
					ZMM0,
					EVEX_Vandnpd_VZ_k1z_HZ_WZ_b,
					TupleFull512,
					true,
				),
			),
		),
		invalid,
		invalid,
	),
	0x56: newMandatoryPrefix2(
		newW(
			newVectorLengthEVEX(
				newEVEXVkHW(
					XMM0,
					XMM0,
					XMM0,
					EVEX_Vorps_VX_k1z_HX_WX_b,
					TupleFull128,
					true,
				),
				newEVEXVkHW(
					YMM0,
					YMM0,
					YMM0,
					EVEX_Vorps_VY_k1z_HY_WY_b,
					TupleFull256,
					true,
				),
				newEVEXVkHW(
					ZMM0,
					ZMM0,
					ZMM0,
					EVEX_Vorps_VZ_k1z_HZ_WZ_b,
					TupleFull512,
					true,
				),
			),
			invalid,
		),
		newW(
			invalid,
			newVectorLengthEVEX(
				newEVEXVkHW(
					XMM0,
					XMM0,
					XMM0,
					EVEX_Vorpd_VX_k1z_HX_WX_b,
					TupleFull128,
					true,
				),
				newEVEXVkHW(
					YMM0,
					YMM0,
					YMM0,
					EVEX_Vorpd_VY_k1z_HY_WY_b,
					TupleFull256,
					true,
				),
				newEVEXVkHW(
					ZMM0,
					ZMM0,
					ZMM0,
					EVEX_Vorpd_VZ_k1z_HZ_WZ_b,
					TupleFull512,
					true,
				),
			),
		),
		invalid,
		invalid,
	),
	0x57: newMandatoryPrefix2(
		newW(
			newVectorLengthEVEX(
				newEVEXVkHW(
					XMM0,
					XMM0,
					XMM0,
					EVEX_Vxorps_VX_k1z_HX_WX_b,
					TupleFull128,
					true,
				),
				newEVEXVkHW(
					YMM0,
					YMM0,
					YMM0,
					EVEX_Vxorps_VY_k1z_HY_WY_b,
					TupleFull256,
					true,
				),
				newEVEXVkHW(
					ZMM0,
					ZMM0,
					ZMM0,
					EVEX_Vxorps_VZ_k1z_HZ_WZ_b,
					TupleFull512,
					true,
				),
			),
			invalid,
		),
		newW(
			invalid,
			newVectorLengthEVEX(
				newEVEXVkHW(
					XMM0,
					XMM0,
					XMM0,
					EVEX_Vxorpd_VX_k1z_HX_WX_b,
					TupleFull128,
					true,
				),
				newEVEXVkHW(
					YMM0,
					YMM0,
					YMM0,
					EVEX_Vxorpd_VY_k1z_HY_WY_b,
					TupleFull256,
					true,
				),
				newEVEXVkHW(
					ZMM0,
					ZMM0,
					ZMM0,
					EVEX_Vxorpd_VZ_k1z_HZ_WZ_b,
					TupleFull512,
					true,
				),
			),
		),
		invalid,
		invalid,
	),
	0x58: newMandatoryPrefix2(
		newW(
			newVectorLengthEVEXer(
				newEVEXVkHWer(
					XMM0,
					EVEX_Vaddps_VX_k1z_HX_WX_b,
					TupleFull128,
					false,
					true,
				),
				newEVEXVkHWer(
					YMM0,
					EVEX_Vaddps_VY_k1z_HY_WY_b,
					TupleFull256,
					false,
					true,
				),
				newEVEXVkHWer(
					ZMM0,
					EVEX_Vaddps_VZ_k1z_HZ_WZ_er_b,
					TupleFull512,
					false,
					true,
				),
			),
			invalid,
		),
		newW(
			invalid,
			newVectorLengthEVEXer(
				newEVEXVkHWer(
					XMM0,
					EVEX_Vaddpd_VX_k1z_HX_WX_b,
					TupleFull128,
					false,
					true,
				),
				newEVEXVkHWer(
					YMM0,
					EVEX_Vaddpd_VY_k1z_HY_WY_b,
					TupleFull256,
					false,
					true,
				),
				newEVEXVkHWer(
					ZMM0,
					EVEX_Vaddpd_VZ_k1z_HZ_WZ_er_b,
					TupleFull512,
					false,
					true,
				),
			),
		),
		newW(
			newEVEXVkHWer(XMM0, EVEX_Vaddss_VX_k1z_HX_WX_er, Tuple1Scalar, false, false),
			invalid,
		),
		newW(
			invalid,
			newEVEXVkHWer(XMM0, EVEX_Vaddsd_VX_k1z_HX_WX_er, Tuple1Scalar, false, false),
		),
	),
	0x59: newMandatoryPrefix2(
		newW(
			newVectorLengthEVEXer(
				newEVEXVkHWer(
					XMM0,
					EVEX_Vmulps_VX_k1z_HX_WX_b,
					TupleFull128,
					false,
					true,
				),
				newEVEXVkHWer(
					YMM0,
					EVEX_Vmulps_VY_k1z_HY_WY_b,
					TupleFull256,
					false,
					true,
				),
				newEVEXVkHWer(
					ZMM0,
					EVEX_Vmulps_VZ_k1z_HZ_WZ_er_b,
					TupleFull512,
					false,
					true,
				),
			),
			invalid,
		),
		newW(
			invalid,
			newVectorLengthEVEXer(
				newEVEXVkHWer(
					XMM0,
					EVEX_Vmulpd_VX_k1z_HX_WX_b,
					TupleFull128,
					false,
					true,
				),
				newEVEXVkHWer(
					YMM0,
					EVEX_Vmulpd_VY_k1z_HY_WY_b,
					TupleFull256,
					false,
					true,
				),
				newEVEXVkHWer(
					ZMM0,
					EVEX_Vmulpd_VZ_k1z_HZ_WZ_er_b,
					TupleFull512,
					false,
					true,
				),
			),
		),
		newW(
			newEVEXVkHWer(XMM0, EVEX_Vmulss_VX_k1z_HX_WX_er, Tuple1Scalar, false, false),
			invalid,
		),
		newW(
			invalid,
			newEVEXVkHWer(XMM0, EVEX_Vmulsd_VX_k1z_HX_WX_er, Tuple1Scalar, false, false),
		),
	),
	0x5a: newMandatoryPrefix2(
		newW(
			newVectorLengthEVEXer(
				newEVEXVkWer(
					XMM0,
					XMM0,
					EVEX_Vcvtps2pd_VX_k1z_WX_b,
					TupleHalf128,
					true,
					true,
				),
				newEVEXVkWer(
					YMM0,
					XMM0,
					EVEX_Vcvtps2pd_VY_k1z_WX_b,
					TupleHalf256,
					true,
					true,
				),
				newEVEXVkWer(
					ZMM0,
					YMM0,
					EVEX_Vcvtps2pd_VZ_k1z_WY_sae_b,
					TupleHalf512,
					true,
					true,
				),
			),
			invalid,
		),
		newW(
			invalid,
			newVectorLengthEVEXer(
				newEVEXVkWer(
					XMM0,
					XMM0,
					EVEX_Vcvtpd2ps_VX_k1z_WX_b,
					TupleFull128,
					false,
					true,
				),
				newEVEXVkWer(
					XMM0,
					YMM0,
					EVEX_Vcvtpd2ps_VX_k1z_WY_b,
					TupleFull256,
					false,
					true,
				),
				newEVEXVkWer(
					YMM0,
					ZMM0,
					EVEX_Vcvtpd2ps_VY_k1z_WZ_er_b,
					TupleFull512,
					false,
					true,
				),
			),
		),
		newW(
			newEVEXVkHWer(
				XMM0,
				EVEX_Vcvtss2sd_VX_k1z_HX_WX_sae,
				Tuple1Scalar,
				true,
				false,
			),
			invalid,
		),
		newW(
			invalid,
			newEVEXVkHWer(
				XMM0,
				EVEX_Vcvtsd2ss_VX_k1z_HX_WX_er,
				Tuple1Scalar,
				false,
				false,
			),
		),
	),
	0x5b: newMandatoryPrefix2(
		newW(
			newVectorLengthEVEXer(
				newEVEXVkWer(
					XMM0,
					XMM0,
					EVEX_Vcvtdq2ps_VX_k1z_WX_b,
					TupleFull128,
					false,
					true,
				),
				newEVEXVkWer(
					YMM0,
					YMM0,
					EVEX_Vcvtdq2ps_VY_k1z_WY_b,
					TupleFull256,
					false,
					true,
				),
				newEVEXVkWer(
					ZMM0,
					ZMM0,
					EVEX_Vcvtdq2ps_VZ_k1z_WZ_er_b,
					TupleFull512,
					false,
					true,
				),
			),
			newVectorLengthEVEXer(
				newEVEXVkWer(
					XMM0,
					XMM0,
					EVEX_Vcvtqq2ps_VX_k1z_WX_b,
					TupleFull128,
					false,
					true,
				),
				newEVEXVkWer(
					XMM0,
					YMM0,
					EVEX_Vcvtqq2ps_VX_k1z_WY_b,
					TupleFull256,
					false,
					true,
				),
				newEVEXVkWer(
					YMM0,
					ZMM0,
					EVEX_Vcvtqq2ps_VY_k1z_WZ_er_b,
					TupleFull512,
					false,
					true,
				),
			),
		),
		newW(
			newVectorLengthEVEXer(
				newEVEXVkWer(
					XMM0,
					XMM0,
					EVEX_Vcvtps2dq_VX_k1z_WX_b,
					TupleFull128,
					false,
					true,
				),
				newEVEXVkWer(
					YMM0,
					YMM0,
					EVEX_Vcvtps2dq_VY_k1z_WY_b,
					TupleFull256,
					false,
					true,
				),
				newEVEXVkWer(
					ZMM0,
					ZMM0,
					EVEX_Vcvtps2dq_VZ_k1z_WZ_er_b,
					TupleFull512,
					false,
					true,
				),
			),
			invalid,
		),
		newW(
			newVectorLengthEVEXer(
				newEVEXVkWer(
					XMM0,
					XMM0,
					EVEX_Vcvttps2dq_VX_k1z_WX_b,
					TupleFull128,
					true,
					true,
				),
				newEVEXVkWer(
					YMM0,
					YMM0,
					EVEX_Vcvttps2dq_VY_k1z_WY_b,
					TupleFull256,
					true,
					true,
				),
				newEVEXVkWer(
					ZMM0,
					ZMM0,
					EVEX_Vcvttps2dq_VZ_k1z_WZ_sae_b,
					TupleFull512,
					true,
					true,
				),
			),
			invalid,
		),
		invalid,
	),
	0x5c: newMandatoryPrefix2(
		newW(
			newVectorLengthEVEXer(
				newEVEXVkHWer(
					XMM0,
					EVEX_Vsubps_VX_k1z_HX_WX_b,
					TupleFull128,
					false,
					true,
				),
				newEVEXVkHWer(
					YMM0,
					EVEX_Vsubps_VY_k1z_HY_WY_b,
					TupleFull256,
					false,
					true,
				),
				newEVEXVkHWer(
					ZMM0,
					EVEX_Vsubps_VZ_k1z_HZ_WZ_er_b,
					TupleFull512,
					false,
					true,
				),
			),
			invalid,
		),
		newW(
			invalid,
			newVectorLengthEVEXer(
				newEVEXVkHWer(
					XMM0,
					EVEX_Vsubpd_VX_k1z_HX_WX_b,
					TupleFull128,
					false,
					true,
				),
				newEVEXVkHWer(
					YMM0,
					EVEX_Vsubpd_VY_k1z_HY_WY_b,
					TupleFull256,
					false,
					true,
				),
				newEVEXVkHWer(
					ZMM0,
					EVEX_Vsubpd_VZ_k1z_HZ_WZ_er_b,
					TupleFull512,
					false,
					true,
				),
			),
		),
		newW(
			newEVEXVkHWer(XMM0, EVEX_Vsubss_VX_k1z_HX_WX_er, Tuple1Scalar, false, false),
			invalid,
		),
		newW(
			invalid,
			newEVEXVkHWer(XMM0, EVEX_Vsubsd_VX_k1z_HX_WX_er, Tuple1Scalar, false, false),
		),
	),
	0x5d: newMandatoryPrefix2(
		newW(
			newVectorLengthEVEXer(
				newEVEXVkHWer(
					XMM0,
					EVEX_Vminps_VX_k1z_HX_WX_b,
					TupleFull128,
					true,
					true,
				),
				newEVEXVkHWer(
					YMM0,
					EVEX_Vminps_VY_k1z_HY_WY_b,
					TupleFull256,
					true,
					true,
				),
				newEVEXVkHWer(
					ZMM0,
					EVEX_Vminps_VZ_k1z_HZ_WZ_sae_b,
					TupleFull512,
					true,
					true,
				),
			),
			invalid,
		),
		newW(
			invalid,
			newVectorLengthEVEXer(
				newEVEXVkHWer(
					XMM0,
					EVEX_Vminpd_VX_k1z_HX_WX_b,
					TupleFull128,
					true,
					true,
				),
				newEVEXVkHWer(
					YMM0,
					EVEX_Vminpd_VY_k1z_HY_WY_b,
					TupleFull256,
					true,
					true,
				),
				newEVEXVkHWer(
					ZMM0,
					EVEX_Vminpd_VZ_k1z_HZ_WZ_sae_b,
					TupleFull512,
					true,
					true,
				),
			),
		),
		newW(
			newEVEXVkHWer(XMM0, EVEX_Vminss_VX_k1z_HX_WX_sae, Tuple1Scalar, true, false),
			invalid,
		),
		newW(
			invalid,
			newEVEXVkHWer(XMM0, EVEX_Vminsd_VX_k1z_HX_WX_sae, Tuple1Scalar, true, false),
		),
	),
	0x5e: newMandatoryPrefix2(
		newW(
			newVectorLengthEVEXer(
				newEVEXVkHWer(
					XMM0,
					EVEX_Vdivps_VX_k1z_HX_WX_b,
					TupleFull128,
					false,
					true,
				),
				newEVEXVkHWer(
					YMM0,
					EVEX_Vdivps_VY_k1z_HY_WY_b,
					TupleFull256,
					false,
					true,
				),
				newEVEXVkHWer(
					ZMM0,
					EVEX_Vdivps_VZ_k1z_HZ_WZ_er_b,
					TupleFull512,
					false,
					true,
				),
			),
			invalid,
		),
		newW(
			invalid,
			newVectorLengthEVEXer(
				newEVEXVkHWer(
					XMM0,
					EVEX_Vdivpd_VX_k1z_HX_WX_b,
					TupleFull128,
					false,
					true,
				),
				newEVEXVkHWer(
					YMM0,
					EVEX_Vdivpd_VY_k1z_HY_WY_b,
					TupleFull256,
					false,
					true,
				),
				newEVEXVkHWer(
					ZMM0,
					EVEX_Vdivpd_VZ_k1z_HZ_WZ_er_b,
					TupleFull512,
					false,
					true,
				),
			),
		),
		newW(
			newEVEXVkHWer(XMM0, EVEX_Vdivss_VX_k1z_HX_WX_er, Tuple1Scalar, false, false),
			invalid,
		),
		newW(
			invalid,
			newEVEXVkHWer(XMM0, EVEX_Vdivsd_VX_k1z_HX_WX_er, Tuple1Scalar, false, false),
		),
	),
	0x5f: newMandatoryPrefix2(
		newW(
			newVectorLengthEVEXer(
				newEVEXVkHWer(
					XMM0,
					EVEX_Vmaxps_VX_k1z_HX_WX_b,
					TupleFull128,
					true,
					true,
				),
				newEVEXVkHWer(
					YMM0,
					EVEX_Vmaxps_VY_k1z_HY_WY_b,
					TupleFull256,
					true,
					true,
				),
				newEVEXVkHWer(
					ZMM0,
					EVEX_Vmaxps_VZ_k1z_HZ_WZ_sae_b,
					TupleFull512,
					true,
					true,
				),
			),
			invalid,
		),
		newW(
			invalid,
			newVectorLengthEVEXer(
				newEVEXVkHWer(
					XMM0,
					EVEX_Vmaxpd_VX_k1z_HX_WX_b,
					TupleFull128,
					true,
					true,
				),
				newEVEXVkHWer(
					YMM0,
					EVEX_Vmaxpd_VY_k1z_HY_WY_b,
					TupleFull256,
					true,
					true,
				),
				newEVEXVkHWer(
					ZMM0,
					EVEX_Vmaxpd_VZ_k1z_HZ_WZ_sae_b,
					TupleFull512,
					true,
					true,
				),
			),
		),
		newW(
			newEVEXVkHWer(XMM0, EVEX_Vmaxss_VX_k1z_HX_WX_sae, Tuple1Scalar, true, false),
			invalid,
		),
		newW(
			invalid,
			newEVEXVkHWer(XMM0, EVEX_Vmaxsd_VX_k1z_HX_WX_sae, Tuple1Scalar, true, false),
		),
	),
	0x60: newMandatoryPrefix2(
		invalid,
		newVectorLengthEVEX(
			newEVEXVkHW(
				XMM0,
				XMM0,
				XMM0,
				EVEX_Vpunpcklbw_VX_k1z_HX_WX,
				TupleFullMem128,
				false,
			),
			newEVEXVkHW(
				YMM0,
				YMM0,
				YMM0,
				EVEX_Vpunpcklbw_VY_k1z_HY_WY,
				TupleFullMem256,
				false,
			),
			newEVEXVkHW(
				ZMM0,
				ZMM0,
				ZMM0,
				EVEX_Vpunpcklbw_VZ_k1z_HZ_WZ,
				TupleFullMem512,
				false,
			),
		),
		invalid,
		invalid,
	),
	0x61: newMandatoryPrefix2(
		invalid,
		newVectorLengthEVEX(
			newEVEXVkHW(
				XMM0,
				XMM0,
				XMM0,
				EVEX_Vpunpcklwd_VX_k1z_HX_WX,
				TupleFullMem128,
				false,
			),
			newEVEXVkHW(
				YMM0,
				YMM0,
				YMM0,
				EVEX_Vpunpcklwd_VY_k1z_HY_WY,
				TupleFullMem256,
				false,
			),
			newEVEXVkHW(
				ZMM0,
				ZMM0,
				ZMM0,
				EVEX_Vpunpcklwd_VZ_k1z_HZ_WZ,
				TupleFullMem512,
				false,
			),
		),
		invalid,
		invalid,
	),
	0x62: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				newEVEXVkHW(
					XMM0,
					XMM0,
					XMM0,
					EVEX_Vpunpckldq_VX_k1z_HX_WX_b,
					TupleFull128,
					true,
				),
				newEVEXVkHW(
					YMM0,
					YMM0,
					YMM0,
					EVEX_Vpunpckldq_VY_k1z_HY_WY_b,
					TupleFull256,
					true,
				),
				newEVEXVkHW(
					ZMM0,
					ZMM0,
					ZMM0,
					EVEX_Vpunpckldq_VZ_k1z_HZ_WZ_b,
					TupleFull512,
					true,
				),
			),
			invalid,
		),
		invalid,
		invalid,
	),
	0x63: newMandatoryPrefix2(
		invalid,
		newVectorLengthEVEX(
			newEVEXVkHW(
				XMM0,
				XMM0,
				XMM0,
				EVEX_Vpacksswb_VX_k1z_HX_WX,
				TupleFullMem128,
				false,
			),
			newEVEXVkHW(
				YMM0,
				YMM0,
				YMM0,
				EVEX_Vpacksswb_VY_k1z_HY_WY,
				TupleFullMem256,
				false,
			),
			newEVEXVkHW(
				ZMM0,
				ZMM0,
				ZMM0,
				EVEX_Vpacksswb_VZ_k1z_HZ_WZ,
				TupleFullMem512,
				false,
			),
		),
		invalid,
		invalid,
	),
	0x64: newMandatoryPrefix2(
		invalid,
		newVectorLengthEVEX(
			newEVEXKkHW(XMM0, EVEX_Vpcmpgtb_VK_k1_HX_WX, TupleFullMem128, false),
			newEVEXKkHW(YMM0, EVEX_Vpcmpgtb_VK_k1_HY_WY, TupleFullMem256, false),
			newEVEXKkHW(ZMM0, EVEX_Vpcmpgtb_VK_k1_HZ_WZ, TupleFullMem512, false),
		),
		invalid,
		invalid,
	),
	0x65: newMandatoryPrefix2(
		invalid,
		newVectorLengthEVEX(
			newEVEXKkHW(XMM0, EVEX_Vpcmpgtw_VK_k1_HX_WX, TupleFullMem128, false),
			newEVEXKkHW(YMM0, EVEX_Vpcmpgtw_VK_k1_HY_WY, TupleFullMem256, false),
			newEVEXKkHW(ZMM0, EVEX_Vpcmpgtw_VK_k1_HZ_WZ, TupleFullMem512, false),
		),
		invalid,
		invalid,
	),
	0x66: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				newEVEXKkHW(XMM0, EVEX_Vpcmpgtd_VK_k1_HX_WX_b, TupleFull128, true),
				newEVEXKkHW(YMM0, EVEX_Vpcmpgtd_VK_k1_HY_WY_b, TupleFull256, true),
				newEVEXKkHW(ZMM0, EVEX_Vpcmpgtd_VK_k1_HZ_WZ_b, TupleFull512, true),
			),
			invalid,
		),
		invalid,
		invalid,
	),
	0x67: newMandatoryPrefix2(
		invalid,
		newVectorLengthEVEX(
			newEVEXVkHW(
				XMM0,
				XMM0,
				XMM0,
				EVEX_Vpackuswb_VX_k1z_HX_WX,
				TupleFullMem128,
				false,
			),
			newEVEXVkHW(
				YMM0,
				YMM0,
				YMM0,
				EVEX_Vpackuswb_VY_k1z_HY_WY,
				TupleFullMem256,
				false,
			),
			newEVEXVkHW(
				ZMM0,
				ZMM0,
				ZMM0,
				EVEX_Vpackuswb_VZ_k1z_HZ_WZ,
				TupleFullMem512,
				false,
			),
		),
		invalid,
		invalid,
	),
	0x68: newMandatoryPrefix2(
		invalid,
		newVectorLengthEVEX(
			newEVEXVkHW(
				XMM0,
				XMM0,
				XMM0,
				EVEX_Vpunpckhbw_VX_k1z_HX_WX,
				TupleFullMem128,
				false,
			),
			newEVEXVkHW(
				YMM0,
				YMM0,
				YMM0,
				EVEX_Vpunpckhbw_VY_k1z_HY_WY,
				TupleFullMem256,
				false,
			),
			newEVEXVkHW(
				ZMM0,
				ZMM0,
				ZMM0,
				EVEX_Vpunpckhbw_VZ_k1z_HZ_WZ,
				TupleFullMem512,
				false,
			),
		),
		invalid,
		invalid,
	),
	0x69: newMandatoryPrefix2(
		invalid,
		newVectorLengthEVEX(
			newEVEXVkHW(
				XMM0,
				XMM0,
				XMM0,
				EVEX_Vpunpckhwd_VX_k1z_HX_WX,
				TupleFullMem128,
				false,
			),
			newEVEXVkHW(
				YMM0,
				YMM0,
				YMM0,
				EVEX_Vpunpckhwd_VY_k1z_HY_WY,
				TupleFullMem256,
				false,
			),
			newEVEXVkHW(
				ZMM0,
				ZMM0,
				ZMM0,
				EVEX_Vpunpckhwd_VZ_k1z_HZ_WZ,
				TupleFullMem512,
				false,
			),
		),
		invalid,
		invalid,
	),
	0x6a: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				newEVEXVkHW(
					XMM0,
					XMM0,
					XMM0,
					EVEX_Vpunpckhdq_VX_k1z_HX_WX_b,
					TupleFull128,
					true,
				),
				newEVEXVkHW(
					YMM0,
					YMM0,
					YMM0,
					EVEX_Vpunpckhdq_VY_k1z_HY_WY_b,
					TupleFull256,
					true,
				),
				newEVEXVkHW(
					ZMM0,
					ZMM0,
					ZMM0,
					EVEX_Vpunpckhdq_VZ_k1z_HZ_WZ_b,
					TupleFull512,
					true,
				),
			),
			invalid,
		),
		invalid,
		invalid,
	),
	0x6b: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				newEVEXVkHW(
					XMM0,
					XMM0,
					XMM0,
					EVEX_Vpackssdw_VX_k1z_HX_WX_b,
					TupleFull128,
					true,
				),
				newEVEXVkHW(
					YMM0,
					YMM0,
					YMM0,
					EVEX_Vpackssdw_VY_k1z_HY_WY_b,
					TupleFull256,
					true,
				),
				newEVEXVkHW(
					ZMM0,
					ZMM0,
					ZMM0,
					EVEX_Vpackssdw_VZ_k1z_HZ_WZ_b,
					TupleFull512,
					true,
				),
			),
			invalid,
		),
		invalid,
		invalid,
	),
	0x6c: newMandatoryPrefix2(
		invalid,
		newW(
			invalid,
			newVectorLengthEVEX(
				newEVEXVkHW(
					XMM0,
					XMM0,
					XMM0,
					EVEX_Vpunpcklqdq_VX_k1z_HX_WX_b,
					TupleFull128,
					true,
				),
				newEVEXVkHW(
					YMM0,
					YMM0,
					YMM0,
					EVEX_Vpunpcklqdq_VY_k1z_HY_WY_b,
					TupleFull256,
					true,
				),
				newEVEXVkHW(
					ZMM0,
					ZMM0,
					ZMM0,
					EVEX_Vpunpcklqdq_VZ_k1z_HZ_WZ_b,
					TupleFull512,
					true,
				),
			),
		),
		invalid,
		invalid,
	),
	0x6d: newMandatoryPrefix2(
		invalid,
		newW(
			invalid,
			newVectorLengthEVEX(
				newEVEXVkHW(
					XMM0,
					XMM0,
					XMM0,
					EVEX_Vpunpckhqdq_VX_k1z_HX_WX_b,
					TupleFull128,
					true,
				),
				newEVEXVkHW(
					YMM0,
					YMM0,
					YMM0,
					EVEX_Vpunpckhqdq_VY_k1z_HY_WY_b,
					TupleFull256,
					true,
				),
				newEVEXVkHW(
					ZMM0,
					ZMM0,
					ZMM0,
					EVEX_Vpunpckhqdq_VZ_k1z_HZ_WZ_b,
					TupleFull512,
					true,
				),
			),
		),
		invalid,
		invalid,
	),
	0x6e: newMandatoryPrefix2(
		invalid,
		newVectorLengthEVEX(
			newEVEXVXEv(EVEX_Vmovd_VX_Ed, EVEX_Vmovq_VX_Eq, Tuple1Scalar),
			invalid,
			invalid,
		),
		invalid,
		invalid,
	),
	0x6f: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				newEVEXVkW(
					XMM0,
					XMM0,
					EVEX_Vmovdqa32_VX_k1z_WX,
					TupleFullMem128,
					false,
				),
				newEVEXVkW(
					YMM0,
					YMM0,
					EVEX_Vmovdqa32_VY_k1z_WY,
					TupleFullMem256,
					false,
				),
				newEVEXVkW(
					ZMM0,
					ZMM0,
					EVEX_Vmovdqa32_VZ_k1z_WZ,
					TupleFullMem512,
					false,
				),
			),
			newVectorLengthEVEX(
				newEVEXVkW(
					XMM0,
					XMM0,
					EVEX_Vmovdqa64_VX_k1z_WX,
					TupleFullMem128,
					false,
				),
				newEVEXVkW(
					YMM0,
					YMM0,
					EVEX_Vmovdqa64_VY_k1z_WY,
					TupleFullMem256,
					false,
				),
				newEVEXVkW(
					ZMM0,
					ZMM0,
					EVEX_Vmovdqa64_VZ_k1z_WZ,
					TupleFullMem512,
					false,
				),
			),
		),
		newW(
			newVectorLengthEVEX(
				newEVEXVkW(
					XMM0,
					XMM0,
					EVEX_Vmovdqu32_VX_k1z_WX,
					TupleFullMem128,
					false,
				),
				newEVEXVkW(
					YMM0,
					YMM0,
					EVEX_Vmovdqu32_VY_k1z_WY,
					TupleFullMem256,
					false,
				),
				newEVEXVkW(
					ZMM0,
					ZMM0,
					EVEX_Vmovdqu32_VZ_k1z_WZ,
					TupleFullMem512,
					false,
				),
			),
			newVectorLengthEVEX(
				newEVEXVkW(
					XMM0,
					XMM0,
					EVEX_Vmovdqu64_VX_k1z_WX,
					TupleFullMem128,
					false,
				),
				newEVEXVkW(
					YMM0,
					YMM0,
					EVEX_Vmovdqu64_VY_k1z_WY,
					TupleFullMem256,
					false,
				),
				newEVEXVkW(
					ZMM0,
					ZMM0,
					EVEX_Vmovdqu64_VZ_k1z_WZ,
					TupleFullMem512,
					false,
				),
			),
		),
		newW(
			newVectorLengthEVEX(
				newEVEXVkW(
					XMM0,
					XMM0,
					EVEX_Vmovdqu8_VX_k1z_WX,
					TupleFullMem128,
					false,
				),
				newEVEXVkW(
					YMM0,
					YMM0,
					EVEX_Vmovdqu8_VY_k1z_WY,
					TupleFullMem256,
					false,
				),
				newEVEXVkW(
					ZMM0,
					ZMM0,
					EVEX_Vmovdqu8_VZ_k1z_WZ,
					TupleFullMem512,
					false,
				),
			),
			newVectorLengthEVEX(
				newEVEXVkW(
					XMM0,
					XMM0,
					EVEX_Vmovdqu16_VX_k1z_WX,
					TupleFullMem128,
					false,
				),
				newEVEXVkW(
					YMM0,
					YMM0,
					EVEX_Vmovdqu16_VY_k1z_WY,
					TupleFullMem256,
					false,
				),
				newEVEXVkW(
					ZMM0,
					ZMM0,
					EVEX_Vmovdqu16_VZ_k1z_WZ,
					TupleFullMem512,
					false,
				),
			),
		),
	),
	0x70: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				newEVEXVkWIb(
					XMM0,
					XMM0,
					EVEX_Vpshufd_VX_k1z_WX_Ib_b,
					TupleFull128,
					true,
				),
				newEVEXVkWIb(
					YMM0,
					YMM0,
					EVEX_Vpshufd_VY_k1z_WY_Ib_b,
					TupleFull256,
					true,
				),
				newEVEXVkWIb(
					ZMM0,
					ZMM0,
					EVEX_Vpshufd_VZ_k1z_WZ_Ib_b,
					TupleFull512,
					true,
				),
			),
			invalid,
		),
		newVectorLengthEVEX(
			newEVEXVkWIb(XMM0, XMM0, EVEX_Vpshufhw_VX_k1z_WX_Ib, TupleFullMem128, false),
			newEVEXVkWIb(YMM0, YMM0, EVEX_Vpshufhw_VY_k1z_WY_Ib, TupleFullMem256, false),
			newEVEXVkWIb(ZMM0, ZMM0, EVEX_Vpshufhw_VZ_k1z_WZ_Ib, TupleFullMem512, false),
		),
		newVectorLengthEVEX(
			newEVEXVkWIb(XMM0, XMM0, EVEX_Vpshuflw_VX_k1z_WX_Ib, TupleFullMem128, false),
			newEVEXVkWIb(YMM0, YMM0, EVEX_Vpshuflw_VY_k1z_WY_Ib, TupleFullMem256, false),
			newEVEXVkWIb(ZMM0, ZMM0, EVEX_Vpshuflw_VZ_k1z_WZ_Ib, TupleFullMem512, false),
		),
	),
	0x71: newGroup(evexGrp0F71),
	0x72: newGroup(evexGrp0F72),
	0x73: newGroup(evexGrp0F73),
	0x74: newMandatoryPrefix2(
		invalid,
		newVectorLengthEVEX(
			newEVEXKkHW(XMM0, EVEX_Vpcmpeqb_VK_k1_HX_WX, TupleFullMem128, false),
			newEVEXKkHW(YMM0, EVEX_Vpcmpeqb_VK_k1_HY_WY, TupleFullMem256, false),
			newEVEXKkHW(ZMM0, EVEX_Vpcmpeqb_VK_k1_HZ_WZ, TupleFullMem512, false),
		),
		invalid,
		invalid,
	),
	0x75: newMandatoryPrefix2(
		invalid,
		newVectorLengthEVEX(
			newEVEXKkHW(XMM0, EVEX_Vpcmpeqw_VK_k1_HX_WX, TupleFullMem128, false),
			newEVEXKkHW(YMM0, EVEX_Vpcmpeqw_VK_k1_HY_WY, TupleFullMem256, false),
			newEVEXKkHW(ZMM0, EVEX_Vpcmpeqw_VK_k1_HZ_WZ, TupleFullMem512, false),
		),
		invalid,
		invalid,
	),
	0x76: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				newEVEXKkHW(XMM0, EVEX_Vpcmpeqd_VK_k1_HX_WX_b, TupleFull128, true),
				newEVEXKkHW(YMM0, EVEX_Vpcmpeqd_VK_k1_HY_WY_b, TupleFull256, true),
				newEVEXKkHW(ZMM0, EVEX_Vpcmpeqd_VK_k1_HZ_WZ_b, TupleFull512, true),
			),
			invalid,
		),
		invalid,
		invalid,
	),
	0x78: newMandatoryPrefix2(
		newW(
			newVectorLengthEVEXer(
				newEVEXVkWer(
					XMM0,
					XMM0,
					EVEX_Vcvttps2udq_VX_k1z_WX_b,
					TupleFull128,
					true,
					true,
				),
				newEVEXVkWer(
					YMM0,
					YMM0,
					EVEX_Vcvttps2udq_VY_k1z_WY_b,
					TupleFull256,
					true,
					true,
				),
				newEVEXVkWer(
					ZMM0,
					ZMM0,
					EVEX_Vcvttps2udq_VZ_k1z_WZ_sae_b,
					TupleFull512,
					true,
					true,
				),
			),
			newVectorLengthEVEXer(
				newEVEXVkWer(
					XMM0,
					XMM0,
					EVEX_Vcvttpd2udq_VX_k1z_WX_b,
					TupleFull128,
					true,
					true,
				),
				newEVEXVkWer(
					XMM0,
					YMM0,
					EVEX_Vcvttpd2udq_VX_k1z_WY_b,
					TupleFull256,
					true,
					true,
				),
				newEVEXVkWer(
					YMM0,
					ZMM0,
					EVEX_Vcvttpd2udq_VY_k1z_WZ_sae_b,
					TupleFull512,
					true,
					true,
				),
			),
		),
		newW(
			newVectorLengthEVEXer(
				newEVEXVkWer(
					XMM0,
					XMM0,
					EVEX_Vcvttps2uqq_VX_k1z_WX_b,
					TupleHalf128,
					true,
					true,
				),
				newEVEXVkWer(
					YMM0,
					XMM0,
					EVEX_Vcvttps2uqq_VY_k1z_WX_b,
					TupleHalf256,
					true,
					true,
				),
				newEVEXVkWer(
					ZMM0,
					YMM0,
					EVEX_Vcvttps2uqq_VZ_k1z_WY_sae_b,
					TupleHalf512,
					true,
					true,
				),
			),
			newVectorLengthEVEXer(
				newEVEXVkWer(
					XMM0,
					XMM0,
					EVEX_Vcvttpd2uqq_VX_k1z_WX_b,
					TupleFull128,
					true,
					true,
				),
				newEVEXVkWer(
					YMM0,
					YMM0,
					EVEX_Vcvttpd2uqq_VY_k1z_WY_b,
					TupleFull256,
					true,
					true,
				),
				newEVEXVkWer(
					ZMM0,
					ZMM0,
					EVEX_Vcvttpd2uqq_VZ_k1z_WZ_sae_b,
					TupleFull512,
					true,
					true,
				),
			),
		),
		newEVEXGvWer(
			XMM0,
			EVEX_Vcvttss2usi_Gd_WX_sae,
			EVEX_Vcvttss2usi_Gq_WX_sae,
			Tuple1Fixed4,
			true,
		),
		newEVEXGvWer(
			XMM0,
			EVEX_Vcvttsd2usi_Gd_WX_sae,
			EVEX_Vcvttsd2usi_Gq_WX_sae,
			Tuple1Fixed8,
			true,
		),
	),
	0x79: newMandatoryPrefix2(
		newW(
			newVectorLengthEVEXer(
				newEVEXVkWer(
					XMM0,
					XMM0,
					EVEX_Vcvtps2udq_VX_k1z_WX_b,
					TupleFull128,
					false,
					true,
				),
				newEVEXVkWer(
					YMM0,
					YMM0,
					EVEX_Vcvtps2udq_VY_k1z_WY_b,
					TupleFull256,
					false,
					true,
				),
				newEVEXVkWer(
					ZMM0,
					ZMM0,
					EVEX_Vcvtps2udq_VZ_k1z_WZ_er_b,
					TupleFull512,
					false,
					true,
				),
			),
			newVectorLengthEVEXer(
				newEVEXVkWer(
					XMM0,
					XMM0,
					EVEX_Vcvtpd2udq_VX_k1z_WX_b,
					TupleFull128,
					false,
					true,
				),
				newEVEXVkWer(
					XMM0,
					YMM0,
					EVEX_Vcvtpd2udq_VX_k1z_WY_b,
					TupleFull256,
					false,
					true,
				),
				newEVEXVkWer(
					YMM0,
					ZMM0,
					EVEX_Vcvtpd2udq_VY_k1z_WZ_er_b,
					TupleFull512,
					false,
					true,
				),
			),
		),
		newW(
			newVectorLengthEVEXer(
				newEVEXVkWer(
					XMM0,
					XMM0,
					EVEX_Vcvtps2uqq_VX_k1z_WX_b,
					TupleHalf128,
					false,
					true,
				),
				newEVEXVkWer(
					YMM0,
					XMM0,
					EVEX_Vcvtps2uqq_VY_k1z_WX_b,
					TupleHalf256,
					false,
					true,
				),
				newEVEXVkWer(
					ZMM0,
					YMM0,
					EVEX_Vcvtps2uqq_VZ_k1z_WY_er_b,
					TupleHalf512,
					false,
					true,
				),
			),
			newVectorLengthEVEXer(
				newEVEXVkWer(
					XMM0,
					XMM0,
					EVEX_Vcvtpd2uqq_VX_k1z_WX_b,
					TupleFull128,
					false,
					true,
				),
				newEVEXVkWer(
					YMM0,
					YMM0,
					EVEX_Vcvtpd2uqq_VY_k1z_WY_b,
					TupleFull256,
					false,
					true,
				),
				newEVEXVkWer(
					ZMM0,
					ZMM0,
					EVEX_Vcvtpd2uqq_VZ_k1z_WZ_er_b,
					TupleFull512,
					false,
					true,
				),
			),
		),
		newEVEXGvWer(
			XMM0,
			EVEX_Vcvtss2usi_Gd_WX_er,
			EVEX_Vcvtss2usi_Gq_WX_er,
			Tuple1Fixed4,
			false,
		),
		newEVEXGvWer(
			XMM0,
			EVEX_Vcvtsd2usi_Gd_WX_er,
			EVEX_Vcvtsd2usi_Gq_WX_er,
			Tuple1Fixed8,
			false,
		),
	),
	0x7a: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEXer(
				newEVEXVkWer(
					XMM0,
					XMM0,
					EVEX_Vcvttps2qq_VX_k1z_WX_b,
					TupleHalf128,
					true,
					true,
				),
				newEVEXVkWer(
					YMM0,
					XMM0,
					EVEX_Vcvttps2qq_VY_k1z_WX_b,
					TupleHalf256,
					true,
					true,
				),
				newEVEXVkWer(
					ZMM0,
					YMM0,
					EVEX_Vcvttps2qq_VZ_k1z_WY_sae_b,
					TupleHalf512,
					true,
					true,
				),
			),
			newVectorLengthEVEXer(
				newEVEXVkWer(
					XMM0,
					XMM0,
					EVEX_Vcvttpd2qq_VX_k1z_WX_b,
					TupleFull128,
					true,
					true,
				),
				newEVEXVkWer(
					YMM0,
					YMM0,
					EVEX_Vcvttpd2qq_VY_k1z_WY_b,
					TupleFull256,
					true,
					true,
				),
				newEVEXVkWer(
					ZMM0,
					ZMM0,
					EVEX_Vcvttpd2qq_VZ_k1z_WZ_sae_b,
					TupleFull512,
					true,
					true,
				),
			),
		),
		newW(
			newVectorLengthEVEX(
				newEVEXVkW(
					XMM0,
					XMM0,
					EVEX_Vcvtudq2pd_VX_k1z_WX_b,
					TupleHalf128,
					true,
				),
				newEVEXVkW(
					YMM0,
					XMM0,
					EVEX_Vcvtudq2pd_VY_k1z_WX_b,
					TupleHalf256,
					true,
				),
				newEVEXVkW(
					ZMM0,
					YMM0,
					EVEX_Vcvtudq2pd_VZ_k1z_WY_b,
					TupleHalf512,
					true,
				),
			),
			newVectorLengthEVEXer(
				newEVEXVkWer(
					XMM0,
					XMM0,
					EVEX_Vcvtuqq2pd_VX_k1z_WX_b,
					TupleFull128,
					false,
					true,
				),
				newEVEXVkWer(
					YMM0,
					YMM0,
					EVEX_Vcvtuqq2pd_VY_k1z_WY_b,
					TupleFull256,
					false,
					true,
				),
				newEVEXVkWer(
					ZMM0,
					ZMM0,
					EVEX_Vcvtuqq2pd_VZ_k1z_WZ_er_b,
					TupleFull512,
					false,
					true,
				),
			),
		),
		newW(
			newVectorLengthEVEXer(
				newEVEXVkWer(
					XMM0,
					XMM0,
					EVEX_Vcvtudq2ps_VX_k1z_WX_b,
					TupleFull128,
					false,
					true,
				),
				newEVEXVkWer(
					YMM0,
					YMM0,
					EVEX_Vcvtudq2ps_VY_k1z_WY_b,
					TupleFull256,
					false,
					true,
				),
				newEVEXVkWer(
					ZMM0,
					ZMM0,
					EVEX_Vcvtudq2ps_VZ_k1z_WZ_er_b,
					TupleFull512,
					false,
					true,
				),
			),
			newVectorLengthEVEXer(
				newEVEXVkWer(
					XMM0,
					XMM0,
					EVEX_Vcvtuqq2ps_VX_k1z_WX_b,
					TupleFull128,
					false,
					true,
				),
				newEVEXVkWer(
					XMM0,
					YMM0,
					EVEX_Vcvtuqq2ps_VX_k1z_WY_b,
					TupleFull256,
					false,
					true,
				),
				newEVEXVkWer(
					YMM0,
					ZMM0,
					EVEX_Vcvtuqq2ps_VY_k1z_WZ_er_b,
					TupleFull512,
					false,
					true,
				),
			),
		),
	),
	0x7b: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEXer(
				newEVEXVkWer(
					XMM0,
					XMM0,
					EVEX_Vcvtps2qq_VX_k1z_WX_b,
					TupleHalf128,
					false,
					true,
				),
				newEVEXVkWer(
					YMM0,
					XMM0,
					EVEX_Vcvtps2qq_VY_k1z_WX_b,
					TupleHalf256,
					false,
					true,
				),
				newEVEXVkWer(
					ZMM0,
					YMM0,
					EVEX_Vcvtps2qq_VZ_k1z_WY_er_b,
					TupleHalf512,
					false,
					true,
				),
			),
			newVectorLengthEVEXer(
				newEVEXVkWer(
					XMM0,
					XMM0,
					EVEX_Vcvtpd2qq_VX_k1z_WX_b,
					TupleFull128,
					false,
					true,
				),
				newEVEXVkWer(
					YMM0,
					YMM0,
					EVEX_Vcvtpd2qq_VY_k1z_WY_b,
					TupleFull256,
					false,
					true,
				),
				newEVEXVkWer(
					ZMM0,
					ZMM0,
					EVEX_Vcvtpd2qq_VZ_k1z_WZ_er_b,
					TupleFull512,
					false,
					true,
				),
			),
		),
		newEVEXVHEver(
			XMM0,
			EVEX_Vcvtusi2ss_VX_HX_Ed_er,
			EVEX_Vcvtusi2ss_VX_HX_Eq_er,
			Tuple1Fixed,
			false,
			false,
		),
		newEVEXVHEver(
			XMM0,
			EVEX_Vcvtusi2sd_VX_HX_Ed,
			EVEX_Vcvtusi2sd_VX_HX_Eq_er,
			Tuple1Fixed,
			false,
			true,
		),
	),
	0x7e: newMandatoryPrefix2(
		invalid,
		newVectorLengthEVEX(
			newEVEXEvVX(EVEX_Vmovd_Ed_VX, EVEX_Vmovq_Eq_VX, Tuple1Scalar),
			invalid,
			invalid,
		),
		newW(
			invalid,
			newVectorLengthEVEX(
				newEVEXVW(XMM0, XMM0, EVEX_Vmovq_VX_WX, Tuple1Scalar),
				invalid,
				invalid,
			),
		),
		invalid,
	),
	0x7f: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				newEVEXWkV(XMM0, XMM0, EVEX_Vmovdqa32_WX_k1z_VX, TupleFullMem128),
				newEVEXWkV(YMM0, YMM0, EVEX_Vmovdqa32_WY_k1z_VY, TupleFullMem256),
				newEVEXWkV(ZMM0, ZMM0, EVEX_Vmovdqa32_WZ_k1z_VZ, TupleFullMem512),
			),
			newVectorLengthEVEX(
				newEVEXWkV(XMM0, XMM0, EVEX_Vmovdqa64_WX_k1z_VX, TupleFullMem128),
				newEVEXWkV(YMM0, YMM0, EVEX_Vmovdqa64_WY_k1z_VY, TupleFullMem256),
				newEVEXWkV(ZMM0, ZMM0, EVEX_Vmovdqa64_WZ_k1z_VZ, TupleFullMem512),
			),
		),
		newW(
			newVectorLengthEVEX(
				newEVEXWkV(XMM0, XMM0, EVEX_Vmovdqu32_WX_k1z_VX, TupleFullMem128),
				newEVEXWkV(YMM0, YMM0, EVEX_Vmovdqu32_WY_k1z_VY, TupleFullMem256),
				newEVEXWkV(ZMM0, ZMM0, EVEX_Vmovdqu32_WZ_k1z_VZ, TupleFullMem512),
			),
			newVectorLengthEVEX(
				newEVEXWkV(XMM0, XMM0, EVEX_Vmovdqu64_WX_k1z_VX, TupleFullMem128),
				newEVEXWkV(YMM0, YMM0, EVEX_Vmovdqu64_WY_k1z_VY, TupleFullMem256),
				newEVEXWkV(ZMM0, ZMM0, EVEX_Vmovdqu64_WZ_k1z_VZ, TupleFullMem512),
			),
		),
		newW(
			newVectorLengthEVEX(
				newEVEXWkV(XMM0, XMM0, EVEX_Vmovdqu8_WX_k1z_VX, TupleFullMem128),
				newEVEXWkV(YMM0, YMM0, EVEX_Vmovdqu8_WY_k1z_VY, TupleFullMem256),
				newEVEXWkV(ZMM0, ZMM0, EVEX_Vmovdqu8_WZ_k1z_VZ, TupleFullMem512),
			),
			newVectorLengthEVEX(
				newEVEXWkV(XMM0, XMM0, EVEX_Vmovdqu16_WX_k1z_VX, TupleFullMem128),
				newEVEXWkV(YMM0, YMM0, EVEX_Vmovdqu16_WY_k1z_VY, TupleFullMem256),
				newEVEXWkV(ZMM0, ZMM0, EVEX_Vmovdqu16_WZ_k1z_VZ, TupleFullMem512),
			),
		),
	),
	0xc2: newMandatoryPrefix2(
		newW(
			newVectorLengthEVEXer(
				newEVEXKkHWIbSAE(
					XMM0,
					EVEX_Vcmpps_VK_k1_HX_WX_Ib_b,
					TupleFull128,
					true,
				),
				newEVEXKkHWIbSAE(
					YMM0,
					EVEX_Vcmpps_VK_k1_HY_WY_Ib_b,
					TupleFull256,
					true,
				),
				newEVEXKkHWIbSAE(
					ZMM0,
					EVEX_Vcmpps_VK_k1_HZ_WZ_Ib_sae_b,
					TupleFull512,
					true,
				),
			),
			invalid,
		),
		newW(
			invalid,
			newVectorLengthEVEXer(
				newEVEXKkHWIbSAE(
					XMM0,
					EVEX_Vcmppd_VK_k1_HX_WX_Ib_b,
					TupleFull128,
					true,
				),
				newEVEXKkHWIbSAE(
					YMM0,
					EVEX_Vcmppd_VK_k1_HY_WY_Ib_b,
					TupleFull256,
					true,
				),
				newEVEXKkHWIbSAE(
					ZMM0,
					EVEX_Vcmppd_VK_k1_HZ_WZ_Ib_sae_b,
					TupleFull512,
					true,
				),
			),
		),
		newW(
			newEVEXKkHWIbSAE(XMM0, EVEX_Vcmpss_VK_k1_HX_WX_Ib_sae, Tuple1Scalar, true),
			invalid,
		),
		newW(
			invalid,
			newEVEXKkHWIbSAE(XMM0, EVEX_Vcmpsd_VK_k1_HX_WX_Ib_sae, Tuple1Scalar, true),
		),
	),
	0xc4: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				newEVEXVHEvIb(
					XMM0,
					EVEX_Vpinsrw_VX_HX_RdMw_Ib,
					EVEX_Vpinsrw_VX_HX_RqMw_Ib,
					Tuple1Scalar2,
					Tuple1Scalar2,
				),
				invalid,
				invalid,
			),
			newVectorLengthEVEX(
				newEVEXVHEvIb(
					XMM0,
					EVEX_Vpinsrw_VX_HX_RdMw_Ib,
					EVEX_Vpinsrw_VX_HX_RqMw_Ib,
					Tuple1Scalar2,
					Tuple1Scalar2,
				),
				invalid,
				invalid,
			),
		),
		invalid,
		invalid,
	),
	0xc5: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				newEVEXEvVXIb(XMM0, EVEX_Vpextrw_Gd_RX_Ib, EVEX_Vpextrw_Gq_RX_Ib),
				invalid,
				invalid,
			),
			newVectorLengthEVEX(
				newEVEXEvVXIb(XMM0, EVEX_Vpextrw_Gd_RX_Ib, EVEX_Vpextrw_Gq_RX_Ib),
				invalid,
				invalid,
			),
		),
		invalid,
		invalid,
	),
	0xc6: newMandatoryPrefix2(
		newW(
			newVectorLengthEVEX(
				newEVEXVkHWIb(
					XMM0,
					XMM0,
					XMM0,
					EVEX_Vshufps_VX_k1z_HX_WX_Ib_b,
					TupleFull128,
					true,
				),
				newEVEXVkHWIb(
					YMM0,
					YMM0,
					YMM0,
					EVEX_Vshufps_VY_k1z_HY_WY_Ib_b,
					TupleFull256,
					true,
				),
				newEVEXVkHWIb(
					ZMM0,
					ZMM0,
					ZMM0,
					EVEX_Vshufps_VZ_k1z_HZ_WZ_Ib_b,
					TupleFull512,
					true,
				),
			),
			invalid,
		),
		newW(
			invalid,
			newVectorLengthEVEX(
				newEVEXVkHWIb(
					XMM0,
					XMM0,
					XMM0,
					EVEX_Vshufpd_VX_k1z_HX_WX_Ib_b,
					TupleFull128,
					true,
				),
				newEVEXVkHWIb(
					YMM0,
					YMM0,
					YMM0,
					EVEX_Vshufpd_VY_k1z_HY_WY_Ib_b,
					TupleFull256,
					true,
				),
				newEVEXVkHWIb(
					ZMM0,
					ZMM0,
					ZMM0,
					EVEX_Vshufpd_VZ_k1z_HZ_WZ_Ib_b,
					TupleFull512,
					true,
				),
			),
		),
		invalid,
		invalid,
	),
	0xd1: newMandatoryPrefix2(
		invalid,
		newVectorLengthEVEX(
			newEVEXVkHW(XMM0, XMM0, XMM0, EVEX_Vpsrlw_VX_k1z_HX_WX, TupleMem128, false),
			newEVEXVkHW(YMM0, YMM0, XMM0, EVEX_Vpsrlw_VY_k1z_HY_WX, TupleMem128, false),
			newEVEXVkHW(ZMM0, ZMM0, XMM0, EVEX_Vpsrlw_VZ_k1z_HZ_WX, TupleMem128, false),
		),
		invalid,
		invalid,
	),
	0xd2: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				newEVEXVkHW(
					XMM0,
					XMM0,
					XMM0,
					EVEX_Vpsrld_VX_k1z_HX_WX,
					TupleMem128,
					false,
				),
				newEVEXVkHW(
					YMM0,
					YMM0,
					XMM0,
					EVEX_Vpsrld_VY_k1z_HY_WX,
					TupleMem128,
					false,
				),
				newEVEXVkHW(
					ZMM0,
					ZMM0,
					XMM0,
					EVEX_Vpsrld_VZ_k1z_HZ_WX,
					TupleMem128,
					false,
				),
			),
			invalid,
		),
		invalid,
		invalid,
	),
	0xd3: newMandatoryPrefix2(
		invalid,
		newW(
			invalid,
			newVectorLengthEVEX(
				newEVEXVkHW(
					XMM0,
					XMM0,
					XMM0,
					EVEX_Vpsrlq_VX_k1z_HX_WX,
					TupleMem128,
					false,
				),
				newEVEXVkHW(
					YMM0,
					YMM0,
					XMM0,
					EVEX_Vpsrlq_VY_k1z_HY_WX,
					TupleMem128,
					false,
				),
				newEVEXVkHW(
					ZMM0,
					ZMM0,
					XMM0,
					EVEX_Vpsrlq_VZ_k1z_HZ_WX,
					TupleMem128,
					false,
				),
			),
		),
		invalid,
		invalid,
	),
	0xd4: newMandatoryPrefix2(
		invalid,
		newW(
			invalid,
			newVectorLengthEVEX(
				newEVEXVkHW(
					XMM0,
					XMM0,
					XMM0,
					EVEX_Vpaddq_VX_k1z_HX_WX_b,
					TupleFull128,
					true,
				),
				newEVEXVkHW(
					YMM0,
					YMM0,
					YMM0,
					EVEX_Vpaddq_VY_k1z_HY_WY_b,
					TupleFull256,
					true,
				),
				newEVEXVkHW(
					ZMM0,
					ZMM0,
					ZMM0,
					EVEX_Vpaddq_VZ_k1z_HZ_WZ_b,
					TupleFull512,
					true,
				),
			),
		),
		invalid,
		invalid,
	),
	0xd5: newMandatoryPrefix2(
		invalid,
		newVectorLengthEVEX(
			newEVEXVkHW(
				XMM0,
				XMM0,
				XMM0,
				EVEX_Vpmullw_VX_k1z_HX_WX,
				TupleFullMem128,
				false,
			),
			newEVEXVkHW(
				YMM0,
				YMM0,
				YMM0,
				EVEX_Vpmullw_VY_k1z_HY_WY,
				TupleFullMem256,
				false,
			),
			newEVEXVkHW(
				ZMM0,
				ZMM0,
				ZMM0,
				EVEX_Vpmullw_VZ_k1z_HZ_WZ,
				TupleFullMem512,
				false,
			),
		),
		invalid,
		invalid,
	),
	0xd6: newMandatoryPrefix2(
		invalid,
		newW(
			invalid,
			newVectorLengthEVEX(
				newEVEXWV(XMM0, EVEX_Vmovq_WX_VX, Tuple1Scalar),
				invalid,
				invalid,
			),
		),
		invalid,
		invalid,
	),
	0xd8: newMandatoryPrefix2(
		invalid,
		newVectorLengthEVEX(
			newEVEXVkHW(
				XMM0,
				XMM0,
				XMM0,
				EVEX_Vpsubusb_VX_k1z_HX_WX,
				TupleFullMem128,
				false,
			),
			newEVEXVkHW(
				YMM0,
				YMM0,
				YMM0,
				EVEX_Vpsubusb_VY_k1z_HY_WY,
				TupleFullMem256,
				false,
			),
			newEVEXVkHW(
				ZMM0,
				ZMM0,
				ZMM0,
				EVEX_Vpsubusb_VZ_k1z_HZ_WZ,
				TupleFullMem512,
				false,
			),
		),
		invalid,
		invalid,
	),
	0xd9: newMandatoryPrefix2(
		invalid,
		newVectorLengthEVEX(
			newEVEXVkHW(
				XMM0,
				XMM0,
				XMM0,
				EVEX_Vpsubusw_VX_k1z_HX_WX,
				TupleFullMem128,
				false,
			),
			newEVEXVkHW(
				YMM0,
				YMM0,
				YMM0,
				EVEX_Vpsubusw_VY_k1z_HY_WY,
				TupleFullMem256,
				false,
			),
			newEVEXVkHW(
				ZMM0,
				ZMM0,
				ZMM0,
				EVEX_Vpsubusw_VZ_k1z_HZ_WZ,
				TupleFullMem512,
				false,
			),
		),
		invalid,
		invalid,
	),
	0xda: newMandatoryPrefix2(
		invalid,
		newVectorLengthEVEX(
			newEVEXVkHW(
				XMM0,
				XMM0,
				XMM0,
				EVEX_Vpminub_VX_k1z_HX_WX,
				TupleFullMem128,
				false,
			),
			newEVEXVkHW(
				YMM0,
				YMM0,
				YMM0,
				EVEX_Vpminub_VY_k1z_HY_WY,
				TupleFullMem256,
				false,
			),
			newEVEXVkHW(
				ZMM0,
				ZMM0,
				ZMM0,
				EVEX_Vpminub_VZ_k1z_HZ_WZ,
				TupleFullMem512,
				false,
			),
		),
		invalid,
		invalid,
	),
	0xdb: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				newEVEXVkHW(
					XMM0,
					XMM0,
					XMM0,
					EVEX_Vpandd_VX_k1z_HX_WX_b,
					TupleFull128,
					true,
				),
				newEVEXVkHW(
					YMM0,
					YMM0,
					YMM0,
					EVEX_Vpandd_VY_k1z_HY_WY_b,
					TupleFull256,
					true,
				),
				newEVEXVkHW(
					ZMM0,
					ZMM0,
					ZMM0,
					EVEX_Vpandd_VZ_k1z_HZ_WZ_b,
					TupleFull512,
					true,
				),
			),
			newVectorLengthEVEX(
				newEVEXVkHW(
					XMM0,
					XMM0,
					XMM0,
					EVEX_Vpandq_VX_k1z_HX_WX_b,
					TupleFull128,
					true,
				),
				newEVEXVkHW(
					YMM0,
					YMM0,
					YMM0,
					EVEX_Vpandq_VY_k1z_HY_WY_b,
					TupleFull256,
					true,
				),
				newEVEXVkHW(
					ZMM0,
					ZMM0,
					ZMM0,
					EVEX_Vpandq_VZ_k1z_HZ_WZ_b,
					TupleFull512,
					true,
				),
			),
		),
		invalid,
		invalid,
	),
	0xdc: newMandatoryPrefix2(
		invalid,
		newVectorLengthEVEX(
			newEVEXVkHW(
				XMM0,
				XMM0,
				XMM0,
				EVEX_Vpaddusb_VX_k1z_HX_WX,
				TupleFullMem128,
				false,
			),
			newEVEXVkHW(
				YMM0,
				YMM0,
				YMM0,
				EVEX_Vpaddusb_VY_k1z_HY_WY,
				TupleFullMem256,
				false,
			),
			newEVEXVkHW(
				ZMM0,
				ZMM0,
				ZMM0,
				EVEX_Vpaddusb_VZ_k1z_HZ_WZ,
				TupleFullMem512,
				false,
			),
		),
		invalid,
		invalid,
	),
	0xdd: newMandatoryPrefix2(
		invalid,
		newVectorLengthEVEX(
			newEVEXVkHW(
				XMM0,
				XMM0,
				XMM0,
				EVEX_Vpaddusw_VX_k1z_HX_WX,
				TupleFullMem128,
				false,
			),
			newEVEXVkHW(
				YMM0,
				YMM0,
				YMM0,
				EVEX_Vpaddusw_VY_k1z_HY_WY,
				TupleFullMem256,
				false,
			),
			newEVEXVkHW(
				ZMM0,
				ZMM0,
				ZMM0,
				EVEX_Vpaddusw_VZ_k1z_HZ_WZ,
				TupleFullMem512,
				false,
			),
		),
		invalid,
		invalid,
	),
	0xde: newMandatoryPrefix2(
		invalid,
		newVectorLengthEVEX(
			newEVEXVkHW(
				XMM0,
				XMM0,
				XMM0,
				EVEX_Vpmaxub_VX_k1z_HX_WX,
				TupleFullMem128,
				false,
			),
			newEVEXVkHW(
				YMM0,
				YMM0,
				YMM0,
				EVEX_Vpmaxub_VY_k1z_HY_WY,
				TupleFullMem256,
				false,
			),
			newEVEXVkHW(
				ZMM0,
				ZMM0,
				ZMM0,
				EVEX_Vpmaxub_VZ_k1z_HZ_WZ,
				TupleFullMem512,
				false,
			),
		),
		invalid,
		invalid,
	),
	0xdf: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				newEVEXVkHW(
					XMM0,
					XMM0,
					XMM0,
					EVEX_Vpandnd_VX_k1z_HX_WX_b,
					TupleFull128,
					true,
				),
				newEVEXVkHW(
					YMM0,
					YMM0,
					YMM0,
					EVEX_Vpandnd_VY_k1z_HY_WY_b,
					TupleFull256,
					true,
				),
				newEVEXVkHW(
					ZMM0,
					ZMM0,
					ZMM0,
					EVEX_Vpandnd_VZ_k1z_HZ_WZ_b,
					TupleFull512,
					true,
				),
			),
			newVectorLengthEVEX(
				newEVEXVkHW(
					XMM0,
					XMM0,
					XMM0,
					EVEX_Vpandnq_VX_k1z_HX_WX_b,
					TupleFull128,
					true,
				),
				newEVEXVkHW(
					YMM0,
					YMM0,
					YMM0,
					EVEX_Vpandnq_VY_k1z_HY_WY_b,
					TupleFull256,
					true,
				),
				newEVEXVkHW(
					ZMM0,
					ZMM0,
					ZMM0,
					EVEX_Vpandnq_VZ_k1z_HZ_WZ_b,
					TupleFull512,
					true,
				),
			),
		),
		invalid,
		invalid,
	),
	0xe0: newMandatoryPrefix2(
		invalid,
		newVectorLengthEVEX(
			newEVEXVkHW(
				XMM0,
				XMM0,
				XMM0,
				EVEX_Vpavgb_VX_k1z_HX_WX,
				TupleFullMem128,
				false,
			),
			newEVEXVkHW(
				YMM0,
				YMM0,
				YMM0,
				EVEX_Vpavgb_VY_k1z_HY_WY,
				TupleFullMem256,
				false,
			),
			newEVEXVkHW(
				ZMM0,
				ZMM0,
				ZMM0,
				EVEX_Vpavgb_VZ_k1z_HZ_WZ,
				TupleFullMem512,
				false,
			),
		),
		invalid,
		invalid,
	),
	0xe1: newMandatoryPrefix2(
		invalid,
		newVectorLengthEVEX(
			newEVEXVkHW(XMM0, XMM0, XMM0, EVEX_Vpsraw_VX_k1z_HX_WX, TupleMem128, false),
			newEVEXVkHW(YMM0, YMM0, XMM0, EVEX_Vpsraw_VY_k1z_HY_WX, TupleMem128, false),
			newEVEXVkHW(ZMM0, ZMM0, XMM0, EVEX_Vpsraw_VZ_k1z_HZ_WX, TupleMem128, false),
		),
		invalid,
		invalid,
	),
	0xe2: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				newEVEXVkHW(
					XMM0,
					XMM0,
					XMM0,
					EVEX_Vpsrad_VX_k1z_HX_WX,
					TupleMem128,
					false,
				),
				newEVEXVkHW(
					YMM0,
					YMM0,
					XMM0,
					EVEX_Vpsrad_VY_k1z_HY_WX,
					TupleMem128,
					false,
				),
				newEVEXVkHW(
					ZMM0,
					ZMM0,
					XMM0,
					EVEX_Vpsrad_VZ_k1z_HZ_WX,
					TupleMem128,
					false,
				),
			),
			newVectorLengthEVEX(
				newEVEXVkHW(
					XMM0,
					XMM0,
					XMM0,
					EVEX_Vpsraq_VX_k1z_HX_WX,
					TupleMem128,
					false,
				),
				newEVEXVkHW(
					YMM0,
					YMM0,
					XMM0,
					EVEX_Vpsraq_VY_k1z_HY_WX,
					TupleMem128,
					false,
				),
				newEVEXVkHW(
					ZMM0,
					ZMM0,
					XMM0,
					EVEX_Vpsraq_VZ_k1z_HZ_WX,
					TupleMem128,
					false,
				),
			),
		),
		invalid,
		invalid,
	),
	0xe3: newMandatoryPrefix2(
		invalid,
		newVectorLengthEVEX(
			newEVEXVkHW(
				XMM0,
				XMM0,
				XMM0,
				EVEX_Vpavgw_VX_k1z_HX_WX,
				TupleFullMem128,
				false,
			),
			newEVEXVkHW(
				YMM0,
				YMM0,
				YMM0,
				EVEX_Vpavgw_VY_k1z_HY_WY,
				TupleFullMem256,
				false,
			),
			newEVEXVkHW(
				ZMM0,
				ZMM0,
				ZMM0,
				EVEX_Vpavgw_VZ_k1z_HZ_WZ,
				TupleFullMem512,
				false,
			),
		),
		invalid,
		invalid,
	),
	0xe4: newMandatoryPrefix2(
		invalid,
		newVectorLengthEVEX(
			newEVEXVkHW(
				XMM0,
				XMM0,
				XMM0,
				EVEX_Vpmulhuw_VX_k1z_HX_WX,
				TupleFullMem128,
				false,
			),
			newEVEXVkHW(
				YMM0,
				YMM0,
				YMM0,
				EVEX_Vpmulhuw_VY_k1z_HY_WY,
				TupleFullMem256,
				false,
			),
			newEVEXVkHW(
				ZMM0,
				ZMM0,
				ZMM0,
				EVEX_Vpmulhuw_VZ_k1z_HZ_WZ,
				TupleFullMem512,
				false,
			),
		),
		invalid,
		invalid,
	),
	0xe5: newMandatoryPrefix2(
		invalid,
		newVectorLengthEVEX(
			newEVEXVkHW(
				XMM0,
				XMM0,
				XMM0,
				EVEX_Vpmulhw_VX_k1z_HX_WX,
				TupleFullMem128,
				false,
			),
			newEVEXVkHW(
				YMM0,
				YMM0,
				YMM0,
				EVEX_Vpmulhw_VY_k1z_HY_WY,
				TupleFullMem256,
				false,
			),
			newEVEXVkHW(
				ZMM0,
				ZMM0,
				ZMM0,
				EVEX_Vpmulhw_VZ_k1z_HZ_WZ,
				TupleFullMem512,
				false,
			),
		),
		invalid,
		invalid,
	),
	0xe6: newMandatoryPrefix2(
		invalid,
		newW(
			invalid,
			newVectorLengthEVEXer(
				newEVEXVkWer(
					XMM0,
					XMM0,
					EVEX_Vcvttpd2dq_VX_k1z_WX_b,
					TupleFull128,
					true,
					true,
				),
				newEVEXVkWer(
					XMM0,
					YMM0,
					EVEX_Vcvttpd2dq_VX_k1z_WY_b,
					TupleFull256,
					true,
					true,
				),
				newEVEXVkWer(
					YMM0,
					ZMM0,
					EVEX_Vcvttpd2dq_VY_k1z_WZ_sae_b,
					TupleFull512,
					true,
					true,
				),
			),
		),
		newW(
			newVectorLengthEVEX(
				newEVEXVkW(
					XMM0,
					XMM0,
					EVEX_Vcvtdq2pd_VX_k1z_WX_b,
					TupleHalf128,
					true,
				),
				newEVEXVkW(
					YMM0,
					XMM0,
					EVEX_Vcvtdq2pd_VY_k1z_WX_b,
					TupleHalf256,
					true,
				),
				newEVEXVkW(
					ZMM0,
					YMM0,
					EVEX_Vcvtdq2pd_VZ_k1z_WY_b,
					TupleHalf512,
					true,
				),
			),
			newVectorLengthEVEXer(
				newEVEXVkWer(
					XMM0,
					XMM0,
					EVEX_Vcvtqq2pd_VX_k1z_WX_b,
					TupleFull128,
					false,
					true,
				),
				newEVEXVkWer(
					YMM0,
					YMM0,
					EVEX_Vcvtqq2pd_VY_k1z_WY_b,
					TupleFull256,
					false,
					true,
				),
				newEVEXVkWer(
					ZMM0,
					ZMM0,
					EVEX_Vcvtqq2pd_VZ_k1z_WZ_er_b,
					TupleFull512,
					false,
					true,
				),
			),
		),
		newW(
			invalid,
			newVectorLengthEVEXer(
				newEVEXVkWer(
					XMM0,
					XMM0,
					EVEX_Vcvtpd2dq_VX_k1z_WX_b,
					TupleFull128,
					false,
					true,
				),
				newEVEXVkWer(
					XMM0,
					YMM0,
					EVEX_Vcvtpd2dq_VX_k1z_WY_b,
					TupleFull256,
					false,
					true,
				),
				newEVEXVkWer(
					YMM0,
					ZMM0,
					EVEX_Vcvtpd2dq_VY_k1z_WZ_er_b,
					TupleFull512,
					false,
					true,
				),
			),
		),
	),
	0xe7: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				newEVEXMV(XMM0, EVEX_Vmovntdq_M_VX, TupleFullMem128),
				newEVEXMV(YMM0, EVEX_Vmovntdq_M_VY, TupleFullMem256),
				newEVEXMV(ZMM0, EVEX_Vmovntdq_M_VZ, TupleFullMem512),
			),
			invalid,
		),
		invalid,
		invalid,
	),
	0xe8: newMandatoryPrefix2(
		invalid,
		newVectorLengthEVEX(
			newEVEXVkHW(
				XMM0,
				XMM0,
				XMM0,
				EVEX_Vpsubsb_VX_k1z_HX_WX,
				TupleFullMem128,
				false,
			),
			newEVEXVkHW(
				YMM0,
				YMM0,
				YMM0,
				EVEX_Vpsubsb_VY_k1z_HY_WY,
				TupleFullMem256,
				false,
			),
			newEVEXVkHW(
				ZMM0,
				ZMM0,
				ZMM0,
				EVEX_Vpsubsb_VZ_k1z_HZ_WZ,
				TupleFullMem512,
				false,
			),
		),
		invalid,
		invalid,
	),
	0xe9: newMandatoryPrefix2(
		invalid,
		newVectorLengthEVEX(
			newEVEXVkHW(
				XMM0,
				XMM0,
				XMM0,
				EVEX_Vpsubsw_VX_k1z_HX_WX,
				TupleFullMem128,
				false,
			),
			newEVEXVkHW(
				YMM0,
				YMM0,
				YMM0,
				EVEX_Vpsubsw_VY_k1z_HY_WY,
				TupleFullMem256,
				false,
			),
			newEVEXVkHW(
				ZMM0,
				ZMM0,
				ZMM0,
				EVEX_Vpsubsw_VZ_k1z_HZ_WZ,
				TupleFullMem512,
				false,
			),
		),
		invalid,
		invalid,
	),
	0xea: newMandatoryPrefix2(
		invalid,
		newVectorLengthEVEX(
			newEVEXVkHW(
				XMM0,
				XMM0,
				XMM0,
				EVEX_Vpminsw_VX_k1z_HX_WX,
				TupleFullMem128,
				false,
			),
			newEVEXVkHW(
				YMM0,
				YMM0,
				YMM0,
				EVEX_Vpminsw_VY_k1z_HY_WY,
				TupleFullMem256,
				false,
			),
			newEVEXVkHW(
				ZMM0,
				ZMM0,
				ZMM0,
				EVEX_Vpminsw_VZ_k1z_HZ_WZ,
				TupleFullMem512,
				false,
			),
		),
		invalid,
		invalid,
	),
	0xeb: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				newEVEXVkHW(
					XMM0,
					XMM0,
					XMM0,
					EVEX_Vpord_VX_k1z_HX_WX_b,
					TupleFull128,
					true,
				),
				newEVEXVkHW(
					YMM0,
					YMM0,
					YMM0,
					EVEX_Vpord_VY_k1z_HY_WY_b,
					TupleFull256,
					true,
				),
				newEVEXVkHW(
					ZMM0,
					ZMM0,
					ZMM0,
					EVEX_Vpord_VZ_k1z_HZ_WZ_b,
					TupleFull512,
					true,
				),
			),
			newVectorLengthEVEX(
				newEVEXVkHW(
					XMM0,
					XMM0,
					XMM0,
					EVEX_Vporq_VX_k1z_HX_WX_b,
					TupleFull128,
					true,
				),
				newEVEXVkHW(
					YMM0,
					YMM0,
					YMM0,
					EVEX_Vporq_VY_k1z_HY_WY_b,
					TupleFull256,
					true,
				),
				newEVEXVkHW(
					ZMM0,
					ZMM0,
					ZMM0,
					EVEX_Vporq_VZ_k1z_HZ_WZ_b,
					TupleFull512,
					true,
				),
			),
		),
		invalid,
		invalid,
	),
	0xec: newMandatoryPrefix2(
		invalid,
		newVectorLengthEVEX(
			newEVEXVkHW(
				XMM0,
				XMM0,
				XMM0,
				EVEX_Vpaddsb_VX_k1z_HX_WX,
				TupleFullMem128,
				false,
			),
			newEVEXVkHW(
				YMM0,
				YMM0,
				YMM0,
				EVEX_Vpaddsb_VY_k1z_HY_WY,
				TupleFullMem256,
				false,
			),
			newEVEXVkHW(
				ZMM0,
				ZMM0,
				ZMM0,
				EVEX_Vpaddsb_VZ_k1z_HZ_WZ,
				TupleFullMem512,
				false,
			),
		),
		invalid,
		invalid,
	),
	0xed: newMandatoryPrefix2(
		invalid,
		newVectorLengthEVEX(
			newEVEXVkHW(
				XMM0,
				XMM0,
				XMM0,
				EVEX_Vpaddsw_VX_k1z_HX_WX,
				TupleFullMem128,
				false,
			),
			newEVEXVkHW(
				YMM0,
				YMM0,
				YMM0,
				EVEX_Vpaddsw_VY_k1z_HY_WY,
				TupleFullMem256,
				false,
			),
			newEVEXVkHW(
				ZMM0,
				ZMM0,
				ZMM0,
				EVEX_Vpaddsw_VZ_k1z_HZ_WZ,
				TupleFullMem512,
				false,
			),
		),
		invalid,
		invalid,
	),
	0xee: newMandatoryPrefix2(
		invalid,
		newVectorLengthEVEX(
			newEVEXVkHW(
				XMM0,
				XMM0,
				XMM0,
				EVEX_Vpmaxsw_VX_k1z_HX_WX,
				TupleFullMem128,
				false,
			),
			newEVEXVkHW(
				YMM0,
				YMM0,
				YMM0,
				EVEX_Vpmaxsw_VY_k1z_HY_WY,
				TupleFullMem256,
				false,
			),
			newEVEXVkHW(
				ZMM0,
				ZMM0,
				ZMM0,
				EVEX_Vpmaxsw_VZ_k1z_HZ_WZ,
				TupleFullMem512,
				false,
			),
		),
		invalid,
		invalid,
	),
	0xef: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				newEVEXVkHW(
					XMM0,
					XMM0,
					XMM0,
					EVEX_Vpxord_VX_k1z_HX_WX_b,
					TupleFull128,
					true,
				),
				newEVEXVkHW(
					YMM0,
					YMM0,
					YMM0,
					EVEX_Vpxord_VY_k1z_HY_WY_b,
					TupleFull256,
					true,
				),
				newEVEXVkHW(
					ZMM0,
					ZMM0,
					ZMM0,
					EVEX_Vpxord_VZ_k1z_HZ_WZ_b,
					TupleFull512,
					true,
				),
			),
			newVectorLengthEVEX(
				newEVEXVkHW(
					XMM0,
					XMM0,
					XMM0,
					EVEX_Vpxorq_VX_k1z_HX_WX_b,
					TupleFull128,
					true,
				),
				newEVEXVkHW(
					YMM0,
					YMM0,
					YMM0,
					EVEX_Vpxorq_VY_k1z_HY_WY_b,
					TupleFull256,
					true,
				),
				newEVEXVkHW(
					ZMM0,
					ZMM0,
					ZMM0,
					EVEX_Vpxorq_VZ_k1z_HZ_WZ_b,
					TupleFull512,
					true,
				),
			),
		),
		invalid,
		invalid,
	),
	0xf1: newMandatoryPrefix2(
		invalid,
		newVectorLengthEVEX(
			newEVEXVkHW(XMM0, XMM0, XMM0, EVEX_Vpsllw_VX_k1z_HX_WX, TupleMem128, false),
			newEVEXVkHW(YMM0, YMM0, XMM0, EVEX_Vpsllw_VY_k1z_HY_WX, TupleMem128, false),
			newEVEXVkHW(ZMM0, ZMM0, XMM0, EVEX_Vpsllw_VZ_k1z_HZ_WX, TupleMem128, false),
		),
		invalid,
		invalid,
	),
	0xf2: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				newEVEXVkHW(
					XMM0,
					XMM0,
					XMM0,
					EVEX_Vpslld_VX_k1z_HX_WX,
					TupleMem128,
					false,
				),
				newEVEXVkHW(
					YMM0,
					YMM0,
					XMM0,
					EVEX_Vpslld_VY_k1z_HY_WX,
					TupleMem128,
					false,
				),
				newEVEXVkHW(
					ZMM0,
					ZMM0,
					XMM0,
					EVEX_Vpslld_VZ_k1z_HZ_WX,
					TupleMem128,
					false,
				),
			),
			invalid,
		),
		invalid,
		invalid,
	),
	0xf3: newMandatoryPrefix2(
		invalid,
		newW(
			invalid,
			newVectorLengthEVEX(
				newEVEXVkHW(
					XMM0,
					XMM0,
					XMM0,
					EVEX_Vpsllq_VX_k1z_HX_WX,
					TupleMem128,
					false,
				),
				newEVEXVkHW(
					YMM0,
					YMM0,
					XMM0,
					EVEX_Vpsllq_VY_k1z_HY_WX,
					TupleMem128,
					false,
				),
				newEVEXVkHW(
					ZMM0,
					ZMM0,
					XMM0,
					EVEX_Vpsllq_VZ_k1z_HZ_WX,
					TupleMem128,
					false,
				),
			),
		),
		invalid,
		invalid,
	),
	0xf4: newMandatoryPrefix2(
		invalid,
		newW(
			invalid,
			newVectorLengthEVEX(
				newEVEXVkHW(
					XMM0,
					XMM0,
					XMM0,
					EVEX_Vpmuludq_VX_k1z_HX_WX_b,
					TupleFull128,
					true,
				),
				newEVEXVkHW(
					YMM0,
					YMM0,
					YMM0,
					EVEX_Vpmuludq_VY_k1z_HY_WY_b,
					TupleFull256,
					true,
				),
				newEVEXVkHW(
					ZMM0,
					ZMM0,
					ZMM0,
					EVEX_Vpmuludq_VZ_k1z_HZ_WZ_b,
					TupleFull512,
					true,
				),
			),
		),
		invalid,
		invalid,
	),
	0xf5: newMandatoryPrefix2(
		invalid,
		newVectorLengthEVEX(
			newEVEXVkHW(
				XMM0,
				XMM0,
				XMM0,
				EVEX_Vpmaddwd_VX_k1z_HX_WX,
				TupleFullMem128,
				false,
			),
			newEVEXVkHW(
				YMM0,
				YMM0,
				YMM0,
				EVEX_Vpmaddwd_VY_k1z_HY_WY,
				TupleFullMem256,
				false,
			),
			newEVEXVkHW(
				ZMM0,
				ZMM0,
				ZMM0,
				EVEX_Vpmaddwd_VZ_k1z_HZ_WZ,
				TupleFullMem512,
				false,
			),
		),
		invalid,
		invalid,
	),
	0xf6: newMandatoryPrefix2(
		invalid,
		newVectorLengthEVEX(
			newEVEXVHW(
				XMM0,
				EVEX_Vpsadbw_VX_HX_WX,
				EVEX_Vpsadbw_VX_HX_WX,
				TupleFullMem128,
			),
			newEVEXVHW(
				YMM0,
				EVEX_Vpsadbw_VY_HY_WY,
				EVEX_Vpsadbw_VY_HY_WY,
				TupleFullMem256,
			),
			newEVEXVHW(
				ZMM0,
				EVEX_Vpsadbw_VZ_HZ_WZ,
				EVEX_Vpsadbw_VZ_HZ_WZ,
				TupleFullMem512,
			),
		),
		invalid,
		invalid,
	),
	0xf8: newMandatoryPrefix2(
		invalid,
		newVectorLengthEVEX(
			newEVEXVkHW(
				XMM0,
				XMM0,
				XMM0,
				EVEX_Vpsubb_VX_k1z_HX_WX,
				TupleFullMem128,
				false,
			),
			newEVEXVkHW(
				YMM0,
				YMM0,
				YMM0,
				EVEX_Vpsubb_VY_k1z_HY_WY,
				TupleFullMem256,
				false,
			),
			newEVEXVkHW(
				ZMM0,
				ZMM0,
				ZMM0,
				EVEX_Vpsubb_VZ_k1z_HZ_WZ,
				TupleFullMem512,
				false,
			),
		),
		invalid,
		invalid,
	),
	0xf9: newMandatoryPrefix2(
		invalid,
		newVectorLengthEVEX(
			newEVEXVkHW(
				XMM0,
				XMM0,
				XMM0,
				EVEX_Vpsubw_VX_k1z_HX_WX,
				TupleFullMem128,
				false,
			),
			newEVEXVkHW(
				YMM0,
				YMM0,
				YMM0,
				EVEX_Vpsubw_VY_k1z_HY_WY,
				TupleFullMem256,
				false,
			),
			newEVEXVkHW(
				ZMM0,
				ZMM0,
				ZMM0,
				EVEX_Vpsubw_VZ_k1z_HZ_WZ,
				TupleFullMem512,
				false,
			),
		),
		invalid,
		invalid,
	),
	0xfa: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				newEVEXVkHW(
					XMM0,
					XMM0,
					XMM0,
					EVEX_Vpsubd_VX_k1z_HX_WX_b,
					TupleFull128,
					true,
				),
				newEVEXVkHW(
					YMM0,
					YMM0,
					YMM0,
					EVEX_Vpsubd_VY_k1z_HY_WY_b,
					TupleFull256,
					true,
				),
				newEVEXVkHW(
					ZMM0,
					ZMM0,
					ZMM0,
					EVEX_Vpsubd_VZ_k1z_HZ_WZ_b,
					TupleFull512,
					true,
				),
			),
			invalid,
		),
		invalid,
		invalid,
	),
	0xfb: newMandatoryPrefix2(
		invalid,
		newW(
			invalid,
			newVectorLengthEVEX(
				newEVEXVkHW(
					XMM0,
					XMM0,
					XMM0,
					EVEX_Vpsubq_VX_k1z_HX_WX_b,
					TupleFull128,
					true,
				),
				newEVEXVkHW(
					YMM0,
					YMM0,
					YMM0,
					EVEX_Vpsubq_VY_k1z_HY_WY_b,
					TupleFull256,
					true,
				),
				newEVEXVkHW(
					ZMM0,
					ZMM0,
					ZMM0,
					EVEX_Vpsubq_VZ_k1z_HZ_WZ_b,
					TupleFull512,
					true,
				),
			),
		),
		invalid,
		invalid,
	),
	0xfc: newMandatoryPrefix2(
		invalid,
		newVectorLengthEVEX(
			newEVEXVkHW(
				XMM0,
				XMM0,
				XMM0,
				EVEX_Vpaddb_VX_k1z_HX_WX,
				TupleFullMem128,
				false,
			),
			newEVEXVkHW(
				YMM0,
				YMM0,
				YMM0,
				EVEX_Vpaddb_VY_k1z_HY_WY,
				TupleFullMem256,
				false,
			),
			newEVEXVkHW(
				ZMM0,
				ZMM0,
				ZMM0,
				EVEX_Vpaddb_VZ_k1z_HZ_WZ,
				TupleFullMem512,
				false,
			),
		),
		invalid,
		invalid,
	),
	0xfd: newMandatoryPrefix2(
		invalid,
		newVectorLengthEVEX(
			newEVEXVkHW(
				XMM0,
				XMM0,
				XMM0,
				EVEX_Vpaddw_VX_k1z_HX_WX,
				TupleFullMem128,
				false,
			),
			newEVEXVkHW(
				YMM0,
				YMM0,
				YMM0,
				EVEX_Vpaddw_VY_k1z_HY_WY,
				TupleFullMem256,
				false,
			),
			newEVEXVkHW(
				ZMM0,
				ZMM0,
				ZMM0,
				EVEX_Vpaddw_VZ_k1z_HZ_WZ,
				TupleFullMem512,
				false,
			),
		),
		invalid,
		invalid,
	),
	0xfe: newMandatoryPrefix2(
		invalid,
		newW(
			newVectorLengthEVEX(
				newEVEXVkHW(
					XMM0,
					XMM0,
					XMM0,
					EVEX_Vpaddd_VX_k1z_HX_WX_b,
					TupleFull128,
					true,
				),
				newEVEXVkHW(
					YMM0,
					YMM0,
					YMM0,
					EVEX_Vpaddd_VY_k1z_HY_WY_b,
					TupleFull256,
					true,
				),
				newEVEXVkHW(
					ZMM0,
					ZMM0,
					ZMM0,
					EVEX_Vpaddd_VZ_k1z_HZ_WZ_b,
					TupleFull512,
					true,
				),
			),
			invalid,
		),
		invalid,
		invalid,
	),
})

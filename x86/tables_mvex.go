// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

// mvexMap1 holds the Knights Corner
// instructions in the 0F map.
var mvexMap1 = fillInvalid([256]*handler{
	0x28: newMandatoryPrefix2(
		newW(newMVEXVW(MVEX_Vmovaps_VZ_k1_WZ, mvexLoadFloat32), invalid),
		newW(invalid, newMVEXVW(MVEX_Vmovapd_VZ_k1_WZ, mvexFloat64)),
		invalid,
		invalid,
	),
	0x29: newMandatoryPrefix2(
		newW(newMVEXMV(MVEX_Vmovaps_MZ_k1_VZ, mvexStoreFloat), invalid),
		newW(invalid, newMVEXMV(MVEX_Vmovapd_MZ_k1_VZ, mvexStore64)),
		invalid,
		invalid,
	),
	0x58: newMandatoryPrefix2(
		newW(newMVEXVHW(MVEX_Vaddps_VZ_k1_HZ_WZ, mvexLoadFloat32), invalid),
		newW(invalid, newMVEXVHW(MVEX_Vaddpd_VZ_k1_HZ_WZ, mvexFloat64)),
		invalid,
		invalid,
	),
	0x59: newMandatoryPrefix2(
		newW(newMVEXVHW(MVEX_Vmulps_VZ_k1_HZ_WZ, mvexLoadFloat32), invalid),
		newW(invalid, newMVEXVHW(MVEX_Vmulpd_VZ_k1_HZ_WZ, mvexFloat64)),
		invalid,
		invalid,
	),
	0x5c: newMandatoryPrefix2(
		newW(newMVEXVHW(MVEX_Vsubps_VZ_k1_HZ_WZ, mvexLoadFloat32), invalid),
		newW(invalid, newMVEXVHW(MVEX_Vsubpd_VZ_k1_HZ_WZ, mvexFloat64)),
		invalid,
		invalid,
	),
	0x6f: newMandatoryPrefix2(
		invalid,
		newW(
			newMVEXVW(MVEX_Vmovdqa32_VZ_k1_WZ, mvexLoadInt32),
			newMVEXVW(MVEX_Vmovdqa64_VZ_k1_WZ, mvexInt64),
		),
		invalid,
		invalid,
	),
	0x76: newMandatoryPrefix2(
		invalid,
		newW(newMVEXKHW(MVEX_Vpcmpeqd_KR_k1_HZ_WZ, mvexLoadInt32), invalid),
		invalid,
		invalid,
	),
	0x7f: newMandatoryPrefix2(
		invalid,
		newW(
			newMVEXMV(MVEX_Vmovdqa32_MZ_k1_VZ, mvexStoreInt32),
			newMVEXMV(MVEX_Vmovdqa64_MZ_k1_VZ, mvexStore64),
		),
		invalid,
		invalid,
	),
	0xdb: newMandatoryPrefix2(
		invalid,
		newW(
			newMVEXVHW(MVEX_Vpandd_VZ_k1_HZ_WZ, mvexLoadInt32),
			newMVEXVHW(MVEX_Vpandq_VZ_k1_HZ_WZ, mvexInt64),
		),
		invalid,
		invalid,
	),
	0xeb: newMandatoryPrefix2(
		invalid,
		newW(
			newMVEXVHW(MVEX_Vpord_VZ_k1_HZ_WZ, mvexLoadInt32),
			newMVEXVHW(MVEX_Vporq_VZ_k1_HZ_WZ, mvexInt64),
		),
		invalid,
		invalid,
	),
	0xef: newMandatoryPrefix2(
		invalid,
		newW(
			newMVEXVHW(MVEX_Vpxord_VZ_k1_HZ_WZ, mvexLoadInt32),
			newMVEXVHW(MVEX_Vpxorq_VZ_k1_HZ_WZ, mvexInt64),
		),
		invalid,
		invalid,
	),
	0xfa: newMandatoryPrefix2(
		invalid,
		newW(newMVEXVHW(MVEX_Vpsubd_VZ_k1_HZ_WZ, mvexLoadInt32), invalid),
		invalid,
		invalid,
	),
	0xfe: newMandatoryPrefix2(
		invalid,
		newW(newMVEXVHW(MVEX_Vpaddd_VZ_k1_HZ_WZ, mvexLoadInt32), invalid),
		invalid,
		invalid,
	),
})

// The 0F38 and 0F3A maps have no decoded
// instructions yet.
var (
	mvexMap2 = fillInvalid([256]*handler{})
	mvexMap3 = fillInvalid([256]*handler{})
)

// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

// The x87 escapes D8 to DF select by the
// reg field for memory forms and by the
// whole ModR/M byte for register forms.

var fpuD8Low = [8]*handler{
	newMfx(Fadd_Mf32),
	newMfx(Fmul_Mf32),
	newMfx(Fcom_Mf32),
	newMfx(Fcomp_Mf32),
	newMfx(Fsub_Mf32),
	newMfx(Fsubr_Mf32),
	newMfx(Fdiv_Mf32),
	newMfx(Fdivr_Mf32),
}

var fpuD8High = [8]*handler{
	newSTSTi(Fadd_ST_STi),
	newSTSTi(Fmul_ST_STi),
	newSTSTi(Fcom_ST_STi),
	newSTSTi(Fcomp_ST_STi),
	newSTSTi(Fsub_ST_STi),
	newSTSTi(Fsubr_ST_STi),
	newSTSTi(Fdiv_ST_STi),
	newSTSTi(Fdivr_ST_STi),
}

var fpuD9Low = [8]*handler{
	newMfx(Fld_Mf32),
	invalid,
	newMfx(Fst_Mf32),
	newMfx(Fstp_Mf32),
	newMf(Fldenv_M14, Fldenv_M28),
	newMfx(Fldcw_Mw),
	newMf(Fnstenv_M14, Fnstenv_M28),
	newMfx(Fnstcw_Mw),
}

var fpuD9High = [64]*handler{
	0x00: newSTSTi(Fld_ST_STi),
	0x01: newSTSTi(Fld_ST_STi),
	0x02: newSTSTi(Fld_ST_STi),
	0x03: newSTSTi(Fld_ST_STi),
	0x04: newSTSTi(Fld_ST_STi),
	0x05: newSTSTi(Fld_ST_STi),
	0x06: newSTSTi(Fld_ST_STi),
	0x07: newSTSTi(Fld_ST_STi),
	0x08: newSTSTi(Fxch_ST_STi),
	0x09: newSTSTi(Fxch_ST_STi),
	0x0a: newSTSTi(Fxch_ST_STi),
	0x0b: newSTSTi(Fxch_ST_STi),
	0x0c: newSTSTi(Fxch_ST_STi),
	0x0d: newSTSTi(Fxch_ST_STi),
	0x0e: newSTSTi(Fxch_ST_STi),
	0x0f: newSTSTi(Fxch_ST_STi),
	0x10: newSimpleModRM(Fnop),
	0x11: invalid,
	0x12: invalid,
	0x13: invalid,
	0x14: invalid,
	0x15: invalid,
	0x16: invalid,
	0x17: invalid,
	0x18: invalid,
	0x19: invalid,
	0x1a: invalid,
	0x1b: invalid,
	0x1c: invalid,
	0x1d: invalid,
	0x1e: invalid,
	0x1f: invalid,
	0x20: newSimpleModRM(Fchs),
	0x21: newSimpleModRM(Fabs),
	0x22: invalid,
	0x23: invalid,
	0x24: newSimpleModRM(Ftst),
	0x25: newSimpleModRM(Fxam),
	0x26: invalid,
	0x27: invalid,
	0x28: newSimpleModRM(Fld1),
	0x29: newSimpleModRM(Fldl2t),
	0x2a: newSimpleModRM(Fldl2e),
	0x2b: newSimpleModRM(Fldpi),
	0x2c: newSimpleModRM(Fldlg2),
	0x2d: newSimpleModRM(Fldln2),
	0x2e: newSimpleModRM(Fldz),
	0x2f: invalid,
	0x30: newSimpleModRM(F2xm1),
	0x31: newSimpleModRM(Fyl2x),
	0x32: newSimpleModRM(Fptan),
	0x33: newSimpleModRM(Fpatan),
	0x34: newSimpleModRM(Fxtract),
	0x35: newSimpleModRM(Fprem1),
	0x36: newSimpleModRM(Fdecstp),
	0x37: newSimpleModRM(Fincstp),
	0x38: newSimpleModRM(Fprem),
	0x39: newSimpleModRM(Fyl2xp1),
	0x3a: newSimpleModRM(Fsqrt),
	0x3b: newSimpleModRM(Fsincos),
	0x3c: newSimpleModRM(Frndint),
	0x3d: newSimpleModRM(Fscale),
	0x3e: newSimpleModRM(Fsin),
	0x3f: newSimpleModRM(Fcos),
}

var fpuDALow = [8]*handler{
	newMfx(Fiadd_Mfi32),
	newMfx(Fimul_Mfi32),
	newMfx(Ficom_Mfi32),
	newMfx(Ficomp_Mfi32),
	newMfx(Fisub_Mfi32),
	newMfx(Fisubr_Mfi32),
	newMfx(Fidiv_Mfi32),
	newMfx(Fidivr_Mfi32),
}

var fpuDAHigh = [64]*handler{
	0x00: newSTSTi(Fcmovb_ST_STi),
	0x01: newSTSTi(Fcmovb_ST_STi),
	0x02: newSTSTi(Fcmovb_ST_STi),
	0x03: newSTSTi(Fcmovb_ST_STi),
	0x04: newSTSTi(Fcmovb_ST_STi),
	0x05: newSTSTi(Fcmovb_ST_STi),
	0x06: newSTSTi(Fcmovb_ST_STi),
	0x07: newSTSTi(Fcmovb_ST_STi),
	0x08: newSTSTi(Fcmove_ST_STi),
	0x09: newSTSTi(Fcmove_ST_STi),
	0x0a: newSTSTi(Fcmove_ST_STi),
	0x0b: newSTSTi(Fcmove_ST_STi),
	0x0c: newSTSTi(Fcmove_ST_STi),
	0x0d: newSTSTi(Fcmove_ST_STi),
	0x0e: newSTSTi(Fcmove_ST_STi),
	0x0f: newSTSTi(Fcmove_ST_STi),
	0x10: newSTSTi(Fcmovbe_ST_STi),
	0x11: newSTSTi(Fcmovbe_ST_STi),
	0x12: newSTSTi(Fcmovbe_ST_STi),
	0x13: newSTSTi(Fcmovbe_ST_STi),
	0x14: newSTSTi(Fcmovbe_ST_STi),
	0x15: newSTSTi(Fcmovbe_ST_STi),
	0x16: newSTSTi(Fcmovbe_ST_STi),
	0x17: newSTSTi(Fcmovbe_ST_STi),
	0x18: newSTSTi(Fcmovu_ST_STi),
	0x19: newSTSTi(Fcmovu_ST_STi),
	0x1a: newSTSTi(Fcmovu_ST_STi),
	0x1b: newSTSTi(Fcmovu_ST_STi),
	0x1c: newSTSTi(Fcmovu_ST_STi),
	0x1d: newSTSTi(Fcmovu_ST_STi),
	0x1e: newSTSTi(Fcmovu_ST_STi),
	0x1f: newSTSTi(Fcmovu_ST_STi),
	0x20: invalid,
	0x21: invalid,
	0x22: invalid,
	0x23: invalid,
	0x24: invalid,
	0x25: invalid,
	0x26: invalid,
	0x27: invalid,
	0x28: invalid,
	0x29: newSimpleModRM(Fucompp),
	0x2a: invalid,
	0x2b: invalid,
	0x2c: invalid,
	0x2d: invalid,
	0x2e: invalid,
	0x2f: invalid,
	0x30: invalid,
	0x31: invalid,
	0x32: invalid,
	0x33: invalid,
	0x34: invalid,
	0x35: invalid,
	0x36: invalid,
	0x37: invalid,
	0x38: invalid,
	0x39: invalid,
	0x3a: invalid,
	0x3b: invalid,
	0x3c: invalid,
	0x3d: invalid,
	0x3e: invalid,
	0x3f: invalid,
}

var fpuDBLow = [8]*handler{
	newMfx(Fild_Mfi32),
	newMfx(Fisttp_Mfi32),
	newMfx(Fist_Mfi32),
	newMfx(Fistp_Mfi32),
	invalid,
	newMfx(Fld_Mf80),
	invalid,
	newMfx(Fstp_Mf80),
}

var fpuDBHigh = [64]*handler{
	0x00: newSTSTi(Fcmovnb_ST_STi),
	0x01: newSTSTi(Fcmovnb_ST_STi),
	0x02: newSTSTi(Fcmovnb_ST_STi),
	0x03: newSTSTi(Fcmovnb_ST_STi),
	0x04: newSTSTi(Fcmovnb_ST_STi),
	0x05: newSTSTi(Fcmovnb_ST_STi),
	0x06: newSTSTi(Fcmovnb_ST_STi),
	0x07: newSTSTi(Fcmovnb_ST_STi),
	0x08: newSTSTi(Fcmovne_ST_STi),
	0x09: newSTSTi(Fcmovne_ST_STi),
	0x0a: newSTSTi(Fcmovne_ST_STi),
	0x0b: newSTSTi(Fcmovne_ST_STi),
	0x0c: newSTSTi(Fcmovne_ST_STi),
	0x0d: newSTSTi(Fcmovne_ST_STi),
	0x0e: newSTSTi(Fcmovne_ST_STi),
	0x0f: newSTSTi(Fcmovne_ST_STi),
	0x10: newSTSTi(Fcmovnbe_ST_STi),
	0x11: newSTSTi(Fcmovnbe_ST_STi),
	0x12: newSTSTi(Fcmovnbe_ST_STi),
	0x13: newSTSTi(Fcmovnbe_ST_STi),
	0x14: newSTSTi(Fcmovnbe_ST_STi),
	0x15: newSTSTi(Fcmovnbe_ST_STi),
	0x16: newSTSTi(Fcmovnbe_ST_STi),
	0x17: newSTSTi(Fcmovnbe_ST_STi),
	0x18: newSTSTi(Fcmovnu_ST_STi),
	0x19: newSTSTi(Fcmovnu_ST_STi),
	0x1a: newSTSTi(Fcmovnu_ST_STi),
	0x1b: newSTSTi(Fcmovnu_ST_STi),
	0x1c: newSTSTi(Fcmovnu_ST_STi),
	0x1d: newSTSTi(Fcmovnu_ST_STi),
	0x1e: newSTSTi(Fcmovnu_ST_STi),
	0x1f: newSTSTi(Fcmovnu_ST_STi),
	0x20: invalid,
	0x21: invalid,
	0x22: newSimpleModRM(Fnclex),
	0x23: newSimpleModRM(Fninit),
	0x24: newOptionsModRM(invalid, newSimpleModRM(Fnsetpm), OptionOldFpu),
	0x25: newOptionsModRM(invalid, newSimpleModRM(Frstpm), OptionOldFpu),
	0x26: invalid,
	0x27: invalid,
	0x28: newSTSTi(Fucomi_ST_STi),
	0x29: newSTSTi(Fucomi_ST_STi),
	0x2a: newSTSTi(Fucomi_ST_STi),
	0x2b: newSTSTi(Fucomi_ST_STi),
	0x2c: newSTSTi(Fucomi_ST_STi),
	0x2d: newSTSTi(Fucomi_ST_STi),
	0x2e: newSTSTi(Fucomi_ST_STi),
	0x2f: newSTSTi(Fucomi_ST_STi),
	0x30: newSTSTi(Fcomi_ST_STi),
	0x31: newSTSTi(Fcomi_ST_STi),
	0x32: newSTSTi(Fcomi_ST_STi),
	0x33: newSTSTi(Fcomi_ST_STi),
	0x34: newSTSTi(Fcomi_ST_STi),
	0x35: newSTSTi(Fcomi_ST_STi),
	0x36: newSTSTi(Fcomi_ST_STi),
	0x37: newSTSTi(Fcomi_ST_STi),
	0x38: invalid,
	0x39: invalid,
	0x3a: invalid,
	0x3b: invalid,
	0x3c: invalid,
	0x3d: invalid,
	0x3e: invalid,
	0x3f: invalid,
}

var fpuDCLow = [8]*handler{
	newMfx(Fadd_Mf64),
	newMfx(Fmul_Mf64),
	newMfx(Fcom_Mf64),
	newMfx(Fcomp_Mf64),
	newMfx(Fsub_Mf64),
	newMfx(Fsubr_Mf64),
	newMfx(Fdiv_Mf64),
	newMfx(Fdivr_Mf64),
}

var fpuDCHigh = [8]*handler{
	newSTiST(Fadd_STi_ST),
	newSTiST(Fmul_STi_ST),
	invalid,
	invalid,
	newSTiST(Fsubr_STi_ST),
	newSTiST(Fsub_STi_ST),
	newSTiST(Fdivr_STi_ST),
	newSTiST(Fdiv_STi_ST),
}

var fpuDDLow = [8]*handler{
	newMfx(Fld_Mf64),
	newMfx(Fisttp_Mf64),
	newMfx(Fst_Mf64),
	newMfx(Fstp_Mf64),
	newMf(Frstor_M98, Frstor_M108),
	invalid,
	newMf(Fnsave_M98, Fnsave_M108),
	newMfx(Fnstsw_Mw),
}

var fpuDDHigh = [8]*handler{
	newSTi(Ffree_STi),
	invalid,
	newSTi(Fst_STi),
	newSTi(Fstp_STi),
	newSTSTi(Fucom_ST_STi),
	newSTSTi(Fucomp_ST_STi),
	invalid,
	invalid,
}

var fpuDELow = [8]*handler{
	newMfx(Fiadd_Mfi16),
	newMfx(Fimul_Mfi16),
	newMfx(Ficom_Mfi16),
	newMfx(Ficomp_Mfi16),
	newMfx(Fisub_Mfi16),
	newMfx(Fisubr_Mfi16),
	newMfx(Fidiv_Mfi16),
	newMfx(Fidivr_Mfi16),
}

var fpuDEHigh = [64]*handler{
	0x00: newSTiST(Faddp_STi_ST),
	0x01: newSTiST(Faddp_STi_ST),
	0x02: newSTiST(Faddp_STi_ST),
	0x03: newSTiST(Faddp_STi_ST),
	0x04: newSTiST(Faddp_STi_ST),
	0x05: newSTiST(Faddp_STi_ST),
	0x06: newSTiST(Faddp_STi_ST),
	0x07: newSTiST(Faddp_STi_ST),
	0x08: newSTiST(Fmulp_STi_ST),
	0x09: newSTiST(Fmulp_STi_ST),
	0x0a: newSTiST(Fmulp_STi_ST),
	0x0b: newSTiST(Fmulp_STi_ST),
	0x0c: newSTiST(Fmulp_STi_ST),
	0x0d: newSTiST(Fmulp_STi_ST),
	0x0e: newSTiST(Fmulp_STi_ST),
	0x0f: newSTiST(Fmulp_STi_ST),
	0x10: invalid,
	0x11: invalid,
	0x12: invalid,
	0x13: invalid,
	0x14: invalid,
	0x15: invalid,
	0x16: invalid,
	0x17: invalid,
	0x18: invalid,
	0x19: newSimpleModRM(Fcompp),
	0x1a: invalid,
	0x1b: invalid,
	0x1c: invalid,
	0x1d: invalid,
	0x1e: invalid,
	0x1f: invalid,
	0x20: newSTiST(Fsubrp_STi_ST),
	0x21: newSTiST(Fsubrp_STi_ST),
	0x22: newSTiST(Fsubrp_STi_ST),
	0x23: newSTiST(Fsubrp_STi_ST),
	0x24: newSTiST(Fsubrp_STi_ST),
	0x25: newSTiST(Fsubrp_STi_ST),
	0x26: newSTiST(Fsubrp_STi_ST),
	0x27: newSTiST(Fsubrp_STi_ST),
	0x28: newSTiST(Fsubp_STi_ST),
	0x29: newSTiST(Fsubp_STi_ST),
	0x2a: newSTiST(Fsubp_STi_ST),
	0x2b: newSTiST(Fsubp_STi_ST),
	0x2c: newSTiST(Fsubp_STi_ST),
	0x2d: newSTiST(Fsubp_STi_ST),
	0x2e: newSTiST(Fsubp_STi_ST),
	0x2f: newSTiST(Fsubp_STi_ST),
	0x30: newSTiST(Fdivrp_STi_ST),
	0x31: newSTiST(Fdivrp_STi_ST),
	0x32: newSTiST(Fdivrp_STi_ST),
	0x33: newSTiST(Fdivrp_STi_ST),
	0x34: newSTiST(Fdivrp_STi_ST),
	0x35: newSTiST(Fdivrp_STi_ST),
	0x36: newSTiST(Fdivrp_STi_ST),
	0x37: newSTiST(Fdivrp_STi_ST),
	0x38: newSTiST(Fdivp_STi_ST),
	0x39: newSTiST(Fdivp_STi_ST),
	0x3a: newSTiST(Fdivp_STi_ST),
	0x3b: newSTiST(Fdivp_STi_ST),
	0x3c: newSTiST(Fdivp_STi_ST),
	0x3d: newSTiST(Fdivp_STi_ST),
	0x3e: newSTiST(Fdivp_STi_ST),
	0x3f: newSTiST(Fdivp_STi_ST),
}

var fpuDFLow = [8]*handler{
	newMfx(Fild_Mfi16),
	newMfx(Fisttp_Mfi16),
	newMfx(Fist_Mfi16),
	newMfx(Fistp_Mfi16),
	newMfx(Fbld_Mfbcd),
	newMfx(Fild_Mfi64),
	newMfx(Fbstp_Mfbcd),
	newMfx(Fistp_Mfi64),
}

var fpuDFHigh = [64]*handler{
	0x00: invalid,
	0x01: invalid,
	0x02: invalid,
	0x03: invalid,
	0x04: invalid,
	0x05: invalid,
	0x06: invalid,
	0x07: invalid,
	0x08: invalid,
	0x09: invalid,
	0x0a: invalid,
	0x0b: invalid,
	0x0c: invalid,
	0x0d: invalid,
	0x0e: invalid,
	0x0f: invalid,
	0x10: invalid,
	0x11: invalid,
	0x12: invalid,
	0x13: invalid,
	0x14: invalid,
	0x15: invalid,
	0x16: invalid,
	0x17: invalid,
	0x18: invalid,
	0x19: invalid,
	0x1a: invalid,
	0x1b: invalid,
	0x1c: invalid,
	0x1d: invalid,
	0x1e: invalid,
	0x1f: invalid,
	0x20: newFpuReg(Fnstsw_AX, AX),
	0x21: newOptionsModRM(invalid, newFpuReg(Fstdw_AX, AX), OptionOldFpu),
	0x22: newOptionsModRM(invalid, newFpuReg(Fstsg_AX, AX), OptionOldFpu),
	0x23: invalid,
	0x24: invalid,
	0x25: invalid,
	0x26: invalid,
	0x27: invalid,
	0x28: newSTSTi(Fucomip_ST_STi),
	0x29: newSTSTi(Fucomip_ST_STi),
	0x2a: newSTSTi(Fucomip_ST_STi),
	0x2b: newSTSTi(Fucomip_ST_STi),
	0x2c: newSTSTi(Fucomip_ST_STi),
	0x2d: newSTSTi(Fucomip_ST_STi),
	0x2e: newSTSTi(Fucomip_ST_STi),
	0x2f: newSTSTi(Fucomip_ST_STi),
	0x30: newSTSTi(Fcomip_ST_STi),
	0x31: newSTSTi(Fcomip_ST_STi),
	0x32: newSTSTi(Fcomip_ST_STi),
	0x33: newSTSTi(Fcomip_ST_STi),
	0x34: newSTSTi(Fcomip_ST_STi),
	0x35: newSTSTi(Fcomip_ST_STi),
	0x36: newSTSTi(Fcomip_ST_STi),
	0x37: newSTSTi(Fcomip_ST_STi),
	0x38: invalid,
	0x39: invalid,
	0x3a: invalid,
	0x3b: invalid,
	0x3c: invalid,
	0x3d: invalid,
	0x3e: invalid,
	0x3f: invalid,
}

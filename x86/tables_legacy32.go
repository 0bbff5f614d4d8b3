// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

var legacy32Grp80 = [8]*handler{
	newEbIb(Add_Eb_Ib, hfLock | hfXacquireRelease),
	newEbIb(Or_Eb_Ib, hfLock | hfXacquireRelease),
	newEbIb(Adc_Eb_Ib, hfLock | hfXacquireRelease),
	newEbIb(Sbb_Eb_Ib, hfLock | hfXacquireRelease),
	newEbIb(And_Eb_Ib, hfLock | hfXacquireRelease),
	newEbIb(Sub_Eb_Ib, hfLock | hfXacquireRelease),
	newEbIb(Xor_Eb_Ib, hfLock | hfXacquireRelease),
	newEbIb(Cmp_Eb_Ib, 0),
}

var legacy32Grp81 = [8]*handler{
	newEvIz(Add_Ew_Iw, Add_Ed_Id, Add_Eq_Id64, hfLock | hfXacquireRelease),
	newEvIz(Or_Ew_Iw, Or_Ed_Id, Or_Eq_Id64, hfLock | hfXacquireRelease),
	newEvIz(Adc_Ew_Iw, Adc_Ed_Id, Adc_Eq_Id64, hfLock | hfXacquireRelease),
	newEvIz(Sbb_Ew_Iw, Sbb_Ed_Id, Sbb_Eq_Id64, hfLock | hfXacquireRelease),
	newEvIz(And_Ew_Iw, And_Ed_Id, And_Eq_Id64, hfLock | hfXacquireRelease),
	newEvIz(Sub_Ew_Iw, Sub_Ed_Id, Sub_Eq_Id64, hfLock | hfXacquireRelease),
	newEvIz(Xor_Ew_Iw, Xor_Ed_Id, Xor_Eq_Id64, hfLock | hfXacquireRelease),
	newEvIz(Cmp_Ew_Iw, Cmp_Ed_Id, Cmp_Eq_Id64, 0),
}

var legacy32Grp83 = [8]*handler{
	newEvIb(Add_Ew_Ib16, Add_Ed_Ib32, Add_Eq_Ib64, hfLock | hfXacquireRelease),
	newEvIb(Or_Ew_Ib16, Or_Ed_Ib32, Or_Eq_Ib64, hfLock | hfXacquireRelease),
	newEvIb(Adc_Ew_Ib16, Adc_Ed_Ib32, Adc_Eq_Ib64, hfLock | hfXacquireRelease),
	newEvIb(Sbb_Ew_Ib16, Sbb_Ed_Ib32, Sbb_Eq_Ib64, hfLock | hfXacquireRelease),
	newEvIb(And_Ew_Ib16, And_Ed_Ib32, And_Eq_Ib64, hfLock | hfXacquireRelease),
	newEvIb(Sub_Ew_Ib16, Sub_Ed_Ib32, Sub_Eq_Ib64, hfLock | hfXacquireRelease),
	newEvIb(Xor_Ew_Ib16, Xor_Ed_Ib32, Xor_Eq_Ib64, hfLock | hfXacquireRelease),
	newEvIb(Cmp_Ew_Ib16, Cmp_Ed_Ib32, Cmp_Eq_Ib64, 0),
}

var legacy32GrpC0 = [8]*handler{
	newEbIb(Rol_Eb_Ib, 0),
	newEbIb(Ror_Eb_Ib, 0),
	newEbIb(Rcl_Eb_Ib, 0),
	newEbIb(Rcr_Eb_Ib, 0),
	newEbIb(Shl_Eb_Ib, 0),
	newEbIb(Shr_Eb_Ib, 0),
	newEbIb(Shl_Eb_Ib, 0),
	newEbIb(Sar_Eb_Ib, 0),
}

var legacy32GrpC1 = [8]*handler{
	newEvIb2(Rol_Ew_Ib, Rol_Ed_Ib, Rol_Eq_Ib, 0),
	newEvIb2(Ror_Ew_Ib, Ror_Ed_Ib, Ror_Eq_Ib, 0),
	newEvIb2(Rcl_Ew_Ib, Rcl_Ed_Ib, Rcl_Eq_Ib, 0),
	newEvIb2(Rcr_Ew_Ib, Rcr_Ed_Ib, Rcr_Eq_Ib, 0),
	newEvIb2(Shl_Ew_Ib, Shl_Ed_Ib, Shl_Eq_Ib, 0),
	newEvIb2(Shr_Ew_Ib, Shr_Ed_Ib, Shr_Eq_Ib, 0),
	newEvIb2(Shl_Ew_Ib, Shl_Ed_Ib, Shl_Eq_Ib, 0),
	newEvIb2(Sar_Ew_Ib, Sar_Ed_Ib, Sar_Eq_Ib, 0),
}

var legacy32GrpD0 = [8]*handler{
	newEb1(Rol_Eb_1),
	newEb1(Ror_Eb_1),
	newEb1(Rcl_Eb_1),
	newEb1(Rcr_Eb_1),
	newEb1(Shl_Eb_1),
	newEb1(Shr_Eb_1),
	newEb1(Shl_Eb_1),
	newEb1(Sar_Eb_1),
}

var legacy32GrpD1 = [8]*handler{
	newEv1(Rol_Ew_1, Rol_Ed_1, Rol_Eq_1),
	newEv1(Ror_Ew_1, Ror_Ed_1, Ror_Eq_1),
	newEv1(Rcl_Ew_1, Rcl_Ed_1, Rcl_Eq_1),
	newEv1(Rcr_Ew_1, Rcr_Ed_1, Rcr_Eq_1),
	newEv1(Shl_Ew_1, Shl_Ed_1, Shl_Eq_1),
	newEv1(Shr_Ew_1, Shr_Ed_1, Shr_Eq_1),
	newEv1(Shl_Ew_1, Shl_Ed_1, Shl_Eq_1),
	newEv1(Sar_Ew_1, Sar_Ed_1, Sar_Eq_1),
}

var legacy32GrpD2 = [8]*handler{
	newEbCL(Rol_Eb_CL),
	newEbCL(Ror_Eb_CL),
	newEbCL(Rcl_Eb_CL),
	newEbCL(Rcr_Eb_CL),
	newEbCL(Shl_Eb_CL),
	newEbCL(Shr_Eb_CL),
	newEbCL(Shl_Eb_CL),
	newEbCL(Sar_Eb_CL),
}

var legacy32GrpD3 = [8]*handler{
	newEvCL(Rol_Ew_CL, Rol_Ed_CL, Rol_Eq_CL),
	newEvCL(Ror_Ew_CL, Ror_Ed_CL, Ror_Eq_CL),
	newEvCL(Rcl_Ew_CL, Rcl_Ed_CL, Rcl_Eq_CL),
	newEvCL(Rcr_Ew_CL, Rcr_Ed_CL, Rcr_Eq_CL),
	newEvCL(Shl_Ew_CL, Shl_Ed_CL, Shl_Eq_CL),
	newEvCL(Shr_Ew_CL, Shr_Ed_CL, Shr_Eq_CL),
	newEvCL(Shl_Ew_CL, Shl_Ed_CL, Shl_Eq_CL),
	newEvCL(Sar_Ew_CL, Sar_Ed_CL, Sar_Eq_CL),
}

var legacy32GrpF6 = [8]*handler{
	newEbIb(Test_Eb_Ib, 0),
	newEbIb(Test_Eb_Ib, 0),
	newEb(Not_Eb, hfLock | hfXacquireRelease),
	newEb(Neg_Eb, hfLock | hfXacquireRelease),
	newEb(Mul_Eb, 0),
	newEb(Imul_Eb, 0),
	newEb(Div_Eb, 0),
	newEb(Idiv_Eb, 0),
}

var legacy32GrpF7 = [8]*handler{
	newEvIz(Test_Ew_Iw, Test_Ed_Id, Test_Eq_Id64, 0),
	newEvIz(Test_Ew_Iw, Test_Ed_Id, Test_Eq_Id64, 0),
	newEv(Not_Ew, Not_Ed, Not_Eq, hfLock | hfXacquireRelease),
	newEv(Neg_Ew, Neg_Ed, Neg_Eq, hfLock | hfXacquireRelease),
	newEv(Mul_Ew, Mul_Ed, Mul_Eq, 0),
	newEv(Imul_Ew, Imul_Ed, Imul_Eq, 0),
	newEv(Div_Ew, Div_Ed, Div_Eq, 0),
	newEv(Idiv_Ew, Idiv_Ed, Idiv_Eq, 0),
}

var legacy32GrpFE = [8]*handler{
	newEb(Inc_Eb, hfLock | hfXacquireRelease),
	newEb(Dec_Eb, hfLock | hfXacquireRelease),
	invalid,
	invalid,
	invalid,
	invalid,
	invalid,
	invalid,
}

var legacy32GrpFF = [8]*handler{
	newEv(Inc_Ew, Inc_Ed, Inc_Eq, hfLock | hfXacquireRelease),
	newEv(Dec_Ew, Dec_Ed, Dec_Eq, hfLock | hfXacquireRelease),
	newEvj(Call_Ew, Call_Ed, INVALID),
	newEp(Call_Eww, Call_Edw, Call_Eqw),
	newEvj(Jmp_Ew, Jmp_Ed, INVALID),
	newEp(Jmp_Eww, Jmp_Edw, Jmp_Eqw),
	newEv(Push_Ew, Push_Ed, Push_Eq, 0),
	invalid,
}

var legacy32Grp0F00 = [8]*handler{
	newEvw(Sldt_Ew, Sldt_RdMw, Sldt_RqMw),
	newEvw(Str_Ew, Str_RdMw, Str_RqMw),
	newEw(Lldt_Ew, Lldt_RdMw, Lldt_RqMw),
	newEw(Ltr_Ew, Ltr_RdMw, Ltr_RqMw),
	newEw(Verr_Ew, Verr_RdMw, Verr_RqMw),
	newEw(Verw_Ew, Verw_RdMw, Verw_RqMw),
	newOptionsModRM(invalid, newEv(Jmpe_Ew, Jmpe_Ed, INVALID, 0), OptionJmpe),
	invalid,
}

var legacy32Grp0F01Lo = [8]*handler{
	newMs(Sgdtw_Ms, Sgdtd_Ms, Sgdtq_Ms),
	newMs(Sidtw_Ms, Sidtd_Ms, Sidtq_Ms),
	newMs(Lgdtw_Ms, Lgdtd_Ms, Lgdtq_Ms),
	newMs(Lidtw_Ms, Lidtd_Ms, Lidtq_Ms),
	newEvw(Smsw_Ew, Smsw_RdMw, Smsw_RqMw),
	invalid,
	newEvw(Lmsw_Ew, Lmsw_RdMw, Lmsw_RqMw),
	newM(Invlpg_M, Invlpg_M),
}

var legacy32Grp0F01Hi = [64]*handler{
	0x00: newSimple(Enclv),
	0x01: newSimple(Vmcall),
	0x02: newSimple(Vmlaunch),
	0x03: newSimple(Vmresume),
	0x04: newSimple(Vmxoff),
	0x08: newSimple5(Monitorw, Monitord, Monitorq),
	0x09: newSimple(Mwait),
	0x0a: newSimple(Clac),
	0x0b: newSimple(Stac),
	0x0f: newSimple(Encls),
	0x10: newSimple(Xgetbv),
	0x11: newSimple(Xsetbv),
	0x14: newSimple(Vmfunc),
	0x15: newSimple(Xend),
	0x16: newSimple(Xtest),
	0x17: newSimple(Enclu),
	0x2e: newSimple(Rdpkru),
	0x2f: newSimple(Wrpkru),
	0x38: newSimple(Swapgs),
	0x39: newSimple(Rdtscp),
}

var legacy32Grp0F1F = [8]*handler{
	newEv(Nop_Ew, Nop_Ed, Nop_Eq, 0),
	invalid,
	invalid,
	invalid,
	invalid,
	invalid,
	invalid,
	invalid,
}

var legacy32Grp0FBA = [8]*handler{
	invalid,
	invalid,
	invalid,
	invalid,
	newEvIb2(Bt_Ew_Ib, Bt_Ed_Ib, Bt_Eq_Ib, 0),
	newEvIb2(Bts_Ew_Ib, Bts_Ed_Ib, Bts_Eq_Ib, hfLock | hfXacquireRelease),
	newEvIb2(Btr_Ew_Ib, Btr_Ed_Ib, Btr_Eq_Ib, hfLock | hfXacquireRelease),
	newEvIb2(Btc_Ew_Ib, Btc_Ed_Ib, Btc_Eq_Ib, hfLock | hfXacquireRelease),
}

var legacy32Grp0FC7 = [8]*handler{
	invalid,
	newMREXW(Cmpxchg8b_Mq, Cmpxchg16b_Mo, hfLock | hfXacquireRelease, hfLock),
	invalid,
	newMandatoryPrefix(newMREXW(Xrstors_M, Xrstors64_M, 0, 0), invalid, invalid, invalid),
	newMandatoryPrefix(newMREXW(Xsavec_M, Xsavec64_M, 0, 0), invalid, invalid, invalid),
	newMandatoryPrefix(newEvREXW(Xsaves_M, Xsaves64_M, false, true), invalid, invalid, invalid),
	newMandatoryPrefix3(
		newRv(Rdrand_Rw, Rdrand_Rd, Rdrand_Rq),
		newM(Vmptrld_M, Vmptrld_M),
		newRv(Rdrand_Rw, Rdrand_Rd, Rdrand_Rq),
		newM(Vmclear_M, Vmclear_M),
		invalid,
		newM(Vmxon_M, Vmxon_M),
		invalid,
		invalid,
		lhfReg | lhf66Reg,
	),
	newMandatoryPrefix3(
		newRv(Rdseed_Rw, Rdseed_Rd, Rdseed_Rq),
		newM(Vmptrst_M, Vmptrst_M),
		newRv(Rdseed_Rw, Rdseed_Rd, Rdseed_Rq),
		invalid,
		newRv3264(Rdpid_Rd, Rdpid_Rq),
		invalid,
		invalid,
		invalid,
		lhfReg | lhf66Reg,
	),
}

var legacy32GrpC6Lo = [8]*handler{
	newEbIb(Mov_Eb_Ib, hfXrelease | hfXacquireReleaseNoLock),
	invalid,
	invalid,
	invalid,
	invalid,
	invalid,
	invalid,
	invalid,
}

var legacy32GrpC6Hi = [64]*handler{
	0x38: newIb3(Xabort_Ib),
}

var legacy32GrpC7Lo = [8]*handler{
	newEvIz(Mov_Ew_Iw, Mov_Ed_Id, Mov_Eq_Id64, hfXrelease | hfXacquireReleaseNoLock),
	invalid,
	invalid,
	invalid,
	invalid,
	invalid,
	invalid,
	invalid,
}

var legacy32GrpC7Hi = [64]*handler{
	0x38: newJx(Xbegin_Jw16, Xbegin_Jd32, Xbegin_Jd64),
}

var legacy32Grp0F71 = [8]*handler{
	invalid,
	invalid,
	newMandatoryPrefix(newNIb(Psrlw_N_Ib), newRIb(XMM0, Psrlw_RX_Ib), invalid, invalid),
	invalid,
	newMandatoryPrefix(newNIb(Psraw_N_Ib), newRIb(XMM0, Psraw_RX_Ib), invalid, invalid),
	invalid,
	newMandatoryPrefix(newNIb(Psllw_N_Ib), newRIb(XMM0, Psllw_RX_Ib), invalid, invalid),
	invalid,
}

var legacy32Grp0F72 = [8]*handler{
	invalid,
	invalid,
	newMandatoryPrefix(newNIb(Psrld_N_Ib), newRIb(XMM0, Psrld_RX_Ib), invalid, invalid),
	invalid,
	newMandatoryPrefix(newNIb(Psrad_N_Ib), newRIb(XMM0, Psrad_RX_Ib), invalid, invalid),
	invalid,
	newMandatoryPrefix(newNIb(Pslld_N_Ib), newRIb(XMM0, Pslld_RX_Ib), invalid, invalid),
	invalid,
}

var legacy32Grp0F73 = [8]*handler{
	invalid,
	invalid,
	newMandatoryPrefix(newNIb(Psrlq_N_Ib), newRIb(XMM0, Psrlq_RX_Ib), invalid, invalid),
	newMandatoryPrefix(invalid, newRIb(XMM0, Psrldq_RX_Ib), invalid, invalid),
	invalid,
	invalid,
	newMandatoryPrefix(newNIb(Psllq_N_Ib), newRIb(XMM0, Psllq_RX_Ib), invalid, invalid),
	newMandatoryPrefix(invalid, newRIb(XMM0, Pslldq_RX_Ib), invalid, invalid),
}

var legacy32Grp0FAELo = [8]*handler{
	newMandatoryPrefix(newM(Fxsave_M, Fxsave64_M), invalid, invalid, invalid),
	newMandatoryPrefix(newM(Fxrstor_M, Fxrstor64_M), invalid, invalid, invalid),
	newMandatoryPrefix(newM(Ldmxcsr_Md, Ldmxcsr_Md), invalid, invalid, invalid),
	newMandatoryPrefix(newM(Stmxcsr_Md, Stmxcsr_Md), invalid, invalid, invalid),
	newMandatoryPrefix(
		newM(Xsave_M, Xsave64_M),
		invalid,
		newEvREXW(Ptwrite_Ed, Ptwrite_Eq, true, true),
		invalid,
	),
	newMandatoryPrefix(newM(Xrstor_M, Xrstor64_M), invalid, invalid, invalid),
	newMandatoryPrefix(newM(Xsaveopt_M, Xsaveopt64_M), newM(Clwb_Mb, Clwb_Mb), invalid, invalid),
	newMandatoryPrefix(
		newM(Clflush_Mb, Clflush_Mb),
		newM(Clflushopt_Mb, Clflushopt_Mb),
		invalid,
		invalid,
	),
}

var legacy32Grp0FAEHi = [64]*handler{
	0x28: newSimple(Lfence),
	0x29: newSimple(Lfence),
	0x2a: newSimple(Lfence),
	0x2b: newSimple(Lfence),
	0x2c: newSimple(Lfence),
	0x2d: newSimple(Lfence),
	0x2e: newSimple(Lfence),
	0x2f: newSimple(Lfence),
	0x30: newSimple(Mfence),
	0x31: newSimple(Mfence),
	0x32: newSimple(Mfence),
	0x33: newSimple(Mfence),
	0x34: newSimple(Mfence),
	0x35: newSimple(Mfence),
	0x36: newSimple(Mfence),
	0x37: newSimple(Mfence),
	0x38: newOptionsModRM(
		newSimple(Sfence),
		newMandatoryPrefix(
			newSimple(Sfence),
			newSimple(Pcommit),
			newSimple(Sfence),
			newSimple(Sfence),
		),
		OptionPcommit,
	),
	0x39: newSimple(Sfence),
	0x3a: newSimple(Sfence),
	0x3b: newSimple(Sfence),
	0x3c: newSimple(Sfence),
	0x3d: newSimple(Sfence),
	0x3e: newSimple(Sfence),
	0x3f: newSimple(Sfence),
}

var legacy32Grp0F18 = [8]*handler{
	newM(Prefetchnta_Mb, Prefetchnta_Mb),
	newM(Prefetcht0_Mb, Prefetcht0_Mb),
	newM(Prefetcht1_Mb, Prefetcht1_Mb),
	newM(Prefetcht2_Mb, Prefetcht2_Mb),
	invalid,
	invalid,
	invalid,
	invalid,
}

var legacy32Grp0F0D = [8]*handler{
	invalid,
	newM(Prefetchw_Mb, Prefetchw_Mb),
	newM(Prefetchwt1_Mb, Prefetchwt1_Mb),
	invalid,
	invalid,
	invalid,
	invalid,
	invalid,
}

// legacy32Map2 holds the 0F38 map in 16-bit and 32-bit mode.
var legacy32Map2 = fillInvalid([256]*handler{
	0x00: newMandatoryPrefix(
		newPQ(Pshufb_P_Q),
		newVW(XMM0, Pshufb_VX_WX, Pshufb_VX_WX),
		invalid,
		invalid,
	),
	0x01: newMandatoryPrefix(
		newPQ(Phaddw_P_Q),
		newVW(XMM0, Phaddw_VX_WX, Phaddw_VX_WX),
		invalid,
		invalid,
	),
	0x02: newMandatoryPrefix(
		newPQ(Phaddd_P_Q),
		newVW(XMM0, Phaddd_VX_WX, Phaddd_VX_WX),
		invalid,
		invalid,
	),
	0x03: newMandatoryPrefix(
		newPQ(Phaddsw_P_Q),
		newVW(XMM0, Phaddsw_VX_WX, Phaddsw_VX_WX),
		invalid,
		invalid,
	),
	0x04: newMandatoryPrefix(
		newPQ(Pmaddubsw_P_Q),
		newVW(XMM0, Pmaddubsw_VX_WX, Pmaddubsw_VX_WX),
		invalid,
		invalid,
	),
	0x05: newMandatoryPrefix(
		newPQ(Phsubw_P_Q),
		newVW(XMM0, Phsubw_VX_WX, Phsubw_VX_WX),
		invalid,
		invalid,
	),
	0x06: newMandatoryPrefix(
		newPQ(Phsubd_P_Q),
		newVW(XMM0, Phsubd_VX_WX, Phsubd_VX_WX),
		invalid,
		invalid,
	),
	0x07: newMandatoryPrefix(
		newPQ(Phsubsw_P_Q),
		newVW(XMM0, Phsubsw_VX_WX, Phsubsw_VX_WX),
		invalid,
		invalid,
	),
	0x08: newMandatoryPrefix(
		newPQ(Psignb_P_Q),
		newVW(XMM0, Psignb_VX_WX, Psignb_VX_WX),
		invalid,
		invalid,
	),
	0x09: newMandatoryPrefix(
		newPQ(Psignw_P_Q),
		newVW(XMM0, Psignw_VX_WX, Psignw_VX_WX),
		invalid,
		invalid,
	),
	0x0a: newMandatoryPrefix(
		newPQ(Psignd_P_Q),
		newVW(XMM0, Psignd_VX_WX, Psignd_VX_WX),
		invalid,
		invalid,
	),
	0x0b: newMandatoryPrefix(
		newPQ(Pmulhrsw_P_Q),
		newVW(XMM0, Pmulhrsw_VX_WX, Pmulhrsw_VX_WX),
		invalid,
		invalid,
	),
	0x10: newMandatoryPrefix(invalid, newVW(XMM0, Pblendvb_VX_WX, Pblendvb_VX_WX), invalid, invalid),
	0x14: newMandatoryPrefix(invalid, newVW(XMM0, Blendvps_VX_WX, Blendvps_VX_WX), invalid, invalid),
	0x15: newMandatoryPrefix(invalid, newVW(XMM0, Blendvpd_VX_WX, Blendvpd_VX_WX), invalid, invalid),
	0x17: newMandatoryPrefix(invalid, newVW(XMM0, Ptest_VX_WX, Ptest_VX_WX), invalid, invalid),
	0x1c: newMandatoryPrefix(
		newPQ(Pabsb_P_Q),
		newVW(XMM0, Pabsb_VX_WX, Pabsb_VX_WX),
		invalid,
		invalid,
	),
	0x1d: newMandatoryPrefix(
		newPQ(Pabsw_P_Q),
		newVW(XMM0, Pabsw_VX_WX, Pabsw_VX_WX),
		invalid,
		invalid,
	),
	0x1e: newMandatoryPrefix(
		newPQ(Pabsd_P_Q),
		newVW(XMM0, Pabsd_VX_WX, Pabsd_VX_WX),
		invalid,
		invalid,
	),
	0x20: newMandatoryPrefix(invalid, newVW(XMM0, Pmovsxbw_VX_WX, Pmovsxbw_VX_WX), invalid, invalid),
	0x21: newMandatoryPrefix(invalid, newVW(XMM0, Pmovsxbd_VX_WX, Pmovsxbd_VX_WX), invalid, invalid),
	0x22: newMandatoryPrefix(invalid, newVW(XMM0, Pmovsxbq_VX_WX, Pmovsxbq_VX_WX), invalid, invalid),
	0x23: newMandatoryPrefix(invalid, newVW(XMM0, Pmovsxwd_VX_WX, Pmovsxwd_VX_WX), invalid, invalid),
	0x24: newMandatoryPrefix(invalid, newVW(XMM0, Pmovsxwq_VX_WX, Pmovsxwq_VX_WX), invalid, invalid),
	0x25: newMandatoryPrefix(invalid, newVW(XMM0, Pmovsxdq_VX_WX, Pmovsxdq_VX_WX), invalid, invalid),
	0x28: newMandatoryPrefix(invalid, newVW(XMM0, Pmuldq_VX_WX, Pmuldq_VX_WX), invalid, invalid),
	0x29: newMandatoryPrefix(invalid, newVW(XMM0, Pcmpeqq_VX_WX, Pcmpeqq_VX_WX), invalid, invalid),
	0x2a: newMandatoryPrefix(invalid, newVM(XMM0, Movntdqa_VX_M), invalid, invalid),
	0x2b: newMandatoryPrefix(invalid, newVW(XMM0, Packusdw_VX_WX, Packusdw_VX_WX), invalid, invalid),
	0x30: newMandatoryPrefix(invalid, newVW(XMM0, Pmovzxbw_VX_WX, Pmovzxbw_VX_WX), invalid, invalid),
	0x31: newMandatoryPrefix(invalid, newVW(XMM0, Pmovzxbd_VX_WX, Pmovzxbd_VX_WX), invalid, invalid),
	0x32: newMandatoryPrefix(invalid, newVW(XMM0, Pmovzxbq_VX_WX, Pmovzxbq_VX_WX), invalid, invalid),
	0x33: newMandatoryPrefix(invalid, newVW(XMM0, Pmovzxwd_VX_WX, Pmovzxwd_VX_WX), invalid, invalid),
	0x34: newMandatoryPrefix(invalid, newVW(XMM0, Pmovzxwq_VX_WX, Pmovzxwq_VX_WX), invalid, invalid),
	0x35: newMandatoryPrefix(invalid, newVW(XMM0, Pmovzxdq_VX_WX, Pmovzxdq_VX_WX), invalid, invalid),
	0x37: newMandatoryPrefix(invalid, newVW(XMM0, Pcmpgtq_VX_WX, Pcmpgtq_VX_WX), invalid, invalid),
	0x38: newMandatoryPrefix(invalid, newVW(XMM0, Pminsb_VX_WX, Pminsb_VX_WX), invalid, invalid),
	0x39: newMandatoryPrefix(invalid, newVW(XMM0, Pminsd_VX_WX, Pminsd_VX_WX), invalid, invalid),
	0x3a: newMandatoryPrefix(invalid, newVW(XMM0, Pminuw_VX_WX, Pminuw_VX_WX), invalid, invalid),
	0x3b: newMandatoryPrefix(invalid, newVW(XMM0, Pminud_VX_WX, Pminud_VX_WX), invalid, invalid),
	0x3c: newMandatoryPrefix(invalid, newVW(XMM0, Pmaxsb_VX_WX, Pmaxsb_VX_WX), invalid, invalid),
	0x3d: newMandatoryPrefix(invalid, newVW(XMM0, Pmaxsd_VX_WX, Pmaxsd_VX_WX), invalid, invalid),
	0x3e: newMandatoryPrefix(invalid, newVW(XMM0, Pmaxuw_VX_WX, Pmaxuw_VX_WX), invalid, invalid),
	0x3f: newMandatoryPrefix(invalid, newVW(XMM0, Pmaxud_VX_WX, Pmaxud_VX_WX), invalid, invalid),
	0x40: newMandatoryPrefix(invalid, newVW(XMM0, Pmulld_VX_WX, Pmulld_VX_WX), invalid, invalid),
	0x41: newMandatoryPrefix(
		invalid,
		newVW(XMM0, Phminposuw_VX_WX, Phminposuw_VX_WX),
		invalid,
		invalid,
	),
	0x80: newMandatoryPrefix(
		invalid,
		newGvEv3264(Invept_Gd_M, Invept_Gq_M, false, true),
		invalid,
		invalid,
	),
	0x81: newMandatoryPrefix(
		invalid,
		newGvEv3264(Invvpid_Gd_M, Invvpid_Gq_M, false, true),
		invalid,
		invalid,
	),
	0x82: newMandatoryPrefix(
		invalid,
		newGvEv3264(Invpcid_Gd_M, Invpcid_Gq_M, false, true),
		invalid,
		invalid,
	),
	0xc8: newMandatoryPrefix(newVW(XMM0, Sha1nexte_VX_WX, Sha1nexte_VX_WX), invalid, invalid, invalid),
	0xc9: newMandatoryPrefix(newVW(XMM0, Sha1msg1_VX_WX, Sha1msg1_VX_WX), invalid, invalid, invalid),
	0xca: newMandatoryPrefix(newVW(XMM0, Sha1msg2_VX_WX, Sha1msg2_VX_WX), invalid, invalid, invalid),
	0xcb: newMandatoryPrefix(
		newVW(XMM0, Sha256rnds2_VX_WX, Sha256rnds2_VX_WX),
		invalid,
		invalid,
		invalid,
	),
	0xcc: newMandatoryPrefix(
		newVW(XMM0, Sha256msg1_VX_WX, Sha256msg1_VX_WX),
		invalid,
		invalid,
		invalid,
	),
	0xcd: newMandatoryPrefix(
		newVW(XMM0, Sha256msg2_VX_WX, Sha256msg2_VX_WX),
		invalid,
		invalid,
		invalid,
	),
	0xdb: newMandatoryPrefix(invalid, newVW(XMM0, Aesimc_VX_WX, Aesimc_VX_WX), invalid, invalid),
	0xdc: newMandatoryPrefix(invalid, newVW(XMM0, Aesenc_VX_WX, Aesenc_VX_WX), invalid, invalid),
	0xdd: newMandatoryPrefix(
		invalid,
		newVW(XMM0, Aesenclast_VX_WX, Aesenclast_VX_WX),
		invalid,
		invalid,
	),
	0xde: newMandatoryPrefix(invalid, newVW(XMM0, Aesdec_VX_WX, Aesdec_VX_WX), invalid, invalid),
	0xdf: newMandatoryPrefix(
		invalid,
		newVW(XMM0, Aesdeclast_VX_WX, Aesdeclast_VX_WX),
		invalid,
		invalid,
	),
	0xf0: newMandatoryPrefixF3F2(
		newGvM(Movbe_Gw_Mw, Movbe_Gd_Md, Movbe_Gq_Mq),
		invalid,
		newGvEbREX(Crc32_Gd_Eb, Crc32_Gq_Eb),
	),
	0xf1: newMandatoryPrefixF3F2(
		newMvGv(Movbe_Mw_Gw, Movbe_Md_Gd, Movbe_Mq_Gq),
		invalid,
		newGvEvREX(Crc32_Gd_Ed, Crc32_Gq_Eq),
	),
	0xf6: newMandatoryPrefix(
		invalid,
		newGvEvREX(Adcx_Gd_Ed, Adcx_Gq_Eq),
		newGvEvREX(Adox_Gd_Ed, Adox_Gq_Eq),
		invalid,
	),
})

// legacy32Map3 holds the 0F3A map in 16-bit and 32-bit mode.
var legacy32Map3 = fillInvalid([256]*handler{
	0x08: newMandatoryPrefix(
		invalid,
		newVWIb(XMM0, Roundps_VX_WX_Ib, Roundps_VX_WX_Ib),
		invalid,
		invalid,
	),
	0x09: newMandatoryPrefix(
		invalid,
		newVWIb(XMM0, Roundpd_VX_WX_Ib, Roundpd_VX_WX_Ib),
		invalid,
		invalid,
	),
	0x0a: newMandatoryPrefix(
		invalid,
		newVWIb(XMM0, Roundss_VX_WX_Ib, Roundss_VX_WX_Ib),
		invalid,
		invalid,
	),
	0x0b: newMandatoryPrefix(
		invalid,
		newVWIb(XMM0, Roundsd_VX_WX_Ib, Roundsd_VX_WX_Ib),
		invalid,
		invalid,
	),
	0x0c: newMandatoryPrefix(
		invalid,
		newVWIb(XMM0, Blendps_VX_WX_Ib, Blendps_VX_WX_Ib),
		invalid,
		invalid,
	),
	0x0d: newMandatoryPrefix(
		invalid,
		newVWIb(XMM0, Blendpd_VX_WX_Ib, Blendpd_VX_WX_Ib),
		invalid,
		invalid,
	),
	0x0e: newMandatoryPrefix(
		invalid,
		newVWIb(XMM0, Pblendw_VX_WX_Ib, Pblendw_VX_WX_Ib),
		invalid,
		invalid,
	),
	0x0f: newMandatoryPrefix(
		newPQIb(Palignr_P_Q_Ib),
		newVWIb(XMM0, Palignr_VX_WX_Ib, Palignr_VX_WX_Ib),
		invalid,
		invalid,
	),
	0x14: newMandatoryPrefix(
		invalid,
		newGvMVXIb(XMM0, Pextrb_RdMb_VX_Ib, Pextrb_RqMb_VX_Ib),
		invalid,
		invalid,
	),
	0x15: newMandatoryPrefix(
		invalid,
		newGvMVXIb(XMM0, Pextrw_RdMw_VX_Ib, Pextrw_RqMw_VX_Ib),
		invalid,
		invalid,
	),
	0x16: newMandatoryPrefix(
		invalid,
		newGvMVXIb(XMM0, Pextrd_Ed_VX_Ib, Pextrq_Eq_VX_Ib),
		invalid,
		invalid,
	),
	0x17: newMandatoryPrefix(
		invalid,
		newEdVIb(XMM0, Extractps_Ed_VX_Ib, Extractps_Eq_VX_Ib),
		invalid,
		invalid,
	),
	0x20: newMandatoryPrefix(
		invalid,
		newVXEIb(XMM0, Pinsrb_VX_RdMb_Ib, Pinsrb_VX_RqMb_Ib),
		invalid,
		invalid,
	),
	0x21: newMandatoryPrefix(
		invalid,
		newVWIb(XMM0, Insertps_VX_WX_Ib, Insertps_VX_WX_Ib),
		invalid,
		invalid,
	),
	0x22: newMandatoryPrefix(
		invalid,
		newVXEIb(XMM0, Pinsrd_VX_Ed_Ib, Pinsrq_VX_Eq_Ib),
		invalid,
		invalid,
	),
	0x40: newMandatoryPrefix(invalid, newVWIb(XMM0, Dpps_VX_WX_Ib, Dpps_VX_WX_Ib), invalid, invalid),
	0x41: newMandatoryPrefix(invalid, newVWIb(XMM0, Dppd_VX_WX_Ib, Dppd_VX_WX_Ib), invalid, invalid),
	0x42: newMandatoryPrefix(
		invalid,
		newVWIb(XMM0, Mpsadbw_VX_WX_Ib, Mpsadbw_VX_WX_Ib),
		invalid,
		invalid,
	),
	0x44: newMandatoryPrefix(
		invalid,
		newVWIb(XMM0, Pclmulqdq_VX_WX_Ib, Pclmulqdq_VX_WX_Ib),
		invalid,
		invalid,
	),
	0x60: newMandatoryPrefix(
		invalid,
		newVWIb(XMM0, Pcmpestrm_VX_WX_Ib, Pcmpestrm64_VX_WX_Ib),
		invalid,
		invalid,
	),
	0x61: newMandatoryPrefix(
		invalid,
		newVWIb(XMM0, Pcmpestri_VX_WX_Ib, Pcmpestri64_VX_WX_Ib),
		invalid,
		invalid,
	),
	0x62: newMandatoryPrefix(
		invalid,
		newVWIb(XMM0, Pcmpistrm_VX_WX_Ib, Pcmpistrm_VX_WX_Ib),
		invalid,
		invalid,
	),
	0x63: newMandatoryPrefix(
		invalid,
		newVWIb(XMM0, Pcmpistri_VX_WX_Ib, Pcmpistri_VX_WX_Ib),
		invalid,
		invalid,
	),
	0xcc: newMandatoryPrefix(
		newVWIb(XMM0, Sha1rnds4_VX_WX_Ib, Sha1rnds4_VX_WX_Ib),
		invalid,
		invalid,
		invalid,
	),
	0xdf: newMandatoryPrefix(
		invalid,
		newVWIb(XMM0, Aeskeygenassist_VX_WX_Ib, Aeskeygenassist_VX_WX_Ib),
		invalid,
		invalid,
	),
})

// legacy32Map1 holds the 0F map in 16-bit and 32-bit mode.
var legacy32Map1 = fillInvalid([256]*handler{
	0x00: newGroup(legacy32Grp0F00),
	0x01: newGroup8x64(legacy32Grp0F01Lo, legacy32Grp0F01Hi),
	0x02: newGvEv(Lar_Gw_Ew, Lar_Gd_Ed, Lar_Gq_Eq),
	0x03: newGvEv(Lsl_Gw_Ew, Lsl_Gd_Ed, Lsl_Gq_Eq),
	0x05: newOptions(invalidNoModRM, newSimple(Loadall286), OptionLoadall286),
	0x06: newSimple(Clts),
	0x07: newOptions(invalidNoModRM, newSimple(Loadall386), OptionLoadall386),
	0x08: newSimple(Invd),
	0x09: newWbinvd(Wbinvd, Wbnoinvd),
	0x0a: newOptions(invalidNoModRM, newSimple(Cl1invmb), OptionCl1invmb),
	0x0b: newSimple(Ud2),
	0x0d: newOptions(
		newGroup(legacy32Grp0F0D),
		newEvGv(Reservednop_Ew_Gw_0F0D, Reservednop_Ed_Gd_0F0D, Reservednop_Eq_Gq_0F0D, 0),
		OptionForceReservedNop,
	),
	0x0e: newSimple(Femms),
	0x0f: newD3NOW(),
	0x10: newOptions(
		newMandatoryPrefix(
			newVW(XMM0, Movups_VX_WX, Movups_VX_WX),
			newVW(XMM0, Movupd_VX_WX, Movupd_VX_WX),
			newVW(XMM0, Movss_VX_WX, Movss_VX_WX),
			newVW(XMM0, Movsd_VX_WX, Movsd_VX_WX),
		),
		newEbGb(Umov_Eb_Gb, 0),
		OptionUmov,
	),
	0x11: newOptions(
		newMandatoryPrefix(
			newWV(XMM0, Movups_WX_VX),
			newWV(XMM0, Movupd_WX_VX),
			newWV(XMM0, Movss_WX_VX),
			newWV(XMM0, Movsd_WX_VX),
		),
		newEvGv(Umov_Ew_Gw, Umov_Ed_Gd, INVALID, 0),
		OptionUmov,
	),
	0x12: newOptions(
		newMandatoryPrefix(
			newVW(XMM0, Movhlps_VX_RX, Movlps_VX_M),
			newVM(XMM0, Movlpd_VX_M),
			newVW(XMM0, Movsldup_VX_WX, Movsldup_VX_WX),
			newVW(XMM0, Movddup_VX_WX, Movddup_VX_WX),
		),
		newGbEb(Umov_Gb_Eb),
		OptionUmov,
	),
	0x13: newOptions(
		newMandatoryPrefix(
			newMV(XMM0, Movlps_M_VX),
			newMV(XMM0, Movlpd_M_VX),
			invalid,
			invalid,
		),
		newGvEv(Umov_Gw_Ew, Umov_Gd_Ed, INVALID),
		OptionUmov,
	),
	0x14: newMandatoryPrefix(
		newVW(XMM0, Unpcklps_VX_WX, Unpcklps_VX_WX),
		newVW(XMM0, Unpcklpd_VX_WX, Unpcklpd_VX_WX),
		invalid,
		invalid,
	),
	0x15: newMandatoryPrefix(
		newVW(XMM0, Unpckhps_VX_WX, Unpckhps_VX_WX),
		newVW(XMM0, Unpckhpd_VX_WX, Unpckhpd_VX_WX),
		invalid,
		invalid,
	),
	0x16: newMandatoryPrefix(
		newVW(XMM0, Movlhps_VX_RX, Movhps_VX_M),
		newVM(XMM0, Movhpd_VX_M),
		newVW(XMM0, Movshdup_VX_WX, Movshdup_VX_WX),
		invalid,
	),
	0x17: newMandatoryPrefix(newMV(XMM0, Movhps_M_VX), newMV(XMM0, Movhpd_M_VX), invalid, invalid),
	0x18: newOptions(
		newGroup(legacy32Grp0F18),
		newEvGv(Reservednop_Ew_Gw_0F18, Reservednop_Ed_Gd_0F18, Reservednop_Eq_Gq_0F18, 0),
		OptionForceReservedNop,
	),
	0x19: newOptions(
		invalid,
		newEvGv(Reservednop_Ew_Gw_0F19, Reservednop_Ed_Gd_0F19, Reservednop_Eq_Gq_0F19, 0),
		OptionForceReservedNop,
	),
	0x1a: newOptions(
		newOptions(
			newEvGv(
				Reservednop_Ew_Gw_0F1A,
				Reservednop_Ed_Gd_0F1A,
				Reservednop_Eq_Gq_0F1A,
				0,
			),
			newMandatoryPrefix(
				newRM(invalid, newBMIB(Bndldx_B_MIB)),
				newBBM(Bndmov_B_BMq, Bndmov_B_BMo),
				newBEv(Bndcl_B_Ed, Bndcl_B_Eq),
				newBEv(Bndcu_B_Ed, Bndcu_B_Eq),
			),
			OptionMPX,
		),
		newEvGv(Reservednop_Ew_Gw_0F1A, Reservednop_Ed_Gd_0F1A, Reservednop_Eq_Gq_0F1A, 0),
		OptionForceReservedNop,
	),
	0x1b: newOptions(
		newOptions(
			newEvGv(
				Reservednop_Ew_Gw_0F1B,
				Reservednop_Ed_Gd_0F1B,
				Reservednop_Eq_Gq_0F1B,
				0,
			),
			newMandatoryPrefix(
				newRM(invalid, newMIBB(Bndstx_MIB_B)),
				newBMB(Bndmov_BMq_B, Bndmov_BMo_B),
				newRM(invalid, newBEv(Bndmk_B_Md, Bndmk_B_Mq)),
				newBEv(Bndcn_B_Ed, Bndcn_B_Eq),
			),
			OptionMPX,
		),
		newEvGv(Reservednop_Ew_Gw_0F1B, Reservednop_Ed_Gd_0F1B, Reservednop_Eq_Gq_0F1B, 0),
		OptionForceReservedNop,
	),
	0x1c: newOptions(
		invalid,
		newEvGv(Reservednop_Ew_Gw_0F1C, Reservednop_Ed_Gd_0F1C, Reservednop_Eq_Gq_0F1C, 0),
		OptionForceReservedNop,
	),
	0x1d: newOptions(
		invalid,
		newEvGv(Reservednop_Ew_Gw_0F1D, Reservednop_Ed_Gd_0F1D, Reservednop_Eq_Gq_0F1D, 0),
		OptionForceReservedNop,
	),
	0x1e: newOptions(
		invalid,
		newEvGv(Reservednop_Ew_Gw_0F1E, Reservednop_Ed_Gd_0F1E, Reservednop_Eq_Gq_0F1E, 0),
		OptionForceReservedNop,
	),
	0x1f: newOptions(
		newGroup(legacy32Grp0F1F),
		newEvGv(Reservednop_Ew_Gw_0F1F, Reservednop_Ed_Gd_0F1F, Reservednop_Eq_Gq_0F1F, 0),
		OptionForceReservedNop,
	),
	0x20: newRC(Mov_Rd_Cd, INVALID, CR0),
	0x21: newRC(Mov_Rd_Dd, INVALID, DR0),
	0x22: newCR(Mov_Cd_Rd, INVALID, CR0),
	0x23: newCR(Mov_Dd_Rd, INVALID, DR0),
	0x24: newOptions(invalid, newRC(Mov_Rd_TR, INVALID, TR0), OptionMovTr),
	0x26: newOptions(invalid, newCR(Mov_TR_Rd, INVALID, TR0), OptionMovTr),
	0x28: newMandatoryPrefix(
		newVW(XMM0, Movaps_VX_WX, Movaps_VX_WX),
		newVW(XMM0, Movapd_VX_WX, Movapd_VX_WX),
		invalid,
		invalid,
	),
	0x29: newMandatoryPrefix(newWV(XMM0, Movaps_WX_VX), newWV(XMM0, Movapd_WX_VX), invalid, invalid),
	0x2a: newMandatoryPrefix(
		newVQ(XMM0, Cvtpi2ps_VX_Q),
		newVQ(XMM0, Cvtpi2pd_VX_Q),
		newVEv(XMM0, Cvtsi2ss_VX_Ed, Cvtsi2ss_VX_Eq),
		newVEv(XMM0, Cvtsi2sd_VX_Ed, Cvtsi2sd_VX_Eq),
	),
	0x2b: newMandatoryPrefix(newMV(XMM0, Movntps_M_VX), newMV(XMM0, Movntpd_M_VX), invalid, invalid),
	0x2c: newMandatoryPrefix(
		newPW(XMM0, Cvttps2pi_P_WX),
		newPW(XMM0, Cvttpd2pi_P_WX),
		newGvW(XMM0, Cvttss2si_Gd_WX, Cvttss2si_Gq_WX),
		newGvW(XMM0, Cvttsd2si_Gd_WX, Cvttsd2si_Gq_WX),
	),
	0x2d: newMandatoryPrefix(
		newPW(XMM0, Cvtps2pi_P_WX),
		newPW(XMM0, Cvtpd2pi_P_WX),
		newGvW(XMM0, Cvtss2si_Gd_WX, Cvtss2si_Gq_WX),
		newGvW(XMM0, Cvtsd2si_Gd_WX, Cvtsd2si_Gq_WX),
	),
	0x2e: newMandatoryPrefix(
		newVW(XMM0, Ucomiss_VX_WX, Ucomiss_VX_WX),
		newVW(XMM0, Ucomisd_VX_WX, Ucomisd_VX_WX),
		invalid,
		invalid,
	),
	0x2f: newMandatoryPrefix(
		newVW(XMM0, Comiss_VX_WX, Comiss_VX_WX),
		newVW(XMM0, Comisd_VX_WX, Comisd_VX_WX),
		invalid,
		invalid,
	),
	0x30: newSimple(Wrmsr),
	0x31: newSimple(Rdtsc),
	0x32: newSimple(Rdmsr),
	0x33: newSimple(Rdpmc),
	0x34: newSimple(Sysenter),
	0x35: newSimple4(Sysexitd, Sysexitq),
	0x37: newSimple(Getsec),
	0x38: newAnotherTable(&legacy32Map2),
	0x3a: newAnotherTable(&legacy32Map3),
	0x40: newGvEv(Cmovo_Gw_Ew, Cmovo_Gd_Ed, Cmovo_Gq_Eq),
	0x41: newGvEv(Cmovno_Gw_Ew, Cmovno_Gd_Ed, Cmovno_Gq_Eq),
	0x42: newGvEv(Cmovb_Gw_Ew, Cmovb_Gd_Ed, Cmovb_Gq_Eq),
	0x43: newGvEv(Cmovae_Gw_Ew, Cmovae_Gd_Ed, Cmovae_Gq_Eq),
	0x44: newGvEv(Cmove_Gw_Ew, Cmove_Gd_Ed, Cmove_Gq_Eq),
	0x45: newGvEv(Cmovne_Gw_Ew, Cmovne_Gd_Ed, Cmovne_Gq_Eq),
	0x46: newGvEv(Cmovbe_Gw_Ew, Cmovbe_Gd_Ed, Cmovbe_Gq_Eq),
	0x47: newGvEv(Cmova_Gw_Ew, Cmova_Gd_Ed, Cmova_Gq_Eq),
	0x48: newGvEv(Cmovs_Gw_Ew, Cmovs_Gd_Ed, Cmovs_Gq_Eq),
	0x49: newGvEv(Cmovns_Gw_Ew, Cmovns_Gd_Ed, Cmovns_Gq_Eq),
	0x4a: newGvEv(Cmovp_Gw_Ew, Cmovp_Gd_Ed, Cmovp_Gq_Eq),
	0x4b: newGvEv(Cmovnp_Gw_Ew, Cmovnp_Gd_Ed, Cmovnp_Gq_Eq),
	0x4c: newGvEv(Cmovl_Gw_Ew, Cmovl_Gd_Ed, Cmovl_Gq_Eq),
	0x4d: newGvEv(Cmovge_Gw_Ew, Cmovge_Gd_Ed, Cmovge_Gq_Eq),
	0x4e: newGvEv(Cmovle_Gw_Ew, Cmovle_Gd_Ed, Cmovle_Gq_Eq),
	0x4f: newGvEv(Cmovg_Gw_Ew, Cmovg_Gd_Ed, Cmovg_Gq_Eq),
	0x50: newMandatoryPrefix(
		newGvRX(XMM0, Movmskps_Gd_RX, Movmskps_Gq_RX),
		newGvRX(XMM0, Movmskpd_Gd_RX, Movmskpd_Gq_RX),
		invalid,
		invalid,
	),
	0x51: newMandatoryPrefix(
		newVW(XMM0, Sqrtps_VX_WX, Sqrtps_VX_WX),
		newVW(XMM0, Sqrtpd_VX_WX, Sqrtpd_VX_WX),
		newVW(XMM0, Sqrtss_VX_WX, Sqrtss_VX_WX),
		newVW(XMM0, Sqrtsd_VX_WX, Sqrtsd_VX_WX),
	),
	0x52: newMandatoryPrefix(
		newVW(XMM0, Rsqrtps_VX_WX, Rsqrtps_VX_WX),
		invalid,
		newVW(XMM0, Rsqrtss_VX_WX, Rsqrtss_VX_WX),
		invalid,
	),
	0x53: newMandatoryPrefix(
		newVW(XMM0, Rcpps_VX_WX, Rcpps_VX_WX),
		invalid,
		newVW(XMM0, Rcpss_VX_WX, Rcpss_VX_WX),
		invalid,
	),
	0x54: newMandatoryPrefix(
		newVW(XMM0, Andps_VX_WX, Andps_VX_WX),
		newVW(XMM0, Andpd_VX_WX, Andpd_VX_WX),
		invalid,
		invalid,
	),
	0x55: newMandatoryPrefix(
		newVW(XMM0, Andnps_VX_WX, Andnps_VX_WX),
		newVW(XMM0, Andnpd_VX_WX, Andnpd_VX_WX),
		invalid,
		invalid,
	),
	0x56: newMandatoryPrefix(
		newVW(XMM0, Orps_VX_WX, Orps_VX_WX),
		newVW(XMM0, Orpd_VX_WX, Orpd_VX_WX),
		invalid,
		invalid,
	),
	0x57: newMandatoryPrefix(
		newVW(XMM0, Xorps_VX_WX, Xorps_VX_WX),
		newVW(XMM0, Xorpd_VX_WX, Xorpd_VX_WX),
		invalid,
		invalid,
	),
	0x58: newMandatoryPrefix(
		newVW(XMM0, Addps_VX_WX, Addps_VX_WX),
		newVW(XMM0, Addpd_VX_WX, Addpd_VX_WX),
		newVW(XMM0, Addss_VX_WX, Addss_VX_WX),
		newVW(XMM0, Addsd_VX_WX, Addsd_VX_WX),
	),
	0x59: newMandatoryPrefix(
		newVW(XMM0, Mulps_VX_WX, Mulps_VX_WX),
		newVW(XMM0, Mulpd_VX_WX, Mulpd_VX_WX),
		newVW(XMM0, Mulss_VX_WX, Mulss_VX_WX),
		newVW(XMM0, Mulsd_VX_WX, Mulsd_VX_WX),
	),
	0x5a: newMandatoryPrefix(
		newVW(XMM0, Cvtps2pd_VX_WX, Cvtps2pd_VX_WX),
		newVW(XMM0, Cvtpd2ps_VX_WX, Cvtpd2ps_VX_WX),
		newVW(XMM0, Cvtss2sd_VX_WX, Cvtss2sd_VX_WX),
		newVW(XMM0, Cvtsd2ss_VX_WX, Cvtsd2ss_VX_WX),
	),
	0x5b: newMandatoryPrefix(
		newVW(XMM0, Cvtdq2ps_VX_WX, Cvtdq2ps_VX_WX),
		newVW(XMM0, Cvtps2dq_VX_WX, Cvtps2dq_VX_WX),
		newVW(XMM0, Cvttps2dq_VX_WX, Cvttps2dq_VX_WX),
		invalid,
	),
	0x5c: newMandatoryPrefix(
		newVW(XMM0, Subps_VX_WX, Subps_VX_WX),
		newVW(XMM0, Subpd_VX_WX, Subpd_VX_WX),
		newVW(XMM0, Subss_VX_WX, Subss_VX_WX),
		newVW(XMM0, Subsd_VX_WX, Subsd_VX_WX),
	),
	0x5d: newMandatoryPrefix(
		newVW(XMM0, Minps_VX_WX, Minps_VX_WX),
		newVW(XMM0, Minpd_VX_WX, Minpd_VX_WX),
		newVW(XMM0, Minss_VX_WX, Minss_VX_WX),
		newVW(XMM0, Minsd_VX_WX, Minsd_VX_WX),
	),
	0x5e: newMandatoryPrefix(
		newVW(XMM0, Divps_VX_WX, Divps_VX_WX),
		newVW(XMM0, Divpd_VX_WX, Divpd_VX_WX),
		newVW(XMM0, Divss_VX_WX, Divss_VX_WX),
		newVW(XMM0, Divsd_VX_WX, Divsd_VX_WX),
	),
	0x5f: newMandatoryPrefix(
		newVW(XMM0, Maxps_VX_WX, Maxps_VX_WX),
		newVW(XMM0, Maxpd_VX_WX, Maxpd_VX_WX),
		newVW(XMM0, Maxss_VX_WX, Maxss_VX_WX),
		newVW(XMM0, Maxsd_VX_WX, Maxsd_VX_WX),
	),
	0x60: newMandatoryPrefix(
		newPQ(Punpcklbw_P_Q),
		newVW(XMM0, Punpcklbw_VX_WX, Punpcklbw_VX_WX),
		invalid,
		invalid,
	),
	0x61: newMandatoryPrefix(
		newPQ(Punpcklwd_P_Q),
		newVW(XMM0, Punpcklwd_VX_WX, Punpcklwd_VX_WX),
		invalid,
		invalid,
	),
	0x62: newMandatoryPrefix(
		newPQ(Punpckldq_P_Q),
		newVW(XMM0, Punpckldq_VX_WX, Punpckldq_VX_WX),
		invalid,
		invalid,
	),
	0x63: newMandatoryPrefix(
		newPQ(Packsswb_P_Q),
		newVW(XMM0, Packsswb_VX_WX, Packsswb_VX_WX),
		invalid,
		invalid,
	),
	0x64: newMandatoryPrefix(
		newPQ(Pcmpgtb_P_Q),
		newVW(XMM0, Pcmpgtb_VX_WX, Pcmpgtb_VX_WX),
		invalid,
		invalid,
	),
	0x65: newMandatoryPrefix(
		newPQ(Pcmpgtw_P_Q),
		newVW(XMM0, Pcmpgtw_VX_WX, Pcmpgtw_VX_WX),
		invalid,
		invalid,
	),
	0x66: newMandatoryPrefix(
		newPQ(Pcmpgtd_P_Q),
		newVW(XMM0, Pcmpgtd_VX_WX, Pcmpgtd_VX_WX),
		invalid,
		invalid,
	),
	0x67: newMandatoryPrefix(
		newPQ(Packuswb_P_Q),
		newVW(XMM0, Packuswb_VX_WX, Packuswb_VX_WX),
		invalid,
		invalid,
	),
	0x68: newMandatoryPrefix(
		newPQ(Punpckhbw_P_Q),
		newVW(XMM0, Punpckhbw_VX_WX, Punpckhbw_VX_WX),
		invalid,
		invalid,
	),
	0x69: newMandatoryPrefix(
		newPQ(Punpckhwd_P_Q),
		newVW(XMM0, Punpckhwd_VX_WX, Punpckhwd_VX_WX),
		invalid,
		invalid,
	),
	0x6a: newMandatoryPrefix(
		newPQ(Punpckhdq_P_Q),
		newVW(XMM0, Punpckhdq_VX_WX, Punpckhdq_VX_WX),
		invalid,
		invalid,
	),
	0x6b: newMandatoryPrefix(
		newPQ(Packssdw_P_Q),
		newVW(XMM0, Packssdw_VX_WX, Packssdw_VX_WX),
		invalid,
		invalid,
	),
	0x6c: newMandatoryPrefix(
		invalid,
		newVW(XMM0, Punpcklqdq_VX_WX, Punpcklqdq_VX_WX),
		invalid,
		invalid,
	),
	0x6d: newMandatoryPrefix(
		invalid,
		newVW(XMM0, Punpckhqdq_VX_WX, Punpckhqdq_VX_WX),
		invalid,
		invalid,
	),
	0x6e: newMandatoryPrefix(
		newPEv(Movd_P_Ed, Movq_P_Eq),
		newVXEv(Movd_VX_Ed, Movq_VX_Eq),
		invalid,
		invalid,
	),
	0x6f: newMandatoryPrefix(
		newPQ(Movq_P_Q),
		newVW(XMM0, Movdqa_VX_WX, Movdqa_VX_WX),
		newVW(XMM0, Movdqu_VX_WX, Movdqu_VX_WX),
		invalid,
	),
	0x70: newMandatoryPrefix(
		newPQIb(Pshufw_P_Q_Ib),
		newVWIb(XMM0, Pshufd_VX_WX_Ib, Pshufd_VX_WX_Ib),
		newVWIb(XMM0, Pshufhw_VX_WX_Ib, Pshufhw_VX_WX_Ib),
		newVWIb(XMM0, Pshuflw_VX_WX_Ib, Pshuflw_VX_WX_Ib),
	),
	0x71: newGroup(legacy32Grp0F71),
	0x72: newGroup(legacy32Grp0F72),
	0x73: newGroup(legacy32Grp0F73),
	0x74: newMandatoryPrefix(
		newPQ(Pcmpeqb_P_Q),
		newVW(XMM0, Pcmpeqb_VX_WX, Pcmpeqb_VX_WX),
		invalid,
		invalid,
	),
	0x75: newMandatoryPrefix(
		newPQ(Pcmpeqw_P_Q),
		newVW(XMM0, Pcmpeqw_VX_WX, Pcmpeqw_VX_WX),
		invalid,
		invalid,
	),
	0x76: newMandatoryPrefix(
		newPQ(Pcmpeqd_P_Q),
		newVW(XMM0, Pcmpeqd_VX_WX, Pcmpeqd_VX_WX),
		invalid,
		invalid,
	),
	0x77: newMandatoryPrefixMaybeModRM(newSimple(Emms), invalid, invalid, invalid),
	0x78: newEvGv3264(Vmread_Ed_Gd, Vmread_Eq_Gq),
	0x79: newGvEv3264(Vmwrite_Gd_Ed, Vmwrite_Gq_Eq, true, true),
	0x7c: newMandatoryPrefix(
		invalid,
		newVW(XMM0, Haddpd_VX_WX, Haddpd_VX_WX),
		invalid,
		newVW(XMM0, Haddps_VX_WX, Haddps_VX_WX),
	),
	0x7d: newMandatoryPrefix(
		invalid,
		newVW(XMM0, Hsubpd_VX_WX, Hsubpd_VX_WX),
		invalid,
		newVW(XMM0, Hsubps_VX_WX, Hsubps_VX_WX),
	),
	0x7e: newMandatoryPrefix(
		newEvP(Movd_Ed_P, Movq_Eq_P),
		newEvVX(Movd_Ed_VX, Movq_Eq_VX),
		newVW(XMM0, Movq_VX_WX, Movq_VX_WX),
		invalid,
	),
	0x7f: newMandatoryPrefix(
		newQP(Movq_Q_P),
		newWV(XMM0, Movdqa_WX_VX),
		newWV(XMM0, Movdqu_WX_VX),
		invalid,
	),
	0x80: newJz(Jo_Jw16, Jo_Jd32, INVALID),
	0x81: newJz(Jno_Jw16, Jno_Jd32, INVALID),
	0x82: newJz(Jb_Jw16, Jb_Jd32, INVALID),
	0x83: newJz(Jae_Jw16, Jae_Jd32, INVALID),
	0x84: newJz(Je_Jw16, Je_Jd32, INVALID),
	0x85: newJz(Jne_Jw16, Jne_Jd32, INVALID),
	0x86: newJz(Jbe_Jw16, Jbe_Jd32, INVALID),
	0x87: newJz(Ja_Jw16, Ja_Jd32, INVALID),
	0x88: newJz(Js_Jw16, Js_Jd32, INVALID),
	0x89: newJz(Jns_Jw16, Jns_Jd32, INVALID),
	0x8a: newJz(Jp_Jw16, Jp_Jd32, INVALID),
	0x8b: newJz(Jnp_Jw16, Jnp_Jd32, INVALID),
	0x8c: newJz(Jl_Jw16, Jl_Jd32, INVALID),
	0x8d: newJz(Jge_Jw16, Jge_Jd32, INVALID),
	0x8e: newJz(Jle_Jw16, Jle_Jd32, INVALID),
	0x8f: newJz(Jg_Jw16, Jg_Jd32, INVALID),
	0x90: newEb(Seto_Eb, 0),
	0x91: newEb(Setno_Eb, 0),
	0x92: newEb(Setb_Eb, 0),
	0x93: newEb(Setae_Eb, 0),
	0x94: newEb(Sete_Eb, 0),
	0x95: newEb(Setne_Eb, 0),
	0x96: newEb(Setbe_Eb, 0),
	0x97: newEb(Seta_Eb, 0),
	0x98: newEb(Sets_Eb, 0),
	0x99: newEb(Setns_Eb, 0),
	0x9a: newEb(Setp_Eb, 0),
	0x9b: newEb(Setnp_Eb, 0),
	0x9c: newEb(Setl_Eb, 0),
	0x9d: newEb(Setge_Eb, 0),
	0x9e: newEb(Setle_Eb, 0),
	0x9f: newEb(Setg_Eb, 0),
	0xa0: newPushOpSizeReg(Pushw_FS, Pushd_FS, INVALID, FS),
	0xa1: newPushOpSizeReg(Popw_FS, Popd_FS, INVALID, FS),
	0xa2: newSimple(Cpuid),
	0xa3: newEvGv(Bt_Ew_Gw, Bt_Ed_Gd, Bt_Eq_Gq, 0),
	0xa4: newEvGvIb(Shld_Ew_Gw_Ib, Shld_Ed_Gd_Ib, Shld_Eq_Gq_Ib),
	0xa5: newEvGvCL(Shld_Ew_Gw_CL, Shld_Ed_Gd_CL, Shld_Eq_Gq_CL),
	0xa6: newOptions(
		newOptions(invalid, newGvEv(Xbts_Gw_Ew, Xbts_Gd_Ed, INVALID), OptionXbts),
		newEbGb(Cmpxchg486_Eb_Gb, 0),
		OptionCmpxchg486A,
	),
	0xa7: newOptions(
		newOptions(invalid, newEvGv(Ibts_Ew_Gw, Ibts_Ed_Gd, INVALID, 0), OptionXbts),
		newEvGv(Cmpxchg486_Ew_Gw, Cmpxchg486_Ed_Gd, INVALID, 0),
		OptionCmpxchg486A,
	),
	0xa8: newPushOpSizeReg(Pushw_GS, Pushd_GS, INVALID, GS),
	0xa9: newPushOpSizeReg(Popw_GS, Popd_GS, INVALID, GS),
	0xaa: newSimple(Rsm),
	0xab: newEvGv(Bts_Ew_Gw, Bts_Ed_Gd, Bts_Eq_Gq, hfLock | hfXacquireRelease),
	0xac: newEvGvIb(Shrd_Ew_Gw_Ib, Shrd_Ed_Gd_Ib, Shrd_Eq_Gq_Ib),
	0xad: newEvGvCL(Shrd_Ew_Gw_CL, Shrd_Ed_Gd_CL, Shrd_Eq_Gq_CL),
	0xae: newGroup8x64(legacy32Grp0FAELo, legacy32Grp0FAEHi),
	0xaf: newGvEv(Imul_Gw_Ew, Imul_Gd_Ed, Imul_Gq_Eq),
	0xb0: newEbGb(Cmpxchg_Eb_Gb, hfLock | hfXacquireRelease),
	0xb1: newEvGv(Cmpxchg_Ew_Gw, Cmpxchg_Ed_Gd, Cmpxchg_Eq_Gq, hfLock | hfXacquireRelease),
	0xb2: newGvMp(Lss_Gw_Mp, Lss_Gd_Mp, Lss_Gq_Mp),
	0xb3: newEvGv(Btr_Ew_Gw, Btr_Ed_Gd, Btr_Eq_Gq, hfLock | hfXacquireRelease),
	0xb4: newGvMp(Lfs_Gw_Mp, Lfs_Gd_Mp, Lfs_Gq_Mp),
	0xb5: newGvMp(Lgs_Gw_Mp, Lgs_Gd_Mp, Lgs_Gq_Mp),
	0xb6: newGvEb(Movzx_Gw_Eb, Movzx_Gd_Eb, Movzx_Gq_Eb),
	0xb7: newGvEw(Movzx_Gw_Ew, Movzx_Gd_Ew, Movzx_Gq_Ew),
	0xb8: newOptions(
		newMandatoryPrefixF3F2(
			invalid,
			newGvEv(Popcnt_Gw_Ew, Popcnt_Gd_Ed, Popcnt_Gq_Eq),
			invalid,
		),
		newMandatoryPrefixMaybeModRM(
			newJdisp(Jmpe_Disp16, Jmpe_Disp32),
			invalid,
			newGvEv(Popcnt_Gw_Ew, Popcnt_Gd_Ed, Popcnt_Gq_Eq),
			invalid,
		),
		OptionJmpe,
	),
	0xb9: newGvEv(Ud1_Gw_Ew, Ud1_Gd_Ed, Ud1_Gq_Eq),
	0xba: newGroup(legacy32Grp0FBA),
	0xbb: newEvGv(Btc_Ew_Gw, Btc_Ed_Gd, Btc_Eq_Gq, hfLock | hfXacquireRelease),
	0xbc: newOptions(
		newMandatoryPrefixF3F2(
			newGvEv(Bsf_Gw_Ew, Bsf_Gd_Ed, Bsf_Gq_Eq),
			newGvEv(Tzcnt_Gw_Ew, Tzcnt_Gd_Ed, Tzcnt_Gq_Eq),
			invalid,
		),
		newGvEv(Bsf_Gw_Ew, Bsf_Gd_Ed, Bsf_Gq_Eq),
		OptionNoMPFX0FBC,
	),
	0xbd: newOptions(
		newMandatoryPrefixF3F2(
			newGvEv(Bsr_Gw_Ew, Bsr_Gd_Ed, Bsr_Gq_Eq),
			newGvEv(Lzcnt_Gw_Ew, Lzcnt_Gd_Ed, Lzcnt_Gq_Eq),
			invalid,
		),
		newGvEv(Bsr_Gw_Ew, Bsr_Gd_Ed, Bsr_Gq_Eq),
		OptionNoMPFX0FBD,
	),
	0xbe: newGvEb(Movsx_Gw_Eb, Movsx_Gd_Eb, Movsx_Gq_Eb),
	0xbf: newGvEw(Movsx_Gw_Ew, Movsx_Gd_Ew, Movsx_Gq_Ew),
	0xc0: newEbGb(Xadd_Eb_Gb, hfLock | hfXacquireRelease),
	0xc1: newEvGv(Xadd_Ew_Gw, Xadd_Ed_Gd, Xadd_Eq_Gq, hfLock | hfXacquireRelease),
	0xc2: newMandatoryPrefix(
		newVWIb(XMM0, Cmpps_VX_WX_Ib, Cmpps_VX_WX_Ib),
		newVWIb(XMM0, Cmppd_VX_WX_Ib, Cmppd_VX_WX_Ib),
		newVWIb(XMM0, Cmpss_VX_WX_Ib, Cmpss_VX_WX_Ib),
		newVWIb(XMM0, Cmpsd_VX_WX_Ib, Cmpsd_VX_WX_Ib),
	),
	0xc3: newMandatoryPrefix(newEvGvREX(Movnti_Md_Gd, Movnti_Mq_Gq), invalid, invalid, invalid),
	0xc4: newMandatoryPrefix(
		newPEvIb(Pinsrw_P_RdMw_Ib, Pinsrw_P_RqMw_Ib),
		newVXEIb(XMM0, Pinsrw_VX_RdMw_Ib, Pinsrw_VX_RqMw_Ib),
		invalid,
		invalid,
	),
	0xc5: newMandatoryPrefix(
		newGvNIbREX(Pextrw_Gd_N_Ib, Pextrw_Gq_N_Ib),
		newGvEvIbREX(XMM0, Pextrw_Gd_RX_Ib, Pextrw_Gq_RX_Ib),
		invalid,
		invalid,
	),
	0xc6: newMandatoryPrefix(
		newVWIb(XMM0, Shufps_VX_WX_Ib, Shufps_VX_WX_Ib),
		newVWIb(XMM0, Shufpd_VX_WX_Ib, Shufpd_VX_WX_Ib),
		invalid,
		invalid,
	),
	0xc7: newGroup(legacy32Grp0FC7),
	0xc8: newSimpleReg(0, [6]Code{Bswap_AX, INVALID, Bswap_EAX, INVALID, INVALID, INVALID}),
	0xc9: newSimpleReg(1, [6]Code{Bswap_CX, INVALID, Bswap_ECX, INVALID, INVALID, INVALID}),
	0xca: newSimpleReg(2, [6]Code{Bswap_DX, INVALID, Bswap_EDX, INVALID, INVALID, INVALID}),
	0xcb: newSimpleReg(3, [6]Code{Bswap_BX, INVALID, Bswap_EBX, INVALID, INVALID, INVALID}),
	0xcc: newSimpleReg(4, [6]Code{Bswap_SP, INVALID, Bswap_ESP, INVALID, INVALID, INVALID}),
	0xcd: newSimpleReg(5, [6]Code{Bswap_BP, INVALID, Bswap_EBP, INVALID, INVALID, INVALID}),
	0xce: newSimpleReg(6, [6]Code{Bswap_SI, INVALID, Bswap_ESI, INVALID, INVALID, INVALID}),
	0xcf: newSimpleReg(7, [6]Code{Bswap_DI, INVALID, Bswap_EDI, INVALID, INVALID, INVALID}),
	0xd0: newMandatoryPrefix(
		invalid,
		newVW(XMM0, Addsubpd_VX_WX, Addsubpd_VX_WX),
		invalid,
		newVW(XMM0, Addsubps_VX_WX, Addsubps_VX_WX),
	),
	0xd1: newMandatoryPrefix(
		newPQ(Psrlw_P_Q),
		newVW(XMM0, Psrlw_VX_WX, Psrlw_VX_WX),
		invalid,
		invalid,
	),
	0xd2: newMandatoryPrefix(
		newPQ(Psrld_P_Q),
		newVW(XMM0, Psrld_VX_WX, Psrld_VX_WX),
		invalid,
		invalid,
	),
	0xd3: newMandatoryPrefix(
		newPQ(Psrlq_P_Q),
		newVW(XMM0, Psrlq_VX_WX, Psrlq_VX_WX),
		invalid,
		invalid,
	),
	0xd4: newMandatoryPrefix(
		newPQ(Paddq_P_Q),
		newVW(XMM0, Paddq_VX_WX, Paddq_VX_WX),
		invalid,
		invalid,
	),
	0xd5: newMandatoryPrefix(
		newPQ(Pmullw_P_Q),
		newVW(XMM0, Pmullw_VX_WX, Pmullw_VX_WX),
		invalid,
		invalid,
	),
	0xd6: newMandatoryPrefix(
		invalid,
		newWV(XMM0, Movq_WX_VX),
		newVN(XMM0, Movq2dq_VX_N),
		newPR(XMM0, Movdq2q_P_RX),
	),
	0xd7: newMandatoryPrefix(
		newGvN(Pmovmskb_Gd_N, Pmovmskb_Gq_N),
		newGvRX(XMM0, Pmovmskb_Gd_RX, Pmovmskb_Gq_RX),
		invalid,
		invalid,
	),
	0xd8: newMandatoryPrefix(
		newPQ(Psubusb_P_Q),
		newVW(XMM0, Psubusb_VX_WX, Psubusb_VX_WX),
		invalid,
		invalid,
	),
	0xd9: newMandatoryPrefix(
		newPQ(Psubusw_P_Q),
		newVW(XMM0, Psubusw_VX_WX, Psubusw_VX_WX),
		invalid,
		invalid,
	),
	0xda: newMandatoryPrefix(
		newPQ(Pminub_P_Q),
		newVW(XMM0, Pminub_VX_WX, Pminub_VX_WX),
		invalid,
		invalid,
	),
	0xdb: newMandatoryPrefix(newPQ(Pand_P_Q), newVW(XMM0, Pand_VX_WX, Pand_VX_WX), invalid, invalid),
	0xdc: newMandatoryPrefix(
		newPQ(Paddusb_P_Q),
		newVW(XMM0, Paddusb_VX_WX, Paddusb_VX_WX),
		invalid,
		invalid,
	),
	0xdd: newMandatoryPrefix(
		newPQ(Paddusw_P_Q),
		newVW(XMM0, Paddusw_VX_WX, Paddusw_VX_WX),
		invalid,
		invalid,
	),
	0xde: newMandatoryPrefix(
		newPQ(Pmaxub_P_Q),
		newVW(XMM0, Pmaxub_VX_WX, Pmaxub_VX_WX),
		invalid,
		invalid,
	),
	0xdf: newMandatoryPrefix(
		newPQ(Pandn_P_Q),
		newVW(XMM0, Pandn_VX_WX, Pandn_VX_WX),
		invalid,
		invalid,
	),
	0xe0: newMandatoryPrefix(
		newPQ(Pavgb_P_Q),
		newVW(XMM0, Pavgb_VX_WX, Pavgb_VX_WX),
		invalid,
		invalid,
	),
	0xe1: newMandatoryPrefix(
		newPQ(Psraw_P_Q),
		newVW(XMM0, Psraw_VX_WX, Psraw_VX_WX),
		invalid,
		invalid,
	),
	0xe2: newMandatoryPrefix(
		newPQ(Psrad_P_Q),
		newVW(XMM0, Psrad_VX_WX, Psrad_VX_WX),
		invalid,
		invalid,
	),
	0xe3: newMandatoryPrefix(
		newPQ(Pavgw_P_Q),
		newVW(XMM0, Pavgw_VX_WX, Pavgw_VX_WX),
		invalid,
		invalid,
	),
	0xe4: newMandatoryPrefix(
		newPQ(Pmulhuw_P_Q),
		newVW(XMM0, Pmulhuw_VX_WX, Pmulhuw_VX_WX),
		invalid,
		invalid,
	),
	0xe5: newMandatoryPrefix(
		newPQ(Pmulhw_P_Q),
		newVW(XMM0, Pmulhw_VX_WX, Pmulhw_VX_WX),
		invalid,
		invalid,
	),
	0xe6: newMandatoryPrefix(
		invalid,
		newVW(XMM0, Cvttpd2dq_VX_WX, Cvttpd2dq_VX_WX),
		newVW(XMM0, Cvtdq2pd_VX_WX, Cvtdq2pd_VX_WX),
		newVW(XMM0, Cvtpd2dq_VX_WX, Cvtpd2dq_VX_WX),
	),
	0xe7: newMandatoryPrefix(newMP(Movntq_M_P), newMV(XMM0, Movntdq_M_VX), invalid, invalid),
	0xe8: newMandatoryPrefix(
		newPQ(Psubsb_P_Q),
		newVW(XMM0, Psubsb_VX_WX, Psubsb_VX_WX),
		invalid,
		invalid,
	),
	0xe9: newMandatoryPrefix(
		newPQ(Psubsw_P_Q),
		newVW(XMM0, Psubsw_VX_WX, Psubsw_VX_WX),
		invalid,
		invalid,
	),
	0xea: newMandatoryPrefix(
		newPQ(Pminsw_P_Q),
		newVW(XMM0, Pminsw_VX_WX, Pminsw_VX_WX),
		invalid,
		invalid,
	),
	0xeb: newMandatoryPrefix(newPQ(Por_P_Q), newVW(XMM0, Por_VX_WX, Por_VX_WX), invalid, invalid),
	0xec: newMandatoryPrefix(
		newPQ(Paddsb_P_Q),
		newVW(XMM0, Paddsb_VX_WX, Paddsb_VX_WX),
		invalid,
		invalid,
	),
	0xed: newMandatoryPrefix(
		newPQ(Paddsw_P_Q),
		newVW(XMM0, Paddsw_VX_WX, Paddsw_VX_WX),
		invalid,
		invalid,
	),
	0xee: newMandatoryPrefix(
		newPQ(Pmaxsw_P_Q),
		newVW(XMM0, Pmaxsw_VX_WX, Pmaxsw_VX_WX),
		invalid,
		invalid,
	),
	0xef: newMandatoryPrefix(newPQ(Pxor_P_Q), newVW(XMM0, Pxor_VX_WX, Pxor_VX_WX), invalid, invalid),
	0xf0: newMandatoryPrefix(invalid, invalid, invalid, newVM(XMM0, Lddqu_VX_M)),
	0xf1: newMandatoryPrefix(
		newPQ(Psllw_P_Q),
		newVW(XMM0, Psllw_VX_WX, Psllw_VX_WX),
		invalid,
		invalid,
	),
	0xf2: newMandatoryPrefix(
		newPQ(Pslld_P_Q),
		newVW(XMM0, Pslld_VX_WX, Pslld_VX_WX),
		invalid,
		invalid,
	),
	0xf3: newMandatoryPrefix(
		newPQ(Psllq_P_Q),
		newVW(XMM0, Psllq_VX_WX, Psllq_VX_WX),
		invalid,
		invalid,
	),
	0xf4: newMandatoryPrefix(
		newPQ(Pmuludq_P_Q),
		newVW(XMM0, Pmuludq_VX_WX, Pmuludq_VX_WX),
		invalid,
		invalid,
	),
	0xf5: newMandatoryPrefix(
		newPQ(Pmaddwd_P_Q),
		newVW(XMM0, Pmaddwd_VX_WX, Pmaddwd_VX_WX),
		invalid,
		invalid,
	),
	0xf6: newMandatoryPrefix(
		newPQ(Psadbw_P_Q),
		newVW(XMM0, Psadbw_VX_WX, Psadbw_VX_WX),
		invalid,
		invalid,
	),
	0xf7: newMandatoryPrefix(
		newRDIPN(Maskmovq_rDI_P_N),
		newRDIVXRX(XMM0, Maskmovdqu_rDI_VX_RX),
		invalid,
		invalid,
	),
	0xf8: newMandatoryPrefix(
		newPQ(Psubb_P_Q),
		newVW(XMM0, Psubb_VX_WX, Psubb_VX_WX),
		invalid,
		invalid,
	),
	0xf9: newMandatoryPrefix(
		newPQ(Psubw_P_Q),
		newVW(XMM0, Psubw_VX_WX, Psubw_VX_WX),
		invalid,
		invalid,
	),
	0xfa: newMandatoryPrefix(
		newPQ(Psubd_P_Q),
		newVW(XMM0, Psubd_VX_WX, Psubd_VX_WX),
		invalid,
		invalid,
	),
	0xfb: newMandatoryPrefix(
		newPQ(Psubq_P_Q),
		newVW(XMM0, Psubq_VX_WX, Psubq_VX_WX),
		invalid,
		invalid,
	),
	0xfc: newMandatoryPrefix(
		newPQ(Paddb_P_Q),
		newVW(XMM0, Paddb_VX_WX, Paddb_VX_WX),
		invalid,
		invalid,
	),
	0xfd: newMandatoryPrefix(
		newPQ(Paddw_P_Q),
		newVW(XMM0, Paddw_VX_WX, Paddw_VX_WX),
		invalid,
		invalid,
	),
	0xfe: newMandatoryPrefix(
		newPQ(Paddd_P_Q),
		newVW(XMM0, Paddd_VX_WX, Paddd_VX_WX),
		invalid,
		invalid,
	),
	0xff: newGvEv(Ud0_Gw_Ew, Ud0_Gd_Ed, Ud0_Gq_Eq),
})

// legacy32Map0 holds the one-byte opcodes in 16-bit and 32-bit mode.
var legacy32Map0 = fillInvalid([256]*handler{
	0x00: newEbGb(Add_Eb_Gb, hfLock | hfXacquireRelease),
	0x01: newEvGv(Add_Ew_Gw, Add_Ed_Gd, Add_Eq_Gq, hfLock | hfXacquireRelease),
	0x02: newGbEb(Add_Gb_Eb),
	0x03: newGvEv(Add_Gw_Ew, Add_Gd_Ed, Add_Gq_Eq),
	0x04: newRegIb(AL, Add_AL_Ib),
	0x05: newRegIz(Add_AX_Iw, Add_EAX_Id, INVALID, AX),
	0x06: newPushOpSizeReg(Pushw_ES, Pushd_ES, INVALID, ES),
	0x07: newPushOpSizeReg(Popw_ES, Popd_ES, INVALID, ES),
	0x08: newEbGb(Or_Eb_Gb, hfLock | hfXacquireRelease),
	0x09: newEvGv(Or_Ew_Gw, Or_Ed_Gd, Or_Eq_Gq, hfLock | hfXacquireRelease),
	0x0a: newGbEb(Or_Gb_Eb),
	0x0b: newGvEv(Or_Gw_Ew, Or_Gd_Ed, Or_Gq_Eq),
	0x0c: newRegIb(AL, Or_AL_Ib),
	0x0d: newRegIz(Or_AX_Iw, Or_EAX_Id, INVALID, AX),
	0x0e: newPushOpSizeReg(Pushw_CS, Pushd_CS, INVALID, CS),
	0x0f: newAnotherTable(&legacy32Map1),
	0x10: newEbGb(Adc_Eb_Gb, hfLock | hfXacquireRelease),
	0x11: newEvGv(Adc_Ew_Gw, Adc_Ed_Gd, Adc_Eq_Gq, hfLock | hfXacquireRelease),
	0x12: newGbEb(Adc_Gb_Eb),
	0x13: newGvEv(Adc_Gw_Ew, Adc_Gd_Ed, Adc_Gq_Eq),
	0x14: newRegIb(AL, Adc_AL_Ib),
	0x15: newRegIz(Adc_AX_Iw, Adc_EAX_Id, INVALID, AX),
	0x16: newPushOpSizeReg(Pushw_SS, Pushd_SS, INVALID, SS),
	0x17: newPushOpSizeReg(Popw_SS, Popd_SS, INVALID, SS),
	0x18: newEbGb(Sbb_Eb_Gb, hfLock | hfXacquireRelease),
	0x19: newEvGv(Sbb_Ew_Gw, Sbb_Ed_Gd, Sbb_Eq_Gq, hfLock | hfXacquireRelease),
	0x1a: newGbEb(Sbb_Gb_Eb),
	0x1b: newGvEv(Sbb_Gw_Ew, Sbb_Gd_Ed, Sbb_Gq_Eq),
	0x1c: newRegIb(AL, Sbb_AL_Ib),
	0x1d: newRegIz(Sbb_AX_Iw, Sbb_EAX_Id, INVALID, AX),
	0x1e: newPushOpSizeReg(Pushw_DS, Pushd_DS, INVALID, DS),
	0x1f: newPushOpSizeReg(Popw_DS, Popd_DS, INVALID, DS),
	0x20: newEbGb(And_Eb_Gb, hfLock | hfXacquireRelease),
	0x21: newEvGv(And_Ew_Gw, And_Ed_Gd, And_Eq_Gq, hfLock | hfXacquireRelease),
	0x22: newGbEb(And_Gb_Eb),
	0x23: newGvEv(And_Gw_Ew, And_Gd_Ed, And_Gq_Eq),
	0x24: newRegIb(AL, And_AL_Ib),
	0x25: newRegIz(And_AX_Iw, And_EAX_Id, INVALID, AX),
	0x27: newSimple(Daa),
	0x28: newEbGb(Sub_Eb_Gb, hfLock | hfXacquireRelease),
	0x29: newEvGv(Sub_Ew_Gw, Sub_Ed_Gd, Sub_Eq_Gq, hfLock | hfXacquireRelease),
	0x2a: newGbEb(Sub_Gb_Eb),
	0x2b: newGvEv(Sub_Gw_Ew, Sub_Gd_Ed, Sub_Gq_Eq),
	0x2c: newRegIb(AL, Sub_AL_Ib),
	0x2d: newRegIz(Sub_AX_Iw, Sub_EAX_Id, INVALID, AX),
	0x2f: newSimple(Das),
	0x30: newEbGb(Xor_Eb_Gb, hfLock | hfXacquireRelease),
	0x31: newEvGv(Xor_Ew_Gw, Xor_Ed_Gd, Xor_Eq_Gq, hfLock | hfXacquireRelease),
	0x32: newGbEb(Xor_Gb_Eb),
	0x33: newGvEv(Xor_Gw_Ew, Xor_Gd_Ed, Xor_Gq_Eq),
	0x34: newRegIb(AL, Xor_AL_Ib),
	0x35: newRegIz(Xor_AX_Iw, Xor_EAX_Id, INVALID, AX),
	0x37: newSimple(Aaa),
	0x38: newEbGb(Cmp_Eb_Gb, 0),
	0x39: newEvGv(Cmp_Ew_Gw, Cmp_Ed_Gd, Cmp_Eq_Gq, 0),
	0x3a: newGbEb(Cmp_Gb_Eb),
	0x3b: newGvEv(Cmp_Gw_Ew, Cmp_Gd_Ed, Cmp_Gq_Eq),
	0x3c: newRegIb(AL, Cmp_AL_Ib),
	0x3d: newRegIz(Cmp_AX_Iw, Cmp_EAX_Id, INVALID, AX),
	0x3f: newSimple(Aas),
	0x40: newSimpleReg(0, [6]Code{Inc_AX, INVALID, Inc_EAX, INVALID, INVALID, INVALID}),
	0x41: newSimpleReg(1, [6]Code{Inc_CX, INVALID, Inc_ECX, INVALID, INVALID, INVALID}),
	0x42: newSimpleReg(2, [6]Code{Inc_DX, INVALID, Inc_EDX, INVALID, INVALID, INVALID}),
	0x43: newSimpleReg(3, [6]Code{Inc_BX, INVALID, Inc_EBX, INVALID, INVALID, INVALID}),
	0x44: newSimpleReg(4, [6]Code{Inc_SP, INVALID, Inc_ESP, INVALID, INVALID, INVALID}),
	0x45: newSimpleReg(5, [6]Code{Inc_BP, INVALID, Inc_EBP, INVALID, INVALID, INVALID}),
	0x46: newSimpleReg(6, [6]Code{Inc_SI, INVALID, Inc_ESI, INVALID, INVALID, INVALID}),
	0x47: newSimpleReg(7, [6]Code{Inc_DI, INVALID, Inc_EDI, INVALID, INVALID, INVALID}),
	0x48: newSimpleReg(0, [6]Code{Dec_AX, INVALID, Dec_EAX, INVALID, INVALID, INVALID}),
	0x49: newSimpleReg(1, [6]Code{Dec_CX, INVALID, Dec_ECX, INVALID, INVALID, INVALID}),
	0x4a: newSimpleReg(2, [6]Code{Dec_DX, INVALID, Dec_EDX, INVALID, INVALID, INVALID}),
	0x4b: newSimpleReg(3, [6]Code{Dec_BX, INVALID, Dec_EBX, INVALID, INVALID, INVALID}),
	0x4c: newSimpleReg(4, [6]Code{Dec_SP, INVALID, Dec_ESP, INVALID, INVALID, INVALID}),
	0x4d: newSimpleReg(5, [6]Code{Dec_BP, INVALID, Dec_EBP, INVALID, INVALID, INVALID}),
	0x4e: newSimpleReg(6, [6]Code{Dec_SI, INVALID, Dec_ESI, INVALID, INVALID, INVALID}),
	0x4f: newSimpleReg(7, [6]Code{Dec_DI, INVALID, Dec_EDI, INVALID, INVALID, INVALID}),
	0x50: newSimpleReg(0, [6]Code{Push_AX, INVALID, Push_EAX, INVALID, INVALID, INVALID}),
	0x51: newSimpleReg(1, [6]Code{Push_CX, INVALID, Push_ECX, INVALID, INVALID, INVALID}),
	0x52: newSimpleReg(2, [6]Code{Push_DX, INVALID, Push_EDX, INVALID, INVALID, INVALID}),
	0x53: newSimpleReg(3, [6]Code{Push_BX, INVALID, Push_EBX, INVALID, INVALID, INVALID}),
	0x54: newSimpleReg(4, [6]Code{Push_SP, INVALID, Push_ESP, INVALID, INVALID, INVALID}),
	0x55: newSimpleReg(5, [6]Code{Push_BP, INVALID, Push_EBP, INVALID, INVALID, INVALID}),
	0x56: newSimpleReg(6, [6]Code{Push_SI, INVALID, Push_ESI, INVALID, INVALID, INVALID}),
	0x57: newSimpleReg(7, [6]Code{Push_DI, INVALID, Push_EDI, INVALID, INVALID, INVALID}),
	0x58: newSimpleReg(0, [6]Code{Pop_AX, INVALID, Pop_EAX, INVALID, INVALID, INVALID}),
	0x59: newSimpleReg(1, [6]Code{Pop_CX, INVALID, Pop_ECX, INVALID, INVALID, INVALID}),
	0x5a: newSimpleReg(2, [6]Code{Pop_DX, INVALID, Pop_EDX, INVALID, INVALID, INVALID}),
	0x5b: newSimpleReg(3, [6]Code{Pop_BX, INVALID, Pop_EBX, INVALID, INVALID, INVALID}),
	0x5c: newSimpleReg(4, [6]Code{Pop_SP, INVALID, Pop_ESP, INVALID, INVALID, INVALID}),
	0x5d: newSimpleReg(5, [6]Code{Pop_BP, INVALID, Pop_EBP, INVALID, INVALID, INVALID}),
	0x5e: newSimpleReg(6, [6]Code{Pop_SI, INVALID, Pop_ESI, INVALID, INVALID, INVALID}),
	0x5f: newSimpleReg(7, [6]Code{Pop_DI, INVALID, Pop_EDI, INVALID, INVALID, INVALID}),
	0x60: newSimple2(Pushaw, Pushad, Pushad),
	0x61: newSimple2(Popaw, Popad, Popad),
	0x62: newEVEX(newGvMa(Bound_Gw_Mw2, Bound_Gd_Md2)),
	0x63: newRvMwGw(Arpl_Ew_Gw, Arpl_RdMw_Gd),
	0x68: newPushIz(Push_Iw, Push_Id, INVALID),
	0x69: newGvEvIz(Imul_Gw_Ew_Iw, Imul_Gd_Ed_Id, Imul_Gq_Eq_Id64),
	0x6a: newPushIb2(Push_Ib16, Push_Ib32, INVALID),
	0x6b: newGvEvIb(Imul_Gw_Ew_Ib16, Imul_Gd_Ed_Ib32, Imul_Gq_Eq_Ib64),
	0x6c: newYbReg(DX, Insb_Yb_DX),
	0x6d: newYvReg2(Insw_Yw_DX, Insd_Yd_DX),
	0x6e: newRegXb(DX, Outsb_DX_Xb),
	0x6f: newRegXv2(Outsw_DX_Xw, Outsd_DX_Xd),
	0x70: newJb(Jo_Jb16, Jo_Jb32, INVALID),
	0x71: newJb(Jno_Jb16, Jno_Jb32, INVALID),
	0x72: newJb(Jb_Jb16, Jb_Jb32, INVALID),
	0x73: newJb(Jae_Jb16, Jae_Jb32, INVALID),
	0x74: newJb(Je_Jb16, Je_Jb32, INVALID),
	0x75: newJb(Jne_Jb16, Jne_Jb32, INVALID),
	0x76: newJb(Jbe_Jb16, Jbe_Jb32, INVALID),
	0x77: newJb(Ja_Jb16, Ja_Jb32, INVALID),
	0x78: newJb(Js_Jb16, Js_Jb32, INVALID),
	0x79: newJb(Jns_Jb16, Jns_Jb32, INVALID),
	0x7a: newJb(Jp_Jb16, Jp_Jb32, INVALID),
	0x7b: newJb(Jnp_Jb16, Jnp_Jb32, INVALID),
	0x7c: newJb(Jl_Jb16, Jl_Jb32, INVALID),
	0x7d: newJb(Jge_Jb16, Jge_Jb32, INVALID),
	0x7e: newJb(Jle_Jb16, Jle_Jb32, INVALID),
	0x7f: newJb(Jg_Jb16, Jg_Jb32, INVALID),
	0x80: newGroup(legacy32Grp80),
	0x81: newGroup(legacy32Grp81),
	0x82: newGroup(legacy32Grp80),
	0x83: newGroup(legacy32Grp83),
	0x84: newEbGb(Test_Eb_Gb, 0),
	0x85: newEvGv(Test_Ew_Gw, Test_Ed_Gd, Test_Eq_Gq, 0),
	0x86: newEbGb(Xchg_Eb_Gb, hfLock | hfXacquireRelease | hfXacquireReleaseNoLock),
	0x87: newEvGv(
		Xchg_Ew_Gw,
		Xchg_Ed_Gd,
		Xchg_Eq_Gq,
		hfLock | hfXacquireRelease | hfXacquireReleaseNoLock,
	),
	0x88: newEbGb(Mov_Eb_Gb, hfXrelease | hfXacquireReleaseNoLock),
	0x89: newEvGv(Mov_Ew_Gw, Mov_Ed_Gd, Mov_Eq_Gq, hfXrelease | hfXacquireReleaseNoLock),
	0x8a: newGbEb(Mov_Gb_Eb),
	0x8b: newGvEv(Mov_Gw_Ew, Mov_Gd_Ed, Mov_Gq_Eq),
	0x8c: newEvSw(Mov_Ew_Sw, Mov_Ed_Sw, Mov_Eq_Sw),
	0x8d: newGvM(Lea_Gw_M, Lea_Gd_M, Lea_Gq_M),
	0x8e: newSwEv(Mov_Sw_Ew, Mov_Sw_Ed, Mov_Sw_Eq),
	0x8f: newXOP(newEv(Pop_Ew, Pop_Ed, Pop_Eq, 0)),
	0x90: newXchgRegAX(0, [6]Code{Nopw, Xchg_R8W_AX, Nopd, Xchg_R8D_EAX, Nopq, Xchg_R8_RAX}),
	0x91: newXchgRegAX(
		1,
		[6]Code{Xchg_CX_AX, Xchg_R9W_AX, Xchg_ECX_EAX, Xchg_R9D_EAX, Xchg_RCX_RAX, Xchg_R9_RAX},
	),
	0x92: newXchgRegAX(
		2,
		[6]Code{Xchg_DX_AX, Xchg_R10W_AX, Xchg_EDX_EAX, Xchg_R10D_EAX, Xchg_RDX_RAX, Xchg_R10_RAX},
	),
	0x93: newXchgRegAX(
		3,
		[6]Code{Xchg_BX_AX, Xchg_R11W_AX, Xchg_EBX_EAX, Xchg_R11D_EAX, Xchg_RBX_RAX, Xchg_R11_RAX},
	),
	0x94: newXchgRegAX(
		4,
		[6]Code{Xchg_SP_AX, Xchg_R12W_AX, Xchg_ESP_EAX, Xchg_R12D_EAX, Xchg_RSP_RAX, Xchg_R12_RAX},
	),
	0x95: newXchgRegAX(
		5,
		[6]Code{Xchg_BP_AX, Xchg_R13W_AX, Xchg_EBP_EAX, Xchg_R13D_EAX, Xchg_RBP_RAX, Xchg_R13_RAX},
	),
	0x96: newXchgRegAX(
		6,
		[6]Code{Xchg_SI_AX, Xchg_R14W_AX, Xchg_ESI_EAX, Xchg_R14D_EAX, Xchg_RSI_RAX, Xchg_R14_RAX},
	),
	0x97: newXchgRegAX(
		7,
		[6]Code{Xchg_DI_AX, Xchg_R15W_AX, Xchg_EDI_EAX, Xchg_R15D_EAX, Xchg_RDI_RAX, Xchg_R15_RAX},
	),
	0x98: newSimple2(Cbw, Cwde, Cdqe),
	0x99: newSimple2(Cwd, Cdq, Cqo),
	0x9a: newAp(Call_Aww, Call_Adw),
	0x9b: newSimple(Wait),
	0x9c: newSimple2(Pushfw, Pushfd, Pushfq),
	0x9d: newSimple2(Popfw, Popfd, Popfq),
	0x9e: newSimple(Sahf),
	0x9f: newSimple(Lahf),
	0xa0: newRegOb(AL, Mov_AL_Ob),
	0xa1: newRegOv(Mov_AX_Ow, Mov_EAX_Od, INVALID, AX),
	0xa2: newObReg(AL, Mov_Ob_AL),
	0xa3: newOvReg(Mov_Ow_AX, Mov_Od_EAX, INVALID, AX),
	0xa4: newYbXb(Movsb_Yb_Xb),
	0xa5: newYvXv(Movsw_Yw_Xw, Movsd_Yd_Xd, Movsq_Yq_Xq),
	0xa6: newXbYb(Cmpsb_Xb_Yb),
	0xa7: newXvYv(Cmpsw_Xw_Yw, Cmpsd_Xd_Yd, Cmpsq_Xq_Yq),
	0xa8: newRegIb(AL, Test_AL_Ib),
	0xa9: newRegIz(Test_AX_Iw, Test_EAX_Id, INVALID, AX),
	0xaa: newYbReg(AL, Stosb_Yb_AL),
	0xab: newYvReg(Stosw_Yw_AX, Stosd_Yd_EAX, INVALID, AX),
	0xac: newRegXb(AL, Lodsb_AL_Xb),
	0xad: newRegXv(Lodsw_AX_Xw, Lodsd_EAX_Xd, INVALID, AX),
	0xae: newRegYb(AL, Scasb_AL_Yb),
	0xaf: newRegYv(Scasw_AX_Yw, Scasd_EAX_Yd, INVALID, AX),
	0xb0: newRegIb(AL, Mov_AL_Ib),
	0xb1: newRegIb(CL, Mov_CL_Ib),
	0xb2: newRegIb(DL, Mov_DL_Ib),
	0xb3: newRegIb(BL, Mov_BL_Ib),
	0xb4: newRegIb(AH, Mov_AH_Ib),
	0xb5: newRegIb(CH, Mov_CH_Ib),
	0xb6: newRegIb(DH, Mov_DH_Ib),
	0xb7: newRegIb(BH, Mov_BH_Ib),
	0xb8: newRegIz(Mov_AX_Iw, Mov_EAX_Id, INVALID, AX),
	0xb9: newRegIz(Mov_CX_Iw, Mov_ECX_Id, INVALID, CX),
	0xba: newRegIz(Mov_DX_Iw, Mov_EDX_Id, INVALID, DX),
	0xbb: newRegIz(Mov_BX_Iw, Mov_EBX_Id, INVALID, BX),
	0xbc: newRegIz(Mov_SP_Iw, Mov_ESP_Id, INVALID, SP),
	0xbd: newRegIz(Mov_BP_Iw, Mov_EBP_Id, INVALID, BP),
	0xbe: newRegIz(Mov_SI_Iw, Mov_ESI_Id, INVALID, SI),
	0xbf: newRegIz(Mov_DI_Iw, Mov_EDI_Id, INVALID, DI),
	0xc0: newGroup(legacy32GrpC0),
	0xc1: newGroup(legacy32GrpC1),
	0xc2: newIw(Retnw_Iw, Retnd_Iw, Retnq_Iw),
	0xc3: newSimple2(Retnw, Retnd, Retnq),
	0xc4: newVEX3(newGvMp(Les_Gw_Mp, Les_Gd_Mp, INVALID)),
	0xc5: newVEX2(newGvMp(Lds_Gw_Mp, Lds_Gd_Mp, INVALID)),
	0xc6: newGroup8x64(legacy32GrpC6Lo, legacy32GrpC6Hi),
	0xc7: newGroup8x64(legacy32GrpC7Lo, legacy32GrpC7Hi),
	0xc8: newIwIb(Enterw_Iw_Ib, Enterd_Iw_Ib, Enterq_Iw_Ib),
	0xc9: newSimple2(Leavew, Leaved, Leaveq),
	0xca: newIw(Retfw_Iw, Retfd_Iw, Retfq_Iw),
	0xcb: newSimple2(Retfw, Retfd, Retfq),
	0xcc: newSimple(Int3),
	0xcd: newIb(Int_Ib),
	0xce: newSimple(Into),
	0xcf: newSimple2(Iretw, Iretd, Iretq),
	0xd0: newGroup(legacy32GrpD0),
	0xd1: newGroup(legacy32GrpD1),
	0xd2: newGroup(legacy32GrpD2),
	0xd3: newGroup(legacy32GrpD3),
	0xd4: newIb(Aam_Ib),
	0xd5: newIb(Aad_Ib),
	0xd6: newSimple(Salc),
	0xd7: newMemBx(Xlatb),
	0xd8: newGroup8x8(fpuD8Low, fpuD8High),
	0xd9: newGroup8x64(fpuD9Low, fpuD9High),
	0xda: newGroup8x64(fpuDALow, fpuDAHigh),
	0xdb: newGroup8x64(fpuDBLow, fpuDBHigh),
	0xdc: newGroup8x8(fpuDCLow, fpuDCHigh),
	0xdd: newGroup8x8(fpuDDLow, fpuDDHigh),
	0xde: newGroup8x64(fpuDELow, fpuDEHigh),
	0xdf: newGroup8x64(fpuDFLow, fpuDFHigh),
	0xe0: newJb2(
		Loopne_Jb16_CX,
		Loopne_Jb16_ECX,
		INVALID,
		Loopne_Jb32_CX,
		Loopne_Jb32_ECX,
		INVALID,
		INVALID,
	),
	0xe1: newJb2(
		Loope_Jb16_CX,
		Loope_Jb16_ECX,
		INVALID,
		Loope_Jb32_CX,
		Loope_Jb32_ECX,
		INVALID,
		INVALID,
	),
	0xe2: newJb2(Loop_Jb16_CX, Loop_Jb16_ECX, INVALID, Loop_Jb32_CX, Loop_Jb32_ECX, INVALID, INVALID),
	0xe3: newJb2(Jcxz_Jb16, Jecxz_Jb16, INVALID, Jcxz_Jb32, Jecxz_Jb32, INVALID, INVALID),
	0xe4: newRegIb(AL, In_AL_Ib),
	0xe5: newRegIb2(In_AX_Ib, In_EAX_Ib),
	0xe6: newIbReg(AL, Out_Ib_AL),
	0xe7: newIbReg2(Out_Ib_AX, Out_Ib_EAX),
	0xe8: newJz(Call_Jw16, Call_Jd32, INVALID),
	0xe9: newJz(Jmp_Jw16, Jmp_Jd32, INVALID),
	0xea: newAp(Jmp_Aww, Jmp_Adw),
	0xeb: newJb(Jmp_Jb16, Jmp_Jb32, INVALID),
	0xec: newALDX(In_AL_DX),
	0xed: newEAXDX(In_AX_DX, In_EAX_DX),
	0xee: newDXAL(Out_DX_AL),
	0xef: newDXEAX(Out_DX_AX, Out_DX_EAX),
	0xf1: newSimple(Int1),
	0xf4: newSimple(Hlt),
	0xf5: newSimple(Cmc),
	0xf6: newGroup(legacy32GrpF6),
	0xf7: newGroup(legacy32GrpF7),
	0xf8: newSimple(Clc),
	0xf9: newSimple(Stc),
	0xfa: newSimple(Cli),
	0xfb: newSimple(Sti),
	0xfc: newSimple(Cld),
	0xfd: newSimple(Std),
	0xfe: newGroup(legacy32GrpFE),
	0xff: newGroup(legacy32GrpFF),
})

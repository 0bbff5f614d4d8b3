// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Register identifies an x86 register.
//
// Registers in the same family are
// contiguous, so the register encoded
// by a ModR/M field can be computed by
// adding the field to the family's
// first register.
type Register uint8

const (
	NoRegister Register = iota

	// 8-bit general purpose registers.
	AL
	CL
	DL
	BL
	AH
	CH
	DH
	BH
	SPL
	BPL
	SIL
	DIL
	R8L
	R9L
	R10L
	R11L
	R12L
	R13L
	R14L
	R15L

	// 16-bit general purpose registers.
	AX
	CX
	DX
	BX
	SP
	BP
	SI
	DI
	R8W
	R9W
	R10W
	R11W
	R12W
	R13W
	R14W
	R15W

	// 32-bit general purpose registers.
	EAX
	ECX
	EDX
	EBX
	ESP
	EBP
	ESI
	EDI
	R8D
	R9D
	R10D
	R11D
	R12D
	R13D
	R14D
	R15D

	// 64-bit general purpose registers.
	RAX
	RCX
	RDX
	RBX
	RSP
	RBP
	RSI
	RDI
	R8
	R9
	R10
	R11
	R12
	R13
	R14
	R15

	// Instruction pointers.
	EIP
	RIP

	// Segment registers.
	ES
	CS
	SS
	DS
	FS
	GS

	// XMM registers.
	XMM0
	XMM1
	XMM2
	XMM3
	XMM4
	XMM5
	XMM6
	XMM7
	XMM8
	XMM9
	XMM10
	XMM11
	XMM12
	XMM13
	XMM14
	XMM15
	XMM16
	XMM17
	XMM18
	XMM19
	XMM20
	XMM21
	XMM22
	XMM23
	XMM24
	XMM25
	XMM26
	XMM27
	XMM28
	XMM29
	XMM30
	XMM31

	// YMM registers.
	YMM0
	YMM1
	YMM2
	YMM3
	YMM4
	YMM5
	YMM6
	YMM7
	YMM8
	YMM9
	YMM10
	YMM11
	YMM12
	YMM13
	YMM14
	YMM15
	YMM16
	YMM17
	YMM18
	YMM19
	YMM20
	YMM21
	YMM22
	YMM23
	YMM24
	YMM25
	YMM26
	YMM27
	YMM28
	YMM29
	YMM30
	YMM31

	// ZMM registers.
	ZMM0
	ZMM1
	ZMM2
	ZMM3
	ZMM4
	ZMM5
	ZMM6
	ZMM7
	ZMM8
	ZMM9
	ZMM10
	ZMM11
	ZMM12
	ZMM13
	ZMM14
	ZMM15
	ZMM16
	ZMM17
	ZMM18
	ZMM19
	ZMM20
	ZMM21
	ZMM22
	ZMM23
	ZMM24
	ZMM25
	ZMM26
	ZMM27
	ZMM28
	ZMM29
	ZMM30
	ZMM31

	// Opmask registers.
	K0
	K1
	K2
	K3
	K4
	K5
	K6
	K7

	// Bounds registers.
	BND0
	BND1
	BND2
	BND3

	// Control registers.
	CR0
	CR1
	CR2
	CR3
	CR4
	CR5
	CR6
	CR7
	CR8
	CR9
	CR10
	CR11
	CR12
	CR13
	CR14
	CR15

	// Debug registers.
	DR0
	DR1
	DR2
	DR3
	DR4
	DR5
	DR6
	DR7
	DR8
	DR9
	DR10
	DR11
	DR12
	DR13
	DR14
	DR15

	// x87 floating point stack positions.
	ST0
	ST1
	ST2
	ST3
	ST4
	ST5
	ST6
	ST7

	// MMX registers.
	MM0
	MM1
	MM2
	MM3
	MM4
	MM5
	MM6
	MM7

	// Test registers.
	TR0
	TR1
	TR2
	TR3
	TR4
	TR5
	TR6
	TR7
)

// NumRegisters is the number of
// Register values, including
// NoRegister.
const NumRegisters = int(TR7) + 1

// vectorRegisterCount is the number of
// registers in each vector family.
const vectorRegisterCount = 32

type registerInfo struct {
	name string
	typ  RegisterType
	bits int
}

var registerInfos = [NumRegisters]registerInfo{
	NoRegister: {name: "none"},
	AL:         {name: "al", typ: TypeGeneralPurpose, bits: 8},
	CL:         {name: "cl", typ: TypeGeneralPurpose, bits: 8},
	DL:         {name: "dl", typ: TypeGeneralPurpose, bits: 8},
	BL:         {name: "bl", typ: TypeGeneralPurpose, bits: 8},
	AH:         {name: "ah", typ: TypeGeneralPurpose, bits: 8},
	CH:         {name: "ch", typ: TypeGeneralPurpose, bits: 8},
	DH:         {name: "dh", typ: TypeGeneralPurpose, bits: 8},
	BH:         {name: "bh", typ: TypeGeneralPurpose, bits: 8},
	SPL:        {name: "spl", typ: TypeGeneralPurpose, bits: 8},
	BPL:        {name: "bpl", typ: TypeGeneralPurpose, bits: 8},
	SIL:        {name: "sil", typ: TypeGeneralPurpose, bits: 8},
	DIL:        {name: "dil", typ: TypeGeneralPurpose, bits: 8},
	R8L:        {name: "r8l", typ: TypeGeneralPurpose, bits: 8},
	R9L:        {name: "r9l", typ: TypeGeneralPurpose, bits: 8},
	R10L:       {name: "r10l", typ: TypeGeneralPurpose, bits: 8},
	R11L:       {name: "r11l", typ: TypeGeneralPurpose, bits: 8},
	R12L:       {name: "r12l", typ: TypeGeneralPurpose, bits: 8},
	R13L:       {name: "r13l", typ: TypeGeneralPurpose, bits: 8},
	R14L:       {name: "r14l", typ: TypeGeneralPurpose, bits: 8},
	R15L:       {name: "r15l", typ: TypeGeneralPurpose, bits: 8},
	AX:         {name: "ax", typ: TypeGeneralPurpose, bits: 16},
	CX:         {name: "cx", typ: TypeGeneralPurpose, bits: 16},
	DX:         {name: "dx", typ: TypeGeneralPurpose, bits: 16},
	BX:         {name: "bx", typ: TypeGeneralPurpose, bits: 16},
	SP:         {name: "sp", typ: TypeGeneralPurpose, bits: 16},
	BP:         {name: "bp", typ: TypeGeneralPurpose, bits: 16},
	SI:         {name: "si", typ: TypeGeneralPurpose, bits: 16},
	DI:         {name: "di", typ: TypeGeneralPurpose, bits: 16},
	R8W:        {name: "r8w", typ: TypeGeneralPurpose, bits: 16},
	R9W:        {name: "r9w", typ: TypeGeneralPurpose, bits: 16},
	R10W:       {name: "r10w", typ: TypeGeneralPurpose, bits: 16},
	R11W:       {name: "r11w", typ: TypeGeneralPurpose, bits: 16},
	R12W:       {name: "r12w", typ: TypeGeneralPurpose, bits: 16},
	R13W:       {name: "r13w", typ: TypeGeneralPurpose, bits: 16},
	R14W:       {name: "r14w", typ: TypeGeneralPurpose, bits: 16},
	R15W:       {name: "r15w", typ: TypeGeneralPurpose, bits: 16},
	EAX:        {name: "eax", typ: TypeGeneralPurpose, bits: 32},
	ECX:        {name: "ecx", typ: TypeGeneralPurpose, bits: 32},
	EDX:        {name: "edx", typ: TypeGeneralPurpose, bits: 32},
	EBX:        {name: "ebx", typ: TypeGeneralPurpose, bits: 32},
	ESP:        {name: "esp", typ: TypeGeneralPurpose, bits: 32},
	EBP:        {name: "ebp", typ: TypeGeneralPurpose, bits: 32},
	ESI:        {name: "esi", typ: TypeGeneralPurpose, bits: 32},
	EDI:        {name: "edi", typ: TypeGeneralPurpose, bits: 32},
	R8D:        {name: "r8d", typ: TypeGeneralPurpose, bits: 32},
	R9D:        {name: "r9d", typ: TypeGeneralPurpose, bits: 32},
	R10D:       {name: "r10d", typ: TypeGeneralPurpose, bits: 32},
	R11D:       {name: "r11d", typ: TypeGeneralPurpose, bits: 32},
	R12D:       {name: "r12d", typ: TypeGeneralPurpose, bits: 32},
	R13D:       {name: "r13d", typ: TypeGeneralPurpose, bits: 32},
	R14D:       {name: "r14d", typ: TypeGeneralPurpose, bits: 32},
	R15D:       {name: "r15d", typ: TypeGeneralPurpose, bits: 32},
	RAX:        {name: "rax", typ: TypeGeneralPurpose, bits: 64},
	RCX:        {name: "rcx", typ: TypeGeneralPurpose, bits: 64},
	RDX:        {name: "rdx", typ: TypeGeneralPurpose, bits: 64},
	RBX:        {name: "rbx", typ: TypeGeneralPurpose, bits: 64},
	RSP:        {name: "rsp", typ: TypeGeneralPurpose, bits: 64},
	RBP:        {name: "rbp", typ: TypeGeneralPurpose, bits: 64},
	RSI:        {name: "rsi", typ: TypeGeneralPurpose, bits: 64},
	RDI:        {name: "rdi", typ: TypeGeneralPurpose, bits: 64},
	R8:         {name: "r8", typ: TypeGeneralPurpose, bits: 64},
	R9:         {name: "r9", typ: TypeGeneralPurpose, bits: 64},
	R10:        {name: "r10", typ: TypeGeneralPurpose, bits: 64},
	R11:        {name: "r11", typ: TypeGeneralPurpose, bits: 64},
	R12:        {name: "r12", typ: TypeGeneralPurpose, bits: 64},
	R13:        {name: "r13", typ: TypeGeneralPurpose, bits: 64},
	R14:        {name: "r14", typ: TypeGeneralPurpose, bits: 64},
	R15:        {name: "r15", typ: TypeGeneralPurpose, bits: 64},
	EIP:        {name: "eip", typ: TypeInstructionPointer, bits: 32},
	RIP:        {name: "rip", typ: TypeInstructionPointer, bits: 64},
	ES:         {name: "es", typ: TypeSegment, bits: 16},
	CS:         {name: "cs", typ: TypeSegment, bits: 16},
	SS:         {name: "ss", typ: TypeSegment, bits: 16},
	DS:         {name: "ds", typ: TypeSegment, bits: 16},
	FS:         {name: "fs", typ: TypeSegment, bits: 16},
	GS:         {name: "gs", typ: TypeSegment, bits: 16},
	XMM0:       {name: "xmm0", typ: TypeXMM, bits: 128},
	XMM1:       {name: "xmm1", typ: TypeXMM, bits: 128},
	XMM2:       {name: "xmm2", typ: TypeXMM, bits: 128},
	XMM3:       {name: "xmm3", typ: TypeXMM, bits: 128},
	XMM4:       {name: "xmm4", typ: TypeXMM, bits: 128},
	XMM5:       {name: "xmm5", typ: TypeXMM, bits: 128},
	XMM6:       {name: "xmm6", typ: TypeXMM, bits: 128},
	XMM7:       {name: "xmm7", typ: TypeXMM, bits: 128},
	XMM8:       {name: "xmm8", typ: TypeXMM, bits: 128},
	XMM9:       {name: "xmm9", typ: TypeXMM, bits: 128},
	XMM10:      {name: "xmm10", typ: TypeXMM, bits: 128},
	XMM11:      {name: "xmm11", typ: TypeXMM, bits: 128},
	XMM12:      {name: "xmm12", typ: TypeXMM, bits: 128},
	XMM13:      {name: "xmm13", typ: TypeXMM, bits: 128},
	XMM14:      {name: "xmm14", typ: TypeXMM, bits: 128},
	XMM15:      {name: "xmm15", typ: TypeXMM, bits: 128},
	XMM16:      {name: "xmm16", typ: TypeXMM, bits: 128},
	XMM17:      {name: "xmm17", typ: TypeXMM, bits: 128},
	XMM18:      {name: "xmm18", typ: TypeXMM, bits: 128},
	XMM19:      {name: "xmm19", typ: TypeXMM, bits: 128},
	XMM20:      {name: "xmm20", typ: TypeXMM, bits: 128},
	XMM21:      {name: "xmm21", typ: TypeXMM, bits: 128},
	XMM22:      {name: "xmm22", typ: TypeXMM, bits: 128},
	XMM23:      {name: "xmm23", typ: TypeXMM, bits: 128},
	XMM24:      {name: "xmm24", typ: TypeXMM, bits: 128},
	XMM25:      {name: "xmm25", typ: TypeXMM, bits: 128},
	XMM26:      {name: "xmm26", typ: TypeXMM, bits: 128},
	XMM27:      {name: "xmm27", typ: TypeXMM, bits: 128},
	XMM28:      {name: "xmm28", typ: TypeXMM, bits: 128},
	XMM29:      {name: "xmm29", typ: TypeXMM, bits: 128},
	XMM30:      {name: "xmm30", typ: TypeXMM, bits: 128},
	XMM31:      {name: "xmm31", typ: TypeXMM, bits: 128},
	YMM0:       {name: "ymm0", typ: TypeYMM, bits: 256},
	YMM1:       {name: "ymm1", typ: TypeYMM, bits: 256},
	YMM2:       {name: "ymm2", typ: TypeYMM, bits: 256},
	YMM3:       {name: "ymm3", typ: TypeYMM, bits: 256},
	YMM4:       {name: "ymm4", typ: TypeYMM, bits: 256},
	YMM5:       {name: "ymm5", typ: TypeYMM, bits: 256},
	YMM6:       {name: "ymm6", typ: TypeYMM, bits: 256},
	YMM7:       {name: "ymm7", typ: TypeYMM, bits: 256},
	YMM8:       {name: "ymm8", typ: TypeYMM, bits: 256},
	YMM9:       {name: "ymm9", typ: TypeYMM, bits: 256},
	YMM10:      {name: "ymm10", typ: TypeYMM, bits: 256},
	YMM11:      {name: "ymm11", typ: TypeYMM, bits: 256},
	YMM12:      {name: "ymm12", typ: TypeYMM, bits: 256},
	YMM13:      {name: "ymm13", typ: TypeYMM, bits: 256},
	YMM14:      {name: "ymm14", typ: TypeYMM, bits: 256},
	YMM15:      {name: "ymm15", typ: TypeYMM, bits: 256},
	YMM16:      {name: "ymm16", typ: TypeYMM, bits: 256},
	YMM17:      {name: "ymm17", typ: TypeYMM, bits: 256},
	YMM18:      {name: "ymm18", typ: TypeYMM, bits: 256},
	YMM19:      {name: "ymm19", typ: TypeYMM, bits: 256},
	YMM20:      {name: "ymm20", typ: TypeYMM, bits: 256},
	YMM21:      {name: "ymm21", typ: TypeYMM, bits: 256},
	YMM22:      {name: "ymm22", typ: TypeYMM, bits: 256},
	YMM23:      {name: "ymm23", typ: TypeYMM, bits: 256},
	YMM24:      {name: "ymm24", typ: TypeYMM, bits: 256},
	YMM25:      {name: "ymm25", typ: TypeYMM, bits: 256},
	YMM26:      {name: "ymm26", typ: TypeYMM, bits: 256},
	YMM27:      {name: "ymm27", typ: TypeYMM, bits: 256},
	YMM28:      {name: "ymm28", typ: TypeYMM, bits: 256},
	YMM29:      {name: "ymm29", typ: TypeYMM, bits: 256},
	YMM30:      {name: "ymm30", typ: TypeYMM, bits: 256},
	YMM31:      {name: "ymm31", typ: TypeYMM, bits: 256},
	ZMM0:       {name: "zmm0", typ: TypeZMM, bits: 512},
	ZMM1:       {name: "zmm1", typ: TypeZMM, bits: 512},
	ZMM2:       {name: "zmm2", typ: TypeZMM, bits: 512},
	ZMM3:       {name: "zmm3", typ: TypeZMM, bits: 512},
	ZMM4:       {name: "zmm4", typ: TypeZMM, bits: 512},
	ZMM5:       {name: "zmm5", typ: TypeZMM, bits: 512},
	ZMM6:       {name: "zmm6", typ: TypeZMM, bits: 512},
	ZMM7:       {name: "zmm7", typ: TypeZMM, bits: 512},
	ZMM8:       {name: "zmm8", typ: TypeZMM, bits: 512},
	ZMM9:       {name: "zmm9", typ: TypeZMM, bits: 512},
	ZMM10:      {name: "zmm10", typ: TypeZMM, bits: 512},
	ZMM11:      {name: "zmm11", typ: TypeZMM, bits: 512},
	ZMM12:      {name: "zmm12", typ: TypeZMM, bits: 512},
	ZMM13:      {name: "zmm13", typ: TypeZMM, bits: 512},
	ZMM14:      {name: "zmm14", typ: TypeZMM, bits: 512},
	ZMM15:      {name: "zmm15", typ: TypeZMM, bits: 512},
	ZMM16:      {name: "zmm16", typ: TypeZMM, bits: 512},
	ZMM17:      {name: "zmm17", typ: TypeZMM, bits: 512},
	ZMM18:      {name: "zmm18", typ: TypeZMM, bits: 512},
	ZMM19:      {name: "zmm19", typ: TypeZMM, bits: 512},
	ZMM20:      {name: "zmm20", typ: TypeZMM, bits: 512},
	ZMM21:      {name: "zmm21", typ: TypeZMM, bits: 512},
	ZMM22:      {name: "zmm22", typ: TypeZMM, bits: 512},
	ZMM23:      {name: "zmm23", typ: TypeZMM, bits: 512},
	ZMM24:      {name: "zmm24", typ: TypeZMM, bits: 512},
	ZMM25:      {name: "zmm25", typ: TypeZMM, bits: 512},
	ZMM26:      {name: "zmm26", typ: TypeZMM, bits: 512},
	ZMM27:      {name: "zmm27", typ: TypeZMM, bits: 512},
	ZMM28:      {name: "zmm28", typ: TypeZMM, bits: 512},
	ZMM29:      {name: "zmm29", typ: TypeZMM, bits: 512},
	ZMM30:      {name: "zmm30", typ: TypeZMM, bits: 512},
	ZMM31:      {name: "zmm31", typ: TypeZMM, bits: 512},
	K0:         {name: "k0", typ: TypeOpmask, bits: 64},
	K1:         {name: "k1", typ: TypeOpmask, bits: 64},
	K2:         {name: "k2", typ: TypeOpmask, bits: 64},
	K3:         {name: "k3", typ: TypeOpmask, bits: 64},
	K4:         {name: "k4", typ: TypeOpmask, bits: 64},
	K5:         {name: "k5", typ: TypeOpmask, bits: 64},
	K6:         {name: "k6", typ: TypeOpmask, bits: 64},
	K7:         {name: "k7", typ: TypeOpmask, bits: 64},
	BND0:       {name: "bnd0", typ: TypeBounds, bits: 128},
	BND1:       {name: "bnd1", typ: TypeBounds, bits: 128},
	BND2:       {name: "bnd2", typ: TypeBounds, bits: 128},
	BND3:       {name: "bnd3", typ: TypeBounds, bits: 128},
	CR0:        {name: "cr0", typ: TypeControl, bits: 0},
	CR1:        {name: "cr1", typ: TypeControl, bits: 0},
	CR2:        {name: "cr2", typ: TypeControl, bits: 0},
	CR3:        {name: "cr3", typ: TypeControl, bits: 0},
	CR4:        {name: "cr4", typ: TypeControl, bits: 0},
	CR5:        {name: "cr5", typ: TypeControl, bits: 0},
	CR6:        {name: "cr6", typ: TypeControl, bits: 0},
	CR7:        {name: "cr7", typ: TypeControl, bits: 0},
	CR8:        {name: "cr8", typ: TypeControl, bits: 0},
	CR9:        {name: "cr9", typ: TypeControl, bits: 0},
	CR10:       {name: "cr10", typ: TypeControl, bits: 0},
	CR11:       {name: "cr11", typ: TypeControl, bits: 0},
	CR12:       {name: "cr12", typ: TypeControl, bits: 0},
	CR13:       {name: "cr13", typ: TypeControl, bits: 0},
	CR14:       {name: "cr14", typ: TypeControl, bits: 0},
	CR15:       {name: "cr15", typ: TypeControl, bits: 0},
	DR0:        {name: "dr0", typ: TypeDebug, bits: 0},
	DR1:        {name: "dr1", typ: TypeDebug, bits: 0},
	DR2:        {name: "dr2", typ: TypeDebug, bits: 0},
	DR3:        {name: "dr3", typ: TypeDebug, bits: 0},
	DR4:        {name: "dr4", typ: TypeDebug, bits: 0},
	DR5:        {name: "dr5", typ: TypeDebug, bits: 0},
	DR6:        {name: "dr6", typ: TypeDebug, bits: 0},
	DR7:        {name: "dr7", typ: TypeDebug, bits: 0},
	DR8:        {name: "dr8", typ: TypeDebug, bits: 0},
	DR9:        {name: "dr9", typ: TypeDebug, bits: 0},
	DR10:       {name: "dr10", typ: TypeDebug, bits: 0},
	DR11:       {name: "dr11", typ: TypeDebug, bits: 0},
	DR12:       {name: "dr12", typ: TypeDebug, bits: 0},
	DR13:       {name: "dr13", typ: TypeDebug, bits: 0},
	DR14:       {name: "dr14", typ: TypeDebug, bits: 0},
	DR15:       {name: "dr15", typ: TypeDebug, bits: 0},
	ST0:        {name: "st0", typ: TypeX87, bits: 80},
	ST1:        {name: "st1", typ: TypeX87, bits: 80},
	ST2:        {name: "st2", typ: TypeX87, bits: 80},
	ST3:        {name: "st3", typ: TypeX87, bits: 80},
	ST4:        {name: "st4", typ: TypeX87, bits: 80},
	ST5:        {name: "st5", typ: TypeX87, bits: 80},
	ST6:        {name: "st6", typ: TypeX87, bits: 80},
	ST7:        {name: "st7", typ: TypeX87, bits: 80},
	MM0:        {name: "mm0", typ: TypeMMX, bits: 64},
	MM1:        {name: "mm1", typ: TypeMMX, bits: 64},
	MM2:        {name: "mm2", typ: TypeMMX, bits: 64},
	MM3:        {name: "mm3", typ: TypeMMX, bits: 64},
	MM4:        {name: "mm4", typ: TypeMMX, bits: 64},
	MM5:        {name: "mm5", typ: TypeMMX, bits: 64},
	MM6:        {name: "mm6", typ: TypeMMX, bits: 64},
	MM7:        {name: "mm7", typ: TypeMMX, bits: 64},
	TR0:        {name: "tr0", typ: TypeTest, bits: 32},
	TR1:        {name: "tr1", typ: TypeTest, bits: 32},
	TR2:        {name: "tr2", typ: TypeTest, bits: 32},
	TR3:        {name: "tr3", typ: TypeTest, bits: 32},
	TR4:        {name: "tr4", typ: TypeTest, bits: 32},
	TR5:        {name: "tr5", typ: TypeTest, bits: 32},
	TR6:        {name: "tr6", typ: TypeTest, bits: 32},
	TR7:        {name: "tr7", typ: TypeTest, bits: 32},
}

var registersByName = make(map[string]Register, NumRegisters)

func init() {
	for i, info := range registerInfos {
		registersByName[info.name] = Register(i)
	}
}

// RegisterByName returns the register
// with the given name, which is not
// case-sensitive.
func RegisterByName(name string) (Register, bool) {
	reg, ok := registersByName[strings.ToLower(name)]
	return reg, ok
}

func (r Register) String() string {
	if int(r) < NumRegisters {
		return registerInfos[r].name
	}

	return fmt.Sprintf("Register(%d)", uint8(r))
}

// UpperName returns the register's name
// in upper case, as used in Intel's
// manuals.
func (r Register) UpperName() string { return strings.ToUpper(r.String()) }

// Type returns the register's family.
func (r Register) Type() RegisterType {
	if int(r) < NumRegisters {
		return registerInfos[r].typ
	}

	return 0
}

// Bits returns the size of the register
// in bits, or zero for registers with a
// mode-dependent size.
func (r Register) Bits() int {
	if int(r) < NumRegisters {
		return registerInfos[r].bits
	}

	return 0
}

// Number returns the register's index
// within its family.
func (r Register) Number() int {
	switch r.Type() {
	case TypeGeneralPurpose:
		switch {
		case r <= R15L:
			if r >= SPL && r <= DIL {
				return int(r-SPL) + 4
			}
			if r >= R8L {
				return int(r-R8L) + 8
			}
			return int(r - AL)
		case r <= R15W:
			return int(r - AX)
		case r <= R15D:
			return int(r - EAX)
		default:
			return int(r - RAX)
		}
	case TypeInstructionPointer:
		return 0
	case TypeSegment:
		return int(r - ES)
	case TypeXMM:
		return int(r - XMM0)
	case TypeYMM:
		return int(r - YMM0)
	case TypeZMM:
		return int(r - ZMM0)
	case TypeOpmask:
		return int(r - K0)
	case TypeBounds:
		return int(r - BND0)
	case TypeControl:
		return int(r - CR0)
	case TypeDebug:
		return int(r - DR0)
	case TypeX87:
		return int(r - ST0)
	case TypeMMX:
		return int(r - MM0)
	case TypeTest:
		return int(r - TR0)
	}

	return 0
}

// IsVector returns whether r is an XMM,
// YMM, or ZMM register.
func (r Register) IsVector() bool {
	return XMM0 <= r && r <= ZMM31
}

func (r Register) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

func (r *Register) UnmarshalJSON(data []byte) error {
	var s string
	err := json.Unmarshal(data, &s)
	if err != nil {
		return err
	}

	got, ok := RegisterByName(s)
	if !ok {
		return fmt.Errorf("invalid register %q", s)
	}

	*r = got

	return nil
}

// RegisterType categorises an x86
// register.
type RegisterType uint8

const (
	_ RegisterType = iota
	TypeGeneralPurpose
	TypeInstructionPointer
	TypeSegment
	TypeX87
	TypeControl
	TypeDebug
	TypeTest
	TypeOpmask
	TypeBounds
	TypeMMX
	TypeXMM
	TypeYMM
	TypeZMM
)

func (t RegisterType) String() string {
	switch t {
	case TypeGeneralPurpose:
		return "general purpose register"
	case TypeInstructionPointer:
		return "instruction pointer register"
	case TypeSegment:
		return "segment register"
	case TypeX87:
		return "x87 register"
	case TypeControl:
		return "control register"
	case TypeDebug:
		return "debug register"
	case TypeTest:
		return "test register"
	case TypeOpmask:
		return "opmask register"
	case TypeBounds:
		return "bounds register"
	case TypeMMX:
		return "MMX register"
	case TypeXMM:
		return "XMM register"
	case TypeYMM:
		return "YMM register"
	case TypeZMM:
		return "ZMM register"
	default:
		return fmt.Sprintf("RegisterType(%d)", t)
	}
}

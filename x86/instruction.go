// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

import (
	"fmt"
	"strings"
)

// MaxInstructionLength is the largest
// number of bytes an x86 instruction can
// occupy.
const MaxInstructionLength = 15

// MaxOperands is the largest number of
// operands an instruction can have.
const MaxOperands = 5

type instrFlags uint16

const (
	instrLock instrFlags = 1 << iota
	instrRep
	instrRepne
	instrXacquire
	instrXrelease
	instrBroadcast
	instrZeroing
	instrSAE
	instrMvexEH
)

// Instruction is a decoded x86
// instruction.
//
// An Instruction is a fixed-size value
// with no references to the decoder or
// its input, so it can be copied and
// compared freely.
type Instruction struct {
	ip       uint64
	nextIP   uint64
	code     Code
	codeSize CodeSize
	length   uint8
	encoding EncodingKind
	flags    instrFlags

	opKinds [MaxOperands]OpKind
	regs    [MaxOperands]Register

	segmentPrefix Register
	memBase       Register
	memIndex      Register
	memScale      uint8 // log2 of the scale
	memDisplSize  uint8 // in bytes
	memDispl      uint64

	imm         uint64
	imm2        uint8
	nearBranch  uint64
	farBranch   uint32
	farSelector uint16

	opMask   Register
	rc       RoundingControl
	mvexConv MvexRegMemConv
}

// Code returns the instruction's variant.
func (i *Instruction) Code() Code { return i.code }

// Mnemonic returns the instruction's
// mnemonic, in lower case.
func (i *Instruction) Mnemonic() string { return i.code.Mnemonic() }

// IsInvalid returns whether the bytes
// did not encode a valid instruction.
func (i *Instruction) IsInvalid() bool { return i.code == INVALID }

// Length returns the number of bytes in
// the instruction.
func (i *Instruction) Length() int { return int(i.length) }

// IP returns the address of the first
// byte of the instruction.
func (i *Instruction) IP() uint64 { return i.ip }

// NextIP returns the address of the byte
// after the instruction.
func (i *Instruction) NextIP() uint64 { return i.nextIP }

// CodeSize returns the size of the code
// segment the instruction was decoded in.
func (i *Instruction) CodeSize() CodeSize { return i.codeSize }

// Encoding returns the prefix family the
// instruction was encoded with.
func (i *Instruction) Encoding() EncodingKind { return i.encoding }

// OpCount returns the number of operands.
func (i *Instruction) OpCount() int {
	for n, kind := range i.opKinds {
		if kind == OpKindNone {
			return n
		}
	}

	return MaxOperands
}

// OpKind returns the kind of operand n,
// or OpKindNone if there are fewer
// operands.
func (i *Instruction) OpKind(n int) OpKind {
	if n < 0 || n >= MaxOperands {
		return OpKindNone
	}

	return i.opKinds[n]
}

// OpRegister returns the register in
// operand n, or NoRegister if operand n
// is not a register operand.
func (i *Instruction) OpRegister(n int) Register {
	if n < 0 || n >= MaxOperands || i.opKinds[n] != OpKindRegister {
		return NoRegister
	}

	return i.regs[n]
}

// Immediate returns the value of operand
// n if it is an immediate, sign-extended
// where the operand kind requires it.
func (i *Instruction) Immediate(n int) (uint64, bool) {
	switch i.OpKind(n) {
	case OpKindImmediate8:
		return uint64(uint8(i.imm)), true
	case OpKindImmediate8_2nd:
		return uint64(i.imm2), true
	case OpKindImmediate16:
		return uint64(uint16(i.imm)), true
	case OpKindImmediate32:
		return uint64(uint32(i.imm)), true
	case OpKindImmediate64:
		return i.imm, true
	case OpKindImmediate8to16:
		return uint64(uint16(int8(i.imm))), true
	case OpKindImmediate8to32:
		return uint64(uint32(int8(i.imm))), true
	case OpKindImmediate8to64:
		return uint64(int64(int8(i.imm))), true
	case OpKindImmediate32to64:
		return uint64(int64(int32(i.imm))), true
	}

	return 0, false
}

// Immediate8 returns the first 8-bit
// immediate.
func (i *Instruction) Immediate8() uint8 { return uint8(i.imm) }

// Immediate8_2nd returns the second 8-bit
// immediate, as used by ENTER and EXTRQ.
func (i *Instruction) Immediate8_2nd() uint8 { return i.imm2 }

// Immediate16 returns the 16-bit
// immediate.
func (i *Instruction) Immediate16() uint16 { return uint16(i.imm) }

// Immediate32 returns the 32-bit
// immediate.
func (i *Instruction) Immediate32() uint32 { return uint32(i.imm) }

// Immediate64 returns the 64-bit
// immediate.
func (i *Instruction) Immediate64() uint64 { return i.imm }

// NearBranchTarget returns the absolute
// target of a near branch, truncated to
// the branch's operand size.
func (i *Instruction) NearBranchTarget() uint64 {
	switch i.opKinds[0] {
	case OpKindNearBranch16:
		return uint64(uint16(i.nearBranch))
	case OpKindNearBranch32:
		return uint64(uint32(i.nearBranch))
	}

	return i.nearBranch
}

// FarBranchSelector returns the segment
// selector of a far branch.
func (i *Instruction) FarBranchSelector() uint16 { return i.farSelector }

// FarBranch16 returns the offset of a
// 16-bit far branch.
func (i *Instruction) FarBranch16() uint16 { return uint16(i.farBranch) }

// FarBranch32 returns the offset of a
// 32-bit far branch.
func (i *Instruction) FarBranch32() uint32 { return i.farBranch }

// SegmentPrefix returns the explicit
// segment override prefix, or NoRegister.
func (i *Instruction) SegmentPrefix() Register { return i.segmentPrefix }

// MemoryBase returns the base register
// of the memory operand.
func (i *Instruction) MemoryBase() Register { return i.memBase }

// MemoryIndex returns the index register
// of the memory operand.
func (i *Instruction) MemoryIndex() Register { return i.memIndex }

// MemoryIndexScale returns the scale
// applied to the index register: 1, 2,
// 4, or 8.
func (i *Instruction) MemoryIndexScale() int { return 1 << i.memScale }

// MemoryDisplSize returns the size of the
// displacement in bytes: 0, 1, 2, 4, or
// 8. A 32-bit displacement used with
// 64-bit addressing reports 8.
func (i *Instruction) MemoryDisplSize() int { return int(i.memDisplSize) }

// MemoryDisplacement returns the memory
// operand's displacement, extended to
// 64 bits according to the address size.
//
// For an IP-relative operand this is the
// displacement from the next instruction,
// not the absolute address.
func (i *Instruction) MemoryDisplacement() uint64 { return i.memDispl }

// MemoryAddress64 returns the absolute
// address of a 64-bit moffs operand.
func (i *Instruction) MemoryAddress64() uint64 { return i.memDispl }

// IsIPRelativeMemoryOperand returns whether
// the memory operand is relative to RIP
// or EIP.
func (i *Instruction) IsIPRelativeMemoryOperand() bool {
	return i.memBase == RIP || i.memBase == EIP
}

// IPRelativeMemoryAddress returns the
// absolute address referenced by an
// IP-relative memory operand.
func (i *Instruction) IPRelativeMemoryAddress() uint64 {
	addr := i.nextIP + uint64(int64(int32(i.memDispl)))
	if i.memBase == EIP {
		addr = uint64(uint32(addr))
	}

	return addr
}

// MemorySegment returns the effective
// segment register of the memory operand.
//
// An explicit segment prefix wins. A
// stack-relative base selects SS, and the
// destination of a string instruction
// uses ES. Otherwise the segment is DS.
func (i *Instruction) MemorySegment() Register {
	for _, kind := range i.opKinds {
		switch kind {
		case OpKindMemoryESDI, OpKindMemoryESEDI, OpKindMemoryESRDI:
			return ES
		}
	}

	if i.segmentPrefix != NoRegister {
		return i.segmentPrefix
	}

	switch i.memBase {
	case BP, EBP, RBP, SP, ESP, RSP:
		return SS
	}

	return DS
}

// IsBroadcast returns whether the memory
// operand is an EVEX embedded broadcast.
func (i *Instruction) IsBroadcast() bool { return i.flags&instrBroadcast != 0 }

// Memory returns the memory operand as a
// value. The result is only meaningful if
// one of the operands is OpKindMemory.
func (i *Instruction) Memory() Memory {
	m := Memory{
		Segment:      i.segmentPrefix,
		Base:         i.memBase,
		Index:        i.memIndex,
		Displacement: int64(i.memDispl),
		DisplSize:    i.memDisplSize,
		Broadcast:    i.IsBroadcast(),
	}

	if m.Index != NoRegister {
		m.Scale = 1 << i.memScale
	}

	switch {
	case i.memDisplSize == 8 || i.memBase.Bits() == 64 || i.memIndex.Bits() == 64:
		m.Displacement = int64(i.memDispl)
	case i.memDisplSize == 2 || i.memBase.Bits() == 16 || i.memIndex.Bits() == 16:
		m.Displacement = int64(int16(i.memDispl))
	default:
		m.Displacement = int64(int32(i.memDispl))
	}

	return m
}

// HasLockPrefix returns whether the
// instruction has a LOCK prefix.
func (i *Instruction) HasLockPrefix() bool { return i.flags&instrLock != 0 }

// HasRepPrefix returns whether the
// instruction has a REP prefix (F3).
func (i *Instruction) HasRepPrefix() bool { return i.flags&instrRep != 0 }

// HasRepePrefix is the same as
// HasRepPrefix.
func (i *Instruction) HasRepePrefix() bool { return i.flags&instrRep != 0 }

// HasRepnePrefix returns whether the
// instruction has a REPNE prefix (F2).
func (i *Instruction) HasRepnePrefix() bool { return i.flags&instrRepne != 0 }

// HasXacquirePrefix returns whether the
// F2 prefix is an XACQUIRE hint.
func (i *Instruction) HasXacquirePrefix() bool { return i.flags&instrXacquire != 0 }

// HasXreleasePrefix returns whether the
// F3 prefix is an XRELEASE hint.
func (i *Instruction) HasXreleasePrefix() bool { return i.flags&instrXrelease != 0 }

// OpMask returns the EVEX or MVEX opmask
// register, or NoRegister if k0 was used.
func (i *Instruction) OpMask() Register { return i.opMask }

// HasOpMask returns whether the
// instruction uses an opmask register.
func (i *Instruction) HasOpMask() bool { return i.opMask != NoRegister }

// ZeroingMasking returns whether masked
// elements are zeroed.
func (i *Instruction) ZeroingMasking() bool { return i.flags&instrZeroing != 0 }

// MergingMasking returns whether masked
// elements are left unchanged.
func (i *Instruction) MergingMasking() bool { return i.flags&instrZeroing == 0 }

// RoundingControl returns the static
// rounding mode.
func (i *Instruction) RoundingControl() RoundingControl { return i.rc }

// SuppressAllExceptions returns whether
// the instruction uses {sae}.
func (i *Instruction) SuppressAllExceptions() bool { return i.flags&instrSAE != 0 }

// MvexEvictionHint returns whether an
// MVEX memory operand has the eviction
// hint set.
func (i *Instruction) MvexEvictionHint() bool { return i.flags&instrMvexEH != 0 }

// MvexRegMemConv returns the MVEX
// register swizzle or memory conversion.
func (i *Instruction) MvexRegMemConv() MvexRegMemConv { return i.mvexConv }

// Equal returns whether two instructions
// decoded to the same value, ignoring
// their addresses.
func (i *Instruction) Equal(o *Instruction) bool {
	a, b := *i, *o
	a.ip, a.nextIP = 0, 0
	b.ip, b.nextIP = 0, 0
	return a == b
}

func (i *Instruction) setOpRegister(n int, reg Register) {
	i.opKinds[n] = OpKindRegister
	i.regs[n] = reg
}

func (i *Instruction) setOpKind(n int, kind OpKind) {
	i.opKinds[n] = kind
}

func (i *Instruction) setImm8(n int, v uint8) {
	i.opKinds[n] = OpKindImmediate8
	i.imm = uint64(v)
}

func (i *Instruction) setImm8_2nd(n int, v uint8) {
	i.opKinds[n] = OpKindImmediate8_2nd
	i.imm2 = v
}

func (i *Instruction) setImm16(n int, v uint16) {
	i.opKinds[n] = OpKindImmediate16
	i.imm = uint64(v)
}

func (i *Instruction) setImm32(n int, v uint32) {
	i.opKinds[n] = OpKindImmediate32
	i.imm = uint64(v)
}

func (i *Instruction) setImmKind(n int, kind OpKind, v uint64) {
	i.opKinds[n] = kind
	i.imm = v
}

func (i *Instruction) setNearBranch(kind OpKind, target uint64) {
	i.opKinds[0] = kind
	i.nearBranch = target
}

// String returns a debugging rendering of
// the instruction: its code followed by
// its operands. It is not an assembly
// syntax.
func (i *Instruction) String() string {
	var s strings.Builder
	s.WriteString(i.code.String())
	n := i.OpCount()
	for op := 0; op < n; op++ {
		if op == 0 {
			s.WriteByte(' ')
		} else {
			s.WriteString(", ")
		}

		s.WriteString(i.OperandString(op))
		if op == 0 && i.opMask != NoRegister {
			fmt.Fprintf(&s, "{%s}", i.opMask)
			if i.ZeroingMasking() {
				s.WriteString("{z}")
			}
		}
	}

	if i.rc != RoundingNone {
		fmt.Fprintf(&s, " {%s}", i.rc)
	} else if i.SuppressAllExceptions() {
		s.WriteString(" {sae}")
	}

	return s.String()
}

// OperandString returns the debugging
// rendering of operand n, as used by
// String.
func (i *Instruction) OperandString(n int) string {
	kind := i.opKinds[n]
	switch kind {
	case OpKindRegister:
		return i.regs[n].String()
	case OpKindNearBranch16, OpKindNearBranch32, OpKindNearBranch64:
		return fmt.Sprintf("%#x", i.NearBranchTarget())
	case OpKindFarBranch16, OpKindFarBranch32:
		return fmt.Sprintf("%#x:%#x", i.farSelector, i.farBranch)
	case OpKindMemorySegSI, OpKindMemorySegESI, OpKindMemorySegRSI:
		reg := [...]Register{SI, ESI, RSI}[kind-OpKindMemorySegSI]
		return fmt.Sprintf("(%s %s)", i.stringSegment(DS), reg)
	case OpKindMemorySegDI, OpKindMemorySegEDI, OpKindMemorySegRDI:
		reg := [...]Register{DI, EDI, RDI}[kind-OpKindMemorySegDI]
		return fmt.Sprintf("(%s %s)", i.stringSegment(DS), reg)
	case OpKindMemoryESDI, OpKindMemoryESEDI, OpKindMemoryESRDI:
		reg := [...]Register{DI, EDI, RDI}[kind-OpKindMemoryESDI]
		return fmt.Sprintf("(es %s)", reg)
	case OpKindMemory64:
		return fmt.Sprintf("(%s %#x)", i.stringSegment(DS), i.memDispl)
	case OpKindMemory:
		m := i.Memory()
		return m.String()
	}

	if v, ok := i.Immediate(n); ok {
		return fmt.Sprintf("%#x", v)
	}

	return kind.String()
}

func (i *Instruction) stringSegment(def Register) Register {
	if i.segmentPrefix != NoRegister {
		return i.segmentPrefix
	}

	return def
}

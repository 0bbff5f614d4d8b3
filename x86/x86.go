// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

// Package x86 decodes x86 machine code in 16-bit,
// 32-bit, and 64-bit modes.
//
// A Decoder consumes a byte slice and produces one
// Instruction per call to Decode. Instructions are
// plain values that describe the instruction variant
// (its Code), its operands, and any prefixes. The
// decoder understands the legacy, VEX, XOP, EVEX, and
// MVEX encodings, including the x87 and 3DNow! opcode
// spaces.
package x86

import (
	"fmt"
)

// CodeSize is the size of the code
// segment an instruction was decoded
// in.
type CodeSize uint8

const (
	CodeSizeUnknown CodeSize = iota
	CodeSize16
	CodeSize32
	CodeSize64
)

func (s CodeSize) String() string {
	switch s {
	case CodeSizeUnknown:
		return "unknown"
	case CodeSize16:
		return "16"
	case CodeSize32:
		return "32"
	case CodeSize64:
		return "64"
	default:
		return fmt.Sprintf("CodeSize(%d)", s)
	}
}

// Bits returns the code size as a number
// of bits, or zero if unknown.
func (s CodeSize) Bits() int {
	switch s {
	case CodeSize16:
		return 16
	case CodeSize32:
		return 32
	case CodeSize64:
		return 64
	default:
		return 0
	}
}

// EncodingKind describes the prefix
// family an instruction was encoded
// with.
type EncodingKind uint8

const (
	EncodingLegacy EncodingKind = iota
	EncodingVEX
	EncodingEVEX
	EncodingXOP
	Encoding3DNow
	EncodingMVEX
)

func (e EncodingKind) String() string {
	switch e {
	case EncodingLegacy:
		return "legacy"
	case EncodingVEX:
		return "VEX"
	case EncodingEVEX:
		return "EVEX"
	case EncodingXOP:
		return "XOP"
	case Encoding3DNow:
		return "3DNow!"
	case EncodingMVEX:
		return "MVEX"
	default:
		return fmt.Sprintf("EncodingKind(%d)", e)
	}
}

// RoundingControl is the static rounding
// mode selected by an EVEX instruction
// with embedded rounding.
type RoundingControl uint8

const (
	RoundingNone RoundingControl = iota
	RoundToNearest
	RoundDown
	RoundUp
	RoundTowardZero
)

func (r RoundingControl) String() string {
	switch r {
	case RoundingNone:
		return "none"
	case RoundToNearest:
		return "rn-sae"
	case RoundDown:
		return "rd-sae"
	case RoundUp:
		return "ru-sae"
	case RoundTowardZero:
		return "rz-sae"
	default:
		return fmt.Sprintf("RoundingControl(%d)", r)
	}
}

// MvexRegMemConv is the register swizzle
// or memory up/down conversion selected
// by an MVEX instruction's SSS field.
type MvexRegMemConv uint8

const (
	MvexConvNone MvexRegMemConv = iota
	MvexRegSwizzleNone
	MvexRegSwizzleCdab
	MvexRegSwizzleBadc
	MvexRegSwizzleDacb
	MvexRegSwizzleAaaa
	MvexRegSwizzleBbbb
	MvexRegSwizzleCccc
	MvexRegSwizzleDddd
	MvexMemConvNone
	MvexMemConvBroadcast1
	MvexMemConvBroadcast4
	MvexMemConvFloat16
	MvexMemConvUint8
	MvexMemConvSint8
	MvexMemConvUint16
	MvexMemConvSint16
)

var mvexRegMemConvNames = [...]string{
	MvexConvNone:          "none",
	MvexRegSwizzleNone:    "dcba",
	MvexRegSwizzleCdab:    "cdab",
	MvexRegSwizzleBadc:    "badc",
	MvexRegSwizzleDacb:    "dacb",
	MvexRegSwizzleAaaa:    "aaaa",
	MvexRegSwizzleBbbb:    "bbbb",
	MvexRegSwizzleCccc:    "cccc",
	MvexRegSwizzleDddd:    "dddd",
	MvexMemConvNone:       "mem",
	MvexMemConvBroadcast1: "1to16",
	MvexMemConvBroadcast4: "4to16",
	MvexMemConvFloat16:    "float16",
	MvexMemConvUint8:      "uint8",
	MvexMemConvSint8:      "sint8",
	MvexMemConvUint16:     "uint16",
	MvexMemConvSint16:     "sint16",
}

func (c MvexRegMemConv) String() string {
	if int(c) < len(mvexRegMemConvNames) {
		return mvexRegMemConvNames[c]
	}

	return fmt.Sprintf("MvexRegMemConv(%d)", c)
}

// TupleType contains an EVEX instruction
// tuple kind, as defined in Intel x86,
// Volume 2A, Section 2.6.5, combined with
// the vector length it applies to.
//
// The tuple type determines the scale
// factor N applied to a compressed 8-bit
// displacement (disp8*N).
type TupleType uint8

const (
	TupleNone TupleType = iota
	TupleFull128
	TupleFull256
	TupleFull512
	TupleHalf128
	TupleHalf256
	TupleHalf512
	TupleFullMem128
	TupleFullMem256
	TupleFullMem512
	Tuple1Scalar
	Tuple1Scalar1
	Tuple1Scalar2
	Tuple1Scalar4
	Tuple1Scalar8
	Tuple1Fixed
	Tuple1Fixed4
	Tuple1Fixed8
	Tuple2
	Tuple4
	Tuple8
	TupleFullMemX4 // Tuple1_4X
	TupleHalfMem128
	TupleHalfMem256
	TupleHalfMem512
	TupleQuarterMem128
	TupleQuarterMem256
	TupleQuarterMem512
	TupleEighthMem128
	TupleEighthMem256
	TupleEighthMem512
	TupleMem128
	TupleMOVDDUP128
	TupleMOVDDUP256
	TupleMOVDDUP512
)

var tupleTypeNames = [...]string{
	TupleNone:          "None",
	TupleFull128:       "Full 128",
	TupleFull256:       "Full 256",
	TupleFull512:       "Full 512",
	TupleHalf128:       "Half 128",
	TupleHalf256:       "Half 256",
	TupleHalf512:       "Half 512",
	TupleFullMem128:    "Full Mem 128",
	TupleFullMem256:    "Full Mem 256",
	TupleFullMem512:    "Full Mem 512",
	Tuple1Scalar:       "Tuple1 Scalar",
	Tuple1Scalar1:      "Tuple1 Scalar 1",
	Tuple1Scalar2:      "Tuple1 Scalar 2",
	Tuple1Scalar4:      "Tuple1 Scalar 4",
	Tuple1Scalar8:      "Tuple1 Scalar 8",
	Tuple1Fixed:        "Tuple1 Fixed",
	Tuple1Fixed4:       "Tuple1 Fixed 4",
	Tuple1Fixed8:       "Tuple1 Fixed 8",
	Tuple2:             "Tuple2",
	Tuple4:             "Tuple4",
	Tuple8:             "Tuple8",
	TupleFullMemX4:     "Tuple1 4X",
	TupleHalfMem128:    "Half Mem 128",
	TupleHalfMem256:    "Half Mem 256",
	TupleHalfMem512:    "Half Mem 512",
	TupleQuarterMem128: "Quarter Mem 128",
	TupleQuarterMem256: "Quarter Mem 256",
	TupleQuarterMem512: "Quarter Mem 512",
	TupleEighthMem128:  "Eighth Mem 128",
	TupleEighthMem256:  "Eighth Mem 256",
	TupleEighthMem512:  "Eighth Mem 512",
	TupleMem128:        "Mem128",
	TupleMOVDDUP128:    "MOVDDUP 128",
	TupleMOVDDUP256:    "MOVDDUP 256",
	TupleMOVDDUP512:    "MOVDDUP 512",
}

func (t TupleType) String() string {
	if int(t) < len(tupleTypeNames) {
		return tupleTypeNames[t]
	}

	return fmt.Sprintf("TupleType(%d)", t)
}

// Disp8N returns the scale factor N for
// a compressed 8-bit displacement, given
// whether the instruction uses embedded
// broadcast and whether EVEX.W is set.
//
// See Intel x86 manuals, Volume 2A,
// Section 2.7.5.
func (t TupleType) Disp8N(broadcast, w bool) uint32 {
	elem := uint32(4)
	if w {
		elem = 8
	}

	switch t {
	case TupleNone:
		return 1
	case TupleFull128:
		if broadcast {
			return elem
		}
		return 16
	case TupleFull256:
		if broadcast {
			return elem
		}
		return 32
	case TupleFull512:
		if broadcast {
			return elem
		}
		return 64
	case TupleHalf128:
		if broadcast {
			return 4
		}
		return 8
	case TupleHalf256:
		if broadcast {
			return 4
		}
		return 16
	case TupleHalf512:
		if broadcast {
			return 4
		}
		return 32
	case TupleFullMem128:
		return 16
	case TupleFullMem256:
		return 32
	case TupleFullMem512:
		return 64
	case Tuple1Scalar, Tuple1Fixed:
		return elem
	case Tuple1Scalar1:
		return 1
	case Tuple1Scalar2:
		return 2
	case Tuple1Scalar4, Tuple1Fixed4:
		return 4
	case Tuple1Scalar8, Tuple1Fixed8:
		return 8
	case Tuple2:
		return elem * 2
	case Tuple4:
		return elem * 4
	case Tuple8:
		return 32
	case TupleFullMemX4:
		return 16
	case TupleHalfMem128:
		return 8
	case TupleHalfMem256:
		return 16
	case TupleHalfMem512:
		return 32
	case TupleQuarterMem128:
		return 4
	case TupleQuarterMem256:
		return 8
	case TupleQuarterMem512:
		return 16
	case TupleEighthMem128:
		return 2
	case TupleEighthMem256:
		return 4
	case TupleEighthMem512:
		return 8
	case TupleMem128:
		return 16
	case TupleMOVDDUP128:
		return 8
	case TupleMOVDDUP256:
		return 32
	case TupleMOVDDUP512:
		return 64
	}

	return 1
}

// Prefix represents a legacy x86 prefix.
type Prefix byte

const (
	PrefixLock        Prefix = 0xf0
	PrefixRepeatNot   Prefix = 0xf2
	PrefixRepeat      Prefix = 0xf3
	PrefixCS          Prefix = 0x2e
	PrefixSS          Prefix = 0x36
	PrefixDS          Prefix = 0x3e
	PrefixES          Prefix = 0x26
	PrefixFS          Prefix = 0x64
	PrefixGS          Prefix = 0x65
	PrefixOperandSize Prefix = 0x66
	PrefixAddressSize Prefix = 0x67
)

func (p Prefix) String() string {
	switch p {
	case PrefixLock:
		return "lock"
	case PrefixRepeatNot:
		return "repnz/repne"
	case PrefixRepeat:
		return "rep/repe/repz"
	case PrefixCS:
		return "cs"
	case PrefixSS:
		return "ss"
	case PrefixDS:
		return "ds"
	case PrefixES:
		return "es"
	case PrefixFS:
		return "fs"
	case PrefixGS:
		return "gs"
	case PrefixOperandSize:
		return "data16/data32"
	case PrefixAddressSize:
		return "addr16/addr32"
	default:
		return fmt.Sprintf("Prefix(%#02x)", byte(p))
	}
}

// b2i is a helper function to convert
// a boolean to an integer. The result
// is one if `b` is true and 0 otherwise.
func b2i(b bool) byte {
	if b {
		return 1
	}

	return 0
}

// VEX provides helper functionality
// for reading the payload of a 3-byte VEX or XOP prefix.
//
// The R, X, B, and vvvv fields are
// stored inverted, as they are in the
// instruction stream.
type VEX [2]byte

// Intel x86 manuals, Volume 2A,
// Section 2.3.5, Table 2-9.
//
// 3-byte form:
//
// 	| 7  6  5  4   3  2  1  0 |
// 	+-------------------------|
// 	| 1  1  0  0   0  1  0  0 | // 0xc4 prefix (0x8f for XOP).
// 	| R  X  B  m   m  m  m  m | // P0.
// 	| W  v  v  v   v  L  p  p | // P1.
//
// 2-byte form:
//
// 	| 7  6  5  4   3  2  1  0 |
// 	+-------------------------|
// 	| 1  1  0  0   0  1  0  1 | // 0xc5 prefix.
// 	| R  v  v  v   v  L  p  p | // P0.

// P0.
func (v VEX) R() bool      { return ((v[0] >> 7) & 1) == 1 }
func (v VEX) X() bool      { return ((v[0] >> 6) & 1) == 1 }
func (v VEX) B() bool      { return ((v[0] >> 5) & 1) == 1 }
func (v VEX) M_MMMM() byte { return v[0] & 0b1_1111 }

// P1.
func (v VEX) W() bool    { return ((v[1] >> 7) & 1) == 1 }
func (v VEX) VVVV() byte { return (v[1] >> 3) & 0b1111 }
func (v VEX) L() bool    { return ((v[1] >> 2) & 1) == 1 }
func (v VEX) PP() byte   { return v[1] & 0b11 }

// P0.
func (v *VEX) SetR(b bool)      { v[0] = v[0]&0b0111_1111 | (b2i(b) << 7) }
func (v *VEX) SetX(b bool)      { v[0] = v[0]&0b1011_1111 | (b2i(b) << 6) }
func (v *VEX) SetB(b bool)      { v[0] = v[0]&0b1101_1111 | (b2i(b) << 5) }
func (v *VEX) SetM_MMMM(b byte) { v[0] = v[0]&0b1110_0000 | (b & 0b1_1111) }

// VEX2 returns the VEX prefix equivalent
// to the payload byte of a 2-byte VEX
// prefix.
func VEX2(p0 byte) VEX {
	var v VEX
	v.SetR((p0 >> 7) == 1)
	v.SetX(true)
	v.SetB(true)
	v.SetM_MMMM(1)
	v[1] = p0 & 0b0111_1111
	return v
}

func (v VEX) String() string {
	return fmt.Sprintf("{R: %b, X: %b, B: %b, m-mmmm: %05b, W: %v, vvvv: %04b, L: %b, pp: %02b}",
		b2i(v.R()), b2i(v.X()), b2i(v.B()), v.M_MMMM(),
		v.W(), v.VVVV(), b2i(v.L()), v.PP())
}

// EVEX provides helper functionality
// for reading the payload of an EVEX or MVEX prefix.
type EVEX [3]byte

// Intel x86 manuals, Volume 2A,
// Section 2.6.1, Table 2-11.
//
// 	| 7  6  5  4   3  2  1  0 |
// 	+-------------------------|
// 	| 0  1  1  0   0  0  1  0 | // 0x62 prefix.
// 	| R  X  B  R'  0  m  m  m | // P0.
// 	| W  v  v  v   v  1  p  p | // P1.
// 	| z  L' L  b   V' a  a  a | // P2.
//
// MVEX uses the same layout, except that
// P1 bit 2 is clear, and P2 holds
// E S S S V' k k k.

// P0.
func (p EVEX) R() bool   { return ((p[0] >> 7) & 1) == 1 }
func (p EVEX) X() bool   { return ((p[0] >> 6) & 1) == 1 }
func (p EVEX) B() bool   { return ((p[0] >> 5) & 1) == 1 }
func (p EVEX) Rp() bool  { return ((p[0] >> 4) & 1) == 1 }
func (p EVEX) MMM() byte { return p[0] & 0b111 }

// P1.
func (p EVEX) W() bool    { return ((p[1] >> 7) & 1) == 1 }
func (p EVEX) VVVV() byte { return (p[1] >> 3) & 0b1111 }
func (p EVEX) PP() byte   { return p[1] & 0b11 }

// P2.
func (p EVEX) Z() bool   { return ((p[2] >> 7) & 1) == 1 }
func (p EVEX) Lp() bool  { return ((p[2] >> 6) & 1) == 1 }
func (p EVEX) L() bool   { return ((p[2] >> 5) & 1) == 1 }
func (p EVEX) Br() bool  { return ((p[2] >> 4) & 1) == 1 }
func (p EVEX) Vp() bool  { return ((p[2] >> 3) & 1) == 1 }
func (p EVEX) AAA() byte { return p[2] & 0b111 }

// MVEX view of P2.
func (p EVEX) EH() bool  { return ((p[2] >> 7) & 1) == 1 }
func (p EVEX) SSS() byte { return (p[2] >> 4) & 0b111 }

// On reports whether the prefix is an
// EVEX prefix rather than an MVEX one.
func (p EVEX) On() bool { return ((p[1] >> 2) & 1) == 1 }

func (p EVEX) String() string {
	return fmt.Sprintf("{R: %b, X: %b, B: %b, R': %b, mm: %02b // W: %b, vvvv: %04b, pp: %02b // z: %b, L': %b, L: %b, b: %b, V': %b, aaa: %03b}",
		b2i(p.R()), b2i(p.X()), b2i(p.B()), b2i(p.Rp()), p.MMM(),
		b2i(p.W()), p.VVVV(), p.PP(),
		b2i(p.Z()), b2i(p.Lp()), b2i(p.L()), b2i(p.Br()), b2i(p.Vp()), p.AAA())
}

// REX provides helper functionality
// for reading a REX prefix byte.
type REX byte

// Intel x86 manuals, Volume 2A,
// Section 2.2.1.2, Table 2-4.
//
// 	| 7  6  5  4   3  2  1  0 |
// 	+-------------------------|
// 	| 0  1  0  0   W  R  X  B |

// On reports whether r is a REX prefix
// byte at all.
func (r REX) On() bool { return (r & 0xf0) == 0x40 }
func (r REX) W() bool  { return ((r >> 3) & 1) == 1 }
func (r REX) R() bool  { return ((r >> 2) & 1) == 1 }
func (r REX) X() bool  { return ((r >> 1) & 1) == 1 }
func (r REX) B() bool  { return ((r >> 0) & 1) == 1 }

func (r REX) String() string {
	out := make([]byte, 8)
	at := func(i int, zero, one byte) byte {
		if ((r >> (7 - i)) & 1) == 1 {
			return one
		}

		return zero
	}

	out[0] = at(0, '0', '1')
	out[1] = at(1, '0', '1')
	out[2] = at(2, '0', '1')
	out[3] = at(3, '0', '1')
	out[4] = at(4, '0', 'W')
	out[5] = at(5, '0', 'R')
	out[6] = at(6, '0', 'X')
	out[7] = at(7, '0', 'B')

	return string(out)
}

// ModRM provides helper functionality
// for reading a ModR/M byte.
type ModRM byte

// ModRMrmSIB is the r/m value that is
// followed by a SIB byte when addressing
// memory in 32-bit or 64-bit mode.
//
// Section 2.1.5, table 2.2, Effective address column.
const ModRMrmSIB = 0b100

func (m ModRM) Mod() byte { return byte(m&0b11000000) >> 6 }
func (m ModRM) Reg() byte { return byte(m&0b00111000) >> 3 }
func (m ModRM) RM() byte  { return byte(m&0b00000111) >> 0 }

func (m ModRM) String() string {
	return fmt.Sprintf("{Mod: %02b, Reg: %03b, R/M: %03b}", m.Mod(), m.Reg(), m.RM())
}

// SIB provides helper functionality
// for reading a SIB byte.
type SIB byte

func (s SIB) Scale() byte { return byte(s&0b11000000) >> 6 }
func (s SIB) Index() byte { return byte(s&0b00111000) >> 3 }
func (s SIB) Base() byte  { return byte(s&0b00000111) >> 0 }

func (s SIB) String() string {
	return fmt.Sprintf("{Scale: %02b, Index: %03b, Base: %03b}", s.Scale(), s.Index(), s.Base())
}

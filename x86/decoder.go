// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

import (
	"fmt"

	"golang.org/x/crypto/cryptobyte"
)

// stateFlags records facts about the
// instruction being decoded. They are
// reset at the start of each instruction.
type stateFlags uint32

const (
	flagHasRex stateFlags = 1 << iota
	flagB                 // EVEX.b: broadcast, rounding, or SAE
	flagZ                 // EVEX.z: zeroing masking
	flagInvalid
	flagW
	flagNoImm
	flagAddr64
	flagBranchImm8
	flagXbegin
	flagLock
	flagAllowLock
	flagNoMoreBytes
	flagMvexEH
)

// opSize is an operand or address size.
// The values are used to index per-size
// tables of codes and registers.
type opSize uint8

const (
	size16 opSize = iota
	size32
	size64
)

type mandatoryPrefix uint8

const (
	prefixNone mandatoryPrefix = iota
	prefix66
	prefixF3
	prefixF2
)

type vectorLength uint8

const (
	vectorLength128 vectorLength = iota
	vectorLength256
	vectorLength512
	vectorLengthUnknown
)

// decoderState holds the per-instruction
// state built up by the prefix scanner and
// the handlers.
type decoderState struct {
	modrm uint32
	mod   uint32
	reg   uint32
	rm    uint32

	// Register number extensions from REX,
	// VEX, XOP, EVEX, and MVEX, already
	// shifted into place.
	extraRegisterBase          uint32 // R
	extraIndexRegisterBase     uint32 // X
	extraBaseRegisterBase      uint32 // B
	extraIndexRegisterBaseVSIB uint32 // V'
	extraRegisterBaseEVEX      uint32 // R'
	extraBaseRegisterBaseEVEX  uint32 // X used as a register extension

	vvvv uint32
	aaa  uint32
	sss  uint32

	// Where each part of the encoding
	// starts or ends, for Layout. modrmEnd
	// is zero if there is no ModR/M byte.
	prefixEnd   uint32
	opcodeStart uint32
	modrmEnd    uint32
	rex         uint32

	instructionLength uint32
	flags             stateFlags
	encoding          EncodingKind
	vectorLength      vectorLength
	mandatoryPrefix   mandatoryPrefix
	operandSize       opSize
	addressSize       opSize
	defaultDsSegment  Register
}

// Decoder decodes x86 instructions from a
// byte slice.
//
// A Decoder is not safe for concurrent
// use. Separate decoders may be used in
// parallel, as the opcode tables they
// share are never modified.
type Decoder struct {
	data    []byte
	rest    cryptobyte.String
	ip      uint64
	bitness int
	options DecoderOptions
	is64    bool

	// invalidCheck is false when the caller
	// asked for OptionNoInvalidCheck.
	invalidCheck bool

	defaultCodeSize            CodeSize
	defaultOperandSize         opSize
	defaultAddressSize         opSize
	defaultInvertedOperandSize opSize
	defaultInvertedAddressSize opSize

	// map0 is the one-byte opcode table for
	// the decoder's mode.
	map0 *[256]*handler

	state      decoderState
	displIndex uint32
	lastError  DecoderError
}

// NewDecoder returns a decoder for code of
// the given bitness (16, 32, or 64) stored
// in data. The first instruction is at IP
// zero; use SetIP to change that.
//
// The decoder retains data but never
// modifies it.
func NewDecoder(bitness int, data []byte, options DecoderOptions) (*Decoder, error) {
	d := &Decoder{
		data:         data,
		rest:         cryptobyte.String(data),
		bitness:      bitness,
		options:      options,
		invalidCheck: options&OptionNoInvalidCheck == 0,
	}

	switch bitness {
	case 16:
		d.defaultCodeSize = CodeSize16
		d.defaultOperandSize = size16
		d.defaultAddressSize = size16
		d.defaultInvertedOperandSize = size32
		d.defaultInvertedAddressSize = size32
		d.map0 = &legacy32Map0
	case 32:
		d.defaultCodeSize = CodeSize32
		d.defaultOperandSize = size32
		d.defaultAddressSize = size32
		d.defaultInvertedOperandSize = size16
		d.defaultInvertedAddressSize = size16
		d.map0 = &legacy32Map0
	case 64:
		d.is64 = true
		d.defaultCodeSize = CodeSize64
		d.defaultOperandSize = size32
		d.defaultAddressSize = size64
		d.defaultInvertedOperandSize = size16
		d.defaultInvertedAddressSize = size32
		d.map0 = &legacy64Map0
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidBitness, bitness)
	}

	return d, nil
}

// Bitness returns the decoder's mode: 16,
// 32, or 64.
func (d *Decoder) Bitness() int { return d.bitness }

// Options returns the decoder's options.
func (d *Decoder) Options() DecoderOptions { return d.options }

// IP returns the address of the next
// instruction to be decoded.
func (d *Decoder) IP() uint64 { return d.ip }

// SetIP sets the address of the next
// instruction to be decoded.
func (d *Decoder) SetIP(ip uint64) { d.ip = ip }

// Position returns the offset into the
// input of the next instruction.
func (d *Decoder) Position() int { return len(d.data) - len(d.rest) }

// SetPosition moves the decoder to the
// given offset into its input. The IP is
// not changed.
func (d *Decoder) SetPosition(pos int) error {
	if pos < 0 || pos > len(d.data) {
		return fmt.Errorf("%w: %d is outside [0, %d]", ErrInvalidPosition, pos, len(d.data))
	}

	d.rest = cryptobyte.String(d.data[pos:])

	return nil
}

// CanDecode returns whether any input
// remains.
func (d *Decoder) CanDecode() bool { return !d.rest.Empty() }

// LastError returns the reason the last
// decoded instruction is invalid, or
// ErrorNone.
func (d *Decoder) LastError() DecoderError { return d.lastError }

// Decode decodes the next instruction.
//
// If the bytes do not encode a valid
// instruction, the result has the code
// INVALID and LastError reports why. The
// length of an invalid instruction is
// still the number of bytes consumed, so
// the caller can skip past it.
func (d *Decoder) Decode() Instruction {
	var instr Instruction
	d.DecodeOut(&instr)
	return instr
}

// Each decodes instructions until the
// input is exhausted or fn returns false.
// The instruction passed to fn is reused
// between calls.
func (d *Decoder) Each(fn func(*Instruction) bool) {
	var instr Instruction
	for d.CanDecode() {
		d.DecodeOut(&instr)
		if !fn(&instr) {
			return
		}
	}
}

// DecodeOut decodes the next instruction
// into instr, overwriting its contents.
func (d *Decoder) DecodeOut(instr *Instruction) {
	*instr = Instruction{}
	d.state = decoderState{
		defaultDsSegment: DS,
		operandSize:      d.defaultOperandSize,
		addressSize:      d.defaultAddressSize,
	}
	d.displIndex = 0

	var rex uint32
	var b uint32
prefixes:
	for {
		d.state.prefixEnd = d.state.instructionLength
		b = d.readByte()
		switch b {
		case 0x26, 0x2e, 0x36, 0x3e:
			// In 64-bit mode, ES, CS, SS, and
			// DS do not override FS or GS.
			if !d.is64 || (d.state.defaultDsSegment != FS && d.state.defaultDsSegment != GS) {
				seg := ES + Register((b>>3)&3)
				instr.segmentPrefix = seg
				d.state.defaultDsSegment = seg
			}
			rex = 0
		case 0x64, 0x65:
			seg := FS + Register(b&1)
			instr.segmentPrefix = seg
			d.state.defaultDsSegment = seg
			rex = 0
		case 0x66:
			d.state.operandSize = d.defaultInvertedOperandSize
			if d.state.mandatoryPrefix == prefixNone {
				d.state.mandatoryPrefix = prefix66
			}
			rex = 0
		case 0x67:
			d.state.addressSize = d.defaultInvertedAddressSize
			rex = 0
		case 0xf0:
			instr.flags |= instrLock
			d.state.flags |= flagLock
			rex = 0
		case 0xf2:
			instr.flags |= instrRepne
			d.state.mandatoryPrefix = prefixF2
			rex = 0
		case 0xf3:
			instr.flags |= instrRep
			d.state.mandatoryPrefix = prefixF3
			rex = 0
		default:
			if d.is64 && b&0xf0 == 0x40 {
				rex = b
				continue
			}

			break prefixes
		}
	}

	d.state.opcodeStart = d.state.prefixEnd
	if rex != 0 {
		d.state.rex = rex
		d.state.flags |= flagHasRex
		if rex&8 != 0 {
			d.state.operandSize = size64
			d.state.flags |= flagW
		}

		d.state.extraRegisterBase = (rex & 4) << 1
		d.state.extraIndexRegisterBase = (rex & 2) << 2
		d.state.extraBaseRegisterBase = (rex & 1) << 3
	}

	if d.state.flags&flagNoMoreBytes == 0 {
		d.decodeHandler(d.map0[b], instr)
	}

	flags := d.state.flags
	d.lastError = ErrorNone
	if flags&(flagInvalid|flagLock) != 0 {
		if flags&flagInvalid != 0 || (d.invalidCheck && flags&(flagLock|flagAllowLock) == flagLock) {
			*instr = Instruction{}
			d.lastError = ErrorInvalidInstruction
			if flags&flagNoMoreBytes != 0 {
				d.lastError = ErrorNoMoreBytes
			}
		}
	}

	if d.lastError == ErrorNone {
		instr.encoding = d.state.encoding
	}

	instr.codeSize = d.defaultCodeSize
	instr.length = uint8(d.state.instructionLength)
	instr.ip = d.ip
	d.ip += uint64(d.state.instructionLength)
	instr.nextIP = d.ip
}

// readByte returns the next byte of the
// instruction. If the input is exhausted
// or the instruction would exceed 15
// bytes, the instruction is marked invalid
// and zero is returned.
func (d *Decoder) readByte() uint32 {
	if d.state.instructionLength < MaxInstructionLength {
		var b uint8
		if d.rest.ReadUint8(&b) {
			d.state.instructionLength++
			return uint32(b)
		}

		d.state.flags |= flagNoMoreBytes
	}

	d.state.flags |= flagInvalid
	return 0
}

func (d *Decoder) readUint16() uint32 {
	return d.readByte() | d.readByte()<<8
}

func (d *Decoder) readUint32() uint32 {
	return d.readByte() | d.readByte()<<8 | d.readByte()<<16 | d.readByte()<<24
}

func (d *Decoder) readUint64() uint64 {
	lo := uint64(d.readUint32())
	hi := uint64(d.readUint32())
	return lo | hi<<32
}

func (d *Decoder) readModRM() {
	m := d.readByte()
	d.state.modrmEnd = d.state.instructionLength
	d.state.modrm = m
	d.state.mod = m >> 6
	d.state.reg = (m >> 3) & 7
	d.state.rm = m & 7
}

// decodeTable reads the next opcode byte
// and dispatches it through table.
func (d *Decoder) decodeTable(table *[256]*handler, instr *Instruction) {
	d.decodeHandler(table[d.readByte()], instr)
}

func (d *Decoder) decodeHandler(h *handler, instr *Instruction) {
	if h.hasModRM {
		d.readModRM()
	}

	h.decode(d, instr)
}

// setInvalid marks the instruction as
// invalid, regardless of options.
func (d *Decoder) setInvalid() {
	d.state.flags |= flagInvalid
}

// invalidIf marks the instruction as
// invalid if cond holds, unless invalid
// checks are disabled.
func (d *Decoder) invalidIf(cond bool) {
	if cond && d.invalidCheck {
		d.state.flags |= flagInvalid
	}
}

func (d *Decoder) ip32() uint32 {
	return uint32(d.ip) + d.state.instructionLength
}

func (d *Decoder) ip64() uint64 {
	return d.ip + uint64(d.state.instructionLength)
}

func (d *Decoder) hasFlag(f stateFlags) bool {
	return d.state.flags&f != 0
}

// is64W returns whether a W bit selects a
// 64-bit operand. W is ignored outside
// 64-bit mode.
func (d *Decoder) is64W() bool {
	return d.is64 && d.state.flags&flagW != 0
}

func (d *Decoder) clearMandatoryPrefix(instr *Instruction) {
	switch d.state.mandatoryPrefix {
	case prefix66:
		// REX.W still selects 64 bits.
		if d.state.operandSize != size64 {
			d.state.operandSize = d.defaultOperandSize
		}
	case prefixF3:
		instr.flags &^= instrRep
	case prefixF2:
		instr.flags &^= instrRepne
	}
}

func (d *Decoder) clearMandatoryPrefixF3(instr *Instruction) {
	instr.flags &^= instrRep
}

func (d *Decoder) clearMandatoryPrefixF2(instr *Instruction) {
	instr.flags &^= instrRepne
}

// setXacquireRelease converts an F2 or F3
// prefix into an XACQUIRE or XRELEASE
// hint, where the handler allows it.
func (d *Decoder) setXacquireRelease(instr *Instruction, flags handlerFlags) {
	if flags&hfXacquireReleaseNoLock == 0 && instr.flags&instrLock == 0 {
		return
	}

	switch d.state.mandatoryPrefix {
	case prefixF2:
		if flags&hfXacquire != 0 {
			d.clearMandatoryPrefixF2(instr)
			instr.flags |= instrXacquire
		}
	case prefixF3:
		if flags&hfXrelease != 0 {
			d.clearMandatoryPrefixF3(instr)
			instr.flags |= instrXrelease
		}
	}
}

// allowLock permits a LOCK prefix on a
// lockable instruction with a memory
// destination.
func (d *Decoder) allowLock(flags handlerFlags) {
	if flags&hfLock != 0 && d.state.mod != 3 {
		d.state.flags |= flagAllowLock
	}
}

func (d *Decoder) readOpSw() Register {
	if d.state.reg >= 6 {
		d.setInvalid()
		return NoRegister
	}

	return ES + Register(d.state.reg)
}

// envelopePrefixCheck marks the instruction
// invalid if a REX or mandatory prefix came
// before a VEX, XOP, EVEX, or MVEX prefix.
func (d *Decoder) envelopePrefixCheck() {
	d.invalidIf(d.state.flags&flagHasRex != 0 || d.state.mandatoryPrefix != prefixNone)
}

// vex2 decodes an instruction with a two
// byte VEX prefix (C5). The byte after C5
// has already been read as a ModR/M byte.
func (d *Decoder) vex2(instr *Instruction) {
	d.envelopePrefixCheck()
	d.state.encoding = EncodingVEX

	b := d.state.modrm
	d.envelopeEnd()
	if d.is64 && b&0x80 == 0 {
		d.state.extraRegisterBase = 8
	}

	// Bit 6 can only be set outside 64-bit
	// mode, where it is ignored.
	d.state.vvvv = (^b >> 3) & 0x0f
	d.state.vectorLength = vectorLength((b >> 2) & 1)
	d.state.mandatoryPrefix = mandatoryPrefix(b & 3)

	d.decodeTable(&vexMap1, instr)
}

// vex3 decodes an instruction with a three
// byte VEX prefix (C4).
func (d *Decoder) vex3(instr *Instruction) {
	d.envelopePrefixCheck()
	d.state.encoding = EncodingVEX

	b1 := d.state.modrm
	b2 := d.readByte()
	d.envelopeEnd()
	d.envelopeFields(b1, b2)

	switch b1 & 0x1f {
	case 1:
		d.decodeTable(&vexMap1, instr)
	case 2:
		d.decodeTable(&vexMap2, instr)
	case 3:
		d.decodeTable(&vexMap3, instr)
	default:
		d.setInvalid()
	}
}

// xop decodes an instruction with an XOP
// prefix (8F). The caller has checked that
// the map select is at least 8, so that
// the byte is not a POP.
func (d *Decoder) xop(instr *Instruction) {
	d.envelopePrefixCheck()
	d.state.encoding = EncodingXOP

	b1 := d.state.modrm
	b2 := d.readByte()
	d.envelopeEnd()
	d.envelopeFields(b1, b2)

	switch b1 & 0x1f {
	case 8:
		d.decodeTable(&xopMap8, instr)
	case 9:
		d.decodeTable(&xopMap9, instr)
	case 10:
		d.decodeTable(&xopMap10, instr)
	default:
		d.setInvalid()
	}
}

// envelopeEnd records that the envelope
// prefix has been read, so the payload
// bytes are not taken for a ModR/M byte.
func (d *Decoder) envelopeEnd() {
	d.state.opcodeStart = d.state.instructionLength
	d.state.modrmEnd = 0
}

// envelopeFields decodes the fields shared
// by the three byte VEX and XOP prefixes.
func (d *Decoder) envelopeFields(b1, b2 uint32) {
	if b2&0x80 != 0 {
		d.state.flags |= flagW
	}

	d.state.vectorLength = vectorLength((b2 >> 2) & 1)
	d.state.mandatoryPrefix = mandatoryPrefix(b2 & 3)

	if d.is64 {
		if b2&0x80 != 0 {
			d.state.operandSize = size64
		}

		d.state.vvvv = (^b2 >> 3) & 0x0f
		b1x := ^b1
		d.state.extraRegisterBase = (b1x >> 4) & 8
		d.state.extraIndexRegisterBase = (b1x >> 3) & 8
		d.state.extraBaseRegisterBase = (b1x >> 2) & 8
	} else {
		d.state.vvvv = (^b2 >> 3) & 0x07
	}
}

// evexMvex decodes an instruction with an
// EVEX or MVEX prefix (62). The first
// payload byte P0 has already been read as
// a ModR/M byte.
func (d *Decoder) evexMvex(instr *Instruction) {
	d.envelopePrefixCheck()

	p0 := d.state.modrm
	p1 := d.readByte()
	p2 := d.readByte()
	d.envelopeEnd()

	if p1&4 == 0 {
		d.mvex(instr, p0, p1, p2)
		return
	}

	if p0&0x0c != 0 {
		d.setInvalid()
		return
	}

	d.state.encoding = EncodingEVEX
	d.state.mandatoryPrefix = mandatoryPrefix(p1 & 3)
	if p1&0x80 != 0 {
		d.state.flags |= flagW
	}

	d.state.aaa = p2 & 7
	d.setOpMask(instr)
	if p2&0x80 != 0 {
		d.state.flags |= flagZ
		instr.flags |= instrZeroing
		d.invalidIf(d.state.aaa == 0)
	}
	if p2&0x10 != 0 {
		d.state.flags |= flagB
	}

	d.state.vectorLength = vectorLength((p2 >> 5) & 3)

	if d.is64 {
		d.envelopeRegisterBases(p0, p1, p2)
	} else {
		d.state.vvvv = (^p1 >> 3) & 0x07
	}

	switch p0 & 3 {
	case 1:
		d.decodeTable(&evexMap1, instr)
	case 2:
		d.decodeTable(&evexMap2, instr)
	case 3:
		d.decodeTable(&evexMap3, instr)
	default:
		d.setInvalid()
	}
}

// setOpMask records a non-zero aaa as the
// instruction's opmask register. Handlers
// that forbid masking check aaa themselves.
func (d *Decoder) setOpMask(instr *Instruction) {
	if d.state.aaa != 0 {
		instr.opMask = K0 + Register(d.state.aaa)
	}
}

// envelopeRegisterBases decodes the
// register extension bits shared by the
// EVEX and MVEX prefixes in 64-bit mode.
func (d *Decoder) envelopeRegisterBases(p0, p1, p2 uint32) {
	d.state.vvvv = (^p1 >> 3) & 0x0f
	vp := (^p2 & 8) << 1
	d.state.vvvv += vp
	d.state.extraIndexRegisterBaseVSIB = vp
	if p1&0x80 != 0 {
		d.state.operandSize = size64
	}

	p0x := ^p0
	d.state.extraRegisterBase = (p0x >> 4) & 8
	d.state.extraIndexRegisterBase = (p0x & 0x40) >> 3
	d.state.extraBaseRegisterBaseEVEX = (p0x & 0x40) >> 2
	d.state.extraBaseRegisterBase = (p0x >> 2) & 8
	d.state.extraRegisterBaseEVEX = p0x & 0x10
}

// mvex decodes an instruction with a
// Knights Corner MVEX prefix. MVEX only
// exists in 64-bit mode and only when the
// caller asked for it.
func (d *Decoder) mvex(instr *Instruction, p0, p1, p2 uint32) {
	if d.options&OptionKNC == 0 || !d.is64 {
		d.setInvalid()
		return
	}

	d.state.encoding = EncodingMVEX
	d.state.mandatoryPrefix = mandatoryPrefix(p1 & 3)
	if p1&0x80 != 0 {
		d.state.flags |= flagW
	}

	d.state.aaa = p2 & 7
	d.setOpMask(instr)
	d.state.sss = (p2 >> 4) & 7
	if p2&0x80 != 0 {
		d.state.flags |= flagMvexEH
	}

	d.envelopeRegisterBases(p0, p1, p2)

	switch p0 & 0x0f {
	case 1:
		d.decodeTable(&mvexMap1, instr)
	case 2:
		d.decodeTable(&mvexMap2, instr)
	case 3:
		d.decodeTable(&mvexMap3, instr)
	default:
		d.setInvalid()
	}
}

// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

import (
	"fmt"
)

// OpKind describes how an instruction
// operand is encoded.
//
// The zero value is OpKindNone, which
// marks an unused operand slot.
type OpKind uint8

const (
	OpKindNone OpKind = iota
	OpKindRegister
	OpKindNearBranch16
	OpKindNearBranch32
	OpKindNearBranch64
	OpKindFarBranch16
	OpKindFarBranch32
	OpKindImmediate8
	OpKindImmediate8_2nd
	OpKindImmediate16
	OpKindImmediate32
	OpKindImmediate64
	OpKindImmediate8to16
	OpKindImmediate8to32
	OpKindImmediate8to64
	OpKindImmediate32to64
	OpKindMemorySegSI
	OpKindMemorySegESI
	OpKindMemorySegRSI
	OpKindMemorySegDI
	OpKindMemorySegEDI
	OpKindMemorySegRDI
	OpKindMemoryESDI
	OpKindMemoryESEDI
	OpKindMemoryESRDI
	OpKindMemory64
	OpKindMemory
)

var opKindNames = [...]string{
	OpKindNone:            "None",
	OpKindRegister:        "Register",
	OpKindNearBranch16:    "NearBranch16",
	OpKindNearBranch32:    "NearBranch32",
	OpKindNearBranch64:    "NearBranch64",
	OpKindFarBranch16:     "FarBranch16",
	OpKindFarBranch32:     "FarBranch32",
	OpKindImmediate8:      "Immediate8",
	OpKindImmediate8_2nd:  "Immediate8_2nd",
	OpKindImmediate16:     "Immediate16",
	OpKindImmediate32:     "Immediate32",
	OpKindImmediate64:     "Immediate64",
	OpKindImmediate8to16:  "Immediate8to16",
	OpKindImmediate8to32:  "Immediate8to32",
	OpKindImmediate8to64:  "Immediate8to64",
	OpKindImmediate32to64: "Immediate32to64",
	OpKindMemorySegSI:     "MemorySegSI",
	OpKindMemorySegESI:    "MemorySegESI",
	OpKindMemorySegRSI:    "MemorySegRSI",
	OpKindMemorySegDI:     "MemorySegDI",
	OpKindMemorySegEDI:    "MemorySegEDI",
	OpKindMemorySegRDI:    "MemorySegRDI",
	OpKindMemoryESDI:      "MemoryESDI",
	OpKindMemoryESEDI:     "MemoryESEDI",
	OpKindMemoryESRDI:     "MemoryESRDI",
	OpKindMemory64:        "Memory64",
	OpKindMemory:          "Memory",
}

func (k OpKind) String() string {
	if int(k) < len(opKindNames) {
		return opKindNames[k]
	}

	return fmt.Sprintf("OpKind(%d)", k)
}

// IsImmediate returns whether k is one
// of the immediate operand kinds.
func (k OpKind) IsImmediate() bool {
	return OpKindImmediate8 <= k && k <= OpKindImmediate32to64
}

// IsBranch returns whether k is a near
// or far branch target.
func (k OpKind) IsBranch() bool {
	return OpKindNearBranch16 <= k && k <= OpKindFarBranch32
}

// IsMemory returns whether k refers to
// memory, either explicitly through a
// ModR/M encoding or implicitly through
// a string instruction's registers.
func (k OpKind) IsMemory() bool {
	return OpKindMemorySegSI <= k && k <= OpKindMemory
}

// IsStringMemory returns whether k is
// one of the implicit memory operands
// used by string instructions.
func (k OpKind) IsStringMemory() bool {
	return OpKindMemorySegSI <= k && k <= OpKindMemoryESRDI
}

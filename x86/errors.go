// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidBitness is returned when a
	// decoder is created for a mode other
	// than 16, 32, or 64 bits.
	ErrInvalidBitness = errors.New("invalid bitness")

	// ErrInvalidPosition is returned when
	// a decoder is moved outside its input.
	ErrInvalidPosition = errors.New("invalid position")

	// ErrUnknownOption is returned when an
	// option name is not recognised.
	ErrUnknownOption = errors.New("unknown decoder option")
)

// DecoderError describes why the last
// decoded instruction is invalid.
type DecoderError uint8

const (
	// ErrorNone means the instruction was
	// decoded successfully.
	ErrorNone DecoderError = iota

	// ErrorInvalidInstruction means the
	// bytes do not encode a valid
	// instruction.
	ErrorInvalidInstruction

	// ErrorNoMoreBytes means the input
	// ended before the instruction was
	// complete.
	ErrorNoMoreBytes
)

func (e DecoderError) String() string {
	switch e {
	case ErrorNone:
		return "none"
	case ErrorInvalidInstruction:
		return "invalid instruction"
	case ErrorNoMoreBytes:
		return "no more bytes"
	default:
		return fmt.Sprintf("DecoderError(%d)", e)
	}
}

// Error returns the same text as String,
// so that a DecoderError can be returned
// as an error by callers that want one.
func (e DecoderError) Error() string {
	return e.String()
}

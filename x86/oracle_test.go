// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

import (
	"testing"

	"golang.org/x/arch/x86/x86asm"
)

// TestLengthAgainstX86asm checks instruction
// lengths against the x86asm package, for
// instructions it understands.
func TestLengthAgainstX86asm(t *testing.T) {
	tests := []struct {
		Bitness int
		Code    string
	}{
		{64, "90"},
		{64, "c3"},
		{64, "48 01 18"},
		{64, "48 8b 05 10 00 00 00"},
		{64, "8b 44 8b 08"},
		{64, "0f 86 5a a5 12 34"},
		{64, "48 b8 88 77 66 55 44 33 22 11"},
		{64, "e8 00 00 00 00"},
		{64, "d9 e8"},
		{64, "c8 10 00 01"},
		{64, "83 44 8b 08 7f"},
		{64, "f0 48 0f c7 08"},
		{64, "0f a2"},
		{64, "66 0f 6f c1"},
		{64, "f3 0f 10 44 24 08"},
		{64, "48 c7 c0 01 00 00 00"},
		{64, "66 c7 00 34 12"},
		{64, "67 8b 00"},
		{64, "0f 1f 44 00 00"},
		{64, "66 0f 3a 0f c1 08"},
		{64, "48 8d 04 c5 00 00 00 00"},
		{32, "8b 05 78 56 34 12"},
		{32, "66 b8 34 12"},
		{32, "06"},
		{32, "ea 00 00 00 00 08 00"},
		{16, "8b 86 34 12"},
		{16, "b8 34 12"},
		{16, "66 b8 78 56 34 12"},
	}

	for _, test := range tests {
		data := parseHex(t, test.Code)
		want, err := x86asm.Decode(data, test.Bitness)
		if err != nil {
			t.Errorf("x86asm.Decode(%d, %s): %v", test.Bitness, test.Code, err)
			continue
		}

		d, instr := decodeOne(t, test.Bitness, 0, OptionNone, test.Code)
		if err := d.LastError(); err != ErrorNone {
			t.Errorf("Decode(%d, %s): got error %v, x86asm got %v", test.Bitness, test.Code, err, want)
			continue
		}

		if instr.Length() != want.Len {
			t.Errorf("Decode(%d, %s): got %s with length %d, x86asm got %v with length %d", test.Bitness, test.Code, &instr, instr.Length(), want, want.Len)
		}
	}
}

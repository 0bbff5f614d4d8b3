// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestConstantOffsets(t *testing.T) {
	tests := []struct {
		Name    string
		Bitness int
		Code    string
		Want    ConstantOffsets
	}{
		{
			Name:    "no constants",
			Bitness: 64,
			Code:    "90",
			Want:    ConstantOffsets{},
		},
		{
			Name:    "RIP-relative",
			Bitness: 64,
			Code:    "48 8b 05 10 00 00 00",
			Want: ConstantOffsets{
				DisplacementOffset: 3,
				DisplacementSize:   4,
			},
		},
		{
			Name:    "64-bit moffs",
			Bitness: 64,
			Code:    "48 a1 88 77 66 55 44 33 22 11",
			Want: ConstantOffsets{
				DisplacementOffset: 2,
				DisplacementSize:   8,
			},
		},
		{
			Name:    "64-bit immediate",
			Bitness: 64,
			Code:    "48 b8 88 77 66 55 44 33 22 11",
			Want: ConstantOffsets{
				ImmediateOffset: 2,
				ImmediateSize:   8,
			},
		},
		{
			Name:    "displacement and immediate",
			Bitness: 64,
			Code:    "83 44 8b 08 7f",
			Want: ConstantOffsets{
				DisplacementOffset: 3,
				DisplacementSize:   1,
				ImmediateOffset:    4,
				ImmediateSize:      1,
			},
		},
		{
			Name:    "near branch",
			Bitness: 64,
			Code:    "66 e8 10 00 00 00",
			Want: ConstantOffsets{
				ImmediateOffset: 2,
				ImmediateSize:   4,
			},
		},
		{
			Name:    "short branch",
			Bitness: 64,
			Code:    "eb fe",
			Want: ConstantOffsets{
				ImmediateOffset: 1,
				ImmediateSize:   1,
			},
		},
		{
			Name:    "two immediates",
			Bitness: 64,
			Code:    "c8 10 00 01",
			Want: ConstantOffsets{
				ImmediateOffset:  1,
				ImmediateSize:    2,
				ImmediateOffset2: 3,
				ImmediateSize2:   1,
			},
		},
		{
			Name:    "compressed displacement",
			Bitness: 64,
			Code:    "62 f1 7c 58 58 40 01",
			Want: ConstantOffsets{
				DisplacementOffset: 6,
				DisplacementSize:   1,
			},
		},
		{
			Name:    "16-bit displacement",
			Bitness: 16,
			Code:    "8b 86 34 12",
			Want: ConstantOffsets{
				DisplacementOffset: 2,
				DisplacementSize:   2,
			},
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			d, instr := decodeOne(t, test.Bitness, 0, OptionNone, test.Code)
			if err := d.LastError(); err != ErrorNone {
				t.Fatalf("Decode(%s): got error %v", test.Code, err)
			}

			got := d.ConstantOffsets(&instr)
			if diff := cmp.Diff(test.Want, got); diff != "" {
				t.Fatalf("ConstantOffsets(%s): (-want, +got)\n%s", test.Code, diff)
			}

			if got.HasDisplacement() != (test.Want.DisplacementSize != 0) {
				t.Fatalf("HasDisplacement(%s): got %v", test.Code, got.HasDisplacement())
			}

			if got.HasImmediate2() != (test.Want.ImmediateSize2 != 0) {
				t.Fatalf("HasImmediate2(%s): got %v", test.Code, got.HasImmediate2())
			}
		})
	}
}

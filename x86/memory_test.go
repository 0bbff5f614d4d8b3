// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestInstructionMemory(t *testing.T) {
	tests := []struct {
		Name    string
		Bitness int
		Code    string
		Want    Memory
		Segment Register
	}{
		{
			Name:    "base",
			Bitness: 64,
			Code:    "48 01 18",
			Want:    Memory{Base: RAX},
			Segment: DS,
		},
		{
			Name:    "SIB",
			Bitness: 64,
			Code:    "8b 44 8b 08",
			Want:    Memory{Base: RBX, Index: RCX, Scale: 4, Displacement: 8, DisplSize: 1},
			Segment: DS,
		},
		{
			Name:    "negative displacement",
			Bitness: 64,
			Code:    "8b 45 f8",
			Want:    Memory{Base: RBP, Displacement: -8, DisplSize: 1},
			Segment: SS,
		},
		{
			Name:    "RIP-relative",
			Bitness: 64,
			Code:    "8b 05 f0 ff ff ff",
			Want:    Memory{Base: RIP, Displacement: -16, DisplSize: 8},
			Segment: DS,
		},
		{
			Name:    "absolute in 32-bit mode",
			Bitness: 32,
			Code:    "8b 05 78 56 34 12",
			Want:    Memory{Displacement: 0x12345678, DisplSize: 4},
			Segment: DS,
		},
		{
			Name:    "segment override",
			Bitness: 32,
			Code:    "26 8b 04 24",
			Want:    Memory{Segment: ES, Base: ESP},
			Segment: ES,
		},
		{
			Name:    "16-bit",
			Bitness: 16,
			Code:    "8b 42 fe",
			Want:    Memory{Base: BP, Index: SI, Scale: 1, Displacement: -2, DisplSize: 1},
			Segment: SS,
		},
		{
			Name:    "compressed displacement",
			Bitness: 64,
			Code:    "62 f1 7c 48 28 40 02",
			Want:    Memory{Base: RAX, Displacement: 128, DisplSize: 1},
			Segment: DS,
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			d, instr := decodeOne(t, test.Bitness, 0, OptionNone, test.Code)
			if err := d.LastError(); err != ErrorNone {
				t.Fatalf("Decode(%s): got error %v", test.Code, err)
			}

			got := instr.Memory()
			if diff := cmp.Diff(test.Want, got); diff != "" {
				t.Fatalf("Memory(%s): (-want, +got)\n%s", test.Code, diff)
			}

			if seg := instr.MemorySegment(); seg != test.Segment {
				t.Fatalf("MemorySegment(%s): got %v, want %v", test.Code, seg, test.Segment)
			}
		})
	}
}

func TestMemoryString(t *testing.T) {
	tests := []struct {
		Name     string
		Mem      Memory
		String   string
		GoString string
	}{
		{
			Name:     "absolute zero",
			Mem:      Memory{},
			String:   "(0)",
			GoString: "{Displacement: 0x0}",
		},
		{
			Name:     "register",
			Mem:      Memory{Base: RAX},
			String:   "(rax)",
			GoString: "{Base: rax}",
		},
		{
			Name:     "segment and base",
			Mem:      Memory{Segment: FS, Base: RAX},
			String:   "(fs rax)",
			GoString: "{Segment: fs, Base: rax}",
		},
		{
			Name:     "full",
			Mem:      Memory{Segment: GS, Base: RBX, Index: RCX, Scale: 8, Displacement: -4},
			String:   "(+ gs rbx (* rcx 8) -4)",
			GoString: "{Segment: gs, Base: rbx, Index: rcx, Scale: 8, Displacement: -0x4}",
		},
		{
			Name:     "broadcast",
			Mem:      Memory{Base: RDI, Displacement: 64, Broadcast: true},
			String:   "(+ rdi 64){bcst}",
			GoString: "{Base: rdi, Displacement: 0x40, Broadcast: true}",
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			if got := test.Mem.String(); got != test.String {
				t.Errorf("String(): got %q, want %q", got, test.String)
			}

			if got := test.Mem.GoString(); got != test.GoString {
				t.Errorf("GoString(): got %q, want %q", got, test.GoString)
			}
		})
	}
}

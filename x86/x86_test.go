// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestVEX(t *testing.T) {
	v := VEX2(0xf8)
	if got, want := v, (VEX{0xe1, 0x78}); got != want {
		t.Fatalf("VEX2(0xf8): got %#x, want %#x", got, want)
	}

	if got, want := v.String(), "{R: 1, X: 1, B: 1, m-mmmm: 00001, W: false, vvvv: 1111, L: 0, pp: 00}"; got != want {
		t.Fatalf("String():\n got %s\nwant %s", got, want)
	}

	if got, want := VEX2(0x65), (VEX{0x61, 0x65}); got != want {
		t.Fatalf("VEX2(0x65): got %#x, want %#x", got, want)
	}

	v3 := VEX{0xe2, 0x7d}
	if v3.M_MMMM() != 2 || !v3.L() || v3.PP() != 1 || v3.VVVV() != 0b1111 || v3.W() {
		t.Fatalf("VEX fields: got %s", v3)
	}
}

func TestEVEX(t *testing.T) {
	p := EVEX{0xf1, 0x7c, 0x48}
	want := "{R: 1, X: 1, B: 1, R': 1, mm: 01 // W: 0, vvvv: 1111, pp: 00 // z: 0, L': 1, L: 0, b: 0, V': 1, aaa: 000}"
	if got := p.String(); got != want {
		t.Fatalf("String():\n got %s\nwant %s", got, want)
	}

	if !p.On() {
		t.Fatalf("%s.On(): got false", p)
	}

	q := EVEX{0xf1, 0x7c, 0xdb}
	if !q.Z() || !q.Lp() || !q.Br() || q.AAA() != 3 {
		t.Fatalf("EVEX fields: got %s", q)
	}

	m := EVEX{0xf1, 0x78, 0x98}
	if m.On() || !m.EH() || m.SSS() != 1 || m.AAA() != 0 {
		t.Fatalf("MVEX fields: EH %v, sss %03b, aaa %03b", m.EH(), m.SSS(), m.AAA())
	}
}

func TestREX(t *testing.T) {
	tests := []struct {
		REX  REX
		Want string
		On   bool
	}{
		{0x40, "01000000", true},
		{0x48, "0100W000", true},
		{0x4d, "0100WR0B", true},
		{0x4f, "0100WRXB", true},
		{0x90, "10010000", false},
	}

	for _, test := range tests {
		if got := test.REX.String(); got != test.Want {
			t.Errorf("REX(%#x).String(): got %q, want %q", byte(test.REX), got, test.Want)
		}

		if got := test.REX.On(); got != test.On {
			t.Errorf("REX(%#x).On(): got %v, want %v", byte(test.REX), got, test.On)
		}
	}
}

func TestModRMAndSIB(t *testing.T) {
	m := ModRM(0x44)
	if got, want := m.String(), "{Mod: 01, Reg: 000, R/M: 100}"; got != want {
		t.Fatalf("ModRM.String(): got %q, want %q", got, want)
	}

	if m.Mod() != 1 || m.Reg() != 0 || m.RM() != ModRMrmSIB {
		t.Fatalf("ModRM fields: got %s", m)
	}

	s := SIB(0x8b)
	if got, want := s.String(), "{Scale: 10, Index: 001, Base: 011}"; got != want {
		t.Fatalf("SIB.String(): got %q, want %q", got, want)
	}

	if s.Scale() != 2 || s.Index() != 1 || s.Base() != 3 {
		t.Fatalf("SIB fields: got %s", s)
	}
}

func TestLayout(t *testing.T) {
	tests := []struct {
		Name    string
		Bitness int
		Code    string
		Want    *Layout
	}{
		{
			Name:    "one byte",
			Bitness: 64,
			Code:    "90",
			Want:    &Layout{Opcode: []byte{0x90}},
		},
		{
			Name:    "lock and REX",
			Bitness: 64,
			Code:    "f0 48 01 18",
			Want: &Layout{
				Legacy:   []Prefix{PrefixLock},
				REX:      0x48,
				Opcode:   []byte{0x01},
				ModRM:    0x18,
				HasModRM: true,
			},
		},
		{
			Name:    "SIB",
			Bitness: 64,
			Code:    "8b 44 8b 08",
			Want: &Layout{
				Opcode:    []byte{0x8b},
				ModRM:     0x44,
				HasModRM:  true,
				SIB:       0x8b,
				HasSIB:    true,
				Constants: ConstantOffsets{DisplacementOffset: 3, DisplacementSize: 1},
			},
		},
		{
			Name:    "escape and branch",
			Bitness: 64,
			Code:    "0f 86 5a a5 12 34",
			Want: &Layout{
				Opcode:    []byte{0x0f, 0x86},
				Constants: ConstantOffsets{ImmediateOffset: 2, ImmediateSize: 4},
			},
		},
		{
			Name:    "immediate without ModR/M",
			Bitness: 64,
			Code:    "48 b8 88 77 66 55 44 33 22 11",
			Want: &Layout{
				REX:       0x48,
				Opcode:    []byte{0xb8},
				Constants: ConstantOffsets{ImmediateOffset: 2, ImmediateSize: 8},
			},
		},
		{
			Name:    "VEX2",
			Bitness: 64,
			Code:    "c5 f8 28 cd",
			Want: &Layout{
				Envelope: []byte{0xc5, 0xf8},
				Opcode:   []byte{0x28},
				ModRM:    0xcd,
				HasModRM: true,
			},
		},
		{
			Name:    "VEX2 without ModR/M",
			Bitness: 64,
			Code:    "c5 f8 77",
			Want: &Layout{
				Envelope: []byte{0xc5, 0xf8},
				Opcode:   []byte{0x77},
			},
		},
		{
			Name:    "EVEX",
			Bitness: 64,
			Code:    "62 f1 7c 58 58 40 01",
			Want: &Layout{
				Envelope:  []byte{0x62, 0xf1, 0x7c, 0x58},
				Opcode:    []byte{0x58},
				ModRM:     0x40,
				HasModRM:  true,
				Constants: ConstantOffsets{DisplacementOffset: 6, DisplacementSize: 1},
			},
		},
		{
			Name:    "LDS",
			Bitness: 32,
			Code:    "c5 00",
			Want: &Layout{
				Opcode:   []byte{0xc5},
				ModRM:    0x00,
				HasModRM: true,
			},
		},
		{
			Name:    "16-bit addressing has no SIB",
			Bitness: 16,
			Code:    "8b 04",
			Want: &Layout{
				Opcode:   []byte{0x8b},
				ModRM:    0x04,
				HasModRM: true,
			},
		},
		{
			Name:    "ignored REX",
			Bitness: 64,
			Code:    "48 66 01 18",
			Want: &Layout{
				Legacy:   []Prefix{0x48, PrefixOperandSize},
				Opcode:   []byte{0x01},
				ModRM:    0x18,
				HasModRM: true,
			},
		},
		{
			Name:    "3DNow! suffix",
			Bitness: 64,
			Code:    "0f 0f c1 9e",
			Want: &Layout{
				Opcode:   []byte{0x0f, 0x0f},
				ModRM:    0xc1,
				HasModRM: true,
				Suffix:   []byte{0x9e},
			},
		},
		{
			Name:    "is4",
			Bitness: 64,
			Code:    "c4 e3 71 4a c2 30",
			Want: &Layout{
				Envelope: []byte{0xc4, 0xe3, 0x71},
				Opcode:   []byte{0x4a},
				ModRM:    0xc2,
				HasModRM: true,
				Suffix:   []byte{0x30},
			},
		},
		{
			Name:    "invalid",
			Bitness: 64,
			Code:    "f0 90",
			Want:    nil,
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			d, instr := decodeOne(t, test.Bitness, 0, OptionNone, test.Code)
			got := d.Layout(&instr)
			if diff := cmp.Diff(test.Want, got); diff != "" {
				t.Fatalf("Layout(%s): (-want, +got)\n%s", test.Code, diff)
			}
		})
	}
}

func TestLayoutDescribe(t *testing.T) {
	d, instr := decodeOne(t, 64, 0, OptionNone, "f0 48 01 44 8b 08")
	l := d.Layout(&instr)
	want := []string{
		"prefix   f0 lock",
		"rex      48 0100W000",
		"opcode   01",
		"modrm    44 {Mod: 01, Reg: 000, R/M: 100}",
		"sib      8b {Scale: 10, Index: 001, Base: 011}",
		"displ    offset 5, size 1",
	}

	if diff := cmp.Diff(want, l.Describe()); diff != "" {
		t.Fatalf("Describe(): (-want, +got)\n%s", diff)
	}

	d, instr = decodeOne(t, 64, 0, OptionNone, "c5 f8 28 cd")
	l = d.Layout(&instr)
	want = []string{
		"vex2     c5 f8 {R: 1, X: 1, B: 1, m-mmmm: 00001, W: false, vvvv: 1111, L: 0, pp: 00}",
		"opcode   28",
		"modrm    cd {Mod: 11, Reg: 001, R/M: 101}",
	}

	if diff := cmp.Diff(want, l.Describe()); diff != "" {
		t.Fatalf("Describe(): (-want, +got)\n%s", diff)
	}

	d, instr = decodeOne(t, 64, 0, OptionNone, "48 66 01 18")
	l = d.Layout(&instr)
	want = []string{
		"rex      48 (ignored)",
		"prefix   66 data16/data32",
		"opcode   01",
		"modrm    18 {Mod: 00, Reg: 011, R/M: 000}",
	}

	if diff := cmp.Diff(want, l.Describe()); diff != "" {
		t.Fatalf("Describe(): (-want, +got)\n%s", diff)
	}

	d, instr = decodeOne(t, 64, 0, OptionNone, "0f 0f 41 08 9e")
	l = d.Layout(&instr)
	want = []string{
		"opcode   0f 0f",
		"modrm    41 {Mod: 01, Reg: 000, R/M: 001}",
		"displ    offset 4, size 1",
		"suffix   9e",
	}

	if diff := cmp.Diff(want, l.Describe()); diff != "" {
		t.Fatalf("Describe(): (-want, +got)\n%s", diff)
	}

	d, instr = decodeOne(t, 64, 0, OptionNone, "c4 e3 71 4a c2 30")
	l = d.Layout(&instr)
	want = []string{
		"vex3     c4 e3 71 {R: 1, X: 1, B: 1, m-mmmm: 00011, W: false, vvvv: 1110, L: 0, pp: 01}",
		"opcode   4a",
		"modrm    c2 {Mod: 11, Reg: 000, R/M: 010}",
		"is4      30",
	}

	if diff := cmp.Diff(want, l.Describe()); diff != "" {
		t.Fatalf("Describe(): (-want, +got)\n%s", diff)
	}
}

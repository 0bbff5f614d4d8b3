// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

import (
	"encoding/hex"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func parseHex(t *testing.T, code string) []byte {
	t.Helper()
	b, err := hex.DecodeString(strings.ReplaceAll(code, " ", ""))
	if err != nil {
		t.Fatalf("invalid hex %q: %v", code, err)
	}

	return b
}

func decodeOne(t *testing.T, bitness int, ip uint64, options DecoderOptions, code string) (*Decoder, Instruction) {
	t.Helper()
	d, err := NewDecoder(bitness, parseHex(t, code), options)
	if err != nil {
		t.Fatalf("NewDecoder(%d): %v", bitness, err)
	}

	d.SetIP(ip)
	instr := d.Decode()

	return d, instr
}

func TestDecode(t *testing.T) {
	tests := []struct {
		Name    string
		Bitness int
		IP      uint64
		Options DecoderOptions
		Code    string
		Want    string
		Length  int
	}{
		{
			Name:    "nop",
			Bitness: 64,
			Code:    "90",
			Want:    "Nopd",
			Length:  1,
		},
		{
			Name:    "pause",
			Bitness: 64,
			Code:    "f3 90",
			Want:    "Pause",
			Length:  2,
		},
		{
			Name:    "pause disabled",
			Bitness: 64,
			Options: OptionNoPause,
			Code:    "f3 90",
			Want:    "Nopd",
			Length:  2,
		},
		{
			Name:    "REX.B exchange",
			Bitness: 64,
			Code:    "41 90",
			Want:    "Xchg_R8D_EAX r8d, eax",
			Length:  2,
		},
		{
			Name:    "add to memory",
			Bitness: 64,
			Code:    "48 01 18",
			Want:    "Add_Eq_Gq (rax), rbx",
			Length:  3,
		},
		{
			Name:    "locked add",
			Bitness: 64,
			Code:    "f0 01 18",
			Want:    "Add_Ed_Gd (rax), ebx",
			Length:  3,
		},
		{
			Name:    "SIB",
			Bitness: 64,
			Code:    "8b 44 8b 08",
			Want:    "Mov_Gd_Ed eax, (+ rbx (* rcx 4) 8)",
			Length:  4,
		},
		{
			Name:    "RIP-relative",
			Bitness: 64,
			IP:      0x1000,
			Code:    "48 8b 05 10 00 00 00",
			Want:    "Mov_Gq_Eq rax, (+ rip 16)",
			Length:  7,
		},
		{
			Name:    "FS beats CS",
			Bitness: 64,
			Code:    "64 2e 8b 00",
			Want:    "Mov_Gd_Ed eax, (fs rax)",
			Length:  4,
		},
		{
			Name:    "64-bit immediate",
			Bitness: 64,
			Code:    "48 b8 88 77 66 55 44 33 22 11",
			Want:    "Mov_RAX_Iq rax, 0x1122334455667788",
			Length:  10,
		},
		{
			Name:    "near conditional branch",
			Bitness: 64,
			Code:    "0f 86 5a a5 12 34",
			Want:    "Jbe_Jd64 0x3412a560",
			Length:  6,
		},
		{
			Name:    "short jump to self",
			Bitness: 64,
			Code:    "eb fe",
			Want:    "Jmp_Jb64 0x0",
			Length:  2,
		},
		{
			Name:    "call ignores operand size on Intel",
			Bitness: 64,
			Code:    "66 e8 10 00 00 00",
			Want:    "Call_Jd64 0x16",
			Length:  6,
		},
		{
			Name:    "call honours operand size on AMD",
			Bitness: 64,
			Options: OptionAMD,
			Code:    "66 e8 10 00",
			Want:    "Call_Jw16 0x14",
			Length:  4,
		},
		{
			Name:    "enter",
			Bitness: 64,
			Code:    "c8 10 00 01",
			Want:    "Enterq_Iw_Ib 0x10, 0x1",
			Length:  4,
		},
		{
			Name:    "wbnoinvd",
			Bitness: 64,
			Code:    "f3 0f 09",
			Want:    "Wbnoinvd",
			Length:  3,
		},
		{
			Name:    "wbnoinvd disabled",
			Bitness: 64,
			Options: OptionNoWbnoinvd,
			Code:    "f3 0f 09",
			Want:    "Wbinvd",
			Length:  3,
		},
		{
			Name:    "x87",
			Bitness: 64,
			Code:    "d9 e8",
			Want:    "Fld1",
			Length:  2,
		},
		{
			Name:    "3DNow!",
			Bitness: 64,
			Code:    "0f 0f c1 9e",
			Want:    "D3NOW_Pfadd_mm_mmm64 mm0, mm1",
			Length:  4,
		},
		{
			Name:    "VEX2",
			Bitness: 64,
			Code:    "c5 f8 28 cd",
			Want:    "VEX_Vmovaps_VX_WX xmm1, xmm5",
			Length:  4,
		},
		{
			Name:    "VEX2 extended registers",
			Bitness: 64,
			Code:    "c5 65 58 f1",
			Want:    "VEX_Vaddpd_VY_HY_WY ymm14, ymm3, ymm1",
			Length:  4,
		},
		{
			Name:    "XOP",
			Bitness: 64,
			Code:    "8f e9 78 80 c1",
			Want:    "XOP_Vfrczps_VX_WX xmm0, xmm1",
			Length:  5,
		},
		{
			Name:    "EVEX masking",
			Bitness: 64,
			Code:    "62 31 7c 8b 28 d3",
			Want:    "EVEX_Vmovaps_VX_k1z_WX xmm10{k3}{z}, xmm19",
			Length:  6,
		},
		{
			Name:    "EVEX extended registers",
			Bitness: 64,
			Code:    "62 11 e5 28 58 f7",
			Want:    "EVEX_Vaddpd_VY_k1z_HY_WY_b ymm14, ymm3, ymm31",
			Length:  6,
		},
		{
			Name:    "EVEX rounding",
			Bitness: 64,
			Code:    "62 f1 7c 38 58 c2",
			Want:    "EVEX_Vaddps_VZ_k1z_HZ_WZ_er_b zmm0, zmm0, zmm2 {rd-sae}",
			Length:  6,
		},
		{
			Name:    "EVEX broadcast",
			Bitness: 64,
			Code:    "62 f1 7c 58 58 40 01",
			Want:    "EVEX_Vaddps_VZ_k1z_HZ_WZ_er_b zmm0, zmm0, (+ rax 4){bcst}",
			Length:  7,
		},
		{
			Name:    "MVEX",
			Bitness: 64,
			Options: OptionKNC,
			Code:    "62 f1 78 08 28 c1",
			Want:    "MVEX_Vmovaps_VZ_k1_WZ zmm0, zmm1",
			Length:  6,
		},
		{
			Name:    "sahf",
			Bitness: 64,
			Code:    "9e",
			Want:    "Sahf",
			Length:  1,
		},
		{
			Name:    "longest instruction",
			Bitness: 64,
			Code:    strings.Repeat("66 ", 14) + "90",
			Want:    "Nopw",
			Length:  15,
		},
		{
			Name:    "push es",
			Bitness: 32,
			Code:    "06",
			Want:    "Pushd_ES es",
			Length:  1,
		},
		{
			Name:    "32-bit SIB",
			Bitness: 32,
			Code:    "8b 44 8b 08",
			Want:    "Mov_Gd_Ed eax, (+ ebx (* ecx 4) 8)",
			Length:  4,
		},
		{
			Name:    "CS beats FS outside 64-bit mode",
			Bitness: 32,
			Code:    "64 2e 8b 00",
			Want:    "Mov_Gd_Ed eax, (cs eax)",
			Length:  4,
		},
		{
			Name:    "LDS",
			Bitness: 32,
			Code:    "c5 00",
			Want:    "Lds_Gd_Mp eax, (eax)",
			Length:  2,
		},
		{
			Name:    "VEX2 outside 64-bit mode",
			Bitness: 32,
			Code:    "c5 f8 28 cd",
			Want:    "VEX_Vmovaps_VX_WX xmm1, xmm5",
			Length:  4,
		},
		{
			Name:    "EVEX outside 64-bit mode",
			Bitness: 32,
			Code:    "62 f1 7c 08 28 c1",
			Want:    "EVEX_Vmovaps_VX_k1z_WX xmm0, xmm1",
			Length:  6,
		},
		{
			Name:    "16-bit addressing",
			Bitness: 16,
			Code:    "8b 40 08",
			Want:    "Mov_Gw_Ew ax, (+ bx si 8)",
			Length:  3,
		},
		{
			Name:    "lock without checks",
			Bitness: 64,
			Options: OptionNoInvalidCheck,
			Code:    "f0 90",
			Want:    "Nopd",
			Length:  2,
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			d, instr := decodeOne(t, test.Bitness, test.IP, test.Options, test.Code)
			if err := d.LastError(); err != ErrorNone {
				t.Fatalf("Decode(%s): got error %v", test.Code, err)
			}

			if got := instr.String(); got != test.Want {
				t.Fatalf("Decode(%s): got %q, want %q", test.Code, got, test.Want)
			}

			if got := instr.Length(); got != test.Length {
				t.Fatalf("Decode(%s): got length %d, want %d", test.Code, got, test.Length)
			}

			if got, want := instr.IP(), test.IP; got != want {
				t.Fatalf("Decode(%s): got IP %#x, want %#x", test.Code, got, want)
			}

			if got, want := instr.NextIP(), test.IP+uint64(test.Length); got != want {
				t.Fatalf("Decode(%s): got next IP %#x, want %#x", test.Code, got, want)
			}

			if got, want := instr.CodeSize().Bits(), test.Bitness; got != want {
				t.Fatalf("Decode(%s): got code size %d, want %d", test.Code, got, want)
			}
		})
	}
}

func TestDecodeInvalid(t *testing.T) {
	tests := []struct {
		Name    string
		Bitness int
		Options DecoderOptions
		Code    string
		Want    DecoderError
		Length  int
	}{
		{
			Name:    "empty",
			Bitness: 64,
			Code:    "",
			Want:    ErrorNoMoreBytes,
			Length:  0,
		},
		{
			Name:    "truncated ModR/M",
			Bitness: 64,
			Code:    "48 01",
			Want:    ErrorNoMoreBytes,
			Length:  2,
		},
		{
			Name:    "truncated immediate",
			Bitness: 64,
			Code:    "48 b8 88 77 66",
			Want:    ErrorNoMoreBytes,
			Length:  5,
		},
		{
			Name:    "too long",
			Bitness: 64,
			Code:    strings.Repeat("66 ", 15) + "90",
			Want:    ErrorInvalidInstruction,
			Length:  15,
		},
		{
			Name:    "lock on nop",
			Bitness: 64,
			Code:    "f0 90",
			Want:    ErrorInvalidInstruction,
			Length:  2,
		},
		{
			Name:    "lock on register destination",
			Bitness: 64,
			Code:    "f0 01 c0",
			Want:    ErrorInvalidInstruction,
			Length:  3,
		},
		{
			Name:    "lock on mov",
			Bitness: 64,
			Code:    "f0 89 18",
			Want:    ErrorInvalidInstruction,
			Length:  3,
		},
		{
			Name:    "push es in 64-bit mode",
			Bitness: 64,
			Code:    "06 00",
			Want:    ErrorInvalidInstruction,
			Length:  2,
		},
		{
			Name:    "sahf disabled",
			Bitness: 64,
			Options: OptionNoLahfSahf64,
			Code:    "9e",
			Want:    ErrorInvalidInstruction,
			Length:  1,
		},
		{
			Name:    "REX before VEX",
			Bitness: 64,
			Code:    "40 c5 f8 28 cd",
			Want:    ErrorInvalidInstruction,
			Length:  5,
		},
		{
			Name:    "operand size before VEX",
			Bitness: 64,
			Code:    "66 c5 f8 28 cd",
			Want:    ErrorInvalidInstruction,
			Length:  5,
		},
		{
			Name:    "zeroing without a mask",
			Bitness: 64,
			Code:    "62 f1 7c 88 28 c1",
			Want:    ErrorInvalidInstruction,
			Length:  6,
		},
		{
			Name:    "zeroing a memory destination",
			Bitness: 64,
			Code:    "62 f1 7c 8b 29 00",
			Want:    ErrorInvalidInstruction,
			Length:  6,
		},
		{
			Name:    "MVEX without KNC",
			Bitness: 64,
			Code:    "62 f1 78 08 28 c1",
			Want:    ErrorInvalidInstruction,
			Length:  4,
		},
		{
			Name:    "EVEX with reserved P0 bits",
			Bitness: 64,
			Code:    "62 f9 7c 48 28 c1",
			Want:    ErrorInvalidInstruction,
			Length:  4,
		},
		{
			Name:    "unknown 3DNow! suffix",
			Bitness: 64,
			Code:    "0f 0f c1 00",
			Want:    ErrorInvalidInstruction,
			Length:  4,
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			d, instr := decodeOne(t, test.Bitness, 0, test.Options, test.Code)
			if got := d.LastError(); got != test.Want {
				t.Fatalf("Decode(%s): got error %v, want %v", test.Code, got, test.Want)
			}

			if !instr.IsInvalid() {
				t.Fatalf("Decode(%s): got %s, want invalid", test.Code, &instr)
			}

			if got := instr.OpCount(); got != 0 {
				t.Fatalf("Decode(%s): got %d operands, want 0", test.Code, got)
			}

			if got := instr.Length(); got != test.Length {
				t.Fatalf("Decode(%s): got length %d, want %d", test.Code, got, test.Length)
			}
		})
	}
}

func TestDecodePrefixes(t *testing.T) {
	type prefixes struct {
		Lock     bool
		Rep      bool
		Repne    bool
		Xacquire bool
		Xrelease bool
		Segment  Register
	}

	tests := []struct {
		Name string
		Code string
		Want prefixes
	}{
		{
			Name: "xacquire lock",
			Code: "f2 f0 01 18",
			Want: prefixes{Lock: true, Xacquire: true},
		},
		{
			Name: "xrelease lock",
			Code: "f3 f0 01 18",
			Want: prefixes{Lock: true, Xrelease: true},
		},
		{
			Name: "xrelease without lock",
			Code: "f3 89 18",
			Want: prefixes{Xrelease: true},
		},
		{
			Name: "repne is not xacquire on mov",
			Code: "f2 89 18",
			Want: prefixes{Repne: true},
		},
		{
			Name: "hint needs lock",
			Code: "f3 01 18",
			Want: prefixes{Rep: true},
		},
		{
			Name: "segment",
			Code: "65 8b 00",
			Want: prefixes{Segment: GS},
		},
		{
			Name: "DS after GS",
			Code: "65 3e 8b 00",
			Want: prefixes{Segment: GS},
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			d, instr := decodeOne(t, 64, 0, OptionNone, test.Code)
			if err := d.LastError(); err != ErrorNone {
				t.Fatalf("Decode(%s): got error %v", test.Code, err)
			}

			got := prefixes{
				Lock:     instr.HasLockPrefix(),
				Rep:      instr.HasRepPrefix(),
				Repne:    instr.HasRepnePrefix(),
				Xacquire: instr.HasXacquirePrefix(),
				Xrelease: instr.HasXreleasePrefix(),
				Segment:  instr.SegmentPrefix(),
			}

			if diff := cmp.Diff(test.Want, got); diff != "" {
				t.Fatalf("Decode(%s): (-want, +got)\n%s", test.Code, diff)
			}
		})
	}
}

func TestDecodeFields(t *testing.T) {
	t.Run("RIP-relative", func(t *testing.T) {
		_, instr := decodeOne(t, 64, 0x1000, OptionNone, "48 8b 05 10 00 00 00")
		if !instr.IsIPRelativeMemoryOperand() {
			t.Fatalf("IsIPRelativeMemoryOperand: got false, want true")
		}

		if got, want := instr.IPRelativeMemoryAddress(), uint64(0x1017); got != want {
			t.Fatalf("IPRelativeMemoryAddress: got %#x, want %#x", got, want)
		}

		if got, want := instr.MemoryDisplSize(), 8; got != want {
			t.Fatalf("MemoryDisplSize: got %d, want %d", got, want)
		}
	})

	t.Run("EVEX masking", func(t *testing.T) {
		_, instr := decodeOne(t, 64, 0, OptionNone, "62 31 7c 8b 28 d3")
		if got, want := instr.Encoding(), EncodingEVEX; got != want {
			t.Fatalf("Encoding: got %v, want %v", got, want)
		}

		if got, want := instr.OpMask(), K3; got != want {
			t.Fatalf("OpMask: got %v, want %v", got, want)
		}

		if !instr.ZeroingMasking() || instr.MergingMasking() {
			t.Fatalf("ZeroingMasking: got false, want true")
		}
	})

	t.Run("near branch", func(t *testing.T) {
		_, instr := decodeOne(t, 64, 0, OptionNone, "0f 86 5a a5 12 34")
		if got, want := instr.OpKind(0), OpKindNearBranch64; got != want {
			t.Fatalf("OpKind(0): got %v, want %v", got, want)
		}

		if got, want := instr.NearBranchTarget(), uint64(0x3412a560); got != want {
			t.Fatalf("NearBranchTarget: got %#x, want %#x", got, want)
		}

		if got, want := instr.Mnemonic(), "jbe"; got != want {
			t.Fatalf("Mnemonic: got %q, want %q", got, want)
		}
	})

	t.Run("16-bit branch wraps", func(t *testing.T) {
		_, instr := decodeOne(t, 16, 0xfffe, OptionNone, "eb 10")
		if got, want := instr.NearBranchTarget(), uint64(0x10); got != want {
			t.Fatalf("NearBranchTarget: got %#x, want %#x", got, want)
		}
	})

	t.Run("immediate", func(t *testing.T) {
		_, instr := decodeOne(t, 64, 0, OptionNone, "48 83 c0 ff")
		v, ok := instr.Immediate(1)
		if !ok {
			t.Fatalf("Immediate(1): got no immediate")
		}

		if want := uint64(0xffffffffffffffff); v != want {
			t.Fatalf("Immediate(1): got %#x, want %#x", v, want)
		}

		if got, want := instr.OpKind(1), OpKindImmediate8to64; got != want {
			t.Fatalf("OpKind(1): got %v, want %v", got, want)
		}
	})

	t.Run("MVEX swizzle", func(t *testing.T) {
		_, instr := decodeOne(t, 64, 0, OptionKNC, "62 f1 78 08 28 c1")
		if got, want := instr.MvexRegMemConv(), MvexRegSwizzleNone; got != want {
			t.Fatalf("MvexRegMemConv: got %v, want %v", got, want)
		}
	})

	t.Run("lock kept without checks", func(t *testing.T) {
		_, instr := decodeOne(t, 64, 0, OptionNoInvalidCheck, "f0 90")
		if !instr.HasLockPrefix() {
			t.Fatalf("HasLockPrefix: got false, want true")
		}
	})

	t.Run("rep kept on nop", func(t *testing.T) {
		_, instr := decodeOne(t, 64, 0, OptionNoPause, "f3 90")
		if !instr.HasRepPrefix() {
			t.Fatalf("HasRepPrefix: got false, want true")
		}
	})
}

func TestNewDecoder(t *testing.T) {
	for _, bitness := range []int{0, 8, 33, 128} {
		_, err := NewDecoder(bitness, nil, OptionNone)
		if !errors.Is(err, ErrInvalidBitness) {
			t.Errorf("NewDecoder(%d): got error %v, want %v", bitness, err, ErrInvalidBitness)
		}
	}

	for _, bitness := range []int{16, 32, 64} {
		d, err := NewDecoder(bitness, nil, OptionAMD)
		if err != nil {
			t.Fatalf("NewDecoder(%d): %v", bitness, err)
		}

		if d.Bitness() != bitness {
			t.Errorf("Bitness: got %d, want %d", d.Bitness(), bitness)
		}

		if d.Options() != OptionAMD {
			t.Errorf("Options: got %v, want %v", d.Options(), OptionAMD)
		}

		if d.CanDecode() {
			t.Errorf("CanDecode: got true with no input")
		}
	}
}

func TestSetPosition(t *testing.T) {
	d, err := NewDecoder(64, parseHex(t, "90 48 01 18 c3"), OptionNone)
	if err != nil {
		t.Fatal(err)
	}

	if err := d.SetPosition(1); err != nil {
		t.Fatalf("SetPosition(1): %v", err)
	}

	d.SetIP(0x401001)
	instr := d.Decode()
	if got, want := instr.Code(), Add_Eq_Gq; got != want {
		t.Fatalf("Decode: got %v, want %v", got, want)
	}

	if got, want := d.Position(), 4; got != want {
		t.Fatalf("Position: got %d, want %d", got, want)
	}

	if got, want := d.IP(), uint64(0x401004); got != want {
		t.Fatalf("IP: got %#x, want %#x", got, want)
	}

	if err := d.SetPosition(5); err != nil {
		t.Fatalf("SetPosition(5): %v", err)
	}

	if d.CanDecode() {
		t.Fatalf("CanDecode: got true at end of input")
	}

	for _, pos := range []int{-1, 6} {
		if err := d.SetPosition(pos); !errors.Is(err, ErrInvalidPosition) {
			t.Fatalf("SetPosition(%d): got error %v, want %v", pos, err, ErrInvalidPosition)
		}
	}
}

func TestEach(t *testing.T) {
	d, err := NewDecoder(64, parseHex(t, "90 48 01 18 f0 90 c3"), OptionNone)
	if err != nil {
		t.Fatal(err)
	}

	d.SetIP(0x1000)
	var got []string
	var ips []uint64
	d.Each(func(instr *Instruction) bool {
		got = append(got, instr.Code().String())
		ips = append(ips, instr.IP())
		return true
	})

	want := []string{"Nopd", "Add_Eq_Gq", "INVALID", "Retnq"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Each: (-want, +got)\n%s", diff)
	}

	wantIPs := []uint64{0x1000, 0x1001, 0x1004, 0x1006}
	if diff := cmp.Diff(wantIPs, ips); diff != "" {
		t.Fatalf("Each: IPs (-want, +got)\n%s", diff)
	}

	// Stop early.
	d.SetPosition(0)
	n := 0
	d.Each(func(instr *Instruction) bool {
		n++
		return false
	})

	if n != 1 {
		t.Fatalf("Each: got %d calls after returning false, want 1", n)
	}
}

func TestDecodeRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	buf := make([]byte, MaxInstructionLength)
	options := []DecoderOptions{OptionNone, OptionAMD | OptionKNC, OptionNoInvalidCheck}
	for _, bitness := range []int{16, 32, 64} {
		for _, opts := range options {
			for i := 0; i < 5000; i++ {
				rng.Read(buf)
				checkInvariants(t, bitness, opts, buf)
			}
		}
	}
}

// checkInvariants decodes the first instruction
// in data and checks the properties that hold
// for every input.
func checkInvariants(t *testing.T, bitness int, opts DecoderOptions, data []byte) {
	t.Helper()
	d, err := NewDecoder(bitness, data, opts)
	if err != nil {
		t.Fatal(err)
	}

	d.SetIP(0x1000)
	instr := d.Decode()
	code := hex.EncodeToString(data)
	length := instr.Length()
	if length < 1 || length > MaxInstructionLength {
		t.Fatalf("Decode(%d, %s): got length %d", bitness, code, length)
	}

	if d.Position() != length {
		t.Fatalf("Decode(%d, %s): consumed %d bytes, reported length %d", bitness, code, d.Position(), length)
	}

	if instr.NextIP() != 0x1000+uint64(length) {
		t.Fatalf("Decode(%d, %s): got next IP %#x with length %d", bitness, code, instr.NextIP(), length)
	}

	n := instr.OpCount()
	for i := 0; i < MaxOperands; i++ {
		kind := instr.OpKind(i)
		if (i < n) != (kind != OpKindNone) {
			t.Fatalf("Decode(%d, %s): operand %d has kind %v with %d operands", bitness, code, i, kind, n)
		}
	}

	if d.LastError() != ErrorNone {
		if !instr.IsInvalid() || n != 0 {
			t.Fatalf("Decode(%d, %s): got %s with error %v", bitness, code, &instr, d.LastError())
		}

		return
	}

	if d.Layout(&instr) == nil {
		t.Fatalf("Decode(%d, %s): got no layout for %s", bitness, code, &instr)
	}

	// The same bytes decode to the same
	// instruction at any address, with only
	// the IP-relative values moved.
	const moved = 0x7fff0000 - 0x1000
	d2, _ := NewDecoder(bitness, data, opts)
	d2.SetIP(0x7fff0000)
	other := d2.Decode()
	if other.Code() != instr.Code() || other.Length() != length {
		t.Fatalf("Decode(%d, %s): got %s at 0x1000 but %s at 0x7fff0000", bitness, code, &instr, &other)
	}

	switch kind := instr.OpKind(0); kind {
	case OpKindNearBranch16, OpKindNearBranch32, OpKindNearBranch64:
		delta := other.NearBranchTarget() - instr.NearBranchTarget()
		want := uint64(moved)
		switch kind {
		case OpKindNearBranch16:
			delta, want = uint64(uint16(delta)), uint64(uint16(want))
		case OpKindNearBranch32:
			delta, want = uint64(uint32(delta)), uint64(uint32(want))
		}

		if delta != want {
			t.Fatalf("Decode(%d, %s): branch target moved by %#x, want %#x", bitness, code, delta, want)
		}
	}

	if instr.IsIPRelativeMemoryOperand() {
		delta := other.IPRelativeMemoryAddress() - instr.IPRelativeMemoryAddress()
		if instr.MemoryBase() == EIP {
			delta = uint64(uint32(delta))
		}

		if delta != moved {
			t.Fatalf("Decode(%d, %s): IP-relative address moved by %#x, want %#x", bitness, code, delta, uint64(moved))
		}
	}

	other.nearBranch = instr.nearBranch
	if !other.Equal(&instr) {
		t.Fatalf("Decode(%d, %s): got %#v at 0x1000 but %#v at 0x7fff0000", bitness, code, instr, other)
	}

	// The instruction's own bytes are
	// enough to decode it.
	d4, _ := NewDecoder(bitness, data[:length], opts)
	d4.SetIP(0x1000)
	exact := d4.Decode()
	if d4.LastError() != ErrorNone || !exact.Equal(&instr) || exact.IP() != instr.IP() {
		t.Fatalf("Decode(%d, %s): got %#v from the first %d bytes, want %#v", bitness, code, exact, length, instr)
	}

	// Every byte of a valid instruction is
	// needed to decode it.
	d3, _ := NewDecoder(bitness, data[:length-1], opts)
	d3.Decode()
	if got := d3.LastError(); got != ErrorNoMoreBytes {
		t.Fatalf("Decode(%d, %s): got error %v with the last byte removed, want %v", bitness, code, got, ErrorNoMoreBytes)
	}
}

func TestInstructionEqual(t *testing.T) {
	_, a := decodeOne(t, 64, 0x1000, OptionNone, "48 01 18")
	_, b := decodeOne(t, 64, 0x2000, OptionNone, "48 01 18")
	_, c := decodeOne(t, 64, 0x1000, OptionNone, "48 01 19")
	if !a.Equal(&b) {
		t.Errorf("Equal: got false for the same bytes at different addresses")
	}

	if a.Equal(&c) {
		t.Errorf("Equal: got true for different operands")
	}
}

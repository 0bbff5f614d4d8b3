// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

import (
	"encoding/json"
	"testing"
)

func TestRegisters(t *testing.T) {
	tests := []struct {
		Name   string
		Reg    Register
		Type   RegisterType
		Bits   int
		Number int
		Vector bool
	}{
		{Name: "al", Reg: AL, Type: TypeGeneralPurpose, Bits: 8, Number: 0},
		{Name: "spl", Reg: SPL, Type: TypeGeneralPurpose, Bits: 8, Number: 4},
		{Name: "r8d", Reg: R8D, Type: TypeGeneralPurpose, Bits: 32, Number: 8},
		{Name: "rip", Reg: RIP, Type: TypeInstructionPointer, Bits: 64, Number: 0},
		{Name: "es", Reg: ES, Type: TypeSegment, Bits: 16, Number: 0},
		{Name: "st0", Reg: ST0, Type: TypeX87, Bits: 80, Number: 0},
		{Name: "cr8", Reg: CR8, Type: TypeControl, Bits: 0, Number: 8},
		{Name: "dr7", Reg: DR7, Type: TypeDebug, Bits: 0, Number: 7},
		{Name: "tr6", Reg: TR6, Type: TypeTest, Bits: 32, Number: 6},
		{Name: "k3", Reg: K3, Type: TypeOpmask, Bits: 64, Number: 3},
		{Name: "bnd1", Reg: BND1, Type: TypeBounds, Bits: 128, Number: 1},
		{Name: "mm7", Reg: MM7, Type: TypeMMX, Bits: 64, Number: 7},
		{Name: "xmm7", Reg: XMM7, Type: TypeXMM, Bits: 128, Number: 7, Vector: true},
		{Name: "ymm7", Reg: YMM7, Type: TypeYMM, Bits: 256, Number: 7, Vector: true},
		{Name: "zmm31", Reg: ZMM31, Type: TypeZMM, Bits: 512, Number: 31, Vector: true},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			if got := test.Reg.String(); got != test.Name {
				t.Fatalf("%s.String(): got %q", test.Name, got)
			}

			got, ok := RegisterByName(test.Name)
			if !ok || got != test.Reg {
				t.Fatalf("RegisterByName(%q): got %v, %v", test.Name, got, ok)
			}

			upper, ok := RegisterByName(test.Reg.UpperName())
			if !ok || upper != test.Reg {
				t.Fatalf("RegisterByName(%q): got %v, %v", test.Reg.UpperName(), upper, ok)
			}

			if got := test.Reg.Type(); got != test.Type {
				t.Fatalf("%s.Type(): got %v, want %v", test.Name, got, test.Type)
			}

			if got := test.Reg.Bits(); got != test.Bits {
				t.Fatalf("%s.Bits(): got %d, want %d", test.Name, got, test.Bits)
			}

			if got := test.Reg.Number(); got != test.Number {
				t.Fatalf("%s.Number(): got %d, want %d", test.Name, got, test.Number)
			}

			if got := test.Reg.IsVector(); got != test.Vector {
				t.Fatalf("%s.IsVector(): got %v, want %v", test.Name, got, test.Vector)
			}
		})
	}
}

func TestRegisterJSON(t *testing.T) {
	type operand struct {
		Reg Register `json:"reg"`
	}

	data, err := json.Marshal(operand{Reg: XMM10})
	if err != nil {
		t.Fatal(err)
	}

	if got, want := string(data), `{"reg":"xmm10"}`; got != want {
		t.Fatalf("json.Marshal: got %s, want %s", got, want)
	}

	var got operand
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}

	if got.Reg != XMM10 {
		t.Fatalf("json.Unmarshal: got %v, want %v", got.Reg, XMM10)
	}

	if err := json.Unmarshal([]byte(`{"reg":"xmm99"}`), &got); err == nil {
		t.Fatalf("json.Unmarshal: got no error for an unknown register")
	}

	if _, ok := RegisterByName("none"); !ok {
		t.Fatalf("RegisterByName(none): got false")
	}
}

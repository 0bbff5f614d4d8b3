// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

import (
	"strings"
	"testing"
)

func TestCodeMnemonic(t *testing.T) {
	tests := []struct {
		Code Code
		Want string
	}{
		{INVALID, "invalid"},
		{Add_Eq_Gq, "add"},
		{Nopd, "nop"},
		{Pause, "pause"},
		{Pushd_ES, "push"},
		{Retnq, "ret"},
		{Enterq_Iw_Ib, "enter"},
		{Jbe_Jd64, "jbe"},
		{Loadall286, "loadall"},
		{Monitorq, "monitor"},
		{VEX_Vmovaps_VX_WX, "vmovaps"},
		{EVEX_Vmovaps_VX_k1z_WX, "vmovaps"},
		{XOP_Vfrczps_VX_WX, "vfrczps"},
		{D3NOW_Pfadd_mm_mmm64, "pfadd"},
		{MVEX_Vmovaps_VZ_k1_WZ, "vmovaps"},
	}

	for _, test := range tests {
		t.Run(test.Code.String(), func(t *testing.T) {
			if got := test.Code.Mnemonic(); got != test.Want {
				t.Fatalf("%s.Mnemonic(): got %q, want %q", test.Code, got, test.Want)
			}
		})
	}

	if got := Code(NumCodes).Mnemonic(); got != "" {
		t.Fatalf("Code(NumCodes).Mnemonic(): got %q, want empty", got)
	}
}

func TestCodeNames(t *testing.T) {
	seen := make(map[string]Code, NumCodes)
	for i := 0; i < NumCodes; i++ {
		c := Code(i)
		name := c.String()
		if strings.HasPrefix(name, "Code(") {
			t.Errorf("code %d has no name", i)
			continue
		}

		if prev, ok := seen[name]; ok {
			t.Errorf("codes %d and %d share the name %q", prev, c, name)
		}

		seen[name] = c
		if c.Mnemonic() == "" {
			t.Errorf("%s has no mnemonic", name)
		}
	}
}

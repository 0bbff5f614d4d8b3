// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package decode

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"rsc.io/diff"

	"firefly-os.dev/x86dec/internal/config"
)

func TestMainText(t *testing.T) {
	dir := t.TempDir()
	bin := filepath.Join(dir, "code.bin")
	err := os.WriteFile(bin, []byte{0x8b, 0x05, 0x78, 0x56, 0x34, 0x12, 0xf0, 0x90, 0xeb, 0xfe}, 0644)
	require.NoError(t, err)

	tests := []struct {
		Name string
		Args []string
		Want string
	}{
		{
			Name: "hex inputs",
			Args: []string{"-ip", "0x1000", "90 48 01 18", "c3"},
			Want: "" +
				"90 48 01 18:\n" +
				"0000000000001000  90                              Nopd\n" +
				"0000000000001001  48 01 18                        Add_Eq_Gq (rax), rbx\n" +
				"c3:\n" +
				"0000000000001000  c3                              Retnq\n",
		},
		{
			Name: "file with offsets",
			Args: []string{"-bitness", "32", "-offsets", "@" + bin},
			Want: "" +
				"00000000  8b 05 78 56 34 12               Mov_Gd_Ed eax, (305419896)  [displ 2:4]\n" +
				"00000006  f0 90                           INVALID (invalid instruction)\n" +
				"00000008  eb fe                           Jmp_Jb32 0x8  [imm 1:1]\n",
		},
		{
			Name: "layout",
			Args: []string{"-layout", "f0 48 01 44 8b 08"},
			Want: "" +
				"0000000000000000  f0 48 01 44 8b 08               Add_Eq_Gq (+ rbx (* rcx 4) 8), rax\n" +
				"\tprefix   f0 lock\n" +
				"\trex      48 0100W000\n" +
				"\topcode   01\n" +
				"\tmodrm    44 {Mod: 01, Reg: 000, R/M: 100}\n" +
				"\tsib      8b {Scale: 10, Index: 001, Base: 011}\n" +
				"\tdispl    offset 5, size 1\n",
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			var buf bytes.Buffer
			err := Main(context.Background(), &buf, test.Args)
			require.NoError(t, err)
			if got := buf.String(); got != test.Want {
				t.Fatalf("Main(%q):\n%s", test.Args, diff.Format(got, test.Want))
			}
		})
	}
}

func TestMainJSON(t *testing.T) {
	var buf bytes.Buffer
	err := Main(context.Background(), &buf, []string{"-json", "-offsets", "-options", "knc", "62 f1 7c 58 58 40 01 06"})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var got jsonInstruction
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &got))
	require.Equal(t, "62f17c58584001", got.Bytes)
	require.Equal(t, "EVEX_Vaddps_VZ_k1z_HZ_WZ_er_b", got.Code)
	require.Equal(t, "vaddps", got.Mnemonic)
	require.Equal(t, "EVEX", got.Encoding)
	require.Empty(t, got.Error)
	require.Len(t, got.Operands, 3)
	require.Equal(t, "Register", got.Operands[0].Kind)
	require.Equal(t, "zmm0", got.Operands[0].Text)
	require.Equal(t, "Memory", got.Operands[2].Kind)
	require.NotNil(t, got.Operands[2].Memory)
	require.True(t, got.Operands[2].Memory.Broadcast)
	require.Equal(t, int64(4), got.Operands[2].Memory.Displacement)
	require.NotNil(t, got.Offsets)
	require.Equal(t, uint8(6), got.Offsets.DisplacementOffset)

	var bad jsonInstruction
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &bad))
	require.Equal(t, "INVALID", bad.Code)
	require.Equal(t, "no more bytes", bad.Error)
	require.Equal(t, uint64(7), bad.IP)
}

func TestReadInput(t *testing.T) {
	in, err := ReadInput("48 01\t18")
	require.NoError(t, err)
	require.Equal(t, []byte{0x48, 0x01, 0x18}, in.Data)

	_, err = ReadInput("4g")
	require.ErrorContains(t, err, "invalid hex")

	_, err = ReadInput("@" + filepath.Join(t.TempDir(), "missing"))
	require.ErrorContains(t, err, "failed to read")
}

func TestDecodeAllStopsOnError(t *testing.T) {
	p := &printer{
		Config: config.Default(),
		Log:    zerolog.Nop(),
	}

	out, err := p.DecodeAll(context.Background(), []string{"90", "zz", "c3"})
	require.ErrorContains(t, err, "invalid hex")
	require.Nil(t, out)

	out, err = p.DecodeAll(context.Background(), []string{"90", "c3"})
	require.NoError(t, err)
	require.Len(t, out, 2)
	require.Contains(t, string(out[0]), "Nopd")
	require.Contains(t, string(out[1]), "Retnq")
}

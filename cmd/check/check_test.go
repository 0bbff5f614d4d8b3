// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package check

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"firefly-os.dev/x86dec/internal/config"
)

func TestCheck(t *testing.T) {
	tests := []struct {
		Name         string
		Bitness      int
		Code         []byte
		Instructions int
		Compared     int
	}{
		{
			Name:         "64-bit",
			Bitness:      64,
			Code:         []byte{0x90, 0x48, 0x01, 0x18, 0xf0, 0x90, 0xc3},
			Instructions: 4,
			Compared:     3,
		},
		{
			Name:    "32-bit",
			Bitness: 32,
			Code: []byte{
				0x8b, 0x05, 0x78, 0x56, 0x34, 0x12, // mov eax, [0x12345678]
				0x66, 0xb8, 0x34, 0x12,             // mov ax, 0x1234
				0x06,                               // push es
				0xeb, 0xfe,                         // jmp $
			},
			Instructions: 4,
			Compared:     4,
		},
		{
			Name:    "16-bit",
			Bitness: 16,
			Code: []byte{
				0x8b, 0x86, 0x34, 0x12, // mov ax, [bp+0x1234]
				0xb8, 0x34, 0x12,       // mov ax, 0x1234
			},
			Instructions: 2,
			Compared:     2,
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			cfg := &config.Config{Bitness: test.Bitness}
			res, err := Check(context.Background(), cfg, test.Code)
			require.NoError(t, err)
			require.Equal(t, test.Instructions, res.Instructions)
			require.Equal(t, test.Compared, res.Compared)
			require.Empty(t, res.Mismatches)
		})
	}
}

func TestCheckCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Check(ctx, config.Default(), []byte{0x90})
	require.ErrorIs(t, err, context.Canceled)
}

func TestMainFiles(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.bin")
	b := filepath.Join(dir, "b.bin")
	require.NoError(t, os.WriteFile(a, []byte{0x90, 0xc3}, 0644))
	require.NoError(t, os.WriteFile(b, []byte{0x48, 0x8b, 0x05, 0x10, 0x00, 0x00, 0x00}, 0644))

	var buf bytes.Buffer
	err := Main(context.Background(), &buf, []string{"-bitness", "64", a, b})
	require.NoError(t, err)
	require.Empty(t, buf.String())

	err = Main(context.Background(), &buf, []string{filepath.Join(dir, "missing.bin")})
	require.ErrorContains(t, err, "failed to read")
}

// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package codes

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"rsc.io/diff"

	"firefly-os.dev/x86dec/x86"
)

func TestFilter(t *testing.T) {
	require.Len(t, Filter("", ""), x86.NumCodes)
	require.Equal(t, []x86.Code{x86.Pause}, Filter("pause", ""))
	require.Equal(t, []x86.Code{x86.Cpuid}, Filter("", "cpuid"))

	for _, code := range Filter("vmovaps", "") {
		require.Equal(t, "vmovaps", code.Mnemonic())
	}

	require.Contains(t, Filter("VMOVAPS", ""), x86.EVEX_Vmovaps_VX_k1z_WX)
	require.Contains(t, Filter("", "ret"), x86.Retnq)
	require.Empty(t, Filter("no such instruction", ""))
}

func TestMainMatch(t *testing.T) {
	var buf bytes.Buffer
	err := Main(context.Background(), &buf, []string{"-match", "pause"})
	require.NoError(t, err)

	want := fmt.Sprintf("%5d  %-44s  %s\n", uint16(x86.Pause), "Pause", "pause")
	if got := buf.String(); got != want {
		t.Fatalf("Main():\n%s", diff.Format(got, want))
	}

	err = Main(context.Background(), &buf, []string{"-match", "no such instruction"})
	require.Error(t, err)
}

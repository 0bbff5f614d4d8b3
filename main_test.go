// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCommands(t *testing.T) {
	for _, name := range []string{"check", "codes", "decode"} {
		cmd := commandsMap[name]
		require.NotNil(t, cmd, name)
		require.Equal(t, name, cmd.Name)
		require.NotEmpty(t, cmd.Description)
	}

	require.Len(t, commandsNames, len(commandsMap))
}

func TestRegisterCommand(t *testing.T) {
	nop := func(ctx context.Context, w io.Writer, args []string) error { return nil }
	require.PanicsWithValue(t, "command decode already registered", func() {
		RegisterCommand("decode", "again", nop)
	})

	require.PanicsWithValue(t, "command nil registered with nil implementation", func() {
		RegisterCommand("nil", "missing", nil)
	})
}

// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package logging

import (
	"bytes"
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	log := New("decode", Options{Out: &buf})
	log.Debug().Msg("hidden")
	log.Info().Str("input", "a.bin").Int("instructions", 3).Msg("decoded")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "info", entry["level"])
	require.Equal(t, "decode", entry["command"])
	require.Equal(t, "a.bin", entry["input"])
	require.Equal(t, float64(3), entry["instructions"])
	require.Equal(t, "decoded", entry["message"])
	require.Contains(t, entry, "time")
}

func TestDebug(t *testing.T) {
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	var opts Options
	opts.RegisterFlags(set)
	require.NoError(t, set.Parse([]string{"-v"}))
	require.True(t, opts.Debug)

	var buf bytes.Buffer
	opts.Out = &buf
	log := New("check", opts)
	log.Debug().Msg("shown")
	require.Contains(t, buf.String(), `"level":"debug"`)
	require.Contains(t, buf.String(), `"message":"shown"`)
}

func TestIsTerminal(t *testing.T) {
	require.False(t, IsTerminal(&bytes.Buffer{}))

	f, err := os.Create(filepath.Join(t.TempDir(), "log"))
	require.NoError(t, err)
	defer f.Close()
	require.False(t, IsTerminal(f))
}

// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package config

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"firefly-os.dev/x86dec/x86"
)

func TestParse(t *testing.T) {
	tests := []struct {
		Name string
		Text string
		Want *Config
		Err  string
	}{
		{
			Name: "empty",
			Text: "",
			Want: &Config{Bitness: 64},
		},
		{
			Name: "full",
			Text: "bitness = 32\nip = 0x1000\noptions = [\"amd\", \"force_reserved_nop\"]\n",
			Want: &Config{Bitness: 32, IP: 0x1000, Options: []string{"amd", "force_reserved_nop"}},
		},
		{
			Name: "bad bitness",
			Text: "bitness = 8\n",
			Err:  "invalid bitness: 8",
		},
		{
			Name: "bad option",
			Text: "options = [\"cyrix\"]\n",
			Err:  `unknown decoder option "cyrix"`,
		},
		{
			Name: "unknown key",
			Text: "bitness = 16\nmode = \"real\"\n",
			Err:  "unknown keys: mode",
		},
		{
			Name: "syntax error",
			Text: "bitness = \n",
			Err:  "toml",
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			got, err := Parse([]byte(test.Text))
			if test.Err != "" {
				require.Error(t, err)
				require.Contains(t, err.Error(), test.Err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, test.Want, got)
		})
	}
}

func TestNewDecoder(t *testing.T) {
	cfg := &Config{Bitness: 64, IP: 0x401000, Options: []string{"no_pause"}}
	d, err := cfg.NewDecoder([]byte{0xf3, 0x90})
	require.NoError(t, err)
	require.Equal(t, x86.OptionNoPause, d.Options())
	require.Equal(t, uint64(0x401000), d.IP())

	instr := d.Decode()
	require.Equal(t, x86.Nopd, instr.Code())
	require.True(t, instr.HasRepPrefix())
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "x86dec.toml")
	err := os.WriteFile(name, []byte("bitness = 32\nip = 0x100\noptions = [\"amd\"]\n"), 0644)
	require.NoError(t, err)

	tests := []struct {
		Name string
		Args []string
		Want *Config
		Err  string
	}{
		{
			Name: "defaults",
			Args: nil,
			Want: &Config{Bitness: 64},
		},
		{
			Name: "flags only",
			Args: []string{"-bitness", "16", "-ip", "0x7c00", "-options", "amd, knc"},
			Want: &Config{Bitness: 16, IP: 0x7c00, Options: []string{"amd", "knc"}},
		},
		{
			Name: "file",
			Args: []string{"-config", name},
			Want: &Config{Bitness: 32, IP: 0x100, Options: []string{"amd"}},
		},
		{
			Name: "flags override the file",
			Args: []string{"-config", name, "-bitness", "64", "-options", ""},
			Want: &Config{Bitness: 64, IP: 0x100},
		},
		{
			Name: "missing file",
			Args: []string{"-config", filepath.Join(dir, "missing.toml")},
			Err:  "failed to read config",
		},
		{
			Name: "bad flag",
			Args: []string{"-bitness", "128"},
			Err:  "invalid bitness: 128",
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			set := flag.NewFlagSet("test", flag.ContinueOnError)
			set.SetOutput(io.Discard)
			var f Flags
			f.Register(set)
			require.NoError(t, set.Parse(test.Args))

			got, err := f.Resolve(set)
			if test.Err != "" {
				require.Error(t, err)
				require.Contains(t, err.Error(), test.Err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, test.Want, got)
		})
	}
}

func TestSplitOptions(t *testing.T) {
	require.Nil(t, SplitOptions(""))
	require.Nil(t, SplitOptions(" , "))
	require.Equal(t, []string{"amd", "mpx"}, SplitOptions("amd,,mpx,"))
}

func TestFlagsWithoutIP(t *testing.T) {
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	set.SetOutput(io.Discard)
	f := Flags{NoIP: true}
	f.Register(set)
	require.Nil(t, set.Lookup("ip"))
	require.Error(t, set.Parse([]string{"-ip", "1"}))
}

// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

// Package config loads the decoder settings shared
// by x86dec's commands.
//
// Settings can be stored in a TOML file:
//
//	bitness = 64
//	ip = 0x1000
//	options = ["amd", "force_reserved_nop"]
//
// Flags given on the command line override the
// values in the file.
package config

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"firefly-os.dev/x86dec/x86"
)

// DefaultBitness is used when neither a
// config file nor a flag sets the bitness.
const DefaultBitness = 64

// Config describes how to decode a stream
// of instructions.
type Config struct {
	Bitness int      `toml:"bitness"`
	IP      uint64   `toml:"ip"`
	Options []string `toml:"options"`
}

// Default returns the configuration used
// when no file is given.
func Default() *Config {
	return &Config{Bitness: DefaultBitness}
}

// Parse decodes a TOML configuration.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, err
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}

		sort.Strings(keys)
		return nil, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}

	err = cfg.Validate()
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// Load reads and parses the configuration
// file at name.
func Load(name string) (*Config, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", name, err)
	}

	return cfg, nil
}

// Validate checks that the bitness and
// the option names are valid.
func (c *Config) Validate() error {
	switch c.Bitness {
	case 16, 32, 64:
	default:
		return fmt.Errorf("%w: %d", x86.ErrInvalidBitness, c.Bitness)
	}

	_, err := c.DecoderOptions()
	return err
}

// DecoderOptions returns the named options
// as decoder flags.
func (c *Config) DecoderOptions() (x86.DecoderOptions, error) {
	return x86.ParseDecoderOptions(c.Options)
}

// NewDecoder returns a decoder for data
// using the configuration.
func (c *Config) NewDecoder(data []byte) (*x86.Decoder, error) {
	opts, err := c.DecoderOptions()
	if err != nil {
		return nil, err
	}

	d, err := x86.NewDecoder(c.Bitness, data, opts)
	if err != nil {
		return nil, err
	}

	d.SetIP(c.IP)

	return d, nil
}

// Flags holds the command-line flags that
// select and override a configuration.
type Flags struct {
	Path    string
	Bitness int
	IP      uint64
	Options string

	// NoIP omits the -ip flag, for
	// commands that do not print
	// addresses.
	NoIP bool
}

// Register adds the flags to set.
func (f *Flags) Register(set *flag.FlagSet) {
	set.StringVar(&f.Path, "config", "", "Read decoder settings from the TOML file `FILE`.")
	set.IntVar(&f.Bitness, "bitness", DefaultBitness, "Decode in `N`-bit mode (16, 32, or 64).")
	if !f.NoIP {
		set.Uint64Var(&f.IP, "ip", 0, "The address of the first instruction.")
	}

	set.StringVar(&f.Options, "options", "", "Comma-separated decoder options (for example amd,no_pause).")
}

// Resolve returns the configuration from
// the config file, if any, with any flags
// that were set in set applied on top.
// set must have been parsed.
func (f *Flags) Resolve(set *flag.FlagSet) (*Config, error) {
	cfg := Default()
	if f.Path != "" {
		var err error
		cfg, err = Load(f.Path)
		if err != nil {
			return nil, err
		}
	}

	set.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "bitness":
			cfg.Bitness = f.Bitness
		case "ip":
			cfg.IP = f.IP
		case "options":
			cfg.Options = SplitOptions(f.Options)
		}
	})

	err := cfg.Validate()
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// SplitOptions splits a comma-separated
// list of option names. Empty names are
// dropped.
func SplitOptions(s string) []string {
	var names []string
	for _, name := range strings.Split(s, ",") {
		name = strings.TrimSpace(name)
		if name != "" {
			names = append(names, name)
		}
	}

	return names
}

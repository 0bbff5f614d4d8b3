// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseDecoderOptions(t *testing.T) {
	tests := []struct {
		Name  string
		Names []string
		Want  DecoderOptions
		Err   error
	}{
		{
			Name: "empty",
			Want: OptionNone,
		},
		{
			Name:  "none",
			Names: []string{"none"},
			Want:  OptionNone,
		},
		{
			Name:  "single",
			Names: []string{"amd"},
			Want:  OptionAMD,
		},
		{
			Name:  "union",
			Names: []string{"knc", "no_pause", "mpx"},
			Want:  OptionKNC | OptionNoPause | OptionMPX,
		},
		{
			Name:  "case and dashes",
			Names: []string{" No-Invalid-Check ", "LOADALL286"},
			Want:  OptionNoInvalidCheck | OptionLoadall286,
		},
		{
			Name:  "unknown",
			Names: []string{"amd", "cyrix"},
			Err:   ErrUnknownOption,
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			got, err := ParseDecoderOptions(test.Names)
			if test.Err != nil {
				if !errors.Is(err, test.Err) {
					t.Fatalf("ParseDecoderOptions(%q): got error %v, want %v", test.Names, err, test.Err)
				}

				return
			}

			if err != nil {
				t.Fatalf("ParseDecoderOptions(%q): %v", test.Names, err)
			}

			if got != test.Want {
				t.Fatalf("ParseDecoderOptions(%q): got %v, want %v", test.Names, got, test.Want)
			}
		})
	}
}

func TestDecoderOptionsNames(t *testing.T) {
	opts := OptionAMD | OptionNoPause | OptionKNC
	want := []string{"amd", "knc", "no_pause"}
	if diff := cmp.Diff(want, opts.Names()); diff != "" {
		t.Fatalf("Names(): (-want, +got)\n%s", diff)
	}

	if got, want := opts.String(), "amd|knc|no_pause"; got != want {
		t.Fatalf("String(): got %q, want %q", got, want)
	}

	if got, want := OptionNone.String(), "none"; got != want {
		t.Fatalf("String(): got %q, want %q", got, want)
	}

	// Every option has a name that parses
	// back to it.
	for name, opt := range optionNames {
		got, err := ParseDecoderOptions([]string{name})
		if err != nil || got != opt {
			t.Errorf("ParseDecoderOptions(%q): got %v, %v, want %v", name, got, err, opt)
		}
	}

	var all DecoderOptions
	for _, opt := range optionNames {
		all |= opt
	}

	if want := OptionNoLahfSahf64<<1 - 1; all != want {
		t.Errorf("options without names: %b", want&^all)
	}
}

// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

// Package codes lists the instruction codes the decoder
// can produce.
package codes

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"firefly-os.dev/x86dec/x86"
)

var program = filepath.Base(os.Args[0])

// Main prints the codes whose names
// contain the given substring, with their
// numeric values.
func Main(ctx context.Context, w io.Writer, args []string) error {
	flags := flag.NewFlagSet("codes", flag.ExitOnError)

	var help bool
	var match, mnemonic string
	flags.BoolVar(&help, "h", false, "Show this message and exit.")
	flags.StringVar(&match, "match", "", "Only list codes whose names contain `SUBSTR` (ignoring case).")
	flags.StringVar(&mnemonic, "mnemonic", "", "Only list codes with the given mnemonic.")

	flags.Usage = func() {
		log.Printf("Usage:\n  %s %s [OPTIONS]\n\n", program, flags.Name())
		flags.PrintDefaults()
		os.Exit(2)
	}

	err := flags.Parse(args)
	if err != nil || help || flags.NArg() != 0 {
		flags.Usage()
	}

	codes := Filter(match, mnemonic)
	if len(codes) == 0 {
		return fmt.Errorf("no codes match %q", match+mnemonic)
	}

	for _, code := range codes {
		_, err = fmt.Fprintf(w, "%5d  %-44s  %s\n", uint16(code), code, code.Mnemonic())
		if err != nil {
			return err
		}
	}

	return nil
}

// Filter returns the codes whose names
// contain match, ignoring case, and whose
// mnemonic is mnemonic. Empty strings
// match every code.
func Filter(match, mnemonic string) []x86.Code {
	match = strings.ToLower(match)
	mnemonic = strings.ToLower(mnemonic)
	var codes []x86.Code
	for i := 0; i < x86.NumCodes; i++ {
		code := x86.Code(i)
		if match != "" && !strings.Contains(strings.ToLower(code.String()), match) {
			continue
		}

		if mnemonic != "" && code.Mnemonic() != mnemonic {
			continue
		}

		codes = append(codes, code)
	}

	return codes
}

// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

// Package check compares the instruction lengths found by
// the x86dec decoder with those found by x86asm.
package check

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"golang.org/x/arch/x86/x86asm"
	"golang.org/x/sync/errgroup"

	"firefly-os.dev/x86dec/internal/config"
	"firefly-os.dev/x86dec/internal/logging"
	"firefly-os.dev/x86dec/x86"
)

var program = filepath.Base(os.Args[0])

// ErrMismatch is returned when the two
// decoders disagree.
var ErrMismatch = errors.New("instruction lengths differ")

// Main checks each file and reports any
// instructions where the decoders disagree
// about the length.
func Main(ctx context.Context, w io.Writer, args []string) error {
	flags := flag.NewFlagSet("check", flag.ExitOnError)

	var help bool
	cfgFlags := config.Flags{NoIP: true}
	var logOpts logging.Options
	flags.BoolVar(&help, "h", false, "Show this message and exit.")
	cfgFlags.Register(flags)
	logOpts.RegisterFlags(flags)

	flags.Usage = func() {
		log.Printf("Usage:\n  %s %s [OPTIONS] FILE...\n\n", program, flags.Name())
		flags.PrintDefaults()
		os.Exit(2)
	}

	err := flags.Parse(args)
	if err != nil || help {
		flags.Usage()
	}

	filenames := flags.Args()
	if len(filenames) == 0 {
		flags.Usage()
	}

	cfg, err := cfgFlags.Resolve(flags)
	if err != nil {
		return err
	}

	logger := logging.New(flags.Name(), logOpts)
	ctx = logger.WithContext(ctx)

	results := make([]*Result, len(filenames))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, name := range filenames {
		i, name := i, name
		g.Go(func() error {
			data, err := os.ReadFile(name)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", name, err)
			}

			res, err := Check(ctx, cfg, data)
			if err != nil {
				return fmt.Errorf("failed to check %s: %w", name, err)
			}

			results[i] = res
			logger.Info().
				Str("file", name).
				Int("instructions", res.Instructions).
				Int("compared", res.Compared).
				Int("mismatches", len(res.Mismatches)).
				Msg("checked")

			return nil
		})
	}

	err = g.Wait()
	if err != nil {
		return err
	}

	var mismatches int
	for i, res := range results {
		for _, m := range res.Mismatches {
			fmt.Fprintf(w, "%s:%#x: % x: x86dec %d bytes (%s), x86asm %d bytes (%s)\n",
				filenames[i], m.Offset, m.Code, m.Length, m.Instruction, m.OracleLength, m.Oracle)
		}

		mismatches += len(res.Mismatches)
	}

	if mismatches > 0 {
		return fmt.Errorf("%w: %d mismatches", ErrMismatch, mismatches)
	}

	return nil
}

// Mismatch describes an instruction that
// the decoders disagree about.
type Mismatch struct {
	Offset       int
	Code         []byte
	Length       int
	Instruction  string
	OracleLength int
	Oracle       string
}

// Result summarises the check of one
// stream of machine code.
type Result struct {
	// Instructions is the number of
	// instructions decoded.
	Instructions int

	// Compared is the number that both
	// decoders could decode.
	Compared int

	Mismatches []Mismatch
}

// Check decodes data with both decoders,
// following x86dec's instruction
// boundaries. Instructions that either
// decoder rejects are not compared, as
// x86asm does not support every encoding.
func Check(ctx context.Context, cfg *config.Config, data []byte) (*Result, error) {
	d, err := cfg.NewDecoder(data)
	if err != nil {
		return nil, err
	}

	logger := zerolog.Ctx(ctx)
	res := new(Result)
	var instr x86.Instruction
	for d.CanDecode() {
		if res.Instructions%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		start := d.Position()
		d.DecodeOut(&instr)
		res.Instructions++
		if instr.IsInvalid() {
			continue
		}

		inst, err := x86asm.Decode(data[start:], d.Bitness())
		if err != nil {
			logger.Debug().Int("offset", start).Str("code", instr.String()).Err(err).Msg("x86asm cannot decode")
			continue
		}

		res.Compared++
		if inst.Len != instr.Length() {
			res.Mismatches = append(res.Mismatches, Mismatch{
				Offset:       start,
				Code:         data[start:d.Position()],
				Length:       instr.Length(),
				Instruction:  instr.String(),
				OracleLength: inst.Len,
				Oracle:       inst.String(),
			})
		}
	}

	return res, nil
}

// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

// Package decode decodes x86 machine code and prints
// the instructions.
package decode

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"firefly-os.dev/x86dec/internal/config"
	"firefly-os.dev/x86dec/internal/logging"
	"firefly-os.dev/x86dec/x86"
)

var program = filepath.Base(os.Args[0])

// Main decodes each input and prints the
// instructions it contains.
func Main(ctx context.Context, w io.Writer, args []string) error {
	flags := flag.NewFlagSet("decode", flag.ExitOnError)

	var help bool
	var p printer
	var cfgFlags config.Flags
	var logOpts logging.Options
	flags.BoolVar(&help, "h", false, "Show this message and exit.")
	flags.BoolVar(&p.JSON, "json", false, "Print each instruction as a JSON object.")
	flags.BoolVar(&p.Offsets, "offsets", false, "Print the offsets of each instruction's displacement and immediates.")
	flags.BoolVar(&p.Layout, "layout", false, "Print the prefix, opcode, and ModR/M fields of each instruction.")
	cfgFlags.Register(flags)
	logOpts.RegisterFlags(flags)

	flags.Usage = func() {
		log.Printf("Usage:\n  %s %s [OPTIONS] HEX|@FILE...\n\n", program, flags.Name())
		log.Printf("Each HEX argument is decoded as machine code. Each @FILE\n")
		log.Printf("argument names a file of raw machine code.\n\n")
		flags.PrintDefaults()
		os.Exit(2)
	}

	err := flags.Parse(args)
	if err != nil || help {
		flags.Usage()
	}

	inputs := flags.Args()
	if len(inputs) == 0 {
		flags.Usage()
	}

	cfg, err := cfgFlags.Resolve(flags)
	if err != nil {
		return err
	}

	p.Config = cfg
	p.Headers = len(inputs) > 1
	p.Log = logging.New(flags.Name(), logOpts)

	out, err := p.DecodeAll(ctx, inputs)
	if err != nil {
		return err
	}

	for _, b := range out {
		_, err = w.Write(b)
		if err != nil {
			return err
		}
	}

	return nil
}

// Input is a named piece of machine code.
type Input struct {
	Name string
	Data []byte
}

// ReadInput resolves a command-line
// argument. An argument starting with '@'
// names a file; anything else is hex, which
// may contain spaces.
func ReadInput(arg string) (Input, error) {
	if name, ok := strings.CutPrefix(arg, "@"); ok {
		data, err := os.ReadFile(name)
		if err != nil {
			return Input{}, fmt.Errorf("failed to read %s: %w", name, err)
		}

		return Input{Name: name, Data: data}, nil
	}

	text := strings.Join(strings.Fields(arg), "")
	data, err := hex.DecodeString(text)
	if err != nil {
		return Input{}, fmt.Errorf("invalid hex %q: %w", arg, err)
	}

	return Input{Name: arg, Data: data}, nil
}

type printer struct {
	Config  *config.Config
	Log     zerolog.Logger
	JSON    bool
	Offsets bool
	Layout  bool
	Headers bool
}

// DecodeAll decodes the inputs concurrently
// and returns the printed output for each,
// in argument order.
func (p *printer) DecodeAll(ctx context.Context, args []string) ([][]byte, error) {
	out := make([][]byte, len(args))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, arg := range args {
		i, arg := i, arg
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			in, err := ReadInput(arg)
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			err = p.Print(&buf, in)
			if err != nil {
				return err
			}

			out[i] = buf.Bytes()
			return nil
		})
	}

	err := g.Wait()
	if err != nil {
		return nil, err
	}

	return out, nil
}

// Print decodes in and writes the
// instructions to w.
func (p *printer) Print(w io.Writer, in Input) error {
	d, err := p.Config.NewDecoder(in.Data)
	if err != nil {
		return err
	}

	if p.Headers && !p.JSON {
		fmt.Fprintf(w, "%s:\n", in.Name)
	}

	enc := json.NewEncoder(w)
	width := d.Bitness() / 4
	var count, invalid int
	var instr x86.Instruction
	for d.CanDecode() {
		start := d.Position()
		d.DecodeOut(&instr)
		code := in.Data[start:d.Position()]
		count++
		if instr.IsInvalid() {
			invalid++
			p.Log.Debug().Str("input", in.Name).Hex("code", code).Uint64("ip", instr.IP()).Stringer("error", d.LastError()).Msg("invalid instruction")
		}

		if p.JSON {
			err = enc.Encode(p.jsonInstruction(d, in.Name, code, &instr))
			if err != nil {
				return err
			}

			continue
		}

		text := instr.String()
		if instr.IsInvalid() {
			text = fmt.Sprintf("%s (%s)", text, d.LastError())
		}

		if p.Offsets && !instr.IsInvalid() {
			if s := formatOffsets(d.ConstantOffsets(&instr)); s != "" {
				text += "  [" + s + "]"
			}
		}

		fmt.Fprintf(w, "%0*x  %-30s  %s\n", width, instr.IP(), fmt.Sprintf("% x", code), text)
		if p.Layout {
			if l := d.Layout(&instr); l != nil {
				for _, line := range l.Describe() {
					fmt.Fprintf(w, "\t%s\n", line)
				}
			}
		}
	}

	p.Log.Debug().Str("input", in.Name).Int("instructions", count).Int("invalid", invalid).Msg("decoded")

	return nil
}

func formatOffsets(c x86.ConstantOffsets) string {
	var parts []string
	if c.HasDisplacement() {
		parts = append(parts, fmt.Sprintf("displ %d:%d", c.DisplacementOffset, c.DisplacementSize))
	}

	if c.HasImmediate() {
		parts = append(parts, fmt.Sprintf("imm %d:%d", c.ImmediateOffset, c.ImmediateSize))
	}

	if c.HasImmediate2() {
		parts = append(parts, fmt.Sprintf("imm2 %d:%d", c.ImmediateOffset2, c.ImmediateSize2))
	}

	return strings.Join(parts, ", ")
}

type jsonOperand struct {
	Kind      string       `json:"kind"`
	Register  x86.Register `json:"register,omitempty"`
	Memory    *x86.Memory  `json:"memory,omitempty"`
	Immediate *uint64      `json:"immediate,omitempty"`
	Text      string       `json:"text"`
}

type jsonInstruction struct {
	Input    string               `json:"input"`
	IP       uint64               `json:"ip"`
	Bytes    string               `json:"bytes"`
	Code     string               `json:"code"`
	Mnemonic string               `json:"mnemonic,omitempty"`
	Error    string               `json:"error,omitempty"`
	Encoding string               `json:"encoding,omitempty"`
	Operands []jsonOperand        `json:"operands,omitempty"`
	OpMask   x86.Register         `json:"opmask,omitempty"`
	Prefixes []string             `json:"prefixes,omitempty"`
	Offsets  *x86.ConstantOffsets `json:"offsets,omitempty"`
	Layout   []string             `json:"layout,omitempty"`
}

func (p *printer) jsonInstruction(d *x86.Decoder, name string, code []byte, instr *x86.Instruction) *jsonInstruction {
	j := &jsonInstruction{
		Input: name,
		IP:    instr.IP(),
		Bytes: hex.EncodeToString(code),
		Code:  instr.Code().String(),
	}

	if instr.IsInvalid() {
		j.Error = d.LastError().String()
		return j
	}

	j.Mnemonic = instr.Mnemonic()
	j.Encoding = instr.Encoding().String()
	j.OpMask = instr.OpMask()
	for n := 0; n < instr.OpCount(); n++ {
		kind := instr.OpKind(n)
		op := jsonOperand{
			Kind: kind.String(),
			Text: instr.OperandString(n),
		}

		switch {
		case kind == x86.OpKindRegister:
			op.Register = instr.OpRegister(n)
		case kind == x86.OpKindMemory:
			m := instr.Memory()
			op.Memory = &m
		case kind.IsBranch():
			target := instr.NearBranchTarget()
			if kind == x86.OpKindFarBranch16 || kind == x86.OpKindFarBranch32 {
				target = uint64(instr.FarBranch32())
			}

			op.Immediate = &target
		default:
			if v, ok := instr.Immediate(n); ok {
				op.Immediate = &v
			}
		}

		j.Operands = append(j.Operands, op)
	}

	prefixes := []struct {
		ok   bool
		name string
	}{
		{instr.HasLockPrefix(), "lock"},
		{instr.HasXacquirePrefix(), "xacquire"},
		{instr.HasXreleasePrefix(), "xrelease"},
		{instr.HasRepPrefix(), "rep"},
		{instr.HasRepnePrefix(), "repne"},
	}

	for _, prefix := range prefixes {
		if prefix.ok {
			j.Prefixes = append(j.Prefixes, prefix.name)
		}
	}

	if seg := instr.SegmentPrefix(); seg != x86.NoRegister {
		j.Prefixes = append(j.Prefixes, seg.String())
	}

	if p.Offsets {
		c := d.ConstantOffsets(instr)
		j.Offsets = &c
	}

	if p.Layout {
		if l := d.Layout(instr); l != nil {
			j.Layout = l.Describe()
		}
	}

	return j
}

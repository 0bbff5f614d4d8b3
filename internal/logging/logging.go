// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

// Package logging sets up the structured logger used
// by x86dec's commands for diagnostics.
//
// Output goes to a human-readable console writer if
// it is a terminal and to JSON lines otherwise.
package logging

import (
	"flag"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// Options controls the logger returned by
// New.
type Options struct {
	// Debug enables debug messages.
	Debug bool

	// Out is where messages are written.
	// If nil, os.Stderr is used.
	Out io.Writer
}

// RegisterFlags adds the -v flag to set.
func (o *Options) RegisterFlags(set *flag.FlagSet) {
	set.BoolVar(&o.Debug, "v", false, "Print debug messages.")
}

// New returns a logger for the named
// command.
func New(command string, opts Options) zerolog.Logger {
	out := opts.Out
	if out == nil {
		out = os.Stderr
	}

	level := zerolog.InfoLevel
	if opts.Debug {
		level = zerolog.DebugLevel
	}

	var w io.Writer = out
	if IsTerminal(out) {
		w = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
	}

	return zerolog.New(w).Level(level).With().Timestamp().Str("command", command).Logger()
}

// IsTerminal reports whether w is a file
// attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}

// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

import (
	"fmt"
	"sort"
	"strings"
)

// DecoderOptions controls how a Decoder
// resolves encodings that differ between
// vendors or processor generations.
type DecoderOptions uint32

// OptionNone selects the default Intel
// behaviour.
const OptionNone DecoderOptions = 0

const (
	// OptionNoInvalidCheck disables the
	// structural #UD checks, such as a
	// LOCK prefix on an instruction that
	// cannot be locked or reserved bits in
	// an EVEX prefix. Truncated input is
	// still reported.
	OptionNoInvalidCheck DecoderOptions = 1 << iota

	// OptionAMD decodes instructions the
	// way AMD processors do where they
	// differ from Intel. Branches with an
	// operand size override in 64-bit mode
	// use a 16-bit target and LOCK MOV CR0
	// is MOV CR8.
	OptionAMD

	// OptionForceReservedNop decodes the
	// reserved-NOP space 0F 0D and 0F 18
	// to 0F 1F as reserved NOPs, even where
	// a newer instruction is defined.
	OptionForceReservedNop

	// OptionUmov decodes the 386/486 UMOV
	// instructions at 0F 10 to 0F 13.
	OptionUmov

	// OptionXbts decodes the 386 XBTS and
	// IBTS instructions at 0F A6 and 0F A7.
	OptionXbts

	// OptionCmpxchg486A decodes 0F A6 and
	// 0F A7 as the early 486 CMPXCHG.
	OptionCmpxchg486A

	// OptionOldFpu decodes the 287 and
	// 387SL only x87 instructions FSETPM,
	// FRSTPM, FSTDW, and FSTSG.
	OptionOldFpu

	// OptionPcommit decodes 66 0F AE F8 as
	// PCOMMIT.
	OptionPcommit

	// OptionLoadall286 decodes 0F 05 as
	// the 286 LOADALL in 16-bit and 32-bit
	// mode.
	OptionLoadall286

	// OptionLoadall386 decodes 0F 07 as
	// the 386 LOADALL in 16-bit and 32-bit
	// mode.
	OptionLoadall386

	// OptionCl1invmb decodes 0F 0A as
	// CL1INVMB.
	OptionCl1invmb

	// OptionMovTr decodes MOV to and from
	// the test registers at 0F 24 and
	// 0F 26.
	OptionMovTr

	// OptionJmpe decodes the IA-64 JMPE
	// instructions at 0F 00 /6 and 0F B8.
	OptionJmpe

	// OptionNoPause decodes F3 90 as NOP
	// with a REP prefix instead of PAUSE.
	OptionNoPause

	// OptionNoWbnoinvd decodes F3 0F 09 as
	// WBINVD instead of WBNOINVD.
	OptionNoWbnoinvd

	// OptionMPX decodes 0F 1A and 0F 1B as
	// the MPX bound instructions instead
	// of reserved NOPs.
	OptionMPX

	// OptionKNC enables the Knights Corner
	// MVEX encoding in 64-bit mode.
	OptionKNC

	// OptionNoMPFX0FBC decodes F3 0F BC as
	// BSF instead of TZCNT.
	OptionNoMPFX0FBC

	// OptionNoMPFX0FBD decodes F3 0F BD as
	// BSR instead of LZCNT.
	OptionNoMPFX0FBD

	// OptionNoLahfSahf64 makes LAHF and
	// SAHF invalid in 64-bit mode, as on
	// early 64-bit processors.
	OptionNoLahfSahf64
)

var optionNames = map[string]DecoderOptions{
	"none":               OptionNone,
	"no_invalid_check":   OptionNoInvalidCheck,
	"amd":                OptionAMD,
	"force_reserved_nop": OptionForceReservedNop,
	"umov":               OptionUmov,
	"xbts":               OptionXbts,
	"cmpxchg486a":        OptionCmpxchg486A,
	"old_fpu":            OptionOldFpu,
	"pcommit":            OptionPcommit,
	"loadall286":         OptionLoadall286,
	"loadall386":         OptionLoadall386,
	"cl1invmb":           OptionCl1invmb,
	"mov_tr":             OptionMovTr,
	"jmpe":               OptionJmpe,
	"no_pause":           OptionNoPause,
	"no_wbnoinvd":        OptionNoWbnoinvd,
	"mpx":                OptionMPX,
	"knc":                OptionKNC,
	"no_mpfx_0fbc":       OptionNoMPFX0FBC,
	"no_mpfx_0fbd":       OptionNoMPFX0FBD,
	"no_lahf_sahf_64":    OptionNoLahfSahf64,
}

// ParseDecoderOptions returns the union
// of the named options. Names are not
// case-sensitive and may use dashes in
// place of underscores.
func ParseDecoderOptions(names []string) (DecoderOptions, error) {
	var opts DecoderOptions
	for _, name := range names {
		key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
		opt, ok := optionNames[key]
		if !ok {
			return 0, fmt.Errorf("%w %q", ErrUnknownOption, name)
		}

		opts |= opt
	}

	return opts, nil
}

// Names returns the names of the options
// set in o, in sorted order.
func (o DecoderOptions) Names() []string {
	var names []string
	for name, opt := range optionNames {
		if opt != 0 && o&opt == opt {
			names = append(names, name)
		}
	}

	sort.Strings(names)

	return names
}

func (o DecoderOptions) String() string {
	if o == 0 {
		return "none"
	}

	return strings.Join(o.Names(), "|")
}

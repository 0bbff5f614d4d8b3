// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

import (
	"fmt"
	"strings"
)

// Memory represents an x86 memory
// reference, as decoded from a ModR/M
// byte, an optional SIB byte, and a
// displacement.
//
// Unused registers are NoRegister. The
// Segment is the explicit segment
// override prefix, if any.
type Memory struct {
	Segment      Register
	Base         Register
	Index        Register
	Scale        uint8
	Displacement int64
	DisplSize    uint8
	Broadcast    bool
}

// IsIPRelative returns whether the memory
// reference is relative to the address
// of the next instruction.
func (m *Memory) IsIPRelative() bool {
	return m.Base == RIP || m.Base == EIP
}

func (m *Memory) String() string {
	// See https://blog.yossarian.net/2020/06/13/How-x86-addresses-memory
	var terms []string
	if m.Segment != NoRegister {
		terms = append(terms, m.Segment.String())
	}
	if m.Base != NoRegister {
		terms = append(terms, m.Base.String())
	}
	if m.Index != NoRegister {
		if m.Scale > 1 {
			terms = append(terms, fmt.Sprintf("(* %s %d)", m.Index, m.Scale))
		} else {
			terms = append(terms, m.Index.String())
		}
	}
	if m.Displacement != 0 || len(terms) == 0 {
		terms = append(terms, fmt.Sprintf("%d", m.Displacement))
	}

	var s string
	switch {
	case len(terms) == 1:
		s = "(" + terms[0] + ")"
	case len(terms) == 2 && m.Segment != NoRegister && m.Index == NoRegister && (m.Base == NoRegister || m.Displacement == 0):
		s = "(" + terms[0] + " " + terms[1] + ")"
	default:
		s = "(+ " + strings.Join(terms, " ") + ")"
	}

	if m.Broadcast {
		s += "{bcst}"
	}

	return s
}

func (m *Memory) GoString() string {
	first := true
	var s strings.Builder
	join := func() {
		if !first {
			s.WriteString(", ")
		}

		first = false
	}

	s.WriteByte('{')
	if m.Segment != NoRegister {
		first = false
		fmt.Fprintf(&s, "Segment: %s", m.Segment)
	}
	if m.Base != NoRegister {
		join()
		fmt.Fprintf(&s, "Base: %s", m.Base)
	}
	if m.Index != NoRegister {
		join()
		fmt.Fprintf(&s, "Index: %s", m.Index)
	}
	if m.Scale > 1 {
		join()
		fmt.Fprintf(&s, "Scale: %d", m.Scale)
	}
	if m.Displacement != 0 || first {
		join()
		fmt.Fprintf(&s, "Displacement: %#x", m.Displacement)
	}
	if m.Broadcast {
		join()
		s.WriteString("Broadcast: true")
	}
	s.WriteByte('}')

	return s.String()
}

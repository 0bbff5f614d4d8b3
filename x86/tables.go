// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

// fillInvalid replaces the missing entries
// of a sparse opcode table with invalid.
func fillInvalid(table [256]*handler) [256]*handler {
	for i, h := range table {
		if h == nil {
			table[i] = invalid
		}
	}

	return table
}

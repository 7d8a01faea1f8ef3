// Copyright 2026 The sb2dot Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package profile

import "github.com/sektioneins/sb2dot/internal/bincur"

// OpEntry is one profile's operation table: its display name and the
// per-operation root node offsets (word-scaled).
type OpEntry struct {
	ProfileName string
	OpTable     []uint16
}

// readOpEntries reads either a single profile's op table (immediately
// following the header, at byte 6) or, for a collection, every entry's
// (profilename_offset, innerflags, op table) triple.
//
// The collection count lives at byte 6 (word index 3); the first entry
// starts at byte 8, a word later; the two are not the same offset, and
// that gap is preserved exactly rather than "fixed".
func readOpEntries(c *bincur.Cursor, h Header, opCount int, singleProfileName string) []OpEntry {
	if !h.IsCollection() {
		c.Seek(6)
		opTable := make([]uint16, opCount)
		for i := range opTable {
			opTable[i] = c.U16()
		}
		return []OpEntry{{ProfileName: singleProfileName, OpTable: opTable}}
	}

	c.Seek(6)
	count := c.U16()

	stride := 2 * (2 + opCount)
	entries := make([]OpEntry, count)
	for i := 0; i < int(count); i++ {
		c.Seek(8 + i*stride)
		profileNameOffset := c.U16()
		c.U16() // innerflags, unused

		opTable := make([]uint16, opCount)
		for j := range opTable {
			opTable[j] = c.U16()
		}

		name := string(c.ReadStringAt(profileNameOffset))
		entries[i] = OpEntry{ProfileName: name, OpTable: opTable}
	}
	return entries
}

// Group is one decision graph to emit: either the default operation or a
// set of operations that all share one non-default root offset.
type Group struct {
	Offset       uint16
	FilenamePart string
	Label        string
	Default      bool
}

// GroupOps groups the operation table: op index 0 is the default; every later index
// whose offset differs from the default is grouped with every other index
// sharing that same offset, in increasing op_idx order, and groups are
// returned in first-appearance order with the default group first.
func GroupOps(opTable []uint16, opNames []string) []Group {
	if len(opTable) == 0 {
		return nil
	}
	groups := []Group{{Offset: opTable[0], FilenamePart: "default", Label: "default", Default: true}}
	defaultOffset := opTable[0]

	var order []uint16
	seen := map[uint16]bool{}
	filenameParts := map[uint16]string{}
	labels := map[uint16]string{}

	for idx, off := range opTable {
		if idx == 0 || off == defaultOffset {
			continue
		}
		name := opNames[idx]
		if !seen[off] {
			seen[off] = true
			order = append(order, off)
			filenameParts[off] = name
			labels[off] = name
		} else {
			filenameParts[off] += " " + name
			labels[off] += "\n" + name
		}
	}

	for _, off := range order {
		groups = append(groups, Group{Offset: off, FilenamePart: filenameParts[off], Label: labels[off]})
	}
	return groups
}

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

import (
	"github.com/sektioneins/sb2dot/internal/bincur"
	"github.com/sektioneins/sb2dot/internal/regexvm"
	"github.com/sektioneins/sb2dot/internal/sblog"
)

// Undecodable is the placeholder stored for a regex-table slot whose
// automaton failed to reduce to a single pattern.
const Undecodable = "undecodable"

// decodeRegexTable reads h.RETableCount word offsets at h.RETableOffset,
// then disassembles and rewrites each into its reconstructed pattern
// string. A per-regex failure is logged and recorded as [Undecodable];
// it never aborts the rest of the table.
func decodeRegexTable(c *bincur.Cursor, h Header) []string {
	c.WordSeek(h.RETableOffset)
	offsets := make([]uint16, h.RETableCount)
	for i := range offsets {
		offsets[i] = c.U16()
	}

	table := make([]string, len(offsets))
	for i, off := range offsets {
		c.WordSeek(off)
		n := c.U32()
		raw := c.Read(int(n))

		pattern, err := regexvm.Decode(raw)
		if err != nil {
			sblog.L.Warn("regex disassembly failed", "index", i, "error", err)
			table[i] = Undecodable
			continue
		}
		table[i] = pattern
	}
	return table
}

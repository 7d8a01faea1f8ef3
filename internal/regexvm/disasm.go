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

package regexvm

import (
	"fmt"

	"github.com/sektioneins/sb2dot/internal/bincur"
)

// SupportedVersion is the only regex-program version this disassembler
// understands.
const SupportedVersion = 3

const (
	kindBranch uint16 = 0x2f
	kindJump   uint16 = 0x0a
	kindAccept uint16 = 0x15
	kindBypass uint16 = 0x31
)

// ErrUnsupportedVersion is returned when a regex blob's version prefix is
// not [SupportedVersion].
type ErrUnsupportedVersion struct{ Version uint32 }

func (e *ErrUnsupportedVersion) Error() string {
	return fmt.Sprintf("regexvm: unsupported regex program version %d", e.Version)
}

// ErrIllegalOpcode is returned when the opcode stream contains a byte the
// disassembler does not recognize.
type ErrIllegalOpcode struct {
	Index  int
	Opcode byte
}

func (e *ErrIllegalOpcode) Error() string {
	return fmt.Sprintf("regexvm: illegal opcode %#x at program index %d", e.Opcode, e.Index)
}

// disassemble decodes a regex bytecode program (everything after the 6-byte
// version+length prefix) into a labelled graph, one opcode at a time.
// idx is always program-relative, matching the node IDs the rewriter
// in rewrite.go later manipulates.
func disassemble(program []byte, mlen int) (*Graph, error) {
	g := NewGraph()
	c := bincur.New(program)

	for c.Pos() < mlen {
		idx := c.Pos()
		typ := uint16(c.U8())
		if typ&0xf == 0x0a {
			typ = 0x0a
		}

		switch {
		case typ == kindBranch:
			target := int(c.U16())
			g.SetTag(idx, kindBranch, "")
			g.AddEdge(idx, target)
			g.AddEdge(idx, idx+3)

		case typ == kindJump:
			target := int(c.U16())
			g.SetTag(idx, kindJump, "")
			g.AddEdge(idx, target)

		case typ == kindAccept:
			c.Read(1)
			g.SetTag(idx, kindAccept, "")

		case typ == 0x19:
			g.SetTag(idx, KindPattern, "^")
			g.AddEdge(idx, idx+1)

		case typ == 0x29:
			g.SetTag(idx, KindPattern, "$")
			g.AddEdge(idx, idx+1)

		case typ == 0x02:
			ch := c.U8()
			g.SetTag(idx, KindPattern, escapeByte(ch))
			g.AddEdge(idx, idx+2)

		case typ == 0x09:
			g.SetTag(idx, KindPattern, ".")
			g.AddEdge(idx, idx+1)

		case typ&0xf == 0x0b:
			cnt := int(typ >> 4)
			var mask CharMask
			for i := 0; i < cnt; i++ {
				from := c.U8()
				to := c.U8()
				mask.AddFromTo(from, to)
			}
			g.SetTag(idx, KindPattern, mask.String())
			g.AddEdge(idx, idx+1+cnt*2)

		default:
			return nil, &ErrIllegalOpcode{Index: idx, Opcode: byte(typ)}
		}
	}

	return g, nil
}

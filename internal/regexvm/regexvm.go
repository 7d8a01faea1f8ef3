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
	"errors"
	"fmt"

	"github.com/sektioneins/sb2dot/internal/bincur"
)

// ErrUndecodable means the graph did not reduce to a single pattern node.
var ErrUndecodable = errors.New("regexvm: did not reduce to a single pattern node")

// Decode takes one regex-table entry's blob (a big-endian u32 version, a
// little-endian u16 program length, then that many bytes of opcodes) and
// returns the reconstructed pattern string. A non-nil error means the
// caller should record this slot as undecodable and continue; none of
// the error conditions here are fatal to the enclosing profile decode.
func Decode(blob []byte) (pattern string, err error) {
	defer func() {
		if r := recover(); r != nil {
			if pe, ok := r.(error); ok {
				err = fmt.Errorf("regexvm: %w", pe)
				return
			}
			panic(r)
		}
	}()

	c := bincur.New(blob)
	version := c.RegexVersionU32()
	if version != SupportedVersion {
		return "", &ErrUnsupportedVersion{Version: version}
	}
	mlen := int(c.U16())

	program := blob[6:]
	g, err := disassemble(program, mlen)
	if err != nil {
		return "", err
	}

	reduce(g)

	if g.Len() != 1 {
		return "", ErrUndecodable
	}
	ids := g.SortedIDs()
	n := g.Node(ids[0])
	if !n.Tagged || n.Kind != KindPattern {
		return "", ErrUndecodable
	}
	return n.Payload, nil
}

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

package decision

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sektioneins/sb2dot/internal/bincur"
	"github.com/sektioneins/sb2dot/internal/filter"
)

// node8 appends an 8-byte non-terminal node: 0x00, filter, filter_arg,
// match_word, unmatch_word.
func node8(buf []byte, filterID uint8, filterArg, matchWord, unmatchWord uint16) []byte {
	n := make([]byte, 8)
	n[0] = 0
	n[1] = filterID
	binary.LittleEndian.PutUint16(n[2:], filterArg)
	binary.LittleEndian.PutUint16(n[4:], matchWord)
	binary.LittleEndian.PutUint16(n[6:], unmatchWord)
	return append(buf, n...)
}

// terminal8 appends an 8-byte terminal node: 0x01, pad, result, then 4
// bytes of filler so every node in the test blob is a clean 8-byte slot.
func terminal8(buf []byte, result uint16) []byte {
	n := make([]byte, 8)
	n[0] = 1
	binary.LittleEndian.PutUint16(n[2:], result)
	return append(buf, n...)
}

func TestParseSimpleNonTerminal(t *testing.T) {
	// word 0: non-terminal xattr filter, match -> word 1 (allow), unmatch -> word 2 (deny)
	var blob []byte
	blob = node8(blob, uint8(filter.KindXattr), 7, 1, 2)
	blob = terminal8(blob, 0) // allow
	blob = terminal8(blob, 1) // deny

	c := bincur.New(blob)
	g := NewGraph()
	Parse(g, c, nil, 0)

	root, ok := g.Node(0)
	require.True(t, ok)
	assert.False(t, root.Terminal)
	assert.Equal(t, "(xattr 7)", root.Tag.String())
	assert.Equal(t, []int{8, 16}, root.Edges())

	matchNode, ok := g.Node(8)
	require.True(t, ok)
	assert.Equal(t, "allow", matchNode.Tag.String())

	unmatchNode, ok := g.Node(16)
	require.True(t, ok)
	assert.Equal(t, "deny", unmatchNode.Tag.String())
}

func TestParseMemoizesSharedSubDAG(t *testing.T) {
	// Two non-terminals (word 0, word 1) both route their unmatch edge to
	// the same shared terminal at word 2; match routes to distinct
	// terminals at words 3 and 4. Node at word 2 must be visited once.
	var blob []byte
	blob = node8(blob, uint8(filter.KindXattr), 1, 3, 2)
	blob = node8(blob, uint8(filter.KindXattr), 2, 4, 2)
	blob = terminal8(blob, 1) // shared deny
	blob = terminal8(blob, 0) // allow A
	blob = terminal8(blob, 0) // allow B

	c := bincur.New(blob)
	g := NewGraph()
	Parse(g, c, nil, 0)
	Parse(g, c, nil, 1)

	shared, ok := g.Node(16)
	require.True(t, ok)
	assert.Equal(t, "deny", shared.Tag.String())
	assert.Equal(t, 5, len(g.nodes))
}

func TestNodeEdgesNilForTerminal(t *testing.T) {
	n := &Node{Offset: 0, Terminal: true, Tag: filter.NewTerminal(0)}
	assert.Nil(t, n.Edges())
}

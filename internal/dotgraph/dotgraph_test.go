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

package dotgraph

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sektioneins/sb2dot/internal/bincur"
	"github.com/sektioneins/sb2dot/internal/decision"
	"github.com/sektioneins/sb2dot/internal/filter"
)

func buildTrivialGraph() (*decision.Graph, uint16) {
	// word 1: non-terminal (the root), word 2: allow terminal, word 3: deny terminal.
	blob := make([]byte, 32)
	blob[8] = 0
	blob[9] = uint8(filter.KindXattr)
	blob[10] = 9 // filter_arg
	blob[12] = 2 // match word
	blob[14] = 3 // unmatch word
	blob[16] = 1 // terminal marker at word 2 (allow)
	blob[24] = 1 // terminal marker at word 3
	blob[26] = 1 // deny (bit 0 set)

	g := decision.NewGraph()
	c := bincur.New(blob)
	decision.Parse(g, c, nil, 1)
	return g, 1
}

func TestWriteProducesExpectedFile(t *testing.T) {
	g, root := buildTrivialGraph()
	dir := t.TempDir()

	path, err := Write(dir, g, root, "default", "default", "/tmp/profiles/sandbox.sb")
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	s := string(content)

	assert.Contains(t, s, "digraph sandbox_decision")
	assert.Contains(t, s, `n0 [label="default";shape="doubleoctagon"];`)
	assert.Contains(t, s, "n0 -> n8 [color=\"black\"];")
	assert.Contains(t, s, `n8 [label="(xattr 9)"];`)
	assert.Contains(t, s, "color=\"green\"")
	assert.Contains(t, s, "color=\"red\"")
	assert.Contains(t, path, "sandbox.sb_default.dot")
}

func TestSanitizeFilenamePart(t *testing.T) {
	assert.Equal(t, "a_b_c", sanitizeFilenamePart("a b*c"))
	long := make([]byte, 200)
	for i := range long {
		long[i] = 'x'
	}
	assert.Equal(t, 128, len(sanitizeFilenamePart(string(long))))
}

func TestSanitizeLabelEscapes(t *testing.T) {
	assert.Equal(t, `a\\b\"c`, sanitizeLabel(`a\b"c`+"\x00"))
}

func TestWriteSkipsOversizedGraph(t *testing.T) {
	g, root := buildTrivialGraph() // 3 nodes
	dir := t.TempDir()

	old := MaxDecisionNodes
	MaxDecisionNodes = 2
	defer func() { MaxDecisionNodes = old }()

	path, err := Write(dir, g, root, "default", "default", "sandbox.sb")
	require.True(t, errors.Is(err, ErrGraphTooLarge))
	assert.Empty(t, path)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

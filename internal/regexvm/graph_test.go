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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddEdgeCreatesPlaceholderNodes(t *testing.T) {
	g := NewGraph()
	g.AddEdge(0, 1)
	require.NotNil(t, g.Node(0))
	require.NotNil(t, g.Node(1))
	assert.False(t, g.Node(1).Tagged)
	assert.Equal(t, []int{1}, g.Node(0).Out)
	assert.Equal(t, []int{0}, g.Node(1).In)
}

func TestMergeIfPossibleRejectsSharedPredecessor(t *testing.T) {
	g := NewGraph()
	g.SetTag(0, KindPattern, "a")
	g.SetTag(1, KindPattern, "b")
	g.SetTag(2, KindPattern, "c")
	g.AddEdge(0, 1)
	g.AddEdge(2, 1) // node 1 now has two predecessors

	assert.False(t, g.MergeIfPossible(0, 1))
}

func TestMergeIfPossibleRejectsUntagged(t *testing.T) {
	g := NewGraph()
	g.SetTag(0, KindPattern, "a")
	g.AddEdge(0, 1) // 1 left untagged

	assert.False(t, g.MergeIfPossible(0, 1))
}

func TestMergeIfPossibleAllowsMixedJumpAndPattern(t *testing.T) {
	g := NewGraph()
	g.SetTag(0, kindJump, "")
	g.SetTag(1, KindPattern, "x")
	g.AddEdge(0, 1)

	require.True(t, g.MergeIfPossible(0, 1))
	n := g.Node(0)
	assert.Equal(t, KindPattern, n.Kind)
	assert.Equal(t, "x", n.Payload)
	assert.Nil(t, g.Node(1))
}

func TestRemoveNodeDetachesNeighbors(t *testing.T) {
	g := NewGraph()
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.RemoveNode(1)

	assert.Nil(t, g.Node(1))
	assert.NotContains(t, g.Node(0).Out, 1)
	assert.NotContains(t, g.Node(2).In, 1)
}

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

// Package decision builds the per-operation filter decision DAG:
// walking from an operation's root byte offset, materializing one node per
// reachable filter offset and memoizing so shared sub-DAGs are visited once.
package decision

import (
	"github.com/sektioneins/sb2dot/internal/bincur"
	"github.com/sektioneins/sb2dot/internal/filter"
)

// Tag is whatever a node's label renders as: a [filter.Terminal] value or a
// *[filter.Filter].
type Tag interface {
	String() string
}

// Node is one decision-DAG vertex, keyed by its byte offset in the profile
// blob. Terminals have no outgoing edges; non-terminals have exactly two,
// match first and unmatch second.
type Node struct {
	Offset   int
	Tag      Tag
	Terminal bool
	Match    int
	Unmatch  int
}

// Edges returns this node's (match, unmatch) successors, or nil for a
// terminal.
func (n *Node) Edges() []int {
	if n.Terminal {
		return nil
	}
	return []int{n.Match, n.Unmatch}
}

// Graph is the set of nodes reachable from one or more roots, shared across
// every operation parsed against the same profile (the source format lets
// operations share terminals and subtrees).
type Graph struct {
	nodes map[int]*Node
}

// NewGraph returns an empty decision graph.
func NewGraph() *Graph {
	return &Graph{nodes: map[int]*Node{}}
}

// Node looks up a previously-tagged offset.
func (g *Graph) Node(offset int) (*Node, bool) {
	n, ok := g.nodes[offset]
	return n, ok
}

// Parse walks the decision DAG rooted at rootWord (a word-scaled offset,
// per the operation table) and adds every reachable node to g. Calling
// Parse again with an offset already present is a no-op at that node; the
// memoization contract that makes shared roots across operations, and
// cycles if the format ever produces one, safe.
func Parse(g *Graph, c *bincur.Cursor, regexTable []string, rootWord uint16) {
	parseFilterNode(g, c, regexTable, int(rootWord)*8)
}

func parseFilterNode(g *Graph, c *bincur.Cursor, regexTable []string, offset int) {
	if _, ok := g.nodes[offset]; ok {
		return
	}

	c.Seek(offset)
	isTerminal := c.U8() == 1

	if isTerminal {
		c.U8() // padding
		result := c.U16()
		t := filter.NewTerminal(result)
		g.nodes[offset] = &Node{Offset: offset, Tag: t, Terminal: true}
		return
	}

	filterID := c.U8()
	filterArg := c.U16()
	match := c.U16()
	unmatch := c.U16()

	f := filter.Decode(c, regexTable, filterID, filterArg)
	n := &Node{
		Offset:  offset,
		Tag:     f,
		Match:   int(match) * 8,
		Unmatch: int(unmatch) * 8,
	}
	g.nodes[offset] = n

	parseFilterNode(g, c, regexTable, n.Match)
	parseFilterNode(g, c, regexTable, n.Unmatch)
}

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

// Package regexvm lifts a compiled regex opcode program into a labelled
// graph and reduces that graph, by graph rewriting, to a single
// reconstructed pattern string.
package regexvm

import "sort"

// KindPattern is the synthesized "pattern" tag kind the rewriter works
// towards: a single remaining node of this kind holds the final
// reconstructed regex string.
const KindPattern uint16 = 0x100

// Node is one vertex of a regex automaton graph, keyed by the byte index of
// the opcode it was built from (or, for synthesized pattern nodes produced
// by the rewriter, the index of whichever node absorbed the others).
//
// Out and In are edge sets represented as small de-duplicated slices; the
// graphs this package works with rarely exceed a few dozen nodes, so a
// linear scan beats the bookkeeping of a real set type.
type Node struct {
	ID      int
	Tagged  bool
	Kind    uint16
	Payload string
	Out     []int
	In      []int
}

// Graph is a mutable, arena-like collection of [Node]s addressed by ID. Its
// edges double as an adjacency structure for both directions, matching the
// `edges`/`redges` pair the format was originally decoded with, so the
// rewrite rules in rewrite.go can be transcribed directly as edge and
// tag manipulations.
type Graph struct {
	nodes map[int]*Node
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{nodes: make(map[int]*Node)}
}

// Len reports the number of live nodes.
func (g *Graph) Len() int { return len(g.nodes) }

// Node returns the node for id, or nil if absent.
func (g *Graph) Node(id int) *Node { return g.nodes[id] }

// SortedIDs returns live node IDs in ascending order, for deterministic
// iteration during rule application.
func (g *Graph) SortedIDs() []int {
	ids := make([]int, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

func (g *Graph) ensure(id int) *Node {
	n, ok := g.nodes[id]
	if !ok {
		n = &Node{ID: id}
		g.nodes[id] = n
	}
	return n
}

func containsInt(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

func appendSet(s []int, v int) []int {
	if containsInt(s, v) {
		return s
	}
	return append(s, v)
}

func removeInt(s []int, v int) []int {
	out := s[:0]
	for _, x := range s {
		if x != v {
			out = append(out, x)
		}
	}
	return out
}

// setEqual compares two edge sets ignoring order.
func setEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for _, x := range a {
		if !containsInt(b, x) {
			return false
		}
	}
	return true
}

// AddEdge adds the edge u->v, creating placeholder (untagged) nodes for
// either endpoint that does not exist yet. This mirrors the source format's
// behavior of recording every opcode-referenced offset as a graph node even
// before (or without) that offset ever being visited and tagged, a
// dangling forward reference leaves a permanently-untagged node that the
// rewriter can never fully absorb, which is exactly how a malformed or
// truncated regex program fails to reduce to one node.
func (g *Graph) AddEdge(u, v int) {
	un := g.ensure(u)
	g.ensure(v)
	un.Out = appendSet(un.Out, v)
	vn := g.nodes[v]
	vn.In = appendSet(vn.In, u)
}

// RemoveEdge removes the edge u->v, if present.
func (g *Graph) RemoveEdge(u, v int) {
	if un, ok := g.nodes[u]; ok {
		un.Out = removeInt(un.Out, v)
	}
	if vn, ok := g.nodes[v]; ok {
		vn.In = removeInt(vn.In, u)
	}
}

// RemoveNode deletes id and detaches it from every neighbor's edge set.
func (g *Graph) RemoveNode(id int) {
	n, ok := g.nodes[id]
	if !ok {
		return
	}
	for _, p := range n.In {
		if pn, ok := g.nodes[p]; ok {
			pn.Out = removeInt(pn.Out, id)
		}
	}
	for _, s := range n.Out {
		if sn, ok := g.nodes[s]; ok {
			sn.In = removeInt(sn.In, id)
		}
	}
	delete(g.nodes, id)
}

// SetTag tags id, creating it if necessary.
func (g *Graph) SetTag(id int, kind uint16, payload string) {
	n := g.ensure(id)
	n.Tagged = true
	n.Kind = kind
	n.Payload = payload
}

// isRE reports whether a node is one of the two kinds the merge rule is
// allowed to absorb: a synthesized pattern node, or a plain jump.
func isRE(n *Node) bool {
	return n.Tagged && (n.Kind == KindPattern || n.Kind == kindJump)
}

// MergeIfPossible merges adjacent atoms: if u->v is the only edge into v,
// and both u and v are pattern or jump nodes, v's payload (empty for a jump)
// is appended to u's, v's out-edges are absorbed into u, and v is deleted.
func (g *Graph) MergeIfPossible(u, v int) bool {
	un, uok := g.nodes[u]
	vn, vok := g.nodes[v]
	if !uok || !vok {
		return false
	}
	if !containsInt(un.Out, v) {
		return false
	}
	if !(len(vn.In) == 1 && vn.In[0] == u) {
		return false
	}
	if !un.Tagged || !vn.Tagged {
		return false
	}
	if !isRE(un) || !isRE(vn) {
		return false
	}

	for _, s := range append([]int(nil), vn.Out...) {
		un.Out = appendSet(un.Out, s)
		if sn, ok := g.nodes[s]; ok {
			sn.In = removeInt(sn.In, v)
			sn.In = appendSet(sn.In, u)
		}
	}

	delete(g.nodes, v)
	un.Out = removeInt(un.Out, v)

	s1, s2 := un.Payload, vn.Payload
	un.Kind = KindPattern
	un.Payload = s1 + s2
	return true
}

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

// eliminateDummyEdges is the dummy-edge-elimination pre-pass: every
// node tagged 0x2f with a successor tagged 0x0a has that successor's own
// out-edges redirected onto it, and the 0x0a node is then dropped. All
// redirections are computed before any node is removed, so two branch nodes
// sharing the same jump target both see it.
func eliminateDummyEdges(g *Graph) {
	toRemove := map[int]bool{}
	for _, u := range g.SortedIDs() {
		un := g.Node(u)
		if un == nil || !un.Tagged || un.Kind != kindBranch {
			continue
		}
		for _, v := range append([]int(nil), un.Out...) {
			vn := g.Node(v)
			if vn == nil || !vn.Tagged || vn.Kind != kindJump {
				continue
			}
			for _, e := range append([]int(nil), vn.Out...) {
				g.AddEdge(u, e)
			}
			toRemove[v] = true
		}
	}
	for v := range toRemove {
		g.RemoveNode(v)
	}
}

// tryStarPlus implements rule 3 for one of u's two successors. It returns
// true if it rewrote the graph.
func tryStarPlus(g *Graph, u, v int) bool {
	vn := g.Node(v)
	if vn == nil || !vn.Tagged || vn.Kind != KindPattern {
		return false
	}

	// Star: v's only neighbor in either direction is u, i.e. v is a
	// self-contained loop hanging off u.
	if setEqual(vn.Out, []int{u}) && setEqual(vn.In, []int{u}) {
		payload := vn.Payload
		g.RemoveEdge(u, v)
		g.RemoveNode(v)
		g.SetTag(u, KindPattern, "("+payload+")*")
		return true
	}

	// Plus: v loops back to u, and u is one of exactly two predecessors of
	// v (the other being the node that first enters the loop).
	if containsInt(vn.Out, u) && len(vn.In) == 2 && containsInt(vn.In, u) {
		var entry int
		for _, p := range vn.In {
			if p != u {
				entry = p
			}
		}
		payload := vn.Payload
		g.RemoveEdge(entry, v)
		g.RemoveEdge(u, v)
		g.RemoveNode(v)
		g.AddEdge(entry, u)
		g.SetTag(u, KindPattern, "("+payload+")+")
		return true
	}

	return false
}

// tryAlternation implements rule 4: u is a branch with two successors, both
// pattern nodes, whose out-sets agree and contain at most one shared join.
func tryAlternation(g *Graph, u, left, right int) bool {
	ln, rn := g.Node(left), g.Node(right)
	if ln == nil || rn == nil || !ln.Tagged || !rn.Tagged {
		return false
	}
	if ln.Kind != KindPattern || rn.Kind != KindPattern {
		return false
	}
	if len(ln.Out) > 1 || len(rn.Out) > 1 || !setEqual(ln.Out, rn.Out) {
		return false
	}

	join := -1
	if len(ln.Out) == 1 {
		join = ln.Out[0]
	}
	lp, rp := ln.Payload, rn.Payload
	g.RemoveEdge(u, left)
	g.RemoveEdge(u, right)
	if join >= 0 {
		g.AddEdge(u, join)
	}
	g.RemoveNode(left)
	g.RemoveNode(right)
	g.SetTag(u, KindPattern, "("+lp+"|"+rp+")")
	return true
}

// tryOptional implements rule 5, tried in both successor orderings: v_a is
// a pattern node whose single out-edge reaches the other successor v_b,
// which must itself be tagged (any kind).
func tryOptional(g *Graph, u, a, b int) bool {
	an, bn := g.Node(a), g.Node(b)
	if an == nil || bn == nil || !an.Tagged || an.Kind != KindPattern || !bn.Tagged {
		return false
	}
	if !(len(an.Out) == 1 && an.Out[0] == b) {
		return false
	}
	payload := an.Payload
	g.RemoveEdge(u, a)
	g.RemoveEdge(u, b)
	g.AddEdge(u, b)
	g.RemoveNode(a)
	g.SetTag(u, KindPattern, "("+payload+")?")
	return true
}

// tryBypass implements rule 6: a node tagged 0x31 is transparent; every
// (predecessor, successor) pair is directly connected and the node itself
// is dropped.
func tryBypass(g *Graph, u int) bool {
	un := g.Node(u)
	if un == nil || !un.Tagged || un.Kind != kindBypass {
		return false
	}
	outs := append([]int(nil), un.Out...)
	ins := append([]int(nil), un.In...)
	for _, s := range outs {
		for _, p := range ins {
			g.AddEdge(p, s)
		}
	}
	g.RemoveNode(u)
	return true
}

// applyRules performs one scan over the graph, applying the first matching
// rule it finds (in a fixed order) and reporting whether
// anything changed. The caller re-scans from scratch after any hit.
func applyRules(g *Graph) bool {
	for _, u := range g.SortedIDs() {
		un := g.Node(u)
		if un == nil {
			continue
		}

		if un.Tagged && un.Kind == kindAccept {
			g.RemoveNode(u)
			return true
		}

		if un.Tagged && un.Kind == kindBranch && len(un.Out) == 2 {
			left, right := un.Out[0], un.Out[1]

			if tryStarPlus(g, u, left) {
				return true
			}
			if tryStarPlus(g, u, right) {
				return true
			}
			if tryAlternation(g, u, left, right) {
				return true
			}
			if tryOptional(g, u, left, right) {
				return true
			}
			if tryOptional(g, u, right, left) {
				return true
			}
		}

		if tryBypass(g, u) {
			return true
		}

		for _, v := range append([]int(nil), un.Out...) {
			if g.MergeIfPossible(u, v) {
				return true
			}
		}
	}
	return false
}

// reduce runs the merge-only fixed point followed by the full rule fixed
// point, mirroring the two-stage loop structure of the original rewriter:
// a first pass that only ever coalesces adjacent atoms, then a richer pass
// that also folds in loops, alternation, optional and bypass.
func reduce(g *Graph) {
	eliminateDummyEdges(g)

	for {
		applied := false
		for _, u := range g.SortedIDs() {
			un := g.Node(u)
			if un == nil {
				continue
			}
			for _, v := range append([]int(nil), un.Out...) {
				if g.MergeIfPossible(u, v) {
					applied = true
					break
				}
			}
			if applied {
				break
			}
		}
		if !applied {
			break
		}
	}

	for applyRules(g) {
	}
}

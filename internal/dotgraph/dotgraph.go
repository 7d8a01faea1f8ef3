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

// Package dotgraph renders a [decision.Graph] as a Graphviz DOT file.
// It only reads a decision graph's node tags and edges; it never builds or
// mutates one.
package dotgraph

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sektioneins/sb2dot/internal/decision"
	"github.com/sektioneins/sb2dot/internal/sblog"
)

// MaxDecisionNodes bounds how large a decision DAG this package will walk
// before giving up; a pathological regex/filter graph should not be allowed
// to produce an unbounded DOT file.
var MaxDecisionNodes = 20000

// ErrGraphTooLarge is returned by [Write] when a decision graph exceeds
// [MaxDecisionNodes]. The condition is logged and no file is written; the
// caller is expected to skip the group and carry on, not abort the run.
var ErrGraphTooLarge = errors.New("dotgraph: decision graph too large")

func sanitizeLabel(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "\x00", "")
	return s
}

// sanitizeFilenamePart truncates to 128 bytes, strips '*', and turns spaces
// into underscores, matching the original dumper's filename construction.
func sanitizeFilenamePart(s string) string {
	if len(s) > 128 {
		s = s[:128]
	}
	s = strings.ReplaceAll(s, "*", "")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}

// Write renders the decision graph rooted at rootWordOffset into a .dot
// file under dir, named "<basename(profilePath)>_<sanitized filenamePart>.dot".
// label is the multi-line group label shown on the graph and the synthetic
// root node; filenamePart is the (possibly space-joined) group name used in
// the output filename.
func Write(dir string, g *decision.Graph, rootWordOffset uint16, filenamePart, label, profilePath string) (string, error) {
	rootOffset := int(rootWordOffset) * 8

	cleanLabel := sanitizeLabel(label)
	profileName := sanitizeLabel(filepath.Base(profilePath))

	fileName := profileName + "_" + sanitizeFilenamePart(filenamePart) + ".dot"
	outPath := filepath.Join(dir, fileName)

	var b strings.Builder
	fmt.Fprintf(&b, "digraph sandbox_decision { rankdir=HR; labelloc=\"t\";label=\"sandbox decision graph for\n\n%s\n\nextracted from %s\n\n\n\"; \n", cleanLabel, profileName)
	fmt.Fprintf(&b, "n0 [label=\"%s\";shape=\"doubleoctagon\"];\n", cleanLabel)
	fmt.Fprintf(&b, "n0 -> n%d [color=\"black\"];\n", rootOffset)

	visited := map[int]bool{}
	if err := walk(&b, g, rootOffset, visited); err != nil {
		if errors.Is(err, ErrGraphTooLarge) {
			sblog.L.Warn("skipping oversized decision graph", "file", fileName, "error", err)
		}
		return "", err
	}

	b.WriteString("} \n")

	if err := os.WriteFile(outPath, []byte(b.String()), 0o644); err != nil {
		return "", err
	}
	return outPath, nil
}

func walk(b *strings.Builder, g *decision.Graph, offset int, visited map[int]bool) error {
	if visited[offset] {
		return nil
	}
	if len(visited) >= MaxDecisionNodes {
		return fmt.Errorf("%w: %d nodes reached at offset %d", ErrGraphTooLarge, MaxDecisionNodes, offset)
	}
	visited[offset] = true

	n, ok := g.Node(offset)
	if !ok {
		return fmt.Errorf("dotgraph: no node tagged at offset %d", offset)
	}

	fmt.Fprintf(b, "n%d [label=\"%s\"];\n", offset, sanitizeLabel(n.Tag.String()))

	edges := n.Edges()
	if len(edges) == 0 {
		return nil
	}

	fmt.Fprintf(b, "n%d -> n%d [color=\"green\"];\n", offset, edges[0])
	fmt.Fprintf(b, "n%d -> n%d [color=\"red\"];\n", offset, edges[1])

	if err := walk(b, g, edges[0], visited); err != nil {
		return err
	}
	return walk(b, g, edges[1], visited)
}

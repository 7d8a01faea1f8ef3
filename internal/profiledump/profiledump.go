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

// Package profiledump serializes a decision graph to YAML, for diffing or
// inspecting a decoded profile without going through Graphviz.
package profiledump

import (
	"gopkg.in/yaml.v3"

	"github.com/sektioneins/sb2dot/internal/decision"
)

// NodeDump is one decision-graph node's YAML-serializable form.
type NodeDump struct {
	Offset   int    `yaml:"offset"`
	Label    string `yaml:"label"`
	Terminal bool   `yaml:"terminal"`
	Match    *int   `yaml:"match,omitempty"`
	Unmatch  *int   `yaml:"unmatch,omitempty"`
}

// GraphDump is one operation group's decision graph, rooted at Root.
type GraphDump struct {
	Root  int        `yaml:"root"`
	Nodes []NodeDump `yaml:"nodes"`
}

// Collect walks g from rootOffset, collecting every reachable node into a
// [GraphDump] in visitation order.
func Collect(g *decision.Graph, rootOffset int) GraphDump {
	dump := GraphDump{Root: rootOffset}
	visited := map[int]bool{}
	collect(g, rootOffset, visited, &dump)
	return dump
}

func collect(g *decision.Graph, offset int, visited map[int]bool, dump *GraphDump) {
	if visited[offset] {
		return
	}
	visited[offset] = true

	n, ok := g.Node(offset)
	if !ok {
		return
	}

	nd := NodeDump{Offset: offset, Label: n.Tag.String(), Terminal: n.Terminal}
	if edges := n.Edges(); len(edges) == 2 {
		match, unmatch := edges[0], edges[1]
		nd.Match = &match
		nd.Unmatch = &unmatch
	}
	dump.Nodes = append(dump.Nodes, nd)

	if edges := n.Edges(); len(edges) == 2 {
		collect(g, edges[0], visited, dump)
		collect(g, edges[1], visited, dump)
	}
}

// Marshal renders a [GraphDump] as YAML.
func Marshal(dump GraphDump) ([]byte, error) {
	return yaml.Marshal(dump)
}

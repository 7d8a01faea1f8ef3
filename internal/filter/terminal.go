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

package filter

import "strings"

// Terminal is a decision-graph leaf: an allow/deny verdict plus whichever
// modifier bits were set on the node's result word.
type Terminal struct {
	Allow     bool
	Modifiers []string
}

// NewTerminal decodes a terminal node's result word. Bit 0 selects
// allow/deny; bits 1-5 add, in order, grant/report/no-callout/no-sandbox/
// partial-symbolication.
func NewTerminal(result uint16) Terminal {
	t := Terminal{Allow: result&1 == 0}
	if result&2 != 0 {
		t.Modifiers = append(t.Modifiers, "grant")
	}
	if result&4 != 0 {
		t.Modifiers = append(t.Modifiers, "report")
	}
	if result&8 != 0 {
		t.Modifiers = append(t.Modifiers, "no-callout")
	}
	if result&16 != 0 {
		t.Modifiers = append(t.Modifiers, "no-sandbox")
	}
	if result&32 != 0 {
		t.Modifiers = append(t.Modifiers, "partial-symbolication")
	}
	return t
}

// String renders e.g. "allow" or "deny (with grant report)".
func (t Terminal) String() string {
	verb := "deny"
	if t.Allow {
		verb = "allow"
	}
	if len(t.Modifiers) == 0 {
		return verb
	}
	return verb + " (with " + strings.Join(t.Modifiers, " ") + ")"
}

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

// Package sblog is the package-wide logger for sb2dot. Every component that
// needs to report a non-fatal condition (an unsupported regex version,
// illegal opcode, unreduced regex graph, unknown filter ID, unknown enum
// value) logs through here rather than returning an error, since those
// conditions are recoverable.
package sblog

import (
	"os"

	"github.com/charmbracelet/log"
)

// L is the process-wide logger. SetVerbose changes its level in place; it is
// shared rather than threaded through every function signature, since
// logging here is diagnostic trace, not part of any component's return value.
var L = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
	Level:           log.InfoLevel,
})

// SetVerbose raises the logger to debug level, showing the debug trace
// (operation-name count, regex-table cache hits, per-profile completion)
// alongside the warnings that are always shown.
func SetVerbose(verbose bool) {
	if verbose {
		L.SetLevel(log.DebugLevel)
	} else {
		L.SetLevel(log.InfoLevel)
	}
}

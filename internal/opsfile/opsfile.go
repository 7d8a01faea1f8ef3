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

// Package opsfile loads the line-delimited sandbox operation-name list that
// gives the profile's per-operation table its length and order.
package opsfile

import (
	"bufio"
	"os"
)

// Load reads one operation name per line, in authoritative order. A
// trailing blank line (the usual result of a final newline) is ignored;
// any other blank line is kept, since the format doesn't forbid it.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var ops []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		ops = append(ops, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if n := len(ops); n > 0 && ops[n-1] == "" {
		ops = ops[:n-1]
	}
	return ops, nil
}

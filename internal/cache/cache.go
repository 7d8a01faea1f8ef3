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

// Package cache is a content-addressed decode cache keyed by a sha256 of
// the profile blob. It lets repeated runs against the same profile skip
// regex disassembly and rewriting, trading a directory of small files on
// disk for that; the filter decision graphs are still decoded on every run.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
)

// Entry is the cached product of decoding one profile: the reconstructed
// regex-string table, ready to hand straight to [decision.Parse] without
// re-running the disassembler/rewriter.
type Entry struct {
	RegexTable []string `json:"regex_table"`
}

// Cache reads and writes [Entry] values under a directory, one file per
// profile content hash.
type Cache struct {
	dir string
}

// New returns a Cache rooted at dir, creating it if necessary.
func New(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Cache{dir: dir}, nil
}

// Key hashes a profile blob into the identifier used to address its cache
// entry.
func Key(blob []byte) string {
	sum := sha256.Sum256(blob)
	return hex.EncodeToString(sum[:])
}

func (c *Cache) path(key string) string {
	return filepath.Join(c.dir, key+".json")
}

// Get returns the cached entry for key, or ok=false if absent or unreadable.
func (c *Cache) Get(key string) (Entry, bool) {
	data, err := os.ReadFile(c.path(key))
	if err != nil {
		return Entry{}, false
	}
	var e Entry
	if err := json.Unmarshal(data, &e); err != nil {
		return Entry{}, false
	}
	return e, true
}

// Put stores e under key, overwriting any prior entry.
func (c *Cache) Put(key string, e Entry) error {
	data, err := json.Marshal(e)
	if err != nil {
		return err
	}
	return os.WriteFile(c.path(key), data, 0o644)
}

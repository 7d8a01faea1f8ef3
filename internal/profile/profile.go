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

// Package profile is the top-level driver: it parses the container
// header and regex table, detects single-profile vs. collection layout,
// groups each profile's operation table, and drives a [decision.Graph] plus
// [dotgraph.Write] per group.
package profile

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/sektioneins/sb2dot/internal/bincur"
	"github.com/sektioneins/sb2dot/internal/cache"
	"github.com/sektioneins/sb2dot/internal/decision"
	"github.com/sektioneins/sb2dot/internal/dotgraph"
	"github.com/sektioneins/sb2dot/internal/parseerr"
	"github.com/sektioneins/sb2dot/internal/profiledump"
	"github.com/sektioneins/sb2dot/internal/sblog"
)

// Options configures a [Decode] run.
type Options struct {
	OutDir   string
	Cache    *cache.Cache
	DumpYAML bool
}

// Option mutates [Options].
type Option func(*Options)

// WithOutDir sets the directory .dot files are written into. Defaults to
// the current working directory.
func WithOutDir(dir string) Option {
	return func(o *Options) { o.OutDir = dir }
}

// WithCache supplies a decode cache; the regex table is looked up and
// stored there, keyed by a hash of the profile blob, so a repeat run
// against the same bytes skips the disassembler.
func WithCache(c *cache.Cache) Option {
	return func(o *Options) { o.Cache = c }
}

// WithDumpYAML writes a YAML sidecar next to each .dot file, holding the
// same decision graph in a diffable form.
func WithDumpYAML(dump bool) Option {
	return func(o *Options) { o.DumpYAML = dump }
}

// Summary is what the driver reports for one decoded profile.
type Summary struct {
	ProfileName string
	Operations  int
	Regexes     int
	Undecodable int
	Files       []string
}

// DecodeFile reads profilePath and decodes it, per opNames' operation
// order, into one or more [Summary] values (one per profile: a single
// profile yields exactly one, a collection yields one per member).
func DecodeFile(opNames []string, profilePath string, options ...Option) ([]Summary, error) {
	blob, err := os.ReadFile(profilePath)
	if err != nil {
		return nil, err
	}
	return Decode(opNames, blob, profilePath, options...)
}

// Decode is [DecodeFile] given an already-loaded blob. Structural failures
// (short reads, malformed header, out-of-range regex index) are fatal and
// returned as *[parseerr.Error]; everything else is tolerated and
// reflected in the returned summaries.
func Decode(opNames []string, blob []byte, profilePath string, options ...Option) (summaries []Summary, err error) {
	defer parseerr.Recover(&err)

	opts := &Options{OutDir: "."}
	for _, o := range options {
		o(opts)
	}

	c := bincur.New(blob)
	h := readHeader(c)

	regexTable, undecodable := resolveRegexTable(c, h, blob, opts.Cache)

	singleName := filepath.Base(profilePath)
	entries := readOpEntries(c, h, len(opNames), singleName)

	for _, e := range entries {
		groups := GroupOps(e.OpTable, opNames)

		g := decision.NewGraph()
		var files []string
		for _, grp := range groups {
			decision.Parse(g, c, regexTable, grp.Offset)
			path, werr := dotgraph.Write(opts.OutDir, g, grp.Offset, grp.FilenamePart, grp.Label, e.ProfileName)
			if errors.Is(werr, dotgraph.ErrGraphTooLarge) {
				// Already logged by the emitter; the other groups of this
				// profile (and the rest of a collection) still get written.
				continue
			}
			if werr != nil {
				return nil, werr
			}
			files = append(files, path)

			if opts.DumpYAML {
				if derr := writeYAMLDump(path, g, int(grp.Offset)*8); derr != nil {
					return nil, derr
				}
			}
		}

		sblog.L.Info("decoded profile",
			"name", e.ProfileName,
			"operations", len(opNames),
			"regexes", len(regexTable),
			"undecodable", undecodable,
		)
		summaries = append(summaries, Summary{
			ProfileName: e.ProfileName,
			Operations:  len(opNames),
			Regexes:     len(regexTable),
			Undecodable: undecodable,
			Files:       files,
		})
	}
	return summaries, nil
}

func resolveRegexTable(c *bincur.Cursor, h Header, blob []byte, ch *cache.Cache) ([]string, int) {
	var key string
	if ch != nil {
		key = cache.Key(blob)
		if e, ok := ch.Get(key); ok {
			sblog.L.Debug("regex table cache hit", "key", key)
			return e.RegexTable, countUndecodable(e.RegexTable)
		}
	}

	table := decodeRegexTable(c, h)
	if ch != nil {
		if err := ch.Put(key, cache.Entry{RegexTable: table}); err != nil {
			sblog.L.Warn("failed to write regex table cache entry", "error", err)
		}
	}
	return table, countUndecodable(table)
}

func countUndecodable(table []string) int {
	n := 0
	for _, s := range table {
		if s == Undecodable {
			n++
		}
	}
	return n
}

func writeYAMLDump(dotPath string, g *decision.Graph, rootOffset int) error {
	dump := profiledump.Collect(g, rootOffset)
	data, err := profiledump.Marshal(dump)
	if err != nil {
		return err
	}
	yamlPath := strings.TrimSuffix(dotPath, ".dot") + ".yaml"
	return os.WriteFile(yamlPath, data, 0o644)
}

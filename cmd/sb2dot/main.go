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

// sb2dot turns a compiled binary sandbox profile into per-operation
// Graphviz decision graphs, one .dot file per operation group.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"

	"github.com/sektioneins/sb2dot/internal/cache"
	"github.com/sektioneins/sb2dot/internal/opsfile"
	"github.com/sektioneins/sb2dot/internal/profile"
	"github.com/sektioneins/sb2dot/internal/sblog"
)

func main() {
	var outDir = pflag.StringP("out-dir", "o", ".", "Directory the .dot files are written into")
	var verbose = pflag.BoolP("verbose", "v", false, "Verbose. Show the decoder's structural trace.")
	var noCache = pflag.Bool("no-cache", false, "Skip the on-disk regex decode cache.")
	var dumpYAML = pflag.Bool("dump-yaml", false, "Also write a YAML dump of each decision graph next to its .dot file.")
	var help = pflag.Bool("help", false, "Display help text.")

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <ops-file> <profile-file>\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "Turn a binary sandbox profile into per-operation .dot decision graphs.\n")
		fmt.Fprintf(os.Stderr, "The ops file lists one sandbox operation name per line, in kernel order.\n")
		fmt.Fprintf(os.Stderr, "\n")
		pflag.PrintDefaults()
	}

	pflag.Parse()

	if *help {
		pflag.Usage()
		os.Exit(0)
	}

	args := pflag.Args()
	if len(args) != 2 {
		pflag.Usage()
		os.Exit(1)
	}
	opsPath, profilePath := args[0], args[1]

	sblog.SetVerbose(*verbose)

	opNames, err := opsfile.Load(opsPath)
	if err != nil {
		sblog.L.Error("failed to load operation names", "path", opsPath, "error", err)
		os.Exit(1)
	}
	sblog.L.Debug("loaded operation names", "count", len(opNames))

	options := []profile.Option{
		profile.WithOutDir(*outDir),
		profile.WithDumpYAML(*dumpYAML),
	}
	if !*noCache {
		c, cerr := cache.New(filepath.Join(os.TempDir(), "sb2dot-cache"))
		if cerr != nil {
			sblog.L.Warn("decode cache unavailable, continuing without it", "error", cerr)
		} else {
			options = append(options, profile.WithCache(c))
		}
	}

	summaries, err := profile.DecodeFile(opNames, profilePath, options...)
	if err != nil {
		sblog.L.Error("decode failed", "path", profilePath, "error", err)
		os.Exit(1)
	}

	for _, s := range summaries {
		sblog.L.Debug("profile done", "name", s.ProfileName, "files", len(s.Files))
	}
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pdiddy/resume-screener/internal/extract"
	"github.com/pdiddy/resume-screener/internal/rank"
)

// collectPaths expands directory arguments into the supported files they
// contain, sorted by name. File arguments are kept as given, in order, even
// when their format is unsupported, so the failure shows up in the results.
func collectPaths(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil || !info.IsDir() {
			paths = append(paths, arg)
			continue
		}

		entries, err := os.ReadDir(arg)
		if err != nil {
			return nil, fmt.Errorf("reading directory %s: %w", arg, err)
		}
		var names []string
		for _, e := range entries {
			if e.IsDir() || !extract.Supported(e.Name()) {
				continue
			}
			names = append(names, e.Name())
		}
		sort.Strings(names)
		for _, n := range names {
			paths = append(paths, filepath.Join(arg, n))
		}
	}
	return paths, nil
}

// readCandidates loads each path. A read error is carried on the candidate
// rather than aborting the run.
func readCandidates(paths []string) []rank.RawCandidate {
	candidates := make([]rank.RawCandidate, len(paths))
	for i, p := range paths {
		data, err := os.ReadFile(p)
		candidates[i] = rank.RawCandidate{ID: p, Data: data, ReadErr: err}
	}
	return candidates
}

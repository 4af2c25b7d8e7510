// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package scan enumerates candidate scene files under a root directory to a
// bounded depth and filters them by name.
package scan

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🎯 DefaultExtensions are the two scene file extensions processed when no
// allow-list is configured.
var DefaultExtensions = []string{"mb", "ma"}

// 🔍 Scan walks root up to maxDepth subdirectory hops and returns the paths
// of files whose extension is in exts. maxDepth 0 scans only root itself; a
// negative depth yields nothing. Returned paths always use forward slashes,
// regardless of host OS.
func Scan(ctx context.Context, root string, maxDepth int, exts []string) ([]string, error) {
	if maxDepth < 0 {
		return nil, nil
	}
	if len(exts) == 0 {
		exts = DefaultExtensions
	}

	logger := zerolog.Ctx(ctx)

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, errors.Errorf("reading directory %s: %w", root, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !hasExtension(entry.Name(), exts) {
			continue
		}
		files = append(files, normalize(filepath.Join(root, entry.Name())))
	}

	if maxDepth > 0 {
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			sub, err := Scan(ctx, filepath.Join(root, entry.Name()), maxDepth-1, exts)
			if err != nil {
				return nil, err
			}
			files = append(files, sub...)
		}
	}

	logger.Debug().Str("root", root).Int("depth", maxDepth).Int("files", len(files)).Msg("scanned directory")

	return files, nil
}

// normalize rewrites a path to the single forward-slash convention
func normalize(path string) string {
	return filepath.ToSlash(filepath.Clean(path))
}

// hasExtension reports whether name ends in one of exts (without dot)
func hasExtension(name string, exts []string) bool {
	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}

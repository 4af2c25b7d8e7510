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

package scan

import (
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// 🔧 Filter removes scanned files by name. Empty criteria are no-ops, so the
// zero Filter keeps everything. Checks run prefix, suffix, substring,
// extension, then glob; the first exclusion wins.
type Filter struct {
	Prefix         string   // Exclude files whose basename starts with this
	Suffix         string   // Exclude files whose stem (basename minus extension) ends with this
	Contains       string   // Exclude files whose stem contains this
	Extensions     []string // Keep only these extensions (without dot)
	IgnorePatterns []string // Exclude files whose path matches any glob pattern
}

// 🔍 Apply splits files into kept and removed, preserving input order within
// each slice.
func (f Filter) Apply(files []string) (kept, removed []string) {
	for _, file := range files {
		if f.excludes(file) {
			removed = append(removed, file)
		} else {
			kept = append(kept, file)
		}
	}
	return kept, removed
}

// excludes reports whether a single file is filtered out
func (f Filter) excludes(file string) bool {
	base := path.Base(file)
	ext := strings.TrimPrefix(path.Ext(base), ".")
	stem := strings.TrimSuffix(base, path.Ext(base))

	if f.Prefix != "" && strings.HasPrefix(base, f.Prefix) {
		return true
	}
	if f.Suffix != "" && strings.HasSuffix(stem, f.Suffix) {
		return true
	}
	if f.Contains != "" && strings.Contains(stem, f.Contains) {
		return true
	}
	if len(f.Extensions) > 0 && !containsString(f.Extensions, ext) {
		return true
	}
	for _, pattern := range f.IgnorePatterns {
		// Invalid patterns never match, same as any non-matching pattern.
		if ok, err := doublestar.Match(pattern, file); err == nil && ok {
			return true
		}
	}
	return false
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

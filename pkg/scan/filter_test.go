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

package scan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/walteh/scenebatch/pkg/scan"
)

// 🧪 TestFilterApply tests each filter criterion in isolation
func TestFilterApply(t *testing.T) {
	tests := []struct {
		name        string
		filter      scan.Filter
		files       []string
		wantKept    []string
		wantRemoved []string
	}{
		{
			name:     "zero_filter_keeps_everything",
			filter:   scan.Filter{},
			files:    []string{"a/tmp_asset.mb", "a/asset.ma"},
			wantKept: []string{"a/tmp_asset.mb", "a/asset.ma"},
		},
		{
			name:        "prefix_excludes",
			filter:      scan.Filter{Prefix: "tmp_"},
			files:       []string{"a/tmp_asset.mb", "a/asset.mb"},
			wantKept:    []string{"a/asset.mb"},
			wantRemoved: []string{"a/tmp_asset.mb"},
		},
		{
			name:        "suffix_excludes_on_stem",
			filter:      scan.Filter{Suffix: "_bak"},
			files:       []string{"a/asset_bak.mb", "a/asset.mb"},
			wantKept:    []string{"a/asset.mb"},
			wantRemoved: []string{"a/asset_bak.mb"},
		},
		{
			name:        "contains_excludes_on_stem",
			filter:      scan.Filter{Contains: "OLD"},
			files:       []string{"a/assetOLD.mb", "a/asset.mb"},
			wantKept:    []string{"a/asset.mb"},
			wantRemoved: []string{"a/assetOLD.mb"},
		},
		{
			name:        "extension_allow_list",
			filter:      scan.Filter{Extensions: []string{"mb"}},
			files:       []string{"a/asset.mb", "a/asset.ma"},
			wantKept:    []string{"a/asset.mb"},
			wantRemoved: []string{"a/asset.ma"},
		},
		{
			name:        "glob_pattern_excludes",
			filter:      scan.Filter{IgnorePatterns: []string{"**/wip/**"}},
			files:       []string{"a/wip/asset.mb", "a/asset.mb"},
			wantKept:    []string{"a/asset.mb"},
			wantRemoved: []string{"a/wip/asset.mb"},
		},
		{
			name:        "prefix_checked_before_extension",
			filter:      scan.Filter{Prefix: "tmp_", Extensions: []string{"mb"}},
			files:       []string{"a/tmp_asset.ma"},
			wantRemoved: []string{"a/tmp_asset.ma"},
		},
		{
			name:     "suffix_ignores_extension_itself",
			filter:   scan.Filter{Suffix: "mb"},
			files:    []string{"a/asset.mb"},
			wantKept: []string{"a/asset.mb"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kept, removed := tt.filter.Apply(tt.files)
			assert.Equal(t, tt.wantKept, kept)
			assert.Equal(t, tt.wantRemoved, removed)
		})
	}
}

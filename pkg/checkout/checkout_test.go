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

package checkout_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/scenebatch/pkg/checkout"
)

// 🧪 writeConfig writes a p4config-style file and returns its path
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "p4config")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// 🧪 TestLoadConfig tests config parsing
func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    checkout.Config
		wantErr string
	}{
		{
			name:    "complete_config",
			content: "P4PORT=1.1.1.1:1666\nP4USER=alice\nP4CLIENT=alice_ws\n",
			want:    checkout.Config{Port: "1.1.1.1:1666", Client: "alice_ws", User: "alice"},
		},
		{
			name:    "whitespace_and_junk_lines",
			content: "# comment without equals\n P4PORT = perforce:1666 \nP4USER=bob\nP4CLIENT=bob_ws\n",
			want:    checkout.Config{Port: "perforce:1666", Client: "bob_ws", User: "bob"},
		},
		{
			name:    "missing_port",
			content: "P4USER=alice\nP4CLIENT=alice_ws\n",
			wantErr: "P4PORT is required",
		},
		{
			name:    "missing_client",
			content: "P4PORT=perforce:1666\nP4USER=alice\n",
			wantErr: "P4CLIENT is required",
		},
		{
			name:    "missing_user",
			content: "P4PORT=perforce:1666\nP4CLIENT=alice_ws\n",
			wantErr: "P4USER is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := checkout.LoadConfig(writeConfig(t, tt.content))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg)
		})
	}
}

// 🧪 TestLoadConfigMissingFile tests the reportable error for a bad path
func TestLoadConfigMissingFile(t *testing.T) {
	_, err := checkout.LoadConfig(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening checkout config")

	_, err = checkout.LoadConfig("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no checkout config file set")
}

// 🧪 TestNewP4RejectsInvalidConfig tests provider construction
func TestNewP4RejectsInvalidConfig(t *testing.T) {
	_, err := checkout.NewP4(checkout.Config{Port: "perforce:1666"})
	require.Error(t, err)

	p, err := checkout.NewP4(checkout.Config{Port: "perforce:1666", Client: "ws", User: "u"})
	require.NoError(t, err)
	assert.NotNil(t, p)
}

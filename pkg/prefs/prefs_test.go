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

package prefs_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/scenebatch/pkg/prefs"
)

// 🧪 TestOpenMissingFile tests that absent preferences are empty, not an error
func TestOpenMissingFile(t *testing.T) {
	store, err := prefs.Open(filepath.Join(t.TempDir(), "prefs.yaml"))
	require.NoError(t, err)

	assert.Empty(t, store.LastScript())
	assert.Empty(t, store.P4ConfigPath())
	assert.Empty(t, store.LastRoot())
}

// 🧪 TestRoundTrip tests set, save, and reload
func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.yaml")

	store, err := prefs.Open(path)
	require.NoError(t, err)
	store.SetLastScript("cmds.ls()")
	store.SetP4ConfigPath("/home/alice/p4config")
	store.SetLastRoot("/projects/scenes")
	require.NoError(t, store.Save())

	reloaded, err := prefs.Open(path)
	require.NoError(t, err)
	assert.Equal(t, "cmds.ls()", reloaded.LastScript())
	assert.Equal(t, "/home/alice/p4config", reloaded.P4ConfigPath())
	assert.Equal(t, "/projects/scenes", reloaded.LastRoot())
}

// 🧪 TestOverwrite tests that a second save replaces the old value
func TestOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.yaml")

	store, err := prefs.Open(path)
	require.NoError(t, err)
	store.SetLastRoot("/old")
	require.NoError(t, store.Save())

	store.SetLastRoot("/new")
	require.NoError(t, store.Save())

	reloaded, err := prefs.Open(path)
	require.NoError(t, err)
	assert.Equal(t, "/new", reloaded.LastRoot())
}

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

package batch_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/scenebatch/pkg/batch"
	"github.com/walteh/scenebatch/pkg/document"
	"github.com/walteh/scenebatch/pkg/pending"
	"github.com/walteh/scenebatch/pkg/reconcile"
	"gitlab.com/tozd/go/errors"
)

var testScript = document.Script{Text: "cmds.ls()", Kind: document.KindPython}

func testContext(t *testing.T) context.Context {
	logger := zerolog.New(zerolog.NewTestWriter(t))
	return logger.WithContext(context.Background())
}

// 🧪 skipIfRoot skips tests that need a file the process cannot write. The
// access check answers for the real uid, so root sees every file as writable.
func skipIfRoot(t *testing.T) {
	t.Helper()
	if os.Geteuid() == 0 {
		t.Skip("read-only classification is not observable as root")
	}
}

// 🧪 writeFile creates a file with the given mode
func writeFile(t *testing.T, dir, name string, mode os.FileMode) string {
	t.Helper()
	if mode&0o200 == 0 {
		skipIfRoot(t)
	}
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("scene"), 0o644))
	require.NoError(t, os.Chmod(path, mode))
	return path
}

// 🧪 buildSet classifies paths into a pending set
func buildSet(t *testing.T, paths ...string) *pending.Set {
	t.Helper()
	r := reconcile.New(reconcile.Options{})
	return r.BuildPending(testContext(t), paths)
}

// 🧪 TestExecuteSuccess tests the happy path with persistence
func TestExecuteSuccess(t *testing.T) {
	tmpDir := t.TempDir()
	a := writeFile(t, tmpDir, "a.mb", 0o644)
	b := writeFile(t, tmpDir, "b.ma", 0o644)
	host := document.NewMemHost()

	result, err := batch.Execute(testContext(t), buildSet(t, a, b), host, batch.Options{
		Script:  testScript,
		Persist: true,
	})
	require.NoError(t, err)

	assert.Equal(t, batch.Summary{Processed: 2, Succeeded: 2}, result.Summary)
	assert.Equal(t, []string{
		"open " + a,
		"eval python " + a,
		"save " + a,
		"open " + b,
		"eval python " + b,
		"save " + b,
		"new",
	}, host.Ops)
	assert.Empty(t, result.Diagnostics())
}

// 🧪 TestExecuteWithoutPersist tests that save is skipped when not wanted
func TestExecuteWithoutPersist(t *testing.T) {
	a := writeFile(t, t.TempDir(), "a.mb", 0o644)
	host := document.NewMemHost()

	result, err := batch.Execute(testContext(t), buildSet(t, a), host, batch.Options{Script: testScript})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Summary.Succeeded)
	assert.NotContains(t, host.Ops, "save "+a)
	assert.Contains(t, host.Ops, "new")
}

// 🧪 TestExecuteIneligibleStates tests outcome mapping for files that were
// not writable when confirmation closed
func TestExecuteIneligibleStates(t *testing.T) {
	tmpDir := t.TempDir()
	readonly := writeFile(t, tmpDir, "ro.mb", 0o444)
	missing := filepath.Join(tmpDir, "gone.ma")
	skipped := writeFile(t, tmpDir, "skip.mb", 0o644)

	r := reconcile.New(reconcile.Options{})
	set := r.BuildPending(testContext(t), []string{readonly, missing, skipped})
	r.ToggleSkip(set.Get(skipped))

	host := document.NewMemHost()
	result, err := batch.Execute(testContext(t), set, host, batch.Options{Script: testScript, Persist: true})
	require.NoError(t, err)

	assert.Equal(t, pending.OutcomeReadOnlyBlocked, set.Get(readonly).Outcome())
	assert.Equal(t, pending.OutcomeNotFound, set.Get(missing).Outcome())
	assert.Equal(t, pending.OutcomeSkipped, set.Get(skipped).Outcome())

	// Storage was never touched: the only host op is the final reset.
	assert.Equal(t, []string{"new"}, host.Ops)
	assert.Equal(t, batch.Summary{Processed: 3, Failed: 2, Skipped: 1}, result.Summary)
	assert.Len(t, result.Diagnostics(), 3)
}

// 🧪 TestExecuteDriftDetection tests re-classification right before mutation
func TestExecuteDriftDetection(t *testing.T) {
	t.Run("deleted_after_confirmation", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "a.mb", 0o644)
		set := buildSet(t, path)
		require.NoError(t, os.Remove(path)) // drift: file vanishes

		host := document.NewMemHost()
		_, err := batch.Execute(testContext(t), set, host, batch.Options{Script: testScript})
		require.NoError(t, err)

		assert.Equal(t, pending.OutcomeMissingDuringConfirmation, set.Get(path).Outcome())
		assert.Equal(t, []string{"new"}, host.Ops)
	})

	t.Run("made_read_only_after_confirmation", func(t *testing.T) {
		skipIfRoot(t)
		path := writeFile(t, t.TempDir(), "a.mb", 0o644)
		set := buildSet(t, path)
		require.NoError(t, os.Chmod(path, 0o444)) // drift: another process locks it

		host := document.NewMemHost()
		_, err := batch.Execute(testContext(t), set, host, batch.Options{Script: testScript})
		require.NoError(t, err)

		assert.Equal(t, pending.OutcomeTamperedDuringConfirmation, set.Get(path).Outcome())
		assert.Equal(t, []string{"new"}, host.Ops)
	})
}

// 🧪 TestExecuteScriptFailure tests fail-soft per item
func TestExecuteScriptFailure(t *testing.T) {
	tmpDir := t.TempDir()
	bad := writeFile(t, tmpDir, "bad.mb", 0o644)
	good := writeFile(t, tmpDir, "good.mb", 0o644)

	host := document.NewMemHost()
	host.FailEval[bad] = errors.New("RuntimeError: boom")

	set := buildSet(t, bad, good)
	result, err := batch.Execute(testContext(t), set, host, batch.Options{Script: testScript, Persist: true})
	require.NoError(t, err)

	assert.Equal(t, pending.OutcomeFailed, set.Get(bad).Outcome())
	assert.Contains(t, set.Get(bad).Diagnostic(), "RuntimeError")
	assert.Equal(t, pending.OutcomeSuccess, set.Get(good).Outcome())

	// The failing file is not saved, the good one is.
	assert.NotContains(t, host.Ops, "save "+bad)
	assert.Contains(t, host.Ops, "save "+good)
	assert.Equal(t, batch.Summary{Processed: 2, Succeeded: 1, Failed: 1}, result.Summary)
}

// 🧪 TestExecuteOpenFailure tests the invalid-document outcome
func TestExecuteOpenFailure(t *testing.T) {
	path := writeFile(t, t.TempDir(), "corrupt.mb", 0o644)
	host := document.NewMemHost()
	host.FailOpen[path] = errors.New("unrecognized scene header")

	set := buildSet(t, path)
	_, err := batch.Execute(testContext(t), set, host, batch.Options{Script: testScript})
	require.NoError(t, err)

	assert.Equal(t, pending.OutcomeInvalid, set.Get(path).Outcome())
	assert.Contains(t, set.Get(path).Diagnostic(), "scene header")
}

// 🧪 TestExecuteSaveFailure tests that a save error is recorded as a failure
func TestExecuteSaveFailure(t *testing.T) {
	path := writeFile(t, t.TempDir(), "a.mb", 0o644)
	host := document.NewMemHost()
	host.FailSave[path] = errors.New("disk full")

	set := buildSet(t, path)
	_, err := batch.Execute(testContext(t), set, host, batch.Options{Script: testScript, Persist: true})
	require.NoError(t, err)

	assert.Equal(t, pending.OutcomeFailed, set.Get(path).Outcome())
	assert.Contains(t, set.Get(path).Diagnostic(), "disk full")
}

// 🧪 TestExecuteEmptySet tests that an empty set still resets the host
func TestExecuteEmptySet(t *testing.T) {
	host := document.NewMemHost()
	result, err := batch.Execute(testContext(t), pending.NewSet(), host, batch.Options{Script: testScript})
	require.NoError(t, err)
	assert.Equal(t, batch.Summary{}, result.Summary)
	assert.Equal(t, []string{"new"}, host.Ops)
}

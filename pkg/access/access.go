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

// Package access classifies files by write-access state and flips the
// read-only bit when asked. Classification is a pure read; it is called both
// when a pending file is built and again right before the file is mutated.
package access

import (
	"os"
	"path/filepath"

	"gitlab.com/tozd/go/errors"
)

// 📊 State represents the write-access state of a file
type State int

const (
	StateMissing  State = iota // File does not exist on disk
	StateWritable              // File exists and the process may write it
	StateReadOnly              // File exists but is not writable
	StateSkipped               // User override, independent of disk state
)

// String returns a string representation of State
func (s State) String() string {
	switch s {
	case StateMissing:
		return "missing"
	case StateWritable:
		return "writable"
	case StateReadOnly:
		return "read-only"
	case StateSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// 🔍 Classify maps a path to its access state. It is total: a nonexistent
// path is StateMissing, never an error.
func Classify(path string) State {
	info, err := os.Stat(path)
	if err != nil {
		return StateMissing
	}
	if isWritable(path, info) {
		return StateWritable
	}
	return StateReadOnly
}

// 🔍 CheckDir validates a scan root: it must exist, be a directory, and be
// writable. Writability is probed with a throwaway file because permission
// bits alone lie on some filesystems.
func CheckDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Errorf("directory does not exist: %s", dir)
		}
		return errors.Errorf("checking directory: %w", err)
	}
	if !info.IsDir() {
		return errors.Errorf("path exists but is not a directory: %s", dir)
	}

	probe, err := os.CreateTemp(dir, ".scenebatch-probe-*")
	if err != nil {
		return errors.Errorf("directory cannot be written to: %w", err)
	}
	name := probe.Name()
	probe.Close()
	os.Remove(name)

	return nil
}

// 🔧 MakeWritable clears the read-only state of a file. The exact bit
// manipulation is platform-specific, see makeWritable in the build-tagged
// files.
func MakeWritable(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return errors.Errorf("stat %s: %w", filepath.Base(path), err)
	}
	if err := makeWritable(path, info); err != nil {
		return errors.Errorf("clearing read-only state: %w", err)
	}
	return nil
}

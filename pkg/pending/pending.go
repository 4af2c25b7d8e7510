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

// Package pending holds the data model for a single batch invocation: one
// File per discovered path, tracked from classification through confirmation
// to its execution outcome. A Set lives for exactly one run and is discarded
// once results are reported.
package pending

import (
	"path"

	"github.com/walteh/scenebatch/pkg/access"
)

// 🎯 Outcome is the result of the execution attempt for one file
type Outcome int

const (
	OutcomeUnset Outcome = iota
	OutcomeSuccess
	OutcomeFailed  // The user script raised
	OutcomeInvalid // The file could not be opened as a document
	OutcomeTamperedDuringConfirmation
	OutcomeMissingDuringConfirmation
	OutcomeNotFound
	OutcomeReadOnlyBlocked
	OutcomeSkipped
)

// String returns a string representation of Outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeUnset:
		return "unset"
	case OutcomeSuccess:
		return "success"
	case OutcomeFailed:
		return "failed"
	case OutcomeInvalid:
		return "invalid"
	case OutcomeTamperedDuringConfirmation:
		return "tampered during confirmation"
	case OutcomeMissingDuringConfirmation:
		return "missing during confirmation"
	case OutcomeNotFound:
		return "not found"
	case OutcomeReadOnlyBlocked:
		return "read-only"
	case OutcomeSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// 📄 File is one discovered candidate file. Path is its identity and never
// changes; State is mutated only by reconciliation actions.
type File struct {
	Path        string
	DisplayName string
	State       access.State

	// Note carries the latest confirmation-time message for this file, e.g.
	// why a checkout attempt failed. Cleared when the condition resolves; it
	// is separate from the execution diagnostic, which is write-once.
	Note string

	outcome    Outcome
	diagnostic string
}

// 🏭 NewFile classifies path and returns a pending file for it. DisplayName
// falls back to the path basename.
func NewFile(p string, displayName string) *File {
	if displayName == "" {
		displayName = path.Base(p)
	}
	return &File{
		Path:        p,
		DisplayName: displayName,
		State:       access.Classify(p),
	}
}

// 📝 SetOutcome records the execution outcome. Outcomes are write-once per
// run: a second call is ignored so an early verdict cannot be overwritten.
func (f *File) SetOutcome(o Outcome, diagnostic string) {
	if f.outcome != OutcomeUnset {
		return
	}
	f.outcome = o
	f.diagnostic = diagnostic
}

// Outcome returns the recorded outcome, OutcomeUnset before execution.
func (f *File) Outcome() Outcome {
	return f.outcome
}

// Diagnostic returns the human-readable explanation attached with a
// non-success outcome.
func (f *File) Diagnostic() string {
	return f.diagnostic
}

// 📚 Set is an insertion-ordered collection of pending files. Iteration
// order is the order files were added, which keeps batch runs reproducible.
type Set struct {
	files []*File
	index map[string]*File
}

// 🏭 NewSet creates an empty set
func NewSet() *Set {
	return &Set{
		index: make(map[string]*File),
	}
}

// 📝 Add appends a file to the set. Re-adding a path is a no-op; identity is
// the path.
func (s *Set) Add(f *File) {
	if _, ok := s.index[f.Path]; ok {
		return
	}
	s.files = append(s.files, f)
	s.index[f.Path] = f
}

// 🔍 Get returns the file for a path, nil if not tracked
func (s *Set) Get(path string) *File {
	return s.index[path]
}

// Files returns the files in insertion order. The slice is shared; callers
// mutate entries through it during reconciliation.
func (s *Set) Files() []*File {
	return s.files
}

// Len returns the number of tracked files
func (s *Set) Len() int {
	return len(s.files)
}

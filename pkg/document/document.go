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

// Package document abstracts the host application that owns scene documents.
// The host has exactly one active document: opening a path discards whatever
// was open before, so batch execution is strictly one file at a time.
package document

import (
	"context"

	"gitlab.com/tozd/go/errors"
)

// 🎯 Kind tags which interpreter a script targets
type Kind int

const (
	KindPython Kind = iota
	KindMEL
)

// String returns a string representation of Kind
func (k Kind) String() string {
	switch k {
	case KindPython:
		return "python"
	case KindMEL:
		return "mel"
	default:
		return "unknown"
	}
}

// 🎯 ParseKind maps a user-facing name to a Kind
func ParseKind(s string) (Kind, error) {
	switch s {
	case "python":
		return KindPython, nil
	case "mel":
		return KindMEL, nil
	default:
		return 0, errors.Errorf("unknown script kind %q (want python or mel)", s)
	}
}

// 📝 Script is the user-supplied script with its interpreter tag
type Script struct {
	Text string
	Kind Kind
}

// 🔌 Host is the document API of the host application. All calls operate on
// the single active document and block until the host is done.
type Host interface {
	// Open makes path the active document, discarding the previous one
	Open(ctx context.Context, path string) error
	// Save persists the active document in place
	Save(ctx context.Context) error
	// NewEmpty replaces the active document with a clean empty one
	NewEmpty(ctx context.Context) error
	// Eval runs the script against the active document
	Eval(ctx context.Context, script Script) error
}

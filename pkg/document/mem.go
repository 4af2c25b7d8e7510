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

package document

import (
	"context"
	"fmt"

	"gitlab.com/tozd/go/errors"
)

// 🔧 MemHost is an in-memory Host. It records every call and can be told to
// fail specific operations, which makes it the host of choice for tests and
// dry runs.
type MemHost struct {
	// Ops is the call log, entries like "open /p/a.mb", "eval python /p/a.mb",
	// "save /p/a.mb", "new". Rejected calls are not logged.
	Ops []string

	// FailEval maps an open path to the error Eval should return for it
	FailEval map[string]error
	// FailOpen maps a path to the error Open should return for it
	FailOpen map[string]error
	// FailSave maps an open path to the error Save should return for it
	FailSave map[string]error

	current string
}

// 🏭 NewMemHost creates an empty in-memory host
func NewMemHost() *MemHost {
	return &MemHost{
		FailEval: map[string]error{},
		FailOpen: map[string]error{},
		FailSave: map[string]error{},
	}
}

func (h *MemHost) Open(ctx context.Context, path string) error {
	h.Ops = append(h.Ops, "open "+path)
	if err := h.FailOpen[path]; err != nil {
		return err
	}
	h.current = path
	return nil
}

func (h *MemHost) Save(ctx context.Context) error {
	if h.current == "" {
		return errors.New("no document open")
	}
	h.Ops = append(h.Ops, "save "+h.current)
	if err := h.FailSave[h.current]; err != nil {
		return err
	}
	return nil
}

func (h *MemHost) NewEmpty(ctx context.Context) error {
	h.Ops = append(h.Ops, "new")
	h.current = ""
	return nil
}

func (h *MemHost) Eval(ctx context.Context, script Script) error {
	if h.current == "" {
		return errors.New("no document open")
	}
	h.Ops = append(h.Ops, fmt.Sprintf("eval %s %s", script.Kind, h.current))
	if err := h.FailEval[h.current]; err != nil {
		return err
	}
	return nil
}

// Current returns the path of the active document, empty if none
func (h *MemHost) Current() string {
	return h.current
}

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
	"bytes"
	"context"
	"os"
	"os/exec"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🔧 ExecHost drives an external host process. Each Eval spawns the
// configured binary once with the script on stdin; the process opens the
// document, runs the script, and saves before exiting when asked to, so
// Open/Save/NewEmpty are bookkeeping on this side.
//
// Contract with the host binary:
//
//	SCENEBATCH_FILE  path of the document to open
//	SCENEBATCH_KIND  "python" or "mel"
//	SCENEBATCH_SAVE  "1" when the document must be saved after the script
//	stdin            the script text
//
// A non-zero exit is a script failure; stderr carries the message.
type ExecHost struct {
	bin     string
	args    []string
	persist bool
	current string
}

// 🏭 NewExecHost creates an ExecHost for the given host binary. persist
// tells the host process to save the document after a successful script run.
func NewExecHost(bin string, persist bool, args ...string) (*ExecHost, error) {
	if bin == "" {
		return nil, errors.New("host binary is required")
	}
	return &ExecHost{bin: bin, args: args, persist: persist}, nil
}

func (h *ExecHost) Open(ctx context.Context, path string) error {
	if _, err := os.Stat(path); err != nil {
		return errors.Errorf("opening document: %w", err)
	}
	h.current = path
	return nil
}

// Save is satisfied by the host process, which saves on exit when persist
// was set. It only checks that a document is active.
func (h *ExecHost) Save(ctx context.Context) error {
	if h.current == "" {
		return errors.New("no document open")
	}
	return nil
}

func (h *ExecHost) NewEmpty(ctx context.Context) error {
	h.current = ""
	return nil
}

func (h *ExecHost) Eval(ctx context.Context, script Script) error {
	if h.current == "" {
		return errors.New("no document open")
	}

	logger := zerolog.Ctx(ctx)
	logger.Debug().
		Str("bin", h.bin).
		Str("file", h.current).
		Str("kind", script.Kind.String()).
		Msg("evaluating script in host process")

	cmd := exec.CommandContext(ctx, h.bin, h.args...)
	cmd.Stdin = strings.NewReader(script.Text)
	cmd.Env = append(os.Environ(),
		"SCENEBATCH_FILE="+h.current,
		"SCENEBATCH_KIND="+script.Kind.String(),
		"SCENEBATCH_SAVE="+boolEnv(h.persist),
	)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return errors.Errorf("script failed: %s", msg)
		}
		return errors.Errorf("script failed: %w", err)
	}
	return nil
}

func boolEnv(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

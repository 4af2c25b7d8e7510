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

package checkout

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🔧 P4 is a Provider backed by the p4 command-line client
type P4 struct {
	cfg Config
	bin string
}

// 🏭 NewP4 creates a provider that shells out to the p4 binary
func NewP4(cfg Config) (*P4, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating checkout config: %w", err)
	}
	return &P4{cfg: cfg, bin: "p4"}, nil
}

// 📝 Edit opens the file for edit on the server. The call blocks until p4
// returns; cancellation comes only from ctx.
func (p *P4) Edit(ctx context.Context, path string) error {
	logger := zerolog.Ctx(ctx)
	logger.Debug().
		Str("port", p.cfg.Port).
		Str("client", p.cfg.Client).
		Str("user", p.cfg.User).
		Str("path", path).
		Msg("requesting checkout")

	cmd := exec.CommandContext(ctx, p.bin,
		"-p", p.cfg.Port,
		"-c", p.cfg.Client,
		"-u", p.cfg.User,
		"edit", path,
	)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if strings.Contains(msg, "not on client") {
			return errors.WithMessage(ErrNotOnClient, msg)
		}
		if msg == "" {
			return errors.Errorf("running p4 edit: %w", err)
		}
		return errors.Errorf("running p4 edit: %s: %w", msg, err)
	}

	logger.Debug().Str("path", path).Msg("checked out")
	return nil
}

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

// Package checkout abstracts the version-control collaborator that grants
// write access on locked files. The reconciliation engine only needs the
// Edit call and its failure signal; everything else about the protocol lives
// behind the Provider interface.
package checkout

import (
	"bufio"
	"context"
	"os"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// 🔌 Provider requests edit (write) permission on a path from the
// version-control server. Edit blocks until the server answers; there is no
// timeout beyond what ctx carries.
type Provider interface {
	Edit(ctx context.Context, path string) error
}

var (
	// ErrNotOnClient means the server does not know the file. The usual
	// remedy is to force the file writable locally instead of checking out.
	ErrNotOnClient = errors.New("file is not on client")
)

// 🔧 Config identifies the server, workspace, and user for checkout calls
type Config struct {
	Port   string // Server address, e.g. 1.1.1.1:1666
	Client string // Workspace name
	User   string // User name
}

// 🎯 LoadConfig reads a p4config-style file of KEY=value lines. Required
// keys: P4PORT, P4CLIENT, P4USER. A missing or malformed file is a
// configuration error for the caller to report, never a panic.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		return Config{}, errors.New("no checkout config file set")
	}

	f, err := os.Open(path)
	if err != nil {
		return Config{}, errors.Errorf("opening checkout config %s: %w", path, err)
	}
	defer f.Close()

	settings := map[string]string{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		settings[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	if err := scanner.Err(); err != nil {
		return Config{}, errors.Errorf("reading checkout config: %w", err)
	}

	cfg := Config{
		Port:   settings["P4PORT"],
		Client: settings["P4CLIENT"],
		User:   settings["P4USER"],
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Errorf("checkout config %s: %w", path, err)
	}
	return cfg, nil
}

// 🔍 Validate checks that all required fields are present
func (c Config) Validate() error {
	if c.Port == "" {
		return errors.New("P4PORT is required")
	}
	if c.Client == "" {
		return errors.New("P4CLIENT is required")
	}
	if c.User == "" {
		return errors.New("P4USER is required")
	}
	return nil
}

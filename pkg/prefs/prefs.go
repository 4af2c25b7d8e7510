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

// Package prefs persists the handful of values remembered between batch
// runs: the last script, the checkout config path, and the last scan root.
// Core logic never depends on these beyond get and set.
package prefs

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gitlab.com/tozd/go/errors"
)

const (
	keyLastScript = "last_script"
	keyP4Config   = "p4config_path"
	keyLastRoot   = "last_root"
)

// 💾 Store is a small persisted key-value store backed by a YAML file
type Store struct {
	v    *viper.Viper
	path string
}

// 🏭 Open loads the store at path. A missing file is not an error: every
// preference simply starts out empty.
func Open(path string) (*Store, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !os.IsNotExist(err) && !errors.As(err, &notFound) {
			return nil, errors.Errorf("reading preferences %s: %w", path, err)
		}
	}

	return &Store{v: v, path: path}, nil
}

// LastScript returns the script text of the previous run
func (s *Store) LastScript() string {
	return s.v.GetString(keyLastScript)
}

// SetLastScript remembers the script text
func (s *Store) SetLastScript(text string) {
	s.v.Set(keyLastScript, text)
}

// P4ConfigPath returns the stored checkout config path
func (s *Store) P4ConfigPath() string {
	return s.v.GetString(keyP4Config)
}

// SetP4ConfigPath remembers the checkout config path
func (s *Store) SetP4ConfigPath(path string) {
	s.v.Set(keyP4Config, path)
}

// LastRoot returns the scan root of the previous run
func (s *Store) LastRoot() string {
	return s.v.GetString(keyLastRoot)
}

// SetLastRoot remembers the scan root
func (s *Store) SetLastRoot(root string) {
	s.v.Set(keyLastRoot, root)
}

// 📝 Save writes the store back to its file, creating parent directories as
// needed.
func (s *Store) Save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return errors.Errorf("creating preferences directory: %w", err)
	}
	if err := s.v.WriteConfigAs(s.path); err != nil {
		return errors.Errorf("writing preferences: %w", err)
	}
	return nil
}

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

// Package config loads and validates the parameters of a batch run.
package config

import (
	"context"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/scenebatch/pkg/document"
	"github.com/walteh/scenebatch/pkg/scan"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 📚 Config represents the parameters of one batch run
type Config struct {
	Script     string `json:"script,omitempty" yaml:"script,omitempty" hcl:"script,optional"`                   // Inline script text
	ScriptFile string `json:"script_file,omitempty" yaml:"script_file,omitempty" hcl:"script_file,optional"`    // Path to a script file, alternative to Script
	Kind       string `json:"kind,omitempty" yaml:"kind,omitempty" hcl:"kind,optional"`                         // python or mel, default python

	Root  string `json:"root" yaml:"root" hcl:"root"`                                 // Scan root directory
	Depth int    `json:"depth,omitempty" yaml:"depth,omitempty" hcl:"depth,optional"` // Recursion depth, default 0

	Prefix         string   `json:"prefix,omitempty" yaml:"prefix,omitempty" hcl:"prefix,optional"`
	Suffix         string   `json:"suffix,omitempty" yaml:"suffix,omitempty" hcl:"suffix,optional"`
	Contains       string   `json:"contains,omitempty" yaml:"contains,omitempty" hcl:"contains,optional"`
	Extensions     []string `json:"extensions,omitempty" yaml:"extensions,omitempty" hcl:"extensions,optional"`
	IgnorePatterns []string `json:"ignore_patterns,omitempty" yaml:"ignore_patterns,omitempty" hcl:"ignore_patterns,optional"`

	SaveAfter *bool  `json:"save_after,omitempty" yaml:"save_after,omitempty" hcl:"save_after,optional"` // Default true
	P4Config  string `json:"p4config,omitempty" yaml:"p4config,omitempty" hcl:"p4config,optional"`       // Checkout provider config file
}

// 🎯 Load loads the configuration from a file
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// 🔍 Validate checks the configuration and fills defaults. Failures here are
// fatal to the whole batch: nothing is scanned or touched afterward.
func (cfg *Config) Validate() error {
	if cfg.Root == "" {
		return errors.New("root directory is required")
	}
	if cfg.Depth < 0 {
		return errors.Errorf("depth must be non-negative, got %d", cfg.Depth)
	}
	if cfg.Script == "" && cfg.ScriptFile == "" {
		return errors.New("one of script or script_file is required")
	}
	if cfg.Script != "" && cfg.ScriptFile != "" {
		return errors.New("script and script_file are mutually exclusive")
	}

	if cfg.Kind == "" {
		cfg.Kind = "python"
	}
	if _, err := document.ParseKind(cfg.Kind); err != nil {
		return err
	}

	if len(cfg.Extensions) == 0 {
		cfg.Extensions = scan.DefaultExtensions
	}

	return nil
}

// 📝 ResolveScript returns the script with its interpreter tag, reading
// ScriptFile when the text is not inline.
func (cfg *Config) ResolveScript() (document.Script, error) {
	kind, err := document.ParseKind(cfg.Kind)
	if err != nil {
		return document.Script{}, err
	}

	text := cfg.Script
	if cfg.ScriptFile != "" {
		data, err := os.ReadFile(cfg.ScriptFile)
		if err != nil {
			return document.Script{}, errors.Errorf("reading script file: %w", err)
		}
		text = string(data)
	}
	if strings.TrimSpace(text) == "" {
		return document.Script{}, errors.New("script is empty")
	}

	return document.Script{Text: text, Kind: kind}, nil
}

// 📝 Filter returns the name-filter stage configured for this run
func (cfg *Config) Filter() scan.Filter {
	return scan.Filter{
		Prefix:         cfg.Prefix,
		Suffix:         cfg.Suffix,
		Contains:       cfg.Contains,
		Extensions:     cfg.Extensions,
		IgnorePatterns: cfg.IgnorePatterns,
	}
}

// ShouldSave reports whether documents are persisted after execution;
// defaults to true when unset.
func (cfg *Config) ShouldSave() bool {
	if cfg.SaveAfter == nil {
		return true
	}
	return *cfg.SaveAfter
}

// 🔧 YAMLParser implements the Parser interface for YAML files
type YAMLParser struct{}

func init() {
	Register(&YAMLParser{})
}

func (p *YAMLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".yaml") || strings.HasSuffix(filename, ".yml")
}

func (p *YAMLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(strings.NewReader(string(data)))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, errors.Errorf("parsing YAML: %w", err)
	}
	return &cfg, nil
}

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

package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/scenebatch/cmd/scenebatch/opts"
	"github.com/walteh/scenebatch/pkg/config"
	"github.com/walteh/scenebatch/pkg/log"
	"github.com/walteh/scenebatch/pkg/prefs"
	"gitlab.com/tozd/go/errors"
)

var (
	// Flags
	configFile string
	prefsFile  string
	debug      bool
)

// newRootOpts creates a new RootOpts with initialized dependencies
func newRootOpts(ctx context.Context) (*opts.RootOpts, error) {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	logger := log.New(os.Stdout, level)

	// The config file is optional at startup: commands that need it
	// report its absence themselves.
	var cfg *config.Config
	if _, err := os.Stat(configFile); err == nil {
		cfg, err = config.Load(ctx, configFile)
		if err != nil {
			return nil, errors.Errorf("loading config: %w", err)
		}
	}

	store, err := prefs.Open(prefsFile)
	if err != nil {
		return nil, errors.Errorf("opening preferences: %w", err)
	}

	return &opts.RootOpts{
		Config:     cfg,
		ConfigPath: configFile,
		Prefs:      store,
		Logger:     logger,
	}, nil
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", ".scenebatch.yaml", "config file path")
	cmd.PersistentFlags().StringVarP(&prefsFile, "prefs", "p", defaultPrefsPath(), "preferences file path")
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
}

// defaultPrefsPath returns the per-user preferences location
func defaultPrefsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".scenebatch-prefs.yaml"
	}
	return filepath.Join(home, ".scenebatch", "prefs.yaml")
}

// setupLogging configures zerolog based on flags
func setupLogging() {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &logger
}

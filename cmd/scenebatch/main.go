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

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/walteh/scenebatch/cmd/scenebatch/commands"
	"github.com/walteh/scenebatch/cmd/scenebatch/opts"
	"gitlab.com/tozd/go/errors"
)

func main() {
	rootOpts := &opts.RootOpts{}

	// Create root command
	rootCmd := &cobra.Command{
		Use:   "scenebatch",
		Short: "Run a script against every scene file under a directory",
		Long: `scenebatch scans a directory tree for scene files, reconciles their
write access (version-control checkout, chmod, or skip) and then executes
a Python or MEL script against each file in sequence.`,
		// Dependencies are built here so flag values are already parsed.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogging()
			built, err := newRootOpts(cmd.Context())
			if err != nil {
				return errors.Errorf("initializing: %w", err)
			}
			*rootOpts = *built
			return nil
		},
	}

	// Add shared flags
	addRootFlags(rootCmd)

	// Add commands
	rootCmd.AddCommand(
		commands.NewRunCmd(rootOpts),
		commands.NewScanCmd(rootOpts),
		commands.NewPrefsCmd(rootOpts),
	)

	ctx := log.Logger.WithContext(context.Background())
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

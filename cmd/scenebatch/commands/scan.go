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

package commands

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/scenebatch/cmd/scenebatch/opts"
	"github.com/walteh/scenebatch/pkg/access"
	"github.com/walteh/scenebatch/pkg/scan"
	"gitlab.com/tozd/go/errors"
)

// NewScanCmd creates a new scan command
func NewScanCmd(opts *opts.RootOpts) *cobra.Command {
	var showRemoved bool

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Preview which files a run would touch, without executing anything",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "scan").Logger().WithContext(ctx)

			if opts.Config == nil {
				return errors.Errorf("no config file found at %s", opts.ConfigPath)
			}
			cfg := opts.Config

			if err := access.CheckDir(cfg.Root); err != nil {
				return errors.Errorf("checking root directory: %w", err)
			}

			paths, err := scan.Scan(ctx, cfg.Root, cfg.Depth, cfg.Extensions)
			if err != nil {
				return errors.Errorf("scanning: %w", err)
			}
			kept, removed := cfg.Filter().Apply(paths)

			data := pterm.TableData{{"file", "state"}}
			for _, p := range kept {
				data = append(data, []string{p, stateCell(access.Classify(p))})
			}
			if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
				return errors.Errorf("rendering table: %w", err)
			}

			if showRemoved {
				for _, p := range removed {
					fmt.Println(pterm.Gray("filtered: " + p))
				}
			}

			opts.Logger.Infof("%d files would be processed, %d filtered out", len(kept), len(removed))
			return nil
		},
	}

	cmd.Flags().BoolVar(&showRemoved, "show-filtered", false, "also list the files removed by the name filters")

	return cmd
}

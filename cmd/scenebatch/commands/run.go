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

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/scenebatch/cmd/scenebatch/opts"
	"github.com/walteh/scenebatch/pkg/access"
	"github.com/walteh/scenebatch/pkg/batch"
	"github.com/walteh/scenebatch/pkg/checkout"
	"github.com/walteh/scenebatch/pkg/document"
	"github.com/walteh/scenebatch/pkg/reconcile"
	"github.com/walteh/scenebatch/pkg/scan"
	"gitlab.com/tozd/go/errors"
)

// NewRunCmd creates a new run command
func NewRunCmd(opts *opts.RootOpts) *cobra.Command {
	var (
		yes     bool
		dryRun  bool
		hostBin string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Scan, confirm write access, and execute the script",
		Long: `Run performs one full batch:
1. Scan the configured root for scene files
2. Apply the name filters
3. Reconcile write access for every file (checkout, chmod, or skip)
4. Execute the script against each remaining file in order
5. Report a per-file outcome and an aggregate summary`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "run").Logger().WithContext(ctx)

			if opts.Config == nil {
				return errors.Errorf("no config file found at %s", opts.ConfigPath)
			}
			cfg := opts.Config

			if err := access.CheckDir(cfg.Root); err != nil {
				return errors.Errorf("checking root directory: %w", err)
			}

			script, err := cfg.ResolveScript()
			if err != nil {
				return errors.Errorf("resolving script: %w", err)
			}

			opts.Logger.Header(fmt.Sprintf("running %s script against %s", script.Kind, cfg.Root))

			paths, err := scan.Scan(ctx, cfg.Root, cfg.Depth, cfg.Extensions)
			if err != nil {
				return errors.Errorf("scanning: %w", err)
			}
			if len(paths) == 0 {
				return errors.Errorf("no scene files found under %s", cfg.Root)
			}

			kept, removed := cfg.Filter().Apply(paths)
			if len(removed) > 0 {
				opts.Logger.Infof("filtered out %d of %d files", len(removed), len(paths))
			}
			if len(kept) == 0 {
				return errors.Errorf("all %d scanned files were filtered out", len(paths))
			}

			provider, err := buildProvider(opts)
			if err != nil {
				return err
			}

			rec := reconcile.New(reconcile.Options{Provider: provider})
			set := rec.BuildPending(ctx, kept)

			if yes {
				// Non-interactive: try checkout on everything read-only, then
				// either the gate opens or the run is refused.
				if err := rec.CheckoutAll(ctx, set); err != nil {
					opts.Logger.Warningf("checkout: %v", err)
				}
				if !reconcile.CanProceed(set) {
					return errors.Errorf("read-only files remain, rerun without --yes to resolve them interactively")
				}
			} else {
				proceed, err := confirm(ctx, opts.Logger, rec, set, cfg.Root)
				if err != nil {
					return errors.Errorf("confirmation: %w", err)
				}
				if !proceed {
					opts.Logger.Warning("aborted, no files were modified")
					return nil
				}
			}

			var host document.Host
			if dryRun {
				host = document.NewMemHost()
				opts.Logger.Info("dry run, no documents will be opened or saved")
			} else {
				host, err = document.NewExecHost(hostBin, cfg.ShouldSave())
				if err != nil {
					return errors.Errorf("creating host: %w", err)
				}
			}

			result, err := batch.Execute(ctx, set, host, batch.Options{
				Script:  script,
				Persist: cfg.ShouldSave() && !dryRun,
			})
			if result != nil {
				for _, f := range result.Files() {
					opts.Logger.LogFileOutcome(f)
				}
				opts.Logger.LogSummary(result.Summary)
			}
			if err != nil {
				return errors.Errorf("executing batch: %w", err)
			}

			savePrefs(opts, cfg.Root)

			if result.Summary.Failed > 0 {
				return errors.Errorf("%d of %d files failed", result.Summary.Failed, result.Summary.Processed)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the interactive confirmation round")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "go through the motions without touching any document")
	cmd.Flags().StringVar(&hostBin, "host", "scenebatch-host", "host binary that opens and evaluates documents")

	return cmd
}

// buildProvider wires the checkout provider from config, falling back to the
// stored preference. No configured path means no provider, which is fine:
// force-writable still works.
func buildProvider(opts *opts.RootOpts) (checkout.Provider, error) {
	path := opts.Config.P4Config
	if path == "" {
		path = opts.Prefs.P4ConfigPath()
	}
	if path == "" {
		return nil, nil
	}

	cfg, err := checkout.LoadConfig(path)
	if err != nil {
		return nil, errors.Errorf("loading checkout config: %w", err)
	}
	p4, err := checkout.NewP4(cfg)
	if err != nil {
		return nil, errors.Errorf("creating checkout provider: %w", err)
	}
	return p4, nil
}

// savePrefs records the run's inputs for next time; failure to persist them
// never fails the run.
func savePrefs(o *opts.RootOpts, root string) {
	o.Prefs.SetLastRoot(root)
	if o.Config.Script != "" {
		o.Prefs.SetLastScript(o.Config.Script)
	}
	if o.Config.P4Config != "" {
		o.Prefs.SetP4ConfigPath(o.Config.P4Config)
	}
	if err := o.Prefs.Save(); err != nil {
		o.Logger.Warningf("saving preferences: %v", err)
	}
}

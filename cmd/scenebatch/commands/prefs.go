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
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/walteh/scenebatch/cmd/scenebatch/opts"
	"gitlab.com/tozd/go/errors"
)

// NewPrefsCmd creates a new prefs command
func NewPrefsCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Show the stored preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			data := pterm.TableData{
				{"key", "value"},
				{"last_root", opts.Prefs.LastRoot()},
				{"last_script", opts.Prefs.LastScript()},
				{"p4config_path", opts.Prefs.P4ConfigPath()},
			}
			if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
				return errors.Errorf("rendering table: %w", err)
			}
			return nil
		},
	}

	cmd.AddCommand(newPrefsSetCmd(opts), newPrefsClearCmd(opts))

	return cmd
}

// newPrefsSetCmd sets one preference key
func newPrefsSetCmd(opts *opts.RootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a preference (last_root, last_script, p4config_path)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]
			switch key {
			case "last_root":
				opts.Prefs.SetLastRoot(value)
			case "last_script":
				opts.Prefs.SetLastScript(value)
			case "p4config_path":
				opts.Prefs.SetP4ConfigPath(value)
			default:
				return errors.Errorf("unknown preference key: %s", key)
			}
			if err := opts.Prefs.Save(); err != nil {
				return errors.Errorf("saving preferences: %w", err)
			}
			return nil
		},
	}
}

// newPrefsClearCmd resets all preferences
func newPrefsClearCmd(opts *opts.RootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Reset all stored preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Prefs.SetLastRoot("")
			opts.Prefs.SetLastScript("")
			opts.Prefs.SetP4ConfigPath("")
			if err := opts.Prefs.Save(); err != nil {
				return errors.Errorf("saving preferences: %w", err)
			}
			return nil
		},
	}
}

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
	"context"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/walteh/scenebatch/pkg/access"
	"github.com/walteh/scenebatch/pkg/log"
	"github.com/walteh/scenebatch/pkg/pending"
	"github.com/walteh/scenebatch/pkg/reconcile"
	"github.com/walteh/scenebatch/pkg/reveal"
)

// Top-level menu actions. File entries are appended after these.
const (
	actionContinue    = "continue (execute the batch)"
	actionAbort       = "abort (nothing will be modified)"
	actionCheckoutAll = "checkout all read-only files"
	actionRefreshAll  = "refresh all files"
	actionOpenDir     = "open the scan directory"
)

// Per-file menu actions.
const (
	fileActionCheckout = "checkout from version control"
	fileActionForce    = "force writable on disk"
	fileActionSkip     = "skip this file"
	fileActionUnskip   = "unskip this file"
	fileActionRefresh  = "refresh"
	fileActionReveal   = "reveal in file manager"
	fileActionBack     = "back"
)

// confirm runs the interactive confirmation round. It returns true when the
// user chose to continue with no file left read-only, false on abort.
func confirm(ctx context.Context, logger *log.Logger, rec *reconcile.Reconciler, set *pending.Set, root string) (bool, error) {
	for {
		renderPendingTable(set)

		canProceed := reconcile.CanProceed(set)
		if !canProceed {
			logger.Warning("read-only files must be checked out, forced writable, or skipped before continuing")
		}

		options := []string{}
		if canProceed {
			options = append(options, actionContinue)
		}
		options = append(options, actionCheckoutAll, actionRefreshAll, actionOpenDir)
		for _, f := range set.Files() {
			options = append(options, fileEntry(f))
		}
		options = append(options, actionAbort)

		choice, err := pterm.DefaultInteractiveSelect.
			WithOptions(options).
			WithDefaultText("confirm write access").
			WithMaxHeight(15).
			Show()
		if err != nil {
			return false, err
		}

		switch choice {
		case actionContinue:
			return true, nil
		case actionAbort:
			return false, nil
		case actionCheckoutAll:
			if err := rec.CheckoutAll(ctx, set); err != nil {
				logger.Warningf("checkout: %v", err)
			}
		case actionRefreshAll:
			rec.RefreshAll(set)
		case actionOpenDir:
			if err := reveal.OpenDirectory(ctx, root); err != nil {
				logger.Warningf("opening directory: %v", err)
			}
		default:
			f := fileForEntry(set, choice)
			if f == nil {
				continue
			}
			if err := confirmFile(ctx, logger, rec, f); err != nil {
				return false, err
			}
		}
	}
}

// confirmFile runs the per-file submenu once
func confirmFile(ctx context.Context, logger *log.Logger, rec *reconcile.Reconciler, f *pending.File) error {
	options := []string{}
	if f.State == access.StateReadOnly {
		options = append(options, fileActionCheckout, fileActionForce)
	}
	if f.State == access.StateSkipped {
		options = append(options, fileActionUnskip)
	} else {
		options = append(options, fileActionSkip)
	}
	options = append(options, fileActionRefresh, fileActionReveal, fileActionBack)

	choice, err := pterm.DefaultInteractiveSelect.
		WithOptions(options).
		WithDefaultText(f.DisplayName).
		Show()
	if err != nil {
		return err
	}

	switch choice {
	case fileActionCheckout:
		if err := rec.Checkout(ctx, f); err != nil {
			logger.Warningf("%v", err)
		}
	case fileActionForce:
		if err := rec.ForceWritable(ctx, f); err != nil {
			logger.Warningf("%v", err)
		}
	case fileActionSkip, fileActionUnskip:
		rec.ToggleSkip(f)
	case fileActionRefresh:
		rec.Refresh(f)
	case fileActionReveal:
		if err := reveal.RevealFile(ctx, f.Path); err != nil {
			logger.Warningf("revealing file: %v", err)
		}
	}
	return nil
}

// renderPendingTable prints the current classification of every file
func renderPendingTable(set *pending.Set) {
	data := pterm.TableData{{"file", "state", "note"}}
	for _, f := range set.Files() {
		data = append(data, []string{f.DisplayName, stateCell(f.State), f.Note})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func stateCell(s access.State) string {
	switch s {
	case access.StateWritable:
		return pterm.Green(s.String())
	case access.StateReadOnly:
		return pterm.Red(s.String())
	case access.StateMissing:
		return pterm.Yellow(s.String())
	case access.StateSkipped:
		return pterm.Gray(s.String())
	default:
		return s.String()
	}
}

// fileEntry renders one selectable menu entry. The full path is the entry
// key: display names collide as soon as two subdirectories hold files with
// the same basename, and every file must stay individually reachable.
func fileEntry(f *pending.File) string {
	return fmt.Sprintf("%s [%s]", f.Path, f.State)
}

// fileForEntry maps a menu entry back to its file
func fileForEntry(set *pending.Set, entry string) *pending.File {
	for _, f := range set.Files() {
		if fileEntry(f) == entry {
			return f
		}
	}
	return nil
}

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

// Package batch executes the user script against a confirmed set of pending
// files, one at a time. Every file is re-classified immediately before it is
// touched: the confirmation round runs at human speed and the filesystem is
// not locked during it, so the state seen at confirmation time may have
// drifted by the time execution reaches the file.
package batch

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/walteh/scenebatch/pkg/access"
	"github.com/walteh/scenebatch/pkg/document"
	"github.com/walteh/scenebatch/pkg/pending"
	"gitlab.com/tozd/go/errors"
)

// 🔧 Options contains configuration for one batch execution
type Options struct {
	// Script is run against every eligible file
	Script document.Script
	// Persist saves each document after its script run succeeds
	Persist bool
}

// 📊 Summary aggregates per-file outcomes for the result report
type Summary struct {
	Processed int // Every file in the set
	Succeeded int
	Failed    int // Anything that is neither success nor an explicit skip
	Skipped   int
}

// 📋 Result is the aggregate report of a batch run
type Result struct {
	files   *pending.Set
	Summary Summary
}

// Files returns the per-file records, outcomes attached, in batch order
func (r *Result) Files() []*pending.File {
	return r.files.Files()
}

// Diagnostics returns one formatted line per non-success file
func (r *Result) Diagnostics() []string {
	var out []string
	for _, f := range r.files.Files() {
		if f.Outcome() == pending.OutcomeSuccess {
			continue
		}
		out = append(out, fmt.Sprintf("%s: %s: %s", f.DisplayName, f.Outcome(), f.Diagnostic()))
	}
	return out
}

// 🏃 Execute runs the script over every file in the set, in insertion order.
// Per-file failures never abort the run and nothing is retried; the host
// document is reset to an empty one afterward no matter what happened.
func Execute(ctx context.Context, set *pending.Set, host document.Host, opts Options) (*Result, error) {
	logger := zerolog.Ctx(ctx)
	logger.Info().Int("files", set.Len()).Msg("executing batch")

	result := &Result{files: set}
	for _, f := range set.Files() {
		executeFile(ctx, f, host, opts)
		result.Summary.tally(f.Outcome())
	}
	result.Summary.Processed = set.Len()

	// Cleanup step, not file-specific: never leave the last scene open.
	if err := host.NewEmpty(ctx); err != nil {
		return result, errors.Errorf("resetting host document: %w", err)
	}

	return result, nil
}

// executeFile runs the per-file state machine and records exactly one outcome
func executeFile(ctx context.Context, f *pending.File, host document.Host, opts Options) {
	logger := zerolog.Ctx(ctx).With().Str("path", f.Path).Logger()

	// Only files confirmed writable are eligible; everything else got its
	// verdict at confirmation time.
	if f.State != access.StateWritable {
		outcome := pending.OutcomeNotFound
		switch f.State {
		case access.StateSkipped:
			outcome = pending.OutcomeSkipped
		case access.StateReadOnly:
			outcome = pending.OutcomeReadOnlyBlocked
		}
		f.SetOutcome(outcome, fmt.Sprintf("file not processed, state at confirmation: %s", f.State))
		logger.Debug().Stringer("state", f.State).Msg("file ineligible for execution")
		return
	}

	// Drift check: re-classify right before mutating.
	switch fresh := access.Classify(f.Path); fresh {
	case access.StateMissing:
		f.SetOutcome(pending.OutcomeMissingDuringConfirmation,
			"file disappeared between confirmation and execution")
		logger.Warn().Msg("file missing at execution time")
		return
	case access.StateWritable:
		// Still good.
	default:
		f.SetOutcome(pending.OutcomeTamperedDuringConfirmation,
			fmt.Sprintf("file state changed between confirmation and execution: %s", fresh))
		logger.Warn().Stringer("state", fresh).Msg("file tampered with during confirmation")
		return
	}

	logger.Info().Msg("opening document")
	if err := host.Open(ctx, f.Path); err != nil {
		f.SetOutcome(pending.OutcomeInvalid, err.Error())
		return
	}

	if err := host.Eval(ctx, opts.Script); err != nil {
		f.SetOutcome(pending.OutcomeFailed, err.Error())
		logger.Warn().Err(err).Msg("script raised")
		return
	}

	if opts.Persist {
		if err := host.Save(ctx); err != nil {
			f.SetOutcome(pending.OutcomeFailed, err.Error())
			logger.Warn().Err(err).Msg("saving document failed")
			return
		}
	}

	f.SetOutcome(pending.OutcomeSuccess, "")
}

func (s *Summary) tally(o pending.Outcome) {
	switch o {
	case pending.OutcomeSuccess:
		s.Succeeded++
	case pending.OutcomeSkipped:
		s.Skipped++
	default:
		s.Failed++
	}
}

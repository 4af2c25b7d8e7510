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

// Package reconcile drives a set of pending files toward an executable
// state. During the confirmation round each read-only file can be checked
// out from version control, forced writable on disk, or skipped outright;
// the batch may proceed only once no file is left read-only.
package reconcile

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/scenebatch/pkg/access"
	"github.com/walteh/scenebatch/pkg/checkout"
	"github.com/walteh/scenebatch/pkg/pending"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/singleflight"
)

var (
	// ErrNoProvider means checkout was requested but no version-control
	// provider is configured. A configuration error, reported to the caller.
	ErrNoProvider = errors.New("no checkout provider configured")
)

// 🔧 Options contains configuration for the reconciler
type Options struct {
	// Provider handles checkout calls. Optional: without one, Checkout
	// surfaces ErrNoProvider and force-writable remains the only remedy.
	Provider checkout.Provider
}

// 🎮 Reconciler owns the confirmation-round state transitions
type Reconciler struct {
	provider checkout.Provider
	group    singleflight.Group
}

// 🏭 New creates a reconciler
func New(opts Options) *Reconciler {
	return &Reconciler{provider: opts.Provider}
}

// 📋 BuildPending constructs one pending file per path, classifying each.
// Paths keep their given order for the rest of the batch run.
func (r *Reconciler) BuildPending(ctx context.Context, paths []string) *pending.Set {
	logger := zerolog.Ctx(ctx)

	set := pending.NewSet()
	for _, p := range paths {
		f := pending.NewFile(p, "")
		set.Add(f)
		logger.Debug().Str("path", p).Stringer("state", f.State).Msg("classified pending file")
	}
	return set
}

// 📝 Checkout asks the provider for edit access on a read-only file and
// re-classifies it afterward. Calling it on a file that is not read-only is
// a no-op. Concurrent calls for the same path collapse into one provider
// call, so a confirmation round cannot stack p4 requests for one file.
func (r *Reconciler) Checkout(ctx context.Context, f *pending.File) error {
	if f.State != access.StateReadOnly {
		return nil
	}
	if r.provider == nil {
		f.Note = ErrNoProvider.Error()
		return ErrNoProvider
	}

	_, err, _ := r.group.Do(f.Path, func() (interface{}, error) {
		return nil, r.provider.Edit(ctx, f.Path)
	})
	if err != nil {
		if errors.Is(err, checkout.ErrNotOnClient) {
			f.Note = "file is unknown to the version-control server, use force-writable instead"
			return errors.Errorf("checking out %s: %w", f.DisplayName, err)
		}
		f.Note = err.Error()
		return errors.Errorf("checking out %s: %w", f.DisplayName, err)
	}

	f.Note = ""
	f.State = access.Classify(f.Path)
	return nil
}

// 📝 ForceWritable clears the read-only bit on disk, bypassing version
// control, and re-classifies. No-op unless the file is read-only.
func (r *Reconciler) ForceWritable(ctx context.Context, f *pending.File) error {
	if f.State != access.StateReadOnly {
		return nil
	}
	if err := access.MakeWritable(f.Path); err != nil {
		f.Note = err.Error()
		return errors.Errorf("forcing %s writable: %w", f.DisplayName, err)
	}

	zerolog.Ctx(ctx).Debug().Str("path", f.Path).Msg("cleared read-only bit")

	f.Note = ""
	f.State = access.Classify(f.Path)
	return nil
}

// 📝 ToggleSkip flips a file between skipped and its real disk state.
// Toggling twice lands back on the fresh classification, which equals the
// starting state only if the filesystem held still in between.
func (r *Reconciler) ToggleSkip(f *pending.File) {
	if f.State == access.StateSkipped {
		f.State = access.Classify(f.Path)
	} else {
		f.State = access.StateSkipped
	}
}

// 📝 Refresh re-classifies a file. Skip is sticky: a skipped file stays
// skipped until ToggleSkip explicitly clears it.
func (r *Reconciler) Refresh(f *pending.File) {
	if f.State == access.StateSkipped {
		return
	}
	f.State = access.Classify(f.Path)
}

// 📝 CheckoutAll attempts checkout for every read-only entry. Failures are
// collected per file, not short-circuited: one stubborn file must not block
// the others' checkout attempts.
func (r *Reconciler) CheckoutAll(ctx context.Context, set *pending.Set) error {
	var errs []error
	for _, f := range set.Files() {
		if err := r.Checkout(ctx, f); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// 📝 RefreshAll re-classifies every non-skipped entry
func (r *Reconciler) RefreshAll(set *pending.Set) {
	for _, f := range set.Files() {
		r.Refresh(f)
	}
}

// ✅ CanProceed is the gate over the whole collection: true iff no entry is
// read-only. Missing files pass — a missing file means "new file, nothing to
// lock" — and skipped files are the user's problem no longer.
func CanProceed(set *pending.Set) bool {
	for _, f := range set.Files() {
		if f.State == access.StateReadOnly {
			return false
		}
	}
	return true
}

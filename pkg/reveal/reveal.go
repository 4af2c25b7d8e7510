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

// Package reveal opens paths in the platform file manager.
package reveal

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"gitlab.com/tozd/go/errors"
)

// 📂 OpenDirectory opens path in the platform file manager
func OpenDirectory(ctx context.Context, path string) error {
	if _, err := os.Stat(path); err != nil {
		return errors.Errorf("directory does not exist: %s", path)
	}
	return openWith(ctx, path)
}

// 📂 RevealFile opens the file manager at the file's directory, selecting
// the file where the platform supports it.
func RevealFile(ctx context.Context, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return errors.Errorf("path does not exist: %s", path)
	}
	if info.IsDir() {
		return openWith(ctx, path)
	}

	switch runtime.GOOS {
	case "windows":
		return run(ctx, "explorer", "/select,", filepath.FromSlash(path))
	case "darwin":
		return run(ctx, "open", "-R", path)
	case "linux":
		// No portable file selection on linux, open the directory instead.
		return openWith(ctx, filepath.Dir(path))
	default:
		return errors.Errorf("unsupported platform: %s", runtime.GOOS)
	}
}

func openWith(ctx context.Context, path string) error {
	switch runtime.GOOS {
	case "windows":
		return run(ctx, "explorer", filepath.FromSlash(path))
	case "darwin":
		return run(ctx, "open", path)
	case "linux":
		return run(ctx, "xdg-open", path)
	default:
		return errors.Errorf("unsupported platform: %s", runtime.GOOS)
	}
}

func run(ctx context.Context, bin string, args ...string) error {
	if err := exec.CommandContext(ctx, bin, args...).Start(); err != nil {
		return errors.Errorf("launching %s: %w", bin, err)
	}
	return nil
}

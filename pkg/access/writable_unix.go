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

//go:build !windows

package access

import (
	"os"

	"golang.org/x/sys/unix"
)

// isWritable asks the kernel whether the calling process may write the file,
// which accounts for ownership and group membership, not just mode bits.
func isWritable(path string, _ os.FileInfo) bool {
	return unix.Access(path, unix.W_OK) == nil
}

// makeWritable adds the write bit for owner, group, and other. Whether group
// and other should really gain write access is an open policy question; this
// matches the established checkout workflow.
func makeWritable(path string, info os.FileInfo) error {
	return os.Chmod(path, info.Mode().Perm()|0o222)
}

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

//go:build windows

package access

import "os"

// isWritable checks the read-only attribute, which os.Stat surfaces through
// the 0200 owner-write bit on windows.
func isWritable(_ string, info os.FileInfo) bool {
	return info.Mode().Perm()&0o200 != 0
}

// makeWritable clears the read-only attribute.
func makeWritable(path string, info os.FileInfo) error {
	return os.Chmod(path, info.Mode().Perm()|0o200)
}

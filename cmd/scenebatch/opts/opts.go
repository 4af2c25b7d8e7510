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

// Package opts carries the dependencies shared by all subcommands.
package opts

import (
	"github.com/walteh/scenebatch/pkg/config"
	"github.com/walteh/scenebatch/pkg/log"
	"github.com/walteh/scenebatch/pkg/prefs"
)

// 🔧 RootOpts contains shared dependencies for commands
type RootOpts struct {
	// Config is the run configuration, nil when no config file was found
	Config *config.Config
	// ConfigPath is where Config was loaded from (or looked for)
	ConfigPath string
	// Prefs is the persisted preferences store
	Prefs *prefs.Store
	// Logger is the user-facing console logger
	Logger *log.Logger
}

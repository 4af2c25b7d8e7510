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

package document_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/scenebatch/pkg/document"
	"gitlab.com/tozd/go/errors"
)

// 🧪 TestParseKind tests script kind parsing
func TestParseKind(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    document.Kind
		wantErr bool
	}{
		{name: "python", input: "python", want: document.KindPython},
		{name: "mel", input: "mel", want: document.KindMEL},
		{name: "unknown", input: "lua", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, err := document.ParseKind(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, kind)
			assert.Equal(t, tt.input, kind.String())
		})
	}
}

// 🧪 TestMemHostRecordsOps tests the call log of the in-memory host
func TestMemHostRecordsOps(t *testing.T) {
	ctx := context.Background()
	host := document.NewMemHost()

	require.NoError(t, host.Open(ctx, "/p/a.mb"))
	require.NoError(t, host.Eval(ctx, document.Script{Text: "print(1)", Kind: document.KindPython}))
	require.NoError(t, host.Save(ctx))
	require.NoError(t, host.NewEmpty(ctx))

	assert.Equal(t, []string{
		"open /p/a.mb",
		"eval python /p/a.mb",
		"save /p/a.mb",
		"new",
	}, host.Ops)
	assert.Empty(t, host.Current())
}

// 🧪 TestMemHostFailures tests scripted failures and no-document guards
func TestMemHostFailures(t *testing.T) {
	ctx := context.Background()
	host := document.NewMemHost()

	// No document open yet: both calls fail and neither pollutes the op log
	require.Error(t, host.Eval(ctx, document.Script{Text: "x", Kind: document.KindMEL}))
	require.Error(t, host.Save(ctx))
	assert.Empty(t, host.Ops)

	host.FailEval["/p/a.mb"] = errors.New("NameError: name 'cmds' is not defined")
	require.NoError(t, host.Open(ctx, "/p/a.mb"))
	err := host.Eval(ctx, document.Script{Text: "x", Kind: document.KindPython})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NameError")
}

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

package log

import (
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/walteh/scenebatch/pkg/batch"
	"github.com/walteh/scenebatch/pkg/pending"
)

// 🎨 Display configuration
const (
	fileIndent   = 4  // spaces to indent file entries
	nameWidth    = 35 // Base width for filename
	outcomeWidth = 28 // Width for outcome text
)

// 🎯 Logger handles structured logging with console output
type Logger struct {
	zlog    zerolog.Logger
	console io.Writer
	mu      sync.Mutex
}

// 🏭 New creates a new logger
func New(console io.Writer, level zerolog.Level) *Logger {
	zlog := zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger().Level(level)
	return &Logger{
		zlog:    zlog,
		console: console,
		mu:      sync.Mutex{},
	}
}

// 📝 formatFileOutcome formats a per-file outcome for display
func (l *Logger) formatFileOutcome(f *pending.File) string {
	var symbol rune
	var symbolColor color.Attribute
	switch f.Outcome() {
	case pending.OutcomeSuccess:
		symbol = '✓'
		symbolColor = color.FgGreen
	case pending.OutcomeSkipped:
		symbol = '-'
		symbolColor = color.FgYellow
	case pending.OutcomeTamperedDuringConfirmation, pending.OutcomeMissingDuringConfirmation:
		symbol = '⟳'
		symbolColor = color.FgMagenta
	default:
		symbol = '✗'
		symbolColor = color.FgRed
	}

	line := fmt.Sprintf("%s%s %s %s",
		fmt.Sprintf("%*s", fileIndent, ""),
		color.New(symbolColor).Sprint(string(symbol)),
		fmt.Sprintf("%-*s", nameWidth, f.DisplayName),
		fmt.Sprintf("%-*s", outcomeWidth, f.Outcome()))
	if f.Diagnostic() != "" && f.Outcome() != pending.OutcomeSuccess {
		line += color.New(color.Faint).Sprint(f.Diagnostic())
	}
	return line
}

// 📝 LogFileOutcome logs one file's execution outcome
func (l *Logger) LogFileOutcome(f *pending.File) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintln(l.console, l.formatFileOutcome(f))

	l.zlog.Info().
		Str("file", f.Path).
		Stringer("outcome", f.Outcome()).
		Str("diagnostic", f.Diagnostic()).
		Msg("file outcome")
}

// 📝 LogSummary logs the aggregate result of a batch run
func (l *Logger) LogSummary(s batch.Summary) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintf(l.console, "\n%s %s %s %s %s\n",
		color.New(color.Bold).Sprintf("%d processed", s.Processed),
		color.New(color.Faint).Sprint("•"),
		color.New(color.FgGreen).Sprintf("%d succeeded", s.Succeeded),
		color.New(color.FgRed).Sprintf("%d failed", s.Failed),
		color.New(color.FgYellow).Sprintf("%d skipped", s.Skipped))

	l.zlog.Info().
		Int("processed", s.Processed).
		Int("succeeded", s.Succeeded).
		Int("failed", s.Failed).
		Int("skipped", s.Skipped).
		Msg("batch complete")
}

// 📝 Header logs a header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	name := color.New(color.Bold, color.FgCyan).Sprint("scenebatch")
	fmt.Fprintf(l.console, "\n%s %s\n\n", name, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Success logs a success message
func (l *Logger) Success(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "✅ %s\n", color.New(color.FgGreen).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}

// 📝 Error logs an error message
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "❌ %s\n", color.New(color.FgRed).Sprint(msg))
	l.zlog.Error().Msg(msg)
}

// 📝 Info logs an info message
func (l *Logger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "ℹ️  %s\n", color.New(color.FgCyan).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Info(fmt.Sprintf(format, args...))
}

// 📝 Warningf logs a formatted warning message
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.Warning(fmt.Sprintf(format, args...))
}

// 📝 Errorf logs a formatted error message
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Error(fmt.Sprintf(format, args...))
}

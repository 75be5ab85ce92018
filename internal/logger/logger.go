// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog.Logger with the constructors and context
// helpers shared by the Bluedog bridge and terminal client.
//
// The Logger type embeds zerolog.Logger so Debug, Info, Warn, Error and the
// rest of the zerolog API are available directly on *Logger. Components
// receive a *Logger in their constructors; request-scoped loggers are
// obtained via FromContext or FromRequest.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

func configureGlobals() {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"
}

func newLogger(w io.Writer, role string) *Logger {
	logger := zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// NewLogger constructs a *Logger writing JSON to os.Stdout.
//
// Every entry carries a "role" field set to role (e.g. "bridge"), a
// timestamp and a "func" caller field holding the fully-qualified function
// name instead of file:line.
func NewLogger(role string) *Logger {
	configureGlobals()
	return newLogger(os.Stdout, role)
}

// NewClientLogger constructs a *Logger that appends to the file at path so
// the terminal UI keeps the screen to itself. Parent directories are
// created. When path is empty or cannot be opened the logger falls back to
// io.Discard, since writing to stdout would corrupt the UI.
func NewClientLogger(role, path string) *Logger {
	configureGlobals()

	if path == "" {
		return newLogger(io.Discard, role)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return newLogger(io.Discard, role)
	}

	logFile, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return newLogger(io.Discard, role)
	}

	return newLogger(logFile, role)
}

// SetLevel changes the global level. Unknown names leave it untouched and
// report false.
func SetLevel(name string) bool {
	if name == "" {
		return false
	}
	level, err := zerolog.ParseLevel(strings.ToLower(name))
	if err != nil {
		return false
	}
	zerolog.SetGlobalLevel(level)
	return true
}

// Nop returns a *Logger that discards all output. Used in tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger inheriting the receiver's fields.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest returns the logger attached to the request's context.
func FromRequest(r *http.Request) *Logger {
	return &Logger{*log.Ctx(r.Context())}
}

// FromContext returns the logger attached to ctx via zerolog's WithContext.
// zerolog falls back to its default logger, so the result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}

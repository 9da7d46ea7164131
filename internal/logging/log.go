//
// MIT License
//
// Copyright (c) 2026 The Connect Four Engine Authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package logging is a thin helper around "github.com/op/go-logging" that
// reduces each call site to a single GetLog call, following the same
// pattern the engine's teacher project uses for its own module loggers.
package logging

import (
	"os"

	"github.com/op/go-logging"

	"github.com/connectfour-dev/connectfour/internal/config"
)

var (
	engineLog *logging.Logger
	searchLog *logging.Logger
	testLog   *logging.Logger

	format = logging.MustStringFormatter(
		`%{time:15:04:05.000} %{shortpkg:-8.8s}:%{shortfile:-14.14s} %{level:-7.7s}:  %{message}`,
	)
)

func init() {
	engineLog = logging.MustGetLogger("engine")
	searchLog = logging.MustGetLogger("search")
	testLog = logging.MustGetLogger("test")
}

func backend(level logging.Level) logging.Backend {
	b := logging.NewLogBackend(os.Stdout, "", 0)
	formatted := logging.NewBackendFormatter(b, format)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(level, "")
	return leveled
}

// GetLog returns the standard engine-level logger, wired to the log level
// from config.Settings.
func GetLog() *logging.Logger {
	engineLog.SetBackend(backend(logging.Level(config.LogLevel)))
	return engineLog
}

// GetSearchLog returns a logger intended for the search package, which can
// be raised independently of the standard engine logger when diagnosing the
// negamax driver.
func GetSearchLog() *logging.Logger {
	searchLog.SetBackend(backend(logging.Level(config.SearchLogLevel)))
	return searchLog
}

// GetTestLog returns a logger for use in _test.go files.
func GetTestLog() *logging.Logger {
	testLog.SetBackend(backend(logging.Level(config.TestLogLevel)))
	return testLog
}

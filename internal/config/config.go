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

// Package config holds globally available configuration variables which are
// either set by defaults, read from a config file, or overwritten by
// command line options of the cmd/connectfour binary.
package config

import (
	"fmt"
	"log"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/connectfour-dev/connectfour/internal/util"
)

// globally available config values.
var (
	// ConfFile holds the path to the used config file (relative to the
	// working directory unless absolute).
	ConfFile = "./config.toml"

	// LogLevel defines the general log level - can be overwritten by cmd
	// line options or config file.
	LogLevel = 4

	// SearchLogLevel defines the search log level - can be overwritten by
	// cmd line options or config file.
	SearchLogLevel = 2

	// TestLogLevel defines the test log level.
	TestLogLevel = 2

	// Settings is the global configuration read in from file.
	Settings conf

	initialized = false
)

type conf struct {
	Log   logConfiguration
	Cache cacheConfiguration
	Book  bookConfiguration
}

// Setup reads the configuration file and applies settings from it on top of
// the defaults. Safe to call more than once; only the first call has effect.
func Setup() {
	if initialized {
		return
	}

	path, _ := util.ResolveFile(ConfFile)
	if _, err := toml.DecodeFile(path, &Settings); err != nil {
		log.Println("Config file not found, using defaults. (", err, ")")
	}

	setupLogLvl()
	setupCache()
	setupBook()
	initialized = true
}

// String prints out the current configuration settings and values using
// reflection, mirroring the engine's own verbose startup banner.
func (settings *conf) String() string {
	var c strings.Builder
	c.WriteString("Cache Config:\n")
	writeFields(&c, &settings.Cache)
	c.WriteString("\nBook Config:\n")
	writeFields(&c, &settings.Book)
	return c.String()
}

func writeFields(c *strings.Builder, v interface{}) {
	s := reflect.ValueOf(v).Elem()
	t := s.Type()
	for i := 0; i < s.NumField(); i++ {
		f := s.Field(i)
		c.WriteString(fmt.Sprintf("%-2d: %-22s %-6s = %v\n", i, t.Field(i).Name, f.Type(), f.Interface()))
	}
}

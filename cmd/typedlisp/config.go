// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
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

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const noConfigMessage = "no typedlisp.toml found in this directory or any parent"

// activeConfig is the project config loaded once in main; demo and check
// read it for their rendering limits and prelude extensions. Commands
// exercised directly in tests, without going through main, see the default.
var activeConfig = defaultConfig()

type projectConfig struct {
	Checker checkerConfig `toml:"checker"`
}

type checkerConfig struct {
	Color             string   `toml:"color"`
	MaxDiagnostics    int      `toml:"max_diagnostics"`
	PreludeExtensions []string `toml:"prelude_extensions"`
}

func defaultConfig() projectConfig {
	return projectConfig{Checker: checkerConfig{Color: "auto", MaxDiagnostics: 100}}
}

// findConfig searches startDir and each of its parents for typedlisp.toml,
// the way surge.toml is located by surge's own project-manifest lookup.
func findConfig(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "typedlisp.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

func loadConfig(startDir string) (projectConfig, error) {
	cfg := defaultConfig()
	path, ok, err := findConfig(startDir)
	if err != nil {
		return cfg, err
	}
	if !ok {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	return cfg, nil
}

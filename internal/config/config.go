//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

// Package config loads the driver's startup configuration, the
// concrete form of the ".goswatrc" file the original teacher program's
// main.go only ever left as a TODO.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the settings that shape the CLI/REPL driver. Load starts
// from Default(), so any field the rc file does not set keeps its
// default; a field the file sets, even to a zero value, takes that value.
type Config struct {
	Prompt      string   `toml:"prompt"`
	HistoryFile string   `toml:"history_file"`
	Color       bool     `toml:"color"`
	Preload     []string `toml:"preload"`
}

// Default returns the configuration used when no rc file is present.
func Default() Config {
	return Config{
		Prompt:      "lisp> ",
		HistoryFile: "~/.golisp_history",
		Color:       true,
	}
}

// Load reads the TOML configuration file at path, merging it over
// Default(). A missing file is not an error; it simply yields the
// defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ExpandHome replaces a leading "~" in path with the current user's
// home directory.
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// DefaultPath returns the conventional location of the rc file,
// "~/.golisprc".
func DefaultPath() string {
	return ExpandHome("~/.golisprc")
}

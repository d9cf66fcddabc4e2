package main

import (
	"errors"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the defaults logikusi reads from an optional TOML config
// file; every field can still be overridden by its corresponding flag.
type Config struct {
	// ProgramFile is the path to a Logikus program to consult at startup.
	ProgramFile string `toml:"program_file"`

	// Trace turns on clause-attempt and write/N tracing from startup.
	Trace bool `toml:"trace"`

	// Prompt is the string shown before each line read in interactive mode.
	Prompt string `toml:"prompt"`
}

// defaultConfig is used whenever no config file is found at the requested
// path.
func defaultConfig() Config {
	return Config{
		Prompt: "?- ",
	}
}

// loadConfig reads a TOML config file at path. A missing file is not an
// error: defaultConfig is returned instead, since the config file is always
// optional. Any other read or decode error is returned as-is.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

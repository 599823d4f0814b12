package main

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// configPath is looked up relative to the working directory.
const configPath = "lam.toml"

// fileConfig mirrors a lam.toml configuration file. Flags take
// precedence over anything set here.
type fileConfig struct {
	// Free is the default free-variable context, outermost first.
	Free []string `toml:"free"`

	// MaxSteps bounds reduction; 0 means unbounded.
	MaxSteps int `toml:"max_steps"`
}

func loadFileConfig(path string) (*fileConfig, error) {
	var cfg fileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}
	return &cfg, nil
}

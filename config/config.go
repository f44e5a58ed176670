// Package config holds the run configuration for gitact. A Config is built
// once at startup and threaded through the pipeline; there is no ambient
// package-level state.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/imdario/mergo"
)

type Config struct {
	Today           bool       `json:"today,omitempty"`
	Authors         []string   `json:"authors,omitempty"`
	ProjectsFile    string     `json:"projects_file,omitempty"`
	OutputDir       string     `json:"output_dir,omitempty"`
	SummaryTemplate string     `json:"summary_template,omitempty"`
	Dryrun          bool       `json:"dryrun,omitempty"`
	Debug           bool       `json:"debug,omitempty"`
	Quiet           bool       `json:"quiet,omitempty"`
	Now             time.Time  `json:"-"`
	Term            TerminalIO `json:"-"`
}

func New(overrides *Config) Config {
	return NewWithTerminalIO(overrides, nil)
}

func NewWithTerminalIO(overrides *Config, termio *TerminalIO) Config {
	cfg := GetDefault()
	if termio == nil {
		termio = &DefaultTermIO
	}
	cfg.Term = *termio

	if overrides != nil {
		if err := mergo.Merge(&cfg, overrides, mergo.WithOverride); err != nil {
			panic(err)
		}
		// mergo skips time.Time's unexported fields
		if !overrides.Now.IsZero() {
			cfg.Now = overrides.Now
		}
	}
	if cfg.Now.IsZero() {
		cfg.Now = time.Now()
	}
	return cfg
}

func (c Config) Validate() error {
	if c.ProjectsFile == "" {
		return ConfigError{Op: "validate", Err: fmt.Errorf("projects file must be set")}
	}
	if c.OutputDir != "" {
		info, err := os.Stat(c.OutputDir)
		if err != nil {
			return ConfigError{Op: "validate", Path: c.OutputDir, Err: err}
		}
		if !info.IsDir() {
			return ConfigError{Op: "validate", Path: c.OutputDir, Err: fmt.Errorf("not a directory")}
		}
	}
	return nil
}

// Midnight returns the start of the run's local day, the lower bound for
// --today filtering.
func (c Config) Midnight() time.Time {
	y, m, d := c.Now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, c.Now.Location())
}

func (c Config) Printf(msg string, args ...interface{}) {
	if c.Quiet {
		return
	}
	c.Term.Printf(msg+"\n", args...)
}

func (c Config) Errorf(msg string, args ...interface{}) {
	fmt.Fprintf(c.Term.Stderr, msg+"\n", args...)
}

func (c Config) Debugf(msg string, args ...interface{}) {
	if !c.Debug {
		return
	}
	c.Printf(msg, args...)
}

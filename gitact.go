// Package gitact aggregates commit history across a configured list of
// local git repositories into a single consolidated CSV report.
//
// Related packages: config, model, runner, vcs, vcs/gitcli
package gitact

import "github.com/jeffrom/gitact/config"

// Config holds the configuration variables for gitact. This struct is
// intended for command-line use, so not all of its attributes are
// applicable to every operation.
//
// See "go doc github.com/jeffrom/gitact/config Config" for more
// information.
type Config = config.Config

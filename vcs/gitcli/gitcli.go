// Package gitcli implements vcs.Interface using the git commandline tool.
package gitcli

import (
	"bytes"
	"context"
	"strings"

	"github.com/jeffrom/gitact/config"
	"github.com/jeffrom/gitact/model"
	"github.com/jeffrom/gitact/vcs"
)

// Git implements vcs.Interface using the git commandline tool.
type Git struct {
	cfg config.Config
}

func New(cfg config.Config) *Git {
	return &Git{cfg: cfg}
}

func (g *Git) IsRepo(ctx context.Context, dir string) bool {
	_, err := g.call(ctx, dir, []string{"rev-parse", "--git-dir"})
	return err == nil
}

const EXPECTED_LOG_PARTS = 5

// logFormat emits one line per commit with NUL-separated fields. Git
// forbids NUL bytes inside commit objects and %s never contains newlines,
// so field boundaries are unambiguous even for subjects containing "|",
// commas, or quotes.
const logFormat = "--pretty=tformat:%H%x00%an%x00%ae%x00%ai%x00%s"

func (g *Git) ReadCommits(ctx context.Context, dir string, opts vcs.LogOpts) ([]*model.Commit, error) {
	args := []string{"log", logFormat}
	if !opts.Since.IsZero() {
		args = append(args, "--since", FormatGitISO8601(opts.Since))
	}
	g.cfg.Debugf("+ git %s (in %s)", ArgsString(args), dir)

	b, err := g.call(ctx, dir, args)
	if err != nil {
		return nil, err
	}

	var commits []*model.Commit
	for _, line := range bytes.Split(b, []byte("\n")) {
		s := string(line)
		if s == "" {
			continue
		}
		parts := strings.Split(s, "\x00")
		if len(parts) != EXPECTED_LOG_PARTS {
			g.cfg.Errorf("Warning: skipping malformed log line in %s: expected %d parts, got %d", dir, EXPECTED_LOG_PARTS, len(parts))
			continue
		}

		authorDate, err := ParseGitISO8601(parts[3])
		if err != nil {
			g.cfg.Errorf("Warning: skipping commit %s in %s: %v", parts[0], dir, err)
			continue
		}

		commits = append(commits, &model.Commit{
			ID:          parts[0],
			Author:      parts[1],
			AuthorEmail: parts[2],
			AuthorDate:  authorDate,
			Subject:     parts[4],
		})
	}
	return commits, nil
}

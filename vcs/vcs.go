// Package vcs abstracts version control systems. Currently just git.
package vcs

import (
	"context"
	"fmt"
	"time"

	"github.com/jeffrom/gitact/model"
)

// NotARepoError indicates a path exists but holds no version control
// metadata.
type NotARepoError struct {
	Dir string
}

func (e NotARepoError) Error() string {
	return fmt.Sprintf("vcs: %q is not a git repository", e.Dir)
}

func (e NotARepoError) Is(other error) bool {
	_, ok := other.(NotARepoError)
	return ok
}

// LogOpts narrows a commit history read.
type LogOpts struct {
	// Since drops commits authored before it. The zero value means no
	// lower bound.
	Since time.Time
}

type Interface interface {
	// IsRepo reports whether dir is a git working directory.
	IsRepo(ctx context.Context, dir string) bool
	// ReadCommits reads commit history from the repository at dir in
	// git's native reverse-chronological order.
	ReadCommits(ctx context.Context, dir string, opts LogOpts) ([]*model.Commit, error)
}

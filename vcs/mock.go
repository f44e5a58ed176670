package vcs

import (
	"context"
	"time"

	"github.com/jeffrom/gitact/model"
)

type Mock struct {
	t       time.Time
	commits map[string][]*model.Commit
	errs    map[string]error
}

func NewMock() *Mock {
	return &Mock{
		t:       time.Now(),
		commits: make(map[string][]*model.Commit),
		errs:    make(map[string]error),
	}
}

// SetCommits registers dir as a repository containing commits. Commits
// without an author date get descending timestamps, newest first, matching
// git's default ordering.
func (m *Mock) SetCommits(dir string, commits ...*model.Commit) *Mock {
	finalCommits := make([]*model.Commit, len(commits))
	for i, commit := range commits {
		c := *commit
		if c.AuthorDate.IsZero() {
			c.AuthorDate = m.t
			m.t = m.t.Add(-time.Minute)
		}
		finalCommits[i] = &c
	}
	m.commits[dir] = finalCommits
	return m
}

// SetErr makes ReadCommits fail for dir, simulating a broken repository.
func (m *Mock) SetErr(dir string, err error) *Mock {
	m.commits[dir] = nil
	m.errs[dir] = err
	return m
}

func (m *Mock) IsRepo(ctx context.Context, dir string) bool {
	_, ok := m.commits[dir]
	return ok
}

func (m *Mock) ReadCommits(ctx context.Context, dir string, opts LogOpts) ([]*model.Commit, error) {
	if err := m.errs[dir]; err != nil {
		return nil, err
	}
	var commits []*model.Commit
	for _, c := range m.commits[dir] {
		if !opts.Since.IsZero() && c.AuthorDate.Before(opts.Since) {
			continue
		}
		commits = append(commits, c)
	}
	return commits, nil
}

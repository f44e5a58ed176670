// Package runner manages command-line execution
package runner

import (
	"context"
	"os"
	"time"

	"github.com/jeffrom/gitact/config"
	"github.com/jeffrom/gitact/model"
	"github.com/jeffrom/gitact/vcs"
)

type Runner struct {
	cfg config.Config
	vcs vcs.Interface

	// per-run counters for the summary
	scanned int
	skipped int
}

func New(cfg config.Config, vcs vcs.Interface) *Runner {
	return &Runner{
		cfg: cfg,
		vcs: vcs,
	}
}

// Scan walks projects in order, reading each repository's log and tagging
// commits with the project's name and path. A failing project is warned
// about and skipped; only the accumulated records from the remaining
// projects are returned.
func (r *Runner) Scan(ctx context.Context, projects []config.Project) ([]model.Record, error) {
	var since time.Time
	if r.cfg.Today {
		since = r.cfg.Midnight()
	}

	var records []model.Record
	for _, proj := range projects {
		r.cfg.Printf("Processing: %s", proj.Path)

		info, err := os.Stat(proj.Path)
		if err != nil || !info.IsDir() {
			r.cfg.Errorf("Warning: project path does not exist: %s", proj.Path)
			r.skipped++
			continue
		}
		if !r.vcs.IsRepo(ctx, proj.Path) {
			r.cfg.Errorf("Warning: %v", vcs.NotARepoError{Dir: proj.Path})
			r.skipped++
			continue
		}
		if r.cfg.Dryrun {
			r.cfg.Printf("+ would read log from %s (dryrun)", proj.Path)
			r.scanned++
			continue
		}

		commits, err := r.vcs.ReadCommits(ctx, proj.Path, vcs.LogOpts{Since: since})
		if err != nil {
			r.cfg.Errorf("Warning: reading log from %s failed: %v", proj.Path, err)
			r.skipped++
			continue
		}
		r.scanned++

		n := 0
		for _, c := range commits {
			if !matchAuthor(c.Author, r.cfg.Authors) {
				continue
			}
			if r.cfg.Today && c.AuthorDate.Before(since) {
				continue
			}
			records = append(records, model.NewRecord(c, proj.Name, proj.Path))
			n++
		}
		r.cfg.Printf("  Found %d commits", n)
	}
	return records, nil
}

// matchAuthor is an exact-match allow-list: an empty list passes everyone.
func matchAuthor(author string, allowed []string) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, name := range allowed {
		if author == name {
			return true
		}
	}
	return false
}

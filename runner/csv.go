package runner

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jeffrom/gitact/config"
	"github.com/jeffrom/gitact/model"
	"github.com/jeffrom/gitact/vcs/gitcli"
)

// csvHeader is the fixed column order of the report.
var csvHeader = []string{
	"commit_hash",
	"author_name",
	"author_email",
	"date",
	"Application_type",
	"Description_Technical",
	"project_path",
}

const outputTimestamp = "20060102_150405"

// OutputName returns the timestamped report filename for this run.
func OutputName(cfg config.Config) string {
	ts := cfg.Now.Format(outputTimestamp)
	name := fmt.Sprintf("git_log_%s.csv", ts)
	if cfg.Today {
		name = fmt.Sprintf("git_log_today_%s.csv", ts)
	}
	dir := cfg.OutputDir
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, name)
}

// WriteCSV writes the header row and one row per record. Zero records
// still produces a valid header-only report.
func WriteCSV(w io.Writer, records []model.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, rec := range records {
		row := []string{
			rec.ID,
			rec.Author,
			rec.AuthorEmail,
			gitcli.FormatGitISO8601(rec.AuthorDate),
			rec.ApplicationType,
			sanitizeSubject(rec.Subject),
			rec.ProjectPath,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteReport writes the records to the run's timestamped output file and
// returns its path.
func (r *Runner) WriteReport(records []model.Record) (string, error) {
	path := OutputName(r.cfg)
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := WriteCSV(f, records); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return path, nil
}

// git strips newlines from %s subjects, but a stray carriage return can
// survive on some platforms.
func sanitizeSubject(s string) string {
	return strings.ReplaceAll(s, "\r", " ")
}

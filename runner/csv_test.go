package runner

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/jeffrom/gitact/config"
	"github.com/jeffrom/gitact/model"
	"github.com/jeffrom/gitact/vcs/gitcli"
)

var testDate = time.Date(2023, 6, 1, 15, 4, 5, 0, time.FixedZone("", -7*3600))

func testRecord(id, author, subject string) model.Record {
	return model.Record{
		Commit: model.Commit{
			ID:          id,
			Author:      author,
			AuthorEmail: author + "@example.com",
			AuthorDate:  testDate,
			Subject:     subject,
		},
		ApplicationType: "cool-app",
		ProjectPath:     "/srv/cool-app",
	}
}

func TestWriteCSVRoundTrip(t *testing.T) {
	records := []model.Record{
		testRecord("deadbeef", "alice", "plain subject"),
		testRecord("cafebabe", "bob", `subject with, comma and "quotes"`),
		testRecord("baddcafe", "carol", "subject with | pipes"),
	}

	b := &bytes.Buffer{}
	if err := WriteCSV(b, records); err != nil {
		t.Fatal(err)
	}

	rows, err := csv.NewReader(b).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != len(records)+1 {
		t.Fatalf("expected %d rows, got %d", len(records)+1, len(rows))
	}

	header := rows[0]
	expectHeader := []string{"commit_hash", "author_name", "author_email", "date", "Application_type", "Description_Technical", "project_path"}
	for i, col := range expectHeader {
		if header[i] != col {
			t.Errorf("expected header column %d to be %q, got %q", i, col, header[i])
		}
	}

	for i, rec := range records {
		row := rows[i+1]
		if row[0] != rec.ID {
			t.Errorf("row %d: expected hash %q, got %q", i, rec.ID, row[0])
		}
		if row[1] != rec.Author {
			t.Errorf("row %d: expected author %q, got %q", i, rec.Author, row[1])
		}
		if row[3] != gitcli.FormatGitISO8601(rec.AuthorDate) {
			t.Errorf("row %d: expected date %q, got %q", i, gitcli.FormatGitISO8601(rec.AuthorDate), row[3])
		}
		if row[5] != rec.Subject {
			t.Errorf("row %d: expected subject %q, got %q", i, rec.Subject, row[5])
		}
		if row[6] != rec.ProjectPath {
			t.Errorf("row %d: expected path %q, got %q", i, rec.ProjectPath, row[6])
		}
	}
}

func TestWriteCSVEmpty(t *testing.T) {
	b := &bytes.Buffer{}
	if err := WriteCSV(b, nil); err != nil {
		t.Fatal(err)
	}
	rows, err := csv.NewReader(b).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected a header-only report, got %d rows", len(rows))
	}
}

func TestOutputName(t *testing.T) {
	now := time.Date(2023, 6, 1, 15, 4, 5, 0, time.Local)
	cfg := config.New(&config.Config{Now: now})
	if got, expect := OutputName(cfg), "git_log_20230601_150405.csv"; got != expect {
		t.Errorf("expected %q, got %q", expect, got)
	}

	cfg = config.New(&config.Config{Now: now, Today: true})
	if got, expect := OutputName(cfg), "git_log_today_20230601_150405.csv"; got != expect {
		t.Errorf("expected %q, got %q", expect, got)
	}

	cfg = config.New(&config.Config{Now: now, OutputDir: "/tmp/reports"})
	if got, expect := OutputName(cfg), "/tmp/reports/git_log_20230601_150405.csv"; got != expect {
		t.Errorf("expected %q, got %q", expect, got)
	}
}

func TestSanitizeSubject(t *testing.T) {
	if got := sanitizeSubject("a\rb"); got != "a b" {
		t.Errorf("expected carriage return to be replaced, got %q", got)
	}
}

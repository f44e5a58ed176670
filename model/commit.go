// Package model contains abstract data models.
package model

import "time"

// Commit is a single commit as reported by git log.
type Commit struct {
	ID          string `json:"commit"`
	Author      string
	AuthorEmail string
	AuthorDate  time.Time
	Subject     string
}

func (c *Commit) ShortID() string {
	if len(c.ID) < 8 {
		return c.ID
	}
	return c.ID[:8]
}

// Record is one row of the consolidated report: a commit tagged with the
// project it came from. ApplicationType and ProjectPath are always copied
// from the project descriptor that produced the record.
type Record struct {
	Commit
	ApplicationType string
	ProjectPath     string
}

// NewRecord tags a commit with its project's display name and path.
func NewRecord(c *Commit, applicationType, projectPath string) Record {
	return Record{
		Commit:          *c,
		ApplicationType: applicationType,
		ProjectPath:     projectPath,
	}
}

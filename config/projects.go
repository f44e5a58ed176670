package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Project describes one repository to scan. Name and Path are required;
// Category and Type are passthrough metadata.
type Project struct {
	Name     string `json:"name"`
	Path     string `json:"path"`
	Category string `json:"category,omitempty"`
	Type     string `json:"type,omitempty"`
}

// ConfigError is fatal: the run aborts without writing a report.
type ConfigError struct {
	Op   string
	Path string
	Err  error
}

func (e ConfigError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("config: %s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("config: %s: %v", e.Op, e.Err)
}

func (e ConfigError) Unwrap() error { return e.Err }

func (e ConfigError) Is(other error) bool {
	_, ok := other.(ConfigError)
	return ok
}

// LoadProjects reads a JSON array of Project descriptors. Missing files,
// malformed JSON, and members without a name or path are all fatal.
func LoadProjects(path string) ([]Project, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, ConfigError{Op: "read", Path: path, Err: err}
	}

	var projects []Project
	if err := json.Unmarshal(b, &projects); err != nil {
		return nil, ConfigError{Op: "parse", Path: path, Err: err}
	}

	for i := range projects {
		p := &projects[i]
		p.Path = strings.TrimRight(p.Path, "/")
		if p.Name == "" {
			return nil, ConfigError{Op: "validate", Path: path, Err: fmt.Errorf("project %d: name is required", i)}
		}
		if p.Path == "" {
			return nil, ConfigError{Op: "validate", Path: path, Err: fmt.Errorf("project %q: path is required", p.Name)}
		}
	}
	return projects, nil
}

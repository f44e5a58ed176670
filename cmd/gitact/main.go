package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ghodss/yaml"
	"github.com/imdario/mergo"
	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"

	"github.com/jeffrom/gitact/config"
	"github.com/jeffrom/gitact/runner"
	"github.com/jeffrom/gitact/vcs/gitcli"
)

var (
	// overridden by go build -X
	Version string
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(rawArgs []string) error {
	cfg := config.New(nil)

	var help bool
	var version bool
	var cfgFile string
	var printConfig bool
	var readStats bool
	flags := pflag.NewFlagSet("gitact", pflag.ExitOnError)
	flags.BoolVarP(&help, "help", "h", false, "show help")
	flags.BoolVarP(&version, "version", "V", false, "print version and exit")
	flags.BoolVar(&cfg.Today, "today", false, "only include commits made today")
	flags.StringArrayVarP(&cfg.Authors, "author", "a", nil, "only include commits by author `name` (exact match)")
	flags.StringVarP(&cfg.ProjectsFile, "projects", "p", cfg.ProjectsFile, "read the project list from `file`")
	flags.StringVarP(&cfg.OutputDir, "output", "o", cfg.OutputDir, "write the report into `dir`")
	flags.BoolVarP(&readStats, "stats", "S", false, "print commit counts by project and author instead of writing a report")
	flags.BoolVarP(&cfg.Dryrun, "dry-run", "n", false, "Don't do destructive operations")
	flags.BoolVarP(&cfg.Debug, "verbose", "v", false, "print additional debugging info")
	flags.BoolVarP(&cfg.Quiet, "quiet", "q", false, "print as little as necessary")
	flags.StringVarP(&cfgFile, "config", "c", "", "specify config `file`")
	flags.BoolVar(&printConfig, "print-config", false, "Print effective configuration and exit")

	if err := flags.Parse(rawArgs); err != nil {
		return err
	}

	if help {
		usage(cfg, flags)
		return nil
	}
	if version {
		cfg.Printf("%s", Version)
		return nil
	}

	if err := config.LoadDotEnv(); err != nil {
		cfg.Errorf("Warning: failed to load .env: %v", err)
	}

	flagCfg := cfg
	gitactYAML, err := readGitactYAML(cfgFile)
	if err != nil {
		return err
	}
	if gitactYAML != nil {
		if err := mergo.Merge(&cfg, gitactYAML, mergo.WithOverride); err != nil {
			return err
		}

		// flags set on the command line beat the yaml file
		if flags.Lookup("author").Changed {
			cfg.Authors = flagCfg.Authors
		}
		if flags.Lookup("projects").Changed {
			cfg.ProjectsFile = flagCfg.ProjectsFile
		}
		if flags.Lookup("output").Changed {
			cfg.OutputDir = flagCfg.OutputDir
		}
		if flags.Lookup("today").Changed {
			cfg.Today = flagCfg.Today
		}
		if flags.Lookup("quiet").Changed {
			cfg.Quiet = flagCfg.Quiet
		}
	}
	if len(cfg.Authors) == 0 {
		cfg.Authors = config.AuthorsFromEnv()
	}

	if printConfig {
		b, err := yaml.Marshal(cfg)
		if err != nil {
			return err
		}
		cfg.Printf("%s", string(b))
		return nil
	}
	if cfg.Debug {
		b, err := json.MarshalIndent(cfg, "", "  ")
		die(err)
		cfg.Debugf("config: %s", string(b))
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	// done setting up config

	if cfg.Today {
		cfg.Printf("Filtering commits for today: %s", cfg.Now.Format("2006-01-02"))
	}
	if len(cfg.Authors) > 0 {
		cfg.Printf("Author filters: %q", cfg.Authors)
	}

	projects, err := config.LoadProjects(cfg.ProjectsFile)
	if err != nil {
		return err
	}
	cfg.Printf("Found %d projects to process", len(projects))

	git := gitcli.New(cfg)
	rnr := runner.New(cfg, git)
	ctx := context.Background()

	records, err := rnr.Scan(ctx, projects)
	if err != nil {
		return err
	}

	if readStats {
		stats := rnr.Stats(records)
		return stats.TextSummary(cfg.Term.Stdout)
	}
	if cfg.Dryrun {
		return rnr.Summary(cfg.Term.Stdout, records, "")
	}

	path, err := rnr.WriteReport(records)
	if err != nil {
		return err
	}

	if cfg.Quiet {
		if isatty.IsTerminal(os.Stdout.Fd()) {
			fmt.Fprintln(cfg.Term.Stdout, path)
		} else {
			fmt.Fprint(cfg.Term.Stdout, path)
		}
		return nil
	}
	return rnr.Summary(cfg.Term.Stdout, records, path)
}

func die(err error) {
	if err != nil {
		panic(err)
	}
}

func usage(cfg config.Config, flags *pflag.FlagSet) {
	cfg.Printf(`%s

A utility for aggregating git commit history from multiple repositories into a
single CSV report.

FLAGS
%s
EXAMPLES

# report on every commit in every configured project
$ gitact

# only today's commits
$ gitact --today

# only commits by Alice or Bob
$ gitact -a "Alice Smith" -a "Bob Jones"

# print commit counts instead of writing a report
$ gitact --stats
`, os.Args[0], flags.FlagUsages())
}

func readGitactYAML(p string) (*config.Config, error) {
	if p != "" {
		b, err := os.ReadFile(p)
		if err != nil {
			return nil, err
		}
		cfg := &config.Config{}
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	for {
		candPath := filepath.Join(wd, "gitact.yaml")
		b, err := os.ReadFile(candPath)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				wd, _ = filepath.Split(filepath.Clean(wd))
				if wd == "/" {
					break
				}
				continue
			}
			return nil, err
		}

		cfg := &config.Config{}
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	return nil, nil
}

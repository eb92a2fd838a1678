package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/jaxxstorm/nextver"
	"github.com/sirupsen/logrus"
)

// Version will be set by build process
var Version = "dev"

type CLI struct {
	Repo        string `short:"t" name:"target-dir" aliases:"target_dir" default:"." type:"path" help:"Target directory. Parent directories are searched for a repository."`
	Commitish   string `short:"c" default:"HEAD" help:"Git commitish to calculate from"`
	Language    string `short:"l" help:"Output format (generic, semver, python, javascript, js, node, dotnet, csharp, go, golang)"`
	Config      string `type:"path" help:"Path to config file (default: .nextver.yaml in the worktree root)"`
	Release     bool   `short:"r" help:"Create an empty release commit 'release: <NEW_VERSION>'. Requires a clean worktree."`
	Force       bool   `short:"f" help:"Create the release commit even if the worktree has changes"`
	JSON        bool   `short:"j" help:"Output as JSON"`
	Debug       bool   `help:"Enable debug logging"`
	ShowVersion bool   `help:"Show version information" name:"version"`

	stdout io.Writer `kong:"-"`
}

type output struct {
	*nextver.Result
	PreviousRelease string                    `json:"release_commit"`
	Formats         *nextver.LanguageVersions `json:"formats"`
	ReleaseCommit   string                    `json:"created_release_commit,omitempty"`
}

func main() {
	var cli CLI

	kong.Parse(&cli,
		kong.Name("nextver"),
		kong.Description("Calculate the next semantic version from the commits since the last release commit"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": Version,
		},
	)

	err := cli.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func (c *CLI) Run() error {
	if c.stdout == nil {
		c.stdout = os.Stdout
	}

	if c.ShowVersion {
		return c.showVersion()
	}

	return c.calculateVersion()
}

func (c *CLI) showVersion() error {
	versionInfo := map[string]string{
		"version": Version,
		"name":    "nextver",
	}

	if c.JSON {
		return json.NewEncoder(c.stdout).Encode(versionInfo)
	}

	fmt.Fprintf(c.stdout, "nextver version %s\n", Version)
	return nil
}

func (c *CLI) calculateVersion() error {
	repoPath := c.Repo
	if repoPath == "" {
		repoPath = "."
	}

	repo, err := nextver.OpenRepository(repoPath)
	if err != nil {
		return err
	}

	cfg, err := c.loadConfig(repo)
	if err != nil {
		return err
	}

	logger := newLogger(cfg.LogLevel)
	if c.Debug {
		logger.SetLevel(logrus.DebugLevel)
	}

	language := cfg.Language
	if c.Language != "" {
		if err := nextver.ValidateLanguage(c.Language); err != nil {
			return err
		}
		language = c.Language
	}

	commitish := c.Commitish
	if commitish == "" {
		commitish = "HEAD"
	}

	result, err := nextver.Calculate(nextver.Options{
		Repository:    repo,
		Commitish:     plumbing.Revision(commitish),
		ReleaseMarker: cfg.ReleaseMarker,
		SkipMerges:    cfg.SkipMergeCommits,
		Logger:        logger,
	})
	if err != nil {
		return fmt.Errorf("calculating version: %w", err)
	}

	formats, err := nextver.Formats(result.Version)
	if err != nil {
		return err
	}

	out := output{
		Result:          result,
		PreviousRelease: result.Release.String(),
		Formats:         formats,
	}

	if c.Release && result.Bump == nextver.BumpNone {
		logger.WithField("version", result.Version).Info("No changes since the last release, skipping release commit")
	} else if c.Release {
		hash, err := nextver.CommitRelease(repo, result.Version, nextver.ReleaseOptions{
			ReleaseMarker: cfg.ReleaseMarker,
			Force:         c.Force,
			Parent:        result.Head,
		})
		if err != nil {
			return fmt.Errorf("releasing %s: %w", result.Version, err)
		}
		out.ReleaseCommit = hash.String()

		logger.WithFields(logrus.Fields{
			"commit":  hash.String()[:8],
			"version": result.Version,
		}).Info("Created release commit")
	}

	if c.JSON {
		return json.NewEncoder(c.stdout).Encode(out)
	}

	fmt.Fprintln(c.stdout, formats.For(language))
	return nil
}

func (c *CLI) loadConfig(repo *git.Repository) (*nextver.Config, error) {
	if c.Config != "" {
		return nextver.LoadConfig(c.Config, true)
	}

	workTree, err := repo.Worktree()
	if err != nil {
		// Bare repositories have no worktree to hold a config file
		return nextver.DefaultConfig(), nil
	}
	return nextver.LoadConfig(nextver.DefaultConfigPath(workTree.Filesystem.Root()), false)
}

func newLogger(level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logger.SetLevel(parsed)
	return logger
}

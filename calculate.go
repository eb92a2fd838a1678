package nextver

import (
	"fmt"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/sirupsen/logrus"
)

// Calculator computes the next version from a commit log
type Calculator struct {
	Log CommitLog

	// ReleaseMarker is the release commit title prefix (default: "release:")
	ReleaseMarker string

	// SkipMerges excludes merge commits from classification
	SkipMerges bool

	Logger logrus.FieldLogger
}

// Calculate finds the last release reachable from head, classifies the
// commits made since, and returns the release version with the strongest
// bump applied. It only reads from the commit log, so repeated calls against
// the same history return the same result.
func (c *Calculator) Calculate(head plumbing.Hash) (*Result, error) {
	if c.Log == nil {
		return nil, fmt.Errorf("commit log is required")
	}

	logger := c.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	release, err := FindRelease(c.Log, head, c.ReleaseMarker)
	if err != nil {
		return nil, err
	}

	previous, err := ReleaseVersion(release, c.ReleaseMarker)
	if err != nil {
		return nil, err
	}

	logger.WithFields(logrus.Fields{
		"commit":  release.ShortHash(),
		"version": previous,
	}).Debug("Found release commit")

	level, count, err := Classify(c.Log, head, release, ClassifyOptions{
		SkipMerges: c.SkipMerges,
		Logger:     logger,
	})
	if err != nil {
		return nil, err
	}

	next := previous
	next.Apply(level)

	logger.WithFields(logrus.Fields{
		"previous": previous,
		"next":     next,
		"bump":     level,
		"commits":  count,
	}).Debug("Calculated next version")

	return &Result{
		Version:  next,
		Previous: previous,
		Bump:     level,
		Release:  release.Hash,
		Head:     head,
		Commits:  count,
	}, nil
}

// Calculate determines the next version of the repository in opts
func Calculate(opts Options) (*Result, error) {
	if opts.Repository == nil {
		return nil, fmt.Errorf("repository is required")
	}

	head, err := ResolveHead(opts.Repository, opts.Commitish)
	if err != nil {
		return nil, err
	}

	calc := &Calculator{
		Log:           NewCommitLog(opts.Repository),
		ReleaseMarker: opts.ReleaseMarker,
		SkipMerges:    opts.SkipMerges,
		Logger:        opts.Logger,
	}
	return calc.Calculate(head)
}

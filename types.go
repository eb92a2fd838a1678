// Package nextver computes the next semantic version of a Git repository from
// the commits made since its last release commit.
//
// A release commit is a commit whose title starts with "release:" followed by
// a semantic version. Commits newer than the release are classified by their
// conventional-commit prefixes (feat!, feat, fix) and the strongest signal
// decides whether the major, minor or patch component is bumped.
package nextver

import (
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/sirupsen/logrus"
)

// DefaultReleaseMarker is the title prefix identifying release commits
const DefaultReleaseMarker = "release:"

// Options configures version calculation behavior
type Options struct {
	// Repository is the Git repository to analyze
	Repository *git.Repository

	// Commitish specifies which commit to calculate from (default: "HEAD")
	Commitish plumbing.Revision

	// ReleaseMarker overrides the release commit title prefix (default: "release:")
	ReleaseMarker string

	// SkipMerges excludes commits with more than one parent from classification
	SkipMerges bool

	// Logger receives debug output. Defaults to the logrus standard logger.
	Logger logrus.FieldLogger
}

// Result is the outcome of a version calculation
type Result struct {
	Version  Version       `json:"version"`
	Previous Version       `json:"previous"`
	Bump     BumpLevel     `json:"bump"`
	Release  plumbing.Hash `json:"-"`
	Head     plumbing.Hash `json:"-"`
	Commits  int           `json:"commits"`
}

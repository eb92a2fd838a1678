package nextver

import (
	"fmt"
	"strings"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/sirupsen/logrus"
)

// Conventional commit prefixes, matched at the start of any message line
const (
	prefixBreaking = "feat!"
	prefixFeature  = "feat"
	prefixFix      = "fix"
)

// ClassifyMessage returns the strongest bump signalled by any line of a
// commit message. Title and body lines are treated alike.
func ClassifyMessage(message string) BumpLevel {
	level := BumpNone
	for _, line := range strings.Split(message, "\n") {
		switch {
		case strings.HasPrefix(line, prefixBreaking):
			return BumpMajor
		case strings.HasPrefix(line, prefixFeature):
			level = level.Max(BumpMinor)
		case strings.HasPrefix(line, prefixFix):
			level = level.Max(BumpPatch)
		}
	}
	return level
}

// ClassifyOptions tunes Classify
type ClassifyOptions struct {
	// SkipMerges ignores commits with more than one parent. Merge messages
	// often quote the messages of the commits they merge.
	SkipMerges bool

	Logger logrus.FieldLogger
}

// Classify walks the commits newer than release, starting at head, and
// returns the strongest bump level found along with the number of commits
// classified. The release commit itself is never classified.
func Classify(log CommitLog, head plumbing.Hash, release *Commit, opts ClassifyOptions) (BumpLevel, int, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	walk := WalkOptions{
		Cutoff:   release.When,
		Boundary: release.Hash,
	}

	level := BumpNone
	count := 0
	err := log.Walk(head, walk, func(c *Commit) error {
		if opts.SkipMerges && c.NumParents > 1 {
			logger.WithField("commit", c.ShortHash()).Debug("Skipping merge commit")
			return nil
		}

		count++
		commitLevel := ClassifyMessage(c.Message)
		logger.WithFields(logrus.Fields{
			"commit": c.ShortHash(),
			"title":  c.Title(),
			"bump":   commitLevel,
		}).Debug("Classified commit")

		level = level.Max(commitLevel)
		return nil
	})
	if err != nil {
		return BumpNone, 0, fmt.Errorf("classifying commits since %s: %w", release.ShortHash(), err)
	}

	return level, count, nil
}

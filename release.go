package nextver

import (
	"fmt"
	"strings"

	"github.com/go-git/go-git/v5/plumbing"
)

// FindRelease returns the most recent commit reachable from head, head
// included, whose title starts with marker. Newest-first traversal guarantees
// that older release commits further back in history are never chosen.
func FindRelease(log CommitLog, head plumbing.Hash, marker string) (*Commit, error) {
	if marker == "" {
		marker = DefaultReleaseMarker
	}

	var release *Commit
	err := log.Walk(head, WalkOptions{}, func(c *Commit) error {
		if strings.HasPrefix(c.Title(), marker) {
			release = c
			return ErrStop
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("searching for release commit: %w", err)
	}

	if release == nil {
		return nil, fmt.Errorf("%w: no commit reachable from %s has a title starting with %q",
			ErrNoReleaseFound, head, marker)
	}
	return release, nil
}

// ReleaseVersion extracts the version embedded in a release commit title
func ReleaseVersion(release *Commit, marker string) (Version, error) {
	if marker == "" {
		marker = DefaultReleaseMarker
	}

	title := release.Title()
	if !strings.HasPrefix(title, marker) {
		return Version{}, fmt.Errorf("%w: commit %s title %q does not start with %q",
			ErrMalformedReleaseVersion, release.ShortHash(), title, marker)
	}

	raw := strings.TrimSpace(strings.TrimPrefix(title, marker))
	version, err := ParseVersion(raw)
	if err != nil {
		return Version{}, fmt.Errorf("%w: commit %s: %q: %v",
			ErrMalformedReleaseVersion, release.ShortHash(), raw, err)
	}
	return version, nil
}

// ReleaseTitle formats the title of a release commit for version
func ReleaseTitle(marker string, version Version) string {
	if marker == "" {
		marker = DefaultReleaseMarker
	}
	return fmt.Sprintf("%s %s", marker, version)
}

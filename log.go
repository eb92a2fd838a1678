package nextver

import (
	"strings"
	"time"

	"github.com/go-git/go-git/v5/plumbing"
)

// Commit is the read-only view of a commit used during version calculation
type Commit struct {
	Hash plumbing.Hash

	// When is the committer time. It is only used for ordering and cutoffs.
	When time.Time

	// Message is the raw commit message, title line plus optional body
	Message string

	NumParents int
}

// Title returns the first line of the commit message
func (c *Commit) Title() string {
	title, _, _ := strings.Cut(c.Message, "\n")
	return strings.TrimSuffix(title, "\r")
}

// ShortHash returns the abbreviated commit hash used in logs
func (c *Commit) ShortHash() string {
	return c.Hash.String()[:8]
}

// WalkOptions bounds a commit log walk
type WalkOptions struct {
	// Cutoff ends the walk at the first commit whose time is before it.
	// The zero value walks the whole history.
	Cutoff time.Time

	// Boundary excludes this commit, and the history reachable only through
	// it, from the walk. The zero hash excludes nothing.
	Boundary plumbing.Hash
}

// CommitLog supplies commit history.
//
// Implementations must visit commits newest-first by committer time, starting
// with the commit identified by from. The walk is lazy: fn is called once per
// commit and may return ErrStop to end the walk without error. Any other error
// from fn aborts the walk and is returned. A walk cannot be resumed, only
// restarted by calling Walk again.
type CommitLog interface {
	Walk(from plumbing.Hash, opts WalkOptions, fn func(*Commit) error) error
}

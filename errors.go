package nextver

import "errors"

var (
	// ErrRepositoryNotFound is returned when no repository exists at or above a directory
	ErrRepositoryNotFound = errors.New("no git repository found")

	// ErrNoHeadCommit is returned when the requested revision does not resolve to a commit
	ErrNoHeadCommit = errors.New("no head commit")

	// ErrNoReleaseFound is returned when no commit in history carries the release marker
	ErrNoReleaseFound = errors.New("no release commit found")

	// ErrMalformedReleaseVersion is returned when the text after the release marker is not a semantic version
	ErrMalformedReleaseVersion = errors.New("malformed release version")

	// ErrCommitDecode is returned when a commit message is not valid UTF-8 text
	ErrCommitDecode = errors.New("commit message cannot be decoded")

	// ErrDirtyWorktree is returned when a release commit is requested on a worktree with changes
	ErrDirtyWorktree = errors.New("worktree has uncommitted changes")

	// ErrHeadMoved is returned when a release commit would be placed on a different commit than the version was calculated at
	ErrHeadMoved = errors.New("HEAD is not the commit the version was calculated at")

	// ErrStop may be returned from a CommitLog walk callback to end the walk early
	ErrStop = errors.New("stop walk")
)

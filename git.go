// The worktree dirty check in this file is adapted from pulumictl
// (https://github.com/pulumi/pulumictl), licensed under the Apache License 2.0.

package nextver

import (
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"unicode/utf8"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
	"github.com/go-git/go-git/v5/storage/filesystem"
)

// OpenRepository opens the nearest Git repository at or above path
func OpenRepository(path string) (*git.Repository, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %q: %w", path, err)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		abs = resolved
	}

	repo, err := git.PlainOpenWithOptions(abs, &git.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, fmt.Errorf("%w in %s or its parents", ErrRepositoryNotFound, abs)
		}
		return nil, fmt.Errorf("opening repository at %s: %w", abs, err)
	}
	return repo, nil
}

// ResolveHead resolves a revision to the commit hash calculation starts from
func ResolveHead(repo *git.Repository, rev plumbing.Revision) (plumbing.Hash, error) {
	if rev == "" {
		rev = "HEAD"
	}

	hash, err := repo.ResolveRevision(rev)
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return plumbing.ZeroHash, fmt.Errorf("%w: %s does not resolve", ErrNoHeadCommit, rev)
		}
		return plumbing.ZeroHash, fmt.Errorf("resolving %s: %w", rev, err)
	}

	if _, err := repo.CommitObject(*hash); err != nil {
		return plumbing.ZeroHash, fmt.Errorf("%w: %s is not a commit: %v", ErrNoHeadCommit, rev, err)
	}
	return *hash, nil
}

type gitLog struct {
	repo *git.Repository
}

// NewCommitLog returns a CommitLog backed by a go-git repository. Commits are
// visited in committer time order, newest first.
func NewCommitLog(repo *git.Repository) CommitLog {
	return &gitLog{repo: repo}
}

func (l *gitLog) Walk(from plumbing.Hash, opts WalkOptions, fn func(*Commit) error) error {
	start, err := l.repo.CommitObject(from)
	if err != nil {
		return fmt.Errorf("getting commit object %s: %w", from, err)
	}

	var ignore []plumbing.Hash
	if !opts.Boundary.IsZero() {
		ignore = append(ignore, opts.Boundary)
	}

	walker := object.NewCommitIterCTime(start, nil, ignore)
	defer walker.Close()

	err = walker.ForEach(func(c *object.Commit) error {
		if !opts.Cutoff.IsZero() && c.Committer.When.Before(opts.Cutoff) {
			return storer.ErrStop
		}

		commit, err := newCommit(c)
		if err != nil {
			return err
		}

		if err := fn(commit); err != nil {
			if errors.Is(err, ErrStop) {
				return storer.ErrStop
			}
			return err
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("walking history from %s: %w", from, err)
	}
	return nil
}

func newCommit(c *object.Commit) (*Commit, error) {
	if !utf8.ValidString(c.Message) {
		return nil, fmt.Errorf("%w: %s", ErrCommitDecode, c.Hash)
	}

	return &Commit{
		Hash:       c.Hash,
		When:       c.Committer.When,
		Message:    c.Message,
		NumParents: c.NumParents(),
	}, nil
}

func workTreeIsDirty(repo *git.Repository) (bool, error) {
	workTree, err := repo.Worktree()
	if err != nil {
		return false, fmt.Errorf("getting worktree: %w", err)
	}

	// Fast path for filesystem storage
	if _, ok := repo.Storer.(*filesystem.Storage); ok {
		if dirty, err := checkDirtyWithGitCommand(workTree.Filesystem.Root()); err == nil {
			return dirty, nil
		}
	}

	status, err := workTree.Status()
	if err != nil {
		return false, fmt.Errorf("getting git status: %w", err)
	}

	return !status.IsClean(), nil
}

func checkDirtyWithGitCommand(repoPath string) (bool, error) {
	if _, err := exec.LookPath("git"); err != nil {
		return false, err
	}

	// Refresh index first
	cmd := exec.Command("git", "update-index", "-q", "--refresh")
	cmd.Dir = repoPath
	if err := cmd.Run(); err != nil {
		return true, nil
	}

	cmd = exec.Command("git", "status", "--porcelain")
	cmd.Dir = repoPath
	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return true, nil
		}
		return false, err
	}

	return len(output) > 0, nil
}

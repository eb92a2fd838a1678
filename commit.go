package nextver

import (
	"fmt"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// ReleaseOptions configures CommitRelease
type ReleaseOptions struct {
	// ReleaseMarker is the title prefix written (default: "release:")
	ReleaseMarker string

	// Force creates the commit even when the worktree has changes
	Force bool

	// Author defaults to the user configured in git
	Author *object.Signature

	// Parent is the commit the version was calculated at. When set, the
	// release is refused unless HEAD resolves to it.
	Parent plumbing.Hash
}

// CommitRelease records version as released by creating an empty commit
// titled "<marker> <version>" on top of the current HEAD.
func CommitRelease(repo *git.Repository, version Version, opts ReleaseOptions) (plumbing.Hash, error) {
	if !opts.Parent.IsZero() {
		head, err := ResolveHead(repo, "HEAD")
		if err != nil {
			return plumbing.ZeroHash, err
		}
		if head != opts.Parent {
			return plumbing.ZeroHash, fmt.Errorf("%w: HEAD is %s, version %s was calculated at %s",
				ErrHeadMoved, head.String()[:8], version, opts.Parent.String()[:8])
		}
	}

	if !opts.Force {
		dirty, err := workTreeIsDirty(repo)
		if err != nil {
			return plumbing.ZeroHash, fmt.Errorf("checking if worktree is dirty: %w", err)
		}
		if dirty {
			return plumbing.ZeroHash, fmt.Errorf("%w: commit or stash them, or force the release", ErrDirtyWorktree)
		}
	}

	workTree, err := repo.Worktree()
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("getting worktree: %w", err)
	}

	author := opts.Author
	if author == nil {
		author, err = configuredSignature(repo)
		if err != nil {
			return plumbing.ZeroHash, err
		}
	}

	hash, err := workTree.Commit(ReleaseTitle(opts.ReleaseMarker, version), &git.CommitOptions{
		Author:            author,
		AllowEmptyCommits: true,
	})
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("creating release commit: %w", err)
	}
	return hash, nil
}

func configuredSignature(repo *git.Repository) (*object.Signature, error) {
	cfg, err := repo.ConfigScoped(config.GlobalScope)
	if err != nil {
		return nil, fmt.Errorf("reading git config: %w", err)
	}

	if cfg.User.Name == "" || cfg.User.Email == "" {
		return nil, fmt.Errorf("user.name and user.email must be set in git config to create a release commit")
	}

	return &object.Signature{
		Name:  cfg.User.Name,
		Email: cfg.User.Email,
		When:  time.Now(),
	}, nil
}

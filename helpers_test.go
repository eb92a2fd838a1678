package nextver

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/storage/memory"
)

var testEpoch = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func testSignature(when time.Time) *object.Signature {
	return &object.Signature{
		Name:  "test",
		Email: "test@example.com",
		When:  when,
	}
}

// memoryLog is a linear in-memory history, newest commit first
type memoryLog struct {
	commits []*Commit
	walks   int
}

// newMemoryLog builds a linear history from messages given oldest first.
// Each commit is one minute newer than its parent.
func newMemoryLog(messages ...string) *memoryLog {
	log := &memoryLog{}
	for i, message := range messages {
		commit := &Commit{
			Hash:       plumbing.ComputeHash(plumbing.CommitObject, []byte(fmt.Sprintf("%d:%s", i, message))),
			When:       testEpoch.Add(time.Duration(i) * time.Minute),
			Message:    message,
			NumParents: 1,
		}
		if i == 0 {
			commit.NumParents = 0
		}
		log.commits = append([]*Commit{commit}, log.commits...)
	}
	return log
}

func (m *memoryLog) head() plumbing.Hash {
	return m.commits[0].Hash
}

// commit returns the commit with the given message
func (m *memoryLog) commit(message string) *Commit {
	for _, c := range m.commits {
		if c.Message == message {
			return c
		}
	}
	return nil
}

func (m *memoryLog) Walk(from plumbing.Hash, opts WalkOptions, fn func(*Commit) error) error {
	m.walks++

	started := false
	for _, c := range m.commits {
		if c.Hash == from {
			started = true
		}
		if !started {
			continue
		}
		if c.Hash == opts.Boundary {
			return nil
		}
		if !opts.Cutoff.IsZero() && c.When.Before(opts.Cutoff) {
			return nil
		}
		if err := fn(c); err != nil {
			if errors.Is(err, ErrStop) {
				return nil
			}
			return err
		}
	}

	if !started {
		return fmt.Errorf("commit %s not found", from)
	}
	return nil
}

// testRepoCreate creates a new in-memory git repository for testing
func testRepoCreate() (*git.Repository, error) {
	storage := memory.NewStorage()
	fs := memfs.New()
	return git.Init(storage, fs)
}

// testCommit adds a file and commits it with message at the given time
func testCommit(repo *git.Repository, message string, when time.Time) (plumbing.Hash, error) {
	workTree, err := repo.Worktree()
	if err != nil {
		return plumbing.ZeroHash, err
	}

	filename := fmt.Sprintf("file_%d.txt", when.UnixNano())
	if err := writeFile(workTree.Filesystem, filename, message); err != nil {
		return plumbing.ZeroHash, err
	}

	if _, err := workTree.Add(filename); err != nil {
		return plumbing.ZeroHash, err
	}

	return workTree.Commit(message, &git.CommitOptions{Author: testSignature(when)})
}

// testRepoHistory commits messages oldest first, one minute apart, and
// returns the hashes in the same order
func testRepoHistory(repo *git.Repository, messages ...string) ([]plumbing.Hash, error) {
	var hashes []plumbing.Hash
	for i, message := range messages {
		hash, err := testCommit(repo, message, testEpoch.Add(time.Duration(i)*time.Minute))
		if err != nil {
			return nil, err
		}
		hashes = append(hashes, hash)
	}
	return hashes, nil
}

// writeFile writes content to a file in the given filesystem
func writeFile(fs billy.Filesystem, filename, content string) error {
	file, err := fs.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = file.Write([]byte(content))
	return err
}

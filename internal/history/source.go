// Package history enumerates the current branch's commits and removes a
// selected commit either by folding its revert into the tip or by excising
// it with a rebase.
package history

import (
	"errors"
	"fmt"
	"io"
	"strings"

	gitlib "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/javoire/githelper/internal/git"
)

// Source lists commits of the current branch, newest first. A limit of 0
// returns the whole history.
type Source interface {
	Commits(limit int) ([]git.Commit, error)
}

// Backend names accepted by NewSource
const (
	BackendCLI    = "cli"
	BackendNative = "native"
)

// NewSource returns the source for backend. dir is only used by the native backend.
func NewSource(backend string, client git.GitClient, dir string) (Source, error) {
	switch backend {
	case "", BackendCLI:
		return NewCLISource(client), nil
	case BackendNative:
		return NewNativeSource(dir), nil
	}
	return nil, fmt.Errorf("unknown history backend %q", backend)
}

type cliSource struct {
	client git.GitClient
}

// NewCLISource lists commits by parsing `git log --oneline`
func NewCLISource(client git.GitClient) Source {
	return &cliSource{client: client}
}

func (s *cliSource) Commits(limit int) ([]git.Commit, error) {
	return s.client.Log(limit)
}

// shortHashLen matches git's default abbreviation
const shortHashLen = 7

type nativeSource struct {
	dir string
}

// NewNativeSource reads commits directly from the object database with go-git
func NewNativeSource(dir string) Source {
	if dir == "" {
		dir = "."
	}
	return &nativeSource{dir: dir}
}

func (s *nativeSource) Commits(limit int) ([]git.Commit, error) {
	repo, err := gitlib.PlainOpenWithOptions(s.dir, &gitlib.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, gitlib.ErrRepositoryNotExists) {
			return nil, git.ErrNotARepository
		}
		return nil, fmt.Errorf("open repository: %w", err)
	}
	head, err := repo.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return nil, git.ErrNoCommits
		}
		return nil, fmt.Errorf("resolve HEAD: %w", err)
	}

	iter, err := repo.Log(&gitlib.LogOptions{From: head.Hash(), Order: gitlib.LogOrderCommitterTime})
	if err != nil {
		return nil, fmt.Errorf("read commits: %w", err)
	}
	defer iter.Close()

	var commits []git.Commit
	for limit <= 0 || len(commits) < limit {
		c, err := iter.Next()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("iterate commits: %w", err)
		}
		summary, _, _ := strings.Cut(strings.TrimSpace(c.Message), "\n")
		commits = append(commits, git.Commit{
			Hash:    c.Hash.String()[:shortHashLen],
			Summary: strings.TrimSpace(summary),
		})
	}
	return commits, nil
}

package history

import (
	"fmt"
	"strings"

	"github.com/javoire/githelper/internal/git"
	"github.com/javoire/githelper/internal/prompt"
)

// Snapshot is a numbered view of the branch history taken at one moment.
// Numbering starts at 1 for the newest commit.
type Snapshot struct {
	Commits []git.Commit
	limit   int
}

// Len returns the number of commits in the snapshot
func (s *Snapshot) Len() int {
	return len(s.Commits)
}

// At returns the i-th newest commit
func (s *Snapshot) At(i int) (git.Commit, error) {
	if i < 1 || i > len(s.Commits) {
		return git.Commit{}, &prompt.ValidationError{
			Field:  "commit number",
			Value:  fmt.Sprint(i),
			Reason: fmt.Sprintf("must be between 1 and %d", len(s.Commits)),
		}
	}
	return s.Commits[i-1], nil
}

// Lines renders the snapshot as "n. hash summary" lines
func (s *Snapshot) Lines() []string {
	lines := make([]string, 0, len(s.Commits))
	for i, c := range s.Commits {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, c))
	}
	return lines
}

// Lister takes snapshots from a Source and re-validates selections
type Lister struct {
	source Source
	limit  int
}

// NewLister creates a Lister showing at most limit commits
func NewLister(source Source, limit int) *Lister {
	return &Lister{source: source, limit: limit}
}

// Snapshot captures the current history. Any failure to read it, including
// an empty branch, is reported as ErrNoCommits.
func (l *Lister) Snapshot() (*Snapshot, error) {
	commits, err := l.source.Commits(l.limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoCommits, err)
	}
	if len(commits) == 0 {
		return nil, ErrNoCommits
	}
	return &Snapshot{Commits: commits, limit: l.limit}, nil
}

// Resolve maps a selection made against snap onto the current history. The
// history is listed again; the commit must still be at the same position.
func (l *Lister) Resolve(snap *Snapshot, index int) (git.Commit, error) {
	want, err := snap.At(index)
	if err != nil {
		return git.Commit{}, err
	}

	fresh, err := l.source.Commits(snap.limit)
	if err != nil {
		return git.Commit{}, fmt.Errorf("failed to refresh commit list: %w", err)
	}
	if index <= len(fresh) && sameCommit(fresh[index-1], want) {
		return fresh[index-1], nil
	}
	for i, c := range fresh {
		if sameCommit(c, want) {
			return git.Commit{}, &StaleSnapshotError{Index: index, Commit: want, Position: i + 1}
		}
	}
	return git.Commit{}, &NotFoundError{Index: index, Commit: want}
}

// sameCommit compares abbreviated hashes, which may differ in length
func sameCommit(a, b git.Commit) bool {
	if a.Hash == "" || b.Hash == "" {
		return false
	}
	return strings.HasPrefix(a.Hash, b.Hash) || strings.HasPrefix(b.Hash, a.Hash)
}

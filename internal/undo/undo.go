// Package undo records inverse git commands for actions taken in a session.
package undo

import (
	"errors"
	"fmt"

	"github.com/javoire/githelper/internal/git"
)

// ErrEmpty is returned by Pop when there is nothing to undo
var ErrEmpty = errors.New("no actions to undo")

// Entry describes how to reverse one action. Steps run in order.
type Entry struct {
	Description string
	Steps       [][]string
}

// Stack is a LIFO of undo entries. It lives for one session.
type Stack struct {
	entries []Entry
}

// Push records an entry. Entries without steps are ignored.
func (s *Stack) Push(e Entry) {
	if len(e.Steps) == 0 {
		return
	}
	s.entries = append(s.entries, e)
}

// Peek returns the most recent entry without removing it
func (s *Stack) Peek() (Entry, bool) {
	if len(s.entries) == 0 {
		return Entry{}, false
	}
	return s.entries[len(s.entries)-1], true
}

// Pop removes and returns the most recent entry
func (s *Stack) Pop() (Entry, error) {
	e, ok := s.Peek()
	if !ok {
		return Entry{}, ErrEmpty
	}
	s.entries = s.entries[:len(s.entries)-1]
	return e, nil
}

// Len returns the number of entries
func (s *Stack) Len() int {
	return len(s.entries)
}

// Apply runs the entry's steps, stopping at the first failure
func Apply(client git.GitClient, e Entry) error {
	for _, step := range e.Steps {
		if _, err := client.Run(step...); err != nil {
			return fmt.Errorf("failed to undo %q: %w", e.Description, err)
		}
	}
	return nil
}

// Constructors for the inverse of common actions.

// Checkout reverses a branch switch
func Checkout(previous string) Entry {
	return Entry{
		Description: "switch back to " + previous,
		Steps:       [][]string{{"checkout", previous}},
	}
}

// CreateBranch reverses creating and checking out name
func CreateBranch(name, previous string) Entry {
	return Entry{
		Description: "delete new branch " + name,
		Steps:       [][]string{{"checkout", previous}, {"branch", "-D", name}},
	}
}

// DeleteBranch restores a deleted branch at its last commit
func DeleteBranch(name, hash string) Entry {
	return Entry{
		Description: "restore branch " + name,
		Steps:       [][]string{{"branch", name, hash}},
	}
}

// Commit reverses a new commit, keeping its changes staged. previous is the
// HEAD before the commit, empty when it was the first commit.
func Commit(previous string) Entry {
	if previous == "" {
		return Entry{
			Description: "undo initial commit (changes stay staged)",
			Steps:       [][]string{{"update-ref", "-d", "HEAD"}},
		}
	}
	return Entry{
		Description: "undo last commit (changes stay staged)",
		Steps:       [][]string{{"reset", "--soft", previous}},
	}
}

// Stage reverses staging paths; no paths means everything was staged
func Stage(paths ...string) Entry {
	step := []string{"reset", "--quiet"}
	if len(paths) > 0 {
		step = append(append(step, "--"), paths...)
	}
	return Entry{
		Description: "unstage changes",
		Steps:       [][]string{step},
	}
}

// ResetTo moves the branch back to hash. hard also resets the working tree.
func ResetTo(description, hash string, hard bool) Entry {
	mode := "--soft"
	if hard {
		mode = "--hard"
	}
	return Entry{
		Description: description,
		Steps:       [][]string{{"reset", mode, hash}},
	}
}

// Stash reverses a stash push
func Stash() Entry {
	return Entry{
		Description: "restore stashed changes",
		Steps:       [][]string{{"stash", "pop"}},
	}
}

// StashDrop restores a dropped stash from its commit
func StashDrop(message, hash string) Entry {
	return Entry{
		Description: "restore dropped stash",
		Steps:       [][]string{{"stash", "store", "-m", message, hash}},
	}
}

// AddRemote reverses adding a remote
func AddRemote(name string) Entry {
	return Entry{
		Description: "remove remote " + name,
		Steps:       [][]string{{"remote", "remove", name}},
	}
}

// RemoveRemote re-adds a removed remote
func RemoveRemote(name, url string) Entry {
	return Entry{
		Description: "re-add remote " + name,
		Steps:       [][]string{{"remote", "add", name, url}},
	}
}

// SetRemoteURL restores a remote's previous URL
func SetRemoteURL(name, previousURL string) Entry {
	return Entry{
		Description: fmt.Sprintf("restore %s URL to %s", name, previousURL),
		Steps:       [][]string{{"remote", "set-url", name, previousURL}},
	}
}

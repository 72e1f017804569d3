package history

import (
	"errors"
	"fmt"

	"github.com/javoire/githelper/internal/git"
)

// ErrNoCommits is returned when the branch history cannot be listed
var ErrNoCommits = git.ErrNoCommits

// ErrRootCommit is returned when excising a commit that has no parent
var ErrRootCommit = errors.New("cannot remove the root commit with a rebase")

// NotFoundError means the selected commit is no longer in the branch history
type NotFoundError struct {
	Index  int
	Commit git.Commit
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("commit #%d (%s) is no longer in the branch history", e.Index, e.Commit.Hash)
}

// StaleSnapshotError means the displayed list no longer matches the branch:
// the selected commit still exists but at a different position.
type StaleSnapshotError struct {
	Index    int
	Commit   git.Commit
	Position int
}

func (e *StaleSnapshotError) Error() string {
	return fmt.Sprintf("commit list is out of date: %s was #%d and is now #%d", e.Commit.Hash, e.Index, e.Position)
}

// Rewrite operations
const (
	OpRevertFold   = "revert"
	OpFoldAmend    = "amend"
	OpRebaseExcise = "rebase"
)

// RewriteConflictError is returned when git stops a rewrite. The repository
// is left exactly as git left it.
type RewriteConflictError struct {
	Op         string
	Commit     git.Commit
	Diagnostic string // git's output, verbatim
	InProgress bool   // a rebase or revert is waiting for resolution
	Err        error
}

func (e *RewriteConflictError) Error() string {
	return fmt.Sprintf("%s of %s stopped: %s", e.Op, e.Commit.Hash, e.Diagnostic)
}

func (e *RewriteConflictError) Unwrap() error {
	return e.Err
}

// Hints returns the commands that finish or cancel the stopped operation
func (e *RewriteConflictError) Hints() []string {
	if e.Op == OpRebaseExcise {
		return []string{
			"resolve the conflicts, git add the files, then run: git rebase --continue",
			"or return to where you started with: git rebase --abort",
		}
	}
	var hints []string
	if e.Op == OpFoldAmend {
		hints = append(hints,
			"the reverted changes are staged; fold them with: git commit --amend --no-edit",
			"or discard them with: git reset --hard HEAD",
		)
	} else {
		hints = append(hints, "resolve the conflicts and amend manually")
	}
	if e.InProgress {
		hints = append(hints, "or cancel the revert with: git revert --abort")
	}
	return hints
}

package history

import (
	"errors"
	"fmt"
	"strings"

	"github.com/javoire/githelper/internal/git"
)

// Rewriter removes commits from the current branch
type Rewriter struct {
	git git.GitClient
}

// NewRewriter creates a Rewriter
func NewRewriter(client git.GitClient) *Rewriter {
	return &Rewriter{git: client}
}

// RevertFold negates target's changes and folds the inverse into the tip:
// git revert --no-commit <hash> followed by git commit --amend --no-edit.
// The history keeps its length and target stays listed.
func (r *Rewriter) RevertFold(target git.Commit) error {
	if err := r.git.Revert(target.Hash); err != nil {
		return &RewriteConflictError{
			Op:         OpRevertFold,
			Commit:     target,
			Diagnostic: diagnostic(err),
			InProgress: r.git.IsRevertInProgress(),
			Err:        err,
		}
	}
	// --allow-empty covers reverting the tip itself, which leaves it empty
	if err := r.git.Commit(git.CommitOptions{Amend: true, NoEdit: true, AllowEmpty: true}); err != nil {
		return &RewriteConflictError{
			Op:         OpFoldAmend,
			Commit:     target,
			Diagnostic: diagnostic(err),
			InProgress: r.git.IsRevertInProgress(),
			Err:        err,
		}
	}
	return nil
}

// RebaseExcise drops target from the history: git rebase --onto <hash>^ <hash>.
// Every later commit is rewritten.
func (r *Rewriter) RebaseExcise(target git.Commit) error {
	parent := target.Hash + "^"
	if _, err := r.git.GetCommitHash(parent); err != nil {
		// only a commit that resolves but has no parent is the root
		if errors.Is(err, git.ErrUnknownRevision) {
			if _, terr := r.git.GetCommitHash(target.Hash); terr == nil {
				return ErrRootCommit
			}
		}
		return fmt.Errorf("failed to resolve parent of %s: %w", target.Hash, err)
	}
	if err := r.git.RebaseOnto(parent, target.Hash); err != nil {
		return &RewriteConflictError{
			Op:         OpRebaseExcise,
			Commit:     target,
			Diagnostic: diagnostic(err),
			InProgress: r.git.IsRebaseInProgress(),
			Err:        err,
		}
	}
	return nil
}

// diagnostic returns everything git printed, stdout first. Conflict reports
// from rebase go to stdout.
func diagnostic(err error) string {
	var cmdErr *git.CommandError
	if errors.As(err, &cmdErr) {
		var parts []string
		for _, s := range []string{cmdErr.Stdout, cmdErr.Stderr} {
			if s = strings.TrimSpace(s); s != "" {
				parts = append(parts, s)
			}
		}
		if len(parts) > 0 {
			return strings.Join(parts, "\n")
		}
	}
	return git.Diagnostic(err)
}

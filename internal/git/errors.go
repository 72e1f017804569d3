package git

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Sentinel errors for conditions callers branch on. CommandError matches them
// through errors.Is based on git's own diagnostics.
var (
	// ErrToolUnavailable indicates the git executable could not be found
	ErrToolUnavailable = errors.New("git executable not found")

	// ErrNotARepository indicates the working directory is not inside a repository
	ErrNotARepository = errors.New("not a git repository")

	// ErrNoCommits indicates the current branch has no history yet
	ErrNoCommits = errors.New("no commits")

	// ErrNoUpstream indicates the current branch has no tracking branch
	ErrNoUpstream = errors.New("no upstream branch")

	// ErrPushRejected indicates the remote refused a non-fast-forward push
	ErrPushRejected = errors.New("push rejected")

	// ErrBranchNotMerged indicates `branch -d` refused an unmerged branch
	ErrBranchNotMerged = errors.New("branch not fully merged")

	// ErrUnknownRevision indicates a ref or expression did not name a commit
	ErrUnknownRevision = errors.New("unknown revision")
)

// CommandError is returned when a git invocation exits unsuccessfully.
// Stderr holds git's diagnostic text verbatim so it can be shown to the user.
type CommandError struct {
	Args   []string
	Stdout string
	Stderr string
	Err    error
}

func (e *CommandError) Error() string {
	msg := strings.TrimSpace(e.Stderr)
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	return fmt.Sprintf("git %s failed: %s", strings.Join(e.Args, " "), msg)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// Is maps git's diagnostics onto the package sentinels.
func (e *CommandError) Is(target error) bool {
	stderr := strings.ToLower(e.Stderr)
	switch target {
	case ErrToolUnavailable:
		return errors.Is(e.Err, exec.ErrNotFound)
	case ErrNotARepository:
		return strings.Contains(stderr, "not a git repository")
	case ErrNoCommits:
		return strings.Contains(stderr, "does not have any commits yet") ||
			strings.Contains(stderr, "bad default revision") ||
			strings.Contains(stderr, "ambiguous argument 'head'")
	case ErrNoUpstream:
		return strings.Contains(stderr, "has no upstream branch") ||
			strings.Contains(stderr, "no upstream configured")
	case ErrPushRejected:
		return strings.Contains(stderr, "[rejected]") ||
			strings.Contains(stderr, "non-fast-forward") ||
			strings.Contains(stderr, "fetch first") ||
			strings.Contains(stderr, "stale info")
	case ErrBranchNotMerged:
		return strings.Contains(stderr, "not fully merged")
	case ErrUnknownRevision:
		return strings.Contains(stderr, "unknown revision") ||
			strings.Contains(stderr, "bad revision") ||
			strings.Contains(stderr, "needed a single revision")
	}
	return false
}

// Diagnostic returns git's stderr, falling back to stdout and then the error text.
func Diagnostic(err error) string {
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		if s := strings.TrimSpace(cmdErr.Stderr); s != "" {
			return s
		}
		if s := strings.TrimSpace(cmdErr.Stdout); s != "" {
			return s
		}
	}
	if err == nil {
		return ""
	}
	return err.Error()
}

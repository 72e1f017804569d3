package git

import (
	"fmt"
	"time"
)

// DateLayout is the user-facing format for commit date overrides
const DateLayout = "2006-01-02 15:04:05"

// gitDateLayout is what gets handed to git; it carries the zone so the
// override is unambiguous regardless of the child's TZ.
const gitDateLayout = "2006-01-02 15:04:05 -0700"

// Commit is one entry of `git log --oneline`
type Commit struct {
	Hash    string
	Summary string
}

func (c Commit) String() string {
	if c.Summary == "" {
		return c.Hash
	}
	return c.Hash + " " + c.Summary
}

// Branch is one entry of `git branch`
type Branch struct {
	Name     string
	Current  bool
	Detached bool
	Worktree bool // checked out in another worktree
}

// BranchInfo is one row of the branch overview
type BranchInfo struct {
	Name    string
	Author  string
	Updated string
	Subject string
}

// StatusEntry is one line of `git status --porcelain`
type StatusEntry struct {
	Code string // two-character XY code
	Path string
}

// Untracked reports whether the entry is an untracked file
func (s StatusEntry) Untracked() bool {
	return s.Code == "??"
}

func (s StatusEntry) String() string {
	return fmt.Sprintf("%s %s", s.Code, s.Path)
}

// Stash is one entry of `git stash list`
type Stash struct {
	Index   int
	Ref     string
	Message string
}

// Remote is one configured remote
type Remote struct {
	Name     string
	FetchURL string
	PushURL  string
}

// CommitOptions describes a single `git commit` invocation. Date, when set,
// overrides author and committer dates for this commit only.
type CommitOptions struct {
	Message    string
	Amend      bool
	NoEdit     bool
	AllowEmpty bool
	Date       time.Time
}

func (o CommitOptions) args() []string {
	args := []string{"commit"}
	if o.Amend {
		args = append(args, "--amend")
	}
	if o.NoEdit {
		args = append(args, "--no-edit")
	}
	if o.AllowEmpty {
		args = append(args, "--allow-empty")
	}
	if !o.Date.IsZero() {
		args = append(args, "--date", o.Date.Format(gitDateLayout))
	}
	if o.Message != "" {
		args = append(args, "-m", o.Message)
	}
	return args
}

func (o CommitOptions) env() []string {
	if o.Date.IsZero() {
		return nil
	}
	d := o.Date.Format(gitDateLayout)
	return []string{"GIT_AUTHOR_DATE=" + d, "GIT_COMMITTER_DATE=" + d}
}

// PushOptions describes a single `git push` invocation. An empty Remote pushes
// to the configured upstream.
type PushOptions struct {
	Remote         string
	Branch         string
	SetUpstream    bool
	ForceWithLease bool
	Force          bool
}

func (o PushOptions) args() []string {
	args := []string{"push"}
	if o.SetUpstream {
		args = append(args, "--set-upstream")
	}
	switch {
	case o.Force:
		args = append(args, "--force")
	case o.ForceWithLease:
		args = append(args, "--force-with-lease")
	}
	if o.Remote != "" {
		args = append(args, o.Remote)
		if o.Branch != "" {
			args = append(args, o.Branch)
		}
	}
	return args
}

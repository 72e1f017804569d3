package git

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

// Verbose controls whether to print executed commands
var Verbose = false

// DryRun controls whether to actually execute mutation commands
var DryRun = false

// gitClient implements the GitClient interface using exec.Command
type gitClient struct {
	dir string
}

// NewGitClient creates a new GitClient operating on the current directory
func NewGitClient() GitClient {
	return &gitClient{}
}

// NewGitClientInDir creates a new GitClient operating on dir
func NewGitClientInDir(dir string) GitClient {
	return &gitClient{dir: dir}
}

// execGit runs git with extra environment entries and returns raw stdout
func (c *gitClient) execGit(env []string, args ...string) (string, error) {
	if Verbose {
		fmt.Printf("  [git] %s\n", strings.Join(args, " "))
	}
	slog.Debug("git", "args", strings.Join(args, " "))

	cmd := exec.Command("git", args...)
	if c.dir != "" {
		cmd.Dir = c.dir
	}
	if len(env) > 0 {
		cmd.Env = append(os.Environ(), env...)
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		cmdErr := &CommandError{Args: args, Stdout: stdout.String(), Stderr: stderr.String(), Err: err}
		if errors.Is(err, exec.ErrNotFound) {
			return "", fmt.Errorf("%w: %w", ErrToolUnavailable, cmdErr)
		}
		return "", cmdErr
	}
	return stdout.String(), nil
}

// runCmd executes a git command and returns trimmed stdout
func (c *gitClient) runCmd(args ...string) (string, error) {
	out, err := c.execGit(nil, args...)
	return strings.TrimSpace(out), err
}

// runCmdMayFail runs a command that might fail (returns empty string on error)
func (c *gitClient) runCmdMayFail(args ...string) string {
	out, _ := c.runCmd(args...)
	return out
}

// mutate runs a command that changes repository state. It honors DryRun and
// records the action in the log.
func (c *gitClient) mutate(env []string, args ...string) (string, error) {
	if DryRun {
		fmt.Printf("  [DRY RUN] git %s\n", strings.Join(args, " "))
		return "", nil
	}
	out, err := c.execGit(env, args...)
	if err != nil {
		slog.Error("git command failed", "args", strings.Join(args, " "), "stderr", strings.TrimSpace(Diagnostic(err)))
		return "", err
	}
	slog.Info("git " + strings.Join(args, " "))
	return strings.TrimSpace(out), nil
}

// Version returns the output of `git --version`
func (c *gitClient) Version() (string, error) {
	return c.runCmd("--version")
}

// IsInsideWorkTree reports whether the working directory is inside a repository
func (c *gitClient) IsInsideWorkTree() bool {
	return c.runCmdMayFail("rev-parse", "--is-inside-work-tree") == "true"
}

// GetRepoRoot returns the root directory of the git repository
func (c *gitClient) GetRepoRoot() (string, error) {
	return c.runCmd("rev-parse", "--show-toplevel")
}

// Init creates a repository in the working directory
func (c *gitClient) Init() error {
	_, err := c.mutate(nil, "init")
	return err
}

// Run executes an arbitrary mutating git command. Used to replay undo steps.
func (c *gitClient) Run(args ...string) (string, error) {
	return c.mutate(nil, args...)
}

// GetCurrentBranch returns the name of the currently checked out branch
func (c *gitClient) GetCurrentBranch() (string, error) {
	return c.runCmd("branch", "--show-current")
}

// GetCommitHash returns the commit hash of a ref
func (c *gitClient) GetCommitHash(ref string) (string, error) {
	return c.runCmd("rev-parse", ref)
}

// ListBranches returns all local branches, with the current one marked
func (c *gitClient) ListBranches() ([]Branch, error) {
	output, err := c.execGit(nil, "branch")
	if err != nil {
		return nil, err
	}
	return parseBranches(output), nil
}

// ListRemoteBranches returns remote-tracking branches, excluding HEAD aliases
func (c *gitClient) ListRemoteBranches() ([]string, error) {
	output, err := c.runCmd("branch", "-r")
	if err != nil {
		return nil, err
	}
	return parseRemoteBranches(output), nil
}

// BranchExists checks if a branch exists locally
func (c *gitClient) BranchExists(name string) bool {
	return c.runCmdMayFail("rev-parse", "--verify", "--quiet", "refs/heads/"+name) != ""
}

// RemoteBranchExists asks the remote whether it has the branch
func (c *gitClient) RemoteBranchExists(remote, name string) (bool, error) {
	output, err := c.runCmd("ls-remote", "--heads", remote, "refs/heads/"+name)
	if err != nil {
		return false, err
	}
	return output != "", nil
}

// GetTrackingBranch returns the upstream of the current branch, or "" if none
func (c *gitClient) GetTrackingBranch() string {
	return c.runCmdMayFail("rev-parse", "--abbrev-ref", "--symbolic-full-name", "@{u}")
}

// SetUpstream makes branch track remoteBranch (e.g. origin/feature)
func (c *gitClient) SetUpstream(branch, remoteBranch string) error {
	_, err := c.mutate(nil, "branch", "--set-upstream-to="+remoteBranch, branch)
	return err
}

// CreateBranch creates a new branch from HEAD and checks it out
func (c *gitClient) CreateBranch(name string) error {
	_, err := c.mutate(nil, "checkout", "-b", name)
	return err
}

// CreateTrackingBranch creates local from remoteRef and checks it out
func (c *gitClient) CreateTrackingBranch(local, remoteRef string) error {
	_, err := c.mutate(nil, "checkout", "-b", local, remoteRef)
	return err
}

// CheckoutBranch switches to the specified branch
func (c *gitClient) CheckoutBranch(name string) error {
	_, err := c.mutate(nil, "checkout", name)
	return err
}

// DeleteBranch deletes a branch safely (equivalent to git branch -d)
// This will fail if the branch has unmerged commits
func (c *gitClient) DeleteBranch(name string) error {
	_, err := c.mutate(nil, "branch", "-d", name)
	return err
}

// DeleteBranchForce force deletes a branch (equivalent to git branch -D)
func (c *gitClient) DeleteBranchForce(name string) error {
	_, err := c.mutate(nil, "branch", "-D", name)
	return err
}

// GetBranchInfo returns name, author, age and subject for every local branch
func (c *gitClient) GetBranchInfo() ([]BranchInfo, error) {
	output, err := c.runCmd("for-each-ref", "--format="+branchInfoFormat, "refs/heads/")
	if err != nil {
		return nil, err
	}
	return parseBranchInfo(output), nil
}

// BranchVerbose returns `git branch -vv`
func (c *gitClient) BranchVerbose() (string, error) {
	return c.runCmd("branch", "-vv")
}

// Status returns the porcelain status of the working tree
func (c *gitClient) Status() ([]StatusEntry, error) {
	output, err := c.execGit(nil, "status", "--porcelain")
	if err != nil {
		return nil, err
	}
	return parseStatus(output), nil
}

// IsWorkingTreeClean returns true if there are no uncommitted changes
func (c *gitClient) IsWorkingTreeClean() (bool, error) {
	output, err := c.runCmd("status", "--porcelain")
	if err != nil {
		return false, err
	}
	return output == "", nil
}

// HasStagedChanges reports whether the index differs from HEAD
func (c *gitClient) HasStagedChanges() (bool, error) {
	output, err := c.runCmd("diff", "--cached", "--name-only")
	if err != nil {
		return false, err
	}
	return output != "", nil
}

// StageAll stages every change including untracked files
func (c *gitClient) StageAll() error {
	_, err := c.mutate(nil, "add", "-A")
	return err
}

// StagePaths stages the given paths
func (c *gitClient) StagePaths(paths ...string) error {
	if len(paths) == 0 {
		return nil
	}
	_, err := c.mutate(nil, append([]string{"add", "--"}, paths...)...)
	return err
}

// Commit creates or amends a commit. A date override is passed to this one
// child process only.
func (c *gitClient) Commit(opts CommitOptions) error {
	_, err := c.mutate(opts.env(), opts.args()...)
	return err
}

// LastCommitMessage returns the full message of HEAD
func (c *gitClient) LastCommitMessage() (string, error) {
	return c.runCmd("log", "-1", "--pretty=%B")
}

// Log returns up to limit commits of the current branch, newest first.
// A limit of 0 returns the whole history.
func (c *gitClient) Log(limit int) ([]Commit, error) {
	args := []string{"log", "--oneline", "--no-decorate", "--no-color"}
	if limit > 0 {
		args = append(args, "-n", strconv.Itoa(limit))
	}
	output, err := c.runCmd(args...)
	if err != nil {
		return nil, err
	}
	return parseLog(output), nil
}

// LogGraph returns a decorated graph of the last limit commits
func (c *gitClient) LogGraph(limit int) (string, error) {
	return c.runCmd("log", "-n", strconv.Itoa(limit), "--graph", "--date=short",
		"--pretty=format:%h %ad | %s%d [%an]")
}

// RecentMerges returns the last limit merge commits
func (c *gitClient) RecentMerges(limit int) (string, error) {
	return c.runCmd("log", "--merges", "--oneline", "-n", strconv.Itoa(limit))
}

// Revert applies the inverse of hash to the index and working tree without committing
func (c *gitClient) Revert(hash string) error {
	_, err := c.mutate(nil, "revert", "--no-commit", hash)
	return err
}

// RebaseOnto replays commits after upstream onto newBase
// Equivalent to: git rebase --onto newBase upstream
func (c *gitClient) RebaseOnto(newBase, upstream string) error {
	_, err := c.mutate(nil, "rebase", "--onto", newBase, upstream)
	return err
}

// IsRebaseInProgress checks for rebase state directories in the git dir
func (c *gitClient) IsRebaseInProgress() bool {
	return c.gitPathExists("rebase-merge") || c.gitPathExists("rebase-apply")
}

// IsRevertInProgress checks for REVERT_HEAD, which git keeps while a revert
// waits for conflict resolution
func (c *gitClient) IsRevertInProgress() bool {
	return c.gitPathExists("REVERT_HEAD")
}

// gitPathExists reports whether name exists inside the git dir
func (c *gitClient) gitPathExists(name string) bool {
	path := c.runCmdMayFail("rev-parse", "--git-path", name)
	if path == "" {
		return false
	}
	if !filepath.IsAbs(path) && c.dir != "" {
		path = filepath.Join(c.dir, path)
	}
	_, err := os.Stat(path)
	return err == nil
}

// Fetch fetches from remote
func (c *gitClient) Fetch(remote string) error {
	_, err := c.mutate(nil, "fetch", remote)
	return err
}

// Pull pulls the upstream of the current branch
func (c *gitClient) Pull() error {
	_, err := c.mutate(nil, "pull")
	return err
}

// Push pushes according to opts
func (c *gitClient) Push(opts PushOptions) error {
	_, err := c.mutate(nil, opts.args()...)
	return err
}

// DeleteRemoteBranch removes branch from remote
func (c *gitClient) DeleteRemoteBranch(remote, branch string) error {
	_, err := c.mutate(nil, "push", remote, "--delete", branch)
	return err
}

// ListRemotes returns configured remotes with their URLs
func (c *gitClient) ListRemotes() ([]Remote, error) {
	output, err := c.runCmd("remote", "-v")
	if err != nil {
		return nil, err
	}
	return parseRemotes(output), nil
}

// GetRemoteURL returns the fetch URL of a remote, or "" if unknown
func (c *gitClient) GetRemoteURL(name string) string {
	return c.runCmdMayFail("remote", "get-url", name)
}

// AddRemote configures a new remote
func (c *gitClient) AddRemote(name, url string) error {
	_, err := c.mutate(nil, "remote", "add", name, url)
	return err
}

// SetRemoteURL changes the URL of an existing remote
func (c *gitClient) SetRemoteURL(name, url string) error {
	_, err := c.mutate(nil, "remote", "set-url", name, url)
	return err
}

// RemoveRemote deletes a remote and its tracking refs
func (c *gitClient) RemoveRemote(name string) error {
	_, err := c.mutate(nil, "remote", "remove", name)
	return err
}

// Stash stashes the current changes including untracked files, with an
// optional message
func (c *gitClient) Stash(message string) error {
	args := []string{"stash", "push", "--include-untracked"}
	if message != "" {
		args = append(args, "-m", message)
	}
	_, err := c.mutate(nil, args...)
	return err
}

// StashList returns all stash entries, newest first
func (c *gitClient) StashList() ([]Stash, error) {
	output, err := c.runCmd("stash", "list")
	if err != nil {
		return nil, err
	}
	return parseStashList(output), nil
}

// StashApply applies stash@{index} and keeps it
func (c *gitClient) StashApply(index int) error {
	_, err := c.mutate(nil, "stash", "apply", stashRef(index))
	return err
}

// StashPop applies and removes stash@{index}
func (c *gitClient) StashPop(index int) error {
	_, err := c.mutate(nil, "stash", "pop", stashRef(index))
	return err
}

// StashDrop removes stash@{index}
func (c *gitClient) StashDrop(index int) error {
	_, err := c.mutate(nil, "stash", "drop", stashRef(index))
	return err
}

func stashRef(index int) string {
	return fmt.Sprintf("stash@{%d}", index)
}

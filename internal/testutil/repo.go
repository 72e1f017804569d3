package testutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Repo is a throwaway git repository on disk
type Repo struct {
	t   *testing.T
	Dir string
}

// NewRepo initializes an empty repository on branch main in a temp dir.
// The test is skipped when git is not installed.
func NewRepo(t *testing.T) *Repo {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
	t.Setenv("GIT_CONFIG_GLOBAL", os.DevNull)
	t.Setenv("GIT_CONFIG_NOSYSTEM", "1")

	r := &Repo{t: t, Dir: t.TempDir()}
	r.Git("init", "--quiet")
	r.Git("symbolic-ref", "HEAD", "refs/heads/main")
	r.Git("config", "user.name", "Test User")
	r.Git("config", "user.email", "test@example.com")
	r.Git("config", "commit.gpgsign", "false")
	return r
}

// Git runs git in the repository and fails the test on error
func (r *Repo) Git(args ...string) string {
	r.t.Helper()
	out, err := r.TryGit(args...)
	require.NoError(r.t, err, "git %s: %s", strings.Join(args, " "), out)
	return out
}

// TryGit runs git in the repository and returns combined output
func (r *Repo) TryGit(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	out, err := cmd.CombinedOutput()
	return strings.TrimSpace(string(out)), err
}

// WriteFile writes content to name relative to the repository root
func (r *Repo) WriteFile(name, content string) {
	r.t.Helper()
	path := filepath.Join(r.Dir, name)
	require.NoError(r.t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(r.t, os.WriteFile(path, []byte(content), 0o644))
}

// ReadFile returns the content of name, or "" if it does not exist
func (r *Repo) ReadFile(name string) string {
	r.t.Helper()
	data, err := os.ReadFile(filepath.Join(r.Dir, name))
	if err != nil {
		return ""
	}
	return string(data)
}

// CommitFile writes a file, commits it and returns the abbreviated hash
func (r *Repo) CommitFile(name, content, message string) string {
	r.t.Helper()
	r.WriteFile(name, content)
	r.Git("add", "--", name)
	r.Git("commit", "--quiet", "-m", message)
	return r.Git("rev-parse", "--short", "HEAD")
}

// Subjects returns commit subjects newest first
func (r *Repo) Subjects() []string {
	r.t.Helper()
	out := r.Git("log", "--pretty=%s")
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}

package git_test

import (
	"testing"
	"time"

	"github.com/javoire/githelper/internal/git"
	"github.com/javoire/githelper/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGitClient(t *testing.T) {
	client := git.NewGitClient()
	assert.NotNil(t, client)
}

func TestLogAndStatus(t *testing.T) {
	repo := testutil.NewRepo(t)
	client := git.NewGitClientInDir(repo.Dir)

	_, err := client.Log(10)
	assert.ErrorIs(t, err, git.ErrNoCommits)

	first := repo.CommitFile("a.txt", "a\n", "first")
	second := repo.CommitFile("b.txt", "b\n", "second")

	commits, err := client.Log(10)
	require.NoError(t, err)
	require.Len(t, commits, 2)
	assert.Equal(t, "second", commits[0].Summary)
	assert.Equal(t, "first", commits[1].Summary)
	assert.True(t, len(commits[0].Hash) >= 7)
	assert.Contains(t, second, commits[0].Hash[:7])
	assert.Contains(t, first, commits[1].Hash[:7])

	commits, err = client.Log(1)
	require.NoError(t, err)
	assert.Len(t, commits, 1)

	clean, err := client.IsWorkingTreeClean()
	require.NoError(t, err)
	assert.True(t, clean)

	repo.WriteFile("c.txt", "c\n")
	repo.WriteFile("a.txt", "changed\n")
	entries, err := client.Status()
	require.NoError(t, err)
	assert.ElementsMatch(t, []git.StatusEntry{
		{Code: " M", Path: "a.txt"},
		{Code: "??", Path: "c.txt"},
	}, entries)
}

func TestBranchLifecycle(t *testing.T) {
	repo := testutil.NewRepo(t)
	client := git.NewGitClientInDir(repo.Dir)
	repo.CommitFile("a.txt", "a\n", "first")

	current, err := client.GetCurrentBranch()
	require.NoError(t, err)
	assert.Equal(t, "main", current)

	require.NoError(t, client.CreateBranch("feature"))
	assert.True(t, client.BranchExists("feature"))
	assert.False(t, client.BranchExists("nope"))

	branches, err := client.ListBranches()
	require.NoError(t, err)
	assert.Equal(t, []git.Branch{{Name: "feature", Current: true}, {Name: "main"}}, branches)

	require.NoError(t, client.CheckoutBranch("main"))
	require.NoError(t, client.DeleteBranch("feature"))
	assert.False(t, client.BranchExists("feature"))

	infos, err := client.GetBranchInfo()
	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Equal(t, "main", infos[0].Name)
	assert.Equal(t, "Test User", infos[0].Author)
	assert.Equal(t, "first", infos[0].Subject)

	assert.Equal(t, "", client.GetTrackingBranch())
}

func TestDeleteUnmergedBranch(t *testing.T) {
	repo := testutil.NewRepo(t)
	client := git.NewGitClientInDir(repo.Dir)
	repo.CommitFile("a.txt", "a\n", "first")
	require.NoError(t, client.CreateBranch("wip"))
	repo.CommitFile("b.txt", "b\n", "unmerged work")
	require.NoError(t, client.CheckoutBranch("main"))

	err := client.DeleteBranch("wip")
	assert.ErrorIs(t, err, git.ErrBranchNotMerged)
	assert.True(t, client.BranchExists("wip"))

	require.NoError(t, client.DeleteBranchForce("wip"))
	assert.False(t, client.BranchExists("wip"))

	err = client.DeleteBranch("nope")
	require.Error(t, err)
	assert.NotErrorIs(t, err, git.ErrBranchNotMerged)
}

func TestCheckoutMissingBranchKeepsDiagnostic(t *testing.T) {
	repo := testutil.NewRepo(t)
	client := git.NewGitClientInDir(repo.Dir)
	repo.CommitFile("a.txt", "a\n", "first")

	err := client.CheckoutBranch("does-not-exist")

	require.Error(t, err)
	var cmdErr *git.CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Contains(t, git.Diagnostic(err), "does-not-exist")
}

func TestCommitWithDateOverride(t *testing.T) {
	repo := testutil.NewRepo(t)
	client := git.NewGitClientInDir(repo.Dir)
	repo.WriteFile("a.txt", "a\n")
	require.NoError(t, client.StageAll())

	staged, err := client.HasStagedChanges()
	require.NoError(t, err)
	assert.True(t, staged)

	date := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, client.Commit(git.CommitOptions{Message: "dated", Date: date}))

	assert.Equal(t, "2020-01-02T03:04:05+00:00", repo.Git("log", "-1", "--pretty=%aI"))
	assert.Equal(t, "2020-01-02T03:04:05+00:00", repo.Git("log", "-1", "--pretty=%cI"))

	// The override applies to that commit only
	repo.CommitFile("b.txt", "b\n", "undated")
	assert.NotEqual(t, "2020-01-02T03:04:05+00:00", repo.Git("log", "-1", "--pretty=%aI"))

	msg, err := client.LastCommitMessage()
	require.NoError(t, err)
	assert.Equal(t, "undated", msg)
}

func TestStashRoundTrip(t *testing.T) {
	repo := testutil.NewRepo(t)
	client := git.NewGitClientInDir(repo.Dir)
	repo.CommitFile("a.txt", "a\n", "first")
	repo.WriteFile("a.txt", "dirty\n")

	require.NoError(t, client.Stash("wip"))
	assert.Equal(t, "a\n", repo.ReadFile("a.txt"))

	stashes, err := client.StashList()
	require.NoError(t, err)
	require.Len(t, stashes, 1)
	assert.Equal(t, 0, stashes[0].Index)
	assert.Contains(t, stashes[0].Message, "wip")

	require.NoError(t, client.StashPop(0))
	assert.Equal(t, "dirty\n", repo.ReadFile("a.txt"))
}

func TestRemotes(t *testing.T) {
	repo := testutil.NewRepo(t)
	client := git.NewGitClientInDir(repo.Dir)

	require.NoError(t, client.AddRemote("origin", "https://example.com/a.git"))
	assert.Equal(t, "https://example.com/a.git", client.GetRemoteURL("origin"))

	require.NoError(t, client.SetRemoteURL("origin", "https://example.com/b.git"))
	remotes, err := client.ListRemotes()
	require.NoError(t, err)
	assert.Equal(t, []git.Remote{{
		Name:     "origin",
		FetchURL: "https://example.com/b.git",
		PushURL:  "https://example.com/b.git",
	}}, remotes)

	require.NoError(t, client.RemoveRemote("origin"))
	assert.Equal(t, "", client.GetRemoteURL("origin"))
}

func TestDryRunSkipsMutations(t *testing.T) {
	repo := testutil.NewRepo(t)
	client := git.NewGitClientInDir(repo.Dir)
	repo.CommitFile("a.txt", "a\n", "first")

	git.DryRun = true
	defer func() { git.DryRun = false }()

	require.NoError(t, client.CreateBranch("feature"))
	assert.False(t, client.BranchExists("feature"))
}

func TestNotARepository(t *testing.T) {
	testutil.NewRepo(t) // skip when git is missing
	client := git.NewGitClientInDir(t.TempDir())

	assert.False(t, client.IsInsideWorkTree())
	_, err := client.GetRepoRoot()
	assert.ErrorIs(t, err, git.ErrNotARepository)
}

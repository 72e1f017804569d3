package history

import (
	"testing"

	"github.com/javoire/githelper/internal/git"
	"github.com/javoire/githelper/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// threeCommitRepo builds init -> add feature -> fix bug, each touching its own file
func threeCommitRepo(t *testing.T) (*testutil.Repo, git.GitClient) {
	repo := testutil.NewRepo(t)
	repo.CommitFile("init.txt", "init\n", "init")
	repo.CommitFile("feature.txt", "feature\n", "add feature")
	repo.CommitFile("fix.txt", "fix\n", "fix bug")
	return repo, git.NewGitClientInDir(repo.Dir)
}

func TestRebaseExciseRemovesCommit(t *testing.T) {
	repo, client := threeCommitRepo(t)
	lister := NewLister(NewCLISource(client), 10)

	snap, err := lister.Snapshot()
	require.NoError(t, err)
	require.Equal(t, 3, snap.Len())

	target, err := lister.Resolve(snap, 2)
	require.NoError(t, err)
	assert.Equal(t, "add feature", target.Summary)

	require.NoError(t, NewRewriter(client).RebaseExcise(target))

	assert.Equal(t, []string{"fix bug", "init"}, repo.Subjects())
	assert.Equal(t, "", repo.ReadFile("feature.txt"))
	assert.Equal(t, "fix\n", repo.ReadFile("fix.txt"))
	assert.Equal(t, "init\n", repo.ReadFile("init.txt"))

	// the old numbering no longer applies
	_, err = lister.Resolve(snap, 2)
	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestRevertFoldKeepsHistoryLength(t *testing.T) {
	repo, client := threeCommitRepo(t)
	lister := NewLister(NewCLISource(client), 10)

	snap, err := lister.Snapshot()
	require.NoError(t, err)
	target, err := lister.Resolve(snap, 2)
	require.NoError(t, err)

	require.NoError(t, NewRewriter(client).RevertFold(target))

	assert.Equal(t, []string{"fix bug", "add feature", "init"}, repo.Subjects())
	assert.Equal(t, "", repo.ReadFile("feature.txt"))
	assert.Equal(t, "fix\n", repo.ReadFile("fix.txt"))

	after, err := lister.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, target.Hash, after.Commits[1].Hash)
}

func TestRevertFoldOfTip(t *testing.T) {
	repo, client := threeCommitRepo(t)
	lister := NewLister(NewCLISource(client), 10)

	snap, err := lister.Snapshot()
	require.NoError(t, err)
	target, err := lister.Resolve(snap, 1)
	require.NoError(t, err)

	require.NoError(t, NewRewriter(client).RevertFold(target))

	assert.Equal(t, []string{"fix bug", "add feature", "init"}, repo.Subjects())
	assert.Equal(t, "", repo.ReadFile("fix.txt"))
}

func TestRebaseExciseConflictLeavesRebaseInProgress(t *testing.T) {
	repo := testutil.NewRepo(t)
	repo.CommitFile("a.txt", "one\n", "one")
	repo.CommitFile("a.txt", "two\n", "two")
	repo.CommitFile("a.txt", "three\n", "three")
	client := git.NewGitClientInDir(repo.Dir)
	lister := NewLister(NewCLISource(client), 10)

	snap, err := lister.Snapshot()
	require.NoError(t, err)
	target, err := lister.Resolve(snap, 2)
	require.NoError(t, err)

	err = NewRewriter(client).RebaseExcise(target)

	var conflict *RewriteConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, OpRebaseExcise, conflict.Op)
	assert.True(t, conflict.InProgress)
	assert.Contains(t, conflict.Diagnostic, "a.txt")
	assert.True(t, client.IsRebaseInProgress())
	assert.Contains(t, conflict.Hints()[0], "git rebase --continue")
}

func TestRebaseExciseRootLeavesHistory(t *testing.T) {
	repo, client := threeCommitRepo(t)
	lister := NewLister(NewCLISource(client), 10)

	snap, err := lister.Snapshot()
	require.NoError(t, err)
	target, err := lister.Resolve(snap, 3)
	require.NoError(t, err)

	err = NewRewriter(client).RebaseExcise(target)

	assert.ErrorIs(t, err, ErrRootCommit)
	assert.Equal(t, []string{"fix bug", "add feature", "init"}, repo.Subjects())
}

func TestRebaseExciseUnknownHashIsNotRoot(t *testing.T) {
	repo, client := threeCommitRepo(t)

	err := NewRewriter(client).RebaseExcise(git.Commit{Hash: "0000000", Summary: "missing"})

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrRootCommit)
	assert.ErrorIs(t, err, git.ErrUnknownRevision)
	assert.Equal(t, []string{"fix bug", "add feature", "init"}, repo.Subjects())
}

func TestRevertFoldConflictLeavesRevertInProgress(t *testing.T) {
	repo := testutil.NewRepo(t)
	repo.CommitFile("a.txt", "one\n", "one")
	repo.CommitFile("a.txt", "two\n", "two")
	repo.CommitFile("a.txt", "three\n", "three")
	client := git.NewGitClientInDir(repo.Dir)
	lister := NewLister(NewCLISource(client), 10)

	snap, err := lister.Snapshot()
	require.NoError(t, err)
	target, err := lister.Resolve(snap, 2)
	require.NoError(t, err)

	err = NewRewriter(client).RevertFold(target)

	var conflict *RewriteConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, OpRevertFold, conflict.Op)
	assert.True(t, conflict.InProgress)
	assert.True(t, client.IsRevertInProgress())
	assert.Contains(t, conflict.Hints(), "or cancel the revert with: git revert --abort")
	assert.Equal(t, []string{"three", "two", "one"}, repo.Subjects())
}

func TestResolveDetectsNewCommit(t *testing.T) {
	repo, client := threeCommitRepo(t)
	lister := NewLister(NewCLISource(client), 10)

	snap, err := lister.Snapshot()
	require.NoError(t, err)
	repo.CommitFile("later.txt", "later\n", "later")

	_, err = lister.Resolve(snap, 2)

	var stale *StaleSnapshotError
	require.ErrorAs(t, err, &stale)
	assert.Equal(t, 3, stale.Position)
}

func TestNativeSourceMatchesCLI(t *testing.T) {
	repo, client := threeCommitRepo(t)

	cli, err := NewCLISource(client).Commits(0)
	require.NoError(t, err)
	native, err := NewNativeSource(repo.Dir).Commits(0)
	require.NoError(t, err)

	require.Len(t, native, len(cli))
	for i := range cli {
		assert.Equal(t, cli[i].Summary, native[i].Summary)
		assert.True(t, sameCommit(cli[i], native[i]), "%s vs %s", cli[i].Hash, native[i].Hash)
	}

	limited, err := NewNativeSource(repo.Dir).Commits(2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestNativeSourceEmptyRepo(t *testing.T) {
	repo := testutil.NewRepo(t)

	_, err := NewLister(NewNativeSource(repo.Dir), 10).Snapshot()

	assert.ErrorIs(t, err, ErrNoCommits)
}

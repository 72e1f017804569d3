package git

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLog(t *testing.T) {
	output := "abc123 fix bug\ndef456 add feature\n111aaa init\n"

	commits := parseLog(output)

	assert.Equal(t, []Commit{
		{Hash: "abc123", Summary: "fix bug"},
		{Hash: "def456", Summary: "add feature"},
		{Hash: "111aaa", Summary: "init"},
	}, commits)
}

func TestParseLogEdgeCases(t *testing.T) {
	tests := []struct {
		name     string
		output   string
		expected []Commit
	}{
		{name: "empty output", output: "", expected: nil},
		{name: "whitespace only", output: "  \n\n", expected: nil},
		{name: "hash without summary", output: "abc123", expected: []Commit{{Hash: "abc123"}}},
		{
			name:     "summary keeps inner spaces",
			output:   "abc123 Merge branch 'x'  into main",
			expected: []Commit{{Hash: "abc123", Summary: "Merge branch 'x'  into main"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseLog(tt.output))
		})
	}
}

func TestParseBranches(t *testing.T) {
	output := "  feature-a\n* main\n+ wt-branch\n"

	branches := parseBranches(output)

	assert.Equal(t, []Branch{
		{Name: "feature-a"},
		{Name: "main", Current: true},
		{Name: "wt-branch", Worktree: true},
	}, branches)
}

func TestParseBranchesDetached(t *testing.T) {
	branches := parseBranches("* (HEAD detached at 1a2b3c4)\n  main\n")

	assert.Len(t, branches, 2)
	assert.True(t, branches[0].Current)
	assert.True(t, branches[0].Detached)
	assert.Equal(t, "main", branches[1].Name)
	assert.False(t, branches[1].Detached)
}

func TestParseRemoteBranches(t *testing.T) {
	output := "  origin/HEAD -> origin/main\n  origin/main\n  origin/feature\n  upstream/feature\n"

	assert.Equal(t, []string{"origin/main", "origin/feature", "upstream/feature"}, parseRemoteBranches(output))
}

func TestParseStatus(t *testing.T) {
	output := " M README.md\nA  new.go\n?? scratch.txt\nR  old.go -> renamed.go\n"

	entries := parseStatus(output)

	assert.Equal(t, []StatusEntry{
		{Code: " M", Path: "README.md"},
		{Code: "A ", Path: "new.go"},
		{Code: "??", Path: "scratch.txt"},
		{Code: "R ", Path: "renamed.go"},
	}, entries)
	assert.True(t, entries[2].Untracked())
	assert.False(t, entries[0].Untracked())
}

func TestParseStatusQuotedPath(t *testing.T) {
	entries := parseStatus("?? \"with space.txt\"\n")

	assert.Equal(t, []StatusEntry{{Code: "??", Path: "with space.txt"}}, entries)
}

func TestParseStashList(t *testing.T) {
	output := "stash@{0}: On main: wip parser\nstash@{1}: WIP on feature: 1a2b3c4 msg\ngarbage line\n"

	stashes := parseStashList(output)

	assert.Equal(t, []Stash{
		{Index: 0, Ref: "stash@{0}", Message: "On main: wip parser"},
		{Index: 1, Ref: "stash@{1}", Message: "WIP on feature: 1a2b3c4 msg"},
	}, stashes)
}

func TestParseRemotes(t *testing.T) {
	output := "origin\tgit@github.com:javoire/githelper.git (fetch)\n" +
		"origin\tgit@github.com:javoire/githelper.git (push)\n" +
		"upstream\thttps://example.com/up.git (fetch)\n" +
		"upstream\thttps://example.com/up-push.git (push)\n"

	remotes := parseRemotes(output)

	assert.Equal(t, []Remote{
		{Name: "origin", FetchURL: "git@github.com:javoire/githelper.git", PushURL: "git@github.com:javoire/githelper.git"},
		{Name: "upstream", FetchURL: "https://example.com/up.git", PushURL: "https://example.com/up-push.git"},
	}, remotes)
}

func TestParseBranchInfo(t *testing.T) {
	output := "main|Jane Doe|2 days ago|Initial commit\nfeature|Sam|5 minutes ago|Add a|b pipe\nbroken line\n"

	infos := parseBranchInfo(output)

	assert.Equal(t, []BranchInfo{
		{Name: "main", Author: "Jane Doe", Updated: "2 days ago", Subject: "Initial commit"},
		{Name: "feature", Author: "Sam", Updated: "5 minutes ago", Subject: "Add a|b pipe"},
	}, infos)
}

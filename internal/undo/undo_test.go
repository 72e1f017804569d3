package undo

import (
	"errors"
	"testing"

	"github.com/javoire/githelper/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStackOrder(t *testing.T) {
	var s Stack

	_, err := s.Pop()
	assert.ErrorIs(t, err, ErrEmpty)

	s.Push(Checkout("main"))
	s.Push(Commit("abc123"))
	s.Push(Entry{Description: "nothing to run"})
	assert.Equal(t, 2, s.Len())

	top, ok := s.Peek()
	require.True(t, ok)
	assert.Equal(t, Commit("abc123"), top)

	e, err := s.Pop()
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"reset", "--soft", "abc123"}}, e.Steps)

	e, err = s.Pop()
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"checkout", "main"}}, e.Steps)
	assert.Equal(t, 0, s.Len())
}

func TestApply(t *testing.T) {
	tests := []struct {
		name       string
		entry      Entry
		setupMocks func(*testutil.MockGitClient)
		expectErr  bool
	}{
		{
			name:  "runs every step in order",
			entry: CreateBranch("feature", "main"),
			setupMocks: func(m *testutil.MockGitClient) {
				m.On("Run", []string{"checkout", "main"}).Return("", nil).Once()
				m.On("Run", []string{"branch", "-D", "feature"}).Return("", nil).Once()
			},
		},
		{
			name:  "stops at first failure",
			entry: CreateBranch("feature", "main"),
			setupMocks: func(m *testutil.MockGitClient) {
				m.On("Run", []string{"checkout", "main"}).Return("", errors.New("local changes")).Once()
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockGit := new(testutil.MockGitClient)
			tt.setupMocks(mockGit)

			err := Apply(mockGit, tt.entry)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "delete new branch feature")
			} else {
				assert.NoError(t, err)
			}
			mockGit.AssertExpectations(t)
		})
	}
}

func TestInverseEntries(t *testing.T) {
	tests := []struct {
		name  string
		entry Entry
		steps [][]string
	}{
		{"first commit", Commit(""), [][]string{{"update-ref", "-d", "HEAD"}}},
		{"stage all", Stage(), [][]string{{"reset", "--quiet"}}},
		{"stage paths", Stage("a.go", "b.go"), [][]string{{"reset", "--quiet", "--", "a.go", "b.go"}}},
		{"delete branch", DeleteBranch("old", "abc123"), [][]string{{"branch", "old", "abc123"}}},
		{"hard reset", ResetTo("undo rewrite", "abc123", true), [][]string{{"reset", "--hard", "abc123"}}},
		{"soft reset", ResetTo("undo amend", "abc123", false), [][]string{{"reset", "--soft", "abc123"}}},
		{"stash", Stash(), [][]string{{"stash", "pop"}}},
		{"stash drop", StashDrop("wip", "abc123"), [][]string{{"stash", "store", "-m", "wip", "abc123"}}},
		{"add remote", AddRemote("up"), [][]string{{"remote", "remove", "up"}}},
		{"remove remote", RemoveRemote("up", "u.git"), [][]string{{"remote", "add", "up", "u.git"}}},
		{"set url", SetRemoteURL("up", "old.git"), [][]string{{"remote", "set-url", "up", "old.git"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.steps, tt.entry.Steps)
			assert.NotEmpty(t, tt.entry.Description)
		})
	}
}

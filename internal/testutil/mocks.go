package testutil

import (
	"context"

	"github.com/javoire/githelper/internal/git"
	"github.com/javoire/githelper/internal/github"
	"github.com/stretchr/testify/mock"
)

// MockGitClient is a mock implementation of git.GitClient for testing
type MockGitClient struct {
	mock.Mock
}

func (m *MockGitClient) Version() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

func (m *MockGitClient) IsInsideWorkTree() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockGitClient) GetRepoRoot() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

func (m *MockGitClient) Init() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockGitClient) Run(gitArgs ...string) (string, error) {
	args := m.Called(gitArgs)
	return args.String(0), args.Error(1)
}

func (m *MockGitClient) GetCurrentBranch() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

func (m *MockGitClient) GetCommitHash(ref string) (string, error) {
	args := m.Called(ref)
	return args.String(0), args.Error(1)
}

func (m *MockGitClient) ListBranches() ([]git.Branch, error) {
	args := m.Called()
	return args.Get(0).([]git.Branch), args.Error(1)
}

func (m *MockGitClient) ListRemoteBranches() ([]string, error) {
	args := m.Called()
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockGitClient) BranchExists(name string) bool {
	args := m.Called(name)
	return args.Bool(0)
}

func (m *MockGitClient) RemoteBranchExists(remote, name string) (bool, error) {
	args := m.Called(remote, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockGitClient) GetTrackingBranch() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockGitClient) SetUpstream(branch, remoteBranch string) error {
	args := m.Called(branch, remoteBranch)
	return args.Error(0)
}

func (m *MockGitClient) CreateBranch(name string) error {
	args := m.Called(name)
	return args.Error(0)
}

func (m *MockGitClient) CreateTrackingBranch(local, remoteRef string) error {
	args := m.Called(local, remoteRef)
	return args.Error(0)
}

func (m *MockGitClient) CheckoutBranch(name string) error {
	args := m.Called(name)
	return args.Error(0)
}

func (m *MockGitClient) DeleteBranch(name string) error {
	args := m.Called(name)
	return args.Error(0)
}

func (m *MockGitClient) DeleteBranchForce(name string) error {
	args := m.Called(name)
	return args.Error(0)
}

func (m *MockGitClient) GetBranchInfo() ([]git.BranchInfo, error) {
	args := m.Called()
	return args.Get(0).([]git.BranchInfo), args.Error(1)
}

func (m *MockGitClient) BranchVerbose() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

func (m *MockGitClient) Status() ([]git.StatusEntry, error) {
	args := m.Called()
	return args.Get(0).([]git.StatusEntry), args.Error(1)
}

func (m *MockGitClient) IsWorkingTreeClean() (bool, error) {
	args := m.Called()
	return args.Bool(0), args.Error(1)
}

func (m *MockGitClient) HasStagedChanges() (bool, error) {
	args := m.Called()
	return args.Bool(0), args.Error(1)
}

func (m *MockGitClient) StageAll() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockGitClient) StagePaths(paths ...string) error {
	args := m.Called(paths)
	return args.Error(0)
}

func (m *MockGitClient) Commit(opts git.CommitOptions) error {
	args := m.Called(opts)
	return args.Error(0)
}

func (m *MockGitClient) LastCommitMessage() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

func (m *MockGitClient) Log(limit int) ([]git.Commit, error) {
	args := m.Called(limit)
	return args.Get(0).([]git.Commit), args.Error(1)
}

func (m *MockGitClient) LogGraph(limit int) (string, error) {
	args := m.Called(limit)
	return args.String(0), args.Error(1)
}

func (m *MockGitClient) RecentMerges(limit int) (string, error) {
	args := m.Called(limit)
	return args.String(0), args.Error(1)
}

func (m *MockGitClient) Revert(hash string) error {
	args := m.Called(hash)
	return args.Error(0)
}

func (m *MockGitClient) RebaseOnto(newBase, upstream string) error {
	args := m.Called(newBase, upstream)
	return args.Error(0)
}

func (m *MockGitClient) IsRebaseInProgress() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockGitClient) IsRevertInProgress() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockGitClient) Fetch(remote string) error {
	args := m.Called(remote)
	return args.Error(0)
}

func (m *MockGitClient) Pull() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockGitClient) Push(opts git.PushOptions) error {
	args := m.Called(opts)
	return args.Error(0)
}

func (m *MockGitClient) DeleteRemoteBranch(remote, branch string) error {
	args := m.Called(remote, branch)
	return args.Error(0)
}

func (m *MockGitClient) ListRemotes() ([]git.Remote, error) {
	args := m.Called()
	return args.Get(0).([]git.Remote), args.Error(1)
}

func (m *MockGitClient) GetRemoteURL(name string) string {
	args := m.Called(name)
	return args.String(0)
}

func (m *MockGitClient) AddRemote(name, url string) error {
	args := m.Called(name, url)
	return args.Error(0)
}

func (m *MockGitClient) SetRemoteURL(name, url string) error {
	args := m.Called(name, url)
	return args.Error(0)
}

func (m *MockGitClient) RemoveRemote(name string) error {
	args := m.Called(name)
	return args.Error(0)
}

func (m *MockGitClient) Stash(message string) error {
	args := m.Called(message)
	return args.Error(0)
}

func (m *MockGitClient) StashList() ([]git.Stash, error) {
	args := m.Called()
	return args.Get(0).([]git.Stash), args.Error(1)
}

func (m *MockGitClient) StashApply(index int) error {
	args := m.Called(index)
	return args.Error(0)
}

func (m *MockGitClient) StashPop(index int) error {
	args := m.Called(index)
	return args.Error(0)
}

func (m *MockGitClient) StashDrop(index int) error {
	args := m.Called(index)
	return args.Error(0)
}

// MockGitHubClient is a mock implementation of github.GitHubClient for testing
type MockGitHubClient struct {
	mock.Mock
}

func (m *MockGitHubClient) ListOpenPRs(ctx context.Context, limit int) ([]github.PRInfo, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]github.PRInfo), args.Error(1)
}

func (m *MockGitHubClient) GetPRForBranch(ctx context.Context, branch string) (*github.PRInfo, error) {
	args := m.Called(ctx, branch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*github.PRInfo), args.Error(1)
}

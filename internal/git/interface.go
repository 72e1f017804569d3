package git

// GitClient defines the interface for all git operations. Implementations own
// every piece of output parsing so callers only see typed values.
type GitClient interface {
	Version() (string, error)
	IsInsideWorkTree() bool
	GetRepoRoot() (string, error)
	Init() error
	Run(args ...string) (string, error)

	// Branches
	GetCurrentBranch() (string, error)
	GetCommitHash(ref string) (string, error)
	ListBranches() ([]Branch, error)
	ListRemoteBranches() ([]string, error)
	BranchExists(name string) bool
	RemoteBranchExists(remote, name string) (bool, error)
	GetTrackingBranch() string
	SetUpstream(branch, remoteBranch string) error
	CreateBranch(name string) error
	CreateTrackingBranch(local, remoteRef string) error
	CheckoutBranch(name string) error
	DeleteBranch(name string) error
	DeleteBranchForce(name string) error
	GetBranchInfo() ([]BranchInfo, error)
	BranchVerbose() (string, error)

	// Working tree and commits
	Status() ([]StatusEntry, error)
	IsWorkingTreeClean() (bool, error)
	HasStagedChanges() (bool, error)
	StageAll() error
	StagePaths(paths ...string) error
	Commit(opts CommitOptions) error
	LastCommitMessage() (string, error)
	Log(limit int) ([]Commit, error)
	LogGraph(limit int) (string, error)
	RecentMerges(limit int) (string, error)
	Revert(hash string) error
	RebaseOnto(newBase, upstream string) error
	IsRebaseInProgress() bool
	IsRevertInProgress() bool

	// Remotes
	Fetch(remote string) error
	Pull() error
	Push(opts PushOptions) error
	DeleteRemoteBranch(remote, branch string) error
	ListRemotes() ([]Remote, error)
	GetRemoteURL(name string) string
	AddRemote(name, url string) error
	SetRemoteURL(name, url string) error
	RemoveRemote(name string) error

	// Stashes
	Stash(message string) error
	StashList() ([]Stash, error)
	StashApply(index int) error
	StashPop(index int) error
	StashDrop(index int) error
}

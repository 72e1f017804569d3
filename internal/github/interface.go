package github

import "context"

// GitHubClient defines the interface for the pull request views
type GitHubClient interface {
	ListOpenPRs(ctx context.Context, limit int) ([]PRInfo, error)
	GetPRForBranch(ctx context.Context, branch string) (*PRInfo, error)
}

package github

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"
)

// apiClient implements GitHubClient against the REST API
type apiClient struct {
	client *github.Client
	owner  string
	repo   string
}

// NewAPIClient creates a GitHubClient that talks to the REST API with token.
// repo is in the form returned by ParseRepoFromURL.
func NewAPIClient(ctx context.Context, token, repo string) (GitHubClient, error) {
	host, owner, name, err := SplitRepo(repo)
	if err != nil {
		return nil, err
	}

	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)

	baseURL := ""
	if host != "github.com" {
		// GitHub Enterprise serves the REST API under /api/v3/
		baseURL = fmt.Sprintf("https://%s/api/v3/", host)
	}
	return newAPIClient(tc, baseURL, owner, name)
}

func newAPIClient(httpClient *http.Client, baseURL, owner, repo string) (*apiClient, error) {
	client := github.NewClient(httpClient)
	if baseURL != "" {
		u, err := url.Parse(baseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse base URL %s: %w", baseURL, err)
		}
		client.BaseURL = u
	}
	return &apiClient{client: client, owner: owner, repo: repo}, nil
}

// ListOpenPRs returns up to limit open pull requests
func (c *apiClient) ListOpenPRs(ctx context.Context, limit int) ([]PRInfo, error) {
	prs, _, err := c.client.PullRequests.List(ctx, c.owner, c.repo, &github.PullRequestListOptions{
		State: "open",
		ListOptions: github.ListOptions{
			PerPage: limit,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list PRs: %w", err)
	}

	infos := make([]PRInfo, 0, len(prs))
	for _, pr := range prs {
		infos = append(infos, toPRInfo(pr))
	}
	return infos, nil
}

// GetPRForBranch returns the most recent PR whose head is branch, or nil
func (c *apiClient) GetPRForBranch(ctx context.Context, branch string) (*PRInfo, error) {
	prs, _, err := c.client.PullRequests.List(ctx, c.owner, c.repo, &github.PullRequestListOptions{
		Head:  fmt.Sprintf("%s:%s", c.owner, branch),
		State: "all",
		ListOptions: github.ListOptions{
			PerPage: 1,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to look up PR for %s: %w", branch, err)
	}
	if len(prs) == 0 {
		return nil, nil
	}
	info := toPRInfo(prs[0])
	return &info, nil
}

func toPRInfo(pr *github.PullRequest) PRInfo {
	state := strings.ToUpper(pr.GetState())
	if pr.GetMerged() || pr.MergedAt != nil {
		state = "MERGED"
	}
	return PRInfo{
		Number: pr.GetNumber(),
		State:  state,
		Head:   pr.GetHead().GetRef(),
		Base:   pr.GetBase().GetRef(),
		Title:  pr.GetTitle(),
		URL:    pr.GetHTMLURL(),
		Author: pr.GetUser().GetLogin(),
	}
}

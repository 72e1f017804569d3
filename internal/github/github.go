package github

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// Verbose controls whether to print executed commands
var Verbose = false

// ErrCLIUnavailable is returned when the gh executable cannot be found
var ErrCLIUnavailable = errors.New("gh CLI not found")

// PRInfo contains information about a Pull Request
type PRInfo struct {
	Number int
	State  string // OPEN, CLOSED or MERGED
	Head   string
	Base   string
	Title  string
	URL    string
	Author string
}

const prFields = "number,state,headRefName,baseRefName,title,url,author"

type ghPR struct {
	Number      int    `json:"number"`
	State       string `json:"state"`
	HeadRefName string `json:"headRefName"`
	BaseRefName string `json:"baseRefName"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	Author      struct {
		Login string `json:"login"`
	} `json:"author"`
}

func (p ghPR) info() PRInfo {
	return PRInfo{
		Number: p.Number,
		State:  strings.ToUpper(p.State),
		Head:   p.HeadRefName,
		Base:   p.BaseRefName,
		Title:  p.Title,
		URL:    p.URL,
		Author: p.Author.Login,
	}
}

// githubClient implements the GitHubClient interface using the gh CLI
type githubClient struct {
	repo string // owner/repo or host/owner/repo, empty for gh's default
}

// NewGitHubClient creates a GitHubClient backed by the gh CLI
func NewGitHubClient(repo string) GitHubClient {
	return &githubClient{repo: repo}
}

// runGH executes a gh CLI command and returns stdout
func (c *githubClient) runGH(ctx context.Context, args ...string) (string, error) {
	if c.repo != "" {
		args = append(args, "--repo", c.repo)
	}
	if Verbose {
		fmt.Printf("  [gh] %s\n", strings.Join(args, " "))
	}
	cmd := exec.CommandContext(ctx, "gh", args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", ErrCLIUnavailable
		}
		return "", fmt.Errorf("gh %s failed: %s", strings.Join(args, " "), strings.TrimSpace(stderr.String()))
	}

	return strings.TrimSpace(stdout.String()), nil
}

// ListOpenPRs returns up to limit open pull requests
func (c *githubClient) ListOpenPRs(ctx context.Context, limit int) ([]PRInfo, error) {
	output, err := c.runGH(ctx, "pr", "list", "--state", "open", "--json", prFields, "--limit", strconv.Itoa(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to list PRs: %w", err)
	}
	return parsePRList(output)
}

// GetPRForBranch returns PR info for the specified branch, or nil if none exists
func (c *githubClient) GetPRForBranch(ctx context.Context, branch string) (*PRInfo, error) {
	output, err := c.runGH(ctx, "pr", "view", branch, "--json", prFields)
	if err != nil {
		if errors.Is(err, ErrCLIUnavailable) {
			return nil, err
		}
		// No PR exists for this branch
		return nil, nil
	}

	var data ghPR
	if err := json.Unmarshal([]byte(output), &data); err != nil {
		return nil, fmt.Errorf("failed to parse PR info: %w", err)
	}
	pr := data.info()
	return &pr, nil
}

func parsePRList(output string) ([]PRInfo, error) {
	if output == "" {
		return nil, nil
	}
	var prs []ghPR
	if err := json.Unmarshal([]byte(output), &prs); err != nil {
		return nil, fmt.Errorf("failed to parse PR list: %w", err)
	}
	infos := make([]PRInfo, 0, len(prs))
	for _, pr := range prs {
		infos = append(infos, pr.info())
	}
	return infos, nil
}

package testutil

import (
	"github.com/javoire/githelper/internal/git"
	"github.com/javoire/githelper/internal/github"
)

// NewPRInfo creates an open PR info struct for testing
func NewPRInfo(number int, head, title string) github.PRInfo {
	return github.PRInfo{
		Number: number,
		State:  "OPEN",
		Head:   head,
		Base:   "main",
		Title:  title,
		URL:    "https://github.com/javoire/githelper/pull/1",
		Author: "octocat",
	}
}

// BuildCommits creates a newest-first commit list from hash/summary pairs
func BuildCommits(pairs ...string) []git.Commit {
	var commits []git.Commit
	for i := 0; i+1 < len(pairs); i += 2 {
		commits = append(commits, git.Commit{Hash: pairs[i], Summary: pairs[i+1]})
	}
	return commits
}

// BuildBranches creates a branch list with current marked
func BuildBranches(current string, names ...string) []git.Branch {
	branches := make([]git.Branch, 0, len(names))
	for _, name := range names {
		branches = append(branches, git.Branch{Name: name, Current: name == current})
	}
	return branches
}

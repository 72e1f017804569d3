package git

import (
	"strconv"
	"strings"
)

// branchInfoFormat is the for-each-ref format consumed by parseBranchInfo
const branchInfoFormat = "%(refname:short)|%(authorname)|%(committerdate:relative)|%(subject)"

func splitLines(output string) []string {
	if strings.TrimSpace(output) == "" {
		return nil
	}
	return strings.Split(output, "\n")
}

// parseLog parses `git log --oneline`: the first token is the abbreviated hash
func parseLog(output string) []Commit {
	var commits []Commit
	for _, line := range splitLines(output) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		hash, summary, _ := strings.Cut(line, " ")
		commits = append(commits, Commit{Hash: hash, Summary: strings.TrimSpace(summary)})
	}
	return commits
}

// parseBranches parses `git branch`. The checked-out branch is prefixed with
// '*', a branch checked out in another worktree with '+'.
func parseBranches(output string) []Branch {
	var branches []Branch
	for _, line := range splitLines(output) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		var b Branch
		if len(line) >= 2 {
			switch line[0] {
			case '*':
				b.Current = true
			case '+':
				b.Worktree = true
			}
			line = line[2:]
		}
		name := strings.TrimSpace(line)
		if strings.HasPrefix(name, "(") {
			b.Detached = true
		}
		b.Name = name
		branches = append(branches, b)
	}
	return branches
}

// parseRemoteBranches parses `git branch -r`, dropping symbolic HEAD entries
func parseRemoteBranches(output string) []string {
	var branches []string
	for _, line := range splitLines(output) {
		line = strings.TrimSpace(line)
		if line == "" || strings.Contains(line, "->") || strings.HasSuffix(line, "/HEAD") {
			continue
		}
		branches = append(branches, line)
	}
	return branches
}

// parseStatus parses `git status --porcelain` (v1). Renames keep the new path.
func parseStatus(output string) []StatusEntry {
	var entries []StatusEntry
	for _, line := range strings.Split(output, "\n") {
		if len(line) < 4 {
			continue
		}
		path := line[3:]
		if _, to, ok := strings.Cut(path, " -> "); ok {
			path = to
		}
		entries = append(entries, StatusEntry{Code: line[:2], Path: unquotePath(path)})
	}
	return entries
}

func unquotePath(p string) string {
	if len(p) >= 2 && p[0] == '"' && p[len(p)-1] == '"' {
		if s, err := strconv.Unquote(p); err == nil {
			return s
		}
	}
	return p
}

// parseStashList parses `git stash list`: "stash@{n}: message"
func parseStashList(output string) []Stash {
	var stashes []Stash
	for _, line := range splitLines(output) {
		line = strings.TrimSpace(line)
		ref, msg, ok := strings.Cut(line, ": ")
		if !ok {
			continue
		}
		open := strings.Index(ref, "{")
		closing := strings.Index(ref, "}")
		if open < 0 || closing < open {
			continue
		}
		idx, err := strconv.Atoi(ref[open+1 : closing])
		if err != nil {
			continue
		}
		stashes = append(stashes, Stash{Index: idx, Ref: ref, Message: msg})
	}
	return stashes
}

// parseRemotes parses `git remote -v`
func parseRemotes(output string) []Remote {
	var remotes []Remote
	index := make(map[string]int)
	for _, line := range splitLines(output) {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		name, url := fields[0], fields[1]
		i, ok := index[name]
		if !ok {
			remotes = append(remotes, Remote{Name: name})
			i = len(remotes) - 1
			index[name] = i
		}
		kind := ""
		if len(fields) > 2 {
			kind = fields[2]
		}
		switch kind {
		case "(push)":
			remotes[i].PushURL = url
		default:
			remotes[i].FetchURL = url
		}
	}
	return remotes
}

// parseBranchInfo parses for-each-ref output produced with branchInfoFormat
func parseBranchInfo(output string) []BranchInfo {
	var infos []BranchInfo
	for _, line := range splitLines(output) {
		parts := strings.SplitN(line, "|", 4)
		if len(parts) != 4 {
			continue
		}
		infos = append(infos, BranchInfo{
			Name:    parts[0],
			Author:  parts[1],
			Updated: parts[2],
			Subject: parts[3],
		})
	}
	return infos
}

package github

import (
	"fmt"
	"strings"
)

// ParseRepoFromURL extracts the repository from a remote URL. github.com
// repositories yield "owner/repo"; other hosts are prefixed with the host.
func ParseRepoFromURL(remoteURL string) string {
	u := strings.TrimSpace(remoteURL)
	if u == "" {
		return ""
	}
	u = strings.TrimSuffix(u, ".git")

	var host, path string
	switch {
	case strings.Contains(u, "://"):
		rest := u[strings.Index(u, "://")+3:]
		host, path, _ = strings.Cut(rest, "/")
		if at := strings.LastIndex(host, "@"); at >= 0 {
			host = host[at+1:]
		}
	case strings.Contains(u, "@") && strings.Contains(u, ":"):
		// scp-like ssh: git@host:owner/repo
		rest := u[strings.Index(u, "@")+1:]
		host, path, _ = strings.Cut(rest, ":")
	default:
		return ""
	}
	if i := strings.Index(host, ":"); i >= 0 {
		host = host[:i]
	}

	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) < 2 {
		return ""
	}
	repo := parts[len(parts)-2] + "/" + parts[len(parts)-1]
	if host == "github.com" {
		return repo
	}
	return host + "/" + repo
}

// SplitRepo splits a ParseRepoFromURL result into host, owner and name
func SplitRepo(repo string) (host, owner, name string, err error) {
	parts := strings.Split(repo, "/")
	switch len(parts) {
	case 2:
		return "github.com", parts[0], parts[1], nil
	case 3:
		return parts[0], parts[1], parts[2], nil
	}
	return "", "", "", fmt.Errorf("invalid repository %q", repo)
}

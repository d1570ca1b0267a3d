package github

import (
	"fmt"
	"strings"

	guperrors "gup.dev/gup/internal/errors"
)

const defaultHostname = "github.com"

// RepoInfo identifies a repository on a GitHub host
type RepoInfo struct {
	Hostname string
	Owner    string
	Repo     string
}

// FullName returns "owner/repo"
func (r RepoInfo) FullName() string {
	return r.Owner + "/" + r.Repo
}

// ParseRemoteURL extracts hostname, owner and repo from a git remote URL.
// Both github.com and GitHub Enterprise remotes are accepted:
//   - https://github.com/owner/repo.git
//   - git@github.com:owner/repo.git
//   - ssh://git@github.company.com/owner/repo.git
func ParseRemoteURL(remoteURL string) (*RepoInfo, error) {
	trimmed := strings.TrimSuffix(strings.TrimSpace(remoteURL), ".git")
	for _, scheme := range []string{"https://", "http://", "ssh://"} {
		trimmed = strings.TrimPrefix(trimmed, scheme)
	}

	// Drop any user info ("git@", "token@")
	if at := strings.Index(trimmed, "@"); at >= 0 {
		trimmed = trimmed[at+1:]
	}

	var hostname, path string
	slash := strings.Index(trimmed, "/")
	colon := strings.Index(trimmed, ":")
	switch {
	case colon >= 0 && (slash < 0 || colon < slash):
		hostname, path = trimmed[:colon], trimmed[colon+1:]
	case slash >= 0:
		hostname, path = trimmed[:slash], trimmed[slash+1:]
	default:
		return nil, fmt.Errorf("%w: %q has no owner/repo path", guperrors.ErrRepoNameNotFound, remoteURL)
	}

	// A port may follow the host in ssh:// URLs
	if i := strings.Index(hostname, ":"); i >= 0 {
		hostname = hostname[:i]
	}
	path = strings.Trim(path, "/")

	parts := strings.Split(path, "/")
	if len(parts) < 2 {
		return nil, fmt.Errorf("%w: %q has no owner/repo path", guperrors.ErrRepoNameNotFound, remoteURL)
	}
	info := &RepoInfo{
		Hostname: hostname,
		Owner:    parts[len(parts)-2],
		Repo:     parts[len(parts)-1],
	}
	if info.Hostname == "" || info.Owner == "" || info.Repo == "" {
		return nil, fmt.Errorf("%w: %q", guperrors.ErrRepoNameNotFound, remoteURL)
	}
	return info, nil
}

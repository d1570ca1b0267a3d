package github

import (
	"context"
	"fmt"
	"net/url"
	"os/exec"
	"strings"

	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"

	guperrors "gup.dev/gup/internal/errors"
)

// Client is a GitHub API client bound to a single repository
type Client struct {
	api  *github.Client
	repo RepoInfo
}

// NewClient creates an authenticated client for the repository. Hosts other
// than github.com are treated as GitHub Enterprise instances.
func NewClient(ctx context.Context, repo RepoInfo, token string) (*Client, error) {
	if token == "" {
		return nil, guperrors.ErrMissingToken
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	api := github.NewClient(oauth2.NewClient(ctx, ts))

	if repo.Hostname != defaultHostname {
		baseURL, err := url.Parse(fmt.Sprintf("https://%s/api/v3/", repo.Hostname))
		if err != nil {
			return nil, fmt.Errorf("failed to parse base URL for hostname %s: %w", repo.Hostname, err)
		}
		uploadURL, err := url.Parse(fmt.Sprintf("https://%s/api/uploads/", repo.Hostname))
		if err != nil {
			return nil, fmt.Errorf("failed to parse upload URL for hostname %s: %w", repo.Hostname, err)
		}
		api.BaseURL = baseURL
		api.UploadURL = uploadURL
	}

	return &Client{api: api, repo: repo}, nil
}

// NewClientFromAPI wraps an existing go-github client
func NewClientFromAPI(api *github.Client, repo RepoInfo) *Client {
	return &Client{api: api, repo: repo}
}

// Repo returns the repository the client is bound to
func (c *Client) Repo() RepoInfo {
	return c.repo
}

// ResolveToken returns envToken when set, otherwise asks the gh CLI.
func ResolveToken(ctx context.Context, envToken string) (string, error) {
	if envToken != "" {
		return envToken, nil
	}

	output, err := exec.CommandContext(ctx, "gh", "auth", "token").Output()
	if err != nil {
		return "", guperrors.ErrMissingToken
	}
	token := strings.TrimSpace(string(output))
	if token == "" {
		return "", guperrors.ErrMissingToken
	}
	return token, nil
}

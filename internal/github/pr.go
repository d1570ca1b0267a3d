package github

import (
	"context"
	"fmt"

	"github.com/google/go-github/v62/github"
)

// PullRequest is the subset of a GitHub pull request gup needs
type PullRequest struct {
	Number  int
	Title   string
	HTMLURL string
	HeadSHA string
}

// FindOpenPullRequest returns the open pull request whose head is branch,
// or nil when there is none.
func (c *Client) FindOpenPullRequest(ctx context.Context, branch string) (*PullRequest, error) {
	prs, _, err := c.api.PullRequests.List(ctx, c.repo.Owner, c.repo.Repo, &github.PullRequestListOptions{
		Head:  fmt.Sprintf("%s:%s", c.repo.Owner, branch),
		State: "open",
		ListOptions: github.ListOptions{
			PerPage: 1,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list pull requests for %s: %w", branch, err)
	}
	if len(prs) == 0 {
		return nil, nil
	}

	pr := prs[0]
	result := &PullRequest{
		Number:  pr.GetNumber(),
		Title:   pr.GetTitle(),
		HTMLURL: pr.GetHTMLURL(),
	}
	if pr.Head != nil {
		result.HeadSHA = pr.Head.GetSHA()
	}
	return result, nil
}

// NewPullRequestURL returns the page that opens a new pull request for branch
func (c *Client) NewPullRequestURL(branch string) string {
	return NewPullRequestURL(c.repo, branch)
}

// NewPullRequestURL returns the compare page for branch on the repository's host
func NewPullRequestURL(repo RepoInfo, branch string) string {
	return fmt.Sprintf("https://%s/%s/%s/compare/%s?expand=1", repo.Hostname, repo.Owner, repo.Repo, branch)
}

package runtime

import (
	"context"

	"gup.dev/gup/internal/git"
	"gup.dev/gup/internal/github"
)

// Repository is the git state gup reads and changes
type Repository interface {
	Root() string
	CurrentBranch(ctx context.Context) (string, error)
	HasUpstream(ctx context.Context, branch string) (bool, error)
	UpstreamName(ctx context.Context) (string, error)
	CommitID(ctx context.Context, rev string) (string, error)
	RemoteURL(ctx context.Context, remote string) (string, error)
	StageAll(ctx context.Context) error
	Commit(ctx context.Context, message string) error
	Amend(ctx context.Context, message string) error
	Push(ctx context.Context, opts git.PushOptions) (string, error)
}

// GitHubClient is the GitHub API surface gup uses
type GitHubClient interface {
	FindOpenPullRequest(ctx context.Context, branch string) (*github.PullRequest, error)
	NewPullRequestURL(branch string) string
	CheckStatus(ctx context.Context, sha string, ignored []string) (*github.CheckStatus, error)
}

// MessageEditor lets the user correct a commit message
type MessageEditor interface {
	Interactive() bool
	EditMessage(text, hint string) (string, error)
}

// GitHubClientFactory creates a GitHub client on first use
type GitHubClientFactory func(ctx context.Context) (GitHubClient, error)

var (
	_ Repository   = (*git.Repository)(nil)
	_ GitHubClient = (*github.Client)(nil)
)

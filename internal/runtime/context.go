package runtime

import (
	"context"
	"fmt"
	"os"
	"sync"

	"gup.dev/gup/internal/config"
	"gup.dev/gup/internal/git"
	"gup.dev/gup/internal/github"
	"gup.dev/gup/internal/output"
	"gup.dev/gup/internal/tui"
	"gup.dev/gup/internal/utils"
)

// Context provides access to collaborators and settings for commands
type Context struct {
	context.Context
	Splog       *output.Splog
	Env         *config.Env
	RepoConfig  *config.RepoConfig
	Repo        Repository
	Editor      MessageEditor
	OpenBrowser func(url string) error

	githubFactory GitHubClientFactory
	githubOnce    sync.Once
	githubClient  GitHubClient
	githubErr     error
}

// NewContext creates a context from explicit collaborators. A nil
// RepoConfig means the defaults.
func NewContext(ctx context.Context, splog *output.Splog, env *config.Env, repoConfig *config.RepoConfig, repo Repository) *Context {
	if repoConfig == nil {
		repoConfig = &config.RepoConfig{}
	}
	return &Context{
		Context:     ctx,
		Splog:       splog,
		Env:         env,
		RepoConfig:  repoConfig,
		Repo:        repo,
		Editor:      tui.NewPrompter(env.NoInteractive),
		OpenBrowser: utils.OpenBrowser,
	}
}

// GetContext opens the repository containing the working directory and
// reads its configuration.
func GetContext(ctx context.Context, splog *output.Splog, env *config.Env) (*Context, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	repo, err := git.OpenRepository(cwd)
	if err != nil {
		return nil, err
	}

	repoConfig, err := config.GetRepoConfig(repo.Root())
	if err != nil {
		return nil, err
	}

	rc := NewContext(ctx, splog, env, repoConfig, repo)
	rc.githubFactory = rc.newGitHubClient
	return rc, nil
}

// SetGitHubClientFactory replaces how the GitHub client is created
func (c *Context) SetGitHubClientFactory(factory GitHubClientFactory) {
	c.githubFactory = factory
}

// GitHubClient returns the GitHub client, creating it on first use
func (c *Context) GitHubClient() (GitHubClient, error) {
	c.githubOnce.Do(func() {
		if c.githubFactory == nil {
			c.githubErr = fmt.Errorf("no GitHub client configured")
			return
		}
		c.githubClient, c.githubErr = c.githubFactory(c)
	})
	return c.githubClient, c.githubErr
}

func (c *Context) newGitHubClient(ctx context.Context) (GitHubClient, error) {
	remoteURL, err := c.Repo.RemoteURL(ctx, c.RepoConfig.RemoteName())
	if err != nil {
		return nil, err
	}

	repoInfo, err := github.ParseRemoteURL(remoteURL)
	if err != nil {
		return nil, err
	}

	token, err := github.ResolveToken(ctx, c.Env.GitHubToken)
	if err != nil {
		return nil, err
	}

	c.Splog.Debug("Using GitHub repository %s on %s", repoInfo.FullName(), repoInfo.Hostname)
	client, err := github.NewClient(ctx, *repoInfo, token)
	if err != nil {
		return nil, err
	}
	return client, nil
}

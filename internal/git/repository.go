package git

import (
	"context"
	"fmt"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	guperrors "gup.dev/gup/internal/errors"
)

// Repository wraps a go-git repository and runs git commands in its worktree
type Repository struct {
	*gogit.Repository
	root   string
	runner *CommandRunner
}

// OpenRepository opens the git repository containing path
func OpenRepository(path string) (*Repository, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	repo, err := gogit.PlainOpenWithOptions(absPath, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("not a git repository: %w", err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("failed to get worktree: %w", err)
	}
	root := worktree.Filesystem.Root()

	return &Repository{
		Repository: repo,
		root:       root,
		runner:     NewCommandRunner(root),
	}, nil
}

// Root returns the root directory of the worktree
func (r *Repository) Root() string {
	return r.root
}

// CurrentBranch returns the branch HEAD points to. A branch without commits
// yet is still reported.
func (r *Repository) CurrentBranch(_ context.Context) (string, error) {
	head, err := r.Reference(plumbing.HEAD, false)
	if err != nil {
		return "", fmt.Errorf("failed to get HEAD: %w", err)
	}

	if head.Type() != plumbing.SymbolicReference || !head.Target().IsBranch() {
		return "", guperrors.ErrNotOnBranch
	}

	return head.Target().Short(), nil
}

// HasUpstream reports whether the branch tracks a remote branch
func (r *Repository) HasUpstream(_ context.Context, branchName string) (bool, error) {
	cfg, err := r.Config()
	if err != nil {
		return false, fmt.Errorf("failed to read git config: %w", err)
	}

	branch, ok := cfg.Branches[branchName]
	if !ok {
		return false, nil
	}
	return branch.Remote != "" && branch.Merge != "", nil
}

// RemoteURL returns the first URL configured for the remote
func (r *Repository) RemoteURL(_ context.Context, remoteName string) (string, error) {
	remote, err := r.Remote(remoteName)
	if err != nil {
		return "", fmt.Errorf("failed to get remote %s: %w", remoteName, err)
	}

	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", fmt.Errorf("remote %s has no URL", remoteName)
	}
	return urls[0], nil
}

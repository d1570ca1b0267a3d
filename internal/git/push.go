package git

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"

	guperrors "gup.dev/gup/internal/errors"
)

// PushOptions contains options for pushing a branch
type PushOptions struct {
	Remote         string
	Branch         string
	SetUpstream    bool
	ForceWithLease bool
}

// Push pushes a branch and returns everything git printed, including the
// remote's messages.
func (r *Repository) Push(ctx context.Context, opts PushOptions) (string, error) {
	args := []string{"push"}
	if opts.SetUpstream {
		args = append(args, "-u")
	}
	if opts.ForceWithLease {
		args = append(args, "--force-with-lease")
	}
	args = append(args, opts.Remote, opts.Branch)

	output, err := r.runner.RunCombined(ctx, args...)
	if err != nil {
		var gitErr *guperrors.GitCommandError
		if errors.As(err, &gitErr) && strings.Contains(gitErr.Stderr, "stale info") {
			return "", fmt.Errorf("force-with-lease push of %s failed due to external changes to the remote branch: %w: %w", opts.Branch, ErrStaleRemoteInfo, err)
		}
		return "", fmt.Errorf("failed to push branch %s: %w", opts.Branch, err)
	}
	return output, nil
}

// PullRequestURLFromPush returns the first pull request link the remote
// printed during a push, or "" when there is none.
func PullRequestURLFromPush(output string) string {
	lines := lo.Map(strings.Split(output, "\n"), func(line string, _ int) string {
		return strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "remote:"))
	})

	url, _ := lo.Find(lines, func(line string) bool {
		return strings.HasPrefix(line, "https") && strings.Contains(line, "/pull/")
	})
	return url
}

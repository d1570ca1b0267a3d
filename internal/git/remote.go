package git

import (
	"context"
	"fmt"

	guperrors "gup.dev/gup/internal/errors"
)

// UpstreamName returns the upstream of the current branch, e.g. "origin/fix/team-1"
func (r *Repository) UpstreamName(ctx context.Context) (string, error) {
	name, err := r.runner.Run(ctx, "rev-parse", "--abbrev-ref", "--symbolic-full-name", "@{u}")
	if err != nil || name == "" {
		return "", guperrors.ErrNoUpstream
	}
	return name, nil
}

// CommitID returns the full SHA of the last commit on rev
func (r *Repository) CommitID(ctx context.Context, rev string) (string, error) {
	sha, err := r.runner.Run(ctx, "log", "-n", "1", "--pretty=format:%H", rev)
	if err != nil {
		return "", fmt.Errorf("failed to read last commit of %s: %w", rev, err)
	}
	return sha, nil
}

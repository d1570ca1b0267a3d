package git

import (
	"context"
	"fmt"
)

// StageAll stages every change in the worktree
func (r *Repository) StageAll(ctx context.Context) error {
	if _, err := r.runner.Run(ctx, "add", "--all"); err != nil {
		return fmt.Errorf("failed to stage changes: %w", err)
	}
	return nil
}

// Commit creates a commit with the given message
func (r *Repository) Commit(ctx context.Context, message string) error {
	if _, err := r.runner.Run(ctx, "commit", "-m", message); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// Amend amends the last commit. An empty message keeps the existing one.
func (r *Repository) Amend(ctx context.Context, message string) error {
	args := []string{"commit", "--amend"}
	if message != "" {
		args = append(args, "-m", message)
	} else {
		args = append(args, "--no-edit")
	}

	if _, err := r.runner.Run(ctx, args...); err != nil {
		return fmt.Errorf("failed to amend commit: %w", err)
	}
	return nil
}

package git

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"

	guperrors "gup.dev/gup/internal/errors"
)

// DefaultCommandTimeout is the default timeout for git commands
const DefaultCommandTimeout = 5 * time.Minute

// ErrStaleRemoteInfo indicates that a push failed because the remote has changed
var ErrStaleRemoteInfo = errors.New("stale info")

// CommandRunner handles execution of git commands
type CommandRunner struct {
	workingDir string
	env        []string
}

// NewCommandRunner creates a new CommandRunner
func NewCommandRunner(workingDir string, env ...string) *CommandRunner {
	return &CommandRunner{workingDir: workingDir, env: env}
}

// Run executes a git command and returns its trimmed stdout
func (r *CommandRunner) Run(ctx context.Context, args ...string) (string, error) {
	stdout, _, err := r.run(ctx, args...)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(stdout), nil
}

// RunCombined executes a git command and returns stdout followed by stderr.
// Remote messages from git push arrive on stderr.
func (r *CommandRunner) RunCombined(ctx context.Context, args ...string) (string, error) {
	stdout, stderr, err := r.run(ctx, args...)
	if err != nil {
		return "", err
	}
	return stdout + stderr, nil
}

func (r *CommandRunner) run(ctx context.Context, args ...string) (string, string, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	// If no timeout/deadline is set in the context, add the default one
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultCommandTimeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, "git", args...)
	if r.workingDir != "" {
		cmd.Dir = r.workingDir
	}
	if len(r.env) > 0 {
		cmd.Env = append(cmd.Environ(), r.env...)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			err = ctx.Err()
		}
		return "", "", guperrors.NewGitCommandError("git", args, stdout.String(), stderr.String(), err)
	}
	return stdout.String(), stderr.String(), nil
}

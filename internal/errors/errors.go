// Package errors provides sentinel errors and custom error types for the gup application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
)

// Exit codes reported to the shell
const (
	ExitFailure          = 1
	ExitRepoNameNotFound = 5
	ExitGitCommandFailed = 10
	ExitMissingToken     = 20
)

// Sentinel errors for common conditions
var (
	// ErrNotOnBranch indicates that HEAD is not on a branch
	ErrNotOnBranch = errors.New("not on a branch")

	// ErrProtectedBranch indicates an attempt to commit directly on a protected branch
	ErrProtectedBranch = errors.New("protected branch")

	// ErrMessageRequired indicates that a local branch needs a commit message
	ErrMessageRequired = errors.New("commit message required")

	// ErrNoUpstream indicates that the current branch does not track a remote branch
	ErrNoUpstream = errors.New("no upstream branch")

	// ErrNoPullRequest indicates that no open pull request exists for a branch
	ErrNoPullRequest = errors.New("no open pull request")

	// ErrNotInteractive indicates that an interactive prompt was needed without a terminal
	ErrNotInteractive = errors.New("not running in an interactive terminal")

	// ErrMissingToken indicates that no GitHub token could be found
	ErrMissingToken = errors.New("github token missing")

	// ErrRepoNameNotFound indicates that the remote URL did not name a repository
	ErrRepoNameNotFound = errors.New("repository name not found")

	// ErrChecksFailed indicates that at least one check run did not succeed
	ErrChecksFailed = errors.New("checks failed")
)

// ProtectedBranchError represents an attempt to push from a protected branch
type ProtectedBranchError struct {
	BranchName string
}

func (e *ProtectedBranchError) Error() string {
	return fmt.Sprintf("you're on the %s branch, you can't push to this branch", e.BranchName)
}

// Is returns true if the target error is ErrProtectedBranch
func (e *ProtectedBranchError) Is(target error) bool {
	return target == ErrProtectedBranch
}

// NewProtectedBranchError creates a new ProtectedBranchError
func NewProtectedBranchError(branchName string) *ProtectedBranchError {
	return &ProtectedBranchError{BranchName: branchName}
}

// GitCommandError represents an error from a git command execution
type GitCommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %v", e.Args)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, stdout, stderr string, err error) *GitCommandError {
	return &GitCommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}

// ExitCode maps an error to the process exit code
func ExitCode(err error) int {
	var gitErr *GitCommandError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &gitErr):
		return ExitGitCommandFailed
	case errors.Is(err, ErrMissingToken):
		return ExitMissingToken
	case errors.Is(err, ErrRepoNameNotFound):
		return ExitRepoNameNotFound
	default:
		return ExitFailure
	}
}

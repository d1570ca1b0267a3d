// Package git provides the git operations gup needs.
//
// It wraps git command execution and go-git for:
//   - Repository discovery and the current branch
//   - Upstream tracking state and the upstream commit
//   - Staging, committing and amending
//   - Pushing, with or without --force-with-lease
//
// This package should be the only place where direct git commands are executed.
package git

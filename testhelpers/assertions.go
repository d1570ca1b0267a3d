// Package testhelpers provides testing utilities for gup,
// including a scene system, Git repository helpers, a mock GitHub server,
// and custom assertions.
package testhelpers

import (
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Must is a generic helper function that panics if err is not nil,
// otherwise returns the value.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// ExpectCommits asserts that the newest commit subjects on branch match expected.
func ExpectCommits(t *testing.T, repo *GitRepo, branch string, expected []string) {
	t.Helper()

	cmd := exec.Command("git", "-C", repo.Dir,
		"log", "--format=%s", branch)
	output, err := cmd.Output()
	require.NoError(t, err, "Failed to list commits")

	commits := []string{}
	for _, c := range strings.Split(strings.TrimSpace(string(output)), "\n") {
		c = strings.TrimSpace(c)
		if c != "" {
			commits = append(commits, c)
		}
	}

	if len(commits) < len(expected) {
		require.Fail(t, "Not enough commits", "Expected %d commits, got %d", len(expected), len(commits))
		return
	}

	require.Equal(t, expected, commits[:len(expected)], "Commits do not match")
}

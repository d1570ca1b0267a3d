package cli

import (
	"context"
	"errors"
	"io"

	guperrors "gup.dev/gup/internal/errors"
	"gup.dev/gup/internal/output"
)

// Execute runs the root command with args and returns the process exit code.
// Errors are printed to errOut.
func Execute(ctx context.Context, args []string, out, errOut io.Writer, version, commit, date string) int {
	rootCmd := NewRootCmd(version, commit, date)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	splog, splogErr := output.NewSplogWithWriter(errOut, false, nil)
	if splogErr == nil {
		splog.Error("%v", err)
		if tip := tipFor(err); tip != "" {
			splog.Tip("%s", tip)
		}
	}
	return guperrors.ExitCode(err)
}

func tipFor(err error) string {
	switch {
	case errors.Is(err, guperrors.ErrMissingToken):
		return "Set GITHUB_TOKEN or log in with `gh auth login`."
	case errors.Is(err, guperrors.ErrMessageRequired):
		return `Pass a message with -m, e.g. gup -m "TEAM-123 what changed".`
	case errors.Is(err, guperrors.ErrRepoNameNotFound):
		return "Check the remote URL with `git remote -v`, or set remote in .gup.yaml."
	case errors.Is(err, guperrors.ErrNoUpstream):
		return "Push the branch first with gup -m."
	}
	return ""
}

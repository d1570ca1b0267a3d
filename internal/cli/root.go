package cli

import (
	"github.com/spf13/cobra"

	"gup.dev/gup/internal/actions"
	"gup.dev/gup/internal/cli/helpers"
	"gup.dev/gup/internal/runtime"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	var (
		msg         string
		pullRequest bool
		kind        kindFlag
	)

	rootCmd := &cobra.Command{
		Use:   "gup",
		Short: "Commit everything and push it, with a ticket-linked commit message",
		Long: `gup stages every change and pushes the current branch.

On a branch that is not on the remote yet, a commit is created with the
message given by -m and the branch is pushed with its upstream set. On a
branch that tracks a remote, the last commit is amended (reworded when -m is
given) and force-pushed with lease.

Messages look like "[kind: ]TEAM-123 description". When the story is missing
it is taken from the branch name, e.g. fix/TEAM-123-some-words.`,
		Example: `  gup -m "fix: core-42 handle empty input"
  gup -m "handle empty input"     # story and kind from the branch
  gup -p                          # amend, push and open the pull request`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return actions.PushAction(ctx, actions.PushOptions{
					Message:     msg,
					PullRequest: pullRequest,
					Kind:        kind.kind,
				})
			})
		},
	}

	rootCmd.Flags().StringVarP(&msg, "message", "m", "", "Commit message; required on a branch that is not on the remote yet")
	rootCmd.Flags().BoolVarP(&pullRequest, "pull-request", "p", false, "Open the pull request for the branch in the browser")
	rootCmd.Flags().VarP(&kind, "kind", "k", kindUsage("Kind of change when the message does not name one"))

	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newPRCmd())
	rootCmd.AddCommand(newChecksCmd())
	rootCmd.AddCommand(newVersionCmd(version, commit, date))

	return rootCmd
}

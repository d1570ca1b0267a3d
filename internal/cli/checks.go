package cli

import (
	"github.com/spf13/cobra"

	"gup.dev/gup/internal/actions"
	"gup.dev/gup/internal/cli/helpers"
	"gup.dev/gup/internal/runtime"
)

// newChecksCmd creates the checks command
func newChecksCmd() *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "checks",
		Short: "Show the check runs of the pushed commit",
		Long: `Show the GitHub check runs of the commit the current branch's upstream
points to. Exits with an error when a check failed.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				_, err := actions.ChecksAction(ctx, actions.ChecksOptions{Watch: watch})
				return err
			})
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Poll until no check is pending (interval from GUP_POLL_INTERVAL)")

	return cmd
}

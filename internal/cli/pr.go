package cli

import (
	"github.com/spf13/cobra"

	"gup.dev/gup/internal/actions"
	"gup.dev/gup/internal/cli/helpers"
	"gup.dev/gup/internal/runtime"
)

// newPRCmd creates the pr command
func newPRCmd() *cobra.Command {
	var printOnly bool

	cmd := &cobra.Command{
		Use:          "pr",
		Short:        "Open the pull request of the current branch, or the page to create one",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				_, err := actions.PRAction(ctx, actions.PROptions{Print: printOnly})
				return err
			})
		},
	}

	cmd.Flags().BoolVar(&printOnly, "print", false, "Print the URL instead of opening it")

	return cmd
}

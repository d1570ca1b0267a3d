package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"gup.dev/gup/internal/actions"
	"gup.dev/gup/internal/cli/helpers"
	"gup.dev/gup/internal/runtime"
)

// newParseCmd creates the parse command
func newParseCmd() *cobra.Command {
	var (
		branch string
		kind   kindFlag
	)

	cmd := &cobra.Command{
		Use:          "parse <message>",
		Short:        "Print the commit message gup would write, without committing",
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				_, err := actions.ParseAction(ctx, actions.ParseOptions{
					Text:   strings.Join(args, " "),
					Branch: branch,
					Kind:   kind.kind,
				})
				return err
			})
		},
	}

	cmd.Flags().StringVarP(&branch, "branch", "b", "", "Branch name to take the story from. Defaults to the current branch.")
	cmd.Flags().VarP(&kind, "kind", "k", kindUsage("Kind of change when the message does not name one"))

	return cmd
}

package actions

import (
	"gup.dev/gup/internal/message"
	"gup.dev/gup/internal/output"
	"gup.dev/gup/internal/runtime"
)

// ParseOptions contains options for the parse command
type ParseOptions struct {
	Text   string
	Branch string // current branch when empty
	Kind   *message.Kind
}

// ParseAction prints the commit message gup would write, touching nothing
func ParseAction(ctx *runtime.Context, opts ParseOptions) (*message.Message, error) {
	branch := opts.Branch
	if branch == "" {
		current, err := ctx.Repo.CurrentBranch(ctx)
		if err != nil {
			return nil, err
		}
		branch = current
	}

	kind, err := resolveKind(ctx, opts.Kind)
	if err != nil {
		return nil, err
	}

	msg, err := ComposeMessage(ctx, opts.Text, branch, kind)
	if err != nil {
		return nil, err
	}

	ctx.Splog.Info("%s", output.FormatMessage(msg))
	return msg, nil
}

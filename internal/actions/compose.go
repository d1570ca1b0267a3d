package actions

import (
	"fmt"
	"strings"

	guperrors "gup.dev/gup/internal/errors"
	"gup.dev/gup/internal/message"
	"gup.dev/gup/internal/runtime"
)

const composeHint = `The message must look like "[kind: ]TEAM-123 description".
kind is one of feat, fix or chore. Without a story the branch name must
carry one, e.g. fix/TEAM-123-some-words.
Lines starting with '#' are ignored. An empty message aborts.`

// ComposeMessage parses the trimmed text into a commit message, falling back
// to the branch for the story. When parsing fails and a terminal is available the
// user may correct the text in their editor, up to the configured number of
// attempts. The last parse error is returned otherwise.
func ComposeMessage(ctx *runtime.Context, text, branch string, kind *message.Kind) (*message.Message, error) {
	text = strings.TrimSpace(text)
	for attempt := 0; ; attempt++ {
		msg, err := message.Parse(text, branch, kind)
		if err == nil {
			return msg, nil
		}

		if attempt >= ctx.Env.EditAttempts || ctx.Editor == nil || !ctx.Editor.Interactive() {
			return nil, err
		}

		ctx.Splog.Warn("%v", err)
		edited, editErr := ctx.Editor.EditMessage(text, composeHint)
		if editErr != nil {
			return nil, editErr
		}
		if edited == "" {
			return nil, fmt.Errorf("%w: aborting due to empty commit message", guperrors.ErrMessageRequired)
		}
		ctx.Splog.Debug("Retrying with edited message %q", edited)
		text = edited
	}
}

package actions

import (
	"gup.dev/gup/internal/message"
	"gup.dev/gup/internal/runtime"
)

// resolveKind returns the flag's kind, else the repository's configured one
func resolveKind(ctx *runtime.Context, flag *message.Kind) (*message.Kind, error) {
	if flag != nil {
		return flag, nil
	}
	return ctx.RepoConfig.Kind()
}

// Package helpers provides shared helper functions for CLI commands.
package helpers

import (
	"github.com/spf13/cobra"

	"gup.dev/gup/internal/config"
	"gup.dev/gup/internal/output"
	"gup.dev/gup/internal/runtime"
)

// Run is a helper that provides a runtime context to a command's execution function
func Run(cmd *cobra.Command, fn func(ctx *runtime.Context) error) error {
	env, err := config.LoadEnv()
	if err != nil {
		return err
	}

	splog, err := NewSplog(cmd, env)
	if err != nil {
		return err
	}
	defer func() { _ = splog.Close() }()

	ctx, err := runtime.GetContext(cmd.Context(), splog, env)
	if err != nil {
		return err
	}
	return fn(ctx)
}

// NewSplog creates the command's logger, writing to its output and to the
// configured log file.
func NewSplog(cmd *cobra.Command, env *config.Env) (*output.Splog, error) {
	var logFile *output.LogFileOptions
	if env.LogFile != "" {
		logFile = &output.LogFileOptions{
			Path:       env.LogFile,
			MaxSize:    env.LogMaxSize,
			MaxBackups: env.LogMaxBackups,
			MaxAge:     env.LogMaxAge,
		}
	}
	return output.NewSplogWithWriter(cmd.OutOrStdout(), env.Debug, logFile)
}

package output_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"gup.dev/gup/internal/output"
)

func TestSplog(t *testing.T) {
	t.Run("writes bare messages to the console", func(t *testing.T) {
		var buf bytes.Buffer
		splog, err := output.NewSplogWithWriter(&buf, false, nil)
		require.NoError(t, err)

		splog.Info("Committing %s", "fix: team-1 typo")
		splog.Warn("careful")
		splog.Error("failed")
		splog.Tip("try again")

		require.Equal(t, "Committing fix: team-1 typo\n⚠️  careful\n❌ failed\n💡 try again\n", buf.String())
	})

	t.Run("hides debug messages unless enabled", func(t *testing.T) {
		var quiet, verbose bytes.Buffer
		s1, err := output.NewSplogWithWriter(&quiet, false, nil)
		require.NoError(t, err)
		s2, err := output.NewSplogWithWriter(&verbose, true, nil)
		require.NoError(t, err)

		s1.Debug("hidden")
		s2.Debug("shown")

		require.Empty(t, quiet.String())
		require.Equal(t, "shown\n", verbose.String())
	})

	t.Run("does not format messages without args", func(t *testing.T) {
		var buf bytes.Buffer
		splog, err := output.NewSplogWithWriter(&buf, false, nil)
		require.NoError(t, err)

		splog.Info("100% done")
		require.Equal(t, "100% done\n", buf.String())
	})

	t.Run("writes every level to the log file", func(t *testing.T) {
		var buf bytes.Buffer
		logPath := filepath.Join(t.TempDir(), "logs", "gup.log")
		splog, err := output.NewSplogWithWriter(&buf, false, &output.LogFileOptions{
			Path:       logPath,
			MaxSize:    1,
			MaxBackups: 1,
			MaxAge:     1,
		})
		require.NoError(t, err)

		splog.Debug("debug line")
		splog.Info("info line")
		require.NoError(t, splog.Close())

		data, err := os.ReadFile(logPath)
		require.NoError(t, err)
		require.Contains(t, string(data), "level=DEBUG")
		require.Contains(t, string(data), `msg="debug line"`)
		require.Contains(t, string(data), `msg="info line"`)
		require.Equal(t, "info line\n", buf.String())
	})
}

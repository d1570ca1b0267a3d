package config_test

import (
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"

	"gup.dev/gup/internal/config"
)

func TestLoadEnv(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		t.Setenv("GITHUB_TOKEN", "")
		t.Setenv("GUP_LOG_FILE", "")

		env, err := config.LoadEnv()
		require.NoError(t, err)
		require.Empty(t, env.GitHubToken)
		require.False(t, env.Debug)
		require.Equal(t, 1, env.LogMaxSize)
		require.Equal(t, 2, env.LogMaxBackups)
		require.Equal(t, 30, env.LogMaxAge)
		require.Equal(t, 1, env.EditAttempts)
		require.Equal(t, 10*time.Second, env.PollInterval)
	})

	t.Run("reads overrides", func(t *testing.T) {
		t.Setenv("GITHUB_TOKEN", "secret")
		t.Setenv("GUP_DEBUG", "true")
		t.Setenv("GUP_LOG_FILE", "/tmp/gup.log")
		t.Setenv("GUP_EDIT_ATTEMPTS", "3")
		t.Setenv("GUP_POLL_INTERVAL", "2s")
		t.Setenv("GUP_NO_INTERACTIVE", "1")

		env, err := config.LoadEnv()
		require.NoError(t, err)
		require.Equal(t, "secret", env.GitHubToken)
		require.True(t, env.Debug)
		require.Equal(t, "/tmp/gup.log", env.LogFile)
		require.Equal(t, 3, env.EditAttempts)
		require.Equal(t, 2*time.Second, env.PollInterval)
		require.True(t, env.NoInteractive)
	})

	t.Run("rejects malformed values", func(t *testing.T) {
		t.Setenv("GUP_EDIT_ATTEMPTS", "many")
		_, err := config.LoadEnv()
		require.Error(t, err)
	})

	t.Run("rejects out of range values", func(t *testing.T) {
		cases := map[string]string{
			"GUP_LOG_MAX_SIZE":    "0",
			"GUP_LOG_MAX_BACKUPS": "-1",
			"GUP_LOG_MAX_AGE":     "0",
			"GUP_EDIT_ATTEMPTS":   "-1",
			"GUP_POLL_INTERVAL":   "0s",
		}
		for key, value := range cases {
			t.Run(key, func(t *testing.T) {
				t.Setenv(key, value)

				_, err := config.LoadEnv()
				require.ErrorContains(t, err, key)

				var validationErrs validator.ValidationErrors
				require.ErrorAs(t, err, &validationErrs)
			})
		}
	})

	t.Run("accepts zero edit attempts and backups", func(t *testing.T) {
		t.Setenv("GUP_EDIT_ATTEMPTS", "0")
		t.Setenv("GUP_LOG_MAX_BACKUPS", "0")

		env, err := config.LoadEnv()
		require.NoError(t, err)
		require.Zero(t, env.EditAttempts)
		require.Zero(t, env.LogMaxBackups)
	})
}

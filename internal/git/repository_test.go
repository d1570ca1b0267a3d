package git_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	guperrors "gup.dev/gup/internal/errors"
	"gup.dev/gup/internal/git"
	"gup.dev/gup/testhelpers"
)

func TestOpenRepository(t *testing.T) {
	t.Run("finds the root from a subdirectory", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		sub := filepath.Join(scene.Dir, "nested", "deeper")
		require.NoError(t, os.MkdirAll(sub, 0o755))

		repo, err := git.OpenRepository(sub)
		require.NoError(t, err)
		require.Equal(t, scene.Dir, repo.Root())
	})

	t.Run("fails outside a repository", func(t *testing.T) {
		_, err := git.OpenRepository(t.TempDir())
		require.Error(t, err)
	})
}

func TestCurrentBranch(t *testing.T) {
	t.Run("returns the checked out branch", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		require.NoError(t, scene.Repo.CreateAndCheckoutBranch("fix/team-123-typo"))

		repo, err := git.OpenRepository(scene.Dir)
		require.NoError(t, err)

		branch, err := repo.CurrentBranch(context.Background())
		require.NoError(t, err)
		require.Equal(t, "fix/team-123-typo", branch)
	})

	t.Run("works before the first commit", func(t *testing.T) {
		scene := testhelpers.NewScene(t, nil)

		repo, err := git.OpenRepository(scene.Dir)
		require.NoError(t, err)

		branch, err := repo.CurrentBranch(context.Background())
		require.NoError(t, err)
		require.Equal(t, "main", branch)
	})

	t.Run("fails on a detached HEAD", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		require.NoError(t, scene.Repo.RunGitCommand("checkout", "--detach"))

		repo, err := git.OpenRepository(scene.Dir)
		require.NoError(t, err)

		_, err = repo.CurrentBranch(context.Background())
		require.ErrorIs(t, err, guperrors.ErrNotOnBranch)
	})
}

func TestHasUpstream(t *testing.T) {
	t.Run("local branch has no upstream", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.RemoteSceneSetup)
		require.NoError(t, scene.Repo.CreateAndCheckoutBranch("team-1"))

		repo, err := git.OpenRepository(scene.Dir)
		require.NoError(t, err)

		tracked, err := repo.HasUpstream(context.Background(), "team-1")
		require.NoError(t, err)
		require.False(t, tracked)
	})

	t.Run("pushed branch tracks its remote", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.RemoteSceneSetup)

		repo, err := git.OpenRepository(scene.Dir)
		require.NoError(t, err)

		tracked, err := repo.HasUpstream(context.Background(), "main")
		require.NoError(t, err)
		require.True(t, tracked)

		upstream, err := repo.UpstreamName(context.Background())
		require.NoError(t, err)
		require.Equal(t, "origin/main", upstream)
	})

	t.Run("UpstreamName fails without upstream", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

		repo, err := git.OpenRepository(scene.Dir)
		require.NoError(t, err)

		_, err = repo.UpstreamName(context.Background())
		require.ErrorIs(t, err, guperrors.ErrNoUpstream)
	})
}

func TestRemoteURL(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
	bareDir, err := scene.Repo.CreateBareRemote("origin")
	require.NoError(t, err)

	repo, err := git.OpenRepository(scene.Dir)
	require.NoError(t, err)

	url, err := repo.RemoteURL(context.Background(), "origin")
	require.NoError(t, err)
	require.Equal(t, bareDir, url)

	_, err = repo.RemoteURL(context.Background(), "missing")
	require.Error(t, err)
}

package actions_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gup.dev/gup/internal/actions"
	"gup.dev/gup/internal/config"
	guperrors "gup.dev/gup/internal/errors"
	"gup.dev/gup/internal/github"
	"gup.dev/gup/internal/message"
	"gup.dev/gup/testhelpers"
)

func TestPushAction(t *testing.T) {
	t.Run("refuses protected branches", func(t *testing.T) {
		env := newTestEnv(t, testhelpers.RemoteSceneSetup)

		err := actions.PushAction(env.ctx, actions.PushOptions{Message: "team-1 change"})
		require.ErrorIs(t, err, guperrors.ErrProtectedBranch)
		require.EqualError(t, err, "you're on the main branch, you can't push to this branch")
	})

	t.Run("honors configured protected branches", func(t *testing.T) {
		env := newTestEnv(t, testhelpers.RemoteSceneSetup)
		require.NoError(t, env.scene.Repo.CreateAndCheckoutBranch("release"))
		env.ctx.RepoConfig = &config.RepoConfig{ProtectedBranches: []string{"release"}}

		err := actions.PushAction(env.ctx, actions.PushOptions{Message: "team-1 change"})
		require.ErrorIs(t, err, guperrors.ErrProtectedBranch)
	})

	t.Run("local branch requires a message", func(t *testing.T) {
		env := newTestEnv(t, testhelpers.RemoteSceneSetup)
		require.NoError(t, env.scene.Repo.CreateAndCheckoutBranch("fix/team-3-typo"))

		err := actions.PushAction(env.ctx, actions.PushOptions{})
		require.ErrorIs(t, err, guperrors.ErrMessageRequired)
	})

	t.Run("local branch is committed and pushed with upstream", func(t *testing.T) {
		env := newTestEnv(t, testhelpers.RemoteSceneSetup)
		require.NoError(t, env.scene.Repo.CreateAndCheckoutBranch("fix/team-3-typo"))
		require.NoError(t, env.scene.Repo.CreateChange("fixed", "typo", true))

		err := actions.PushAction(env.ctx, actions.PushOptions{Message: "correct the typo"})
		require.NoError(t, err)

		testhelpers.ExpectCommits(t, env.scene.Repo, "fix/team-3-typo", []string{"fix: team-3 correct the typo", "1"})

		remote, err := env.scene.Repo.GetRevision("origin/fix/team-3-typo")
		require.NoError(t, err)
		local, err := env.scene.Repo.GetRevision("HEAD")
		require.NoError(t, err)
		require.Equal(t, local, remote)

		tracked, err := env.repo.HasUpstream(env.ctx, "fix/team-3-typo")
		require.NoError(t, err)
		require.True(t, tracked)
		require.Empty(t, env.opened)
	})

	t.Run("local branch opens the compare page with -p", func(t *testing.T) {
		env := newTestEnv(t, testhelpers.RemoteSceneSetup)
		require.NoError(t, env.scene.Repo.CreateAndCheckoutBranch("team-4"))
		require.NoError(t, env.scene.Repo.CreateChange("four", "four", true))

		err := actions.PushAction(env.ctx, actions.PushOptions{Message: "chore: team-4 tidy", PullRequest: true})
		require.NoError(t, err)
		require.Equal(t, []string{"https://github.com/acme/widgets/compare/team-4?expand=1"}, env.opened)
	})

	t.Run("tracked branch is amended and force pushed", func(t *testing.T) {
		env := newTestEnv(t, testhelpers.RemoteSceneSetup)
		require.NoError(t, env.scene.Repo.CreateAndCheckoutBranch("feat/team-5"))
		require.NoError(t, env.scene.Repo.CreateChangeAndCommit("feat: team-5 first", "five"))
		require.NoError(t, env.scene.Repo.PushBranch("origin", "feat/team-5"))
		require.NoError(t, env.scene.Repo.CreateChange("more", "five", true))

		err := actions.PushAction(env.ctx, actions.PushOptions{})
		require.NoError(t, err)

		testhelpers.ExpectCommits(t, env.scene.Repo, "feat/team-5", []string{"feat: team-5 first", "1"})
		remote, err := env.scene.Repo.GetRevision("origin/feat/team-5")
		require.NoError(t, err)
		local, err := env.scene.Repo.GetRevision("HEAD")
		require.NoError(t, err)
		require.Equal(t, local, remote)
	})

	t.Run("tracked branch takes a new message", func(t *testing.T) {
		env := newTestEnv(t, testhelpers.RemoteSceneSetup)
		require.NoError(t, env.scene.Repo.CreateAndCheckoutBranch("feat/team-5"))
		require.NoError(t, env.scene.Repo.CreateChangeAndCommit("feat: team-5 first", "five"))
		require.NoError(t, env.scene.Repo.PushBranch("origin", "feat/team-5"))

		err := actions.PushAction(env.ctx, actions.PushOptions{Message: "better words", Kind: message.KindChore.Ptr()})
		require.NoError(t, err)

		head, err := env.scene.Repo.HeadCommitMessage()
		require.NoError(t, err)
		require.Equal(t, "chore: team-5 better words", head)
	})

	t.Run("tracked branch opens its pull request with -p", func(t *testing.T) {
		env := newTestEnv(t, testhelpers.RemoteSceneSetup)
		require.NoError(t, env.scene.Repo.CreateAndCheckoutBranch("team-6"))
		require.NoError(t, env.scene.Repo.CreateChangeAndCommit("feat: team-6 six", "six"))
		require.NoError(t, env.scene.Repo.PushBranch("origin", "team-6"))
		env.github.prs["team-6"] = &github.PullRequest{Number: 6, HTMLURL: "https://github.com/acme/widgets/pull/6"}

		err := actions.PushAction(env.ctx, actions.PushOptions{PullRequest: true})
		require.NoError(t, err)
		require.Equal(t, []string{"https://github.com/acme/widgets/pull/6"}, env.opened)
	})

	t.Run("tracked branch without a pull request only warns", func(t *testing.T) {
		env := newTestEnv(t, testhelpers.RemoteSceneSetup)
		require.NoError(t, env.scene.Repo.CreateAndCheckoutBranch("team-6"))
		require.NoError(t, env.scene.Repo.CreateChangeAndCommit("feat: team-6 six", "six"))
		require.NoError(t, env.scene.Repo.PushBranch("origin", "team-6"))

		err := actions.PushAction(env.ctx, actions.PushOptions{PullRequest: true})
		require.NoError(t, err)
		require.Empty(t, env.opened)
		require.Contains(t, env.out.String(), "no open pull request for team-6")
	})

	t.Run("invalid message leaves the repository untouched", func(t *testing.T) {
		env := newTestEnv(t, testhelpers.RemoteSceneSetup)
		require.NoError(t, env.scene.Repo.CreateAndCheckoutBranch("no-story"))
		require.NoError(t, env.scene.Repo.CreateChange("x", "x", true))

		err := actions.PushAction(env.ctx, actions.PushOptions{Message: "words only"})
		require.ErrorIs(t, err, message.ErrInvalidCommitMessage)

		count, err := env.scene.Repo.CommitCount("HEAD")
		require.NoError(t, err)
		require.Equal(t, 1, count)
	})

	t.Run("configured default kind fills a missing kind", func(t *testing.T) {
		env := newTestEnv(t, testhelpers.RemoteSceneSetup)
		require.NoError(t, env.scene.Repo.CreateAndCheckoutBranch("team-8"))
		require.NoError(t, env.scene.Repo.CreateChange("eight", "eight", true))
		env.ctx.RepoConfig = &config.RepoConfig{DefaultKind: "chore"}

		err := actions.PushAction(env.ctx, actions.PushOptions{Message: "team-8 bump deps"})
		require.NoError(t, err)

		head, err := env.scene.Repo.HeadCommitMessage()
		require.NoError(t, err)
		require.Equal(t, "chore: team-8 bump deps", head)
	})
}

package actions_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"gup.dev/gup/internal/config"
	"gup.dev/gup/internal/git"
	"gup.dev/gup/internal/github"
	"gup.dev/gup/internal/output"
	"gup.dev/gup/internal/runtime"
	"gup.dev/gup/testhelpers"
)

// fakeEditor replays edits in order
type fakeEditor struct {
	interactive bool
	edits       []string
	err         error
	seen        []string
}

func (e *fakeEditor) Interactive() bool {
	return e.interactive
}

func (e *fakeEditor) EditMessage(text, _ string) (string, error) {
	e.seen = append(e.seen, text)
	if e.err != nil {
		return "", e.err
	}
	if len(e.edits) == 0 {
		return "", errors.New("unexpected edit")
	}
	edit := e.edits[0]
	e.edits = e.edits[1:]
	return edit, nil
}

// fakeGitHub is an in-memory GitHub client
type fakeGitHub struct {
	prs    map[string]*github.PullRequest
	checks map[string][]*github.CheckStatus
	calls  int
}

func (f *fakeGitHub) FindOpenPullRequest(_ context.Context, branch string) (*github.PullRequest, error) {
	return f.prs[branch], nil
}

func (f *fakeGitHub) NewPullRequestURL(branch string) string {
	return github.NewPullRequestURL(github.RepoInfo{Hostname: "github.com", Owner: "acme", Repo: "widgets"}, branch)
}

func (f *fakeGitHub) CheckStatus(_ context.Context, sha string, _ []string) (*github.CheckStatus, error) {
	statuses, ok := f.checks[sha]
	if !ok {
		return &github.CheckStatus{}, nil
	}
	status := statuses[min(f.calls, len(statuses)-1)]
	f.calls++
	return status, nil
}

type testEnv struct {
	ctx    *runtime.Context
	out    *bytes.Buffer
	editor *fakeEditor
	github *fakeGitHub
	opened []string
	repo   *git.Repository
	scene  *testhelpers.Scene
}

func newTestEnv(t *testing.T, setup testhelpers.SceneSetup) *testEnv {
	t.Helper()

	scene := testhelpers.NewScene(t, setup)
	repo, err := git.OpenRepository(scene.Dir)
	require.NoError(t, err)

	out := &bytes.Buffer{}
	splog, err := output.NewSplogWithWriter(out, true, nil)
	require.NoError(t, err)

	env := &config.Env{EditAttempts: 1, PollInterval: time.Millisecond, NoInteractive: true}
	te := &testEnv{
		out:    out,
		editor: &fakeEditor{},
		github: &fakeGitHub{
			prs:    map[string]*github.PullRequest{},
			checks: map[string][]*github.CheckStatus{},
		},
		repo:  repo,
		scene: scene,
	}

	ctx := runtime.NewContext(context.Background(), splog, env, nil, repo)
	ctx.Editor = te.editor
	ctx.OpenBrowser = func(url string) error {
		te.opened = append(te.opened, url)
		return nil
	}
	ctx.SetGitHubClientFactory(func(context.Context) (runtime.GitHubClient, error) {
		return te.github, nil
	})
	te.ctx = ctx
	return te
}

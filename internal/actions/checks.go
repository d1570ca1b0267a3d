package actions

import (
	"context"
	"fmt"
	"strings"

	guperrors "gup.dev/gup/internal/errors"
	"gup.dev/gup/internal/github"
	"gup.dev/gup/internal/output"
	"gup.dev/gup/internal/runtime"
	"gup.dev/gup/internal/tui"
)

// ChecksOptions contains options for the checks command
type ChecksOptions struct {
	Watch bool
}

// ChecksAction reports the check runs of the upstream commit of the current
// branch. With Watch it polls until no run is pending. A failing run makes
// it return ErrChecksFailed.
func ChecksAction(ctx *runtime.Context, opts ChecksOptions) (*github.CheckStatus, error) {
	upstream, err := ctx.Repo.UpstreamName(ctx)
	if err != nil {
		return nil, err
	}
	sha, err := ctx.Repo.CommitID(ctx, upstream)
	if err != nil {
		return nil, err
	}

	client, err := ctx.GitHubClient()
	if err != nil {
		return nil, err
	}

	ignored := ctx.RepoConfig.IgnoredCheckNames()
	fetch := func(c context.Context) (*github.CheckStatus, error) {
		return client.CheckStatus(c, sha, ignored)
	}
	ctx.Splog.Debug("Reading checks for %s at %s", upstream, sha)

	var status *github.CheckStatus
	switch {
	case !opts.Watch:
		status, err = fetch(ctx)
	case ctx.Editor != nil && ctx.Editor.Interactive():
		status, err = tui.RunChecksTUI(ctx, fetch, ctx.Env.PollInterval)
	default:
		status, err = tui.RunChecksSimple(ctx, fetch, ctx.Env.PollInterval, ctx.Splog)
	}
	if err != nil {
		return nil, err
	}

	reportChecks(ctx, status)
	if len(status.Failed) > 0 {
		return status, fmt.Errorf("%w: %s", guperrors.ErrChecksFailed, strings.Join(status.Failed, ", "))
	}
	return status, nil
}

func reportChecks(ctx *runtime.Context, status *github.CheckStatus) {
	splog := ctx.Splog
	switch {
	case status.Total == 0:
		splog.Info("No checks reported yet")
	case status.IsPending():
		splog.Info("%s %d of %d checks pending: %s", output.ColorYellow("⋯"), len(status.Pending), status.Total, strings.Join(status.Pending, ", "))
	case status.IsPassing():
		splog.Info("%s All %d checks passed", output.ColorGreen("✓"), status.Total)
	}
	for _, name := range status.Failed {
		splog.Info("%s %s", output.ColorRed("✗"), name)
	}
}

package actions

import (
	"fmt"
	"strings"

	guperrors "gup.dev/gup/internal/errors"
	"gup.dev/gup/internal/git"
	"gup.dev/gup/internal/message"
	"gup.dev/gup/internal/output"
	"gup.dev/gup/internal/runtime"
)

// PushOptions contains options for the push workflow
type PushOptions struct {
	Message     string
	PullRequest bool
	Kind        *message.Kind
}

// PushAction commits everything in the worktree and pushes the current
// branch. A branch that already tracks a remote has its last commit amended
// and force-pushed with lease; a local branch gets a new commit and is
// pushed with its upstream set.
func PushAction(ctx *runtime.Context, opts PushOptions) error {
	splog := ctx.Splog

	branch, err := ctx.Repo.CurrentBranch(ctx)
	if err != nil {
		return err
	}
	if ctx.RepoConfig.IsProtected(branch) {
		return guperrors.NewProtectedBranchError(branch)
	}

	var msg *message.Message
	if text := strings.TrimSpace(opts.Message); text != "" {
		kind, err := resolveKind(ctx, opts.Kind)
		if err != nil {
			return err
		}
		msg, err = ComposeMessage(ctx, text, branch, kind)
		if err != nil {
			return err
		}
		splog.Debug("Composed message: %s", msg)
	}

	tracked, err := ctx.Repo.HasUpstream(ctx, branch)
	if err != nil {
		return err
	}

	if tracked {
		return amendAndPush(ctx, branch, msg, opts)
	}
	return commitAndPush(ctx, branch, msg, opts)
}

func amendAndPush(ctx *runtime.Context, branch string, msg *message.Message, opts PushOptions) error {
	splog := ctx.Splog

	if err := ctx.Repo.StageAll(ctx); err != nil {
		return err
	}

	amendMessage := ""
	if msg != nil {
		amendMessage = msg.String()
		splog.Info("Amending commit: %s", output.FormatMessage(msg))
	} else {
		splog.Info("Amending commit")
	}
	if err := ctx.Repo.Amend(ctx, amendMessage); err != nil {
		return err
	}

	if _, err := ctx.Repo.Push(ctx, git.PushOptions{
		Remote:         ctx.RepoConfig.RemoteName(),
		Branch:         branch,
		ForceWithLease: true,
	}); err != nil {
		return err
	}
	splog.Info("Pushed %s", output.ColorGreen(branch))

	if !opts.PullRequest {
		return nil
	}

	client, err := ctx.GitHubClient()
	if err != nil {
		return err
	}
	pr, err := client.FindOpenPullRequest(ctx, branch)
	if err != nil {
		return err
	}
	if pr == nil {
		splog.Warn("%v for %s", guperrors.ErrNoPullRequest, branch)
		return nil
	}
	return openURL(ctx, pr.HTMLURL)
}

func commitAndPush(ctx *runtime.Context, branch string, msg *message.Message, opts PushOptions) error {
	splog := ctx.Splog

	if msg == nil {
		return fmt.Errorf("you're on a local branch, you must provide a commit message: %w", guperrors.ErrMessageRequired)
	}

	if err := ctx.Repo.StageAll(ctx); err != nil {
		return err
	}
	splog.Info("Committing: %s", output.FormatMessage(msg))
	if err := ctx.Repo.Commit(ctx, msg.String()); err != nil {
		return err
	}

	pushOutput, err := ctx.Repo.Push(ctx, git.PushOptions{
		Remote:      ctx.RepoConfig.RemoteName(),
		Branch:      branch,
		SetUpstream: true,
	})
	if err != nil {
		return err
	}
	splog.Debug("%s", pushOutput)
	splog.Info("Pushed %s", output.ColorGreen(branch))

	url := git.PullRequestURLFromPush(pushOutput)
	if url == "" && opts.PullRequest {
		client, err := ctx.GitHubClient()
		if err != nil {
			return err
		}
		url = client.NewPullRequestURL(branch)
	}
	if url == "" {
		return nil
	}
	return openURL(ctx, url)
}

// openURL opens url in the browser. Failing to launch one is only a warning.
func openURL(ctx *runtime.Context, url string) error {
	ctx.Splog.Info("Opening %s", output.ColorURL(url))
	if err := ctx.OpenBrowser(url); err != nil {
		ctx.Splog.Warn("Failed to open browser: %v", err)
	}
	return nil
}

package actions

import (
	"gup.dev/gup/internal/output"
	"gup.dev/gup/internal/runtime"
)

// PROptions contains options for the pr command
type PROptions struct {
	Print bool
}

// PRAction opens the open pull request of the current branch, or the page
// creating one when there is none. It returns the URL.
func PRAction(ctx *runtime.Context, opts PROptions) (string, error) {
	branch, err := ctx.Repo.CurrentBranch(ctx)
	if err != nil {
		return "", err
	}

	client, err := ctx.GitHubClient()
	if err != nil {
		return "", err
	}

	pr, err := client.FindOpenPullRequest(ctx, branch)
	if err != nil {
		return "", err
	}

	url := client.NewPullRequestURL(branch)
	if pr != nil {
		url = pr.HTMLURL
		ctx.Splog.Debug("Found pull request #%d for %s", pr.Number, branch)
	} else {
		ctx.Splog.Info("No open pull request for %s, use the link to create one", branch)
	}

	if opts.Print {
		ctx.Splog.Info("%s", output.ColorURL(url))
		return url, nil
	}
	return url, openURL(ctx, url)
}

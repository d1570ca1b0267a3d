package github

import (
	"context"
	"fmt"

	"github.com/google/go-github/v62/github"
	"github.com/samber/lo"
)

const (
	checkStatusCompleted   = "completed"
	checkConclusionSuccess = "success"
	checkRunsPerPage       = 100
)

// CheckStatus summarizes the check runs of a commit
type CheckStatus struct {
	Total   int
	Pending []string
	Failed  []string
}

// IsPending reports whether any run has not completed yet
func (s *CheckStatus) IsPending() bool {
	return len(s.Pending) > 0
}

// IsPassing reports whether every run completed successfully or is ignored
func (s *CheckStatus) IsPassing() bool {
	return !s.IsPending() && len(s.Failed) == 0
}

// CheckStatus reads the check runs for sha. Runs named in ignored never
// count as failures.
func (c *Client) CheckStatus(ctx context.Context, sha string, ignored []string) (*CheckStatus, error) {
	var runs []*github.CheckRun
	opts := &github.ListCheckRunsOptions{
		ListOptions: github.ListOptions{PerPage: checkRunsPerPage},
	}
	for {
		result, resp, err := c.api.Checks.ListCheckRunsForRef(ctx, c.repo.Owner, c.repo.Repo, sha, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list check runs for %s: %w", sha, err)
		}
		runs = append(runs, result.CheckRuns...)
		if resp == nil || resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return summarizeCheckRuns(runs, ignored), nil
}

func summarizeCheckRuns(runs []*github.CheckRun, ignored []string) *CheckStatus {
	pending := lo.Filter(runs, func(run *github.CheckRun, _ int) bool {
		return run.GetStatus() != checkStatusCompleted
	})
	failed := lo.Filter(runs, func(run *github.CheckRun, _ int) bool {
		return run.GetStatus() == checkStatusCompleted &&
			run.GetConclusion() != checkConclusionSuccess &&
			!lo.Contains(ignored, run.GetName())
	})

	name := func(run *github.CheckRun, _ int) string { return run.GetName() }
	return &CheckStatus{
		Total:   len(runs),
		Pending: lo.Map(pending, name),
		Failed:  lo.Map(failed, name),
	}
}

package testhelpers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-github/v62/github"
)

// MockGitHubServerConfig configures the behavior of a mock GitHub server
type MockGitHubServerConfig struct {
	// PRs maps head branch names to pull requests
	PRs map[string]*github.PullRequest
	// CheckRuns maps commit SHAs to their check runs
	CheckRuns map[string][]*github.CheckRun
	// ErrorStatus maps request paths to an HTTP status returned instead of data
	ErrorStatus map[string]int
	// Requests records every path the server received
	Requests []string
	Owner    string
	Repo     string
}

// NewMockGitHubServerConfig creates a new mock server config with defaults
func NewMockGitHubServerConfig() *MockGitHubServerConfig {
	return &MockGitHubServerConfig{
		PRs:         make(map[string]*github.PullRequest),
		CheckRuns:   make(map[string][]*github.CheckRun),
		ErrorStatus: make(map[string]int),
		Owner:       "owner",
		Repo:        "repo",
	}
}

// AddPullRequest registers a pull request for a head branch
func (c *MockGitHubServerConfig) AddPullRequest(branch string, number int, state string) *github.PullRequest {
	pr := &github.PullRequest{
		Number:  github.Int(number),
		State:   github.String(state),
		Title:   github.String(branch),
		HTMLURL: github.String("https://github.com/" + c.Owner + "/" + c.Repo + "/pull/" + strconv.Itoa(number)),
		Head: &github.PullRequestBranch{
			Ref: github.String(branch),
			SHA: github.String(strings.Repeat("a", 40)),
		},
	}
	c.PRs[branch] = pr
	return pr
}

// AddCheckRun registers a check run for a commit. An empty conclusion
// leaves the run in progress.
func (c *MockGitHubServerConfig) AddCheckRun(sha, name, conclusion string) {
	run := &github.CheckRun{
		Name:   github.String(name),
		Status: github.String("in_progress"),
	}
	if conclusion != "" {
		run.Status = github.String("completed")
		run.Conclusion = github.String(conclusion)
	}
	c.CheckRuns[sha] = append(c.CheckRuns[sha], run)
}

// NewMockGitHubServer creates an httptest server that mocks GitHub API endpoints
func NewMockGitHubServer(t *testing.T, config *MockGitHubServerConfig) *httptest.Server {
	if config == nil {
		config = NewMockGitHubServerConfig()
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /repos/{owner}/{repo}/pulls", func(w http.ResponseWriter, r *http.Request) {
		// head is "owner:branch"
		head := r.URL.Query().Get("head")
		branch := strings.TrimPrefix(head, r.PathValue("owner")+":")
		state := r.URL.Query().Get("state")

		prs := []*github.PullRequest{}
		if pr, ok := config.PRs[branch]; ok && (state == "" || state == "all" || pr.GetState() == state) {
			prs = append(prs, pr)
		}
		writeJSON(w, prs)
	})

	mux.HandleFunc("GET /repos/{owner}/{repo}/commits/{sha}/check-runs", func(w http.ResponseWriter, r *http.Request) {
		runs := config.CheckRuns[r.PathValue("sha")]
		writeJSON(w, &github.ListCheckRunsResults{
			Total:     github.Int(len(runs)),
			CheckRuns: runs,
		})
	})

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		config.Requests = append(config.Requests, r.URL.Path)
		if status, ok := config.ErrorStatus[r.URL.Path]; ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(status)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": http.StatusText(status)})
			return
		}
		mux.ServeHTTP(w, r)
	})

	server := httptest.NewServer(handler)
	t.Cleanup(func() { server.Close() })
	return server
}

// NewMockGitHubClient creates a GitHub client configured to use a mock server
func NewMockGitHubClient(t *testing.T, config *MockGitHubServerConfig) (*github.Client, string, string) {
	if config == nil {
		config = NewMockGitHubServerConfig()
	}
	server := NewMockGitHubServer(t, config)
	client := github.NewClient(nil)
	baseURL, _ := url.Parse(server.URL + "/")
	client.BaseURL = baseURL
	client.UploadURL = baseURL

	return client, config.Owner, config.Repo
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(v)
}

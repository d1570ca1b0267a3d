package tui

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gup.dev/gup/internal/github"
	"gup.dev/gup/internal/output"
)

// CheckFetcher reads the current check status of a commit
type CheckFetcher func(ctx context.Context) (*github.CheckStatus, error)

// checkStatusMsg carries the result of one fetch
type checkStatusMsg struct {
	status *github.CheckStatus
	err    error
}

// pollMsg asks the model to fetch again
type pollMsg struct{}

// ChecksModel is the bubbletea model that polls check runs until none is pending
type ChecksModel struct {
	ctx      context.Context
	fetch    CheckFetcher
	interval time.Duration
	spinner  spinner.Model
	status   *github.CheckStatus
	err      error
	polls    int
	done     bool
	quitting bool
	styles   checksStyles
}

type checksStyles struct {
	doneStyle  lipgloss.Style
	errorStyle lipgloss.Style
	dimStyle   lipgloss.Style
}

// NewChecksModel creates a model that calls fetch every interval
func NewChecksModel(ctx context.Context, fetch CheckFetcher, interval time.Duration) ChecksModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return ChecksModel{
		ctx:      ctx,
		fetch:    fetch,
		interval: interval,
		spinner:  s,
		styles: checksStyles{
			doneStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			errorStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
			dimStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		},
	}
}

func (m ChecksModel) fetchCmd() tea.Cmd {
	return func() tea.Msg {
		status, err := m.fetch(m.ctx)
		return checkStatusMsg{status: status, err: err}
	}
}

func (m ChecksModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetchCmd())
}

func (m ChecksModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			m.quitting = true
			return m, tea.Quit
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case checkStatusMsg:
		m.polls++
		m.status, m.err = msg.status, msg.err
		if m.err != nil || !m.status.IsPending() {
			m.done = true
			return m, tea.Quit
		}
		return m, tea.Tick(m.interval, func(time.Time) tea.Msg { return pollMsg{} })

	case pollMsg:
		return m, m.fetchCmd()
	}

	return m, nil
}

func (m ChecksModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	switch {
	case m.err != nil:
		b.WriteString(m.styles.errorStyle.Render("✗ " + m.err.Error()))
	case m.status == nil:
		b.WriteString(fmt.Sprintf("  %s Reading checks...", m.spinner.View()))
	case m.status.IsPending():
		b.WriteString(fmt.Sprintf("  %s Waiting for %d of %d checks ", m.spinner.View(), len(m.status.Pending), m.status.Total))
		b.WriteString(m.styles.dimStyle.Render(strings.Join(m.status.Pending, ", ")))
	default:
		b.WriteString(renderCheckSummary(m.status, m.styles))
	}
	b.WriteString("\n")
	return b.String()
}

// Status returns the last status read and any error
func (m ChecksModel) Status() (*github.CheckStatus, error) {
	return m.status, m.err
}

// Done reports whether polling finished
func (m ChecksModel) Done() bool {
	return m.done
}

func renderCheckSummary(status *github.CheckStatus, styles checksStyles) string {
	if status.IsPassing() {
		return styles.doneStyle.Render(fmt.Sprintf("✓ All %d checks passed", status.Total))
	}
	return styles.errorStyle.Render(fmt.Sprintf("✗ %d of %d checks failed: %s", len(status.Failed), status.Total, strings.Join(status.Failed, ", ")))
}

// RunChecksTUI polls with a spinner and returns the final status
func RunChecksTUI(ctx context.Context, fetch CheckFetcher, interval time.Duration) (*github.CheckStatus, error) {
	m := NewChecksModel(ctx, fetch, interval)
	p := tea.NewProgram(m, tea.WithInput(os.Stdin), tea.WithOutput(os.Stdout), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return nil, err
	}
	model, ok := final.(ChecksModel)
	if !ok || !model.Done() {
		return nil, context.Canceled
	}
	return model.Status()
}

// RunChecksSimple polls without a TUI, logging each pending round
func RunChecksSimple(ctx context.Context, fetch CheckFetcher, interval time.Duration, splog *output.Splog) (*github.CheckStatus, error) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		status, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		if !status.IsPending() {
			return status, nil
		}
		splog.Info("  ⋯ waiting for %d of %d checks: %s", len(status.Pending), status.Total, strings.Join(status.Pending, ", "))

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

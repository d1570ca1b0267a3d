package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/mattn/go-isatty"

	guperrors "gup.dev/gup/internal/errors"
)

const commentPrefix = "#"

// IsTTY returns true if we can use a TTY for interactive prompts
func IsTTY() bool {
	if !((isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())) &&
		(isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()))) {
		return false
	}
	f, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return false
	}
	_ = f.Close()
	return true
}

// Prompter opens the user's editor
type Prompter struct {
	disabled bool
}

// NewPrompter creates a Prompter. A disabled prompter refuses every prompt
// with ErrNotInteractive, as does any prompter without a terminal.
func NewPrompter(disabled bool) *Prompter {
	return &Prompter{disabled: disabled}
}

// Interactive reports whether prompts can be shown
func (p *Prompter) Interactive() bool {
	return !p.disabled && IsTTY()
}

// EditMessage opens the editor on text with hint shown as comment lines.
// Comment lines are dropped from the result, which is trimmed.
func (p *Prompter) EditMessage(text, hint string) (string, error) {
	if !p.Interactive() {
		return "", guperrors.ErrNotInteractive
	}

	var edited string
	prompt := &survey.Editor{
		Message:       "Commit message",
		Default:       WithComment(text, hint),
		AppendDefault: true,
		HideDefault:   true,
		FileName:      "COMMIT_EDITMSG*.txt",
	}
	if err := survey.AskOne(prompt, &edited); err != nil {
		return "", fmt.Errorf("failed to edit commit message: %w", err)
	}

	return StripComments(edited), nil
}

// WithComment appends hint to text as comment lines
func WithComment(text, hint string) string {
	var b strings.Builder
	b.WriteString(text)
	b.WriteString("\n\n")
	for _, line := range strings.Split(hint, "\n") {
		b.WriteString(commentPrefix + " " + line + "\n")
	}
	return b.String()
}

// StripComments drops lines starting with "#" and trims the rest
func StripComments(text string) string {
	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), commentPrefix) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}

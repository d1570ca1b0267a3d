package output

import (
	"github.com/charmbracelet/lipgloss"

	"gup.dev/gup/internal/message"
)

var (
	kindStyles = map[message.Kind]lipgloss.Style{
		message.KindFeature: lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		message.KindFix:     lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		message.KindChore:   lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true),
	}
	storyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	urlStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Underline(true)
	dimStyle   = lipgloss.NewStyle().Faint(true)
)

// ColorRed colors text red
func ColorRed(text string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Render(text)
}

// ColorGreen colors text green
func ColorGreen(text string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Render(text)
}

// ColorYellow colors text yellow
func ColorYellow(text string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Render(text)
}

// ColorURL styles a link
func ColorURL(url string) string {
	return urlStyle.Render(url)
}

// ColorDim renders secondary text
func ColorDim(text string) string {
	return dimStyle.Render(text)
}

// FormatMessage renders a commit message with its kind and story highlighted
func FormatMessage(msg *message.Message) string {
	kind := kindStyles[msg.Kind].Render(msg.Kind.String())
	return kind + ": " + storyStyle.Render(msg.Story.String()) + " " + msg.Body
}

package components

import (
	"strings"

	"github.com/theirongolddev/kcal/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// KeyHint is one key binding shown in the status bar.
type KeyHint struct {
	Key  string
	Desc string
}

// RenderStatusBar renders the key hints on the left and the last status
// message on the right, colored by outcome.
func RenderStatusBar(width int, hints []KeyHint, status string, ok bool) string {
	t := theme.Active

	keyStyle := lipgloss.NewStyle().Foreground(t.AccentBright)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = keyStyle.Render(h.Key) + " " + descStyle.Render(h.Desc)
	}
	left := " " + strings.Join(parts, "  ")

	right := ""
	if status != "" {
		color := t.Green
		if !ok {
			color = t.Red
		}
		right = lipgloss.NewStyle().Foreground(color).Bold(true).Render(status) + " "
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sixteen/internal/ui/theme"
)

// Button is a display-only action button. The owning screen decides what
// its key does; Button only shows whether the action is available.
type Button struct {
	Label   string
	Key     string // shown in brackets after the label
	Enabled bool
	Hint    string // shown beside a disabled button
}

// NewButton creates an enabled or disabled button bound to key.
func NewButton(label, key string, enabled bool) Button {
	return Button{Label: label, Key: key, Enabled: enabled}
}

// WithHint sets the text shown while the button is disabled.
func (b Button) WithHint(hint string) Button {
	b.Hint = hint
	return b
}

func (b Button) View() string {
	label := " ▸ " + b.Label
	if b.Key != "" {
		label += "  [" + b.Key + "]"
	}
	label += " "

	if b.Enabled {
		return theme.ButtonActive.Render(label)
	}
	out := theme.ButtonInactive.Render(label)
	if b.Hint != "" {
		out = lipgloss.JoinHorizontal(lipgloss.Center, theme.Dimmed.Render(b.Hint+"  "), out)
	}
	return out
}

package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sixteen/internal/ui/theme"
)

// ChoiceSkip is the cursor position of the no-preference option.
const ChoiceSkip = 2

// Choice is a two-option selector with an extra "no preference" slot.
type Choice struct {
	Prompt  string
	Options [2]string
	Values  [2]string
	Skip    string // value recorded for no preference

	Cursor  int    // 0, 1 or ChoiceSkip
	Chosen  string // recorded value, "" if unanswered
	Focused bool
}

// NewChoice creates a choice with the cursor on the recorded answer, or on
// the first option.
func NewChoice(prompt string, options, values [2]string, skip, chosen string) Choice {
	c := Choice{
		Prompt:  prompt,
		Options: options,
		Values:  values,
		Skip:    skip,
		Chosen:  chosen,
	}
	c.Cursor = c.indexOf(chosen)
	if c.Cursor < 0 {
		c.Cursor = 0
	}
	return c
}

func (c Choice) indexOf(value string) int {
	switch value {
	case "":
		return -1
	case c.Values[0]:
		return 0
	case c.Values[1]:
		return 1
	case c.Skip:
		return ChoiceSkip
	}
	return -1
}

// Value returns the value under the cursor.
func (c Choice) Value() string {
	if c.Cursor == ChoiceSkip {
		return c.Skip
	}
	return c.Values[c.Cursor]
}

// Update moves the cursor. picked is non-empty when the key selected a
// value; the caller records it.
func (c Choice) Update(msg tea.Msg) (Choice, string) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || !c.Focused {
		return c, ""
	}

	switch kmsg.String() {
	case "left", "h":
		if c.Cursor > 0 {
			c.Cursor--
		}
		return c, c.Value()
	case "right", "l":
		if c.Cursor < ChoiceSkip {
			c.Cursor++
		}
		return c, c.Value()
	case "1", "a":
		c.Cursor = 0
		return c, c.Value()
	case "2", "b":
		c.Cursor = 1
		return c, c.Value()
	case "0", "-":
		c.Cursor = ChoiceSkip
		return c, c.Value()
	}
	return c, ""
}

// View renders the prompt and options.
func (c Choice) View(width int) string {
	promptStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Width(width)
	if !c.Focused {
		promptStyle = promptStyle.Foreground(theme.TextDim).Bold(false)
	}
	s := promptStyle.Render(c.Prompt) + "\n"

	labels := [3]string{"1", "2", "0"}
	texts := [3]string{c.Options[0], c.Options[1], "no preference"}
	chosen := c.indexOf(c.Chosen)

	for i := 0; i < 3; i++ {
		prefix := "  "
		if c.Focused && i == c.Cursor {
			prefix = "▸ "
		}
		mark := "○"
		if i == chosen {
			mark = "●"
		}
		line := fmt.Sprintf("%s%s %s) %s", prefix, mark, labels[i], texts[i])

		style := lipgloss.NewStyle().Foreground(theme.Text)
		switch {
		case i == chosen:
			style = theme.Chosen
		case c.Focused && i == c.Cursor:
			style = theme.Selected
		case i == ChoiceSkip || !c.Focused:
			style = theme.Dimmed
		}
		s += style.Render(line) + "\n"
	}
	return s
}

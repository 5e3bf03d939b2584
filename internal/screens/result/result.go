// Package result is the screen shown once a quiz session is classified.
package result

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/atotto/clipboard"

	"github.com/abhisek/sixteen/internal/content"
	"github.com/abhisek/sixteen/internal/personality"
	qz "github.com/abhisek/sixteen/internal/quiz"
	"github.com/abhisek/sixteen/internal/screen"
	"github.com/abhisek/sixteen/internal/ui/components"
	"github.com/abhisek/sixteen/internal/ui/layout"
	"github.com/abhisek/sixteen/internal/ui/theme"
)

// CopyFunc places text on the system clipboard.
type CopyFunc func(text string) error

// ResultScreen renders the classified type and its copy.
type ResultScreen struct {
	machine   *qz.Machine
	content   *content.Content
	nav       screen.Navigator
	assetRoot string
	copy      CopyFunc
	keys      keyMap

	result qz.Result
	record content.ResultRecord
	err    error

	vp     viewport.Model
	width  int
	status string
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)
var _ screen.StatusProvider = (*ResultScreen)(nil)

type keyMap struct {
	Copy    key.Binding
	Restart key.Binding
}

// New creates a ResultScreen for the machine's current Result view.
// Asset paths are resolved against assetRoot. A nil copyFn uses the
// system clipboard.
func New(machine *qz.Machine, c *content.Content, nav screen.Navigator, assetRoot string, copyFn CopyFunc) *ResultScreen {
	if copyFn == nil {
		copyFn = clipboard.WriteAll
	}
	s := &ResultScreen{
		machine:   machine,
		content:   c,
		nav:       nav,
		assetRoot: assetRoot,
		copy:      copyFn,
		keys: keyMap{
			Copy:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "Copy link")),
			Restart: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "Restart")),
		},
		vp: viewport.New(),
	}

	res, ok := machine.View().(qz.Result)
	if !ok {
		s.err = fmt.Errorf("%w: no result to show from %s", qz.ErrInvalidTransition, qz.ViewName(machine.View()))
		return s
	}
	s.result = res
	s.record, s.err = c.Lookup(res.Type)
	return s
}

func (s *ResultScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultScreen) Title() string {
	return "Your Type"
}

func (s *ResultScreen) Status() string {
	return string(s.result.Type)
}

func (s *ResultScreen) KeyHints() []layout.KeyHint {
	var hints []layout.KeyHint
	if s.err == nil {
		h := s.keys.Copy.Help()
		hints = append(hints,
			layout.KeyHint{Key: "↑↓", Description: "Scroll"},
			layout.KeyHint{Key: h.Key, Description: h.Desc},
		)
	}
	h := s.keys.Restart.Help()
	return append(hints,
		layout.KeyHint{Key: h.Key, Description: h.Desc},
		layout.KeyHint{Key: "Esc", Description: "Home"},
	)
}

// Err returns the error that kept the result from rendering, if any.
func (s *ResultScreen) Err() error {
	return s.err
}

func (s *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch {
	case key.Matches(kmsg, s.keys.Restart):
		_ = s.machine.Restart()
		return s, s.nav.ForView(s.machine.View())
	case key.Matches(kmsg, s.keys.Copy):
		s.copyLink()
		return s, nil
	}

	var cmd tea.Cmd
	s.vp, cmd = s.vp.Update(msg)
	return s, cmd
}

// copyLink records the CTA click and puts the link on the clipboard. The
// link is shown either way so it can be copied by hand.
func (s *ResultScreen) copyLink() {
	if s.err != nil {
		return
	}
	link, err := s.machine.ClickCTA(s.content)
	if err != nil {
		s.status = err.Error()
		return
	}
	if err := s.copy(link); err != nil {
		s.status = "Open " + link
		return
	}
	s.status = "Copied " + link
}

func (s *ResultScreen) View(width, height int) string {
	cw := min(width-4, 76)
	if cw < 24 {
		cw = 24
	}

	if s.err != nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, renderError(s.err, cw))
	}

	footer := s.renderCTA(cw)
	vpHeight := max(height-lipgloss.Height(footer)-1, 3)

	if s.width != cw {
		s.width = cw
		s.vp.SetContent(s.renderBody(cw))
	}
	s.vp.SetWidth(cw)
	s.vp.SetHeight(vpHeight)

	body := lipgloss.JoinVertical(lipgloss.Left, s.vp.View(), footer)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, body)
}

func (s *ResultScreen) renderBody(cw int) string {
	r := s.record
	var sections []string

	sections = append(sections,
		lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("Your type is"),
		lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Foreground(theme.Primary).Bold(true).
			Render(r.Title),
		lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Foreground(theme.ArcadeYellow).Bold(true).
			Render(spaced(string(r.Type))),
		"",
		components.AssetCard(r.Asset, components.AssetExists(s.assetRoot, r.Asset), cw),
		"",
		lipgloss.NewStyle().Width(cw).Foreground(theme.Text).Render(r.Description),
		"",
		heading("Your balance", cw),
		components.AxisChart(s.axisRows(), cw),
	)

	sections = append(sections, renderList("Strengths", r.Strengths, theme.Success, cw)...)
	sections = append(sections, renderList("Watch out for", r.Weaknesses, theme.Error, cw)...)
	sections = append(sections, renderList("Careers that fit", r.Professions, theme.Secondary, cw)...)

	return strings.Join(sections, "\n")
}

func (s *ResultScreen) axisRows() []components.AxisRow {
	rows := make([]components.AxisRow, 0, len(personality.Axes))
	for _, a := range personality.Axes {
		first, second := a.First(), a.Second()
		rows = append(rows, components.AxisRow{
			FirstLabel:  first.Name(),
			SecondLabel: second.Name(),
			First:       s.result.Tally.Count(first),
			Second:      s.result.Tally.Count(second),
			Max:         s.content.AxisSize(a),
			Winner:      s.result.Tally.Winner(a).Name(),
		})
	}
	return rows
}

func (s *ResultScreen) renderCTA(cw int) string {
	btn := components.ArcadeButton("COPY LINE LINK  [c]", components.ToneLine, cw)
	if s.status == "" {
		return btn
	}
	st := lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Foreground(theme.LineGreen).Render(s.status)
	return lipgloss.JoinVertical(lipgloss.Left, btn, st)
}

func renderError(err error, cw int) string {
	msg := err.Error()
	if errors.Is(err, content.ErrMissingResult) {
		msg = "The result table has no entry for this type.\n" + msg
	}
	return lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(theme.Error).
		Foreground(theme.Error).
		Width(cw).
		Padding(1, 2).
		Render("Result unavailable\n\n" + msg + "\n\nPress r to start over.")
}

func heading(title string, cw int) string {
	return lipgloss.NewStyle().Foreground(theme.TextDim).Bold(true).Render(title) + "\n" +
		lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", cw))
}

func renderList(title string, items []string, bullet color.Color, cw int) []string {
	if len(items) == 0 {
		return nil
	}
	out := []string{"", heading(title, cw)}
	dot := lipgloss.NewStyle().Foreground(bullet).Render("•")
	for _, it := range items {
		out = append(out, dot+" "+lipgloss.NewStyle().Width(cw-2).Foreground(theme.Text).Render(it))
	}
	return out
}

func spaced(s string) string {
	return strings.Join(strings.Split(s, ""), " ")
}

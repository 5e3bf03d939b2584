// Package welcome is the splash screen: a reel that spins through the
// sixteen type codes, then the banner. Any key moves on to home.
package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sixteen/internal/personality"
	"github.com/abhisek/sixteen/internal/router"
	"github.com/abhisek/sixteen/internal/screen"
	"github.com/abhisek/sixteen/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	spinUntil    = 1500 * time.Millisecond // reel changes every tick
	slowUntil    = 2500 * time.Millisecond // reel changes every third tick
)

const compassArt = `╭───────────╮
│  E  ┃  I  │
│ ━━━━╋━━━━ │
│  S  ┃  N  │
│ ━━━━╋━━━━ │
│  T  ┃  F  │
│  J  ┃  P  │
╰───────────╯`

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// WelcomeScreen animates until the reel settles, then waits for a key and
// replaces itself with the screen built by homeFactory.
type WelcomeScreen struct {
	homeFactory  func() screen.Screen
	types        []personality.Type
	elapsed      time.Duration
	reel         int // index into types
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will transition to the screen produced by homeFactory.
func New(homeFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		homeFactory: homeFactory,
		types:       personality.AllTypes(),
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

// settled reports whether the animation has finished.
func (w *WelcomeScreen) settled() bool {
	return w.elapsed >= slowUntil
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.settled() {
			return w, nil
		}
		w.elapsed += tickInterval
		step := int(w.elapsed / tickInterval)
		if w.elapsed <= spinUntil || step%3 == 0 {
			w.reel = (w.reel + 1) % len(w.types)
		}
		if w.settled() {
			return w, nil
		}
		return w, tick()

	case tea.KeyPressMsg:
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	homeScreen := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: homeScreen}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	sections := []string{
		lipgloss.NewStyle().Foreground(theme.Primary).Render(compassArt),
		"",
		w.renderReel(),
	}

	if w.settled() {
		sections = append(sections,
			"",
			RenderBanner(width),
			"",
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
				Render("Twelve questions. Sixteen types. Which one are you?"),
			"",
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
				Render("press any key to continue"),
		)
	}

	body := lipgloss.NewStyle().Align(lipgloss.Center).Render(strings.Join(sections, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

// renderReel shows the current type code, or a question mark once the
// reel has stopped.
func (w *WelcomeScreen) renderReel() string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.ArcadeYellow).
		Padding(0, 2)

	if w.settled() {
		return box.Foreground(theme.ArcadeYellow).Bold(true).Render("? ? ? ?")
	}
	return box.Render(theme.TypeCode(w.types[w.reel]))
}

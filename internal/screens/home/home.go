package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sixteen/internal/content"
	"github.com/abhisek/sixteen/internal/personality"
	"github.com/abhisek/sixteen/internal/quiz"
	"github.com/abhisek/sixteen/internal/router"
	"github.com/abhisek/sixteen/internal/screen"
	"github.com/abhisek/sixteen/internal/screens/about"
	"github.com/abhisek/sixteen/internal/ui/components"
	"github.com/abhisek/sixteen/internal/ui/layout"
	"github.com/abhisek/sixteen/internal/ui/theme"
)

// Stats summarizes the local event log for the home dashboard.
type Stats struct {
	Completed int
	TopType   personality.Type // "" when nothing has completed yet
}

// StatsFromDistribution derives Stats from a type distribution. Ties go to
// the type that sorts first in the canonical order.
func StatsFromDistribution(dist map[string]int) Stats {
	var s Stats
	best := 0
	for _, t := range personality.AllTypes() {
		n := dist[string(t)]
		s.Completed += n
		if n > best {
			best = n
			s.TopType = t
		}
	}
	return s
}

// HomeScreen is the main menu.
type HomeScreen struct {
	machine  *quiz.Machine
	nav      screen.Navigator
	stats    Stats
	menu     components.Menu
	startErr string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(machine *quiz.Machine, nav screen.Navigator, c *content.Content, stats Stats) *HomeScreen {
	h := &HomeScreen{
		machine: machine,
		nav:     nav,
		stats:   stats,
	}

	items := []components.MenuItem{
		{Label: "START", Shortcut: "s", Action: h.start},
		{Label: "ABOUT TYPES", Shortcut: "a", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: about.New(c)}
			}
		}},
		{Label: "EXIT", Shortcut: "q", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) start() tea.Cmd {
	if err := h.machine.Start(); err != nil {
		h.startErr = err.Error()
		return nil
	}
	h.startErr = ""
	return h.nav.ForView(h.machine.View())
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	// All sections share a uniform content width so they line up.
	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	if !compact {
		sections = append(sections, renderCompassBox(RenderCompass(h.stats.TopType), cw))
	}
	sections = append(sections, renderStatsBar(h.stats, cw, compact))
	if height < 20 {
		sections = append(sections, renderArcadeMenuCompact(h.menu.Labels(), h.menu.Selected, cw))
	} else {
		sections = append(sections, renderArcadeMenu(h.menu.Labels(), h.menu.Selected, cw))
	}
	if h.startErr != "" {
		sections = append(sections, lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).
			Render(h.startErr))
	}

	body := strings.Join(sections, "\n\n")

	// Wrap in cabinet frame, centered in the full area
	return components.CabinetFrame(body, width, height, theme.Primary)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
	}
}

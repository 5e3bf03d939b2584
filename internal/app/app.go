package app

import (
	"errors"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/sixteen/internal/analytics"
	"github.com/abhisek/sixteen/internal/content"
	"github.com/abhisek/sixteen/internal/quiz"
	"github.com/abhisek/sixteen/internal/router"
	"github.com/abhisek/sixteen/internal/screen"
	"github.com/abhisek/sixteen/internal/screens/home"
	"github.com/abhisek/sixteen/internal/screens/result"
	"github.com/abhisek/sixteen/internal/screens/welcome"
	"github.com/abhisek/sixteen/internal/ui/layout"
)

// Options configures the TUI.
type Options struct {
	Content *content.Content
	Quiz    quiz.Config
	Sink    analytics.Sink

	// Stats is called each time the home screen is built. Nil shows an
	// empty dashboard.
	Stats func() home.Stats

	// AssetRoot is the directory image asset paths are resolved against.
	AssetRoot string

	// Copy overrides the clipboard writer used by the result screen.
	Copy result.CopyFunc

	Logger *zap.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	machine *quiz.Machine
	nav     *Navigator
	logger  *zap.Logger
	width   int
	height  int
}

// newAppModel creates a new AppModel starting on the welcome screen.
func newAppModel(opts Options) (AppModel, error) {
	if opts.Content == nil {
		return AppModel{}, errors.New("app: no content")
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	machine, err := quiz.NewMachine(opts.Content.Questions, opts.Quiz, opts.Sink)
	if err != nil {
		return AppModel{}, fmt.Errorf("create quiz machine: %w", err)
	}

	nav := &Navigator{
		machine:   machine,
		content:   opts.Content,
		stats:     opts.Stats,
		assetRoot: opts.AssetRoot,
		copy:      opts.Copy,
		logger:    logger,
	}

	return AppModel{
		router:  router.New(welcome.New(nav.Home)),
		machine: machine,
		nav:     nav,
		logger:  logger,
	}, nil
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			return m, m.back()
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// back leaves a running session for home, or pops an overlay screen.
func (m AppModel) back() tea.Cmd {
	if _, home := m.machine.View().(quiz.Home); !home {
		if err := m.machine.Restart(); err != nil {
			m.logger.Warn("restart failed", zap.Error(err))
			return nil
		}
		return m.nav.ForView(m.machine.View())
	}
	if m.router.Depth() > 1 {
		return func() tea.Msg { return router.PopScreenMsg{} }
	}
	return nil
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if frame := m.render(); frame != "" {
		v.SetContent(frame)
	}
	return v
}

// render draws the full frame, or "" before the first window size.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title, status := "", ""
	if active != nil {
		title = active.Title()
	}
	if sp, ok := active.(screen.StatusProvider); ok {
		status = sp.Status()
	}

	header := layout.RenderHeader(title, status, m.width)

	var footerHints []layout.KeyHint
	if kp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = kp.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
		}
	}
	footerHints = append(footerHints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	model, err := newAppModel(opts)
	if err != nil {
		return err
	}
	p := tea.NewProgram(model)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

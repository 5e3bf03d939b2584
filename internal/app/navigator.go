package app

import (
	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/sixteen/internal/content"
	"github.com/abhisek/sixteen/internal/quiz"
	"github.com/abhisek/sixteen/internal/router"
	"github.com/abhisek/sixteen/internal/screen"
	"github.com/abhisek/sixteen/internal/screens/home"
	quizscreen "github.com/abhisek/sixteen/internal/screens/quiz"
	"github.com/abhisek/sixteen/internal/screens/result"
)

// Navigator maps machine views to screens. It is the only place screens
// for Home, Quiz and Result are constructed.
type Navigator struct {
	machine   *quiz.Machine
	content   *content.Content
	stats     func() home.Stats
	assetRoot string
	copy      result.CopyFunc
	logger    *zap.Logger
}

var _ screen.Navigator = (*Navigator)(nil)

// Home builds a fresh home screen.
func (n *Navigator) Home() screen.Screen {
	var stats home.Stats
	if n.stats != nil {
		stats = n.stats()
	}
	return home.New(n.machine, n, n.content, stats)
}

// ForView returns a command that shows the screen for v. Home unwinds the
// stack to a rebuilt home screen; Quiz and Result sit directly on top of it.
func (n *Navigator) ForView(v quiz.View) tea.Cmd {
	n.logger.Debug("navigate", zap.String("view", quiz.ViewName(v)))

	var msg router.ResetScreenMsg
	switch v.(type) {
	case quiz.Home:
		msg = router.ResetScreenMsg{Root: n.Home()}
	case quiz.Quiz:
		msg = router.ResetScreenMsg{Screen: quizscreen.New(n.machine, n)}
	case quiz.Result:
		msg = router.ResetScreenMsg{Screen: result.New(n.machine, n.content, n, n.assetRoot, n.copy)}
	default:
		n.logger.Error("no screen for view", zap.String("view", quiz.ViewName(v)))
		return nil
	}
	return func() tea.Msg { return msg }
}

// Package about lists the sixteen types with their titles and
// descriptions.
package about

import (
	"charm.land/bubbles/v2/table"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sixteen/internal/content"
	"github.com/abhisek/sixteen/internal/personality"
	"github.com/abhisek/sixteen/internal/screen"
	"github.com/abhisek/sixteen/internal/ui/layout"
	"github.com/abhisek/sixteen/internal/ui/theme"
)

// AboutScreen is a browsable table of every type.
type AboutScreen struct {
	content *content.Content
	types   []personality.Type
	table   table.Model
}

var _ screen.Screen = (*AboutScreen)(nil)
var _ screen.KeyHintProvider = (*AboutScreen)(nil)

// New creates an AboutScreen over c's result table.
func New(c *content.Content) *AboutScreen {
	types := personality.AllTypes()
	rows := make([]table.Row, 0, len(types))
	for _, t := range types {
		title := ""
		if r, err := c.Lookup(t); err == nil {
			title = r.Title
		}
		rows = append(rows, table.Row{string(t), title})
	}

	tbl := table.New(
		table.WithColumns([]table.Column{
			{Title: "Type", Width: 6},
			{Title: "Title", Width: 40},
		}),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(8),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(theme.BgDark).
		Background(theme.ArcadeYellow).
		Bold(true)
	tbl.SetStyles(styles)

	return &AboutScreen{content: c, types: types, table: tbl}
}

func (a *AboutScreen) Init() tea.Cmd {
	return nil
}

func (a *AboutScreen) Title() string {
	return "About Types"
}

func (a *AboutScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Browse"},
		{Key: "Esc", Description: "Back"},
	}
}

func (a *AboutScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	a.table, cmd = a.table.Update(msg)
	return a, cmd
}

// Selected returns the type under the cursor.
func (a *AboutScreen) Selected() personality.Type {
	i := a.table.Cursor()
	if i < 0 || i >= len(a.types) {
		return ""
	}
	return a.types[i]
}

func (a *AboutScreen) View(width, height int) string {
	cw := min(width-4, 72)
	if cw < 20 {
		cw = 20
	}

	tableHeight := max(height/2-2, 4)
	a.table.SetHeight(tableHeight)
	a.table.SetWidth(cw)

	detail := a.renderDetail(cw, height-tableHeight-4)

	body := lipgloss.JoinVertical(lipgloss.Left, a.table.View(), "", detail)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, body)
}

func (a *AboutScreen) renderDetail(cw, maxHeight int) string {
	t := a.Selected()
	r, err := a.content.Lookup(t)
	if err != nil {
		return theme.ErrorText.Render(err.Error())
	}

	head := theme.TypeCode(r.Type) + "  " +
		lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(r.Title)
	desc := lipgloss.NewStyle().Foreground(theme.Text).Width(cw).
		MaxHeight(max(maxHeight-2, 1)).
		Render(r.Description)
	return head + "\n\n" + desc
}

package components

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
)

// MenuItem is one menu entry. A non-empty Shortcut key activates the item
// directly without moving the selection first.
type MenuItem struct {
	Label    string
	Shortcut string
	Action   func() tea.Cmd
	Disabled bool
}

type menuKeys struct {
	Prev   key.Binding
	Next   key.Binding
	Choose key.Binding
}

// Menu tracks the selected entry of a vertical menu. Rendering is left to
// the owning screen. Selection wraps and skips disabled items.
type Menu struct {
	Items    []MenuItem
	Selected int
	keys     menuKeys
}

// NewMenu returns a menu with the first enabled item selected.
func NewMenu(items []MenuItem) Menu {
	m := Menu{
		Items:    items,
		Selected: -1,
		keys: menuKeys{
			Prev:   key.NewBinding(key.WithKeys("up", "k")),
			Next:   key.NewBinding(key.WithKeys("down", "j", "tab")),
			Choose: key.NewBinding(key.WithKeys("enter", "space")),
		},
	}
	m.Selected = m.step(1)
	if m.Selected < 0 {
		m.Selected = 0
	}
	return m
}

func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.Items) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(kmsg, m.keys.Prev):
		if i := m.step(-1); i >= 0 {
			m.Selected = i
		}
		return m, nil
	case key.Matches(kmsg, m.keys.Next):
		if i := m.step(1); i >= 0 {
			m.Selected = i
		}
		return m, nil
	case key.Matches(kmsg, m.keys.Choose):
		return m, m.activate(m.Selected)
	}

	s := kmsg.String()
	for i, item := range m.Items {
		if item.Shortcut != "" && item.Shortcut == s && !item.Disabled {
			m.Selected = i
			return m, m.activate(i)
		}
	}
	return m, nil
}

// Labels returns the item labels in order.
func (m Menu) Labels() []string {
	labels := make([]string, len(m.Items))
	for i, item := range m.Items {
		labels[i] = item.Label
	}
	return labels
}

// step returns the next enabled index in direction dir, wrapping, or -1
// when no item is enabled.
func (m Menu) step(dir int) int {
	n := len(m.Items)
	for k := 1; k <= n; k++ {
		i := ((m.Selected+dir*k)%n + n) % n
		if !m.Items[i].Disabled {
			return i
		}
	}
	return -1
}

func (m Menu) activate(i int) tea.Cmd {
	if i < 0 || i >= len(m.Items) {
		return nil
	}
	item := m.Items[i]
	if item.Disabled || item.Action == nil {
		return nil
	}
	return item.Action()
}

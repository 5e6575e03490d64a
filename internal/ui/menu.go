package ui

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type menuItem struct {
	Label string
	ID    string
}

// MenuModel is a vertical list of choices moved with the arrow keys.
type MenuModel struct {
	Title  string
	Items  []menuItem
	Cursor int
}

// menuChosenMsg reports the ID of the item picked from a menu.
type menuChosenMsg struct{ ID string }

func NewMenuModel(title string, items []menuItem) MenuModel {
	return MenuModel{Title: title, Items: items}
}

func (m MenuModel) Update(msg tea.Msg) (MenuModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || len(m.Items) == 0 {
		return m, nil
	}
	switch key.String() {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Items)-1 {
			m.Cursor++
		}
	case "enter":
		id := m.Items[m.Cursor].ID
		return m, func() tea.Msg { return menuChosenMsg{ID: id} }
	default:
		// digits pick an item directly
		s := key.String()
		if len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
			if i := int(s[0] - '1'); i < len(m.Items) {
				m.Cursor = i
				id := m.Items[i].ID
				return m, func() tea.Msg { return menuChosenMsg{ID: id} }
			}
		}
	}
	return m, nil
}

func (m MenuModel) View() string {
	var b strings.Builder
	b.WriteString(m.Title + "\n\n")
	for i, it := range m.Items {
		line := strconv.Itoa(i+1) + ". " + it.Label
		if i == m.Cursor {
			b.WriteString(focusedStyle.Render("> " + line))
		} else {
			b.WriteString(noStyle.Render("  " + line))
		}
		b.WriteRune('\n')
	}
	return b.String()
}

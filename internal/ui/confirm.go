package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// ConfirmModel is a yes/no question that defaults to no.
type ConfirmModel struct {
	Question string
	Hint     string
	Tag      string
}

type confirmedMsg struct {
	Tag string
	Yes bool
}

func NewConfirmModel(tag, question, hint string) ConfirmModel {
	return ConfirmModel{Tag: tag, Question: question, Hint: hint}
}

func (m ConfirmModel) Update(msg tea.Msg) (ConfirmModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	var yes bool
	switch strings.ToLower(key.String()) {
	case "y":
		yes = true
	case "n", "enter", "esc":
	default:
		return m, nil
	}
	tag := m.Tag
	return m, func() tea.Msg { return confirmedMsg{Tag: tag, Yes: yes} }
}

func (m ConfirmModel) View() string {
	return warnMessageStyle(m.Question) + " " + blurredStyle.Render(m.Hint)
}

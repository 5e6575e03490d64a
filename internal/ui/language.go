package ui

import (
	"strings"

	"danc/internal/app"
	"danc/internal/i18n"

	tea "github.com/charmbracelet/bubbletea"
)

// languageChangedMsg asks the root model to rebuild its text.
type languageChangedMsg struct{ Code string }

// LanguageModel picks a display language and stores the choice.
type LanguageModel struct {
	App  *app.App
	Menu MenuModel
	Err  error
}

func NewLanguageModel(a *app.App) LanguageModel {
	current := a.Resolver.Current()
	var items []menuItem
	cursor := 0
	for i, code := range a.Resolver.Available() {
		if code == current {
			cursor = i
		}
		items = append(items, menuItem{Label: i18n.DisplayName(code) + " (" + code + ")", ID: code})
	}
	items = append(items, menuItem{Label: a.T("menu.back"), ID: actionBack})
	menu := NewMenuModel(a.T("language.select"), items)
	menu.Cursor = cursor
	return LanguageModel{App: a, Menu: menu}
}

func (m LanguageModel) Update(msg tea.Msg) (LanguageModel, tea.Cmd) {
	switch msg := msg.(type) {
	case menuChosenMsg:
		if msg.ID == actionBack {
			return m, back
		}
		if err := m.App.SetLanguage(msg.ID); err != nil {
			m.Err = err
			return m, nil
		}
		code := m.App.Resolver.Current()
		return m, func() tea.Msg { return languageChangedMsg{Code: code} }
	case tea.KeyMsg:
		if msg.String() == "esc" {
			return m, back
		}
	}
	var cmd tea.Cmd
	m.Menu, cmd = m.Menu.Update(msg)
	return m, cmd
}

func (m LanguageModel) View() string {
	t := m.App.T
	var b strings.Builder
	b.WriteString(titleStyle.Render(t("menu.languageSettings")) + "\n\n")
	b.WriteString(t("language.current", i18n.DisplayName(m.App.Resolver.Current())) + "\n\n")
	b.WriteString(m.Menu.View())
	if m.Err != nil {
		b.WriteString("\n" + errorMessageStyle(m.Err.Error()) + "\n")
	}
	b.WriteString("\n" + blurredStyle.Render(t("common.navigate")))
	return b.String()
}

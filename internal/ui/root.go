// Package ui is the interactive menu shown when danc runs without a
// subcommand.
package ui

import (
	"danc/internal/app"

	tea "github.com/charmbracelet/bubbletea"
)

type state int

const (
	stateMenu state = iota
	stateAdapters
	stateRename
	stateBackups
	stateLanguage
)

const (
	menuAdapters = "adapters"
	menuRename   = "rename"
	menuBackups  = "backups"
	menuLanguage = "language"
	menuExit     = "exit"
)

type RootModel struct {
	App      *app.App
	State    state
	Menu     MenuModel
	Adapters AdaptersModel
	Rename   RenameModel
	Backups  BackupsModel
	Language LanguageModel
	Quitting bool
	width    int
	height   int
}

func NewRootModel(a *app.App) RootModel {
	return RootModel{App: a, State: stateMenu, Menu: mainMenu(a), height: 24}
}

func mainMenu(a *app.App) MenuModel {
	t := a.T
	return NewMenuModel(t("menu.selectOperation"), []menuItem{
		{Label: t("menu.viewAdapterList"), ID: menuAdapters},
		{Label: t("menu.modifyAdapterName"), ID: menuRename},
		{Label: t("menu.backupManagement"), ID: menuBackups},
		{Label: t("menu.languageSettings"), ID: menuLanguage},
		{Label: t("menu.exit"), ID: menuExit},
	})
}

func (m RootModel) Init() tea.Cmd { return nil }

func (m RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.Quitting = true
			return m, tea.Quit
		}

	case backMsg:
		m.State = stateMenu
		return m, nil

	case languageChangedMsg:
		m.Menu = mainMenu(m.App)
		m.State = stateMenu
		return m, nil
	}

	var cmd tea.Cmd
	switch m.State {
	case stateMenu:
		if chosen, ok := msg.(menuChosenMsg); ok {
			return m.open(chosen.ID)
		}
		if key, ok := msg.(tea.KeyMsg); ok && (key.String() == "q" || key.String() == "esc") {
			m.Quitting = true
			return m, tea.Quit
		}
		m.Menu, cmd = m.Menu.Update(msg)
	case stateAdapters:
		m.Adapters, cmd = m.Adapters.Update(msg)
	case stateRename:
		m.Rename, cmd = m.Rename.Update(msg)
	case stateBackups:
		m.Backups, cmd = m.Backups.Update(msg)
	case stateLanguage:
		m.Language, cmd = m.Language.Update(msg)
	}
	return m, cmd
}

func (m RootModel) open(id string) (tea.Model, tea.Cmd) {
	switch id {
	case menuAdapters:
		m.State = stateAdapters
		m.Adapters = NewAdaptersModel(m.App, m.height)
	case menuRename:
		m.State = stateRename
		m.Rename = NewRenameModel(m.App, m.height)
	case menuBackups:
		m.State = stateBackups
		m.Backups = NewBackupsModel(m.App, m.height)
	case menuLanguage:
		m.State = stateLanguage
		m.Language = NewLanguageModel(m.App)
	case menuExit:
		m.Quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m RootModel) View() string {
	if m.Quitting {
		return m.App.T("success.goodbye") + "\n"
	}
	var body string
	switch m.State {
	case stateAdapters:
		body = m.Adapters.View()
	case stateRename:
		body = m.Rename.View()
	case stateBackups:
		body = m.Backups.View()
	case stateLanguage:
		body = m.Language.View()
	default:
		body = titleStyle.Render("Display Adapter Name Changer") + "\n\n" +
			m.Menu.View() + "\n" + blurredStyle.Render(m.App.T("common.navigate"))
	}
	return docStyle.Render(body)
}

// Run blocks until the operator leaves the menu.
func Run(a *app.App, opts ...tea.ProgramOption) error {
	_, err := tea.NewProgram(NewRootModel(a), opts...).Run()
	return err
}

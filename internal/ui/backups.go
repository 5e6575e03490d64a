package ui

import (
	"strings"

	"danc/internal/app"
	"danc/internal/models"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
)

type backupStep int

const (
	backupMenu backupStep = iota
	backupList
	backupConfirm
	backupDone
)

const (
	actionView    = "view"
	actionRestore = "restore"
	actionDelete  = "delete"
	actionBack    = "back"
)

type backupActionMsg struct {
	Action string
	ID     string
	OK     bool
}

// BackupsModel lists, restores and deletes backups.
type BackupsModel struct {
	App     *app.App
	Step    backupStep
	Menu    MenuModel
	Action  string
	Table   table.Model
	Backups []models.BackupSummary
	Target  string
	Confirm ConfirmModel
	Lines   []string
	height  int
}

func NewBackupsModel(a *app.App, height int) BackupsModel {
	t := a.T
	return BackupsModel{
		App:    a,
		height: height,
		Menu: NewMenuModel(t("backup.management"), []menuItem{
			{Label: t("backup.viewAll"), ID: actionView},
			{Label: t("backup.restore"), ID: actionRestore},
			{Label: t("backup.delete"), ID: actionDelete},
			{Label: t("menu.back"), ID: actionBack},
		}),
	}
}

func (m *BackupsModel) refresh() {
	m.Backups = m.App.Ledger.List()
	rows := make([]table.Row, len(m.Backups))
	for i, b := range m.Backups {
		rows[i] = table.Row{b.BackupID, b.DeviceID, b.OriginalName, b.CreatedTime.Local().Format("2006-01-02 15:04:05")}
	}
	t := m.App.T
	m.Table = newTable([]table.Column{
		{Title: t("table.backupId"), Width: 49},
		{Title: t("table.deviceId"), Width: 24},
		{Title: t("table.originalName"), Width: 36},
		{Title: t("table.createdTime"), Width: 19},
	}, rows, m.height-10)
}

func (m BackupsModel) actionCmd(action, id string) tea.Cmd {
	a := m.App
	return func() tea.Msg {
		var ok bool
		if action == actionRestore {
			ok = a.Restore(id)
		} else {
			ok = a.Delete(id)
		}
		return backupActionMsg{Action: action, ID: id, OK: ok}
	}
}

func (m BackupsModel) Update(msg tea.Msg) (BackupsModel, tea.Cmd) {
	t := m.App.T
	switch msg := msg.(type) {
	case menuChosenMsg:
		if msg.ID == actionBack {
			return m, back
		}
		m.Action = msg.ID
		m.Lines = nil
		m.refresh()
		m.Step = backupList
		return m, nil

	case confirmedMsg:
		if !msg.Yes {
			m.Lines = append(m.Lines, warnMessageStyle(t("adapter.operationCancelled")))
			m.Step = backupDone
			return m, nil
		}
		return m, m.actionCmd(m.Action, m.Target)

	case backupActionMsg:
		m.Step = backupDone
		switch {
		case msg.Action == actionRestore && msg.OK:
			m.Lines = append(m.Lines, statusMessageStyle(t("success.backupRestored")), blurredStyle.Render(t("adapter.noteRestart")))
		case msg.Action == actionRestore:
			m.Lines = append(m.Lines, errorMessageStyle(t("errors.restoreFailed")))
		case msg.OK:
			m.Lines = append(m.Lines, statusMessageStyle(t("success.backupDeleted")))
		default:
			m.Lines = append(m.Lines, errorMessageStyle(t("errors.deleteFailed")))
		}
		return m, nil
	}

	var cmd tea.Cmd
	switch m.Step {
	case backupMenu:
		if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
			return m, back
		}
		m.Menu, cmd = m.Menu.Update(msg)

	case backupList:
		key, ok := msg.(tea.KeyMsg)
		if ok && key.String() == "esc" {
			m.Step = backupMenu
			return m, nil
		}
		if ok && key.String() == "enter" {
			if m.Action == actionView || len(m.Backups) == 0 {
				m.Step = backupMenu
				return m, nil
			}
			m.Target = m.Backups[m.Table.Cursor()].BackupID
			m.Step = backupConfirm
			q := t("confirm.restoreBackup", m.Target)
			if m.Action == actionDelete {
				q = t("confirm.deleteBackup", m.Target)
			}
			m.Confirm = NewConfirmModel(m.Action, q, t("confirm.yesNo"))
			return m, nil
		}
		m.Table, cmd = m.Table.Update(msg)

	case backupConfirm:
		m.Confirm, cmd = m.Confirm.Update(msg)

	case backupDone:
		if _, ok := msg.(tea.KeyMsg); ok {
			m.Step = backupMenu
			m.Lines = nil
		}
	}
	return m, cmd
}

func (m BackupsModel) View() string {
	t := m.App.T
	var b strings.Builder
	b.WriteString(titleStyle.Render(t("menu.backupManagement")) + "\n\n")

	if m.Step == backupMenu {
		b.WriteString(m.Menu.View())
		b.WriteString("\n" + blurredStyle.Render(t("common.navigate")))
		return b.String()
	}

	if len(m.Backups) == 0 {
		msg := t("errors.noBackupsAvailable")
		if m.Action == actionView {
			msg = t("errors.noBackupsFound")
		}
		b.WriteString(warnMessageStyle(msg) + "\n")
	} else {
		switch m.Action {
		case actionRestore:
			b.WriteString(t("backup.selectToRestore") + "\n\n")
		case actionDelete:
			b.WriteString(t("backup.selectToDelete") + "\n\n")
		}
		b.WriteString(m.Table.View() + "\n\n")
	}

	switch m.Step {
	case backupList:
		b.WriteString(blurredStyle.Render(t("common.navigate")))
	case backupConfirm:
		b.WriteString(m.Confirm.View())
	case backupDone:
		for _, l := range m.Lines {
			b.WriteString(l + "\n")
		}
		b.WriteString("\n" + blurredStyle.Render(t("common.pressAnyKey")))
	}
	return b.String()
}

package ui

import (
	"strconv"
	"strings"

	"danc/internal/app"
	"danc/internal/models"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
)

// backMsg returns to the main menu.
type backMsg struct{}

func back() tea.Msg { return backMsg{} }

// AdaptersModel shows the display adapter table.
type AdaptersModel struct {
	App     *app.App
	Table   table.Model
	Devices []models.DeviceRecord
	Err     error
}

func adapterColumns(a *app.App) []table.Column {
	return []table.Column{
		{Title: a.T("table.no"), Width: 4},
		{Title: a.T("table.deviceId"), Width: 24},
		{Title: a.T("table.currentName"), Width: 48},
	}
}

func adapterRows(devs []models.DeviceRecord) []table.Row {
	rows := make([]table.Row, len(devs))
	for i, d := range devs {
		rows[i] = table.Row{strconv.Itoa(i + 1), d.DeviceID, d.CurrentName}
	}
	return rows
}

func NewAdaptersModel(a *app.App, height int) AdaptersModel {
	devs, err := a.Adapters()
	return AdaptersModel{
		App:     a,
		Devices: devs,
		Err:     err,
		Table:   newTable(adapterColumns(a), adapterRows(devs), height-8),
	}
}

func (m AdaptersModel) Update(msg tea.Msg) (AdaptersModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc", "q", "enter":
			return m, back
		}
	}
	var cmd tea.Cmd
	m.Table, cmd = m.Table.Update(msg)
	return m, cmd
}

func (m AdaptersModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.App.T("menu.viewAdapterList")) + "\n\n")
	switch {
	case m.Err != nil:
		b.WriteString(errorMessageStyle(m.App.T("errors.unableToOpenRegistry")) + "\n")
	case len(m.Devices) == 0:
		b.WriteString(warnMessageStyle(m.App.T("errors.noAdaptersFound")) + "\n")
	default:
		b.WriteString(m.Table.View() + "\n")
	}
	b.WriteString("\n" + blurredStyle.Render(m.App.T("common.navigate")))
	return b.String()
}

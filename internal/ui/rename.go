package ui

import (
	"errors"
	"strings"

	"danc/internal/app"
	"danc/internal/device"
	"danc/internal/models"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type renameStep int

const (
	renameSelect renameStep = iota
	renameName
	renameConfirm
	renameBackupFailed
	renameDone
)

const (
	tagRename       = "rename"
	tagRenameNoBack = "rename-without-backup"
)

type renameDoneMsg struct {
	Result app.RenameResult
	Err    error
}

// RenameModel walks through picking an adapter, entering a name and
// confirming the change.
type RenameModel struct {
	App     *app.App
	Step    renameStep
	Table   table.Model
	Devices []models.DeviceRecord
	Device  models.DeviceRecord
	Input   textinput.Model
	Confirm ConfirmModel
	Lines   []string
	Err     error
}

func NewRenameModel(a *app.App, height int) RenameModel {
	devs, err := a.Adapters()
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 256
	ti.Width = 48
	return RenameModel{
		App:     a,
		Devices: devs,
		Err:     err,
		Input:   ti,
		Table:   newTable(adapterColumns(a), adapterRows(devs), height-8),
	}
}

func (m RenameModel) renameCmd(allowNoBackup bool) tea.Cmd {
	a, dev, name := m.App, m.Device, m.Input.Value()
	return func() tea.Msg {
		res, err := a.Rename(dev, name, allowNoBackup)
		return renameDoneMsg{Result: res, Err: err}
	}
}

func (m RenameModel) Update(msg tea.Msg) (RenameModel, tea.Cmd) {
	t := m.App.T
	switch msg := msg.(type) {
	case confirmedMsg:
		if !msg.Yes {
			m.Lines = append(m.Lines, warnMessageStyle(t("adapter.operationCancelled")))
			m.Step = renameDone
			return m, nil
		}
		return m, m.renameCmd(msg.Tag == tagRenameNoBack)

	case renameDoneMsg:
		if errors.Is(msg.Err, app.ErrBackupFailed) {
			m.Step = renameBackupFailed
			m.Confirm = NewConfirmModel(tagRenameNoBack, t("adapter.backupFailed"), t("confirm.yesNo"))
			return m, nil
		}
		m.Step = renameDone
		if errors.Is(msg.Err, device.ErrNotFound) {
			m.Lines = append(m.Lines, errorMessageStyle(t("errors.deviceRemoved")))
			return m, nil
		}
		if msg.Err != nil {
			m.Lines = append(m.Lines, errorMessageStyle(t("errors.modificationFailed")))
			return m, nil
		}
		switch {
		case msg.Result.BackupID == "":
		case msg.Result.NewBackup:
			m.Lines = append(m.Lines, t("adapter.backupCreated", msg.Result.BackupID))
		default:
			m.Lines = append(m.Lines, t("adapter.usingExistingBackup"))
		}
		m.Lines = append(m.Lines,
			statusMessageStyle(t("adapter.nameModified")),
			blurredStyle.Render(t("adapter.noteRestart")))
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "esc" && m.Step != renameConfirm && m.Step != renameBackupFailed {
			return m, back
		}
	}

	var cmd tea.Cmd
	switch m.Step {
	case renameSelect:
		if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" && len(m.Devices) > 0 {
			m.Device = m.Devices[m.Table.Cursor()]
			m.Input.SetValue("")
			m.Step = renameName
			cmd = m.Input.Focus()
			return m, cmd
		}
		if len(m.Devices) == 0 {
			if _, ok := msg.(tea.KeyMsg); ok {
				return m, back
			}
		}
		m.Table, cmd = m.Table.Update(msg)

	case renameName:
		if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
			name := strings.TrimSpace(m.Input.Value())
			m.Input.Blur()
			if name == "" {
				m.Lines = append(m.Lines, errorMessageStyle(t("errors.nameEmpty")))
				m.Step = renameDone
				return m, nil
			}
			m.Input.SetValue(name)
			m.Step = renameConfirm
			m.Confirm = NewConfirmModel(tagRename, t("adapter.confirmChange", name), t("confirm.yesNo"))
			return m, nil
		}
		m.Input, cmd = m.Input.Update(msg)

	case renameConfirm, renameBackupFailed:
		m.Confirm, cmd = m.Confirm.Update(msg)

	case renameDone:
		if _, ok := msg.(tea.KeyMsg); ok {
			return m, back
		}
	}
	return m, cmd
}

func (m RenameModel) View() string {
	t := m.App.T
	var b strings.Builder
	b.WriteString(titleStyle.Render(t("menu.modifyAdapterName")) + "\n\n")

	switch {
	case m.Err != nil:
		b.WriteString(errorMessageStyle(t("errors.unableToOpenRegistry")) + "\n")
		return b.String()
	case len(m.Devices) == 0:
		b.WriteString(warnMessageStyle(t("errors.noAdaptersAvailable")) + "\n")
		return b.String()
	}

	if m.Step == renameSelect {
		b.WriteString(t("adapter.selectToModify") + "\n\n")
		b.WriteString(m.Table.View() + "\n\n")
		b.WriteString(blurredStyle.Render(t("common.navigate")))
		return b.String()
	}

	b.WriteString(t("adapter.currentName") + " " + m.Device.CurrentName + "\n\n")
	if m.Step == renameName {
		b.WriteString(t("adapter.enterNewName") + "\n")
		b.WriteString(m.Input.View() + "\n")
	}
	if m.Step == renameConfirm || m.Step == renameBackupFailed {
		b.WriteString(m.Confirm.View() + "\n")
	}
	for _, l := range m.Lines {
		b.WriteString(l + "\n")
	}
	if m.Step == renameDone {
		b.WriteString("\n" + blurredStyle.Render(t("common.pressAnyKey")))
	}
	return b.String()
}

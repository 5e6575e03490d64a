// Package app wires the persisted store, backup ledger, localization and
// device registry into the operations offered by the CLI and the menu.
package app

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"danc/internal/backup"
	"danc/internal/config"
	"danc/internal/device"
	"danc/internal/i18n"
	"danc/internal/journal"
	"danc/internal/locale"
	"danc/internal/models"
	"danc/internal/store"

	"github.com/rs/zerolog"
)

var (
	ErrEmptyName      = errors.New("name cannot be empty")
	ErrBackupFailed   = errors.New("backup could not be created")
	ErrAdapterUnknown = errors.New("display adapter not found")
	ErrLanguage       = errors.New("language not available")
)

type App struct {
	Store    *store.Store
	Ledger   *backup.Ledger
	Resolver *i18n.Resolver
	Devices  device.SourceWriter
	Journal  *journal.Journal // nil when disabled

	log zerolog.Logger
}

// Deps lets callers (tests mostly) replace collaborators built from config.
type Deps struct {
	Devices device.SourceWriter
	Locale  func() string
}

// New builds the application from cfg and loads the stored language.
func New(cfg config.AppConfig, log zerolog.Logger, deps Deps) (*App, error) {
	devices := deps.Devices
	if devices == nil {
		switch cfg.DeviceSource {
		case config.SourceFixture:
			devices = device.NewFixture(cfg.FixturePath)
		default:
			devices = device.NewRegistry()
		}
	}
	uiLocale := deps.Locale
	if uiLocale == nil {
		uiLocale = locale.UILocale
	}

	resolver := i18n.New(cfg.LanguagesDir, log)
	detect := func() string {
		code := i18n.DetectLanguage(uiLocale(), resolver.Available())
		log.Info().Str("language", code).Msg("app: detected language for first run")
		return code
	}
	st := store.New(cfg.DocumentPath, detect, log)

	a := &App{
		Store:    st,
		Ledger:   backup.New(st, devices, log),
		Resolver: resolver,
		Devices:  devices,
		log:      log,
	}

	if cfg.JournalOn {
		j, err := journal.Open(cfg.JournalPath)
		if err != nil {
			log.Warn().Err(err).Msg("app: journal disabled")
		} else {
			a.Journal = j
		}
	}

	resolver.Load(st.Language())
	return a, nil
}

func (a *App) Close() error {
	if a.Journal != nil {
		return a.Journal.Close()
	}
	return nil
}

// T is shorthand for the resolver.
func (a *App) T(key string, args ...any) string { return a.Resolver.T(key, args...) }

// Adapters lists display adapters from the configured source.
func (a *App) Adapters() ([]models.DeviceRecord, error) {
	devs, err := a.Devices.Enumerate()
	if err != nil {
		return nil, fmt.Errorf("enumerate adapters: %w", err)
	}
	return devs, nil
}

// FindAdapter accepts a 1-based list index, a device key or a device id.
func (a *App) FindAdapter(ref string) (models.DeviceRecord, error) {
	devs, err := a.Adapters()
	if err != nil {
		return models.DeviceRecord{}, err
	}
	if n, err := strconv.Atoi(ref); err == nil && n >= 1 && n <= len(devs) {
		return devs[n-1], nil
	}
	for _, d := range devs {
		if d.Key() == ref || strings.EqualFold(d.DeviceID, ref) {
			return d, nil
		}
	}
	return models.DeviceRecord{}, fmt.Errorf("%q: %w", ref, ErrAdapterUnknown)
}

// RenameResult describes what Rename did. BackupID is empty when the backup
// could not be created and the caller allowed continuing without it.
type RenameResult struct {
	BackupID  string `json:"backup_id,omitempty"`
	NewBackup bool   `json:"new_backup"`
}

// Rename backs dev up (once per device) and writes newName. Without
// allowNoBackup a failed backup aborts before anything is written.
func (a *App) Rename(dev models.DeviceRecord, newName string, allowNoBackup bool) (RenameResult, error) {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return RenameResult{}, ErrEmptyName
	}

	var res RenameResult
	res.BackupID, res.NewBackup = a.Ledger.Create(dev)
	if res.BackupID == "" && !allowNoBackup {
		return res, ErrBackupFailed
	}

	err := a.Devices.SetDescriptor(dev.RegistryPath, newName)
	a.record(&journal.Entry{
		Action:    journal.ActionRename,
		DeviceKey: dev.Key(),
		BackupID:  res.BackupID,
		OldValue:  dev.CurrentName,
		NewValue:  newName,
		Success:   err == nil,
		Detail:    errDetail(err),
	})
	if err != nil {
		return res, fmt.Errorf("set descriptor: %w", err)
	}
	a.log.Info().Str("device", dev.Key()).Str("name", newName).Msg("app: adapter renamed")
	return res, nil
}

// Restore writes a backup's original name back to its device.
func (a *App) Restore(backupID string) bool {
	rec, _ := a.Ledger.FindByID(backupID)
	ok := a.Ledger.Restore(backupID)
	a.record(&journal.Entry{
		Action:    journal.ActionRestore,
		DeviceKey: models.DeviceKey(rec.DeviceID, rec.InstanceID),
		BackupID:  backupID,
		NewValue:  rec.OriginalName,
		Success:   ok,
	})
	return ok
}

// Delete removes a backup.
func (a *App) Delete(backupID string) bool {
	rec, _ := a.Ledger.FindByID(backupID)
	ok := a.Ledger.Delete(backupID)
	a.record(&journal.Entry{
		Action:    journal.ActionDelete,
		DeviceKey: models.DeviceKey(rec.DeviceID, rec.InstanceID),
		BackupID:  backupID,
		OldValue:  rec.OriginalName,
		Success:   ok,
	})
	return ok
}

// SetLanguage switches the resolver and persists the preference. Codes not in
// Available are rejected so the stored preference always names a table.
func (a *App) SetLanguage(code string) error {
	found := false
	for _, c := range a.Resolver.Available() {
		if c == code {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("%q: %w", code, ErrLanguage)
	}
	a.Resolver.Load(code)
	a.Store.SetLanguage(a.Resolver.Current())
	return nil
}

// History returns the latest journal entries, or nil when the journal is off.
func (a *App) History(limit int) ([]journal.Entry, error) {
	if a.Journal == nil {
		return nil, nil
	}
	return a.Journal.Latest(limit)
}

func (a *App) record(e *journal.Entry) {
	if a.Journal == nil {
		return
	}
	if err := a.Journal.Record(e); err != nil {
		a.log.Warn().Err(err).Str("action", string(e.Action)).Msg("app: journal write failed")
	}
}

func errDetail(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

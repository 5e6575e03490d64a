package app

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"danc/internal/config"
	"danc/internal/device"
	"danc/internal/journal"
	"danc/internal/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	rtx = models.DeviceRecord{
		DeviceID:     "VEN_10DE&DEV_2484",
		InstanceID:   "4&1234&0&0008",
		CurrentName:  "NVIDIA GeForce RTX 3070",
		RegistryPath: `SYSTEM\CurrentControlSet\Enum\PCI\VEN_10DE&DEV_2484\4&1234&0&0008`,
	}
	uhd = models.DeviceRecord{
		DeviceID:     "VEN_8086&DEV_3E92",
		InstanceID:   "3&11583659&0&10",
		CurrentName:  "Intel(R) UHD Graphics 630",
		RegistryPath: `SYSTEM\CurrentControlSet\Enum\PCI\VEN_8086&DEV_3E92\3&11583659&0&10`,
	}
	nic = models.DeviceRecord{
		DeviceID:     "VEN_10EC&DEV_8168",
		InstanceID:   "4&0&0&00E4",
		CurrentName:  "Realtek PCIe GbE Family Controller",
		RegistryPath: `SYSTEM\CurrentControlSet\Enum\PCI\VEN_10EC&DEV_8168\4&0&0&00E4`,
	}
)

type env struct {
	cfg config.AppConfig
	reg *device.Memory
	app *App
}

func newEnv(t *testing.T, uiLocale string) *env {
	t.Helper()
	dir := t.TempDir()
	langs := filepath.Join(dir, "lang")
	require.NoError(t, os.MkdirAll(langs, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(langs, "zh-CN.yaml"), []byte("menu:\n  exit: \"退出\"\n"), 0o644))

	e := &env{
		cfg: config.AppConfig{
			DataDir:      dir,
			DocumentPath: filepath.Join(dir, "config.yaml"),
			LanguagesDir: langs,
			DeviceSource: config.SourceRegistry,
			JournalOn:    true,
			JournalPath:  filepath.Join(dir, "journal.db"),
		},
		reg: device.NewMemory(rtx, uhd, nic),
	}
	e.app = e.open(t, uiLocale)
	return e
}

func (e *env) open(t *testing.T, uiLocale string) *App {
	t.Helper()
	a, err := New(e.cfg, zerolog.Nop(), Deps{Devices: e.reg, Locale: func() string { return uiLocale }})
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	return a
}

func TestNew_DetectsLanguageOnFirstRun(t *testing.T) {
	e := newEnv(t, "zh-TW")
	assert.Equal(t, "zh-CN", e.app.Resolver.Current())
	assert.Equal(t, "退出", e.app.T("menu.exit"))

	_, err := os.Stat(e.cfg.DocumentPath)
	assert.True(t, os.IsNotExist(err))
}

func TestNew_UsesStoredLanguage(t *testing.T) {
	e := newEnv(t, "en-US")
	require.NoError(t, e.app.SetLanguage("zh-CN"))

	again := e.open(t, "en-US")
	assert.Equal(t, "zh-CN", again.Resolver.Current())
}

func TestAdaptersAndFind(t *testing.T) {
	e := newEnv(t, "")
	devs, err := e.app.Adapters()
	require.NoError(t, err)
	require.Len(t, devs, 2)

	got, err := e.app.FindAdapter("2")
	require.NoError(t, err)
	assert.Equal(t, uhd.DeviceID, got.DeviceID)

	got, err = e.app.FindAdapter(rtx.Key())
	require.NoError(t, err)
	assert.Equal(t, rtx.DeviceID, got.DeviceID)

	got, err = e.app.FindAdapter("ven_10de&dev_2484")
	require.NoError(t, err)
	assert.Equal(t, rtx.DeviceID, got.DeviceID)

	_, err = e.app.FindAdapter("9")
	assert.ErrorIs(t, err, ErrAdapterUnknown)
	_, err = e.app.FindAdapter(nic.DeviceID)
	assert.ErrorIs(t, err, ErrAdapterUnknown)
}

func TestRename_BacksUpOnceThenRestores(t *testing.T) {
	e := newEnv(t, "")

	res, err := e.app.Rename(rtx, "  Studio Graphics  ", false)
	require.NoError(t, err)
	assert.True(t, res.NewBackup)
	v, _ := e.reg.Descriptor(rtx.RegistryPath)
	assert.Equal(t, "Studio Graphics", v)

	renamed, err := e.app.FindAdapter(rtx.Key())
	require.NoError(t, err)
	again, err := e.app.Rename(renamed, "Render Graphics", false)
	require.NoError(t, err)
	assert.False(t, again.NewBackup)
	assert.Equal(t, res.BackupID, again.BackupID)

	require.True(t, e.app.Restore(res.BackupID))
	v, _ = e.reg.Descriptor(rtx.RegistryPath)
	assert.Equal(t, rtx.CurrentName, v)

	hist, err := e.app.History(10)
	require.NoError(t, err)
	require.Len(t, hist, 3)
	assert.Equal(t, journal.ActionRestore, hist[0].Action)
	assert.Equal(t, rtx.CurrentName, hist[0].NewValue)
	assert.Equal(t, "Studio Graphics", hist[1].OldValue)
}

func TestRename_EmptyName(t *testing.T) {
	e := newEnv(t, "")
	_, err := e.app.Rename(rtx, "   ", false)
	assert.ErrorIs(t, err, ErrEmptyName)
	assert.Empty(t, e.app.Ledger.List())
}

func TestRename_WriteFailureIsJournaled(t *testing.T) {
	e := newEnv(t, "")
	e.reg.FailWrites = errors.New("access denied")

	res, err := e.app.Rename(uhd, "Office Graphics", false)
	require.Error(t, err)
	assert.NotEmpty(t, res.BackupID, "backup is taken before the write")

	hist, err := e.app.History(1)
	require.NoError(t, err)
	require.Len(t, hist, 1)
	assert.False(t, hist[0].Success)
	assert.Contains(t, hist[0].Detail, "access denied")
}

func TestDelete(t *testing.T) {
	e := newEnv(t, "")
	res, err := e.app.Rename(uhd, "Office Graphics", false)
	require.NoError(t, err)

	assert.True(t, e.app.Delete(res.BackupID))
	assert.False(t, e.app.Delete(res.BackupID))
	assert.False(t, e.app.Restore(res.BackupID))
}

func TestSetLanguage_RejectsUnknown(t *testing.T) {
	e := newEnv(t, "")
	err := e.app.SetLanguage("xx-YY")
	assert.ErrorIs(t, err, ErrLanguage)
	assert.Equal(t, "en", e.app.Resolver.Current())
}

func TestJournalDisabled(t *testing.T) {
	e := newEnv(t, "")
	e.cfg.JournalOn = false
	a := e.open(t, "")
	assert.Nil(t, a.Journal)

	hist, err := a.History(5)
	assert.NoError(t, err)
	assert.Nil(t, hist)
}

package i18n

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const germanTable = `
menu:
  exit: Beenden
  back: Zurück
adapter:
  confirmChange: "Möchten Sie den Namen wirklich in '{0}' ändern?"
numbers:
  answer: 42
  flag: true
broken: just a string
`

func writeTable(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestAvailable(t *testing.T) {
	dir := t.TempDir()
	writeTable(t, dir, "zh-CN.yaml", "menu:\n  exit: 退出\n")
	writeTable(t, dir, "de-DE.yml", germanTable)
	writeTable(t, dir, "en.yaml", "menu:\n  exit: Quit\n")
	writeTable(t, dir, "notes.txt", "ignored")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "fr-FR.yaml"), 0o755))

	r := New(dir, zerolog.Nop())
	assert.Equal(t, []string{"de-DE", "en", "zh-CN"}, r.Available())
}

func TestAvailable_MissingDirectory(t *testing.T) {
	r := New(filepath.Join(t.TempDir(), "absent"), zerolog.Nop())
	assert.Equal(t, []string{"en"}, r.Available())
}

func TestLoad_External(t *testing.T) {
	dir := t.TempDir()
	writeTable(t, dir, "de-DE.yaml", germanTable)
	r := New(dir, zerolog.Nop())

	require.True(t, r.Load("de-DE"))
	assert.Equal(t, "de-DE", r.Current())
	assert.Equal(t, "Beenden", r.T("menu.exit"))
	assert.Equal(t, "Möchten Sie den Namen wirklich in 'GPU' ändern?", r.T("adapter.confirmChange", "GPU"))
	assert.Equal(t, "42", r.T("numbers.answer"))
	assert.Equal(t, "true", r.T("numbers.flag"))
	assert.Equal(t, "broken.x", r.T("broken.x"))
	// External tables do not fall through to English per key.
	assert.Equal(t, "menu.selectOperation", r.T("menu.selectOperation"))
}

func TestLoad_UnknownLanguageFallsBackToEnglish(t *testing.T) {
	r := New(t.TempDir(), zerolog.Nop())

	require.True(t, r.Load("zz-not-real"))
	assert.Equal(t, English, r.Current())
	assert.Equal(t, "Exit", r.T("menu.exit"))
}

func TestLoad_ParseErrorFallsBackToEnglish(t *testing.T) {
	dir := t.TempDir()
	writeTable(t, dir, "xx.yaml", "menu: [exit: \"unterminated")
	r := New(dir, zerolog.Nop())

	require.True(t, r.Load("xx"))
	assert.Equal(t, English, r.Current())
	assert.Equal(t, "Back", r.T("menu.back"))
}

func TestLoad_SwitchBackToEnglish(t *testing.T) {
	dir := t.TempDir()
	writeTable(t, dir, "de-DE.yaml", germanTable)
	r := New(dir, zerolog.Nop())

	require.True(t, r.Load("de-DE"))
	require.True(t, r.Load(English))
	assert.Equal(t, "Exit", r.T("menu.exit"))
}

func TestLoad_RejectsPathCodes(t *testing.T) {
	dir := t.TempDir()
	writeTable(t, dir, "de-DE.yaml", germanTable)
	r := New(filepath.Join(dir, "sub"), zerolog.Nop())

	require.True(t, r.Load("../de-DE"))
	assert.Equal(t, English, r.Current())
}

func TestT_ImplicitEnglish(t *testing.T) {
	r := New(t.TempDir(), zerolog.Nop())
	assert.Equal(t, "Please select an operation:", r.T("menu.selectOperation"))
}

func TestT_Misses(t *testing.T) {
	r := New(t.TempDir(), zerolog.Nop())

	assert.Equal(t, "nonexistent.key", r.T("nonexistent.key"))
	assert.Equal(t, "menu.nothing", r.T("menu.nothing"))
	assert.Equal(t, "plainText", r.T("plainText"))
	assert.Equal(t, "", r.T(""))
	assert.Equal(t, "Exit", r.T("menu.exit.extra"))
}

func TestT_Substitution(t *testing.T) {
	r := New(t.TempDir(), zerolog.Nop())

	assert.Equal(t, "Backup created: 20250101_000000_ab", r.T("adapter.backupCreated", "20250101_000000_ab"))
	assert.Equal(t, "Exit", r.T("menu.exit", "ignored"))
	assert.Equal(t, "Backup created: {0}", r.T("adapter.backupCreated"))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "b a", Format("{1} {0}", "a", "b"))
	assert.Equal(t, "a {1}", Format("{0} {1}", "a"))
	assert.Equal(t, "7 items", Format("{0} items", 7))
	assert.Equal(t, "no braces", Format("no braces", "x"))
}

func TestParseTable(t *testing.T) {
	table, err := ParseTable([]byte(germanTable))
	require.NoError(t, err)
	assert.NotContains(t, table, "broken")
	assert.Equal(t, "Zurück", table["menu"]["back"])

	_, err = ParseTable([]byte(""))
	assert.Error(t, err)
}

func TestEnglishTableKeys(t *testing.T) {
	r := New(t.TempDir(), zerolog.Nop())
	keys := []string{
		"errors.adminRequired", "errors.noAdaptersFound", "errors.restoreFailed",
		"menu.selectOperation", "menu.viewAdapterList", "menu.modifyAdapterName",
		"menu.backupManagement", "menu.languageSettings", "menu.exit", "menu.back",
		"backup.viewAll", "backup.restore", "backup.delete",
		"adapter.confirmChange", "adapter.usingExistingBackup", "adapter.noteRestart",
		"table.no", "table.deviceId", "table.backupId", "table.createdTime",
		"confirm.restoreBackup", "confirm.deleteBackup",
		"success.backupRestored", "success.backupDeleted", "success.goodbye", "success.languageChanged",
		"common.pressAnyKey",
	}
	for _, k := range keys {
		assert.NotEqual(t, k, r.T(k), k)
	}
}

func TestShippedTablesCoverEnglish(t *testing.T) {
	dir := filepath.Join("..", "..", "Resources", "Languages")
	r := New(dir, zerolog.Nop())
	for _, code := range r.Available() {
		if code == English {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, code+".yaml"))
		require.NoError(t, err, code)
		table, err := ParseTable(data)
		require.NoError(t, err, code)
		for module, props := range english {
			for prop := range props {
				assert.Contains(t, table[module], prop, "%s is missing %s.%s", code, module, prop)
			}
		}
	}
}

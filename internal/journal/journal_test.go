package journal

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) (*Journal, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "journal.db")
	j, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = j.Close() })
	return j, path
}

func TestRecordAndLatest(t *testing.T) {
	j, _ := openTemp(t)

	first := &Entry{Action: ActionRename, DeviceKey: "GPU_1", OldValue: "NVIDIA", NewValue: "Work Graphics", Success: true}
	require.NoError(t, j.Record(first))
	assert.NotEmpty(t, first.UUID)
	assert.NotZero(t, first.ID)

	require.NoError(t, j.Record(&Entry{Action: ActionRestore, DeviceKey: "GPU_1", BackupID: "b1", Success: false, Detail: "access denied"}))
	require.NoError(t, j.Record(&Entry{Action: ActionDelete, DeviceKey: "GPU_2", BackupID: "b2", Success: true}))

	latest, err := j.Latest(2)
	require.NoError(t, err)
	require.Len(t, latest, 2)
	assert.Equal(t, ActionDelete, latest[0].Action)
	assert.Equal(t, ActionRestore, latest[1].Action)
	assert.Equal(t, "access denied", latest[1].Detail)

	all, err := j.Latest(0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestByDevice(t *testing.T) {
	j, _ := openTemp(t)
	require.NoError(t, j.Record(&Entry{Action: ActionRename, DeviceKey: "GPU_1"}))
	require.NoError(t, j.Record(&Entry{Action: ActionRename, DeviceKey: "GPU_2"}))
	require.NoError(t, j.Record(&Entry{Action: ActionRestore, DeviceKey: "GPU_1"}))

	got, err := j.ByDevice("GPU_1", 10)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, ActionRestore, got[0].Action)
}

func TestReopenKeepsEntries(t *testing.T) {
	j, path := openTemp(t)
	require.NoError(t, j.Record(&Entry{Action: ActionRename, DeviceKey: "GPU_1", Success: true}))
	require.NoError(t, j.Close())

	again, err := Open(path)
	require.NoError(t, err)
	defer again.Close()
	got, err := again.Latest(10)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

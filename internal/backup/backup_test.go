package backup

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"danc/internal/device"
	"danc/internal/models"
	"danc/internal/store"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	path   string
	store  *store.Store
	reg    *device.Memory
	ledger *Ledger
	clock  time.Time
}

func newFixture(t *testing.T, devices ...models.DeviceRecord) *fixture {
	t.Helper()
	f := &fixture{
		path:  filepath.Join(t.TempDir(), "config.yaml"),
		reg:   device.NewMemory(devices...),
		clock: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	f.store = store.New(f.path, nil, zerolog.Nop())
	f.ledger = New(f.store, f.reg, zerolog.Nop(), WithClock(f.now))
	return f
}

// now advances one second per call so creation times are strictly ordered.
func (f *fixture) now() time.Time {
	f.clock = f.clock.Add(time.Second)
	return f.clock
}

func gpu(n string, name string) models.DeviceRecord {
	return models.DeviceRecord{
		DeviceID:     "VEN_10DE&DEV_" + n,
		InstanceID:   "4&0&0&" + n,
		CurrentName:  name,
		RegistryPath: `SYSTEM\CurrentControlSet\Enum\PCI\VEN_10DE&DEV_` + n + `\4&0&0&` + n,
	}
}

func TestCreate_IsIdempotentAndKeepsFirstName(t *testing.T) {
	dev := gpu("0001", "NVIDIA GeForce GTX 1080")
	f := newFixture(t, dev)

	id1, isNew1 := f.ledger.Create(dev)
	require.NotEmpty(t, id1)
	assert.True(t, isNew1)

	id2, isNew2 := f.ledger.Create(dev)
	assert.Equal(t, id1, id2)
	assert.False(t, isNew2)

	dev.CurrentName = "Renamed Graphics"
	id3, isNew3 := f.ledger.Create(dev)
	assert.Equal(t, id1, id3)
	assert.False(t, isNew3)

	rec, ok := f.ledger.FindByID(id1)
	require.True(t, ok)
	assert.Equal(t, "NVIDIA GeForce GTX 1080", rec.OriginalName)
}

func TestCreate_IDFormat(t *testing.T) {
	f := newFixture(t)
	f.ledger = New(f.store, f.reg, zerolog.Nop(),
		WithClock(func() time.Time { return time.Date(2024, 2, 29, 23, 59, 58, 0, time.UTC) }),
		WithEntropy(bytes.NewReader(bytes.Repeat([]byte{0xab}, 16))),
	)

	id, isNew := f.ledger.Create(gpu("0002", "AMD Radeon"))
	require.True(t, isNew)
	assert.Equal(t, "20240229_235958_abababababababababababababababab", id)
}

func TestCreate_EntropyFailure(t *testing.T) {
	f := newFixture(t)
	f.ledger = New(f.store, f.reg, zerolog.Nop(), WithEntropy(bytes.NewReader(nil)))

	id, isNew := f.ledger.Create(gpu("0003", "Intel Graphics"))
	assert.Empty(t, id)
	assert.False(t, isNew)
	assert.Empty(t, f.ledger.List(), "failed create must leave the ledger unchanged")
}

func TestCreate_IDsAreUnique(t *testing.T) {
	f := newFixture(t)
	// A frozen clock forces uniqueness to come from the random part.
	frozen := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	f.ledger = New(f.store, f.reg, zerolog.Nop(), WithClock(func() time.Time { return frozen }))

	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		dev := models.DeviceRecord{DeviceID: "DEV", InstanceID: fmt.Sprintf("inst-%d", i)}
		id, isNew := f.ledger.Create(dev)
		require.True(t, isNew)
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestList_MostRecentFirst(t *testing.T) {
	f := newFixture(t)
	id1, _ := f.ledger.Create(gpu("0001", "first"))
	id2, _ := f.ledger.Create(gpu("0002", "second"))
	id3, _ := f.ledger.Create(gpu("0003", "third"))

	list := f.ledger.List()
	require.Len(t, list, 3)
	assert.Equal(t, []string{id3, id2, id1}, []string{list[0].BackupID, list[1].BackupID, list[2].BackupID})
	assert.Equal(t, "third", list[0].OriginalName)
}

func TestList_Empty(t *testing.T) {
	f := newFixture(t)
	assert.Empty(t, f.ledger.List())
}

func TestFindByDevice(t *testing.T) {
	dev := gpu("0004", "GeForce RTX 4090")
	f := newFixture(t, dev)
	id, _ := f.ledger.Create(dev)

	got, ok := f.ledger.FindByDevice(dev.DeviceID, dev.InstanceID)
	require.True(t, ok)
	assert.Equal(t, id, got.BackupID)
	assert.Equal(t, dev.DeviceID, got.DeviceID)
	assert.Equal(t, "GeForce RTX 4090", got.OriginalName)

	_, ok = f.ledger.FindByDevice(dev.DeviceID, "other")
	assert.False(t, ok)
}

func TestDelete_ThenFindAndListMiss(t *testing.T) {
	f := newFixture(t)
	keep, _ := f.ledger.Create(gpu("0001", "keep"))
	gone, _ := f.ledger.Create(gpu("0002", "gone"))

	require.True(t, f.ledger.Delete(gone))
	_, ok := f.ledger.FindByID(gone)
	assert.False(t, ok)
	for _, s := range f.ledger.List() {
		assert.NotEqual(t, gone, s.BackupID)
	}
	assert.False(t, f.ledger.Delete(gone))
	assert.False(t, f.ledger.Delete(""))

	_, ok = f.ledger.FindByID(keep)
	assert.True(t, ok)

	reread := store.New(f.path, nil, zerolog.Nop()).Load()
	assert.Len(t, reread.DeviceBackups, 1)
}

func TestDelete_AllowsFreshBackupOfSameDevice(t *testing.T) {
	dev := gpu("0005", "Radeon Pro")
	f := newFixture(t, dev)
	first, _ := f.ledger.Create(dev)
	require.True(t, f.ledger.Delete(first))

	dev.CurrentName = "Renamed Radeon"
	second, isNew := f.ledger.Create(dev)
	assert.True(t, isNew)
	assert.NotEqual(t, first, second)
	rec, _ := f.ledger.FindByID(second)
	assert.Equal(t, "Renamed Radeon", rec.OriginalName)
}

func TestRestore_WritesOriginalNameAndKeepsBackup(t *testing.T) {
	dev := gpu("0006", "N0 Graphics")
	f := newFixture(t, dev)
	id, _ := f.ledger.Create(dev)
	require.NoError(t, f.reg.SetDescriptor(dev.RegistryPath, "Something Else"))

	require.True(t, f.ledger.Restore(id))
	v, _ := f.reg.Descriptor(dev.RegistryPath)
	assert.Equal(t, "N0 Graphics", v)

	_, ok := f.ledger.FindByID(id)
	assert.True(t, ok)
	assert.True(t, f.ledger.Restore(id), "a backup can be restored more than once")
}

func TestRestore_Failures(t *testing.T) {
	dev := gpu("0007", "Intel Iris")
	f := newFixture(t, dev)
	id, _ := f.ledger.Create(dev)

	assert.False(t, f.ledger.Restore("missing"))

	f.reg.FailWrites = errors.New("access denied")
	assert.False(t, f.ledger.Restore(id))
}

type panicWriter struct{}

func (panicWriter) SetDescriptor(string, string) error { panic("registry exploded") }

func TestRestore_WriterPanicIsContained(t *testing.T) {
	dev := gpu("0008", "VGA")
	f := newFixture(t, dev)
	id, _ := f.ledger.Create(dev)

	l := New(f.store, panicWriter{}, zerolog.Nop())
	assert.False(t, l.Restore(id))
}

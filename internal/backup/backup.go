// Package backup keeps at most one backup of the original descriptor per
// device and restores it on request.
//
// Every exported Ledger method is total: failures are logged and reported as
// false, an empty id or an empty slice.
package backup

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"sort"
	"time"

	"danc/internal/device"
	"danc/internal/models"
	"danc/internal/store"

	"github.com/rs/zerolog"
)

const idTimeLayout = "20060102_150405"

// Ledger is the backup map of a store plus the writer used for restores.
type Ledger struct {
	store  *store.Store
	writer device.Writer
	log    zerolog.Logger

	now     func() time.Time
	entropy io.Reader
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

// WithEntropy replaces crypto/rand as the source of id randomness.
func WithEntropy(r io.Reader) Option {
	return func(l *Ledger) { l.entropy = r }
}

// New returns a ledger over s that restores through w.
func New(s *store.Store, w device.Writer, log zerolog.Logger, opts ...Option) *Ledger {
	l := &Ledger{store: s, writer: w, log: log, now: time.Now, entropy: rand.Reader}
	for _, o := range opts {
		o(l)
	}
	return l
}

// newID returns "<yyyyMMdd_HHmmss>_<32 hex chars>".
func (l *Ledger) newID(at time.Time) (string, error) {
	var b [16]byte
	if _, err := io.ReadFull(l.entropy, b[:]); err != nil {
		return "", fmt.Errorf("read entropy: %w", err)
	}
	return at.Format(idTimeLayout) + "_" + hex.EncodeToString(b[:]), nil
}

// Create records dev's current name unless a backup for the same device key
// already exists, in which case the existing id is returned with isNew false
// and the stored original name is left untouched.
func (l *Ledger) Create(dev models.DeviceRecord) (id string, isNew bool) {
	defer func() {
		if r := recover(); r != nil {
			l.log.Error().Interface("panic", r).Str("device", dev.Key()).Msg("backup: create failed")
			id, isNew = "", false
		}
	}()

	key := dev.Key()
	if existing, ok := l.store.Backups()[key]; ok {
		return existing.BackupID, false
	}

	at := l.now()
	id, err := l.newID(at)
	if err != nil {
		l.log.Error().Err(err).Str("device", key).Msg("backup: cannot generate id")
		return "", false
	}
	l.store.UpsertBackup(key, models.BackupRecord{
		BackupID:     id,
		CreatedTime:  at,
		DeviceID:     dev.DeviceID,
		InstanceID:   dev.InstanceID,
		RegistryPath: dev.RegistryPath,
		OriginalName: dev.CurrentName,
	})
	l.log.Info().Str("device", key).Str("backup", id).Msg("backup: created")
	return id, true
}

// List returns every backup, most recent first. Equal timestamps are ordered
// by backup id.
func (l *Ledger) List() []models.BackupSummary {
	backups := l.store.Backups()
	out := make([]models.BackupSummary, 0, len(backups))
	for _, rec := range backups {
		out = append(out, rec.Summary())
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedTime.Equal(out[j].CreatedTime) {
			return out[i].CreatedTime.After(out[j].CreatedTime)
		}
		return out[i].BackupID < out[j].BackupID
	})
	return out
}

// FindByDevice looks a backup up by its device key.
func (l *Ledger) FindByDevice(deviceID, instanceID string) (models.BackupSummary, bool) {
	rec, ok := l.store.Backups()[models.DeviceKey(deviceID, instanceID)]
	if !ok {
		return models.BackupSummary{}, false
	}
	return rec.Summary(), true
}

// FindByID scans for the record with the given backup id.
func (l *Ledger) FindByID(backupID string) (models.BackupRecord, bool) {
	_, rec, ok := l.lookup(backupID)
	return rec, ok
}

func (l *Ledger) lookup(backupID string) (string, models.BackupRecord, bool) {
	if backupID == "" {
		return "", models.BackupRecord{}, false
	}
	for key, rec := range l.store.Backups() {
		if rec.BackupID == backupID {
			return key, rec, true
		}
	}
	return "", models.BackupRecord{}, false
}

// Restore writes the original name back to the device. The backup is kept
// and may be restored again.
func (l *Ledger) Restore(backupID string) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			l.log.Error().Interface("panic", r).Str("backup", backupID).Msg("backup: restore failed")
			ok = false
		}
	}()

	rec, found := l.FindByID(backupID)
	if !found {
		l.log.Warn().Str("backup", backupID).Msg("backup: restore of unknown backup")
		return false
	}
	if err := l.writer.SetDescriptor(rec.RegistryPath, rec.OriginalName); err != nil {
		l.log.Error().Err(err).Str("backup", backupID).Str("path", rec.RegistryPath).Msg("backup: restore failed")
		return false
	}
	l.log.Info().Str("backup", backupID).Msg("backup: restored")
	return true
}

// Delete removes the backup with the given id.
func (l *Ledger) Delete(backupID string) bool {
	key, _, found := l.lookup(backupID)
	if !found {
		return false
	}
	l.store.RemoveBackup(key)
	l.log.Info().Str("backup", backupID).Str("device", key).Msg("backup: deleted")
	return true
}

// Package journal records rename, restore and delete operations in a local
// SQLite database so they can be reviewed later.
package journal

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Journal struct{ db *gorm.DB }

// Open creates or opens the database at path and migrates its schema.
func Open(path string) (*Journal, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create journal dir: %w", err)
		}
	}
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, fmt.Errorf("migrate journal: %w", err)
	}
	return &Journal{db: db}, nil
}

// Record stores e, assigning its UUID when unset.
func (j *Journal) Record(e *Entry) error {
	if e.UUID == "" {
		e.UUID = uuid.NewString()
	}
	return j.db.Create(e).Error
}

// Latest returns up to limit entries, newest first.
func (j *Journal) Latest(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}
	var entries []Entry
	err := j.db.Order("id DESC").Limit(limit).Find(&entries).Error
	return entries, err
}

// ByDevice returns the entries for one device key, newest first.
func (j *Journal) ByDevice(deviceKey string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}
	var entries []Entry
	err := j.db.Where("device_key = ?", deviceKey).Order("id DESC").Limit(limit).Find(&entries).Error
	return entries, err
}

func (j *Journal) Close() error {
	sqlDB, err := j.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

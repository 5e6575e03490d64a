// Package store persists the per-user document (language preference and
// device backups) as a single YAML file.
//
// The document is read at most once per Store: the first Load, whether it
// came from disk or fell back to a fresh document, stays authoritative until
// Reload. Every mutator rewrites the whole file; write failures are logged
// and otherwise ignored, leaving the last known state in memory only.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"danc/internal/models"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

const (
	appDirName   = "DisplayAdapterNameChanger"
	documentName = "config.yaml"
)

// DetectFunc picks the language for a document created from scratch.
type DetectFunc func() string

// Store caches the document held in one file.
type Store struct {
	mu     sync.Mutex
	path   string
	detect DetectFunc
	log    zerolog.Logger
	doc    *models.Document
}

// New returns a store for path. detect may be nil, in which case fresh
// documents use the default language.
func New(path string, detect DetectFunc, log zerolog.Logger) *Store {
	if detect == nil {
		detect = func() string { return models.DefaultLanguage }
	}
	return &Store{path: path, detect: detect, log: log}
}

// DefaultDir returns the per-user application data directory.
func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	return filepath.Join(base, appDirName), nil
}

// DefaultPath returns the document location inside DefaultDir.
func DefaultPath() (string, error) {
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, documentName), nil
}

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

// Load returns a copy of the cached document, reading the file on first use.
func (s *Store) Load() models.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked().Clone()
}

// Reload drops the cache and reads the file again.
func (s *Store) Reload() models.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = nil
	return s.loadLocked().Clone()
}

func (s *Store) loadLocked() *models.Document {
	if s.doc != nil {
		return s.doc
	}
	doc, err := readDocument(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.log.Warn().Err(err).Str("path", s.path).Msg("store: unreadable document, starting fresh")
		}
		fresh := models.NewDocument(s.detect())
		doc = &fresh
	}
	s.doc = doc
	return s.doc
}

func readDocument(path string) (*models.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc models.Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if doc.Language == "" {
		doc.Language = models.DefaultLanguage
	}
	if doc.DeviceBackups == nil {
		doc.DeviceBackups = map[string]models.BackupRecord{}
	}
	return &doc, nil
}

// Save writes the cached document. Its error is for callers that care; the
// mutators below only log it.
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked()
}

func (s *Store) saveLocked() error {
	doc := s.loadLocked()
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	return writeAtomic(s.path, data)
}

func (s *Store) persistLocked() {
	if err := s.saveLocked(); err != nil {
		s.log.Error().Err(err).Str("path", s.path).Msg("store: failed to write document")
	}
}

// writeAtomic writes data to a temp file next to path and renames it over.
func writeAtomic(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}
	tmp := path + ".tmp"
	_ = os.Remove(tmp)
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write tmp: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}

// Language returns the stored language code.
func (s *Store) Language() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked().Language
}

// SetLanguage stores code and persists the document.
func (s *Store) SetLanguage(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadLocked().Language = code
	s.persistLocked()
}

// Backups returns a copy of the device-keyed backup map.
func (s *Store) Backups() map[string]models.BackupRecord {
	return s.Load().DeviceBackups
}

// UpsertBackup stores rec under key and persists the document.
func (s *Store) UpsertBackup(key string, rec models.BackupRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadLocked().DeviceBackups[key] = rec
	s.persistLocked()
}

// RemoveBackup deletes key and persists the document.
func (s *Store) RemoveBackup(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.loadLocked().DeviceBackups, key)
	s.persistLocked()
}

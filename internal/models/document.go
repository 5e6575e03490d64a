// Package models holds the types persisted in the per-user document and the
// device records read from the registry.
package models

// DefaultLanguage is used when nothing else is known.
const DefaultLanguage = "en"

// Document is the single persisted object: language preference plus the
// device-keyed backup map. At most one record exists per device key.
type Document struct {
	Language      string                  `yaml:"language"`
	DeviceBackups map[string]BackupRecord `yaml:"deviceBackups"`
}

// NewDocument returns an empty document for the given language.
func NewDocument(language string) Document {
	if language == "" {
		language = DefaultLanguage
	}
	return Document{Language: language, DeviceBackups: map[string]BackupRecord{}}
}

// Clone returns a copy that shares no map with d.
func (d Document) Clone() Document {
	out := Document{Language: d.Language, DeviceBackups: make(map[string]BackupRecord, len(d.DeviceBackups))}
	for k, v := range d.DeviceBackups {
		out.DeviceBackups[k] = v
	}
	return out
}

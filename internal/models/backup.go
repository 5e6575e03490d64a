package models

import "time"

// BackupRecord is the persisted snapshot of a device's descriptor taken before
// its first rename. Every field is set once at creation.
type BackupRecord struct {
	BackupID     string    `yaml:"backupId" json:"backup_id"`
	CreatedTime  time.Time `yaml:"createdTime" json:"created_time"`
	DeviceID     string    `yaml:"deviceId" json:"device_id"`
	InstanceID   string    `yaml:"instanceId" json:"instance_id"`
	RegistryPath string    `yaml:"registryPath" json:"registry_path"`
	OriginalName string    `yaml:"originalName" json:"original_name"`
}

// Summary projects the record without its registry path.
func (r BackupRecord) Summary() BackupSummary {
	return BackupSummary{
		BackupID:     r.BackupID,
		CreatedTime:  r.CreatedTime,
		DeviceID:     r.DeviceID,
		OriginalName: r.OriginalName,
	}
}

// BackupSummary is used for listing and selection.
type BackupSummary struct {
	BackupID     string    `json:"backup_id"`
	CreatedTime  time.Time `json:"created_time"`
	DeviceID     string    `json:"device_id"`
	OriginalName string    `json:"original_name"`
}

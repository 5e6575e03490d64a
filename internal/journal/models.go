package journal

import "time"

type Action string

const (
	ActionRename  Action = "rename"
	ActionRestore Action = "restore"
	ActionDelete  Action = "delete"
)

// Entry is one operation performed against a device or a backup.
type Entry struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	UUID      string    `gorm:"uniqueIndex;size:36" json:"uuid"`
	Action    Action    `gorm:"index;size:16" json:"action"`
	DeviceKey string    `gorm:"index;size:512" json:"device_key"`
	BackupID  string    `gorm:"size:64" json:"backup_id,omitempty"`
	OldValue  string    `gorm:"size:1024" json:"old_value,omitempty"`
	NewValue  string    `gorm:"size:1024" json:"new_value,omitempty"`
	Success   bool      `json:"success"`
	Detail    string    `gorm:"size:1024" json:"detail,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

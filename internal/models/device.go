package models

// DeviceRecord is one display adapter as read from the device registry.
type DeviceRecord struct {
	DeviceID     string `yaml:"deviceId" json:"device_id"`
	InstanceID   string `yaml:"instanceId" json:"instance_id"`
	CurrentName  string `yaml:"currentName" json:"current_name"`
	RegistryPath string `yaml:"registryPath" json:"registry_path"`
}

// DeviceKey composes the identifier backups are keyed by.
func DeviceKey(deviceID, instanceID string) string {
	return deviceID + "_" + instanceID
}

// Key returns the device key of d.
func (d DeviceRecord) Key() string { return DeviceKey(d.DeviceID, d.InstanceID) }

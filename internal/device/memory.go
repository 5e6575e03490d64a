package device

import (
	"sync"

	"danc/internal/models"
)

// Memory is an in-process registry, used by tests.
type Memory struct {
	mu      sync.Mutex
	devices []models.DeviceRecord
	// FailWrites makes SetDescriptor return this error when set.
	FailWrites error
}

// NewMemory returns a registry holding devices, adapters or not.
func NewMemory(devices ...models.DeviceRecord) *Memory {
	return &Memory{devices: append([]models.DeviceRecord(nil), devices...)}
}

func (m *Memory) Enumerate() ([]models.DeviceRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return filterAdapters(m.devices), nil
}

func (m *Memory) SetDescriptor(registryPath, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites != nil {
		return m.FailWrites
	}
	for i := range m.devices {
		if m.devices[i].RegistryPath == registryPath {
			m.devices[i].CurrentName = value
			return nil
		}
	}
	return ErrNotFound
}

// Descriptor returns the value stored at registryPath.
func (m *Memory) Descriptor(registryPath string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, d := range m.devices {
		if d.RegistryPath == registryPath {
			return d.CurrentName, true
		}
	}
	return "", false
}

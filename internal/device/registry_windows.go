//go:build windows

package device

import (
	"errors"
	"fmt"

	"danc/internal/models"

	"golang.org/x/sys/windows/registry"
)

const (
	pciEnumPath   = `SYSTEM\CurrentControlSet\Enum\PCI`
	descriptorKey = "DeviceDesc"
)

// Registry reads and writes DeviceDesc values under HKLM PCI enumeration.
type Registry struct{}

func NewRegistry() *Registry { return &Registry{} }

func (r *Registry) Enumerate() ([]models.DeviceRecord, error) {
	base, err := registry.OpenKey(registry.LOCAL_MACHINE, pciEnumPath, registry.ENUMERATE_SUB_KEYS)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", pciEnumPath, err)
	}
	defer base.Close()

	deviceIDs, err := base.ReadSubKeyNames(-1)
	if err != nil {
		return nil, fmt.Errorf("list devices: %w", err)
	}

	var out []models.DeviceRecord
	for _, deviceID := range deviceIDs {
		devKey, err := registry.OpenKey(base, deviceID, registry.ENUMERATE_SUB_KEYS)
		if err != nil {
			continue
		}
		instances, err := devKey.ReadSubKeyNames(-1)
		devKey.Close()
		if err != nil {
			continue
		}
		for _, instanceID := range instances {
			path := pciEnumPath + `\` + deviceID + `\` + instanceID
			desc, err := readDescriptor(path)
			if err != nil || !IsDisplayAdapter(desc) {
				continue
			}
			out = append(out, models.DeviceRecord{
				DeviceID:     deviceID,
				InstanceID:   instanceID,
				CurrentName:  desc,
				RegistryPath: path,
			})
		}
	}
	return out, nil
}

func readDescriptor(path string) (string, error) {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, path, registry.QUERY_VALUE)
	if err != nil {
		return "", err
	}
	defer k.Close()
	v, _, err := k.GetStringValue(descriptorKey)
	return v, err
}

func (r *Registry) SetDescriptor(registryPath, value string) error {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, registryPath, registry.SET_VALUE)
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return fmt.Errorf("%s: %w", registryPath, ErrNotFound)
		}
		return fmt.Errorf("open %s: %w", registryPath, err)
	}
	defer k.Close()
	if err := k.SetStringValue(descriptorKey, value); err != nil {
		return fmt.Errorf("set %s: %w", descriptorKey, err)
	}
	return nil
}

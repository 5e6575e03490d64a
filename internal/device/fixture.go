package device

import (
	"fmt"
	"os"

	"danc/internal/models"

	"gopkg.in/yaml.v3"
)

// Fixture is a registry simulated by a YAML file, so the tool can be driven
// on hosts without a Windows device registry.
//
//	devices:
//	  - deviceId: VEN_10DE&DEV_2484
//	    instanceId: 4&1234&0&0008
//	    currentName: NVIDIA GeForce RTX 3070
//	    registryPath: SYSTEM\CurrentControlSet\Enum\PCI\VEN_10DE&DEV_2484\4&1234&0&0008
type Fixture struct {
	path string
}

type fixtureFile struct {
	Devices []models.DeviceRecord `yaml:"devices"`
}

// NewFixture returns a fixture registry backed by path.
func NewFixture(path string) *Fixture { return &Fixture{path: path} }

func (f *Fixture) read() (fixtureFile, error) {
	var ff fixtureFile
	data, err := os.ReadFile(f.path)
	if err != nil {
		return ff, fmt.Errorf("read fixture: %w", err)
	}
	if err := yaml.Unmarshal(data, &ff); err != nil {
		return ff, fmt.Errorf("parse fixture %s: %w", f.path, err)
	}
	return ff, nil
}

func (f *Fixture) Enumerate() ([]models.DeviceRecord, error) {
	ff, err := f.read()
	if err != nil {
		return nil, err
	}
	return filterAdapters(ff.Devices), nil
}

func (f *Fixture) SetDescriptor(registryPath, value string) error {
	ff, err := f.read()
	if err != nil {
		return err
	}
	found := false
	for i := range ff.Devices {
		if ff.Devices[i].RegistryPath == registryPath {
			ff.Devices[i].CurrentName = value
			found = true
		}
	}
	if !found {
		return fmt.Errorf("%s: %w", registryPath, ErrNotFound)
	}
	data, err := yaml.Marshal(ff)
	if err != nil {
		return fmt.Errorf("marshal fixture: %w", err)
	}
	return os.WriteFile(f.path, data, 0o644)
}

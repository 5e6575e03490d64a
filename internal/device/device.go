// Package device reads display adapters from the device registry and writes
// their descriptors back.
package device

import (
	"errors"
	"strings"

	"danc/internal/models"
)

var (
	ErrUnsupported = errors.New("device registry is not available on this platform")
	ErrNotFound    = errors.New("device not found")
)

// Source enumerates display adapters.
type Source interface {
	Enumerate() ([]models.DeviceRecord, error)
}

// Writer sets the descriptor stored at a registry path.
type Writer interface {
	SetDescriptor(registryPath, value string) error
}

// SourceWriter is implemented by every backend in this package.
type SourceWriter interface {
	Source
	Writer
}

var adapterKeywords = []string{"DISPLAY", "VGA", "GRAPHICS", "VIDEO", "NVIDIA", "AMD", "INTEL", "RADEON", "GEFORCE"}

// IsDisplayAdapter reports whether desc looks like a display adapter
// descriptor.
func IsDisplayAdapter(desc string) bool {
	upper := strings.ToUpper(desc)
	for _, kw := range adapterKeywords {
		if strings.Contains(upper, kw) {
			return true
		}
	}
	return false
}

func filterAdapters(all []models.DeviceRecord) []models.DeviceRecord {
	out := make([]models.DeviceRecord, 0, len(all))
	for _, d := range all {
		if IsDisplayAdapter(d.CurrentName) {
			out = append(out, d)
		}
	}
	return out
}

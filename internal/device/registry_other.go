//go:build !windows

package device

import "danc/internal/models"

// Registry is unavailable outside Windows; use a Fixture instead.
type Registry struct{}

func NewRegistry() *Registry { return &Registry{} }

func (r *Registry) Enumerate() ([]models.DeviceRecord, error) { return nil, ErrUnsupported }

func (r *Registry) SetDescriptor(string, string) error { return ErrUnsupported }

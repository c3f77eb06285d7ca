package presets

import (
	"fmt"

	"github.com/samdwyer/terrainmap/internal/world"
)

// Registry holds loaded presets and provides lookup utilities.
// The default preset is always present and listed first.
type Registry struct {
	presets map[string]*Preset
	all     []Preset
}

// NewRegistry creates a registry from loaded presets. Every preset is
// validated and IDs must be unique.
func NewRegistry(presets []Preset) (*Registry, error) {
	all := make([]Preset, 0, len(presets)+1)
	all = append(all, Preset{
		ID:          DefaultID,
		Name:        "Default",
		Description: "Stock elevation bands with derived moisture",
		Elevation:   world.DefaultConfig(),
	})
	all = append(all, presets...)

	registry := &Registry{
		presets: make(map[string]*Preset, len(all)),
		all:     all,
	}
	for i := range all {
		p := &all[i]
		if _, exists := registry.presets[p.ID]; exists {
			return nil, fmt.Errorf("duplicate preset id %q", p.ID)
		}
		if err := p.Validate(); err != nil {
			return nil, err
		}
		registry.presets[p.ID] = p
	}
	return registry, nil
}

// LoadRegistry loads and creates a registry from the embedded presets.json.
func LoadRegistry() (*Registry, error) {
	presets, err := LoadPresets()
	if err != nil {
		return nil, err
	}
	return NewRegistry(presets)
}

// MustLoadRegistry loads a registry, panicking on error.
func MustLoadRegistry() *Registry {
	registry, err := LoadRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the preset with the given ID, or nil if not found.
func (r *Registry) GetByID(id string) *Preset {
	return r.presets[id]
}

// All returns all presets.
func (r *Registry) All() []Preset {
	return r.all
}

// Count returns the number of presets in the registry.
func (r *Registry) Count() int {
	return len(r.all)
}

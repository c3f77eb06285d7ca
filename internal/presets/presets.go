package presets

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/samdwyer/terrainmap/internal/noise"
	"github.com/samdwyer/terrainmap/internal/world"
)

// DefaultID names the built-in preset backed by world.DefaultConfig.
const DefaultID = "default"

// Preset is a named elevation configuration with an optional moisture noise.
// Fields missing from the JSON keep the world.DefaultConfig values.
type Preset struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Elevation   world.Config  `json:"elevation"`
	Moisture    *noise.Config `json:"moisture,omitempty"`
}

// UnmarshalJSON decodes a preset on top of the default configuration.
func (p *Preset) UnmarshalJSON(data []byte) error {
	type plain Preset
	decoded := plain{Elevation: world.DefaultConfig()}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&decoded); err != nil {
		return err
	}
	*p = Preset(decoded)
	return nil
}

// MoistureNoise returns the preset's moisture noise, or the default pairing
// for its elevation noise when none is given.
func (p *Preset) MoistureNoise() noise.Config {
	if p.Moisture != nil {
		return *p.Moisture
	}
	return world.DefaultMoisture(p.Elevation.Noise)
}

// Validate checks the elevation and moisture configuration.
func (p *Preset) Validate() error {
	if err := p.Elevation.Validate(); err != nil {
		return fmt.Errorf("preset %s: %w", p.ID, err)
	}
	if p.Moisture != nil {
		if err := p.Moisture.Validate(); err != nil {
			return fmt.Errorf("preset %s moisture: %w", p.ID, err)
		}
	}
	return nil
}

// PresetsFile represents the structure of presets.json.
type PresetsFile struct {
	Presets []Preset `json:"presets"`
}

// LoadPresets loads preset definitions from the embedded presets.json file.
func LoadPresets() ([]Preset, error) {
	file, err := Load[PresetsFile]("presets.json")
	if err != nil {
		return nil, err
	}
	return file.Presets, nil
}

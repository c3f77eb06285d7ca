package world

import (
	"errors"
	"fmt"

	"github.com/samdwyer/terrainmap/internal/biome"
	"github.com/samdwyer/terrainmap/internal/noise"
)

const (
	// Default map dimensions
	DefaultWidth  = 128
	DefaultHeight = 128

	moistureLayer = "moisture"
)

var (
	// ErrInvalidConfig is returned for out-of-domain map configuration.
	ErrInvalidConfig = errors.New("invalid map configuration")
	// ErrDimensionMismatch is returned when a moisture grid does not match the elevation grid.
	ErrDimensionMismatch = errors.New("grid dimension mismatch")
	// ErrNotGenerated is returned when moisture is attached before Generate.
	ErrNotGenerated = errors.New("elevation grid not generated")
	// ErrMoistureAttached is returned when moisture is attached twice to the same grid.
	ErrMoistureAttached = errors.New("moisture already attached")
)

// Config holds map generation options. The same shape configures the
// elevation and the moisture generators.
type Config struct {
	Width  int          `json:"width"`
	Height int          `json:"height"`
	Limits biome.Limits `json:"limits"`
	Noise  noise.Config `json:"noise"`

	// Workers bounds the number of rows generated concurrently.
	// 0 means GOMAXPROCS, 1 generates sequentially.
	Workers int `json:"workers,omitempty"`
}

// DefaultConfig returns the stock map configuration.
func DefaultConfig() Config {
	return Config{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Limits: biome.DefaultLimits,
		Noise:  noise.DefaultConfig(),
	}
}

// DefaultMoisture returns the moisture noise paired with an elevation noise:
// the same parameters under a seed derived from the elevation seed.
func DefaultMoisture(elevation noise.Config) noise.Config {
	moisture := elevation
	moisture.Seed = noise.DeriveSeed(elevation.Seed, moistureLayer)
	return moisture
}

// Validate reports the first configuration problem. Errors wrap ErrInvalidConfig
// and, where applicable, the underlying noise or limits error.
func (c Config) Validate() error {
	if c.Width < 1 || c.Height < 1 {
		return fmt.Errorf("%w: dimensions must be positive, got %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.Width > maxCells/c.Height {
		return fmt.Errorf("%w: %dx%d exceeds %d tiles", ErrInvalidConfig, c.Width, c.Height, maxCells)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must be >= 0, got %d", ErrInvalidConfig, c.Workers)
	}
	if err := c.Limits.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := c.Noise.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

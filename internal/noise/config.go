package noise

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

var (
	// ErrUnsupportedAlgorithm is returned when an algorithm is not in the supported set.
	ErrUnsupportedAlgorithm = errors.New("unsupported noise algorithm")
	// ErrInvalidConfig is returned for non-finite or out-of-domain noise parameters.
	ErrInvalidConfig = errors.New("invalid noise configuration")
)

// Config holds the parameters of a noise field.
//
// Scale is the world-to-frequency multiplier applied once to the translated
// coordinate; it is the frequency of the first octave. Lacunarity is the
// per-octave frequency growth and Persistence the per-octave amplitude decay.
type Config struct {
	Algorithm   Algorithm `json:"algorithm"`
	Seed        int64     `json:"seed"`
	Scale       float64   `json:"scale"`
	Octaves     int       `json:"octaves"`
	Persistence float64   `json:"persistence"`
	Lacunarity  float64   `json:"lacunarity"`
	OffsetX     float64   `json:"offsetX"`
	OffsetY     float64   `json:"offsetY"`
}

// DefaultConfig returns the stock elevation noise parameters.
func DefaultConfig() Config {
	return Config{
		Algorithm:   Simplex,
		Scale:       200.0,
		Octaves:     8,
		Persistence: 0.5,
		Lacunarity:  3.0,
	}
}

// Validate reports the first problem with c, wrapped in ErrInvalidConfig or
// ErrUnsupportedAlgorithm.
func (c Config) Validate() error {
	switch c.Algorithm {
	case Simplex, Perlin:
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, c.Algorithm)
	}
	if !positive(c.Scale) {
		return fmt.Errorf("%w: scale must be finite and > 0, got %v", ErrInvalidConfig, c.Scale)
	}
	if c.Octaves < 1 {
		return fmt.Errorf("%w: octaves must be >= 1, got %d", ErrInvalidConfig, c.Octaves)
	}
	if !positive(c.Persistence) {
		return fmt.Errorf("%w: persistence must be finite and > 0, got %v", ErrInvalidConfig, c.Persistence)
	}
	if !positive(c.Lacunarity) {
		return fmt.Errorf("%w: lacunarity must be finite and > 0, got %v", ErrInvalidConfig, c.Lacunarity)
	}
	if !finite(c.OffsetX) || !finite(c.OffsetY) {
		return fmt.Errorf("%w: offsets must be finite, got (%v, %v)", ErrInvalidConfig, c.OffsetX, c.OffsetY)
	}
	return nil
}

// DeriveSeed returns a seed for a named layer that is stable for a given base seed.
func DeriveSeed(seed int64, layer string) int64 {
	return int64(xxhash.Sum64String(strconv.FormatInt(seed, 10) + "/" + layer))
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func positive(v float64) bool {
	return finite(v) && v > 0
}

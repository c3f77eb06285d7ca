package biome

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidLimits is returned when a threshold is not a finite number.
var ErrInvalidLimits = errors.New("invalid noise limits")

// Moisture thresholds within each elevation band.
const (
	swampMoisture = 0.2

	scorchedMoisture = 0.1
	bareMoisture     = 0.2
	tundraMoisture   = 0.5

	dryMoisture = 0.33
	wetMoisture = 0.66

	subtropicalDesertMoisture = 0.16
)

// Limits are the elevation thresholds of the decision tree. They are not
// required to be strictly ordered (Shore equals Sand in the defaults).
// Land is carried for consumers; the classifier never reads it.
type Limits struct {
	Water    float64 `json:"water"`
	Shore    float64 `json:"shore"`
	Sand     float64 `json:"sand"`
	Land     float64 `json:"land"`
	Mountain float64 `json:"mountain"`
	Peak     float64 `json:"peak"`
}

// DefaultLimits are the stock elevation bands.
var DefaultLimits = Limits{
	Water:    -0.72,
	Shore:    -0.44,
	Sand:     -0.44,
	Land:     0.12,
	Mountain: 0.44,
	Peak:     0.72,
}

// Validate checks that every threshold is finite.
func (l Limits) Validate() error {
	thresholds := []struct {
		name  string
		value float64
	}{
		{"water", l.Water}, {"shore", l.Shore}, {"sand", l.Sand},
		{"land", l.Land}, {"mountain", l.Mountain}, {"peak", l.Peak},
	}
	for _, th := range thresholds {
		if math.IsNaN(th.value) || math.IsInf(th.value, 0) {
			return fmt.Errorf("%w: %s is %v", ErrInvalidLimits, th.name, th.value)
		}
	}
	return nil
}

// Classifier maps (elevation, moisture) to a biome.
type Classifier struct {
	limits Limits
}

// NewClassifier creates a classifier for the given limits.
func NewClassifier(limits Limits) (*Classifier, error) {
	if err := limits.Validate(); err != nil {
		return nil, err
	}
	return &Classifier{limits: limits}, nil
}

// Limits returns the thresholds in use.
func (c *Classifier) Limits() Limits {
	return c.limits
}

// Classify returns the biome for a tile. Branches are tested in order and the
// first match wins, so a low wet tile is Swamp even inside the shallows band.
func (c *Classifier) Classify(elevation, moisture float64) Biome {
	l := c.limits

	switch {
	case elevation <= l.Water:
		return Ocean
	case elevation <= l.Sand && moisture >= swampMoisture:
		return Swamp
	case elevation <= l.Shore:
		return Shallows
	case elevation <= l.Sand:
		return Beach
	}

	if elevation > l.Peak {
		switch {
		case moisture < scorchedMoisture:
			return Scorched
		case moisture < bareMoisture:
			return Bare
		case moisture < tundraMoisture:
			return Tundra
		default:
			return Snow
		}
	}

	if elevation > l.Mountain {
		switch {
		case moisture < dryMoisture:
			return TemperateDesert
		case moisture < wetMoisture:
			return Shrubland
		default:
			return Taiga
		}
	}

	switch {
	case moisture < subtropicalDesertMoisture:
		return SubtropicalDesert
	case moisture < dryMoisture:
		return Grassland
	case moisture < wetMoisture:
		return TropicalSeasonalForest
	default:
		return TropicalRainForest
	}
}

// ColorOf returns the RGB of the classified biome.
func (c *Classifier) ColorOf(elevation, moisture float64) [3]uint8 {
	return c.Classify(elevation, moisture).Definition().RGB
}

// NameOf returns the palette name of the classified biome.
func (c *Classifier) NameOf(elevation, moisture float64) string {
	return c.Classify(elevation, moisture).String()
}

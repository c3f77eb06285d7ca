// Package biome classifies tiles into biomes from elevation and moisture.
package biome

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Biome is a terrain category with a fixed display colour.
type Biome int

// The zero value is Void, which Classify never returns.
const (
	Void Biome = iota
	Ocean
	Shallows
	Beach
	Scorched
	Bare
	Tundra
	TemperateDesert
	Shrubland
	Grassland
	TemperateDeciduousForest
	TemperateRainForest
	SubtropicalDesert
	TropicalSeasonalForest
	TropicalRainForest
	Snow
	Taiga
	Swamp

	biomeCount
)

// Definition is the palette entry of a biome.
type Definition struct {
	Name string   `json:"name"`
	RGB  [3]uint8 `json:"rgb"`
}

var definitions = [biomeCount]Definition{
	Void:                     {"VOID", [3]uint8{0, 0, 0}},
	Ocean:                    {"OCEAN", [3]uint8{54, 62, 150}},
	Shallows:                 {"SHALLOWS", [3]uint8{88, 205, 237}},
	Beach:                    {"BEACH", [3]uint8{247, 247, 119}},
	Scorched:                 {"SCORCHED", [3]uint8{247, 149, 119}},
	Bare:                     {"BARE", [3]uint8{168, 166, 165}},
	Tundra:                   {"TUNDRA", [3]uint8{132, 173, 158}},
	TemperateDesert:          {"TEMPERATE_DESERT", [3]uint8{227, 155, 0}},
	Shrubland:                {"SHRUBLAND", [3]uint8{62, 110, 58}},
	Grassland:                {"GRASSLAND", [3]uint8{55, 181, 43}},
	TemperateDeciduousForest: {"TEMPERATE_DECIDUOUS_FOREST", [3]uint8{62, 138, 55}},
	TemperateRainForest:      {"TEMPERATE_RAIN_FOREST", [3]uint8{161, 38, 255}},
	SubtropicalDesert:        {"SUBTROPICAL_DESERT", [3]uint8{255, 214, 153}},
	TropicalSeasonalForest:   {"TROPICAL_SEASONAL_FOREST", [3]uint8{102, 153, 0}},
	TropicalRainForest:       {"TROPICAL_RAIN_FOREST", [3]uint8{255, 0, 119}},
	Snow:                     {"SNOW", [3]uint8{255, 255, 255}},
	Taiga:                    {"TAIGA", [3]uint8{62, 87, 71}},
	Swamp:                    {"SWAMP", [3]uint8{92, 112, 104}},
}

// All returns every biome in palette order, Void first.
func All() []Biome {
	all := make([]Biome, biomeCount)
	for i := range all {
		all[i] = Biome(i)
	}
	return all
}

// Palette returns the full palette keyed by biome name.
func Palette() map[string]Definition {
	palette := make(map[string]Definition, biomeCount)
	for _, def := range definitions {
		palette[def.Name] = def
	}
	return palette
}

// Parse resolves a biome by its palette name.
func Parse(name string) (Biome, error) {
	for i, def := range definitions {
		if def.Name == name {
			return Biome(i), nil
		}
	}
	return Void, fmt.Errorf("unknown biome %q", name)
}

// Valid reports whether b is one of the defined biomes.
func (b Biome) Valid() bool {
	return b >= 0 && b < biomeCount
}

// Definition returns the palette entry, or Void's for an undefined value.
func (b Biome) Definition() Definition {
	if !b.Valid() {
		return definitions[Void]
	}
	return definitions[b]
}

// String returns the palette name.
func (b Biome) String() string {
	return b.Definition().Name
}

// RGB returns the display colour components.
func (b Biome) RGB() (r, g, bl uint8) {
	rgb := b.Definition().RGB
	return rgb[0], rgb[1], rgb[2]
}

// Color returns the display colour for colour-space work.
func (b Biome) Color() colorful.Color {
	r, g, bl := b.RGB()
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(bl) / 255}
}

// Hex returns the display colour as "#rrggbb".
func (b Biome) Hex() string {
	return b.Color().Hex()
}

// TCellColor returns the display colour for terminal consumers.
func (b Biome) TCellColor() tcell.Color {
	r, g, bl := b.RGB()
	return tcell.NewRGBColor(int32(r), int32(g), int32(bl))
}

// MarshalText implements encoding.TextMarshaler.
func (b Biome) MarshalText() ([]byte, error) {
	if !b.Valid() {
		return nil, fmt.Errorf("undefined biome %d", int(b))
	}
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *Biome) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

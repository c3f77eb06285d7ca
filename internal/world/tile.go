// Package world provides noise grid generation and terrain map composition.
package world

import "github.com/samdwyer/terrainmap/internal/biome"

// Tile is the read-only record of one grid cell. MoistureValue and Biome are
// nil until a moisture grid has been attached.
type Tile struct {
	NoiseValue    float64      `json:"noiseValue"`
	MoistureValue *float64     `json:"moistureValue,omitempty"`
	Biome         *biome.Biome `json:"biome,omitempty"`
}

// Classified returns true if the tile carries moisture and a biome.
func (t Tile) Classified() bool {
	return t.MoistureValue != nil && t.Biome != nil
}

// cell is the internal storage of a tile.
type cell struct {
	elevation  float64
	moisture   float64
	biome      biome.Biome
	classified bool
}

// tile returns a fresh Tile that shares no memory with the cell.
func (c cell) tile() Tile {
	t := Tile{NoiseValue: c.elevation}
	if c.classified {
		moisture, b := c.moisture, c.biome
		t.MoistureValue = &moisture
		t.Biome = &b
	}
	return t
}

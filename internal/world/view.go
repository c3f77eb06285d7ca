package world

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/terrainmap/internal/biome"
	"github.com/samdwyer/terrainmap/internal/noise"
	"github.com/samdwyer/terrainmap/internal/telemetry"
)

// Offsets is the world-space translation of a map.
type Offsets struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// View is the structured, serializable form of a terrain map.
// It shares no memory with the map it was taken from.
type View struct {
	Width     int                         `json:"width"`
	Height    int                         `json:"height"`
	Algorithm noise.Algorithm             `json:"algorithm"`
	Scale     float64                     `json:"scale"`
	Octaves   int                         `json:"octaves"`
	Limits    biome.Limits                `json:"limits"`
	Offsets   Offsets                     `json:"offsets"`
	Biomes    map[string]biome.Definition `json:"biomes"`
	Tiles     [][]Tile                    `json:"tiles"`
}

// View returns the structured form of the map.
func (m *TerrainMap) View() View {
	nc := m.cfg.Noise
	return View{
		Width:     m.cfg.Width,
		Height:    m.cfg.Height,
		Algorithm: nc.Algorithm,
		Scale:     nc.Scale,
		Octaves:   nc.Octaves,
		Limits:    m.cfg.Limits,
		Offsets:   Offsets{X: nc.OffsetX, Y: nc.OffsetY},
		Biomes:    biome.Palette(),
		Tiles:     m.Tiles(),
	}
}

// MarshalJSON implements json.Marshaler by encoding View.
func (m *TerrainMap) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.View())
}

// WriteJSON encodes the view to w.
func (m *TerrainMap) WriteJSON(ctx context.Context, w io.Writer, indent bool) error {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "terrain.encode")
	defer span.End()

	span.SetAttributes(
		attribute.String("terrain.id", m.id.String()),
		attribute.Bool("terrain.indent", indent),
	)

	enc := json.NewEncoder(w)
	if indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(m.View()); err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to encode terrain map: %w", err)
	}
	return nil
}

// ParseView decodes serialized text back into a View and checks that the
// tile rows match the declared dimensions.
func ParseView(data []byte) (View, error) {
	var v View
	if err := json.Unmarshal(data, &v); err != nil {
		return View{}, fmt.Errorf("failed to parse terrain map: %w", err)
	}
	if len(v.Tiles) == 0 {
		return v, nil
	}
	if len(v.Tiles) != v.Height {
		return View{}, fmt.Errorf("%w: %d tile rows, height is %d", ErrDimensionMismatch, len(v.Tiles), v.Height)
	}
	for y, row := range v.Tiles {
		if len(row) != v.Width {
			return View{}, fmt.Errorf("%w: row %d has %d tiles, width is %d",
				ErrDimensionMismatch, y, len(row), v.Width)
		}
	}
	return v, nil
}

package world

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/go-logr/logr"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/terrainmap/internal/biome"
	"github.com/samdwyer/terrainmap/internal/noise"
	"github.com/samdwyer/terrainmap/internal/telemetry"
)

// TerrainMap composes an elevation grid with a moisture grid and assigns
// a biome to every tile.
type TerrainMap struct {
	id         uuid.UUID
	cfg        Config
	elevation  *GridMap
	classifier *biome.Classifier

	cells     []cell
	generated bool
	moisture  bool
}

// New validates cfg and creates an empty terrain map.
func New(cfg Config) (*TerrainMap, error) {
	elevation, err := NewGridMap(cfg)
	if err != nil {
		return nil, err
	}
	classifier, err := biome.NewClassifier(cfg.Limits)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return &TerrainMap{
		id:         uuid.New(),
		cfg:        cfg,
		elevation:  elevation,
		classifier: classifier,
	}, nil
}

// ID returns the identifier of this map instance.
func (m *TerrainMap) ID() uuid.UUID {
	return m.id
}

// Config returns the elevation configuration.
func (m *TerrainMap) Config() Config {
	return m.cfg
}

// Classifier returns the classifier used for attached moisture.
func (m *TerrainMap) Classifier() *biome.Classifier {
	return m.classifier
}

// Generated returns true once Generate has run.
func (m *TerrainMap) Generated() bool {
	return m.generated
}

// HasMoisture returns true once a moisture grid has been merged.
func (m *TerrainMap) HasMoisture() bool {
	return m.moisture
}

// Generate builds the elevation grid. Calling it again replaces every tile
// with freshly generated, unclassified ones.
func (m *TerrainMap) Generate(ctx context.Context) {
	tracer := telemetry.Tracer("world")
	ctx, span := tracer.Start(ctx, "terrain.generate")
	defer span.End()

	grid := m.elevation.Generate(ctx)

	cells := make([]cell, len(grid.values))
	for i, v := range grid.values {
		cells[i] = cell{elevation: v}
	}
	m.cells = cells
	m.generated = true
	m.moisture = false

	span.SetAttributes(
		attribute.String("terrain.id", m.id.String()),
		attribute.Int("terrain.tiles", len(cells)),
		attribute.Int64("terrain.checksum", int64(grid.Checksum())),
	)
}

// WithMoisture attaches moisture generated from DefaultMoisture of the
// elevation noise.
func (m *TerrainMap) WithMoisture(ctx context.Context) error {
	return m.AttachMoistureConfig(ctx, DefaultMoisture(m.cfg.Noise))
}

// AttachMoistureConfig generates a moisture grid with the elevation map's
// dimensions and the given noise, then merges it.
func (m *TerrainMap) AttachMoistureConfig(ctx context.Context, cfg noise.Config) error {
	if !m.generated {
		return ErrNotGenerated
	}

	moistureCfg := m.cfg
	moistureCfg.Noise = cfg
	gm, err := NewGridMap(moistureCfg)
	if err != nil {
		return err
	}
	return m.AttachMoisture(ctx, gm.Generate(ctx))
}

// AttachMoisture merges a pre-generated moisture grid. The grid must match
// the elevation dimensions exactly and hold only finite values; both grids
// are addressed by the same (x, y).
// The grid is not retained.
func (m *TerrainMap) AttachMoisture(ctx context.Context, grid *Grid) error {
	tracer := telemetry.Tracer("world")
	ctx, span := tracer.Start(ctx, "terrain.attach_moisture")
	defer span.End()

	if !m.generated {
		return ErrNotGenerated
	}
	if m.moisture {
		return ErrMoistureAttached
	}
	if grid == nil || grid.Width != m.cfg.Width || grid.Height != m.cfg.Height {
		width, height := 0, 0
		if grid != nil {
			width, height = grid.Width, grid.Height
		}
		err := fmt.Errorf("%w: moisture is %dx%d, elevation is %dx%d",
			ErrDimensionMismatch, width, height, m.cfg.Width, m.cfg.Height)
		span.RecordError(err)
		return err
	}

	for i, v := range grid.values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			err := fmt.Errorf("%w: moisture at (%d,%d) is %v",
				ErrInvalidConfig, i%grid.Width, i/grid.Width, v)
			span.RecordError(err)
			return err
		}
	}

	startTime := time.Now()
	counts := make(map[biome.Biome]int)
	for y := 0; y < m.cfg.Height; y++ {
		for x := 0; x < m.cfg.Width; x++ {
			c := &m.cells[m.index(x, y)]
			c.moisture = grid.At(x, y)
			c.biome = m.classifier.Classify(c.elevation, c.moisture)
			c.classified = true
			counts[c.biome]++
		}
	}
	m.moisture = true

	span.SetAttributes(
		attribute.String("terrain.id", m.id.String()),
		attribute.Int("terrain.distinct_biomes", len(counts)),
		attribute.Int64("terrain.merge_ms", time.Since(startTime).Milliseconds()),
	)
	logr.FromContextOrDiscard(ctx).V(1).Info("moisture attached",
		"id", m.id.String(), "distinctBiomes", len(counts))

	return nil
}

// Tile returns the tile at (x, y).
func (m *TerrainMap) Tile(x, y int) (Tile, bool) {
	if !m.generated || x < 0 || x >= m.cfg.Width || y < 0 || y >= m.cfg.Height {
		return Tile{}, false
	}
	return m.cells[m.index(x, y)].tile(), true
}

// BiomeAt returns the biome at (x, y), or Void where there is none.
func (m *TerrainMap) BiomeAt(x, y int) biome.Biome {
	if !m.moisture || x < 0 || x >= m.cfg.Width || y < 0 || y >= m.cfg.Height {
		return biome.Void
	}
	return m.cells[m.index(x, y)].biome
}

// Tiles returns a copy of the tiles as height rows of width columns.
// It is empty before Generate.
func (m *TerrainMap) Tiles() [][]Tile {
	if !m.generated {
		return [][]Tile{}
	}
	rows := make([][]Tile, m.cfg.Height)
	for y := range rows {
		rows[y] = make([]Tile, m.cfg.Width)
		for x := range rows[y] {
			rows[y][x] = m.cells[m.index(x, y)].tile()
		}
	}
	return rows
}

func (m *TerrainMap) index(x, y int) int {
	return y*m.cfg.Width + x
}

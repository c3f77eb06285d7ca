package world

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/go-logr/logr"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/samdwyer/terrainmap/internal/noise"
	"github.com/samdwyer/terrainmap/internal/telemetry"
)

// GridMap samples a noise field at every tile coordinate.
type GridMap struct {
	Width   int
	Height  int
	field   *noise.Field
	workers int
}

// NewGridMap validates cfg and builds the generator. Invalid or unsupported
// noise settings fail here rather than at generation time.
func NewGridMap(cfg Config) (*GridMap, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	field, err := noise.NewField(cfg.Noise)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	workers := cfg.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	return &GridMap{
		Width:   cfg.Width,
		Height:  cfg.Height,
		field:   field,
		workers: workers,
	}, nil
}

// Noise returns the noise configuration of the generator.
func (m *GridMap) Noise() noise.Config {
	return m.field.Config()
}

// Generate returns a fresh grid where cell (x, y) holds the field sampled at
// the tile indices (x, y). Rows are sharded across workers; each writes only
// its own row, so the result is identical to a sequential pass.
func (m *GridMap) Generate(ctx context.Context) *Grid {
	tracer := telemetry.Tracer("world")
	ctx, span := tracer.Start(ctx, "grid.generate")
	defer span.End()

	startTime := time.Now()
	grid := newGrid(m.Width, m.Height)

	var g errgroup.Group
	g.SetLimit(m.workers)
	for y := 0; y < m.Height; y++ {
		row := grid.values[y*m.Width : (y+1)*m.Width]
		g.Go(func() error {
			for x := range row {
				row[x] = m.field.Sample(float64(x), float64(y))
			}
			return nil
		})
	}
	// Row tasks never fail.
	_ = g.Wait()

	cfg := m.field.Config()
	elapsed := time.Since(startTime)
	span.SetAttributes(
		attribute.Int("grid.width", m.Width),
		attribute.Int("grid.height", m.Height),
		attribute.String("grid.algorithm", cfg.Algorithm.String()),
		attribute.Int("grid.octaves", cfg.Octaves),
		attribute.Int64("grid.seed", cfg.Seed),
		attribute.Int("grid.workers", m.workers),
		attribute.Int64("grid.generation_ms", elapsed.Milliseconds()),
	)
	logr.FromContextOrDiscard(ctx).V(1).Info("grid generated",
		"width", m.Width, "height", m.Height, "seed", cfg.Seed, "elapsed", elapsed)

	return grid
}

// Package main is the entry point for the terrainmap generator.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/go-logr/logr"
	"github.com/joho/godotenv"

	"github.com/samdwyer/terrainmap/internal/biome"
	"github.com/samdwyer/terrainmap/internal/noise"
	"github.com/samdwyer/terrainmap/internal/presets"
	"github.com/samdwyer/terrainmap/internal/telemetry"
	"github.com/samdwyer/terrainmap/internal/world"
)

// version is set at build time with -ldflags "-X main.version=...".
var version string

// options are the command-line overrides applied on top of a preset.
// Zero values leave the preset untouched.
type options struct {
	preset       string
	width        int
	height       int
	seed         int64
	seedSet      bool
	moistureSeed int64
	algorithm    string
	workers      int
	indent       bool
	legend       bool
	verbosity    int
	sampleRatio  float64
}

func main() {
	exitCode := 0
	// Registered first so deferred telemetry shutdown runs before exiting
	defer func() { os.Exit(exitCode) }()

	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	opts, err := parseOptions(os.Args[1:])
	if err != nil {
		log.Printf("Invalid arguments: %v", err)
		exitCode = 2
		return
	}

	logger := telemetry.Logger(opts.verbosity)
	ctx := logr.NewContext(context.Background(), logger)

	if setupOTelEnv() {
		telemetry.SetLogger(logger)
		shutdown, err := telemetry.Setup(ctx, telemetryOptions(opts))
		if err != nil {
			logger.Error(err, "telemetry setup failed, running without observability")
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					logger.Error(err, "shutting down telemetry")
				}
			}()
		}
	}

	if opts.legend {
		writeLegend(os.Stdout)
		return
	}

	if err := run(ctx, opts, os.Stdout); err != nil {
		logger.Error(err, "generation failed")
		exitCode = 1
	}
}

func parseOptions(args []string) (options, error) {
	opts := options{preset: os.Getenv("TERRAINMAP_PRESET")}
	if opts.preset == "" {
		opts.preset = presets.DefaultID
	}
	if env := os.Getenv("TERRAINMAP_SEED"); env != "" {
		seed, err := strconv.ParseInt(env, 10, 64)
		if err != nil {
			return opts, fmt.Errorf("TERRAINMAP_SEED: %w", err)
		}
		opts.seed, opts.seedSet = seed, true
	}

	fs := flag.NewFlagSet("terrainmap", flag.ContinueOnError)
	fs.StringVar(&opts.preset, "preset", opts.preset, "generation preset id")
	fs.IntVar(&opts.width, "width", 0, "map width in tiles (0 keeps the preset)")
	fs.IntVar(&opts.height, "height", 0, "map height in tiles (0 keeps the preset)")
	fs.Int64Var(&opts.moistureSeed, "moisture_seed", 0, "moisture seed (0 derives it from the elevation seed)")
	fs.StringVar(&opts.algorithm, "algorithm", "", "noise algorithm: simplex or perlin")
	fs.IntVar(&opts.workers, "workers", 0, "rows generated concurrently (0 uses GOMAXPROCS)")
	fs.BoolVar(&opts.indent, "indent", false, "indent the JSON output")
	fs.BoolVar(&opts.legend, "legend", false, "print the biome palette and exit")
	fs.IntVar(&opts.verbosity, "v", 0, "log verbosity")
	fs.Float64Var(&opts.sampleRatio, "trace_sample", 0, "fraction of traces exported (0 exports all)")
	seed := fs.Int64("seed", opts.seed, "elevation seed")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			opts.seedSet = true
		}
	})
	opts.seed = *seed
	return opts, nil
}

// resolve turns the preset and overrides into elevation and moisture settings.
func resolve(opts options) (world.Config, noise.Config, error) {
	registry, err := presets.LoadRegistry()
	if err != nil {
		return world.Config{}, noise.Config{}, err
	}
	p := registry.GetByID(opts.preset)
	if p == nil {
		return world.Config{}, noise.Config{}, fmt.Errorf("unknown preset %q", opts.preset)
	}

	cfg := p.Elevation
	if opts.width > 0 {
		cfg.Width = opts.width
	}
	if opts.height > 0 {
		cfg.Height = opts.height
	}
	if opts.algorithm != "" {
		alg, err := noise.ParseAlgorithm(opts.algorithm)
		if err != nil {
			return world.Config{}, noise.Config{}, err
		}
		cfg.Noise.Algorithm = alg
	}
	if opts.seedSet {
		cfg.Noise.Seed = opts.seed
	}
	cfg.Workers = opts.workers

	// Moisture follows the elevation overrides; a preset's own moisture
	// keeps its shape but picks up a new seed or algorithm.
	moisture := world.DefaultMoisture(cfg.Noise)
	if p.Moisture != nil {
		moisture = *p.Moisture
		if opts.seedSet {
			moisture.Seed = world.DefaultMoisture(cfg.Noise).Seed
		}
		if opts.algorithm != "" {
			moisture.Algorithm = cfg.Noise.Algorithm
		}
	}
	if opts.moistureSeed != 0 {
		moisture.Seed = opts.moistureSeed
	}
	return cfg, moisture, nil
}

func run(ctx context.Context, opts options, w io.Writer) error {
	cfg, moisture, err := resolve(opts)
	if err != nil {
		return err
	}

	m, err := world.New(cfg)
	if err != nil {
		return err
	}

	logger := logr.FromContextOrDiscard(ctx).WithValues("id", m.ID().String(), "preset", opts.preset)
	logger.Info("generating terrain",
		"width", cfg.Width, "height", cfg.Height,
		"algorithm", cfg.Noise.Algorithm.String(), "seed", cfg.Noise.Seed)

	m.Generate(ctx)
	if err := m.AttachMoistureConfig(ctx, moisture); err != nil {
		return fmt.Errorf("moisture: %w", err)
	}

	return m.WriteJSON(ctx, w, opts.indent)
}

// writeLegend prints every palette entry with its colour.
func writeLegend(w io.Writer) {
	for _, b := range biome.All() {
		r, g, bl := b.RGB()
		fmt.Fprintf(w, "%-28s %s  rgb(%d, %d, %d)\n", b, b.Hex(), r, g, bl)
	}
}

// telemetryOptions reports the build version, falling back to
// TERRAINMAP_VERSION for builds without ldflags.
func telemetryOptions(opts options) telemetry.Options {
	v := version
	if v == "" {
		v = os.Getenv("TERRAINMAP_VERSION")
	}
	return telemetry.Options{
		ServiceVersion: v,
		SampleRatio:    opts.sampleRatio,
	}
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
// It returns false when no API key is set and tracing should stay disabled.
func setupOTelEnv() bool {
	apiKey := os.Getenv("HONEYCOMB_TERRAINMAP_API_KEY")
	if apiKey == "" {
		return false
	}

	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	dataset := os.Getenv("HONEYCOMB_TERRAINMAP_DATASET")
	if dataset == "" {
		dataset = "terrainmap" // default dataset name
	}
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	return true
}

package noise

import (
	"fmt"
	"math"
)

// Field samples multi-octave noise. It holds no mutable state and is safe
// for concurrent use.
type Field struct {
	cfg         Config
	src         Source
	frequencies []float64
	amplitudes  []float64
	norm        float64
}

// NewField validates cfg and builds the field for its algorithm.
func NewField(cfg Config) (*Field, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	src, err := newSource(cfg.Algorithm, cfg.Seed)
	if err != nil {
		return nil, err
	}
	return newFieldWithSource(cfg, src)
}

func newFieldWithSource(cfg Config, src Source) (*Field, error) {
	f := &Field{
		cfg:         cfg,
		src:         src,
		frequencies: make([]float64, cfg.Octaves),
		amplitudes:  make([]float64, cfg.Octaves),
	}

	frequency, amplitude := cfg.Scale, 1.0
	for i := 0; i < cfg.Octaves; i++ {
		if !finite(frequency) {
			return nil, fmt.Errorf("%w: octave %d frequency overflows", ErrInvalidConfig, i)
		}
		f.frequencies[i] = frequency
		f.amplitudes[i] = amplitude
		f.norm += amplitude
		frequency *= cfg.Lacunarity
		amplitude *= cfg.Persistence
	}
	if !positive(f.norm) {
		return nil, fmt.Errorf("%w: amplitude sum is %v", ErrInvalidConfig, f.norm)
	}
	return f, nil
}

// Config returns the configuration the field was built with.
func (f *Field) Config() Config {
	return f.cfg
}

// Sample returns the normalized noise value at (x, y), in [-1, 1].
func (f *Field) Sample(x, y float64) float64 {
	px := x + f.cfg.OffsetX
	py := y + f.cfg.OffsetY

	var sum float64
	for i, frequency := range f.frequencies {
		sum += f.amplitudes[i] * f.src.Eval2(px*frequency, py*frequency)
	}
	return clamp(sum/f.norm, -1, 1)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Package noise provides multi-octave coherent noise fields.
package noise

import (
	"fmt"
	"strings"

	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// Algorithm identifies a coherent noise primitive.
type Algorithm int

const (
	// Simplex is OpenSimplex noise.
	Simplex Algorithm = iota
	// Perlin is classic gradient noise.
	Perlin
)

// Source is a single-octave coherent noise primitive.
// Eval2 must be safe for concurrent use and return values roughly in [-1, 1].
type Source interface {
	Eval2(x, y float64) float64
}

// String returns the wire name of the algorithm.
func (a Algorithm) String() string {
	switch a {
	case Simplex:
		return "simplex"
	case Perlin:
		return "perlin"
	default:
		return fmt.Sprintf("algorithm(%d)", int(a))
	}
}

// ParseAlgorithm resolves a wire name (case-insensitive) to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "simplex":
		return Simplex, nil
	case "perlin":
		return Perlin, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, name)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (a Algorithm) MarshalText() ([]byte, error) {
	switch a {
	case Simplex, Perlin:
		return []byte(a.String()), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, a)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Algorithm) UnmarshalText(text []byte) error {
	parsed, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// newSource builds the primitive for an algorithm. This is the only place
// that switches on Algorithm; adding a case here is all a new primitive needs.
func newSource(a Algorithm, seed int64) (Source, error) {
	switch a {
	case Simplex:
		return opensimplex.New(seed), nil
	case Perlin:
		// n=1 keeps go-perlin to a single octave; Field does the layering.
		return perlinSource{p: perlin.NewPerlin(2, 2, 1, seed)}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, a)
	}
}

// perlinShift moves samples off the integer lattice, where gradient noise is
// always 0. Integral scale, lacunarity and offsets otherwise flatten the map.
const perlinShift = 0.3183098861837907

type perlinSource struct {
	p *perlin.Perlin
}

func (s perlinSource) Eval2(x, y float64) float64 {
	return s.p.Noise2D(x+perlinShift, y+perlinShift)
}

package noise

import (
	"errors"
	"math"
	"testing"
)

// constSource returns the same value everywhere.
type constSource float64

func (c constSource) Eval2(x, y float64) float64 { return float64(c) }

// xSource returns its x argument, exposing the coordinate the field passes down.
type xSource struct{}

func (xSource) Eval2(x, y float64) float64 { return x }

func testConfig(alg Algorithm) Config {
	cfg := DefaultConfig()
	cfg.Algorithm = alg
	cfg.Seed = 12345
	cfg.Scale = 0.05
	cfg.Lacunarity = 2.0
	return cfg
}

func TestFieldRange(t *testing.T) {
	for _, alg := range []Algorithm{Simplex, Perlin} {
		f, err := NewField(testConfig(alg))
		if err != nil {
			t.Fatalf("%s: NewField failed: %v", alg, err)
		}
		for y := 0; y < 64; y++ {
			for x := 0; x < 64; x++ {
				v := f.Sample(float64(x), float64(y))
				if v < -1 || v > 1 || math.IsNaN(v) {
					t.Fatalf("%s: Sample(%d,%d) = %f, out of [-1,1]", alg, x, y, v)
				}
			}
		}
	}
}

func TestFieldDeterminism(t *testing.T) {
	for _, alg := range []Algorithm{Simplex, Perlin} {
		f1, _ := NewField(testConfig(alg))
		f2, _ := NewField(testConfig(alg))
		for i := 0; i < 100; i++ {
			x := float64(i) * 0.37
			y := float64(i) * 0.53
			if f1.Sample(x, y) != f2.Sample(x, y) {
				t.Fatalf("%s: Sample not deterministic at (%f, %f)", alg, x, y)
			}
		}
	}
}

func TestFieldSeedMatters(t *testing.T) {
	cfg1 := testConfig(Simplex)
	cfg2 := testConfig(Simplex)
	cfg2.Seed = 54321

	f1, _ := NewField(cfg1)
	f2, _ := NewField(cfg2)

	for i := 0; i < 100; i++ {
		x, y := float64(i)*1.3, float64(i)*0.7
		if f1.Sample(x, y) != f2.Sample(x, y) {
			return
		}
	}
	t.Error("Fields with different seeds should not be identical")
}

func TestFieldNormalization(t *testing.T) {
	cfg := testConfig(Simplex)
	cfg.Octaves = 6
	cfg.Persistence = 0.9

	f, err := newFieldWithSource(cfg, constSource(0.5))
	if err != nil {
		t.Fatalf("newFieldWithSource failed: %v", err)
	}
	if got := f.Sample(10, 10); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("Expected normalized 0.5, got %f", got)
	}

	f, _ = newFieldWithSource(cfg, constSource(1))
	if got := f.Sample(0, 0); got != 1 {
		t.Errorf("Expected 1 at full amplitude, got %f", got)
	}
}

func TestFieldOffsetAppliedBeforeScale(t *testing.T) {
	cfg := testConfig(Simplex)
	cfg.Octaves = 1
	cfg.Scale = 2
	cfg.OffsetX = 3

	f, err := newFieldWithSource(cfg, xSource{})
	if err != nil {
		t.Fatalf("newFieldWithSource failed: %v", err)
	}

	// (x + offsetX) * scale = (-2.75 + 3) * 2
	if got := f.Sample(-2.75, 0); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("Expected 0.5, got %f", got)
	}
}

func TestFieldOctaveFrequencies(t *testing.T) {
	cfg := testConfig(Simplex)
	cfg.Octaves = 3
	cfg.Scale = 0.5
	cfg.Lacunarity = 3
	cfg.Persistence = 0.5

	f, err := newFieldWithSource(cfg, xSource{})
	if err != nil {
		t.Fatalf("newFieldWithSource failed: %v", err)
	}

	// octaves at frequency 0.5, 1.5, 4.5 with amplitudes 1, 0.5, 0.25
	x := 0.1
	want := (1*0.5*x + 0.5*1.5*x + 0.25*4.5*x) / 1.75
	if got := f.Sample(x, 0); math.Abs(got-want) > 1e-12 {
		t.Errorf("Expected %f, got %f", want, got)
	}
}

func TestOffsetEquivalence(t *testing.T) {
	shifted := testConfig(Simplex)
	shifted.OffsetX = 7
	shifted.OffsetY = -3

	f1, _ := NewField(testConfig(Simplex))
	f2, _ := NewField(shifted)

	for i := 0; i < 20; i++ {
		x, y := float64(i), float64(i*2)
		if f1.Sample(x+7, y-3) != f2.Sample(x, y) {
			t.Fatalf("Offset field mismatch at (%f, %f)", x, y)
		}
	}
}

func TestInvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		want   error
	}{
		{"zero scale", func(c *Config) { c.Scale = 0 }, ErrInvalidConfig},
		{"negative scale", func(c *Config) { c.Scale = -1 }, ErrInvalidConfig},
		{"nan scale", func(c *Config) { c.Scale = math.NaN() }, ErrInvalidConfig},
		{"zero octaves", func(c *Config) { c.Octaves = 0 }, ErrInvalidConfig},
		{"negative octaves", func(c *Config) { c.Octaves = -2 }, ErrInvalidConfig},
		{"inf persistence", func(c *Config) { c.Persistence = math.Inf(1) }, ErrInvalidConfig},
		{"zero persistence", func(c *Config) { c.Persistence = 0 }, ErrInvalidConfig},
		{"zero lacunarity", func(c *Config) { c.Lacunarity = 0 }, ErrInvalidConfig},
		{"nan offset", func(c *Config) { c.OffsetY = math.NaN() }, ErrInvalidConfig},
		{"overflowing frequency", func(c *Config) { c.Lacunarity = 1e300; c.Octaves = 4 }, ErrInvalidConfig},
		{"unknown algorithm", func(c *Config) { c.Algorithm = Algorithm(42) }, ErrUnsupportedAlgorithm},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			_, err := NewField(cfg)
			if !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestParseAlgorithm(t *testing.T) {
	tests := map[string]Algorithm{
		"simplex": Simplex,
		"Simplex": Simplex,
		"perlin":  Perlin,
	}
	for name, want := range tests {
		got, err := ParseAlgorithm(name)
		if err != nil {
			t.Errorf("ParseAlgorithm(%q) failed: %v", name, err)
		}
		if got != want {
			t.Errorf("ParseAlgorithm(%q) = %s, want %s", name, got, want)
		}
	}

	if _, err := ParseAlgorithm("worley"); !errors.Is(err, ErrUnsupportedAlgorithm) {
		t.Errorf("Expected ErrUnsupportedAlgorithm, got %v", err)
	}
}

func TestAlgorithmText(t *testing.T) {
	text, err := Simplex.MarshalText()
	if err != nil || string(text) != "simplex" {
		t.Errorf("MarshalText = %q, %v", text, err)
	}

	var a Algorithm
	if err := a.UnmarshalText([]byte("perlin")); err != nil || a != Perlin {
		t.Errorf("UnmarshalText = %s, %v", a, err)
	}

	if _, err := Algorithm(9).MarshalText(); !errors.Is(err, ErrUnsupportedAlgorithm) {
		t.Errorf("Expected ErrUnsupportedAlgorithm, got %v", err)
	}
}

func TestDeriveSeed(t *testing.T) {
	if DeriveSeed(1, "moisture") != DeriveSeed(1, "moisture") {
		t.Error("DeriveSeed not deterministic")
	}
	if DeriveSeed(1, "moisture") == DeriveSeed(2, "moisture") {
		t.Error("DeriveSeed should differ for different seeds")
	}
	if DeriveSeed(1, "moisture") == DeriveSeed(1, "temperature") {
		t.Error("DeriveSeed should differ for different layers")
	}
}

func TestPerlinVariesOnIntegerLattice(t *testing.T) {
	// Integral scale and lacunarity put every tile on the gradient lattice
	cfg := DefaultConfig()
	cfg.Algorithm = Perlin

	f, err := NewField(cfg)
	if err != nil {
		t.Fatalf("NewField failed: %v", err)
	}

	distinct := make(map[float64]bool)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			distinct[f.Sample(float64(x), float64(y))] = true
		}
	}
	if len(distinct) < 2 {
		t.Errorf("Expected varying samples, got %v", distinct)
	}
}

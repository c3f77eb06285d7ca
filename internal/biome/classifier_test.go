package biome

import (
	"errors"
	"math"
	"testing"
)

func newDefaultClassifier(t *testing.T) *Classifier {
	t.Helper()
	c, err := NewClassifier(DefaultLimits)
	if err != nil {
		t.Fatalf("NewClassifier failed: %v", err)
	}
	return c
}

func TestClassifyKnownPoints(t *testing.T) {
	c := newDefaultClassifier(t)

	tests := []struct {
		elevation, moisture float64
		want                Biome
	}{
		{-0.9, 0.0, Ocean},
		{-0.72, 1.0, Ocean},
		{-0.5, 0.3, Swamp},
		{-0.5, 0.2, Swamp},
		{-0.5, 0.1, Shallows},
		{-0.44, 0.19, Shallows},
		{0.8, 0.05, Scorched},
		{0.8, 0.15, Bare},
		{0.8, 0.4, Tundra},
		{0.8, 0.9, Snow},
		{0.5, 0.1, TemperateDesert},
		{0.5, 0.5, Shrubland},
		{0.5, 0.7, Taiga},
		{0.72, 0.7, Taiga},
		{0.44, 0.7, TropicalRainForest},
		{0.0, 0.1, SubtropicalDesert},
		{0.0, 0.2, Grassland},
		{0.0, 0.5, TropicalSeasonalForest},
		{0.0, 0.9, TropicalRainForest},
	}

	for _, tt := range tests {
		if got := c.Classify(tt.elevation, tt.moisture); got != tt.want {
			t.Errorf("Classify(%v, %v) = %s, want %s", tt.elevation, tt.moisture, got, tt.want)
		}
	}
}

func TestClassifyOceanForAllMoisture(t *testing.T) {
	c := newDefaultClassifier(t)
	for e := -1.0; e <= DefaultLimits.Water; e += 0.01 {
		for m := -1.0; m <= 1.0; m += 0.05 {
			if got := c.Classify(e, m); got != Ocean {
				t.Fatalf("Classify(%v, %v) = %s, want OCEAN", e, m, got)
			}
		}
	}
}

func TestClassifyBeachReachable(t *testing.T) {
	// With shore below sand the beach band opens up.
	limits := DefaultLimits
	limits.Shore = -0.6

	c, err := NewClassifier(limits)
	if err != nil {
		t.Fatalf("NewClassifier failed: %v", err)
	}
	if got := c.Classify(-0.5, 0.1); got != Beach {
		t.Errorf("Classify(-0.5, 0.1) = %s, want BEACH", got)
	}
	if got := c.Classify(-0.5, 0.3); got != Swamp {
		t.Errorf("Classify(-0.5, 0.3) = %s, want SWAMP", got)
	}
}

func TestClassifyNeverVoid(t *testing.T) {
	c := newDefaultClassifier(t)
	for e := -2.0; e <= 2.0; e += 0.02 {
		for m := -2.0; m <= 2.0; m += 0.02 {
			got := c.Classify(e, m)
			if got == Void || !got.Valid() {
				t.Fatalf("Classify(%v, %v) = %v", e, m, got)
			}
		}
	}

	if got := c.Classify(math.NaN(), math.NaN()); got == Void || !got.Valid() {
		t.Errorf("Classify(NaN, NaN) = %v", got)
	}
}

func TestProjections(t *testing.T) {
	c := newDefaultClassifier(t)

	if got := c.NameOf(-0.5, 0.3); got != "SWAMP" {
		t.Errorf("NameOf = %q, want SWAMP", got)
	}
	if got := c.ColorOf(0.8, 0.9); got != [3]uint8{255, 255, 255} {
		t.Errorf("ColorOf = %v, want white", got)
	}
}

func TestInvalidLimits(t *testing.T) {
	limits := DefaultLimits
	limits.Peak = math.Inf(1)

	if _, err := NewClassifier(limits); !errors.Is(err, ErrInvalidLimits) {
		t.Errorf("Expected ErrInvalidLimits, got %v", err)
	}
}

package world

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Grid is a width x height scalar grid stored row-major (index = y*width + x).
type Grid struct {
	Width  int
	Height int
	values []float64
}

// maxCells bounds width*height so the backing slice length cannot overflow.
const maxCells = math.MaxInt32

// NewGrid creates a zeroed grid. Both dimensions must be positive.
func NewGrid(width, height int) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: grid dimensions must be positive, got %dx%d", ErrInvalidConfig, width, height)
	}
	if width > maxCells/height {
		return nil, fmt.Errorf("%w: grid %dx%d exceeds %d cells", ErrInvalidConfig, width, height, maxCells)
	}
	return newGrid(width, height), nil
}

func newGrid(width, height int) *Grid {
	return &Grid{
		Width:  width,
		Height: height,
		values: make([]float64, width*height),
	}
}

// GridFromRows builds a grid from height rows of equal width. The rows are copied.
func GridFromRows(rows [][]float64) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: grid must have at least one row and column", ErrInvalidConfig)
	}
	g, err := NewGrid(len(rows[0]), len(rows))
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		if len(row) != g.Width {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d",
				ErrDimensionMismatch, y, len(row), g.Width)
		}
		copy(g.values[y*g.Width:], row)
	}
	return g, nil
}

// Index returns the storage index for (x, y).
func (g *Grid) Index(x, y int) int {
	return y*g.Width + x
}

// InBounds returns true if (x, y) addresses a cell.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// At returns the value at (x, y), or 0 outside the grid.
func (g *Grid) At(x, y int) float64 {
	if !g.InBounds(x, y) {
		return 0
	}
	return g.values[g.Index(x, y)]
}

// Set stores v at (x, y). Out-of-bounds writes are ignored.
func (g *Grid) Set(x, y int, v float64) {
	if g.InBounds(x, y) {
		g.values[g.Index(x, y)] = v
	}
}

// Row returns a copy of row y.
func (g *Grid) Row(y int) []float64 {
	row := make([]float64, g.Width)
	if y >= 0 && y < g.Height {
		copy(row, g.values[y*g.Width:(y+1)*g.Width])
	}
	return row
}

// SameShape returns true if both grids have identical dimensions.
func (g *Grid) SameShape(other *Grid) bool {
	return g.Width == other.Width && g.Height == other.Height
}

// Checksum hashes the dimensions and the exact bit pattern of every value.
// Two grids with equal checksums are, for practical purposes, bit-identical.
func (g *Grid) Checksum() uint64 {
	h := xxhash.New()
	var buf [8]byte

	binary.LittleEndian.PutUint64(buf[:], uint64(g.Width))
	h.Write(buf[:])
	binary.LittleEndian.PutUint64(buf[:], uint64(g.Height))
	h.Write(buf[:])

	for _, v := range g.values {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		h.Write(buf[:])
	}
	return h.Sum64()
}

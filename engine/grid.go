// Package engine implements the Game of Life state-transition engine: a
// bounded rows×cols cell matrix advanced synchronously one generation at a
// time. Rendering, pattern catalogs and run loops live outside the engine
// and observe it through Snapshot.
package engine

import (
	"crypto/md5"
	"fmt"
	"math/rand/v2"

	"github.com/pkg/errors"
)

// Coord addresses a single cell as a (row, col) pair, both zero-based.
type Coord struct {
	Row int
	Col int
}

// Grid holds the automaton state: a fixed-size bounded cell matrix and the
// generation counter. Dimensions never change after construction. A Grid is
// single-owner; callers sharing one across goroutines need external exclusion.
type Grid struct {
	rows       int
	cols       int
	cells      [][]bool
	next       [][]bool // scratch matrix for the step transform, swapped in atomically
	generation int
	rng        *rand.Rand
}

// NewGrid creates an all-dead grid with the given dimensions at
// generation 0. Seeding operations draw from an unpredictably-seeded PCG
// source; use NewGridWithSource for reproducible runs.
func NewGrid(rows, cols int) (*Grid, error) {
	return NewGridWithSource(rows, cols, rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// NewGridWithSource is NewGrid with a caller-supplied random source, so tests
// and replays can seed deterministically. A nil source falls back to the
// default unpredictable one.
func NewGridWithSource(rows, cols int, src rand.Source) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimension, "[NewGrid] rows=%d, cols=%d", rows, cols)
	}
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: newCellMatrix(rows, cols),
		next:  newCellMatrix(rows, cols),
		rng:   rand.New(src),
	}, nil
}

func newCellMatrix(rows, cols int) [][]bool {
	cells := make([][]bool, rows)
	for i := range cells {
		cells[i] = make([]bool, cols)
	}
	return cells
}

// Rows returns the number of rows in the grid.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid.
func (g *Grid) Cols() int {
	return g.cols
}

// Generation returns the number of steps taken since the last seeding.
func (g *Grid) Generation() int {
	return g.generation
}

// Get returns the state of a cell; out-of-range coordinates read as dead.
func (g *Grid) Get(row, col int) bool {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return false
	}
	return g.cells[row][col]
}

// set flips a cell to alive, silently ignoring out-of-range coordinates.
func (g *Grid) set(row, col int) {
	if row >= 0 && row < g.rows && col >= 0 && col < g.cols {
		g.cells[row][col] = true
	}
}

// Populate sets the given cells alive and resets the generation counter.
// Seeding is purely additive: cells already alive stay alive, and coordinates
// outside the grid are silently ignored so callers can place patterns near
// the edges without trimming them first.
func (g *Grid) Populate(coords []Coord) {
	for _, coord := range coords {
		g.set(coord.Row, coord.Col)
	}
	g.generation = 0
}

// Randomize fills the grid with random living cells, each independently alive
// with probability density, and resets the generation counter. A density
// outside [0, 1] is rejected before any cell is touched.
func (g *Grid) Randomize(density float64) error {
	if density < 0.0 || density > 1.0 {
		return errors.Wrapf(ErrInvalidParameter, "[Randomize] density %v outside [0.0, 1.0]", density)
	}
	for row := range g.rows {
		for col := range g.cols {
			g.cells[row][col] = g.rng.Float64() < density
		}
	}
	g.generation = 0
	return nil
}

// Clear kills all cells and resets the generation counter.
func (g *Grid) Clear() {
	for row := range g.rows {
		for col := range g.cols {
			g.cells[row][col] = false
		}
	}
	g.generation = 0
}

// CountLivingCells returns the total number of living cells.
func (g *Grid) CountLivingCells() (count int) {
	for row := range g.rows {
		for col := range g.cols {
			if g.cells[row][col] {
				count++
			}
		}
	}
	return
}

// Hash returns an MD5 fingerprint of the current cell matrix. Equal matrices
// hash equally regardless of generation, which lets callers detect static
// states and short cycles without copying the grid.
func (g *Grid) Hash() string {
	h := md5.New()
	for row := range g.rows {
		for col := range g.cols {
			if g.cells[row][col] {
				h.Write([]byte{1})
			} else {
				h.Write([]byte{0})
			}
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// Snapshot is a read-only copy of the grid state handed to observers such as
// renderers. Mutating it never affects the engine.
type Snapshot struct {
	Rows       int
	Cols       int
	Generation int
	Cells      [][]bool
}

// Snapshot returns a deep copy of the current cell matrix together with the
// dimensions and generation counter.
func (g *Grid) Snapshot() Snapshot {
	cells := make([][]bool, g.rows)
	for row := range g.rows {
		cells[row] = make([]bool, g.cols)
		copy(cells[row], g.cells[row])
	}
	return Snapshot{
		Rows:       g.rows,
		Cols:       g.cols,
		Generation: g.generation,
		Cells:      cells,
	}
}

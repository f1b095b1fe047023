package engine

import (
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/golife/rules"
)

// minParallelCells is the grid size at which Step switches from the serial
// transform to row-partitioned workers. Below it the goroutine overhead costs
// more than the scan.
const minParallelCells = 2048

// Step advances the grid by exactly one generation. Every cell's next state
// is derived from the frozen current matrix, so the update is synchronous: no
// transition sees another cell's new state. Neighbors beyond the grid edges
// are simply absent; the grid is bounded, not toroidal. The computed matrix
// replaces the current one atomically and the generation counter increments.
func (g *Grid) Step() {
	if g.rows*g.cols >= minParallelCells {
		g.stepParallel()
	} else {
		g.stepSerial()
	}
	g.cells, g.next = g.next, g.cells
	g.generation++
}

// StepN advances the grid by n generations, one synchronous step at a time.
// n = 0 is a no-op; a negative n is rejected before any state changes.
func (g *Grid) StepN(n int) error {
	if n < 0 {
		return errors.Wrapf(ErrInvalidParameter, "[StepN] step count %d is negative", n)
	}
	for i := 0; i < n; i++ {
		g.Step()
	}
	return nil
}

// stepSerial computes the next generation into the scratch matrix in a single
// pass.
func (g *Grid) stepSerial() {
	for row := range g.rows {
		for col := range g.cols {
			g.next[row][col] = rules.Alive(g.cells[row][col], g.countNeighbors(row, col))
		}
	}
}

// stepParallel computes the next generation using one worker per row band.
// Workers read only the frozen current matrix and write disjoint rows of the
// scratch matrix, so the result is identical to the serial pass.
func (g *Grid) stepParallel() {
	var (
		eg            errgroup.Group
		numWorkers    = runtime.NumCPU()
		rowsPerWorker = (g.rows + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := range numWorkers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.rows)
		)
		if startRow >= g.rows {
			break
		}

		eg.Go(func() error {
			for row := startRow; row < endRow; row++ {
				for col := 0; col < g.cols; col++ {
					g.next[row][col] = rules.Alive(g.cells[row][col], g.countNeighbors(row, col))
				}
			}
			return nil
		})
	}

	// Workers never fail; Wait only joins them.
	_ = eg.Wait()
}

// countNeighbors counts living cells among the up-to-8 surrounding positions,
// clamped to the grid so indexing never leaves [0, rows) × [0, cols).
func (g *Grid) countNeighbors(row, col int) int {
	count := 0

	// Calculate the in-bounds neighborhood once
	minRow := max(0, row-1)
	maxRow := min(g.rows-1, row+1)
	minCol := max(0, col-1)
	maxCol := min(g.cols-1, col+1)

	for r := minRow; r <= maxRow; r++ {
		for c := minCol; c <= maxCol; c++ {
			if r == row && c == col {
				continue // Skip the cell itself
			}
			if g.cells[r][c] {
				count++
			}
		}
	}

	return count
}

package main

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/sheikhrachel/golife/engine"
	"github.com/sheikhrachel/golife/patterns"
	"github.com/sheikhrachel/golife/utils"
)

// maxHistorySize bounds how many recent grid fingerprints the stagnation
// monitor keeps.
const maxHistorySize = 10

// newGrid constructs the game grid, wiring in a deterministic random source
// when the config pins a seed.
func newGrid(config utils.Config) (*engine.Grid, error) {
	if config.Seed != 0 {
		return engine.NewGridWithSource(config.Rows, config.Cols, rand.NewPCG(uint64(config.Seed), 0))
	}
	return engine.NewGrid(config.Rows, config.Cols)
}

// seedGrid seeds the grid with the configured pattern, centered, or with
// random noise at the configured density when no pattern is named.
func seedGrid(grid *engine.Grid, config utils.Config) error {
	if config.Pattern == "" {
		return grid.Randomize(config.Density)
	}
	cells, err := patterns.Get(config.Pattern)
	if err != nil {
		return err
	}
	rows, cols := patterns.Bounds(cells)
	grid.Populate(patterns.Offset(cells, (grid.Rows()-rows)/2, (grid.Cols()-cols)/2))
	return nil
}

// reseedGrid wipes the grid and seeds it fresh for a restart. The pauses give
// the restart banner time on screen before the next frame clears it.
func reseedGrid(grid *engine.Grid, config utils.Config) error {
	time.Sleep(1 * time.Second)

	grid.Clear()
	if err := seedGrid(grid, config); err != nil {
		return err
	}

	fmt.Printf("✨ New patterns loaded! Living cells: %d\n", grid.CountLivingCells())
	time.Sleep(2 * time.Second)
	return nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, grid *engine.Grid) {
	if config.Pattern != "" {
		fmt.Printf("Seed pattern: %s | Auto-restart: %v\n", config.Pattern, config.AutoRestart)
	} else {
		fmt.Printf("Seed density: %.2f | Auto-restart: %v\n", config.Density, config.AutoRestart)
	}
	if config.Seed != 0 {
		fmt.Printf("Random seed: %d (reproducible run)\n", config.Seed)
	}
	fmt.Printf("Grid: %dx%d | Initial living cells: %d\n",
		grid.Rows(), grid.Cols(), grid.CountLivingCells())
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
	time.Sleep(2 * time.Second)
}

// statusLabel summarizes the population state for the status line
func statusLabel(livingCells int, isStagnant bool) string {
	switch {
	case livingCells == 0:
		return "Extinct"
	case isStagnant:
		return "Stagnant"
	default:
		return "Active"
	}
}

// displayGameStatus shows the current game status below the rendered frame
func displayGameStatus(generation, livingCells int, density float64, status string, stats *utils.Stats) {
	fmt.Printf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		generation, livingCells, density, status)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, time.Since(stats.StartTime).Seconds())
	fmt.Println()
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(livingCells, stagnantCount, frame int, config utils.Config) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	if frame > 0 && frame%200 == 0 {
		return true, "periodic refresh"
	}
	return false, ""
}

// stagnationMonitor remembers recent grid fingerprints so the run loop can
// spot static states and short oscillations.
type stagnationMonitor struct {
	history []string
}

// Observe records a fingerprint and reports whether the grid is stagnant,
// meaning the same state has shown up more than once in the recent window.
func (m *stagnationMonitor) Observe(hash string) bool {
	m.history = append(m.history, hash)
	if len(m.history) > maxHistorySize {
		m.history = m.history[1:]
	}
	if len(m.history) < 3 {
		return false
	}
	count := 0
	for _, h := range m.history {
		if h == hash {
			count++
		}
	}
	return count >= 2
}

// Reset forgets all history after a reseed
func (m *stagnationMonitor) Reset() {
	m.history = m.history[:0]
}

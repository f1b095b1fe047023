package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sheikhrachel/golife/render"
	"github.com/sheikhrachel/golife/utils"
)

const configFile = "config.json"

func main() {
	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(configFile)
	if err != nil {
		fmt.Println("Using default configuration (config.json not found)")
		config = utils.DefaultConfig()
	}
	config.Bind(flag.CommandLine)
	flag.Parse()

	// Initialize game
	grid, err := newGrid(config)
	if err != nil {
		log.Fatalf("%v", err)
	}
	if err = seedGrid(grid, config); err != nil {
		log.Fatalf("%v", err)
	}

	renderer := render.NewTerminal(os.Stdout)
	stats := utils.NewStats()
	monitor := &stagnationMonitor{}

	displayGameInfo(config, grid)

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Main game loop
	var (
		frame         = 0
		stagnantCount = 0
		lastFrameTime = time.Now()
	)

	for {
		select {
		case <-sigChan:
			fmt.Println("\n🛑 Shutting down gracefully...")
			fmt.Printf("Final stats: %d generations in %.1f seconds\n",
				frame, time.Since(stats.StartTime).Seconds())
			fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
				stats.GenerationsPerSecond, stats.AveragePopulation)
			return
		default:
			// Continue with game loop
		}

		frameStart := time.Now()

		// Update game state
		livingCells := grid.CountLivingCells()
		density := float64(livingCells) / float64(grid.Rows()*grid.Cols()) * 100
		stats.Update(grid.Generation(), livingCells, time.Since(lastFrameTime))
		lastFrameTime = frameStart

		// Update stagnation counter
		isStagnant := monitor.Observe(grid.Hash())
		if isStagnant {
			stagnantCount++
		} else {
			stagnantCount = 0
		}

		// Display current frame and status
		if err = renderer.Clear(); err != nil {
			log.Fatalf("%v", err)
		}
		if err = renderer.Render(grid.Snapshot()); err != nil {
			log.Fatalf("%v", err)
		}
		displayGameStatus(grid.Generation(), livingCells, density, statusLabel(livingCells, isStagnant), stats)

		// Check for max generations limit
		if config.MaxGenerations > 0 && frame >= config.MaxGenerations {
			fmt.Printf("\n🏁 Reached maximum generations limit (%d)\n", config.MaxGenerations)
			break
		}

		// Check restart conditions
		shouldRestart, restartReason := checkRestartConditions(livingCells, stagnantCount, frame, config)

		if shouldRestart && config.AutoRestart {
			fmt.Printf("🔄 Restarting due to %s...\n", restartReason)
			if err = reseedGrid(grid, config); err != nil {
				log.Fatalf("%v", err)
			}
			monitor.Reset()
			stagnantCount = 0
		}

		// Calculate next generation
		grid.Step()
		frame++

		// Wait before next frame
		time.Sleep(config.FrameRate)
	}
}

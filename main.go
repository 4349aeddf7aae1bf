package main

import (
	"flag"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

func main() {
	configPath := flag.String("config", "config.json", "path to a JSON config file")
	flag.Parse()

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(*configPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		fmt.Printf("Using default configuration (%s not found)\n", *configPath)
		config = utils.DefaultConfig()
	case err != nil:
		fmt.Printf("Error loading configuration: %+v\n", err)
		os.Exit(1)
	}

	driver, frames, renderer, stats, err := initializeGame(config)
	if err != nil {
		fmt.Printf("Error seeding grid: %+v\n", err)
		os.Exit(1)
	}
	displayGameInfo(config, driver.Grid())

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	var (
		history       model.History
		stagnantCount = 0
		lastFrameTime = time.Now()
		// frames published before the latest reseed are skipped
		resets = driver.State().Resets
	)

	driver.Start()
	defer driver.Stop()

	for {
		select {
		case <-sigChan:
			fmt.Println("\n🛑 Shutting down gracefully...")
			fmt.Printf("Final stats: %d generations in %.1f seconds\n",
				driver.Generation(), stats.Runtime().Seconds())
			fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
				stats.GenerationsPerSecond, stats.AveragePopulation)
			return
		case state := <-frames:
			if state.Resets < resets {
				continue
			}
			renderer.Clear()

			livingCells, density, status, isStagnant := updateGameState(state, lastFrameTime, &history, stats)
			lastFrameTime = time.Now()

			if isStagnant {
				stagnantCount++
			} else {
				stagnantCount = 0
			}

			displayGameStatus(state, livingCells, density, status, stats)
			renderer.Display(state.Grid)

			done, reason := checkStopConditions(livingCells, stagnantCount, state.Generation, config)
			if !done {
				if shouldInject(stagnantCount, config) {
					// Inject some life to try to break the stagnation
					driver.Inject(config.InjectionCount)
				}
				continue
			}
			if !config.AutoRestart {
				fmt.Printf("\n🏁 Stopping: %s\n", reason)
				return
			}

			fmt.Printf("🔄 Restarting due to %s...\n", reason)
			seeded, err := seedGrid(driver, config)
			if err != nil {
				fmt.Printf("Error seeding grid: %+v\n", err)
				return
			}
			resets = seeded.Resets
			drainFrames(frames)
			history.Reset()
			stagnantCount = 0
		}
	}
}

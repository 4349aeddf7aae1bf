package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/simulation"
	"github.com/sheikhrachel/go-life/utils"
)

// initializeGame sets up the driver, seeded according to config, and the display helpers
func initializeGame(config utils.Config) (
	*simulation.Driver,
	<-chan simulation.State,
	*model.TerminalRenderer,
	*utils.Stats,
	error,
) {
	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	// keep only the latest frame if the terminal falls behind
	frames := make(chan simulation.State, 1)
	driver := simulation.NewDriver(
		simulation.WithIntervalMillis(config.IntervalMillis),
		simulation.WithStepFunc(config.StepFunc()),
		simulation.WithRand(model.NewRand(seed)),
		simulation.WithOnStep(func(s simulation.State) {
			select {
			case frames <- s:
			default:
			}
		}),
	)

	if _, err := seedGrid(driver, config); err != nil {
		return nil, nil, nil, nil, err
	}

	renderer := &model.TerminalRenderer{Out: os.Stdout}
	stats := utils.NewStats()

	return driver, frames, renderer, stats, nil
}

// seedGrid replaces the board with the configured pattern or a random fill in one
// driver operation, so a running driver never steps the cleared board
func seedGrid(driver *simulation.Driver, config utils.Config) (simulation.State, error) {
	if config.Pattern == utils.PatternRandom {
		return driver.Reseed(func(_ model.Grid, r *rand.Rand) (model.Grid, error) {
			return model.Random(config.RandomDensity, r), nil
		})
	}

	pattern, err := model.ParsePattern(config.Pattern)
	if err != nil {
		return driver.State(), err
	}
	return driver.Reseed(func(g model.Grid, _ *rand.Rand) (model.Grid, error) {
		return model.StampCentered(g, pattern)
	})
}

// drainFrames discards any frame already buffered
func drainFrames(frames <-chan simulation.State) {
	for {
		select {
		case <-frames:
		default:
			return
		}
	}
}

// shouldInject reports whether the board has been stagnant long enough to shake it,
// but not yet long enough to stop or restart
func shouldInject(stagnantCount int, config utils.Config) bool {
	return config.InjectionCount > 0 && stagnantCount >= 2 && stagnantCount < config.StagnationThreshold
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, grid model.Grid) {
	fmt.Printf("Seed: %s | Interval: %dms | Parallel: %v | Bounded: %v\n",
		config.Pattern, config.IntervalMillis, config.UseParallel, config.UseBoundedGrid)
	fmt.Printf("Grid: %dx%d | Initial living cells: %d\n",
		model.Rows, model.Cols, grid.CountLivingCells())
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
}

// updateGameState updates the stats and history for a new frame and returns status information
func updateGameState(
	state simulation.State,
	lastFrameTime time.Time,
	history *model.History,
	stats *utils.Stats,
) (int, float64, string, bool) {
	livingCells := state.Grid.CountLivingCells()
	density := float64(livingCells) / float64(model.Rows*model.Cols) * 100

	stats.Update(state.Generation, livingCells, time.Since(lastFrameTime))

	isStagnant := history.IsStagnant(state.Grid)
	history.Record(state.Grid)

	status := "Active"
	if isStagnant {
		status = "Stagnant"
	}
	if livingCells == 0 {
		status = "Extinct"
	}

	return livingCells, density, status, isStagnant
}

// displayGameStatus shows the current game status
func displayGameStatus(
	state simulation.State,
	livingCells int,
	density float64,
	status string,
	stats *utils.Stats,
) {
	fmt.Printf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s | Bounding box: %d cells\n",
		state.Generation, livingCells, density, status, state.Grid.BoundingBoxSize())
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, stats.Runtime().Seconds())
	fmt.Println()
}

// checkStopConditions reports whether the current run has played out and why
func checkStopConditions(
	livingCells, stagnantCount int,
	generation uint64,
	config utils.Config,
) (bool, string) {
	if config.MaxGenerations > 0 && generation >= uint64(config.MaxGenerations) {
		return true, fmt.Sprintf("maximum generations limit (%d)", config.MaxGenerations)
	}
	if livingCells == 0 {
		return true, "extinction"
	}
	if config.StagnationThreshold > 0 && stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	return false, ""
}

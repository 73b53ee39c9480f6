package main

import (
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

const (
	defaultConfigFile = "config.json"
	configEnvVar      = "GOLIFE_CONFIG"
)

// usageError marks failures caused by the command line arguments
type usageError struct {
	err error
}

func (e usageError) Error() string { return e.err.Error() }

func (e usageError) Unwrap() error { return e.err }

// resolveConfig loads the config file, falling back to defaults when it
// doesn't exist, and applies the positional rows and cols arguments
func resolveConfig(args []string, logger *utils.Logger) (utils.Config, error) {
	path := os.Getenv(configEnvVar)
	if path == "" {
		path = defaultConfigFile
	}

	config, err := utils.LoadConfig(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		logger.Infof("using default configuration (%s not found)", path)
		config = utils.DefaultConfig()
	case err != nil:
		return config, err
	}

	if len(args) > 0 {
		rows, cols, err := utils.ParseDimensions(args)
		if err != nil {
			return config, usageError{err: err}
		}
		config.Rows, config.Cols = rows, cols
	}

	return config, config.Validate()
}

// initializeGame builds and seeds the first generation along with everything
// the loop needs to advance it
func initializeGame(config utils.Config, seeder model.Seeder) (
	*model.Grid,
	*model.Engine,
	*model.History,
	*utils.Stats,
	error,
) {
	grid, err := model.NewGrid(config.Rows, config.Cols)
	if err != nil {
		return nil, nil, nil, nil, errors.Wrap(err, "[initializeGame]")
	}
	seeder.Seed(grid)

	var pool *model.GridPool
	if config.UseMemoryPool {
		pool = model.NewGridPool()
	}

	engine := model.NewEngine(config.Parallel, pool)
	history := model.NewHistory(config.HistorySize)
	stats := utils.NewStats()

	return grid, engine, history, stats, nil
}

// updateGameState refreshes stats for the generation about to be rendered
func updateGameState(
	grid *model.Grid,
	generation int,
	history *model.History,
	lastFrameTime time.Time,
	stats *utils.Stats,
) {
	rows, cols := grid.Dimensions()
	stats.Update(generation, grid.CountLivingCells(), rows*cols, time.Since(lastFrameTime))
	stats.Period = history.Period(grid)
}

// checkStopConditions determines if the run should end after this generation
func checkStopConditions(generation int, stats *utils.Stats, config utils.Config) (bool, string) {
	if config.MaxGenerations > 0 && generation >= config.MaxGenerations {
		return true, "reached maximum generations"
	}
	if config.StopWhenStable {
		if stats.Population == 0 {
			return true, "extinction"
		}
		if stats.Period > 0 {
			return true, "pattern is stable"
		}
	}
	return false, ""
}

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

const usage = "usage: go-life [rows cols]  (both positive integers)"

func main() {
	logger := utils.NewLogger(os.Stderr)

	if err := run(os.Args[1:], logger); err != nil {
		var usageErr usageError
		if errors.As(err, &usageErr) || errors.Is(err, model.ErrInvalidDimension) {
			fmt.Fprintln(os.Stderr, usage)
		}
		logger.Errorf("%v", err)
		os.Exit(1)
	}
}

func run(args []string, logger *utils.Logger) error {
	config, err := resolveConfig(args, logger)
	if err != nil {
		return err
	}

	grid, engine, history, stats, err := initializeGame(config, model.NewRandomSeeder(config.Seed))
	if err != nil {
		return err
	}

	renderer := model.NewTerminalRenderer(os.Stdout, config.Color)
	if !renderer.IsTerminal() {
		logger.Infof("stdout is not a terminal, frames are appended without cursor control")
	}
	if !renderer.Fits(config.Rows, config.Cols) {
		logger.Warnf("a %dx%d grid does not fit in the terminal, output will wrap", config.Rows, config.Cols)
	}
	if err = renderer.Start(); err != nil {
		return err
	}
	defer func() {
		if err := renderer.Stop(); err != nil {
			logger.Errorf("%v", err)
		}
		logger.Infof("final stats: %s", stats.Summary())
	}()

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	var (
		tick          = time.Duration(config.TickRate)
		generation    = 0
		lastFrameTime = time.Now()
	)

	for {
		frameStart := time.Now()
		updateGameState(grid, generation, history, lastFrameTime, stats)
		lastFrameTime = frameStart

		status := ""
		if config.ShowStatus {
			status = stats.Status()
		}
		if err = renderer.Display(grid, status); err != nil {
			return err
		}

		if stop, reason := checkStopConditions(generation, stats, config); stop {
			logger.Infof("stopping at generation %d: %s", generation, reason)
			return nil
		}

		select {
		case sig := <-sigChan:
			logger.Infof("received %v, shutting down", sig)
			return nil
		case <-time.After(tick):
		}

		history.Record(grid)
		next, err := engine.Next(grid)
		if err != nil {
			return err
		}
		engine.Release(grid)
		grid = next
		generation++
	}
}

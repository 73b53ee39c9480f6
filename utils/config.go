package utils

import (
	"encoding/json"
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

// Duration is a time.Duration that unmarshals from either a Go duration
// string ("150ms") or an integer number of nanoseconds
type Duration time.Duration

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		parsed, err := time.ParseDuration(s)
		if err != nil {
			return errors.Wrapf(err, "[Duration] invalid duration %q", s)
		}
		*d = Duration(parsed)
		return nil
	}

	var n int64
	if err := json.Unmarshal(data, &n); err != nil {
		return errors.Wrapf(err, "[Duration] expected a string or integer, got %s", data)
	}
	*d = Duration(n)
	return nil
}

// Config holds the configuration for the game
type Config struct {
	Rows           int      `json:"rows"`
	Cols           int      `json:"cols"`
	TickRate       Duration `json:"tick_rate"`
	Parallel       bool     `json:"parallel"`
	UseMemoryPool  bool     `json:"use_memory_pool"`
	MaxGenerations int      `json:"max_generations"`
	Seed           uint64   `json:"seed"`
	HistorySize    int      `json:"history_size"`
	StopWhenStable bool     `json:"stop_when_stable"`
	Color          bool     `json:"color"`
	ShowStatus     bool     `json:"show_status"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Rows:           30,
		Cols:           60,
		TickRate:       Duration(150 * time.Millisecond),
		Parallel:       false,
		UseMemoryPool:  true,
		MaxGenerations: 0, // run until interrupted
		Seed:           0, // time based
		HistorySize:    5,
		StopWhenStable: false,
		Color:          true,
		ShowStatus:     true,
	}
}

// LoadConfig loads configuration from a JSON file on top of the defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Validate checks the values a run can't start without
func (c Config) Validate() error {
	if c.Rows <= 0 || c.Cols <= 0 {
		return errors.Wrapf(model.ErrInvalidDimension, "[Validate] rows=%d cols=%d", c.Rows, c.Cols)
	}
	if c.TickRate <= 0 {
		return errors.Errorf("[Validate] tick_rate must be positive, got %v", time.Duration(c.TickRate))
	}
	if c.HistorySize < 0 {
		return errors.Errorf("[Validate] history_size must not be negative, got %d", c.HistorySize)
	}
	if c.MaxGenerations < 0 {
		return errors.Errorf("[Validate] max_generations must not be negative, got %d", c.MaxGenerations)
	}
	return nil
}

// ParseDimensions parses the two positional rows and cols arguments
func ParseDimensions(args []string) (rows, cols int, err error) {
	if len(args) != 2 {
		return 0, 0, errors.Errorf("[ParseDimensions] exactly two arguments required, got %d", len(args))
	}
	if rows, err = parsePositive(args[0]); err != nil {
		return 0, 0, errors.Wrap(err, "[ParseDimensions] rows")
	}
	if cols, err = parsePositive(args[1]); err != nil {
		return 0, 0, errors.Wrap(err, "[ParseDimensions] cols")
	}
	return rows, cols, nil
}

func parsePositive(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, errors.Wrapf(model.ErrInvalidDimension, "%q", s)
	}
	return n, nil
}

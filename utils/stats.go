package utils

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	Population           int
	Density              float64
	Period               int
	StartTime            time.Time
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records one rendered generation of a grid with the given number of cells
func (s *Stats) Update(generation, population, cells int, duration time.Duration) {
	s.TotalGenerations = generation
	s.Population = population
	if cells > 0 {
		s.Density = float64(population) / float64(cells) * 100
	}
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// Status returns the one-line summary shown under the grid
func (s *Stats) Status() string {
	state := "Active"
	switch {
	case s.Population == 0:
		state = "Extinct"
	case s.Period == 1:
		state = "Still life"
	case s.Period > 1:
		state = fmt.Sprintf("Oscillating (period %d)", s.Period)
	}
	return fmt.Sprintf("Gen: %s | Living: %s | Density: %.1f%% | %s | %.1f gen/sec",
		humanize.Comma(int64(s.TotalGenerations)), humanize.Comma(int64(s.Population)),
		s.Density, state, s.GenerationsPerSecond)
}

// Summary describes the whole run
func (s *Stats) Summary() string {
	return fmt.Sprintf("%s generations in %s, %.1f avg population (started %s)",
		humanize.Comma(int64(s.TotalGenerations)),
		time.Since(s.StartTime).Round(100*time.Millisecond),
		s.AveragePopulation, humanize.Time(s.StartTime))
}

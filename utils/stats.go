package utils

import "time"

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     uint64
	StartTime            time.Time
}

// NewStats starts collecting from now
func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records a rendered frame: generation is the driver's counter since the
// last reseed, population its living cells, and duration the time since the previous frame
func (s *Stats) Update(generation uint64, population int, duration time.Duration) {
	s.TotalGenerations = generation
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

// Runtime returns how long the stats have been collected
func (s *Stats) Runtime() time.Duration {
	return time.Since(s.StartTime)
}

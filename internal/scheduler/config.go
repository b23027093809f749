package scheduler

import (
	"fmt"

	"github.com/alexanderramin/linework/internal/domain"
)

// Config is the full configuration surface of the engine. Nothing is read
// from ambient state; callers construct one per run and pass it in.
type Config struct {
	// Rate is the number of work units one resource completes per day.
	Rate float64

	// PlaceholderResource is substituted when a record has no resource.
	PlaceholderResource string

	// PlacementSentinel stands in for a missing placement so that
	// unplaced work sorts after everything that was ordered explicitly.
	PlacementSentinel int
}

// DefaultConfig mirrors the constants the production sheets were built
// around: 1.2 poles per crew-day, estimates parked on a ramp-up crew, and
// unplaced jobs pushed to the back of the queue.
func DefaultConfig() Config {
	return Config{
		Rate:                1.2,
		PlaceholderResource: "Ramp-Up Crew (Estimate)",
		PlacementSentinel:   9999,
	}
}

// Validate reports configuration errors. A non-positive rate makes every
// duration undefined, so the run aborts before any scheduling happens.
func (c Config) Validate() error {
	if c.Rate <= 0 {
		return &domain.ConfigurationError{
			Field:   "rate",
			Message: fmt.Sprintf("must be positive, got %v", c.Rate),
		}
	}
	if c.PlaceholderResource == "" {
		return &domain.ConfigurationError{
			Field:   "placeholder_resource",
			Message: "must not be empty",
		}
	}
	return nil
}

package ports

import "github.com/evfreq/evfreq/internal/core/domain/events"

// SeedProvider defines the interface for sourcing initial event counts
// from a predefined list, like a configuration file.
type SeedProvider interface {
	// SeedCounts loads seed counts from a predefined source.
	SeedCounts() ([]events.Observation, error)
}

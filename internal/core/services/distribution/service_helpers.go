package distribution

import (
	"fmt"

	"github.com/evfreq/evfreq/internal/core/domain/freqdist"
)

// buildDistribution accumulates seed counts (if configured) and the source
// event stream into a fresh distribution, and assembles the source details
// string describing what went into it.
func (s *service) buildDistribution(scanLimit int) (*freqdist.Distribution, string, error) {
	dist := freqdist.New()

	seeded := 0
	if s.seeds != nil {
		seedCounts, err := s.seeds.SeedCounts()
		if err != nil {
			return nil, "", fmt.Errorf("failed to load seed counts: %w", err)
		}
		for _, seed := range seedCounts {
			dist.IncrementBy(seed.Event, seed.Count)
		}
		seeded = len(seedCounts)
	}

	observed, err := s.source.Events(scanLimit)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read events: %w", err)
	}
	for _, event := range observed {
		dist.Increment(event)
	}

	details := s.source.SourceIdentifier()
	if s.seeds != nil {
		if seeded > 0 {
			details += fmt.Sprintf(" (seeded with %d predefined counts)", seeded)
		} else {
			details += " (seed counts configured but none loaded/found)"
		}
	}

	return dist, details, nil
}

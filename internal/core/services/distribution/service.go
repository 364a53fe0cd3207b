package distribution

import (
	"fmt"

	"github.com/evfreq/evfreq/internal/core/ports"
)

type service struct {
	source ports.EventSource
	seeds  ports.SeedProvider // Can be nil if no seed counts are configured.
}

// NewService creates a new distribution service.
// It panics if source is nil. seeds can be nil if not used.
func NewService(source ports.EventSource, seeds ports.SeedProvider) ports.DistributionService {
	if source == nil {
		panic("eventSource cannot be nil")
	}
	// seeds is allowed to be nil.
	return &service{
		source: source,
		seeds:  seeds,
	}
}

// TopEvents builds the distribution and returns up to n events ordered by
// descending frequency, ties broken by ascending identifier. Asking for
// more events than exist returns the full list.
func (s *service) TopEvents(scanLimit, n int) (ports.Report, error) {
	var report ports.Report

	dist, details, err := s.buildDistribution(scanLimit)
	if err != nil {
		return report, err
	}

	if n < 0 || n > dist.NumberOfEvents() {
		n = dist.NumberOfEvents()
	}

	pairs, err := dist.TopEventsByFrequency(n)
	if err != nil {
		return report, fmt.Errorf("failed to extract top events: %w", err)
	}

	report.Pairs = pairs
	report.SourceDetails = details
	return report, nil
}

// EventsByID builds the distribution and returns all events ordered by
// ascending identifier.
func (s *service) EventsByID(scanLimit int) (ports.Report, error) {
	var report ports.Report

	dist, details, err := s.buildDistribution(scanLimit)
	if err != nil {
		return report, err
	}

	pairs, err := dist.EventsByID()
	if err != nil {
		return report, fmt.Errorf("failed to extract sorted events: %w", err)
	}

	report.Pairs = pairs
	report.SourceDetails = details
	return report, nil
}

// Stats builds the distribution and returns its aggregate figures.
func (s *service) Stats(scanLimit int) (ports.Stats, error) {
	var stats ports.Stats

	dist, details, err := s.buildDistribution(scanLimit)
	if err != nil {
		return stats, err
	}

	stats.NumberOfEvents = dist.NumberOfEvents()
	stats.SumOfFrequencies = dist.SumOfFrequencies()
	stats.SourceDetails = details
	return stats, nil
}

// SourceContextDetails provides details about the sources used to build the
// distribution.
func (s *service) SourceContextDetails() (string, error) {
	details := s.source.SourceIdentifier()
	if s.seeds != nil {
		// Attempt to load the seed counts to confirm their status; the
		// actual values are not needed here.
		_, loadErr := s.seeds.SeedCounts()
		if loadErr == nil {
			details += " (seed counts are configured and loadable)"
		} else {
			details += fmt.Sprintf(" (seed counts configured but failed to load: %v)", loadErr)
		}
	}
	return details, nil
}

package testutil

import (
	"github.com/evfreq/evfreq/internal/core/domain/events"
	"github.com/evfreq/evfreq/internal/core/ports"
)

// MockSeedProvider is a mock implementation of the ports.SeedProvider interface.
type MockSeedProvider struct {
	SeedCountsFunc func() ([]events.Observation, error)
}

// SeedCounts mocks the SeedCounts method.
func (m *MockSeedProvider) SeedCounts() ([]events.Observation, error) {
	if m.SeedCountsFunc != nil {
		return m.SeedCountsFunc()
	}
	// Default behavior: no seed counts and no error.
	return nil, nil
}

// Ensure MockSeedProvider implements the ports.SeedProvider interface.
var _ ports.SeedProvider = (*MockSeedProvider)(nil)

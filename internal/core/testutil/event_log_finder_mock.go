package testutil

import (
	"github.com/evfreq/evfreq/internal/core/ports"
)

// MockEventLogFinder is a mock implementation of the ports.EventLogFinder interface.
type MockEventLogFinder struct {
	FindFunc func() (string, error)
}

// Find mocks the Find method.
func (m *MockEventLogFinder) Find() (string, error) {
	if m.FindFunc != nil {
		return m.FindFunc()
	}
	// Default behavior: return an empty path.
	return "", nil
}

// Ensure MockEventLogFinder implements the ports.EventLogFinder interface.
var _ ports.EventLogFinder = (*MockEventLogFinder)(nil)

package testutil

import (
	"github.com/evfreq/evfreq/internal/core/ports"
)

// MockEventSource is a mock implementation of the ports.EventSource interface.
type MockEventSource struct {
	EventsFunc           func(scanLimit int) ([]int32, error)
	LogPathFunc          func() string
	SourceIdentifierFunc func() string
}

// Events mocks the Events method.
func (m *MockEventSource) Events(scanLimit int) ([]int32, error) {
	if m.EventsFunc != nil {
		return m.EventsFunc(scanLimit)
	}
	// Default behavior: no events and no error.
	return nil, nil
}

// LogPath mocks the LogPath method.
func (m *MockEventSource) LogPath() string {
	if m.LogPathFunc != nil {
		return m.LogPathFunc()
	}
	// Default behavior: return an empty string.
	return ""
}

// SourceIdentifier mocks the SourceIdentifier method.
func (m *MockEventSource) SourceIdentifier() string {
	if m.SourceIdentifierFunc != nil {
		return m.SourceIdentifierFunc()
	}
	// Default behavior: return an empty string.
	return ""
}

// Ensure MockEventSource implements the ports.EventSource interface.
var _ ports.EventSource = (*MockEventSource)(nil)

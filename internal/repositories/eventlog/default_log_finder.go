package eventlog

import "github.com/evfreq/evfreq/internal/core/ports"

// DefaultLogFinder is the default implementation that uses the package-level findEventLogFile.
type DefaultLogFinder struct{}

// Find implements the ports.EventLogFinder interface.
func (d *DefaultLogFinder) Find() (string, error) {
	return findEventLogFile()
}

// NewDefaultLogFinder creates a new DefaultLogFinder.
func NewDefaultLogFinder() ports.EventLogFinder {
	return &DefaultLogFinder{}
}

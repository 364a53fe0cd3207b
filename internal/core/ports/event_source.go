package ports

// EventSource provides the stream of integer-coded events to count.
type EventSource interface {
	// Events returns the observed event identifiers in log order.
	// scanLimit caps how many log lines are scanned; a non-positive value
	// scans the whole log.
	Events(scanLimit int) ([]int32, error)
	LogPath() string
	SourceIdentifier() string
}

package ports

// EventLogFinder defines the contract for finding an event log file.
type EventLogFinder interface {
	Find() (string, error)
}

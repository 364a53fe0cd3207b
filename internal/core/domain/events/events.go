package events

// Observation pairs an integer-coded event with a count of occurrences.
// It is the transport tuple used by event sources and seed providers.
type Observation struct {
	Event int32 `yaml:"event"`
	Count int32 `yaml:"count"`
}

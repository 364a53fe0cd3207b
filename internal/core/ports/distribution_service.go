package ports

import "github.com/evfreq/evfreq/internal/core/domain/freqdist"

// Report holds extracted (event, frequency) pairs and any relevant metadata.
type Report struct {
	Pairs         []freqdist.Pair
	SourceDetails string
}

// Stats holds the aggregate figures of a built distribution.
type Stats struct {
	NumberOfEvents   int
	SumOfFrequencies int64
	SourceDetails    string
}

// DistributionService defines the contract for building the frequency
// distribution from the configured sources and querying it.
type DistributionService interface {
	// TopEvents returns up to n events ordered by descending frequency,
	// ties broken by ascending identifier. n larger than the number of
	// distinct events returns the full list.
	TopEvents(scanLimit, n int) (Report, error)

	// EventsByID returns all events ordered by ascending identifier.
	EventsByID(scanLimit int) (Report, error)

	// Stats returns the distinct event count and the sum of frequencies.
	Stats(scanLimit int) (Stats, error)

	// SourceContextDetails provides details about the sources used to build
	// the distribution.
	SourceContextDetails() (string, error)
}

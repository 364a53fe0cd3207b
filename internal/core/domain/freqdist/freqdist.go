/*
Package freqdist implements a frequency distribution for integer-coded
events. A common use is to store frequency counts for a vocabulary space
that has been integerized, i.e., each term has been mapped to a dense
integer identifier.

No thread safety is provided; a Distribution mutated from multiple
goroutines must be guarded externally.
*/
package freqdist

import (
	"errors"
	"fmt"
	"sort"

	"github.com/evfreq/evfreq/internal/core/domain/intmap"
)

// Sentinel errors returned by Distribution operations. Callers match them
// with errors.Is.
var (
	// ErrInvalidOperation marks a mutation that is malformed against the
	// current state, such as decrementing an absent event.
	ErrInvalidOperation = errors.New("invalid operation")
	// ErrInvariantViolation marks an internal consistency failure. It should
	// never trigger in a correct build and indicates a bug, not a
	// recoverable caller error.
	ErrInvariantViolation = errors.New("invariant violation")
	// ErrOutOfRange marks a request for more entries than exist.
	ErrOutOfRange = errors.New("out of range")
)

// Pair is an (event, frequency) tuple produced by the sorted extractions.
type Pair struct {
	Event     int32
	Frequency int32
}

/*
Distribution is a mutable frequency distribution over int32 event
identifiers. It keeps a running sum of all stored frequencies, maintained
incrementally on every mutation, and materializes freshly allocated sorted
views on demand. Entries with frequency zero are never retained.
*/
type Distribution struct {
	counts *intmap.Map[int32, int32]
	sum    int64
}

// New creates an empty Distribution.
func New() *Distribution {
	return &Distribution{
		counts: intmap.New[int32, int32](),
	}
}

// Increment increments the frequency of event by one, inserting it with
// frequency 1 if it was absent.
func (d *Distribution) Increment(event int32) {
	d.Set(event, d.counts.Get(event)+1)
}

// IncrementBy increments the frequency of event by count. No validation is
// performed on count: zero and negative values are accepted as-is and
// integer overflow is not checked, so the caller is responsible for keeping
// deltas sensible.
func (d *Distribution) IncrementBy(event, count int32) {
	d.Set(event, d.counts.Get(event)+count)
}

// Decrement decrements the frequency of event by one. An event whose
// frequency reaches zero is removed rather than stored at zero.
// Returns ErrInvalidOperation if the event is absent.
func (d *Distribution) Decrement(event int32) error {
	if !d.counts.Contains(event) {
		return fmt.Errorf("%w: event %d does not exist", ErrInvalidOperation, event)
	}
	d.Set(event, d.counts.Get(event)-1)
	return nil
}

// DecrementBy decrements the frequency of event by count, removing the
// event entirely when count equals its current frequency.
// Returns ErrInvalidOperation if the event is absent or if count exceeds
// its current frequency; the distribution is left unchanged on error.
func (d *Distribution) DecrementBy(event, count int32) error {
	if !d.counts.Contains(event) {
		return fmt.Errorf("%w: event %d does not exist", ErrInvalidOperation, event)
	}
	current := d.counts.Get(event)
	if count > current {
		return fmt.Errorf("%w: cannot decrement event %d past zero", ErrInvalidOperation, event)
	}
	d.Set(event, current-count)
	return nil
}

// Get returns the frequency of event, or 0 if it has never been observed.
func (d *Distribution) Get(event int32) int32 {
	return d.counts.Get(event)
}

// Set stores frequency for event and returns the previously stored
// frequency (0 if the event was absent). A frequency of zero deletes the
// entry instead of storing it. Every other mutator routes through Set, so
// the sum-of-frequencies bookkeeping lives in exactly one place.
func (d *Distribution) Set(event, frequency int32) int32 {
	var previous int32
	if frequency == 0 {
		previous = d.counts.Remove(event)
	} else {
		previous = d.counts.Put(event, frequency)
	}
	d.sum += int64(frequency) - int64(previous)
	return previous
}

// Remove deletes event and returns its previous frequency, or 0 if it was
// absent.
func (d *Distribution) Remove(event int32) int32 {
	return d.Set(event, 0)
}

// NumberOfEvents returns the number of distinct events currently stored.
// An event whose count has been removed is not included.
func (d *Distribution) NumberOfEvents() int {
	return d.counts.Size()
}

// SumOfFrequencies returns the sum of frequencies of all stored events.
func (d *Distribution) SumOfFrequencies() int64 {
	return d.sum
}

// EventsByFrequency returns all (event, frequency) pairs ordered by
// descending frequency, ties broken by ascending event identifier. The
// returned slice is freshly allocated and unaffected by later mutations.
// Returns ErrInvariantViolation if an event is encountered twice, which is
// unreachable unless the backing storage has been corrupted.
func (d *Distribution) EventsByFrequency() ([]Pair, error) {
	pairs := d.materialize()

	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Frequency != pairs[j].Frequency {
			return pairs[i].Frequency > pairs[j].Frequency
		}
		return pairs[i].Event < pairs[j].Event
	})

	// Duplicates would sort adjacent: same frequency, same identifier.
	for i := 1; i < len(pairs); i++ {
		if pairs[i].Frequency == pairs[i-1].Frequency && pairs[i].Event == pairs[i-1].Event {
			return nil, fmt.Errorf("%w: event %d observed twice", ErrInvariantViolation, pairs[i].Event)
		}
	}

	return pairs, nil
}

// TopEventsByFrequency returns the first n pairs of EventsByFrequency.
// Returns ErrOutOfRange if n is negative or exceeds the number of distinct
// events.
func (d *Distribution) TopEventsByFrequency(n int) ([]Pair, error) {
	pairs, err := d.EventsByFrequency()
	if err != nil {
		return nil, err
	}
	if n < 0 || n > len(pairs) {
		return nil, fmt.Errorf("%w: requested %d of %d events", ErrOutOfRange, n, len(pairs))
	}
	return pairs[:n], nil
}

// EventsByID returns all (event, frequency) pairs ordered by ascending
// event identifier. The returned slice is freshly allocated and unaffected
// by later mutations. Returns ErrInvariantViolation if an event is
// encountered twice, which is unreachable unless the backing storage has
// been corrupted.
func (d *Distribution) EventsByID() ([]Pair, error) {
	pairs := d.materialize()

	sort.Slice(pairs, func(i, j int) bool {
		return pairs[i].Event < pairs[j].Event
	})

	for i := 1; i < len(pairs); i++ {
		if pairs[i].Event == pairs[i-1].Event {
			return nil, fmt.Errorf("%w: event %d observed twice", ErrInvariantViolation, pairs[i].Event)
		}
	}

	return pairs, nil
}

// FirstEventsByID returns the first n pairs of EventsByID.
// Returns ErrOutOfRange if n is negative or exceeds the number of distinct
// events.
func (d *Distribution) FirstEventsByID(n int) ([]Pair, error) {
	pairs, err := d.EventsByID()
	if err != nil {
		return nil, err
	}
	if n < 0 || n > len(pairs) {
		return nil, fmt.Errorf("%w: requested %d of %d events", ErrOutOfRange, n, len(pairs))
	}
	return pairs[:n], nil
}

func (d *Distribution) materialize() []Pair {
	pairs := make([]Pair, 0, d.counts.Size())
	d.counts.Range(func(event, frequency int32) bool {
		pairs = append(pairs, Pair{Event: event, Frequency: frequency})
		return true
	})
	return pairs
}

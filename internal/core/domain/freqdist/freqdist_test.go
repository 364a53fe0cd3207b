package freqdist

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// checkSumInvariant recomputes the sum of frequencies from a fresh sorted
// view and compares it against the maintained aggregate.
func checkSumInvariant(t *testing.T, d *Distribution) {
	t.Helper()

	pairs, err := d.EventsByID()
	if err != nil {
		t.Fatalf("EventsByID() unexpected error = %v", err)
	}

	var recomputed int64
	for _, pair := range pairs {
		if pair.Frequency == 0 {
			t.Errorf("found retained zero-frequency entry for event %d", pair.Event)
		}
		recomputed += int64(pair.Frequency)
	}

	if got := d.SumOfFrequencies(); got != recomputed {
		t.Errorf("SumOfFrequencies() = %d, want recomputed sum %d", got, recomputed)
	}
}

func TestNew(t *testing.T) {
	d := New()

	if got := d.NumberOfEvents(); got != 0 {
		t.Errorf("NumberOfEvents() = %d, want 0", got)
	}
	if got := d.SumOfFrequencies(); got != 0 {
		t.Errorf("SumOfFrequencies() = %d, want 0", got)
	}
	if got := d.Get(42); got != 0 {
		t.Errorf("Get(42) = %d, want 0 for never-observed event", got)
	}
}

func TestDistribution_Increment(t *testing.T) {
	d := New()

	d.Increment(7)
	d.Increment(7)
	d.Increment(3)

	if got := d.Get(7); got != 2 {
		t.Errorf("Get(7) = %d, want 2", got)
	}
	if got := d.Get(3); got != 1 {
		t.Errorf("Get(3) = %d, want 1", got)
	}
	if got := d.NumberOfEvents(); got != 2 {
		t.Errorf("NumberOfEvents() = %d, want 2", got)
	}
	if got := d.SumOfFrequencies(); got != 3 {
		t.Errorf("SumOfFrequencies() = %d, want 3", got)
	}
	checkSumInvariant(t, d)
}

func TestDistribution_IncrementBy(t *testing.T) {
	t.Run("positive count inserts and accumulates", func(t *testing.T) {
		d := New()
		d.IncrementBy(1, 5)
		d.IncrementBy(1, 2)

		if got := d.Get(1); got != 7 {
			t.Errorf("Get(1) = %d, want 7", got)
		}
		checkSumInvariant(t, d)
	})

	t.Run("zero count on an absent event does not create an entry", func(t *testing.T) {
		d := New()
		d.IncrementBy(1, 0)

		if got := d.NumberOfEvents(); got != 0 {
			t.Errorf("NumberOfEvents() = %d, want 0", got)
		}
		checkSumInvariant(t, d)
	})

	t.Run("negative count landing on zero removes the entry", func(t *testing.T) {
		d := New()
		d.IncrementBy(1, 5)
		d.IncrementBy(1, -5)

		if got := d.NumberOfEvents(); got != 0 {
			t.Errorf("NumberOfEvents() = %d, want 0", got)
		}
		if got := d.Get(1); got != 0 {
			t.Errorf("Get(1) = %d, want 0", got)
		}
		checkSumInvariant(t, d)
	})

	t.Run("negative count crossing zero stores the negative frequency", func(t *testing.T) {
		d := New()
		d.IncrementBy(1, 2)
		d.IncrementBy(1, -5)

		if got := d.Get(1); got != -3 {
			t.Errorf("Get(1) = %d, want -3", got)
		}
		if got := d.SumOfFrequencies(); got != -3 {
			t.Errorf("SumOfFrequencies() = %d, want -3", got)
		}
		checkSumInvariant(t, d)
	})
}

func TestDistribution_Set(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		d := New()

		if previous := d.Set(4, 9); previous != 0 {
			t.Errorf("Set(4, 9) previous = %d, want 0", previous)
		}
		if got := d.Get(4); got != 9 {
			t.Errorf("Get(4) = %d, want 9", got)
		}
		if previous := d.Set(4, 3); previous != 9 {
			t.Errorf("Set(4, 3) previous = %d, want 9", previous)
		}
		if got := d.SumOfFrequencies(); got != 3 {
			t.Errorf("SumOfFrequencies() = %d, want 3", got)
		}
		checkSumInvariant(t, d)
	})

	t.Run("setting zero does not retain the entry", func(t *testing.T) {
		d := New()
		d.Set(4, 9)

		if previous := d.Set(4, 0); previous != 9 {
			t.Errorf("Set(4, 0) previous = %d, want 9", previous)
		}
		if got := d.NumberOfEvents(); got != 0 {
			t.Errorf("NumberOfEvents() = %d, want 0 after zero set", got)
		}
		if got := d.SumOfFrequencies(); got != 0 {
			t.Errorf("SumOfFrequencies() = %d, want 0", got)
		}
		checkSumInvariant(t, d)
	})
}

func TestDistribution_Decrement(t *testing.T) {
	t.Run("reduces frequency by one", func(t *testing.T) {
		d := New()
		d.IncrementBy(5, 3)

		if err := d.Decrement(5); err != nil {
			t.Fatalf("Decrement(5) unexpected error = %v", err)
		}
		if got := d.Get(5); got != 2 {
			t.Errorf("Get(5) = %d, want 2", got)
		}
		checkSumInvariant(t, d)
	})

	t.Run("removes the entry when frequency reaches zero", func(t *testing.T) {
		d := New()
		d.Increment(5)

		if err := d.Decrement(5); err != nil {
			t.Fatalf("Decrement(5) unexpected error = %v", err)
		}
		if got := d.NumberOfEvents(); got != 0 {
			t.Errorf("NumberOfEvents() = %d, want 0", got)
		}
		if got := d.Get(5); got != 0 {
			t.Errorf("Get(5) = %d, want 0", got)
		}
		checkSumInvariant(t, d)
	})

	t.Run("absent event on an empty distribution", func(t *testing.T) {
		d := New()

		err := d.Decrement(99)
		if !errors.Is(err, ErrInvalidOperation) {
			t.Errorf("Decrement(99) error = %v, want ErrInvalidOperation", err)
		}
		checkSumInvariant(t, d)
	})
}

func TestDistribution_DecrementBy(t *testing.T) {
	t.Run("reduces frequency by count", func(t *testing.T) {
		d := New()
		d.IncrementBy(5, 7)

		if err := d.DecrementBy(5, 4); err != nil {
			t.Fatalf("DecrementBy(5, 4) unexpected error = %v", err)
		}
		if got := d.Get(5); got != 3 {
			t.Errorf("Get(5) = %d, want 3", got)
		}
		checkSumInvariant(t, d)
	})

	t.Run("count equal to frequency removes the entry", func(t *testing.T) {
		d := New()
		d.IncrementBy(5, 3)

		if err := d.DecrementBy(5, 3); err != nil {
			t.Fatalf("DecrementBy(5, 3) unexpected error = %v", err)
		}
		if got := d.NumberOfEvents(); got != 0 {
			t.Errorf("NumberOfEvents() = %d, want 0", got)
		}
		if got := d.Get(5); got != 0 {
			t.Errorf("Get(5) = %d, want 0", got)
		}
		checkSumInvariant(t, d)
	})

	t.Run("count past zero fails and leaves state unchanged", func(t *testing.T) {
		d := New()
		d.IncrementBy(5, 2)

		err := d.DecrementBy(5, 5)
		if !errors.Is(err, ErrInvalidOperation) {
			t.Errorf("DecrementBy(5, 5) error = %v, want ErrInvalidOperation", err)
		}
		if got := d.Get(5); got != 2 {
			t.Errorf("Get(5) = %d after failed decrement, want 2", got)
		}
		if got := d.SumOfFrequencies(); got != 2 {
			t.Errorf("SumOfFrequencies() = %d after failed decrement, want 2", got)
		}
		checkSumInvariant(t, d)
	})

	t.Run("absent event fails", func(t *testing.T) {
		d := New()
		d.Increment(1)

		err := d.DecrementBy(2, 1)
		if !errors.Is(err, ErrInvalidOperation) {
			t.Errorf("DecrementBy(2, 1) error = %v, want ErrInvalidOperation", err)
		}
		checkSumInvariant(t, d)
	})
}

func TestDistribution_Remove(t *testing.T) {
	d := New()
	d.IncrementBy(8, 4)
	d.IncrementBy(9, 6)

	if previous := d.Remove(8); previous != 4 {
		t.Errorf("Remove(8) = %d, want 4", previous)
	}
	if previous := d.Remove(8); previous != 0 {
		t.Errorf("Remove(8) on absent event = %d, want 0", previous)
	}
	if got := d.NumberOfEvents(); got != 1 {
		t.Errorf("NumberOfEvents() = %d, want 1", got)
	}
	if got := d.SumOfFrequencies(); got != 6 {
		t.Errorf("SumOfFrequencies() = %d, want 6", got)
	}
	checkSumInvariant(t, d)
}

// TestDistribution_SumInvariant runs a mixed mutation sequence, including
// failing operations, and checks the maintained sum after every step.
func TestDistribution_SumInvariant(t *testing.T) {
	d := New()

	steps := []struct {
		name   string
		mutate func() error
	}{
		{"increment 1", func() error { d.Increment(1); return nil }},
		{"increment 1 by 10", func() error { d.IncrementBy(1, 10); return nil }},
		{"increment 2 by 3", func() error { d.IncrementBy(2, 3); return nil }},
		{"set 3 to 5", func() error { d.Set(3, 5); return nil }},
		{"decrement 2", func() error { return d.Decrement(2) }},
		{"failed decrement of absent 77", func() error {
			if err := d.Decrement(77); !errors.Is(err, ErrInvalidOperation) {
				return fmt.Errorf("expected ErrInvalidOperation, got %v", err)
			}
			return nil
		}},
		{"failed over-decrement of 3", func() error {
			if err := d.DecrementBy(3, 100); !errors.Is(err, ErrInvalidOperation) {
				return fmt.Errorf("expected ErrInvalidOperation, got %v", err)
			}
			return nil
		}},
		{"decrement 3 by 5 removes it", func() error { return d.DecrementBy(3, 5) }},
		{"remove 1", func() error { d.Remove(1); return nil }},
		{"set 2 to 0 removes it", func() error { d.Set(2, 0); return nil }},
	}

	for _, step := range steps {
		if err := step.mutate(); err != nil {
			t.Fatalf("step %q unexpected error = %v", step.name, err)
		}
		checkSumInvariant(t, d)
	}

	if got := d.NumberOfEvents(); got != 0 {
		t.Errorf("NumberOfEvents() = %d at end of sequence, want 0", got)
	}
}

func buildExampleDistribution() *Distribution {
	// Events {5:3, 2:7, 9:7}: a frequency tie between 2 and 9.
	d := New()
	d.IncrementBy(5, 3)
	d.IncrementBy(2, 7)
	d.IncrementBy(9, 7)
	return d
}

func TestDistribution_EventsByFrequency(t *testing.T) {
	d := buildExampleDistribution()

	got, err := d.EventsByFrequency()
	if err != nil {
		t.Fatalf("EventsByFrequency() unexpected error = %v", err)
	}

	want := []Pair{{Event: 2, Frequency: 7}, {Event: 9, Frequency: 7}, {Event: 5, Frequency: 3}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("EventsByFrequency() mismatch (-want +got):\n%s", diff)
	}
}

func TestDistribution_EventsByID(t *testing.T) {
	d := buildExampleDistribution()

	got, err := d.EventsByID()
	if err != nil {
		t.Fatalf("EventsByID() unexpected error = %v", err)
	}

	want := []Pair{{Event: 2, Frequency: 7}, {Event: 5, Frequency: 3}, {Event: 9, Frequency: 7}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("EventsByID() mismatch (-want +got):\n%s", diff)
	}
}

func TestDistribution_TopEventsByFrequency(t *testing.T) {
	d := buildExampleDistribution()

	t.Run("truncates to n", func(t *testing.T) {
		got, err := d.TopEventsByFrequency(2)
		if err != nil {
			t.Fatalf("TopEventsByFrequency(2) unexpected error = %v", err)
		}
		want := []Pair{{Event: 2, Frequency: 7}, {Event: 9, Frequency: 7}}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("TopEventsByFrequency(2) mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("n equal to event count returns the full list", func(t *testing.T) {
		got, err := d.TopEventsByFrequency(d.NumberOfEvents())
		if err != nil {
			t.Fatalf("TopEventsByFrequency(%d) unexpected error = %v", d.NumberOfEvents(), err)
		}
		if len(got) != d.NumberOfEvents() {
			t.Errorf("TopEventsByFrequency() returned %d pairs, want %d", len(got), d.NumberOfEvents())
		}
	})

	t.Run("n past the event count fails", func(t *testing.T) {
		_, err := d.TopEventsByFrequency(d.NumberOfEvents() + 1)
		if !errors.Is(err, ErrOutOfRange) {
			t.Errorf("TopEventsByFrequency() error = %v, want ErrOutOfRange", err)
		}
	})

	t.Run("negative n fails", func(t *testing.T) {
		_, err := d.TopEventsByFrequency(-1)
		if !errors.Is(err, ErrOutOfRange) {
			t.Errorf("TopEventsByFrequency(-1) error = %v, want ErrOutOfRange", err)
		}
	})
}

func TestDistribution_FirstEventsByID(t *testing.T) {
	d := buildExampleDistribution()

	t.Run("truncates to n", func(t *testing.T) {
		got, err := d.FirstEventsByID(2)
		if err != nil {
			t.Fatalf("FirstEventsByID(2) unexpected error = %v", err)
		}
		want := []Pair{{Event: 2, Frequency: 7}, {Event: 5, Frequency: 3}}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("FirstEventsByID(2) mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("n past the event count fails", func(t *testing.T) {
		_, err := d.FirstEventsByID(4)
		if !errors.Is(err, ErrOutOfRange) {
			t.Errorf("FirstEventsByID(4) error = %v, want ErrOutOfRange", err)
		}
	})
}

// Sorted views are snapshots: mutations after extraction must not affect a
// previously returned slice.
func TestDistribution_ViewsAreSnapshots(t *testing.T) {
	d := buildExampleDistribution()

	before, err := d.EventsByFrequency()
	if err != nil {
		t.Fatalf("EventsByFrequency() unexpected error = %v", err)
	}
	snapshot := make([]Pair, len(before))
	copy(snapshot, before)

	d.IncrementBy(2, 100)
	d.Remove(5)

	if diff := cmp.Diff(snapshot, before); diff != "" {
		t.Errorf("extracted view changed after mutations (-want +got):\n%s", diff)
	}
}

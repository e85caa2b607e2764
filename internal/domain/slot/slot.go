package slot

import (
	"fmt"
	"time"
)

// Slot is the smallest bookable time unit for a court on a given date.
// Slots arrive from the backend chronologically ordered and contiguous
// (each slot's Start equals the previous slot's End); range selection
// relies on that invariant rather than re-verifying it.
type Slot struct {
	Start        time.Time
	End          time.Time
	Available    bool
	PricePerSlot *float64
	Currency     string
}

func (s Slot) Duration() time.Duration {
	return s.End.Sub(s.Start)
}

func (s Slot) Priced() bool {
	return s.PricePerSlot != nil
}

// Key identifies a slot within one court's calendar, used by the watcher
// to diff consecutive polls.
func (s Slot) Key() string {
	return fmt.Sprintf("%s_%s", s.Start.Format(time.RFC3339), s.End.Format(time.RFC3339))
}

// Day is one court's read-only, date-scoped slot sequence.
type Day struct {
	CourtID     int64
	Date        string // YYYY-MM-DD
	SlotMinutes int
	Slots       []Slot
}

// FreeSlots returns the available subset, preserving order.
func (d Day) FreeSlots() []Slot {
	free := make([]Slot, 0, len(d.Slots))
	for _, s := range d.Slots {
		if s.Available {
			free = append(free, s)
		}
	}
	return free
}

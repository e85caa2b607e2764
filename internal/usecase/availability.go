package usecase

import (
	"context"
	"sync"

	"courtbook/internal/domain/slot"
	"courtbook/internal/pkg/errs"
)

// AvailabilityFetcher is the slice of the API client this query needs.
type AvailabilityFetcher interface {
	Availability(ctx context.Context, courtID int64, date string) (*slot.Day, error)
}

// AvailabilityQuery loads a court's slots for a date with a latest-wins
// guard: when loads are issued in quick succession (e.g. the user flips
// dates), a response belonging to a superseded load is discarded instead
// of overwriting the newer snapshot. The underlying HTTP call is not
// cancelled; the result is simply no longer interesting.
type AvailabilityQuery struct {
	fetcher AvailabilityFetcher

	mu       sync.Mutex
	seq      uint64
	snapshot *slot.Day
}

func NewAvailabilityQuery(fetcher AvailabilityFetcher) *AvailabilityQuery {
	return &AvailabilityQuery{fetcher: fetcher}
}

// Load fetches availability for courtID/date. When a newer Load started
// while this one was in flight, the stale result is dropped and
// errs.ErrSuperseded returned; the retained snapshot always reflects the
// newest request.
func (q *AvailabilityQuery) Load(ctx context.Context, courtID int64, date string) (*slot.Day, error) {
	q.mu.Lock()
	q.seq++
	mySeq := q.seq
	q.mu.Unlock()

	day, err := q.fetcher.Availability(ctx, courtID, date)

	q.mu.Lock()
	defer q.mu.Unlock()
	if mySeq != q.seq {
		return nil, errs.ErrSuperseded
	}
	if err != nil {
		return nil, err
	}
	q.snapshot = day
	return day, nil
}

// Snapshot returns the most recently loaded day, or nil.
func (q *AvailabilityQuery) Snapshot() *slot.Day {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.snapshot
}

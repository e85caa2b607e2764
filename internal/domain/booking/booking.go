package booking

import "time"

// Status vocabulary is owned by the backend; the client treats the set
// as fixed and any unknown value as inactive.
type Status string

const (
	StatusPending       Status = "PENDING"
	StatusConfirmed     Status = "CONFIRMED"
	StatusCancelled     Status = "CANCELLED"
	StatusCancelledLate Status = "CANCELLED_LATE"
	StatusExpired       Status = "EXPIRED"
	StatusNoShow        Status = "NO_SHOW"
	StatusRefunded      Status = "REFUNDED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCancelledLate,
		StatusExpired, StatusNoShow, StatusRefunded:
		return true
	default:
		return false
	}
}

func (s Status) IsActive() bool {
	return s == StatusPending || s == StatusConfirmed
}

// IsTerminal reports whether no further transition can occur.
func (s Status) IsTerminal() bool {
	return s.IsValid() && !s.IsActive()
}

// Booking is server-owned; the client holds it as an opaque read model.
type Booking struct {
	ID            int64
	UserID        int64
	CourtID       int64
	StartDatetime time.Time
	EndDatetime   time.Time
	Status        Status
	PriceTotal    float64
	CreatedAt     time.Time
	ExpiresAt     *time.Time
}

func (b Booking) DurationMinutes() int {
	d := b.EndDatetime.Sub(b.StartDatetime)
	if d < 0 {
		return 0
	}
	return int(d / time.Minute)
}

// ExpiresIn reports the remaining confirmation window for a PENDING
// booking, for countdown display. Zero when not pending, not carrying a
// deadline, or already past it.
func (b Booking) ExpiresIn(now time.Time) time.Duration {
	if b.Status != StatusPending || b.ExpiresAt == nil {
		return 0
	}
	remaining := b.ExpiresAt.Sub(now)
	if remaining < 0 {
		return 0
	}
	return remaining
}

//go:build unit

package booking_test

import (
	"testing"
	"time"

	"courtbook/internal/domain/booking"

	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	t.Run("validity", func(t *testing.T) {
		valid := []booking.Status{
			booking.StatusPending,
			booking.StatusConfirmed,
			booking.StatusCancelled,
			booking.StatusCancelledLate,
			booking.StatusExpired,
			booking.StatusNoShow,
			booking.StatusRefunded,
		}
		for _, s := range valid {
			assert.True(t, s.IsValid(), s.String())
		}
		assert.False(t, booking.Status("UNKNOWN").IsValid())
		assert.False(t, booking.Status("").IsValid())
	})

	t.Run("only pending and confirmed are active", func(t *testing.T) {
		assert.True(t, booking.StatusPending.IsActive())
		assert.True(t, booking.StatusConfirmed.IsActive())
		assert.False(t, booking.StatusCancelled.IsActive())
		assert.False(t, booking.StatusExpired.IsActive())
	})

	t.Run("valid inactive statuses are terminal", func(t *testing.T) {
		assert.True(t, booking.StatusRefunded.IsTerminal())
		assert.True(t, booking.StatusNoShow.IsTerminal())
		assert.False(t, booking.StatusPending.IsTerminal())
		assert.False(t, booking.Status("UNKNOWN").IsTerminal())
	})
}

func TestBookingExpiresIn(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	deadline := now.Add(10 * time.Minute)

	t.Run("pending with future deadline counts down", func(t *testing.T) {
		b := booking.Booking{Status: booking.StatusPending, ExpiresAt: &deadline}
		assert.Equal(t, 10*time.Minute, b.ExpiresIn(now))
	})

	t.Run("past deadline reports zero", func(t *testing.T) {
		b := booking.Booking{Status: booking.StatusPending, ExpiresAt: &deadline}
		assert.Equal(t, time.Duration(0), b.ExpiresIn(now.Add(time.Hour)))
	})

	t.Run("non-pending or missing deadline reports zero", func(t *testing.T) {
		confirmed := booking.Booking{Status: booking.StatusConfirmed, ExpiresAt: &deadline}
		assert.Equal(t, time.Duration(0), confirmed.ExpiresIn(now))

		pending := booking.Booking{Status: booking.StatusPending}
		assert.Equal(t, time.Duration(0), pending.ExpiresIn(now))
	})
}

func TestBookingDurationMinutes(t *testing.T) {
	start := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

	b := booking.Booking{StartDatetime: start, EndDatetime: start.Add(90 * time.Minute)}
	assert.Equal(t, 90, b.DurationMinutes())

	inverted := booking.Booking{StartDatetime: start, EndDatetime: start.Add(-time.Hour)}
	assert.Equal(t, 0, inverted.DurationMinutes())
}

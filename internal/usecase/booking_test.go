//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"courtbook/internal/domain/booking"
	"courtbook/internal/domain/slot"
	"courtbook/internal/pkg/errs"
	"courtbook/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSubmitter struct {
	calls   int
	booking *booking.Booking
	err     error
}

func (f *fakeSubmitter) CreateBooking(_ context.Context, _ int64, _, _ time.Time) (*booking.Booking, error) {
	f.calls++
	return f.booking, f.err
}

type fakeSession struct {
	authenticated bool
	returnTo      string
	handedOff     bool
}

func (f *fakeSession) Authenticated() bool { return f.authenticated }

func (f *fakeSession) HandleUnauthenticated(returnTo string) {
	f.handedOff = true
	f.returnTo = returnTo
}

func freeSelection() *slot.Selection {
	base := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	p := 1000.0
	total := 2000.0
	return &slot.Selection{
		Start:      base,
		End:        base.Add(2 * time.Hour),
		Count:      2,
		AllFree:    true,
		TotalPrice: &total,
		Currency:   "ARS",
		Items: []slot.Slot{
			{Start: base, End: base.Add(time.Hour), Available: true, PricePerSlot: &p, Currency: "ARS"},
			{Start: base.Add(time.Hour), End: base.Add(2 * time.Hour), Available: true, PricePerSlot: &p, Currency: "ARS"},
		},
	}
}

func newFlow(sub *fakeSubmitter, sess *fakeSession) *usecase.BookingFlow {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return usecase.NewBookingFlow(sub, sess, logger)
}

func TestBookingFlowSubmit(t *testing.T) {
	t.Run("creates a booking from a confirmed selection", func(t *testing.T) {
		sel := freeSelection()
		sub := &fakeSubmitter{booking: &booking.Booking{ID: 42, Status: booking.StatusPending}}
		sess := &fakeSession{authenticated: true}

		result, err := newFlow(sub, sess).Submit(context.Background(), 7, sel, "/courts/7")
		require.NoError(t, err)
		require.NotNil(t, result.Booking)
		assert.Equal(t, int64(42), result.Booking.ID)
		assert.Equal(t, 1, sub.calls)
	})

	t.Run("nil selection never reaches the network", func(t *testing.T) {
		sub := &fakeSubmitter{}
		sess := &fakeSession{authenticated: true}

		_, err := newFlow(sub, sess).Submit(context.Background(), 7, nil, "/courts/7")
		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrNoSelection))
		assert.Equal(t, 0, sub.calls)
	})

	t.Run("range with unavailable slots never reaches the network", func(t *testing.T) {
		sel := freeSelection()
		sel.AllFree = false
		sub := &fakeSubmitter{}
		sess := &fakeSession{authenticated: true}

		_, err := newFlow(sub, sess).Submit(context.Background(), 7, sel, "/courts/7")
		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrSlotUnavailable))
		assert.Equal(t, 0, sub.calls)
	})

	t.Run("unauthenticated session hands off with the return target", func(t *testing.T) {
		sub := &fakeSubmitter{}
		sess := &fakeSession{authenticated: false}

		_, err := newFlow(sub, sess).Submit(context.Background(), 7, freeSelection(), "/courts/7?date=2024-06-01")
		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrUnauthenticated))
		assert.Equal(t, 0, sub.calls)
		assert.True(t, sess.handedOff)
		assert.Equal(t, "/courts/7?date=2024-06-01", sess.returnTo)
	})

	t.Run("conflict surfaces the race message", func(t *testing.T) {
		conflictErr := errs.Mark(errs.New("conflict"), errs.ErrConflict)
		sub := &fakeSubmitter{err: conflictErr}
		sess := &fakeSession{authenticated: true}

		result, err := newFlow(sub, sess).Submit(context.Background(), 7, freeSelection(), "/courts/7")
		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrConflict))
		require.NotNil(t, result)
		assert.Contains(t, result.Message, "taken by another user")
	})
}

func TestFailureMessage(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		contains string
	}{
		{name: "conflict", err: errs.Mark(errs.New("x"), errs.ErrConflict), contains: "taken by another user"},
		{name: "unauthenticated", err: errs.Mark(errs.New("x"), errs.ErrUnauthenticated), contains: "sign in"},
		{name: "no selection", err: errs.ErrNoSelection, contains: "Select a time range"},
		{name: "slot unavailable", err: errs.ErrSlotUnavailable, contains: "no longer available"},
		{name: "anything else", err: errs.New("boom"), contains: "try again"},
		{name: "server error", err: errs.Mark(errs.New("x"), errs.ErrServer), contains: "try again"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Contains(t, usecase.FailureMessage(tc.err), tc.contains)
		})
	}
}

package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"courtbook/internal/domain/booking"
	"courtbook/internal/domain/slot"
	"courtbook/internal/pkg/errs"
)

// BookingSubmitter is the slice of the API client the flow needs.
type BookingSubmitter interface {
	CreateBooking(ctx context.Context, courtID int64, start, end time.Time) (*booking.Booking, error)
}

// SessionState exposes the local authentication checks the flow performs
// before touching the network.
type SessionState interface {
	Authenticated() bool
	HandleUnauthenticated(returnTo string)
}

// BookingFlow converts a confirmed Selection plus a court identifier
// into a persisted booking, or reports why it could not be created.
type BookingFlow struct {
	submitter BookingSubmitter
	session   SessionState
	logger    *slog.Logger
}

func NewBookingFlow(submitter BookingSubmitter, session SessionState, logger *slog.Logger) *BookingFlow {
	return &BookingFlow{
		submitter: submitter,
		session:   session,
		logger:    logger,
	}
}

// SubmitResult carries the outcome plus a user-facing message for the
// failure classes the booking screen distinguishes.
type SubmitResult struct {
	Booking *booking.Booking
	Message string
}

// Submit validates local preconditions and posts the booking request.
// Price is computed and validated server-side; only the range is sent.
//
// Error classes surfaced to the caller:
//   - errs.ErrNoSelection / errs.ErrSlotUnavailable: local precondition
//     failures, submission must stay disabled;
//   - errs.ErrUnauthenticated: no usable token (no network call was
//     made) or the server rejected the one presented;
//   - errs.ErrConflict: another party claimed the range concurrently,
//     the expected outcome of a race — pick a different range;
//   - anything else: generic failure, the user may retry explicitly.
func (f *BookingFlow) Submit(ctx context.Context, courtID int64, sel *slot.Selection, returnTo string) (*SubmitResult, error) {
	if sel == nil {
		return nil, errs.ErrNoSelection
	}
	if !sel.AllFree {
		return nil, errs.ErrSlotUnavailable
	}

	if !f.session.Authenticated() {
		f.session.HandleUnauthenticated(returnTo)
		return nil, errs.ErrUnauthenticated
	}

	b, err := f.submitter.CreateBooking(ctx, courtID, sel.Start, sel.End)
	if err != nil {
		f.logger.Warn("booking submission failed",
			"court_id", courtID,
			"start", sel.Start,
			"end", sel.End,
			"error", err,
		)
		return &SubmitResult{Message: FailureMessage(err)}, err
	}

	f.logger.Info("booking created",
		"booking_id", b.ID,
		"court_id", courtID,
		"status", b.Status.String(),
	)
	return &SubmitResult{Booking: b}, nil
}

// FailureMessage maps an error to the message the booking screen shows.
// The 409 case must read as "range no longer available", never as a
// generic failure: losing the race is an expected outcome.
func FailureMessage(err error) string {
	switch {
	case errors.Is(err, errs.ErrConflict):
		return "That time range was just taken by another user. Please pick a different one."
	case errors.Is(err, errs.ErrUnauthenticated):
		return "You need to sign in to confirm the booking."
	case errors.Is(err, errs.ErrNoSelection):
		return "Select a time range first."
	case errors.Is(err, errs.ErrSlotUnavailable):
		return "One or more selected slots are no longer available. Go back and pick another range."
	default:
		return "Could not create the booking. Please try again."
	}
}

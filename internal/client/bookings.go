package client

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"courtbook/internal/domain/booking"
)

// CreateBooking submits a booking for the given range. The backend
// computes and validates the price; the client never sends one. A 409
// response means the range was claimed by another party concurrently and
// surfaces as errs.ErrConflict.
func (c *Client) CreateBooking(ctx context.Context, courtID int64, start, end time.Time) (*booking.Booking, error) {
	req := createBookingDTO{
		CourtID:       courtID,
		StartDatetime: start.Format(time.RFC3339),
		EndDatetime:   end.Format(time.RFC3339),
	}

	var dto bookingDTO
	if err := c.post(ctx, "/bookings", req, &dto); err != nil {
		return nil, err
	}
	return toDomainBooking(dto)
}

func (c *Client) GetBooking(ctx context.Context, bookingID int64) (*booking.Booking, error) {
	var dto bookingDTO
	if err := c.get(ctx, fmt.Sprintf("/bookings/%d", bookingID), nil, &dto); err != nil {
		return nil, err
	}
	return toDomainBooking(dto)
}

// ListBookingsParams filters booking lists. Zero values are omitted.
type ListBookingsParams struct {
	CourtID  int64
	Status   booking.Status
	DateFrom string
	DateTo   string
	Mine     bool
}

func (c *Client) ListBookings(ctx context.Context, params ListBookingsParams) ([]booking.Booking, error) {
	query := url.Values{}
	if params.CourtID != 0 {
		query.Set("court_id", fmt.Sprintf("%d", params.CourtID))
	}
	if params.Status != "" {
		query.Set("status", params.Status.String())
	}
	if params.DateFrom != "" {
		query.Set("date_from", params.DateFrom)
	}
	if params.DateTo != "" {
		query.Set("date_to", params.DateTo)
	}
	if params.Mine {
		query.Set("mine", "1")
	}

	var dtos []bookingDTO
	if err := c.get(ctx, "/bookings", query, &dtos); err != nil {
		return nil, err
	}
	return toDomainBookings(dtos)
}

// Booking state transitions are opaque to the client: each posts the
// matching action endpoint and returns the updated booking.

func (c *Client) ConfirmBooking(ctx context.Context, bookingID int64) (*booking.Booking, error) {
	return c.bookingAction(ctx, bookingID, "confirm")
}

func (c *Client) DeclineBooking(ctx context.Context, bookingID int64) (*booking.Booking, error) {
	return c.bookingAction(ctx, bookingID, "decline")
}

func (c *Client) CancelBooking(ctx context.Context, bookingID int64) (*booking.Booking, error) {
	return c.bookingAction(ctx, bookingID, "cancel")
}

func (c *Client) bookingAction(ctx context.Context, bookingID int64, action string) (*booking.Booking, error) {
	var dto bookingDTO
	if err := c.post(ctx, fmt.Sprintf("/bookings/%d/%s", bookingID, action), nil, &dto); err != nil {
		return nil, err
	}
	return toDomainBooking(dto)
}

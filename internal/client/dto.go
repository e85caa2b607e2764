package client

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"courtbook/internal/pkg/errs"
)

// tokenResponse is the one canonical token schema. The backend contract
// is access_token (required) plus an optional rotated refresh_token;
// anything else is a malformed response and fails fast rather than being
// probed for alternative field names.
type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

func decodeTokenResponse(r io.Reader) (tokenResponse, error) {
	var tr tokenResponse
	if err := json.NewDecoder(r).Decode(&tr); err != nil {
		return tokenResponse{}, errs.Mark(errs.Wrap(err, "decode token response"), errs.ErrTokenResponse)
	}
	if tr.AccessToken == "" {
		return tokenResponse{}, errs.Mark(errs.New("token response missing access_token"), errs.ErrTokenResponse)
	}
	return tr, nil
}

type availabilitySlotDTO struct {
	Start        time.Time `json:"start"`
	End          time.Time `json:"end"`
	Available    bool      `json:"available"`
	PricePerSlot *float64  `json:"price_per_slot"`
	Currency     *string   `json:"currency"`
}

type availabilityResponseDTO struct {
	CourtID     int64                 `json:"court_id"`
	Date        string                `json:"date"`
	SlotMinutes *int                  `json:"slot_minutes"`
	Slots       []availabilitySlotDTO `json:"slots"`
}

type bookingDTO struct {
	ID            int64      `json:"id"`
	UserID        int64      `json:"user_id"`
	CourtID       int64      `json:"court_id"`
	StartDatetime time.Time  `json:"start_datetime"`
	EndDatetime   time.Time  `json:"end_datetime"`
	Status        string     `json:"status"`
	PriceTotal    float64    `json:"price_total"`
	CreatedAt     time.Time  `json:"created_at"`
	ExpiresAt     *time.Time `json:"expires_at"`
}

type createBookingDTO struct {
	CourtID       int64  `json:"court_id"`
	StartDatetime string `json:"start_datetime"`
	EndDatetime   string `json:"end_datetime"`
}

// errorBodyDTO covers the backend's error envelope: detail is either a
// plain string or a structured validation payload.
type errorBodyDTO struct {
	Detail any `json:"detail"`
}

func (e errorBodyDTO) text() string {
	switch d := e.Detail.(type) {
	case nil:
		return ""
	case string:
		return d
	default:
		return fmt.Sprintf("%v", d)
	}
}

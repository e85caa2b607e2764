package client

// Administrative CRUD wrappers for owner/admin screens. These are thin
// endpoint wrappers: each calls the matching endpoint and returns the
// backend's representation unchanged.

import (
	"context"
	"fmt"
)

type Venue struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	Address   *string  `json:"address"`
	City      *string  `json:"city"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

type VenueInput struct {
	Name    string  `json:"name"`
	Address *string `json:"address,omitempty"`
	City    *string `json:"city,omitempty"`
}

type Court struct {
	ID      int64   `json:"id"`
	VenueID int64   `json:"venue_id"`
	Sport   string  `json:"sport"`
	Surface *string `json:"surface"`
	Indoor  bool    `json:"indoor"`
	Number  *string `json:"number"`
	Notes   *string `json:"notes"`
}

type CourtInput struct {
	Sport   string  `json:"sport"`
	Surface *string `json:"surface,omitempty"`
	Indoor  *bool   `json:"indoor,omitempty"`
	Number  *string `json:"number,omitempty"`
	Notes   *string `json:"notes,omitempty"`
}

type Price struct {
	ID           int64   `json:"id"`
	CourtID      int64   `json:"court_id"`
	Weekday      *int    `json:"weekday"`
	StartTime    string  `json:"start_time"`
	EndTime      string  `json:"end_time"`
	PricePerSlot float64 `json:"price_per_slot"`
	Currency     string  `json:"currency"`
}

type PriceInput struct {
	Weekday      *int    `json:"weekday,omitempty"`
	StartTime    string  `json:"start_time"`
	EndTime      string  `json:"end_time"`
	PricePerSlot float64 `json:"price_per_slot"`
	Currency     string  `json:"currency,omitempty"`
}

type Schedule struct {
	ID        int64  `json:"id"`
	CourtID   int64  `json:"court_id"`
	Weekday   int    `json:"weekday"`
	OpenTime  string `json:"open_time"`
	CloseTime string `json:"close_time"`
}

type ScheduleInput struct {
	Weekday   int    `json:"weekday"`
	OpenTime  string `json:"open_time"`
	CloseTime string `json:"close_time"`
}

// ---- Venues ----

func (c *Client) ListVenues(ctx context.Context) ([]Venue, error) {
	var venues []Venue
	if err := c.get(ctx, "/venues", nil, &venues); err != nil {
		return nil, err
	}
	return venues, nil
}

func (c *Client) GetVenue(ctx context.Context, venueID int64) (*Venue, error) {
	var venue Venue
	if err := c.get(ctx, fmt.Sprintf("/venues/%d", venueID), nil, &venue); err != nil {
		return nil, err
	}
	return &venue, nil
}

func (c *Client) CreateVenue(ctx context.Context, input VenueInput) (*Venue, error) {
	var venue Venue
	if err := c.post(ctx, "/venues", input, &venue); err != nil {
		return nil, err
	}
	return &venue, nil
}

func (c *Client) UpdateVenue(ctx context.Context, venueID int64, input VenueInput) (*Venue, error) {
	var venue Venue
	if err := c.put(ctx, fmt.Sprintf("/venues/%d", venueID), input, &venue); err != nil {
		return nil, err
	}
	return &venue, nil
}

func (c *Client) DeleteVenue(ctx context.Context, venueID int64) error {
	return c.del(ctx, fmt.Sprintf("/venues/%d", venueID))
}

// ---- Venue-scoped courts ----

func (c *Client) ListVenueCourts(ctx context.Context, venueID int64) ([]Court, error) {
	var courts []Court
	if err := c.get(ctx, fmt.Sprintf("/venues/%d/courts", venueID), nil, &courts); err != nil {
		return nil, err
	}
	return courts, nil
}

func (c *Client) CreateCourt(ctx context.Context, venueID int64, input CourtInput) (*Court, error) {
	var court Court
	if err := c.post(ctx, fmt.Sprintf("/venues/%d/courts", venueID), input, &court); err != nil {
		return nil, err
	}
	return &court, nil
}

func (c *Client) UpdateCourt(ctx context.Context, venueID, courtID int64, input CourtInput) (*Court, error) {
	var court Court
	if err := c.put(ctx, fmt.Sprintf("/venues/%d/courts/%d", venueID, courtID), input, &court); err != nil {
		return nil, err
	}
	return &court, nil
}

func (c *Client) DeleteCourt(ctx context.Context, venueID, courtID int64) error {
	return c.del(ctx, fmt.Sprintf("/venues/%d/courts/%d", venueID, courtID))
}

// ---- Court prices ----

func (c *Client) ListPrices(ctx context.Context, venueID, courtID int64) ([]Price, error) {
	var prices []Price
	if err := c.get(ctx, pricesPath(venueID, courtID), nil, &prices); err != nil {
		return nil, err
	}
	return prices, nil
}

func (c *Client) CreatePrice(ctx context.Context, venueID, courtID int64, input PriceInput) (*Price, error) {
	var price Price
	if err := c.post(ctx, pricesPath(venueID, courtID), input, &price); err != nil {
		return nil, err
	}
	return &price, nil
}

func (c *Client) UpdatePrice(ctx context.Context, venueID, courtID, priceID int64, input PriceInput) (*Price, error) {
	var price Price
	if err := c.patch(ctx, fmt.Sprintf("%s/%d", pricesPath(venueID, courtID), priceID), input, &price); err != nil {
		return nil, err
	}
	return &price, nil
}

func (c *Client) DeletePrice(ctx context.Context, venueID, courtID, priceID int64) error {
	return c.del(ctx, fmt.Sprintf("%s/%d", pricesPath(venueID, courtID), priceID))
}

func pricesPath(venueID, courtID int64) string {
	return fmt.Sprintf("/venues/%d/courts/%d/prices", venueID, courtID)
}

// ---- Court schedules ----

func (c *Client) ListSchedules(ctx context.Context, courtID int64) ([]Schedule, error) {
	var schedules []Schedule
	if err := c.get(ctx, fmt.Sprintf("/courts/%d/schedules", courtID), nil, &schedules); err != nil {
		return nil, err
	}
	return schedules, nil
}

func (c *Client) CreateSchedule(ctx context.Context, courtID int64, input ScheduleInput) (*Schedule, error) {
	var schedule Schedule
	if err := c.post(ctx, fmt.Sprintf("/courts/%d/schedules", courtID), input, &schedule); err != nil {
		return nil, err
	}
	return &schedule, nil
}

func (c *Client) UpdateSchedule(ctx context.Context, courtID, scheduleID int64, input ScheduleInput) (*Schedule, error) {
	var schedule Schedule
	if err := c.put(ctx, fmt.Sprintf("/courts/%d/schedules/%d", courtID, scheduleID), input, &schedule); err != nil {
		return nil, err
	}
	return &schedule, nil
}

func (c *Client) DeleteSchedule(ctx context.Context, courtID, scheduleID int64) error {
	return c.del(ctx, fmt.Sprintf("/courts/%d/schedules/%d", courtID, scheduleID))
}

// ReplaceSchedules overwrites a court's weekly schedule in one call.
func (c *Client) ReplaceSchedules(ctx context.Context, courtID int64, inputs []ScheduleInput) ([]Schedule, error) {
	var schedules []Schedule
	if err := c.put(ctx, fmt.Sprintf("/courts/%d/schedules", courtID), inputs, &schedules); err != nil {
		return nil, err
	}
	return schedules, nil
}

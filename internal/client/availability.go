package client

import (
	"context"
	"fmt"
	"net/url"

	"courtbook/internal/domain/slot"
)

// Availability fetches one court's slot sequence for a calendar date
// (YYYY-MM-DD). The backend guarantees slots are chronologically ordered
// and contiguous.
func (c *Client) Availability(ctx context.Context, courtID int64, date string) (*slot.Day, error) {
	query := url.Values{}
	query.Set("date", date)

	var dto availabilityResponseDTO
	if err := c.get(ctx, fmt.Sprintf("/courts/%d/availability", courtID), query, &dto); err != nil {
		return nil, err
	}
	return toDomainDay(dto), nil
}

// CourtDetail is the public court view used by detail pages.
type CourtDetail struct {
	ID        int64    `json:"id"`
	VenueID   int64    `json:"venue_id"`
	VenueName string   `json:"venue_name"`
	CourtName string   `json:"court_name"`
	Sport     string   `json:"sport"`
	Surface   *string  `json:"surface"`
	Indoor    bool     `json:"indoor"`
	Latitude  *float64 `json:"venue_latitude"`
	Longitude *float64 `json:"venue_longitude"`
	Address   *string  `json:"address"`
}

// CourtPublic fetches the public detail view of a court.
func (c *Client) CourtPublic(ctx context.Context, courtID int64) (*CourtDetail, error) {
	var detail CourtDetail
	if err := c.get(ctx, fmt.Sprintf("/venues/courts/%d", courtID), nil, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// SearchCourtsParams filters the public court search.
type SearchCourtsParams struct {
	Query    string
	Sport    string
	Lat      *float64
	Lng      *float64
	RadiusKm *float64
	Limit    int
}

// CourtSearchResult is one row of the public search response.
type CourtSearchResult struct {
	ID         int64    `json:"id"`
	VenueID    int64    `json:"venue_id"`
	VenueName  string   `json:"venue_name"`
	CourtName  string   `json:"court_name"`
	Sport      string   `json:"sport"`
	Surface    *string  `json:"surface"`
	Indoor     *bool    `json:"indoor"`
	DistanceKm *float64 `json:"distance_km"`
	PriceHint  *float64 `json:"price_hint"`
	Address    *string  `json:"address"`
}

// SearchCourts queries the public court search.
func (c *Client) SearchCourts(ctx context.Context, params SearchCourtsParams) ([]CourtSearchResult, error) {
	query := url.Values{}
	if params.Query != "" {
		query.Set("q", params.Query)
	}
	if params.Sport != "" {
		query.Set("sport", params.Sport)
	}
	if params.Lat != nil {
		query.Set("lat", fmt.Sprintf("%g", *params.Lat))
	}
	if params.Lng != nil {
		query.Set("lng", fmt.Sprintf("%g", *params.Lng))
	}
	if params.RadiusKm != nil {
		query.Set("radius_km", fmt.Sprintf("%g", *params.RadiusKm))
	}
	if params.Limit > 0 {
		query.Set("limit", fmt.Sprintf("%d", params.Limit))
	}

	var results []CourtSearchResult
	if err := c.get(ctx, "/venues/courts/search", query, &results); err != nil {
		return nil, err
	}
	return results, nil
}

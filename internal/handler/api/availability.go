package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"courtbook/internal/domain/slot"
	"courtbook/internal/handler/httperr"
	"courtbook/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// AvailabilityReader is the slice of the API client these handlers need.
type AvailabilityReader interface {
	Availability(ctx context.Context, courtID int64, date string) (*slot.Day, error)
}

type AvailabilityHandler struct {
	reader AvailabilityReader
}

func NewAvailabilityHandler(reader AvailabilityReader) *AvailabilityHandler {
	return &AvailabilityHandler{reader: reader}
}

type slotResponse struct {
	Start        time.Time `json:"start"`
	End          time.Time `json:"end"`
	Available    bool      `json:"available"`
	PricePerSlot *float64  `json:"price_per_slot"`
	Currency     string    `json:"currency,omitempty"`
}

type availabilityResponse struct {
	CourtID     int64          `json:"court_id"`
	Date        string         `json:"date"`
	SlotMinutes int            `json:"slot_minutes"`
	Slots       []slotResponse `json:"slots"`
}

// GetAvailability proxies one court's slots for a date through the
// authenticated client.
func (h *AvailabilityHandler) GetAvailability(c *gin.Context) {
	courtID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid court id", nil)
		return
	}

	date := c.Query("date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Newf("invalid date %q", date), "Expected date=YYYY-MM-DD", nil)
		return
	}

	day, err := h.reader.Availability(c.Request.Context(), courtID, date)
	if err != nil {
		abortFromError(c, err)
		return
	}

	c.JSON(http.StatusOK, toAvailabilityResponse(day))
}

func toAvailabilityResponse(day *slot.Day) availabilityResponse {
	slots := make([]slotResponse, 0, len(day.Slots))
	for _, s := range day.Slots {
		slots = append(slots, slotResponse{
			Start:        s.Start,
			End:          s.End,
			Available:    s.Available,
			PricePerSlot: s.PricePerSlot,
			Currency:     s.Currency,
		})
	}
	return availabilityResponse{
		CourtID:     day.CourtID,
		Date:        day.Date,
		SlotMinutes: day.SlotMinutes,
		Slots:       slots,
	}
}

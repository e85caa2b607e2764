package api

import (
	"net/http"
	"time"

	"courtbook/internal/domain/slot"
	"courtbook/internal/handler/httperr"
	"courtbook/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type QuoteHandler struct {
	reader AvailabilityReader
}

func NewQuoteHandler(reader AvailabilityReader) *QuoteHandler {
	return &QuoteHandler{reader: reader}
}

type quoteRequest struct {
	CourtID int64     `json:"court_id" binding:"required"`
	Date    string    `json:"date" binding:"required"`
	Start   time.Time `json:"start" binding:"required"`
	End     time.Time `json:"end" binding:"required"`
}

type quoteResponse struct {
	Start           time.Time `json:"start"`
	End             time.Time `json:"end"`
	Count           int       `json:"count"`
	AllFree         bool      `json:"all_free"`
	TotalPrice      *float64  `json:"total_price"`
	Currency        string    `json:"currency"`
	DurationMinutes int       `json:"duration_minutes"`
}

// Quote derives a selection for two boundary instants over a court's
// current availability. Boundary mismatch and in-range unavailability
// are distinct 422 cases: the first means "nothing selected", the second
// blocks submission and asks for reselection.
func (h *QuoteHandler) Quote(c *gin.Context) {
	var req quoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Newf("invalid date %q", req.Date), "Expected date=YYYY-MM-DD", nil)
		return
	}

	day, err := h.reader.Availability(c.Request.Context(), req.CourtID, req.Date)
	if err != nil {
		abortFromError(c, err)
		return
	}

	sel := slot.NewSelection(day.Slots, req.Start, req.End)
	if sel == nil {
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, errs.ErrNoSelection,
			"Selection boundaries do not match any slot", nil)
		return
	}
	if !sel.AllFree {
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, errs.ErrSlotUnavailable,
			"Selected range contains unavailable slots", nil)
		return
	}

	c.JSON(http.StatusOK, quoteResponse{
		Start:           sel.Start,
		End:             sel.End,
		Count:           sel.Count,
		AllFree:         sel.AllFree,
		TotalPrice:      sel.TotalPrice,
		Currency:        sel.Currency,
		DurationMinutes: int(sel.Duration() / time.Minute),
	})
}

package api

import (
	"errors"
	"net/http"

	"courtbook/internal/handler/httperr"
	"courtbook/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// abortFromError maps the client/usecase error taxonomy onto HTTP
// statuses for the local API. Backend statuses pass through their class;
// network failures surface as 502 so callers can tell "backend broken"
// from "request wrong".
func abortFromError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrUnauthenticated):
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Authentication against the booking backend required", nil)
	case errors.Is(err, errs.ErrForbidden):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Insufficient permissions", nil)
	case errors.Is(err, errs.ErrNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
	case errors.Is(err, errs.ErrConflict):
		httperr.AbortWithError(c, http.StatusConflict, err, "Time range already taken", nil)
	case errors.Is(err, errs.ErrValidation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed", err.Error())
	case errors.Is(err, errs.ErrNetwork):
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Booking backend unreachable", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

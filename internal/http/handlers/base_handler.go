// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tripdeck/internal/modules/quota"
	"tripdeck/internal/modules/search"
	"tripdeck/internal/modules/trip"
)

type errorResponse struct {
	Error string `json:"error"`
}

// isValidUID ensures UIDs are alphanumeric and at most 64 chars (covers
// Firebase-style UIDs without letting arbitrary strings hit the DB).
func isValidUID(v string) bool {
	if v == "" || len(v) > 64 {
		return false
	}
	for _, c := range v {
		if (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_' || c == '-' {
			continue
		}
		return false
	}
	return true
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

func writeSearchError(c *gin.Context, err error) {
	var perr *search.ProviderError
	switch {
	case errors.Is(err, trip.ErrInvalid):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, quota.ErrInsufficientSearches):
		writeError(c, http.StatusTooManyRequests, err.Error())
	case errors.As(err, &perr):
		writeError(c, http.StatusBadGateway, perr.Message())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}

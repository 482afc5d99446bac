// README: Itinerary handler (deterministic day-by-day plan).
package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"tripdeck/internal/modules/itinerary"
	"tripdeck/internal/modules/trip"
)

// Planner generates day plans for a trip.
type Planner interface {
	Generate(ctx context.Context, q trip.Query) ([]itinerary.DayPlan, error)
}

type ItineraryHandler struct {
	planner Planner
}

func NewItineraryHandler(planner Planner) *ItineraryHandler {
	return &ItineraryHandler{planner: planner}
}

type itineraryReq struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	CheckIn     string `json:"check_in"`
	CheckOut    string `json:"check_out"`
	Guests      int    `json:"guests"`
	Rooms       int    `json:"rooms"`
}

func (r itineraryReq) parseQuery() trip.Query {
	q := trip.Query{
		Origin:      strings.TrimSpace(r.Origin),
		Destination: strings.TrimSpace(r.Destination),
		Guests:      r.Guests,
		Rooms:       r.Rooms,
	}
	if t, err := time.Parse(dateLayout, r.CheckIn); err == nil {
		q.CheckIn = t
	}
	if t, err := time.Parse(dateLayout, r.CheckOut); err == nil {
		q.CheckOut = t
	}
	return q
}

// Generate handles POST /api/trips/itinerary.
func (h *ItineraryHandler) Generate(c *gin.Context) {
	var req itineraryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	q := req.parseQuery()
	if err := q.Validate(); err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	days, err := h.planner.Generate(ctx, q)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			writeError(c, http.StatusRequestTimeout, "itinerary generation cancelled")
			return
		}
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(c, http.StatusOK, map[string]any{"days": days})
}

// README: Hotel search handler (quota-guarded AI recommendations).
package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"tripdeck/internal/modules/search"
	"tripdeck/internal/modules/trip"
)

const dateLayout = "2006-01-02"

// Searcher runs a hotel search end to end.
type Searcher interface {
	Search(ctx context.Context, uid string, q trip.Query) (*search.Result, error)
}

type SearchHandler struct {
	search Searcher
}

func NewSearchHandler(searchSvc Searcher) *SearchHandler {
	return &SearchHandler{search: searchSvc}
}

type searchReq struct {
	UID         string `json:"uid"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	CheckIn     string `json:"check_in"`
	CheckOut    string `json:"check_out"`
	Guests      int    `json:"guests"`
	Rooms       int    `json:"rooms"`
}

// parseQuery turns the wire request into a trip.Query. Unparseable dates
// are left zero so trip.Validate reports them uniformly.
func (r searchReq) parseQuery() trip.Query {
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

// Search handles POST /api/trips/search.
func (h *SearchHandler) Search(c *gin.Context) {
	var req searchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	req.UID = strings.TrimSpace(req.UID)
	if req.UID == "" {
		writeError(c, http.StatusBadRequest, "missing uid")
		return
	}
	if !isValidUID(req.UID) {
		writeError(c, http.StatusBadRequest, "invalid uid")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 60*time.Second)
	defer cancel()

	res, err := h.search.Search(ctx, req.UID, req.parseQuery())
	if err != nil {
		writeSearchError(c, err)
		return
	}

	writeJSON(c, http.StatusOK, res)
}

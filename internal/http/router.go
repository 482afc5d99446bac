// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripdeck/internal/http/handlers"
	"tripdeck/internal/http/middleware"
)

func NewRouter(searchSvc handlers.Searcher, planner handlers.Planner) http.Handler {
	r := gin.New()
	r.Use(middleware.Logging(), middleware.Recovery())

	searchHandler := handlers.NewSearchHandler(searchSvc)
	r.POST("/api/trips/search", searchHandler.Search)

	itineraryHandler := handlers.NewItineraryHandler(planner)
	r.POST("/api/trips/itinerary", itineraryHandler.Generate)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}

// Package handlers wires the HTTP surface to the trip pipeline. Handlers
// are methods on API so tests can construct one with fake services.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"weekendtraveller/services"
	"weekendtraveller/store"
)

// API holds the injected collaborators for every handler.
type API struct {
	Store     *store.Store
	Assembler *services.TripAssembler
	Media     *services.MediaEnricher
	Generator *services.ItineraryGenerator
	JWTSecret []byte
}

func NewAPI(s *store.Store, assembler *services.TripAssembler, media *services.MediaEnricher, generator *services.ItineraryGenerator, jwtSecret []byte) *API {
	return &API{
		Store:     s,
		Assembler: assembler,
		Media:     media,
		Generator: generator,
		JWTSecret: jwtSecret,
	}
}

// Register attaches all routes to the engine.
func (a *API) Register(r *gin.Engine) {
	r.POST("/search", a.Search)

	api := r.Group("/api")
	{
		api.GET("/health", a.Health)
		api.GET("/destinations/suggest", a.Suggest)
		api.GET("/destinations/:slug", a.DestinationBySlug)
		api.POST("/generate-itinerary", a.GenerateItinerary)
		api.POST("/itinerary/pdf", a.ItineraryPDF)
		api.GET("/video/background", a.BackgroundVideo)
		api.POST("/login", a.Login)
	}
}

func (a *API) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":       "ok",
		"service":      "Weekend Traveller API",
		"destinations": a.Store.Len(),
	})
}

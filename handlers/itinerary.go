package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"weekendtraveller/services"
	"weekendtraveller/store"
)

type ItineraryRequest struct {
	Destination string `json:"destination" binding:"required"`
	Query       string `json:"query"`
}

// GenerateItinerary produces a multi-day plan for a destination. Unknown
// names get a minimal synthesized record so the call still succeeds with
// the templated plan; there is no failure path here.
func (a *API) GenerateItinerary(c *gin.Context) {
	var req ItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	dest := a.resolveDestination(req.Destination)
	plan := a.Generator.Generate(dest, req.Query, dest.IdealDurationDays)
	c.JSON(http.StatusOK, plan)
}

// ItineraryPDF generates a plan and streams it back as a PDF attachment.
// Stateless: nothing is persisted between generate and download.
func (a *API) ItineraryPDF(c *gin.Context) {
	var req ItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	dest := a.resolveDestination(req.Destination)
	plan := a.Generator.Generate(dest, req.Query, dest.IdealDurationDays)

	pdfBytes, err := services.GenerateItineraryPDF(dest.Name, plan)
	if err != nil {
		log.Printf("❌ PDF generation failed for %s: %v", dest.Name, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate PDF"})
		return
	}

	c.Header("Content-Disposition", "attachment; filename=weekend-traveller-itinerary.pdf")
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

func (a *API) resolveDestination(name string) store.Destination {
	if d := a.Store.ByName(name); d != nil {
		return *d
	}
	return store.Destination{
		Name:              strings.TrimSpace(name),
		IdealDurationDays: "2",
	}
}

package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"weekendtraveller/services"
)

type SearchRequest struct {
	Query    string `json:"query" binding:"required"`
	Location string `json:"location"`
}

type SearchResponse struct {
	Query string          `json:"query"`
	Trips []services.Trip `json:"trips"`
}

// Search runs the full match → enrich → itinerary pipeline for one query.
// Assembly never fails; the only error path is a malformed request body.
func (a *API) Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	query := strings.TrimSpace(req.Query)
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query must not be empty"})
		return
	}
	if req.Location != "" {
		query += " " + strings.TrimSpace(req.Location)
	}

	c.JSON(http.StatusOK, SearchResponse{
		Query: req.Query,
		Trips: a.Assembler.Assemble(query),
	})
}

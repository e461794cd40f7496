package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"weekendtraveller/store"
)

const suggestLimit = 8

type destinationResponse struct {
	store.Destination
	ImageURL string `json:"image_url"`
	VideoURL string `json:"video_url,omitempty"`
}

// DestinationBySlug returns one destination enriched with media, or a
// structured not-found payload. The slug is the only identity contract.
func (a *API) DestinationBySlug(c *gin.Context) {
	dest := a.Store.BySlug(c.Param("slug"))
	if dest == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Destination not found"})
		return
	}

	media := a.Media.FetchMedia(dest.Name + " " + dest.Type)
	c.JSON(http.StatusOK, destinationResponse{
		Destination: *dest,
		ImageURL:    media.ImageURL,
		VideoURL:    media.VideoURL,
	})
}

// Suggest returns destination names matching the typed prefix/substring.
func (a *API) Suggest(c *gin.Context) {
	c.JSON(http.StatusOK, a.Store.Suggest(c.Query("q"), suggestLimit))
}

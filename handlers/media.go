package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// BackgroundVideo returns a hero video with Pexels attribution for the
// landing page, or {"video_url": null} when no provider is available.
func (a *API) BackgroundVideo(c *gin.Context) {
	query := c.DefaultQuery("query", "india travel nature")

	video := a.Media.FetchBackgroundVideo(query)
	if video == nil {
		c.JSON(http.StatusOK, gin.H{"video_url": nil})
		return
	}
	c.JSON(http.StatusOK, video)
}

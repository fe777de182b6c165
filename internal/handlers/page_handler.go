package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PageHandler serves the static pages.
type PageHandler struct{}

// NewPageHandler creates a new PageHandler.
func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

// Index renders the landing page.
func (h *PageHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{"Title": "Home"})
}

// About renders the about page.
func (h *PageHandler) About(c *gin.Context) {
	c.HTML(http.StatusOK, "about.html", gin.H{"Title": "About"})
}

// Health reports that the process is serving requests.
// @Summary     Health check
// @Tags        system
// @Produce     json
// @Success     200 {object} map[string]string "Service is up"
// @Router      /health [get]
func (h *PageHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

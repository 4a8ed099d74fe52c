package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/job-map-search/internal/views"
)

type AssetHandler struct {
	Page *views.Page
}

func NewAssetHandler(p *views.Page) *AssetHandler {
	return &AssetHandler{Page: p}
}

func (h *AssetHandler) Script(c *gin.Context) {
	c.Data(http.StatusOK, "text/javascript; charset=utf-8", h.Page.Script())
}

func (h *AssetHandler) Stylesheet(c *gin.Context) {
	c.Data(http.StatusOK, "text/css; charset=utf-8", []byte(views.Stylesheet))
}

func (h *AssetHandler) Placeholder(c *gin.Context) {
	c.Header("Cache-Control", "public, max-age=86400")
	c.Data(http.StatusOK, "image/svg+xml", []byte(views.PlaceholderSVG))
}

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

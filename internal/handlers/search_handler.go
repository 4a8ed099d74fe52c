package handlers

import (
	"bytes"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/job-map-search/internal/dtos"
	"github.com/justsurfingit/job-map-search/internal/services"
	"github.com/justsurfingit/job-map-search/internal/views"
)

type SearchHandler struct {
	SearchService *services.SearchService
	Page          *views.Page
}

func NewSearchHandler(s *services.SearchService, p *views.Page) *SearchHandler {
	return &SearchHandler{
		SearchService: s,
		Page:          p,
	}
}

// Index is GET /: the empty search page.
func (h *SearchHandler) Index(c *gin.Context) {
	h.renderPage(c, http.StatusOK, views.PageData{})
}

// SearchAPI is GET /api/v1/search, called by the page script.
func (h *SearchHandler) SearchAPI(c *gin.Context) {
	var req dtos.SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, dtos.ErrorResponse{Error: "Invalid query: " + err.Error()})
		return
	}

	res, err := h.SearchService.Search(c.Request.Context(), req.What, req.Where)
	if err != nil {
		log.Printf("[%s] ❌ search failed: %v", c.GetString(requestIDKey), err)
		c.JSON(http.StatusBadGateway, dtos.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dtos.SearchResponse{
		ID:       res.ID,
		Count:    res.Count,
		Rendered: res.Rendered,
		ImageURL: res.ImageURL,
		HTML:     res.HTML,
	})
}

// SearchPage is GET /search, the form target when the script is not running.
// It renders the whole page with the results (or the error) inline.
func (h *SearchHandler) SearchPage(c *gin.Context) {
	var req dtos.SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.renderPage(c, http.StatusBadRequest, views.PageData{Error: "Invalid query: " + err.Error()})
		return
	}

	res, err := h.SearchService.Search(c.Request.Context(), req.What, req.Where)
	if err != nil {
		log.Printf("[%s] ❌ search failed: %v", c.GetString(requestIDKey), err)
		h.renderPage(c, http.StatusBadGateway, views.PageData{Error: err.Error()})
		return
	}

	h.renderPage(c, http.StatusOK, views.PageData{Results: views.Trusted(res.HTML)})
}

func (h *SearchHandler) renderPage(c *gin.Context, status int, data views.PageData) {
	var buf bytes.Buffer
	if err := h.Page.Render(&buf, data); err != nil {
		log.Printf("❌ page render failed: %v", err)
		c.String(http.StatusInternalServerError, "Failed to render page")
		return
	}
	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
}

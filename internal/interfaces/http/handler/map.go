package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	appinventory "github.com/storemap/backend/internal/application/inventory"
	"github.com/storemap/backend/internal/domain/layout"
	"github.com/storemap/backend/internal/infrastructure/storage"
)

// MapHandler serves the map/list page and the inventory API endpoints.
type MapHandler struct {
	BaseHandler
	service *appinventory.Service
	logos   storage.LogoStorage
}

// NewMapHandler creates a new MapHandler
func NewMapHandler(service *appinventory.Service, logos storage.LogoStorage) *MapHandler {
	return &MapHandler{
		service: service,
		logos:   logos,
	}
}

// viewQuery carries the raw map view query parameters. The numeric
// fields stay strings so that malformed values can fall back to defaults
// instead of failing the bind.
type viewQuery struct {
	Query    string `form:"q"`
	Category string `form:"cat"`
	View     string `form:"view" binding:"omitempty,viewmode"`
	Cell     string `form:"cell"`
	Col      string `form:"col"`
}

// parseViewParams reads the map view query parameters. Malformed values
// fall back to defaults instead of failing the request.
func parseViewParams(c *gin.Context) appinventory.ViewParams {
	var q viewQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		q.View = appinventory.ViewModeMap
	}

	params := appinventory.ViewParams{
		Query:    strings.TrimSpace(q.Query),
		Category: strings.TrimSpace(q.Category),
		ViewMode: strings.TrimSpace(q.View),
		CellSize: layout.DefaultCellSize,
	}
	if params.ViewMode == "" {
		params.ViewMode = appinventory.ViewModeMap
	}

	if q.Cell != "" {
		if n, err := strconv.Atoi(q.Cell); err == nil {
			params.CellSize = n
		}
	}

	if q.Col != "" {
		if n, err := strconv.Atoi(q.Col); err == nil {
			params.Column = &n
		}
	}

	return params
}

// Index renders the map or list view as HTML.
func (h *MapHandler) Index(c *gin.Context) {
	vm, err := h.service.MapView(c.Request.Context(), parseViewParams(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"View":    vm,
		"LogoURL": h.logos.URL(c.Request.Context()),
	})
}

// View returns the assembled map view model as JSON.
func (h *MapHandler) View(c *gin.Context) {
	vm, err := h.service.MapView(c.Request.Context(), parseViewParams(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, vm)
}

// Map returns the map configuration.
func (h *MapHandler) Map(c *gin.Context) {
	cfg, err := h.service.MapConfig(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, cfg)
}

// Items returns the full item list.
func (h *MapHandler) Items(c *gin.Context) {
	items, err := h.service.Items(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}

// Search returns items matching the free-text query. An empty query
// returns every item.
func (h *MapHandler) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))

	items, err := h.service.Search(c.Request.Context(), query)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}

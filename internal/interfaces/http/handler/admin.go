package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	appinventory "github.com/storemap/backend/internal/application/inventory"
)

// AdminHandler serves the JSON document edit page.
type AdminHandler struct {
	BaseHandler
	service *appinventory.Service
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(service *appinventory.Service) *AdminHandler {
	return &AdminHandler{service: service}
}

// EditPage renders the admin page with the current document pretty-printed
// for editing.
func (h *AdminHandler) EditPage(c *gin.Context) {
	doc, err := h.service.Document(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		h.InternalError(c, "Failed to encode inventory document")
		return
	}

	c.HTML(http.StatusOK, "admin.html", gin.H{
		"Document": string(raw),
		"Saved":    c.Query("saved") == "1",
	})
}

// Save replaces the entire inventory document. Form submissions carry the
// document in the "doc" field; JSON requests carry it as the body. Save
// failures are reported as a JSON error response.
func (h *AdminHandler) Save(c *gin.Context) {
	var raw []byte
	isForm := !strings.HasPrefix(c.ContentType(), "application/json")

	if isForm {
		raw = []byte(c.PostForm("doc"))
	} else {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			h.BadRequest(c, "Failed to read request body")
			return
		}
		raw = body
	}

	doc, err := h.service.SaveDocument(c.Request.Context(), raw)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	if isForm {
		c.Redirect(http.StatusSeeOther, "/admin?saved=1")
		return
	}
	h.Success(c, doc)
}

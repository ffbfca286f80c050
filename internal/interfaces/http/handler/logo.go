package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/storemap/backend/internal/infrastructure/storage"
)

// LogoHandler serves the logo upload form and stores uploaded logos.
type LogoHandler struct {
	BaseHandler
	logos storage.LogoStorage
}

// NewLogoHandler creates a new LogoHandler
func NewLogoHandler(logos storage.LogoStorage) *LogoHandler {
	return &LogoHandler{logos: logos}
}

// UploadPage renders the logo upload form.
func (h *LogoHandler) UploadPage(c *gin.Context) {
	c.HTML(http.StatusOK, "upload.html", gin.H{
		"LogoURL": h.logos.URL(c.Request.Context()),
	})
}

// Upload stores the uploaded file as the site logo, overwriting any
// previous one. Unsupported extensions re-render the form with an error.
func (h *LogoHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("logo")
	if err != nil {
		h.renderError(c, http.StatusBadRequest, "Select an image file to upload.")
		return
	}

	ext := storage.ExtensionOf(file.Filename)
	if _, _, err := storage.ValidateExtension(ext); err != nil {
		h.renderError(c, http.StatusBadRequest, "Unsupported file type. Use png, jpg, jpeg, gif or webp.")
		return
	}

	src, err := file.Open()
	if err != nil {
		h.renderError(c, http.StatusInternalServerError, "Failed to read the uploaded file.")
		return
	}
	defer src.Close()

	if err := h.logos.Save(c.Request.Context(), src, ext); err != nil {
		h.renderError(c, http.StatusInternalServerError, "Failed to store the logo.")
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}

func (h *LogoHandler) renderError(c *gin.Context, status int, message string) {
	c.HTML(status, "upload.html", gin.H{
		"Error":   message,
		"LogoURL": h.logos.URL(c.Request.Context()),
	})
}

package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func NewHandler(builder DocumentBuilder, version string) *Handler {
	return &Handler{
		builder: builder,
		version: version,
	}
}

// GetPreview builds a fresh document from the live feeds and serves its HTML.
// Nothing is written to disk.
func (h *Handler) GetPreview(c *gin.Context) {
	doc, err := h.builder.Build(c.Request.Context())
	if err != nil {
		slog.Error("Document build error", "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Header("X-Generated-At", doc.GeneratedAt.Format(time.RFC3339))
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(doc.HTML))
}

func (h *Handler) GetMarkdown(c *gin.Context) {
	doc, err := h.builder.Build(c.Request.Context())
	if err != nil {
		slog.Error("Document build error", "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Header("X-Generated-At", doc.GeneratedAt.Format(time.RFC3339))
	c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(doc.Markdown))
}

func (h *Handler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, map[string]interface{}{
		"timestamp": time.Now().In(time.Local).Format(time.RFC3339),
		"version":   h.version,
	})
}

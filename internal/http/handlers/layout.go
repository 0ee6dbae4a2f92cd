package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Deyvidbru/serido-hub/internal/http/middleware"
	"github.com/Deyvidbru/serido-hub/internal/modules/layout"
)

// LayoutHandler serves the shared chrome as standalone partials, for pages
// that stitch their header and footer in after the fact.
type LayoutHandler struct {
	build string
}

func NewLayoutHandler(build string) *LayoutHandler {
	return &LayoutHandler{build: build}
}

// Header picks the public or app variant from the requesting page and renders
// it resolved against the current session.
func (h *LayoutHandler) Header(c *gin.Context) {
	variant := layout.HeaderVariant(c.Query("page"))
	hdr := layout.BuildHeader(middleware.CurrentSession(c), middleware.GetCartCount(c))
	c.HTML(http.StatusOK, variant+".html", gin.H{"Header": hdr})
}

func (h *LayoutHandler) Footer(c *gin.Context) {
	c.HTML(http.StatusOK, "footer.html", gin.H{
		"Year":  time.Now().Year(),
		"Build": h.build,
	})
}

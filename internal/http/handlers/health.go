package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler answers the liveness probe the deploy scripts poll.
type HealthHandler struct {
	build string
}

func NewHealthHandler(build string) *HealthHandler {
	return &HealthHandler{build: build}
}

func (h *HealthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "build": h.build})
}

package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Deyvidbru/serido-hub/internal/http/flash"
	"github.com/Deyvidbru/serido-hub/internal/http/render"
	"github.com/Deyvidbru/serido-hub/internal/modules/layout"
	"github.com/Deyvidbru/serido-hub/internal/session"
	"github.com/Deyvidbru/serido-hub/pkg/view"
)

// AuthHandler covers the session endpoints this app owns; login itself
// happens against the backing API, this side only clears.
type AuthHandler struct {
	reader *session.Reader
	flash  *flash.Codec
	caps   layout.Capabilities
}

func NewAuthHandler(reader *session.Reader, flashCodec *flash.Codec, caps layout.Capabilities) *AuthHandler {
	return &AuthHandler{reader: reader, flash: flashCodec, caps: caps}
}

func (h *AuthHandler) Logout(c *gin.Context) {
	target := layout.Logout(h.reader, h.caps)
	render.RedirectWithFlash(c, h.flash, target, view.FlashSuccess, "Você saiu da sua conta.")
}

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/Deyvidbru/serido-hub/internal/http/flash"
	"github.com/Deyvidbru/serido-hub/internal/http/middleware"
	"github.com/Deyvidbru/serido-hub/internal/http/render"
	"github.com/Deyvidbru/serido-hub/internal/modules/catalog"
	"github.com/Deyvidbru/serido-hub/internal/modules/console"
	"github.com/Deyvidbru/serido-hub/internal/modules/layout"
	"github.com/Deyvidbru/serido-hub/internal/shared/apperr"
	"github.com/Deyvidbru/serido-hub/pkg/view"
)

const consoleBase = "/minha-loja/produtos"

// ConsoleHandler routes the seller product console. One controller per
// token: a login swap tears the old page state down and starts fresh.
type ConsoleHandler struct {
	api   console.Backend
	cfg   console.Config
	flash *flash.Codec
	log   *slog.Logger

	mu    sync.Mutex
	ctl   *console.Controller
	token string
}

func NewConsoleHandler(api console.Backend, cfg console.Config, flashCodec *flash.Codec, log *slog.Logger) *ConsoleHandler {
	return &ConsoleHandler{api: api, cfg: cfg, flash: flashCodec, log: log}
}

func (h *ConsoleHandler) controller(token string) *console.Controller {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.ctl == nil || h.token != token {
		if h.ctl != nil {
			h.ctl.Close()
		}
		// The confirmation dialog is collected by the HTTP layer before the
		// delete reaches the controller, so the capability answers yes.
		h.ctl = console.New(h.api, token, h.cfg, console.Capabilities{
			ConfirmDelete: func(catalog.Product) bool { return true },
		}, h.log)
		h.token = token
	}
	return h.ctl
}

// Index loads (or reloads) the catalog and renders the console with the
// filter taken from the query string.
func (h *ConsoleHandler) Index(c *gin.Context) {
	ctl := h.controller(middleware.CurrentSession(c).Token)

	ctl.SetFilter(console.Filter{
		Text:       c.Query("busca"),
		CategoryID: c.Query("categoria"),
		Status:     c.Query("status"),
	})

	if err := ctl.Load(c.Request.Context()); err != nil && !errors.Is(err, console.ErrLoadLoop) {
		h.log.Warn("console load failed", "err", err)
	}

	h.render(c, ctl, http.StatusOK)
}

// New opens the create dialog without another catalog fetch.
func (h *ConsoleHandler) New(c *gin.Context) {
	ctl := h.controller(middleware.CurrentSession(c).Token)
	ctl.OpenCreate()
	h.render(c, ctl, http.StatusOK)
}

// Edit pre-fills the dialog from the tracked product.
func (h *ConsoleHandler) Edit(c *gin.Context) {
	ctl := h.controller(middleware.CurrentSession(c).Token)
	if !ctl.OpenEdit(c.Param("id")) {
		render.RedirectWithFlash(c, h.flash, consoleBase, view.FlashWarning, "Produto não encontrado.")
		return
	}
	h.render(c, ctl, http.StatusOK)
}

// Save handles both create and update; the id field decides which.
func (h *ConsoleHandler) Save(c *gin.Context) {
	ctl := h.controller(middleware.CurrentSession(c).Token)

	in := console.FormInput{
		ID:        c.PostForm("id"),
		Nome:      c.PostForm("nome"),
		Descricao: c.PostForm("descricao"),
		Preco:     c.PostForm("preco"),
		Estoque:   c.PostForm("estoque"),
		Categoria: c.PostForm("categoria"),
		ImagemURL: c.PostForm("imagemUrl"),
		Ativo:     c.PostForm("ativo") == "on" || c.PostForm("ativo") == "true",
	}

	res, err := ctl.Save(c.Request.Context(), in)
	if err != nil {
		// re-render with the dialog open: field messages and diagnostics
		// live in the page state
		h.render(c, ctl, apperr.HTTPStatus(err))
		return
	}

	render.RedirectWithFlash(c, h.flash, consoleBase, view.FlashSuccess, res.Message)
}

// ConfirmDelete shows the "tem certeza?" page for one product.
func (h *ConsoleHandler) ConfirmDelete(c *gin.Context) {
	ctl := h.controller(middleware.CurrentSession(c).Token)
	id := c.Param("id")

	page := ctl.Page()
	var target *view.ProductRow
	for i := range page.Rows {
		if page.Rows[i].ID == id {
			target = &page.Rows[i]
			break
		}
	}
	if target == nil {
		render.RedirectWithFlash(c, h.flash, consoleBase, view.FlashWarning, "Produto não encontrado.")
		return
	}

	c.HTML(http.StatusOK, "confirm_delete.html", gin.H{
		"Header":  layout.BuildHeader(middleware.CurrentSession(c), middleware.GetCartCount(c)),
		"Flash":   middleware.GetFlash(c),
		"Product": target,
		"Action":  consoleBase + "/excluir/" + id,
		"Cancel":  consoleBase,
	})
}

// Delete removes the product after the confirm form came back affirmative.
func (h *ConsoleHandler) Delete(c *gin.Context) {
	ctl := h.controller(middleware.CurrentSession(c).Token)
	id := c.Param("id")

	if c.PostForm("confirmar") != "sim" {
		render.RedirectWithFlash(c, h.flash, consoleBase, view.FlashInfo, "Exclusão cancelada.")
		return
	}

	res, err := ctl.Delete(c.Request.Context(), id)
	if err != nil {
		h.render(c, ctl, apperr.HTTPStatus(err))
		return
	}

	if res.Declined || !res.Removed {
		render.RedirectWithFlash(c, h.flash, consoleBase, view.FlashWarning, "O produto não foi excluído.")
		return
	}
	render.RedirectWithFlash(c, h.flash, consoleBase, view.FlashSuccess, "Produto excluído.")
}

// ClearFilter drops all three predicates and goes back to the plain list.
func (h *ConsoleHandler) ClearFilter(c *gin.Context) {
	ctl := h.controller(middleware.CurrentSession(c).Token)
	ctl.ClearFilter()
	c.Redirect(http.StatusFound, consoleBase)
}

// CancelDialog discards the open dialog (user backed out).
func (h *ConsoleHandler) CancelDialog(c *gin.Context) {
	ctl := h.controller(middleware.CurrentSession(c).Token)
	ctl.CloseDialog()
	c.Redirect(http.StatusFound, consoleBase)
}

func (h *ConsoleHandler) render(c *gin.Context, ctl *console.Controller, status int) {
	c.HTML(status, "console.html", gin.H{
		"Header": layout.BuildHeader(middleware.CurrentSession(c), middleware.GetCartCount(c)),
		"Flash":  middleware.GetFlash(c),
		"Page":   ctl.Page(),
	})
}

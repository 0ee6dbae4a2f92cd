package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Deyvidbru/serido-hub/internal/http/flash"
	"github.com/Deyvidbru/serido-hub/internal/http/middleware"
	"github.com/Deyvidbru/serido-hub/internal/http/render"
	"github.com/Deyvidbru/serido-hub/internal/modules/cart"
	"github.com/Deyvidbru/serido-hub/internal/modules/layout"
	"github.com/Deyvidbru/serido-hub/internal/modules/storefront"
	"github.com/Deyvidbru/serido-hub/pkg/view"
)

// StoreHandler serves the public store page and its two cart actions.
type StoreHandler struct {
	svc      *storefront.Service
	carts    *cart.Codec
	flash    *flash.Codec
	cartPath string
}

func NewStoreHandler(svc *storefront.Service, carts *cart.Codec, flashCodec *flash.Codec, cartPath string) *StoreHandler {
	return &StoreHandler{svc: svc, carts: carts, flash: flashCodec, cartPath: cartPath}
}

// storeID accepts both the path param and the legacy ?lojaId= query links
// still floating around in shared URLs.
func storeID(c *gin.Context) string {
	if id := strings.TrimSpace(c.Param("id")); id != "" {
		return id
	}
	return strings.TrimSpace(c.Query("lojaId"))
}

func (h *StoreHandler) Show(c *gin.Context) {
	id := storeID(c)
	if id == "" {
		c.HTML(http.StatusBadRequest, "store.html", gin.H{
			"Header": layout.BuildHeader(middleware.CurrentSession(c), middleware.GetCartCount(c)),
			"Flash":  middleware.GetFlash(c),
			"Page":   view.StorePage{HeroError: "Loja não especificada.", GridError: "Informe uma loja para visualizar os produtos."},
		})
		return
	}

	page := h.svc.StorePage(c.Request.Context(), id)
	c.HTML(http.StatusOK, "store.html", gin.H{
		"Header":   layout.BuildHeader(middleware.CurrentSession(c), middleware.GetCartCount(c)),
		"Flash":    middleware.GetFlash(c),
		"Page":     page,
		"StoreID":  id,
		"CartPath": h.cartPath,
	})
}

// AddToCart puts one unit in the cart cookie and returns to the store page.
func (h *StoreHandler) AddToCart(c *gin.Context) {
	id := storeID(c)
	if !h.addItem(c) {
		render.RedirectWithFlash(c, h.flash, "/loja/"+id, view.FlashWarning, "Não foi possível adicionar o produto ao carrinho.")
		return
	}
	render.RedirectWithFlash(c, h.flash, "/loja/"+id, view.FlashSuccess, "Produto adicionado ao carrinho!")
}

// BuyNow is add-to-cart plus a jump straight to the cart page.
func (h *StoreHandler) BuyNow(c *gin.Context) {
	if !h.addItem(c) {
		render.RedirectWithFlash(c, h.flash, "/loja/"+storeID(c), view.FlashWarning, "Não foi possível adicionar o produto ao carrinho.")
		return
	}
	c.Redirect(http.StatusFound, h.cartPath)
}

func (h *StoreHandler) addItem(c *gin.Context) bool {
	productID := strings.TrimSpace(c.PostForm("produtoId"))
	if productID == "" {
		return false
	}

	ct := h.carts.Load(c)
	if !h.svc.AddToCart(&ct, productID) {
		return false
	}
	if err := h.carts.Save(c, ct); err != nil {
		return false
	}
	return true
}

// Package http wires the gin engine: middleware chain, templates and routes.
package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/Deyvidbru/serido-hub/internal/backend"
	"github.com/Deyvidbru/serido-hub/internal/config"
	"github.com/Deyvidbru/serido-hub/internal/http/flash"
	"github.com/Deyvidbru/serido-hub/internal/http/handlers"
	"github.com/Deyvidbru/serido-hub/internal/http/middleware"
	"github.com/Deyvidbru/serido-hub/internal/modules/cart"
	"github.com/Deyvidbru/serido-hub/internal/modules/console"
	"github.com/Deyvidbru/serido-hub/internal/modules/layout"
	"github.com/Deyvidbru/serido-hub/internal/modules/storefront"
	"github.com/Deyvidbru/serido-hub/internal/session"
)

// Deps bundles the long-lived collaborators NewRouter wires into handlers.
type Deps struct {
	Log        *slog.Logger
	Reader     *session.Reader
	API        *backend.Client
	FlashCodec *flash.Codec
	CartCodec  *cart.Codec
	LayoutCaps layout.Capabilities

	// TemplatesGlob overrides the template location; tests point it at
	// fixtures.
	TemplatesGlob string
}

func NewRouter(cfg config.Config, deps Deps) (*gin.Engine, error) {
	r := gin.New()

	glob := deps.TemplatesGlob
	if glob == "" {
		glob = "templates/html/*.html"
	}
	r.LoadHTMLGlob(glob)

	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(deps.Log))
	r.Use(middleware.Recovery(deps.Log))
	r.Use(middleware.ErrorHandler(deps.Log))
	r.Use(middleware.FlashMiddleware(deps.FlashCodec))
	r.Use(middleware.SessionLoad(deps.Reader))
	r.Use(middleware.CartCount(deps.CartCodec))

	health := handlers.NewHealthHandler(cfg.Build)
	proxy, err := handlers.NewAPIProxy(cfg.BackendBaseURL, deps.Log)
	if err != nil {
		return nil, err
	}

	// /api/health is ours; everything else under /api forwards to the
	// backing API. Dispatched inside the wildcard so the two do not fight
	// over the route tree.
	r.Any("/api/*path", func(c *gin.Context) {
		if c.Param("path") == "/health" {
			health.Check(c)
			return
		}
		proxy(c)
	})

	layoutH := handlers.NewLayoutHandler(cfg.Build)
	r.GET("/partials/header", layoutH.Header)
	r.GET("/partials/footer", layoutH.Footer)

	auth := handlers.NewAuthHandler(deps.Reader, deps.FlashCodec, deps.LayoutCaps)
	r.GET("/sair", auth.Logout)

	r.GET("/", func(c *gin.Context) {
		c.HTML(200, "home.html", gin.H{
			"Header": layout.BuildHeader(middleware.CurrentSession(c), middleware.GetCartCount(c)),
			"Flash":  middleware.GetFlash(c),
		})
	})

	storeSvc := storefront.New(deps.API, storefront.Capabilities{
		AddToCart: func(dst *cart.Cart, item storefront.CartItem) {
			dst.Add(cart.Item{
				ID:        item.ID,
				Nome:      item.Nome,
				Preco:     item.Preco,
				ImagemURL: item.ImagemURL,
				LojaID:    item.LojaID,
				LojaNome:  item.LojaNome,
				Qty:       item.Quantidade,
			})
		},
	}, cfg.PublicBaseURL, deps.Log)
	store := handlers.NewStoreHandler(storeSvc, deps.CartCodec, deps.FlashCodec, cfg.CartPath)
	r.GET("/loja", store.Show)
	r.GET("/loja/:id", store.Show)
	r.POST("/loja/:id/carrinho", store.AddToCart)
	r.POST("/loja/:id/comprar", store.BuyNow)

	consoleH := handlers.NewConsoleHandler(deps.API, console.Config{
		Build:             cfg.Build,
		RateGuardMaxCalls: cfg.RateGuardMaxCalls,
		RateGuardWindow:   cfg.RateGuardWindow,
		CloseDelay:        cfg.DialogCloseDelay,
	}, deps.FlashCodec, deps.Log)

	seller := r.Group("/minha-loja", middleware.RequireSeller(deps.FlashCodec, cfg.LoginPath))
	seller.GET("/produtos", consoleH.Index)
	seller.POST("/produtos", consoleH.Save)
	seller.GET("/produtos/novo", consoleH.New)
	seller.GET("/produtos/limpar", consoleH.ClearFilter)
	seller.POST("/produtos/cancelar", consoleH.CancelDialog)
	seller.GET("/produtos/editar/:id", consoleH.Edit)
	seller.GET("/produtos/excluir/:id", consoleH.ConfirmDelete)
	seller.POST("/produtos/excluir/:id", consoleH.Delete)

	return r, nil
}

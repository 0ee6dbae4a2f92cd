// Package storefront renders the public store browsing page: store hero,
// product grid, and the dispatch into the cart capability. The cart itself
// lives elsewhere; this page only hands items over.
package storefront

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/Deyvidbru/serido-hub/internal/modules/cart"
	"github.com/Deyvidbru/serido-hub/internal/modules/catalog"
	"github.com/Deyvidbru/serido-hub/internal/shared/apperr"
	"github.com/Deyvidbru/serido-hub/pkg/view"
	"github.com/Deyvidbru/serido-hub/templates/shared"
)

const logoPlaceholder = "https://via.placeholder.com/120x120.png?text=Loja"

type Backend interface {
	FetchStore(ctx context.Context, storeID string) (catalog.Store, error)
	FetchStoreProducts(ctx context.Context, storeID string) ([]catalog.Product, error)
}

// CartItem is what the page hands to the cart capability.
type CartItem struct {
	ID         string  `json:"id"`
	Nome       string  `json:"nome"`
	Preco      float64 `json:"preco"`
	ImagemURL  string  `json:"imagemUrl,omitempty"`
	LojaID     string  `json:"lojaId,omitempty"`
	LojaNome   string  `json:"lojaNome,omitempty"`
	Quantidade int     `json:"quantidade"`
}

// Capabilities the page receives at construction. A nil member means the
// capability is absent; it is never probed for at runtime.
type Capabilities struct {
	// AddToCart merges the item into the given cart. The caller owns
	// persisting the cart afterwards.
	AddToCart func(dst *cart.Cart, item CartItem)
}

type Service struct {
	api    Backend
	caps   Capabilities
	log    *slog.Logger
	origin string // absolutizes relative image URLs

	mu      sync.Mutex
	storeID string
	store   *catalog.Store
	byID    map[string]catalog.Product // last loaded grid, keyed by product id
}

func New(api Backend, caps Capabilities, origin string, log *slog.Logger) *Service {
	return &Service{
		api:    api,
		caps:   caps,
		log:    log,
		origin: strings.TrimRight(origin, "/"),
		byID:   map[string]catalog.Product{},
	}
}

// StorePage loads hero and grid. The two halves degrade independently: a
// broken hero still shows products, and vice versa.
func (s *Service) StorePage(ctx context.Context, storeID string) view.StorePage {
	page := view.StorePage{}

	store, err := s.api.FetchStore(ctx, storeID)
	heroOK := err == nil
	if err != nil {
		s.log.Warn("store info load failed", "store_id", storeID, "err", err)
		page.HeroError = apperr.PublicMessage(err)
	} else {
		page.Hero = s.hero(store)
	}

	products, err := s.api.FetchStoreProducts(ctx, storeID)
	if err != nil {
		s.log.Warn("store products load failed", "store_id", storeID, "err", err)
		page.GridError = apperr.PublicMessage(err)
		return page
	}

	s.mu.Lock()
	s.storeID = storeID
	if heroOK {
		s.store = &store
	}
	s.byID = make(map[string]catalog.Product, len(products))
	for _, p := range products {
		s.byID[p.ID] = p
	}
	s.mu.Unlock()

	if len(products) == 0 {
		page.Empty = true
		page.CountLabel = "0 produto(s)"
		return page
	}

	page.CountLabel = fmt.Sprintf("%d produto(s)", len(products))
	page.Cards = make([]view.ProductCard, 0, len(products))
	for _, p := range products {
		page.Cards = append(page.Cards, s.card(p))
	}
	return page
}

func (s *Service) hero(store catalog.Store) *view.StoreHero {
	desc := store.Description
	if strings.TrimSpace(desc) == "" {
		desc = "Loja parceira do SeridóHub."
	}
	phone := store.Phone
	if strings.TrimSpace(phone) == "" {
		phone = "Telefone não informado"
	}
	name := store.Name
	if strings.TrimSpace(name) == "" {
		name = "Loja"
	}
	return &view.StoreHero{
		Name:        name,
		Description: desc,
		Phone:       phone,
		Address:     store.Address,
		LogoURL:     s.normalizeLogoURL(store.LogoURL),
	}
}

func (s *Service) card(p catalog.Product) view.ProductCard {
	name := p.Name
	if strings.TrimSpace(name) == "" {
		name = "Produto"
	}
	desc := p.Description
	if strings.TrimSpace(desc) == "" {
		desc = "Sem descrição."
	}
	return view.ProductCard{
		ID:          p.ID,
		Name:        name,
		Description: desc,
		PriceLabel:  shared.FormatBRL(p.Price),
		ImageURL:    p.ImageURL,
		DetailHref:  "/produto?produtoId=" + p.ID,
	}
}

// normalizeLogoURL tolerates the URL shapes the API has been seen emitting:
// absolute, scheme-relative, rooted and bare paths.
func (s *Service) normalizeLogoURL(raw string) string {
	url := strings.TrimSpace(raw)
	if url == "" {
		return logoPlaceholder
	}
	if strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://") {
		return url
	}
	if strings.HasPrefix(url, "//") {
		return "https:" + url
	}
	if !strings.HasPrefix(url, "/") {
		url = "/" + url
	}
	return s.origin + url
}

// AddToCart hands a loaded product to the cart capability, quantity 1.
// Returns false when nothing was added: unknown id or absent capability.
// Neither is worth failing the page over.
func (s *Service) AddToCart(dst *cart.Cart, productID string) bool {
	s.mu.Lock()
	p, ok := s.byID[productID]
	var store *catalog.Store
	if s.store != nil {
		cp := *s.store
		store = &cp
	}
	s.mu.Unlock()

	if !ok {
		return false
	}
	if s.caps.AddToCart == nil {
		s.log.Error("cart capability absent, add-to-cart dropped", "product_id", productID)
		return false
	}

	item := CartItem{
		ID:         p.ID,
		Nome:       p.Name,
		Preco:      p.Price,
		ImagemURL:  p.ImageURL,
		Quantidade: 1,
	}
	if item.Nome == "" {
		item.Nome = "Produto"
	}
	if store != nil {
		item.LojaID = store.ID
		item.LojaNome = store.Name
	}
	s.caps.AddToCart(dst, item)
	return true
}

// Package console is the seller product management page: one controller per
// page session owns the in-memory catalog, the filter state and the dialog
// state, and every render derives from that single snapshot. The previous
// frontend kept all of this in module-level globals; here it is explicit
// state behind a mutex, fed by the backend client and drained by the
// templates.
package console

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Deyvidbru/serido-hub/internal/backend"
	"github.com/Deyvidbru/serido-hub/internal/modules/catalog"
	"github.com/Deyvidbru/serido-hub/pkg/view"
	"github.com/Deyvidbru/serido-hub/templates/shared"
)

// Backend is the slice of the API client the console needs.
type Backend interface {
	FetchSellerCatalog(ctx context.Context, token string) (backend.SellerCatalog, error)
	CreateProduct(ctx context.Context, token string, in backend.ProductInput) error
	UpdateProduct(ctx context.Context, token, id string, in backend.ProductInput) error
	DeleteProduct(ctx context.Context, token, id string) error
}

// Capabilities the page receives at construction. Nil members mean the
// capability is absent; nobody probes for optional globals at runtime.
type Capabilities struct {
	// ConfirmDelete asks the user before a product is removed. Absent means
	// every delete is declined.
	ConfirmDelete func(catalog.Product) bool
}

type Config struct {
	Build string

	// Rate guard: skip the network call when MaxCalls loads already happened
	// inside the trailing Window. Routine navigation never gets close; only a
	// re-triggering bootstrap does. The thresholds are heuristic, inherited,
	// and deliberately configurable.
	RateGuardMaxCalls int
	RateGuardWindow   time.Duration

	// CloseDelay keeps the success message visible before the dialog closes.
	CloseDelay time.Duration
}

func (c *Config) withDefaults() {
	if c.RateGuardMaxCalls <= 0 {
		c.RateGuardMaxCalls = 6
	}
	if c.RateGuardWindow <= 0 {
		c.RateGuardWindow = 4 * time.Second
	}
	if c.CloseDelay <= 0 {
		c.CloseDelay = 250 * time.Millisecond
	}
}

type Filter struct {
	Text       string
	CategoryID string
	Status     string // "ativo" | "inativo" | ""
}

type state string

const (
	stateLoading state = view.ConsoleLoading
	stateError   state = view.ConsoleError
	stateEmpty   state = view.ConsoleEmpty
	stateReady   state = view.ConsoleReady
)

type Controller struct {
	api  Backend
	log  *slog.Logger
	cfg  Config
	caps Capabilities

	token string

	mu       sync.Mutex
	store    *catalog.Store
	products []catalog.Product // single source of truth between loads

	loadSeq     int         // lifetime load ordinal, for the loading message
	recentLoads []time.Time // loads inside the guard window, pruned on entry

	state      state
	loadingMsg string
	alert      *view.Alert
	diag       any

	filter     Filter
	categories []catalog.Category
	filterSel  string // previously chosen filter category, preserved across rebuilds
	formSel    string // previously chosen form category, ditto

	form       view.ProductForm
	submitting bool
	closeTimer *time.Timer
}

func New(api Backend, token string, cfg Config, caps Capabilities, log *slog.Logger) *Controller {
	cfg.withDefaults()
	return &Controller{
		api:   api,
		log:   log,
		cfg:   cfg,
		caps:  caps,
		token: token,
		state: stateLoading,
		form:  blankForm(),
	}
}

// Close cancels any pending dialog-close timer. Call on page teardown.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopCloseTimer()
}

// SetFilter replaces the live filter state. Rendering picks it up on the
// next Page call; no network involved.
func (c *Controller) SetFilter(f Filter) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filter = f
	c.filterSel = f.CategoryID
}

// ClearFilter resets all three predicates.
func (c *Controller) ClearFilter() {
	c.SetFilter(Filter{})
}

// Page builds the full view snapshot for one render pass.
func (c *Controller) Page() view.ConsolePage {
	c.mu.Lock()
	defer c.mu.Unlock()

	p := view.ConsolePage{
		State:          string(c.state),
		LoadingMessage: c.loadingMsg,
		Alert:          c.alert,
		Diagnostic:     c.diag,
		FilterText:     c.filter.Text,
		FilterStatus:   c.filter.Status,
	}
	if c.store != nil {
		p.StoreName = c.store.Name
	}

	p.FilterCategories = categoryOptions(c.categories, c.filterSel, true)
	p.FormCategories = categoryOptions(c.categories, c.formSel, false)
	p.Form = c.form

	switch len(c.products) {
	case 0:
		p.CountLabel = "(nenhum produto cadastrado ainda)"
	default:
		p.CountLabel = fmt.Sprintf("(%d produto(s))", len(c.products))
	}

	if c.state == stateReady {
		rows := filterProducts(c.products, c.filter)
		p.Rows = make([]view.ProductRow, 0, len(rows))
		for _, prod := range rows {
			p.Rows = append(p.Rows, productRow(prod))
		}
		p.NoResults = len(p.Rows) == 0
	}
	return p
}

func productRow(p catalog.Product) view.ProductRow {
	status := "Inativo"
	if p.Active {
		status = "Ativo"
	}
	return view.ProductRow{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		PriceLabel:   shared.FormatBRL(p.Price),
		StockLabel:   fmt.Sprintf("%d unid.", p.Stock),
		CategoryID:   p.CategoryID,
		CategoryName: p.CategoryName,
		ImageURL:     p.ImageURL,
		Active:       p.Active,
		StatusLabel:  status,
	}
}

func blankForm() view.ProductForm {
	return view.ProductForm{Title: "Novo produto", Ativo: true}
}

package console

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Deyvidbru/serido-hub/internal/backend"
	"github.com/Deyvidbru/serido-hub/internal/shared/apperr"
	"github.com/Deyvidbru/serido-hub/pkg/view"
)

// ErrLoadLoop reports that the rate guard swallowed a load: something keeps
// re-triggering the page bootstrap faster than a human could.
var ErrLoadLoop = errors.New("catalog load invoked in a loop")

// Load fetches the seller's store + products and republishes the in-memory
// state wholesale. Failures leave the previous product collection untouched.
func (c *Controller) Load(ctx context.Context) error {
	c.mu.Lock()

	c.loadSeq++
	now := time.Now()
	recent := c.recentLoads[:0]
	for _, ts := range c.recentLoads {
		if now.Sub(ts) < c.cfg.RateGuardWindow {
			recent = append(recent, ts)
		}
	}
	c.recentLoads = recent
	// A skipped call is not recorded, so the guard releases by itself once
	// the loop stops for one quiet window.
	if len(c.recentLoads) >= c.cfg.RateGuardMaxCalls {
		last := c.recentLoads[len(c.recentLoads)-1]
		c.diag = &backend.Diagnostic{
			Where: "load_loop_guard",
			Error: "o carregamento de produtos está sendo disparado repetidamente (loop).",
			Hint: fmt.Sprintf("chamada #%d, %d carregamentos nos últimos %s; procure o que está re-executando o bootstrap da página",
				c.loadSeq, len(c.recentLoads), c.cfg.RateGuardWindow),
			Build: c.cfg.Build,
		}
		c.log.Warn("catalog load skipped by rate guard",
			"call", c.loadSeq,
			"recent_loads", len(c.recentLoads),
			"since_last", now.Sub(last),
		)
		c.mu.Unlock()
		return ErrLoadLoop
	}
	c.recentLoads = append(c.recentLoads, now)

	c.state = stateLoading
	c.loadingMsg = fmt.Sprintf("Carregando produtos... (chamada #%d)", c.loadSeq)
	c.alert = nil
	c.diag = nil
	token := c.token
	c.mu.Unlock()

	result, err := c.api.FetchSellerCatalog(ctx, token)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.state = stateError
		c.alert = &view.Alert{Kind: view.AlertDanger, Message: apperr.PublicMessage(err)}
		if ae, ok := apperr.As(err); ok {
			c.diag = ae.Diag
		}
		return err
	}

	// A missing store is odd but survivable; the products are the payload.
	if result.StoreDiag != nil {
		c.diag = result.StoreDiag
	}
	c.store = result.Store

	c.products = result.Products
	c.rebuildCategories()

	if len(c.products) == 0 {
		c.state = stateEmpty
		storeName := "sem nome"
		if c.store != nil && c.store.Name != "" {
			storeName = c.store.Name
		}
		c.alert = &view.Alert{
			Kind:    view.AlertInfo,
			Message: fmt.Sprintf("Sua loja (%s) ainda não tem produtos cadastrados.", storeName),
		}
		return nil
	}

	c.state = stateReady
	c.alert = nil
	return nil
}

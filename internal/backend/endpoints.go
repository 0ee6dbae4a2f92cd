package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Deyvidbru/serido-hub/internal/modules/catalog"
	"github.com/Deyvidbru/serido-hub/internal/shared/apperr"
)

// SellerCatalog is the combined store + products answer for the
// authenticated seller. A missing store is tolerated (StoreDiag records it);
// a missing or non-array product list is a hard schema error instead.
type SellerCatalog struct {
	Store     *catalog.Store
	Products  []catalog.Product
	StoreDiag *Diagnostic
}

// FetchSellerCatalog issues GET /produtos/minha-loja with the seller token.
func (c *Client) FetchSellerCatalog(ctx context.Context, token string) (SellerCatalog, error) {
	const where = "seller_catalog"

	resp, err := c.do(ctx, http.MethodGet, "/produtos/minha-loja", token, nil)
	if err != nil {
		return SellerCatalog{}, err
	}
	if !resp.ok() {
		msg := serverMessage(resp.Body)
		if msg == "" {
			msg = fmt.Sprintf("Erro HTTP %d ao carregar produtos.", resp.Status)
		}
		return SellerCatalog{}, &apperr.AppError{
			Kind:      apperr.Upstream,
			PublicMsg: msg,
			Diag:      c.diagFromResponse(where, http.MethodGet, resp),
		}
	}

	var envelope struct {
		Loja     json.RawMessage `json:"loja"`
		Produtos json.RawMessage `json:"produtos"`
	}
	if err := json.Unmarshal(resp.Raw, &envelope); err != nil {
		return SellerCatalog{}, &apperr.AppError{
			Kind:      apperr.Schema,
			PublicMsg: "Resposta do servidor em formato inesperado.",
			Err:       err,
			Diag:      c.diagFromResponse(where+"_schema", http.MethodGet, resp),
		}
	}

	out := SellerCatalog{}

	if isJSONNull(envelope.Loja) {
		d := c.diagFromResponse(where+"_schema", http.MethodGet, resp)
		d.Error = "Resposta OK, mas o campo 'loja' veio nulo ou ausente."
		out.StoreDiag = d
	} else {
		var ws wireStore
		if err := json.Unmarshal(envelope.Loja, &ws); err != nil {
			d := c.diagFromResponse(where+"_schema", http.MethodGet, resp)
			d.Error = "Campo 'loja' não pôde ser interpretado: " + err.Error()
			out.StoreDiag = d
		} else {
			s := ws.normalize()
			out.Store = &s
		}
	}

	var wps []wireProduct
	if isJSONNull(envelope.Produtos) || json.Unmarshal(envelope.Produtos, &wps) != nil {
		d := c.diagFromResponse(where+"_schema", http.MethodGet, resp)
		d.Error = "Resposta OK, mas 'produtos' não é uma lista."
		return SellerCatalog{}, &apperr.AppError{
			Kind:      apperr.Schema,
			PublicMsg: "A lista de produtos veio em formato inesperado.",
			Diag:      d,
		}
	}
	out.Products = normalizeProducts(wps)

	return out, nil
}

// CreateProduct issues POST /produtos.
func (c *Client) CreateProduct(ctx context.Context, token string, in ProductInput) error {
	return c.submitProduct(ctx, http.MethodPost, "/produtos", token, in, "cadastrar")
}

// UpdateProduct issues PUT /produtos/:id.
func (c *Client) UpdateProduct(ctx context.Context, token, id string, in ProductInput) error {
	return c.submitProduct(ctx, http.MethodPut, "/produtos/"+url.PathEscape(id), token, in, "atualizar")
}

func (c *Client) submitProduct(ctx context.Context, method, path, token string, in ProductInput, verb string) error {
	resp, err := c.do(ctx, method, path, token, in)
	if err != nil {
		return err
	}
	if !resp.ok() {
		msg := serverMessage(resp.Body)
		if msg == "" {
			msg = fmt.Sprintf("Erro HTTP %d ao %s produto.", resp.Status, verb)
		}
		d := c.diagFromResponse("submit_product", method, resp)
		d.PayloadSent = in
		return &apperr.AppError{Kind: apperr.Upstream, PublicMsg: msg, Diag: d}
	}
	return nil
}

// DeleteProduct issues DELETE /produtos/:id.
func (c *Client) DeleteProduct(ctx context.Context, token, id string) error {
	resp, err := c.do(ctx, http.MethodDelete, "/produtos/"+url.PathEscape(id), token, nil)
	if err != nil {
		return err
	}
	if !resp.ok() {
		msg := serverMessage(resp.Body)
		if msg == "" {
			msg = fmt.Sprintf("Erro HTTP %d ao remover produto.", resp.Status)
		}
		return &apperr.AppError{
			Kind:      apperr.Upstream,
			PublicMsg: msg,
			Diag:      c.diagFromResponse("remove_product", http.MethodDelete, resp),
		}
	}
	return nil
}

// FetchStore issues the public GET /lojas/:id.
func (c *Client) FetchStore(ctx context.Context, storeID string) (catalog.Store, error) {
	resp, err := c.do(ctx, http.MethodGet, "/lojas/"+url.PathEscape(storeID), "", nil)
	if err != nil {
		return catalog.Store{}, err
	}
	if !resp.ok() {
		if resp.Status == http.StatusNotFound {
			return catalog.Store{}, apperr.NotFoundErr("Loja não encontrada.")
		}
		return catalog.Store{}, &apperr.AppError{
			Kind:      apperr.Upstream,
			PublicMsg: "Erro ao carregar loja.",
			Diag:      c.diagFromResponse("store_info", http.MethodGet, resp),
		}
	}
	var ws wireStore
	if err := json.Unmarshal(resp.Raw, &ws); err != nil {
		d := c.diagFromResponse("store_info_schema", http.MethodGet, resp)
		return catalog.Store{}, &apperr.AppError{
			Kind:      apperr.Schema,
			PublicMsg: "Dados da loja em formato inesperado.",
			Err:       err,
			Diag:      d,
		}
	}
	return ws.normalize(), nil
}

// FetchStoreProducts issues the public GET /lojas/:id/produtos.
func (c *Client) FetchStoreProducts(ctx context.Context, storeID string) ([]catalog.Product, error) {
	resp, err := c.do(ctx, http.MethodGet, "/lojas/"+url.PathEscape(storeID)+"/produtos", "", nil)
	if err != nil {
		return nil, err
	}
	if !resp.ok() {
		return nil, &apperr.AppError{
			Kind:      apperr.Upstream,
			PublicMsg: "Erro ao carregar produtos.",
			Diag:      c.diagFromResponse("store_products", http.MethodGet, resp),
		}
	}
	var wps []wireProduct
	if err := json.Unmarshal(resp.Raw, &wps); err != nil {
		d := c.diagFromResponse("store_products_schema", http.MethodGet, resp)
		d.Error = "Resposta OK, mas a lista de produtos não é uma lista."
		return nil, &apperr.AppError{
			Kind:      apperr.Schema,
			PublicMsg: "A lista de produtos veio em formato inesperado.",
			Diag:      d,
		}
	}
	return normalizeProducts(wps), nil
}

// Health probes GET /health on the business API.
func (c *Client) Health(ctx context.Context) error {
	resp, err := c.do(ctx, http.MethodGet, "/health", "", nil)
	if err != nil {
		return err
	}
	if !resp.ok() {
		return apperr.UpstreamErr(resp.Status, "API indisponível.")
	}
	return nil
}

func isJSONNull(raw json.RawMessage) bool {
	if len(raw) == 0 {
		return true
	}
	s := string(raw)
	return s == "null"
}

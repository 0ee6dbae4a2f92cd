package backend

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Deyvidbru/serido-hub/internal/shared/apperr"
)

func testClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(Config{BaseURL: srv.URL, Build: "test-build", Timeout: 2 * time.Second}, log)
}

func TestFetchSellerCatalogSendsAuthAndCacheHeaders(t *testing.T) {
	t.Parallel()
	var got http.Header
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"loja":{"id":1,"nome":"Loja"},"produtos":[]}`))
	}))

	if _, err := c.FetchSellerCatalog(context.Background(), "tok-123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if auth := got.Get("Authorization"); auth != "Bearer tok-123" {
		t.Errorf("Authorization = %q", auth)
	}
	if cc := got.Get("Cache-Control"); cc != "no-cache" {
		t.Errorf("Cache-Control = %q", cc)
	}
	if p := got.Get("Pragma"); p != "no-cache" {
		t.Errorf("Pragma = %q", p)
	}
	if b := got.Get("X-Client-Build"); b != "test-build" {
		t.Errorf("X-Client-Build = %q", b)
	}
}

func TestFetchSellerCatalogNormalizesAliases(t *testing.T) {
	t.Parallel()
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"loja":{"id":9,"nome":"Armazém","imagem_logo":"/logo.png"},
			"produtos":[
				{"id":1,"nome":"Queijo","preco":32.5,"estoque":3,"ativo":true,
				 "id_categoria":10,"categoriaNome":"Laticínios","imagem_principal":"/q.png"}
			]}`))
	}))

	out, err := c.FetchSellerCatalog(context.Background(), "tok")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Store == nil || out.Store.Name != "Armazém" || out.Store.LogoURL != "/logo.png" {
		t.Fatalf("store not normalized: %+v", out.Store)
	}
	if len(out.Products) != 1 {
		t.Fatalf("products = %d, want 1", len(out.Products))
	}
	p := out.Products[0]
	if p.ID != "1" || p.CategoryID != "10" || p.CategoryName != "Laticínios" || p.ImageURL != "/q.png" {
		t.Errorf("product not normalized: %+v", p)
	}
}

func TestFetchSellerCatalogNullStoreIsNonFatal(t *testing.T) {
	t.Parallel()
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"loja":null,"produtos":[]}`))
	}))

	out, err := c.FetchSellerCatalog(context.Background(), "tok")
	if err != nil {
		t.Fatalf("null loja must not fail the load: %v", err)
	}
	if out.Store != nil {
		t.Errorf("Store = %+v, want nil", out.Store)
	}
	if out.StoreDiag == nil {
		t.Error("expected a StoreDiag recording the missing store")
	}
}

func TestFetchSellerCatalogNonArrayProductsIsSchemaError(t *testing.T) {
	t.Parallel()
	cases := []string{
		`{"loja":{"id":1},"produtos":null}`,
		`{"loja":{"id":1},"produtos":{"oops":true}}`,
		`{"loja":{"id":1}}`,
	}
	for _, body := range cases {
		body := body
		c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(body))
		}))
		_, err := c.FetchSellerCatalog(context.Background(), "tok")
		if err == nil {
			t.Fatalf("body %s: expected schema error", body)
		}
		ae, ok := apperr.As(err)
		if !ok || ae.Kind != apperr.Schema {
			t.Errorf("body %s: kind = %v, want Schema", body, err)
		}
		if ae.PublicMsg != "A lista de produtos veio em formato inesperado." {
			t.Errorf("body %s: PublicMsg = %q", body, ae.PublicMsg)
		}
	}
}

func TestFetchSellerCatalogUpstreamErrorUsesServerMessage(t *testing.T) {
	t.Parallel()
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"token expirado"}`))
	}))

	_, err := c.FetchSellerCatalog(context.Background(), "tok")
	ae, ok := apperr.As(err)
	if !ok || ae.Kind != apperr.Upstream {
		t.Fatalf("expected upstream error, got %v", err)
	}
	if ae.PublicMsg != "token expirado" {
		t.Errorf("PublicMsg = %q, want the server's own message", ae.PublicMsg)
	}
}

func TestFetchSellerCatalogUpstreamErrorFallbackMessage(t *testing.T) {
	t.Parallel()
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`<html>gateway error</html>`))
	}))

	_, err := c.FetchSellerCatalog(context.Background(), "tok")
	ae, ok := apperr.As(err)
	if !ok {
		t.Fatalf("expected AppError, got %v", err)
	}
	if ae.PublicMsg != "Erro HTTP 500 ao carregar produtos." {
		t.Errorf("PublicMsg = %q", ae.PublicMsg)
	}
}

func TestSubmitProductAttachesPayloadToDiagnostic(t *testing.T) {
	t.Parallel()
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"preço inválido"}`))
	}))

	in := ProductInput{Nome: "Queijo", Preco: -1, Ativo: true}
	err := c.CreateProduct(context.Background(), "tok", in)
	ae, ok := apperr.As(err)
	if !ok {
		t.Fatalf("expected AppError, got %v", err)
	}
	d, ok := ae.Diag.(*Diagnostic)
	if !ok {
		t.Fatalf("Diag type = %T", ae.Diag)
	}
	sent, ok := d.PayloadSent.(ProductInput)
	if !ok || sent.Nome != "Queijo" {
		t.Errorf("PayloadSent = %+v", d.PayloadSent)
	}
}

func TestFetchStoreNotFound(t *testing.T) {
	t.Parallel()
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	_, err := c.FetchStore(context.Background(), "999")
	ae, ok := apperr.As(err)
	if !ok || ae.Kind != apperr.NotFound {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestTimeoutMapsToTimeoutKind(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	t.Cleanup(srv.Close)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	c := New(Config{BaseURL: srv.URL, Build: "t", Timeout: 50 * time.Millisecond}, log)

	_, err := c.FetchStore(context.Background(), "1")
	ae, ok := apperr.As(err)
	if !ok || ae.Kind != apperr.Timeout {
		t.Fatalf("expected Timeout, got %v", err)
	}
	if ae.PublicMsg != "O servidor demorou demais para responder." {
		t.Errorf("PublicMsg = %q", ae.PublicMsg)
	}
}

func TestDecodeLooseWrapsNonJSON(t *testing.T) {
	t.Parallel()
	v := decodeLoose([]byte("<html>boom</html>"))
	m, ok := v.(map[string]any)
	if !ok || m["raw"] != "<html>boom</html>" {
		t.Errorf("decodeLoose = %#v", v)
	}
	if decodeLoose([]byte("  ")) != nil {
		t.Error("blank body should decode to nil")
	}
}

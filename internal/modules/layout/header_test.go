package layout

import (
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/Deyvidbru/serido-hub/internal/session"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBuildHeaderVisitor(t *testing.T) {
	t.Parallel()
	h := BuildHeader(nil, 2)

	if h.Greeting != "Olá, visitante" {
		t.Errorf("Greeting = %q", h.Greeting)
	}
	if h.ActionLabel != "Entre ou cadastre-se" {
		t.Errorf("ActionLabel = %q", h.ActionLabel)
	}
	if !h.SearchVisible || !h.CartVisible || !h.OrdersVisible {
		t.Error("visitor keeps the shopping affordances")
	}
	if h.SellerLinkVisible || h.LogoutVisible || h.SellerMode {
		t.Error("visitor has no seller affordances")
	}
	if h.CartCount != 2 {
		t.Errorf("CartCount = %d", h.CartCount)
	}
}

func TestBuildHeaderClient(t *testing.T) {
	t.Parallel()
	sess := &session.Session{User: session.User{ID: json.Number("1"), Nome: "Ana Lima", Tipo: "CLIENTE"}}
	h := BuildHeader(sess, 0)

	if h.Greeting != "Olá, Ana" {
		t.Errorf("Greeting = %q", h.Greeting)
	}
	if h.MenuUserLabel != "Ana (cliente)" {
		t.Errorf("MenuUserLabel = %q", h.MenuUserLabel)
	}
	if h.SellerMode {
		t.Error("client is not in seller mode")
	}
	if !h.SearchVisible || !h.CartVisible || !h.OrdersVisible {
		t.Error("client keeps the shopping affordances")
	}
	if h.LoginButtonLabel != "Sair" || !h.LoginButtonDanger {
		t.Errorf("logout affordance wrong: %q danger=%v", h.LoginButtonLabel, h.LoginButtonDanger)
	}
}

func TestBuildHeaderSellerModeHidesShopping(t *testing.T) {
	t.Parallel()
	sess := &session.Session{User: session.User{Nome: "Zé", Tipo: "vendedor"}}
	h := BuildHeader(sess, 5)

	if !h.SellerMode {
		t.Fatal("expected seller mode")
	}
	if h.SearchVisible || h.CartVisible || h.OrdersVisible {
		t.Error("seller mode hides search, cart and orders")
	}
	if !h.SellerLinkVisible || !h.LogoutVisible {
		t.Error("seller gets the console link and the logout")
	}
	if h.MenuUserLabel != "Zé (vendedor)" {
		t.Errorf("MenuUserLabel = %q", h.MenuUserLabel)
	}
}

func TestHeaderVariant(t *testing.T) {
	t.Parallel()
	cases := []struct {
		page string
		want string
	}{
		{"login.html", "header_public"},
		{"/auth/LOGIN.HTML", "header_public"},
		{"cadastro.html", "header_public"},
		{"index.html", "header_app"},
		{"", "header_app"},
		{"minha-loja.html", "header_app"},
	}
	for _, tc := range cases {
		if got := HeaderVariant(tc.page); got != tc.want {
			t.Errorf("HeaderVariant(%q) = %q, want %q", tc.page, got, tc.want)
		}
	}
}

func TestLogoutClosesOverlayWhenCapabilityPresent(t *testing.T) {
	t.Parallel()
	// nil reader would panic; use a real one backed by a temp dir
	store := session.NewStore(t.TempDir())
	reader := session.NewReader(store, discardLogger())

	closed := false
	target := Logout(reader, Capabilities{CloseOverlay: func() { closed = true }})
	if target != "/" {
		t.Errorf("target = %q", target)
	}
	if !closed {
		t.Error("overlay capability should have been invoked")
	}

	// absent capability is tolerated
	if got := Logout(reader, Capabilities{}); got != "/" {
		t.Errorf("target = %q", got)
	}
}

// Package layout builds the shared header/footer chrome from the persisted
// session. The builder is pure: session in, fully-resolved view-model out.
// Templates never look at the session themselves.
package layout

import (
	"github.com/Deyvidbru/serido-hub/internal/session"
	"github.com/Deyvidbru/serido-hub/pkg/view"
)

// Capabilities the layout receives at construction. Nil members are treated
// as absent, never probed for at runtime.
type Capabilities struct {
	// CloseOverlay shuts the navigation offcanvas if one is open. Logout
	// tolerates its absence.
	CloseOverlay func()
}

// BuildHeader resolves the navigation chrome for the given session (nil means
// visitor). Sellers get "seller mode": the shopping affordances (search,
// cart, orders) disappear, since a merchant running the storefront does not
// shop on it.
func BuildHeader(sess *session.Session, cartCount int) view.Header {
	if sess == nil {
		return view.Header{
			Greeting:         "Olá, visitante",
			ActionLabel:      "Entre ou cadastre-se",
			AccountHref:      "/login",
			RoleLabel:        "visitante",
			MenuUserLabel:    "visitante",
			LoginButtonLabel: "Entrar ou cadastrar-se",
			SearchVisible:    true,
			CartVisible:      true,
			OrdersVisible:    true,
			CartCount:        cartCount,
		}
	}

	role := sess.Role()
	first := sess.FirstName()
	seller := role == session.RoleSeller

	h := view.Header{
		Greeting:          "Olá, " + first,
		ActionLabel:       "Minha conta",
		AccountHref:       "/conta",
		RoleLabel:         roleLabel(role),
		SellerLinkVisible: seller,
		LogoutVisible:     seller,
		SellerMode:        seller,
		SearchVisible:     !seller,
		CartVisible:       !seller,
		OrdersVisible:     !seller,
		CartCount:         cartCount,
		LoginButtonLabel:  "Sair",
		LoginButtonDanger: true,
	}
	h.MenuUserLabel = first + " (" + h.RoleLabel + ")"
	return h
}

func roleLabel(r session.Role) string {
	switch r {
	case session.RoleSeller:
		return "vendedor"
	case session.RoleAdmin:
		return "administrador"
	default:
		return "cliente"
	}
}

// Logout clears the persisted session and closes the navigation overlay when
// that capability exists. Returns the landing page target.
func Logout(reader *session.Reader, caps Capabilities) string {
	reader.Logout()
	if caps.CloseOverlay != nil {
		caps.CloseOverlay()
	}
	return "/"
}

package view

// Header is the view-model behind the shared navigation chrome. Every field
// is already resolved; templates only read, never decide.
type Header struct {
	Greeting    string // "Olá, Maria" / "Olá, visitante"
	ActionLabel string // "Minha conta" / "Entre ou cadastre-se"
	AccountHref string

	RoleLabel     string // "vendedor" / "administrador" / "cliente" / "visitante"
	MenuUserLabel string // "Maria (vendedor)"

	SellerLinkVisible bool
	LogoutVisible     bool

	// SellerMode hides customer shopping affordances: a merchant operating
	// the storefront does not need them.
	SellerMode    bool
	SearchVisible bool
	CartVisible   bool
	OrdersVisible bool

	CartCount int

	LoginButtonLabel  string // offcanvas menu action: "Sair" or "Entrar ou cadastrar-se"
	LoginButtonDanger bool
}

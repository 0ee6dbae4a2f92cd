// Package catalog holds the canonical record shapes the rest of the app works
// with. The collaborator API answers with several field spellings for the same
// logical field; the backend client normalizes everything into these types at
// the ingestion boundary, so renderers never probe aliases themselves.
package catalog

// Product is the canonical, already-normalized product record.
type Product struct {
	ID           string
	Name         string
	Description  string
	Price        float64
	Stock        int
	ImageURL     string
	CategoryID   string
	CategoryName string
	Active       bool
}

// Store (loja) is the seller's storefront entity, 1:1 with a seller account.
type Store struct {
	ID          string
	Name        string
	Description string
	Phone       string
	Address     string
	LogoURL     string
}

type Category struct {
	ID   string
	Name string
}

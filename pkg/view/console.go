package view

type AlertKind string

const (
	AlertDanger  AlertKind = "danger"
	AlertWarning AlertKind = "warning"
	AlertInfo    AlertKind = "info"
	AlertSuccess AlertKind = "success"
)

type Alert struct {
	Kind    AlertKind
	Message string
}

type SelectOption struct {
	Value    string
	Label    string
	Selected bool
}

// ProductRow is one rendered entry of the seller product list.
type ProductRow struct {
	ID           string
	Name         string
	Description  string
	PriceLabel   string // "R$ 19,90"
	StockLabel   string // "3 unid."
	CategoryID   string
	CategoryName string
	ImageURL     string
	Active       bool
	StatusLabel  string // "Ativo" / "Inativo"
}

// ProductForm mirrors the create/edit dialog. String-typed numeric fields on
// purpose: they hold whatever the user typed, comma decimals included.
type ProductForm struct {
	ID        string
	Nome      string
	Descricao string
	Preco     string
	Estoque   string
	Categoria string
	ImagemURL string
	Ativo     bool

	Title       string // "Novo produto" / "Editar produto"
	Open        bool
	Error       string
	Success     string
	FieldErrors map[string]string
}

// Console page states. Exactly one applies per render; "no results" under an
// active filter is a ready-state row, not a page state.
const (
	ConsoleLoading = "loading"
	ConsoleError   = "error"
	ConsoleEmpty   = "empty"
	ConsoleReady   = "ready"
)

type ConsolePage struct {
	State          string
	LoadingMessage string

	StoreName  string
	CountLabel string

	Alert      *Alert
	Diagnostic any // backend.Diagnostic, rendered in the debug panel

	Rows      []ProductRow
	NoResults bool

	FilterText       string
	FilterStatus     string
	FilterCategories []SelectOption

	FormCategories []SelectOption
	Form           ProductForm
}

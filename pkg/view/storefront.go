package view

// StoreHero is the public store header block.
type StoreHero struct {
	Name        string
	Description string
	Phone       string
	Address     string
	LogoURL     string
}

// ProductCard is one product on the public browsing grid.
type ProductCard struct {
	ID          string
	Name        string
	Description string
	PriceLabel  string
	ImageURL    string
	DetailHref  string
}

type StorePage struct {
	Hero       *StoreHero
	HeroError  string
	CountLabel string
	Cards      []ProductCard
	Empty      bool
	GridError  string
}

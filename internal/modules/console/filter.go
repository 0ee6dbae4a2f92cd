package console

import (
	"strings"

	"github.com/Deyvidbru/serido-hub/internal/modules/catalog"
)

// filterProducts applies the three predicates conjunctively: case-insensitive
// substring over name+description, exact category id, exact active status.
func filterProducts(products []catalog.Product, f Filter) []catalog.Product {
	text := strings.ToLower(strings.TrimSpace(f.Text))

	out := make([]catalog.Product, 0, len(products))
	for _, p := range products {
		if text != "" {
			name := strings.ToLower(p.Name)
			desc := strings.ToLower(p.Description)
			if !strings.Contains(name, text) && !strings.Contains(desc, text) {
				continue
			}
		}
		if f.CategoryID != "" && p.CategoryID != f.CategoryID {
			continue
		}
		switch f.Status {
		case "ativo":
			if !p.Active {
				continue
			}
		case "inativo":
			if p.Active {
				continue
			}
		}
		out = append(out, p)
	}
	return out
}

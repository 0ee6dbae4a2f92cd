package console

import (
	"fmt"

	"github.com/Deyvidbru/serido-hub/internal/modules/catalog"
	"github.com/Deyvidbru/serido-hub/pkg/view"
)

// BuildCategoryIndex derives the distinct categories present in the product
// collection, in first-seen order. Unnamed categories get a synthesized
// label so the selects never show a blank entry.
func BuildCategoryIndex(products []catalog.Product) []catalog.Category {
	seen := make(map[string]bool, len(products))
	var out []catalog.Category
	for _, p := range products {
		if p.CategoryID == "" || seen[p.CategoryID] {
			continue
		}
		seen[p.CategoryID] = true
		name := p.CategoryName
		if name == "" {
			name = fmt.Sprintf("Categoria %s", p.CategoryID)
		}
		out = append(out, catalog.Category{ID: p.CategoryID, Name: name})
	}
	return out
}

// rebuildCategories refreshes the index after a load. Each select keeps its
// previous choice when that category still exists, else falls back to the
// default option. Caller holds the lock.
func (c *Controller) rebuildCategories() {
	c.categories = BuildCategoryIndex(c.products)

	if !categoryExists(c.categories, c.filterSel) {
		c.filterSel = ""
		c.filter.CategoryID = ""
	}
	if !categoryExists(c.categories, c.formSel) {
		c.formSel = ""
	}
}

func categoryExists(cats []catalog.Category, id string) bool {
	if id == "" {
		return false
	}
	for _, cat := range cats {
		if cat.ID == id {
			return true
		}
	}
	return false
}

// categoryOptions renders a select. The filter variant leads with "all
// categories"; the form variant leads with a pick-one placeholder, since "no
// filter" is not a valid product attribute.
func categoryOptions(cats []catalog.Category, selected string, includeAll bool) []view.SelectOption {
	base := "Selecione uma categoria"
	if includeAll {
		base = "Todas as categorias"
	}
	if !categoryExists(cats, selected) {
		selected = ""
	}

	out := make([]view.SelectOption, 0, len(cats)+1)
	out = append(out, view.SelectOption{Value: "", Label: base, Selected: selected == ""})
	for _, cat := range cats {
		out = append(out, view.SelectOption{Value: cat.ID, Label: cat.Name, Selected: cat.ID == selected})
	}
	return out
}

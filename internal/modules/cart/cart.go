// Package cart keeps the shopping cart in a signed cookie. The storefront
// only needs two things from it: add an item and show the badge count; the
// checkout flow proper lives in the backing API.
package cart

import "strings"

type Item struct {
	ID        string  `json:"id"`
	Nome      string  `json:"nome"`
	Preco     float64 `json:"preco"`
	ImagemURL string  `json:"imagemUrl,omitempty"`
	LojaID    string  `json:"lojaId,omitempty"`
	LojaNome  string  `json:"lojaNome,omitempty"`
	Qty       int     `json:"qty"`
}

type Cart struct {
	Items []Item `json:"items"`
}

// Add merges by product id: a repeated add bumps the quantity instead of
// duplicating the line.
func (c *Cart) Add(it Item) {
	if it.Qty <= 0 {
		it.Qty = 1
	}
	for i := range c.Items {
		if c.Items[i].ID == it.ID {
			c.Items[i].Qty += it.Qty
			return
		}
	}
	c.Items = append(c.Items, it)
}

// Count is the badge number: the sum of positive quantities.
func (c *Cart) Count() int {
	n := 0
	for _, it := range c.Items {
		if it.Qty > 0 {
			n += it.Qty
		}
	}
	return n
}

func (c *Cart) Empty() bool {
	for _, it := range c.Items {
		if strings.TrimSpace(it.ID) != "" && it.Qty > 0 {
			return false
		}
	}
	return true
}

package backend

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/Deyvidbru/serido-hub/internal/modules/catalog"
)

// The API answers with snake_case, camelCase and nested spellings of the same
// fields depending on which backend route produced the record. All alias
// probing lives here, in declared candidate order; nothing past this file
// sees more than one spelling.

// flexID accepts a JSON number or string id and keeps it as a string.
type flexID string

func (f *flexID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*f = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = flexID(n.String())
	return nil
}

func (f flexID) String() string { return string(f) }

type wireProduct struct {
	ID        flexID  `json:"id"`
	Nome      string  `json:"nome"`
	Descricao string  `json:"descricao"`
	Preco     float64 `json:"preco"`
	Estoque   int     `json:"estoque"`
	Ativo     bool    `json:"ativo"`

	// category id candidates, in probe order
	IDCategoria      flexID `json:"idCategoria"`
	IDCategoriaSnake flexID `json:"id_categoria"`
	CategoriaID      flexID `json:"categoriaId"`

	// category name candidates, in probe order
	Categoria *struct {
		Nome string `json:"nome"`
	} `json:"categoria"`
	CategoriaNome string `json:"categoriaNome"`
	NomeCategoria string `json:"nomeCategoria"`

	// image URL candidates, in probe order
	ImagemURL       string `json:"imagemUrl"`
	ImagemPrincipal string `json:"imagem_principal"`
}

func (w wireProduct) normalize() catalog.Product {
	catID := firstNonEmpty(w.IDCategoria.String(), w.IDCategoriaSnake.String(), w.CategoriaID.String())

	catName := ""
	if w.Categoria != nil {
		catName = w.Categoria.Nome
	}
	catName = firstNonEmpty(catName, w.CategoriaNome, w.NomeCategoria)

	return catalog.Product{
		ID:           w.ID.String(),
		Name:         w.Nome,
		Description:  w.Descricao,
		Price:        w.Preco,
		Stock:        w.Estoque,
		ImageURL:     firstNonEmpty(w.ImagemURL, w.ImagemPrincipal),
		CategoryID:   catID,
		CategoryName: catName,
		Active:       w.Ativo,
	}
}

type wireStore struct {
	ID        flexID `json:"id"`
	Nome      string `json:"nome"`
	Descricao string `json:"descricao"`
	Telefone  string `json:"telefone"`
	Endereco  string `json:"endereco"`

	// logo URL candidates, in probe order
	ImagemLogoSnake string `json:"imagem_logo"`
	ImagemLogo      string `json:"imagemLogo"`
	Logo            string `json:"logo"`
	LogoURL         string `json:"logoUrl"`
	ImagemURL       string `json:"imagem_url"`
}

func (w wireStore) normalize() catalog.Store {
	return catalog.Store{
		ID:          w.ID.String(),
		Name:        w.Nome,
		Description: w.Descricao,
		Phone:       w.Telefone,
		Address:     w.Endereco,
		LogoURL:     firstNonEmpty(w.ImagemLogoSnake, w.ImagemLogo, w.Logo, w.LogoURL, w.ImagemURL),
	}
}

func normalizeProducts(ws []wireProduct) []catalog.Product {
	out := make([]catalog.Product, 0, len(ws))
	for _, w := range ws {
		out = append(out, w.normalize())
	}
	return out
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// ProductInput is the create/update payload. Optional fields marshal away
// when empty, matching what the API's validators expect.
type ProductInput struct {
	Nome        string  `json:"nome"`
	Descricao   string  `json:"descricao,omitempty"`
	Preco       float64 `json:"preco"`
	Estoque     int     `json:"estoque"`
	ImagemURL   string  `json:"imagemUrl,omitempty"`
	IDCategoria string  `json:"idCategoria,omitempty"`
	Ativo       bool    `json:"ativo"`
}

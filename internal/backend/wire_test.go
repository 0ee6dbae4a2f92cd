package backend

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestWireProductAliasProbing(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name    string
		raw     string
		catID   string
		catName string
		image   string
	}{
		{
			name:    "camelCase id wins over snake",
			raw:     `{"id":1,"idCategoria":"5","id_categoria":"9","categoriaId":"7"}`,
			catID:   "5",
			catName: "",
		},
		{
			name:  "snake id when camel absent",
			raw:   `{"id":1,"id_categoria":12}`,
			catID: "12",
		},
		{
			name:  "categoriaId as last resort",
			raw:   `{"id":1,"categoriaId":"z9"}`,
			catID: "z9",
		},
		{
			name:    "nested category name first",
			raw:     `{"id":1,"categoria":{"nome":"Doces"},"categoriaNome":"Errado","nomeCategoria":"Também errado"}`,
			catName: "Doces",
		},
		{
			name:    "flat categoriaNome second",
			raw:     `{"id":1,"categoriaNome":"Laticínios","nomeCategoria":"Errado"}`,
			catName: "Laticínios",
		},
		{
			name:    "nomeCategoria last",
			raw:     `{"id":1,"nomeCategoria":"Bebidas"}`,
			catName: "Bebidas",
		},
		{
			name:  "imagemUrl wins over imagem_principal",
			raw:   `{"id":1,"imagemUrl":"https://a/img.png","imagem_principal":"https://b/img.png"}`,
			image: "https://a/img.png",
		},
		{
			name:  "imagem_principal as fallback",
			raw:   `{"id":1,"imagem_principal":"https://b/img.png"}`,
			image: "https://b/img.png",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var w wireProduct
			if err := json.Unmarshal([]byte(tc.raw), &w); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			p := w.normalize()
			if p.CategoryID != tc.catID {
				t.Errorf("CategoryID = %q, want %q", p.CategoryID, tc.catID)
			}
			if p.CategoryName != tc.catName {
				t.Errorf("CategoryName = %q, want %q", p.CategoryName, tc.catName)
			}
			if p.ImageURL != tc.image {
				t.Errorf("ImageURL = %q, want %q", p.ImageURL, tc.image)
			}
		})
	}
}

func TestFlexIDAcceptsNumberAndString(t *testing.T) {
	t.Parallel()
	cases := []struct {
		raw  string
		want string
	}{
		{`{"id":42}`, "42"},
		{`{"id":"42"}`, "42"},
		{`{"id":null}`, ""},
		{`{}`, ""},
	}
	for _, tc := range cases {
		var w wireProduct
		if err := json.Unmarshal([]byte(tc.raw), &w); err != nil {
			t.Fatalf("unmarshal %s: %v", tc.raw, err)
		}
		if got := w.ID.String(); got != tc.want {
			t.Errorf("id from %s = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestWireStoreLogoProbing(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{"imagem_logo first", `{"id":1,"imagem_logo":"a","imagemLogo":"b","logo":"c"}`, "a"},
		{"imagemLogo second", `{"id":1,"imagemLogo":"b","logo":"c","logoUrl":"d"}`, "b"},
		{"logo third", `{"id":1,"logo":"c","logoUrl":"d"}`, "c"},
		{"logoUrl fourth", `{"id":1,"logoUrl":"d","imagem_url":"e"}`, "d"},
		{"imagem_url last", `{"id":1,"imagem_url":"e"}`, "e"},
		{"none", `{"id":1}`, ""},
	}
	for _, tc := range cases {
		var w wireStore
		if err := json.Unmarshal([]byte(tc.raw), &w); err != nil {
			t.Fatalf("%s: unmarshal: %v", tc.name, err)
		}
		if got := w.normalize().LogoURL; got != tc.want {
			t.Errorf("%s: LogoURL = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestProductInputOmitsEmptyOptionals(t *testing.T) {
	t.Parallel()
	b, err := json.Marshal(ProductInput{Nome: "Queijo", Preco: 10, Estoque: 0, Ativo: true})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(b)
	for _, forbidden := range []string{`"descricao"`, `"imagemUrl"`, `"idCategoria"`} {
		if strings.Contains(s, forbidden) {
			t.Errorf("payload %s should omit empty %s", s, forbidden)
		}
	}
	if !strings.Contains(s, `"estoque"`) {
		t.Errorf("payload %s must keep zero estoque", s)
	}
}

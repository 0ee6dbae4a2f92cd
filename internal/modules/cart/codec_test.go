package cart

import (
	"encoding/base64"
	"net/url"
	"strings"
	"testing"
)

func TestAddMergesByID(t *testing.T) {
	t.Parallel()
	var c Cart
	c.Add(Item{ID: "1", Nome: "Queijo", Preco: 30, Qty: 1})
	c.Add(Item{ID: "2", Nome: "Doce", Preco: 18, Qty: 2})
	c.Add(Item{ID: "1", Nome: "Queijo", Preco: 30, Qty: 1})

	if len(c.Items) != 2 {
		t.Fatalf("items = %d, want 2 (repeat add merges)", len(c.Items))
	}
	if c.Items[0].Qty != 2 {
		t.Errorf("merged qty = %d, want 2", c.Items[0].Qty)
	}
	if c.Count() != 4 {
		t.Errorf("Count = %d, want 4", c.Count())
	}
}

func TestAddDefaultsQuantityToOne(t *testing.T) {
	t.Parallel()
	var c Cart
	c.Add(Item{ID: "1"})
	if c.Items[0].Qty != 1 {
		t.Errorf("Qty = %d, want 1", c.Items[0].Qty)
	}
}

func TestEncodeDecodeRoundtrip(t *testing.T) {
	t.Parallel()
	codec := NewCodec([]byte("secret"), "cart", false)

	in := Cart{Items: []Item{{ID: "1", Nome: "Queijo", Preco: 32.5, Qty: 2, LojaID: "9"}}}
	v, err := codec.Encode(in)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !strings.Contains(v, ".") {
		t.Fatalf("encoded value %q should carry a signature", v)
	}

	out, err := codec.Decode(v)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out.Items) != 1 || out.Items[0].Nome != "Queijo" || out.Items[0].Qty != 2 {
		t.Errorf("roundtrip lost data: %+v", out)
	}
}

func TestDecodeRejectsTamperedSignature(t *testing.T) {
	t.Parallel()
	codec := NewCodec([]byte("secret"), "cart", false)
	v, err := codec.Encode(Cart{Items: []Item{{ID: "1", Qty: 1}}})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	parts := strings.SplitN(v, ".", 2)
	forged := parts[0] + ".AAAA" + parts[1][4:]
	if _, err := codec.Decode(forged); err == nil {
		t.Fatal("forged signature must not decode")
	}

	other := NewCodec([]byte("other-secret"), "cart", false)
	if _, err := other.Decode(v); err == nil {
		t.Fatal("signature from another secret must not decode")
	}
}

func TestDecodeLegacyShapes(t *testing.T) {
	t.Parallel()
	codec := NewCodec([]byte("secret"), "cart", false)
	jsonBody := `{"items":[{"id":"1","qty":3}]}`

	cases := []struct {
		name string
		raw  string
	}{
		{"raw JSON", jsonBody},
		{"url-escaped JSON", url.QueryEscape(jsonBody)},
		{"base64url JSON", base64.RawURLEncoding.EncodeToString([]byte(jsonBody))},
	}
	for _, tc := range cases {
		out, err := codec.Decode(tc.raw)
		if err != nil {
			t.Errorf("%s: decode: %v", tc.name, err)
			continue
		}
		if out.Count() != 3 {
			t.Errorf("%s: Count = %d, want 3", tc.name, out.Count())
		}
	}
}

func TestDecodeGarbageFails(t *testing.T) {
	t.Parallel()
	codec := NewCodec([]byte("secret"), "cart", false)
	for _, raw := range []string{"", "not json at all", "a.b.c"} {
		if _, err := codec.Decode(raw); err == nil {
			t.Errorf("Decode(%q) should fail", raw)
		}
	}
}

func TestEmpty(t *testing.T) {
	t.Parallel()
	var c Cart
	if !c.Empty() {
		t.Error("zero cart is empty")
	}
	c.Add(Item{ID: "1", Qty: 1})
	if c.Empty() {
		t.Error("cart with an item is not empty")
	}
}

package flash

import (
	"strings"
	"testing"

	"github.com/Deyvidbru/serido-hub/pkg/view"
)

func TestEncodeDecodeRoundtrip(t *testing.T) {
	t.Parallel()
	codec := NewCodec([]byte("secret"), "flash", false)

	v, err := codec.Encode(view.Flash{Kind: view.FlashSuccess, Message: "Produto excluído."})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	f, err := codec.Decode(v)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if f.Kind != view.FlashSuccess || f.Message != "Produto excluído." {
		t.Errorf("roundtrip lost data: %+v", f)
	}
}

func TestDecodeRejectsBadInput(t *testing.T) {
	t.Parallel()
	codec := NewCodec([]byte("secret"), "flash", false)
	good, err := codec.Encode(view.Flash{Kind: view.FlashInfo, Message: "ok"})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	cases := []struct {
		name string
		v    string
	}{
		{"empty", ""},
		{"no signature", strings.SplitN(good, ".", 2)[0]},
		{"wrong secret", func() string {
			other := NewCodec([]byte("other"), "flash", false)
			v, _ := other.Encode(view.Flash{Kind: view.FlashInfo, Message: "ok"})
			return v
		}()},
		{"tampered payload", "x" + good},
	}
	for _, tc := range cases {
		if _, err := codec.Decode(tc.v); err == nil {
			t.Errorf("%s: decode should fail", tc.name)
		}
	}
}

func TestDecodeRejectsEmptyMessage(t *testing.T) {
	t.Parallel()
	codec := NewCodec([]byte("secret"), "flash", false)
	v, err := codec.Encode(view.Flash{Kind: view.FlashInfo, Message: "   "})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if _, err := codec.Decode(v); err == nil {
		t.Error("blank message should not round through")
	}
}

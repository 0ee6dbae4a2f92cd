package shared

import "testing"

func TestFormatBRL(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in   float64
		want string
	}{
		{19.9, "R$ 19,90"},
		{32.5, "R$ 32,50"},
		{18, "R$ 18,00"},
		{0.07, "R$ 0,07"},
	}
	for _, tc := range cases {
		if got := FormatBRL(tc.in); got != tc.want {
			t.Errorf("FormatBRL(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestEditComma(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in   float64
		want string
	}{
		{19.9, "19,9"},
		{18, "18"},
		{7.5, "7,5"},
		{12.34, "12,34"},
	}
	for _, tc := range cases {
		if got := EditComma(tc.in); got != tc.want {
			t.Errorf("EditComma(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

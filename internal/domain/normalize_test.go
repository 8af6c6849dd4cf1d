package domain

import (
	"reflect"
	"testing"
)

func TestNormalizeText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "trim spaces", input: "  wallet  ", want: "wallet"},
		{name: "lowercase", input: "Brown Wallet", want: "brown wallet"},
		{name: "compress multiple spaces", input: "brown   wallet", want: "brown wallet"},
		{name: "diacritics preserved", input: "Café", want: "café"},
		{name: "arabic preserved", input: "  محفظة  بنية ", want: "محفظة بنية"},
		{name: "empty string", input: "", want: ""},
		{name: "only spaces", input: "   ", want: ""},
		{name: "tabs and newlines", input: "\t black\ncat \t", want: "black cat"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := NormalizeText(tt.input); got != tt.want {
				t.Errorf("NormalizeText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeKeywords(t *testing.T) {
	t.Parallel()

	got := NormalizeKeywords([]string{"Wallet", " wallet ", "", "Brown", "  "})
	want := []string{"brown", "wallet"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NormalizeKeywords = %v, want %v", got, want)
	}

	if got := NormalizeKeywords(nil); len(got) != 0 {
		t.Errorf("NormalizeKeywords(nil) = %v, want empty", got)
	}
}

func TestTokenize(t *testing.T) {
	t.Parallel()

	got := Tokenize("Lost: black cat, 3 years-old!")
	want := []string{"lost", "black", "cat", "3", "years", "old"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize = %v, want %v", got, want)
	}
}

func TestSharedKeywords(t *testing.T) {
	t.Parallel()

	got := SharedKeywords([]string{"Wallet", "brown", "leather"}, []string{"leather", "WALLET", "keys"})
	want := []string{"leather", "wallet"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SharedKeywords = %v, want %v", got, want)
	}

	if got := SharedKeywords(nil, []string{"a"}); got != nil {
		t.Errorf("SharedKeywords(nil, ...) = %v, want nil", got)
	}
}

func TestEqualFoldPtr(t *testing.T) {
	t.Parallel()

	cairo, cairoUpper, giza := "Cairo", " CAIRO ", "Giza"
	if !EqualFoldPtr(&cairo, &cairoUpper) {
		t.Error("expected Cairo == CAIRO")
	}
	if EqualFoldPtr(&cairo, &giza) {
		t.Error("expected Cairo != Giza")
	}
	if EqualFoldPtr(nil, &cairo) {
		t.Error("nil must never be equal")
	}
}

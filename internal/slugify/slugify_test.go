package slugify

import "testing"

func TestMake(t *testing.T) {
	cases := map[string]string{
		"Hello, World!":     "hello-world",
		"Başlık Örneği":     "baslik-ornegi",
		"Çılgın Şoför":      "cilgin-sofor",
		"İstanbul":          "istanbul",
		"Straße":            "strasse",
		"Tom & Jerry":       "tom-and-jerry",
		"  leading spaces":  "leading-spaces",
		"trailing--dashes!": "trailing-dashes",
		"already-a-slug":    "already-a-slug",
		"123 go":            "123-go",
		"!!!":               "",
	}
	for in, want := range cases {
		if got := Make(in); got != want {
			t.Errorf("Make(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestValid(t *testing.T) {
	for _, s := range []string{"hello-world", "a", "x1-y2"} {
		if !Valid(s) {
			t.Errorf("Valid(%q) = false", s)
		}
	}
	for _, s := range []string{"", "Hello", "double--dash", "-leading", "trailing-", "with space"} {
		if Valid(s) {
			t.Errorf("Valid(%q) = true", s)
		}
	}
}

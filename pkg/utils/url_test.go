package utils

import (
	"net/url"
	"testing"
)

func TestToAbsoluteURL(t *testing.T) {
	base, _ := url.Parse("http://ingatlan.com/")

	tests := []struct {
		rel  string
		want string
	}{
		{"24016633", "http://ingatlan.com/24016633"},
		{"/24016633", "http://ingatlan.com/24016633"},
		{"https://other.example/1", "https://other.example/1"},
	}
	for _, tt := range tests {
		got, err := ToAbsoluteURL(base, tt.rel)
		if err != nil {
			t.Fatalf("ToAbsoluteURL(%q): %v", tt.rel, err)
		}
		if got != tt.want {
			t.Errorf("ToAbsoluteURL(%q) = %q; want %q", tt.rel, got, tt.want)
		}
	}
}

func TestPageURL(t *testing.T) {
	got := PageURL("http://ingatlan.com/listar/elado+lakas", 7)
	if got != "http://ingatlan.com/listar/elado+lakas?page=7" {
		t.Errorf("PageURL = %q", got)
	}
}

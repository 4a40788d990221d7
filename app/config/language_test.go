package config

import "testing"

func TestNormalizeLanguage(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"sv", "sv"},
		{"en", "en"},
		{"", "sv"},
		{"de", "sv"},
		{"SV", "sv"}, // codes are case-sensitive; anything else falls back
	}

	for _, tt := range tests {
		if got := NormalizeLanguage(tt.in); got != tt.want {
			t.Errorf("NormalizeLanguage(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

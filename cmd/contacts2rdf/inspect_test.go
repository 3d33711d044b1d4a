package main

import "testing"

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"short unchanged", "Alice Smith", 40, "Alice Smith"},
		{"exact length unchanged", "abcde", 5, "abcde"},
		{"long ascii cut", "abcdefghij", 8, "abcde..."},
		{"multibyte kept whole", "Dvořák Dvořák Dvořák", 10, "Dvořák ..."},
		{"cjk not split mid-rune", "北京市朝阳区北京市朝阳区", 8, "北京市朝阳..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.in, tt.max)
			if got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
		})
	}
}

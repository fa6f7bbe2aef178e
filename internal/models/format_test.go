package models

import "testing"

func TestDisplayName(t *testing.T) {
	tests := map[string]string{
		"wood":          "Wood",
		"iron_bar":      "Iron Bar",
		"steel__beam":   "Steel Beam",
		"":              "",
		"already Title": "Already Title",
	}
	for in, want := range tests {
		if got := DisplayName(in); got != want {
			t.Errorf("DisplayName(%q) = %q, want %q", in, got, want)
		}
	}
}

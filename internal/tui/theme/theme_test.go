package theme

import (
	"slices"
	"testing"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		themeName string
		wantName  string
	}{
		{name: "load mocha theme", themeName: "mocha", wantName: "mocha"},
		{name: "load macchiato theme", themeName: "macchiato", wantName: "macchiato"},
		{name: "load frappe theme", themeName: "frappe", wantName: "frappe"},
		{name: "load latte theme", themeName: "latte", wantName: "latte"},
		{name: "load light theme", themeName: "light", wantName: "light"},
		{name: "case insensitive", themeName: "Latte", wantName: "latte"},
		{name: "empty name defaults to mocha", themeName: "", wantName: "mocha"},
		{name: "invalid theme falls back to mocha", themeName: "nonexistent", wantName: "mocha"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			theme, err := Load(tt.themeName)
			if err != nil {
				t.Fatalf("Load(%q) unexpected error: %v", tt.themeName, err)
			}
			if theme.Name != tt.wantName {
				t.Errorf("Load(%q).Name = %q, want %q", tt.themeName, theme.Name, tt.wantName)
			}
		})
	}
}

func TestLoad_ThemeColors(t *testing.T) {
	for _, name := range Available() {
		t.Run(name, func(t *testing.T) {
			theme, err := Load(name)
			if err != nil {
				t.Fatalf("Load(%q) unexpected error: %v", name, err)
			}

			colors := map[string]string{
				"Bg":           theme.Bg,
				"BgHighlight":  theme.BgHighlight,
				"BgSelection":  theme.BgSelection,
				"Fg":           theme.Fg,
				"FgMuted":      theme.FgMuted,
				"Accent":       theme.Accent,
				"Today":        theme.Today,
				"Workday":      theme.Workday,
				"Restday":      theme.Restday,
				"Schedule":     theme.Schedule,
				"Warning":      theme.Warning,
				"PromptBg":     theme.PromptBg,
				"PromptBorder": theme.PromptBorder,
				"PromptText":   theme.PromptText,
			}

			for field, hex := range colors {
				if len(hex) != 7 || hex[0] != '#' {
					t.Errorf("theme.%s = %q, want #rrggbb", field, hex)
				}
			}
		})
	}
}

func TestLoad_PromptOverrides(t *testing.T) {
	latte, err := Load("latte")
	if err != nil {
		t.Fatalf("Load(latte) unexpected error: %v", err)
	}
	if latte.PromptBg != "#e6e9ef" {
		t.Errorf("PromptBg = %q, want override #e6e9ef", latte.PromptBg)
	}
	if latte.PromptBorder != latte.Accent {
		t.Errorf("PromptBorder = %q, want accent %q", latte.PromptBorder, latte.Accent)
	}

	light, err := Load("light")
	if err != nil {
		t.Fatalf("Load(light) unexpected error: %v", err)
	}
	if light.PromptBorder != "#222222" {
		t.Errorf("PromptBorder = %q, want override #222222", light.PromptBorder)
	}
}

func TestAvailable(t *testing.T) {
	want := []string{"mocha", "macchiato", "frappe", "latte", "light"}
	if got := Available(); !slices.Equal(got, want) {
		t.Errorf("Available() = %v, want %v", got, want)
	}
}

func TestIsAvailable(t *testing.T) {
	tests := []struct {
		name     string
		theme    string
		expected bool
	}{
		{name: "exact match", theme: "mocha", expected: true},
		{name: "case insensitive", theme: "Mocha", expected: true},
		{name: "missing theme", theme: "unknown", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsAvailable(tt.theme); got != tt.expected {
				t.Errorf("IsAvailable(%q) = %t, want %t", tt.theme, got, tt.expected)
			}
		})
	}
}

func TestColor(t *testing.T) {
	hex := "#89b4fa"
	if c := Color(hex); string(c) != hex {
		t.Errorf("Color(%q) = %q, want %q", hex, string(c), hex)
	}
}

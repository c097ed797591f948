// Package theme provides color themes for the calendar views.
package theme

import (
	"embed"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pelletier/go-toml/v2"
)

//go:embed embedded/*.toml
var embeddedThemes embed.FS

// DefaultName is used when no theme is configured or the configured one is unknown.
const DefaultName = "mocha"

// Theme holds all colors for a calendar theme.
type Theme struct {
	Name        string `toml:"name"`
	Bg          string `toml:"bg"`           // Base background
	BgHighlight string `toml:"bg_highlight"` // Header row, schedule chips
	BgSelection string `toml:"bg_selection"` // Cursor cell
	Fg          string `toml:"fg"`           // Day numbers
	FgMuted     string `toml:"fg_muted"`     // Cells outside the displayed month
	Accent      string `toml:"accent"`       // Title, borders
	Today       string `toml:"today"`        // Today's cell
	Workday     string `toml:"workday"`      // 班 marker
	Restday     string `toml:"restday"`      // 休 marker, weekend day numbers
	Schedule    string `toml:"schedule"`     // Schedule labels
	Warning     string `toml:"warning"`      // Status errors

	// Prompt palette (can override base theme values)
	PromptBg     string `toml:"prompt_bg"`
	PromptBorder string `toml:"prompt_border"`
	PromptText   string `toml:"prompt_text"`
}

// Color returns a lipgloss.Color for the given hex string.
func Color(hex string) lipgloss.Color {
	return lipgloss.Color(hex)
}

// Load loads a theme by name from embedded files.
// Falls back to mocha if the theme is not found.
func Load(name string) (*Theme, error) {
	if name == "" {
		name = DefaultName
	}
	name = strings.ToLower(name)

	data, err := embeddedThemes.ReadFile("embedded/" + name + ".toml")
	if err != nil {
		if name != DefaultName {
			return Load(DefaultName)
		}
		return nil, fmt.Errorf("loading theme %q: %w", name, err)
	}

	var t Theme
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing theme %q: %w", name, err)
	}
	t.applyDefaults()

	return &t, nil
}

func (t *Theme) applyDefaults() {
	t.PromptBg = coalesce(t.PromptBg, t.BgHighlight, t.Bg)
	t.PromptBorder = coalesce(t.PromptBorder, t.Accent)
	t.PromptText = coalesce(t.PromptText, t.Fg)
}

func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Available returns a list of available theme names.
func Available() []string {
	return []string{"mocha", "macchiato", "frappe", "latte", "light"}
}

// IsAvailable reports whether a theme name is available.
func IsAvailable(name string) bool {
	return slices.Contains(Available(), strings.ToLower(name))
}

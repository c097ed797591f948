package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/javiermolinar/lunacal/internal/tui/theme"
)

func TestCellBaseBackgrounds(t *testing.T) {
	th, err := theme.Load(theme.DefaultName)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	s := NewStyles(th)
	p := theme.NewPalette(th)

	tests := []struct {
		name     string
		isCursor bool
		isToday  bool
		want     lipgloss.TerminalColor
	}{
		{"plain", false, false, p.Bg},
		{"today", false, true, p.TodayBg},
		{"cursor", true, false, p.BgSelection},
		{"cursor on today", true, true, p.BgSelection},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.cellBase(tt.isCursor, tt.isToday).GetBackground(); got != tt.want {
				t.Fatalf("background = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewStylesPerTheme(t *testing.T) {
	for _, name := range theme.Available() {
		th, err := theme.Load(name)
		if err != nil {
			t.Fatalf("Load(%q): %v", name, err)
		}
		s := NewStyles(th)
		p := theme.NewPalette(th)

		if got := s.AppStyle.GetBackground(); got != p.Bg {
			t.Errorf("%s: app background = %v, want %v", name, got, p.Bg)
		}
		if got := s.WeekendHeaderStyle.GetForeground(); got != p.Restday {
			t.Errorf("%s: weekend header = %v, want %v", name, got, p.Restday)
		}
		if got := s.PromptStyle.GetBackground(); got != p.Prompt.Bg {
			t.Errorf("%s: prompt background = %v, want %v", name, got, p.Prompt.Bg)
		}
	}
}

func TestRenderCellColorProfile(t *testing.T) {
	prevProfile := lipgloss.ColorProfile()
	t.Cleanup(func() {
		lipgloss.SetColorProfile(prevProfile)
	})

	tests := []struct {
		name    string
		profile termenv.Profile
		wantBg  bool
	}{
		{"truecolor", termenv.TrueColor, true},
		{"ascii", termenv.Ascii, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lipgloss.SetColorProfile(tt.profile)
			m := sized(loaded(t, newTestModel(t, &fakeRepo{})), 80, 24)

			for _, i := range []int{0, m.cursor} {
				out := m.renderCell(i)
				if got := strings.Contains(out, "\x1b[48;2;"); got != tt.wantBg {
					t.Errorf("cell %d background sequence = %v, want %v: %q", i, got, tt.wantBg, out)
				}
			}
		})
	}
}

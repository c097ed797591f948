package ui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/lunacal/internal/calendar"
	"github.com/javiermolinar/lunacal/internal/config"
	"github.com/javiermolinar/lunacal/internal/schedule"
	"github.com/javiermolinar/lunacal/internal/tui"
)

func paintMonth(t *testing.T, cfg *config.Config, schedules calendar.Schedules) *textRenderer {
	t.Helper()
	opts, err := tui.CalendarOptions(cfg)
	if err != nil {
		t.Fatalf("CalendarOptions: %v", err)
	}
	r := &textRenderer{}
	opts = append(opts, calendar.WithClock(func() time.Time { return testNow }))
	if _, err := calendar.New(r, schedules, opts...); err != nil {
		t.Fatalf("calendar.New: %v", err)
	}
	return r
}

func TestCellWidthFor(t *testing.T) {
	tests := []struct {
		width int
		want  int
	}{
		{20, minCellWidth},
		{80, 10},
		{104, 14},
		{300, maxCellWidth},
	}
	for _, tt := range tests {
		if got := cellWidthFor(tt.width); got != tt.want {
			t.Errorf("cellWidthFor(%d) = %d, want %d", tt.width, got, tt.want)
		}
	}
}

func TestFitCell(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{"pads", "Tue", 6, "Tue   "},
		{"exact", "123456", 6, "123456"},
		{"truncates", "Team lunch", 6, "Team …"},
		{"wide runes", "初五", 6, "初五  "},
		{"wide runes truncate", "春节联欢晚会", 6, "春节… "},
		{"empty", "", 3, "   "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fitCell(tt.in, tt.width)
			if got != tt.want {
				t.Fatalf("fitCell(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
			}
			if w := ansi.StringWidth(got); w != tt.width {
				t.Fatalf("width = %d, want %d", w, tt.width)
			}
		})
	}
}

func TestPrintMonthLayout(t *testing.T) {
	DisableColor()
	cfg := config.Default()
	cfg.Calendar.Lunar = false
	r := paintMonth(t, cfg, calendar.Schedules{
		"2024-02-14": {"Standup", "Lunch", "Review"},
		"2024-01-30": {"Leftover"},
	})
	if r.paints != 1 {
		t.Fatalf("paints = %d, want 1", r.paints)
	}

	var buf bytes.Buffer
	PrintMonth(&buf, r.month, &r.grid, GridOpts{CellWidth: 10, MaxSchedules: 2})
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")

	if got := strings.TrimSpace(lines[0]); got != "February 2024" {
		t.Fatalf("title = %q", got)
	}
	if !strings.HasPrefix(lines[1], "Sun        Mon") {
		t.Fatalf("header = %q", lines[1])
	}

	total := calendar.Columns*10 + calendar.Columns - 1
	for i, line := range lines {
		if w := ansi.StringWidth(line); w > total {
			t.Errorf("line %d is %d wide, want at most %d: %q", i, w, total, line)
		}
	}

	// Title, header, then per week a separator and the day line; without lunar
	// labels there is no lunar line. Week 1 (Jan 28) has one schedule line,
	// week 3 (Feb 11) two plus overflow.
	wantLines := 2 + 6*2 + 1 + 3
	if len(lines) != wantLines {
		t.Fatalf("lines = %d, want %d:\n%s", len(lines), wantLines, buf.String())
	}

	out := buf.String()
	for _, want := range []string{"28", "• Leftover", "• Standup", "• Lunch", "+1 more", "班", "休"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Review") {
		t.Errorf("third schedule should collapse:\n%s", out)
	}
}

func TestPrintMonthLunarLabels(t *testing.T) {
	DisableColor()
	r := paintMonth(t, config.Default(), nil)

	var buf bytes.Buffer
	PrintMonth(&buf, r.month, &r.grid, GridOpts{CellWidth: 8, MaxSchedules: 2})

	for _, want := range []string{"春节", "初五", "除夕"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("output missing %q:\n%s", want, buf.String())
		}
	}
}

func TestWeekLinesLunarLine(t *testing.T) {
	DisableColor()
	tests := []struct {
		name  string
		lunar bool
		want  int
	}{
		{"with labels", true, 2},
		{"without labels", false, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Calendar.Lunar = tt.lunar
			r := paintMonth(t, cfg, nil)

			for row := 0; row < calendar.Rows; row++ {
				lines := weekLines(&r.grid, row, 8, 2)
				if len(lines) != tt.want {
					t.Fatalf("week %d: lines = %d, want %d: %q", row, len(lines), tt.want, lines)
				}
				for i, line := range lines {
					if strings.TrimSpace(line) == "" {
						t.Errorf("week %d: line %d is blank", row, i)
					}
				}
			}
		})
	}
}

func TestWeekLinesZeroSchedules(t *testing.T) {
	DisableColor()
	cfg := config.Default()
	cfg.Calendar.Lunar = false
	r := paintMonth(t, cfg, calendar.Schedules{"2024-02-14": {"Standup"}})

	lines := weekLines(&r.grid, 2, 8, 0)
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want day and overflow", len(lines))
	}
	if !strings.Contains(lines[1], "+1 more") {
		t.Fatalf("overflow line = %q", lines[1])
	}
}

func TestPrintEntries(t *testing.T) {
	DisableColor()
	entries := []*schedule.Entry{
		{ID: 1, DateKey: "2024-02-14", Label: "Dinner"},
		{ID: 2, DateKey: "2024-02-14", Label: "Movie"},
		{ID: 7, DateKey: "2024-02-16", Label: "Party"},
	}

	var buf bytes.Buffer
	PrintEntries(&buf, entries)

	want := strings.Join([]string{
		"=== 2024-02-14 Wed ===",
		"  #1    Dinner",
		"  #2    Movie",
		"",
		"=== 2024-02-16 Fri ===",
		"  #7    Party",
		"",
	}, "\n")
	if buf.String() != want {
		t.Fatalf("PrintEntries =\n%q\nwant\n%q", buf.String(), want)
	}
}

package ui

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/lunacal/internal/calendar"
	"github.com/javiermolinar/lunacal/internal/schedule"
	"github.com/javiermolinar/lunacal/internal/workday"
)

const (
	minCellWidth = 6
	maxCellWidth = 16
)

// textRenderer keeps the last grid painted by the calendar so it can be
// printed once navigation and schedule loading are done.
type textRenderer struct {
	month  calendar.Month
	grid   calendar.Grid
	paints int
}

// Paint records the grid.
func (r *textRenderer) Paint(month calendar.Month, grid calendar.Grid) {
	r.month = month
	r.grid = grid
	r.paints++
}

// GridOpts configures month printing.
type GridOpts struct {
	CellWidth    int // Display columns per day (clamped to 6..16)
	MaxSchedules int // Labels per day before collapsing into "+N more"
}

// cellWidthFor fits seven columns and their separators into a terminal width.
func cellWidthFor(termWidth int) int {
	w := (termWidth - (calendar.Columns - 1)) / calendar.Columns
	return min(max(w, minCellWidth), maxCellWidth)
}

// fitCell truncates s to width display columns and pads it with spaces.
// Wide runes such as CJK characters count as two columns.
func fitCell(s string, width int) string {
	s = ansi.Truncate(s, width, "…")
	if pad := width - ansi.StringWidth(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

// PrintMonth writes a month grid: a title, the weekday header and six week
// rows. Each row shows day numbers with workday markers, lunar labels and
// schedule labels.
func PrintMonth(w io.Writer, month calendar.Month, grid *calendar.Grid, opts GridOpts) {
	cw := min(max(opts.CellWidth, minCellWidth), maxCellWidth)
	maxSchedules := max(opts.MaxSchedules, 0)
	total := calendar.Columns*cw + calendar.Columns - 1

	title := month.String()
	pad := max((total-ansi.StringWidth(title))/2, 0)
	fmt.Fprintf(w, "%s%s\n", strings.Repeat(" ", pad), formatHeader(title))

	header := make([]string, calendar.Columns)
	for c := range header {
		name := fitCell(time.Weekday(c).String()[:3], cw)
		if isWeekendColumn(c) {
			header[c] = formatRest(name)
		} else {
			header[c] = formatHeader(name)
		}
	}
	fmt.Fprintln(w, strings.Join(header, " "))

	sep := formatMuted(strings.Repeat("─", total))
	for r := 0; r < calendar.Rows; r++ {
		fmt.Fprintln(w, sep)
		for _, line := range weekLines(grid, r, cw, maxSchedules) {
			fmt.Fprintln(w, line)
		}
	}
}

// weekLines renders one grid row. The lunar line is dropped when no day of the
// week has a label, and schedule lines are only emitted as far as the busiest
// day of the week needs them.
func weekLines(grid *calendar.Grid, row, cw, maxSchedules int) []string {
	cells := grid[row*calendar.Columns : (row+1)*calendar.Columns]

	shown, overflow, lunar := 0, false, false
	for _, cell := range cells {
		lunar = lunar || cell.LunarLabel != ""
		shown = max(shown, min(len(cell.Schedules), maxSchedules))
		if len(cell.Schedules) > maxSchedules {
			overflow = true
		}
	}

	height := 1 + shown
	if lunar {
		height++
	}
	if overflow {
		height++
	}
	lines := make([][]string, height)
	for i := range lines {
		lines[i] = make([]string, calendar.Columns)
	}

	for c, cell := range cells {
		for i, text := range cellLines(cell, c, cw, maxSchedules, shown, lunar, overflow) {
			lines[i][c] = text
		}
	}

	out := make([]string, height)
	for i, parts := range lines {
		out[i] = strings.TrimRight(strings.Join(parts, " "), " ")
	}
	return out
}

// cellLines returns the padded, colored lines of a day: the day line, the lunar
// line when lunar is set, shown schedule lines and the overflow line.
func cellLines(cell calendar.Cell, col, cw, maxSchedules, shown int, lunar, overflow bool) []string {
	blank := strings.Repeat(" ", cw)
	outside := !cell.InDisplayedMonth

	day := strconv.Itoa(cell.Day)
	marker := workday.Marker(cell.IsWorkday)
	gap := strings.Repeat(" ", max(cw-len(day)-ansi.StringWidth(marker), 1))

	var dayText, markerText string
	switch {
	case outside:
		dayText, markerText = formatMuted(day), formatMuted(marker)
	default:
		dayText = day
		if cell.IsToday {
			dayText = formatToday(day)
		} else if isWeekendColumn(col) {
			dayText = formatRest(day)
		}
		markerText = formatRest(marker)
		if cell.IsWorkday {
			markerText = formatWork(marker)
		}
	}

	lines := []string{dayText + gap + markerText}
	if lunar {
		lunarText := fitCell(cell.LunarLabel, cw)
		if outside {
			lunarText = formatMuted(lunarText)
		} else {
			lunarText = formatLunar(lunarText)
		}
		lines = append(lines, lunarText)
	}

	for j := 0; j < shown; j++ {
		if j >= len(cell.Schedules) || j >= maxSchedules {
			lines = append(lines, blank)
			continue
		}
		text := fitCell("• "+cell.Schedules[j], cw)
		if outside {
			lines = append(lines, formatMuted(text))
		} else {
			lines = append(lines, formatSchedule(text))
		}
	}

	if overflow {
		hidden := len(cell.Schedules) - maxSchedules
		if hidden > 0 {
			lines = append(lines, formatMuted(fitCell(fmt.Sprintf("+%d more", hidden), cw)))
		} else {
			lines = append(lines, blank)
		}
	}

	return lines
}

func isWeekendColumn(c int) bool {
	return c == 0 || c == calendar.Columns-1
}

// PrintEntries prints schedule entries grouped by date.
func PrintEntries(w io.Writer, entries []*schedule.Entry) {
	var currentDate string
	for _, e := range entries {
		if e.DateKey != currentDate {
			if currentDate != "" {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "=== %s %s ===\n", e.DateKey, e.Date().Format("Mon"))
			currentDate = e.DateKey
		}
		fmt.Fprintf(w, "  %s %s\n", formatMuted(fmt.Sprintf("#%-4d", e.ID)), e.Label)
	}
}

package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/lunacal/internal/calendar"
	"github.com/javiermolinar/lunacal/internal/tui/input"
	"github.com/javiermolinar/lunacal/internal/workday"
)

const (
	minColWidth = 8
	maxColWidth = 24

	// chromeLines counts the title, weekday header, status and help lines.
	chromeLines = 4
)

const helpText = "←↓↑→ move  [ ] month  t today  enter open  tab select  a add  d delete  y copy  q quit"

// View renders the month grid, with the prompt or first-run box on top.
func (m Model) View() string {
	base := m.renderMonth()

	switch m.mode {
	case ModePrompt:
		return overlayCenter(base, m.width, m.height, m.renderPromptBox())
	case ModeInit:
		return overlayCenter(base, m.width, m.height, m.renderInitBox())
	default:
		return base
	}
}

func (m Model) calculateColWidth() int {
	if m.width <= 0 {
		return defaultColWidth
	}
	w := (m.width - (calendar.Columns - 1)) / calendar.Columns
	return min(max(w, minColWidth), maxColWidth)
}

// cellHeight returns the lines per cell: day line, lunar line, schedule
// slots and an overflow line, shrunk to fit the terminal.
func (m Model) cellHeight() int {
	want := 2 + m.maxSchedules() + 1
	if m.height <= 0 {
		return want
	}
	fit := (m.height - chromeLines) / calendar.Rows
	return max(min(want, fit), 2)
}

// scheduleSlots returns how many schedule labels fit in a cell.
func (m Model) scheduleSlots() int {
	return max(min(m.maxSchedules(), m.cellHeight()-3), 0)
}

func (m Model) renderMonth() string {
	rows := make([]string, 0, calendar.Rows+3)
	rows = append(rows, m.renderTitle(), m.renderWeekdayHeader())
	for r := 0; r < calendar.Rows; r++ {
		rows = append(rows, m.renderRow(r))
	}
	rows = append(rows, m.renderStatus(), m.styles.HelpStyle.Render(ansi.Truncate(helpText, m.gridWidth(), "…")))

	return m.styles.AppStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m Model) gridWidth() int {
	return calendar.Columns*m.colWidth + calendar.Columns - 1
}

func (m Model) renderTitle() string {
	title := m.styles.TitleStyle.Render(m.cal.Current().String())
	if m.loading {
		title += m.styles.HelpStyle.Render("  loading…")
	}
	return title
}

func (m Model) renderWeekdayHeader() string {
	sep := m.styles.SeparatorStyle.Render(" ")
	parts := make([]string, 0, 2*calendar.Columns-1)
	for c := 0; c < calendar.Columns; c++ {
		if c > 0 {
			parts = append(parts, sep)
		}
		style := m.styles.WeekdayHeaderStyle
		if isWeekendColumn(c) {
			style = m.styles.WeekendHeaderStyle
		}
		name := time.Weekday(c).String()[:3]
		parts = append(parts, style.Width(m.colWidth).Render(name))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) renderRow(r int) string {
	h := m.cellHeight()
	sep := m.styles.SeparatorStyle.Width(1).Height(h).Render("")

	parts := make([]string, 0, 2*calendar.Columns-1)
	for c := 0; c < calendar.Columns; c++ {
		if c > 0 {
			parts = append(parts, sep)
		}
		parts = append(parts, m.renderCell(r*calendar.Columns+c))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// renderCell draws one grid cell. Every inner segment repeats the cell
// background so ANSI resets do not punch holes into it.
func (m Model) renderCell(i int) string {
	cell := m.surface.grid[i]
	w, h := m.colWidth, m.cellHeight()
	isCursor := i == m.cursor

	base := m.styles.cellBase(isCursor, cell.IsToday)
	bg := base.GetBackground()
	paint := func(style lipgloss.Style, text string) string {
		return style.Background(bg).Render(text)
	}
	// Inline segments must not inherit the cell size.
	fill := lipgloss.NewStyle()

	dayStyle := m.styles.DayNumberStyle
	lunarStyle := m.styles.LunarStyle
	markerStyle := m.styles.RestMarkerStyle
	if cell.IsWorkday {
		markerStyle = m.styles.WorkdayMarkerStyle
	}
	switch {
	case !cell.InDisplayedMonth:
		dayStyle = m.styles.DayNumberOutsideStyle
		lunarStyle = m.styles.LunarOutsideStyle
		markerStyle = m.styles.LunarOutsideStyle
	case isWeekendColumn(i % calendar.Columns):
		dayStyle = m.styles.DayNumberWeekendStyle
	}

	day := strconv.Itoa(cell.Day)
	marker := workday.Marker(cell.IsWorkday)
	gap := max(w-lipgloss.Width(day)-lipgloss.Width(marker), 1)

	lines := []string{
		paint(dayStyle, day) + paint(fill, strings.Repeat(" ", gap)) + paint(markerStyle, marker),
		paint(lunarStyle, cell.LunarLabel),
	}

	slots := m.scheduleSlots()
	for j, label := range cell.Schedules {
		if j >= slots {
			break
		}
		style := m.styles.ScheduleStyle
		if isCursor && j == m.selected {
			style = m.styles.ScheduleSelectedStyle
		}
		lines = append(lines, paint(style, ansi.Truncate("• "+label, w, "…")))
	}
	if hidden := len(cell.Schedules) - slots; hidden > 0 && h > 2 {
		for len(lines) < 2+slots {
			lines = append(lines, "")
		}
		lines = append(lines, paint(m.styles.OverflowStyle, fmt.Sprintf("+%d more", hidden)))
	}

	if len(lines) > h {
		lines = lines[:h]
	}
	for k, line := range lines {
		lines[k] = ansi.Truncate(line, w, "")
	}

	return base.Width(w).Height(h).Render(strings.Join(lines, "\n"))
}

func (m Model) renderStatus() string {
	width := m.gridWidth()
	if m.statusMsg != "" {
		style := m.styles.StatusStyle
		if m.statusErr {
			style = m.styles.ErrorStyle
		}
		return style.Render(ansi.Truncate(m.statusMsg, width, "…"))
	}
	return m.styles.StatusStyle.Render(ansi.Truncate(m.describeDay(m.cursorCell().DateKey), width, "…"))
}

func (m Model) renderPromptBox() string {
	s := m.styles
	lines := []string{
		s.PromptTitleStyle.Render("Add schedule · " + m.cursorCell().DateKey),
		"",
		m.prompt.View(),
	}

	if matches := input.MatchingKeywords(m.prompt.Value(), input.DateKeywords); len(matches) > 0 {
		names := make([]string, 0, len(matches))
		for _, kw := range matches {
			names = append(names, kw.Name)
		}
		lines = append(lines, s.PromptHintStyle.Render(strings.Join(names, " ")))
	}

	lines = append(lines, "", s.PromptHintStyle.Render("enter save · tab complete · esc cancel"))
	return s.PromptStyle.Render(strings.Join(lines, "\n"))
}

func (m Model) renderInitBox() string {
	s := m.styles
	lines := []string{s.PromptTitleStyle.Render("Welcome to lunacal"), ""}
	if m.initState.ConfigMissing {
		lines = append(lines, s.PromptInputTextStyle.Render("Config:   "+m.initState.ConfigPath))
	}
	if m.initState.DBMissing {
		lines = append(lines, s.PromptInputTextStyle.Render("Database: "+m.initState.DBPath))
	}
	if m.initState.ConfigMissing && len(m.initState.Workdays) > 0 {
		lunarText := "off"
		if m.initState.Lunar {
			lunarText = "on"
		}
		lines = append(lines, "",
			s.PromptHintStyle.Render("Workdays: "+strings.Join(m.initState.Workdays, ", ")),
			s.PromptHintStyle.Render("Lunar:    "+lunarText+" · theme "+m.initState.Theme),
		)
	}
	lines = append(lines, "", s.PromptHintStyle.Render("enter create · q quit"))
	return s.PromptStyle.Render(strings.Join(lines, "\n"))
}

func isWeekendColumn(c int) bool {
	return c == 0 || c == calendar.Columns-1
}

// Package tui provides the terminal month view for lunacal.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/lunacal/internal/tui/theme"
)

// Default column width - will be recalculated dynamically.
const defaultColWidth = 14

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	// Title style
	TitleStyle lipgloss.Style

	// Weekday header row
	WeekdayHeaderStyle lipgloss.Style
	WeekendHeaderStyle lipgloss.Style

	// Cell backgrounds
	CellStyle       lipgloss.Style
	CellTodayStyle  lipgloss.Style
	CellCursorStyle lipgloss.Style

	// Cell content
	DayNumberStyle        lipgloss.Style
	DayNumberWeekendStyle lipgloss.Style
	DayNumberOutsideStyle lipgloss.Style
	LunarStyle            lipgloss.Style
	LunarOutsideStyle     lipgloss.Style
	WorkdayMarkerStyle    lipgloss.Style
	RestMarkerStyle       lipgloss.Style
	ScheduleStyle         lipgloss.Style
	ScheduleSelectedStyle lipgloss.Style
	OverflowStyle         lipgloss.Style

	// Separator between cells
	SeparatorStyle lipgloss.Style

	// Footer
	StatusStyle lipgloss.Style
	ErrorStyle  lipgloss.Style
	HelpStyle   lipgloss.Style

	// Prompt box
	PromptStyle            lipgloss.Style
	PromptTitleStyle       lipgloss.Style
	PromptInputTextStyle   lipgloss.Style
	PromptPlaceholderStyle lipgloss.Style
	PromptHintStyle        lipgloss.Style

	// App container
	AppStyle lipgloss.Style
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(t *theme.Theme) *Styles {
	p := theme.NewPalette(t)
	s := &Styles{}

	s.TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Accent).
		Background(p.Bg)

	s.WeekdayHeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Align(lipgloss.Center).
		Foreground(p.Fg).
		Background(p.BgHighlight).
		Width(defaultColWidth)

	s.WeekendHeaderStyle = s.WeekdayHeaderStyle.
		Foreground(p.Restday)

	s.CellStyle = lipgloss.NewStyle().
		Width(defaultColWidth).
		Align(lipgloss.Left).
		Foreground(p.Fg).
		Background(p.Bg)

	s.CellTodayStyle = s.CellStyle.
		Foreground(p.TextOnToday).
		Background(p.TodayBg)

	// Cursor wins over today so the selection is always visible.
	s.CellCursorStyle = s.CellStyle.
		Foreground(p.TextOnSelection).
		Background(p.BgSelection)

	s.DayNumberStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Fg)

	s.DayNumberWeekendStyle = s.DayNumberStyle.
		Foreground(p.Restday)

	s.DayNumberOutsideStyle = lipgloss.NewStyle().
		Foreground(p.OutsideFg)

	s.LunarStyle = lipgloss.NewStyle().
		Foreground(p.FgMuted)

	s.LunarOutsideStyle = lipgloss.NewStyle().
		Foreground(p.OutsideFg)

	s.WorkdayMarkerStyle = lipgloss.NewStyle().
		Foreground(p.Workday)

	s.RestMarkerStyle = lipgloss.NewStyle().
		Foreground(p.Restday)

	s.ScheduleStyle = lipgloss.NewStyle().
		Foreground(p.Schedule)

	s.ScheduleSelectedStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Fg).
		Background(p.ScheduleBg)

	s.OverflowStyle = lipgloss.NewStyle().
		Italic(true).
		Foreground(p.FgMuted)

	s.SeparatorStyle = lipgloss.NewStyle().
		Background(p.Bg)

	s.StatusStyle = lipgloss.NewStyle().
		Foreground(p.Fg).
		Background(p.Bg)

	s.ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Warning).
		Background(p.Bg)

	s.HelpStyle = lipgloss.NewStyle().
		Foreground(p.FgMuted).
		Background(p.Bg)

	s.PromptStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Prompt.Border).
		BorderBackground(p.Prompt.Bg).
		Background(p.Prompt.Bg).
		Foreground(p.Prompt.Text).
		Padding(0, 1)

	s.PromptTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Accent).
		Background(p.Prompt.Bg)

	s.PromptInputTextStyle = lipgloss.NewStyle().
		Foreground(p.Prompt.Text).
		Background(p.Prompt.Bg)

	s.PromptPlaceholderStyle = lipgloss.NewStyle().
		Foreground(p.FgMuted).
		Background(p.Prompt.Bg)

	s.PromptHintStyle = lipgloss.NewStyle().
		Foreground(p.FgMuted).
		Background(p.Prompt.Bg)

	s.AppStyle = lipgloss.NewStyle().
		Background(p.Bg)

	return s
}

// cellBase picks the background style for a cell.
func (s *Styles) cellBase(isCursor, isToday bool) lipgloss.Style {
	switch {
	case isCursor:
		return s.CellCursorStyle
	case isToday:
		return s.CellTodayStyle
	default:
		return s.CellStyle
	}
}

package tui

import (
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/lunacal/internal/calendar"
	"github.com/javiermolinar/lunacal/internal/dateutil"
	"github.com/javiermolinar/lunacal/internal/tui/commands"
	"github.com/javiermolinar/lunacal/internal/tui/input"
)

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	LogKeyPress(msg)

	// Global keys (work in all modes)
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case ModePrompt:
		return m.handlePromptKeys(msg)
	case ModeInit:
		return m.handleInitKeys(msg)
	default:
		return m.handleNormalKeys(msg)
	}
}

// handleNormalKeys handles keys in normal mode.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	// Cursor movement; crossing the grid edge changes month
	case "h", "left":
		return m.moveCursor(-1, "left")
	case "l", "right":
		return m.moveCursor(1, "right")
	case "k", "up":
		return m.moveCursor(-calendar.Columns, "up")
	case "j", "down":
		return m.moveCursor(calendar.Columns, "down")

	// Month navigation
	case "[", "pgup":
		day := m.cursorDay()
		m.cal.Previous()
		m.placeCursorOnDay(day)
		return m.afterNavigation("previous month")
	case "]", "pgdown":
		day := m.cursorDay()
		m.cal.Next()
		m.placeCursorOnDay(day)
		return m.afterNavigation("next month")
	case "t":
		m.cal.Today()
		m.cursor = m.todayIndex()
		return m.afterNavigation("today")

	// Schedule selection
	case "tab":
		m.selected = cycleSelection(m.selected, m.visibleSchedules(m.cursorCell()), 1)
		return m, nil
	case "shift+tab":
		m.selected = cycleSelection(m.selected, m.visibleSchedules(m.cursorCell()), -1)
		return m, nil
	case "esc":
		m.selected = noSelection
		return m, nil

	case "enter":
		return m.activate()

	case "a":
		m.prompt.SetValue("")
		m.prompt.Focus()
		LogModeChange(m.mode, ModePrompt, "add schedule")
		m.mode = ModePrompt
		return m, nil

	case "d":
		cell := m.cursorCell()
		if m.selected == noSelection {
			return m, commands.Status("Select a schedule with tab first")
		}
		entry := m.entryAt(cell.DateKey, m.selected)
		if entry == nil {
			return m, commands.Status("Schedules are still loading")
		}
		return m, commands.RemoveSchedule(m.repo, entry)

	case "y":
		key := m.cursorCell().DateKey
		if err := clipboard.WriteAll(key); err != nil {
			LogError("clipboard", err)
			return m, func() tea.Msg { return commands.ErrMsg{Err: fmt.Errorf("copying date: %w", err)} }
		}
		return m, commands.Status("Copied " + key)
	}

	return m, nil
}

// activate reports the cursor cell, or its selected schedule, to subscribers.
// A selected schedule produces only a ScheduleClicked.
func (m Model) activate() (tea.Model, tea.Cmd) {
	cell := m.cursorCell()
	if m.selected != noSelection && m.selected < len(cell.Schedules) {
		m.cal.ClickSchedule(cell.Schedules[m.selected], cell.DateKey)
	} else {
		m.cal.ClickDay(cell.DateKey)
	}
	cmd := m.handleEvents()
	return m, cmd
}

// moveCursor moves the cursor by delta days. When the target date is not in
// the grid the calendar navigates to the target's month.
func (m Model) moveCursor(delta int, reason string) (tea.Model, tea.Cmd) {
	grid := m.grid()
	target := grid[m.cursor].Date().AddDate(0, 0, delta)
	key := dateutil.KeyOf(target)

	idx := grid.Index(key)
	if idx >= 0 {
		m.cursor = idx
		m.selected = noSelection
		LogCursorMove(m.cursor, key, reason)
		return m, nil
	}

	grid = m.cal.Goto(calendar.MonthOf(target))
	m.cursor = max(grid.Index(key), 0)
	LogCursorMove(m.cursor, key, reason+" (month change)")
	return m.afterNavigation(reason)
}

// cursorDay returns the day of month to keep when switching months.
func (m Model) cursorDay() int {
	cell := m.cursorCell()
	if !cell.InDisplayedMonth {
		return 1
	}
	return cell.Day
}

// placeCursorOnDay puts the cursor on day of the displayed month, clamped to
// the month's length.
func (m *Model) placeCursorOnDay(day int) {
	month := m.cal.Current()
	day = min(day, dateutil.DaysInMonth(month.Year, month.Month))
	m.cursor = dateutil.WeekdayOfFirst(month.Year, month.Month) + day - 1
}

func (m Model) afterNavigation(reason string) (tea.Model, tea.Cmd) {
	m.selected = noSelection
	LogCursorMove(m.cursor, m.cursorCell().DateKey, reason)
	cmd := m.handleEvents()
	return m, cmd
}

// cycleSelection steps through none, 0, 1, ..., n-1 and wraps around.
func cycleSelection(current, n, step int) int {
	if n <= 0 {
		return noSelection
	}
	// Shift by one so noSelection maps to slot 0.
	slots := n + 1
	next := ((current+1)+step)%slots + slots
	return next%slots - 1
}

// handlePromptKeys handles keys while the add-schedule prompt is open.
func (m Model) handlePromptKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.closePrompt("cancelled"), nil

	case "tab":
		if value, ok := input.Autocomplete(m.prompt.Value(), input.DateKeywords); ok {
			m.prompt.SetValue(value)
			m.prompt.CursorEnd()
		}
		return m, nil

	case "enter":
		cell := m.cursorCell()
		date, label, err := input.ParseAdd(m.prompt.Value(), cell.Date(), m.now())
		if err != nil {
			return m, func() tea.Msg { return commands.ErrMsg{Err: fmt.Errorf("reading date: %w", err)} }
		}
		return m.closePrompt("submitted"), commands.AddSchedule(m.repo, dateutil.KeyOf(date), label)
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

func (m Model) closePrompt(reason string) Model {
	m.prompt.Blur()
	m.prompt.SetValue("")
	LogModeChange(m.mode, ModeNormal, reason)
	m.mode = ModeNormal
	return m
}

// handleInitKeys handles keys on the first-run screen.
func (m Model) handleInitKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "enter", "y":
		updated, err := m.initializeStorage()
		if err != nil {
			LogError("initialize storage", err)
			return m, func() tea.Msg { return commands.ErrMsg{Err: err} }
		}
		LogModeChange(updated.mode, ModeNormal, "initialized")
		updated.mode = ModeNormal
		updated.loading = true
		return updated, commands.LoadSchedules(updated.repo, updated.cal.Current())
	}
	return m, nil
}

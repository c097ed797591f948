package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/lunacal/internal/calendar"
	"github.com/javiermolinar/lunacal/internal/schedule"
	"github.com/javiermolinar/lunacal/internal/tui/commands"
	"github.com/javiermolinar/lunacal/internal/workday"
)

const (
	statusDuration = 3 * time.Second
	errorDuration  = 5 * time.Second
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.colWidth = m.calculateColWidth()
		return m, nil

	case commands.SchedulesLoadedMsg:
		// A slower load for a month we already left.
		if msg.Month != m.cal.Current() {
			return m, nil
		}
		m.entries = groupEntries(msg.Entries)
		m.loaded = msg.Month
		m.hasLoaded = true
		m.loading = false
		m.cal.UpdateSchedules(schedule.Fold(msg.Entries))
		if m.selected >= m.visibleSchedules(m.cursorCell()) {
			m.selected = noSelection
		}
		cmd := m.handleEvents()
		return m, cmd

	case commands.ScheduleAddedMsg:
		m.loading = true
		return m, tea.Batch(
			commands.LoadSchedules(m.repo, m.cal.Current()),
			commands.Status(fmt.Sprintf("Added %q on %s", msg.Entry.Label, msg.Entry.DateKey)),
		)

	case commands.ScheduleRemovedMsg:
		m.selected = noSelection
		m.loading = true
		return m, tea.Batch(
			commands.LoadSchedules(m.repo, m.cal.Current()),
			commands.Status(fmt.Sprintf("Removed %q from %s", msg.Entry.Label, msg.Entry.DateKey)),
		)

	case commands.ErrMsg:
		LogError("command", msg.Err)
		m.loading = false
		m.statusMsg = fmt.Sprintf("Error: %v", msg.Err)
		m.statusErr = true
		m.statusTime = m.now().Add(errorDuration)
		return m, clearStatusAfter(errorDuration)

	case commands.StatusMsgCmd:
		m.statusMsg = msg.Msg
		m.statusErr = false
		m.statusTime = m.now().Add(statusDuration)
		return m, clearStatusAfter(statusDuration)

	case commands.ClearStatusMsg:
		if !m.now().Before(m.statusTime) {
			m.statusMsg = ""
			m.statusErr = false
		}
		return m, nil
	}

	// Keep the prompt cursor blinking
	if m.mode == ModePrompt {
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		return m, cmd
	}

	return m, nil
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return commands.ClearStatusMsg{}
	})
}

// handleEvents reacts to the calendar notifications queued since the last
// call. A month change reloads schedules unless they are already loaded.
func (m *Model) handleEvents() tea.Cmd {
	var cmds []tea.Cmd
	for _, e := range m.surface.drain() {
		switch e := e.(type) {
		case calendar.MonthChanged:
			month := calendar.Month{Year: e.Year, Month: e.Month}
			if m.hasLoaded && month == m.loaded {
				m.loading = false
				continue
			}
			m.loading = true
			cmds = append(cmds, commands.LoadSchedules(m.repo, month))

		case calendar.DayClicked:
			cmds = append(cmds, commands.Status(m.describeDay(e.DateKey)))

		case calendar.ScheduleClicked:
			cmds = append(cmds, commands.Status(fmt.Sprintf("%s: %s", e.DateKey, e.Label)))
		}
	}
	return tea.Batch(cmds...)
}

// describeDay summarizes a grid day for the status bar.
func (m Model) describeDay(dateKey string) string {
	grid := m.grid()
	i := grid.Index(dateKey)
	if i < 0 {
		return dateKey
	}

	cell := grid[i]
	text := fmt.Sprintf("%s %s", cell.Date().Format("Mon"), dateKey)
	if cell.LunarLabel != "" {
		text += " · " + cell.LunarLabel
	}
	text += " · " + workday.Marker(cell.IsWorkday)
	if n := len(cell.Schedules); n > 0 {
		text += fmt.Sprintf(" · %d scheduled", n)
	}
	return text
}

func groupEntries(entries []*schedule.Entry) map[string][]*schedule.Entry {
	out := make(map[string][]*schedule.Entry)
	for _, e := range entries {
		out[e.DateKey] = append(out[e.DateKey], e)
	}
	return out
}

// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/lunacal/internal/calendar"
	"github.com/javiermolinar/lunacal/internal/schedule"
)

// SchedulesLoadedMsg is sent when the entries covering a month's grid are loaded.
type SchedulesLoadedMsg struct {
	Month   calendar.Month
	Entries []*schedule.Entry
}

// ScheduleAddedMsg is sent after an entry is stored.
type ScheduleAddedMsg struct {
	Entry *schedule.Entry
}

// ScheduleRemovedMsg is sent after an entry is deleted.
type ScheduleRemovedMsg struct {
	Entry *schedule.Entry
}

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// LoadSchedules loads the entries shown in the month's grid, including the
// leading and trailing days of the neighbouring months.
func LoadSchedules(repo schedule.Repository, month calendar.Month) tea.Cmd {
	return func() tea.Msg {
		if repo == nil {
			return SchedulesLoadedMsg{Month: month}
		}

		start, end := schedule.Window(month)
		entries, err := repo.ListEntries(context.Background(), start, end)
		if err != nil {
			return ErrMsg{Err: fmt.Errorf("loading %s: %w", month, err)}
		}

		return SchedulesLoadedMsg{Month: month, Entries: entries}
	}
}

// AddSchedule stores a new entry for the date.
func AddSchedule(repo schedule.Repository, dateKey, label string) tea.Cmd {
	return func() tea.Msg {
		if repo == nil {
			return ErrMsg{Err: fmt.Errorf("no schedule storage")}
		}

		e, err := schedule.New(dateKey, label)
		if err != nil {
			return ErrMsg{Err: err}
		}
		if err := repo.AddEntry(context.Background(), e); err != nil {
			return ErrMsg{Err: fmt.Errorf("adding schedule: %w", err)}
		}

		return ScheduleAddedMsg{Entry: e}
	}
}

// RemoveSchedule deletes an entry.
func RemoveSchedule(repo schedule.Repository, e *schedule.Entry) tea.Cmd {
	return func() tea.Msg {
		if repo == nil {
			return ErrMsg{Err: fmt.Errorf("no schedule storage")}
		}
		if e == nil {
			return ErrMsg{Err: fmt.Errorf("no schedule selected")}
		}

		if err := repo.RemoveEntry(context.Background(), e.ID); err != nil {
			return ErrMsg{Err: fmt.Errorf("removing schedule: %w", err)}
		}

		return ScheduleRemovedMsg{Entry: e}
	}
}

// Status wraps a status message in a command.
func Status(msg string) tea.Cmd {
	return func() tea.Msg {
		return StatusMsgCmd{Msg: msg}
	}
}

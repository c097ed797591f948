// Package calendar generates month-view calendar grids and tracks the displayed month.
//
// A grid is 6 rows of 7 days (Sunday first). It starts with the tail of the previous
// month, holds every day of the displayed month and is padded with the lead of the
// next month. Every cell carries a lunar label, a workday flag and the schedules
// registered for its date.
package calendar

import (
	"fmt"
	"time"

	"github.com/javiermolinar/lunacal/internal/dateutil"
)

// Grid dimensions.
const (
	Columns  = 7
	Rows     = 6
	GridSize = Columns * Rows
)

// Month identifies a calendar month. Month is 0-based (0=January).
type Month struct {
	Year  int
	Month int
}

// Navigable range. Every grid between the two bounds, leading and trailing cells
// included, holds dates with four-digit years.
var (
	MinMonth = Month{Year: 1, Month: 0}
	MaxMonth = Month{Year: 9999, Month: 10}
)

// MonthOf returns the month containing t, read in t's location.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: int(t.Month()) - 1}
}

// NewMonth returns a normalized month. Out of range months carry into the year.
func NewMonth(year, month int) Month {
	y, m := dateutil.Normalize(year, month, 0)
	return Month{Year: y, Month: m}
}

// Add returns the month delta months away.
func (m Month) Add(delta int) Month {
	y, mo := dateutil.Normalize(m.Year, m.Month, delta)
	return Month{Year: y, Month: mo}
}

// Before reports whether m comes before o.
func (m Month) Before(o Month) bool {
	return m.Year < o.Year || (m.Year == o.Year && m.Month < o.Month)
}

// Clamp returns m limited to [MinMonth, MaxMonth].
func (m Month) Clamp() Month {
	switch {
	case m.Before(MinMonth):
		return MinMonth
	case MaxMonth.Before(m):
		return MaxMonth
	}
	return m
}

// First returns midnight of day 1 in the given location.
func (m Month) First(loc *time.Location) time.Time {
	return time.Date(m.Year, time.Month(m.Month+1), 1, 0, 0, 0, 0, loc)
}

// Contains reports whether t falls inside the month.
func (m Month) Contains(t time.Time) bool {
	return MonthOf(t) == m
}

// String returns the month formatted as "February 2024".
func (m Month) String() string {
	return fmt.Sprintf("%s %d", time.Month(m.Month+1), m.Year)
}

// Cell is one day of a grid. Cells are built fresh for each grid and never modified.
type Cell struct {
	Year             int
	Month            int // 0-based
	Day              int // 1-based
	DateKey          string
	InDisplayedMonth bool
	IsToday          bool
	LunarLabel       string
	IsWorkday        bool
	Schedules        []string
}

// Date returns the cell's date at midnight UTC.
func (c Cell) Date() time.Time {
	return time.Date(c.Year, time.Month(c.Month+1), c.Day, 0, 0, 0, 0, time.UTC)
}

// Grid is the ordered sequence of cells, index 0 being the top-left cell.
type Grid [GridSize]Cell

// Index returns the position of the cell with the given date key, or -1.
func (g *Grid) Index(dateKey string) int {
	for i := range g {
		if g[i].DateKey == dateKey {
			return i
		}
	}
	return -1
}

// Span returns the first and last dates covered by the grid.
func (g *Grid) Span() (time.Time, time.Time) {
	return g[0].Date(), g[GridSize-1].Date()
}

// Schedules maps date keys (YYYY-MM-DD) to schedule labels in display order.
//
// A Schedules value is owned by the caller. The calendar only reads it and never
// mutates it; it must not be modified while a grid is being generated.
type Schedules map[string][]string

// For returns a copy of the labels registered for dateKey. It never returns nil.
func (s Schedules) For(dateKey string) []string {
	labels := s[dateKey]
	out := make([]string, len(labels))
	copy(out, labels)
	return out
}

// LunarConverter turns a Gregorian date into a lunar calendar label.
// Month is 1-based.
type LunarConverter interface {
	Label(year, month, day int) string
}

// WorkdayClassifier decides whether a date is a working day.
type WorkdayClassifier interface {
	IsWorkday(t time.Time) bool
}

package calendar

import (
	"time"

	"github.com/javiermolinar/lunacal/internal/dateutil"
	"github.com/javiermolinar/lunacal/internal/workday"
)

// Generator builds grids. The zero value is not usable; use NewGenerator.
type Generator struct {
	lunar    LunarConverter
	workdays WorkdayClassifier
}

type noLunar struct{}

func (noLunar) Label(int, int, int) string { return "" }

// NewGenerator creates a generator. A nil converter yields empty lunar labels and a
// nil classifier falls back to Monday–Friday workdays.
func NewGenerator(lunar LunarConverter, workdays WorkdayClassifier) *Generator {
	if lunar == nil {
		lunar = noLunar{}
	}
	if workdays == nil {
		workdays = workday.Default()
	}
	return &Generator{lunar: lunar, workdays: workdays}
}

// Generate returns the grid for the displayed month.
//
// Each cell's date is derived from its index alone, so month and year boundaries are
// recomputed for every cell rather than carried over from the previous one.
func (g *Generator) Generate(displayed Month, today time.Time, schedules Schedules) Grid {
	firstWeekday := dateutil.WeekdayOfFirst(displayed.Year, displayed.Month)
	lastDate := dateutil.DaysInMonth(displayed.Year, displayed.Month)

	prev := displayed.Add(-1)
	next := displayed.Add(1)
	prevLastDate := dateutil.DaysInMonth(prev.Year, prev.Month)

	var grid Grid
	for i := range GridSize {
		day := i - firstWeekday + 1

		var c Cell
		switch {
		case i < firstWeekday:
			c = Cell{Year: prev.Year, Month: prev.Month, Day: prevLastDate - firstWeekday + 1 + i}
		case day > lastDate:
			c = Cell{Year: next.Year, Month: next.Month, Day: day - lastDate}
		default:
			c = Cell{Year: displayed.Year, Month: displayed.Month, Day: day, InDisplayedMonth: true}
			c.IsToday = dateutil.IsSameDate(
				time.Date(c.Year, time.Month(c.Month+1), c.Day, 0, 0, 0, 0, today.Location()),
				today,
			)
		}

		grid[i] = g.enrich(c, schedules)
	}

	return grid
}

func (g *Generator) enrich(c Cell, schedules Schedules) Cell {
	c.DateKey = dateutil.DateKey(c.Year, c.Month, c.Day)
	c.LunarLabel = g.lunar.Label(c.Year, c.Month+1, c.Day)
	c.IsWorkday = g.workdays.IsWorkday(c.Date())
	c.Schedules = schedules.For(c.DateKey)
	return c
}

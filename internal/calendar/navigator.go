package calendar

import "time"

// Navigator owns the displayed month and regenerates the grid on every transition.
// Transitions are synchronous; there is no intermediate state.
type Navigator struct {
	gen       *Generator
	schedules Schedules
	now       func() time.Time

	current Month
	grid    Grid
}

// NewNavigator creates a navigator. now supplies "today" for each generation and
// defaults to time.Now.
func NewNavigator(gen *Generator, schedules Schedules, now func() time.Time) *Navigator {
	if now == nil {
		now = time.Now
	}
	return &Navigator{gen: gen, schedules: schedules, now: now}
}

// Initialize displays the month containing today.
func (n *Navigator) Initialize(today time.Time) Grid {
	n.current = MonthOf(today).Clamp()
	n.grid = n.gen.Generate(n.current, today, n.schedules)
	return n.grid
}

// Previous moves to the previous month.
func (n *Navigator) Previous() (Grid, MonthChanged) {
	return n.Goto(n.current.Add(-1))
}

// Next moves to the next month.
func (n *Navigator) Next() (Grid, MonthChanged) {
	return n.Goto(n.current.Add(1))
}

// Goto displays the given month. Months outside [MinMonth, MaxMonth] stop at
// the nearest bound.
func (n *Navigator) Goto(m Month) (Grid, MonthChanged) {
	n.current = NewMonth(m.Year, m.Month).Clamp()
	return n.regenerate(), n.changed()
}

// UpdateSchedules replaces the schedules wholesale and regenerates the displayed
// month. The displayed month does not change.
func (n *Navigator) UpdateSchedules(s Schedules) Grid {
	n.schedules = s
	return n.regenerate()
}

// Current returns the displayed month.
func (n *Navigator) Current() Month {
	return n.current
}

// Grid returns the most recently generated grid.
func (n *Navigator) Grid() Grid {
	return n.grid
}

// Schedules returns the schedules the grid was generated from.
func (n *Navigator) Schedules() Schedules {
	return n.schedules
}

func (n *Navigator) regenerate() Grid {
	n.grid = n.gen.Generate(n.current, n.now(), n.schedules)
	return n.grid
}

func (n *Navigator) changed() MonthChanged {
	return MonthChanged{Year: n.current.Year, Month: n.current.Month}
}

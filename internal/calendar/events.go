package calendar

// Event is a notification published by a Component.
type Event interface {
	event()
}

// MonthChanged is published after every grid generation. Month is 0-based.
type MonthChanged struct {
	Year  int
	Month int
}

// DayClicked is forwarded from a renderer when a day cell is activated.
type DayClicked struct {
	DateKey string
}

// ScheduleClicked is forwarded from a renderer when a schedule label is activated.
// It is never accompanied by a DayClicked for the same activation.
type ScheduleClicked struct {
	Label   string
	DateKey string
}

func (MonthChanged) event()    {}
func (DayClicked) event()      {}
func (ScheduleClicked) event() {}

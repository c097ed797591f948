package calendar

import (
	"errors"
	"fmt"
	"time"
)

// ErrContainerNotFound is returned by New when no renderer is supplied.
var ErrContainerNotFound = errors.New("calendar container not found")

// Renderer paints grids. Implementations report user activations back through
// Component.ClickDay and Component.ClickSchedule.
type Renderer interface {
	Paint(month Month, grid Grid)
}

type options struct {
	lunar    LunarConverter
	workdays WorkdayClassifier
	now      func() time.Time
	subs     []func(Event)
}

// Option configures a Component.
type Option func(*options)

// WithSubscriber registers fn before the first grid is painted, so it also
// receives the initial MonthChanged.
func WithSubscriber(fn func(Event)) Option {
	return func(o *options) { o.subs = append(o.subs, fn) }
}

// WithLunar sets the lunar label converter.
func WithLunar(l LunarConverter) Option {
	return func(o *options) { o.lunar = l }
}

// WithWorkdays sets the workday classifier.
func WithWorkdays(w WorkdayClassifier) Option {
	return func(o *options) { o.workdays = w }
}

// WithClock sets the source of "today".
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

type subscription struct {
	id int
	fn func(Event)
}

// Component ties a Navigator to a Renderer and publishes notifications.
// It is not safe for concurrent use.
type Component struct {
	container Renderer
	nav       *Navigator

	subs   []subscription
	nextID int
}

// New creates a component, displays the current month and paints it.
func New(container Renderer, schedules Schedules, opts ...Option) (*Component, error) {
	if container == nil {
		return nil, fmt.Errorf("creating calendar: %w", ErrContainerNotFound)
	}

	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	if o.now == nil {
		o.now = time.Now
	}

	c := &Component{
		container: container,
		nav:       NewNavigator(NewGenerator(o.lunar, o.workdays), schedules, o.now),
	}
	for _, fn := range o.subs {
		c.Subscribe(fn)
	}
	c.nav.Initialize(o.now())
	c.paint()

	return c, nil
}

// Subscribe registers fn for every event. The returned func removes it.
func (c *Component) Subscribe(fn func(Event)) func() {
	c.nextID++
	id := c.nextID
	c.subs = append(c.subs, subscription{id: id, fn: fn})

	return func() {
		for i, s := range c.subs {
			if s.id == id {
				c.subs = append(c.subs[:i], c.subs[i+1:]...)
				return
			}
		}
	}
}

// Previous displays the previous month.
func (c *Component) Previous() Grid {
	c.nav.Previous()
	return c.paint()
}

// Next displays the next month.
func (c *Component) Next() Grid {
	c.nav.Next()
	return c.paint()
}

// Goto displays the given month.
func (c *Component) Goto(m Month) Grid {
	c.nav.Goto(m)
	return c.paint()
}

// Today displays the month containing the current date.
func (c *Component) Today() Grid {
	c.nav.Initialize(c.nav.now())
	return c.paint()
}

// UpdateSchedules replaces the schedules and repaints the displayed month.
func (c *Component) UpdateSchedules(s Schedules) Grid {
	c.nav.UpdateSchedules(s)
	return c.paint()
}

// ClickDay forwards a day activation to subscribers.
func (c *Component) ClickDay(dateKey string) {
	c.publish(DayClicked{DateKey: dateKey})
}

// ClickSchedule forwards a schedule activation to subscribers.
func (c *Component) ClickSchedule(label, dateKey string) {
	c.publish(ScheduleClicked{Label: label, DateKey: dateKey})
}

// Current returns the displayed month.
func (c *Component) Current() Month {
	return c.nav.Current()
}

// Grid returns the displayed grid.
func (c *Component) Grid() Grid {
	return c.nav.Grid()
}

// Schedules returns the schedules currently in use.
func (c *Component) Schedules() Schedules {
	return c.nav.Schedules()
}

func (c *Component) paint() Grid {
	grid := c.nav.Grid()
	month := c.nav.Current()
	c.container.Paint(month, grid)
	c.publish(MonthChanged{Year: month.Year, Month: month.Month})
	return grid
}

func (c *Component) publish(e Event) {
	// Copy so a subscriber may unsubscribe while being notified.
	subs := append([]subscription(nil), c.subs...)
	for _, s := range subs {
		s.fn(e)
	}
}

package calendar

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

type recordingRenderer struct {
	months []Month
	grids  []Grid
}

func (r *recordingRenderer) Paint(month Month, grid Grid) {
	r.months = append(r.months, month)
	r.grids = append(r.grids, grid)
}

func TestNew_NilContainer(t *testing.T) {
	_, err := New(nil, nil)
	if !errors.Is(err, ErrContainerNotFound) {
		t.Errorf("got error %v, want %v", err, ErrContainerNotFound)
	}
}

func TestNew_PaintsCurrentMonth(t *testing.T) {
	r := &recordingRenderer{}
	var events []Event

	c, err := New(r, nil,
		WithClock(fixedClock(time.Date(2023, 12, 25, 0, 0, 0, 0, time.UTC))),
		WithLunar(keyLunar{}),
		WithSubscriber(func(e Event) { events = append(events, e) }),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(r.months) != 1 || r.months[0] != (Month{Year: 2023, Month: 11}) {
		t.Fatalf("painted months = %+v, want [December 2023]", r.months)
	}
	if len(events) != 1 || events[0] != (MonthChanged{Year: 2023, Month: 11}) {
		t.Errorf("events = %+v, want initial MonthChanged", events)
	}
	if !reflect.DeepEqual(c.Grid(), r.grids[0]) {
		t.Error("component grid differs from painted grid")
	}
}

func TestComponent_Navigation(t *testing.T) {
	r := &recordingRenderer{}
	c, err := New(r, nil, WithClock(fixedClock(time.Date(2023, 12, 25, 0, 0, 0, 0, time.UTC))))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var changes []MonthChanged
	c.Subscribe(func(e Event) {
		if mc, ok := e.(MonthChanged); ok {
			changes = append(changes, mc)
		}
	})

	c.Next()
	c.Next()
	c.Previous()
	c.Goto(Month{Year: 2020, Month: 1})
	c.Today()

	want := []MonthChanged{
		{Year: 2024, Month: 0},
		{Year: 2024, Month: 1},
		{Year: 2024, Month: 0},
		{Year: 2020, Month: 1},
		{Year: 2023, Month: 11},
	}
	if len(changes) != len(want) {
		t.Fatalf("got %d changes, want %d", len(changes), len(want))
	}
	for i := range want {
		if changes[i] != want[i] {
			t.Errorf("change %d = %+v, want %+v", i, changes[i], want[i])
		}
	}
	if len(r.months) != 6 {
		t.Errorf("expected 6 paints, got %d", len(r.months))
	}
}

func TestComponent_UpdateSchedules(t *testing.T) {
	r := &recordingRenderer{}
	c, err := New(r, Schedules{}, WithClock(fixedClock(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC))))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	grid := c.UpdateSchedules(Schedules{"2024-02-14": {"Meeting"}})
	if c.Current() != (Month{Year: 2024, Month: 1}) {
		t.Errorf("current = %+v, want February 2024", c.Current())
	}
	if got := grid[grid.Index("2024-02-14")].Schedules; len(got) != 1 || got[0] != "Meeting" {
		t.Errorf("got %v, want [Meeting]", got)
	}
	if len(c.Schedules()["2024-02-14"]) != 1 {
		t.Error("Schedules() does not return the updated store")
	}
	if len(r.months) != 2 || r.months[1] != r.months[0] {
		t.Errorf("painted months = %+v, want the same month twice", r.months)
	}
}

func TestComponent_Clicks(t *testing.T) {
	r := &recordingRenderer{}
	c, err := New(r, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var events []Event
	unsubscribe := c.Subscribe(func(e Event) { events = append(events, e) })

	c.ClickDay("2024-02-14")
	c.ClickSchedule("Meeting", "2024-02-14")

	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0] != (DayClicked{DateKey: "2024-02-14"}) {
		t.Errorf("event 0 = %+v", events[0])
	}
	if events[1] != (ScheduleClicked{Label: "Meeting", DateKey: "2024-02-14"}) {
		t.Errorf("event 1 = %+v", events[1])
	}
	if len(r.months) != 1 {
		t.Error("clicks must not repaint")
	}

	unsubscribe()
	c.ClickDay("2024-02-15")
	if len(events) != 2 {
		t.Error("unsubscribed listener still notified")
	}
}

func TestComponent_UnsubscribeDuringPublish(t *testing.T) {
	c, err := New(&recordingRenderer{}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var first, second int
	var unsubscribe func()
	unsubscribe = c.Subscribe(func(Event) {
		first++
		unsubscribe()
	})
	c.Subscribe(func(Event) { second++ })

	c.ClickDay("2024-02-14")
	c.ClickDay("2024-02-15")

	if first != 1 || second != 2 {
		t.Errorf("first = %d, second = %d, want 1 and 2", first, second)
	}
}

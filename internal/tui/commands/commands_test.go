package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/javiermolinar/lunacal/internal/calendar"
	"github.com/javiermolinar/lunacal/internal/schedule"
)

type fakeRepo struct {
	listEntries func(start, end time.Time) ([]*schedule.Entry, error)
	added       []*schedule.Entry
	removed     []int64
	err         error
}

func (f *fakeRepo) AddEntry(ctx context.Context, e *schedule.Entry) error {
	if f.err != nil {
		return f.err
	}
	e.ID = int64(len(f.added) + 1)
	f.added = append(f.added, e)
	return nil
}

func (f *fakeRepo) GetEntry(ctx context.Context, id int64) (*schedule.Entry, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeRepo) RemoveEntry(ctx context.Context, id int64) error {
	if f.err != nil {
		return f.err
	}
	f.removed = append(f.removed, id)
	return nil
}

func (f *fakeRepo) RenameEntry(ctx context.Context, id int64, label string) error {
	return errors.New("not implemented")
}

func (f *fakeRepo) ListEntries(ctx context.Context, start, end time.Time) ([]*schedule.Entry, error) {
	if f.listEntries == nil {
		return nil, errors.New("not implemented")
	}
	return f.listEntries(start, end)
}

func (f *fakeRepo) Close() error {
	return nil
}

func TestLoadSchedulesQueriesGridWindow(t *testing.T) {
	month := calendar.Month{Year: 2024, Month: 1}
	var gotStart, gotEnd time.Time

	repo := &fakeRepo{
		listEntries: func(start, end time.Time) ([]*schedule.Entry, error) {
			gotStart, gotEnd = start, end
			return []*schedule.Entry{{ID: 1, DateKey: "2024-02-14", Label: "Dinner"}}, nil
		},
	}

	msg := LoadSchedules(repo, month)()

	loaded, ok := msg.(SchedulesLoadedMsg)
	if !ok {
		t.Fatalf("msg type = %T, want SchedulesLoadedMsg", msg)
	}
	if loaded.Month != month {
		t.Fatalf("month = %v, want %v", loaded.Month, month)
	}
	if len(loaded.Entries) != 1 || loaded.Entries[0].Label != "Dinner" {
		t.Fatalf("entries = %+v", loaded.Entries)
	}

	wantStart := time.Date(2024, time.January, 28, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2024, time.March, 9, 0, 0, 0, 0, time.UTC)
	if !gotStart.Equal(wantStart) || !gotEnd.Equal(wantEnd) {
		t.Fatalf("window = %s..%s, want %s..%s", gotStart, gotEnd, wantStart, wantEnd)
	}
}

func TestLoadSchedulesWithoutRepo(t *testing.T) {
	month := calendar.Month{Year: 2024, Month: 1}

	msg := LoadSchedules(nil, month)()

	loaded, ok := msg.(SchedulesLoadedMsg)
	if !ok {
		t.Fatalf("msg type = %T, want SchedulesLoadedMsg", msg)
	}
	if loaded.Month != month || len(loaded.Entries) != 0 {
		t.Fatalf("loaded = %+v, want empty February", loaded)
	}
}

func TestLoadSchedulesError(t *testing.T) {
	boom := errors.New("boom")
	repo := &fakeRepo{
		listEntries: func(start, end time.Time) ([]*schedule.Entry, error) {
			return nil, boom
		},
	}

	msg := LoadSchedules(repo, calendar.Month{Year: 2024, Month: 1})()

	errMsg, ok := msg.(ErrMsg)
	if !ok {
		t.Fatalf("msg type = %T, want ErrMsg", msg)
	}
	if !errors.Is(errMsg.Err, boom) {
		t.Fatalf("err = %v, want wrapped boom", errMsg.Err)
	}
}

func TestAddSchedule(t *testing.T) {
	repo := &fakeRepo{}

	msg := AddSchedule(repo, "2024-02-14", "  Dinner  ")()

	added, ok := msg.(ScheduleAddedMsg)
	if !ok {
		t.Fatalf("msg type = %T, want ScheduleAddedMsg", msg)
	}
	if added.Entry.ID != 1 || added.Entry.Label != "Dinner" || added.Entry.DateKey != "2024-02-14" {
		t.Fatalf("entry = %+v", added.Entry)
	}
	if len(repo.added) != 1 {
		t.Fatalf("stored = %d, want 1", len(repo.added))
	}
}

func TestAddScheduleRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		repo    *fakeRepo
		date    string
		label   string
		wantErr error
	}{
		{name: "empty label", repo: &fakeRepo{}, date: "2024-02-14", label: "   ", wantErr: schedule.ErrEmptyLabel},
		{name: "bad date", repo: &fakeRepo{}, date: "2024-02-30", label: "Dinner"},
		{name: "storage failure", repo: &fakeRepo{err: errors.New("locked")}, date: "2024-02-14", label: "Dinner"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := AddSchedule(tt.repo, tt.date, tt.label)()
			errMsg, ok := msg.(ErrMsg)
			if !ok {
				t.Fatalf("msg type = %T, want ErrMsg", msg)
			}
			if tt.wantErr != nil && !errors.Is(errMsg.Err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", errMsg.Err, tt.wantErr)
			}
		})
	}
}

func TestRemoveSchedule(t *testing.T) {
	repo := &fakeRepo{}
	entry := &schedule.Entry{ID: 7, DateKey: "2024-02-14", Label: "Dinner"}

	msg := RemoveSchedule(repo, entry)()

	removed, ok := msg.(ScheduleRemovedMsg)
	if !ok {
		t.Fatalf("msg type = %T, want ScheduleRemovedMsg", msg)
	}
	if removed.Entry != entry {
		t.Fatal("removed entry does not match")
	}
	if len(repo.removed) != 1 || repo.removed[0] != 7 {
		t.Fatalf("removed ids = %v, want [7]", repo.removed)
	}
}

func TestRemoveScheduleErrors(t *testing.T) {
	if _, ok := RemoveSchedule(&fakeRepo{}, nil)().(ErrMsg); !ok {
		t.Error("nil entry should produce ErrMsg")
	}
	if _, ok := RemoveSchedule(nil, &schedule.Entry{ID: 1})().(ErrMsg); !ok {
		t.Error("nil repo should produce ErrMsg")
	}

	missing := &fakeRepo{err: schedule.ErrEntryNotFound}
	msg, ok := RemoveSchedule(missing, &schedule.Entry{ID: 1})().(ErrMsg)
	if !ok || !errors.Is(msg.Err, schedule.ErrEntryNotFound) {
		t.Fatalf("msg = %+v, want wrapped ErrEntryNotFound", msg)
	}
}

func TestStatus(t *testing.T) {
	msg, ok := Status("Copied 2024-02-14")().(StatusMsgCmd)
	if !ok || msg.Msg != "Copied 2024-02-14" {
		t.Fatalf("msg = %+v", msg)
	}
}

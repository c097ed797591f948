// Package schedule defines persisted schedule entries and folds them into the
// calendar's per-date schedule map.
package schedule

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/javiermolinar/lunacal/internal/calendar"
	"github.com/javiermolinar/lunacal/internal/dateutil"
)

// Validation errors.
var (
	ErrEmptyLabel   = errors.New("label cannot be empty")
	ErrLabelTooLong = errors.New("label cannot exceed 256 characters")
)

// Domain errors.
var ErrEntryNotFound = errors.New("schedule entry not found")

const maxLabelLen = 256

// Entry is a schedule label attached to a date.
type Entry struct {
	ID        int64
	DateKey   string // YYYY-MM-DD
	Label     string
	Position  int // Display order within the date
	CreatedAt time.Time
}

// New creates an entry with validation. date must be a YYYY-MM-DD key.
func New(date, label string) (*Entry, error) {
	if _, err := dateutil.ParseDateKey(date); err != nil {
		return nil, err
	}
	label, err := ValidateLabel(label)
	if err != nil {
		return nil, err
	}
	return &Entry{DateKey: date, Label: label, CreatedAt: time.Now()}, nil
}

// ValidateLabel trims a label and checks it is usable.
func ValidateLabel(label string) (string, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return "", ErrEmptyLabel
	}
	if len([]rune(label)) > maxLabelLen {
		return "", ErrLabelTooLong
	}
	return label, nil
}

// Date returns the entry's date at midnight UTC.
func (e *Entry) Date() time.Time {
	t, _ := dateutil.ParseDateKey(e.DateKey)
	return t
}

// Repository defines the storage interface for schedule entries.
type Repository interface {
	// AddEntry stores an entry after the existing entries of its date.
	// ID and Position are set on success.
	AddEntry(ctx context.Context, e *Entry) error

	// GetEntry retrieves an entry by ID. Returns ErrEntryNotFound if missing.
	GetEntry(ctx context.Context, id int64) (*Entry, error)

	// RemoveEntry deletes an entry. Returns ErrEntryNotFound if missing.
	RemoveEntry(ctx context.Context, id int64) error

	// RenameEntry replaces an entry's label. Returns ErrEntryNotFound if missing.
	RenameEntry(ctx context.Context, id int64, label string) error

	// ListEntries returns entries dated within [start, end] (inclusive),
	// ordered by date then position.
	ListEntries(ctx context.Context, start, end time.Time) ([]*Entry, error)

	// Close releases any resources held by the repository.
	Close() error
}

// Fold groups entries by date key, keeping their order.
func Fold(entries []*Entry) calendar.Schedules {
	s := make(calendar.Schedules)
	for _, e := range entries {
		s[e.DateKey] = append(s[e.DateKey], e.Label)
	}
	return s
}

// Load reads the entries covering every cell of the month's grid.
func Load(ctx context.Context, repo Repository, m calendar.Month) (calendar.Schedules, error) {
	start, end := Window(m)
	entries, err := repo.ListEntries(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("loading schedules for %s: %w", m, err)
	}
	return Fold(entries), nil
}

// Window returns the first and last dates shown in the month's grid.
func Window(m calendar.Month) (time.Time, time.Time) {
	first := m.First(time.UTC)
	start := first.AddDate(0, 0, -dateutil.WeekdayOfFirst(m.Year, m.Month))
	return start, start.AddDate(0, 0, calendar.GridSize-1)
}

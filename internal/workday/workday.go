// Package workday classifies dates as working days or rest days.
//
// Classification only looks at the weekday. Public holidays and adjusted working
// weekends are not modelled.
package workday

import (
	"errors"
	"fmt"
	"time"

	"github.com/javiermolinar/lunacal/internal/dateutil"
)

// ErrUnknownWeekday is returned for weekday names that cannot be parsed.
var ErrUnknownWeekday = errors.New("unknown weekday")

// Classifier holds the set of working weekdays.
type Classifier struct {
	days [7]bool
}

// Default returns a classifier with Monday through Friday as workdays.
func Default() *Classifier {
	c := &Classifier{}
	for wd := time.Monday; wd <= time.Friday; wd++ {
		c.days[wd] = true
	}
	return c
}

// New builds a classifier from weekday names such as "monday".
func New(names []string) (*Classifier, error) {
	c := &Classifier{}
	for _, name := range names {
		wd, ok := dateutil.LookupWeekday(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownWeekday, name)
		}
		c.days[wd] = true
	}
	return c, nil
}

// IsWorkday reports whether t falls on a working weekday.
func (c *Classifier) IsWorkday(t time.Time) bool {
	return c.days[t.Weekday()]
}

// Marker returns the short label shown on a cell: 班 for workdays, 休 for rest days.
func Marker(isWorkday bool) string {
	if isWorkday {
		return "班"
	}
	return "休"
}

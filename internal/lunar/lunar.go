// Package lunar converts Gregorian dates to Chinese lunar calendar labels.
package lunar

import (
	"time"

	lunarcal "github.com/6tail/lunar-go/calendar"

	"github.com/javiermolinar/lunacal/internal/dateutil"
)

// Converter returns the lunar label for a Gregorian date. Month is 1-based.
type Converter interface {
	Label(year, month, day int) string
}

// festivals maps lunar (month, day) to traditional festival names.
var festivals = map[[2]int]string{
	{1, 1}:   "春节",
	{1, 15}:  "元宵",
	{2, 2}:   "龙抬头",
	{5, 5}:   "端午",
	{7, 7}:   "七夕",
	{7, 15}:  "中元",
	{8, 15}:  "中秋",
	{9, 9}:   "重阳",
	{12, 8}:  "腊八",
	{12, 23}: "小年",
}

// Chinese produces labels from the Chinese lunisolar calendar.
//
// The label is the lunar day name ("初二", "廿三"). On the first day of a lunar month
// the month name is used instead ("正月", "闰四月"). With festivals enabled, festival
// names and solar terms take precedence.
type Chinese struct {
	festivals bool
}

// ChineseOption configures a Chinese converter.
type ChineseOption func(*Chinese)

// WithFestivals enables festival and solar term labels.
func WithFestivals(enabled bool) ChineseOption {
	return func(c *Chinese) { c.festivals = enabled }
}

// NewChinese creates a Chinese lunar converter.
func NewChinese(opts ...ChineseOption) *Chinese {
	c := &Chinese{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Label implements Converter.
func (c *Chinese) Label(year, month, day int) string {
	l := lunarcal.NewSolarFromYmd(year, month, day).GetLunar()

	if c.festivals {
		if name := festival(year, month, day, l.GetMonth(), l.GetDay()); name != "" {
			return name
		}
		if term := l.GetJieQi(); term != "" {
			return term
		}
	}

	if l.GetDay() == 1 {
		return l.GetMonthInChinese() + "月"
	}
	return l.GetDayInChinese()
}

// festival returns the festival on a lunar date. Leap months (negative) have none.
func festival(year, month, day, lunarMonth, lunarDay int) string {
	if lunarMonth <= 0 {
		return ""
	}
	if name, ok := festivals[[2]int{lunarMonth, lunarDay}]; ok {
		return name
	}
	if lunarMonth == 12 {
		next := time.Date(year, time.Month(month), day+1, 0, 0, 0, 0, time.UTC)
		nl := lunarcal.NewSolarFromYmd(next.Year(), int(next.Month()), next.Day()).GetLunar()
		if nl.GetMonth() == 1 && nl.GetDay() == 1 {
			return "除夕"
		}
	}
	return ""
}

// Cache memoizes another converter by date key. Labels never change for a date, so
// entries are kept for the life of the cache. Not safe for concurrent use.
type Cache struct {
	next   Converter
	labels map[string]string
}

// NewCache wraps next with memoization.
func NewCache(next Converter) *Cache {
	return &Cache{next: next, labels: make(map[string]string)}
}

// Label implements Converter.
func (c *Cache) Label(year, month, day int) string {
	key := dateutil.DateKey(year, month-1, day)
	if label, ok := c.labels[key]; ok {
		return label
	}
	label := c.next.Label(year, month, day)
	c.labels[key] = label
	return label
}

// Len returns the number of memoized dates.
func (c *Cache) Len() int {
	return len(c.labels)
}

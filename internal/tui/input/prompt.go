// Package input parses the add-schedule prompt.
package input

import (
	"strings"
	"time"

	"github.com/javiermolinar/lunacal/internal/dateutil"
)

// DatePrefix marks a leading date token in the prompt, as in "@tomorrow Dentist".
const DatePrefix = "@"

// DateKeyword describes a date suggestion entry.
type DateKeyword struct {
	Name        string
	Description string
}

// DateKeywords lists the relative dates the prompt understands.
var DateKeywords = []DateKeyword{
	{Name: "@today", Description: "Today"},
	{Name: "@tomorrow", Description: "Tomorrow"},
	{Name: "@yesterday", Description: "Yesterday"},
	{Name: "@next-week", Description: "Seven days from today"},
	{Name: "@monday", Description: "Next Monday"},
	{Name: "@tuesday", Description: "Next Tuesday"},
	{Name: "@wednesday", Description: "Next Wednesday"},
	{Name: "@thursday", Description: "Next Thursday"},
	{Name: "@friday", Description: "Next Friday"},
	{Name: "@saturday", Description: "Next Saturday"},
	{Name: "@sunday", Description: "Next Sunday"},
}

// MatchingKeywords returns the keywords that match the current input prefix.
func MatchingKeywords(input string, keywords []DateKeyword) []DateKeyword {
	trimmed := strings.TrimSpace(input)
	if !strings.HasPrefix(trimmed, DatePrefix) {
		return nil
	}
	if strings.Contains(input, " ") {
		return nil
	}

	prefix := strings.ToLower(trimmed)
	matches := make([]DateKeyword, 0, len(keywords))
	for _, kw := range keywords {
		if strings.HasPrefix(kw.Name, prefix) {
			matches = append(matches, kw)
		}
	}
	return matches
}

// Autocomplete returns the first matching keyword and whether it exists.
func Autocomplete(input string, keywords []DateKeyword) (string, bool) {
	matches := MatchingKeywords(input, keywords)
	if len(matches) == 0 {
		return "", false
	}
	return matches[0].Name + " ", true
}

// ParseAdd splits prompt input into a date and a label. Without a leading
// "@date" token the entry lands on fallback. Relative dates resolve against now
// and may lie in the past.
func ParseAdd(input string, fallback, now time.Time) (time.Time, string, error) {
	input = strings.TrimSpace(input)
	if !strings.HasPrefix(input, DatePrefix) {
		return fallback, input, nil
	}

	token, label, _ := strings.Cut(input, " ")
	date, err := dateutil.ParseRelativeDate(strings.TrimPrefix(token, DatePrefix), now, true)
	if err != nil {
		return time.Time{}, "", err
	}
	return date, strings.TrimSpace(label), nil
}

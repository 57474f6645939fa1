package timeutil

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar date format used by the API.
const DateLayout = "2006-01-02"

var dateLayouts = []string{
	DateLayout,
	"2006-1-2",
	"02/01/2006",
	"2/1/2006",
}

// ParseDate accepts ISO dates, day/month/year dates and the words today,
// tomorrow and yesterday. Day/month without a year uses now's year.
func ParseDate(input string, now time.Time) (time.Time, error) {
	s := strings.ToLower(strings.TrimSpace(input))
	today := Day(now)
	switch s {
	case "", "today", "hoje":
		return today, nil
	case "tomorrow", "amanhã", "amanha":
		return today.AddDate(0, 0, 1), nil
	case "yesterday", "ontem":
		return today.AddDate(0, 0, -1), nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	if t, err := time.Parse("2/1", s); err == nil {
		return time.Date(now.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q, example: 2024-03-01 or 01/03/2024", input)
}

// Day drops the clock from t, keeping its calendar date in UTC.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

package jst

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Location Все дни считаются в фиксированном смещении UTC+9
var Location = time.FixedZone("JST", 9*60*60)

// Day - начало календарного дня t в UTC+9.
// DATE из Postgres приходит как полночь UTC, в UTC+9 это 09:00 того же дня.
func Day(t time.Time) time.Time {
	l := t.In(Location)
	return time.Date(l.Year(), l.Month(), l.Day(), 0, 0, 0, 0, Location)
}

// Key - ключ дня вида 2006-01-02
func Key(t time.Time) string {
	return Day(t).Format(dateLayout)
}

// ParseDate разбирает YYYY-MM-DD как день в UTC+9
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, s, Location)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// ParseOptionalDate - пустая строка дает nil
func ParseOptionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func Format(t time.Time) string {
	return Day(t).Format(dateLayout)
}

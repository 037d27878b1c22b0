package types

import (
	"errors"
	"time"
)

// DateLayout формат календарной даты (YYYY-MM-DD)
const DateLayout = "2006-01-02"

// ErrInvalidDateFormat возвращается, когда строка не является датой или RFC3339 временем
var ErrInvalidDateFormat = errors.New("invalid date format, expected YYYY-MM-DD or RFC3339")

// ParseDateTime разбирает дату в формате YYYY-MM-DD (полночь UTC) или RFC3339 (приводится к UTC)
func ParseDateTime(s string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, ErrInvalidDateFormat
}

// ParseDate разбирает только календарную дату YYYY-MM-DD
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return t.UTC(), nil
}

// StartOfDay обрезает время до полуночи UTC того же дня
func StartOfDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// FormatDate форматирует время как YYYY-MM-DD в UTC
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// FormatTimestamp форматирует время как RFC3339 в UTC
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// FormatTimestampPtr форматирует опциональное время, nil остаётся nil
func FormatTimestampPtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := FormatTimestamp(*t)
	return &s
}

package domain

import (
	"errors"
	"time"
)

// ErrInvalidDateRange возвращается, когда конец периода не позже начала
var ErrInvalidDateRange = errors.New("domain: dropoff must be after pickup")

// Overlaps проверяет пересечение полуинтервалов [p1, d1) и [p2, d2).
// Возврат в день N и выдача в тот же день N пересечением не считаются.
func Overlaps(p1, d1, p2, d2 time.Time) bool {
	return p1.Before(d2) && d1.After(p2)
}

// DateRange полуинтервал аренды [Start, End)
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange создает период, отклоняя пустые и перевёрнутые интервалы
func NewDateRange(start, end time.Time) (DateRange, error) {
	r := DateRange{Start: start.UTC(), End: end.UTC()}
	if err := r.Validate(); err != nil {
		return DateRange{}, err
	}
	return r, nil
}

// Validate проверяет, что End строго позже Start
func (r DateRange) Validate() error {
	if r.Start.IsZero() || r.End.IsZero() || !r.End.After(r.Start) {
		return ErrInvalidDateRange
	}
	return nil
}

// Overlaps проверяет пересечение с другим периодом
func (r DateRange) Overlaps(other DateRange) bool {
	return Overlaps(r.Start, r.End, other.Start, other.End)
}

// Duration длительность периода
func (r DateRange) Duration() time.Duration {
	return r.End.Sub(r.Start)
}

package domain

import "time"

// DayStatus availability of a single calendar day
type DayStatus string

const (
	DayFree   DayStatus = "free"
	DayBooked DayStatus = "booked"
)

// CalendarDay availability of a vehicle on one day [Date, Date+24h)
type CalendarDay struct {
	Date   time.Time
	Status DayStatus
}

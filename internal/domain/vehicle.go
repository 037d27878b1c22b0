package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// VehicleStatus lifecycle status of a vehicle, independent of bookings
type VehicleStatus string

const (
	VehicleStatusActive      VehicleStatus = "ACTIVE"
	VehicleStatusInactive    VehicleStatus = "INACTIVE"
	VehicleStatusMaintenance VehicleStatus = "MAINTENANCE"
)

// Vehicle represents a rentable vehicle
type Vehicle struct {
	ID              int64
	Name            string
	Plate           string
	DailyRate       decimal.Decimal
	WeeklyRate      *decimal.Decimal
	BranchID        int64
	CurrentBranchID *int64 // branch where the vehicle was last returned
	Status          VehicleStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsBookable returns true if new reservations may be placed on the vehicle
func (v *Vehicle) IsBookable() bool {
	return v.Status != VehicleStatusInactive
}

// Rates returns the vehicle's price list
func (v *Vehicle) Rates() Rates {
	return Rates{Daily: v.DailyRate, Weekly: v.WeeklyRate}
}

// Rates daily and optional weekly price of a vehicle
type Rates struct {
	Daily  decimal.Decimal
	Weekly *decimal.Decimal
}

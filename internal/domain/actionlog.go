package domain

import "time"

// AuditAction state-changing admin or public operation recorded in the action log
type AuditAction string

const (
	AuditBookingCreated       AuditAction = "BOOKING_CREATED"
	AuditBookingCreatedManual AuditAction = "BOOKING_CREATED_MANUAL"
	AuditBookingExtended      AuditAction = "BOOKING_EXTENDED"
	AuditBookingDatesChanged  AuditAction = "BOOKING_DATES_CHANGED"
	AuditBookingStarted       AuditAction = "BOOKING_STARTED"
	AuditBookingCompleted     AuditAction = "BOOKING_COMPLETED"
	AuditBookingCancelled     AuditAction = "BOOKING_CANCELLED"
	AuditBookingPaid          AuditAction = "BOOKING_PAID"
)

// AuditActionFor maps a status action to its audit record type
func AuditActionFor(action Action) AuditAction {
	switch action {
	case ActionStart:
		return AuditBookingStarted
	case ActionComplete:
		return AuditBookingCompleted
	default:
		return AuditBookingCancelled
	}
}

// ActionLog single entry of the audit trail
type ActionLog struct {
	ID          int64
	Actor       string // admin subject from the token, or "public"
	Action      AuditAction
	BookingID   int64
	BookingCode string
	Details     map[string]string
	CreatedAt   time.Time
}

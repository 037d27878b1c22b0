package domain

// EventType kind of booking mutation announced after commit
type EventType string

const (
	EventBookingCreated      EventType = "booking.created"
	EventBookingExtended     EventType = "booking.extended"
	EventBookingDatesChanged EventType = "booking.dates_changed"
	EventBookingPaid         EventType = "booking.paid"
	EventBookingStarted      EventType = "booking.started"
	EventBookingCompleted    EventType = "booking.completed"
	EventBookingCancelled    EventType = "booking.cancelled"
)

// ActorPublic actor recorded for operations made through the public surface
const ActorPublic = "public"

// BookingEvent committed booking mutation. Booking is the full unmasked record.
type BookingEvent struct {
	Type    EventType
	Booking *Booking
	Actor   string
	Audit   AuditAction
	Details map[string]string
}

// EventTypeFor maps a status action to its event type
func EventTypeFor(action Action) EventType {
	switch action {
	case ActionStart:
		return EventBookingStarted
	case ActionComplete:
		return EventBookingCompleted
	default:
		return EventBookingCancelled
	}
}

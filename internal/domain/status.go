package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrIllegalTransition возвращается при недопустимой смене статуса
	ErrIllegalTransition = errors.New("domain: illegal booking status transition")

	// ErrUnknownStatus возвращается при разборе неизвестного статуса
	ErrUnknownStatus = errors.New("domain: unknown booking status")
)

// Action admin operation that moves a booking between statuses
type Action string

const (
	ActionStart    Action = "start"
	ActionCancel   Action = "cancel"
	ActionComplete Action = "complete"
)

// transitions таблица допустимых переходов: (текущий статус, действие) -> новый статус
var transitions = map[BookingStatus]map[Action]BookingStatus{
	StatusReserved: {
		ActionStart:  StatusActive,
		ActionCancel: StatusCancelled,
	},
	StatusActive: {
		ActionComplete: StatusCompleted,
		ActionCancel:   StatusCancelled,
	},
}

// NextStatus возвращает статус после применения действия или ErrIllegalTransition
func NextStatus(from BookingStatus, action Action) (BookingStatus, error) {
	if to, ok := transitions[from][action]; ok {
		return to, nil
	}
	return "", fmt.Errorf("%w: %s from %s", ErrIllegalTransition, action, from)
}

// CanTransition проверяет допустимость перехода между статусами
func CanTransition(from, to BookingStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminal returns true for COMPLETED and CANCELLED
func (s BookingStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// ParseBookingStatus конвертирует строку в BookingStatus с валидацией
func ParseBookingStatus(s string) (BookingStatus, error) {
	switch status := BookingStatus(s); status {
	case StatusReserved, StatusActive, StatusCompleted, StatusCancelled:
		return status, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
}

// ParseAction конвертирует строку в Action
func ParseAction(s string) (Action, error) {
	switch action := Action(s); action {
	case ActionStart, ActionCancel, ActionComplete:
		return action, nil
	}
	return "", fmt.Errorf("%w: unknown action %q", ErrIllegalTransition, s)
}

// ParsePaymentStatus конвертирует строку в PaymentStatus
func ParsePaymentStatus(s string) (PaymentStatus, error) {
	switch status := PaymentStatus(s); status {
	case PaymentUnpaid, PaymentPaid:
		return status, nil
	}
	return "", fmt.Errorf("%w: payment status %q", ErrUnknownStatus, s)
}

package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("bookings: booking not found")

	// ErrAlreadyPaid возвращается при повторной оплате
	ErrAlreadyPaid = errors.New("bookings: booking already paid")

	// ErrNotPayable возвращается, когда бронирование нельзя оплатить в текущем статусе
	ErrNotPayable = errors.New("bookings: booking cannot be paid in its current status")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("bookings: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings: internal error")
)

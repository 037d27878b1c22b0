package update_booking_dates

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("update_booking_dates: booking not found")

	// ErrNotEditable возвращается, когда даты бронирования нельзя менять в текущем статусе
	ErrNotEditable = errors.New("update_booking_dates: booking dates cannot be changed in its current status")

	// ErrInvalidDates возвращается, когда дата возврата не позже даты выдачи
	ErrInvalidDates = errors.New("update_booking_dates: dropoff must be after pickup")

	// ErrRentalTooLong возвращается, когда срок аренды превышает допустимый
	ErrRentalTooLong = errors.New("update_booking_dates: rental period is too long")

	// ErrOverlap возвращается, когда новый период пересекается с другим бронированием
	ErrOverlap = errors.New("update_booking_dates: vehicle is already booked for these dates")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_booking_dates: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_booking_dates: internal error")
)

package create_booking

import "errors"

var (
	// ErrVehicleNotFound возвращается, когда автомобиль не найден
	ErrVehicleNotFound = errors.New("create_booking: vehicle not found")

	// ErrBranchNotFound возвращается, когда филиал выдачи или возврата не найден
	ErrBranchNotFound = errors.New("create_booking: branch not found")

	// ErrVehicleUnavailable возвращается, когда автомобиль выведен из эксплуатации (INACTIVE)
	ErrVehicleUnavailable = errors.New("create_booking: vehicle is not available for booking")

	// ErrInvalidDates возвращается, когда дата возврата не позже даты выдачи
	ErrInvalidDates = errors.New("create_booking: dropoff must be after pickup")

	// ErrPickupInPast возвращается, когда публичное бронирование начинается в прошлом
	ErrPickupInPast = errors.New("create_booking: pickup date is in the past")

	// ErrRentalTooLong возвращается, когда срок аренды превышает допустимый
	ErrRentalTooLong = errors.New("create_booking: rental period is too long")

	// ErrInvalidCustomer возвращается, когда данные клиента не прошли проверку
	ErrInvalidCustomer = errors.New("create_booking: invalid customer data")

	// ErrOverlap возвращается, когда период пересекается с другим бронированием автомобиля
	ErrOverlap = errors.New("create_booking: vehicle is already booked for these dates")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

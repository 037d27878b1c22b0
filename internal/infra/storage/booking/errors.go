package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrOverlap возвращается, когда период пересекается с другим бронированием автомобиля
	// (срабатывание EXCLUDE ограничения)
	ErrOverlap = errors.New("booking.repository: booking period overlaps")

	// ErrDuplicateCode возвращается при нарушении уникальности кода бронирования
	ErrDuplicateCode = errors.New("booking.repository: duplicate booking code")

	// ErrStatusMismatch возвращается, когда условное обновление не нашло строку в ожидаемом статусе
	ErrStatusMismatch = errors.New("booking.repository: booking status changed concurrently")

	// ErrAlreadyPaid возвращается при повторной оплате
	ErrAlreadyPaid = errors.New("booking.repository: booking already paid")

	// ErrTransactionRequired возвращается, когда блокировка запрошена вне транзакции
	ErrTransactionRequired = errors.New("booking.repository: transaction required")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)

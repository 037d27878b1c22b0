package calendar

import "errors"

var (
	// ErrCache возвращается при ошибках Redis
	ErrCache = errors.New("calendar.cache: redis error")

	// ErrDecode возвращается, когда закэшированное значение не удалось разобрать
	ErrDecode = errors.New("calendar.cache: failed to decode cached calendar")
)

package actionlog

import "errors"

var (
	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("actionlog.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("actionlog.repository: failed to execute query")

	// ErrMarshalDetails возвращается, когда детали записи не сериализуются в JSON
	ErrMarshalDetails = errors.New("actionlog.repository: failed to marshal details")
)

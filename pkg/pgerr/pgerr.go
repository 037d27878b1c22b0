// Package pgerr classifies PostgreSQL errors returned by lib/pq.
package pgerr

import (
	"errors"

	"github.com/lib/pq"
)

// SQLSTATE коды, которые обрабатываются сервисом
const (
	CodeSerializationFailure = "40001"
	CodeDeadlockDetected     = "40P01"
	CodeUniqueViolation      = "23505"
	CodeExclusionViolation   = "23P01"
)

// Code возвращает SQLSTATE код ошибки или пустую строку, если это не ошибка PostgreSQL
func Code(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}

// IsRetryable сообщает, что транзакцию можно безопасно повторить
// (конфликт сериализации или взаимоблокировка)
func IsRetryable(err error) bool {
	code := Code(err)
	return code == CodeSerializationFailure || code == CodeDeadlockDetected
}

// IsExclusionViolation сообщает о нарушении EXCLUDE ограничения (пересечение периодов)
func IsExclusionViolation(err error) bool {
	return Code(err) == CodeExclusionViolation
}

// IsUniqueViolation сообщает о нарушении уникальности
func IsUniqueViolation(err error) bool {
	return Code(err) == CodeUniqueViolation
}

package pgerr

import (
	"errors"

	"github.com/lib/pq"
)

// Коды ошибок PostgreSQL, которые репозитории переводят в доменные ошибки
const (
	UniqueViolation      = "23505"
	ForeignKeyViolation  = "23503"
	CheckViolation       = "23514"
	ExclusionViolation   = "23P01"
	SerializationFailure = "40001"
	DeadlockDetected     = "40P01"
)

// Code код ошибки PostgreSQL или пустая строка, если это не *pq.Error
func Code(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}

// Is проверяет, что ошибка имеет один из кодов
func Is(err error, codes ...string) bool {
	code := Code(err)
	if code == "" {
		return false
	}
	for _, c := range codes {
		if code == c {
			return true
		}
	}
	return false
}

// IsConflict конфликт записи: нарушение exclusion-ограничения или сбой сериализации
func IsConflict(err error) bool {
	return Is(err, ExclusionViolation, SerializationFailure, DeadlockDetected)
}

package schedule

import "errors"

var (
	// ErrTenantNotFound возвращается, когда у пользователя нет барбершопа
	ErrTenantNotFound = errors.New("schedule.service: tenant not found")

	// ErrBarberNotFound возвращается, когда мастер не найден в барбершопе
	ErrBarberNotFound = errors.New("schedule.service: barber not found")

	// ErrBlockedTimeNotFound возвращается, когда блокировка не найдена
	ErrBlockedTimeNotFound = errors.New("schedule.service: blocked time not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("schedule.service: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("schedule.service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("schedule.service: internal error")
)

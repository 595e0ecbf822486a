package cashregister

import "errors"

var (
	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("cashregister.service: access denied")

	// ErrTenantNotFound возвращается, когда у пользователя нет барбершопа
	ErrTenantNotFound = errors.New("cashregister.service: tenant not found")

	// ErrAppointmentNotFound возвращается, когда связанная запись не найдена
	ErrAppointmentNotFound = errors.New("cashregister.service: appointment not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("cashregister.service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("cashregister.service: internal error")
)

package notifications

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("notifications: invalid input data")

	// ErrAccessDenied возвращается, когда у актора нет прав на отправку
	ErrAccessDenied = errors.New("notifications: access denied")

	// ErrTenantNotFound возвращается, когда у актора нет барбершопа
	ErrTenantNotFound = errors.New("notifications: tenant not found")

	// ErrCustomerNotFound возвращается, когда клиент не найден в барбершопе
	ErrCustomerNotFound = errors.New("notifications: customer not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("notifications: internal error")
)

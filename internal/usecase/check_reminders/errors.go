package check_reminders

import "errors"

var (
	// ErrTenantNotFound у пользователя нет барбершопа
	ErrTenantNotFound = errors.New("check_reminders: tenant not found")

	// ErrAccessDenied запуск проверки доступен только владельцу барбершопа
	ErrAccessDenied = errors.New("check_reminders: access denied")

	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("check_reminders: internal error")
)

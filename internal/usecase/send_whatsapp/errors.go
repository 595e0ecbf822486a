package send_whatsapp

import "errors"

var (
	// ErrNotConfigured у пользователя нет включённых учётных данных WhatsApp
	ErrNotConfigured = errors.New("send_whatsapp: whatsapp is not configured")

	// ErrAccessDenied отправка от имени другого пользователя без прав
	ErrAccessDenied = errors.New("send_whatsapp: access denied")

	// ErrInvalidInput некорректный номер или пустое сообщение
	ErrInvalidInput = errors.New("send_whatsapp: invalid input")

	// ErrProvider провайдер отклонил сообщение или недоступен
	ErrProvider = errors.New("send_whatsapp: provider error")

	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("send_whatsapp: internal error")
)

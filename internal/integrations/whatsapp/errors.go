package whatsapp

import "errors"

var (
	// ErrNotConfigured возвращается, когда у пользователя нет рабочих учётных данных
	ErrNotConfigured = errors.New("whatsapp client: provider not configured")

	// ErrInvalidRecipient возвращается при номере не в формате E.164
	ErrInvalidRecipient = errors.New("whatsapp client: invalid recipient number")

	// ErrEmptyMessage возвращается при пустом тексте
	ErrEmptyMessage = errors.New("whatsapp client: empty message")

	// ErrRateLimited возвращается, когда не дождались очереди до отмены контекста
	ErrRateLimited = errors.New("whatsapp client: rate limit wait aborted")

	// ErrProvider возвращается при ошибке на стороне провайдера
	ErrProvider = errors.New("whatsapp client: provider error")
)

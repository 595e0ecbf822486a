package update_booking

import "errors"

var (
	// ErrTenantNotFound у пользователя нет барбершопа
	ErrTenantNotFound = errors.New("update_booking: tenant not found")

	// ErrAppointmentNotFound запись не найдена или принадлежит другому барбершопу
	ErrAppointmentNotFound = errors.New("update_booking: appointment not found")

	// ErrAccessDenied запись чужого клиента или недопустимое для клиента изменение
	ErrAccessDenied = errors.New("update_booking: access denied")

	// ErrSlotNotAvailable новое время пересекается с другой записью или блокировкой
	ErrSlotNotAvailable = errors.New("update_booking: slot not available")

	// ErrInvalidInput некорректные входные данные
	ErrInvalidInput = errors.New("update_booking: invalid input")

	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("update_booking: internal error")
)

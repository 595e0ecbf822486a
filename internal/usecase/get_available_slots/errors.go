package get_available_slots

import "errors"

var (
	// ErrBarberNotFound возвращается, когда мастер не найден в барбершопе
	ErrBarberNotFound = errors.New("get_available_slots: barber not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("get_available_slots: service not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)

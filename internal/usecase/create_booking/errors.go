package create_booking

import "errors"

var (
	// ErrTenantNotFound возвращается, когда у пользователя нет барбершопа
	ErrTenantNotFound = errors.New("create_booking: tenant not found")

	// ErrAccessDenied возвращается, когда пользователь не может записать этого клиента
	ErrAccessDenied = errors.New("create_booking: access denied")

	// ErrCustomerNotFound возвращается, когда клиент не найден в барбершопе
	ErrCustomerNotFound = errors.New("create_booking: customer not found")

	// ErrBarberNotFound возвращается, когда мастер не найден или неактивен
	ErrBarberNotFound = errors.New("create_booking: barber not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена или неактивна
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrInvalidDate возвращается, когда время записи уже прошло
	ErrInvalidDate = errors.New("create_booking: appointment time is in the past")

	// ErrSlotNotAvailable возвращается, когда время пересекается с другой записью или блокировкой
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

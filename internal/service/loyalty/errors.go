package loyalty

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("loyalty.service: invalid input data")

	// ErrAccessDenied возвращается, когда у пользователя нет прав на операцию
	ErrAccessDenied = errors.New("loyalty.service: access denied")

	// ErrCustomerNotFound возвращается, когда клиент не найден в барбершопе
	ErrCustomerNotFound = errors.New("loyalty.service: customer not found")

	// ErrInsufficientPoints возвращается, когда баллов меньше порога купона
	ErrInsufficientPoints = errors.New("loyalty.service: insufficient points")

	// ErrCouponNotFound возвращается, когда купона с таким кодом нет
	ErrCouponNotFound = errors.New("loyalty.service: coupon not found")

	// ErrCouponNotOwned возвращается, когда купон принадлежит другому клиенту
	ErrCouponNotOwned = errors.New("loyalty.service: coupon belongs to another customer")

	// ErrCouponAlreadyRedeemed возвращается при повторном погашении
	ErrCouponAlreadyRedeemed = errors.New("loyalty.service: coupon already redeemed")

	// ErrCouponExpired возвращается, когда срок купона истёк
	ErrCouponExpired = errors.New("loyalty.service: coupon expired")

	// ErrAppointmentNotFound возвращается, когда запись для погашения не найдена
	ErrAppointmentNotFound = errors.New("loyalty.service: appointment not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("loyalty.service: internal error")
)

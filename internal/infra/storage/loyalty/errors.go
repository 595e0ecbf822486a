package loyalty

import "errors"

var (
	// ErrCustomerNotFound возвращается, когда клиента с таким ID нет
	ErrCustomerNotFound = errors.New("loyalty.repository: customer not found")

	// ErrCouponNotFound возвращается, когда купона с таким кодом нет
	ErrCouponNotFound = errors.New("loyalty.repository: coupon not found")

	// ErrCouponAlreadyRedeemed возвращается, когда купон погашен параллельным запросом
	ErrCouponAlreadyRedeemed = errors.New("loyalty.repository: coupon already redeemed")

	// ErrDuplicateCode возвращается при коллизии кода купона
	ErrDuplicateCode = errors.New("loyalty.repository: duplicate coupon code")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("loyalty.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("loyalty.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("loyalty.repository: failed to scan row")
)

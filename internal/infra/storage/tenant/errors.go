package tenant

import "errors"

var (
	ErrTenantNotFound   = errors.New("tenant.repository: tenant not found")
	ErrBarberNotFound   = errors.New("tenant.repository: barber not found")
	ErrCustomerNotFound = errors.New("tenant.repository: customer not found")
	ErrServiceNotFound  = errors.New("tenant.repository: service not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("tenant.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("tenant.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("tenant.repository: failed to scan row")
)

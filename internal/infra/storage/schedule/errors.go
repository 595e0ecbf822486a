package schedule

import "errors"

var (
	// ErrWorkingHoursNotFound возвращается, когда для дня недели нет строки часов работы
	ErrWorkingHoursNotFound = errors.New("schedule.repository: working hours not found")

	// ErrBlockedTimeNotFound возвращается, когда блокировка не найдена
	ErrBlockedTimeNotFound = errors.New("schedule.repository: blocked time not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("schedule.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("schedule.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("schedule.repository: failed to scan row")
)

package notification

import "errors"

var (
	// ErrDuplicate возвращается, когда напоминание по записи уже создано
	ErrDuplicate = errors.New("notification.repository: duplicate notification")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("notification.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("notification.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("notification.repository: failed to scan row")
)

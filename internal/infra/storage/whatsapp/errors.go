package whatsapp

import "errors"

var (
	// ErrSettingsNotFound возвращается, когда пользователь не сохранял учётные данные
	ErrSettingsNotFound = errors.New("whatsapp.repository: settings not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("whatsapp.repository: failed to build query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("whatsapp.repository: failed to scan row")
)

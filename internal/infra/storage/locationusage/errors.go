package locationusage

import "errors"

var (
	// ErrLocationUsageNotFound возвращается, когда для комнаты нет записи об использовании
	ErrLocationUsageNotFound = errors.New("locationusage.repository: location usage not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("locationusage.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("locationusage.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("locationusage.repository: failed to scan row")
)

package prisonregime

import "errors"

var (
	// ErrRegimeNotFound возвращается, когда для тюрьмы не настроен режим
	ErrRegimeNotFound = errors.New("prisonregime.repository: regime not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("prisonregime.repository: failed to build query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("prisonregime.repository: failed to scan row")
)

package find_available_rooms

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrPrisonNotFound возвращается, когда тюрьма неизвестна справочнику локаций
	ErrPrisonNotFound = errors.New("prison not found")

	// ErrMixedPartyAvailability возвращается, когда один запрос дал и судебные, и пробационные комнаты
	// Это ошибка настройки комнат, она не исправляется автоматически
	ErrMixedPartyAvailability = errors.New("court and probation rooms offered in one query")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)

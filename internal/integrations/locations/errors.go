package locations

import "errors"

var (
	// ErrPrisonNotFound возвращается, когда справочник не знает тюрьму
	ErrPrisonNotFound = errors.New("locations client: prison not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("locations client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("locations client: invalid response")
)

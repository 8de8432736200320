package check_booking_availability

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrBookingNotFound возвращается, когда изменяемое бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrLocationNotFound возвращается, когда комнаты варианта нет в справочнике локаций тюрьмы
	ErrLocationNotFound = errors.New("location not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)

package timeslots

import "errors"

var (
	// ErrInvalidDuration возвращается при неположительной длительности встречи
	ErrInvalidDuration = errors.New("timeslots: duration must be positive")

	// ErrInternal возвращается при ошибках чтения режима тюрьмы
	ErrInternal = errors.New("timeslots: internal error")
)

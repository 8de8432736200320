package locations

import "errors"

var (
	// ErrLocationUsageNotFound возвращается, когда комната еще не декорирована
	ErrLocationUsageNotFound = errors.New("location usage not found")

	// ErrLocationNotFound возвращается, когда комнаты видеосвязи нет в справочнике тюрьмы
	ErrLocationNotFound = errors.New("location not found")

	// ErrAlreadyDecorated возвращается при повторной декорации комнаты
	ErrAlreadyDecorated = errors.New("location is already decorated")

	// ErrNotScheduleMode возвращается при добавлении строки расписания комнате не в режиме SCHEDULE
	ErrNotScheduleMode = errors.New("location usage is not SCHEDULE")

	// ErrDuplicateScheduleRow возвращается при добавлении повторяющейся строки расписания
	ErrDuplicateScheduleRow = errors.New("duplicate schedule row")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

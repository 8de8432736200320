package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда видео-бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: video booking not found")

	// ErrBuildQuery возвращается, если не удалось собрать запрос по бронированиям или встречам
	ErrBuildQuery = errors.New("booking.repository: failed to build video booking query")

	// ErrExecQuery возвращается при сбое запроса занятых слотов
	ErrExecQuery = errors.New("booking.repository: failed to execute appointments query")

	// ErrScanRow возвращается, если строку встречи не удалось прочитать
	ErrScanRow = errors.New("booking.repository: failed to scan prison appointment row")
)

package occupancy

import "errors"

var (
	// ErrInternal возвращается при ошибках источников данных о занятости
	ErrInternal = errors.New("occupancy: internal error")
)

package ownership

import "errors"

var (
	// ErrInternal возвращается при ошибках чтения записей об использовании
	ErrInternal = errors.New("ownership: internal error")
)

package busy

import "errors"

var (
	// ErrInvalidPeriod возвращается, когда период пустой или перевернут
	ErrInvalidPeriod = errors.New("busy: invalid period")

	// ErrInternal возвращается при ошибках чтения занятых интервалов
	ErrInternal = errors.New("busy: internal error")
)
